package reel

import (
	"slices"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/xtding233/name-reel/internal/picker"
)

// Memory is a headless reel. Animations last plan.Duration on its clock and
// only change the recorded Frame.
type Memory struct {
	clock clockwork.Clock
	// persistFinal false models drivers that snap back to the first keyframe
	// once they signal completion.
	persistFinal bool

	mu       sync.Mutex
	attached bool
	items    []string
	frame    picker.Frame
	mounts   int
	started  int
	forced   int
}

// NewMemory returns an attached reel. A nil clock uses the wall clock.
func NewMemory(clock clockwork.Clock, persistFinal bool) *Memory {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Memory{clock: clock, persistFinal: persistFinal, attached: true}
}

func (m *Memory) Attached() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.attached
}

// Detach takes the reel off screen; later spins fail with picker.ErrMissingReel.
func (m *Memory) Detach() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attached = false
}

func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = nil
	m.frame = picker.Frame{}
}

func (m *Memory) Mount(names []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, names...)
	m.mounts++
}

func (m *Memory) TrimToLast() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.items) > 1 {
		m.items = m.items[len(m.items)-1:]
	}
}

func (m *Memory) Items() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.items)
}

// Frame is the state the reel currently shows.
func (m *Memory) Frame() picker.Frame {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.frame
}

// Mounts counts Mount calls since creation.
func (m *Memory) Mounts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mounts
}

// Started counts animations started since creation.
func (m *Memory) Started() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.started
}

// Forced counts Finish calls that moved an animation to its final frame.
func (m *Memory) Forced() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.forced
}

func (m *Memory) setFrame(f picker.Frame) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.frame = f
}

func (m *Memory) Animate(plan picker.Plan) picker.Animation {
	m.mu.Lock()
	m.started++
	m.frame = plan.Start()
	m.mu.Unlock()

	a := &memoryAnimation{reel: m, plan: plan, done: make(chan struct{})}
	timer := m.clock.NewTimer(plan.Duration)
	go func() {
		<-timer.Chan()
		if m.persistFinal {
			m.setFrame(plan.Final())
		} else {
			m.setFrame(plan.Start())
		}
		close(a.done)
	}()
	return a
}

type memoryAnimation struct {
	reel *Memory
	plan picker.Plan
	done chan struct{}
	once sync.Once
}

func (a *memoryAnimation) Finished() <-chan struct{} { return a.done }

func (a *memoryAnimation) Finish() {
	a.once.Do(func() {
		a.reel.mu.Lock()
		defer a.reel.mu.Unlock()
		a.reel.frame = a.plan.Final()
		a.reel.forced++
	})
}
