package reel

import (
	"fmt"
	"io"
	"slices"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/xtding233/name-reel/internal/picker"
)

const (
	ansiClearLine = "\r\x1b[2K"
	ansiDim       = "\x1b[2m"
	ansiBold      = "\x1b[1m"
	ansiReset     = "\x1b[0m"
)

// DefaultFrameInterval is roughly 30 frames per second.
const DefaultFrameInterval = 33 * time.Millisecond

// Terminal draws the item under the reel window on a single terminal line.
// Blurred frames are drawn dim.
type Terminal struct {
	out      io.Writer
	clock    clockwork.Clock
	interval time.Duration

	mu    sync.Mutex
	items []string
}

// NewTerminal writes frames to out. A nil clock uses the wall clock and a
// non-positive interval uses DefaultFrameInterval.
func NewTerminal(out io.Writer, clock clockwork.Clock, interval time.Duration) *Terminal {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &Terminal{out: out, clock: clock, interval: interval}
}

func (t *Terminal) Attached() bool { return t.out != nil }

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.items = nil
}

func (t *Terminal) Mount(names []string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.items = append(t.items, names...)
}

// TrimToLast keeps the winner and prints it on its own line.
func (t *Terminal) TrimToLast() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.items) == 0 {
		return
	}
	t.items = t.items[len(t.items)-1:]
	fmt.Fprintf(t.out, "%s%s> %s%s\n", ansiClearLine, ansiBold, t.items[0], ansiReset)
}

func (t *Terminal) Items() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.items)
}

func (t *Terminal) draw(plan picker.Plan, f picker.Frame) {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := plan.ItemAt(f)
	if i < 0 || i >= len(t.items) {
		return
	}
	style := ""
	if f.Blur > 0 {
		style = ansiDim
	}
	fmt.Fprintf(t.out, "%s%s  %s%s", ansiClearLine, style, t.items[i], ansiReset)
}

func (t *Terminal) Animate(plan picker.Plan) picker.Animation {
	a := &terminalAnimation{term: t, plan: plan, done: make(chan struct{})}
	start := t.clock.Now()
	t.draw(plan, plan.Start())

	ticker := t.clock.NewTicker(t.interval)
	go func() {
		defer ticker.Stop()
		for range ticker.Chan() {
			elapsed := t.clock.Since(start)
			t.draw(plan, plan.Sample(elapsed))
			if elapsed >= plan.Duration {
				close(a.done)
				return
			}
		}
	}()
	return a
}

type terminalAnimation struct {
	term *Terminal
	plan picker.Plan
	done chan struct{}
	once sync.Once
}

func (a *terminalAnimation) Finished() <-chan struct{} { return a.done }

func (a *terminalAnimation) Finish() {
	a.once.Do(func() { a.term.draw(a.plan, a.plan.Final()) })
}
