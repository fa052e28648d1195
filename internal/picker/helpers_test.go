package picker_test

import (
	"slices"

	"github.com/rs/zerolog"

	"github.com/xtding233/name-reel/internal/picker"
)

// fixedRNG always returns v.
type fixedRNG struct{ v float64 }

func (r fixedRNG) Float64() float64 { return r.v }

// fakeReel finishes every animation immediately.
type fakeReel struct {
	detached bool
	items    []string
	clears   int
	mounts   int
	trims    int
	plans    []picker.Plan
	finishes int
}

func (r *fakeReel) Attached() bool { return !r.detached }
func (r *fakeReel) Clear() {
	r.items = nil
	r.clears++
}
func (r *fakeReel) Mount(names []string) {
	r.items = append(r.items, names...)
	r.mounts++
}
func (r *fakeReel) TrimToLast() {
	r.trims++
	if len(r.items) > 1 {
		r.items = r.items[len(r.items)-1:]
	}
}
func (r *fakeReel) Items() []string { return slices.Clone(r.items) }
func (r *fakeReel) Animate(plan picker.Plan) picker.Animation {
	r.plans = append(r.plans, plan)
	done := make(chan struct{})
	close(done)
	return &fakeAnimation{reel: r, done: done}
}

type fakeAnimation struct {
	reel *fakeReel
	done chan struct{}
}

func (a *fakeAnimation) Finished() <-chan struct{} { return a.done }
func (a *fakeAnimation) Finish() { a.reel.finishes++ }

// surface resolves exactly one selector.
type surface struct {
	selector string
	reel     picker.Reel
}

func (s surface) Lookup(selector string) picker.Reel {
	if selector != s.selector || s.reel == nil {
		return nil
	}
	return s.reel
}

type hookCounts struct{ start, end, changed int }

func newTestPicker(r *fakeReel, remove bool, rng picker.RandomSource, hc *hookCounts) *picker.Picker {
	nop := zerolog.Nop()
	opts := picker.Options{
		ReelSelector: "#reel",
		RemoveWinner: &remove,
		RNG:          rng,
		Logger:       &nop,
	}
	if hc != nil {
		opts.OnSpinStart = func() { hc.start++ }
		opts.OnSpinEnd = func() { hc.end++ }
		opts.OnNameListChanged = func() { hc.changed++ }
	}
	var s picker.Surface
	if r != nil {
		s = surface{selector: "#reel", reel: r}
	}
	p, err := picker.New(s, opts)
	if err != nil {
		panic(err)
	}
	return p
}
