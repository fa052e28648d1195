package picker

import (
	"slices"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options configures a Picker at construction.
type Options struct {
	ReelSelector string // where the reel is mounted; resolved once by New
	RemoveWinner *bool  // nil => remove the winner after each spin

	Timing Timing       // zero value => DefaultTiming()
	RNG    RandomSource // nil => DefaultRNG()
	Logger *zerolog.Logger

	OnSpinStart       func()
	OnSpinEnd         func()
	OnNameListChanged func()
}

// Picker owns the name pool, the removal policy and the reel it spins.
//
// A Picker is not safe for concurrent spins. Callers must not start a spin
// while another one on the same Picker is still running.
type Picker struct {
	pool         []string
	removeWinner bool

	reel    Reel
	planner Planner
	rng     RandomSource
	log     zerolog.Logger
	phase   atomic.Int32

	onSpinStart       func()
	onSpinEnd         func()
	onNameListChanged func()
}

// New builds a Picker and resolves opts.ReelSelector against surface.
// A missing reel is not an error here; spins report it.
func New(surface Surface, opts Options) (*Picker, error) {
	timing := opts.Timing
	if timing == (Timing{}) {
		timing = DefaultTiming()
	}
	planner, err := timing.Planner()
	if err != nil {
		return nil, err
	}
	rng := opts.RNG
	if rng == nil {
		rng = DefaultRNG()
	}
	logger := log.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	remove := true
	if opts.RemoveWinner != nil {
		remove = *opts.RemoveWinner
	}

	p := &Picker{
		removeWinner:      remove,
		planner:           planner,
		rng:               rng,
		log:               logger.With().Str("reel", opts.ReelSelector).Logger(),
		onSpinStart:       opts.OnSpinStart,
		onSpinEnd:         opts.OnSpinEnd,
		onNameListChanged: opts.OnNameListChanged,
	}
	if surface != nil {
		p.reel = surface.Lookup(opts.ReelSelector)
	}
	if p.reel == nil {
		p.log.Warn().Msg("reel selector did not resolve")
	}
	return p, nil
}

// SetPool replaces the whole pool, clears the reel and fires OnNameListChanged.
func (p *Picker) SetPool(names []string) {
	p.pool = slices.Clone(names)
	if p.reel != nil {
		p.reel.Clear()
	}
	notify(p.onNameListChanged)
}

// Pool returns a copy of the current pool in stored order.
func (p *Picker) Pool() []string { return slices.Clone(p.pool) }

func (p *Picker) SetRemoveWinner(remove bool) { p.removeWinner = remove }

func (p *Picker) RemoveWinner() bool { return p.removeWinner }

// Phase reports where the current spin is, Idle between spins.
func (p *Picker) Phase() Phase { return Phase(p.phase.Load()) }

func (p *Picker) setPhase(ph Phase) { p.phase.Store(int32(ph)) }

func notify(hook func()) {
	if hook != nil {
		hook()
	}
}
