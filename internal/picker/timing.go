package picker

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// TimingModel selects how a spin's animation plan is laid out.
type TimingModel string

const (
	// TimingPhased runs a fixed total duration: a fast blurred phase over all but
	// the last TailItems, then a decelerating tail onto the winner.
	TimingPhased TimingModel = "phased"
	// TimingLinear scales the duration with the item count and eases the whole motion.
	TimingLinear TimingModel = "linear"
)

// Timing holds the layout constants and the timing model for spins.
type Timing struct {
	Model      TimingModel
	ItemHeight float64 // pixels per reel item
	MaxBlur    float64 // blur radius while moving fast

	// phased
	Duration     time.Duration
	FastFraction float64 // upper bound on the fast phase's share of Duration, (0,1)
	TailItems    int     // items covered by the slow terminal phase

	// linear
	PerItem time.Duration
}

// DefaultTiming is the phased model with the stock reel layout.
func DefaultTiming() Timing {
	return Timing{
		Model:        TimingPhased,
		ItemHeight:   80,
		MaxBlur:      6,
		Duration:     4 * time.Second,
		FastFraction: 0.7,
		TailItems:    3,
		PerItem:      120 * time.Millisecond,
	}
}

// Validate checks the parameters used by the selected model.
func (t Timing) Validate() error {
	var errs []string
	if !(t.ItemHeight > 0) {
		errs = append(errs, "item height must be > 0")
	}
	if !finiteNonNegative(t.MaxBlur) {
		errs = append(errs, "max blur must be >= 0")
	}
	switch t.Model {
	case TimingPhased, "":
		if t.Duration <= 0 {
			errs = append(errs, "phased duration must be > 0")
		}
		if !openFraction(t.FastFraction) {
			errs = append(errs, "fast fraction must be in (0,1)")
		}
		if t.TailItems < 0 {
			errs = append(errs, "tail items must be >= 0")
		}
	case TimingLinear:
		if t.PerItem <= 0 {
			errs = append(errs, "per-item duration must be > 0")
		}
	default:
		errs = append(errs, fmt.Sprintf("unknown timing model %q", t.Model))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrTimingConfig, strings.Join(errs, "; "))
	}
	return nil
}

// Planner builds the animation plan for a reel of the given size.
type Planner interface {
	Plan(items int) Plan
}

// Planner returns the planner for t.Model after validating t.
func (t Timing) Planner() (Planner, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if t.Model == TimingLinear {
		return LinearPlanner{ItemHeight: t.ItemHeight, PerItem: t.PerItem, MaxBlur: t.MaxBlur}, nil
	}
	return PhasedPlanner{
		ItemHeight:   t.ItemHeight,
		Duration:     t.Duration,
		FastFraction: t.FastFraction,
		TailItems:    t.TailItems,
		MaxBlur:      t.MaxBlur,
	}, nil
}

func endOffset(items int, h float64) float64 {
	if items < 1 {
		return 0
	}
	return float64(items-1) * h
}

// PhasedPlanner gives a deceleration illusion inside a fixed duration.
type PhasedPlanner struct {
	ItemHeight   float64
	Duration     time.Duration
	FastFraction float64
	TailItems    int
	MaxBlur      float64
}

func (pp PhasedPlanner) Plan(items int) Plan {
	end := endOffset(items, pp.ItemHeight)
	fastItems := items - 1 - pp.TailItems
	if fastItems < 0 {
		fastItems = 0
	}

	kfs := []Keyframe{{At: 0, Offset: 0, Blur: pp.MaxBlur}}
	if fastItems > 0 {
		fastOffset := float64(fastItems) * pp.ItemHeight
		kfs = append(kfs, Keyframe{
			At:     fastShare(fastOffset, end-fastOffset, pp.FastFraction),
			Offset: fastOffset,
			Blur:   pp.MaxBlur,
			Easing: EaseLinear,
		})
	}
	kfs = append(kfs, Keyframe{At: 1, Offset: end, Blur: 0, Easing: EaseOutQuad})

	return Plan{
		StartOffset: 0,
		EndOffset:   end,
		Duration:    pp.Duration,
		Iterations:  1,
		Easing:      EaseLinear,
		Keyframes:   kfs,
		ItemHeight:  pp.ItemHeight,
		Items:       items,
	}
}

// fastShare is the time share of the fast phase. The tail eases out, so it enters
// at twice its average speed; the share is capped where that entry speed equals
// the fast phase speed: fast/At >= 2*tail/(1-At).
func fastShare(fast, tail, limit float64) float64 {
	if tail <= 0 {
		return limit
	}
	return math.Min(limit, fast/(fast+2*tail))
}

// LinearPlanner spends PerItem on every item under one ease-in-out curve.
type LinearPlanner struct {
	ItemHeight float64
	PerItem    time.Duration
	MaxBlur    float64
}

func (lp LinearPlanner) Plan(items int) Plan {
	end := endOffset(items, lp.ItemHeight)
	n := items
	if n < 1 {
		n = 1
	}
	return Plan{
		StartOffset: 0,
		EndOffset:   end,
		Duration:    time.Duration(n) * lp.PerItem,
		Iterations:  1,
		Easing:      EaseInOutCubic,
		Keyframes: []Keyframe{
			{At: 0, Offset: 0, Blur: 0},
			{At: 0.5, Offset: end / 2, Blur: lp.MaxBlur, Easing: EaseLinear},
			{At: 1, Offset: end, Blur: 0, Easing: EaseLinear},
		},
		ItemHeight: lp.ItemHeight,
		Items:      items,
	}
}
