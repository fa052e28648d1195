package picker

import (
	"math"
	"time"
)

// Frame is the reel's visual state at one instant.
type Frame struct {
	Offset float64 // pixels scrolled from the first item
	Blur   float64 // motion blur radius in pixels
}

// Keyframe pins the reel state at a fraction of the plan's duration.
type Keyframe struct {
	At     float64 // 0..1 of Duration
	Offset float64
	Blur   float64
	Easing Easing // curve used when arriving at this keyframe from the previous one
}

// Plan is one timed reel transition. It always runs a single iteration.
type Plan struct {
	StartOffset float64
	EndOffset   float64
	Duration    time.Duration
	Iterations  int
	Easing      Easing // applied to overall progress before keyframe lookup
	Keyframes   []Keyframe

	ItemHeight float64
	Items      int
}

// Progress returns overall linear progress in [0,1] after elapsed.
func (p Plan) Progress(elapsed time.Duration) float64 {
	if p.Duration <= 0 {
		return 1
	}
	t := float64(elapsed) / float64(p.Duration)
	return math.Max(0, math.Min(1, t))
}

// Sample interpolates the reel state after elapsed.
func (p Plan) Sample(elapsed time.Duration) Frame {
	kfs := p.Keyframes
	if len(kfs) == 0 {
		return p.Final()
	}
	t := p.Easing.Apply(p.Progress(elapsed))
	if t <= kfs[0].At {
		return Frame{Offset: kfs[0].Offset, Blur: kfs[0].Blur}
	}
	for i := 1; i < len(kfs); i++ {
		a, b := kfs[i-1], kfs[i]
		if t > b.At {
			continue
		}
		span := b.At - a.At
		if span <= 0 {
			return Frame{Offset: b.Offset, Blur: b.Blur}
		}
		u := b.Easing.Apply((t - a.At) / span)
		return Frame{
			Offset: a.Offset + (b.Offset-a.Offset)*u,
			Blur:   a.Blur + (b.Blur-a.Blur)*u,
		}
	}
	last := kfs[len(kfs)-1]
	return Frame{Offset: last.Offset, Blur: last.Blur}
}

// Start is the frame the reel shows when the plan begins.
func (p Plan) Start() Frame { return p.Sample(0) }

// Final is the at-rest frame: parked on the last item, no blur.
func (p Plan) Final() Frame { return Frame{Offset: p.EndOffset} }

// ItemAt returns the index of the item closest to the top of the window for f.
func (p Plan) ItemAt(f Frame) int {
	if p.Items <= 0 {
		return -1
	}
	if p.ItemHeight <= 0 {
		return p.Items - 1
	}
	i := int(math.Round(f.Offset / p.ItemHeight))
	if i < 0 {
		i = 0
	}
	if i >= p.Items {
		i = p.Items - 1
	}
	return i
}
