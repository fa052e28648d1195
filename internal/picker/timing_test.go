package picker_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/xtding233/name-reel/internal/picker"
)

func TestPhasedPlan(t *testing.T) {
	tm := picker.DefaultTiming()
	pl, err := tm.Planner()
	if err != nil {
		t.Fatal(err)
	}
	plan := pl.Plan(10)
	if plan.EndOffset != 9*tm.ItemHeight {
		t.Fatalf("end offset=%v want %v", plan.EndOffset, 9*tm.ItemHeight)
	}
	if plan.Duration != tm.Duration || plan.Iterations != 1 {
		t.Fatalf("duration=%v iterations=%d", plan.Duration, plan.Iterations)
	}
	if len(plan.Keyframes) != 3 {
		t.Fatalf("expected fast and tail phases, got %d keyframes", len(plan.Keyframes))
	}
	fast := plan.Keyframes[1]
	if fast.At <= 0 || fast.At > tm.FastFraction || fast.Offset != float64(10-1-tm.TailItems)*tm.ItemHeight {
		t.Fatalf("fast phase keyframe %+v", fast)
	}
	if fast.Blur != tm.MaxBlur {
		t.Fatalf("fast phase should be fully blurred, got %v", fast.Blur)
	}
	if f := plan.Sample(plan.Duration); f.Offset != plan.EndOffset || f.Blur != 0 {
		t.Fatalf("end frame %+v", f)
	}
}

func TestPhasedPlanDecelerates(t *testing.T) {
	tm := picker.DefaultTiming()
	pl, _ := tm.Planner()
	secs := tm.Duration.Seconds()
	for _, n := range []int{5, 8, 10, 40} {
		plan := pl.Plan(n)
		if len(plan.Keyframes) != 3 {
			t.Fatalf("n=%d: expected fast and tail phases", n)
		}
		fast, end := plan.Keyframes[1], plan.Keyframes[2]
		fastSpeed := fast.Offset / (fast.At * secs)
		tailAvg := (end.Offset - fast.Offset) / ((1 - fast.At) * secs)
		// easeOutQuad enters the tail at twice its average speed
		tailEntry := 2 * tailAvg
		if fastSpeed <= tailAvg || fastSpeed < tailEntry*(1-1e-9) {
			t.Errorf("n=%d: fast=%.0fpx/s tailAvg=%.0fpx/s tailEntry=%.0fpx/s", n, fastSpeed, tailAvg, tailEntry)
		}
	}
	// long reels keep the configured share
	if at := pl.Plan(40).Keyframes[1].At; at != tm.FastFraction {
		t.Errorf("n=40: fast share %v, want %v", at, tm.FastFraction)
	}
}

func TestPhasedPlanShortReel(t *testing.T) {
	pl, _ := picker.DefaultTiming().Planner()
	plan := pl.Plan(2)
	if len(plan.Keyframes) != 2 {
		t.Fatalf("reel shorter than tail should skip the fast phase, got %d keyframes", len(plan.Keyframes))
	}
	one := pl.Plan(1)
	if one.EndOffset != 0 || one.Final().Offset != 0 {
		t.Fatalf("single item must not move: %+v", one.Final())
	}
}

func TestLinearPlanScalesWithItems(t *testing.T) {
	tm := picker.DefaultTiming()
	tm.Model = picker.TimingLinear
	tm.PerItem = 50 * time.Millisecond
	pl, err := tm.Planner()
	if err != nil {
		t.Fatal(err)
	}
	a, b := pl.Plan(4), pl.Plan(8)
	if a.Duration != 200*time.Millisecond || b.Duration != 400*time.Millisecond {
		t.Fatalf("durations %v %v", a.Duration, b.Duration)
	}
	if b.Easing != picker.EaseInOutCubic {
		t.Fatalf("linear model should ease the whole motion, got %q", b.Easing)
	}
	mid := b.Sample(b.Duration / 2)
	if math.Abs(mid.Offset-b.EndOffset/2) > 1e-9 || mid.Blur != tm.MaxBlur {
		t.Fatalf("mid frame %+v", mid)
	}
}

func TestPlanSampleMonotonic(t *testing.T) {
	for _, model := range []picker.TimingModel{picker.TimingPhased, picker.TimingLinear} {
		tm := picker.DefaultTiming()
		tm.Model = model
		pl, _ := tm.Planner()
		plan := pl.Plan(12)
		prev := -1.0
		for i := 0; i <= 100; i++ {
			f := plan.Sample(plan.Duration * time.Duration(i) / 100)
			if f.Offset < prev {
				t.Fatalf("%s: offset went backwards at step %d", model, i)
			}
			prev = f.Offset
		}
		if plan.ItemAt(plan.Final()) != 11 {
			t.Fatalf("%s: final frame should show the last item", model)
		}
		if plan.Sample(2*plan.Duration) != plan.Final() {
			t.Fatalf("%s: sampling past the end should rest on the final frame", model)
		}
	}
}

func TestTimingValidate(t *testing.T) {
	cases := []picker.Timing{
		{Model: picker.TimingPhased, ItemHeight: 0, Duration: time.Second, FastFraction: 0.5},
		{Model: picker.TimingPhased, ItemHeight: 10, Duration: 0, FastFraction: 0.5},
		{Model: picker.TimingPhased, ItemHeight: 10, Duration: time.Second, FastFraction: 1},
		{Model: picker.TimingPhased, ItemHeight: 10, Duration: time.Second, FastFraction: math.NaN()},
		{Model: picker.TimingLinear, ItemHeight: 10},
		{Model: "bounce", ItemHeight: 10},
	}
	for i, tm := range cases {
		if err := tm.Validate(); !errors.Is(err, picker.ErrTimingConfig) {
			t.Errorf("case %d: expected ErrTimingConfig, got %v", i, err)
		}
	}
	if err := picker.DefaultTiming().Validate(); err != nil {
		t.Fatalf("default timing invalid: %v", err)
	}
}

func TestEasingEndpoints(t *testing.T) {
	for _, e := range []picker.Easing{picker.EaseLinear, picker.EaseOutQuad, picker.EaseInOutCubic, ""} {
		if e.Apply(0) != 0 || e.Apply(1) != 1 {
			t.Errorf("%q must map 0->0 and 1->1", e)
		}
		if e.Apply(-1) != 0 || e.Apply(2) != 1 {
			t.Errorf("%q must clamp", e)
		}
	}
	if picker.EaseOutQuad.Apply(0.5) <= 0.5 {
		t.Errorf("easeOutQuad should lead linear at t=0.5")
	}
}
