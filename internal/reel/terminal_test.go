package reel_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/xtding233/name-reel/internal/picker"
	"github.com/xtding233/name-reel/internal/reel"
)

// syncBuffer guards writes from the animation goroutine.
type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

func TestTerminalAnimate(t *testing.T) {
	fc := clockwork.NewFakeClock()
	out := &syncBuffer{}
	term := reel.NewTerminal(out, fc, 10*time.Millisecond)
	term.Mount([]string{"Ann", "Ben", "Cal"})

	plan := picker.LinearPlanner{ItemHeight: 20, PerItem: 10 * time.Millisecond, MaxBlur: 4}.Plan(3)
	anim := term.Animate(plan)
	fc.Advance(plan.Duration + 10*time.Millisecond)

	select {
	case <-anim.Finished():
	case <-time.After(2 * time.Second):
		t.Fatal("animation did not finish")
	}
	anim.Finish()
	term.TrimToLast()

	s := out.String()
	if !strings.Contains(s, "Ann") {
		t.Fatalf("start frame not drawn: %q", s)
	}
	if !strings.HasSuffix(s, "> Cal\x1b[0m\n") {
		t.Fatalf("winner line missing: %q", s)
	}
	if items := term.Items(); len(items) != 1 || items[0] != "Cal" {
		t.Fatalf("items=%v", items)
	}
}

func TestTerminalDetachedWithoutWriter(t *testing.T) {
	if reel.NewTerminal(nil, nil, 0).Attached() {
		t.Fatal("terminal without a writer should report detached")
	}
}
