package config

import (
	"os"
	"time"

	"github.com/jonboulle/clockwork"
)

// FileWatcher polls modification times and calls onChange with each path that changed.
type FileWatcher struct {
	Paths    []string
	Interval time.Duration

	clock     clockwork.Clock
	onChange  func(string)
	stopCh    chan struct{}
	lastMTime map[string]time.Time
}

// NewFileWatcher polls paths every interval on clock (nil => wall clock).
func NewFileWatcher(paths []string, interval time.Duration, clock clockwork.Clock, onChange func(string)) *FileWatcher {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &FileWatcher{
		Paths:     paths,
		Interval:  interval,
		clock:     clock,
		onChange:  onChange,
		stopCh:    make(chan struct{}),
		lastMTime: make(map[string]time.Time),
	}
}

// Start records the current mtimes, then polls in a goroutine.
func (w *FileWatcher) Start() {
	w.scanAll(true)
	ticker := w.clock.NewTicker(w.Interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.Chan():
				w.scanAll(false)
			case <-w.stopCh:
				return
			}
		}
	}()
}

func (w *FileWatcher) Stop() {
	close(w.stopCh)
}

func (w *FileWatcher) scanAll(prime bool) {
	for _, p := range w.Paths {
		fi, err := os.Stat(p)
		if err != nil {
			// missing for now; picked up once it appears
			continue
		}
		mt := fi.ModTime()
		last, ok := w.lastMTime[p]
		w.lastMTime[p] = mt
		if prime {
			continue
		}
		if (!ok || mt.After(last)) && w.onChange != nil {
			w.onChange(p)
		}
	}
}
