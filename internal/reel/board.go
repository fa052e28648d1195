package reel

import (
	"sync"

	"github.com/xtding233/name-reel/internal/picker"
)

// Board maps selectors to mounted reels.
type Board struct {
	mu    sync.RWMutex
	reels map[string]picker.Reel
}

func NewBoard() *Board {
	return &Board{reels: make(map[string]picker.Reel)}
}

// Add mounts r under selector, replacing any reel already there.
func (b *Board) Add(selector string, r picker.Reel) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reels[selector] = r
}

func (b *Board) Remove(selector string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.reels, selector)
}

// Lookup implements picker.Surface.
func (b *Board) Lookup(selector string) picker.Reel {
	b.mu.RLock()
	defer b.mu.RUnlock()
	r, ok := b.reels[selector]
	if !ok {
		return nil
	}
	return r
}
