package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Paths locates the config layers under a base directory.
type Paths struct {
	BaseDir string // e.g. /etc/name-reel
}

func (p Paths) DefaultPath() string {
	return filepath.Join(p.BaseDir, "picker", "default.yaml")
}
func (p Paths) ProfilePath(profile string) string {
	return filepath.Join(p.BaseDir, "picker", "profiles", profile+".yaml")
}

// Loader reads YAML layers and merges default → profile.
type Loader struct {
	paths Paths

	mu    sync.RWMutex
	cache map[string]RawConfig // key: profile name, "" for default only
}

func NewLoader(baseDir string) *Loader {
	return &Loader{
		paths: Paths{BaseDir: baseDir},
		cache: make(map[string]RawConfig),
	}
}

func (l *Loader) Paths() Paths { return l.paths }

// LoadMerged returns default ← profile. The profile file is optional; the
// default file is optional too, in which case the built-in defaults apply later.
func (l *Loader) LoadMerged(profile string) (RawConfig, error) {
	l.mu.RLock()
	if cfg, ok := l.cache[profile]; ok {
		l.mu.RUnlock()
		return cfg, nil
	}
	l.mu.RUnlock()

	defCfg, err := readYAML(l.paths.DefaultPath())
	if err != nil {
		return RawConfig{}, fmt.Errorf("read default: %w", err)
	}
	merged := defCfg
	if profile != "" {
		profCfg, err := readYAML(l.paths.ProfilePath(profile))
		if err != nil {
			return RawConfig{}, fmt.Errorf("read profile %s: %w", profile, err)
		}
		merged = mergeRaw(defCfg, profCfg)
	}
	merged.NamesFile = l.resolvePath(merged.NamesFile)

	l.mu.Lock()
	l.cache[profile] = merged
	l.mu.Unlock()
	return merged, nil
}

// Invalidate clears the cache. Call after a watched file changed.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]RawConfig)
}

// resolvePath makes relative names files relative to the base directory.
func (l *Loader) resolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(l.paths.BaseDir, p)
}

// readYAML loads one layer. Missing files yield a zero config and no error.
func readYAML(path string) (RawConfig, error) {
	var cfg RawConfig
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawConfig{}, nil
		}
		return RawConfig{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return RawConfig{}, err
	}
	return cfg, nil
}

// mergeRaw overlays b onto a: set scalars and pointers in b win, slices in b replace.
func mergeRaw(a, b RawConfig) RawConfig {
	out := a

	if b.Version != "" {
		out.Version = b.Version
	}
	if b.Notes != "" {
		out.Notes = b.Notes
	}
	if b.RemoveWinner != nil {
		out.RemoveWinner = b.RemoveWinner
	}
	if len(b.Names) > 0 {
		out.Names = append([]string(nil), b.Names...)
	}
	if b.NamesFile != "" {
		out.NamesFile = b.NamesFile
	}

	// reel
	if b.Reel.Selector != "" {
		out.Reel.Selector = b.Reel.Selector
	}
	if b.Reel.ItemHeight != nil {
		out.Reel.ItemHeight = b.Reel.ItemHeight
	}

	// timing
	switch {
	case out.Timing == nil && b.Timing != nil:
		c := *b.Timing
		out.Timing = &c
	case out.Timing != nil && b.Timing != nil:
		c := *out.Timing
		if b.Timing.Model != "" {
			c.Model = b.Timing.Model
		}
		if b.Timing.DurationMS != nil {
			c.DurationMS = b.Timing.DurationMS
		}
		if b.Timing.FastFraction != nil {
			c.FastFraction = b.Timing.FastFraction
		}
		if b.Timing.TailItems != nil {
			c.TailItems = b.Timing.TailItems
		}
		if b.Timing.PerItemMS != nil {
			c.PerItemMS = b.Timing.PerItemMS
		}
		if b.Timing.MaxBlur != nil {
			c.MaxBlur = b.Timing.MaxBlur
		}
		out.Timing = &c
	}

	return out
}
