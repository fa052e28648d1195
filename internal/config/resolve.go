// resolve.go
package config

import (
	"fmt"
	"time"

	"github.com/xtding233/name-reel/internal/picker"
)

// DefaultSelector is used when no layer names a reel.
const DefaultSelector = "#reel"

// Overrides carries command-line or request overrides applied after the YAML layers.
type Overrides struct {
	RemoveWinner *bool
	Selector     *string
	Model        *string
	DurationMS   *int
	PerItemMS    *int
}

// Settings is the resolved input for picker.New plus the initial pool.
type Settings struct {
	Selector     string
	RemoveWinner bool
	Timing       picker.Timing
	Names        []string
	NamesFile    string
	Version      string // effective config version for tracing
}

// Resolve applies o to cfg, validates, and converts to picker settings.
// Names come from cfg.Names, or from cfg.NamesFile when the list is empty.
func Resolve(cfg RawConfig, o Overrides) (Settings, error) {
	if o.RemoveWinner != nil {
		cfg.RemoveWinner = o.RemoveWinner
	}
	if o.Selector != nil {
		cfg.Reel.Selector = *o.Selector
	}
	if o.Model != nil || o.DurationMS != nil || o.PerItemMS != nil {
		tc := TimingConfig{}
		if cfg.Timing != nil {
			tc = *cfg.Timing
		}
		if o.Model != nil {
			tc.Model = *o.Model
		}
		if o.DurationMS != nil {
			tc.DurationMS = o.DurationMS
		}
		if o.PerItemMS != nil {
			tc.PerItemMS = o.PerItemMS
		}
		cfg.Timing = &tc
	}
	if err := ValidateRaw(cfg); err != nil {
		return Settings{}, err
	}

	s := Settings{
		Selector:     cfg.Reel.Selector,
		RemoveWinner: true,
		Timing:       picker.DefaultTiming(),
		Names:        append([]string(nil), cfg.Names...),
		NamesFile:    cfg.NamesFile,
		Version:      cfg.Version,
	}
	if s.Selector == "" {
		s.Selector = DefaultSelector
	}
	if cfg.RemoveWinner != nil {
		s.RemoveWinner = *cfg.RemoveWinner
	}
	if cfg.Reel.ItemHeight != nil {
		s.Timing.ItemHeight = *cfg.Reel.ItemHeight
	}
	if tc := cfg.Timing; tc != nil {
		if tc.Model != "" {
			s.Timing.Model = picker.TimingModel(tc.Model)
		}
		if tc.DurationMS != nil {
			s.Timing.Duration = time.Duration(*tc.DurationMS) * time.Millisecond
		}
		if tc.FastFraction != nil {
			s.Timing.FastFraction = *tc.FastFraction
		}
		if tc.TailItems != nil {
			s.Timing.TailItems = *tc.TailItems
		}
		if tc.PerItemMS != nil {
			s.Timing.PerItem = time.Duration(*tc.PerItemMS) * time.Millisecond
		}
		if tc.MaxBlur != nil {
			s.Timing.MaxBlur = *tc.MaxBlur
		}
	}
	if err := s.Timing.Validate(); err != nil {
		return Settings{}, err
	}

	if len(s.Names) == 0 && s.NamesFile != "" {
		names, err := ReadNames(s.NamesFile)
		if err != nil {
			return Settings{}, fmt.Errorf("read names: %w", err)
		}
		s.Names = names
	}
	return s, nil
}
