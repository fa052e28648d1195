package config

import (
	"fmt"
	"strings"
)

// ValidateRaw checks semantic constraints of a merged RawConfig.
func ValidateRaw(cfg RawConfig) error {
	var errs []string

	if cfg.Reel.ItemHeight != nil && *cfg.Reel.ItemHeight <= 0 {
		errs = append(errs, "reel.item_height must be > 0")
	}

	if tc := cfg.Timing; tc != nil {
		switch tc.Model {
		case "", "phased":
			if tc.DurationMS != nil && *tc.DurationMS <= 0 {
				errs = append(errs, "timing.duration_ms must be > 0 for model=phased")
			}
			if tc.FastFraction != nil && !(*tc.FastFraction > 0 && *tc.FastFraction < 1) {
				errs = append(errs, "timing.fast_fraction must be in (0,1)")
			}
			if tc.TailItems != nil && *tc.TailItems < 0 {
				errs = append(errs, "timing.tail_items must be >= 0")
			}
		case "linear":
			if tc.PerItemMS != nil && *tc.PerItemMS <= 0 {
				errs = append(errs, "timing.per_item_ms must be > 0 for model=linear")
			}
		default:
			errs = append(errs, "timing.model must be one of: phased, linear")
		}
		if tc.MaxBlur != nil && *tc.MaxBlur < 0 {
			errs = append(errs, "timing.max_blur must be >= 0")
		}
	}

	for i, n := range cfg.Names {
		if strings.TrimSpace(n) == "" {
			errs = append(errs, fmt.Sprintf("names[%d] must not be blank", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
