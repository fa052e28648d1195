package picker

import "errors"

var (
	// ErrEmptyPool is returned when a spin is requested with no names.
	ErrEmptyPool = errors.New("name pool is empty")
	// ErrMissingReel is returned when the reel selector did not resolve or the reel was detached.
	ErrMissingReel = errors.New("reel container not found")
	// ErrTimingConfig wraps every invalid timing parameter.
	ErrTimingConfig = errors.New("invalid timing config")
)
