// types.go
package config

// RawConfig is one YAML layer as written on disk.
type RawConfig struct {
	Version      string        `yaml:"version"`
	RemoveWinner *bool         `yaml:"remove_winner,omitempty"`
	Reel         ReelConfig    `yaml:"reel"`
	Timing       *TimingConfig `yaml:"timing,omitempty"`
	Names        []string      `yaml:"names,omitempty"`
	NamesFile    string        `yaml:"names_file,omitempty"`
	Notes        string        `yaml:"notes,omitempty"`
}

type ReelConfig struct {
	Selector   string   `yaml:"selector"`
	ItemHeight *float64 `yaml:"item_height,omitempty"`
}

type TimingConfig struct {
	Model        string   `yaml:"model"` // "phased" | "linear"
	DurationMS   *int     `yaml:"duration_ms,omitempty"`
	FastFraction *float64 `yaml:"fast_fraction,omitempty"`
	TailItems    *int     `yaml:"tail_items,omitempty"`
	PerItemMS    *int     `yaml:"per_item_ms,omitempty"`
	MaxBlur      *float64 `yaml:"max_blur,omitempty"`
}
