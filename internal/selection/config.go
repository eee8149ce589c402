package selection

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds the tuning values for the selection engine. The source
// material carried these as constants that drifted between grid variants;
// here they are configuration, loaded from JSON the same way boards are.
// All durations are in seconds of game time.
type Config struct {
	// ProximityFraction scales the cell radius for the center-proximity
	// gate: a hit registers only when its distance from the cell center
	// is at most CellRadius * ProximityFraction.
	ProximityFraction float64 `json:"proximity_fraction"`

	// MinAutoSubmitLen is the path length at which the auto-submit
	// debounce starts running during combo play.
	MinAutoSubmitLen int `json:"min_auto_submit_len"`

	// AutoSubmitDelay is the quiet period before an auto-submission.
	AutoSubmitDelay float64 `json:"auto_submit_delay"`

	// Fade timing. The combo variants apply when the combo level is
	// above zero at submit time: a longer hold and a slower per-cell step.
	FadeHold           float64 `json:"fade_hold"`
	FadeCellDelay      float64 `json:"fade_cell_delay"`
	FadeHoldCombo      float64 `json:"fade_hold_combo"`
	FadeCellDelayCombo float64 `json:"fade_cell_delay_combo"`

	// Dead-zone distances in pixels, per input device.
	MouseDeadzone float64 `json:"mouse_deadzone"`
	TouchDeadzone float64 `json:"touch_deadzone"`
}

// DefaultConfig returns the default tuning. Where the source variants
// disagreed (proximity 0.75 vs 0.85) the most permissive value wins.
func DefaultConfig() *Config {
	return &Config{
		ProximityFraction:  0.85,
		MinAutoSubmitLen:   3,
		AutoSubmitDelay:    0.5,
		FadeHold:           0.10,
		FadeCellDelay:      0.04,
		FadeHoldCombo:      0.35,
		FadeCellDelayCombo: 0.08,
		MouseDeadzone:      4,
		TouchDeadzone:      10,
	}
}

// LoadConfig reads tuning from a JSON file. Fields missing from the file
// keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file: %w", err)
	}
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tuning file: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.ProximityFraction <= 0 || c.ProximityFraction > 1 {
		return fmt.Errorf("proximity_fraction %v out of range (0, 1]", c.ProximityFraction)
	}
	if c.MinAutoSubmitLen < 2 {
		return fmt.Errorf("min_auto_submit_len %d must be at least 2", c.MinAutoSubmitLen)
	}
	if c.AutoSubmitDelay <= 0 {
		return fmt.Errorf("auto_submit_delay %v must be positive", c.AutoSubmitDelay)
	}
	if c.FadeHold < 0 || c.FadeCellDelay < 0 || c.FadeHoldCombo < 0 || c.FadeCellDelayCombo < 0 {
		return fmt.Errorf("fade timings must not be negative")
	}
	if c.MouseDeadzone < 0 || c.TouchDeadzone < 0 {
		return fmt.Errorf("dead-zone distances must not be negative")
	}
	return nil
}
