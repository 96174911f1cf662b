package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// WorldSpec holds the constants shared by a whole session.
type WorldSpec struct {
	Gravity float64 `yaml:"gravity"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Variant string  `yaml:"variant"`
	HUD     HUDSpec `yaml:"hud"`
}

type HUDSpec struct {
	World        string `yaml:"world"`
	Time         int    `yaml:"time"`
	Lives        int    `yaml:"lives"`
	GameOverTime int    `yaml:"game_over_time"`
	CountBonus   int    `yaml:"count_bonus"`
}

// LoadWorldSpec reads world.yaml and fills unset values with the defaults.
func LoadWorldSpec(filename string) (WorldSpec, error) {
	if filename == "" {
		filename = "world.yaml"
	}
	spec, err := LoadSpec[WorldSpec](filename)
	if err != nil {
		return WorldSpec{}, err
	}
	spec.applyDefaults()
	return spec, nil
}

func (s *WorldSpec) applyDefaults() {
	if s.Gravity == 0 {
		s.Gravity = 1
	}
	if s.Width <= 0 {
		s.Width = 32 * 48
	}
	if s.Height <= 0 {
		s.Height = 15 * 48
	}
	if s.Variant == "" {
		s.Variant = "normal"
	}
	if s.HUD.World == "" {
		s.HUD.World = "1-1"
	}
	if s.HUD.Time <= 0 {
		s.HUD.Time = 400
	}
	if s.HUD.Lives <= 0 {
		s.HUD.Lives = 3
	}
	if s.HUD.GameOverTime <= 0 {
		s.HUD.GameOverTime = 240
	}
	if s.HUD.CountBonus <= 0 {
		s.HUD.CountBonus = 50
	}
}
