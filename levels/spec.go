package levels

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Spec is a level specification.
type Spec struct {
	Name      string        `yaml:"name"`
	Player    PlayerSpec    `yaml:"player"`
	Obstacles []RectSpec    `yaml:"obstacles"`
	Platforms PlatformsSpec `yaml:"platforms"`
}

// PlayerSpec holds the player's spawn point and tuning values.
type PlayerSpec struct {
	Spawn       PointSpec `yaml:"spawn"`
	Size        PointSpec `yaml:"size"`
	Speed       float64   `yaml:"speed"`
	JumpImpulse float64   `yaml:"jump_impulse"`
	MaxHealth   float64   `yaml:"max_health"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type RectSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// PlatformsSpec names either a layout script or literal platform rows.
// When both are present the script wins.
type PlatformsSpec struct {
	Script string     `yaml:"script,omitempty"`
	Rows   []Platform `yaml:"rows,omitempty"`
}

// Platform describes one moving platform: its starting rect plus the travel
// segment and speed.
type Platform struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	W      float64 `yaml:"w"`
	H      float64 `yaml:"h"`
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	EndX   float64 `yaml:"end_x"`
	EndY   float64 `yaml:"end_y"`
	Speed  float64 `yaml:"speed"`
}

// LoadSpec loads and validates a level spec by name.
func LoadSpec(name string) (*Spec, error) {
	data, err := Load(name)
	if err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", name, err)
	}

	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", name, err)
	}
	if err := spec.validate(); err != nil {
		return nil, fmt.Errorf("levels: %s: %w", name, err)
	}
	return &spec, nil
}

func (s *Spec) validate() error {
	if s.Player.Size.X <= 0 || s.Player.Size.Y <= 0 {
		return fmt.Errorf("player size must be positive, got %gx%g", s.Player.Size.X, s.Player.Size.Y)
	}
	if s.Player.Speed < 0 {
		return fmt.Errorf("player speed must not be negative, got %g", s.Player.Speed)
	}
	if s.Player.MaxHealth <= 0 {
		return fmt.Errorf("player max health must be positive, got %g", s.Player.MaxHealth)
	}
	for i, row := range s.Platforms.Rows {
		if row.Speed <= 0 {
			return fmt.Errorf("platform row %d: speed must be positive, got %g", i, row.Speed)
		}
	}
	return nil
}

// BuildPlatforms returns the level's moving platforms, running the layout
// script with the given seed when one is configured.
func (s *Spec) BuildPlatforms(seed int64) ([]Platform, error) {
	if s.Platforms.Script != "" {
		return runLayoutScript(s.Platforms.Script, seed)
	}
	return s.Platforms.Rows, nil
}
