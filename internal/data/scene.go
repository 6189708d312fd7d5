package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scene describes the demo world loaded at startup.
type Scene struct {
	Name       string      `yaml:"name"`
	Bounds     Bounds      `yaml:"bounds"`
	Prototypes []Prototype `yaml:"prototypes"`
}

// Bounds is the rectangle entities move within.
type Bounds struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Prototype is one entity template, spawned Count times.
type Prototype struct {
	Name     string        `yaml:"name"`
	Count    int           `yaml:"count"`
	Position *PositionSpec `yaml:"position"`
	Velocity *VelocitySpec `yaml:"velocity"`
	Health   *HealthSpec   `yaml:"health"`
	Sprite   *SpriteSpec   `yaml:"sprite"`
}

type PositionSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type VelocitySpec struct {
	DX float64 `yaml:"dx"`
	DY float64 `yaml:"dy"`
}

type HealthSpec struct {
	Max   int32 `yaml:"max"`
	Decay int32 `yaml:"decay"`
}

type SpriteSpec struct {
	Texture   string `yaml:"texture"`
	Material  string `yaml:"material"`
	Triangles int32  `yaml:"triangles"`
}

// LoadScene reads and validates a scene file.
func LoadScene(path string) (*Scene, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	var scene Scene
	if err := yaml.Unmarshal(raw, &scene); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if err := scene.Validate(); err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return &scene, nil
}

// Validate checks the scene for values that would break spawning.
func (s *Scene) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("missing name")
	}
	if s.Bounds.Width <= 0 || s.Bounds.Height <= 0 {
		return fmt.Errorf("bounds must be positive, got %gx%g", s.Bounds.Width, s.Bounds.Height)
	}
	for i, p := range s.Prototypes {
		if p.Name == "" {
			return fmt.Errorf("prototype %d: missing name", i)
		}
		if p.Count <= 0 {
			return fmt.Errorf("prototype %s: count must be positive, got %d", p.Name, p.Count)
		}
		if p.Health != nil && p.Health.Max <= 0 {
			return fmt.Errorf("prototype %s: health max must be positive", p.Name)
		}
	}
	return nil
}

// Count returns the total number of entities the scene spawns.
func (s *Scene) Count() int {
	n := 0
	for _, p := range s.Prototypes {
		n += p.Count
	}
	return n
}
