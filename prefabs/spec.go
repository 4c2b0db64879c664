package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// BoardSpec configures the playfield dimensions.
type BoardSpec struct {
	Lanes     int     `yaml:"lanes"`
	Rows      int     `yaml:"rows"`
	BlockSize float64 `yaml:"block_size"`
}

// PhysicsSpec tunes the rigid-body simulation. Forces are in pixel units.
type PhysicsSpec struct {
	Gravity        float64 `yaml:"gravity"`
	BlockMass      float64 `yaml:"block_mass"`
	LinearDamping  float64 `yaml:"linear_damping"`
	Friction       float64 `yaml:"friction"`
	Elasticity     float64 `yaml:"elasticity"`
	MovementForce  float64 `yaml:"movement_force"`
	RotationForce  float64 `yaml:"rotation_force"`
	DropForce      float64 `yaml:"drop_force"`
	SleepThreshold float64 `yaml:"sleep_threshold"`
	Iterations     int     `yaml:"iterations"`
}

// Config is the whole game tuning spec, loaded from config.yaml.
type Config struct {
	Board   BoardSpec         `yaml:"board"`
	Physics PhysicsSpec       `yaml:"physics"`
	Colors  map[string]string `yaml:"colors"`
}

// LoadSpec loads and unmarshals an embedded YAML spec.
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

// LoadConfig loads the embedded game config with defaults applied.
func LoadConfig() (*Config, error) {
	cfg, err := LoadSpec[Config]("config.yaml")
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// ParseConfig parses a config from raw YAML, for hot reload from disk.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Board.Lanes <= 0 {
		c.Board.Lanes = 10
	}
	if c.Board.Rows <= 0 {
		c.Board.Rows = 20
	}
	if c.Board.BlockSize <= 0 {
		c.Board.BlockSize = 30
	}
	if c.Physics.Gravity <= 0 {
		c.Physics.Gravity = 300
	}
	if c.Physics.BlockMass <= 0 {
		c.Physics.BlockMass = 1
	}
	if c.Physics.LinearDamping <= 0 || c.Physics.LinearDamping > 1 {
		c.Physics.LinearDamping = 0.9
	}
	if c.Physics.Friction <= 0 {
		c.Physics.Friction = 0.7
	}
	if c.Physics.Elasticity < 0 {
		c.Physics.Elasticity = 0
	}
	if c.Physics.MovementForce <= 0 {
		c.Physics.MovementForce = 600
	}
	if c.Physics.RotationForce <= 0 {
		c.Physics.RotationForce = 500
	}
	if c.Physics.DropForce <= 0 {
		c.Physics.DropForce = 900
	}
	if c.Physics.SleepThreshold <= 0 {
		c.Physics.SleepThreshold = 0.5
	}
	if c.Physics.Iterations <= 0 {
		c.Physics.Iterations = 20
	}
}

// Color returns the configured color override for a piece kind name, if any.
func (c *Config) Color(kindName string) (color.NRGBA, bool) {
	if c == nil || c.Colors == nil {
		return color.NRGBA{}, false
	}
	hex, ok := c.Colors[kindName]
	if !ok {
		return color.NRGBA{}, false
	}
	parsed, err := ParseHexColor(hex)
	if err != nil {
		return color.NRGBA{}, false
	}
	return parsed, true
}

// ParseHexColor parses "#rgb" or "#rrggbb".
func ParseHexColor(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 3:
		var out [3]uint8
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseUint(s[i:i+1], 16, 8)
			if err != nil {
				return color.NRGBA{}, fmt.Errorf("prefabs: bad hex color %q: %w", s, err)
			}
			out[i] = uint8(v * 17)
		}
		return color.NRGBA{R: out[0], G: out[1], B: out[2], A: 0xff}, nil
	case 6:
		var out [3]uint8
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseUint(s[2*i:2*i+2], 16, 8)
			if err != nil {
				return color.NRGBA{}, fmt.Errorf("prefabs: bad hex color %q: %w", s, err)
			}
			out[i] = uint8(v)
		}
		return color.NRGBA{R: out[0], G: out[1], B: out[2], A: 0xff}, nil
	default:
		return color.NRGBA{}, fmt.Errorf("prefabs: bad hex color %q", s)
	}
}
