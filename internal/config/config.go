// Package config reads the host configuration file.
package config

import (
	"github.com/pkg/errors"
	"gopkg.in/gcfg.v1"

	"github.com/olivierh59500/particle-life-torus/life"
)

// ExampleFile documents every recognized option
const ExampleFile = `[window]
width  = 800
height = 600
title  = Particle Life
tps    = 60

[simulation]
particles      = 1000
types          = 6
radius         = 60
force-scale    = 5
beta           = 0.2
friction       = 0.94
cell-size      = 70
position-scale = 100
# 0 uses every CPU, 1 keeps the force pass on the main goroutine
workers        = 0
wrap-neighbors = false
# uniform | perlin
placement      = uniform
# 0 seeds from the clock
seed           = 0
`

// WindowConfig is the [window] section
type WindowConfig struct {
	Width  int
	Height int
	Title  string
	TPS    int `gcfg:"tps"`
}

// SimulationConfig is the [simulation] section
type SimulationConfig struct {
	Particles     int
	Types         int
	Radius        float64
	ForceScale    float64 `gcfg:"force-scale"`
	Beta          float64
	Friction      float64
	CellSize      float64 `gcfg:"cell-size"`
	PositionScale float64 `gcfg:"position-scale"`
	Workers       int
	WrapNeighbors bool `gcfg:"wrap-neighbors"`
	Placement     string
	Seed          int64
}

// Config is the host configuration file
type Config struct {
	Window     WindowConfig
	Simulation SimulationConfig
}

// Default matches ExampleFile
func Default() Config {
	p := life.DefaultParams()
	return Config{
		Window: WindowConfig{Width: 800, Height: 600, Title: "Particle Life", TPS: 60},
		Simulation: SimulationConfig{
			Particles:     p.Particles,
			Types:         p.Types,
			Radius:        p.Radius,
			ForceScale:    p.ForceScale,
			Beta:          p.Beta,
			Friction:      p.Friction,
			CellSize:      p.CellSize,
			PositionScale: p.PositionScale,
			Placement:     p.Placement.String(),
		},
	}
}

// Read overlays the file at fname on the defaults
func Read(fname string) (Config, error) {
	cfg := Default()
	if err := gcfg.ReadFileInto(&cfg, fname); err != nil {
		return Config{}, errors.Wrapf(err, "reading %s", fname)
	}
	return cfg, cfg.check()
}

// Parse is Read for in-memory text
func Parse(text string) (Config, error) {
	cfg := Default()
	if err := gcfg.ReadStringInto(&cfg, text); err != nil {
		return Config{}, errors.Wrap(err, "parsing config")
	}
	return cfg, cfg.check()
}

func (cfg Config) check() error {
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return errors.Wrapf(life.ErrDegenerateSurface, "window %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.TPS <= 0 {
		return errors.Wrapf(life.ErrInvalidConfig, "tps %d must be positive", cfg.Window.TPS)
	}
	_, err := cfg.Params()
	return err
}

// Params converts the [simulation] section into validated life.Params
func (cfg Config) Params() (life.Params, error) {
	s := cfg.Simulation
	placement, err := life.ParsePlacement(s.Placement)
	if err != nil {
		return life.Params{}, err
	}
	p := life.Params{
		Particles:     s.Particles,
		Types:         s.Types,
		Radius:        s.Radius,
		ForceScale:    s.ForceScale,
		Beta:          s.Beta,
		Friction:      s.Friction,
		CellSize:      s.CellSize,
		DT:            1 / float64(cfg.Window.TPS),
		PositionScale: s.PositionScale,
		Workers:       s.Workers,
		WrapNeighbors: s.WrapNeighbors,
		Placement:     placement,
	}
	return p, p.Validate()
}
