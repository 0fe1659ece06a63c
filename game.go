package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivierh59500/particle-life-torus/internal/config"
	"github.com/olivierh59500/particle-life-torus/life"
)

// ParticleSize is the drawn radius of a particle in pixels
const ParticleSize = 2.0

// Game drives a life.Simulation from the Ebitengine loop: Update ticks it,
// Draw renders the snapshot, Layout forwards window resizes
type Game struct {
	sim    *life.Simulation
	params life.Params
	rng    *rand.Rand
	dt     float64

	Paused    bool
	ShowStats bool

	points []life.Point // Reused snapshot buffer
	colors []color.RGBA
}

// NewGame creates the first simulation from cfg
func NewGame(cfg config.Config) (*Game, error) {
	params, err := cfg.Params()
	if err != nil {
		return nil, err
	}
	g := &Game{
		params: params,
		rng:    rand.New(rand.NewSource(cfg.Simulation.Seed)),
		dt:     params.DT,
		colors: make([]color.RGBA, params.Types),
	}
	for t := range g.colors {
		g.colors[t] = typeColor(t, params.Types)
	}
	if err := g.reseed(float64(cfg.Window.Width), float64(cfg.Window.Height)); err != nil {
		return nil, err
	}
	return g, nil
}

// reseed replaces the simulation with a fresh one: new positions and a new
// affinity matrix
func (g *Game) reseed(width, height float64) error {
	sim, err := life.New(width, height, g.params, life.WithRand(g.rng))
	if err != nil {
		return err
	}
	g.sim = sim
	return nil
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	if err := g.handleInput(); err != nil {
		return err
	}
	if g.Paused {
		return nil
	}
	g.sim.Tick(g.dt)
	return nil
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	g.points = g.sim.Snapshot(g.points[:0])
	for _, p := range g.points {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), ParticleSize, g.colors[p.Type], true)
	}

	if g.ShowStats {
		st := g.sim.Stats()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS %.0f  tick %d  particles %d  mean speed %.3f",
			ebiten.ActualTPS(), st.Ticks, st.Particles, st.MeanSpeed))
	}
}

// Layout keeps the simulation surface the size of the window
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.sim.Size()
	if float64(outsideWidth) != w || float64(outsideHeight) != h {
		if err := g.sim.Resize(float64(outsideWidth), float64(outsideHeight)); err != nil {
			// Minimized windows report zero size; keep the old surface
			log.Printf("resize ignored: %v", err)
			return int(w), int(h)
		}
		log.Printf("surface resized to %dx%d", outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// handleInput processes keyboard input
func (g *Game) handleInput() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.Paused = !g.Paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.ShowStats = !g.ShowStats
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		ticks := g.sim.Stats().Ticks
		w, h := g.sim.Size()
		if err := g.reseed(w, h); err != nil {
			return err
		}
		log.Printf("reseeded after %d ticks", ticks)
	}
	return nil
}

// Palette saturation and value
const (
	paletteS = 0.7
	paletteV = 1.0
)

// typeColor returns an evenly spaced hue for type t of n
func typeColor(t, n int) color.RGBA {
	sector := float64(t) / float64(n) * 6 // Hue in sixths of the wheel
	c := paletteV * paletteS
	x := c * (1 - math.Abs(math.Mod(sector, 2)-1))
	m := paletteV - c

	var rgb [3]float64
	switch int(sector) {
	case 0:
		rgb = [3]float64{c, x, 0}
	case 1:
		rgb = [3]float64{x, c, 0}
	case 2:
		rgb = [3]float64{0, c, x}
	case 3:
		rgb = [3]float64{0, x, c}
	case 4:
		rgb = [3]float64{x, 0, c}
	default:
		rgb = [3]float64{c, 0, x}
	}
	return color.RGBA{
		R: uint8((rgb[0] + m) * 255),
		G: uint8((rgb[1] + m) * 255),
		B: uint8((rgb[2] + m) * 255),
		A: 255,
	}
}
