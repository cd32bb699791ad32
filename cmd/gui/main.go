//go:build ebiten

package main

import (
	"errors"
	"flag"
	"image/color"
	"io/fs"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// Game adapts a universe to the ebiten.Game interface
type Game struct {
	universe *model.Universe
	config   utils.Config
	img      *ebiten.Image
	buf      []byte

	scale    int
	paused   bool
	tickOnce bool
}

// NewGame constructs a Game for the provided universe
func NewGame(universe *model.Universe, config utils.Config, scale int) *Game {
	w, h := universe.Width(), universe.Height()
	return &Game{
		universe: universe,
		config:   config,
		img:      ebiten.NewImage(w, h),
		buf:      make([]byte, 4*w*h),
		scale:    scale,
		paused:   config.Paused,
	}
}

// Update handles per-frame input and advances the universe
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		universe, err := newUniverse(g.config)
		if err != nil {
			return err
		}
		g.universe = universe
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if row, col, ok := cellAt(x, y, g.scale, g.universe.Width(), g.universe.Height()); ok {
			if err := g.universe.ToggleCell(row, col); err != nil {
				return err
			}
		}
	}

	if !g.paused || g.tickOnce {
		g.universe.Tick()
		g.tickOnce = false
	}
	return nil
}

// Draw uploads the current generation and scales it onto the screen
func (g *Game) Draw(screen *ebiten.Image) {
	fillBinaryRGBA(g.buf, g.universe.Bytes(), color.White, color.Black)
	g.img.WritePixels(g.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.img, op)
}

// Layout returns the logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.universe.Width() * g.scale, g.universe.Height() * g.scale
}

func newUniverse(config utils.Config) (*model.Universe, error) {
	seed, err := model.NamedSeed(config.Pattern, config.Width, config.Height, utils.NewRNG(config.Seed), config.RandomDensity)
	if err != nil {
		return nil, err
	}
	return model.NewUniverse(config.Width, config.Height, seed)
}

func main() {
	configPath := flag.String("config", "config.json", "path to the JSON configuration file")
	scale := flag.Int("scale", 6, "pixels per cell")
	flag.Parse()

	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Fatal(err)
		}
		config = utils.DefaultConfig()
	}
	if err = config.Validate(); err != nil {
		log.Fatal(err)
	}

	universe, err := newUniverse(config)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("go-life")
	ebiten.SetTPS(max(1, int(time.Second/config.FrameRate)))
	cellSize := max(1, *scale)
	ebiten.SetWindowSize(universe.Width()*cellSize, universe.Height()*cellSize)

	if err := ebiten.RunGame(NewGame(universe, config, cellSize)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
