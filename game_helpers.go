package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// headerLines is the number of status rows drawn above the grid
const headerLines = 3

const helpLine = "space pause | n step | r reseed | click toggle | q quit"

// game is the interactive harness. Only the loop goroutine touches it.
type game struct {
	config   utils.Config
	rng      *rand.Rand
	universe *model.Universe
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	history  utils.History

	generation     int
	lastRestartGen int
	stagnantCount  int
	paused         bool
	mouseDown      bool
	status         string
}

// newUniverse builds a universe from the configured seed strategy
func newUniverse(config utils.Config, rng *rand.Rand) (*model.Universe, error) {
	seed, err := model.NamedSeed(config.Pattern, config.Width, config.Height, rng, config.RandomDensity)
	if err != nil {
		return nil, errors.Wrap(err, "[newUniverse] failed to build seed")
	}
	return model.NewUniverse(config.Width, config.Height, seed)
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, renderer *model.TerminalRenderer) (*game, error) {
	rng := utils.NewRNG(config.Seed)
	universe, err := newUniverse(config, rng)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to create universe")
	}
	return &game{
		config:   config,
		rng:      rng,
		universe: universe,
		renderer: renderer,
		stats:    utils.NewStats(),
		paused:   config.Paused,
		status:   "Active",
	}, nil
}

// run drives the game on the terminal until the user quits, the context is
// cancelled or the generation limit is reached
func run(ctx context.Context, config utils.Config) (*utils.Stats, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[run] failed to create screen")
	}
	if err = screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[run] failed to initialize screen")
	}
	screen.EnableMouse()

	g, err := initializeGame(config, model.NewTerminalRenderer(screen, headerLines))
	if err != nil {
		screen.Fini()
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		eg, egCtx = errgroup.WithContext(ctx)
		events    = make(chan tcell.Event)
	)
	eg.Go(func() error {
		// Fini unblocks PollEvent in the pump
		<-egCtx.Done()
		screen.Fini()
		return nil
	})
	eg.Go(func() error {
		return pumpEvents(egCtx, screen, events)
	})
	eg.Go(func() error {
		defer cancel()
		return g.loop(egCtx, events)
	})

	if err = eg.Wait(); err != nil {
		return g.stats, errors.Wrap(err, "[run] game loop failed")
	}
	return g.stats, nil
}

// pumpEvents forwards terminal events to the game loop
func pumpEvents(ctx context.Context, screen tcell.Screen, events chan<- tcell.Event) error {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}

// loop advances one generation per frame and applies user input between frames
func (g *game) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(g.config.FrameRate)
	defer ticker.Stop()

	g.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			quit, err := g.handleEvent(ev)
			if err != nil || quit {
				return err
			}
			g.draw()
		case <-ticker.C:
			if g.paused {
				continue
			}
			done, err := g.step()
			if err != nil || done {
				return err
			}
			g.draw()
		}
	}
}

// handleEvent applies a key, mouse or resize event. It reports whether the user asked to quit.
func (g *game) handleEvent(ev tcell.Event) (quit bool, err error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
			return true, nil
		case ev.Rune() == ' ':
			g.paused = !g.paused
		case ev.Rune() == 'n':
			_, err = g.step()
			return false, err
		case ev.Rune() == 'r':
			return false, g.restart("manual reseed")
		}
	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0
		// toggle once per press, not on every drag event
		if pressed && !g.mouseDown {
			x, y := ev.Position()
			if row, col, ok := g.renderer.CellAt(g.universe, x, y); ok {
				err = g.universe.ToggleCell(row, col)
			}
		}
		g.mouseDown = pressed
	case *tcell.EventResize:
		g.renderer.Sync()
	}
	return false, err
}

// step ticks once and applies the stagnation and restart rules. done is true
// once the generation limit is reached.
func (g *game) step() (done bool, err error) {
	start := time.Now()
	g.universe.Tick()
	g.generation++

	livingCells := g.universe.Population()
	g.stats.Update(g.generation, livingCells, time.Since(start))

	if g.history.Observe(g.universe.Hash()) {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}
	g.status = statusFor(livingCells, g.stagnantCount, g.generation)

	if g.config.MaxGenerations > 0 && g.generation >= g.config.MaxGenerations {
		return true, nil
	}

	if shouldRestart, reason := checkRestartConditions(livingCells, g.stagnantCount, g.config); shouldRestart && g.config.AutoRestart {
		return false, g.restart(reason)
	}
	return false, nil
}

// restart replaces the universe with a freshly seeded one
func (g *game) restart(reason string) error {
	universe, err := newUniverse(g.config, g.rng)
	if err != nil {
		return errors.Wrapf(err, "[restart] failed to reseed after %s", reason)
	}
	g.universe = universe
	g.history.Reset()
	g.stagnantCount = 0
	g.lastRestartGen = g.generation
	g.status = "Restarted: " + reason
	return nil
}

// draw renders the header and grid
func (g *game) draw() {
	g.renderer.Clear()
	g.renderer.Status(g.statusLines()...)
	g.renderer.Display(g.universe)
	g.renderer.Show()
}

// statusLines formats the header shown above the grid
func (g *game) statusLines() []string {
	livingCells := g.universe.Population()
	density := float64(livingCells) / float64(g.universe.Width()*g.universe.Height()) * 100

	status := g.status
	if g.paused {
		status += " (paused)"
	}
	return []string{
		fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s | Since restart: %d",
			g.generation, livingCells, density, status, g.generation-g.lastRestartGen),
		fmt.Sprintf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs",
			g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.Runtime().Seconds()),
		helpLine,
	}
}

// statusFor names the state of the board after a tick
func statusFor(livingCells, stagnantCount, generation int) string {
	switch {
	case livingCells == 0:
		return "Extinct"
	case stagnantCount > 0:
		return fmt.Sprintf("Stagnant (%d)", generation)
	default:
		return "Active"
	}
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}
