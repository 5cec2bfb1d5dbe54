package app

import (
	"time"

	"maze-viz/internal/grid"
	"maze-viz/internal/render"
	"maze-viz/internal/search"
	"maze-viz/internal/ui"
)

// Driver owns the maze, the selected strategy and at most one in-flight
// search run, and paces that run one expansion at a time so search and
// rendering interleave. It is free of any rendering dependency; the
// ebiten adapter feeds it input events and reads its display buffer.
type Driver struct {
	cfg  *Config
	grid *grid.Grid
	kind search.Kind

	run       *search.Run
	path      search.Path
	searching bool
	startedAt time.Time

	hasResult bool
	noPath    bool
	pathLen   int
	elapsed   time.Duration

	pacer   *stepPacer
	display []uint8
}

// NewDriver generates the initial maze and prepares an idle driver.
// Dimension errors surface before any driver state exists.
func NewDriver(cfg *Config, kind search.Kind) (*Driver, error) {
	g, err := grid.Generate(cfg.Width, cfg.Height, grid.NewRNG(cfg.Seed))
	if err != nil {
		return nil, err
	}
	return &Driver{
		cfg:   cfg,
		grid:  g,
		kind:  kind,
		pacer: newStepPacer(cfg.SPS),
	}, nil
}

// Grid returns the current maze.
func (d *Driver) Grid() *grid.Grid { return d.grid }

// Kind returns the selected strategy.
func (d *Driver) Kind() search.Kind { return d.kind }

// Searching reports whether a run is in flight.
func (d *Driver) Searching() bool { return d.searching }

// Select switches the strategy, discarding any in-flight run and the
// displayed path. Last-run stats stay visible until the next run or a
// regeneration.
func (d *Driver) Select(k search.Kind) {
	d.kind = k
	d.run = nil
	d.searching = false
	d.path = nil
}

// Regenerate replaces the maze wholesale and clears the path, stats and
// any in-flight run.
func (d *Driver) Regenerate(seed int64) error {
	g, err := grid.Generate(d.cfg.Width, d.cfg.Height, grid.NewRNG(seed))
	if err != nil {
		return err
	}
	d.grid = g
	d.run = nil
	d.searching = false
	d.path = nil
	d.hasResult = false
	d.noPath = false
	d.pathLen = 0
	d.elapsed = 0
	return nil
}

// StartRun begins a fresh search with the selected strategy. Any state
// from a previous run is discarded first; a run already in flight keeps
// going instead.
func (d *Driver) StartRun() {
	if d.searching {
		return
	}
	d.path = nil
	d.hasResult = false
	d.noPath = false
	d.run = search.NewRun(d.grid, d.kind, d.grid.Start, d.grid.End)
	d.startedAt = time.Now()
	d.searching = true
	d.pacer.reset()
}

// Tick advances the in-flight run by however many expansion steps are
// due this frame. On termination it reconstructs the path once and
// records the run's stats.
func (d *Driver) Tick() {
	if !d.searching {
		return
	}
	for d.pacer.shouldStep() {
		if d.run.Step() {
			d.finishRun()
			return
		}
	}
}

func (d *Driver) finishRun() {
	d.path = d.run.Path()
	d.elapsed = time.Since(d.startedAt)
	d.pathLen = len(d.path)
	d.noPath = d.pathLen == 0
	d.hasResult = true
	d.searching = false
	// Drop the run so the visited overlay clears and only the
	// reconstructed path stays highlighted.
	d.run = nil
}

// Display composes the current frame's cell states: the maze, the
// in-flight visited overlay, the final path and the start/end markers.
func (d *Driver) Display() []uint8 {
	var visited []grid.Cell
	if d.run != nil {
		visited = d.run.Visited()
	}
	d.display = render.ComposeDisplay(d.display, d.grid, visited, d.path)
	return d.display
}

// Status reports the HUD view of the driver.
func (d *Driver) Status() ui.Status {
	return ui.Status{
		Algorithm: d.kind.String(),
		Searching: d.searching,
		HasResult: d.hasResult,
		NoPath:    d.noPath,
		PathLen:   d.pathLen,
		Elapsed:   d.elapsed,
	}
}
