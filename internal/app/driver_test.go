package app

import (
	"errors"
	"slices"
	"testing"

	"maze-viz/internal/grid"
	"maze-viz/internal/render"
	"maze-viz/internal/search"
)

func testConfig() *Config {
	cfg := NewConfig()
	cfg.Width = 15
	cfg.Height = 15
	cfg.Seed = 7
	return cfg
}

// fastDriver returns a driver whose pacer fires so often that a handful
// of Ticks drives any run on a small maze to completion.
func fastDriver(t *testing.T) *Driver {
	t.Helper()
	d, err := NewDriver(testConfig(), search.BFS)
	if err != nil {
		t.Fatal(err)
	}
	d.pacer = newStepPacer(1_000_000_000)
	return d
}

func runToCompletion(t *testing.T, d *Driver) {
	t.Helper()
	d.StartRun()
	for i := 0; d.Searching(); i++ {
		if i > 1_000_000 {
			t.Fatal("run did not terminate")
		}
		d.Tick()
	}
}

func TestNewDriverRejectsBadDimensions(t *testing.T) {
	cfg := testConfig()
	cfg.Width = 0
	if _, err := NewDriver(cfg, search.BFS); !errors.Is(err, grid.ErrBadDimensions) {
		t.Fatalf("err = %v, want ErrBadDimensions", err)
	}
}

func TestRunLifecycle(t *testing.T) {
	d := fastDriver(t)
	runToCompletion(t, d)

	st := d.Status()
	if !st.HasResult || st.NoPath {
		t.Fatalf("generated maze run must succeed, status %+v", st)
	}

	_, want := search.Solve(d.Grid(), search.BFS, d.Grid().Start, d.Grid().End)
	if st.PathLen != len(want) {
		t.Fatalf("reported length %d, want %d", st.PathLen, len(want))
	}

	// The visited overlay clears at completion; only the path and the
	// start/end markers remain highlighted.
	display := d.Display()
	for c := range want {
		if c == d.Grid().End {
			continue
		}
		if got := display[d.Grid().Index(c.X, c.Y)]; got != render.StatePath {
			t.Fatalf("cell %v displays %d, want path state", c, got)
		}
	}
	for _, v := range display {
		if v == render.StateVisited {
			t.Fatal("no visited cells should remain after completion")
		}
	}
}

func TestDisplayShowsVisitedMidRun(t *testing.T) {
	d := fastDriver(t)
	d.StartRun()
	d.run.Step()
	d.run.Step()

	display := d.Display()
	if !slices.Contains(display, render.StateVisited) {
		t.Fatal("mid-run display must overlay visited cells")
	}
	if slices.Contains(display, render.StatePath) {
		t.Fatal("no path is shown before the run completes")
	}
}

func TestSelectDiscardsRunKeepsStats(t *testing.T) {
	d := fastDriver(t)
	runToCompletion(t, d)

	d.Select(search.AStar)
	if d.Kind() != search.AStar {
		t.Fatalf("kind = %v, want A*", d.Kind())
	}
	if !d.Status().HasResult {
		t.Fatal("last-run stats stay visible across a strategy switch")
	}
	if slices.Contains(d.Display(), render.StatePath) {
		t.Fatal("selecting a strategy must clear the displayed path")
	}

	d.StartRun()
	d.Select(search.BFS)
	if d.Searching() || d.run != nil {
		t.Fatal("selecting a strategy must discard the in-flight run")
	}
}

func TestStartRunIgnoredWhileSearching(t *testing.T) {
	d := fastDriver(t)
	d.StartRun()
	run := d.run
	d.StartRun()
	if d.run != run {
		t.Fatal("a run already in flight must keep going")
	}
}

func TestRegenerateClearsEverything(t *testing.T) {
	d := fastDriver(t)
	runToCompletion(t, d)
	before := append([]uint8(nil), d.Grid().Cells()...)

	if err := d.Regenerate(12345); err != nil {
		t.Fatal(err)
	}
	st := d.Status()
	if st.HasResult || st.PathLen != 0 || st.Elapsed != 0 {
		t.Fatalf("stats must reset on regeneration, status %+v", st)
	}
	if slices.Equal(before, d.Grid().Cells()) {
		t.Fatal("regeneration must replace the maze wholesale")
	}
	if slices.Contains(d.Display(), render.StatePath) {
		t.Fatal("regeneration must clear the displayed path")
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.Width != 45 || cfg.Height != 45 {
		t.Fatalf("default maze size = %dx%d, want 45x45", cfg.Width, cfg.Height)
	}
	if _, err := search.ParseKind(cfg.Algo); err != nil {
		t.Fatalf("default algo must parse: %v", err)
	}
}
