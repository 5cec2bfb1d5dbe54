package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Width  int
	Height int
	Scale  int
	TPS    int
	SPS    int
	Seed   int64
	Algo   string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 45, Height: 45, Scale: 15, TPS: 60, SPS: 60, Seed: 42, Algo: "bfs"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "maze width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "maze height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel size of one cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frame ticks per second")
	fs.IntVar(&c.SPS, "sps", c.SPS, "search expansion steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for maze generation")
	fs.StringVar(&c.Algo, "algo", c.Algo, "initial strategy: bfs, dfs, dijkstra or astar")
}
