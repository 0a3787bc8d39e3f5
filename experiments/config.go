package experiments

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"stones/experiments/metrics"

	"github.com/BurntSushi/toml"
)

var ErrConfig = errors.New("invalid experiment configuration")

const (
	OutputCSV    = "csv"
	OutputSQLite = "sqlite"
)

type SelfPlay struct {
	Games  int    `toml:"games"`
	Size   int    `toml:"size"`
	Depth1 int    `toml:"depth1"`
	Depth2 int    `toml:"depth2"`
	Random bool   `toml:"random"` // Player2 plays random moves instead of searching
	Seed   uint64 `toml:"seed"`
}

type Config struct {
	Name     string   `toml:"name"`
	Output   string   `toml:"output"`
	Path     string   `toml:"path"` // directory for csv, database file for sqlite
	Sizes    []int    `toml:"sizes"`
	Depths   []int    `toml:"depths"`
	Pruning  []bool   `toml:"pruning"`
	SelfPlay SelfPlay `toml:"selfplay"`
}

// Configuration used by default
var defaultConfig = Config{
	Name:    "sweep",
	Output:  OutputCSV,
	Path:    "experiments",
	Sizes:   []int{6, 7, 8, 9, 10},
	Depths:  []int{0, 1, 2, 3},
	Pruning: []bool{true, false},
}

func Default() Config {
	c := defaultConfig
	c.Sizes = slices.Clone(defaultConfig.Sizes)
	c.Depths = slices.Clone(defaultConfig.Depths)
	c.Pruning = slices.Clone(defaultConfig.Pruning)
	return c
}

// Parse a configuration from r on top of the defaults
func Load(r io.Reader) (Config, error) {
	c := Default()
	if _, err := toml.NewDecoder(r).Decode(&c); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	return c, c.Validate()
}

// Open a configuration file and return it
func Open(name string) (Config, error) {
	file, err := os.Open(name)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	return Load(file)
}

func (c Config) Validate() error {
	for _, size := range c.Sizes {
		if size < 1 {
			return fmt.Errorf("%w: size %d", ErrConfig, size)
		}
	}
	for _, depth := range c.Depths {
		if depth < 0 {
			return fmt.Errorf("%w: depth %d", ErrConfig, depth)
		}
	}
	if c.Output != OutputCSV && c.Output != OutputSQLite {
		return fmt.Errorf("%w: unknown output %q", ErrConfig, c.Output)
	}
	if c.SelfPlay.Games > 0 && c.SelfPlay.Size < 1 {
		return fmt.Errorf("%w: self-play size %d", ErrConfig, c.SelfPlay.Size)
	}
	if c.SelfPlay.Depth1 < 0 || c.SelfPlay.Depth2 < 0 {
		return fmt.Errorf("%w: negative self-play depth", ErrConfig)
	}
	return nil
}

// Serialise the configuration into a writer
func (c Config) Dump(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// OpenSink creates the record sink the configuration asks for.
func (c Config) OpenSink(ctx context.Context) (metrics.Sink, error) {
	if c.Output == OutputSQLite {
		store, err := metrics.OpenStore(ctx, c.Path)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
	writer, err := metrics.NewWriter(c.Path, c.Name)
	if err != nil {
		return nil, err
	}
	return writer, nil
}
