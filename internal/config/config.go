// Package config loads solver settings from an HCL file.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/pokersolver/poker"
)

const (
	DefaultTrials   = 10000
	DefaultLogLevel = "info"
	maxWorkers      = 8
)

// Config represents the complete solver configuration
type Config struct {
	Solver    *SolverSettings  `hcl:"solver,block"`
	Scenarios []ScenarioConfig `hcl:"scenario,block"`
}

// SolverSettings tunes the Monte Carlo solver.
type SolverSettings struct {
	Trials   int    `hcl:"trials,optional"`
	Workers  int    `hcl:"workers,optional"`
	Seed     int64  `hcl:"seed,optional"` // Zero seeds from the clock
	LogLevel string `hcl:"log_level,optional"`
}

// ScenarioConfig is a named decision spot that can be replayed from the
// command line.
type ScenarioConfig struct {
	Name      string `hcl:"name,label"`
	Hole      string `hcl:"hole"`
	Board     string `hcl:"board,optional"`
	Pot       int    `hcl:"pot"`
	Call      int    `hcl:"call"`
	Opponents int    `hcl:"opponents,optional"` // Defaults to one
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Solver: &SolverSettings{
			Trials:   DefaultTrials,
			Workers:  min(runtime.NumCPU(), maxWorkers),
			LogLevel: DefaultLogLevel,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := Default().Solver
	if c.Solver == nil {
		c.Solver = defaults
	}
	if c.Solver.Trials == 0 {
		c.Solver.Trials = defaults.Trials
	}
	if c.Solver.Workers == 0 {
		c.Solver.Workers = defaults.Workers
	}
	if c.Solver.LogLevel == "" {
		c.Solver.LogLevel = defaults.LogLevel
	}
	for i := range c.Scenarios {
		if c.Scenarios[i].Opponents == 0 {
			c.Scenarios[i].Opponents = 1
		}
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Solver == nil {
		return errors.New("missing solver settings")
	}
	if c.Solver.Trials < 1 {
		return fmt.Errorf("invalid trials: %d", c.Solver.Trials)
	}
	if c.Solver.Workers < 1 {
		return fmt.Errorf("invalid workers: %d", c.Solver.Workers)
	}
	if _, err := log.ParseLevel(c.Solver.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.Solver.LogLevel, err)
	}

	seen := make(map[string]bool)
	for _, sc := range c.Scenarios {
		if seen[sc.Name] {
			return fmt.Errorf("duplicate scenario: %s", sc.Name)
		}
		seen[sc.Name] = true
		if _, err := sc.Cards(); err != nil {
			return fmt.Errorf("scenario %s: %w", sc.Name, err)
		}
		if sc.Pot < 0 || sc.Call < 0 {
			return fmt.Errorf("scenario %s: pot and call cannot be negative", sc.Name)
		}
	}
	return nil
}

// Scenario returns the named scenario.
func (c *Config) Scenario(name string) (ScenarioConfig, bool) {
	for _, sc := range c.Scenarios {
		if sc.Name == name {
			return sc, true
		}
	}
	return ScenarioConfig{}, false
}

// Level returns the parsed log level, falling back to info.
func (s *SolverSettings) Level() log.Level {
	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// ScenarioCards holds the parsed cards of a scenario.
type ScenarioCards struct {
	Hole  []poker.Card
	Board []poker.Card
}

// Cards parses the scenario's hole and board cards.
func (sc ScenarioConfig) Cards() (ScenarioCards, error) {
	hole, err := poker.ParseCards(sc.Hole)
	if err != nil {
		return ScenarioCards{}, fmt.Errorf("hole: %w", err)
	}
	if len(hole) != 2 {
		return ScenarioCards{}, fmt.Errorf("hole: %w", poker.ErrInvalidHoleCards)
	}
	board, err := poker.ParseCards(sc.Board)
	if err != nil {
		return ScenarioCards{}, fmt.Errorf("board: %w", err)
	}
	if len(board) > 5 {
		return ScenarioCards{}, fmt.Errorf("board: %w", poker.ErrBoardTooLarge)
	}
	if err := poker.CheckDistinct(hole, board); err != nil {
		return ScenarioCards{}, err
	}
	return ScenarioCards{Hole: hole, Board: board}, nil
}
