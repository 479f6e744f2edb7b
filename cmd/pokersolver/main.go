package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/pokersolver/analysis"
	"github.com/lox/pokersolver/internal/config"
	"github.com/lox/pokersolver/internal/randutil"
)

// version is set by ldflags during build
var version = "dev"

// Globals are the flags shared by every command.
type Globals struct {
	Config  string `kong:"default='pokersolver.hcl',type='path',help='HCL configuration file (optional)'"`
	Debug   bool   `kong:"help='Enable debug logging'"`
	NoColor bool   `kong:"help='Disable coloured output'"`

	out io.Writer `kong:"-"`
}

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Eval    EvalCmd          `cmd:"" help:"Evaluate a 5 to 7 card hand"`
	Equity  EquityCmd        `cmd:"" help:"Estimate equity with Monte Carlo simulation"`
	Decide  DecideCmd        `cmd:"" help:"Recommend a call or fold from equity and pot odds"`
	Pots    PotsCmd          `cmd:"" help:"Build side pots and settle a showdown"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokersolver"),
		kong.Description("Texas Hold'em hand evaluator, equity solver and pot calculator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	cli.out = os.Stdout
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// env is what a command needs once the configuration is loaded.
type env struct {
	cfg    *config.Config
	logger *log.Logger
	out    io.Writer
}

func (g *Globals) setup() (*env, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level := cfg.Solver.Level()
	if g.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	if g.NoColor {
		logger.SetColorProfile(termenv.Ascii)
		disableColor()
	}

	out := g.out
	if out == nil {
		out = os.Stdout
	}
	return &env{cfg: cfg, logger: logger, out: out}, nil
}

// SolverFlags are the simulation overrides accepted by equity and decide.
type SolverFlags struct {
	Trials  int    `kong:"short='n',help='Monte Carlo trials (default from config)'"`
	Seed    *int64 `kong:"help='Deterministic RNG seed (optional)'"`
	Workers int    `kong:"help='Parallel workers (default from config)'"`
}

func (e *env) newSolver(f SolverFlags) *analysis.Solver {
	workers := e.cfg.Solver.Workers
	if f.Workers > 0 {
		workers = f.Workers
	}

	var seed int64
	switch {
	case f.Seed != nil:
		seed = *f.Seed
		e.logger.Debug("Using deterministic seed", "seed", seed)
	case e.cfg.Solver.Seed != 0:
		seed = e.cfg.Solver.Seed
		e.logger.Debug("Using configured seed", "seed", seed)
	default:
		_, seed = randutil.NewFromTime()
		e.logger.Debug("Using random seed", "seed", seed)
	}

	return analysis.NewSolver(
		analysis.WithWorkers(workers),
		analysis.WithDefaultTrials(e.cfg.Solver.Trials),
		analysis.WithSeed(seed),
		analysis.WithLogger(e.logger),
	)
}

// signalContext is cancelled on interrupt so long simulations stop early.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
