package analysis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokersolver/internal/randutil"
	"github.com/lox/pokersolver/poker"
)

var (
	ErrInvalidTrials    = errors.New("trial count must be positive")
	ErrInvalidOpponents = errors.New("opponent count cannot be negative")
	ErrInvalidAmount    = errors.New("pot and call amounts cannot be negative")
)

const (
	// DefaultTrials is used when a call passes zero trials.
	DefaultTrials = 10000

	maxWorkers = 8 // Cap for diminishing returns
	// Trials run sequentially below this count; fan-out is not worth it.
	parallelThreshold = 500
	cancelCheckEvery  = 256
)

// Solver runs Monte Carlo equity simulations. It is safe for concurrent use.
type Solver struct {
	workers       int
	defaultTrials int
	logger        *log.Logger
	clock         quartz.Clock

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// Option configures a Solver.
type Option func(*Solver)

// WithWorkers sets how many goroutines share the trials. Values below one
// are ignored.
func WithWorkers(n int) Option {
	return func(s *Solver) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithDefaultTrials sets the trial count used when a call passes zero.
func WithDefaultTrials(n int) Option {
	return func(s *Solver) {
		if n > 0 {
			s.defaultTrials = n
		}
	}
}

// WithRand sets the parent generator. Worker generators are derived from
// it, so a seeded parent gives reproducible results for a fixed worker count.
func WithRand(rng *rand.Rand) Option {
	return func(s *Solver) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithSeed seeds the parent generator deterministically.
func WithSeed(seed int64) Option {
	return func(s *Solver) {
		s.rng = randutil.New(seed)
	}
}

// WithLogger sets the logger used for run diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(s *Solver) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock sets the clock used to time runs.
func WithClock(clock quartz.Clock) Option {
	return func(s *Solver) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewSolver creates a solver. Without options it uses up to eight workers,
// a time-seeded generator and a discarding logger.
func NewSolver(opts ...Option) *Solver {
	s := &Solver{
		workers:       min(runtime.NumCPU(), maxWorkers),
		defaultTrials: DefaultTrials,
		logger:        log.New(io.Discard),
		clock:         quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng, _ = randutil.NewFromTime()
	}
	return s
}

// CalculateEquity estimates the equity of hole against opponents players
// holding random cards. Missing board cards are dealt at random in every
// trial. A trial is a win only if hero beats every opponent, a tie if hero
// shares the best hand, and a loss otherwise.
func (s *Solver) CalculateEquity(ctx context.Context, hole, board []poker.Card, opponents, trials int) (EquityResult, error) {
	if err := validateSpot(hole, board); err != nil {
		return EquityResult{}, err
	}
	if opponents < 0 {
		return EquityResult{}, fmt.Errorf("%w: %d", ErrInvalidOpponents, opponents)
	}
	if err := poker.CheckDistinct(hole, board); err != nil {
		return EquityResult{}, err
	}

	sim := newSimulation(hole, board)
	sim.randomOpponents = opponents
	return s.run(ctx, sim, trials)
}

// CalculateEquityVsHands estimates equity against opponents whose hole
// cards are known. Only the board is randomised.
func (s *Solver) CalculateEquityVsHands(ctx context.Context, hole, board []poker.Card, opponents [][]poker.Card, trials int) (EquityResult, error) {
	if err := validateSpot(hole, board); err != nil {
		return EquityResult{}, err
	}
	for i, opp := range opponents {
		if len(opp) != 2 {
			return EquityResult{}, fmt.Errorf("%w: opponent %d has %d cards", poker.ErrInvalidHoleCards, i+1, len(opp))
		}
	}
	if err := poker.CheckDistinct(append([][]poker.Card{hole, board}, opponents...)...); err != nil {
		return EquityResult{}, err
	}

	sim := newSimulation(hole, board)
	for _, opp := range opponents {
		sim.fixed = append(sim.fixed, [2]poker.Card{opp[0], opp[1]})
		sim.dead = append(sim.dead, opp...)
	}
	return s.run(ctx, sim, trials)
}

func validateSpot(hole, board []poker.Card) error {
	if len(hole) != 2 {
		return fmt.Errorf("%w: got %d", poker.ErrInvalidHoleCards, len(hole))
	}
	if len(board) > 5 {
		return fmt.Errorf("%w: got %d", poker.ErrBoardTooLarge, len(board))
	}
	return nil
}

// run splits trials across workers and sums their tallies once every
// worker has finished. Each worker owns its generator.
func (s *Solver) run(ctx context.Context, sim *simulation, trials int) (EquityResult, error) {
	if trials == 0 {
		trials = s.defaultTrials
	}
	if trials < 0 {
		return EquityResult{}, fmt.Errorf("%w: %d", ErrInvalidTrials, trials)
	}

	workers := s.workers
	if trials < parallelThreshold {
		workers = 1
	}
	workers = min(workers, trials)

	s.mu.Lock()
	rngs := randutil.Split(s.rng, workers)
	s.mu.Unlock()

	start := s.clock.Now()
	s.logger.Debug("Starting equity run",
		"trials", trials,
		"workers", workers,
		"board", poker.FormatCards(sim.board),
		"random_opponents", sim.randomOpponents,
		"fixed_opponents", len(sim.fixed))

	perWorker := trials / workers
	remainder := trials % workers
	partials := make([]tally, workers)

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		n := perWorker
		if w < remainder {
			n++ // Distribute remainder trials
		}
		g.Go(func() error {
			t, err := sim.runBatch(gctx, rngs[w], n)
			partials[w] = t
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return EquityResult{}, err
	}

	var total tally
	for _, p := range partials {
		total.add(p)
	}

	result := newEquityResult(total, s.clock.Now().Sub(start))
	s.logger.Debug("Equity run complete",
		"win", fmt.Sprintf("%.2f%%", result.WinRate),
		"tie", fmt.Sprintf("%.2f%%", result.TieRate),
		"elapsed", result.Elapsed)
	return result, nil
}
