package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/mazeroute/pkg/cache"
	"github.com/matzehuels/mazeroute/pkg/config"
	mrerrors "github.com/matzehuels/mazeroute/pkg/errors"
	"github.com/matzehuels/mazeroute/pkg/maze"
	"github.com/matzehuels/mazeroute/pkg/observability"
	"github.com/matzehuels/mazeroute/pkg/routegraph"
	"github.com/matzehuels/mazeroute/pkg/solve"
)

// Runner encapsulates solver execution with caching.
//
// The Runner is stateless except for the cache and logger; it doesn't store
// results. Multiple goroutines can safely use the same Runner.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute solves the maze in opts.Input, answering from the cache when the
// same maze text was solved before.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger := r.logger(opts.Logger)

	result := &Result{
		RunID:    uuid.NewString(),
		MazeHash: cache.Hash([]byte(opts.Input)),
	}
	logger = logger.With("run", result.RunID[:8])
	if opts.Name != "" {
		logger = logger.With("input", opts.Name)
	}

	key := r.Keyer.SolveKey(result.MazeHash, cache.SolveKeyOpts{StartDir: DefaultStartDir})
	if !opts.Refresh {
		if cached, ok := r.lookup(ctx, key); ok {
			result.BestCost = cached.BestCost
			result.Seats = cached.Seats
			result.Nodes = cached.Nodes
			result.Edges = cached.Edges
			result.CacheHit = true
			logger.Debug("cache hit", "best_cost", cached.BestCost, "seats", cached.Seats)
			return result, nil
		}
	}

	m, err := r.parse(ctx, opts.Input, &result.Stats)
	if err != nil {
		return nil, err
	}
	logger.Debug("parsed maze", "summary", m.Describe(), "duration", result.Stats.ParseTime)

	res, _, err := r.solve(ctx, m)
	result.Stats.RelaxTime = res.Stats.Build + res.Stats.Relax
	result.Stats.ReconstructTime = res.Stats.Reconstruct
	if err != nil {
		return nil, err
	}
	result.BestCost = res.BestCost
	result.Seats = res.Seats
	result.Nodes = res.Nodes
	result.Edges = res.Edges

	logger.Info("solved maze",
		"best_cost", res.BestCost,
		"seats", res.Seats,
		"nodes", res.Nodes,
		"duration", result.Stats.Total())

	r.store(ctx, key, res, cache.TTLResult)
	return result, nil
}

// Solve parses and solves text without consulting the cache and returns the
// marked graph, for callers that draw it.
func (r *Runner) Solve(ctx context.Context, text string) (*maze.Maze, *routegraph.Graph, *Result, error) {
	result := &Result{
		RunID:    uuid.NewString(),
		MazeHash: cache.Hash([]byte(text)),
	}
	m, err := r.parse(ctx, text, &result.Stats)
	if err != nil {
		return nil, nil, nil, err
	}
	res, g, err := r.solve(ctx, m)
	result.Stats.RelaxTime = res.Stats.Build + res.Stats.Relax
	result.Stats.ReconstructTime = res.Stats.Reconstruct
	if err != nil {
		return m, g, nil, err
	}
	result.BestCost, result.Seats = res.BestCost, res.Seats
	result.Nodes, result.Edges = res.Nodes, res.Edges
	return m, g, result, nil
}

func (r *Runner) parse(ctx context.Context, text string, stats *Stats) (*maze.Maze, error) {
	start := time.Now()
	m, err := maze.Parse(text)
	stats.ParseTime = time.Since(start)
	if err != nil {
		observability.Solver().OnParseComplete(ctx, 0, 0, 0, stats.ParseTime, err)
		return nil, err
	}
	observability.Solver().OnParseComplete(ctx, m.Width(), m.Height(), m.FloorCount(), stats.ParseTime, nil)
	return m, nil
}

func (r *Runner) solve(ctx context.Context, m *maze.Maze) (solve.Result, *routegraph.Graph, error) {
	res, g, err := solve.SolveMaze(m)

	hooks := observability.Solver()
	relaxErr := err
	if errors.Is(err, routegraph.ErrUnreachable) {
		// relaxation itself succeeded; the end was simply never reached
		relaxErr = nil
	}
	hooks.OnRelaxComplete(ctx, res.Nodes, res.Edges, res.Stats.Build+res.Stats.Relax, relaxErr)
	hooks.OnReconstructComplete(ctx, res.BestCost, res.Seats, res.Stats.Reconstruct, err)
	return res, g, err
}

func (r *Runner) lookup(ctx context.Context, key string) (solve.Result, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "err", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, "solve")
		return solve.Result{}, false
	}
	var res solve.Result
	if err := json.Unmarshal(data, &res); err != nil {
		observability.Cache().OnCacheMiss(ctx, "solve")
		return solve.Result{}, false
	}
	observability.Cache().OnCacheHit(ctx, "solve")
	return res, true
}

func (r *Runner) store(ctx context.Context, key string, res solve.Result, ttl time.Duration) {
	data, err := json.Marshal(res)
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, "solve", len(data))
}

// RunPart solves the maze in the file at path and returns the answer for
// part.
func (r *Runner) RunPart(ctx context.Context, path string, part int, refresh bool) (int64, *Result, error) {
	if err := mrerrors.ValidatePart(part); err != nil {
		return 0, nil, err
	}
	text, err := ReadInput(path)
	if err != nil {
		return 0, nil, err
	}
	res, err := r.Execute(ctx, Options{Input: text, Name: path, Refresh: refresh})
	if err != nil {
		return 0, nil, err
	}
	return res.Answer(part), res, nil
}

// RunConfig runs every enabled part of cfg whose mode is in modes, in file
// order. Test answers are compared with their expected values. The returned
// error joins every failed part; outcomes are returned either way.
func (r *Runner) RunConfig(ctx context.Context, cfg *config.Config, modes ...config.Mode) ([]PartOutcome, error) {
	var (
		outcomes []PartOutcome
		errs     []error
	)
	for _, mode := range modes {
		for _, p := range cfg.Parts(mode) {
			if err := ctx.Err(); err != nil {
				return outcomes, err
			}
			r.Logger.Infof("Running %s part %d using %s data", cfg.Day, p.Part, p.Mode)

			out := PartOutcome{Part: p, Path: cfg.InputPath(p)}
			start := time.Now()
			out.Answer, out.Result, out.Err = r.RunPart(ctx, out.Path, p.Part, false)
			out.Elapsed = time.Since(start)

			if out.Err == nil && out.Checked() && out.Answer != p.Expected {
				out.Err = &mrerrors.MismatchError{Part: p.Part, Got: out.Answer, Expected: p.Expected}
			}
			if out.Err != nil {
				r.Logger.Error("part failed", "part", p.Part, "file", p.File, "err", out.Err)
				errs = append(errs, out.Err)
			} else {
				r.Logger.Info("result", "part", p.Part, "answer", out.Answer, "elapsed", out.Elapsed)
			}
			outcomes = append(outcomes, out)
		}
	}
	return outcomes, errors.Join(errs...)
}

// ReadInput reads a maze file.
func ReadInput(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", mrerrors.Wrap(mrerrors.ErrCodeFileNotFound, err, "input %s", path)
		}
		return "", mrerrors.Wrap(mrerrors.ErrCodeInvalidInput, err, "read input %s", path)
	}
	return string(data), nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) logger(override *log.Logger) *log.Logger {
	if override != nil {
		return override
	}
	return r.Logger
}
