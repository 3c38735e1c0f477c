package driver

import (
	"context"
	"fmt"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/zeusync/rpsim/internal/core/models"
	"github.com/zeusync/rpsim/internal/core/observability/log"
	"github.com/zeusync/rpsim/internal/core/system"
	"github.com/zeusync/rpsim/internal/core/systems/conflict"
)

// BatchOptions describes a set of independent headless matches.
type BatchOptions struct {
	Matches int
	Workers int

	// MaxFrames caps each match; a match still ongoing at the cap is a draw.
	MaxFrames int64

	Agents        int
	Width, Height float64
	CaptureRadius float64

	// Seed is the base seed; match i uses PCG(Seed, i). Zero picks one.
	Seed uint64
}

type MatchResult struct {
	Index  int
	Frames int64
	Win    models.WinState
}

type BatchResult struct {
	Seed    uint64
	Matches []MatchResult
	Wins    [models.NumKinds]int
	Draws   int
}

// RunBatch plays every match to the end, at most Workers at a time. Each
// match owns its own world, so nothing is shared between goroutines.
func RunBatch(ctx context.Context, opts BatchOptions, logger log.Log) (*BatchResult, error) {
	if logger == nil {
		logger = log.NewNop()
	}
	if opts.Matches <= 0 {
		return &BatchResult{Seed: opts.Seed}, nil
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.Seed == 0 {
		opts.Seed = rand.Uint64()
	}

	results := make([]MatchResult, opts.Matches)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i := range opts.Matches {
		g.Go(func() error {
			r, err := playMatch(ctx, i, opts)
			if err != nil {
				return fmt.Errorf("match %d: %w", i, err)
			}
			results[i] = r
			logger.Debug("match finished",
				log.Int("match", i),
				log.Int64("frames", r.Frames),
				log.Stringer("state", r.Win),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &BatchResult{Seed: opts.Seed, Matches: results}
	for _, r := range results {
		if k, ok := r.Win.Winner(); ok {
			out.Wins[k]++
		} else {
			out.Draws++
		}
	}
	return out, nil
}

func playMatch(ctx context.Context, i int, opts BatchOptions) (MatchResult, error) {
	rng := rand.New(rand.NewPCG(opts.Seed, uint64(i)))
	pop, err := models.Spawn(opts.Agents, opts.Width, opts.Height, rng)
	if err != nil {
		return MatchResult{}, err
	}
	w, err := system.NewWorld(pop, system.FixedField{W: opts.Width, H: opts.Height}, system.WorldOptions{
		ID:            fmt.Sprintf("batch-%d", i),
		CaptureRadius: opts.CaptureRadius,
	})
	if err != nil {
		return MatchResult{}, err
	}

	for !w.Win.Done() && (opts.MaxFrames <= 0 || w.Frame() < opts.MaxFrames) {
		if w.Frame()%256 == 0 {
			if err := ctx.Err(); err != nil {
				return MatchResult{}, err
			}
		}
		if err := conflict.Step(w); err != nil {
			return MatchResult{}, err
		}
	}
	return MatchResult{Index: i, Frames: w.Frame(), Win: w.Win}, nil
}
