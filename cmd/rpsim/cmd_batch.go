package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zeusync/rpsim/internal/core/models"
	"github.com/zeusync/rpsim/internal/core/observability/log"
	"github.com/zeusync/rpsim/internal/driver"
)

func newBatchCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Play many headless matches and tally the winners",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := log.New(cfg.LogLevel())
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			res, err := driver.RunBatch(ctx, driver.BatchOptions{
				Matches:       cfg.Batch.Matches,
				Workers:       cfg.Batch.Workers,
				MaxFrames:     cfg.Batch.MaxFrames,
				Agents:        cfg.Agents.Count,
				Width:         cfg.Field.Width,
				Height:        cfg.Field.Height,
				CaptureRadius: cfg.CaptureRadius,
				Seed:          cfg.Seed,
			}, logger)
			if err != nil {
				return err
			}
			return printBatch(cmd, res, asJSON)
		},
	}
	addMatchFlags(cmd)
	cmd.Flags().Int("matches", 0, "Number of matches")
	cmd.Flags().Int("workers", 0, "Matches played at once")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func printBatch(cmd *cobra.Command, res *driver.BatchResult, asJSON bool) error {
	out := cmd.OutOrStdout()
	var frames int64
	for _, m := range res.Matches {
		frames += m.Frames
	}
	avg := 0.0
	if len(res.Matches) > 0 {
		avg = float64(frames) / float64(len(res.Matches))
	}

	if asJSON {
		wins := make(map[string]int, models.NumKinds)
		for _, k := range models.Kinds {
			wins[k.String()] = res.Wins[k]
		}
		return json.NewEncoder(out).Encode(map[string]any{
			"seed":       res.Seed,
			"matches":    len(res.Matches),
			"wins":       wins,
			"draws":      res.Draws,
			"avg_frames": avg,
		})
	}

	fmt.Fprintf(out, "seed %d, %d matches, %.1f frames on average\n", res.Seed, len(res.Matches), avg)
	for _, k := range models.Kinds {
		fmt.Fprintf(out, "  %-9s %d\n", k, res.Wins[k])
	}
	fmt.Fprintf(out, "  %-9s %d\n", "draw", res.Draws)
	return nil
}
