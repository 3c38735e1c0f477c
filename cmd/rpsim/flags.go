package main

import (
	"github.com/spf13/cobra"

	"github.com/zeusync/rpsim/internal/config"
)

// addMatchFlags registers the flags shared by run and batch. Flags left unset
// keep the value from the config file.
func addMatchFlags(cmd *cobra.Command) {
	cmd.Flags().Int("count", 0, "Number of agents")
	cmd.Flags().Float64("width", 0, "Field width")
	cmd.Flags().Float64("height", 0, "Field height")
	cmd.Flags().Float64("radius", 0, "Capture radius")
	cmd.Flags().Uint64("seed", 0, "Placement seed (0 = random)")
}

// loadConfig reads --config and applies any flag that was set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("count") {
		cfg.Agents.Count, _ = flags.GetInt("count")
	}
	if flags.Changed("width") {
		cfg.Field.Width, _ = flags.GetFloat64("width")
	}
	if flags.Changed("height") {
		cfg.Field.Height, _ = flags.GetFloat64("height")
	}
	if flags.Changed("radius") {
		cfg.CaptureRadius, _ = flags.GetFloat64("radius")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Lookup("tick-rate") != nil && flags.Changed("tick-rate") {
		cfg.TickRate, _ = flags.GetInt("tick-rate")
	}
	if flags.Lookup("max-frames") != nil && flags.Changed("max-frames") {
		cfg.MaxFrames, _ = flags.GetInt64("max-frames")
	}
	if flags.Lookup("matches") != nil && flags.Changed("matches") {
		cfg.Batch.Matches, _ = flags.GetInt("matches")
	}
	if flags.Lookup("workers") != nil && flags.Changed("workers") {
		cfg.Batch.Workers, _ = flags.GetInt("workers")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
