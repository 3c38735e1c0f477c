package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zeusync/rpsim/internal/injector"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one match in real time, logging progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			loop, cleanup, err := injector.InitializeLoop(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := loop.Run(ctx); err != nil {
				return err
			}

			w := loop.World()
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "match %s: %s after %d frames\n", w.ID, w.Win, w.Frame())
			return err
		},
	}
	addMatchFlags(cmd)
	cmd.Flags().Int("tick-rate", 0, "Ticks per second")
	cmd.Flags().Int64("max-frames", 0, "Stop after this many frames (0 = no limit)")
	return cmd
}
