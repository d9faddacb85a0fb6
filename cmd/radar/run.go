package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"eventradar/internal/config"
	"eventradar/internal/logger"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Execute one triage pass now",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			log := logger.New(cfg.LogLevel)

			pipeline, _, err := buildPipeline(cfg, log)
			if err != nil {
				return err
			}

			report, err := pipeline.Run(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("checked=%d posted=%d\n", report.Checked, report.Delivered)
			return nil
		},
	}
}
