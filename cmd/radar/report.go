package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"eventradar/internal/config"
	"eventradar/internal/logger"
	"eventradar/internal/notify"
	"eventradar/internal/risk"
)

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Score upcoming fixtures and write the risk report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			log := logger.New(cfg.LogLevel)

			if err := os.MkdirAll(cfg.ReportDir, 0o755); err != nil {
				return fmt.Errorf("create report dir: %w", err)
			}
			reportPath := filepath.Join(cfg.ReportDir, "latest.md")

			fixtures, err := risk.LoadFixtures(cfg.FixturesPath)
			if err != nil {
				log.Warn("fixtures unavailable", "error", err)
			}

			if len(fixtures) == 0 {
				md := "# Daily INTL Sports Risk Report\n\n_No matches available in the scan window._"
				if err := os.WriteFile(reportPath, []byte(md), 0o644); err != nil {
					return fmt.Errorf("write report: %w", err)
				}
				postAlert(cmd, cfg, log, "✅ No high-risk matches flagged today. (Full report committed to repo)")
				return nil
			}

			model := risk.NewModel(risk.DefaultRivalries())
			scored := make([]risk.ScoredFixture, 0, len(fixtures))
			for _, fx := range fixtures {
				scored = append(scored, model.Assess(fx))
			}

			report := risk.BuildReport(scored, cfg.HighCutoff, cfg.MediumCutoff, cfg.TopN)
			if err := os.WriteFile(reportPath, []byte(report.Markdown()), 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			log.Info("report written", "path", reportPath, "high", len(report.High), "medium", len(report.Medium))

			postAlert(cmd, cfg, log, report.Preview())
			return nil
		},
	}
}

func postAlert(cmd *cobra.Command, cfg config.Config, log *slog.Logger, text string) {
	if cfg.WebhookURL == "" {
		return
	}
	webhook := notify.NewWebhook(cfg.WebhookURL)
	if err := webhook.PostText(cmd.Context(), text); err != nil {
		log.Warn("report alert failed", "error", err)
	}
}
