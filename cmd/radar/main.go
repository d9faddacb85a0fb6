package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "radar",
		Short:        "Event announcement radar",
		Long:         "Scans official feeds for event announcements, ranks and dedupes them, and posts a capped daily digest.",
		SilenceUsage: true,
	}
	root.AddCommand(newRunCmd(), newServeCmd(), newReportCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
