package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pixelgrind/viralfail/internal/config"
	"github.com/pixelgrind/viralfail/internal/trends"
)

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Preview trending gaming topics",
	Long: `Fetch the current trending gaming topics the game would offer,
without starting a session. Falls back to the built-in sample list
when the live feed is unreachable.`,
	RunE: runTrends,
}

func init() {
	rootCmd.AddCommand(trendsCmd)
}

func runTrends(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	fetcher := trends.New(trends.Config{Geo: cfg.TrendsGeo})
	topics := fetcher.Fetch(context.Background(), cfg.TrendCount)

	fmt.Println("TRENDING GAMING TOPICS:")
	fmt.Println()
	for i, topic := range topics {
		fmt.Printf("  %d. %s\n", i+1, topic)
	}

	return nil
}
