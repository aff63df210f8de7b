package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pixelgrind/viralfail/internal/rubric"
)

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List platforms and their scoring rubrics",
	Long:  `Show every supported platform with its format hint and the weighted criteria the Algorithm Simulator scores against.`,
	RunE:  runPlatforms,
}

func init() {
	rootCmd.AddCommand(platformsCmd)
}

func runPlatforms(cmd *cobra.Command, args []string) error {
	for _, name := range rubric.Platforms() {
		r, err := rubric.Get(name)
		if err != nil {
			return err
		}

		fmt.Printf("%s — %s\n", r.Platform, r.Description)
		fmt.Printf("  Format: %s\n", r.FormatHint)
		for _, c := range r.Criteria {
			fmt.Printf("  - %s (%d%%)\n", c.Name, int(c.Weight*100))
		}
		fmt.Println()
	}

	return nil
}
