package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/pixelgrind/viralfail/internal/agents"
	"github.com/pixelgrind/viralfail/internal/config"
	"github.com/pixelgrind/viralfail/internal/game"
	"github.com/pixelgrind/viralfail/internal/rubric"
	"github.com/pixelgrind/viralfail/internal/trends"
	"github.com/pixelgrind/viralfail/internal/ui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round of Viral or Fail",
	Long: `Start an interactive game session: pick a trending gaming topic and a
platform, then run up to three rounds of content creation, algorithm
scoring, and audience reaction. Requires GITHUB_TOKEN for the GitHub
Models inference backend.`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := cfg.ValidateForPlay(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	console := ui.New(os.Stdin, os.Stdout)
	console.Banner()

	// Wire the three agents to the shared inference backend.
	console.Say("Setting up AI agents...")
	client := agents.NewClient(agents.ClientConfig{
		APIKey:  cfg.GitHubToken,
		BaseURL: cfg.BaseURL,
		Model:   cfg.Model,
	})

	persona := agents.RandomPersona()
	creator := agents.NewCreator(client)
	algorithm := agents.NewAlgorithm(client)
	audience := agents.NewAudience(client, persona)

	console.Say("  Content Creator — ready")
	console.Say("  Algorithm Simulator — ready")
	console.Say("  Audience Persona — %s (%s)", persona.Name, persona.Description)

	// Let the player pick a topic and a platform.
	fetcher := trends.New(trends.Config{Geo: cfg.TrendsGeo})
	topics := fetcher.Fetch(ctx, cfg.TrendCount)

	topic := topics[console.PickIndex("TRENDING GAMING TOPICS:", topics)]

	platforms := rubric.Platforms()
	options := make([]string, len(platforms))
	for i, p := range platforms {
		r, err := rubric.Get(p)
		if err != nil {
			return err
		}
		options[i] = fmt.Sprintf("%s — %s", p, r.Description)
	}
	platform := platforms[console.PickIndex("CHOOSE YOUR PLATFORM:", options)]

	chosen, err := rubric.Get(platform)
	if err != nil {
		return err
	}

	console.Say("\nYou chose: %s on %s", topic, platform)
	console.Panel("Format hint", chosen.FormatHint)

	g := game.New(game.Config{
		Creator:   creator,
		Algorithm: algorithm,
		Audience:  audience,
		Persona:   persona,
		Presenter: console,
		MaxRounds: cfg.MaxRounds,
	})

	if _, err := g.Run(ctx, topic, platform); err != nil {
		if ctx.Err() != nil {
			console.Say("\nGame interrupted. See you next time!")
			return nil
		}
		return fmt.Errorf("session aborted: %w", err)
	}

	console.Say("\nThanks for playing Viral or Fail! Tweak the agents, try different platforms, and see if you can beat your score.")
	return nil
}
