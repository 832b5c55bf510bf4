package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dsemenov/retrocade/internal/config"
	"github.com/dsemenov/retrocade/internal/core"
	"github.com/dsemenov/retrocade/internal/games/beam"
	"github.com/dsemenov/retrocade/internal/games/breakout"
	"github.com/dsemenov/retrocade/internal/games/dino"
	"github.com/dsemenov/retrocade/internal/games/frogger"
	"github.com/dsemenov/retrocade/internal/games/jezzball"
	"github.com/dsemenov/retrocade/internal/games/pinball"
	"github.com/dsemenov/retrocade/internal/platform/tui"
	"github.com/dsemenov/retrocade/internal/registry"
	"github.com/dsemenov/retrocade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  WASD/Arrows - Move
  Space       - Primary action (fire, jump, launch, inject)
  X           - Secondary action
  P/Esc       - Pause
  R           - Restart
  Q/Ctrl+C    - Quit

Beam accepts a difficulty preset:
  easy - no section restrictions, no beam growth
  hard - restricted sections and beam growth per element

Examples:
  arcade play breakout
  arcade play dino --seed 42
  arcade play beam --difficulty hard
  arcade play jezzball --config ./my-jezzball.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, hard (beam only)")
}

// applyGameFlags routes the --config and --difficulty flags to the
// package that owns the game. Games pick them up on the next Reset.
func applyGameFlags(gameID string) {
	switch gameID {
	case "breakout":
		breakout.SetConfigPath(flagConfig)
	case "dino":
		dino.SetConfigPath(flagConfig)
	case "frogger":
		frogger.SetConfigPath(flagConfig)
	case "jezzball":
		jezzball.SetConfigPath(flagConfig)
	case "pinball":
		pinball.SetConfigPath(flagConfig)
	case "beam":
		beam.SetConfigPath(flagConfig)
		if flagDifficulty != "" {
			beam.SetDifficulty(config.DifficultyPreset(flagDifficulty))
		}
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	applyGameFlags(gameID)

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(gameID, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
