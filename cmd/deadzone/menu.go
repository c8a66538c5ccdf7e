package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/deadzone/internal/platform/tui"
	"github.com/vovakirdan/deadzone/internal/registry"
	"github.com/vovakirdan/deadzone/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a map and character picker",
	Long: `Start deadzone in interactive menu mode.

Pick a map with Up/Down and a character with Left/Right, then press Enter.
After a run ends, Esc returns you to the menu.

Controls:
  Up/Down/j/k     - Choose map
  Left/Right/h/l  - Choose character
  Enter/Space     - Play
  Tab             - Run history
  Q               - Quit

Examples:
  deadzone menu
  deadzone menu --fps 20
  deadzone menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	sink := openAudio()
	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		if menuResult.GameID == "" {
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}
		if lo, ok := game.(registry.Loadouts); ok && menuResult.Character != "" {
			lo.SetCharacter(menuResult.Character)
		}
		attachAudio(game, sink)

		// Fresh seed for each run unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	sink.Close()
	if store != nil {
		store.Close()
	}
}
