package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/deadzone/internal/core"
	"github.com/vovakirdan/deadzone/internal/games/survival/world"
	"github.com/vovakirdan/deadzone/internal/platform/tui"
	"github.com/vovakirdan/deadzone/internal/registry"
	"github.com/vovakirdan/deadzone/internal/storage"
)

var flagCharacter string

var playCmd = &cobra.Command{
	Use:   "play [map]",
	Short: "Play a map",
	Long: `Start a survival run on the specified map (default: outpost).

Controls:
  W/A/S/D        - Move
  Arrows         - Aim and fire
  Mouse          - Aim; left button fires, right button knifes
  X              - Fire toward the current aim
  V              - Knife
  R              - Reload (restart after game over)
  E              - Interact: doors, wall buys, mystery box, perks, ammo
  1/2            - Weapon slots; pick the slot to drop on a swap
  Tab/Wheel      - Next/previous weapon
  G              - Throw frag or molotov
  F              - Throw stun or disco
  Space          - Dodge roll
  P/Esc          - Pause (Esc cancels a weapon swap)
  Ctrl+S         - Screenshot to ~/.deadzone/screenshots
  Q/Ctrl+C       - Quit

Characters:
  default   - frag + stun grenade
  magician  - molotov + disco grenade

Difficulty options:
  easy   - Zombies start weak, scale up over the rounds
  normal - The standard survival formulas
  hard   - Zombies start tough
  fixed  - No scaling beyond the round formulas

Examples:
  deadzone play
  deadzone play compound --character magician
  deadzone play outpost --difficulty hard
  deadzone play outpost --config ./my-survival.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagCharacter, "character", "default", "Starting character: default, magician")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := world.LevelOutpost
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if map exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown map %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'deadzone list' to see available maps.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	if lo, ok := game.(registry.Loadouts); ok {
		lo.SetCharacter(flagCharacter)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	sink := openAudio()
	attachAudio(game, sink)

	runErr := tui.Run(game, store, runtimeConfig())

	sink.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
