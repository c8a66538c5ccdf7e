// deadzone is a top-down zombie survival shooter for the terminal.
//
// Usage:
//
//	deadzone list              - List available maps
//	deadzone play [map]        - Play a map
//	deadzone menu              - Start menu to pick maps interactively
//	deadzone serve             - Start SSH server for remote play
//	deadzone scores <map>      - Show best rounds for a map
//	deadzone runs [id]         - Show the run history or one run
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.deadzone/scores.db)
//	--config <path>       - Custom survival config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--mute                - Disable sound
//	--log <path>          - Write diagnostics to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/deadzone/internal/audio"
	"github.com/vovakirdan/deadzone/internal/games/survival"
	"github.com/vovakirdan/deadzone/internal/platform/tui"
	"github.com/vovakirdan/deadzone/internal/registry"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagVolume     float64
	flagLogPath    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "deadzone",
	Short: "deadzone - survive the rounds in your terminal",
	Long: `deadzone is a top-down zombie survival shooter that runs in your
terminal or over SSH. Hold out against endless rounds, buy weapons off the
walls, open the map and gamble at the mystery box.

Available commands:
  list     - Show all available maps
  play     - Play a map directly
  menu     - Interactive map and character picker
  serve    - Start SSH server for remote play
  scores   - View the best rounds for a map
  runs     - View the run history

Examples:
  deadzone list
  deadzone play outpost
  deadzone play compound --character magician --difficulty hard
  deadzone menu
  deadzone serve --ssh :2222
  deadzone runs --map outpost`,
	PersistentPreRunE: setupLogging,
	SilenceUsage:      true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.deadzone/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom survival config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().Float64Var(&flagVolume, "volume", 0.6, "Sound volume (0..1)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write diagnostics to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(runsCmd)
}

// logger is shared by the engine and the platform; discards unless --log is set.
var logger = log.New(io.Discard)

// setupLogging opens the --log file. The terminal belongs to the game, so
// diagnostics never go to stderr during play.
func setupLogging(_ *cobra.Command, _ []string) error {
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Level:           log.DebugLevel,
			Prefix:          "deadzone",
		})
	}
	survival.SetLogger(logger)
	tui.SetLogger(logger)

	survival.SetConfigPath(flagConfig)
	survival.SetDifficultyPreset(flagDifficulty)
	return nil
}

// openAudio starts the speaker unless muted. A missing device only
// costs the sound.
func openAudio() *audio.Sink {
	sink := audio.New(audio.Options{
		Volume: flagVolume,
		Muted:  flagMute,
		Logger: logger,
	})
	//nolint:errcheck // Logged by the sink; play continues silently
	sink.Open()
	return sink
}

// attachAudio routes the game's sound cues to sink.
func attachAudio(game registry.Game, sink *audio.Sink) {
	if a, ok := game.(registry.Audible); ok {
		a.SetSoundSink(sink)
	}
}
