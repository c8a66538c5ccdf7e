// Package survival adapts the survival engine to the terminal platform: it
// registers one game per built-in map, translates platform input frames
// into engine intents and draws the simulation as a character grid.
package survival

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/deadzone/internal/config"
	"github.com/vovakirdan/deadzone/internal/core"
	"github.com/vovakirdan/deadzone/internal/games/survival/engine"
	"github.com/vovakirdan/deadzone/internal/games/survival/entity"
	"github.com/vovakirdan/deadzone/internal/games/survival/world"
	"github.com/vovakirdan/deadzone/internal/registry"
)

// Layout: one HUD row above the map viewport and two below it.
const (
	hudTop     = 1
	hudBottom  = 2
	minScreenW = 40
	minScreenH = 12
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// character stores the selected character
var character = entity.CharacterDefault

// logger receives engine diagnostics; nil discards them
var logger *log.Logger

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	if preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = config.ParsePreset(preset)
}

// SetCharacter selects the starting loadout for new runs.
func SetCharacter(name string) {
	character = entity.ParseCharacter(name)
}

// SetLogger routes engine diagnostics to l.
func SetLogger(l *log.Logger) {
	logger = l
}

func init() {
	for _, name := range world.Names() {
		registry.Register(name, func() registry.Game { return New(name) })
	}
}

// Game runs one survival map.
type Game struct {
	level string
	title string
	char  entity.Character

	runtime core.RuntimeConfig
	cfg     config.SurvivalConfig
	eng     *engine.Engine
	fx      *Effects
	camera  Camera
	sink    core.SoundSink

	pad    engine.Gamepad
	padIn  engine.GamepadState
	padSet bool

	screenTooSmall bool
}

// New creates a game for a built-in map.
func New(level string) *Game {
	title := level
	if m, err := world.Load(level); err == nil {
		title = m.Title()
	}
	return &Game{level: level, title: title, char: character, sink: core.SilentSink{}}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.level
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Characters lists the selectable loadouts.
func (g *Game) Characters() []string {
	return []string{string(entity.CharacterDefault), string(entity.CharacterMagician)}
}

// SetCharacter picks the loadout used from the next Reset on.
func (g *Game) SetCharacter(name string) {
	g.char = entity.ParseCharacter(name)
}

// SetSoundSink routes sound cues to s.
func (g *Game) SetSoundSink(s core.SoundSink) {
	if s == nil {
		s = core.SilentSink{}
	}
	g.sink = s
}

// SetGamepad feeds the latest controller poll. It is merged into the
// keyboard and mouse input on the next Step.
func (g *Game) SetGamepad(s engine.GamepadState) {
	g.padIn = s
	g.padSet = true
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadSurvival(configPath)
	if err != nil {
		cfg = config.DefaultSurvivalConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplySurvivalPreset(&cfg, difficultyPreset)
	}

	eng, err := engine.New(engine.Options{
		Level:     g.level,
		Character: g.char,
		Config:    cfg,
		Seed:      runtime.Seed,
		Logger:    logger,
	})
	if err != nil {
		// Built-in maps always load; fall back to the first one.
		eng, _ = engine.New(engine.Options{
			Level:     world.LevelOutpost,
			Character: g.char,
			Config:    cfg,
			Seed:      runtime.Seed,
			Logger:    logger,
		})
	}
	g.cfg = cfg
	g.eng = eng
	g.fx = NewEffects(runtime.Seed)
	g.pad = engine.Gamepad{}
	g.resize(runtime.ScreenW, runtime.ScreenH)
}

func (g *Game) resize(w, h int) {
	g.screenTooSmall = w < minScreenW || h < minScreenH
	g.camera.Cols = w
	g.camera.Rows = max(h-hudTop-hudBottom, 0)
	g.camera.Top = hudTop
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.eng.GameOver() {
		g.eng.Restart()
		g.fx.Reset()
		return core.StepResult{State: g.State()}
	}

	g.camera.Center = g.eng.Player().Pos
	intents := g.intents(in)
	if g.padSet {
		intents = intents.Merge(g.pad.Normalize(g.padIn))
	}

	dt := g.runtime.FrameMillis()
	g.eng.Update(dt, intents)
	for _, ev := range g.eng.Events() {
		if ev.Kind == engine.EventSound {
			g.sink.Play(ev.Sound)
			continue
		}
		g.fx.Apply(ev)
	}
	if !g.eng.Paused() {
		g.fx.Update(dt)
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state. The score is the round reached.
func (g *Game) State() core.GameState {
	if g.eng == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.eng.Director().Round,
		GameOver: g.eng.GameOver(),
		Paused:   g.eng.Paused(),
	}
}

// Summary describes the current run.
func (g *Game) Summary() core.RunSummary {
	if g.eng == nil {
		return core.RunSummary{Map: g.level, Character: string(g.char)}
	}
	return g.eng.Summary()
}

// Engine exposes the underlying simulation.
func (g *Game) Engine() *engine.Engine {
	return g.eng
}
