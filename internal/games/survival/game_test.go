package survival

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/deadzone/internal/core"
	"github.com/vovakirdan/deadzone/internal/games/survival/engine"
	"github.com/vovakirdan/deadzone/internal/games/survival/entity"
	"github.com/vovakirdan/deadzone/internal/games/survival/world"
	"github.com/vovakirdan/deadzone/internal/registry"
)

type recordingSink struct {
	played []core.Sound
}

func (r *recordingSink) Play(s core.Sound) { r.played = append(r.played, s) }

func (r *recordingSink) has(s core.Sound) bool {
	for _, p := range r.played {
		if p == s {
			return true
		}
	}
	return false
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 20, Seed: 7}
}

// withConfig points the package at a temporary YAML file for one test.
func withConfig(t *testing.T, doc string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "survival.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })
}

func newGame(t *testing.T, level string) *Game {
	t.Helper()
	g := New(level)
	g.Reset(testRuntime())
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestRegistered(t *testing.T) {
	tests := []struct {
		id    string
		title string
	}{
		{"outpost", "Outpost"},
		{"compound", "Compound"},
	}
	for _, tt := range tests {
		if !registry.Exists(tt.id) {
			t.Errorf("%s not registered", tt.id)
			continue
		}
		g, err := registry.Create(tt.id)
		if err != nil {
			t.Fatalf("Create(%s) error: %v", tt.id, err)
		}
		if g.Title() != tt.title {
			t.Errorf("Title() = %q, expected %q", g.Title(), tt.title)
		}
		if _, ok := g.(registry.Audible); !ok {
			t.Errorf("%s does not accept a sound sink", tt.id)
		}
		if _, ok := g.(registry.RunReporter); !ok {
			t.Errorf("%s does not report runs", tt.id)
		}
	}
}

func TestCameraRoundTrip(t *testing.T) {
	c := Camera{Center: core.V(1000, 1000), Cols: 80, Rows: 21, Top: 1}

	x, y := c.ToScreen(c.Center)
	if x != 40 || y != 11 {
		t.Errorf("ToScreen(center) = (%d, %d), expected (40, 11)", x, y)
	}
	for _, cell := range [][2]int{{0, 1}, {40, 11}, {79, 21}, {13, 5}} {
		p := c.ToWorld(cell[0], cell[1])
		gx, gy := c.ToScreen(p)
		if gx != cell[0] || gy != cell[1] {
			t.Errorf("ToScreen(ToWorld(%d, %d)) = (%d, %d)", cell[0], cell[1], gx, gy)
		}
	}
	if c.Visible(40, 0) || !c.Visible(40, 1) || c.Visible(80, 5) || c.Visible(0, 22) {
		t.Error("Visible disagrees with the viewport bounds")
	}
}

func TestIntents(t *testing.T) {
	g := newGame(t, "outpost")

	tests := []struct {
		name  string
		in    core.InputFrame
		check func(engine.Intents) bool
	}{
		{"move", frame(core.ActionUp, core.ActionLeft), func(it engine.Intents) bool {
			return it.Move == core.V(-1, -1)
		}},
		{"arrow aim fires", frame(core.ActionAimRight), func(it engine.Intents) bool {
			return it.AimAngleSet && it.AimAngle == 0 && it.Fire
		}},
		{"arrow aim down", frame(core.ActionAimDown), func(it engine.Intents) bool {
			return it.AimAngleSet && math.Abs(it.AimAngle-math.Pi/2) < 1e-9
		}},
		{"fire", frame(core.ActionFire), func(it engine.Intents) bool { return it.Fire && !it.AimAngleSet }},
		{"slot", frame(core.ActionSlot2), func(it engine.Intents) bool { return it.Slot == 2 && it.SwapSlot == 0 }},
		{"cycle", frame(core.ActionWeaponPrev), func(it engine.Intents) bool { return it.Cycle == -1 }},
		{"primary", frame(core.ActionThrowPrimary), func(it engine.Intents) bool { return it.Throw == entity.GrenadeFrag }},
		{"special", frame(core.ActionThrowSpecial), func(it engine.Intents) bool { return it.Throw == entity.GrenadeStun }},
		{"back pauses", frame(core.ActionBack), func(it engine.Intents) bool { return it.Pause && !it.SwapCancel }},
		{"triggers", frame(core.ActionMelee, core.ActionReload, core.ActionInteract, core.ActionRoll), func(it engine.Intents) bool {
			return it.Melee && it.Reload && it.Interact && it.Roll
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if it := g.intents(tt.in); !tt.check(it) {
				t.Errorf("intents(%s) = %+v", tt.name, it)
			}
		})
	}
}

func TestPointerAim(t *testing.T) {
	g := newGame(t, "outpost")
	g.camera.Center = g.eng.Player().Pos

	in := core.NewInputFrame()
	in.Pointer = core.Pointer{X: 60, Y: 11, Valid: true}
	it := g.intents(in)

	if !it.AimSet {
		t.Fatal("pointer did not set an aim point")
	}
	if it.Aim.X <= g.eng.Player().Pos.X {
		t.Errorf("aim = %v, expected right of the player at %v", it.Aim, g.eng.Player().Pos)
	}
	if it.Fire {
		t.Error("pointer motion alone must not fire")
	}
}

func TestSwapPromptRouting(t *testing.T) {
	withConfig(t, "economy:\n  starting_points: 600\ndirector:\n  countdown: 0\n")
	g := newGame(t, "outpost")

	p := g.eng.Player()
	smg, _ := entity.LookupWeapon("smg")
	p.AddWeapon(smg)
	p.Pos = core.V(400, 400)

	g.Step(frame(core.ActionInteract))
	if g.eng.PendingSwap() == nil {
		t.Fatal("expected a pending swap at the shotgun wall buy")
	}

	it := g.intents(frame(core.ActionSlot2))
	if it.SwapSlot != 2 || it.Slot != 0 {
		t.Errorf("slot key with a prompt open = %+v, expected SwapSlot 2", it)
	}
	if it := g.intents(frame(core.ActionBack)); !it.SwapCancel || it.Pause {
		t.Errorf("back with a prompt open = %+v, expected cancel", it)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Take Olympia ($500)") {
		t.Error("swap prompt not drawn")
	}

	g.Step(frame(core.ActionSlot1))
	if g.eng.PendingSwap() != nil {
		t.Error("swap still pending after choosing a slot")
	}
	if p.Weapons[0].Key != "shotgun" {
		t.Errorf("slot 1 = %s, expected shotgun", p.Weapons[0].Key)
	}
	if g.eng.Points() != 100 {
		t.Errorf("points = %d, expected 100", g.eng.Points())
	}
}

func TestStepForwardsSounds(t *testing.T) {
	g := New("outpost")
	sink := &recordingSink{}
	g.SetSoundSink(sink)
	g.Reset(testRuntime())

	// The default countdown is 3000 ms; 50 ms ticks clear it in 60 steps.
	for range 100 {
		g.Step(frame(core.ActionFire))
		if sink.has(core.SoundPistol) {
			break
		}
	}
	if !sink.has(core.SoundPistol) {
		t.Fatalf("no pistol cue after the countdown, got %v", sink.played)
	}
	if g.fx.Shake() == 0 {
		t.Error("shot did not shake the camera")
	}
}

func TestPauseStep(t *testing.T) {
	g := newGame(t, "outpost")

	g.Step(frame(core.ActionPause))
	g.Step(core.NewInputFrame())
	if !g.State().Paused {
		t.Fatal("game not paused")
	}
	tick := g.eng.Snapshot().Tick
	g.Step(core.NewInputFrame())
	if g.eng.Snapshot().Tick != tick {
		t.Error("simulation advanced while paused")
	}
}

func TestStateAndSummary(t *testing.T) {
	SetCharacter("magician")
	t.Cleanup(func() { SetCharacter("default") })
	g := newGame(t, "compound")

	st := g.State()
	if st.Score != 1 || st.GameOver || st.Paused {
		t.Errorf("State() = %+v, expected round 1 running", st)
	}
	sum := g.Summary()
	if sum.Map != "compound" || sum.Character != "magician" || sum.Round != 1 {
		t.Errorf("Summary() = %+v", sum)
	}
	if g.eng.Player().GrenadeCount(entity.GrenadeMolotov) != 1 {
		t.Error("magician loadout not applied")
	}
}

func TestRender(t *testing.T) {
	g := newGame(t, "outpost")
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if x, y := g.camera.ToScreen(g.eng.Player().Pos); screen.Get(x, y) != PlayerChar {
		t.Errorf("player glyph at (%d, %d) = %q", x, y, screen.Get(x, y))
	}
	out := screen.String()
	for _, want := range []string{"ROUND 1", "HP 100/100", "$500", "M1911 8/32", "STARTS IN", "frag x1"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}

func TestRenderHints(t *testing.T) {
	withConfig(t, "director:\n  countdown: 0\n")
	g := newGame(t, "outpost")
	screen := core.NewScreen(80, 24)

	// The start position doubles as the ammo station.
	g.Render(screen)
	if !strings.Contains(screen.String(), "E: ammo $250") {
		t.Error("ammo hint missing at the start position")
	}

	g.eng.Player().Pos = core.V(1200, 620)
	g.Render(screen)
	if !strings.Contains(screen.String(), "E: quick-revive $1500") {
		t.Error("vending hint missing")
	}
}

func TestRenderBoxHint(t *testing.T) {
	withConfig(t, "director:\n  countdown: 0\n")
	g := newGame(t, "compound")
	screen := core.NewScreen(80, 24)
	g.eng.Player().Pos = core.V(1100, 430)

	g.Render(screen)
	if out := screen.String(); !strings.Contains(out, "E: mystery box $") || strings.Contains(out, "left)") {
		t.Error("expected the plain box hint before the first use")
	}

	rb := g.eng.World().(world.RelocatableBox)
	rb.UseBox(entity.NewSimpleRNG(1))
	left := rb.UsesLeft()
	g.Render(screen)
	if want := fmt.Sprintf("(%d left)", left); !strings.Contains(screen.String(), want) {
		t.Errorf("box hint missing %q", want)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New("outpost")
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 8, TickRate: 60})
	screen := core.NewScreen(20, 8)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Screen too small!") {
		t.Error("expected the too-small notice")
	}
	if res := g.Step(frame(core.ActionFire)); res.State.GameOver {
		t.Error("too-small step reported game over")
	}
}

func TestEffectsApply(t *testing.T) {
	fx := NewEffects(1)
	fx.Apply(engine.Event{Kind: engine.EventScreenShake, Amount: 8})
	fx.Apply(engine.Event{Kind: engine.EventScreenShake, Amount: 3})
	fx.Apply(engine.Event{Kind: engine.EventDamage, Pos: core.V(10, 10), Amount: 37.5, Tone: engine.ToneHit})
	fx.Apply(engine.Event{Kind: engine.EventKill, Pos: core.V(10, 10)})
	fx.Apply(engine.Event{Kind: engine.EventDenied, Text: "not enough points"})
	fx.Apply(engine.Event{Kind: engine.EventHitDirection, Dir: core.V(1, 0)})

	if fx.Shake() != 8 {
		t.Errorf("shake = %v, expected the stronger 8", fx.Shake())
	}
	if len(fx.texts) != 1 || fx.texts[0].Text != "-38" {
		t.Errorf("floating text = %+v, expected -38", fx.texts)
	}
	if len(fx.particles) != killParticles {
		t.Errorf("particles = %d, expected %d", len(fx.particles), killParticles)
	}
	if msg, _, ok := fx.Message(); !ok || msg != "not enough points" {
		t.Errorf("message = %q, %v", msg, ok)
	}
	if _, ok := fx.HitIndicator(); !ok {
		t.Error("hit indicator not shown")
	}

	fx.Update(1000)
	if len(fx.texts) != 0 || len(fx.particles) != 0 {
		t.Error("effects outlived their lifetime")
	}
	if _, ok := fx.HitIndicator(); ok {
		t.Error("hit indicator outlived its lifetime")
	}
	if fx.Shake() >= 8 {
		t.Error("shake did not decay")
	}
}

func TestLoadouts(t *testing.T) {
	g := New("outpost")
	var lo registry.Loadouts = g
	if got := lo.Characters(); len(got) != 2 || got[1] != "magician" {
		t.Fatalf("Characters() = %v", got)
	}
	lo.SetCharacter("magician")
	g.Reset(testRuntime())
	if g.Summary().Character != "magician" {
		t.Errorf("Character = %s, expected magician", g.Summary().Character)
	}
	if other := New("outpost"); other.Summary().Character != "default" {
		t.Error("SetCharacter leaked into another game")
	}
}
