package survival

import (
	"fmt"
	"math"
	"slices"

	"github.com/vovakirdan/deadzone/internal/core"
	"github.com/vovakirdan/deadzone/internal/games/survival/engine"
	"github.com/vovakirdan/deadzone/internal/games/survival/entity"
)

// Effect timings in milliseconds.
const (
	floatLife     = 800
	floatRise     = 60 // world units per second
	particleLife  = 400
	hitLife       = 600
	flashLife     = 60
	messageLife   = 1500
	shakeDecay    = 0.9
	shakeScale    = 2.0 // world units per intensity point
	shakeCutoff   = 0.5
	killParticles = 6
	blastSparks   = 12
)

type floater struct {
	Pos   core.Vec
	Text  string
	Color core.Color
	Age   float64
}

type particle struct {
	Pos   core.Vec
	Vel   core.Vec
	Glyph rune
	Color core.Color
	Left  float64
}

// Effects holds the purely visual state derived from engine events:
// floating numbers, particles, screen shake, the hit indicator and short
// status messages.
type Effects struct {
	rng       *entity.SimpleRNG
	texts     []floater
	particles []particle

	shake   float64
	hitDir  core.Vec
	hitLeft float64

	flashPos   core.Vec
	flashAngle float64
	flashLeft  float64

	message      string
	messageColor core.Color
	messageLeft  float64
}

// NewEffects creates an empty effect layer. The seed only jitters particles.
func NewEffects(seed int64) *Effects {
	return &Effects{rng: entity.NewSimpleRNG(seed)}
}

// Apply turns one engine event into visuals. Sound events are ignored.
func (fx *Effects) Apply(ev engine.Event) {
	switch ev.Kind {
	case engine.EventScreenShake:
		fx.shake = math.Max(fx.shake, ev.Amount)
	case engine.EventHitDirection:
		fx.hitDir = ev.Dir
		fx.hitLeft = hitLife
	case engine.EventMuzzleFlash:
		fx.flashPos = ev.Pos
		fx.flashAngle = ev.Angle
		fx.flashLeft = flashLife
	case engine.EventDamage:
		fx.float(ev.Pos, damageText(ev), toneColor(ev.Tone))
	case engine.EventKill:
		fx.burst(ev.Pos, killParticles, '%', core.ColorDarkRed, 150)
	case engine.EventExplosion:
		fx.burst(ev.Pos, blastSparks, '*', grenadeColor(ev.Grenade), ev.Amount*2)
	case engine.EventPurchase:
		fx.say(fmt.Sprintf("Bought %s", ev.Text), core.ColorBrightGreen)
	case engine.EventDenied:
		fx.say(ev.Text, core.ColorBrightRed)
	case engine.EventRoundStart:
		fx.say(fmt.Sprintf("Round %d", ev.Round), core.ColorBrightYellow)
	case engine.EventGameOver:
		fx.shake = 0
	}
}

// Update ages every effect by dt milliseconds.
func (fx *Effects) Update(dt float64) {
	fx.shake *= shakeDecay
	if fx.shake < shakeCutoff {
		fx.shake = 0
	}
	fx.hitLeft = math.Max(0, fx.hitLeft-dt)
	fx.flashLeft = math.Max(0, fx.flashLeft-dt)
	fx.messageLeft = math.Max(0, fx.messageLeft-dt)

	dts := dt / 1000
	for i := range fx.texts {
		fx.texts[i].Age += dt
		fx.texts[i].Pos.Y -= floatRise * dts
	}
	fx.texts = slices.DeleteFunc(fx.texts, func(f floater) bool { return f.Age >= floatLife })

	for i := range fx.particles {
		p := &fx.particles[i]
		p.Left -= dt
		p.Pos = p.Pos.Add(p.Vel.Scale(dts))
	}
	fx.particles = slices.DeleteFunc(fx.particles, func(p particle) bool { return p.Left <= 0 })
}

// ShakeOffset returns a random camera offset for the current shake.
func (fx *Effects) ShakeOffset() core.Vec {
	if fx.shake == 0 {
		return core.Vec{}
	}
	amp := fx.shake * shakeScale
	return core.V((fx.rng.Float64()*2-1)*amp, (fx.rng.Float64()*2-1)*amp)
}

// Shake returns the current shake intensity.
func (fx *Effects) Shake() float64 { return fx.shake }

// HitIndicator returns the direction of the last hit while it is shown.
func (fx *Effects) HitIndicator() (core.Vec, bool) {
	return fx.hitDir, fx.hitLeft > 0
}

// Message returns the current status line.
func (fx *Effects) Message() (string, core.Color, bool) {
	return fx.message, fx.messageColor, fx.messageLeft > 0
}

// Reset drops every effect.
func (fx *Effects) Reset() {
	fx.texts = nil
	fx.particles = nil
	fx.shake = 0
	fx.hitLeft = 0
	fx.flashLeft = 0
	fx.messageLeft = 0
}

func (fx *Effects) float(pos core.Vec, text string, c core.Color) {
	fx.texts = append(fx.texts, floater{Pos: pos, Text: text, Color: c})
}

func (fx *Effects) say(text string, c core.Color) {
	fx.message = text
	fx.messageColor = c
	fx.messageLeft = messageLife
}

func (fx *Effects) burst(pos core.Vec, n int, glyph rune, c core.Color, speed float64) {
	for range n {
		angle := fx.rng.Float64() * 2 * math.Pi
		v := core.FromAngle(angle).Scale(speed * (0.5 + fx.rng.Float64()/2))
		fx.particles = append(fx.particles, particle{
			Pos:   pos,
			Vel:   v,
			Glyph: glyph,
			Color: c,
			Left:  particleLife,
		})
	}
}

func damageText(ev engine.Event) string {
	if ev.Tone == engine.TonePoints {
		return fmt.Sprintf("+%d", int(ev.Amount))
	}
	return fmt.Sprintf("-%d", int(math.Round(ev.Amount)))
}

func toneColor(t engine.Tone) core.Color {
	switch t {
	case engine.ToneInsta:
		return core.ColorBrightMagenta
	case engine.TonePlayer:
		return core.ColorBrightRed
	case engine.TonePoints:
		return core.ColorBrightYellow
	case engine.ToneBurn:
		return core.ColorOrange
	case engine.ToneBlast:
		return core.ColorYellow
	default:
		return core.ColorWhite
	}
}

func grenadeColor(k entity.GrenadeKind) core.Color {
	switch k {
	case entity.GrenadeMolotov:
		return core.ColorOrange
	case entity.GrenadeStun:
		return core.ColorBrightCyan
	case entity.GrenadeDisco:
		return core.ColorBrightMagenta
	default:
		return core.ColorBrightYellow
	}
}
