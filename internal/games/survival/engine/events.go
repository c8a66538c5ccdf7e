package engine

import (
	"github.com/vovakirdan/deadzone/internal/core"
	"github.com/vovakirdan/deadzone/internal/games/survival/entity"
)

// EventKind identifies a one-shot engine event.
type EventKind int

const (
	EventSound EventKind = iota
	EventHitDirection
	EventScreenShake
	EventSwapPrompt
	EventGameOver
	EventDenied
	EventMuzzleFlash
	EventDamage
	EventKill
	EventExplosion
	EventPurchase
	EventRoundStart
)

func (k EventKind) String() string {
	switch k {
	case EventSound:
		return "sound"
	case EventHitDirection:
		return "hit-direction"
	case EventScreenShake:
		return "screen-shake"
	case EventSwapPrompt:
		return "swap-prompt"
	case EventGameOver:
		return "game-over"
	case EventDenied:
		return "denied"
	case EventMuzzleFlash:
		return "muzzle-flash"
	case EventDamage:
		return "damage"
	case EventKill:
		return "kill"
	case EventExplosion:
		return "explosion"
	case EventPurchase:
		return "purchase"
	case EventRoundStart:
		return "round-start"
	default:
		return "unknown"
	}
}

// Tone tells the renderer how to color floating text.
type Tone int

const (
	ToneHit Tone = iota
	ToneInsta
	TonePlayer
	TonePoints
	ToneBurn
	ToneBlast
)

// Event is a discrete notification for the render and audio layers. Only
// the fields relevant to Kind are set.
type Event struct {
	Kind   EventKind
	Sound  core.Sound
	Pos    core.Vec
	Dir    core.Vec // hit direction, player to attacker
	Angle  float64  // muzzle angle
	Amount float64  // shake intensity, damage or points
	Tone   Tone
	Text   string // victim label, denial reason, purchase label

	Weapon  entity.WeaponData // swap prompt offer
	Cost    int
	Grenade entity.GrenadeKind
	Round   int
}

func (e *Engine) emit(ev Event) {
	e.events = append(e.events, ev)
}

func (e *Engine) sound(s core.Sound) {
	e.emit(Event{Kind: EventSound, Sound: s})
}

func (e *Engine) shake(intensity float64) {
	e.emit(Event{Kind: EventScreenShake, Amount: intensity})
}

func (e *Engine) floatText(pos core.Vec, amount float64, tone Tone) {
	e.emit(Event{Kind: EventDamage, Pos: pos, Amount: amount, Tone: tone})
}

func (e *Engine) deny(reason string, s core.Sound) {
	e.sound(s)
	e.emit(Event{Kind: EventDenied, Text: reason})
}

func (e *Engine) purchased(label string, cost int) {
	e.sound(core.SoundPurchase)
	e.emit(Event{Kind: EventPurchase, Text: label, Cost: cost})
	e.log.Debug("purchase", "item", label, "cost", cost, "balance", e.counter.Ledger().Balance())
}

// Events returns and clears the events queued since the last call.
func (e *Engine) Events() []Event {
	ev := e.events
	e.events = nil
	return ev
}
