package engine

import (
	"testing"

	"github.com/vovakirdan/deadzone/internal/config"
	"github.com/vovakirdan/deadzone/internal/core"
	"github.com/vovakirdan/deadzone/internal/games/survival/entity"
	"github.com/vovakirdan/deadzone/internal/games/survival/world"
)

// newTestEngine builds an engine with the start countdown disabled unless
// the caller's tweak sets one.
func newTestEngine(t *testing.T, level string, tweak func(*config.SurvivalConfig)) *Engine {
	t.Helper()
	cfg := config.DefaultSurvivalConfig()
	cfg.Director.Countdown = 0
	if tweak != nil {
		tweak(&cfg)
	}
	e, err := New(Options{Level: level, Config: cfg, Seed: 42, Character: entity.CharacterDefault})
	if err != nil {
		t.Fatalf("New(%q) error: %v", level, err)
	}
	return e
}

func newOutpost(t *testing.T) *Engine {
	t.Helper()
	return newTestEngine(t, world.LevelOutpost, nil)
}

// addZombie places a zombie for the given round at pos.
func (e *Engine) addZombie(pos core.Vec, round int, v entity.Variant) *entity.Zombie {
	e.nextID++
	z := entity.NewZombie(e.nextID, pos, round, v, e.cfg.Zombie, 1, 1)
	e.zombies = append(e.zombies, z)
	return z
}

func countEvents(evs []Event, kind EventKind) int {
	n := 0
	for _, ev := range evs {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func hasSound(evs []Event, s core.Sound) bool {
	for _, ev := range evs {
		if ev.Kind == EventSound && ev.Sound == s {
			return true
		}
	}
	return false
}

func findEvent(evs []Event, kind EventKind) (Event, bool) {
	for _, ev := range evs {
		if ev.Kind == kind {
			return ev, true
		}
	}
	return Event{}, false
}
