package engine

import (
	"math"
	"testing"

	"github.com/vovakirdan/deadzone/internal/config"
	"github.com/vovakirdan/deadzone/internal/core"
	"github.com/vovakirdan/deadzone/internal/games/survival/entity"
	"github.com/vovakirdan/deadzone/internal/games/survival/world"
)

func TestNewUnknownLevel(t *testing.T) {
	if _, err := New(Options{Level: "nowhere", Config: config.DefaultSurvivalConfig()}); err == nil {
		t.Error("New(nowhere) error = nil, expected error")
	}
}

func TestNewEngineState(t *testing.T) {
	e := newOutpost(t)
	if e.Points() != 500 {
		t.Errorf("Points() = %d, expected 500", e.Points())
	}
	if e.Player().Pos != core.V(1200, 1200) {
		t.Errorf("player pos = %v, expected map center", e.Player().Pos)
	}
	if e.Director().Round != 1 {
		t.Errorf("round = %d, expected 1", e.Director().Round)
	}
	if e.Director().Phase != PhaseActive {
		t.Errorf("phase = %v, expected active without countdown", e.Director().Phase)
	}
}

// Scenario C: nothing spawns and contact deals no damage before the
// countdown elapses.
func TestCountdownBlocksSpawnAndDamage(t *testing.T) {
	e := newTestEngine(t, world.LevelOutpost, func(c *config.SurvivalConfig) {
		c.Director.Countdown = 3000
	})
	p := e.Player()
	e.addZombie(p.Pos, 1, entity.Variant{})

	for range 59 {
		e.Update(50, Intents{})
	}
	if e.Director().Phase != PhaseCountdown {
		t.Fatalf("phase after 2950ms = %v, expected countdown", e.Director().Phase)
	}
	if e.Director().Spawned != 0 {
		t.Errorf("spawned during countdown = %d, expected 0", e.Director().Spawned)
	}
	if p.Health != p.MaxHealth {
		t.Errorf("health during countdown = %v, expected %v", p.Health, p.MaxHealth)
	}

	e.Update(50, Intents{})
	if e.Director().Phase != PhaseActive {
		t.Fatalf("phase after 3000ms = %v, expected active", e.Director().Phase)
	}
	e.Update(50, Intents{})
	if e.Director().Spawned != 1 {
		t.Errorf("spawned after countdown = %d, expected 1", e.Director().Spawned)
	}
	if p.Health >= p.MaxHealth {
		t.Error("contact damage expected once the round is active")
	}
}

func TestSpawnSchedule(t *testing.T) {
	e := newOutpost(t)
	e.Update(50, Intents{})
	if e.Director().Spawned != 1 || len(e.zombies) != 1 {
		t.Fatalf("first tick spawned %d (roster %d), expected 1", e.Director().Spawned, len(e.zombies))
	}
	// Round 1 interval is max(500, 2000-100) = 1900ms.
	for range 37 {
		e.Update(50, Intents{})
	}
	if e.Director().Spawned != 1 {
		t.Errorf("spawned after 1850ms = %d, expected 1", e.Director().Spawned)
	}
	e.Update(50, Intents{})
	if e.Director().Spawned != 2 {
		t.Errorf("spawned after 1900ms = %d, expected 2", e.Director().Spawned)
	}
	if e.zombies[0].Boss || e.zombies[0].Exploder || e.zombies[0].Toxic {
		t.Errorf("round 1 spawn = %+v, expected a plain zombie", e.zombies[0])
	}
}

func TestRoundTransition(t *testing.T) {
	e := newOutpost(t)
	d := e.Director()
	d.Spawned = d.ToSpawn
	p := e.Player()
	p.TakeDamage(60)

	e.Update(50, Intents{})
	if d.Phase != PhaseRoundClear {
		t.Fatalf("phase = %v, expected round-clear", d.Phase)
	}
	if !hasSound(e.Events(), core.SoundRoundWon) {
		t.Error("round-won sound not emitted")
	}

	var evs []Event
	for range 60 {
		e.Update(50, Intents{})
		evs = append(evs, e.Events()...)
	}
	if d.Round != 2 || d.Phase != PhaseActive {
		t.Fatalf("round = %d phase = %v, expected 2 active", d.Round, d.Phase)
	}
	if p.Health != p.MaxHealth {
		t.Errorf("health = %v, expected full heal to %v", p.Health, p.MaxHealth)
	}
	if d.Spawned != 0 || d.Killed != 0 {
		t.Errorf("counters = %d/%d, expected reset", d.Spawned, d.Killed)
	}
	if d.ToSpawn != 12 {
		t.Errorf("round 2 budget = %d, expected 12", d.ToSpawn)
	}
	if countEvents(evs, EventRoundStart) != 1 {
		t.Errorf("round-start events = %d, expected 1", countEvents(evs, EventRoundStart))
	}
}

func TestGameOverOnce(t *testing.T) {
	e := newOutpost(t)
	p := e.Player()
	p.Health = 1
	e.addZombie(p.Pos, 1, entity.Variant{})

	e.Update(16, Intents{})
	if !e.GameOver() {
		t.Fatal("GameOver() = false, expected true")
	}
	if p.Health != 0 {
		t.Errorf("health = %v, expected 0", p.Health)
	}
	evs := e.Events()
	if n := countEvents(evs, EventGameOver); n != 1 {
		t.Errorf("game-over events = %d, expected 1", n)
	}

	tick := e.tick
	e.Update(16, Intents{Fire: true})
	if e.tick != tick || len(e.Events()) != 0 {
		t.Error("Update after game over should be a no-op")
	}
}

func TestRestart(t *testing.T) {
	e := newTestEngine(t, world.LevelOutpost, func(c *config.SurvivalConfig) {
		c.Director.Countdown = 3000
	})
	p := e.Player()
	p.AddWeapon(mustWeapon(t, "smg"))
	e.counter.Ledger().Credit(1000)
	e.counter.BuyWeapon(p, len(p.Weapons), mustWeapon(t, "rifle"), 500)
	e.World().PurchaseDoor("door-north")
	e.addZombie(core.V(900, 900), 1, entity.Variant{})
	e.director.Stop()
	feed := e.feed
	feed.Add("You", "Zombie", "M1911")

	e.Restart()

	if e.feed != feed || len(e.feed.Entries()) != 0 {
		t.Errorf("kill feed after restart = %v, expected the same feed emptied", e.feed.Entries())
	}

	if e.GameOver() || e.Director().Phase != PhaseCountdown {
		t.Errorf("phase after restart = %v, expected countdown", e.Director().Phase)
	}
	if e.Points() != 500 {
		t.Errorf("points after restart = %d, expected 500", e.Points())
	}
	if e.PendingSwap() != nil {
		t.Error("pending swap survived restart")
	}
	if len(e.zombies) != 0 || len(e.Player().Weapons) != 1 {
		t.Errorf("roster %d weapons %d, expected 0 and 1", len(e.zombies), len(e.Player().Weapons))
	}
	if e.World().Unlocked("north") {
		t.Error("door zone still unlocked after restart")
	}
}

func TestPauseDeferredToNextTick(t *testing.T) {
	e := newOutpost(t)

	e.Update(50, Intents{Pause: true})
	if e.Paused() {
		t.Fatal("pause applied mid-tick, expected deferral")
	}
	if e.tick != 1 {
		t.Fatalf("tick = %d, expected 1", e.tick)
	}

	e.Update(50, Intents{})
	if !e.Paused() || e.tick != 1 {
		t.Fatalf("paused = %v tick = %d, expected paused at tick 1", e.Paused(), e.tick)
	}

	e.Update(50, Intents{Pause: true})
	if !e.Paused() {
		t.Fatal("unpause applied mid-tick, expected deferral")
	}
	e.Update(50, Intents{})
	if e.Paused() || e.tick != 2 {
		t.Errorf("paused = %v tick = %d, expected running at tick 2", e.Paused(), e.tick)
	}
}

func TestRequestPause(t *testing.T) {
	e := newOutpost(t)
	e.RequestPause()
	if e.Paused() {
		t.Fatal("RequestPause applied immediately")
	}
	e.Update(50, Intents{})
	if !e.Paused() {
		t.Error("pause not applied at the next tick")
	}
}

func TestDeltaClamped(t *testing.T) {
	e := newOutpost(t)
	e.Update(1000, Intents{})
	if e.elapsed != 50 {
		t.Errorf("elapsed = %v, expected clamp to 50", e.elapsed)
	}
	e.Update(-20, Intents{})
	if e.elapsed != 50 {
		t.Errorf("elapsed = %v, expected negative dt clamped to 0", e.elapsed)
	}
}

func TestNonNegativeState(t *testing.T) {
	e := newOutpost(t)
	rng := entity.NewSimpleRNG(7)

	for i := range 4000 {
		in := Intents{
			Move:        core.FromAngle(rng.Float64() * 2 * math.Pi),
			AimAngle:    rng.Float64() * 2 * math.Pi,
			AimAngleSet: true,
			Fire:        rng.Chance(0.7),
			Melee:       rng.Chance(0.05),
			Reload:      rng.Chance(0.05),
			Interact:    rng.Chance(0.05),
			Roll:        rng.Chance(0.02),
			Cycle:       rng.Intn(3) - 1,
			SwapSlot:    rng.Intn(3),
		}
		if rng.Chance(0.01) {
			in.Throw = entity.GrenadeFrag
		}
		e.Update(rng.Float64()*60, in)

		p := e.Player()
		if p.Health < 0 || p.Health > p.MaxHealth {
			t.Fatalf("tick %d: health %v outside [0, %v]", i, p.Health, p.MaxHealth)
		}
		for _, w := range p.Weapons {
			if w.Ammo < 0 || w.Ammo > w.Magazine || w.ReserveAmmo < 0 {
				t.Fatalf("tick %d: %s ammo %d/%d reserve %d", i, w.Key, w.Ammo, w.Magazine, w.ReserveAmmo)
			}
		}
		if len(p.Weapons) > entity.MaxWeapons {
			t.Fatalf("tick %d: %d weapons held", i, len(p.Weapons))
		}
		if e.Points() < 0 {
			t.Fatalf("tick %d: points %d", i, e.Points())
		}
		e.Events()
		if e.GameOver() {
			e.Restart()
		}
	}
}

func TestDeterministicReplay(t *testing.T) {
	script := func(i int) Intents {
		return Intents{
			Move:        core.FromAngle(float64(i) * 0.01),
			AimAngle:    float64(i) * 0.05,
			AimAngleSet: true,
			Fire:        true,
			Reload:      i%37 == 0,
			Melee:       i%53 == 0,
		}
	}
	run := func() uint64 {
		e := newOutpost(t)
		for i := range 600 {
			e.Update(16, script(i))
		}
		snap := e.Snapshot()
		return snap.Hash()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("replay hash = %d and %d, expected identical", a, b)
	}
}

func TestSummary(t *testing.T) {
	e := newOutpost(t)
	e.addZombie(core.V(1300, 1200), 0, entity.Variant{})
	e.killZombie(0, "M1911")
	e.Update(50, Intents{})

	s := e.Summary()
	if s.Map != world.LevelOutpost || s.Character != string(entity.CharacterDefault) {
		t.Errorf("summary map/character = %q/%q", s.Map, s.Character)
	}
	if s.Kills != 1 || s.Round != 1 || s.Millis != 50 {
		t.Errorf("summary = %+v, expected 1 kill in round 1 after 50ms", s)
	}
}

func mustWeapon(t *testing.T, key string) entity.WeaponData {
	t.Helper()
	w, ok := entity.LookupWeapon(key)
	if !ok {
		t.Fatalf("LookupWeapon(%q) missing", key)
	}
	return w
}
