// Package engine runs the survival simulation: one Update call advances the
// player, enemies, projectiles, throwables, pickups and the round director
// by a clamped time step.
//
// The engine is single-goroutine. Rosters that can shrink mid-tick are
// walked back to front so removal during iteration is safe, and pause
// requests are applied at the top of the next Update.
package engine

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/deadzone/internal/config"
	"github.com/vovakirdan/deadzone/internal/core"
	"github.com/vovakirdan/deadzone/internal/games/survival/economy"
	"github.com/vovakirdan/deadzone/internal/games/survival/entity"
	"github.com/vovakirdan/deadzone/internal/games/survival/world"
)

// Options configures a new engine.
type Options struct {
	Level     string
	Character entity.Character
	Config    config.SurvivalConfig
	Seed      int64

	// Difficulty defaults to a manager built from Config.Difficulty.
	Difficulty *config.DifficultyManager
	// Logger defaults to a logger that discards everything.
	Logger *log.Logger
}

// Explosion is a short-lived blast visual.
type Explosion struct {
	Kind   entity.GrenadeKind
	Pos    core.Vec
	Radius float64
	Left   float64
	Total  float64
}

// Engine owns every piece of mutable game state.
type Engine struct {
	opts       Options
	cfg        config.SurvivalConfig
	log        *log.Logger
	rng        *entity.SimpleRNG
	difficulty *config.DifficultyManager

	world      world.Map
	player     *entity.Player
	zombies    []*entity.Zombie
	bullets    []*entity.Bullet
	grenades   []*entity.Grenade
	powerUps   []*entity.PowerUp
	explosions []Explosion

	counter  *economy.Counter
	director *Director
	feed     *KillFeed

	active     entity.PowerUpKind
	activeLeft float64

	nextID  int
	kills   int
	elapsed float64
	tick    uint64

	paused      bool
	pauseToggle bool

	events []Event
}

// New creates an engine on the named level.
func New(opts Options) (*Engine, error) {
	m, err := world.Load(opts.Level)
	if err != nil {
		return nil, err
	}
	return NewWithMap(m, opts), nil
}

// NewWithMap creates an engine on an already loaded map.
func NewWithMap(m world.Map, opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Difficulty == nil {
		opts.Difficulty = config.NewDifficultyManager(opts.Config.Difficulty)
	}
	if opts.Level == "" {
		opts.Level = m.Name()
	}
	e := &Engine{
		opts:       opts,
		cfg:        opts.Config,
		log:        opts.Logger,
		difficulty: opts.Difficulty,
	}
	e.reset(m)
	return e
}

func (e *Engine) reset(m world.Map) {
	e.world = m
	e.rng = entity.NewSimpleRNG(e.opts.Seed)
	e.player = entity.NewPlayer(m.Start(), e.opts.Character, e.cfg.Player, e.cfg.Weapons)
	e.zombies = nil
	e.bullets = nil
	e.grenades = nil
	e.powerUps = nil
	e.explosions = nil
	e.counter = economy.NewCounter(economy.NewLedger(e.cfg.Economy.StartingPoints))
	e.director = NewDirector(e.cfg.Director)
	if e.feed == nil {
		e.feed = NewKillFeed(e.cfg.Feed.MaxEntries, e.cfg.Feed.Lifetime)
	}
	e.feed.Clear()
	e.active = ""
	e.activeLeft = 0
	e.nextID = 0
	e.kills = 0
	e.elapsed = 0
	e.tick = 0
	e.paused = false
	e.pauseToggle = false
	e.events = nil
}

// Restart rebuilds every entity and the map from static data. Any pending
// swap is discarded with the old economy.
func (e *Engine) Restart() {
	m, err := world.Load(e.opts.Level)
	if err != nil {
		// The level loaded once already; reuse the current geometry.
		e.log.Warn("reload level", "level", e.opts.Level, "err", err)
		m = e.world
	}
	e.reset(m)
	e.log.Debug("restart", "level", e.opts.Level, "character", e.opts.Character)
}

// RequestPause toggles pause at the next tick boundary.
func (e *Engine) RequestPause() {
	e.pauseToggle = !e.pauseToggle
}

// Update advances the simulation by dt milliseconds.
func (e *Engine) Update(dt float64, in Intents) {
	if e.pauseToggle {
		e.paused = !e.paused
		e.pauseToggle = false
	}
	if in.Pause {
		e.RequestPause()
	}
	if e.paused || e.director.Phase == PhaseStopped {
		return
	}

	dt = core.ClampF(dt, 0, e.cfg.Director.MaxFrame)
	e.tick++
	e.elapsed += dt

	e.resolveSwap(in)

	switch e.director.Phase {
	case PhaseCountdown:
		e.director.Advance(dt)
		e.updateEffects(dt)
		return
	case PhaseRoundClear:
		if e.director.Advance(dt) {
			e.player.FullHeal()
			e.sound(core.SoundRoundStart)
			e.emit(Event{Kind: EventRoundStart, Round: e.director.Round})
			e.log.Debug("round start", "round", e.director.Round, "budget", e.director.ToSpawn)
		}
		e.updateEffects(dt)
		return
	}

	e.updatePlayer(dt, in)
	e.spawn(dt)
	e.updateZombies(dt)
	e.updateBullets(dt)
	e.updatePowerUps(dt)
	e.updateGrenades(dt)

	if e.director.CheckClear(len(e.zombies)) {
		e.sound(core.SoundRoundWon)
		e.log.Debug("round cleared", "round", e.director.Round, "kills", e.kills)
	}

	if e.active != "" {
		e.activeLeft -= dt
		if e.activeLeft <= 0 {
			e.active = ""
			e.activeLeft = 0
		}
	}
	e.updateEffects(dt)
}

func (e *Engine) updateEffects(dt float64) {
	e.feed.Update(dt)
	for i := len(e.explosions) - 1; i >= 0; i-- {
		e.explosions[i].Left -= dt
		if e.explosions[i].Left <= 0 {
			e.explosions = append(e.explosions[:i], e.explosions[i+1:]...)
		}
	}
}

func (e *Engine) updatePlayer(dt float64, in Intents) {
	p := e.player
	p.Move(in.Move, dt, e.world, e.world.Width(), e.world.Height())

	if in.AimAngleSet {
		p.AimAtAngle(in.AimAngle)
	} else if in.AimSet {
		p.AimAt(in.Aim)
	}

	if in.Slot > 0 && p.SwitchWeapon(in.Slot-1) {
		e.sound(core.SoundSwitch)
	}
	if in.Cycle != 0 && p.CycleWeapon(in.Cycle) {
		e.sound(core.SoundSwitch)
	}
	if in.Reload {
		e.reload()
	}
	if in.Interact {
		e.interact()
	}
	if in.Melee {
		e.knife()
	}
	if in.Throw != "" {
		e.throw(in.Throw)
	}
	if in.Roll {
		p.Roll(in.Move)
	}
	if in.Fire {
		e.fire(dt)
	}

	if poison := p.Tick(dt); poison > 0 {
		e.floatText(p.Pos, poison, TonePlayer)
		e.checkDeath()
	}
}

func (e *Engine) reload() {
	p := e.player
	if p.Reloading() {
		return
	}
	p.Reload()
	if p.Reloading() {
		e.sound(core.SoundReload)
	}
}

func (e *Engine) fire(dt float64) {
	p := e.player
	wasReloading := p.Reloading()
	b := p.Shoot(dt, e.rng)
	if b == nil {
		if !wasReloading && p.Reloading() {
			e.sound(core.SoundReload)
		}
		return
	}
	e.bullets = append(e.bullets, b)
	e.sound(p.CurrentWeapon().Sound())
	e.emit(Event{Kind: EventMuzzleFlash, Pos: b.Pos, Angle: b.Angle})
	e.shake(3)
}

func (e *Engine) throw(kind entity.GrenadeKind) {
	p := e.player
	target := p.Pos.Add(p.Facing().Scale(e.cfg.Grenades.ThrowDistance))
	g := p.ThrowGrenade(kind, target, e.cfg.Grenades)
	if g == nil {
		return
	}
	e.grenades = append(e.grenades, g)
	e.sound(core.SoundThrow)
}

func (e *Engine) spawn(dt float64) {
	d := e.director
	interval := e.difficulty.SpawnInterval(d.Interval(d.Round), e.cfg.Director.SpawnIntervalMin, d.Round)
	if !d.SpawnDue(dt, interval) {
		return
	}
	points := e.world.ActiveSpawnPoints()
	if len(points) == 0 {
		return
	}
	sp := points[e.rng.Intn(len(points))]

	zc := e.cfg.Zombie
	v := entity.Variant{
		Boss:     d.BossDue(),
		Exploder: e.rng.Chance(zc.ExploderChance) && d.Round > zc.ExploderMinRound,
		Toxic:    e.rng.Chance(zc.ToxicChance) && d.Round > zc.ToxicMinRound,
	}
	e.nextID++
	z := entity.NewZombie(e.nextID, sp.Pos, d.Round, v, zc,
		e.difficulty.HealthFactor(d.Round), e.difficulty.DamageFactor(d.Round))
	e.zombies = append(e.zombies, z)
	d.RecordSpawn()
}

func (e *Engine) updateZombies(dt float64) {
	p := e.player
	for i := len(e.zombies) - 1; i >= 0; i-- {
		z := e.zombies[i]
		z.Update(p.Pos, dt, e.world, e.zombies)

		if burn := z.TickBurn(dt); burn > 0 {
			e.floatText(z.Pos, burn, ToneBurn)
			if z.Dead() {
				e.killZombie(i, burnWeapon)
				continue
			}
		}

		if z.Pos.Dist(p.Pos) >= z.Radius+p.Radius || !z.CanAttack() {
			continue
		}
		dmg := z.Attack()
		p.TakeDamage(dmg)
		if z.Toxic {
			p.Poison(e.cfg.Zombie.ToxicDuration)
		}
		e.sound(core.SoundZombieAttack)
		e.sound(core.SoundPlayerHit)
		e.floatText(p.Pos, dmg, TonePlayer)
		e.emit(Event{Kind: EventHitDirection, Dir: z.Pos.Sub(p.Pos)})
		e.shake(8)
		e.checkDeath()
	}
}

func (e *Engine) checkDeath() {
	if !e.player.Dead() || e.director.Phase == PhaseStopped {
		return
	}
	e.director.Stop()
	e.sound(core.SoundGameOver)
	e.emit(Event{Kind: EventGameOver, Round: e.director.Round})
	e.log.Debug("game over", "round", e.director.Round, "kills", e.kills, "points", e.counter.Ledger().Balance())
}

// Player exposes the player for rendering and tests.
func (e *Engine) Player() *entity.Player { return e.player }

// World returns the current map.
func (e *Engine) World() world.Map { return e.world }

// Director returns the round director.
func (e *Engine) Director() *Director { return e.director }

// Points returns the ledger balance.
func (e *Engine) Points() int { return e.counter.Ledger().Balance() }

// PendingSwap returns the open swap offer, or nil.
func (e *Engine) PendingSwap() *economy.PendingSwap { return e.counter.Pending() }

// Paused reports whether the simulation is paused.
func (e *Engine) Paused() bool { return e.paused }

// GameOver reports whether the run has ended.
func (e *Engine) GameOver() bool { return e.director.Phase == PhaseStopped }

// Summary describes the run so far.
func (e *Engine) Summary() core.RunSummary {
	return core.RunSummary{
		Map:       e.opts.Level,
		Character: string(e.opts.Character),
		Round:     e.director.Round,
		Kills:     e.kills,
		Points:    e.counter.Ledger().Balance(),
		Millis:    e.elapsed,
	}
}
