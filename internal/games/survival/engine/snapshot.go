package engine

import (
	"math"

	"github.com/vovakirdan/deadzone/internal/core"
	"github.com/vovakirdan/deadzone/internal/games/survival/economy"
	"github.com/vovakirdan/deadzone/internal/games/survival/entity"
)

// WeaponView is a carried weapon as the HUD sees it.
type WeaponView struct {
	Key      string
	Name     string
	Ammo     int
	Magazine int
	Reserve  int
}

// PlayerView is the renderable part of the player.
type PlayerView struct {
	Pos      core.Vec
	Angle    float64
	Radius   float64
	Recoil   core.Vec
	HitFlash bool
	Poisoned bool
}

// ZombieView is a renderable enemy.
type ZombieView struct {
	ID       int
	Pos      core.Vec
	Radius   float64
	Health   float64
	Max      float64
	Label    string
	Boss     bool
	Exploder bool
	Toxic    bool
	Stunned  bool
	Burning  bool
	HitFlash bool
}

// BulletView is a bullet in flight.
type BulletView struct {
	Pos   core.Vec
	Angle float64
}

// GrenadeView is a throwable in flight. Height is the visual arc offset.
type GrenadeView struct {
	Kind   entity.GrenadeKind
	Pos    core.Vec
	Height float64
}

// PowerUpView is a pickup on the ground.
type PowerUpView struct {
	Kind     entity.PowerUpKind
	Pos      core.Vec
	Lifetime float64
}

// Snapshot is the read-only per-frame state handed to the HUD and
// renderer. It shares no memory with the engine.
type Snapshot struct {
	Tick       uint64
	Phase      Phase
	Round      int
	Countdown  float64
	Transition float64
	Paused     bool

	Health      float64
	MaxHealth   float64
	Points      int
	ZombiesLeft int
	Spawned     int
	ToSpawn     int
	Killed      int
	Kills       int

	Weapons    []WeaponView
	Current    int
	Reloading  bool
	ReloadLeft float64

	Perks       []entity.Perk
	PowerUp     entity.PowerUpKind
	PowerUpLeft float64
	Grenades    map[entity.GrenadeKind]int

	RollCooldown float64
	RollReady    bool
	Rolling      bool
	Knifing      bool

	Player     PlayerView
	Zombies    []ZombieView
	Bullets    []BulletView
	GrenadesIn []GrenadeView
	PowerUps   []PowerUpView
	Explosions []Explosion
	Feed       []FeedEntry

	Pending *economy.PendingSwap

	RNGState uint64
}

// Snapshot returns a copy of the state the HUD and renderer need.
func (e *Engine) Snapshot() Snapshot {
	p := e.player
	d := e.director

	snap := Snapshot{
		Tick:       e.tick,
		Phase:      d.Phase,
		Round:      d.Round,
		Countdown:  d.Countdown(),
		Transition: d.Transition(),
		Paused:     e.paused,

		Health:      p.Health,
		MaxHealth:   p.MaxHealth,
		Points:      e.counter.Ledger().Balance(),
		ZombiesLeft: d.Remaining(len(e.zombies)),
		Spawned:     d.Spawned,
		ToSpawn:     d.ToSpawn,
		Killed:      d.Killed,
		Kills:       e.kills,

		Current:    p.Current,
		Reloading:  p.Reloading(),
		ReloadLeft: p.ReloadLeft(),

		Perks:       p.Perks(),
		PowerUp:     e.active,
		PowerUpLeft: e.activeLeft,
		Grenades:    make(map[entity.GrenadeKind]int, len(entity.GrenadeKinds)),

		RollCooldown: p.RollCooldown(),
		RollReady:    p.CanRoll(),
		Rolling:      p.Rolling(),
		Knifing:      p.UsingKnife(),

		Player: PlayerView{
			Pos:      p.Pos,
			Angle:    p.Angle,
			Radius:   p.Radius,
			Recoil:   p.Recoil.Offset,
			HitFlash: p.HitTimer > 0,
			Poisoned: p.Poisoned(),
		},
		Explosions: append([]Explosion(nil), e.explosions...),
		Feed:       e.feed.Entries(),
		RNGState:   e.rng.State(),
	}

	for _, w := range p.Weapons {
		snap.Weapons = append(snap.Weapons, WeaponView{
			Key:      w.Key,
			Name:     w.Name,
			Ammo:     w.Ammo,
			Magazine: w.Magazine,
			Reserve:  w.ReserveAmmo,
		})
	}
	for _, k := range entity.GrenadeKinds {
		snap.Grenades[k] = p.GrenadeCount(k)
	}
	for _, z := range e.zombies {
		snap.Zombies = append(snap.Zombies, ZombieView{
			ID:       z.ID,
			Pos:      z.Pos,
			Radius:   z.Radius,
			Health:   z.Health,
			Max:      z.MaxHealth,
			Label:    z.Label(),
			Boss:     z.Boss,
			Exploder: z.Exploder,
			Toxic:    z.Toxic,
			Stunned:  z.Stunned(),
			Burning:  z.Burning(),
			HitFlash: z.HitTimer > 0,
		})
	}
	for _, b := range e.bullets {
		snap.Bullets = append(snap.Bullets, BulletView{Pos: b.Pos, Angle: b.Angle})
	}
	for _, g := range e.grenades {
		snap.GrenadesIn = append(snap.GrenadesIn, GrenadeView{Kind: g.Kind, Pos: g.Pos, Height: g.Height()})
	}
	for _, pu := range e.powerUps {
		snap.PowerUps = append(snap.PowerUps, PowerUpView{Kind: pu.Kind, Pos: pu.Pos, Lifetime: pu.Lifetime})
	}
	if ps := e.counter.Pending(); ps != nil {
		offer := *ps
		snap.Pending = &offer
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Round)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Points)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ZombiesLeft) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Kills)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Current)     //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Health)
	h = h*31 + math.Float64bits(snap.Player.Pos.X)
	h = h*31 + math.Float64bits(snap.Player.Pos.Y)
	h = h*31 + math.Float64bits(snap.Player.Angle)

	for _, w := range snap.Weapons {
		h = h*31 + uint64(w.Ammo)    //#nosec G115 -- hash computation
		h = h*31 + uint64(w.Reserve) //#nosec G115 -- hash computation
	}

	for _, z := range snap.Zombies {
		h = h*31 + uint64(z.ID) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(z.Pos.X)
		h = h*31 + math.Float64bits(z.Pos.Y)
		h = h*31 + math.Float64bits(z.Health)
	}

	for _, b := range snap.Bullets {
		h = h*31 + math.Float64bits(b.Pos.X)
		h = h*31 + math.Float64bits(b.Pos.Y)
	}

	for _, pu := range snap.PowerUps {
		h = h*31 + math.Float64bits(pu.Pos.X)
		h = h*31 + math.Float64bits(pu.Pos.Y)
	}

	h = h*31 + snap.RNGState

	return h
}
