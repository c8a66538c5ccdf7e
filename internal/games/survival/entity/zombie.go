package entity

import (
	"math"

	"github.com/vovakirdan/deadzone/internal/config"
	"github.com/vovakirdan/deadzone/internal/core"
)

// Steering tuning.
const (
	maxForce           = 0.5 // fraction of speed
	separationBuffer   = 50
	wallProbeDistance  = 60
	deflectProbe       = 40
	seekWeight         = 1.0
	separationWeight   = 1.5
	wallAvoidWeight    = 2.0
	deflectionWeight   = 1.2
	wallBounce         = -0.3
	stunnedVelocityMul = 0.9
)

var wallProbeAngles = [...]float64{
	0,
	math.Pi / 4, -math.Pi / 4,
	math.Pi / 2, -math.Pi / 2,
	3 * math.Pi / 4, -3 * math.Pi / 4,
	math.Pi,
}

// Zombie is an enemy agent. Variant flags only change spawn stats and
// death effects.
type Zombie struct {
	ID        int
	Pos       core.Vec
	Vel       core.Vec
	Radius    float64
	Health    float64
	MaxHealth float64
	Speed     float64
	Damage    float64

	Boss     bool
	Exploder bool
	Toxic    bool

	HitTimer float64

	attackRate     float64
	attackCooldown float64
	stunTimer      float64

	burnTimer    float64
	burnTick     float64
	burnDamage   float64
	burnInterval float64
}

// Variant flags a zombie can spawn with.
type Variant struct {
	Boss, Exploder, Toxic bool
}

// NewZombie creates a zombie with stats scaled for the round. The factors
// scale health and damage on top of the per-round formulas.
func NewZombie(id int, pos core.Vec, round int, v Variant, cfg config.ZombieConfig, healthFactor, damageFactor float64) *Zombie {
	r := float64(round)
	z := &Zombie{
		ID:           id,
		Pos:          pos,
		Boss:         v.Boss,
		Exploder:     v.Exploder,
		Toxic:        v.Toxic,
		attackRate:   cfg.AttackRate,
		burnDamage:   cfg.BurnTickDamage,
		burnInterval: cfg.BurnTickInterval,
	}
	if v.Boss {
		z.Radius = cfg.BossRadius
		z.MaxHealth = cfg.BossHealth + r*cfg.BossHealthPerRound
		z.Speed = cfg.BossSpeed + r*cfg.BossSpeedPerRound
		z.Damage = cfg.BossDamage
	} else {
		z.Radius = cfg.Radius
		z.MaxHealth = cfg.BaseHealth + r*cfg.HealthPerRound
		z.Speed = cfg.BaseSpeed + math.Min(r*cfg.SpeedPerRound, cfg.MaxSpeedBonus)
		z.Damage = cfg.BaseDamage + r*cfg.DamagePerRound
	}
	z.MaxHealth *= scale(cfg.HealthScale) * scale(healthFactor)
	z.Damage *= scale(cfg.DamageScale) * scale(damageFactor)
	z.Health = z.MaxHealth
	return z
}

func scale(f float64) float64 {
	if f <= 0 {
		return 1
	}
	return f
}

// Label names the variant for the kill feed.
func (z *Zombie) Label() string {
	switch {
	case z.Boss:
		return "Boss Zombie"
	case z.Exploder:
		return "Exploder Zombie"
	case z.Toxic:
		return "Toxic Zombie"
	default:
		return "Zombie"
	}
}

// Update steers toward target and moves for dt milliseconds. A stunned
// zombie only bleeds off velocity and ticks its timers.
func (z *Zombie) Update(target core.Vec, dt float64, c Collider, others []*Zombie) {
	if z.attackCooldown > 0 {
		z.attackCooldown -= dt
	}
	if z.HitTimer > 0 {
		z.HitTimer -= dt
	}
	if z.stunTimer > 0 {
		z.stunTimer -= dt
		z.Vel = z.Vel.Scale(stunnedVelocityMul)
		return
	}

	dts := dt / 1000
	force := z.seek(target).Scale(seekWeight).
		Add(z.separate(others).Scale(separationWeight)).
		Add(z.avoidWalls(c).Scale(wallAvoidWeight)).
		Add(z.deflect(target, c).Scale(deflectionWeight))
	force = force.Limit(z.Speed * maxForce)

	z.Vel = z.Vel.Add(force.Scale(dts)).Limit(z.Speed)

	newX := z.Pos.X + z.Vel.X*dts
	if c.IsWall(core.V(newX+math.Copysign(z.Radius, z.Vel.X), z.Pos.Y)) {
		z.Vel.X *= wallBounce
	} else {
		z.Pos.X = newX
	}
	newY := z.Pos.Y + z.Vel.Y*dts
	if c.IsWall(core.V(z.Pos.X, newY+math.Copysign(z.Radius, z.Vel.Y))) {
		z.Vel.Y *= wallBounce
	} else {
		z.Pos.Y = newY
	}
}

func (z *Zombie) seek(target core.Vec) core.Vec {
	to := target.Sub(z.Pos)
	if to.IsZero() {
		return core.Vec{}
	}
	return to.Norm().Scale(z.Speed).Sub(z.Vel)
}

func (z *Zombie) separate(others []*Zombie) core.Vec {
	var steer core.Vec
	count := 0
	for _, o := range others {
		if o == z {
			continue
		}
		away := z.Pos.Sub(o.Pos)
		d := away.Len()
		minDist := z.Radius + o.Radius + separationBuffer
		if d > 0 && d < minDist {
			f := (minDist - d) / minDist
			steer = steer.Add(away.Scale(f * 2 / d))
			count++
		}
	}
	if count > 0 {
		steer = steer.Scale(1 / float64(count))
	}
	return steer.Scale(z.Speed)
}

func (z *Zombie) avoidWalls(c Collider) core.Vec {
	var steer core.Vec
	heading := z.Vel.Angle()
	for _, off := range wallProbeAngles {
		dir := core.FromAngle(heading + off)
		if !c.IsWall(z.Pos.Add(dir.Scale(wallProbeDistance))) {
			continue
		}
		weight := 1.0
		if math.Abs(off) < math.Pi/2 {
			weight = 2
		}
		steer = steer.Sub(dir.Scale(weight))
	}
	return steer.Scale(z.Speed * 0.5)
}

func (z *Zombie) deflect(target core.Vec, c Collider) core.Vec {
	direct := z.Pos.AngleTo(target)
	if !c.IsWall(z.Pos.Add(core.FromAngle(direct).Scale(deflectProbe))) {
		return core.Vec{}
	}
	for step := 1; step <= 6; step++ {
		off := float64(step) * math.Pi / 6
		for _, sign := range [...]float64{1, -1} {
			dir := core.FromAngle(direct + off*sign)
			if !c.IsWall(z.Pos.Add(dir.Scale(deflectProbe))) {
				return dir.Scale(z.Speed * 0.8)
			}
		}
	}
	return core.Vec{}
}

// CanAttack reports whether the attack cooldown has elapsed.
func (z *Zombie) CanAttack() bool {
	return z.attackCooldown <= 0
}

// Attack resets the cooldown and returns the contact damage.
func (z *Zombie) Attack() float64 {
	z.attackCooldown = z.attackRate
	return z.Damage
}

// TakeDamage lowers health. Health may go negative; Dead reports death.
func (z *Zombie) TakeDamage(amount float64) {
	z.Health -= amount
	z.HitTimer = hitFlash
}

// Dead reports whether health is exhausted.
func (z *Zombie) Dead() bool {
	return z.Health <= 0
}

// Stun freezes steering for d ms, keeping the longer of two stuns.
func (z *Zombie) Stun(d float64) {
	z.stunTimer = math.Max(z.stunTimer, d)
}

// Stunned reports whether the zombie is stunned.
func (z *Zombie) Stunned() bool {
	return z.stunTimer > 0
}

// Ignite sets the zombie burning for d ms, keeping the longer burn.
func (z *Zombie) Ignite(d float64) {
	if z.burnTimer <= 0 {
		z.burnTick = 0
	}
	z.burnTimer = math.Max(z.burnTimer, d)
}

// Burning reports whether the zombie is on fire.
func (z *Zombie) Burning() bool {
	return z.burnTimer > 0
}

// TickBurn advances the burn for dt ms and returns the damage dealt. The
// first tick of a burn deals damage immediately.
func (z *Zombie) TickBurn(dt float64) float64 {
	if z.burnTimer <= 0 {
		return 0
	}
	var dealt float64
	if z.burnTick <= 0 {
		dealt = z.burnDamage
		z.TakeDamage(dealt)
		z.burnTick = z.burnInterval
	}
	z.burnTick -= dt
	z.burnTimer -= dt
	return dealt
}
