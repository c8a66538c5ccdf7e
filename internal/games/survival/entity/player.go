package entity

import (
	"math"

	"github.com/vovakirdan/deadzone/internal/config"
	"github.com/vovakirdan/deadzone/internal/core"
	"github.com/zyedidia/generic/mapset"
)

// MaxWeapons is the number of weapon slots.
const MaxWeapons = 2

// Collider answers wall queries for movement.
type Collider interface {
	IsWall(p core.Vec) bool
}

// Character selects the starting loadout.
type Character string

const (
	CharacterDefault  Character = "default"
	CharacterMagician Character = "magician"
)

// ParseCharacter maps a name to a character, defaulting to CharacterDefault.
func ParseCharacter(name string) Character {
	if Character(name) == CharacterMagician {
		return CharacterMagician
	}
	return CharacterDefault
}

// Recoil is the decaying visual kick of the last shot.
type Recoil struct {
	Angle  float64
	Offset core.Vec
	decay  float64
}

// Player is the controlled survivor.
type Player struct {
	Pos       core.Vec
	Vel       core.Vec
	Radius    float64
	Angle     float64
	Health    float64
	MaxHealth float64
	Character Character

	Weapons []*Weapon
	Current int

	Recoil   Recoil
	HitTimer float64 // ms of hit flash left

	cfg  config.PlayerConfig
	wcfg config.WeaponsConfig

	perks    mapset.Set[Perk]
	grenades map[GrenadeKind]int

	shootCooldown float64
	reloading     bool
	reloadTimer   float64
	knifeTimer    float64
	regenDelay    float64

	rolling      bool
	rollTimer    float64
	rollCooldown float64
	rollDir      core.Vec

	poisonTimer float64
	poisonTick  float64
}

const hitFlash = 150

// NewPlayer creates a player at pos with the character's loadout.
func NewPlayer(pos core.Vec, ch Character, cfg config.PlayerConfig, wcfg config.WeaponsConfig) *Player {
	p := &Player{
		Pos:       pos,
		Radius:    cfg.Radius,
		Health:    cfg.MaxHealth,
		MaxHealth: cfg.MaxHealth,
		Character: ch,
		cfg:       cfg,
		wcfg:      wcfg,
		perks:     mapset.New[Perk](),
		grenades:  make(map[GrenadeKind]int),
	}
	pistol, _ := LookupWeapon(StartingWeapon)
	p.Weapons = []*Weapon{NewWeapon(pistol)}

	if ch == CharacterMagician {
		p.grenades[GrenadeMolotov] = 1
		p.grenades[GrenadeDisco] = 1
	} else {
		p.grenades[GrenadeFrag] = 1
		p.grenades[GrenadeStun] = 1
	}
	return p
}

// Move integrates movement for dt milliseconds. dir need not be normalized.
func (p *Player) Move(dir core.Vec, dt float64, c Collider, w, h float64) {
	dts := dt / 1000
	speed := p.speed()

	target := dir.Norm().Scale(speed)
	if !target.IsZero() {
		k := math.Min(1, p.cfg.Acceleration*dts)
		p.Vel = p.Vel.Add(target.Sub(p.Vel).Scale(k))
	} else {
		k := math.Min(1, p.cfg.Friction*dts)
		p.Vel = p.Vel.Sub(p.Vel.Scale(k))
		if math.Abs(p.Vel.X) < 0.1 {
			p.Vel.X = 0
		}
		if math.Abs(p.Vel.Y) < 0.1 {
			p.Vel.Y = 0
		}
	}

	if p.rolling {
		p.Vel = p.rollDir.Scale(speed)
	}

	newX := p.Pos.X + p.Vel.X*dts
	if p.Vel.X != 0 && c.IsWall(core.V(newX+math.Copysign(p.Radius, p.Vel.X), p.Pos.Y)) {
		p.Vel.X = 0
	} else {
		p.Pos.X = newX
	}
	newY := p.Pos.Y + p.Vel.Y*dts
	if p.Vel.Y != 0 && c.IsWall(core.V(p.Pos.X, newY+math.Copysign(p.Radius, p.Vel.Y))) {
		p.Vel.Y = 0
	} else {
		p.Pos.Y = newY
	}

	p.Pos.X = core.ClampF(p.Pos.X, p.Radius, w-p.Radius)
	p.Pos.Y = core.ClampF(p.Pos.Y, p.Radius, h-p.Radius)
}

func (p *Player) speed() float64 {
	s := p.cfg.Speed
	if p.perks.Has(PerkStaminUp) {
		s *= 1.3
	}
	if p.rolling {
		s *= p.cfg.RollSpeedFactor
	}
	return s
}

// AimAt faces a world point.
func (p *Player) AimAt(pt core.Vec) {
	if pt == p.Pos {
		return
	}
	p.Angle = p.Pos.AngleTo(pt)
}

// AimAtAngle sets the facing angle directly.
func (p *Player) AimAtAngle(angle float64) {
	p.Angle = angle
}

// Facing returns the unit vector of the aim.
func (p *Player) Facing() core.Vec {
	return core.FromAngle(p.Angle)
}

// Shoot fires the current weapon if it is ready. It returns nil while the
// knife is out, while reloading, while cooling down and when the magazine
// is empty; an empty magazine with reserve starts a reload.
func (p *Player) Shoot(dt float64, rng Rand) *Bullet {
	if p.UsingKnife() || p.reloading {
		return nil
	}
	p.shootCooldown -= dt
	if p.shootCooldown > 0 {
		return nil
	}
	p.shootCooldown = 0

	w := p.CurrentWeapon()
	if w == nil {
		return nil
	}
	if w.Ammo <= 0 {
		if w.ReserveAmmo > 0 {
			p.Reload()
		}
		return nil
	}

	w.Ammo--
	rate := w.FireRate
	if p.perks.Has(PerkDoubleTap) {
		rate *= p.wcfg.DoubleTapRate
	}
	p.shootCooldown = rate
	p.applyRecoil(w, rng)

	return &Bullet{
		Pos:    p.Pos.Add(p.Facing().Scale(p.wcfg.MuzzleOffset)),
		Angle:  p.Angle,
		Speed:  p.wcfg.BulletSpeed,
		Damage: w.Damage,
		Weapon: w.Name,
	}
}

func (p *Player) applyRecoil(w *Weapon, rng Rand) {
	base := w.Damage * 0.005
	p.Recoil.Angle = -base * (rng.Float64()*0.5 + 0.75)
	dir := p.Angle + (rng.Float64()*0.2 - 0.1)
	p.Recoil.Offset = core.FromAngle(dir).Scale(-base * 50)
	p.Recoil.decay = 0.8
}

// Reload starts reloading the current weapon. It does nothing while already
// reloading, with a full magazine or with no reserve.
func (p *Player) Reload() {
	if p.reloading {
		return
	}
	w := p.CurrentWeapon()
	if w == nil || w.Full() || w.ReserveAmmo <= 0 {
		return
	}
	p.reloading = true
	p.reloadTimer = w.ReloadTime
	if p.perks.Has(PerkSpeedCola) {
		p.reloadTimer *= 0.5
	}
}

// Reloading reports whether a reload is in progress.
func (p *Player) Reloading() bool {
	return p.reloading
}

// ReloadLeft returns the ms left on the current reload.
func (p *Player) ReloadLeft() float64 {
	if !p.reloading {
		return 0
	}
	return p.reloadTimer
}

// Tick advances timers, regeneration, poison and recoil decay. It returns
// the poison damage taken during the tick.
func (p *Player) Tick(dt float64) float64 {
	if p.rollCooldown > 0 {
		p.rollCooldown = math.Max(0, p.rollCooldown-dt)
	}
	if p.rolling {
		p.rollTimer -= dt
		if p.rollTimer <= 0 {
			p.rolling = false
		}
	}

	if p.reloading {
		p.reloadTimer -= dt
		if p.reloadTimer <= 0 {
			p.reloading = false
			if w := p.CurrentWeapon(); w != nil {
				moved := min(w.Magazine-w.Ammo, w.ReserveAmmo)
				w.Ammo += moved
				w.ReserveAmmo -= moved
			}
		}
	}

	if p.knifeTimer > 0 {
		p.knifeTimer = math.Max(0, p.knifeTimer-dt)
	}

	var poison float64
	if p.poisonTimer > 0 {
		p.poisonTimer -= dt
		p.poisonTick -= dt
		if p.poisonTick <= 0 {
			poison = p.cfg.PoisonDamage
			p.poisonTick += p.cfg.PoisonInterval
			p.TakeDamage(poison)
		}
	}

	if p.regenDelay > 0 {
		p.regenDelay -= dt
	} else if p.Health > 0 && p.Health < p.MaxHealth {
		rate := p.cfg.RegenRate
		if p.perks.Has(PerkQuickRevive) {
			rate *= 2
		}
		p.Health = math.Min(p.MaxHealth, p.Health+rate*dt/1000)
	}

	if p.HitTimer > 0 {
		p.HitTimer -= dt
	}

	if math.Abs(p.Recoil.Offset.X) > 0.1 || math.Abs(p.Recoil.Offset.Y) > 0.1 {
		p.Recoil.Offset = p.Recoil.Offset.Scale(p.Recoil.decay)
	} else {
		p.Recoil.Offset = core.Vec{}
	}
	if math.Abs(p.Recoil.Angle) > 0.001 {
		p.Recoil.Angle *= p.Recoil.decay
	} else {
		p.Recoil.Angle = 0
	}
	return poison
}

// SwitchWeapon selects a slot, cancelling reload and knife. Invalid
// indices are ignored.
func (p *Player) SwitchWeapon(i int) bool {
	if i < 0 || i >= len(p.Weapons) {
		return false
	}
	p.Current = i
	p.reloading = false
	p.knifeTimer = 0
	return true
}

// CycleWeapon moves the selection by delta slots, wrapping around.
func (p *Player) CycleWeapon(delta int) bool {
	n := len(p.Weapons)
	if n < 2 {
		return false
	}
	return p.SwitchWeapon(((p.Current+delta)%n + n) % n)
}

// CurrentWeapon returns the selected weapon, or nil.
func (p *Player) CurrentWeapon() *Weapon {
	if p.Current < 0 || p.Current >= len(p.Weapons) {
		return nil
	}
	return p.Weapons[p.Current]
}

// AddWeapon adds and selects a weapon when a slot is free. It never adds
// a third weapon.
func (p *Player) AddWeapon(data WeaponData) bool {
	if len(p.Weapons) >= MaxWeapons {
		return false
	}
	p.Weapons = append(p.Weapons, NewWeapon(data))
	p.Current = len(p.Weapons) - 1
	p.reloading = false
	return true
}

// ReplaceWeapon installs a fresh weapon in slot i and selects it.
func (p *Player) ReplaceWeapon(i int, data WeaponData) bool {
	if i < 0 || i >= len(p.Weapons) {
		return false
	}
	p.Weapons[i] = NewWeapon(data)
	p.Current = i
	p.reloading = false
	return true
}

// MaxAmmo sets every weapon's reserve to four magazines.
func (p *Player) MaxAmmo() {
	for _, w := range p.Weapons {
		w.ReserveAmmo = w.Magazine * 4
	}
}

// Knife starts a knife swing. It returns false while a swing is running.
func (p *Player) Knife() bool {
	if p.UsingKnife() {
		return false
	}
	p.knifeTimer = p.cfg.KnifeDuration
	return true
}

// UsingKnife reports whether the knife animation is running.
func (p *Player) UsingKnife() bool {
	return p.knifeTimer > 0
}

// Roll starts a dodge roll along dir, or along the facing when dir is
// zero. It is rejected mid-roll and on cooldown.
func (p *Player) Roll(dir core.Vec) bool {
	if !p.CanRoll() {
		return false
	}
	p.rolling = true
	p.rollTimer = p.cfg.RollDuration
	p.rollCooldown = p.cfg.RollCooldown
	if dir.IsZero() {
		p.rollDir = p.Facing()
	} else {
		p.rollDir = dir.Norm()
	}
	return true
}

// CanRoll reports whether a roll may start.
func (p *Player) CanRoll() bool {
	return !p.rolling && p.rollCooldown <= 0
}

// Rolling reports whether a roll is in progress.
func (p *Player) Rolling() bool {
	return p.rolling
}

// RollCooldown returns the ms left before the next roll.
func (p *Player) RollCooldown() float64 {
	return p.rollCooldown
}

// TakeDamage lowers health, never below zero, and restarts the regen delay.
func (p *Player) TakeDamage(amount float64) {
	if amount <= 0 {
		return
	}
	p.Health = math.Max(0, p.Health-amount)
	p.regenDelay = p.cfg.RegenDelay
	if p.perks.Has(PerkQuickRevive) {
		p.regenDelay /= 2
	}
	p.HitTimer = hitFlash
}

// Poison applies damage over time for duration ms, keeping the longer of
// the current and new durations.
func (p *Player) Poison(duration float64) {
	if p.poisonTimer <= 0 {
		p.poisonTick = p.cfg.PoisonInterval
	}
	p.poisonTimer = math.Max(p.poisonTimer, duration)
}

// Poisoned reports whether poison is active.
func (p *Player) Poisoned() bool {
	return p.poisonTimer > 0
}

// FullHeal restores health and clears the regen delay and poison.
func (p *Player) FullHeal() {
	p.Health = p.MaxHealth
	p.regenDelay = 0
	p.poisonTimer = 0
}

// Dead reports whether health reached zero.
func (p *Player) Dead() bool {
	return p.Health <= 0
}

// AddPerk grants a perk. It returns false if the perk is already owned.
func (p *Player) AddPerk(perk Perk) bool {
	if p.perks.Has(perk) {
		return false
	}
	p.perks.Put(perk)
	if perk == PerkJuggernog {
		p.MaxHealth = p.cfg.MaxHealth * 2
		p.Health = math.Min(p.Health+p.cfg.MaxHealth, p.MaxHealth)
	}
	return true
}

// HasPerk reports whether a perk is owned.
func (p *Player) HasPerk(perk Perk) bool {
	return p.perks.Has(perk)
}

// Perks returns owned perks in display order.
func (p *Player) Perks() []Perk {
	var out []Perk
	for _, perk := range Perks {
		if p.perks.Has(perk) {
			out = append(out, perk)
		}
	}
	return out
}

// GrenadeCount returns how many grenades of a kind are carried.
func (p *Player) GrenadeCount(kind GrenadeKind) int {
	return p.grenades[kind]
}

// AddGrenade adds one grenade unless the kind is at its cap.
func (p *Player) AddGrenade(kind GrenadeKind) bool {
	if p.grenades[kind] >= p.cfg.GrenadeCap {
		return false
	}
	p.grenades[kind]++
	return true
}

// ThrowGrenade spends one grenade of the kind and returns it in flight
// toward target. With none left it returns nil and changes nothing.
func (p *Player) ThrowGrenade(kind GrenadeKind, target core.Vec, cfg config.GrenadeConfig) *Grenade {
	if p.grenades[kind] <= 0 {
		return nil
	}
	p.grenades[kind]--
	return NewGrenade(kind, p.Pos, target, cfg)
}

// PrimaryGrenade picks the lethal throwable: molotov when carried, else frag.
func (p *Player) PrimaryGrenade() GrenadeKind {
	if p.grenades[GrenadeMolotov] > 0 {
		return GrenadeMolotov
	}
	return GrenadeFrag
}

// SpecialGrenade picks the crowd-control throwable: disco when carried,
// else stun.
func (p *Player) SpecialGrenade() GrenadeKind {
	if p.grenades[GrenadeDisco] > 0 {
		return GrenadeDisco
	}
	return GrenadeStun
}
