package engine

import (
	"math"
	"slices"

	"github.com/vovakirdan/deadzone/internal/core"
	"github.com/vovakirdan/deadzone/internal/games/survival/entity"
)

const (
	knifeWeapon = "Knife"
	burnWeapon  = "Molotov"
	nukeWeapon  = "Nuke"
	killer      = "You"
)

func (e *Engine) knife() {
	p := e.player
	if !p.Knife() {
		return
	}
	e.sound(core.SoundKnife)

	wc := e.cfg.Weapons
	for i := len(e.zombies) - 1; i >= 0; i-- {
		z := e.zombies[i]
		if z.Pos.Dist(p.Pos) >= wc.KnifeRange {
			continue
		}
		if core.AngleDiff(p.Pos.AngleTo(z.Pos), p.Angle) >= math.Pi/2 {
			continue
		}
		z.TakeDamage(wc.KnifeDamage)
		e.sound(core.SoundZombieHit)
		e.floatText(z.Pos, wc.KnifeDamage, ToneHit)
		e.shake(5)
		if z.Dead() {
			e.killZombie(i, knifeWeapon)
		}
		return
	}
}

func (e *Engine) updateBullets(dt float64) {
	w, h := e.world.Width(), e.world.Height()
	insta := e.active == entity.PowerUpInstaKill
	doubleTap := e.player.HasPerk(entity.PerkDoubleTap)

	for i := len(e.bullets) - 1; i >= 0; i-- {
		b := e.bullets[i]
		b.Update(dt)
		if b.OutOfBounds(w, h) || e.world.IsWall(b.Pos) {
			e.bullets = slices.Delete(e.bullets, i, i+1)
			continue
		}

		for j := len(e.zombies) - 1; j >= 0; j-- {
			z := e.zombies[j]
			if b.Pos.Dist(z.Pos) >= z.Radius {
				continue
			}
			dmg := b.HitDamage(insta, doubleTap, e.cfg.Weapons)
			z.TakeDamage(dmg)
			e.sound(core.SoundZombieHit)
			tone := ToneHit
			if insta {
				tone = ToneInsta
			}
			e.floatText(z.Pos, dmg, tone)
			if z.Dead() {
				e.killZombie(j, b.Weapon)
			}
			e.bullets = slices.Delete(e.bullets, i, i+1)
			break
		}
	}
}

// killZombie removes the zombie at index i and applies every death effect:
// points, kill feed, exploder blast and the power-up drop roll.
func (e *Engine) killZombie(i int, weapon string) {
	z := e.zombies[i]
	e.zombies = slices.Delete(e.zombies, i, i+1)
	e.director.RecordKills(1)
	e.kills++

	e.sound(core.SoundZombieDeath)
	e.shake(2)
	e.emit(Event{Kind: EventKill, Pos: z.Pos, Text: z.Label()})

	points := e.cfg.Economy.KillPoints
	if z.Boss {
		points = e.cfg.Economy.BossKillPoints
	}
	e.award(z.Pos, points)
	e.feed.Add(killer, z.Label(), weapon)

	if z.Exploder {
		e.explodeCorpse(z)
	}

	if e.rng.Chance(e.cfg.PowerUps.DropChance) {
		kind := entity.PowerUpKinds[e.rng.Intn(len(entity.PowerUpKinds))]
		e.powerUps = append(e.powerUps, &entity.PowerUp{
			Kind:     kind,
			Pos:      z.Pos,
			Lifetime: e.cfg.PowerUps.Lifetime,
		})
	}
}

// award credits kill points, doubled while double points is active.
func (e *Engine) award(pos core.Vec, points int) {
	if e.active == entity.PowerUpDoublePoints {
		points *= 2
	}
	e.counter.Ledger().Credit(points)
	e.floatText(pos, float64(points), TonePoints)
}

func (e *Engine) explodeCorpse(z *entity.Zombie) {
	zc := e.cfg.Zombie
	e.explosions = append(e.explosions, Explosion{
		Kind:   entity.GrenadeFrag,
		Pos:    z.Pos,
		Radius: zc.ExploderRadius,
		Left:   e.cfg.Grenades.ExplosionTime,
		Total:  e.cfg.Grenades.ExplosionTime,
	})
	p := e.player
	if z.Pos.Dist(p.Pos) >= zc.ExploderRadius {
		return
	}
	p.TakeDamage(zc.ExploderDamage)
	e.sound(core.SoundPlayerHit)
	e.floatText(p.Pos, zc.ExploderDamage, TonePlayer)
	e.emit(Event{Kind: EventHitDirection, Dir: z.Pos.Sub(p.Pos)})
	e.shake(15)
	e.checkDeath()
}

func (e *Engine) updateGrenades(dt float64) {
	for i := len(e.grenades) - 1; i >= 0; i-- {
		g := e.grenades[i]
		if !g.Update(dt) {
			continue
		}
		e.grenades = slices.Delete(e.grenades, i, i+1)
		e.detonate(g)
	}
}

// detonate applies a throwable's profile to every zombie inside its
// radius: falloff damage plus burn for lethal kinds, a stun otherwise.
func (e *Engine) detonate(g *entity.Grenade) {
	prof := e.cfg.Grenades.Profiles[string(g.Kind)]
	e.explosions = append(e.explosions, Explosion{
		Kind:   g.Kind,
		Pos:    g.Pos,
		Radius: prof.Radius,
		Left:   e.cfg.Grenades.ExplosionTime,
		Total:  e.cfg.Grenades.ExplosionTime,
	})
	e.emit(Event{Kind: EventExplosion, Pos: g.Pos, Grenade: g.Kind, Amount: prof.Radius})

	for i := len(e.zombies) - 1; i >= 0; i-- {
		z := e.zombies[i]
		d := z.Pos.Dist(g.Pos)
		if d >= prof.Radius {
			continue
		}
		if prof.Damage <= 0 {
			z.Stun(prof.Stun)
			continue
		}
		dmg := entity.Falloff(prof.Damage, prof.Radius, d)
		z.TakeDamage(dmg)
		e.floatText(z.Pos, dmg, ToneBlast)
		if prof.Burn > 0 {
			z.Ignite(prof.Burn)
		}
		if z.Dead() {
			e.killZombie(i, grenadeWeapon(g.Kind))
		}
	}

	e.shake(prof.Shake)
	e.sound(g.Kind.Sound())
}

func grenadeWeapon(k entity.GrenadeKind) string {
	switch k {
	case entity.GrenadeMolotov:
		return burnWeapon
	case entity.GrenadeFrag:
		return "Frag"
	case entity.GrenadeDisco:
		return "Disco"
	default:
		return "Stun"
	}
}

func (e *Engine) updatePowerUps(dt float64) {
	p := e.player
	for i := len(e.powerUps) - 1; i >= 0; i-- {
		pu := e.powerUps[i]
		pu.Update(dt)
		if pu.Expired {
			e.powerUps = slices.Delete(e.powerUps, i, i+1)
			continue
		}
		if pu.Pos.Dist(p.Pos) < e.cfg.PowerUps.PickupRadius {
			e.powerUps = slices.Delete(e.powerUps, i, i+1)
			e.collect(pu)
		}
	}
}

func (e *Engine) collect(pu *entity.PowerUp) {
	e.shake(5)
	e.sound(pu.Kind.Sound())
	e.log.Debug("power-up", "kind", pu.Kind)

	switch {
	case pu.Kind.Timed():
		e.active = pu.Kind
		e.activeLeft = e.cfg.PowerUps.Duration
	case pu.Kind == entity.PowerUpMaxAmmo:
		e.player.MaxAmmo()
	case pu.Kind == entity.PowerUpNuke:
		e.nuke()
	}
}

// nuke kills the whole roster at a flat reward per zombie. Nuked zombies
// leave no drops and do not explode.
func (e *Engine) nuke() {
	n := len(e.zombies)
	for _, z := range e.zombies {
		e.feed.Add(killer, z.Label(), nukeWeapon)
	}
	e.counter.Ledger().Credit(e.cfg.Economy.NukePoints * n)
	e.director.RecordKills(n)
	e.kills += n
	e.zombies = nil
	e.shake(20)
}
