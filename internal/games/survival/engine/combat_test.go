package engine

import (
	"math"
	"testing"

	"github.com/vovakirdan/deadzone/internal/config"
	"github.com/vovakirdan/deadzone/internal/core"
	"github.com/vovakirdan/deadzone/internal/games/survival/entity"
)

func stillBullet(pos core.Vec, damage float64) *entity.Bullet {
	return &entity.Bullet{Pos: pos, Damage: damage, Weapon: "M1911"}
}

// Scenario D: 50 health, three 25-damage hits. The second kills and the
// kill pays exactly once.
func TestBulletKillPaysOnce(t *testing.T) {
	e := newOutpost(t)
	pos := core.V(1200, 1000)
	z := e.addZombie(pos, 0, entity.Variant{})
	if z.Health != 50 {
		t.Fatalf("round 0 health = %v, expected 50", z.Health)
	}

	e.bullets = append(e.bullets, stillBullet(pos, 25))
	e.updateBullets(0)
	if z.Health != 25 || len(e.zombies) != 1 {
		t.Fatalf("after first hit health = %v roster = %d, expected 25 and 1", z.Health, len(e.zombies))
	}
	if len(e.bullets) != 0 {
		t.Errorf("bullet survived its hit")
	}

	e.bullets = append(e.bullets, stillBullet(pos, 25))
	e.updateBullets(0)
	if len(e.zombies) != 0 {
		t.Fatalf("roster = %d after second hit, expected 0", len(e.zombies))
	}
	if e.Points() != 600 {
		t.Errorf("points = %d, expected 600", e.Points())
	}

	e.bullets = append(e.bullets, stillBullet(pos, 25))
	e.updateBullets(0)
	if e.Points() != 600 || e.kills != 1 || e.Director().Killed != 1 {
		t.Errorf("points %d kills %d killed %d, expected 600/1/1", e.Points(), e.kills, e.Director().Killed)
	}
}

func TestBulletRemovedOnWallAndBounds(t *testing.T) {
	e := newOutpost(t)
	e.bullets = append(e.bullets,
		stillBullet(core.V(815, 900), 25),   // start room wall
		stillBullet(core.V(-5, 1200), 25),   // off map
		stillBullet(core.V(1200, 1000), 25), // open floor
	)
	e.updateBullets(0)
	if len(e.bullets) != 1 {
		t.Errorf("bullets left = %d, expected 1", len(e.bullets))
	}
}

func TestBulletDamageModifiers(t *testing.T) {
	tests := []struct {
		name      string
		insta     bool
		doubleTap bool
		expected  float64
		tone      Tone
	}{
		{"plain", false, false, 25, ToneHit},
		{"double tap", false, true, 37.5, ToneHit},
		{"insta kill", true, false, 9999, ToneInsta},
		{"insta kill ignores double tap", true, true, 9999, ToneInsta},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newOutpost(t)
			if tt.insta {
				e.active = entity.PowerUpInstaKill
			}
			if tt.doubleTap {
				e.player.AddPerk(entity.PerkDoubleTap)
			}
			pos := core.V(1200, 1000)
			e.addZombie(pos, 5, entity.Variant{Boss: true})
			e.bullets = append(e.bullets, stillBullet(pos, 25))
			e.updateBullets(0)

			ev, ok := findEvent(e.Events(), EventDamage)
			if !ok {
				t.Fatal("no damage event")
			}
			if ev.Amount != tt.expected || ev.Tone != tt.tone {
				t.Errorf("damage = %v tone %v, expected %v tone %v", ev.Amount, ev.Tone, tt.expected, tt.tone)
			}
		})
	}
}

func TestFireEmitsEffects(t *testing.T) {
	e := newOutpost(t)
	e.player.AimAtAngle(0)
	e.fire(16)

	if len(e.bullets) != 1 {
		t.Fatalf("bullets = %d, expected 1", len(e.bullets))
	}
	evs := e.Events()
	if countEvents(evs, EventMuzzleFlash) != 1 {
		t.Error("muzzle flash not emitted")
	}
	if !hasSound(evs, core.SoundPistol) {
		t.Error("pistol sound not emitted")
	}
	if ev, ok := findEvent(evs, EventScreenShake); !ok || ev.Amount != 3 {
		t.Errorf("shake = %+v, expected 3", ev)
	}
}

func TestKnife(t *testing.T) {
	e := newOutpost(t)
	p := e.player
	p.AimAtAngle(0)
	behind := e.addZombie(p.Pos.Add(core.V(-40, 0)), 1, entity.Variant{})
	front := e.addZombie(p.Pos.Add(core.V(40, 0)), 1, entity.Variant{})

	e.knife()
	if len(e.zombies) != 1 || e.zombies[0] != behind {
		t.Fatalf("knife killed the wrong zombie: roster %d", len(e.zombies))
	}
	if front.Health != 70-150 {
		t.Errorf("front health = %v, expected %v", front.Health, 70-150)
	}
	if behind.Health != behind.MaxHealth {
		t.Errorf("zombie behind took damage: %v", behind.Health)
	}
	if e.feed.Entries()[0].Weapon != knifeWeapon {
		t.Errorf("feed weapon = %q, expected %q", e.feed.Entries()[0].Weapon, knifeWeapon)
	}

	// A second swing during the animation does nothing.
	behind.Pos = p.Pos.Add(core.V(40, 0))
	e.knife()
	if len(e.zombies) != 1 {
		t.Error("knife swung again during its animation")
	}
}

func TestThrow(t *testing.T) {
	e := newOutpost(t)
	e.player.AimAtAngle(0)

	e.throw(entity.GrenadeFrag)
	if len(e.grenades) != 1 {
		t.Fatalf("grenades in flight = %d, expected 1", len(e.grenades))
	}
	if got := e.grenades[0].Target; got != e.player.Pos.Add(core.V(300, 0)) {
		t.Errorf("target = %v, expected 300 ahead", got)
	}
	if e.player.GrenadeCount(entity.GrenadeFrag) != 0 {
		t.Error("frag count not spent")
	}

	e.throw(entity.GrenadeFrag)
	if len(e.grenades) != 1 {
		t.Error("threw a frag with none left")
	}
	e.throw(entity.GrenadeMolotov)
	if len(e.grenades) != 1 {
		t.Error("threw a molotov the default character never carried")
	}
}

func TestGrenadeProfiles(t *testing.T) {
	tests := []struct {
		name        string
		kind        entity.GrenadeKind
		round       int
		dist        float64
		wantHealth  float64
		wantStun    bool
		wantBurning bool
	}{
		{"frag falloff", entity.GrenadeFrag, 5, 75, 1000 - 250, false, false},
		{"frag outside radius", entity.GrenadeFrag, 5, 150, 1000, false, false},
		{"molotov burns", entity.GrenadeMolotov, 5, 100, 1000 - 50, false, true},
		{"stun", entity.GrenadeStun, 5, 150, 1000, true, false},
		{"disco", entity.GrenadeDisco, 5, 199, 1000, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newOutpost(t)
			at := core.V(1200, 1000)
			z := e.addZombie(at.Add(core.V(tt.dist, 0)), tt.round, entity.Variant{Boss: true})
			g := entity.NewGrenade(tt.kind, at, at, e.cfg.Grenades)
			e.grenades = append(e.grenades, g)

			e.updateGrenades(1000)

			if len(e.grenades) != 0 {
				t.Errorf("grenade still in flight")
			}
			if z.Health != tt.wantHealth {
				t.Errorf("health = %v, expected %v", z.Health, tt.wantHealth)
			}
			if z.Stunned() != tt.wantStun {
				t.Errorf("stunned = %v, expected %v", z.Stunned(), tt.wantStun)
			}
			if z.Burning() != tt.wantBurning {
				t.Errorf("burning = %v, expected %v", z.Burning(), tt.wantBurning)
			}
			evs := e.Events()
			if !hasSound(evs, tt.kind.Sound()) {
				t.Errorf("explosion sound %q missing", tt.kind.Sound())
			}
			if countEvents(evs, EventExplosion) != 1 || len(e.explosions) != 1 {
				t.Error("explosion not recorded")
			}
		})
	}
}

func TestGrenadeKillCredits(t *testing.T) {
	e := newOutpost(t)
	at := core.V(1200, 1000)
	e.addZombie(at, 1, entity.Variant{})
	e.addZombie(at.Add(core.V(10, 0)), 1, entity.Variant{})
	e.detonate(entity.NewGrenade(entity.GrenadeFrag, at, at, e.cfg.Grenades))

	if len(e.zombies) != 0 {
		t.Fatalf("roster = %d, expected frag to clear it", len(e.zombies))
	}
	if e.Points() != 700 {
		t.Errorf("points = %d, expected 700", e.Points())
	}
	if e.feed.Entries()[0].Weapon != "Frag" {
		t.Errorf("feed weapon = %q, expected Frag", e.feed.Entries()[0].Weapon)
	}
}

func TestBurnKill(t *testing.T) {
	e := newOutpost(t)
	z := e.addZombie(core.V(600, 600), 0, entity.Variant{})
	z.Health = 5
	z.Ignite(2000)

	e.updateZombies(16)
	if len(e.zombies) != 0 {
		t.Fatal("burning zombie survived a lethal tick")
	}
	if e.feed.Entries()[0].Weapon != burnWeapon {
		t.Errorf("feed weapon = %q, expected %q", e.feed.Entries()[0].Weapon, burnWeapon)
	}
}

func TestZombieContact(t *testing.T) {
	e := newOutpost(t)
	p := e.player
	e.addZombie(p.Pos.Add(core.V(10, 0)), 1, entity.Variant{})

	e.updateZombies(16)
	if p.Health != 100-17 {
		t.Errorf("health = %v, expected 83", p.Health)
	}
	evs := e.Events()
	ev, ok := findEvent(evs, EventHitDirection)
	if !ok || ev.Dir.X <= 0 {
		t.Errorf("hit direction = %+v, expected toward +x", ev.Dir)
	}
	if shake, _ := findEvent(evs, EventScreenShake); shake.Amount != 8 {
		t.Errorf("shake = %v, expected 8", shake.Amount)
	}

	// Attack cooldown keeps a second contact in the same second harmless.
	e.updateZombies(16)
	if p.Health != 83 {
		t.Errorf("health = %v after cooldown contact, expected 83", p.Health)
	}
}

func TestToxicContactPoisons(t *testing.T) {
	e := newOutpost(t)
	p := e.player
	e.addZombie(p.Pos, 6, entity.Variant{Toxic: true})
	e.updateZombies(16)
	if !p.Poisoned() {
		t.Error("toxic contact did not poison")
	}
}

func TestExploderDeath(t *testing.T) {
	e := newOutpost(t)
	p := e.player
	e.addZombie(p.Pos.Add(core.V(50, 0)), 4, entity.Variant{Exploder: true})
	e.addZombie(p.Pos.Add(core.V(-150, 0)), 4, entity.Variant{Exploder: true})

	e.killZombie(0, "M1911")
	if p.Health != 70 {
		t.Errorf("health = %v after nearby exploder, expected 70", p.Health)
	}
	e.killZombie(0, "M1911")
	if p.Health != 70 {
		t.Errorf("health = %v after distant exploder, expected 70", p.Health)
	}
	if len(e.explosions) != 2 {
		t.Errorf("explosions = %d, expected 2", len(e.explosions))
	}
}

func TestKillPoints(t *testing.T) {
	tests := []struct {
		name     string
		boss     bool
		double   bool
		expected int
	}{
		{"normal", false, false, 100},
		{"boss", true, false, 500},
		{"double points", false, true, 200},
		{"double boss", true, true, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, "outpost", func(c *config.SurvivalConfig) {
				c.PowerUps.DropChance = 0
			})
			if tt.double {
				e.active = entity.PowerUpDoublePoints
			}
			e.addZombie(core.V(600, 600), 5, entity.Variant{Boss: tt.boss})
			e.killZombie(0, "M1911")
			if got := e.Points() - 500; got != tt.expected {
				t.Errorf("kill paid %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestDropRoll(t *testing.T) {
	e := newTestEngine(t, "outpost", func(c *config.SurvivalConfig) {
		c.PowerUps.DropChance = 1
	})
	pos := core.V(600, 600)
	e.addZombie(pos, 1, entity.Variant{})
	e.killZombie(0, "M1911")

	if len(e.powerUps) != 1 {
		t.Fatalf("drops = %d, expected 1", len(e.powerUps))
	}
	pu := e.powerUps[0]
	if pu.Pos != pos || pu.Lifetime != 15000 {
		t.Errorf("drop = %+v, expected at %v with 15000ms", pu, pos)
	}
}

func TestPowerUpExpiresAndCollects(t *testing.T) {
	e := newOutpost(t)
	p := e.player
	e.powerUps = []*entity.PowerUp{
		{Kind: entity.PowerUpMaxAmmo, Pos: core.V(600, 600), Lifetime: 10},
		{Kind: entity.PowerUpMaxAmmo, Pos: p.Pos.Add(core.V(30, 0)), Lifetime: 1000},
	}
	p.Weapons[0].ReserveAmmo = 0

	e.updatePowerUps(16)
	if len(e.powerUps) != 0 {
		t.Errorf("power-ups left = %d, expected 0", len(e.powerUps))
	}
	if p.Weapons[0].ReserveAmmo != 32 {
		t.Errorf("reserve = %d, expected 32", p.Weapons[0].ReserveAmmo)
	}
	if !hasSound(e.Events(), core.SoundMaxAmmo) {
		t.Error("max-ammo sound missing")
	}
}

func TestTimedPowerUpOverwrites(t *testing.T) {
	e := newOutpost(t)
	e.collect(&entity.PowerUp{Kind: entity.PowerUpInstaKill})
	e.activeLeft = 1000
	e.collect(&entity.PowerUp{Kind: entity.PowerUpDoublePoints})

	if e.active != entity.PowerUpDoublePoints || e.activeLeft != 30000 {
		t.Errorf("active = %s %v, expected double-points 30000", e.active, e.activeLeft)
	}

	e.collect(&entity.PowerUp{Kind: entity.PowerUpMaxAmmo})
	if e.active != entity.PowerUpDoublePoints {
		t.Error("max ammo took the timed slot")
	}
}

func TestTimedPowerUpExpires(t *testing.T) {
	e := newOutpost(t)
	e.active = entity.PowerUpInstaKill
	e.activeLeft = 80

	e.Update(50, Intents{})
	if e.active != entity.PowerUpInstaKill {
		t.Fatal("effect ended early")
	}
	e.Update(50, Intents{})
	if e.active != "" || e.activeLeft != 0 {
		t.Errorf("active = %q %v, expected cleared", e.active, e.activeLeft)
	}
}

func TestNuke(t *testing.T) {
	e := newOutpost(t)
	for i := range 3 {
		e.addZombie(core.V(600+float64(i)*50, 600), 4, entity.Variant{Exploder: true})
	}
	e.collect(&entity.PowerUp{Kind: entity.PowerUpNuke})

	if len(e.zombies) != 0 {
		t.Fatalf("roster = %d, expected 0", len(e.zombies))
	}
	if e.Points() != 650 {
		t.Errorf("points = %d, expected 650", e.Points())
	}
	if e.Director().Killed != 3 || e.kills != 3 {
		t.Errorf("killed = %d kills = %d, expected 3", e.Director().Killed, e.kills)
	}
	if e.player.Health != e.player.MaxHealth || len(e.explosions) != 0 {
		t.Error("nuked exploders should not detonate")
	}
	if ev, _ := findEvent(e.Events(), EventScreenShake); ev.Amount != 5 {
		t.Errorf("first shake = %v, expected pickup shake 5", ev.Amount)
	}
}

func TestExplosionsExpire(t *testing.T) {
	e := newOutpost(t)
	e.explosions = []Explosion{{Left: 100}, {Left: 500}}
	e.updateEffects(200)
	if len(e.explosions) != 1 || math.Abs(e.explosions[0].Left-300) > 1e-9 {
		t.Errorf("explosions = %+v, expected one with 300ms left", e.explosions)
	}
}
