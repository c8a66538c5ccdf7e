package entity

import (
	"math"
	"testing"

	"github.com/vovakirdan/deadzone/internal/config"
	"github.com/vovakirdan/deadzone/internal/core"
)

func TestNewPlayerLoadouts(t *testing.T) {
	cfg := config.DefaultSurvivalConfig()

	tests := []struct {
		ch       Character
		expected map[GrenadeKind]int
	}{
		{CharacterDefault, map[GrenadeKind]int{GrenadeFrag: 1, GrenadeStun: 1}},
		{CharacterMagician, map[GrenadeKind]int{GrenadeMolotov: 1, GrenadeDisco: 1}},
	}

	for _, tc := range tests {
		t.Run(string(tc.ch), func(t *testing.T) {
			p := NewPlayer(core.V(0, 0), tc.ch, cfg.Player, cfg.Weapons)
			for _, kind := range GrenadeKinds {
				if got := p.GrenadeCount(kind); got != tc.expected[kind] {
					t.Errorf("GrenadeCount(%s) = %d, expected %d", kind, got, tc.expected[kind])
				}
			}
			if len(p.Weapons) != 1 || p.Weapons[0].Name != "M1911" {
				t.Errorf("weapons = %v, expected single M1911", p.Weapons)
			}
			if p.Health != 100 || p.MaxHealth != 100 {
				t.Errorf("health = %v/%v, expected 100/100", p.Health, p.MaxHealth)
			}
		})
	}

	if ParseCharacter("wizard") != CharacterDefault {
		t.Error("unknown character should map to default")
	}
}

func TestPlayerMoveAccelerationAndFriction(t *testing.T) {
	p := newTestPlayer()
	field := walls{}

	p.Move(core.V(1, 0), 50, field, 2400, 2400)
	// 12 * 0.05 = 0.6 of the way to 200
	if math.Abs(p.Vel.X-120) > 1e-9 {
		t.Errorf("Vel.X after one step = %v, expected 120", p.Vel.X)
	}

	for i := 0; i < 60; i++ {
		p.Move(core.V(1, 0), 16, field, 2400, 2400)
	}
	if math.Abs(p.Vel.X-200) > 0.5 {
		t.Errorf("Vel.X at cruise = %v, expected ~200", p.Vel.X)
	}

	for i := 0; i < 200; i++ {
		p.Move(core.Vec{}, 16, field, 2400, 2400)
	}
	if p.Vel.X != 0 || p.Vel.Y != 0 {
		t.Errorf("Vel after friction = %v, expected snapped to zero", p.Vel)
	}
}

func TestPlayerMoveDiagonalIsNormalized(t *testing.T) {
	p := newTestPlayer()
	for i := 0; i < 100; i++ {
		p.Move(core.V(1, 1), 16, walls{}, 2400, 2400)
	}
	if got := p.Vel.Len(); math.Abs(got-200) > 0.5 {
		t.Errorf("diagonal speed = %v, expected ~200", got)
	}
}

func TestPlayerSlidesAlongWalls(t *testing.T) {
	p := newTestPlayer()
	p.Pos = core.V(1000, 1000)
	// wall just to the right of the player
	w := walls{{X: 1025, Y: 0, W: 30, H: 2400}}

	for i := 0; i < 30; i++ {
		p.Move(core.V(1, 1), 16, w, 2400, 2400)
	}
	if p.Pos.X+p.Radius > 1025 {
		t.Errorf("player X = %v penetrates wall at 1025", p.Pos.X)
	}
	if p.Pos.Y <= 1000 {
		t.Errorf("player Y = %v, expected sliding down along the wall", p.Pos.Y)
	}
}

func TestPlayerClampedToBounds(t *testing.T) {
	p := newTestPlayer()
	p.Pos = core.V(25, 25)
	for i := 0; i < 20; i++ {
		p.Move(core.V(-1, -1), 50, walls{}, 2400, 2400)
	}
	if p.Pos.X != p.Radius || p.Pos.Y != p.Radius {
		t.Errorf("Pos = %v, expected clamped to (%v, %v)", p.Pos, p.Radius, p.Radius)
	}
}

func TestPlayerShootCooldownAndAmmo(t *testing.T) {
	p := newTestPlayer()
	rng := fixedRand{f: 0.5}

	b := p.Shoot(16, rng)
	if b == nil {
		t.Fatal("first Shoot returned nil")
	}
	if b.Damage != 25 || b.Speed != 800 {
		t.Errorf("bullet = %+v, expected damage 25 speed 800", b)
	}
	if got := b.Pos.Dist(p.Pos); math.Abs(got-30) > 1e-9 {
		t.Errorf("muzzle offset = %v, expected 30", got)
	}
	if p.CurrentWeapon().Ammo != 7 {
		t.Errorf("Ammo = %d, expected 7", p.CurrentWeapon().Ammo)
	}
	if p.Shoot(100, rng) != nil {
		t.Error("Shoot during cooldown returned a bullet")
	}
	if p.Shoot(150, rng) == nil {
		t.Error("Shoot after 250ms returned nil")
	}
	if p.Recoil.Angle >= 0 {
		t.Errorf("Recoil.Angle = %v, expected negative kick", p.Recoil.Angle)
	}
}

func TestPlayerDoubleTapFireRate(t *testing.T) {
	p := newTestPlayer()
	p.AddPerk(PerkDoubleTap)
	rng := fixedRand{}

	p.Shoot(0, rng)
	// 250 * 0.7 = 175
	if p.Shoot(170, rng) != nil {
		t.Error("fired before 175ms")
	}
	if p.Shoot(5, rng) == nil {
		t.Error("did not fire at 175ms")
	}
}

func TestPlayerEmptyMagazineAutoReloads(t *testing.T) {
	p := newTestPlayer()
	p.CurrentWeapon().Ammo = 0

	if p.Shoot(16, fixedRand{}) != nil {
		t.Error("Shoot with empty magazine returned a bullet")
	}
	if !p.Reloading() {
		t.Fatal("empty magazine did not start a reload")
	}

	p.Tick(1500)
	w := p.CurrentWeapon()
	if w.Ammo != 8 || w.ReserveAmmo != 24 {
		t.Errorf("after reload ammo = %d/%d, expected 8/24", w.Ammo, w.ReserveAmmo)
	}
}

func TestPlayerReloadIdempotent(t *testing.T) {
	p := newTestPlayer()

	p.Reload()
	if p.Reloading() {
		t.Error("Reload with full magazine started reloading")
	}

	p.CurrentWeapon().Ammo = 3
	p.Reload()
	left := p.ReloadLeft()
	p.Tick(100)
	p.Reload()
	if p.ReloadLeft() != left-100 {
		t.Errorf("second Reload changed timer: %v, expected %v", p.ReloadLeft(), left-100)
	}

	p.Tick(2000)
	w := p.CurrentWeapon()
	if w.Ammo != 8 || w.ReserveAmmo != 27 {
		t.Errorf("ammo = %d/%d, expected 8/27", w.Ammo, w.ReserveAmmo)
	}

	w.Ammo = 0
	w.ReserveAmmo = 0
	p.Reload()
	if p.Reloading() {
		t.Error("Reload with no reserve started reloading")
	}
}

func TestPlayerReloadTransfersPartialReserve(t *testing.T) {
	p := newTestPlayer()
	w := p.CurrentWeapon()
	w.Ammo = 2
	w.ReserveAmmo = 3

	p.Reload()
	p.Tick(1500)
	if w.Ammo != 5 || w.ReserveAmmo != 0 {
		t.Errorf("ammo = %d/%d, expected 5/0", w.Ammo, w.ReserveAmmo)
	}
}

func TestPlayerSpeedColaHalvesReload(t *testing.T) {
	p := newTestPlayer()
	p.AddPerk(PerkSpeedCola)
	p.CurrentWeapon().Ammo = 0
	p.Reload()
	if p.ReloadLeft() != 750 {
		t.Errorf("ReloadLeft = %v, expected 750", p.ReloadLeft())
	}
}

func TestPlayerSwitchWeapon(t *testing.T) {
	p := newTestPlayer()
	shotgun, _ := LookupWeapon("shotgun")
	p.AddWeapon(shotgun)
	if p.Current != 1 {
		t.Errorf("Current after AddWeapon = %d, expected 1", p.Current)
	}

	p.CurrentWeapon().Ammo = 0
	p.Reload()
	p.Knife()
	if !p.SwitchWeapon(0) {
		t.Fatal("SwitchWeapon(0) = false")
	}
	if p.Reloading() || p.UsingKnife() {
		t.Error("SwitchWeapon did not cancel reload and knife")
	}
	if p.SwitchWeapon(5) || p.SwitchWeapon(-1) {
		t.Error("invalid index accepted")
	}
	if p.Current != 0 {
		t.Errorf("Current = %d after invalid switch, expected 0", p.Current)
	}

	p.CycleWeapon(1)
	if p.Current != 1 {
		t.Errorf("CycleWeapon(1) = %d, expected 1", p.Current)
	}
	p.CycleWeapon(1)
	if p.Current != 0 {
		t.Errorf("CycleWeapon wrap = %d, expected 0", p.Current)
	}
	p.CycleWeapon(-1)
	if p.Current != 1 {
		t.Errorf("CycleWeapon(-1) = %d, expected 1", p.Current)
	}
}

func TestPlayerWeaponSlotLimit(t *testing.T) {
	p := newTestPlayer()
	smg, _ := LookupWeapon("smg")
	rifle, _ := LookupWeapon("rifle")

	if !p.AddWeapon(smg) {
		t.Fatal("AddWeapon with a free slot = false")
	}
	if p.AddWeapon(rifle) {
		t.Error("AddWeapon added a third weapon")
	}
	if len(p.Weapons) != 2 {
		t.Errorf("len(Weapons) = %d, expected 2", len(p.Weapons))
	}

	p.Weapons[0].Ammo = 1
	p.ReplaceWeapon(0, rifle)
	if p.Weapons[0].Key != "rifle" || p.Weapons[0].Ammo != 30 || p.Weapons[0].ReserveAmmo != 120 {
		t.Errorf("slot 0 = %+v, expected full M16", p.Weapons[0])
	}
}

func TestPlayerMaxAmmo(t *testing.T) {
	p := newTestPlayer()
	p.CurrentWeapon().ReserveAmmo = 0
	p.MaxAmmo()
	if p.CurrentWeapon().ReserveAmmo != 32 {
		t.Errorf("ReserveAmmo = %d, expected 32", p.CurrentWeapon().ReserveAmmo)
	}
}

func TestPlayerRoll(t *testing.T) {
	p := newTestPlayer()

	if !p.Roll(core.Vec{}) {
		t.Fatal("first Roll rejected")
	}
	if p.Roll(core.V(1, 0)) {
		t.Error("Roll accepted mid-roll")
	}

	p.Move(core.Vec{}, 16, walls{}, 2400, 2400)
	// facing angle 0: roll along +X at 400
	if math.Abs(p.Vel.X-400) > 1e-9 {
		t.Errorf("roll Vel.X = %v, expected 400", p.Vel.X)
	}

	p.Tick(300)
	if p.Rolling() {
		t.Error("roll still active after 300ms")
	}
	if p.Roll(core.V(1, 0)) {
		t.Error("Roll accepted on cooldown")
	}
	p.Tick(6700)
	if !p.CanRoll() {
		t.Errorf("CanRoll after cooldown = false, cooldown %v", p.RollCooldown())
	}
}

func TestPlayerRegenAfterDelay(t *testing.T) {
	p := newTestPlayer()
	p.TakeDamage(40)

	p.Tick(2900)
	if p.Health != 60 {
		t.Errorf("Health during delay = %v, expected 60", p.Health)
	}
	p.Tick(200) // delay ends
	p.Tick(1000)
	if p.Health <= 60 || p.Health > 66 {
		t.Errorf("Health after regen = %v, expected in (60, 66]", p.Health)
	}
}

func TestPlayerTakeDamageClampsAtZero(t *testing.T) {
	p := newTestPlayer()
	p.TakeDamage(500)
	if p.Health != 0 || !p.Dead() {
		t.Errorf("Health = %v, expected 0 and dead", p.Health)
	}
	p.Tick(10000)
	if p.Health != 0 {
		t.Errorf("dead player regenerated to %v", p.Health)
	}
}

func TestPlayerPerks(t *testing.T) {
	p := newTestPlayer()
	p.TakeDamage(50)

	if !p.AddPerk(PerkJuggernog) {
		t.Fatal("AddPerk(juggernog) = false")
	}
	if p.MaxHealth != 200 || p.Health != 150 {
		t.Errorf("health = %v/%v, expected 150/200", p.Health, p.MaxHealth)
	}
	if p.AddPerk(PerkJuggernog) {
		t.Error("duplicate perk accepted")
	}
	if p.Health != 150 {
		t.Errorf("duplicate perk healed to %v", p.Health)
	}

	p.AddPerk(PerkStaminUp)
	for i := 0; i < 100; i++ {
		p.Move(core.V(0, 1), 16, walls{}, 2400, 2400)
	}
	if math.Abs(p.Vel.Y-260) > 0.5 {
		t.Errorf("stamin-up speed = %v, expected ~260", p.Vel.Y)
	}

	perks := p.Perks()
	if len(perks) != 2 || perks[0] != PerkJuggernog || perks[1] != PerkStaminUp {
		t.Errorf("Perks() = %v, expected [juggernog stamin-up]", perks)
	}
}

func TestPlayerQuickRevive(t *testing.T) {
	p := newTestPlayer()
	p.AddPerk(PerkQuickRevive)
	p.TakeDamage(50)
	p.Tick(1500) // halved delay elapses
	p.Tick(1000)
	if math.Abs(p.Health-60) > 1e-9 {
		t.Errorf("Health = %v, expected 60 with doubled regen", p.Health)
	}
}

func TestPlayerPoison(t *testing.T) {
	p := newTestPlayer()
	p.Poison(2000)

	var total float64
	for i := 0; i < 25; i++ {
		total += p.Tick(100)
	}
	if total != 20 {
		t.Errorf("poison damage = %v, expected 20", total)
	}
	if p.Poisoned() {
		t.Error("still poisoned after 2500ms")
	}
}

func TestPlayerGrenadeCap(t *testing.T) {
	p := newTestPlayer()
	cfg := config.DefaultSurvivalConfig().Grenades

	if p.AddGrenade(GrenadeFrag) {
		t.Error("AddGrenade above cap accepted")
	}
	if p.GrenadeCount(GrenadeFrag) != 1 {
		t.Errorf("frag count = %d, expected 1", p.GrenadeCount(GrenadeFrag))
	}

	g := p.ThrowGrenade(GrenadeFrag, core.V(1500, 1200), cfg)
	if g == nil || g.Kind != GrenadeFrag {
		t.Fatalf("ThrowGrenade = %v, expected frag", g)
	}
	if p.ThrowGrenade(GrenadeFrag, core.V(1500, 1200), cfg) != nil {
		t.Error("ThrowGrenade with zero count returned a grenade")
	}
	if p.GrenadeCount(GrenadeFrag) != 0 {
		t.Errorf("frag count = %d, expected 0", p.GrenadeCount(GrenadeFrag))
	}
	if p.ThrowGrenade(GrenadeMolotov, core.V(0, 0), cfg) != nil {
		t.Error("default character threw a molotov")
	}
	if !p.AddGrenade(GrenadeFrag) {
		t.Error("AddGrenade below cap rejected")
	}
}

func TestPlayerKnife(t *testing.T) {
	p := newTestPlayer()
	if !p.Knife() {
		t.Fatal("Knife() = false")
	}
	if p.Knife() {
		t.Error("Knife() accepted mid-swing")
	}
	if p.Shoot(1000, fixedRand{}) != nil {
		t.Error("Shoot while knifing returned a bullet")
	}
	p.Tick(500)
	if p.UsingKnife() {
		t.Error("knife still active after 500ms")
	}
}

func TestPlayerNonNegativeInvariants(t *testing.T) {
	p := newTestPlayer()
	rng := NewSimpleRNG(7)
	dts := []float64{0, 1, 16, 33, 50}

	for i := 0; i < 2000; i++ {
		dt := dts[i%len(dts)]
		p.Move(core.V(float64(i%3-1), float64(i%5-2)), dt, walls{}, 2400, 2400)
		p.Shoot(dt, rng)
		if i%97 == 0 {
			p.TakeDamage(7)
		}
		if i%131 == 0 {
			p.Reload()
		}
		p.Tick(dt)

		w := p.CurrentWeapon()
		if p.Health < 0 || p.Health > p.MaxHealth {
			t.Fatalf("step %d: health %v out of [0, %v]", i, p.Health, p.MaxHealth)
		}
		if w.Ammo < 0 || w.Ammo > w.Magazine || w.ReserveAmmo < 0 {
			t.Fatalf("step %d: ammo %d/%d out of range", i, w.Ammo, w.ReserveAmmo)
		}
	}
}
