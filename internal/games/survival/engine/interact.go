package engine

import (
	"github.com/vovakirdan/deadzone/internal/core"
	"github.com/vovakirdan/deadzone/internal/games/survival/economy"
	"github.com/vovakirdan/deadzone/internal/games/survival/entity"
	"github.com/vovakirdan/deadzone/internal/games/survival/world"
)

// Denial reasons carried in EventDenied.
const (
	DenyFunds     = "not enough points"
	DenyOwned     = "perk already owned"
	DenyUnpowered = "power is off"
)

// interact runs the first applicable action near the player. Only one
// action executes per press.
func (e *Engine) interact() {
	pos := e.player.Pos

	if d := e.world.DoorNear(pos); d != nil {
		e.buyDoor(d)
		return
	}
	if pz, ok := e.world.(world.PowerZones); ok {
		if sw := pz.SwitchNear(pos); sw != nil {
			pz.TogglePower(sw.Zone)
			e.sound(core.SoundPower)
			e.log.Debug("power on", "zone", sw.Zone)
			return
		}
	}
	if wb := e.world.WallBuyNear(pos); wb != nil {
		if data, ok := entity.LookupWeapon(wb.Weapon); ok {
			e.acquire(data, wb.Cost)
		}
		return
	}
	if box := e.world.BoxNear(pos); box != nil {
		e.useBox()
		return
	}
	if vm := e.world.VendingNear(pos); vm != nil {
		e.buyPerk(vm)
		return
	}
	if st := e.world.AmmoStationNear(pos); st != nil {
		if e.counter.Buy(st.Cost) != economy.Purchased {
			e.deny(DenyFunds, core.SoundDenied)
			return
		}
		e.player.MaxAmmo()
		e.sound(core.SoundAmmo)
		e.purchased("Ammo", st.Cost)
	}
}

func (e *Engine) buyDoor(d *world.Door) {
	if e.counter.Buy(d.Cost) != economy.Purchased {
		e.deny(DenyFunds, core.SoundDoorLocked)
		return
	}
	e.world.PurchaseDoor(d.ID)
	e.sound(core.SoundDoor)
	e.shake(3)
	e.purchased("Door", d.Cost)
}

// useBox charges the box price and hands out a random weapon for free.
func (e *Engine) useBox() {
	if e.counter.Buy(e.cfg.Economy.MysteryBoxCost) != economy.Purchased {
		e.deny(DenyFunds, core.SoundDenied)
		return
	}
	e.sound(core.SoundMysteryBox)

	pool := entity.BoxPool()
	if e.world.BoxPool() == world.PoolFull {
		pool = entity.Catalog()
	}
	data, _ := entity.LookupWeapon(pool[e.rng.Intn(len(pool))])
	e.acquire(data, 0)

	if rb, ok := e.world.(world.RelocatableBox); ok && rb.UseBox(e.rng) {
		e.sound(core.SoundBoxMove)
		e.log.Debug("mystery box moved")
	}
}

func (e *Engine) buyPerk(vm *world.VendingMachine) {
	perk := entity.Perk(vm.Perk)
	if pz, ok := e.world.(world.PowerZones); ok && !pz.Powered(vm.Zone) {
		e.deny(DenyUnpowered, core.SoundDenied)
		return
	}
	if e.player.HasPerk(perk) {
		e.deny(DenyOwned, core.SoundDenied)
		return
	}
	if e.counter.Buy(vm.Cost) != economy.Purchased {
		e.deny(DenyFunds, core.SoundDenied)
		return
	}
	e.player.AddPerk(perk)
	e.sound(core.SoundPerk)
	e.purchased(perk.Short(), vm.Cost)
}

// acquire adds a weapon, or opens a swap offer when both slots are full.
func (e *Engine) acquire(data entity.WeaponData, cost int) {
	switch e.counter.BuyWeapon(e.player, len(e.player.Weapons), data, cost) {
	case economy.Purchased:
		e.purchased(data.Name, cost)
	case economy.Deferred:
		e.emit(Event{Kind: EventSwapPrompt, Weapon: data, Cost: cost})
	case economy.Denied:
		e.deny(DenyFunds, core.SoundDenied)
	}
}

// resolveSwap answers an open swap offer from the intents.
func (e *Engine) resolveSwap(in Intents) {
	if e.counter.Pending() == nil {
		return
	}
	if in.SwapCancel {
		e.counter.Cancel()
		return
	}
	if in.SwapSlot <= 0 {
		return
	}
	offer := *e.counter.Pending()
	switch e.counter.Commit(e.player, in.SwapSlot-1) {
	case economy.Purchased:
		e.purchased(offer.Weapon.Name, offer.Cost)
	case economy.Denied:
		e.deny(DenyFunds, core.SoundDenied)
	}
}
