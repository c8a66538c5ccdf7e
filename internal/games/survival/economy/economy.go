// Package economy holds the point ledger and the weapon purchase flow.
//
// Every purchase is a conditional debit: it executes only when the balance
// covers the cost, and a failed attempt leaves all state untouched.
package economy

import "github.com/vovakirdan/deadzone/internal/games/survival/entity"

// Ledger is the single point balance shared by the player and the engine.
type Ledger struct {
	balance int
}

// NewLedger returns a ledger holding start points.
func NewLedger(start int) *Ledger {
	return &Ledger{balance: max(0, start)}
}

// Balance returns the current points.
func (l *Ledger) Balance() int {
	return l.balance
}

// Credit adds points. Non-positive amounts are ignored.
func (l *Ledger) Credit(n int) {
	if n > 0 {
		l.balance += n
	}
}

// CanAfford reports whether the balance covers cost.
func (l *Ledger) CanAfford(cost int) bool {
	return cost >= 0 && l.balance >= cost
}

// TryDebit removes exactly cost points when the balance covers it.
func (l *Ledger) TryDebit(cost int) bool {
	if !l.CanAfford(cost) {
		return false
	}
	l.balance -= cost
	return true
}

// Outcome is the result of a purchase attempt.
type Outcome int

const (
	// Ignored means nothing applicable happened.
	Ignored Outcome = iota
	// Purchased means points were debited and the item delivered.
	Purchased
	// Denied means the attempt was rejected without mutation.
	Denied
	// Deferred means a weapon swap awaits a slot choice.
	Deferred
)

func (o Outcome) String() string {
	switch o {
	case Purchased:
		return "purchased"
	case Denied:
		return "denied"
	case Deferred:
		return "deferred"
	default:
		return "ignored"
	}
}

// Armory is the part of the player a weapon purchase touches.
type Armory interface {
	AddWeapon(data entity.WeaponData) bool
	ReplaceWeapon(i int, data entity.WeaponData) bool
}

// PendingSwap is an open weapon purchase waiting for the slot to replace.
// Nothing is debited until it commits.
type PendingSwap struct {
	Weapon entity.WeaponData
	Cost   int
}

// Counter owns the ledger and at most one pending swap.
type Counter struct {
	ledger  *Ledger
	pending *PendingSwap
}

// NewCounter wraps a ledger.
func NewCounter(l *Ledger) *Counter {
	return &Counter{ledger: l}
}

// Ledger returns the underlying ledger.
func (c *Counter) Ledger() *Ledger {
	return c.ledger
}

// Pending returns the open swap, or nil.
func (c *Counter) Pending() *PendingSwap {
	return c.pending
}

// Buy pays for a simple item with no inventory side, such as a door.
func (c *Counter) Buy(cost int) Outcome {
	if !c.ledger.TryDebit(cost) {
		return Denied
	}
	return Purchased
}

// BuyWeapon acquires data for cost. With a free slot the weapon is paid
// for and added at once; with both slots taken a PendingSwap opens instead,
// replacing any swap already open.
func (c *Counter) BuyWeapon(a Armory, slots int, data entity.WeaponData, cost int) Outcome {
	if !c.ledger.CanAfford(cost) {
		return Denied
	}
	if slots >= entity.MaxWeapons {
		c.pending = &PendingSwap{Weapon: data, Cost: cost}
		return Deferred
	}
	if !a.AddWeapon(data) {
		return Denied
	}
	c.ledger.TryDebit(cost)
	return Purchased
}

// Commit debits the pending cost and installs the weapon in slot as one
// step. An invalid slot is ignored and the swap stays open. If the balance
// no longer covers the cost the attempt is denied and the swap stays open.
func (c *Counter) Commit(a Armory, slot int) Outcome {
	p := c.pending
	if p == nil || slot < 0 || slot >= entity.MaxWeapons {
		return Ignored
	}
	if !c.ledger.CanAfford(p.Cost) {
		return Denied
	}
	if !a.ReplaceWeapon(slot, p.Weapon) {
		return Ignored
	}
	c.ledger.TryDebit(p.Cost)
	c.pending = nil
	return Purchased
}

// Cancel discards the pending swap. Nothing is refunded because nothing
// was debited.
func (c *Counter) Cancel() bool {
	if c.pending == nil {
		return false
	}
	c.pending = nil
	return true
}
