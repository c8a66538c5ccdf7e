// Package world holds the static geometry and mutable zone state of a
// survival level: walls, purchasable doors, spawn points and the
// interactable sites placed on the map.
//
// Levels are YAML documents embedded in the package. Variant behavior
// (powered buildings, a wandering mystery box) is exposed through small
// capability interfaces that callers discover with a type assertion.
package world

import "github.com/vovakirdan/deadzone/internal/core"

// Interaction ranges in world units. Distances are strict (d < range).
const (
	DoorRange     = 80
	SwitchRange   = 100
	InteractRange = 100
)

// StartZone is unlocked when a level is created.
const StartZone = "start"

// Door is a purchasable barrier. Closed doors block movement like walls.
type Door struct {
	ID   string
	Zone string
	Box  core.Box
	Cost int
	Open bool
}

// Center returns the door's center point.
func (d *Door) Center() core.Vec {
	return d.Box.Center()
}

// SpawnPoint is an enemy spawn location tied to a zone.
type SpawnPoint struct {
	Zone string
	Pos  core.Vec
}

// WallBuy sells a specific weapon at a fixed price.
type WallBuy struct {
	Weapon string
	Pos    core.Vec
	Cost   int
}

// BoxSite is a place where the mystery box can stand.
type BoxSite struct {
	Zone string
	Pos  core.Vec
}

// VendingMachine sells one perk.
type VendingMachine struct {
	Perk string
	Zone string
	Pos  core.Vec
	Cost int
}

// AmmoStation refills every carried weapon.
type AmmoStation struct {
	Pos  core.Vec
	Cost int
}

// PowerSwitch turns on the vending machines of its zone.
type PowerSwitch struct {
	Zone string
	Pos  core.Vec
	On   bool
}

// Box pool names: which weapons the mystery box draws from.
const (
	PoolBox  = "box"
	PoolFull = "full"
)

// Map is the spatial service every level provides.
type Map interface {
	Name() string
	Title() string
	Width() float64
	Height() float64
	// Start is where the player spawns.
	Start() core.Vec

	// IsWall reports whether p lies inside a wall or a closed door.
	IsWall(p core.Vec) bool
	// DoorNear returns the first closed door whose center is within DoorRange.
	DoorNear(p core.Vec) *Door
	// PurchaseDoor opens the door and every door sharing its zone. It
	// returns false for unknown or already open doors.
	PurchaseDoor(id string) bool
	ActiveSpawnPoints() []SpawnPoint
	Unlocked(zone string) bool

	WallBuyNear(p core.Vec) *WallBuy
	BoxNear(p core.Vec) *BoxSite
	VendingNear(p core.Vec) *VendingMachine
	AmmoStationNear(p core.Vec) *AmmoStation
	BoxPool() string

	// Render accessors.
	Walls() []core.Box
	Doors() []Door
	WallBuys() []WallBuy
	Boxes() []BoxSite
	VendingMachines() []VendingMachine
	AmmoStations() []AmmoStation
}

// PowerZones is implemented by maps whose vending machines need power.
type PowerZones interface {
	SwitchNear(p core.Vec) *PowerSwitch
	TogglePower(zone string)
	Powered(zone string) bool
	Switches() []PowerSwitch
}

// Rand is the random source a relocating box draws from.
type Rand interface {
	Intn(n int) int
}

// RelocatableBox is implemented by maps whose mystery box wanders.
type RelocatableBox interface {
	// UseBox records one box use and reports whether the box moved.
	UseBox(rng Rand) bool
	// UsesLeft reports the uses before the box moves, or -1 before the
	// first use of a cycle.
	UsesLeft() int
}
