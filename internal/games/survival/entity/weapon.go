package entity

import (
	"slices"

	"github.com/vovakirdan/deadzone/internal/core"
)

// WeaponData describes a weapon model. Durations are milliseconds.
type WeaponData struct {
	Key        string
	Name       string
	Damage     float64
	FireRate   float64 // ms between shots
	Magazine   int
	Reserve    int
	ReloadTime float64
}

// Sound returns the firing cue for the weapon's class.
func (w WeaponData) Sound() core.Sound {
	switch w.Key {
	case "pistol":
		return core.SoundPistol
	case "shotgun":
		return core.SoundShotgun
	case "raygun", "thundergun":
		return core.SoundShoot
	default:
		return core.SoundRifle
	}
}

var catalog = map[string]WeaponData{
	"pistol":     {Key: "pistol", Name: "M1911", Damage: 25, FireRate: 250, Magazine: 8, Reserve: 32, ReloadTime: 1500},
	"shotgun":    {Key: "shotgun", Name: "Olympia", Damage: 80, FireRate: 800, Magazine: 2, Reserve: 28, ReloadTime: 2500},
	"smg":        {Key: "smg", Name: "MP5", Damage: 18, FireRate: 80, Magazine: 30, Reserve: 120, ReloadTime: 2000},
	"rifle":      {Key: "rifle", Name: "M16", Damage: 35, FireRate: 150, Magazine: 30, Reserve: 120, ReloadTime: 2500},
	"ak47":       {Key: "ak47", Name: "AK-47", Damage: 40, FireRate: 120, Magazine: 30, Reserve: 90, ReloadTime: 2800},
	"sniper":     {Key: "sniper", Name: "L96A1", Damage: 150, FireRate: 1500, Magazine: 5, Reserve: 30, ReloadTime: 3500},
	"lmg":        {Key: "lmg", Name: "RPD", Damage: 30, FireRate: 100, Magazine: 100, Reserve: 300, ReloadTime: 5000},
	"raygun":     {Key: "raygun", Name: "Ray Gun", Damage: 200, FireRate: 300, Magazine: 20, Reserve: 160, ReloadTime: 3000},
	"thundergun": {Key: "thundergun", Name: "Thunder Gun", Damage: 500, FireRate: 2000, Magazine: 2, Reserve: 12, ReloadTime: 4000},
}

// catalogOrder fixes iteration order so random draws are reproducible.
var catalogOrder = []string{"pistol", "shotgun", "smg", "rifle", "ak47", "sniper", "lmg", "raygun", "thundergun"}

var boxPool = []string{"shotgun", "smg", "rifle", "ak47", "sniper", "lmg", "raygun", "thundergun"}

// StartingWeapon is the weapon every character spawns with.
const StartingWeapon = "pistol"

// LookupWeapon returns the catalog entry for a key.
func LookupWeapon(key string) (WeaponData, bool) {
	w, ok := catalog[key]
	return w, ok
}

// Catalog returns every weapon key in a stable order.
func Catalog() []string {
	return slices.Clone(catalogOrder)
}

// BoxPool returns the weapon keys the basic mystery box draws from.
func BoxPool() []string {
	return slices.Clone(boxPool)
}

// Weapon is a carried weapon with its ammunition.
type Weapon struct {
	WeaponData
	Ammo        int
	ReserveAmmo int
}

// NewWeapon returns a weapon with a full magazine and stock reserve.
func NewWeapon(data WeaponData) *Weapon {
	return &Weapon{WeaponData: data, Ammo: data.Magazine, ReserveAmmo: data.Reserve}
}

// Full reports whether the magazine is full.
func (w *Weapon) Full() bool {
	return w.Ammo >= w.Magazine
}

// Perk is a permanent player modifier bought from a vending machine.
type Perk string

const (
	PerkJuggernog   Perk = "juggernog"
	PerkSpeedCola   Perk = "speed-cola"
	PerkDoubleTap   Perk = "double-tap"
	PerkStaminUp    Perk = "stamin-up"
	PerkQuickRevive Perk = "quick-revive"
)

// Perks lists every perk in display order.
var Perks = []Perk{PerkJuggernog, PerkSpeedCola, PerkDoubleTap, PerkStaminUp, PerkQuickRevive}

// Short returns a compact HUD label.
func (p Perk) Short() string {
	switch p {
	case PerkJuggernog:
		return "JUG"
	case PerkSpeedCola:
		return "SPD"
	case PerkDoubleTap:
		return "DBL"
	case PerkStaminUp:
		return "STM"
	case PerkQuickRevive:
		return "QRV"
	default:
		return "?"
	}
}
