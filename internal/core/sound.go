package core

// Sound names a one-shot audio cue requested by the simulation.
type Sound string

const (
	SoundPistol       Sound = "pistol"
	SoundRifle        Sound = "rifle"
	SoundShotgun      Sound = "shotgun"
	SoundShoot        Sound = "shoot"
	SoundReload       Sound = "reload"
	SoundSwitch       Sound = "switch"
	SoundKnife        Sound = "knife"
	SoundZombieHit    Sound = "zombie-hit"
	SoundZombieDeath  Sound = "zombie-death"
	SoundZombieAttack Sound = "zombie-attack"
	SoundPlayerHit    Sound = "player-hit"
	SoundPurchase     Sound = "purchase"
	SoundDenied       Sound = "denied"
	SoundDoor         Sound = "door"
	SoundDoorLocked   Sound = "door-locked"
	SoundPower        Sound = "power"
	SoundMysteryBox   Sound = "mystery-box"
	SoundBoxMove      Sound = "box-move"
	SoundPerk         Sound = "perk"
	SoundAmmo         Sound = "ammo"
	SoundInstaKill    Sound = "insta-kill"
	SoundDoublePoints Sound = "double-points"
	SoundMaxAmmo      Sound = "max-ammo"
	SoundNuke         Sound = "nuke"
	SoundThrow        Sound = "throw"
	SoundFrag         Sound = "frag"
	SoundStun         Sound = "stun"
	SoundMolotov      Sound = "molotov"
	SoundDisco        Sound = "disco"
	SoundRoundStart   Sound = "round-start"
	SoundRoundWon     Sound = "round-won"
	SoundGameOver     Sound = "game-over"
)

// SoundSink plays sound cues. Implementations must never block the caller.
type SoundSink interface {
	Play(s Sound)
}

// SilentSink discards every cue.
type SilentSink struct{}

// Play implements SoundSink.
func (SilentSink) Play(Sound) {}
