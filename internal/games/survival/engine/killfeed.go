package engine

import "slices"

// FeedEntry is one kill feed line.
type FeedEntry struct {
	Killer string
	Victim string
	Weapon string
	Age    float64 // ms since the kill
}

// KillFeed keeps the most recent kills for a limited time.
type KillFeed struct {
	max      int
	lifetime float64
	entries  []FeedEntry
}

// NewKillFeed creates a feed holding at most max entries for lifetime ms.
func NewKillFeed(max int, lifetime float64) *KillFeed {
	return &KillFeed{max: max, lifetime: lifetime}
}

// Add appends a kill, dropping the oldest entry when full.
func (f *KillFeed) Add(killer, victim, weapon string) {
	f.entries = append(f.entries, FeedEntry{Killer: killer, Victim: victim, Weapon: weapon})
	if f.max > 0 && len(f.entries) > f.max {
		f.entries = slices.Delete(f.entries, 0, len(f.entries)-f.max)
	}
}

// Update ages entries and drops expired ones.
func (f *KillFeed) Update(dt float64) {
	for i := len(f.entries) - 1; i >= 0; i-- {
		f.entries[i].Age += dt
		if f.entries[i].Age >= f.lifetime {
			f.entries = slices.Delete(f.entries, i, i+1)
		}
	}
}

// Entries returns a copy of the live entries, oldest first.
func (f *KillFeed) Entries() []FeedEntry {
	return slices.Clone(f.entries)
}

// Clear removes every entry.
func (f *KillFeed) Clear() {
	f.entries = nil
}
