package world

import (
	"github.com/vovakirdan/deadzone/internal/core"
	"github.com/zyedidia/generic/mapset"
)

// Compound is a level made of buildings. Vending machines need their
// building powered, and a single mystery box moves between building sites.
type Compound struct {
	*Level

	switches []PowerSwitch
	powered  mapset.Set[string]

	sites   []BoxSite
	current int
	uses    int
	maxUses int // 0 until the first use of a cycle
}

var (
	_ PowerZones     = (*Compound)(nil)
	_ RelocatableBox = (*Compound)(nil)
)

func newCompound(base *Level, doc levelDoc) *Compound {
	c := &Compound{
		Level:   base,
		powered: mapset.New[string](),
		sites:   base.boxes,
	}
	for _, s := range doc.Switches {
		c.switches = append(c.switches, PowerSwitch{Zone: s.Zone, Pos: s.pos()})
	}
	return c
}

// SwitchNear returns the first switch that is off and within SwitchRange.
func (c *Compound) SwitchNear(p core.Vec) *PowerSwitch {
	for i := range c.switches {
		sw := &c.switches[i]
		if !sw.On && p.Dist(sw.Pos) < SwitchRange {
			return sw
		}
	}
	return nil
}

// TogglePower flips the switch of a zone.
func (c *Compound) TogglePower(zone string) {
	for i := range c.switches {
		if c.switches[i].Zone != zone {
			continue
		}
		c.switches[i].On = !c.switches[i].On
		if c.switches[i].On {
			c.powered.Put(zone)
		} else {
			c.powered.Remove(zone)
		}
		return
	}
}

// Powered reports whether a zone's switch is on.
func (c *Compound) Powered(zone string) bool {
	return c.powered.Has(zone)
}

// Switches returns the power switches for rendering.
func (c *Compound) Switches() []PowerSwitch {
	out := make([]PowerSwitch, len(c.switches))
	copy(out, c.switches)
	return out
}

// BoxNear only considers the site the box currently stands on.
func (c *Compound) BoxNear(p core.Vec) *BoxSite {
	if len(c.sites) == 0 {
		return nil
	}
	site := &c.sites[c.current]
	if p.Dist(site.Pos) < c.siteRange {
		return site
	}
	return nil
}

// Boxes returns the current box site.
func (c *Compound) Boxes() []BoxSite {
	if len(c.sites) == 0 {
		return nil
	}
	return []BoxSite{c.sites[c.current]}
}

// UseBox counts a use. After a random 3..6 uses (drawn at the start of each
// cycle) the box moves to a random site in an unlocked building, or to any
// site while none is unlocked.
func (c *Compound) UseBox(rng Rand) bool {
	if len(c.sites) == 0 {
		return false
	}
	c.uses++
	if c.maxUses == 0 {
		c.maxUses = rng.Intn(4) + 3
	}
	if c.uses < c.maxUses {
		return false
	}

	var candidates []int
	for i, s := range c.sites {
		if c.unlocked.Has(s.Zone) {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		for i := range c.sites {
			candidates = append(candidates, i)
		}
	}
	c.current = candidates[rng.Intn(len(candidates))]
	c.uses = 0
	c.maxUses = 0
	return true
}

// UsesLeft reports how many uses remain before the box moves, or -1 when the
// cycle has not started.
func (c *Compound) UsesLeft() int {
	if c.maxUses == 0 {
		return -1
	}
	return c.maxUses - c.uses
}
