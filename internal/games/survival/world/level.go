package world

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/deadzone/internal/core"
	"github.com/zyedidia/generic/mapset"
	"gopkg.in/yaml.v3"
)

type rectDoc struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

func (r rectDoc) box() core.Box {
	return core.Box{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

type doorDoc struct {
	rectDoc `yaml:",inline"`
	ID      string `yaml:"id"`
	Zone    string `yaml:"zone"`
	Cost    int    `yaml:"cost"`
}

type siteDoc struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Zone   string  `yaml:"zone"`
	Weapon string  `yaml:"weapon"`
	Perk   string  `yaml:"perk"`
	Cost   int     `yaml:"cost"`
}

func (s siteDoc) pos() core.Vec {
	return core.V(s.X, s.Y)
}

type levelDoc struct {
	Name      string    `yaml:"name"`
	Title     string    `yaml:"title"`
	Kind      string    `yaml:"kind"`
	Width     float64   `yaml:"width"`
	Height    float64   `yaml:"height"`
	SiteRange float64   `yaml:"site_range"`
	BoxPool   string    `yaml:"box_pool"`
	Walls     []rectDoc `yaml:"walls"`
	Doors     []doorDoc `yaml:"doors"`
	Spawns    []siteDoc `yaml:"spawns"`
	Switches  []siteDoc `yaml:"switches"`
	WallBuys  []siteDoc `yaml:"wall_buys"`
	Boxes     []siteDoc `yaml:"boxes"`
	Vending   []siteDoc `yaml:"vending"`
	Ammo      []siteDoc `yaml:"ammo"`
}

// Level is a map built from a level document. It keeps every mystery box
// site active and has no power requirements.
type Level struct {
	name, title   string
	width, height float64
	siteRange     float64
	boxPool       string

	walls    []core.Box
	doors    []Door
	spawns   []SpawnPoint
	wallBuys []WallBuy
	boxes    []BoxSite
	vending  []VendingMachine
	ammo     []AmmoStation

	unlocked mapset.Set[string]
}

// Parse builds a map from a YAML level document.
func Parse(data []byte) (Map, error) {
	var doc levelDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("world: parse level: %w", err)
	}
	if err := doc.validate(); err != nil {
		return nil, fmt.Errorf("world: parse level %s: %w", doc.Name, err)
	}

	base := newLevel(doc)
	switch doc.Kind {
	case "", "basic":
		return base, nil
	case "compound":
		return newCompound(base, doc), nil
	default:
		return nil, fmt.Errorf("world: parse level %s: unknown kind %q", doc.Name, doc.Kind)
	}
}

func (doc levelDoc) validate() error {
	if doc.Name == "" {
		return errors.New("missing name")
	}
	if doc.Width <= 0 || doc.Height <= 0 {
		return fmt.Errorf("invalid size %vx%v", doc.Width, doc.Height)
	}
	seen := mapset.New[string]()
	for _, d := range doc.Doors {
		if d.ID == "" || d.Zone == "" {
			return errors.New("door without id or zone")
		}
		if seen.Has(d.ID) {
			return fmt.Errorf("duplicate door %q", d.ID)
		}
		seen.Put(d.ID)
	}
	for _, s := range doc.Spawns {
		if s.Zone == StartZone {
			return nil
		}
	}
	return errors.New("no start spawn points")
}

func newLevel(doc levelDoc) *Level {
	l := &Level{
		name:      doc.Name,
		title:     doc.Title,
		width:     doc.Width,
		height:    doc.Height,
		siteRange: doc.SiteRange,
		boxPool:   doc.BoxPool,
		unlocked:  mapset.New[string](),
	}
	if l.title == "" {
		l.title = doc.Name
	}
	if l.siteRange <= 0 {
		l.siteRange = InteractRange
	}
	if l.boxPool != PoolFull {
		l.boxPool = PoolBox
	}
	l.unlocked.Put(StartZone)

	for _, w := range doc.Walls {
		l.walls = append(l.walls, w.box())
	}
	for _, d := range doc.Doors {
		l.doors = append(l.doors, Door{ID: d.ID, Zone: d.Zone, Box: d.box(), Cost: d.Cost})
	}
	for _, s := range doc.Spawns {
		l.spawns = append(l.spawns, SpawnPoint{Zone: s.Zone, Pos: s.pos()})
	}
	for _, s := range doc.WallBuys {
		l.wallBuys = append(l.wallBuys, WallBuy{Weapon: s.Weapon, Pos: s.pos(), Cost: s.Cost})
	}
	for _, s := range doc.Boxes {
		l.boxes = append(l.boxes, BoxSite{Zone: s.Zone, Pos: s.pos()})
	}
	for _, s := range doc.Vending {
		l.vending = append(l.vending, VendingMachine{Perk: s.Perk, Zone: s.Zone, Pos: s.pos(), Cost: s.Cost})
	}
	for _, s := range doc.Ammo {
		l.ammo = append(l.ammo, AmmoStation{Pos: s.pos(), Cost: s.Cost})
	}
	return l
}

func (l *Level) Name() string    { return l.name }
func (l *Level) Title() string   { return l.title }
func (l *Level) Width() float64  { return l.width }
func (l *Level) Height() float64 { return l.height }
func (l *Level) BoxPool() string { return l.boxPool }

// Start returns the center of the map.
func (l *Level) Start() core.Vec {
	return core.V(l.width/2, l.height/2)
}

// IsWall reports whether p lies inside a wall or a closed door. Edges count.
func (l *Level) IsWall(p core.Vec) bool {
	for _, w := range l.walls {
		if w.Contains(p) {
			return true
		}
	}
	for i := range l.doors {
		if !l.doors[i].Open && l.doors[i].Box.Contains(p) {
			return true
		}
	}
	return false
}

// DoorNear returns the first closed door whose center is within DoorRange.
func (l *Level) DoorNear(p core.Vec) *Door {
	for i := range l.doors {
		d := &l.doors[i]
		if d.Open {
			continue
		}
		if p.Dist(d.Center()) < DoorRange {
			return d
		}
	}
	return nil
}

// PurchaseDoor opens the door with the given id plus every door of the
// same zone, and unlocks that zone's spawn points.
func (l *Level) PurchaseDoor(id string) bool {
	var zone string
	for i := range l.doors {
		if l.doors[i].ID == id {
			if l.doors[i].Open {
				return false
			}
			zone = l.doors[i].Zone
			break
		}
	}
	if zone == "" {
		return false
	}
	for i := range l.doors {
		if l.doors[i].Zone == zone {
			l.doors[i].Open = true
		}
	}
	l.unlocked.Put(zone)
	return true
}

// ActiveSpawnPoints returns the spawn points of unlocked zones.
func (l *Level) ActiveSpawnPoints() []SpawnPoint {
	var out []SpawnPoint
	for _, s := range l.spawns {
		if l.unlocked.Has(s.Zone) {
			out = append(out, s)
		}
	}
	return out
}

// Unlocked reports whether a zone has been opened.
func (l *Level) Unlocked(zone string) bool {
	return l.unlocked.Has(zone)
}

func (l *Level) WallBuyNear(p core.Vec) *WallBuy {
	for i := range l.wallBuys {
		if p.Dist(l.wallBuys[i].Pos) < InteractRange {
			return &l.wallBuys[i]
		}
	}
	return nil
}

func (l *Level) BoxNear(p core.Vec) *BoxSite {
	for i := range l.boxes {
		if p.Dist(l.boxes[i].Pos) < l.siteRange {
			return &l.boxes[i]
		}
	}
	return nil
}

func (l *Level) VendingNear(p core.Vec) *VendingMachine {
	for i := range l.vending {
		if p.Dist(l.vending[i].Pos) < l.siteRange {
			return &l.vending[i]
		}
	}
	return nil
}

func (l *Level) AmmoStationNear(p core.Vec) *AmmoStation {
	for i := range l.ammo {
		if p.Dist(l.ammo[i].Pos) < InteractRange {
			return &l.ammo[i]
		}
	}
	return nil
}

func (l *Level) Walls() []core.Box { return l.walls }

func (l *Level) Doors() []Door {
	out := make([]Door, len(l.doors))
	copy(out, l.doors)
	return out
}

func (l *Level) WallBuys() []WallBuy               { return l.wallBuys }
func (l *Level) Boxes() []BoxSite                  { return l.boxes }
func (l *Level) VendingMachines() []VendingMachine { return l.vending }
func (l *Level) AmmoStations() []AmmoStation       { return l.ammo }
