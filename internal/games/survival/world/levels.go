package world

import (
	"embed"
	"fmt"
)

//go:embed levels/*.yaml
var levelFS embed.FS

// Level names in menu order.
const (
	LevelOutpost  = "outpost"
	LevelCompound = "compound"
)

// Names returns the built-in level names in menu order.
func Names() []string {
	return []string{LevelOutpost, LevelCompound}
}

// Load builds a fresh copy of a built-in level.
func Load(name string) (Map, error) {
	data, err := levelFS.ReadFile("levels/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("world: unknown level %q: %w", name, err)
	}
	return Parse(data)
}

