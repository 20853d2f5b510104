package gamedata

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// LevelDef defines a difficulty preset loaded from JSON.
type LevelDef struct {
	ID     string `json:"id"`     // Unique identifier (e.g., "classic")
	Name   string `json:"name"`   // Display name (e.g., "Classic")
	Disks  int    `json:"disks"`  // Number of disks for this level
	Accent string `json:"accent"` // Hex color for the level's UI accents
}

// AccentColor returns the level's accent as a tcell color, falling back
// to the default color on a malformed value.
func (l *LevelDef) AccentColor() tcell.Color {
	color, err := ParseHexColor(l.Accent)
	if err != nil {
		return tcell.ColorDefault
	}
	return color
}

// LevelsFile represents the structure of levels.json.
type LevelsFile struct {
	Levels []LevelDef `json:"levels"`
}

// LoadLevels loads level definitions from the embedded levels.json file.
func LoadLevels() ([]LevelDef, error) {
	file, err := Load[LevelsFile]("levels.json")
	if err != nil {
		return nil, err
	}
	return file.Levels, nil
}

// LevelRegistry holds loaded level definitions keyed by ID.
type LevelRegistry struct {
	levels []LevelDef
}

// NewLevelRegistry creates a registry from loaded level definitions.
func NewLevelRegistry(levels []LevelDef) *LevelRegistry {
	return &LevelRegistry{levels: levels}
}

// LoadLevelRegistry loads and creates a registry from the embedded levels.json.
func LoadLevelRegistry() (*LevelRegistry, error) {
	levels, err := LoadLevels()
	if err != nil {
		return nil, err
	}
	if len(levels) == 0 {
		return nil, errors.New("no levels loaded from levels.json")
	}
	return NewLevelRegistry(levels), nil
}

// MustLoadLevelRegistry loads a registry, panicking on error.
func MustLoadLevelRegistry() *LevelRegistry {
	registry, err := LoadLevelRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the level with the given ID, or nil if not found.
func (r *LevelRegistry) GetByID(id string) *LevelDef {
	for i := range r.levels {
		if r.levels[i].ID == id {
			return &r.levels[i]
		}
	}
	return nil
}

// GetByDisks returns the first level using the given disk count, or nil.
func (r *LevelRegistry) GetByDisks(disks int) *LevelDef {
	for i := range r.levels {
		if r.levels[i].Disks == disks {
			return &r.levels[i]
		}
	}
	return nil
}

// Default returns the first level, the one new sessions start on.
func (r *LevelRegistry) Default() *LevelDef {
	return &r.levels[0]
}

// Count returns the number of loaded levels.
func (r *LevelRegistry) Count() int {
	return len(r.levels)
}

// All returns all level definitions.
func (r *LevelRegistry) All() []LevelDef {
	return r.levels
}
