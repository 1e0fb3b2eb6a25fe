// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"time"
)

// TeamID identifies one of the three competing teams, e.g. "red".
type TeamID string

// Region selects which skirmish tier table applies to an event.
type Region string

// Known regions.
const (
	RegionNA Region = "na"
	RegionEU Region = "eu"
)

// TeamCount is fixed by the game: every matchup has exactly three teams.
const TeamCount = 3

// Tier is the point triple one skirmish awards for 1st/2nd/3rd place.
type Tier struct {
	First  int `json:"first"`
	Second int `json:"second"`
	Third  int `json:"third"`
}

// Spread returns the largest score swing one team can extract over
// another within this single skirmish.
func (t Tier) Spread() int {
	return t.First - t.Third
}

// Validate checks the tier invariant First >= Second >= Third >= 0.
func (t Tier) Validate() error {
	if t.Third < 0 || t.Second < t.Third || t.First < t.Second {
		return fmt.Errorf("tier values must satisfy first >= second >= third >= 0, got (%d, %d, %d)", t.First, t.Second, t.Third)
	}
	return nil
}

// Event is one future scoring period. Events arrive in chronological
// order guaranteed by the caller; the solver never reorders them.
type Event struct {
	ID        string    `json:"id"`
	StartTime time.Time `json:"start_time"`
	Region    Region    `json:"region"`
}
