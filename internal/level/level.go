// Package level holds the fixed catalog of Pecktopia levels: platforms,
// collectibles and the background each one is drawn on.
package level

import "github.com/vovakirdan/pecktopia/internal/core"

// Background identifies the scenery a level is drawn on.
type Background string

const (
	BackgroundNone     Background = ""
	BackgroundCoop     Background = "coop"
	BackgroundFarmyard Background = "farmyard"
	BackgroundTemple   Background = "temple"
)

// Platform is a static, solid rectangle.
type Platform struct {
	Box core.Box
}

// Collectible is an item the player picks up by touching it.
type Collectible struct {
	Name      string
	Box       core.Box
	collected bool
}

// Collected reports whether the item has been picked up.
func (c *Collectible) Collected() bool {
	return c.collected
}

// Collect marks the item as picked up. It returns true only on the call
// that flipped the flag; the flag never reverts.
func (c *Collectible) Collect() bool {
	if c.collected {
		return false
	}
	c.collected = true
	return true
}

// Level is one playable stage. The geometry never changes once built;
// only collectible flags do.
type Level struct {
	ID              int
	Name            string
	Background      Background
	Intro           string
	CompleteMessage string
	Platforms       []Platform
	Collectibles    []Collectible
}

// Empty reports whether the level has nothing to collect.
func (l *Level) Empty() bool {
	return len(l.Collectibles) == 0
}

// AllCollected reports whether every collectible has been picked up.
// A level without collectibles is never considered collected.
func (l *Level) AllCollected() bool {
	if l.Empty() {
		return false
	}
	for i := range l.Collectibles {
		if !l.Collectibles[i].collected {
			return false
		}
	}
	return true
}

// CollectedNames returns the names of picked-up items in catalog order.
func (l *Level) CollectedNames() []string {
	var names []string
	for i := range l.Collectibles {
		if l.Collectibles[i].collected {
			names = append(names, l.Collectibles[i].Name)
		}
	}
	return names
}

// clone returns a deep copy so callers can mutate flags freely.
func (l Level) clone() Level {
	out := l
	out.Platforms = append([]Platform(nil), l.Platforms...)
	out.Collectibles = make([]Collectible, len(l.Collectibles))
	for i, c := range l.Collectibles {
		out.Collectibles[i] = Collectible{Name: c.Name, Box: c.Box}
	}
	return out
}
