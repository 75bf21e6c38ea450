// Package audio plays the short procedural chimes of Pecktopia: a ding
// when an item is picked up and a rising arpeggio when a level is done.
package audio

// Chimes plays game sound effects. Implementations must not block the
// caller.
type Chimes interface {
	Pickup()
	LevelComplete()
	Close()
}

// Silent is a Chimes that plays nothing. Used over SSH, with --sound
// off, or when no audio device is available.
type Silent struct{}

func (Silent) Pickup()        {}
func (Silent) LevelComplete() {}
func (Silent) Close()         {}
