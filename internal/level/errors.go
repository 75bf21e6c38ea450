package level

import "fmt"

// UnknownLevelError is returned by Lookup for an id outside the catalog.
// It is not fatal: the accompanying level is empty and playable.
type UnknownLevelError struct {
	ID int
}

func (e *UnknownLevelError) Error() string {
	return fmt.Sprintf("level: unknown level %d", e.ID)
}
