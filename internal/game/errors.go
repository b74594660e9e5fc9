package game

import (
	"errors"
	"fmt"
)

var (
	ErrEntityNotFound = errors.New("entity not found")
	ErrNotPlayer      = errors.New("entity is not a player")
)

// EntityError ties a lookup failure to the id that caused it.
type EntityError struct {
	ID  EntityID
	Err error
}

func (e *EntityError) Error() string {
	return fmt.Sprintf("entity %s: %v", e.ID, e.Err)
}

func (e *EntityError) Unwrap() error {
	return e.Err
}
