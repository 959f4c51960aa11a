package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrDataIntegrity marks a catalog that cannot be trusted. It is never recoverable.
	ErrDataIntegrity = errors.New("catalog data integrity violation")
	ErrEventNotFound = errors.New("event not found")
	ErrVenueNotFound = errors.New("venue not found")
	ErrNotLoaded     = errors.New("catalog not loaded")
)

// DataIntegrityError describes the first broken reference or duplicate id found
// while building a catalog.
type DataIntegrityError struct {
	Entity string
	ID     int
	Reason string
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("%s: %s %d: %s", ErrDataIntegrity.Error(), e.Entity, e.ID, e.Reason)
}

func (e *DataIntegrityError) Unwrap() error {
	return ErrDataIntegrity
}
