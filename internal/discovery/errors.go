package discovery

import (
	"errors"
	"fmt"
)

// ErrInvalidFilterValue is wrapped by every rejected filter parameter.
var ErrInvalidFilterValue = errors.New("invalid filter value")

// InvalidFilterValueError names the offending parameter. Filtering is never
// attempted with a value that produced one of these.
type InvalidFilterValueError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidFilterValueError) Error() string {
	return fmt.Sprintf("%s: %s=%q: %s", ErrInvalidFilterValue.Error(), e.Field, e.Value, e.Reason)
}

func (e *InvalidFilterValueError) Unwrap() error {
	return ErrInvalidFilterValue
}
