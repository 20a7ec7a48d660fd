package buildprops

import (
	"errors"
	"fmt"
)

var (
	ErrMissingRequiredKey = errors.New("missing required key")
	ErrInvalidValue       = errors.New("invalid value")
)

// MissingRequiredKeyError is returned by Resolve when a
// mandatory property is absent from its property file.
type MissingRequiredKeyError struct {
	Key    string
	Source string
}

func (e *MissingRequiredKeyError) Error() string {
	return fmt.Sprintf("%s not found in %s", e.Key, e.Source)
}

func (e *MissingRequiredKeyError) Is(target error) bool {
	return target == ErrMissingRequiredKey
}

// InvalidValueError is returned by Resolve when a
// property is present but its value is unusable.
type InvalidValueError struct {
	Key    string
	Value  string
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Key, e.Value, e.Reason)
}

func (e *InvalidValueError) Is(target error) bool {
	return target == ErrInvalidValue
}
