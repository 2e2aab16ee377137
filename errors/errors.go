package errors

import "fmt"

// MissingValueError indicates a required argument finished parsing without a value.
// Name is the argument's identifier, not its flag spelling.
type MissingValueError struct{ Name string }

func (e MissingValueError) Error() string {
	return fmt.Sprintf("missing required value for argument '%s'", e.Name)
}

// Helper constructors
func NewMissingValue(name string) error { return MissingValueError{Name: name} }
