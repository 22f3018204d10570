package query

import "fmt"

// InvalidFilterError is returned when a filter names an unknown field or
// operator, or carries a non-numeric value for a numeric field.
type InvalidFilterError struct {
	Reason string
}

func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("invalid filter: %s", e.Reason)
}

// MultipleInequalityFieldsError is returned when more than one field carries
// a non-equality operator. The record store only supports inequality
// comparisons on a single field per query.
type MultipleInequalityFieldsError struct {
	First  string
	Second string
}

func (e *MultipleInequalityFieldsError) Error() string {
	return fmt.Sprintf("inequality filter is allowed on only one field: have %q, got %q", e.First, e.Second)
}
