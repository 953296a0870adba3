// Package ledgererror defines the error types surfaced by the ledger core.
package ledgererror

import "fmt"

// ValidationError represents malformed or inconsistent input caught at the
// boundary, before an action is constructed.
type ValidationError struct {
	Entity string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s: %s", e.Entity, e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s: %s", e.Entity, e.Reason)
}

// ReferenceError represents a referential-integrity rejection: deleting an
// entity that transactions elsewhere in the ledger still point at. The
// policy is refuse-and-inform, never cascade.
type ReferenceError struct {
	Entity       string
	ID           string
	ReferencedBy string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("cannot delete %s '%s': still referenced by %s",
		e.Entity, e.ID, e.ReferencedBy)
}

// NotFoundError represents a lookup of an entity that does not exist in
// the aggregate.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.Entity, e.ID)
}
