package domain

import "fmt"

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// InvalidIDErr is returned by a store when an identifier cannot be decoded
// into the store's native key format.
type InvalidIDErr struct {
	domainErr
	ID string
}

// NewInvalidIDErr creates a new InvalidIDErr for the given identifier.
func NewInvalidIDErr(entity, id string) *InvalidIDErr {
	return &InvalidIDErr{
		domainErr: domainErr{message: fmt.Sprintf("invalid %s id %q", entity, id)},
		ID:        id,
	}
}
