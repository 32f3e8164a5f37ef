package graphql

import (
	"errors"

	"github.com/MetaFrench/atlas-web-graphql/internal/domain"
)

// Error codes reported in the extensions of a field error.
const (
	CodeInvalidID = "INVALID_ID"
	CodeInternal  = "INTERNAL"
)

// fieldError carries a resolver error to the client unchanged, adding a code
// to the error extensions.
type fieldError struct {
	err  error
	code string
}

func (e *fieldError) Error() string { return e.err.Error() }

func (e *fieldError) Unwrap() error { return e.err }

// Extensions is read by the graphql-go error formatter.
func (e *fieldError) Extensions() map[string]any {
	return map[string]any{"code": e.code}
}

// presentError classifies err for the response. A nil err stays nil.
func presentError(err error) error {
	if err == nil {
		return nil
	}

	var fe *fieldError
	if errors.As(err, &fe) {
		return err
	}

	return &fieldError{err: err, code: errorCode(err)}
}

func errorCode(err error) string {
	var invalidID *domain.InvalidIDErr
	if errors.As(err, &invalidID) {
		return CodeInvalidID
	}
	return CodeInternal
}
