package mapping

import (
	"errors"
	"fmt"

	"fieldmap-generator/internal/convert"
)

// Error kinds. Use errors.Is to match them.
var (
	ErrUnsupportedType    = convert.ErrUnsupportedType
	ErrDuplicateField     = errors.New("duplicate field")
	ErrMissingPriority    = errors.New("missing priority")
	ErrModeConflict       = errors.New("mode conflict")
	ErrConversionConflict = errors.New("conversion conflict")
	ErrAmbiguousSet       = errors.New("ambiguous set")
	ErrInvalidOverride    = errors.New("invalid override")
	ErrDuplicateOverride  = errors.New("duplicate override")
)

// Error is an invariant violation on a single field.
type Error struct {
	Kind error
	// Field is the source or destination path at fault.
	Field  string
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: field %q: %s", e.Kind, e.Field, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, field, format string, args ...any) *Error {
	return &Error{Kind: kind, Field: field, Detail: fmt.Sprintf(format, args...)}
}
