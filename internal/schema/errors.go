package schema

import "errors"

var (
	// ErrTypeConflict indicates a destination stored with two different types.
	ErrTypeConflict = errors.New("field declared with different types")
	// ErrRepeatedField indicates a name that occurs twice in a field tree.
	ErrRepeatedField = errors.New("repeated field")
	// ErrInvalidReference indicates a malformed reference ECS definition.
	ErrInvalidReference = errors.New("invalid reference definition")
)
