package scs

import "fmt"

// ErrorKind classifies a validation failure.
type ErrorKind int

const (
	// KindShape indicates an array field with the wrong dimensionality or
	// element kind.
	KindShape ErrorKind = iota
	// KindDimension indicates a length inconsistent with the declared
	// problem dimensions.
	KindDimension
	// KindConeField indicates a cone field that is non-numeric, negative,
	// or neither a scalar nor a list.
	KindConeField
	// KindOptionField indicates an option value that is non-numeric or
	// negative.
	KindOptionField
)

// String returns a human-readable representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindShape:
		return "Shape"
	case KindDimension:
		return "Dimension"
	case KindConeField:
		return "ConeField"
	case KindOptionField:
		return "OptionField"
	default:
		return "Unknown"
	}
}

// Error represents a validation error with context about which stage and
// field failed. All validation errors abort the call before the solver
// engine is invoked.
type Error struct {
	Op    string    // Operation that failed (e.g., "BuildProblem", "ParseCone")
	Kind  ErrorKind // Failure classification
	Field string    // Offending input field, if any
	Msg   string    // Additional context
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("scs: %s failed: %s: %s", e.Op, e.Field, e.Msg)
	}
	return fmt.Sprintf("scs: %s failed: %s", e.Op, e.Msg)
}

func shapeErr(op, field, msg string) error {
	return &Error{Op: op, Kind: KindShape, Field: field, Msg: msg}
}

func dimErr(op, field, msg string) error {
	return &Error{Op: op, Kind: KindDimension, Field: field, Msg: msg}
}

func coneErr(field, msg string) error {
	return &Error{Op: "ParseCone", Kind: KindConeField, Field: field, Msg: msg}
}

func optErr(name, msg string) error {
	return &Error{Op: "ParseOptions", Kind: KindOptionField, Field: name, Msg: msg}
}
