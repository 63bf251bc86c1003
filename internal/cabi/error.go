package cabi

import (
	"fmt"
	"strings"
)

// LayoutErrorKind enumerates types of layout calculation errors.
type LayoutErrorKind uint8

const (
	// LayoutErrRecursiveUnsized indicates a struct that contains itself by value.
	LayoutErrRecursiveUnsized LayoutErrorKind = iota + 1
	LayoutErrLengthConversion
	LayoutErrNegativeLength
	LayoutErrInvalidScalar
	LayoutErrMisplacedFlexArray
	LayoutErrNilType
)

// LayoutError represents an error during memory layout calculation.
type LayoutError struct {
	Kind  LayoutErrorKind
	Type  string
	Cycle []string // for LayoutErrRecursiveUnsized
	Value int64    // for LayoutErrNegativeLength and LayoutErrInvalidScalar
	Err   error    // for LayoutErrLengthConversion
}

func (e *LayoutError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case LayoutErrRecursiveUnsized:
		if len(e.Cycle) == 0 {
			return fmt.Sprintf("recursive value type has infinite size (%s)", e.Type)
		}
		return fmt.Sprintf("recursive value type has infinite size (cycle: %s)", strings.Join(e.Cycle, " -> "))
	case LayoutErrLengthConversion:
		if e.Err != nil {
			return fmt.Sprintf("array length conversion error (%s): %v", e.Type, e.Err)
		}
		return fmt.Sprintf("array length conversion error (%s)", e.Type)
	case LayoutErrNegativeLength:
		return fmt.Sprintf("negative array length: %d (%s)", e.Value, e.Type)
	case LayoutErrInvalidScalar:
		return fmt.Sprintf("invalid scalar width %d (%s)", e.Value, e.Type)
	case LayoutErrMisplacedFlexArray:
		return fmt.Sprintf("flexible array member must be the last struct member (%s)", e.Type)
	case LayoutErrNilType:
		return fmt.Sprintf("nil type descriptor (%s)", e.Type)
	default:
		return fmt.Sprintf("layout error kind=%d (%s)", e.Kind, e.Type)
	}
}

func (e *LayoutError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
