package bcc

import (
	"errors"
	"fmt"
)

// Errors.
var (
	// ErrInvalidSignature is returned when a file does not start with the
	// "BCC" signature.
	ErrInvalidSignature = errors.New("bcc: invalid signature")

	// ErrInvalidPrecision is returned when the precision byte is not 0x44.
	// BCC files only support 4-byte integers and 4-byte floats.
	ErrInvalidPrecision = errors.New("bcc: unsupported precision")

	// ErrInvalidCurveType is returned when the curve-type tag is not "C0".
	// Only Catmull-Rom curves with uniform parameterization are supported.
	ErrInvalidCurveType = errors.New("bcc: unsupported curve type")

	// ErrInvalidDimensions is returned when the dimensions byte is not 3.
	ErrInvalidDimensions = errors.New("bcc: curves must be 3-dimensional")

	// ErrInvalidUpDirection is returned when the up-direction byte is
	// neither 1 (Y-up) nor 2 (Z-up).
	ErrInvalidUpDirection = errors.New("bcc: invalid up direction")

	// ErrTooManyCurves is returned when the declared curve count does not
	// fit in the host's int.
	ErrTooManyCurves = errors.New("bcc: curve count exceeds addressable size")

	// ErrTooManyControlPoints is returned when a control-point count does
	// not fit in the host's int.
	ErrTooManyControlPoints = errors.New("bcc: control point count exceeds addressable size")

	// ErrCorruptData is returned when the curve records disagree with the
	// header, e.g. the summed per-curve point counts do not match the
	// declared control-point count.
	ErrCorruptData = errors.New("bcc: corrupt curve data")
)

// IOError wraps a failure of the underlying byte source. Use errors.As to
// recover it and errors.Is to match the wrapped cause (io.ErrUnexpectedEOF,
// context.Canceled, ...).
type IOError struct {
	// Op names the decode step that failed, e.g. "header" or "curve 3".
	Op string
	// Err is the underlying cause.
	Err error
}

func (e *IOError) Error() string {
	return "bcc: read " + e.Op + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// IndexOverflowError indicates a collection holds more control points than
// the uint32 index buffer can address. The maximum uint32 is reserved as
// the primitive-restart sentinel and is never a valid index.
type IndexOverflowError struct {
	// ControlPoints is the total control-point count of the collection.
	ControlPoints int
	// Max is the largest representable control-point count.
	Max uint32
}

func (e *IndexOverflowError) Error() string {
	return fmt.Sprintf("bcc: %d control points exceed the %d addressable by the index buffer",
		e.ControlPoints, e.Max)
}
