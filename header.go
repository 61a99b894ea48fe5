package bcc

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
)

// Wire-format constants.
const (
	// headerSize is the fixed size of a BCC header in bytes.
	headerSize = 64

	// fileInfoSize is the size of the free-form file-information field.
	fileInfoSize = 40

	// precisionI32F32 encodes the only supported precision: the high
	// nibble is the integer width (4 bytes), the low nibble the float
	// width (4 bytes).
	precisionI32F32 = 0x44
)

// fileSignature is the 3-byte tag every BCC file starts with.
var fileSignature = [3]byte{'B', 'C', 'C'}

// curveTypeC0 tags Catmull-Rom curves with uniform parameterization,
// the only curve type the format defines.
var curveTypeC0 = [2]byte{'C', '0'}

// UpDirection identifies the vertical axis of the coordinate system a
// collection was authored in.
type UpDirection uint8

const (
	// UpY means the collection is Y-up and needs no conversion.
	UpY UpDirection = 1

	// UpZ means the collection is Z-up; BuildGeometry remaps it to Y-up.
	UpZ UpDirection = 2
)

// String returns the axis name of the up direction.
func (d UpDirection) String() string {
	switch d {
	case UpY:
		return "Y"
	case UpZ:
		return "Z"
	default:
		return "Unknown"
	}
}

// Header is the fixed 64-byte header of a BCC file. It is immutable once
// parsed and is used downstream only for buffer sizing and coordinate
// system selection.
type Header struct {
	signature        [3]byte
	precision        byte
	curveType        [2]byte
	dimensions       byte
	upDirection      UpDirection
	numCurves        uint64
	numControlPoints uint64
	fileInformation  [fileInfoSize]byte
}

// Dimensions returns the number of components per control point.
// Always 3 for a parsed header.
func (h *Header) Dimensions() int {
	return int(h.dimensions)
}

// UpDirection returns the up axis of the collection's coordinate system.
func (h *Header) UpDirection() UpDirection {
	return h.upDirection
}

// NumCurves returns the number of curves declared by the header.
func (h *Header) NumCurves() int {
	return int(h.numCurves)
}

// NumControlPoints returns the total number of control points declared by
// the header, across all curves.
func (h *Header) NumControlPoints() int {
	return int(h.numControlPoints)
}

// FileInformation returns the free-form ASCII description embedded in the
// file, with trailing NUL padding removed.
func (h *Header) FileInformation() string {
	return strings.TrimRight(string(h.fileInformation[:]), "\x00")
}

// String returns a human-readable summary of the header.
func (h *Header) String() string {
	return fmt.Sprintf("bcc.Header{curve=%s dims=%d up=%s curves=%d points=%d info=%q}",
		string(h.curveType[:]), h.dimensions, h.upDirection,
		h.numCurves, h.numControlPoints, h.FileInformation())
}

// decodeHeader reads and validates the fixed header, consuming exactly
// headerSize bytes from read. Each field is validated as it is read;
// decoding stops at the first mismatch.
func decodeHeader(read readFullFunc) (Header, error) {
	var h Header

	if err := read(h.signature[:]); err != nil {
		return Header{}, &IOError{Op: "header", Err: err}
	}
	if h.signature != fileSignature {
		return Header{}, ErrInvalidSignature
	}

	var b [8]byte
	if err := read(b[:1]); err != nil {
		return Header{}, &IOError{Op: "header", Err: err}
	}
	h.precision = b[0]
	if h.precision != precisionI32F32 {
		return Header{}, ErrInvalidPrecision
	}

	if err := read(h.curveType[:]); err != nil {
		return Header{}, &IOError{Op: "header", Err: err}
	}
	if h.curveType != curveTypeC0 {
		return Header{}, ErrInvalidCurveType
	}

	if err := read(b[:1]); err != nil {
		return Header{}, &IOError{Op: "header", Err: err}
	}
	h.dimensions = b[0]
	if h.dimensions != pointDimensions {
		return Header{}, ErrInvalidDimensions
	}

	if err := read(b[:1]); err != nil {
		return Header{}, &IOError{Op: "header", Err: err}
	}
	h.upDirection = UpDirection(b[0])
	if h.upDirection != UpY && h.upDirection != UpZ {
		return Header{}, ErrInvalidUpDirection
	}

	if err := read(b[:]); err != nil {
		return Header{}, &IOError{Op: "header", Err: err}
	}
	h.numCurves = binary.LittleEndian.Uint64(b[:])
	if h.numCurves > math.MaxInt {
		return Header{}, ErrTooManyCurves
	}

	if err := read(b[:]); err != nil {
		return Header{}, &IOError{Op: "header", Err: err}
	}
	h.numControlPoints = binary.LittleEndian.Uint64(b[:])
	// The decoder sizes a flat float32 buffer from this count; both its
	// length and its byte size must stay addressable, or allocation
	// would panic before any curve data is read.
	if h.numControlPoints > math.MaxInt/(pointDimensions*4) {
		return Header{}, ErrTooManyControlPoints
	}

	if err := read(h.fileInformation[:]); err != nil {
		return Header{}, &IOError{Op: "header", Err: err}
	}

	return h, nil
}
