package bcc

import (
	"fmt"
	"math"
)

// pointDimensions is the number of components per control point. The
// format reserves a dimensions byte, but only 3D collections exist.
const pointDimensions = 3

// Collection is a decoded BCC curve collection.
//
// A Collection is created once by Parse, ParseContext, or NewCollection
// and never mutated afterward. It is safe to share across goroutines,
// including for concurrent BuildGeometry calls.
type Collection struct {
	header Header

	// looping[i] reports whether curve i closes back to its first point.
	// len(looping) == NumCurves().
	looping []bool

	// firstControlPoints[i] is the offset of curve i's first control
	// point within the flat point buffer, in points (not floats).
	// len(firstControlPoints) == NumCurves()+1; the slice is monotone
	// non-decreasing, starts at 0, and ends at NumControlPoints().
	firstControlPoints []int

	// controlPoints holds all control points flattened to
	// NumControlPoints()*3 floats, grouped x, y, z per point.
	controlPoints []float32
}

// Header returns the header of the collection.
func (c *Collection) Header() *Header {
	return &c.header
}

// NumCurves returns the number of curves in the collection.
func (c *Collection) NumCurves() int {
	return len(c.looping)
}

// Looping reports whether curve n closes back to its first point.
// Valid for n in [0, NumCurves()).
func (c *Collection) Looping(n int) bool {
	return c.looping[n]
}

// FirstControlPoint returns the offset of curve n's first control point
// in the flat point buffer. Valid for n in [0, NumCurves()]; the value at
// NumCurves() equals the total control-point count, so the range of curve
// n is [FirstControlPoint(n), FirstControlPoint(n+1)).
func (c *Collection) FirstControlPoint(n int) int {
	return c.firstControlPoints[n]
}

// ControlPoints returns the flattened control-point buffer. The slice is
// shared with the Collection and must not be modified.
func (c *Collection) ControlPoints() []float32 {
	return c.controlPoints
}

// NumCurvePoints returns the number of control points of curve n.
func (c *Collection) NumCurvePoints(n int) int {
	return c.firstControlPoints[n+1] - c.firstControlPoints[n]
}

// CurvePoint returns control point i of curve n.
func (c *Collection) CurvePoint(n, i int) Point3 {
	off := (c.firstControlPoints[n] + i) * pointDimensions
	return Point3{
		X: c.controlPoints[off],
		Y: c.controlPoints[off+1],
		Z: c.controlPoints[off+2],
	}
}

// Curve describes one curve when assembling a Collection in memory.
type Curve struct {
	// Points are the control points of the curve, in order.
	Points []Point3

	// Looping marks the curve as closed: rendering connects the last
	// point back to the first.
	Looping bool
}

// NewCollection assembles a Collection from in-memory curves, producing
// the same structure Parse would for the equivalent file. The info string
// is truncated to the 40-byte file-information field; up must be UpY or
// UpZ. Each curve's point count must fit the wire format's signed 32-bit
// counter.
func NewCollection(info string, up UpDirection, curves []Curve) (*Collection, error) {
	if up != UpY && up != UpZ {
		return nil, ErrInvalidUpDirection
	}

	total := 0
	for i, cv := range curves {
		if len(cv.Points) > math.MaxInt32 {
			return nil, fmt.Errorf("curve %d: %w", i, ErrTooManyControlPoints)
		}
		total += len(cv.Points)
	}

	c := &Collection{
		header: Header{
			signature:        fileSignature,
			precision:        precisionI32F32,
			curveType:        curveTypeC0,
			dimensions:       pointDimensions,
			upDirection:      up,
			numCurves:        uint64(len(curves)),
			numControlPoints: uint64(total),
		},
		looping:            make([]bool, len(curves)),
		firstControlPoints: make([]int, len(curves)+1),
		controlPoints:      make([]float32, 0, total*pointDimensions),
	}
	copy(c.header.fileInformation[:], info)

	offset := 0
	for i, cv := range curves {
		c.looping[i] = cv.Looping
		c.firstControlPoints[i] = offset
		for _, p := range cv.Points {
			c.controlPoints = append(c.controlPoints, p.X, p.Y, p.Z)
		}
		offset += len(cv.Points)
	}
	c.firstControlPoints[len(curves)] = offset

	return c, nil
}
