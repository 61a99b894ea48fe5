package bcc

import (
	"context"
	"encoding/binary"
	"io"
	"math"
	"strconv"
)

// readFullFunc reads exactly len(p) bytes into p, or reports why it could
// not. It is the single capability the decode algorithm needs; Parse and
// ParseContext supply the blocking and cancellable drivers.
type readFullFunc func(p []byte) error

// scratchSize bounds the byte buffer used to stage control-point reads.
// Must be a multiple of 4 so float values never straddle two reads.
const scratchSize = 4096

// Parse decodes a BCC stream into a Collection, reading r synchronously
// on the calling goroutine. The reader must be positioned at the start of
// the file. On any validation or I/O failure no partial Collection is
// returned.
func Parse(r io.Reader) (*Collection, error) {
	return parse(func(p []byte) error {
		_, err := io.ReadFull(r, p)
		return err
	})
}

// ParseContext decodes a BCC stream like Parse, but observes ctx at every
// read boundary. Once ctx is done the next read fails and the error is
// surfaced as an *IOError wrapping ctx.Err(), so callers can bound a
// decode without wrapping the reader themselves.
func ParseContext(ctx context.Context, r io.Reader) (*Collection, error) {
	return parse(func(p []byte) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		_, err := io.ReadFull(r, p)
		return err
	})
}

// parse runs the decode algorithm over an abstract read capability. Both
// drivers execute this exact code path and produce bit-identical
// Collections for the same input.
func parse(read readFullFunc) (*Collection, error) {
	h, err := decodeHeader(read)
	if err != nil {
		return nil, err
	}
	Logger().Debug("parsing curve collection",
		"curves", h.numCurves, "control_points", h.numControlPoints,
		"up", h.upDirection.String())

	numCurves := int(h.numCurves)
	numPoints := int(h.numControlPoints)

	c := &Collection{
		header:             h,
		looping:            make([]bool, numCurves),
		firstControlPoints: make([]int, numCurves+1),
		controlPoints:      make([]float32, numPoints*pointDimensions),
	}

	scratch := make([]byte, min(numPoints*pointDimensions*4, scratchSize))
	offset := 0 // running offset into the point buffer, in points
	var cb [4]byte
	for i := 0; i < numCurves; i++ {
		if err := read(cb[:]); err != nil {
			return nil, &IOError{Op: "curve " + strconv.Itoa(i), Err: err}
		}
		n := int64(int32(binary.LittleEndian.Uint32(cb[:])))

		c.looping[i] = n < 0
		c.firstControlPoints[i] = offset

		if n < 0 {
			n = -n
		}
		if n > math.MaxInt {
			return nil, ErrTooManyControlPoints
		}
		points := int(n)
		if points > numPoints-offset {
			// More points than the header declared; reading on would
			// overrun the shared buffer.
			return nil, ErrCorruptData
		}

		dst := c.controlPoints[offset*pointDimensions : (offset+points)*pointDimensions]
		if err := readFloats(read, dst, scratch); err != nil {
			return nil, &IOError{Op: "curve " + strconv.Itoa(i), Err: err}
		}
		offset += points
	}
	c.firstControlPoints[numCurves] = offset

	if offset != numPoints {
		return nil, ErrCorruptData
	}

	Logger().Debug("parsed curve collection", "curves", numCurves)
	return c, nil
}

// readFloats fills dst with little-endian float32 values, staging the raw
// bytes through scratch. Decoding in bounded chunks avoids both a
// full-size byte copy of the point stream and any reinterpretation of the
// float buffer as bytes.
func readFloats(read readFullFunc, dst []float32, scratch []byte) error {
	for cursor := 0; cursor < len(dst); {
		n := min((len(dst)-cursor)*4, len(scratch))
		if err := read(scratch[:n]); err != nil {
			return err
		}
		for b := 0; b < n; b += 4 {
			dst[cursor] = math.Float32frombits(binary.LittleEndian.Uint32(scratch[b:]))
			cursor++
		}
	}
	return nil
}
