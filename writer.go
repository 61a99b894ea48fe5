package bcc

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
)

// Encode writes the collection to w in the BCC wire format. Decoding the
// output with Parse reproduces the collection exactly: header fields,
// looping flags, offsets, and control points.
func Encode(w io.Writer, c *Collection) error {
	bw := bufio.NewWriter(w)

	var hdr [headerSize]byte
	copy(hdr[0:3], c.header.signature[:])
	hdr[3] = c.header.precision
	copy(hdr[4:6], c.header.curveType[:])
	hdr[6] = c.header.dimensions
	hdr[7] = byte(c.header.upDirection)
	binary.LittleEndian.PutUint64(hdr[8:16], c.header.numCurves)
	binary.LittleEndian.PutUint64(hdr[16:24], c.header.numControlPoints)
	copy(hdr[24:headerSize], c.header.fileInformation[:])
	if _, err := bw.Write(hdr[:]); err != nil {
		return err
	}

	var b [4]byte
	for i := 0; i < c.NumCurves(); i++ {
		points := c.NumCurvePoints(i)
		count := int32(points)
		if c.looping[i] {
			count = -count
		}
		binary.LittleEndian.PutUint32(b[:], uint32(count))
		if _, err := bw.Write(b[:]); err != nil {
			return err
		}

		l := c.firstControlPoints[i] * pointDimensions
		r := c.firstControlPoints[i+1] * pointDimensions
		for _, f := range c.controlPoints[l:r] {
			binary.LittleEndian.PutUint32(b[:], math.Float32bits(f))
			if _, err := bw.Write(b[:]); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
