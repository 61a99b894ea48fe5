package bcc

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
	"testing"
)

// rawHeader builds a valid 64-byte header and applies mutations on top.
func rawHeader(mut func(h []byte)) []byte {
	h := make([]byte, headerSize)
	copy(h[0:3], "BCC")
	h[3] = 0x44
	copy(h[4:6], "C0")
	h[6] = 3
	h[7] = 1
	// zero curves, zero control points, empty file information
	if mut != nil {
		mut(h)
	}
	return h
}

func TestDecodeHeaderValidation(t *testing.T) {
	tests := []struct {
		name    string
		mut     func(h []byte)
		wantErr error
	}{
		{
			name:    "valid empty header",
			mut:     nil,
			wantErr: nil,
		},
		{
			name:    "bad signature",
			mut:     func(h []byte) { copy(h[0:3], "XYZ") },
			wantErr: ErrInvalidSignature,
		},
		{
			name:    "bad precision",
			mut:     func(h []byte) { h[3] = 0x88 },
			wantErr: ErrInvalidPrecision,
		},
		{
			name:    "bad curve type",
			mut:     func(h []byte) { copy(h[4:6], "C1") },
			wantErr: ErrInvalidCurveType,
		},
		{
			name:    "bad dimensions",
			mut:     func(h []byte) { h[6] = 2 },
			wantErr: ErrInvalidDimensions,
		},
		{
			name:    "up direction zero",
			mut:     func(h []byte) { h[7] = 0 },
			wantErr: ErrInvalidUpDirection,
		},
		{
			name:    "up direction out of range",
			mut:     func(h []byte) { h[7] = 3 },
			wantErr: ErrInvalidUpDirection,
		},
		{
			name: "curve count overflow",
			mut: func(h []byte) {
				binary.LittleEndian.PutUint64(h[8:16], 1<<63)
			},
			wantErr: ErrTooManyCurves,
		},
		{
			name: "control point count overflow",
			mut: func(h []byte) {
				binary.LittleEndian.PutUint64(h[16:24], 1<<63)
			},
			wantErr: ErrTooManyControlPoints,
		},
		{
			// Fits an int but not an allocatable float buffer; must be
			// a typed error, not an allocation panic.
			name: "control point buffer overflow",
			mut: func(h []byte) {
				binary.LittleEndian.PutUint64(h[16:24], 1<<60)
			},
			wantErr: ErrTooManyControlPoints,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(bytes.NewReader(rawHeader(tt.mut)))
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Parse() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// A bad signature must fail before any later field is interpreted: the
// remaining header bytes can be garbage or missing entirely.
func TestDecodeHeaderFailFast(t *testing.T) {
	_, err := Parse(bytes.NewReader([]byte("XYZ")))
	if !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("Parse() error = %v, want ErrInvalidSignature", err)
	}
}

func TestHeaderAccessors(t *testing.T) {
	h := rawHeader(func(h []byte) {
		h[7] = 2
		copy(h[24:], "spun wool\x00\x00")
	})
	c, err := Parse(bytes.NewReader(h))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	hdr := c.Header()
	if hdr.Dimensions() != 3 {
		t.Errorf("Dimensions() = %d, want 3", hdr.Dimensions())
	}
	if hdr.UpDirection() != UpZ {
		t.Errorf("UpDirection() = %v, want UpZ", hdr.UpDirection())
	}
	if hdr.NumCurves() != 0 {
		t.Errorf("NumCurves() = %d, want 0", hdr.NumCurves())
	}
	if hdr.FileInformation() != "spun wool" {
		t.Errorf("FileInformation() = %q, want %q", hdr.FileInformation(), "spun wool")
	}
	if s := hdr.String(); !strings.Contains(s, "up=Z") || !strings.Contains(s, "spun wool") {
		t.Errorf("String() = %q, missing up axis or file information", s)
	}
}

func TestUpDirectionString(t *testing.T) {
	tests := []struct {
		dir  UpDirection
		want string
	}{
		{UpY, "Y"},
		{UpZ, "Z"},
		{UpDirection(7), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.dir.String(); got != tt.want {
			t.Errorf("UpDirection(%d).String() = %q, want %q", tt.dir, got, tt.want)
		}
	}
}
