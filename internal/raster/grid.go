package raster

import "fmt"

// DataType identifies the sample storage type of a grid.
//
// Only the types the processing pipeline can handle are enumerated here;
// anything else a dataset may contain surfaces as an UnsupportedTypeError
// when pixel data is read.
type DataType int

const (
	// Byte is an 8-bit unsigned integer sample (GDAL "Byte").
	Byte DataType = iota + 1
	// UInt16 is a 16-bit unsigned integer sample.
	UInt16
)

// String returns the GDAL-style name of the data type.
func (dt DataType) String() string {
	switch dt {
	case Byte:
		return "Byte"
	case UInt16:
		return "UInt16"
	default:
		return fmt.Sprintf("DataType(%d)", int(dt))
	}
}

// Size returns the number of bytes used to store one sample.
func (dt DataType) Size() int {
	switch dt {
	case Byte:
		return 1
	case UInt16:
		return 2
	default:
		return 0
	}
}

// Domain returns the number of representable sample values for the type:
// 256 for Byte, 65536 for UInt16.
func (dt DataType) Domain() int {
	switch dt {
	case Byte:
		return 1 << 8
	case UInt16:
		return 1 << 16
	default:
		return 0
	}
}

// Grid holds one band's samples in row-major order, top row first.
//
// Exactly one of Bytes or Words is populated, matching DType. A Grid is
// treated as immutable once filled: operations that change geometry or values
// allocate new storage rather than mutating in place.
type Grid struct {
	Width  int
	Height int
	DType  DataType

	// Bytes holds the samples when DType == Byte.
	Bytes []uint8
	// Words holds the samples when DType == UInt16.
	Words []uint16
}

// NewGrid allocates a zero-filled grid of the given shape and sample type.
func NewGrid(width, height int, dtype DataType) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid grid shape %dx%d", width, height)
	}
	g := &Grid{Width: width, Height: height, DType: dtype}
	switch dtype {
	case Byte:
		g.Bytes = make([]uint8, width*height)
	case UInt16:
		g.Words = make([]uint16, width*height)
	default:
		return nil, &UnsupportedTypeError{TypeName: dtype.String()}
	}
	return g, nil
}

// Len returns the number of samples in the grid.
func (g *Grid) Len() int {
	return g.Width * g.Height
}

// Sample returns the i'th sample widened to int, regardless of storage type.
func (g *Grid) Sample(i int) int {
	if g.DType == Byte {
		return int(g.Bytes[i])
	}
	return int(g.Words[i])
}
