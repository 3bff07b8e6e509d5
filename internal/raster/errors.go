package raster

import "fmt"

// BoundsError reports a pixel window that falls outside a raster's extent.
//
// Clipping rejects out-of-bounds windows outright instead of clamping them:
// silently shrinking the window would desynchronize the caller's expectations
// about the output size.
type BoundsError struct {
	Window Window
	Width  int
	Height int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("window %s outside raster extent %dx%d",
		e.Window, e.Width, e.Height)
}

// UnsupportedTypeError reports a sample data type the pipeline cannot
// process. TypeName is the GDAL name of the offending type (e.g. "Float32").
type UnsupportedTypeError struct {
	TypeName string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported sample type %s (supported: Byte, UInt16)", e.TypeName)
}
