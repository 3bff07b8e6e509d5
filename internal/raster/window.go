package raster

import "fmt"

// Window is an axis-aligned rectangle in pixel-index space selecting a
// sub-region of a raster.
type Window struct {
	XOff  int `json:"xoff"`
	YOff  int `json:"yoff"`
	XSize int `json:"xsize"`
	YSize int `json:"ysize"`
}

// FullWindow returns the window spanning an entire raster of the given size.
func FullWindow(width, height int) Window {
	return Window{XOff: 0, YOff: 0, XSize: width, YSize: height}
}

func (w Window) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", w.XSize, w.YSize, w.XOff, w.YOff)
}

// Validate checks the window against a raster extent. It returns a
// *BoundsError when the window has a non-positive size, a negative offset,
// or extends past the raster edge.
func (w Window) Validate(width, height int) error {
	if w.XOff < 0 || w.YOff < 0 ||
		w.XSize <= 0 || w.YSize <= 0 ||
		w.XOff+w.XSize > width || w.YOff+w.YSize > height {
		return &BoundsError{Window: w, Width: width, Height: height}
	}
	return nil
}
