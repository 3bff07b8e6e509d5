package raster

import (
	"fmt"

	"github.com/airbusgeo/godal"
)

// Dataset is an open raster dataset handle.
//
// A Dataset returned by Open is read-only; one returned by Create accepts
// band writes and metadata assignment until closed. Either way the caller
// owns the handle and must Close it on every exit path.
type Dataset struct {
	ds   *godal.Dataset
	path string
}

// Open opens an existing raster file read-only.
func Open(path string) (*Dataset, error) {
	ds, err := godal.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return &Dataset{ds: ds, path: path}, nil
}

// Create creates a new GTiff dataset at path with the given shape, band
// count and sample type. The returned dataset is open for writing.
func Create(path string, width, height, bands int, dtype DataType) (*Dataset, error) {
	var gdt godal.DataType
	switch dtype {
	case Byte:
		gdt = godal.Byte
	case UInt16:
		gdt = godal.UInt16
	default:
		return nil, &UnsupportedTypeError{TypeName: dtype.String()}
	}
	ds, err := godal.Create(godal.GTiff, path, bands, gdt, width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return &Dataset{ds: ds, path: path}, nil
}

// Path returns the file path the dataset was opened or created with.
func (d *Dataset) Path() string { return d.path }

// Width returns the raster width in pixels.
func (d *Dataset) Width() int { return d.ds.Structure().SizeX }

// Height returns the raster height in pixels.
func (d *Dataset) Height() int { return d.ds.Structure().SizeY }

// BandCount returns the number of bands in the dataset.
func (d *Dataset) BandCount() int { return d.ds.Structure().NBands }

// DataType returns the sample type of the dataset's bands. Datasets whose
// samples are not 8-bit or 16-bit unsigned integers yield an
// UnsupportedTypeError; use DataTypeName to inspect those.
func (d *Dataset) DataType() (DataType, error) {
	switch gdt := d.ds.Structure().DataType; gdt {
	case godal.Byte:
		return Byte, nil
	case godal.UInt16:
		return UInt16, nil
	default:
		return 0, &UnsupportedTypeError{TypeName: gdt.String()}
	}
}

// DataTypeName returns the GDAL name of the dataset's sample type, including
// types the pipeline does not process.
func (d *Dataset) DataTypeName() string {
	return d.ds.Structure().DataType.String()
}

// GeoTransform returns the dataset's geotransform. Rasters without
// georeferencing report the identity transform, matching GDAL behavior.
func (d *Dataset) GeoTransform() (GeoTransform, error) {
	gt, err := d.ds.GeoTransform()
	if err != nil {
		// GDAL reports an error for datasets with no geotransform at all;
		// callers treat that the same as the identity transform.
		return Identity, nil
	}
	return GeoTransform(gt), nil
}

// SetGeoTransform assigns the dataset's geotransform.
func (d *Dataset) SetGeoTransform(gt GeoTransform) error {
	if err := d.ds.SetGeoTransform([6]float64(gt)); err != nil {
		return fmt.Errorf("failed to set geotransform on %s: %w", d.path, err)
	}
	return nil
}

// Projection returns the dataset's spatial reference as a WKT string, empty
// when none is set.
func (d *Dataset) Projection() string {
	return d.ds.Projection()
}

// SetProjection assigns the dataset's spatial reference from a WKT string.
// An empty WKT is a no-op so unreferenced rasters copy cleanly.
func (d *Dataset) SetProjection(wkt string) error {
	if wkt == "" {
		return nil
	}
	if err := d.ds.SetProjection(wkt); err != nil {
		return fmt.Errorf("failed to set projection on %s: %w", d.path, err)
	}
	return nil
}

func (d *Dataset) band(number int) (godal.Band, error) {
	bands := d.ds.Bands()
	if number < 1 || number > len(bands) {
		return godal.Band{}, fmt.Errorf("band %d out of range 1..%d in %s",
			number, len(bands), d.path)
	}
	return bands[number-1], nil
}

// ReadBand reads an entire band (1-based) into a new grid.
func (d *Dataset) ReadBand(number int) (*Grid, error) {
	return d.ReadBandWindow(number, FullWindow(d.Width(), d.Height()))
}

// ReadBandWindow reads exactly the samples inside win from a band (1-based)
// into a new grid. The window must already be valid for the dataset extent.
func (d *Dataset) ReadBandWindow(number int, win Window) (*Grid, error) {
	if err := win.Validate(d.Width(), d.Height()); err != nil {
		return nil, err
	}
	dtype, err := d.DataType()
	if err != nil {
		return nil, err
	}
	band, err := d.band(number)
	if err != nil {
		return nil, err
	}
	grid, err := NewGrid(win.XSize, win.YSize, dtype)
	if err != nil {
		return nil, err
	}
	switch dtype {
	case Byte:
		err = band.Read(win.XOff, win.YOff, grid.Bytes, win.XSize, win.YSize)
	case UInt16:
		err = band.Read(win.XOff, win.YOff, grid.Words, win.XSize, win.YSize)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read band %d window %s of %s: %w",
			number, win, d.path, err)
	}
	return grid, nil
}

// WriteBand writes a grid into a band (1-based) starting at pixel (0,0).
// The grid's shape and sample type must match the dataset.
func (d *Dataset) WriteBand(number int, grid *Grid) error {
	if grid.Width != d.Width() || grid.Height != d.Height() {
		return fmt.Errorf("grid %dx%d does not match dataset extent %dx%d of %s",
			grid.Width, grid.Height, d.Width(), d.Height(), d.path)
	}
	dtype, err := d.DataType()
	if err != nil {
		return err
	}
	if grid.DType != dtype {
		return fmt.Errorf("grid type %s does not match dataset type %s of %s",
			grid.DType, dtype, d.path)
	}
	band, err := d.band(number)
	if err != nil {
		return err
	}
	switch dtype {
	case Byte:
		err = band.Write(0, 0, grid.Bytes, grid.Width, grid.Height)
	case UInt16:
		err = band.Write(0, 0, grid.Words, grid.Width, grid.Height)
	}
	if err != nil {
		return fmt.Errorf("failed to write band %d of %s: %w", number, d.path, err)
	}
	return nil
}

// BandNoData returns the nodata value of a band (1-based), with ok false
// when no nodata value is set.
func (d *Dataset) BandNoData(number int) (value float64, ok bool) {
	band, err := d.band(number)
	if err != nil {
		return 0, false
	}
	return band.NoData()
}

// BandColorInterp returns the color interpretation name of a band (1-based),
// e.g. "Gray", "Red", "Palette".
func (d *Dataset) BandColorInterp(number int) string {
	band, err := d.band(number)
	if err != nil {
		return ""
	}
	return band.ColorInterp().Name()
}

// Close flushes and releases the underlying GDAL handle. For datasets open
// for writing, Close is the point where data hits disk; its error must not
// be ignored.
func (d *Dataset) Close() error {
	if err := d.ds.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", d.path, err)
	}
	return nil
}
