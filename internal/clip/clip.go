package clip

import (
	"fmt"
	"os"

	"github.com/rasterlab/geotool/internal/raster"
)

// Result describes a completed clip.
type Result struct {
	OutputPath   string              `json:"output_path"`
	Width        int                 `json:"width"`
	Height       int                 `json:"height"`
	Bands        int                 `json:"bands"`
	DataType     string              `json:"data_type"`
	GeoTransform raster.GeoTransform `json:"geo_transform"`
}

// Region copies the pixels inside win from src into a new GTiff at outPath.
//
// The output has win's dimensions, src's band count and sample type, a
// geotransform whose origin is moved to pixel (win.XOff, win.YOff) of the
// source, and src's projection verbatim. Output pixel (0,0) therefore
// corresponds exactly to source pixel (win.XOff, win.YOff).
//
// The window is validated before anything is written: an out-of-bounds
// window returns a *raster.BoundsError and creates no file. Failures after
// the output has been created close and remove the partial file.
func Region(src *raster.Dataset, win raster.Window, outPath string) (*Result, error) {
	if err := win.Validate(src.Width(), src.Height()); err != nil {
		return nil, err
	}
	dtype, err := src.DataType()
	if err != nil {
		return nil, err
	}

	bands := src.BandCount()
	grids := make([]*raster.Grid, bands)
	for b := 1; b <= bands; b++ {
		grid, err := src.ReadBandWindow(b, win)
		if err != nil {
			return nil, err
		}
		grids[b-1] = grid
	}

	gt, err := src.GeoTransform()
	if err != nil {
		return nil, err
	}
	outGT := gt.TranslatePixel(win.XOff, win.YOff)

	dst, err := raster.Create(outPath, win.XSize, win.YSize, bands, dtype)
	if err != nil {
		return nil, err
	}
	if err := writeClipped(dst, grids, outGT, src.Projection()); err != nil {
		// Never leave a half-written output behind.
		dst.Close()
		os.Remove(outPath)
		return nil, err
	}
	if err := dst.Close(); err != nil {
		os.Remove(outPath)
		return nil, err
	}

	return &Result{
		OutputPath:   outPath,
		Width:        win.XSize,
		Height:       win.YSize,
		Bands:        bands,
		DataType:     dtype.String(),
		GeoTransform: outGT,
	}, nil
}

func writeClipped(dst *raster.Dataset, grids []*raster.Grid, gt raster.GeoTransform, projection string) error {
	for i, grid := range grids {
		if err := dst.WriteBand(i+1, grid); err != nil {
			return err
		}
	}
	if err := dst.SetGeoTransform(gt); err != nil {
		return err
	}
	return dst.SetProjection(projection)
}

// File opens inputPath, clips win from it into outputPath and releases the
// source handle. It is the path-level form of Region used by the CLI and the
// HTTP API.
func File(inputPath, outputPath string, win raster.Window) (*Result, error) {
	src, err := raster.Open(inputPath)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	res, err := Region(src, win, outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to clip %s: %w", inputPath, err)
	}
	return res, nil
}
