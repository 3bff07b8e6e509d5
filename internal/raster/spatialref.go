package raster

import (
	"fmt"

	"github.com/airbusgeo/godal"
)

const wgs84EPSG = 4326

// ToGeographic converts projected coordinates expressed in the spatial
// reference given by wkt to WGS84 longitude/latitude. The xs and ys slices
// are transformed pairwise and must have equal length; the input slices are
// not modified.
func ToGeographic(wkt string, xs, ys []float64) (lons, lats []float64, err error) {
	if wkt == "" {
		return nil, nil, fmt.Errorf("empty projection")
	}
	if len(xs) != len(ys) {
		return nil, nil, fmt.Errorf("coordinate slices differ in length: %d vs %d", len(xs), len(ys))
	}

	src, err := godal.NewSpatialRefFromWKT(wkt)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse projection: %w", err)
	}
	defer src.Close()

	dst, err := godal.NewSpatialRefFromEPSG(wgs84EPSG)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create WGS84 reference: %w", err)
	}
	defer dst.Close()

	trn, err := godal.NewTransform(src, dst)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create coordinate transform: %w", err)
	}
	defer trn.Close()

	lons = append([]float64(nil), xs...)
	lats = append([]float64(nil), ys...)
	if err := trn.TransformEx(lons, lats, nil, nil); err != nil {
		return nil, nil, fmt.Errorf("coordinate transform failed: %w", err)
	}
	return lons, lats, nil
}
