// Package raster wraps the GDAL raster-access layer (via airbusgeo/godal)
// behind a small surface tailored to geotool's needs: opening and creating
// GTiff datasets, reading and writing whole bands or pixel windows into typed
// in-memory grids, and carrying geotransform and projection metadata.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner,
// X increasing rightward and Y increasing downward. Band numbers follow the
// GDAL convention and are 1-based.
//
// # Geotransforms
//
// A GeoTransform is the six-parameter affine mapping from pixel/line raster
// coordinates to georeferenced world coordinates:
//
//	worldX = originX + px*pixelWidth  + py*rowRotation
//	worldY = originY + px*colRotation + py*pixelHeight
//
// # Resource Management
//
// Dataset owns an open GDAL handle. Callers must Close() every dataset on all
// exit paths; for write handles, Close flushes pending data so a dataset that
// fails mid-write should be closed and its file removed rather than returned.
//
// # Supported Sample Types
//
// The processing pipeline handles 8-bit and 16-bit unsigned integer samples.
// Other sample types can still be inspected (see DataTypeName) but reading
// pixel data reports an UnsupportedTypeError.
package raster
