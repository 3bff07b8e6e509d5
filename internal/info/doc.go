// Package info inspects raster datasets and produces a structured metadata
// report: file facts, raster shape and sample type, georeferencing
// (geotransform, projection, geographic bounds and center), per-band
// statistics and storage characteristics.
//
// Analysis is read-only and best-effort: sections that cannot be computed
// for a particular dataset (no projection, an unsupported sample type, a
// failing coordinate transform) are left empty rather than failing the
// whole report.
package info
