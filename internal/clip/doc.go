// Package clip extracts rectangular sub-regions from raster datasets while
// keeping the per-pixel mapping to world coordinates consistent.
//
// A clip is a crop, not a resize: band values are copied verbatim, the
// output's geotransform is the source transform with its origin moved to the
// window's top-left pixel, and the projection is carried over unchanged.
// Windows that fall outside the source extent are rejected with a bounds
// error rather than silently clamped, and a failed clip never leaves a
// partially written file behind.
package clip
