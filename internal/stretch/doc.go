// Package stretch implements truncated-histogram contrast stretching of
// raster bands to 8-bit output.
//
// The truncated stretch clips a chosen percentile of extreme values off both
// ends of the sample histogram before linearly rescaling the remainder, so a
// handful of outlier pixels cannot compress the usable dynamic range of the
// output. This is the standard way to make 16-bit satellite imagery viewable
// as an 8-bit image.
//
// Stretching is a pure function: it never modifies the input grid, it has no
// shared state, and each band of a multi-band raster is stretched
// independently.
package stretch
