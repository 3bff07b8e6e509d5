// Package convert turns geospatial TIFF rasters into viewable PNG images.
//
// The pipeline reads every band of the source, stretches each band
// independently to 8 bits with a truncated histogram stretch (see package
// stretch), and composes the results into an image: one band becomes
// grayscale, three or more bands become RGB with band order preserved as
// channel order. Optional post-processing covers pseudocolor ramps for
// single-band sources, Gaussian pre-blur, and integer-factor downsampling.
//
// Georeferencing is not carried into the PNG; conversion exists to make
// raster content viewable, not to produce another geospatial dataset.
package convert
