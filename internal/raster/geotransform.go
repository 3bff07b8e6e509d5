package raster

// GeoTransform is the six-parameter affine mapping from pixel coordinates to
// world coordinates, in GDAL parameter order:
//
//	[0] originX      world X of the top-left corner of the top-left pixel
//	[1] pixelWidth   world units per pixel in X
//	[2] rowRotation  X skew term (0 for north-up images)
//	[3] originY      world Y of the top-left corner of the top-left pixel
//	[4] colRotation  Y skew term (0 for north-up images)
//	[5] pixelHeight  world units per pixel in Y (negative for north-up)
type GeoTransform [6]float64

// Identity is the geotransform GDAL reports for rasters without
// georeferencing.
var Identity = GeoTransform{0, 1, 0, 0, 0, 1}

// OriginX returns the world X coordinate of the raster origin.
func (gt GeoTransform) OriginX() float64 { return gt[0] }

// OriginY returns the world Y coordinate of the raster origin.
func (gt GeoTransform) OriginY() float64 { return gt[3] }

// PixelWidth returns the world-unit width of one pixel.
func (gt GeoTransform) PixelWidth() float64 { return gt[1] }

// PixelHeight returns the world-unit height of one pixel, negative for
// north-up rasters.
func (gt GeoTransform) PixelHeight() float64 { return gt[5] }

// Apply maps the pixel-space point (px, py) to world coordinates.
func (gt GeoTransform) Apply(px, py float64) (worldX, worldY float64) {
	worldX = gt[0] + px*gt[1] + py*gt[2]
	worldY = gt[3] + px*gt[4] + py*gt[5]
	return worldX, worldY
}

// TranslatePixel returns the geotransform of a raster whose origin has been
// moved to pixel (xoff, yoff) of this one. The scale and rotation terms carry
// over unchanged, so the translation is correct for arbitrary (including
// rotated) transforms, not just axis-aligned ones.
func (gt GeoTransform) TranslatePixel(xoff, yoff int) GeoTransform {
	ox, oy := gt.Apply(float64(xoff), float64(yoff))
	return GeoTransform{ox, gt[1], gt[2], oy, gt[4], gt[5]}
}
