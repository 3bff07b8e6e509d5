// Package server implements the HTTP API for geotool.
//
// The API is mounted under /api/v1 and exposes the same operations as the
// CLI:
//
//   - GET  /api/v1/health: liveness and version
//   - GET  /api/v1/info?path=...: raster metadata as JSON
//   - GET  /api/v1/convert?path=...: PNG rendering of a raster
//   - POST /api/v1/clip: clip a pixel window into a new GeoTIFF
//
// Responses are JSON except for convert, which streams image/png. Errors
// are returned as {"error": "..."} with an appropriate status code:
// 400 for bad parameters or out-of-bounds windows, 404 for unreadable
// inputs, 500 otherwise.
package server
