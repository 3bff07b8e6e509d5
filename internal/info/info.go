package info

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/rasterlab/geotool/internal/raster"
)

// Report is the full metadata report for a raster dataset.
type Report struct {
	File    FileInfo    `json:"file"`
	Raster  RasterInfo  `json:"raster"`
	Geo     GeoInfo     `json:"geo"`
	Bands   []BandInfo  `json:"bands"`
	Storage StorageInfo `json:"storage"`
}

// FileInfo describes the container file on disk.
type FileInfo struct {
	Path     string    `json:"path"`
	Name     string    `json:"name"`
	SizeMB   float64   `json:"size_mb"`
	Modified time.Time `json:"modified"`
}

// RasterInfo describes the pixel grid and its sample type.
type RasterInfo struct {
	Width         int     `json:"width"`
	Height        int     `json:"height"`
	Bands         int     `json:"bands"`
	TotalPixels   int64   `json:"total_pixels"`
	AspectRatio   float64 `json:"aspect_ratio"`
	DataType      string  `json:"data_type"`
	Description   string  `json:"data_type_description"`
	ValueRange    string  `json:"value_range"`
	BytesPerBand  int     `json:"bytes_per_band"`
	BytesPerPixel int     `json:"bytes_per_pixel"`
}

// GeoInfo describes georeferencing. Bounds, Center and Extent are nil when
// the dataset carries no usable projection.
type GeoInfo struct {
	Georeferenced bool                `json:"georeferenced"`
	GeoTransform  raster.GeoTransform `json:"geotransform"`
	PixelWidth    float64             `json:"pixel_width"`
	PixelHeight   float64             `json:"pixel_height"`
	Projection    string              `json:"projection,omitempty"`
	ProjectedCS   string              `json:"projected_cs,omitempty"`
	GeographicCS  string              `json:"geographic_cs,omitempty"`
	Datum         string              `json:"datum,omitempty"`
	Bounds        *Bounds             `json:"bounds,omitempty"`
	Center        *Center             `json:"center,omitempty"`
	Extent        *Extent             `json:"extent,omitempty"`
}

// Bounds is a geographic bounding box in decimal degrees.
type Bounds struct {
	West  float64 `json:"west"`
	East  float64 `json:"east"`
	South float64 `json:"south"`
	North float64 `json:"north"`
}

// Center is a geographic point in decimal degrees.
type Center struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// Extent is the approximate ground footprint of the raster.
type Extent struct {
	WidthKm  float64 `json:"width_km"`
	HeightKm float64 `json:"height_km"`
	AreaKm2  float64 `json:"area_km2"`
}

// BandInfo describes a single band. Stats is nil when the sample type is
// not supported for in-memory reads.
type BandInfo struct {
	Number      int        `json:"number"`
	ColorInterp string     `json:"color_interp,omitempty"`
	NoData      *float64   `json:"nodata,omitempty"`
	Stats       *BandStats `json:"stats,omitempty"`
}

// BandStats holds basic sample statistics for one band.
type BandStats struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
}

// StorageInfo relates on-disk size to raw pixel payload.
type StorageInfo struct {
	UncompressedMB   float64 `json:"uncompressed_mb"`
	CompressionRatio float64 `json:"compression_ratio"`
}

type dataTypeDetail struct {
	description string
	valueRange  string
	bytes       int
}

var dataTypeDetails = map[string]dataTypeDetail{
	"Byte":     {"8-bit unsigned integer", "0 to 255", 1},
	"UInt16":   {"16-bit unsigned integer", "0 to 65535", 2},
	"Int16":    {"16-bit signed integer", "-32768 to 32767", 2},
	"UInt32":   {"32-bit unsigned integer", "0 to 4294967295", 4},
	"Int32":    {"32-bit signed integer", "-2147483648 to 2147483647", 4},
	"Float32":  {"32-bit floating point", "approx -3.4e38 to 3.4e38", 4},
	"Float64":  {"64-bit floating point", "approx -1.7e308 to 1.7e308", 8},
	"CInt16":   {"complex 16-bit signed integer", "per component", 4},
	"CInt32":   {"complex 32-bit signed integer", "per component", 8},
	"CFloat32": {"complex 32-bit floating point", "per component", 8},
	"CFloat64": {"complex 64-bit floating point", "per component", 16},
}

var (
	projcsRe = regexp.MustCompile(`PROJCR?S\["([^"]+)"`)
	geogcsRe = regexp.MustCompile(`GEOGCR?S\["([^"]+)"`)
	datumRe  = regexp.MustCompile(`DATUM\["([^"]+)"`)
)

// Analyze opens the raster at path and builds a full metadata report.
//
// Parameters:
//   - path: raster file readable by the GDAL drivers
//
// Returns:
//   - *Report: the populated report
//   - error: non-nil if the file cannot be opened or its shape read
func Analyze(path string) (*Report, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	ds, err := raster.Open(path)
	if err != nil {
		return nil, err
	}
	defer ds.Close()

	r := &Report{
		File: FileInfo{
			Path:     path,
			Name:     filepath.Base(path),
			SizeMB:   float64(st.Size()) / (1024 * 1024),
			Modified: st.ModTime(),
		},
	}

	r.Raster = rasterSection(ds)
	r.Geo = geoSection(ds)
	r.Bands = bandSection(ds)
	r.Storage = storageSection(st.Size(), r.Raster)
	return r, nil
}

func rasterSection(ds *raster.Dataset) RasterInfo {
	width, height := ds.Width(), ds.Height()
	ri := RasterInfo{
		Width:       width,
		Height:      height,
		Bands:       ds.BandCount(),
		TotalPixels: int64(width) * int64(height),
		DataType:    ds.DataTypeName(),
	}
	if height > 0 {
		ri.AspectRatio = float64(width) / float64(height)
	}
	if d, ok := dataTypeDetails[ri.DataType]; ok {
		ri.Description = d.description
		ri.ValueRange = d.valueRange
		ri.BytesPerBand = d.bytes
		ri.BytesPerPixel = d.bytes * ri.Bands
	}
	return ri
}

func geoSection(ds *raster.Dataset) GeoInfo {
	gt, err := ds.GeoTransform()
	if err != nil {
		gt = raster.Identity
	}
	gi := GeoInfo{
		GeoTransform: gt,
		PixelWidth:   math.Abs(gt.PixelWidth()),
		PixelHeight:  math.Abs(gt.PixelHeight()),
		Projection:   ds.Projection(),
	}
	gi.Georeferenced = gi.Projection != "" && gt != raster.Identity
	if m := projcsRe.FindStringSubmatch(gi.Projection); m != nil {
		gi.ProjectedCS = m[1]
	}
	if m := geogcsRe.FindStringSubmatch(gi.Projection); m != nil {
		gi.GeographicCS = m[1]
	}
	if m := datumRe.FindStringSubmatch(gi.Projection); m != nil {
		gi.Datum = m[1]
	}
	if !gi.Georeferenced {
		return gi
	}

	w, h := float64(ds.Width()), float64(ds.Height())
	xs := make([]float64, 5)
	ys := make([]float64, 5)
	for i, c := range [][2]float64{{0, 0}, {w, 0}, {w, h}, {0, h}, {w / 2, h / 2}} {
		xs[i], ys[i] = gt.Apply(c[0], c[1])
	}
	lons, lats, err := raster.ToGeographic(gi.Projection, xs, ys)
	if err != nil {
		return gi
	}

	b := &Bounds{West: lons[0], East: lons[0], South: lats[0], North: lats[0]}
	for i := 1; i < 4; i++ {
		b.West = math.Min(b.West, lons[i])
		b.East = math.Max(b.East, lons[i])
		b.South = math.Min(b.South, lats[i])
		b.North = math.Max(b.North, lats[i])
	}
	gi.Bounds = b
	gi.Center = &Center{Lon: lons[4], Lat: lats[4]}
	gi.Extent = extentFromBounds(b)
	return gi
}

// extentFromBounds approximates ground spans from geographic bounds using
// 111.32 km per degree of latitude and a cosine correction for longitude.
func extentFromBounds(b *Bounds) *Extent {
	const kmPerDegree = 111.32
	midLat := (b.South + b.North) / 2
	widthKm := (b.East - b.West) * kmPerDegree * math.Cos(midLat*math.Pi/180)
	heightKm := (b.North - b.South) * kmPerDegree
	return &Extent{
		WidthKm:  math.Abs(widthKm),
		HeightKm: math.Abs(heightKm),
		AreaKm2:  math.Abs(widthKm * heightKm),
	}
}

func bandSection(ds *raster.Dataset) []BandInfo {
	bands := make([]BandInfo, 0, ds.BandCount())
	for n := 1; n <= ds.BandCount(); n++ {
		bi := BandInfo{Number: n, ColorInterp: ds.BandColorInterp(n)}
		if v, ok := ds.BandNoData(n); ok {
			nd := v
			bi.NoData = &nd
		}
		if grid, err := ds.ReadBand(n); err == nil {
			bi.Stats = gridStats(grid)
		}
		bands = append(bands, bi)
	}
	return bands
}

func gridStats(g *raster.Grid) *BandStats {
	n := g.Len()
	if n == 0 {
		return nil
	}
	minV, maxV := g.Sample(0), g.Sample(0)
	var sum, sumSq float64
	for i := 0; i < n; i++ {
		v := g.Sample(i)
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
		f := float64(v)
		sum += f
		sumSq += f * f
	}
	mean := sum / float64(n)
	variance := sumSq/float64(n) - mean*mean
	if variance < 0 {
		variance = 0
	}
	return &BandStats{
		Min:    float64(minV),
		Max:    float64(maxV),
		Mean:   mean,
		StdDev: math.Sqrt(variance),
	}
}

func storageSection(fileSize int64, ri RasterInfo) StorageInfo {
	raw := ri.TotalPixels * int64(ri.BytesPerPixel)
	si := StorageInfo{UncompressedMB: float64(raw) / (1024 * 1024)}
	if fileSize > 0 && raw > 0 {
		si.CompressionRatio = float64(raw) / float64(fileSize)
	}
	return si
}
