package clip

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/airbusgeo/godal"

	"github.com/rasterlab/geotool/internal/raster"
)

func TestMain(m *testing.M) {
	godal.RegisterAll()
	os.Exit(m.Run())
}

const testWKT = `GEOGCS["WGS 84",DATUM["WGS_1984",SPHEROID["WGS 84",6378137,298.257223563]],PRIMEM["Greenwich",0],UNIT["degree",0.0174532925199433]]`

// createTestTIFF writes a UInt16 GTiff whose band b sample at (x, y) is
// x + y*width + b*10000, so any pixel can be traced back to its source
// location and band.
func createTestTIFF(t *testing.T, path string, width, height, bands int, gt raster.GeoTransform, wkt string) {
	t.Helper()

	ds, err := raster.Create(path, width, height, bands, raster.UInt16)
	if err != nil {
		t.Fatalf("failed to create test tiff: %v", err)
	}
	for b := 1; b <= bands; b++ {
		grid, err := raster.NewGrid(width, height, raster.UInt16)
		if err != nil {
			t.Fatalf("failed to allocate grid: %v", err)
		}
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				grid.Words[y*width+x] = uint16(x + y*width + b*10000)
			}
		}
		if err := ds.WriteBand(b, grid); err != nil {
			t.Fatalf("failed to write band %d: %v", b, err)
		}
	}
	if err := ds.SetGeoTransform(gt); err != nil {
		t.Fatalf("failed to set geotransform: %v", err)
	}
	if wkt != "" {
		if err := ds.SetProjection(wkt); err != nil {
			t.Fatalf("failed to set projection: %v", err)
		}
	}
	if err := ds.Close(); err != nil {
		t.Fatalf("failed to close test tiff: %v", err)
	}
}

func TestFile_Geometry(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.tif")
	out := filepath.Join(dir, "out.tif")
	gt := raster.GeoTransform{500000, 30, 0, 4100000, 0, -30}
	createTestTIFF(t, src, 128, 64, 1, gt, "")

	res, err := File(src, out, raster.Window{XOff: 100, YOff: 50, XSize: 10, YSize: 10})
	if err != nil {
		t.Fatalf("clip failed: %v", err)
	}

	if res.Width != 10 || res.Height != 10 {
		t.Errorf("dimensions: got %dx%d, want 10x10", res.Width, res.Height)
	}
	wantOX := 500000 + 100*30.0
	wantOY := 4100000 + 50*(-30.0)
	if res.GeoTransform.OriginX() != wantOX || res.GeoTransform.OriginY() != wantOY {
		t.Errorf("origin: got (%v, %v), want (%v, %v)",
			res.GeoTransform.OriginX(), res.GeoTransform.OriginY(), wantOX, wantOY)
	}
	if res.GeoTransform.PixelWidth() != 30 || res.GeoTransform.PixelHeight() != -30 {
		t.Errorf("pixel size changed: got (%v, %v), want (30, -30)",
			res.GeoTransform.PixelWidth(), res.GeoTransform.PixelHeight())
	}
}

func TestFile_PixelValues(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.tif")
	out := filepath.Join(dir, "out.tif")
	createTestTIFF(t, src, 64, 32, 2, raster.Identity, "")

	win := raster.Window{XOff: 5, YOff: 7, XSize: 8, YSize: 4}
	if _, err := File(src, out, win); err != nil {
		t.Fatalf("clip failed: %v", err)
	}

	ds, err := raster.Open(out)
	if err != nil {
		t.Fatalf("failed to open clipped output: %v", err)
	}
	defer ds.Close()

	if ds.BandCount() != 2 {
		t.Fatalf("band count: got %d, want 2", ds.BandCount())
	}
	for b := 1; b <= 2; b++ {
		grid, err := ds.ReadBand(b)
		if err != nil {
			t.Fatalf("failed to read band %d: %v", b, err)
		}
		for y := 0; y < win.YSize; y++ {
			for x := 0; x < win.XSize; x++ {
				want := uint16((win.XOff + x) + (win.YOff+y)*64 + b*10000)
				got := grid.Words[y*win.XSize+x]
				if got != want {
					t.Fatalf("band %d pixel (%d,%d): got %d, want %d", b, x, y, got, want)
				}
			}
		}
	}
}

func TestFile_RotatedGeoTransform(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.tif")
	out := filepath.Join(dir, "out.tif")
	gt := raster.GeoTransform{1000, 10, 1.5, 2000, -0.5, -10}
	createTestTIFF(t, src, 40, 40, 1, gt, "")

	res, err := File(src, out, raster.Window{XOff: 20, YOff: 8, XSize: 10, YSize: 10})
	if err != nil {
		t.Fatalf("clip failed: %v", err)
	}

	wantOX := 1000 + 20*10.0 + 8*1.5
	wantOY := 2000 + 20*(-0.5) + 8*(-10.0)
	if res.GeoTransform.OriginX() != wantOX || res.GeoTransform.OriginY() != wantOY {
		t.Errorf("rotated origin: got (%v, %v), want (%v, %v)",
			res.GeoTransform.OriginX(), res.GeoTransform.OriginY(), wantOX, wantOY)
	}
	for _, i := range []int{1, 2, 4, 5} {
		if res.GeoTransform[i] != gt[i] {
			t.Errorf("term [%d]: got %v, want %v", i, res.GeoTransform[i], gt[i])
		}
	}
}

func TestFile_BoundsRejection(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.tif")
	createTestTIFF(t, src, 64, 32, 1, raster.Identity, "")

	tests := []struct {
		name string
		win  raster.Window
	}{
		{"past right edge", raster.Window{XOff: 60, YOff: 0, XSize: 10, YSize: 10}},
		{"past bottom edge", raster.Window{XOff: 0, YOff: 30, XSize: 10, YSize: 10}},
		{"negative offset", raster.Window{XOff: -1, YOff: 0, XSize: 10, YSize: 10}},
		{"zero size", raster.Window{XOff: 0, YOff: 0, XSize: 0, YSize: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(dir, "rejected-"+strings.ReplaceAll(tt.name, " ", "-")+".tif")
			_, err := File(src, out, tt.win)
			if err == nil {
				t.Fatal("clip should fail for out-of-bounds window")
			}
			var be *raster.BoundsError
			if !errors.As(err, &be) {
				t.Errorf("error type: got %T (%v), want *BoundsError", err, err)
			}
			if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
				t.Errorf("rejected clip left an output file at %s", out)
			}
		})
	}
}

func TestFile_FullExtentRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.tif")
	out := filepath.Join(dir, "out.tif")
	gt := raster.GeoTransform{500000, 30, 0, 4100000, 0, -30}
	createTestTIFF(t, src, 48, 24, 1, gt, testWKT)

	if _, err := File(src, out, raster.Window{XOff: 0, YOff: 0, XSize: 48, YSize: 24}); err != nil {
		t.Fatalf("full-extent clip failed: %v", err)
	}

	srcDS, err := raster.Open(src)
	if err != nil {
		t.Fatalf("failed to reopen source: %v", err)
	}
	defer srcDS.Close()
	outDS, err := raster.Open(out)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	defer outDS.Close()

	outGT, err := outDS.GeoTransform()
	if err != nil {
		t.Fatalf("failed to read output geotransform: %v", err)
	}
	if outGT != gt {
		t.Errorf("geotransform: got %v, want %v", outGT, gt)
	}
	if !strings.Contains(outDS.Projection(), "WGS") {
		t.Errorf("projection not carried over: %q", outDS.Projection())
	}

	srcGrid, err := srcDS.ReadBand(1)
	if err != nil {
		t.Fatalf("failed to read source band: %v", err)
	}
	outGrid, err := outDS.ReadBand(1)
	if err != nil {
		t.Fatalf("failed to read output band: %v", err)
	}
	for i := range srcGrid.Words {
		if srcGrid.Words[i] != outGrid.Words[i] {
			t.Fatalf("sample %d: got %d, want %d", i, outGrid.Words[i], srcGrid.Words[i])
		}
	}
}

func TestFile_MissingInput(t *testing.T) {
	dir := t.TempDir()
	_, err := File(filepath.Join(dir, "nope.tif"), filepath.Join(dir, "out.tif"),
		raster.Window{XOff: 0, YOff: 0, XSize: 1, YSize: 1})
	if err == nil {
		t.Fatal("clip of a missing input should fail")
	}
}
