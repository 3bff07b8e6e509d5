package info

import (
	"strings"
	"testing"
	"time"

	"github.com/rasterlab/geotool/internal/raster"
)

func TestFormatLonLat(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"east", FormatLon(12.3456), "12.3456°E"},
		{"west", FormatLon(-71.06), "71.0600°W"},
		{"north", FormatLat(45.5), "45.5000°N"},
		{"south", FormatLat(-33.9249), "33.9249°S"},
		{"equator", FormatLat(0), "0.0000°N"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestFormatBounds(t *testing.T) {
	b := &Bounds{West: -1.5, East: 2.5, South: 50, North: 51}
	s := FormatBounds(b)
	want := "1.5000°W to 2.5000°E, 50.0000°N to 51.0000°N"
	if s != want {
		t.Errorf("got %q, want %q", s, want)
	}
	if FormatBounds(nil) != "unavailable" {
		t.Errorf("nil bounds: got %q", FormatBounds(nil))
	}
}

func TestFormatCenter(t *testing.T) {
	if s := FormatCenter(&Center{Lon: 0.5, Lat: -10}); s != "0.5000°E, 10.0000°S" {
		t.Errorf("got %q", s)
	}
	if FormatCenter(nil) != "unavailable" {
		t.Errorf("nil center: got %q", FormatCenter(nil))
	}
}

func TestRender(t *testing.T) {
	nodata := 0.0
	r := &Report{
		File: FileInfo{
			Path:     "/data/scene.tif",
			Name:     "scene.tif",
			SizeMB:   12.5,
			Modified: time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC),
		},
		Raster: RasterInfo{
			Width: 1024, Height: 512, Bands: 3,
			TotalPixels: 524288, AspectRatio: 2,
			DataType: "UInt16", Description: "16-bit unsigned integer",
			ValueRange: "0 to 65535", BytesPerBand: 2, BytesPerPixel: 6,
		},
		Geo: GeoInfo{
			Georeferenced: true,
			GeoTransform:  raster.GeoTransform{500000, 30, 0, 4100000, 0, -30},
			PixelWidth:    30, PixelHeight: 30,
			ProjectedCS:  "WGS 84 / UTM zone 33N",
			GeographicCS: "WGS 84",
			Datum:        "WGS_1984",
			Bounds:       &Bounds{West: 14.9, East: 15.2, South: 36.9, North: 37.1},
			Center:       &Center{Lon: 15.05, Lat: 37.0},
			Extent:       &Extent{WidthKm: 26.6, HeightKm: 22.3, AreaKm2: 593.2},
		},
		Bands: []BandInfo{
			{Number: 1, ColorInterp: "Red", NoData: &nodata,
				Stats: &BandStats{Min: 0, Max: 4095, Mean: 812.4, StdDev: 201.7}},
			{Number: 2, ColorInterp: "Green"},
		},
		Storage: StorageInfo{UncompressedMB: 3.0, CompressionRatio: 2.4},
	}

	out := Render(r)
	for _, want := range []string{
		"File: scene.tif",
		"Raster: 1024x512, 3 band(s)",
		"UInt16 (16-bit unsigned integer, 0 to 65535)",
		"Projected CS: WGS 84 / UTM zone 33N",
		"Datum:        WGS_1984",
		"14.9000°E to 15.2000°E",
		"Band 1 (Red): min=0.0 max=4095.0 mean=812.40 stddev=201.70 nodata=0",
		"Band 2 (Green): statistics unavailable",
		"Ratio:        2.40:1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered report missing %q\n%s", want, out)
		}
	}
}

func TestRender_NotGeoreferenced(t *testing.T) {
	r := &Report{
		Raster: RasterInfo{Width: 10, Height: 10, Bands: 1, DataType: "Byte"},
	}
	out := Render(r)
	if !strings.Contains(out, "Georeferencing:\n  none") {
		t.Errorf("expected none marker in:\n%s", out)
	}
}
