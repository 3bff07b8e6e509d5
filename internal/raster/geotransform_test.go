package raster

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestGeoTransform_Apply(t *testing.T) {
	tests := []struct {
		name   string
		gt     GeoTransform
		px, py float64
		wantX  float64
		wantY  float64
	}{
		{"identity origin", Identity, 0, 0, 0, 0},
		{"identity offset", Identity, 10, 20, 10, 20},
		{"north-up", GeoTransform{500000, 30, 0, 4100000, 0, -30}, 100, 50, 503000, 4098500},
		{"rotated", GeoTransform{1000, 2, 0.5, 2000, -0.25, -2}, 10, 4, 1022, 1989.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotX, gotY := tt.gt.Apply(tt.px, tt.py)
			if !almostEqual(gotX, tt.wantX) || !almostEqual(gotY, tt.wantY) {
				t.Errorf("Apply(%v, %v) = (%v, %v), want (%v, %v)",
					tt.px, tt.py, gotX, gotY, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestGeoTransform_TranslatePixel_AxisAligned(t *testing.T) {
	gt := GeoTransform{500000, 30, 0, 4100000, 0, -30}

	got := gt.TranslatePixel(100, 50)

	wantOX := 500000 + 100*30.0
	wantOY := 4100000 + 50*(-30.0)
	if !almostEqual(got.OriginX(), wantOX) {
		t.Errorf("origin X: got %v, want %v", got.OriginX(), wantOX)
	}
	if !almostEqual(got.OriginY(), wantOY) {
		t.Errorf("origin Y: got %v, want %v", got.OriginY(), wantOY)
	}
	// Scale terms must carry over unchanged.
	for _, i := range []int{1, 2, 4, 5} {
		if got[i] != gt[i] {
			t.Errorf("term [%d]: got %v, want %v", i, got[i], gt[i])
		}
	}
}

func TestGeoTransform_TranslatePixel_Rotated(t *testing.T) {
	// Both rotation terms non-zero: the offset must include them.
	gt := GeoTransform{1000, 10, 1.5, 2000, -0.5, -10}

	got := gt.TranslatePixel(20, 8)

	wantOX := 1000 + 20*10.0 + 8*1.5
	wantOY := 2000 + 20*(-0.5) + 8*(-10.0)
	if !almostEqual(got.OriginX(), wantOX) {
		t.Errorf("origin X: got %v, want %v", got.OriginX(), wantOX)
	}
	if !almostEqual(got.OriginY(), wantOY) {
		t.Errorf("origin Y: got %v, want %v", got.OriginY(), wantOY)
	}
}

func TestGeoTransform_TranslatePixel_Zero(t *testing.T) {
	gt := GeoTransform{500000, 30, 0, 4100000, 0, -30}
	if got := gt.TranslatePixel(0, 0); got != gt {
		t.Errorf("zero translation changed transform: got %v, want %v", got, gt)
	}
}
