package convert

import (
	"strings"
	"testing"
)

func TestRampByName_Gray(t *testing.T) {
	ramp, err := RampByName("gray")
	if err != nil {
		t.Fatalf("RampByName failed: %v", err)
	}

	black := ramp.At(0)
	if black.R != 0 || black.G != 0 || black.B != 0 {
		t.Errorf("gray ramp at 0: got %+v, want black", black)
	}
	white := ramp.At(255)
	if white.R != 255 || white.G != 255 || white.B != 255 {
		t.Errorf("gray ramp at 255: got %+v, want white", white)
	}
	mid := ramp.At(128)
	if mid.R != mid.G || mid.G != mid.B {
		t.Errorf("gray ramp at 128 not neutral: %+v", mid)
	}
}

func TestRampByName_AllRegistered(t *testing.T) {
	for _, name := range RampNames() {
		t.Run(name, func(t *testing.T) {
			ramp, err := RampByName(name)
			if err != nil {
				t.Fatalf("RampByName(%q) failed: %v", name, err)
			}
			for v := 0; v < 256; v++ {
				if ramp.At(uint8(v)).A != 255 {
					t.Fatalf("%s palette entry %d not opaque", name, v)
				}
			}
		})
	}
}

func TestRampByName_Unknown(t *testing.T) {
	_, err := RampByName("plasma")
	if err == nil {
		t.Fatal("RampByName should fail for unregistered name")
	}
	if !strings.Contains(err.Error(), "plasma") {
		t.Errorf("error should name the unknown ramp: %v", err)
	}
}

func TestHeatRamp_BrightnessIncreases(t *testing.T) {
	ramp, err := RampByName("heat")
	if err != nil {
		t.Fatalf("RampByName failed: %v", err)
	}
	// Sampled luma must grow from the dark end to the bright end.
	luma := func(v uint8) float64 {
		c := ramp.At(v)
		return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	}
	if luma(0) >= luma(96) || luma(96) >= luma(192) || luma(192) >= luma(255) {
		t.Errorf("heat ramp brightness not increasing: %v %v %v %v",
			luma(0), luma(96), luma(192), luma(255))
	}
}
