package stretch

import (
	"fmt"
	"math"

	"github.com/rasterlab/geotool/internal/raster"
)

// Params controls a truncated histogram stretch.
type Params struct {
	// TruncatedValue is the percentage of the pixel population clipped off
	// each end of the histogram before rescaling. 2.0 means the darkest and
	// brightest 2% of pixels saturate at MinOut and MaxOut respectively.
	TruncatedValue float64 `json:"truncated_value"`

	// MinOut is the output value assigned to the low cutoff and everything
	// below it.
	MinOut int `json:"min_out"`

	// MaxOut is the output value assigned to the high cutoff and everything
	// above it.
	MaxOut int `json:"max_out"`
}

// DefaultParams returns the stretch parameters used when the caller does not
// override them: 1% truncation to the full 8-bit range.
func DefaultParams() Params {
	return Params{TruncatedValue: 1, MinOut: 0, MaxOut: 255}
}

// Validate checks the parameters for internal consistency.
func (p Params) Validate() error {
	if p.TruncatedValue < 0 || p.TruncatedValue >= 50 {
		return fmt.Errorf("truncated value %v out of range [0, 50)", p.TruncatedValue)
	}
	if p.MinOut < 0 || p.MaxOut > 255 || p.MinOut >= p.MaxOut {
		return fmt.Errorf("output range [%d, %d] invalid: need 0 <= min < max <= 255",
			p.MinOut, p.MaxOut)
	}
	return nil
}

// Grid maps a band's samples to 8-bit values in [p.MinOut, p.MaxOut] with a
// truncated histogram stretch. The returned slice has the same length and
// row-major layout as the input grid, which is left unmodified.
//
// The histogram spans the full domain of the grid's storage type (256 bins
// for Byte data, 65536 for UInt16), so cutoffs are exact sample values, not
// interpolated quantiles. Bands whose low and high cutoffs coincide
// (constant or near-constant data) are handled by widening the high cutoff
// one sample value, which maps the whole band to p.MinOut.
func Grid(g *raster.Grid, p Params) ([]uint8, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	switch g.DType {
	case raster.Byte:
		return stretchSamples(g.Bytes, g.DType.Domain(), p), nil
	case raster.UInt16:
		return stretchSamples(g.Words, g.DType.Domain(), p), nil
	default:
		return nil, &raster.UnsupportedTypeError{TypeName: g.DType.String()}
	}
}

// Cutoffs returns the low and high sample values a stretch of g with p would
// rescale between. Exposed for reporting; Grid computes the same values.
func Cutoffs(g *raster.Grid, p Params) (low, high int, err error) {
	if err := p.Validate(); err != nil {
		return 0, 0, err
	}
	switch g.DType {
	case raster.Byte:
		low, high = cutoffs(histogram(g.Bytes, g.DType.Domain()), len(g.Bytes), p.TruncatedValue)
	case raster.UInt16:
		low, high = cutoffs(histogram(g.Words, g.DType.Domain()), len(g.Words), p.TruncatedValue)
	default:
		return 0, 0, &raster.UnsupportedTypeError{TypeName: g.DType.String()}
	}
	return low, high, nil
}

func histogram[T uint8 | uint16](pix []T, domain int) []int {
	hist := make([]int, domain)
	for _, v := range pix {
		hist[v]++
	}
	return hist
}

// cutoffs scans the cumulative histogram from both ends, stopping at the
// first sample value whose cumulative count exceeds the truncation share of
// the pixel population.
func cutoffs(hist []int, total int, truncated float64) (low, high int) {
	threshold := float64(total) * truncated / 100

	cum := 0
	for v := 0; v < len(hist); v++ {
		cum += hist[v]
		if float64(cum) > threshold {
			low = v
			break
		}
	}

	cum = 0
	for v := len(hist) - 1; v >= 0; v-- {
		cum += hist[v]
		if float64(cum) > threshold {
			high = v
			break
		}
	}

	if high == low {
		// Constant-ish band: widen one sample value so the rescale below
		// never divides by zero.
		high = low + 1
	}
	return low, high
}

func stretchSamples[T uint8 | uint16](pix []T, domain int, p Params) []uint8 {
	low, high := cutoffs(histogram(pix, domain), len(pix), p.TruncatedValue)

	scale := float64(p.MaxOut-p.MinOut) / float64(high-low)
	out := make([]uint8, len(pix))
	for i, v := range pix {
		o := p.MinOut + int(math.Round(float64(int(v)-low)*scale))
		if o < p.MinOut {
			o = p.MinOut
		} else if o > p.MaxOut {
			o = p.MaxOut
		}
		out[i] = uint8(o)
	}
	return out
}
