package convert

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"

	"github.com/rasterlab/geotool/internal/raster"
	"github.com/rasterlab/geotool/internal/stretch"
)

// Options controls a TIFF to PNG conversion.
type Options struct {
	// Stretch is applied independently to every band.
	Stretch stretch.Params

	// Downsample shrinks the output by this integer factor; 1 (or 0)
	// keeps the original resolution.
	Downsample int

	// BlurSigma applies a Gaussian blur of this sigma before downsampling
	// to suppress aliasing; 0 disables it.
	BlurSigma float64

	// Colormap renders a single-band source through a named pseudocolor
	// ramp instead of grayscale. Empty keeps the native rendering.
	Colormap string
}

// DefaultOptions returns the conversion settings used when the caller does
// not override them.
func DefaultOptions() Options {
	return Options{Stretch: stretch.DefaultParams(), Downsample: 1}
}

// Result describes a completed conversion.
type Result struct {
	OutputPath     string  `json:"output_path"`
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	SourceBands    int     `json:"source_bands"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
}

// TIFFToPNG converts the raster at inputPath into a PNG at outputPath.
//
// Every band is stretched with opts.Stretch, then composed preserving band
// order: one band renders as grayscale (or through opts.Colormap), three or
// more bands render as RGB using the first three as ordered color channels.
// Two-band sources fall back to the first band.
//
// On any failure after the output file has been created, the partial file
// is removed before the error is returned.
func TIFFToPNG(inputPath, outputPath string, opts Options) (*Result, error) {
	start := time.Now()

	src, err := raster.Open(inputPath)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	bands := src.BandCount()
	if bands == 0 {
		return nil, fmt.Errorf("%s has no raster bands", inputPath)
	}
	stretched := make([][]uint8, 0, bands)
	for b := 1; b <= bands; b++ {
		grid, err := src.ReadBand(b)
		if err != nil {
			return nil, err
		}
		pix, err := stretch.Grid(grid, opts.Stretch)
		if err != nil {
			return nil, err
		}
		stretched = append(stretched, pix)
	}

	img, err := Compose(src.Width(), src.Height(), stretched, opts.Colormap)
	if err != nil {
		return nil, err
	}
	if opts.BlurSigma > 0 {
		img = blur.Gaussian(img, opts.BlurSigma)
	}
	if opts.Downsample > 1 {
		w := src.Width() / opts.Downsample
		h := src.Height() / opts.Downsample
		if w < 1 || h < 1 {
			return nil, fmt.Errorf("downsample factor %d leaves no pixels of %dx%d",
				opts.Downsample, src.Width(), src.Height())
		}
		img = imaging.Resize(img, w, h, imaging.Lanczos)
	}

	if err := writePNG(outputPath, img); err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	return &Result{
		OutputPath:     outputPath,
		Width:          bounds.Dx(),
		Height:         bounds.Dy(),
		SourceBands:    bands,
		ElapsedSeconds: time.Since(start).Seconds(),
	}, nil
}

// Compose assembles stretched band planes of shape width x height into an
// image. Band order is channel order: for three or more planes the first
// three become R, G and B. A non-empty colormap is only valid for a single
// plane.
func Compose(width, height int, planes [][]uint8, colormap string) (image.Image, error) {
	if len(planes) == 0 {
		return nil, fmt.Errorf("no band planes to compose")
	}
	for i, p := range planes {
		if len(p) != width*height {
			return nil, fmt.Errorf("plane %d has %d samples, want %d", i, len(p), width*height)
		}
	}
	if colormap != "" {
		if len(planes) > 1 {
			return nil, fmt.Errorf("colormap %q applies to single-band rasters, source has %d bands",
				colormap, len(planes))
		}
		ramp, err := RampByName(colormap)
		if err != nil {
			return nil, err
		}
		return composeRamp(width, height, planes[0], ramp), nil
	}
	if len(planes) >= 3 {
		return composeRGB(width, height, planes[0], planes[1], planes[2]), nil
	}
	return composeGray(width, height, planes[0]), nil
}

func composeGray(width, height int, pix []uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	copy(img.Pix, pix)
	return img
}

func composeRGB(width, height int, r, g, b []uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < width*height; i++ {
		j := i * 4
		img.Pix[j+0] = r[i]
		img.Pix[j+1] = g[i]
		img.Pix[j+2] = b[i]
		img.Pix[j+3] = 255
	}
	return img
}

func composeRamp(width, height int, pix []uint8, ramp *Ramp) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i, v := range pix {
		c := ramp.At(v)
		j := i * 4
		img.Pix[j+0] = c.R
		img.Pix[j+1] = c.G
		img.Pix[j+2] = c.B
		img.Pix[j+3] = c.A
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
