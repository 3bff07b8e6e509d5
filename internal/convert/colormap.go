package convert

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Ramp maps stretched 8-bit sample values to colors via a 256-entry palette.
type Ramp struct {
	name    string
	palette [256]color.NRGBA
}

// Name returns the ramp's registered name.
func (r *Ramp) Name() string { return r.name }

// At returns the palette color for a stretched sample value.
func (r *Ramp) At(v uint8) color.NRGBA { return r.palette[v] }

type rampStop struct {
	pos float64
	col colorful.Color
}

// Ramp definitions as gradient stops, interpolated in Lab space so the
// perceived brightness progresses evenly.
var rampStops = map[string][]rampStop{
	"gray": {
		{0, colorful.Color{R: 0, G: 0, B: 0}},
		{1, colorful.Color{R: 1, G: 1, B: 1}},
	},
	"heat": {
		{0, colorful.Color{R: 0, G: 0, B: 0}},
		{0.4, colorful.Color{R: 0.9, G: 0.1, B: 0}},
		{0.75, colorful.Color{R: 1, G: 0.85, B: 0}},
		{1, colorful.Color{R: 1, G: 1, B: 1}},
	},
	"spectral": {
		{0, colorful.Color{R: 0.2, G: 0.2, B: 0.8}},
		{0.35, colorful.Color{R: 0.1, G: 0.75, B: 0.85}},
		{0.65, colorful.Color{R: 0.95, G: 0.9, B: 0.25}},
		{1, colorful.Color{R: 0.85, G: 0.15, B: 0.1}},
	},
}

// RampNames returns the registered ramp names, sorted.
func RampNames() []string {
	names := make([]string, 0, len(rampStops))
	for name := range rampStops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RampByName builds the 256-entry palette for a registered ramp name.
func RampByName(name string) (*Ramp, error) {
	stops, ok := rampStops[name]
	if !ok {
		return nil, fmt.Errorf("unknown colormap %q (available: %s)",
			name, strings.Join(RampNames(), ", "))
	}
	r := &Ramp{name: name}
	for i := 0; i < 256; i++ {
		c := gradientAt(stops, float64(i)/255)
		cr, cg, cb := c.Clamped().RGB255()
		r.palette[i] = color.NRGBA{R: cr, G: cg, B: cb, A: 255}
	}
	return r, nil
}

func gradientAt(stops []rampStop, t float64) colorful.Color {
	for i := 0; i < len(stops)-1; i++ {
		a, b := stops[i], stops[i+1]
		if t >= a.pos && t <= b.pos {
			span := b.pos - a.pos
			return a.col.BlendLab(b.col, (t-a.pos)/span)
		}
	}
	return stops[len(stops)-1].col
}
