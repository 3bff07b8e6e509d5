package info

import (
	"fmt"
	"math"
	"strings"
)

// FormatLon renders a longitude as degrees with an E/W hemisphere suffix.
func FormatLon(lon float64) string {
	suffix := "E"
	if lon < 0 {
		suffix = "W"
	}
	return fmt.Sprintf("%.4f°%s", math.Abs(lon), suffix)
}

// FormatLat renders a latitude as degrees with an N/S hemisphere suffix.
func FormatLat(lat float64) string {
	suffix := "N"
	if lat < 0 {
		suffix = "S"
	}
	return fmt.Sprintf("%.4f°%s", math.Abs(lat), suffix)
}

// FormatBounds renders a bounding box as "W-E, S-N" with hemisphere suffixes.
func FormatBounds(b *Bounds) string {
	if b == nil {
		return "unavailable"
	}
	return fmt.Sprintf("%s to %s, %s to %s",
		FormatLon(b.West), FormatLon(b.East), FormatLat(b.South), FormatLat(b.North))
}

// FormatCenter renders a center point as "lon, lat" with hemisphere suffixes.
func FormatCenter(c *Center) string {
	if c == nil {
		return "unavailable"
	}
	return fmt.Sprintf("%s, %s", FormatLon(c.Lon), FormatLat(c.Lat))
}

// Render produces the plain-text report printed by the info command.
func Render(r *Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "File: %s\n", r.File.Name)
	fmt.Fprintf(&b, "  Path:     %s\n", r.File.Path)
	fmt.Fprintf(&b, "  Size:     %.2f MB\n", r.File.SizeMB)
	fmt.Fprintf(&b, "  Modified: %s\n", r.File.Modified.Format("2006-01-02 15:04:05"))

	fmt.Fprintf(&b, "\nRaster: %dx%d, %d band(s)\n", r.Raster.Width, r.Raster.Height, r.Raster.Bands)
	fmt.Fprintf(&b, "  Pixels:       %d (aspect %.3f)\n", r.Raster.TotalPixels, r.Raster.AspectRatio)
	fmt.Fprintf(&b, "  Data type:    %s", r.Raster.DataType)
	if r.Raster.Description != "" {
		fmt.Fprintf(&b, " (%s, %s)", r.Raster.Description, r.Raster.ValueRange)
	}
	b.WriteString("\n")
	if r.Raster.BytesPerPixel > 0 {
		fmt.Fprintf(&b, "  Pixel bytes:  %d\n", r.Raster.BytesPerPixel)
	}

	g := &r.Geo
	b.WriteString("\nGeoreferencing:\n")
	if !g.Georeferenced {
		b.WriteString("  none\n")
	} else {
		fmt.Fprintf(&b, "  Origin:       %.6f, %.6f\n", g.GeoTransform.OriginX(), g.GeoTransform.OriginY())
		fmt.Fprintf(&b, "  Pixel size:   %.6f x %.6f\n", g.PixelWidth, g.PixelHeight)
		if g.ProjectedCS != "" {
			fmt.Fprintf(&b, "  Projected CS: %s\n", g.ProjectedCS)
		}
		if g.GeographicCS != "" {
			fmt.Fprintf(&b, "  Geographic CS: %s\n", g.GeographicCS)
		}
		if g.Datum != "" {
			fmt.Fprintf(&b, "  Datum:        %s\n", g.Datum)
		}
		fmt.Fprintf(&b, "  Bounds:       %s\n", FormatBounds(g.Bounds))
		fmt.Fprintf(&b, "  Center:       %s\n", FormatCenter(g.Center))
		if g.Extent != nil {
			fmt.Fprintf(&b, "  Extent:       %.2f x %.2f km (%.2f km2)\n",
				g.Extent.WidthKm, g.Extent.HeightKm, g.Extent.AreaKm2)
		}
	}

	b.WriteString("\nBands:\n")
	for _, bd := range r.Bands {
		fmt.Fprintf(&b, "  Band %d", bd.Number)
		if bd.ColorInterp != "" {
			fmt.Fprintf(&b, " (%s)", bd.ColorInterp)
		}
		b.WriteString(":")
		if bd.Stats != nil {
			fmt.Fprintf(&b, " min=%.1f max=%.1f mean=%.2f stddev=%.2f",
				bd.Stats.Min, bd.Stats.Max, bd.Stats.Mean, bd.Stats.StdDev)
		} else {
			b.WriteString(" statistics unavailable")
		}
		if bd.NoData != nil {
			fmt.Fprintf(&b, " nodata=%g", *bd.NoData)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nStorage:\n")
	fmt.Fprintf(&b, "  Uncompressed: %.2f MB\n", r.Storage.UncompressedMB)
	if r.Storage.CompressionRatio > 0 {
		fmt.Fprintf(&b, "  Ratio:        %.2f:1\n", r.Storage.CompressionRatio)
	}
	return b.String()
}
