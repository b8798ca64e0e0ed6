// Package render projects a catalogue's stops onto a bounded canvas and
// composes a layered picture of route polylines, route labels, stop disks
// and stop labels, serializable to SVG.
package render

import (
	"fmt"
	"strings"

	"github.com/antigravity/transport-catalogue/internal/catalogue"
)

// Settings is render_settings, flattened for the projector and drawables.
type Settings struct {
	Width, Height, Padding float64
	LineWidth, StopRadius  float64
	BusLabelFontSize       int
	BusLabelOffset         Point
	StopLabelFontSize      int
	StopLabelOffset        Point
	UnderlayerColor        Color
	UnderlayerWidth        float64
	ColorPalette           []Color
}

// DrawableKind tags which variant of Drawable is populated.
type DrawableKind int

const (
	KindPolyline DrawableKind = iota
	KindRouteLabel
	KindStopDisk
	KindStopLabel
)

// Drawable is a tagged variant over the four primitive kinds the picture is
// built from, which removes virtual dispatch from the hot render path.
type Drawable struct {
	Kind       DrawableKind
	Polyline   *PolylineDrawable
	RouteLabel *RouteLabelDrawable
	StopDisk   *StopDiskDrawable
	StopLabel  *StopLabelDrawable
}

// PolylineDrawable is one bus's route line.
type PolylineDrawable struct {
	Points []Point
	Color  Color
	Width  float64
}

// RouteLabelDrawable is one underlayer+fill text pair at a bus endpoint.
type RouteLabelDrawable struct {
	Name            string
	Pos             Point
	FontSize        int
	Offset          Point
	UnderlayerColor Color
	UnderlayerWidth float64
	FillColor       Color
}

// StopDiskDrawable is one white disk marking a stop.
type StopDiskDrawable struct {
	Center Point
	Radius float64
}

// StopLabelDrawable is one underlayer+black text pair at a stop.
type StopLabelDrawable struct {
	Name            string
	Pos             Point
	FontSize        int
	Offset          Point
	UnderlayerColor Color
	UnderlayerWidth float64
}

// BuildPicture produces the ordered drawable list for cat under settings,
// in fixed layer order: polylines, then route labels, then stop disks, then
// stop labels, each layer in lexicographic name order.
func BuildPicture(cat *catalogue.Catalogue, settings Settings) []Drawable {
	usedStops := stopsWithAnyBus(cat)
	if len(usedStops) == 0 {
		return nil
	}

	proj := projectorOver(cat, usedStops, settings)

	var pic []Drawable

	buses := busesWithStops(cat)
	for ord, busIdx := range buses {
		pic = append(pic, Drawable{Kind: KindPolyline, Polyline: buildPolyline(cat, busIdx, proj, settings, ord)})
	}
	for ord, busIdx := range buses {
		pic = append(pic, buildRouteLabels(cat, busIdx, proj, settings, ord)...)
	}
	for _, stopIdx := range usedStops {
		pt := proj.Project(cat.Stop(stopIdx).Coord)
		pic = append(pic, Drawable{Kind: KindStopDisk, StopDisk: &StopDiskDrawable{Center: pt, Radius: settings.StopRadius}})
	}
	for _, stopIdx := range usedStops {
		stop := cat.Stop(stopIdx)
		pic = append(pic, Drawable{Kind: KindStopLabel, StopLabel: &StopLabelDrawable{
			Name:            stop.Name,
			Pos:             proj.Project(stop.Coord),
			FontSize:        settings.StopLabelFontSize,
			Offset:          settings.StopLabelOffset,
			UnderlayerColor: settings.UnderlayerColor,
			UnderlayerWidth: settings.UnderlayerWidth,
		}})
	}

	return pic
}

// stopsWithAnyBus returns, in lexicographic order, the stops that belong to
// at least one bus. Only these appear on the map.
func stopsWithAnyBus(cat *catalogue.Catalogue) []int {
	var result []int
	for _, stopIdx := range cat.StopsLexicographic() {
		if len(cat.Stop(stopIdx).BusMemberships) > 0 {
			result = append(result, stopIdx)
		}
	}
	return result
}

// busesWithStops returns bus indices in lexicographic name order, excluding
// degenerate (empty-stops) buses, which contribute nothing to draw.
func busesWithStops(cat *catalogue.Catalogue) []int {
	var result []int
	for _, busIdx := range cat.BusesLexicographic() {
		if len(cat.Bus(busIdx).Stops) > 0 {
			result = append(result, busIdx)
		}
	}
	return result
}

func projectorOver(cat *catalogue.Catalogue, stops []int, settings Settings) Projector {
	first := cat.Stop(stops[0]).Coord
	minLon, maxLon := first.Lng, first.Lng
	minLat, maxLat := first.Lat, first.Lat
	for _, idx := range stops[1:] {
		c := cat.Stop(idx).Coord
		if c.Lng < minLon {
			minLon = c.Lng
		}
		if c.Lng > maxLon {
			maxLon = c.Lng
		}
		if c.Lat < minLat {
			minLat = c.Lat
		}
		if c.Lat > maxLat {
			maxLat = c.Lat
		}
	}
	return NewProjector(settings.Width, settings.Height, settings.Padding, minLon, maxLon, minLat, maxLat)
}

func paletteColor(settings Settings, ordinal int) Color {
	return settings.ColorPalette[ordinal%len(settings.ColorPalette)]
}

// buildPolyline traces a bus's route: forward for a ring, there-and-back
// (forward plus reversed head) for a linear route.
func buildPolyline(cat *catalogue.Catalogue, busIdx int, proj Projector, settings Settings, ordinal int) *PolylineDrawable {
	bus := cat.Bus(busIdx)

	seq := bus.Stops
	if !bus.Ring && len(seq) > 1 {
		seq = append(append([]int{}, seq...), reverseHead(seq)...)
	}

	points := make([]Point, len(seq))
	for i, stopIdx := range seq {
		points[i] = proj.Project(cat.Stop(stopIdx).Coord)
	}

	return &PolylineDrawable{Points: points, Color: paletteColor(settings, ordinal), Width: settings.LineWidth}
}

// reverseHead returns all but the last element of seq, reversed.
func reverseHead(seq []int) []int {
	if len(seq) <= 1 {
		return nil
	}
	head := seq[:len(seq)-1]
	out := make([]int, len(head))
	for i, v := range head {
		out[len(head)-1-i] = v
	}
	return out
}

// buildRouteLabels emits one underlayer+fill pair at the bus's first
// endpoint, and a second pair at its last endpoint if the route is linear
// and the endpoints differ.
func buildRouteLabels(cat *catalogue.Catalogue, busIdx int, proj Projector, settings Settings, ordinal int) []Drawable {
	bus := cat.Bus(busIdx)
	if len(bus.Stops) == 0 {
		return nil
	}

	color := paletteColor(settings, ordinal)

	label := func(stopIdx int) Drawable {
		stop := cat.Stop(stopIdx)
		return Drawable{Kind: KindRouteLabel, RouteLabel: &RouteLabelDrawable{
			Name:            bus.Name,
			Pos:             proj.Project(stop.Coord),
			FontSize:        settings.BusLabelFontSize,
			Offset:          settings.BusLabelOffset,
			UnderlayerColor: settings.UnderlayerColor,
			UnderlayerWidth: settings.UnderlayerWidth,
			FillColor:       color,
		}}
	}

	first, last := bus.Stops[0], bus.Stops[len(bus.Stops)-1]
	if bus.Ring || first == last {
		return []Drawable{label(first)}
	}
	return []Drawable{label(first), label(last)}
}

// RenderSVG serializes drawables, in order, as an SVG document.
func RenderSVG(drawables []Drawable, width, height float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<?xml version="1.0" encoding="UTF-8" ?>`+"\n")
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %g %g" width="%g" height="%g">`+"\n", width, height, width, height)
	for _, d := range drawables {
		d.writeSVG(&b)
	}
	b.WriteString("</svg>")
	return b.String()
}

func (d Drawable) writeSVG(b *strings.Builder) {
	switch d.Kind {
	case KindPolyline:
		writePolyline(b, d.Polyline)
	case KindRouteLabel:
		writeLabelPair(b, d.RouteLabel.Name, d.RouteLabel.Pos, d.RouteLabel.FontSize, d.RouteLabel.Offset,
			d.RouteLabel.UnderlayerColor, d.RouteLabel.UnderlayerWidth, d.RouteLabel.FillColor, true)
	case KindStopDisk:
		writeStopDisk(b, d.StopDisk)
	case KindStopLabel:
		writeLabelPair(b, d.StopLabel.Name, d.StopLabel.Pos, d.StopLabel.FontSize, d.StopLabel.Offset,
			d.StopLabel.UnderlayerColor, d.StopLabel.UnderlayerWidth, Color{Kind: ColorName, Name: "black"}, false)
	}
}

func writePolyline(b *strings.Builder, p *PolylineDrawable) {
	b.WriteString(`<polyline points="`)
	for i, pt := range p.Points {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(b, "%g,%g", pt.X, pt.Y)
	}
	fmt.Fprintf(b, `" fill="none" stroke="%s" stroke-width="%g" stroke-linecap="round" stroke-linejoin="round"/>`+"\n",
		p.Color.SVG(), p.Width)
}

func writeStopDisk(b *strings.Builder, c *StopDiskDrawable) {
	fmt.Fprintf(b, `<circle cx="%g" cy="%g" r="%g" fill="white"/>`+"\n", c.Center.X, c.Center.Y, c.Radius)
}

// writeLabelPair writes the underlayer+fill text pair shared by route and
// stop labels. bold is true for bus labels, false for stop labels.
func writeLabelPair(b *strings.Builder, name string, pos Point, fontSize int, offset Point,
	underlayer Color, underlayerWidth float64, fill Color, bold bool) {
	weight := ""
	if bold {
		weight = ` font-weight="bold"`
	}
	fmt.Fprintf(b,
		`<text x="%g" y="%g" dx="%g" dy="%g" font-size="%d" font-family="Verdana"%s fill="%s" stroke="%s" stroke-width="%g" stroke-linecap="round" stroke-linejoin="round">%s</text>`+"\n",
		pos.X, pos.Y, offset.X, offset.Y, fontSize, weight, underlayer.SVG(), underlayer.SVG(), underlayerWidth, escapeText(name))
	fmt.Fprintf(b,
		`<text x="%g" y="%g" dx="%g" dy="%g" font-size="%d" font-family="Verdana"%s fill="%s">%s</text>`+"\n",
		pos.X, pos.Y, offset.X, offset.Y, fontSize, weight, fill.SVG(), escapeText(name))
}

func escapeText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
