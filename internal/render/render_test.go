package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antigravity/transport-catalogue/internal/catalogue"
	"github.com/antigravity/transport-catalogue/internal/geo"
)

func testSettings() Settings {
	return Settings{
		Width: 600, Height: 400, Padding: 10,
		LineWidth: 14, StopRadius: 5,
		BusLabelFontSize: 20, BusLabelOffset: Point{X: 7, Y: 15},
		StopLabelFontSize: 18, StopLabelOffset: Point{X: 7, Y: -3},
		UnderlayerColor: Color{Kind: ColorRGBA, R: 255, G: 255, B: 255, A: 0.85},
		UnderlayerWidth: 3,
		ColorPalette: []Color{
			{Kind: ColorName, Name: "green"},
			{Kind: ColorRGB, R: 255, G: 160, B: 0},
			{Kind: ColorRGBA, R: 255, G: 0, B: 0, A: 0.5},
		},
	}
}

func TestBuildPictureRingPolylineDoesNotDoubleBack(t *testing.T) {
	c := catalogue.New()
	c.AddStop("A", geo.Coordinates{Lat: 0, Lng: 0})
	c.AddStop("B", geo.Coordinates{Lat: 0, Lng: 1})
	c.AddStop("C", geo.Coordinates{Lat: 1, Lng: 0})
	c.SetDistance("A", "B", 100)
	c.SetDistance("B", "C", 100)
	c.SetDistance("C", "A", 100)
	c.AddBus("14", []string{"A", "B", "C", "A"}, true)

	pic := BuildPicture(c, testSettings())
	require.NotEmpty(t, pic)
	require.Equal(t, KindPolyline, pic[0].Kind)
	assert.Len(t, pic[0].Polyline.Points, 4) // A,B,C,A, no reversed head appended
}

func TestBuildPictureLinearPolylineAppendsReversedHead(t *testing.T) {
	c := catalogue.New()
	c.AddStop("A", geo.Coordinates{Lat: 0, Lng: 0})
	c.AddStop("B", geo.Coordinates{Lat: 0, Lng: 1})
	c.AddStop("C", geo.Coordinates{Lat: 1, Lng: 0})
	c.SetDistance("A", "B", 100)
	c.SetDistance("B", "C", 100)
	c.SetDistance("B", "A", 100)
	c.SetDistance("C", "B", 100)
	c.AddBus("14", []string{"A", "B", "C"}, false)

	pic := BuildPicture(c, testSettings())
	require.NotEmpty(t, pic)
	require.Equal(t, KindPolyline, pic[0].Kind)
	// forward A,B,C plus reversed head of the forward trip (B,A) => 5 points
	assert.Len(t, pic[0].Polyline.Points, 5)
}

func TestBuildPictureRouteLabelsOnePairForRing(t *testing.T) {
	c := catalogue.New()
	c.AddStop("A", geo.Coordinates{})
	c.AddStop("B", geo.Coordinates{Lat: 0, Lng: 1})
	c.SetDistance("A", "B", 100)
	c.SetDistance("B", "A", 100)
	c.AddBus("14", []string{"A", "B", "A"}, true)

	pic := BuildPicture(c, testSettings())
	labels := filterKind(pic, KindRouteLabel)
	require.Len(t, labels, 1)
	assert.Equal(t, "14", labels[0].RouteLabel.Name)
}

func TestBuildPictureRouteLabelsTwoPairsForLinearDistinctEndpoints(t *testing.T) {
	c := catalogue.New()
	c.AddStop("A", geo.Coordinates{})
	c.AddStop("B", geo.Coordinates{Lat: 0, Lng: 1})
	c.SetDistance("A", "B", 100)
	c.SetDistance("B", "A", 100)
	c.AddBus("14", []string{"A", "B"}, false)

	pic := BuildPicture(c, testSettings())
	labels := filterKind(pic, KindRouteLabel)
	require.Len(t, labels, 2)
}

func TestBuildPictureExcludesDegenerateBusFromPaletteOrdinal(t *testing.T) {
	// A degenerate (empty-stops) bus lexicographically before a real one must
	// not consume a palette slot: the real bus should still get ordinal 0.
	c := catalogue.New()
	c.AddStop("A", geo.Coordinates{})
	c.AddStop("B", geo.Coordinates{Lat: 0, Lng: 1})
	c.SetDistance("A", "B", 100)
	c.SetDistance("B", "A", 100)
	c.AddBus("1_empty", nil, false)
	c.AddBus("2_real", []string{"A", "B"}, false)

	pic := BuildPicture(c, testSettings())
	polylines := filterKind(pic, KindPolyline)
	require.Len(t, polylines, 1)
	assert.Equal(t, testSettings().ColorPalette[0], polylines[0].Polyline.Color)

	labels := filterKind(pic, KindRouteLabel)
	require.NotEmpty(t, labels)
	assert.Equal(t, testSettings().ColorPalette[0], labels[0].RouteLabel.FillColor)
}

func TestBuildPictureStopsOnlyIncludeStopsWithBus(t *testing.T) {
	c := catalogue.New()
	c.AddStop("A", geo.Coordinates{})
	c.AddStop("B", geo.Coordinates{Lat: 0, Lng: 1})
	c.AddStop("Lonely", geo.Coordinates{Lat: 5, Lng: 5})
	c.SetDistance("A", "B", 100)
	c.SetDistance("B", "A", 100)
	c.AddBus("14", []string{"A", "B"}, false)

	pic := BuildPicture(c, testSettings())
	disks := filterKind(pic, KindStopDisk)
	assert.Len(t, disks, 2)
}

func TestBuildPictureEmptyCatalogueYieldsNoDrawables(t *testing.T) {
	c := catalogue.New()
	assert.Nil(t, BuildPicture(c, testSettings()))
}

func TestRenderSVGWrapsDrawablesInDocument(t *testing.T) {
	c := catalogue.New()
	c.AddStop("A", geo.Coordinates{})
	c.AddStop("B", geo.Coordinates{Lat: 0, Lng: 1})
	c.SetDistance("A", "B", 100)
	c.SetDistance("B", "A", 100)
	c.AddBus("14", []string{"A", "B"}, false)

	pic := BuildPicture(c, testSettings())
	svg := RenderSVG(pic, 600, 400)

	assert.True(t, strings.HasPrefix(svg, `<?xml version="1.0" encoding="UTF-8" ?>`))
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
	assert.Contains(t, svg, `viewBox="0 0 600 400"`)
	assert.Contains(t, svg, "<polyline")
	assert.Contains(t, svg, "<circle")
	assert.Contains(t, svg, "<text")
}

func TestRenderSVGEscapesBusName(t *testing.T) {
	c := catalogue.New()
	c.AddStop("A", geo.Coordinates{})
	c.AddStop("B", geo.Coordinates{Lat: 0, Lng: 1})
	c.SetDistance("A", "B", 100)
	c.SetDistance("B", "A", 100)
	c.AddBus("A&B<Express>", []string{"A", "B"}, false)

	pic := BuildPicture(c, testSettings())
	svg := RenderSVG(pic, 600, 400)

	assert.Contains(t, svg, "A&amp;B&lt;Express&gt;")
	assert.NotContains(t, svg, "A&B<Express>")
}

func filterKind(pic []Drawable, kind DrawableKind) []Drawable {
	var out []Drawable
	for _, d := range pic {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}
