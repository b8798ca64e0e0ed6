package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/antigravity/transport-catalogue/internal/geo"
)

func TestProjectorCornersNonDegenerate(t *testing.T) {
	// Bounds: lon in [30, 40], lat in [50, 60]. zoom = min((600-20)/10,
	// (400-20)/10) = 38, so latitude fills the height: the (min_lat, min_lon)
	// corner lands at (padding, height-padding) and the (max_lat, max_lon)
	// corner at ((40-30)*38+10, padding) = (390, 10).
	p := NewProjector(600, 400, 10, 30, 40, 50, 60)

	min := p.Project(geo.Coordinates{Lat: 50, Lng: 30})
	assert.InDelta(t, 10.0, min.X, 1e-9)
	assert.InDelta(t, 390.0, min.Y, 1e-9) // height - padding

	max := p.Project(geo.Coordinates{Lat: 60, Lng: 40})
	assert.InDelta(t, 390.0, max.X, 1e-9) // (max_lon - min_lon) * zoom + padding
	assert.InDelta(t, 10.0, max.Y, 1e-9)
}

func TestProjectorDegenerateBothCollapse(t *testing.T) {
	p := NewProjector(600, 400, 10, 30, 30, 50, 50)
	pt := p.Project(geo.Coordinates{Lat: 50, Lng: 30})
	assert.Equal(t, Point{X: 10, Y: 10}, pt)
}

func TestProjectorLongitudeCollapsesUsesHeightRatio(t *testing.T) {
	p := NewProjector(600, 400, 10, 30, 30, 50, 60)
	pt := p.Project(geo.Coordinates{Lat: 55, Lng: 30})
	// zoom = (400-20)/10 = 38; x = (30-30)*38+10 = 10; y = (60-55)*38+10 = 200
	assert.InDelta(t, 10.0, pt.X, 1e-9)
	assert.InDelta(t, 200.0, pt.Y, 1e-9)
}
