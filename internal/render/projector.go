package render

import (
	"github.com/antigravity/transport-catalogue/internal/geo"
)

// Point is a canvas-space coordinate.
type Point struct {
	X, Y float64
}

// Projector maps geographic coordinates onto a bounded canvas with
// aspect-preserving zoom.
type Projector struct {
	padding float64
	minLon  float64
	maxLat  float64
	zoom    float64
}

// NewProjector computes the zoom coefficient for the given canvas and
// coordinate bounds.
func NewProjector(width, height, padding, minLon, maxLon, minLat, maxLat float64) Projector {
	var zoom float64
	switch {
	case maxLon == minLon && maxLat == minLat:
		zoom = 0
	case maxLon == minLon:
		zoom = (height - 2*padding) / (maxLat - minLat)
	case maxLat == minLat:
		zoom = (width - 2*padding) / (maxLon - minLon)
	default:
		byLon := (width - 2*padding) / (maxLon - minLon)
		byLat := (height - 2*padding) / (maxLat - minLat)
		zoom = byLon
		if byLat < byLon {
			zoom = byLat
		}
	}
	return Projector{padding: padding, minLon: minLon, maxLat: maxLat, zoom: zoom}
}

// Project converts a geographic coordinate to canvas space. Latitude is
// flipped: higher latitudes render upward (smaller y).
func (p Projector) Project(c geo.Coordinates) Point {
	return Point{
		X: (c.Lng-p.minLon)*p.zoom + p.padding,
		Y: (p.maxLat-c.Lat)*p.zoom + p.padding,
	}
}
