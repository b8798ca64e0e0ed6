package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceSamePoint(t *testing.T) {
	c := Coordinates{Lat: 55.611087, Lng: 37.208290}
	assert.Equal(t, 0.0, Distance(c, c))
}

func TestDistanceSymmetric(t *testing.T) {
	a := Coordinates{Lat: 55.611087, Lng: 37.208290}
	b := Coordinates{Lat: 55.595884, Lng: 37.209755}
	assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9)
}

func TestDistanceKnownPair(t *testing.T) {
	a := Coordinates{Lat: 55.611087, Lng: 37.208290}
	b := Coordinates{Lat: 55.595884, Lng: 37.209755}
	d := Distance(a, b)
	// Road distance is always >= ideal distance; sanity bound from the
	// A->B road distance of 3900m.
	assert.Greater(t, d, 0.0)
	assert.Less(t, d, 3900.0)
}
