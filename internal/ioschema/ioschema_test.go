package ioschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antigravity/transport-catalogue/internal/render"
)

func TestDecodeDocumentWithColorUnion(t *testing.T) {
	raw := []byte(`{
		"base_requests": [
			{"type": "Stop", "name": "A", "latitude": 55.6, "longitude": 37.2, "road_distances": {"B": 3900}},
			{"type": "Bus", "name": "256", "stops": ["A", "B"], "is_roundtrip": false}
		],
		"render_settings": {
			"width": 600, "height": 400, "padding": 10,
			"line_width": 14, "stop_radius": 5,
			"bus_label_font_size": 20, "bus_label_offset": [7, 15],
			"stop_label_font_size": 18, "stop_label_offset": [7, -3],
			"underlayer_color": [255, 255, 255, 0.85], "underlayer_width": 3,
			"color_palette": ["green", [255, 160, 0], [255, 0, 0, 0.5]]
		},
		"routing_settings": {"bus_wait_time": 6, "bus_velocity": 40},
		"serialization_settings": {"file": "base.db"}
	}`)

	doc, err := Decode(raw)
	require.NoError(t, err)

	require.Len(t, doc.BaseRequests, 2)
	assert.Equal(t, "Stop", doc.BaseRequests[0].Type)
	assert.Equal(t, 3900, doc.BaseRequests[0].RoadDistances["B"])
	assert.Equal(t, []string{"A", "B"}, doc.BaseRequests[1].Stops)
	assert.False(t, doc.BaseRequests[1].IsRoundtrip)

	assert.Equal(t, render.ColorRGBA, doc.RenderSettings.UnderlayerColor.Kind)
	require.Len(t, doc.RenderSettings.ColorPalette, 3)
	assert.Equal(t, render.ColorName, doc.RenderSettings.ColorPalette[0].Kind)
	assert.Equal(t, render.ColorRGB, doc.RenderSettings.ColorPalette[1].Kind)
	assert.Equal(t, render.ColorRGBA, doc.RenderSettings.ColorPalette[2].Kind)

	assert.Equal(t, 6, doc.RoutingSettings.BusWaitTime)
	assert.Equal(t, "base.db", doc.SerializationSettings.File)
}

func TestEncodeResponsesEmptyRouteKeepsItemsKey(t *testing.T) {
	// A Route query from a stop to itself answers with an empty items array,
	// not a missing key.
	total := 0.0
	items := []RouteItem{}
	out, err := EncodeResponses([]Response{{RequestID: 3, TotalTime: &total, Items: &items}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"request_id": 3, "total_time": 0, "items": []}]`, string(out))
}

func TestEncodeResponsesStopWithNoBusesKeepsBusesKey(t *testing.T) {
	buses := []string{}
	out, err := EncodeResponses([]Response{{RequestID: 1, Buses: &buses}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"request_id": 1, "buses": []}]`, string(out))
}

func TestEncodeResponsesErrorShape(t *testing.T) {
	out, err := EncodeResponses([]Response{{RequestID: 7, ErrorMessage: "not found"}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"request_id": 7, "error_message": "not found"}]`, string(out))
}
