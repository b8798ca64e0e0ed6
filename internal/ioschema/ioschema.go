// Package ioschema defines the wire shapes read from and written to the
// batch JSON protocol: base_requests/render_settings/routing_settings on
// input, response objects on output. Decoding goes through
// github.com/goccy/go-json for parity with the rest of the module.
package ioschema

import (
	json "github.com/goccy/go-json"

	"github.com/antigravity/transport-catalogue/internal/render"
)

// Document is the single top-level JSON object read from stdin, for both
// make_base and process_requests (each mode only populates the keys it
// needs; absent keys decode to nil/zero).
type Document struct {
	BaseRequests          []BaseRequest         `json:"base_requests,omitempty"`
	RenderSettings        RenderSettings        `json:"render_settings"`
	RoutingSettings       RoutingSettings       `json:"routing_settings"`
	StatRequests          []StatRequest         `json:"stat_requests,omitempty"`
	SerializationSettings SerializationSettings `json:"serialization_settings"`
}

// BaseRequest is one Stop or Bus declaration from base_requests. Only the
// fields relevant to Type are populated by the source data; the rest carry
// their zero value.
type BaseRequest struct {
	Type string `json:"type"`

	// Stop fields.
	Name          string         `json:"name"`
	Latitude      float64        `json:"latitude"`
	Longitude     float64        `json:"longitude"`
	RoadDistances map[string]int `json:"road_distances,omitempty"`

	// Bus fields (Name is shared with Stop above).
	Stops       []string `json:"stops,omitempty"`
	IsRoundtrip bool     `json:"is_roundtrip,omitempty"`
}

// RenderSettings is render_settings verbatim.
type RenderSettings struct {
	Width             float64        `json:"width"`
	Height            float64        `json:"height"`
	Padding           float64        `json:"padding"`
	LineWidth         float64        `json:"line_width"`
	StopRadius        float64        `json:"stop_radius"`
	BusLabelFontSize  int            `json:"bus_label_font_size"`
	BusLabelOffset    [2]float64     `json:"bus_label_offset"`
	StopLabelFontSize int            `json:"stop_label_font_size"`
	StopLabelOffset   [2]float64     `json:"stop_label_offset"`
	UnderlayerColor   render.Color   `json:"underlayer_color"`
	UnderlayerWidth   float64        `json:"underlayer_width"`
	ColorPalette      []render.Color `json:"color_palette"`
}

// ToRenderSettings adapts the wire shape to render.Settings.
func (s RenderSettings) ToRenderSettings() render.Settings {
	return render.Settings{
		Width:             s.Width,
		Height:            s.Height,
		Padding:           s.Padding,
		LineWidth:         s.LineWidth,
		StopRadius:        s.StopRadius,
		BusLabelFontSize:  s.BusLabelFontSize,
		BusLabelOffset:    render.Point{X: s.BusLabelOffset[0], Y: s.BusLabelOffset[1]},
		StopLabelFontSize: s.StopLabelFontSize,
		StopLabelOffset:   render.Point{X: s.StopLabelOffset[0], Y: s.StopLabelOffset[1]},
		UnderlayerColor:   s.UnderlayerColor,
		UnderlayerWidth:   s.UnderlayerWidth,
		ColorPalette:      s.ColorPalette,
	}
}

// RoutingSettings is routing_settings verbatim.
type RoutingSettings struct {
	BusWaitTime int     `json:"bus_wait_time"`
	BusVelocity float64 `json:"bus_velocity"`
}

// SerializationSettings is serialization_settings verbatim.
type SerializationSettings struct {
	File string `json:"file"`
}

// StatRequest is one item from stat_requests.
type StatRequest struct {
	ID   int    `json:"id"`
	Type string `json:"type"`

	Name string `json:"name,omitempty"` // Stop, Bus

	From string `json:"from,omitempty"` // Route
	To   string `json:"to,omitempty"`   // Route
}

// Response is one output object; RequestID is always present, the rest
// depend on which fields were populated by the dispatcher. Buses and Items
// are slice pointers so a present-but-empty list still serializes as [] —
// a Route query from a stop to itself must answer with an empty items
// array, not a missing key.
type Response struct {
	RequestID int `json:"request_id"`

	ErrorMessage string `json:"error_message,omitempty"`

	// Stop
	Buses *[]string `json:"buses,omitempty"`

	// Bus
	Curvature       *float64 `json:"curvature,omitempty"`
	RouteLength     *float64 `json:"route_length,omitempty"`
	StopCount       *int     `json:"stop_count,omitempty"`
	UniqueStopCount *int     `json:"unique_stop_count,omitempty"`

	// Map
	Map string `json:"map,omitempty"`

	// Route
	TotalTime *float64     `json:"total_time,omitempty"`
	Items     *[]RouteItem `json:"items,omitempty"`
}

// RouteItem is one Wait or Bus entry in a Route response's items list.
type RouteItem struct {
	Type string `json:"type"`

	// Wait
	StopName string `json:"stop_name,omitempty"`

	// Bus
	Bus       string `json:"bus,omitempty"`
	SpanCount int    `json:"span_count,omitempty"`

	Time float64 `json:"time"`
}

// Decode parses a Document from data.
func Decode(data []byte) (Document, error) {
	var doc Document
	err := json.Unmarshal(data, &doc)
	return doc, err
}

// EncodeResponses serializes a list of responses as the single top-level
// JSON array process_requests writes to stdout.
func EncodeResponses(responses []Response) ([]byte, error) {
	return json.Marshal(responses)
}
