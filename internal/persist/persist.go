// Package persist round-trips the frozen catalogue, picture and route graph
// state make_base builds, so process_requests can reconstruct it without
// re-parsing base_requests. The router's all-pairs tables are deliberately
// excluded: they're recomputed on load.
package persist

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"

	"github.com/antigravity/transport-catalogue/internal/catalogue"
	"github.com/antigravity/transport-catalogue/internal/render"
	"github.com/antigravity/transport-catalogue/internal/routegraph"
)

// magic identifies the file format; version guards against decoding a file
// written by an incompatible layout.
const (
	magic   = "TCDB"
	version = 1
)

// State is everything a process_requests run needs besides the all-pairs
// router tables.
type State struct {
	Stops           []StopRecord
	Buses           []BusRecord
	Picture         []DrawableRecord
	CanvasWidth     float64
	CanvasHeight    float64
	Graph           GraphRecord
	RoutingSettings routegraph.RoutingSettings
}

// StopRecord is one catalogue stop, flattened for gob encoding.
type StopRecord struct {
	Name           string
	Lat, Lng       float64
	RoadDistances  map[int]int
	BusMemberships []int
}

// BusRecord is one catalogue bus, flattened for gob encoding.
type BusRecord struct {
	Name             string
	Stops            []int
	Ring             bool
	Length           int
	IdealLength      float64
	CountStops       int
	CountUniqueStops int
}

// DrawableRecord tags and carries one picture element. Exactly one of the
// pointer fields is populated, mirroring render.Drawable's own tagging.
type DrawableRecord struct {
	Kind       render.DrawableKind
	Polyline   *render.PolylineDrawable
	RouteLabel *render.RouteLabelDrawable
	StopDisk   *render.StopDiskDrawable
	StopLabel  *render.StopLabelDrawable
}

// GraphRecord is the route graph minus anything recomputable: edges, their
// metadata and incidence lists, and the vertex<->stop-index mappings.
type GraphRecord struct {
	VertexCount       int
	Edges             []routegraph.Edge
	EdgeMeta          []routegraph.EdgeMeta
	Incidence         [][]int
	StopIndexByVertex []int
	VertexByStopIndex []int
}

// Save encodes state to path, prefixed with a magic header and version byte.
func Save(path string, state State) error {
	var body bytes.Buffer
	if err := gob.NewEncoder(&body).Encode(state); err != nil {
		return fmt.Errorf("persist: encode: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("persist: create %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(magic); err != nil {
		return fmt.Errorf("persist: write magic: %w", err)
	}
	if _, err := f.Write([]byte{version}); err != nil {
		return fmt.Errorf("persist: write version: %w", err)
	}
	if _, err := f.Write(body.Bytes()); err != nil {
		return fmt.Errorf("persist: write body: %w", err)
	}
	return nil
}

// Load decodes a State previously written by Save. A truncated file or a
// wrong magic/version is a fatal data-integrity error.
func Load(path string) (State, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return State{}, fmt.Errorf("persist: read %s: %w", path, err)
	}
	if len(raw) < len(magic)+1 {
		return State{}, fmt.Errorf("persist: %s: truncated file", path)
	}
	if string(raw[:len(magic)]) != magic {
		return State{}, fmt.Errorf("persist: %s: bad magic", path)
	}
	if raw[len(magic)] != version {
		return State{}, fmt.Errorf("persist: %s: unsupported version %d", path, raw[len(magic)])
	}

	var state State
	body := raw[len(magic)+1:]
	if err := gob.NewDecoder(bytes.NewReader(body)).Decode(&state); err != nil {
		return State{}, fmt.Errorf("persist: decode %s: %w", path, err)
	}
	return state, nil
}

// FromCatalogue flattens a catalogue's stops and buses into their gob-ready
// record form.
func FromCatalogue(cat *catalogue.Catalogue) ([]StopRecord, []BusRecord) {
	stops := make([]StopRecord, cat.StopCount())
	for i := 0; i < cat.StopCount(); i++ {
		s := cat.Stop(i)
		roads := make(map[int]int, len(s.RoadDistances))
		for k, v := range s.RoadDistances {
			roads[k] = v
		}
		memberships := append([]int{}, s.BusMemberships...)
		stops[i] = StopRecord{
			Name:           s.Name,
			Lat:            s.Coord.Lat,
			Lng:            s.Coord.Lng,
			RoadDistances:  roads,
			BusMemberships: memberships,
		}
	}

	buses := make([]BusRecord, cat.BusCount())
	for i := 0; i < cat.BusCount(); i++ {
		b := cat.Bus(i)
		buses[i] = BusRecord{
			Name:             b.Name,
			Stops:            append([]int{}, b.Stops...),
			Ring:             b.Ring,
			Length:           b.Length,
			IdealLength:      b.IdealLength,
			CountStops:       b.CountStops,
			CountUniqueStops: b.CountUniqueStops,
		}
	}
	return stops, buses
}

// ToCatalogue rebuilds a Catalogue from previously flattened records,
// bypassing AddBus's length recomputation since the derived metrics are
// themselves persisted bit-exactly.
func ToCatalogue(stops []StopRecord, buses []BusRecord) *catalogue.Catalogue {
	cat := catalogue.New()
	for _, s := range stops {
		cat.RestoreStop(s.Name, s.Lat, s.Lng, s.RoadDistances, s.BusMemberships)
	}
	for _, b := range buses {
		cat.RestoreBus(b.Name, b.Stops, b.Ring, b.Length, b.IdealLength, b.CountStops, b.CountUniqueStops)
	}
	return cat
}

// FromPicture flattens a rendered picture into its gob-ready record form.
func FromPicture(pic []render.Drawable) []DrawableRecord {
	out := make([]DrawableRecord, len(pic))
	for i, d := range pic {
		out[i] = DrawableRecord{
			Kind:       d.Kind,
			Polyline:   d.Polyline,
			RouteLabel: d.RouteLabel,
			StopDisk:   d.StopDisk,
			StopLabel:  d.StopLabel,
		}
	}
	return out
}

// ToPicture rebuilds a drawable slice from flattened records.
func ToPicture(records []DrawableRecord) []render.Drawable {
	out := make([]render.Drawable, len(records))
	for i, r := range records {
		out[i] = render.Drawable{
			Kind:       r.Kind,
			Polyline:   r.Polyline,
			RouteLabel: r.RouteLabel,
			StopDisk:   r.StopDisk,
			StopLabel:  r.StopLabel,
		}
	}
	return out
}

// FromGraph flattens a route graph into its gob-ready record form.
func FromGraph(g *routegraph.Graph) GraphRecord {
	return GraphRecord{
		VertexCount:       g.VertexCount,
		Edges:             append([]routegraph.Edge{}, g.Edges...),
		EdgeMeta:          append([]routegraph.EdgeMeta{}, g.EdgeMeta...),
		Incidence:         g.Incidence,
		StopIndexByVertex: g.StopIndexByVertex,
		VertexByStopIndex: g.VertexByStopIndex,
	}
}

// ToGraph rebuilds a route graph from a flattened record.
func ToGraph(r GraphRecord) *routegraph.Graph {
	return &routegraph.Graph{
		VertexCount:       r.VertexCount,
		Edges:             r.Edges,
		EdgeMeta:          r.EdgeMeta,
		Incidence:         r.Incidence,
		StopIndexByVertex: r.StopIndexByVertex,
		VertexByStopIndex: r.VertexByStopIndex,
	}
}
