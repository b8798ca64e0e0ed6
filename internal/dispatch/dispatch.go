// Package dispatch answers stat requests against a frozen catalogue,
// picture, route graph and precomputed router.
package dispatch

import (
	"fmt"
	"sort"

	"github.com/antigravity/transport-catalogue/internal/catalogue"
	"github.com/antigravity/transport-catalogue/internal/ioschema"
	"github.com/antigravity/transport-catalogue/internal/routegraph"
	"github.com/antigravity/transport-catalogue/internal/router"
)

const notFound = "not found"

// Dispatcher answers stat requests. It holds no mutable state of its own;
// everything it reads was built once during make_base/process_requests
// startup. mapSVG is rendered once at construction since every Map request
// returns the identical picture.
type Dispatcher struct {
	cat     *catalogue.Catalogue
	mapSVG  string
	graph   *routegraph.Graph
	rt      *router.Router
	waitMin int
}

// New builds a Dispatcher over the frozen state a process_requests run loads.
func New(cat *catalogue.Catalogue, mapSVG string, graph *routegraph.Graph, rt *router.Router, busWaitTime int) *Dispatcher {
	return &Dispatcher{cat: cat, mapSVG: mapSVG, graph: graph, rt: rt, waitMin: busWaitTime}
}

// Handle answers every request in reqs, in order, producing one response per
// request keyed by its request id.
func (d *Dispatcher) Handle(reqs []ioschema.StatRequest) []ioschema.Response {
	out := make([]ioschema.Response, len(reqs))
	for i, req := range reqs {
		out[i] = d.handleOne(req)
	}
	return out
}

func (d *Dispatcher) handleOne(req ioschema.StatRequest) ioschema.Response {
	switch req.Type {
	case "Stop":
		return d.handleStop(req)
	case "Bus":
		return d.handleBus(req)
	case "Map":
		return d.handleMap(req)
	case "Route":
		return d.handleRoute(req)
	default:
		return ioschema.Response{RequestID: req.ID, ErrorMessage: fmt.Sprintf("unknown request type %q", req.Type)}
	}
}

func (d *Dispatcher) handleStop(req ioschema.StatRequest) ioschema.Response {
	stop, ok := d.cat.FindStop(req.Name)
	if !ok {
		return ioschema.Response{RequestID: req.ID, ErrorMessage: notFound}
	}

	names := make([]string, len(stop.BusMemberships))
	for i, busIdx := range stop.BusMemberships {
		names[i] = d.cat.Bus(busIdx).Name
	}
	sort.Strings(names)

	return ioschema.Response{RequestID: req.ID, Buses: &names}
}

func (d *Dispatcher) handleBus(req ioschema.StatRequest) ioschema.Response {
	bus, ok := d.cat.FindBus(req.Name)
	if !ok || len(bus.Stops) == 0 {
		return ioschema.Response{RequestID: req.ID, ErrorMessage: notFound}
	}

	curvature := float64(bus.Length) / bus.IdealLength
	routeLength := float64(bus.Length)
	stopCount := bus.CountStops
	uniqueStopCount := bus.CountUniqueStops

	return ioschema.Response{
		RequestID:       req.ID,
		Curvature:       &curvature,
		RouteLength:     &routeLength,
		StopCount:       &stopCount,
		UniqueStopCount: &uniqueStopCount,
	}
}

func (d *Dispatcher) handleMap(req ioschema.StatRequest) ioschema.Response {
	return ioschema.Response{RequestID: req.ID, Map: d.mapSVG}
}

func (d *Dispatcher) handleRoute(req ioschema.StatRequest) ioschema.Response {
	fromStop, ok := d.cat.FindStop(req.From)
	if !ok {
		return ioschema.Response{RequestID: req.ID, ErrorMessage: notFound}
	}
	toStop, ok := d.cat.FindStop(req.To)
	if !ok {
		return ioschema.Response{RequestID: req.ID, ErrorMessage: notFound}
	}

	fromIdx := d.cat.StopIndex(fromStop.Name)
	toIdx := d.cat.StopIndex(toStop.Name)
	from := d.graph.VertexByStopIndex[fromIdx]
	to := d.graph.VertexByStopIndex[toIdx]

	route, ok := d.rt.BuildRoute(from, to)
	if !ok {
		return ioschema.Response{RequestID: req.ID, ErrorMessage: notFound}
	}

	items := make([]ioschema.RouteItem, 0, len(route.Edges)*2)
	for _, edgeID := range route.Edges {
		edge := d.graph.Edges[edgeID]
		meta := d.graph.EdgeMeta[edgeID]

		waitStopIdx := d.graph.StopIndexByVertex[edge.From]
		items = append(items, ioschema.RouteItem{
			Type:     "Wait",
			StopName: d.cat.Stop(waitStopIdx).Name,
			Time:     float64(d.waitMin),
		})
		items = append(items, ioschema.RouteItem{
			Type:      "Bus",
			Bus:       d.cat.Bus(meta.BusIndex).Name,
			SpanCount: meta.SpanCount,
			Time:      edge.Weight - float64(d.waitMin),
		})
	}

	total := route.TotalWeight
	return ioschema.Response{RequestID: req.ID, TotalTime: &total, Items: &items}
}
