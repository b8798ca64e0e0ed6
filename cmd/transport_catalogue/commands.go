package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/antigravity/transport-catalogue/internal/catalogue"
	"github.com/antigravity/transport-catalogue/internal/dispatch"
	"github.com/antigravity/transport-catalogue/internal/geo"
	"github.com/antigravity/transport-catalogue/internal/ioschema"
	"github.com/antigravity/transport-catalogue/internal/persist"
	"github.com/antigravity/transport-catalogue/internal/render"
	"github.com/antigravity/transport-catalogue/internal/routegraph"
	"github.com/antigravity/transport-catalogue/internal/router"
)

func readDocument(inputPath string) (ioschema.Document, error) {
	var raw []byte
	var err error
	if inputPath != "" {
		raw, err = os.ReadFile(inputPath)
	} else {
		raw, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return ioschema.Document{}, fmt.Errorf("read input: %w", err)
	}

	doc, err := ioschema.Decode(raw)
	if err != nil {
		return ioschema.Document{}, fmt.Errorf("parse input: %w", err)
	}
	return doc, nil
}

// runMakeBase builds the catalogue, picture and route graph from
// base_requests and persists them.
func runMakeBase(inputPath, outputOverride string) error {
	doc, err := readDocument(inputPath)
	if err != nil {
		return err
	}

	cat := buildCatalogue(doc.BaseRequests)

	routingSettings := routegraph.RoutingSettings{
		BusWaitTime: doc.RoutingSettings.BusWaitTime,
		BusVelocity: doc.RoutingSettings.BusVelocity,
	}
	graph := routegraph.Build(cat, routingSettings)
	picture := render.BuildPicture(cat, doc.RenderSettings.ToRenderSettings())

	stops, buses := persist.FromCatalogue(cat)
	state := persist.State{
		Stops:           stops,
		Buses:           buses,
		Picture:         persist.FromPicture(picture),
		CanvasWidth:     doc.RenderSettings.Width,
		CanvasHeight:    doc.RenderSettings.Height,
		Graph:           persist.FromGraph(graph),
		RoutingSettings: routingSettings,
	}

	path := doc.SerializationSettings.File
	if outputOverride != "" {
		path = outputOverride
	}
	if path == "" {
		return fmt.Errorf("no serialization path: set serialization_settings.file or --output")
	}

	if err := persist.Save(path, state); err != nil {
		log.Fatalf("make_base: %v", err)
	}
	return nil
}

// runProcessRequests reloads the persisted state and answers stat_requests,
// reconstructing the catalogue, picture and graph without re-parsing base_requests.
func runProcessRequests(inputPath, outputOverride string) error {
	doc, err := readDocument(inputPath)
	if err != nil {
		return err
	}

	path := doc.SerializationSettings.File
	if outputOverride != "" {
		path = outputOverride
	}
	if path == "" {
		return fmt.Errorf("no serialization path: set serialization_settings.file or --output")
	}

	state, err := persist.Load(path)
	if err != nil {
		log.Fatalf("process_requests: %v", err)
	}

	cat := persist.ToCatalogue(state.Stops, state.Buses)
	picture := persist.ToPicture(state.Picture)
	graph := persist.ToGraph(state.Graph)
	rt := router.New(graph)

	mapSVG := render.RenderSVG(picture, state.CanvasWidth, state.CanvasHeight)
	d := dispatch.New(cat, mapSVG, graph, rt, state.RoutingSettings.BusWaitTime)

	responses := d.Handle(doc.StatRequests)

	out, err := ioschema.EncodeResponses(responses)
	if err != nil {
		log.Fatalf("process_requests: encode output: %v", err)
	}
	fmt.Println(string(out))
	return nil
}

// buildCatalogue ingests base_requests in three passes: stops first (so every
// distance and bus stop name resolves), then road distances, then buses.
func buildCatalogue(requests []ioschema.BaseRequest) *catalogue.Catalogue {
	cat := catalogue.New()

	for _, req := range requests {
		if req.Type != "Stop" {
			continue
		}
		cat.AddStop(req.Name, geo.Coordinates{Lat: req.Latitude, Lng: req.Longitude})
	}
	for _, req := range requests {
		if req.Type != "Stop" {
			continue
		}
		for targetName, meters := range req.RoadDistances {
			cat.SetDistance(req.Name, targetName, meters)
		}
	}
	for _, req := range requests {
		if req.Type != "Bus" {
			continue
		}
		cat.AddBus(req.Name, req.Stops, req.IsRoundtrip)
	}

	return cat
}
