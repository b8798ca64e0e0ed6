// Package catalogue owns the stop/bus arenas, the name indices over them,
// and the derived-metric computation that runs once at AddBus time.
package catalogue

import (
	"fmt"
	"sort"

	"github.com/antigravity/transport-catalogue/internal/geo"
)

// Stop is a named geographic point with directional road-distance overrides
// to neighboring stops, and the sorted set of buses that traverse it.
type Stop struct {
	Name           string
	Coord          geo.Coordinates
	RoadDistances  map[int]int // target stop index -> meters
	BusMemberships []int       // bus indices, sorted lexicographically by bus name
}

// Bus is a named ordered sequence of stop indices, either a closed ring or a
// linear route traversed in both directions. The four metrics below are
// computed once in AddBus and never change afterward.
type Bus struct {
	Name             string
	Stops            []int
	Ring             bool
	Length           int
	IdealLength      float64
	CountStops       int
	CountUniqueStops int
}

// Catalogue is an append-only arena of stops and buses, addressed by stable
// integer index, plus name -> index lookup tables.
type Catalogue struct {
	stops       []Stop
	buses       []Bus
	stopIndexOf map[string]int
	busIndexOf  map[string]int
}

// New returns an empty catalogue.
func New() *Catalogue {
	return &Catalogue{
		stopIndexOf: make(map[string]int),
		busIndexOf:  make(map[string]int),
	}
}

// AddStop appends a new stop and returns its stable index.
func (c *Catalogue) AddStop(name string, coord geo.Coordinates) int {
	idx := len(c.stops)
	c.stops = append(c.stops, Stop{
		Name:          name,
		Coord:         coord,
		RoadDistances: make(map[int]int),
	})
	c.stopIndexOf[name] = idx
	return idx
}

// SetDistance records one directional road-distance override, from->to, in
// meters. Both stops must already exist.
func (c *Catalogue) SetDistance(fromName, toName string, meters int) {
	from := c.StopIndex(fromName)
	to := c.StopIndex(toName)
	c.stops[from].RoadDistances[to] = meters
}

// RoadDistance resolves the directional distance from->to: a direct override
// wins, otherwise fall back to the reverse override. Reports false if
// neither direction has an override.
func (c *Catalogue) RoadDistance(from, to int) (int, bool) {
	if d, ok := c.stops[from].RoadDistances[to]; ok {
		return d, true
	}
	if d, ok := c.stops[to].RoadDistances[from]; ok {
		return d, true
	}
	return 0, false
}

// AddBus resolves stopNames to indices, computes the bus's derived metrics,
// and registers its membership with every stop it visits. An empty
// stopNames produces a bus with zero metrics; stat queries treat it as
// absent.
func (c *Catalogue) AddBus(name string, stopNames []string, ring bool) int {
	busIdx := len(c.buses)

	stopIdxs := make([]int, len(stopNames))
	for i, sn := range stopNames {
		stopIdxs[i] = c.StopIndex(sn)
	}

	bus := Bus{Name: name, Stops: stopIdxs, Ring: ring}
	if len(stopIdxs) > 0 {
		if ring {
			bus.CountStops = len(stopIdxs)
		} else {
			bus.CountStops = 2*len(stopIdxs) - 1
		}
		bus.CountUniqueStops = countUnique(stopIdxs)

		for i := 0; i < len(stopIdxs)-1; i++ {
			a, b := stopIdxs[i], stopIdxs[i+1]
			idealHop := geo.Distance(c.stops[a].Coord, c.stops[b].Coord)
			if ring {
				length, ok := c.RoadDistance(a, b)
				if !ok {
					panic(fmt.Sprintf("catalogue: bus %q has no road distance between adjacent stops %q and %q",
						name, c.stops[a].Name, c.stops[b].Name))
				}
				bus.Length += length
				bus.IdealLength += idealHop
			} else {
				// Linear: traversed there-and-back, so both directions
				// contribute.
				fwd, fwdOK := c.stops[a].RoadDistances[b]
				rev, revOK := c.stops[b].RoadDistances[a]
				switch {
				case fwdOK && revOK:
					bus.Length += fwd + rev
				case fwdOK:
					bus.Length += 2 * fwd
				case revOK:
					bus.Length += 2 * rev
				default:
					panic(fmt.Sprintf("catalogue: bus %q has no road distance between adjacent stops %q and %q",
						name, c.stops[a].Name, c.stops[b].Name))
				}
				bus.IdealLength += 2 * idealHop
			}
		}
	}

	c.buses = append(c.buses, bus)
	c.busIndexOf[name] = busIdx

	for _, stopIdx := range stopIdxs {
		c.addMembership(stopIdx, busIdx)
	}

	return busIdx
}

// RestoreStop appends a stop with already-known fields, bypassing the
// derivation AddStop/SetDistance would otherwise perform. Used only by
// persist to rebuild a catalogue from a previously saved, bit-exact state.
func (c *Catalogue) RestoreStop(name string, lat, lng float64, roadDistances map[int]int, busMemberships []int) int {
	idx := len(c.stops)
	c.stops = append(c.stops, Stop{
		Name:           name,
		Coord:          geo.Coordinates{Lat: lat, Lng: lng},
		RoadDistances:  roadDistances,
		BusMemberships: busMemberships,
	})
	c.stopIndexOf[name] = idx
	return idx
}

// RestoreBus appends a bus with already-computed derived metrics, bypassing
// AddBus's recomputation. Used only by persist.
func (c *Catalogue) RestoreBus(name string, stops []int, ring bool, length int, idealLength float64, countStops, countUniqueStops int) int {
	idx := len(c.buses)
	c.buses = append(c.buses, Bus{
		Name:             name,
		Stops:            stops,
		Ring:             ring,
		Length:           length,
		IdealLength:      idealLength,
		CountStops:       countStops,
		CountUniqueStops: countUniqueStops,
	})
	c.busIndexOf[name] = idx
	return idx
}

// addMembership inserts busIdx into stop's membership list, keeping it
// sorted lexicographically by bus name and deduplicated.
func (c *Catalogue) addMembership(stopIdx, busIdx int) {
	memberships := c.stops[stopIdx].BusMemberships
	busName := c.buses[busIdx].Name

	pos := sort.Search(len(memberships), func(i int) bool {
		return c.buses[memberships[i]].Name >= busName
	})
	if pos < len(memberships) && memberships[pos] == busIdx {
		return
	}
	memberships = append(memberships, 0)
	copy(memberships[pos+1:], memberships[pos:])
	memberships[pos] = busIdx
	c.stops[stopIdx].BusMemberships = memberships
}

func countUnique(idxs []int) int {
	seen := make(map[int]struct{}, len(idxs))
	for _, i := range idxs {
		seen[i] = struct{}{}
	}
	return len(seen)
}

// FindStop returns the stop named name, if present.
func (c *Catalogue) FindStop(name string) (*Stop, bool) {
	idx, ok := c.stopIndexOf[name]
	if !ok {
		return nil, false
	}
	return &c.stops[idx], true
}

// FindBus returns the bus named name, if present.
func (c *Catalogue) FindBus(name string) (*Bus, bool) {
	idx, ok := c.busIndexOf[name]
	if !ok {
		return nil, false
	}
	return &c.buses[idx], true
}

// StopIndex returns the index of the stop named name. Panics if absent;
// callers must only use it on names already known to exist.
func (c *Catalogue) StopIndex(name string) int {
	idx, ok := c.stopIndexOf[name]
	if !ok {
		panic(fmt.Sprintf("catalogue: unknown stop %q", name))
	}
	return idx
}

// BusIndex returns the index of the bus named name. Panics if absent.
func (c *Catalogue) BusIndex(name string) int {
	idx, ok := c.busIndexOf[name]
	if !ok {
		panic(fmt.Sprintf("catalogue: unknown bus %q", name))
	}
	return idx
}

// Stop returns the stop at idx.
func (c *Catalogue) Stop(idx int) *Stop { return &c.stops[idx] }

// Bus returns the bus at idx.
func (c *Catalogue) Bus(idx int) *Bus { return &c.buses[idx] }

// StopCount returns the number of stops in the arena.
func (c *Catalogue) StopCount() int { return len(c.stops) }

// BusCount returns the number of buses in the arena.
func (c *Catalogue) BusCount() int { return len(c.buses) }

// StopsLexicographic returns stop indices in lexicographic name order.
func (c *Catalogue) StopsLexicographic() []int {
	idxs := make([]int, len(c.stops))
	for i := range idxs {
		idxs[i] = i
	}
	sort.Slice(idxs, func(i, j int) bool {
		return c.stops[idxs[i]].Name < c.stops[idxs[j]].Name
	})
	return idxs
}

// BusesLexicographic returns bus indices in lexicographic name order.
func (c *Catalogue) BusesLexicographic() []int {
	idxs := make([]int, len(c.buses))
	for i := range idxs {
		idxs[i] = i
	}
	sort.Slice(idxs, func(i, j int) bool {
		return c.buses[idxs[i]].Name < c.buses[idxs[j]].Name
	})
	return idxs
}
