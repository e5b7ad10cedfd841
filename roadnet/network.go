package roadnet

import (
	"math"
	"math/rand"
	"sort"

	bettererrors "github.com/xtuc/better-errors"

	"github.com/motorarena/motorarena/common/utils/vector"
)

type RoadEndpoint struct {
	RoadId string
	AtEnd  bool
}

// RoadNetwork is a graph of roads joined at endpoints. Mutation is expected
// between simulation steps only; queries run continuously during ticks.
type RoadNetwork struct {
	roads       map[string]*Road
	connections map[RoadEndpoint][]RoadEndpoint
}

func NewRoadNetwork() *RoadNetwork {
	return &RoadNetwork{
		roads:       make(map[string]*Road),
		connections: make(map[RoadEndpoint][]RoadEndpoint),
	}
}

func (network *RoadNetwork) AddRoad(road *Road) error {
	if road == nil {
		return bettererrors.New("Cannot add nil road to network")
	}

	if _, exists := network.roads[road.GetId()]; exists {
		return bettererrors.
			New("Road id already present in network").
			SetContext("road", road.GetId())
	}

	network.roads[road.GetId()] = road

	return nil
}

func (network *RoadNetwork) GetRoad(id string) *Road {
	return network.roads[id]
}

func (network *RoadNetwork) Size() int {
	return len(network.roads)
}

// RemoveRoad drops the road and every connection referencing it.
func (network *RoadNetwork) RemoveRoad(id string) {
	delete(network.roads, id)

	for key, endpoints := range network.connections {
		if key.RoadId == id {
			delete(network.connections, key)
			continue
		}

		kept := endpoints[:0]
		for _, endpoint := range endpoints {
			if endpoint.RoadId != id {
				kept = append(kept, endpoint)
			}
		}

		if len(kept) == 0 {
			delete(network.connections, key)
		} else {
			network.connections[key] = kept
		}
	}
}

// Connect joins two road endpoints. The connection is symmetric: routes can
// be found from either side once it is established.
func (network *RoadNetwork) Connect(roadA string, aAtEnd bool, roadB string, bAtEnd bool) error {
	if _, ok := network.roads[roadA]; !ok {
		return bettererrors.
			New("Cannot connect unknown road").
			SetContext("road", roadA)
	}

	if _, ok := network.roads[roadB]; !ok {
		return bettererrors.
			New("Cannot connect unknown road").
			SetContext("road", roadB)
	}

	from := RoadEndpoint{RoadId: roadA, AtEnd: aAtEnd}
	to := RoadEndpoint{RoadId: roadB, AtEnd: bAtEnd}

	network.link(from, to)
	network.link(to, from)

	return nil
}

func (network *RoadNetwork) link(from RoadEndpoint, to RoadEndpoint) {
	for _, endpoint := range network.connections[from] {
		if endpoint == to {
			return
		}
	}

	network.connections[from] = append(network.connections[from], to)
}

func (network *RoadNetwork) Disconnect(roadA string, aAtEnd bool, roadB string, bAtEnd bool) {
	from := RoadEndpoint{RoadId: roadA, AtEnd: aAtEnd}
	to := RoadEndpoint{RoadId: roadB, AtEnd: bAtEnd}

	network.unlink(from, to)
	network.unlink(to, from)
}

func (network *RoadNetwork) unlink(from RoadEndpoint, to RoadEndpoint) {
	endpoints := network.connections[from]

	kept := endpoints[:0]
	for _, endpoint := range endpoints {
		if endpoint != to {
			kept = append(kept, endpoint)
		}
	}

	if len(kept) == 0 {
		delete(network.connections, from)
	} else {
		network.connections[from] = kept
	}
}

func (network *RoadNetwork) GetConnections(roadId string, atEnd bool) []RoadEndpoint {
	return network.connections[RoadEndpoint{RoadId: roadId, AtEnd: atEnd}]
}

func (network *RoadNetwork) Clear() {
	network.roads = make(map[string]*Road)
	network.connections = make(map[RoadEndpoint][]RoadEndpoint)
}

// FindRoute runs a breadth-first search over the connection graph and
// returns the road ids to traverse, starting road included. A route from a
// road to itself is a single-element sequence.
func (network *RoadNetwork) FindRoute(fromRoad string, fromT float64, toRoad string, toT float64) ([]string, error) {
	if _, ok := network.roads[fromRoad]; !ok {
		return nil, bettererrors.
			New("Route origin road unknown").
			SetContext("road", fromRoad)
	}

	if _, ok := network.roads[toRoad]; !ok {
		return nil, bettererrors.
			New("Route destination road unknown").
			SetContext("road", toRoad)
	}

	if fromRoad == toRoad {
		return []string{fromRoad}, nil
	}

	previous := map[string]string{fromRoad: ""}
	queue := []string{fromRoad}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == toRoad {
			route := []string{}
			for at := toRoad; at != ""; at = previous[at] {
				route = append([]string{at}, route...)
			}
			return route, nil
		}

		for _, neighbour := range network.neighbours(current) {
			if _, visited := previous[neighbour]; visited {
				continue
			}

			previous[neighbour] = current
			queue = append(queue, neighbour)
		}
	}

	return nil, bettererrors.
		New("No route between roads").
		SetContext("from", fromRoad).
		SetContext("to", toRoad)
}

func (network *RoadNetwork) neighbours(roadId string) []string {
	res := make([]string, 0)
	seen := map[string]bool{}

	for _, atEnd := range []bool{false, true} {
		for _, endpoint := range network.connections[RoadEndpoint{RoadId: roadId, AtEnd: atEnd}] {
			if !seen[endpoint.RoadId] {
				seen[endpoint.RoadId] = true
				res = append(res, endpoint.RoadId)
			}
		}
	}

	return res
}

// GetNearestRoad scans every road's nearest-point query and returns the
// global minimum. O(roads × waypoints); fine for tens to low hundreds of
// roads.
func (network *RoadNetwork) GetNearestRoad(x float64, y float64, z float64) (roadId string, t float64, distance float64, found bool) {
	bestDist := math.Inf(1)

	for id, road := range network.roads {
		roadT, dist := road.FindNearestPoint(vector.MakeVector3(x, y, z))
		if dist < bestDist {
			bestDist = dist
			roadId = id
			t = roadT
			found = true
		}
	}

	return roadId, t, bestDist, found
}

// GetRandomSpawnPoint picks a uniformly random road and a uniformly random
// position on it.
func (network *RoadNetwork) GetRandomSpawnPoint() (roadId string, t float64, found bool) {
	if len(network.roads) == 0 {
		return "", 0, false
	}

	ids := make([]string, 0, len(network.roads))
	for id := range network.roads {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids[rand.Intn(len(ids))], rand.Float64(), true
}
