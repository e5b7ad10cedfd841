package roadnet

import (
	"math"

	"github.com/motorarena/motorarena/common/utils/number"
	"github.com/motorarena/motorarena/common/utils/vector"
)

type Waypoint struct {
	Position   vector.Vector3
	Width      float64
	SpeedLimit float64
}

// Road is an ordered polyline of waypoints. Positions along the road are
// addressed by an arclength parameter t in [0, 1], distributed
// proportionally over cumulative segment lengths.
type Road struct {
	id        string
	oneWay    bool
	lanes     int
	waypoints []Waypoint
	cumlen    []float64 // cumulative distance from the first waypoint to waypoint i
	length    float64
}

func NewRoad(id string) *Road {
	return &Road{
		id:        id,
		lanes:     1,
		waypoints: make([]Waypoint, 0),
		cumlen:    make([]float64, 0),
	}
}

func (road *Road) GetId() string {
	return road.id
}

func (road *Road) SetOneWay(oneWay bool) *Road {
	road.oneWay = oneWay
	return road
}

func (road *Road) IsOneWay() bool {
	return road.oneWay
}

func (road *Road) SetLanes(lanes int) *Road {
	if lanes >= 1 {
		road.lanes = lanes
	}
	return road
}

func (road *Road) GetLanes() int {
	return road.lanes
}

func (road *Road) AddWaypoint(position vector.Vector3, width float64, speedLimit float64) *Road {
	if len(road.waypoints) > 0 {
		last := road.waypoints[len(road.waypoints)-1]
		road.length += position.Sub(last.Position).Mag()
	}

	road.waypoints = append(road.waypoints, Waypoint{
		Position:   position,
		Width:      width,
		SpeedLimit: speedLimit,
	})
	road.cumlen = append(road.cumlen, road.length)

	return road
}

func (road *Road) GetWaypoints() []Waypoint {
	return road.waypoints
}

func (road *Road) GetLength() float64 {
	return road.length
}

// locate maps a global t to (segment index, local t on that segment).
func (road *Road) locate(t float64) (int, float64) {
	if len(road.waypoints) < 2 || road.length == 0 {
		return 0, 0
	}

	target := number.Clamp(t, 0, 1) * road.length

	for i := 0; i < len(road.waypoints)-1; i++ {
		seglen := road.cumlen[i+1] - road.cumlen[i]
		if seglen == 0 {
			continue
		}

		if target <= road.cumlen[i+1] || i == len(road.waypoints)-2 {
			return i, number.Clamp((target-road.cumlen[i])/seglen, 0, 1)
		}
	}

	return len(road.waypoints) - 2, 1
}

func (road *Road) Interpolate(t float64) vector.Vector3 {
	if len(road.waypoints) == 0 {
		return vector.MakeNullVector3()
	}

	if len(road.waypoints) == 1 {
		return road.waypoints[0].Position
	}

	i, local := road.locate(t)
	from := road.waypoints[i].Position
	to := road.waypoints[i+1].Position

	return from.Add(to.Sub(from).MultScalar(local))
}

func (road *Road) GetDirectionAt(t float64) vector.Vector3 {
	if len(road.waypoints) < 2 {
		return vector.MakeNullVector3()
	}

	i, _ := road.locate(t)

	return road.waypoints[i+1].Position.
		Sub(road.waypoints[i].Position).
		Normalize()
}

func (road *Road) GetWidthAt(t float64) float64 {
	if len(road.waypoints) == 0 {
		return 0
	}

	if len(road.waypoints) == 1 {
		return road.waypoints[0].Width
	}

	i, local := road.locate(t)

	return road.waypoints[i].Width + (road.waypoints[i+1].Width-road.waypoints[i].Width)*local
}

func (road *Road) GetSpeedLimitAt(t float64) float64 {
	if len(road.waypoints) == 0 {
		return 0
	}

	if len(road.waypoints) == 1 {
		return road.waypoints[0].SpeedLimit
	}

	i, local := road.locate(t)

	return road.waypoints[i].SpeedLimit + (road.waypoints[i+1].SpeedLimit-road.waypoints[i].SpeedLimit)*local
}

// FindNearestPoint scans every segment and returns the arclength parameter
// and distance of the closest point to p. O(waypoints); roads are short.
func (road *Road) FindNearestPoint(p vector.Vector3) (t float64, distance float64) {
	if len(road.waypoints) == 0 {
		return 0, math.Inf(1)
	}

	if len(road.waypoints) == 1 {
		return 0, p.Sub(road.waypoints[0].Position).Mag()
	}

	bestT := 0.0
	bestDist := math.Inf(1)

	for i := 0; i < len(road.waypoints)-1; i++ {
		from := road.waypoints[i].Position
		to := road.waypoints[i+1].Position

		seg := to.Sub(from)
		seglenSq := seg.MagSq()

		local := 0.0
		if seglenSq > 0 {
			local = number.Clamp(p.Sub(from).Dot(seg)/seglenSq, 0, 1)
		}

		closest := from.Add(seg.MultScalar(local))
		dist := p.Sub(closest).Mag()

		if dist < bestDist {
			bestDist = dist
			if road.length > 0 {
				bestT = (road.cumlen[i] + local*(road.cumlen[i+1]-road.cumlen[i])) / road.length
			}
		}
	}

	return bestT, bestDist
}
