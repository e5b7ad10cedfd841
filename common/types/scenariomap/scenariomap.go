package scenariomap

import (
	"encoding/json"

	bettererrors "github.com/xtuc/better-errors"

	"github.com/motorarena/motorarena/common/utils/number"
)

type ScenarioContainer struct {
	Meta struct {
		Readme     string `json:"readme"`
		Kind       string `json:"kind"`
		Date       string `json:"date"`
		Repository string `json:"repository"`
	} `json:"meta"`
	Data struct {
		Roads       []ScenarioRoad       `json:"roads"`
		Connections []ScenarioConnection `json:"connections"`
		Traffic     []ScenarioTraffic    `json:"traffic"`
	} `json:"data"`
}

type ScenarioPoint struct {
	X float64
	Y float64
	Z float64
}

func (p *ScenarioPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([]float64{
		number.ToFixed(p.X, 5),
		number.ToFixed(p.Y, 5),
		number.ToFixed(p.Z, 5),
	})
}

func (p *ScenarioPoint) UnmarshalJSON(b []byte) error {
	var floats []float64
	if err := json.Unmarshal(b, &floats); err != nil {
		return err
	}

	if len(floats) != 3 {
		return bettererrors.New("Scenario point must have exactly 3 components")
	}

	p.X = floats[0]
	p.Y = floats[1]
	p.Z = floats[2]

	return nil
}

type ScenarioWaypoint struct {
	Point      ScenarioPoint `json:"point"`
	Width      float64       `json:"width"`
	SpeedLimit float64       `json:"speedlimit"`
}

type ScenarioRoad struct {
	Id        string             `json:"id"`
	OneWay    bool               `json:"oneway"`
	Lanes     int                `json:"lanes"`
	Waypoints []ScenarioWaypoint `json:"waypoints"`
}

func MakeScenarioRoad(id string, waypoints []ScenarioWaypoint) ScenarioRoad {
	return ScenarioRoad{
		Id:        id,
		Lanes:     1,
		Waypoints: waypoints,
	}
}

// ScenarioConnection joins two road endpoints; AtEnd selects the last
// waypoint of the road rather than the first.
type ScenarioConnection struct {
	FromRoad  string `json:"fromroad"`
	FromAtEnd bool   `json:"fromatend"`
	ToRoad    string `json:"toroad"`
	ToAtEnd   bool   `json:"toatend"`
}

type ScenarioTraffic struct {
	Count    int     `json:"count"`
	Behavior string  `json:"behavior"`
	MaxSpeed float64 `json:"maxspeed"`
}
