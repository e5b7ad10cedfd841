package highway

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	commontypes "github.com/motorarena/motorarena/common/types"
	"github.com/motorarena/motorarena/common/types/scenariomap"
	"github.com/motorarena/motorarena/common/utils/vector"
)

type fakeSimDescription struct {
	scenario *scenariomap.ScenarioContainer
}

func (d fakeSimDescription) GetId() string   { return "test-sim" }
func (d fakeSimDescription) GetName() string { return "test" }
func (d fakeSimDescription) GetTps() int     { return 60 }
func (d fakeSimDescription) GetScenario() *scenariomap.ScenarioContainer {
	return d.scenario
}

func makeTestScenario() *scenariomap.ScenarioContainer {
	point := func(x, y, z float64) scenariomap.ScenarioPoint {
		return scenariomap.ScenarioPoint{X: x, Y: y, Z: z}
	}

	scenario := &scenariomap.ScenarioContainer{}
	scenario.Data.Roads = []scenariomap.ScenarioRoad{
		scenariomap.MakeScenarioRoad("north", []scenariomap.ScenarioWaypoint{
			{Point: point(0, 0, 0), Width: 8, SpeedLimit: 20},
			{Point: point(0, 0, 100), Width: 8, SpeedLimit: 20},
		}),
		scenariomap.MakeScenarioRoad("east", []scenariomap.ScenarioWaypoint{
			{Point: point(0, 0, 100), Width: 8, SpeedLimit: 15},
			{Point: point(100, 0, 100), Width: 8, SpeedLimit: 15},
		}),
	}
	scenario.Data.Connections = []scenariomap.ScenarioConnection{
		{FromRoad: "north", FromAtEnd: true, ToRoad: "east", ToAtEnd: false},
	}

	return scenario
}

func makeTestGame() *HighwayGame {
	return NewHighwayGame(fakeSimDescription{scenario: makeTestScenario()})
}

func TestNewHighwayGameBuildsNetwork(t *testing.T) {
	game := makeTestGame()

	assert.Equal(t, 2, game.GetNetwork().Size())
	assert.NotNil(t, game.GetNetwork().GetRoad("north"))
	assert.NotNil(t, game.GetNetwork().GetRoad("east"))
	assert.Len(t, game.GetNetwork().GetConnections("north", true), 1)

	route, err := game.GetNetwork().FindRoute("north", 0, "east", 1)
	assert.NoError(t, err)
	assert.Equal(t, []string{"north", "east"}, route)
}

func TestNewHighwayGameWithoutScenario(t *testing.T) {
	game := NewHighwayGame(fakeSimDescription{scenario: nil})
	assert.Equal(t, 0, game.GetNetwork().Size())
}

func TestHighwayGameVizMessage(t *testing.T) {
	game := makeTestGame()

	_, err := game.NewEntityVehicle(makeTestSpecs(), vector.MakeVector3(0, 0, 10), 0)
	assert.NoError(t, err)

	_, err = game.NewEntityTrafficVehicle(makeTestSpecs(), BehaviorNormal)
	assert.NoError(t, err)

	for tick := 1; tick <= 10; tick++ {
		game.Step(tick, 1.0/60)
	}

	var msg commontypes.VizMessage
	assert.NoError(t, json.Unmarshal(game.ProduceVizMessageJson(), &msg))

	assert.Equal(t, "test-sim", msg.SimID)
	assert.Len(t, msg.Objects, 2)

	types := map[string]int{}
	for _, object := range msg.Objects {
		types[object.Type]++
		assert.Len(t, object.Wheels, 4)
		assert.GreaterOrEqual(t, object.Rpm, 800.0)
	}

	assert.Equal(t, 1, types["vehicle"])
	assert.Equal(t, 1, types["traffic"])
}

func TestHighwayGameTrafficMoves(t *testing.T) {
	game := makeTestGame()

	entity, err := game.NewEntityTrafficVehicle(makeTestSpecs(), BehaviorNormal)
	assert.NoError(t, err)

	queryResult := game.getEntity(entity.GetID(), game.vehicleComponent)
	assert.NotNil(t, queryResult)
	vehicle := game.CastVehicle(queryResult.Components[game.vehicleComponent])

	start := vehicle.GetPosition()
	for tick := 1; tick <= 120; tick++ {
		game.Step(tick, 1.0/60)
	}

	assert.Greater(t, vehicle.GetPosition().Sub(start).Mag(), 1.0)
	assert.Greater(t, vehicle.GetSpeed(), 0.0)
}

func TestHighwayGameTrafficSpawnNeedsRoads(t *testing.T) {
	game := NewHighwayGame(fakeSimDescription{scenario: nil})

	_, err := game.NewEntityTrafficVehicle(makeTestSpecs(), BehaviorNormal)
	assert.Error(t, err)
}

func TestHighwayGameDisposeEntity(t *testing.T) {
	game := makeTestGame()

	entity, err := game.NewEntityVehicle(makeTestSpecs(), vector.MakeVector3(0, 0, 10), 0)
	assert.NoError(t, err)

	game.Step(1, 1.0/60)
	game.DisposeEntity(entity)

	var msg commontypes.VizMessage
	assert.NoError(t, json.Unmarshal(game.ProduceVizMessageJson(), &msg))
	assert.Empty(t, msg.Objects)
}
