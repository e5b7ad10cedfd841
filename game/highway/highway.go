package highway

import (
	"encoding/json"
	"strconv"

	"github.com/bytearena/ecs"

	commontypes "github.com/motorarena/motorarena/common/types"
	"github.com/motorarena/motorarena/common/utils"
	"github.com/motorarena/motorarena/common/utils/vector"
	"github.com/motorarena/motorarena/game/common"
	"github.com/motorarena/motorarena/roadnet"
)

type HighwayGame struct {
	ticknum int

	simDescription commontypes.SimDescriptionInterface
	manager        *ecs.Manager

	vehicleComponent *ecs.Component
	trafficComponent *ecs.Component
	renderComponent  *ecs.Component

	vehiclesView   *ecs.View
	trafficView    *ecs.View
	renderableView *ecs.View

	network *roadnet.RoadNetwork
}

func NewHighwayGame(simDescription commontypes.SimDescriptionInterface) *HighwayGame {
	manager := ecs.NewManager()

	game := &HighwayGame{
		simDescription: simDescription,
		manager:        manager,

		vehicleComponent: manager.NewComponent(),
		trafficComponent: manager.NewComponent(),
		renderComponent:  manager.NewComponent(),

		network: roadnet.NewRoadNetwork(),
	}

	initRoadNetwork(game)

	game.vehiclesView = manager.CreateView(game.vehicleComponent)

	game.trafficView = manager.CreateView(
		game.trafficComponent,
		game.vehicleComponent,
	)

	game.renderableView = manager.CreateView(
		game.renderComponent,
		game.vehicleComponent,
	)

	return game
}

func initRoadNetwork(game *HighwayGame) {
	scenario := game.simDescription.GetScenario()
	if scenario == nil {
		return
	}

	for _, scenarioRoad := range scenario.Data.Roads {
		road := roadnet.NewRoad(scenarioRoad.Id).
			SetOneWay(scenarioRoad.OneWay).
			SetLanes(scenarioRoad.Lanes)

		for _, waypoint := range scenarioRoad.Waypoints {
			road.AddWaypoint(
				vector.MakeVector3(waypoint.Point.X, waypoint.Point.Y, waypoint.Point.Z),
				waypoint.Width,
				waypoint.SpeedLimit,
			)
		}

		if err := game.network.AddRoad(road); err != nil {
			utils.Debug("highway", "Skipping road "+scenarioRoad.Id+": "+err.Error())
		}
	}

	for _, connection := range scenario.Data.Connections {
		err := game.network.Connect(
			connection.FromRoad, connection.FromAtEnd,
			connection.ToRoad, connection.ToAtEnd,
		)
		if err != nil {
			utils.Debug("highway", "Skipping connection "+connection.FromRoad+" -> "+connection.ToRoad+": "+err.Error())
		}
	}
}

func (game *HighwayGame) GetNetwork() *roadnet.RoadNetwork {
	return game.network
}

func (game *HighwayGame) getEntity(id ecs.EntityID, tagelements ...interface{}) *ecs.QueryResult {
	return game.manager.GetEntityByID(id, tagelements...)
}

func (game *HighwayGame) DisposeEntity(entity *ecs.Entity) {
	game.manager.DisposeEntities(entity)
}

// <GameInterface>

func (game *HighwayGame) ImplementsGameInterface() {}

func (game *HighwayGame) Subscribe(event string, cbk func(data interface{})) common.GameEventSubscription {
	return common.GameEventSubscription(0)
}

func (game *HighwayGame) Unsubscribe(subscription common.GameEventSubscription) {}

// Step advances the simulation by dt. Agents run first, acting on the
// vehicle state settled by the previous tick's physics; physics then
// integrates bodies and wheels. Single-threaded by design.
func (game *HighwayGame) Step(ticknum int, dt float64) {
	watch := utils.MakeStopwatch("highway::Step()")
	watch.Start("Step")

	game.ticknum = ticknum

	watch.Start("systemTrafficAi")
	systemTrafficAi(game, dt)
	watch.Stop("systemTrafficAi")

	watch.Start("systemPhysics")
	systemPhysics(game, dt)
	watch.Stop("systemPhysics")

	watch.Stop("Step")

	tps := game.simDescription.GetTps()
	if tps > 0 && ticknum%(tps*10) == 0 {
		utils.Debug("highway", watch.String())
	}
}

func (game *HighwayGame) ProduceVizMessageJson() []byte {
	msg := commontypes.VizMessage{
		SimID:   game.simDescription.GetId(),
		Objects: []commontypes.VizMessageObject{},
	}

	for _, entityresult := range game.renderableView.Get() {
		renderAspect := game.CastRender(entityresult.Components[game.renderComponent])
		vehicleAspect := game.CastVehicle(entityresult.Components[game.vehicleComponent])

		wheels := make([]commontypes.VizMessageWheel, 0, len(vehicleAspect.GetWheels()))
		for _, wheel := range vehicleAspect.GetWheels() {
			wheels = append(wheels, commontypes.VizMessageWheel{
				Compression:   wheel.GetCompression(),
				Rotation:      wheel.GetRotation(),
				SteeringAngle: wheel.GetSteeringAngle(),
				IsSlipping:    wheel.IsSlipping(),
			})
		}

		msg.Objects = append(msg.Objects, commontypes.VizMessageObject{
			Id:       strconv.Itoa(int(entityresult.Entity.GetID())),
			Type:     renderAspect.GetType(),
			Position: vehicleAspect.GetPosition(),
			Velocity: vehicleAspect.GetVelocity(),
			Heading:  vehicleAspect.GetHeading(),
			Speed:    vehicleAspect.GetSpeed(),
			Rpm:      vehicleAspect.GetRpm(),
			Health:   vehicleAspect.GetHealth(),
			Wheels:   wheels,
		})
	}

	res, _ := json.Marshal(msg)
	return res
}

// </GameInterface>

func (game HighwayGame) CastVehicle(data interface{}) *Vehicle {
	return data.(*Vehicle)
}

func (game HighwayGame) CastTraffic(data interface{}) *TrafficAgent {
	return data.(*TrafficAgent)
}

func (game HighwayGame) CastRender(data interface{}) *Render {
	return data.(*Render)
}
