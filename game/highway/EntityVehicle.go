package highway

import (
	"math"

	"github.com/bytearena/ecs"
	bettererrors "github.com/xtuc/better-errors"

	"github.com/motorarena/motorarena/common/utils/vector"
)

const (
	standardWheelbase   = 2.5
	standardTrackWidth  = 1.6
	standardWheelRadius = 0.33
)

// NewEntityVehicle creates a player-drivable vehicle entity with the
// standard 4-wheel layout at the given pose.
func (game *HighwayGame) NewEntityVehicle(specs VehicleSpecs, position vector.Vector3, heading float64) (*ecs.Entity, error) {
	vehicle, err := NewVehicle(specs)
	if err != nil {
		return nil, err
	}

	vehicle.
		SetPosition(position).
		SetHeading(heading).
		SetupStandardWheels(standardWheelbase, standardTrackWidth, standardWheelRadius)

	return game.manager.NewEntity().
		AddComponent(game.vehicleComponent, vehicle).
		AddComponent(game.renderComponent, &Render{type_: "vehicle"}), nil
}

// NewEntityTrafficVehicle spawns an AI-driven vehicle at a random point on
// the road network, already bound, activated and routed to a random
// destination.
func (game *HighwayGame) NewEntityTrafficVehicle(specs VehicleSpecs, behavior Behavior) (*ecs.Entity, error) {
	roadId, t, ok := game.network.GetRandomSpawnPoint()
	if !ok {
		return nil, bettererrors.New("Cannot spawn traffic vehicle: road network is empty")
	}

	road := game.network.GetRoad(roadId)
	position := road.Interpolate(t)
	direction := road.GetDirectionAt(t)
	heading := math.Atan2(direction.GetX(), direction.GetZ())

	vehicle, err := NewVehicle(specs)
	if err != nil {
		return nil, err
	}

	vehicle.
		SetPosition(position).
		SetHeading(heading).
		SetupStandardWheels(standardWheelbase, standardTrackWidth, standardWheelRadius)

	agent := NewTrafficAgent().
		Bind(vehicle, game.network).
		SetBehavior(behavior).
		SetMaxSpeed(specs.MaxSpeed).
		Activate()

	if destRoadId, destT, found := game.network.GetRandomSpawnPoint(); found {
		// best effort; an unroutable destination leaves the agent driving
		// toward its look-ahead point
		agent.SetDestination(destRoadId, destT)
	}

	return game.manager.NewEntity().
		AddComponent(game.vehicleComponent, vehicle).
		AddComponent(game.trafficComponent, agent).
		AddComponent(game.renderComponent, &Render{type_: "traffic"}), nil
}
