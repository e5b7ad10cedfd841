package highway

import (
	"github.com/motorarena/motorarena/common/utils/vector"
)

// Event topics posted through go-notify. Subscribers drain them with
// notify.Start on a channel; posts time out after a millisecond so an
// absent or slow consumer never stalls the tick.
const (
	EventVehicleDamaged   = "vehicle:damaged"
	EventVehicleDestroyed = "vehicle:destroyed"
	EventVehicleRepaired  = "vehicle:repaired"
	EventVehicleEntered   = "vehicle:entered"
	EventVehicleExited    = "vehicle:exited"

	EventDestinationReached = "traffic:destination-reached"
	EventObstacleDetected   = "traffic:obstacle-detected"
)

type VehicleEvent struct {
	Vehicle *Vehicle
	Amount  float64
}

type DestinationReachedEvent struct {
	Agent  *TrafficAgent
	RoadId string
	T      float64
}

type ObstacleDetectedEvent struct {
	Agent    *TrafficAgent
	Position vector.Vector3
	Distance float64
}
