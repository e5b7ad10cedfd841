package highway

import (
	"math"
	"time"

	notify "github.com/bitly/go-notify"
	bettererrors "github.com/xtuc/better-errors"

	"github.com/motorarena/motorarena/common/utils/number"
	"github.com/motorarena/motorarena/common/utils/vector"
	"github.com/motorarena/motorarena/roadnet"
)

type AgentState int

const (
	StateIdle AgentState = iota
	StateDriving
	StateAvoiding
	StateStopped
	StateArrived
)

func (state AgentState) String() string {
	switch state {
	case StateIdle:
		return "idle"
	case StateDriving:
		return "driving"
	case StateAvoiding:
		return "avoiding"
	case StateStopped:
		return "stopped"
	case StateArrived:
		return "arrived"
	}
	return "unknown"
}

type Behavior int

const (
	BehaviorCalm Behavior = iota
	BehaviorNormal
	BehaviorAggressive
)

type behaviorPreset struct {
	speedMultiplier float64
	followDistance  float64
}

var behaviorPresets = map[Behavior]behaviorPreset{
	BehaviorCalm:       {speedMultiplier: 0.7, followDistance: 12},
	BehaviorNormal:     {speedMultiplier: 1.0, followDistance: 8},
	BehaviorAggressive: {speedMultiplier: 1.2, followDistance: 4},
}

// Obstacle is a transient sphere injected by an external perception system
// and cleared by the caller each tick.
type Obstacle struct {
	Position vector.Vector3
	Radius   float64
}

const (
	// Below this distance an obstacle forces a full stop and a destination
	// counts as reached.
	criticalDistance = 5.0

	defaultDetectionRange = 20.0
	defaultLookAhead      = 8.0
	defaultAgentMaxSpeed  = 30.0
)

// TrafficBrain is the per-tick decision entry point, overridable the same
// way VehiclePhysics is.
type TrafficBrain interface {
	UpdateAI(dt float64)
}

// TrafficAgent drives one vehicle over a road network: it follows the road
// ahead, slows for obstacles, and re-plans when a destination is reached.
// It owns neither the vehicle nor the network.
type TrafficAgent struct {
	vehicle *Vehicle
	network *roadnet.RoadNetwork

	// cache, re-derived from the vehicle position every tick
	currentRoadId string
	currentT      float64

	hasDestination bool
	destRoadId     string
	destT          float64
	route          []string // advisory; steering follows the road ahead, not the route

	behavior       Behavior
	maxSpeed       float64
	detectionRange float64
	lookAhead      float64

	obstacles []Obstacle

	state  AgentState
	active bool

	onDestinationReached func(agent *TrafficAgent)
}

func NewTrafficAgent() *TrafficAgent {
	agent := &TrafficAgent{
		behavior:       BehaviorNormal,
		maxSpeed:       defaultAgentMaxSpeed,
		detectionRange: defaultDetectionRange,
		lookAhead:      defaultLookAhead,
		obstacles:      make([]Obstacle, 0),
		state:          StateIdle,
	}

	agent.onDestinationReached = func(a *TrafficAgent) {
		// default re-arm: pick a fresh random destination and keep driving
		if a.network == nil {
			return
		}

		roadId, t, ok := a.network.GetRandomSpawnPoint()
		if !ok {
			return
		}

		if err := a.SetDestination(roadId, t); err == nil {
			a.state = StateDriving
		}
	}

	return agent
}

// Bind attaches the agent to a vehicle and a network. Both references are
// non-owning; the agent must not outlive the vehicle's owner.
func (agent *TrafficAgent) Bind(vehicle *Vehicle, network *roadnet.RoadNetwork) *TrafficAgent {
	agent.vehicle = vehicle
	agent.network = network
	return agent
}

func (agent TrafficAgent) GetVehicle() *Vehicle {
	return agent.vehicle
}

func (agent *TrafficAgent) SetBehavior(behavior Behavior) *TrafficAgent {
	if _, ok := behaviorPresets[behavior]; ok {
		agent.behavior = behavior
	}
	return agent
}

func (agent TrafficAgent) GetBehavior() Behavior {
	return agent.behavior
}

func (agent TrafficAgent) GetFollowDistance() float64 {
	return behaviorPresets[agent.behavior].followDistance
}

func (agent *TrafficAgent) SetMaxSpeed(maxSpeed float64) *TrafficAgent {
	if maxSpeed > 0 {
		agent.maxSpeed = maxSpeed
	}
	return agent
}

func (agent *TrafficAgent) SetDetectionRange(detectionRange float64) *TrafficAgent {
	if detectionRange > 0 {
		agent.detectionRange = detectionRange
	}
	return agent
}

func (agent *TrafficAgent) SetLookAhead(lookAhead float64) *TrafficAgent {
	if lookAhead > 0 {
		agent.lookAhead = lookAhead
	}
	return agent
}

func (agent *TrafficAgent) SetOnDestinationReached(cbk func(agent *TrafficAgent)) *TrafficAgent {
	agent.onDestinationReached = cbk
	return agent
}

func (agent *TrafficAgent) Activate() *TrafficAgent {
	agent.active = true
	if agent.state == StateIdle {
		agent.state = StateDriving
	}
	return agent
}

func (agent *TrafficAgent) Deactivate() *TrafficAgent {
	agent.active = false
	agent.state = StateIdle
	return agent
}

func (agent TrafficAgent) IsActive() bool {
	return agent.active
}

func (agent TrafficAgent) GetState() AgentState {
	return agent.state
}

func (agent TrafficAgent) GetCurrentRoad() (roadId string, t float64) {
	return agent.currentRoadId, agent.currentT
}

func (agent TrafficAgent) GetDestination() (roadId string, t float64, ok bool) {
	return agent.destRoadId, agent.destT, agent.hasDestination
}

func (agent TrafficAgent) GetRoute() []string {
	return agent.route
}

func (agent *TrafficAgent) AddObstacle(x float64, y float64, z float64, radius float64) *TrafficAgent {
	if radius >= 0 {
		agent.obstacles = append(agent.obstacles, Obstacle{
			Position: vector.MakeVector3(x, y, z),
			Radius:   radius,
		})
	}
	return agent
}

func (agent *TrafficAgent) ClearObstacles() *TrafficAgent {
	agent.obstacles = agent.obstacles[:0]
	return agent
}

// SetDestination stores the destination and precomputes a route from the
// current road. The route is advisory: the tick loop steers toward the
// current road's look-ahead point and does not follow the sequence.
func (agent *TrafficAgent) SetDestination(roadId string, t float64) error {
	if agent.network == nil {
		return bettererrors.New("Traffic agent has no road network bound")
	}

	if agent.network.GetRoad(roadId) == nil {
		return bettererrors.
			New("Destination road unknown").
			SetContext("road", roadId)
	}

	agent.hasDestination = true
	agent.destRoadId = roadId
	agent.destT = number.Clamp(t, 0, 1)
	agent.route = nil

	from := agent.currentRoadId
	if from == "" && agent.vehicle != nil {
		pos := agent.vehicle.GetPosition()
		if nearId, nearT, _, found := agent.network.GetNearestRoad(pos.Get()); found {
			from = nearId
			agent.currentRoadId = nearId
			agent.currentT = nearT
		}
	}

	if from != "" {
		if route, err := agent.network.FindRoute(from, agent.currentT, roadId, agent.destT); err == nil {
			agent.route = route
		}
	}

	return nil
}

func (agent *TrafficAgent) ClearDestination() {
	agent.hasDestination = false
	agent.route = nil
}

func (agent *TrafficAgent) stop() {
	agent.state = StateStopped
	agent.vehicle.SetThrottle(0)
	agent.vehicle.SetBrake(1)
}

// UpdateAI computes steering, throttle and brake for this tick. It acts on
// the vehicle state settled by the previous tick's physics. A no-op while
// inactive or until both vehicle and network are bound.
func (agent *TrafficAgent) UpdateAI(dt float64) {
	if !agent.active || agent.vehicle == nil || agent.network == nil {
		return
	}

	// the cached road position is never trusted across ticks
	pos := agent.vehicle.GetPosition()
	roadId, t, _, found := agent.network.GetNearestRoad(pos.Get())
	if !found {
		agent.stop()
		return
	}

	agent.currentRoadId = roadId
	agent.currentT = t

	road := agent.network.GetRoad(roadId)
	if road == nil || road.GetLength() <= 0 {
		agent.stop()
		return
	}

	if agent.hasDestination && roadId == agent.destRoadId {
		remaining := math.Abs(t-agent.destT) * road.GetLength()
		if remaining < criticalDistance {
			agent.state = StateArrived
			destRoadId, destT := agent.destRoadId, agent.destT
			agent.ClearDestination()

			notify.PostTimeout(EventDestinationReached, DestinationReachedEvent{
				Agent:  agent,
				RoadId: destRoadId,
				T:      destT,
			}, time.Millisecond)

			if agent.onDestinationReached != nil {
				agent.onDestinationReached(agent)
			}

			// no control output on the arrival tick
			return
		}
	}

	lookT := number.Clamp(t+agent.lookAhead/road.GetLength(), 0, 1)
	target := road.Interpolate(lookT)

	forward := agent.vehicle.GetForward()
	toTarget := target.Sub(pos)

	// planar cross product; sign picks the turn direction
	cross := forward.GetX()*toTarget.GetZ() - forward.GetZ()*toTarget.GetX()
	steering := number.Clamp(2*cross, -1, 1)

	targetSpeed := math.Min(agent.maxSpeed, road.GetSpeedLimitAt(t)) * behaviorPresets[agent.behavior].speedMultiplier

	state := StateDriving
	nearest := math.Inf(1)
	var nearestPosition vector.Vector3

	for _, obstacle := range agent.obstacles {
		rel := obstacle.Position.Sub(pos)
		if rel.Dot(forward) <= 0 {
			continue // behind us
		}

		if rel.Mag() > agent.detectionRange {
			continue
		}

		if dist := rel.Mag() - obstacle.Radius; dist < nearest {
			nearest = dist
			nearestPosition = obstacle.Position
		}
	}

	if nearest < agent.detectionRange {
		state = StateAvoiding

		notify.PostTimeout(EventObstacleDetected, ObstacleDetectedEvent{
			Agent:    agent,
			Position: nearestPosition,
			Distance: nearest,
		}, time.Millisecond)

		if nearest < criticalDistance {
			targetSpeed = 0
			state = StateStopped
		} else {
			targetSpeed *= nearest / agent.detectionRange
		}
	}

	agent.state = state

	agent.vehicle.SetSteering(steering)

	// ±10% hysteresis bands around the target speed keep throttle and
	// brake from oscillating once the target is reached
	speed := agent.vehicle.GetSpeed()
	switch {
	case targetSpeed <= 0:
		agent.vehicle.SetThrottle(0)
		agent.vehicle.SetBrake(1)
	case speed < targetSpeed*0.9:
		agent.vehicle.SetThrottle(1)
		agent.vehicle.SetBrake(0)
	case speed > targetSpeed*1.1:
		agent.vehicle.SetThrottle(0)
		agent.vehicle.SetBrake(0.5)
	default:
		agent.vehicle.SetThrottle(0.5)
		agent.vehicle.SetBrake(0)
	}
}
