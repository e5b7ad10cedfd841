package highway

import (
	"math"
	"time"

	notify "github.com/bitly/go-notify"
	bettererrors "github.com/xtuc/better-errors"

	"github.com/motorarena/motorarena/common/utils/number"
	"github.com/motorarena/motorarena/common/utils/vector"
)

type DriveType int

const (
	DriveFront DriveType = iota
	DriveRear
	DriveAll
)

const (
	// Fixed wheelbase for the turn-radius model; wheel offsets are visual.
	wheelbase = 2.5

	// Ground sensing is not implemented; every wheel sees flat ground at
	// this distance. A terrain integration would supply this per wheel.
	flatGroundDistance = 0.3

	// Each of the 4 wheels takes a fixed quarter of the body force.
	wheelTorqueShare = 0.25

	idleRpm = 800.0
	maxRpm  = 6000.0
)

// VehiclePhysics is the per-tick integration entry point. Vehicle provides
// the default arcade model; subtypes can swap the algorithm while keeping
// the state accessors.
type VehiclePhysics interface {
	UpdatePhysics(dt float64)
}

type VehicleSpecs struct {
	Mass             float64
	MaxSpeed         float64
	Acceleration     float64
	Braking          float64
	MaxSteeringAngle float64
	DriveType        DriveType
	MaxHealth        float64
}

// Vehicle integrates arcade-style longitudinal/lateral dynamics each tick
// and forwards torque to its wheels. It is exclusively owned by whichever
// subsystem created it; traffic agents and presentation consumers hold
// non-owning references only.
type Vehicle struct {
	mass             float64
	maxSpeed         float64
	acceleration     float64
	braking          float64
	maxSteeringAngle float64
	driveType        DriveType

	position vector.Vector3
	pitch    float64
	yaw      float64 // heading, wrapped to (-π, π]
	roll     float64
	velocity vector.Vector3

	throttle  float64 // [0, 1]
	brake     float64 // [0, 1]
	steering  float64 // [-1, 1]
	handbrake bool

	health    float64
	maxHealth float64
	destroyed bool
	occupied  bool

	rpm float64 // derived, for audio consumers

	wheels []*Wheel
}

func NewVehicle(specs VehicleSpecs) (*Vehicle, error) {
	if specs.Mass <= 0 {
		return nil, bettererrors.
			New("Vehicle mass must be positive").
			SetContext("mass", number.FloatToStr(specs.Mass))
	}

	if specs.MaxSpeed <= 0 {
		return nil, bettererrors.
			New("Vehicle max speed must be positive").
			SetContext("maxspeed", number.FloatToStr(specs.MaxSpeed))
	}

	if specs.Acceleration <= 0 || specs.Braking <= 0 {
		return nil, bettererrors.
			New("Vehicle acceleration and braking must be positive").
			SetContext("acceleration", number.FloatToStr(specs.Acceleration)).
			SetContext("braking", number.FloatToStr(specs.Braking))
	}

	if specs.MaxSteeringAngle <= 0 {
		return nil, bettererrors.
			New("Vehicle max steering angle must be positive").
			SetContext("maxsteeringangle", number.FloatToStr(specs.MaxSteeringAngle))
	}

	maxHealth := specs.MaxHealth
	if maxHealth <= 0 {
		maxHealth = 100
	}

	return &Vehicle{
		mass:             specs.Mass,
		maxSpeed:         specs.MaxSpeed,
		acceleration:     specs.Acceleration,
		braking:          specs.Braking,
		maxSteeringAngle: specs.MaxSteeringAngle,
		driveType:        specs.DriveType,
		health:           maxHealth,
		maxHealth:        maxHealth,
		rpm:              idleRpm,
		wheels:           make([]*Wheel, 0, 4),
	}, nil
}

// SetupStandardWheels attaches the usual 4-wheel layout: front pair
// steering, rear pair driven.
func (vehicle *Vehicle) SetupStandardWheels(wheelBase float64, trackWidth float64, wheelRadius float64) *Vehicle {
	vehicle.wheels = vehicle.wheels[:0]

	halfTrack := trackWidth / 2
	halfBase := wheelBase / 2

	vehicle.AttachWheel(NewWheel(vector.MakeVector3(-halfTrack, 0, halfBase), wheelRadius, 0.25).SetSteering(true))
	vehicle.AttachWheel(NewWheel(vector.MakeVector3(halfTrack, 0, halfBase), wheelRadius, 0.25).SetSteering(true))
	vehicle.AttachWheel(NewWheel(vector.MakeVector3(-halfTrack, 0, -halfBase), wheelRadius, 0.25).SetDrive(true))
	vehicle.AttachWheel(NewWheel(vector.MakeVector3(halfTrack, 0, -halfBase), wheelRadius, 0.25).SetDrive(true))

	return vehicle
}

func (vehicle *Vehicle) AttachWheel(wheel *Wheel) *Vehicle {
	if wheel != nil {
		vehicle.wheels = append(vehicle.wheels, wheel)
	}
	return vehicle
}

func (vehicle Vehicle) GetWheels() []*Wheel {
	return vehicle.wheels
}

func (vehicle Vehicle) GetMass() float64 {
	return vehicle.mass
}

func (vehicle Vehicle) GetMaxSpeed() float64 {
	return vehicle.maxSpeed
}

func (vehicle Vehicle) GetDriveType() DriveType {
	return vehicle.driveType
}

func (vehicle Vehicle) GetPosition() vector.Vector3 {
	return vehicle.position
}

func (vehicle *Vehicle) SetPosition(position vector.Vector3) *Vehicle {
	vehicle.position = position
	return vehicle
}

func (vehicle Vehicle) GetRotation() (pitch float64, yaw float64, roll float64) {
	return vehicle.pitch, vehicle.yaw, vehicle.roll
}

func (vehicle Vehicle) GetHeading() float64 {
	return vehicle.yaw
}

func (vehicle *Vehicle) SetHeading(yaw float64) *Vehicle {
	vehicle.yaw = number.WrapToPi(yaw)
	return vehicle
}

func (vehicle Vehicle) GetVelocity() vector.Vector3 {
	return vehicle.velocity
}

func (vehicle *Vehicle) SetVelocity(velocity vector.Vector3) *Vehicle {
	vehicle.velocity = velocity
	return vehicle
}

// GetForward is the unit heading vector in the ground plane.
func (vehicle Vehicle) GetForward() vector.Vector3 {
	return vector.MakeVector3(math.Sin(vehicle.yaw), 0, math.Cos(vehicle.yaw))
}

// GetSpeed is the planar speed; vertical motion does not count.
func (vehicle Vehicle) GetSpeed() float64 {
	return vehicle.velocity.PlaneXZ().Mag()
}

func (vehicle Vehicle) GetThrottle() float64 {
	return vehicle.throttle
}

func (vehicle *Vehicle) SetThrottle(throttle float64) *Vehicle {
	vehicle.throttle = number.Clamp(throttle, 0, 1)
	return vehicle
}

func (vehicle Vehicle) GetBrake() float64 {
	return vehicle.brake
}

func (vehicle *Vehicle) SetBrake(brake float64) *Vehicle {
	vehicle.brake = number.Clamp(brake, 0, 1)
	return vehicle
}

func (vehicle Vehicle) GetSteering() float64 {
	return vehicle.steering
}

func (vehicle *Vehicle) SetSteering(steering float64) *Vehicle {
	vehicle.steering = number.Clamp(steering, -1, 1)
	return vehicle
}

func (vehicle Vehicle) GetHandbrake() bool {
	return vehicle.handbrake
}

func (vehicle *Vehicle) SetHandbrake(handbrake bool) *Vehicle {
	vehicle.handbrake = handbrake
	return vehicle
}

func (vehicle Vehicle) GetHealth() float64 {
	return vehicle.health
}

func (vehicle Vehicle) GetMaxHealth() float64 {
	return vehicle.maxHealth
}

func (vehicle Vehicle) IsDestroyed() bool {
	return vehicle.destroyed
}

func (vehicle Vehicle) IsOccupied() bool {
	return vehicle.occupied
}

func (vehicle Vehicle) GetRpm() float64 {
	return vehicle.rpm
}

// UpdatePhysics advances the body one tick and forwards torque to the
// wheels. A destroyed vehicle is inert: inputs and forces cease to apply.
func (vehicle *Vehicle) UpdatePhysics(dt float64) {
	if vehicle.destroyed || dt <= 0 {
		return
	}

	forward := vector.MakeVector2(math.Sin(vehicle.yaw), math.Cos(vehicle.yaw))
	planar := vehicle.velocity.PlaneXZ()
	speed := planar.Mag()

	driveForce := vehicle.throttle * vehicle.acceleration * vehicle.mass
	brakeForce := vehicle.brake * vehicle.braking * vehicle.mass
	if vehicle.handbrake {
		brakeForce += 0.8 * vehicle.mass * 10
	}

	dragForce := 0.3 * speed * speed
	rollingForce := 0.015 * vehicle.mass * 10 // constant, speed-independent

	netForce := driveForce - dragForce - rollingForce
	if speed > 0.1 {
		// brakes have no effect below this threshold
		netForce -= brakeForce
	}

	planar = planar.Add(forward.MultScalar(netForce / vehicle.mass * dt))
	planar = planar.Limit(vehicle.maxSpeed)
	speed = planar.Mag()

	// creep-to-stop
	if speed < 0.5 && math.Abs(vehicle.throttle) < 0.01 {
		planar = planar.MultScalar(0.9)
		speed = planar.Mag()
	}

	if speed > 0.1 {
		effectiveAngle := vehicle.steering * vehicle.maxSteeringAngle * (1 - 0.5*speed/vehicle.maxSpeed)
		if !number.IsZero(effectiveAngle) {
			// positive steering rotates counter to the yaw axis, matching
			// the planar cross product the traffic agents steer with
			turnRadius := wheelbase / math.Tan(math.Abs(effectiveAngle))
			yawRate := -speed / turnRadius * number.Sign(effectiveAngle)
			vehicle.yaw = number.WrapToPi(vehicle.yaw + yawRate*dt)
			forward = vector.MakeVector2(math.Sin(vehicle.yaw), math.Cos(vehicle.yaw))
		}
	}

	// traction assist: pull velocity toward the heading; a negative
	// along-forward component means reversing, which snaps instead of
	// blending
	forwardSpeed := planar.Dot(forward)
	if forwardSpeed < 0 {
		planar = forward.MultScalar(-speed)
	} else {
		desired := forward.MultScalar(speed)
		planar = planar.Add(desired.Sub(planar).MultScalar(number.Clamp(5*dt, 0, 1)))
	}

	vehicle.velocity = vector.MakeVector3(planar.GetX(), vehicle.velocity.GetY(), planar.GetY())
	vehicle.position = vehicle.position.Add(vehicle.velocity.MultScalar(dt))

	vehicle.updateWheels(driveForce, brakeForce, forwardSpeed, planar.Mag(), dt)
	vehicle.updateRpm(planar.Mag())
}

func (vehicle *Vehicle) wheelIsDriven(wheel *Wheel) bool {
	switch vehicle.driveType {
	case DriveFront:
		return wheel.IsSteering()
	case DriveRear:
		return wheel.IsDrive()
	case DriveAll:
		return true
	}
	return false
}

func (vehicle *Vehicle) updateWheels(driveForce float64, brakeForce float64, forwardSpeed float64, speed float64, dt float64) {
	velocityHeading := math.Atan2(vehicle.velocity.GetX(), vehicle.velocity.GetZ())

	for _, wheel := range vehicle.wheels {
		driveTorque := 0.0
		if vehicle.wheelIsDriven(wheel) {
			driveTorque = driveForce * wheelTorqueShare
		}
		brakeTorque := brakeForce * wheelTorqueShare

		if wheel.IsSteering() {
			wheel.SetSteeringAngle(vehicle.steering * vehicle.maxSteeringAngle)
		}

		wheel.Update(flatGroundDistance, driveTorque, brakeTorque, dt)

		if speed > 0.1 {
			surfaceSpeed := wheel.GetAngularVelocity() * wheel.GetRadius()
			rollingDirection := number.WrapToPi(vehicle.yaw + wheel.GetSteeringAngle())
			wheel.SetSlip(
				(surfaceSpeed-forwardSpeed)/speed,
				number.WrapToPi(velocityHeading-rollingDirection),
			)
		} else {
			wheel.SetSlip(0, 0)
		}
	}
}

// updateRpm blends throttle input against road speed and keeps whichever
// implies the higher revs.
func (vehicle *Vehicle) updateRpm(speed float64) {
	throttleRpm := idleRpm + vehicle.throttle*(maxRpm-idleRpm)*0.3
	speedRpm := idleRpm + speed/vehicle.maxSpeed*(maxRpm-idleRpm)

	vehicle.rpm = number.Clamp(math.Max(throttleRpm, speedRpm), idleRpm, maxRpm)
}

// Damage reduces health; reaching zero marks the vehicle destroyed.
// Damaging an already destroyed vehicle is a no-op.
func (vehicle *Vehicle) Damage(amount float64) {
	if vehicle.destroyed || amount <= 0 {
		return
	}

	vehicle.health = number.Clamp(vehicle.health-amount, 0, vehicle.maxHealth)

	notify.PostTimeout(EventVehicleDamaged, VehicleEvent{Vehicle: vehicle, Amount: amount}, time.Millisecond)

	if vehicle.health <= 0 {
		vehicle.destroyed = true
		notify.PostTimeout(EventVehicleDestroyed, VehicleEvent{Vehicle: vehicle}, time.Millisecond)
	}
}

// Repair restores health; a destroyed vehicle comes back once health is
// positive again. Arcade semantics, not strict realism.
func (vehicle *Vehicle) Repair(amount float64) {
	if amount <= 0 {
		return
	}

	vehicle.health = number.Clamp(vehicle.health+amount, 0, vehicle.maxHealth)

	if vehicle.health > 0 && vehicle.destroyed {
		vehicle.destroyed = false
		notify.PostTimeout(EventVehicleRepaired, VehicleEvent{Vehicle: vehicle}, time.Millisecond)
	}
}

func (vehicle *Vehicle) Enter() bool {
	if vehicle.occupied || vehicle.destroyed {
		return false
	}

	vehicle.occupied = true
	notify.PostTimeout(EventVehicleEntered, VehicleEvent{Vehicle: vehicle}, time.Millisecond)

	return true
}

// Exit clears all control inputs and engages the handbrake so an abandoned
// vehicle stops instead of coasting.
func (vehicle *Vehicle) Exit() {
	if !vehicle.occupied {
		return
	}

	vehicle.occupied = false
	vehicle.throttle = 0
	vehicle.brake = 0
	vehicle.steering = 0
	vehicle.handbrake = true

	notify.PostTimeout(EventVehicleExited, VehicleEvent{Vehicle: vehicle}, time.Millisecond)
}
