package highway

import (
	"math"

	"github.com/motorarena/motorarena/common/utils/number"
	"github.com/motorarena/motorarena/common/utils/vector"
)

// Nominal wheel mass used for the inertia term; wheels are not simulated
// as independent rigid bodies.
const wheelNominalMass = 10.0

// Wheel owns the suspension, friction and runtime slip/rotation state of a
// single wheel. It has no dependency on the vehicle that carries it; the
// vehicle feeds it ground distance and torque every tick.
type Wheel struct {
	offset           vector.Vector3 // from vehicle center
	radius           float64
	width            float64
	suspensionLength float64 // rest length
	stiffness        float64
	damping          float64
	friction         float64
	gripMultiplier   float64
	isDrive          bool
	isSteering       bool

	compression     float64 // in [0, 1], re-derived every tick
	rotation        float64 // in [0, 2π)
	steeringAngle   float64
	slipRatio       float64
	slipAngle       float64
	angularVelocity float64
	grounded        bool
}

func NewWheel(offset vector.Vector3, radius float64, width float64) *Wheel {
	return &Wheel{
		offset:           offset,
		radius:           radius,
		width:            width,
		suspensionLength: 0.3,
		stiffness:        35000,
		damping:          4500,
		friction:         1.0,
		gripMultiplier:   1.0,
	}
}

func (wheel *Wheel) SetSuspension(restLength float64, stiffness float64, damping float64) *Wheel {
	wheel.suspensionLength = restLength
	wheel.stiffness = stiffness
	wheel.damping = damping
	return wheel
}

func (wheel *Wheel) SetFriction(friction float64) *Wheel {
	wheel.friction = friction
	return wheel
}

func (wheel *Wheel) SetGripMultiplier(gripMultiplier float64) *Wheel {
	wheel.gripMultiplier = gripMultiplier
	return wheel
}

func (wheel *Wheel) SetDrive(isDrive bool) *Wheel {
	wheel.isDrive = isDrive
	return wheel
}

func (wheel *Wheel) SetSteering(isSteering bool) *Wheel {
	wheel.isSteering = isSteering
	return wheel
}

func (wheel Wheel) GetOffset() vector.Vector3 {
	return wheel.offset
}

func (wheel Wheel) GetRadius() float64 {
	return wheel.radius
}

func (wheel Wheel) GetWidth() float64 {
	return wheel.width
}

func (wheel Wheel) GetSuspensionLength() float64 {
	return wheel.suspensionLength
}

func (wheel Wheel) IsDrive() bool {
	return wheel.isDrive
}

func (wheel Wheel) IsSteering() bool {
	return wheel.isSteering
}

func (wheel Wheel) GetCompression() float64 {
	return wheel.compression
}

func (wheel Wheel) GetRotation() float64 {
	return wheel.rotation
}

func (wheel Wheel) GetSteeringAngle() float64 {
	return wheel.steeringAngle
}

func (wheel *Wheel) SetSteeringAngle(angle float64) *Wheel {
	wheel.steeringAngle = angle
	return wheel
}

func (wheel Wheel) GetSlipRatio() float64 {
	return wheel.slipRatio
}

func (wheel Wheel) GetSlipAngle() float64 {
	return wheel.slipAngle
}

func (wheel *Wheel) SetSlip(slipRatio float64, slipAngle float64) *Wheel {
	wheel.slipRatio = slipRatio
	wheel.slipAngle = slipAngle
	return wheel
}

func (wheel Wheel) GetAngularVelocity() float64 {
	return wheel.angularVelocity
}

func (wheel Wheel) IsGrounded() bool {
	return wheel.grounded
}

// Update recomputes grounded state, compression and angular velocity from
// this tick's ground distance and torques. Compression is never carried
// over; only the previous value survives between ticks.
func (wheel *Wheel) Update(groundDistance float64, driveTorque float64, brakeTorque float64, dt float64) {
	wheel.grounded = groundDistance < wheel.suspensionLength+wheel.radius
	wheel.compression = number.Clamp(
		(wheel.suspensionLength+wheel.radius-groundDistance)/wheel.suspensionLength,
		0, 1,
	)

	if driveTorque != 0 || brakeTorque != 0 {
		netTorque := driveTorque - brakeTorque*number.Sign(wheel.angularVelocity)
		inertia := 0.5 * wheelNominalMass * wheel.radius * wheel.radius
		wheel.angularVelocity += netTorque / inertia * dt
	} else if wheel.grounded {
		// rolling friction approximation
		wheel.angularVelocity *= (1 - 2*dt)
	} else {
		// air drag approximation
		wheel.angularVelocity *= (1 - 0.5*dt)
	}

	wheel.rotation = number.WrapToTwoPi(wheel.rotation + wheel.angularVelocity*dt)
}

// CalculateGrip evaluates a three-segment piecewise approximation of a
// Pacejka tire curve over the combined slip: linear ramp below 0.1, peak
// plateau to 0.3, then a decay floored at 0.4.
func (wheel Wheel) CalculateGrip() float64 {
	if !wheel.grounded {
		return 0
	}

	s := math.Sqrt(wheel.slipRatio*wheel.slipRatio + wheel.slipAngle*wheel.slipAngle)

	var curve float64
	switch {
	case s < 0.1:
		curve = 10 * s
	case s < 0.3:
		curve = 1.0
	default:
		curve = math.Max(0.4, 1.0-0.5*(s-0.3))
	}

	return curve * wheel.friction * wheel.gripMultiplier
}

func (wheel Wheel) IsSlipping() bool {
	s := math.Sqrt(wheel.slipRatio*wheel.slipRatio + wheel.slipAngle*wheel.slipAngle)
	return s > 0.15
}

// GetSuspensionForce is the pure spring term; no damping force is computed.
func (wheel Wheel) GetSuspensionForce() float64 {
	return wheel.stiffness * wheel.compression * wheel.suspensionLength
}

func (wheel *Wheel) ResetState() {
	wheel.compression = 0
	wheel.rotation = 0
	wheel.steeringAngle = 0
	wheel.slipRatio = 0
	wheel.slipAngle = 0
	wheel.angularVelocity = 0
	wheel.grounded = false
}
