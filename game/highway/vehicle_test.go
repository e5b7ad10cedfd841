package highway

import (
	"math"
	"testing"
	"time"

	notify "github.com/bitly/go-notify"
	"github.com/stretchr/testify/assert"

	"github.com/motorarena/motorarena/common/utils/vector"
)

func makeTestSpecs() VehicleSpecs {
	return VehicleSpecs{
		Mass:             1000,
		MaxSpeed:         10,
		Acceleration:     50,
		Braking:          20,
		MaxSteeringAngle: 0.5,
		DriveType:        DriveRear,
		MaxHealth:        100,
	}
}

func makeTestVehicle(t *testing.T) *Vehicle {
	vehicle, err := NewVehicle(makeTestSpecs())
	assert.NoError(t, err)

	vehicle.SetupStandardWheels(2.5, 1.6, 0.33)

	return vehicle
}

func TestNewVehicleValidation(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(specs *VehicleSpecs)
		valid  bool
	}{
		{"valid", func(specs *VehicleSpecs) {}, true},
		{"zero mass", func(specs *VehicleSpecs) { specs.Mass = 0 }, false},
		{"negative mass", func(specs *VehicleSpecs) { specs.Mass = -10 }, false},
		{"zero max speed", func(specs *VehicleSpecs) { specs.MaxSpeed = 0 }, false},
		{"zero acceleration", func(specs *VehicleSpecs) { specs.Acceleration = 0 }, false},
		{"zero braking", func(specs *VehicleSpecs) { specs.Braking = 0 }, false},
		{"zero steering angle", func(specs *VehicleSpecs) { specs.MaxSteeringAngle = 0 }, false},
	}

	for _, testCase := range testCases {
		specs := makeTestSpecs()
		testCase.mutate(&specs)

		vehicle, err := NewVehicle(specs)
		if testCase.valid {
			assert.NoError(t, err, testCase.name)
			assert.NotNil(t, vehicle, testCase.name)
		} else {
			assert.Error(t, err, testCase.name)
			assert.Nil(t, vehicle, testCase.name)
		}
	}
}

func TestNewVehicleDefaultHealth(t *testing.T) {
	specs := makeTestSpecs()
	specs.MaxHealth = 0

	vehicle, err := NewVehicle(specs)
	assert.NoError(t, err)
	assert.Equal(t, 100.0, vehicle.GetHealth())
	assert.Equal(t, 100.0, vehicle.GetMaxHealth())
}

func TestVehicleInputClamping(t *testing.T) {
	vehicle := makeTestVehicle(t)

	vehicle.SetThrottle(2).SetBrake(-1).SetSteering(-5)

	assert.Equal(t, 1.0, vehicle.GetThrottle())
	assert.Equal(t, 0.0, vehicle.GetBrake())
	assert.Equal(t, -1.0, vehicle.GetSteering())
}

func TestVehicleSpeedNeverExceedsMax(t *testing.T) {
	vehicle := makeTestVehicle(t)
	vehicle.SetThrottle(1)

	dt := 1.0 / 60
	for i := 0; i < 600; i++ {
		vehicle.UpdatePhysics(dt)
		assert.LessOrEqual(t, vehicle.GetSpeed(), vehicle.GetMaxSpeed()+1e-9)
	}

	// saturated after 10 simulated seconds
	assert.InDelta(t, vehicle.GetMaxSpeed(), vehicle.GetSpeed(), 0.1)
}

func TestVehicleHeadingStaysWrapped(t *testing.T) {
	vehicle := makeTestVehicle(t)
	vehicle.SetThrottle(1).SetSteering(1)

	dt := 1.0 / 60
	for i := 0; i < 1200; i++ {
		vehicle.UpdatePhysics(dt)

		heading := vehicle.GetHeading()
		assert.Greater(t, heading, -math.Pi)
		assert.LessOrEqual(t, heading, math.Pi)
	}
}

func TestVehicleSetHeadingWraps(t *testing.T) {
	vehicle := makeTestVehicle(t)

	vehicle.SetHeading(3 * math.Pi)
	assert.InDelta(t, math.Pi, vehicle.GetHeading(), 1e-9)

	vehicle.SetHeading(-math.Pi / 2)
	assert.InDelta(t, -math.Pi/2, vehicle.GetHeading(), 1e-9)
}

func TestVehicleCreepToStop(t *testing.T) {
	vehicle := makeTestVehicle(t)
	vehicle.SetVelocity(vector.MakeVector3(0, 0, 0.4))

	dt := 1.0 / 60
	for i := 0; i < 120; i++ {
		vehicle.UpdatePhysics(dt)
	}

	assert.Less(t, vehicle.GetSpeed(), 0.1)
}

func TestVehicleBrakeIneffectiveAtLowSpeed(t *testing.T) {
	vehicle := makeTestVehicle(t)
	vehicle.SetVelocity(vector.MakeVector3(0, 0, 0.05))
	vehicle.SetBrake(1)

	vehicle.UpdatePhysics(1.0 / 60)

	// a full brake application would have reversed the velocity sign
	assert.Greater(t, vehicle.GetSpeed(), 0.03)
}

func TestVehicleHandbrakeStops(t *testing.T) {
	vehicle := makeTestVehicle(t)
	vehicle.SetVelocity(vector.MakeVector3(0, 0, 8))
	vehicle.SetHandbrake(true)

	dt := 1.0 / 60
	for i := 0; i < 300; i++ {
		vehicle.UpdatePhysics(dt)
	}

	assert.Less(t, vehicle.GetSpeed(), 0.2)
}

func TestVehicleSteeringReducesWithSpeed(t *testing.T) {
	slow := makeTestVehicle(t)
	slow.SetVelocity(vector.MakeVector3(0, 0, 1)).SetSteering(1)
	slow.UpdatePhysics(1.0 / 60)
	slowTurn := math.Abs(slow.GetHeading())

	fast := makeTestVehicle(t)
	fast.SetVelocity(vector.MakeVector3(0, 0, 9)).SetSteering(1)
	fast.UpdatePhysics(1.0 / 60)

	// the yaw rate grows with speed, but less than proportionally
	fastTurn := math.Abs(fast.GetHeading())
	assert.Less(t, fastTurn, 9*slowTurn)
	assert.Greater(t, fastTurn, slowTurn)
}

func TestVehicleDestroyedIsInert(t *testing.T) {
	vehicle := makeTestVehicle(t)
	vehicle.SetThrottle(1)

	vehicle.Damage(50)
	assert.Equal(t, 50.0, vehicle.GetHealth())
	assert.False(t, vehicle.IsDestroyed())

	vehicle.Damage(80)
	assert.Equal(t, 0.0, vehicle.GetHealth())
	assert.True(t, vehicle.IsDestroyed())

	before := vehicle.GetPosition()
	vehicle.UpdatePhysics(1.0 / 60)
	assert.Equal(t, before, vehicle.GetPosition())

	// damaging a wreck is a no-op
	vehicle.Damage(10)
	assert.Equal(t, 0.0, vehicle.GetHealth())
}

func TestVehicleRepairRevives(t *testing.T) {
	vehicle := makeTestVehicle(t)
	vehicle.Damage(100)
	assert.True(t, vehicle.IsDestroyed())

	vehicle.Repair(30)
	assert.False(t, vehicle.IsDestroyed())
	assert.Equal(t, 30.0, vehicle.GetHealth())

	vehicle.Repair(1000)
	assert.Equal(t, vehicle.GetMaxHealth(), vehicle.GetHealth())

	vehicle.SetThrottle(1)
	vehicle.UpdatePhysics(1.0 / 60)
	assert.Greater(t, vehicle.GetSpeed(), 0.0)
}

func TestVehicleDestroyedEvent(t *testing.T) {
	events := make(chan interface{}, 1)
	notify.Start(EventVehicleDestroyed, events)
	defer notify.Stop(EventVehicleDestroyed, events)

	vehicle := makeTestVehicle(t)
	vehicle.Damage(100)

	select {
	case payload := <-events:
		event, ok := payload.(VehicleEvent)
		assert.True(t, ok)
		assert.Equal(t, vehicle, event.Vehicle)
	case <-time.After(100 * time.Millisecond):
		t.Fatal("expected a destroyed event")
	}
}

func TestVehicleEnterExit(t *testing.T) {
	vehicle := makeTestVehicle(t)

	assert.True(t, vehicle.Enter())
	assert.True(t, vehicle.IsOccupied())
	assert.False(t, vehicle.Enter(), "an occupied vehicle cannot be entered twice")

	vehicle.SetThrottle(1).SetBrake(0.5).SetSteering(-0.5)
	vehicle.Exit()

	assert.False(t, vehicle.IsOccupied())
	assert.Equal(t, 0.0, vehicle.GetThrottle())
	assert.Equal(t, 0.0, vehicle.GetBrake())
	assert.Equal(t, 0.0, vehicle.GetSteering())
	assert.True(t, vehicle.GetHandbrake(), "an abandoned vehicle holds the handbrake")
}

func TestVehicleEnterDestroyed(t *testing.T) {
	vehicle := makeTestVehicle(t)
	vehicle.Damage(100)

	assert.False(t, vehicle.Enter())
}

func TestVehicleRpm(t *testing.T) {
	vehicle := makeTestVehicle(t)
	assert.Equal(t, 800.0, vehicle.GetRpm())

	vehicle.UpdatePhysics(1.0 / 60)
	assert.InDelta(t, 800.0, vehicle.GetRpm(), 15, "near idle at standstill")

	vehicle.SetThrottle(1)
	dt := 1.0 / 60
	for i := 0; i < 600; i++ {
		vehicle.UpdatePhysics(dt)
		assert.GreaterOrEqual(t, vehicle.GetRpm(), 800.0)
		assert.LessOrEqual(t, vehicle.GetRpm(), 6000.0)
	}

	assert.Greater(t, vehicle.GetRpm(), 800.0)
}

func TestVehicleSteeringWheelsTrackInput(t *testing.T) {
	vehicle := makeTestVehicle(t)
	vehicle.SetSteering(0.5)
	vehicle.UpdatePhysics(1.0 / 60)

	for _, wheel := range vehicle.GetWheels() {
		if wheel.IsSteering() {
			assert.InDelta(t, 0.5*0.5, wheel.GetSteeringAngle(), 1e-9)
		} else {
			assert.Equal(t, 0.0, wheel.GetSteeringAngle())
		}
	}
}

func TestVehicleDrivenWheelsSpinUp(t *testing.T) {
	vehicle := makeTestVehicle(t)
	vehicle.SetThrottle(1)

	dt := 1.0 / 60
	for i := 0; i < 10; i++ {
		vehicle.UpdatePhysics(dt)
	}

	for _, wheel := range vehicle.GetWheels() {
		if wheel.IsDrive() {
			assert.Greater(t, wheel.GetAngularVelocity(), 0.0)
		}
	}
}
