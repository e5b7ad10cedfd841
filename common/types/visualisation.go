package types

import (
	"github.com/motorarena/motorarena/common/utils/vector"
)

type VizMessage struct {
	SimID   string
	Objects []VizMessageObject
}

type VizMessageObject struct {
	Id       string
	Type     string
	Position vector.Vector3
	Velocity vector.Vector3
	Heading  float64
	Speed    float64
	Rpm      float64
	Health   float64
	Wheels   []VizMessageWheel
}

type VizMessageWheel struct {
	Compression   float64
	Rotation      float64
	SteeringAngle float64
	IsSlipping    bool
}
