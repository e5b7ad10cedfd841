package vector

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	bettererrors "github.com/xtuc/better-errors"

	"github.com/motorarena/motorarena/common/utils/number"
)

type Vector3 struct {
	x float64
	y float64
	z float64
}

func MakeVector3(x float64, y float64, z float64) Vector3 {
	return Vector3{x, y, z}
}

// Returns a null Vector3
func MakeNullVector3() Vector3 {
	return MakeVector3(0, 0, 0)
}

func (v Vector3) Get() (float64, float64, float64) {
	return v.x, v.y, v.z
}

func (v Vector3) GetX() float64 {
	return v.x
}

func (v Vector3) GetY() float64 {
	return v.y
}

func (v Vector3) GetZ() float64 {
	return v.z
}

func (v Vector3) SetY(y float64) Vector3 {
	v.y = y
	return v
}

func (v Vector3) MarshalJSON() ([]byte, error) {
	propfmt := "%.4f"
	buffer := bytes.NewBufferString("[")
	buffer.WriteString(fmt.Sprintf(propfmt, v.x))
	buffer.WriteString(",")
	buffer.WriteString(fmt.Sprintf(propfmt, v.y))
	buffer.WriteString(",")
	buffer.WriteString(fmt.Sprintf(propfmt, v.z))
	buffer.WriteString("]")
	return buffer.Bytes(), nil
}

func (v Vector3) MarshalJSONString() string {
	json, _ := v.MarshalJSON()
	return string(json)
}

func (v *Vector3) UnmarshalJSON(b []byte) error {
	var floats []float64
	if err := json.Unmarshal(b, &floats); err != nil {
		return err
	}

	if len(floats) != 3 {
		return bettererrors.New("Vector3 must have exactly 3 components")
	}

	v.x = floats[0]
	v.y = floats[1]
	v.z = floats[2]

	return nil
}

func (a Vector3) Clone() Vector3 {
	return Vector3{
		x: a.x,
		y: a.y,
		z: a.z,
	}
}

func (a Vector3) Add(b Vector3) Vector3 {
	a.x += b.x
	a.y += b.y
	a.z += b.z
	return a
}

func (a Vector3) Sub(b Vector3) Vector3 {
	a.x -= b.x
	a.y -= b.y
	a.z -= b.z
	return a
}

func (a Vector3) MultScalar(f float64) Vector3 {
	a.x *= f
	a.y *= f
	a.z *= f
	return a
}

func (a Vector3) DivScalar(f float64) Vector3 {
	a.x /= f
	a.y /= f
	a.z /= f
	return a
}

func (a Vector3) Mag() float64 {
	return math.Sqrt(a.MagSq())
}

func (a Vector3) MagSq() float64 {
	return (a.x*a.x + a.y*a.y + a.z*a.z)
}

func (a Vector3) SetMag(mag float64) Vector3 {
	return a.Normalize().MultScalar(mag)
}

func (a Vector3) Normalize() Vector3 {
	mag := a.Mag()
	if mag > 0 {
		return a.DivScalar(mag)
	}
	return a
}

func (a Vector3) Limit(max float64) Vector3 {
	mSq := a.MagSq()

	if mSq > max*max {
		return a.Normalize().MultScalar(max)
	}

	return a
}

func (a Vector3) Dot(b Vector3) float64 {
	return a.x*b.x + a.y*b.y + a.z*b.z
}

func (a Vector3) Cross(b Vector3) Vector3 {
	return Vector3{
		x: a.y*b.z - a.z*b.y,
		y: a.z*b.x - a.x*b.z,
		z: a.x*b.y - a.y*b.x,
	}
}

// PlaneXZ drops the vertical component; vehicle dynamics run in the
// ground plane.
func (a Vector3) PlaneXZ() Vector2 {
	return MakeVector2(a.x, a.z)
}

func (a Vector3) IsNull() bool {
	return number.IsZero(a.x) && number.IsZero(a.y) && number.IsZero(a.z)
}

func (a Vector3) Equals(b Vector3) bool {
	return number.IsZero(a.x-b.x) && number.IsZero(a.y-b.y) && number.IsZero(a.z-b.z)
}

func (a Vector3) String() string {
	return "<Vector3(" + number.FloatToStr(a.x) + ", " + number.FloatToStr(a.y) + ", " + number.FloatToStr(a.z) + ")>"
}
