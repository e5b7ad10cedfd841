package number

import (
	"math"
	"strconv"
)

const epsilon = 1e-8

func IsZero(f float64) bool {
	return math.Abs(f) < epsilon
}

func ToFixed(val float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	digit := pow * val

	var round float64
	if _, div := math.Modf(digit); div >= 0.5 {
		round = math.Ceil(digit)
	} else {
		round = math.Floor(digit)
	}

	return round / pow
}

func FloatToStr(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

func Clamp(val float64, min float64, max float64) float64 {
	if val < min {
		return min
	}

	if val > max {
		return max
	}

	return val
}

func DegreeToRadian(degree float64) float64 {
	return degree * math.Pi / 180.0
}

func RadianToDegree(radian float64) float64 {
	return radian * 180.0 / math.Pi
}

// WrapToPi wraps an angle to (-π, π]; headings use this range.
func WrapToPi(angle float64) float64 {
	wrapped := math.Mod(angle, 2*math.Pi)

	if wrapped > math.Pi {
		wrapped -= 2 * math.Pi
	} else if wrapped <= -math.Pi {
		wrapped += 2 * math.Pi
	}

	return wrapped
}

// WrapToTwoPi wraps an angle to [0, 2π); wheel rotation uses this range.
func WrapToTwoPi(angle float64) float64 {
	wrapped := math.Mod(angle, 2*math.Pi)

	if wrapped < 0 {
		wrapped += 2 * math.Pi
	}

	return wrapped
}

func Sign(f float64) float64 {
	if f > 0 {
		return 1
	}

	if f < 0 {
		return -1
	}

	return 0
}
