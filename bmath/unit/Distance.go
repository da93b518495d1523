package unit

import (
	"fmt"
	"math"
)

//DistanceCentimeter is the value indicating that the distance value is set in centimeters
const DistanceCentimeter byte = 16

//DistanceMeter is the value indicating that the distance value is set in meters
const DistanceMeter byte = 17

//centimetersInMeter is the scale between the two supported distance units
const centimetersInMeter = 100

//Distance keeps a length in meters and the units it is shown in.
//
//Distances to the target are shown in meters, drops in centimeters.
type Distance struct {
	meters float64
	shown  byte
}

//CreateDistance creates a distance value from meters or centimeters.
//NaN and infinite values are rejected.
func CreateDistance(value float64, units byte) (Distance, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Distance{}, fmt.Errorf("Distance: value %v is not finite", value)
	}
	switch units {
	case DistanceMeter:
		return Distance{meters: value, shown: units}, nil
	case DistanceCentimeter:
		return Distance{meters: value / centimetersInMeter, shown: units}, nil
	default:
		return Distance{}, fmt.Errorf("Distance: unit %d is not supported", units)
	}
}

//MustCreateDistance creates the distance value but panics instead of returned a error
func MustCreateDistance(value float64, units byte) Distance {
	v, err := CreateDistance(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Meters returns the distance in meters
func (v Distance) Meters() float64 {
	return v.meters
}

//Centimeters returns the distance in centimeters
func (v Distance) Centimeters() float64 {
	return v.meters * centimetersInMeter
}

//InCentimeters returns the same distance shown in centimeters
func (v Distance) InCentimeters() Distance {
	return Distance{meters: v.meters, shown: DistanceCentimeter}
}

//Units return the units in which the value is shown
func (v Distance) Units() byte {
	return v.shown
}

//String shows centimeters with two decimals and meters as a whole number
func (v Distance) String() string {
	if v.shown == DistanceCentimeter {
		return fmt.Sprintf("%.2fcm", v.Centimeters())
	}
	return fmt.Sprintf("%.0fm", v.Meters())
}
