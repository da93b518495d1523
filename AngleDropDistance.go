package go_moaquiz

import (
	"fmt"
	"math"

	"github.com/gehtsoft-usa/go_moaquiz/bmath/unit"
)

//AngleDropDistance keeps an angle, the distance to the target and the
//drop which the angle subtends at that distance.
//
//The distance and the drop are kept in meters.
//The drop always equals distance * tan(angle).
type AngleDropDistance struct {
	angle    unit.Angular
	distance float64
	drop     float64
}

func isFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}

func validateDistance(distance float64) error {
	if !isFinite(distance) || distance <= 0 {
		return &DomainError{Field: "distance", Value: distance, Rule: "must be finite and greater than zero"}
	}
	return nil
}

//CreateFromAngleAndDistance calculates the drop an angle subtends at the distance (in meters)
//
//The angle keeps its units and must be tagged as MOA or MIL.
//Angles close to 90 degrees produce a huge drop; an infinite one is reported as DomainError.
func CreateFromAngleAndDistance(angle unit.Angular, distance float64) (AngleDropDistance, error) {
	if err := validateDistance(distance); err != nil {
		return AngleDropDistance{}, err
	}
	if units := angle.Units(); units != unit.Angular_MOA && units != unit.Angular_MIL {
		return AngleDropDistance{}, &DomainError{Field: "angle units", Value: float64(units), Rule: "must be MOA or MIL"}
	}
	mrad := angle.MRad()
	if !isFinite(mrad) {
		return AngleDropDistance{}, &DomainError{Field: "angle", Value: mrad, Rule: "must be finite"}
	}
	drop := distance * math.Tan(mrad/1000)
	if !isFinite(drop) {
		return AngleDropDistance{}, &DomainError{Field: "drop", Value: drop, Rule: "must be finite, the angle is too close to 90 degrees"}
	}
	return AngleDropDistance{angle: angle, distance: distance, drop: drop}, nil
}

//CreateFromDropAndDistance calculates the angle which the drop subtends at the distance (both in meters)
//
//The angle is returned in milliradians.
func CreateFromDropAndDistance(drop float64, distance float64) (AngleDropDistance, error) {
	if err := validateDistance(distance); err != nil {
		return AngleDropDistance{}, err
	}
	if !isFinite(drop) {
		return AngleDropDistance{}, &DomainError{Field: "drop", Value: drop, Rule: "must be finite"}
	}
	mrad := math.Atan(drop/distance) * 1000
	angle, err := unit.CreateAngular(mrad, unit.Angular_MIL)
	if err != nil {
		return AngleDropDistance{}, err
	}
	return AngleDropDistance{angle: angle, distance: distance, drop: drop}, nil
}

//MustCreateFromAngleAndDistance is CreateFromAngleAndDistance which panics instead of returning a error
func MustCreateFromAngleAndDistance(angle unit.Angular, distance float64) AngleDropDistance {
	v, err := CreateFromAngleAndDistance(angle, distance)
	if err != nil {
		panic(err)
	}
	return v
}

//Angle returns the angle
func (v AngleDropDistance) Angle() unit.Angular {
	return v.angle
}

//Distance returns the distance to the target in meters
func (v AngleDropDistance) Distance() float64 {
	return v.distance
}

//Drop returns the drop in meters
func (v AngleDropDistance) Drop() float64 {
	return v.drop
}

//DropInCentimeters returns the drop in centimeters
func (v AngleDropDistance) DropInCentimeters() float64 {
	return v.drop * 100
}

func (v AngleDropDistance) String() string {
	return fmt.Sprintf("%s at %s: %s",
		v.angle,
		unit.MustCreateDistance(v.distance, unit.DistanceMeter),
		unit.MustCreateDistance(v.drop, unit.DistanceMeter).InCentimeters())
}
