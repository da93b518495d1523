package unit

import (
	"fmt"
	"math"
)

//Angular_MOA is the value indicating that the angle is set in minutes of angle (1/60 of a degree)
const Angular_MOA byte = 2

//Angular_MIL is the value indicating that the angle is set in milliradians (1/1000 of a radian)
const Angular_MIL byte = 4

//MOAToMIL is the number of milliradians in one minute of angle
const MOAToMIL = math.Pi / (180 * 60) * 1000

//Angular keeps an angle together with the units it was set in.
//
//The value is never converted implicitly: MOA() and MRad() compute
//the equivalent magnitude on each call and Convert() returns a new value.
type Angular struct {
	value float64
	units byte
}

func angularToMRad(value float64, units byte) (float64, error) {
	switch units {
	case Angular_MOA:
		return value * MOAToMIL, nil
	case Angular_MIL:
		return value, nil
	default:
		return 0, fmt.Errorf("Angular: unit %d is not supported", units)
	}
}

func angularFromMRad(value float64, units byte) (float64, error) {
	switch units {
	case Angular_MOA:
		return value / MOAToMIL, nil
	case Angular_MIL:
		return value, nil
	default:
		return 0, fmt.Errorf("Angular: unit %d is not supported", units)
	}
}

//CreateAngular creates an angular value.
//
//units are measurement unit and may be unit.Angular_MOA or unit.Angular_MIL.
//NaN and infinite values are rejected.
func CreateAngular(value float64, units byte) (Angular, error) {
	if _, err := angularToMRad(value, units); err != nil {
		return Angular{}, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Angular{}, fmt.Errorf("Angular: value %v is not finite", value)
	}
	return Angular{value: value, units: units}, nil
}

//MustCreateAngular creates the angular value but panics instead of returned a error
func MustCreateAngular(value float64, units byte) Angular {
	v, err := CreateAngular(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//MOA returns the magnitude of the angle in minutes of angle
func (v Angular) MOA() float64 {
	if v.units == Angular_MIL {
		return v.value / MOAToMIL
	}
	return v.value
}

//MRad returns the magnitude of the angle in milliradians
func (v Angular) MRad() float64 {
	if v.units == Angular_MOA {
		return v.value * MOAToMIL
	}
	return v.value
}

//Radians returns the magnitude of the angle in radians
func (v Angular) Radians() float64 {
	return v.MRad() / 1000
}

//Value returns the value of the angle in the specified units.
//
//The method returns a error in case the unit is
//not supported.
func (v Angular) Value(units byte) (float64, error) {
	if units == v.units {
		return v.value, nil
	}
	mrad, err := angularToMRad(v.value, v.units)
	if err != nil {
		return 0, err
	}
	return angularFromMRad(mrad, units)
}

//In converts the value in the specified units.
//Returns 0 if unit conversion is not possible.
func (v Angular) In(units byte) float64 {
	x, e := v.Value(units)
	if e != nil {
		return 0
	}
	return x
}

//Convert returns the same angle expressed in the specified units.
//
//The receiver is returned unchanged if the units are not supported.
func (v Angular) Convert(units byte) Angular {
	x, e := v.Value(units)
	if e != nil {
		return v
	}
	return Angular{value: x, units: units}
}

//Units return the units in which the value is measured
func (v Angular) Units() byte {
	return v.units
}

func (v Angular) String() string {
	switch v.units {
	case Angular_MOA:
		return fmt.Sprintf("%.2fMOA", v.value)
	case Angular_MIL:
		return fmt.Sprintf("%.3fmil", v.value)
	default:
		return "!error: default units aren't correct"
	}
}

//AngularUnitsName returns the short display name of the angular units
func AngularUnitsName(units byte) string {
	switch units {
	case Angular_MOA:
		return "MOA"
	case Angular_MIL:
		return "MIL"
	default:
		return "?"
	}
}

//ParseAngularUnits converts a unit name ("moa", "mil", "mrad") into the unit constant
func ParseAngularUnits(name string) (byte, error) {
	switch name {
	case "moa", "MOA":
		return Angular_MOA, nil
	case "mil", "MIL", "mrad", "MRAD":
		return Angular_MIL, nil
	default:
		return 0, fmt.Errorf("Angular: unit name %q is not supported", name)
	}
}
