package unit_test

import (
	"math"
	"testing"

	"github.com/gehtsoft-usa/go_moaquiz/bmath/unit"
)

func angularBackAndForth(t *testing.T, value float64, units byte) {
	var u unit.Angular
	var e1, e2 error
	var v float64
	u, e1 = unit.CreateAngular(value, units)
	if e1 != nil {
		t.Errorf("Creation failed for %d", units)
		return
	}
	v, e2 = u.Value(units)
	if !(e2 == nil && math.Abs(v-value) < 1e-7 && math.Abs(v-u.In(units)) < 1e-7) {
		t.Errorf("Read back failed for %d", units)
		return
	}
}

func TestAngular(t *testing.T) {
	angularBackAndForth(t, 3, unit.Angular_MOA)
	angularBackAndForth(t, 3, unit.Angular_MIL)
	angularBackAndForth(t, -0.2, unit.Angular_MOA)

	u := unit.MustCreateAngular(1, unit.Angular_MOA)
	if math.Abs(u.MRad()-0.29088820866572157) > 1e-15 {
		t.Errorf("MOA to MIL failed %.17f", u.MRad())
	}
	if u.MOA() != 1 {
		t.Errorf("MOA read back failed %f", u.MOA())
	}

	u = unit.MustCreateAngular(1, unit.Angular_MIL)
	if math.Abs(u.MOA()-1/0.29088820866572157) > 1e-12 {
		t.Errorf("MIL to MOA failed %.17f", u.MOA())
	}
	if u.MRad() != 1 || u.Radians() != 0.001 {
		t.Errorf("MIL read back failed %f", u.MRad())
	}

	if u.String() != "1.000mil" {
		t.Errorf("To string failed: %s", u.String())
	}
	if u.Convert(unit.Angular_MOA).String() != "3.44MOA" {
		t.Errorf("To string failed: %s", u.Convert(unit.Angular_MOA).String())
	}
}

func TestAngularSymmetry(t *testing.T) {
	for _, value := range []float64{0.2, 0.5, 1, 2, 7.25} {
		moa := unit.MustCreateAngular(value, unit.Angular_MOA)
		if math.Abs(moa.Convert(unit.Angular_MIL).MOA()-value) > 1e-12 {
			t.Errorf("MOA symmetry failed for %f", value)
		}
		mil := unit.MustCreateAngular(value, unit.Angular_MIL)
		if math.Abs(mil.Convert(unit.Angular_MOA).MRad()-value) > 1e-12 {
			t.Errorf("MIL symmetry failed for %f", value)
		}
	}
}

func TestAngularKeepsUnits(t *testing.T) {
	u := unit.MustCreateAngular(2, unit.Angular_MOA)
	if u.Units() != unit.Angular_MOA {
		t.Errorf("Units changed to %d", u.Units())
	}
	_ = u.MRad()
	if u.Units() != unit.Angular_MOA || u.In(unit.Angular_MOA) != 2 {
		t.Errorf("Reading MRad coerced the value")
	}
	if u.Convert(unit.Angular_MIL).Units() != unit.Angular_MIL {
		t.Errorf("Convert did not change units")
	}
}

func TestAngularInvalid(t *testing.T) {
	if _, err := unit.CreateAngular(1, 99); err == nil {
		t.Errorf("Unknown units accepted")
	}
	if _, err := unit.CreateAngular(math.NaN(), unit.Angular_MOA); err == nil {
		t.Errorf("NaN accepted")
	}
	if _, err := unit.CreateAngular(math.Inf(-1), unit.Angular_MIL); err == nil {
		t.Errorf("Infinity accepted")
	}
	if unit.MustCreateAngular(1, unit.Angular_MOA).In(99) != 0 {
		t.Errorf("In must return 0 for unknown units")
	}
}

func TestParseAngularUnits(t *testing.T) {
	if u, err := unit.ParseAngularUnits("moa"); err != nil || u != unit.Angular_MOA {
		t.Errorf("moa parse failed")
	}
	if u, err := unit.ParseAngularUnits("mrad"); err != nil || u != unit.Angular_MIL {
		t.Errorf("mrad parse failed")
	}
	if _, err := unit.ParseAngularUnits("degree"); err == nil {
		t.Errorf("degree must not be accepted")
	}
	if unit.AngularUnitsName(unit.Angular_MIL) != "MIL" {
		t.Errorf("Name failed")
	}
}

func TestDistance(t *testing.T) {
	d := unit.MustCreateDistance(0.05, unit.DistanceMeter)
	if math.Abs(d.Centimeters()-5) > 1e-12 || d.Meters() != 0.05 {
		t.Errorf("Conversion failed")
	}
	if d.String() != "0m" || d.Units() != unit.DistanceMeter {
		t.Errorf("To string failed: %s", d.String())
	}
	if d.InCentimeters().String() != "5.00cm" || d.InCentimeters().Meters() != d.Meters() {
		t.Errorf("To string failed: %s", d.InCentimeters().String())
	}

	d = unit.MustCreateDistance(250, unit.DistanceCentimeter)
	if math.Abs(d.Meters()-2.5) > 1e-12 || d.Units() != unit.DistanceCentimeter {
		t.Errorf("Creation from centimeters failed")
	}
	if unit.MustCreateDistance(100, unit.DistanceMeter).String() != "100m" {
		t.Errorf("To string failed: %s", unit.MustCreateDistance(100, unit.DistanceMeter).String())
	}

	if _, err := unit.CreateDistance(math.Inf(1), unit.DistanceMeter); err == nil {
		t.Errorf("Infinity accepted")
	}
	if _, err := unit.CreateDistance(1, 12); err == nil {
		t.Errorf("Unknown unit accepted")
	}
}
