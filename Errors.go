package go_moaquiz

import "fmt"

//DomainError is returned when an input would turn the computation into NaN or infinity
type DomainError struct {
	Field string  //name of the offending input
	Value float64 //the offending value
	Rule  string  //what the value has to satisfy
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("domain error: %s = %v, %s", e.Field, e.Value, e.Rule)
}

//OutOfRangeError is returned when a point falls outside of the target grid
type OutOfRangeError struct {
	X, Y float64 //requested coordinates
	Size int     //grid size along each axis
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("out of range: impact (%v, %v) is outside of the [0,%d]x[0,%d] grid", e.X, e.Y, e.Size-1, e.Size-1)
}
