//The package provides simple operations on 2d vectors
//used to place and offset points of impact on a target face
package vector

import (
	"fmt"
	"math"
)

//2D vector structure
//
//X grows to the right, Y grows as the grid rows do
type Vector struct {
	X float64 //X-coordinate
	Y float64 //Y-coordinate
}

//Converts a vector into a string
func (v Vector) String() string {
	return fmt.Sprintf("[X=%f,Y=%f]", v.X, v.Y)
}

//Creates a vector from its coordinates
func Create(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

//Adds two vectors
func (a Vector) Add(b Vector) Vector {
	return Create(a.X+b.X, a.Y+b.Y)
}

//Returns a vector mirrored over the X axis, turning an "up is positive" offset into grid rows
func (v Vector) FlipY() Vector {
	return Create(v.X, -v.Y)
}

//Returns true when both coordinates are neither NaN nor infinite
func (v Vector) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

//Returns the integer cell which contains the point (floor of each coordinate)
func (v Vector) Cell() (int, int) {
	return int(math.Floor(v.X)), int(math.Floor(v.Y))
}
