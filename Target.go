package go_moaquiz

import (
	"strings"

	"github.com/gehtsoft-usa/go_moaquiz/bmath/vector"
)

//GridSize is the number of cells along each side of the target grid
const GridSize = 9

//CenterCell is the index of the central row and column
const CenterCell = GridSize / 2

//Markers used on the target grid
const (
	EmptyMarker  = '+'
	CenterMarker = 'o'
	ImpactMarker = 'x'
)

type grid [GridSize][GridSize]rune

func newGrid() grid {
	var g grid
	for row := range g {
		for col := range g[row] {
			g[row][col] = EmptyMarker
		}
	}
	g[CenterCell][CenterCell] = CenterMarker
	return g
}

//Target is a 9x9 target face with the point of aim in the center and one impact
type Target struct {
	impact vector.Vector
	grid   grid
}

//CreateTarget creates a target with the impact at (x, y).
//
//x selects the column and y the row. Each coordinate is floored to the cell index,
//so (4.9, 4.9) lands on the center cell and replaces the center marker.
//Coordinates outside of [0, GridSize) are reported as OutOfRangeError.
func CreateTarget(x, y float64) (Target, error) {
	impact := vector.Create(x, y)
	if !impact.IsFinite() {
		return Target{}, &OutOfRangeError{X: x, Y: y, Size: GridSize}
	}
	col, row := impact.Cell()
	if col < 0 || col >= GridSize || row < 0 || row >= GridSize {
		return Target{}, &OutOfRangeError{X: x, Y: y, Size: GridSize}
	}
	g := newGrid()
	g[row][col] = ImpactMarker
	return Target{impact: impact, grid: g}, nil
}

//X returns the horizontal impact coordinate
func (t Target) X() float64 {
	return t.impact.X
}

//Y returns the vertical impact coordinate
func (t Target) Y() float64 {
	return t.impact.Y
}

//Impact returns the impact coordinates
func (t Target) Impact() vector.Vector {
	return t.impact
}

//ImpactCell returns the column and the row marked with the impact
func (t Target) ImpactCell() (int, int) {
	return t.impact.Cell()
}

//Cell returns the marker at the column and the row, or 0 if they are outside of the grid
func (t Target) Cell(col, row int) rune {
	if col < 0 || col >= GridSize || row < 0 || row >= GridSize {
		return 0
	}
	return t.grid[row][col]
}

//Render returns the grid row by row, each row terminated by a new line
func (t Target) Render() string {
	var sb strings.Builder
	sb.Grow(GridSize * (GridSize + 1))
	for _, row := range t.grid {
		for _, cell := range row {
			sb.WriteRune(cell)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (t Target) String() string {
	return t.Render()
}
