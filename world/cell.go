package world

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Cell is an integer grid position
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the cell offset by dx, dy
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Point returns the cell as a planar point
func (c Cell) Point() orb.Point {
	return orb.Point{float64(c.X), float64(c.Y)}
}

// Distance returns the Euclidean distance between two cells
func (c Cell) Distance(o Cell) float64 {
	return planar.Distance(c.Point(), o.Point())
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Target is a goal cell with an identifier that is unique among live targets
type Target struct {
	Cell
	ID int `json:"id"`
}
