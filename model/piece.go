package model

import "fmt"

// Color of a robot or of a colored target.
type Color int

const (
	Red Color = iota
	Green
	Blue
	Yellow
)

// Colors in rank order.
var Colors = [4]Color{Red, Green, Blue, Yellow}

func (c Color) Name() string {
	switch c {
	case Red:
		return "Red"
	case Green:
		return "Green"
	case Blue:
		return "Blue"
	case Yellow:
		return "Yellow"
	default:
		return fmt.Sprintf("n/a:%d", c)
	}
}

func ParseColor(s string) (Color, bool) {
	for _, c := range Colors {
		if c.Name() == s {
			return c, true
		}
	}
	return 0, false
}

// Shape of a target. The spiral is the single colorless target.
type Shape int

const (
	Spiral Shape = iota
	Circle
	SquareShape
	Triangle
	Hexagon
)

// Shapes in rank order.
var Shapes = [5]Shape{Spiral, Circle, SquareShape, Triangle, Hexagon}

func (s Shape) Name() string {
	switch s {
	case Spiral:
		return "Spiral"
	case Circle:
		return "Circle"
	case SquareShape:
		return "Square"
	case Triangle:
		return "Triangle"
	case Hexagon:
		return "Hexagon"
	default:
		return fmt.Sprintf("n/a:%d", s)
	}
}

func ParseShape(s string) (Shape, bool) {
	for _, sh := range Shapes {
		if sh.Name() == s {
			return sh, true
		}
	}
	return 0, false
}

// Category splits the piece set for the collision rule: robots only collide
// with robots, targets only with targets.
type Category int

const (
	CategoryRobot Category = iota
	CategoryTarget
)

// Piece identifies one placeable object: a robot of a color or a target of
// a shape (and, except for the spiral, a color). The set is closed; every
// piece has a fixed rank used for deterministic iteration and as an array
// index, so pieces never need to serve as hash keys.
type Piece struct {
	Cat   Category
	Shape Shape // targets only
	Color Color // zero for the spiral
}

func RobotPiece(c Color) Piece {
	return Piece{Cat: CategoryRobot, Color: c}
}

func TargetPiece(s Shape, c Color) Piece {
	if s == Spiral {
		// canonical form, the spiral has no color
		c = Red
	}
	return Piece{Cat: CategoryTarget, Shape: s, Color: c}
}

func SpiralPiece() Piece {
	return TargetPiece(Spiral, Red)
}

// NumPieces is the size of the closed piece set: 4 robots and 17 targets.
const NumPieces = 21

// Rank is the total order over pieces: the four robots first, then the
// spiral, then circle, square, triangle and hexagon targets, colors ordered
// red, green, blue, yellow within a shape.
func (p Piece) Rank() int {
	if p.Cat == CategoryRobot {
		return int(p.Color)
	}
	if p.Shape == Spiral {
		return 4
	}
	return 5 + (int(p.Shape)-1)*4 + int(p.Color)
}

// PieceByRank is the inverse of Rank.
func PieceByRank(rank int) Piece {
	if rank < 4 {
		return RobotPiece(Color(rank))
	}
	if rank == 4 {
		return SpiralPiece()
	}
	rank -= 5
	return TargetPiece(Shape(rank/4+1), Color(rank%4))
}

func (p Piece) String() string {
	if p.Cat == CategoryRobot {
		return p.Color.Name() + " robot"
	}
	if p.Shape == Spiral {
		return "Spiral"
	}
	return p.Color.Name() + " " + p.Shape.Name()
}
