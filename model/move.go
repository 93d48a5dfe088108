package model

// Direction of a robot move.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) Name() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "n/a"
	}
}

// Step returns the adjacent square in the given direction, wrapping around
// at the board edge.
func (b *Board) Step(sq Square, d Direction) Square {
	switch d {
	case Up:
		sq.Y = (sq.Y + b.Size - 1) % b.Size
	case Down:
		sq.Y = (sq.Y + 1) % b.Size
	case Left:
		sq.X = (sq.X + b.Size - 1) % b.Size
	case Right:
		sq.X = (sq.X + 1) % b.Size
	}
	return sq
}

// AdjacentToWall reports whether a wall blocks leaving sq in the given
// direction. Left and up walls are the right and bottom walls of the
// neighbouring cells.
func (b *Board) AdjacentToWall(sq Square, d Direction) bool {
	switch d {
	case Right:
		return b.Cells[sq.Y][sq.X].Right
	case Down:
		return b.Cells[sq.Y][sq.X].Bottom
	case Left:
		left := b.Step(sq, Left)
		return b.Cells[left.Y][left.X].Right
	case Up:
		up := b.Step(sq, Up)
		return b.Cells[up.Y][up.X].Bottom
	default:
		return false
	}
}

// MoveRobot slides a robot in the given direction until a wall or another
// robot blocks it, and commits the final square to the registry. Returns the
// square the robot ends on.
func MoveRobot(b *Board, r *Registry, c Color, d Direction) Square {
	robot := RobotPiece(c)
	pos, ok := r.Get(robot)
	if !ok {
		return Square{}
	}
	// a board without any wall on the path would wrap around forever
	for steps := 0; steps < b.Size; steps++ {
		if b.AdjacentToWall(pos, d) || r.RobotAt(b.Step(pos, d)) {
			break
		}
		pos = b.Step(pos, d)
	}
	r.Set(robot, pos)
	return pos
}
