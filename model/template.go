package model

// The default board is assembled from quadrant templates the same way the
// physical game is built from its four 8x8 quarters. Template coordinates
// are local to the quarter with the template in the upper left; rotating a
// template turns its walls with it.

type Orientation int

const (
	UpperLeft Orientation = iota
	UpperRight
	BottomRight
	BottomLeft
)

// Orientations in assembly order.
var Orientations = [4]Orientation{UpperLeft, UpperRight, BottomRight, BottomLeft}

func (o Orientation) offset(size int) (int, int) {
	half := size / 2
	switch o {
	case UpperLeft:
		return 0, 0
	case UpperRight:
		return half, 0
	case BottomRight:
		return half, half
	default:
		return 0, half
	}
}

type templateWall struct {
	x, y int
	side WallSide
}

type templateTarget struct {
	x, y  int
	piece Piece
}

// Template is one quarter of the board: its walls and targets in local
// coordinates, oriented upper left.
type Template struct {
	walls   []templateWall
	targets []templateTarget
}

// rotated returns the template turned clockwise the given number of times.
func (t Template) rotated(times int) Template {
	half := BoardSize / 2
	for ; times > 0; times-- {
		walls := make([]templateWall, len(t.walls))
		for i, w := range t.walls {
			switch w.side {
			case WallRight:
				walls[i] = templateWall{x: half - w.y - 1, y: w.x, side: WallBottom}
			case WallBottom:
				walls[i] = templateWall{x: half - w.y - 2, y: w.x, side: WallRight}
			}
		}
		targets := make([]templateTarget, len(t.targets))
		for i, tg := range t.targets {
			targets[i] = templateTarget{x: half - tg.y - 1, y: tg.x, piece: tg.piece}
		}
		t.walls = walls
		t.targets = targets
	}
	return t
}

// apply stamps the template onto the board and registry at the given
// orientation.
func (t Template) apply(b *Board, r *Registry, o Orientation) {
	rotated := t.rotated(int(o))
	dx, dy := o.offset(b.Size)
	for _, w := range rotated.walls {
		b.ToggleWall(w.x+dx, w.y+dy, w.side)
	}
	for _, tg := range rotated.targets {
		r.Put(tg.piece, Square{X: tg.x + dx, Y: tg.y + dy})
	}
}

// DefaultTemplates returns one quarter per color in assembly order.
func DefaultTemplates() [4]Template {
	red := Template{
		walls: []templateWall{
			{0, 5, WallBottom}, {1, 3, WallBottom}, {3, 6, WallBottom}, {4, 0, WallBottom}, {5, 4, WallBottom},
			{0, 3, WallRight}, {1, 0, WallRight}, {3, 6, WallRight}, {4, 1, WallRight}, {4, 5, WallRight},
		},
		targets: []templateTarget{
			{1, 3, TargetPiece(Triangle, Red)},
			{3, 6, TargetPiece(Hexagon, Blue)},
			{4, 1, TargetPiece(Circle, Green)},
			{5, 5, TargetPiece(SquareShape, Yellow)},
		},
	}
	blue := Template{
		walls: []templateWall{
			{0, 3, WallBottom}, {2, 3, WallBottom}, {3, 1, WallBottom}, {4, 5, WallBottom}, {5, 3, WallBottom},
			{2, 2, WallRight}, {2, 4, WallRight}, {4, 3, WallRight}, {4, 5, WallRight}, {5, 0, WallRight},
		},
		targets: []templateTarget{
			{2, 4, TargetPiece(SquareShape, Red)},
			{3, 2, TargetPiece(Circle, Yellow)},
			{4, 5, TargetPiece(Hexagon, Green)},
			{5, 3, TargetPiece(Triangle, Blue)},
		},
	}
	green := Template{
		walls: []templateWall{
			{0, 6, WallBottom}, {1, 4, WallBottom}, {3, 0, WallBottom}, {4, 5, WallBottom}, {6, 3, WallBottom},
			{0, 4, WallRight}, {1, 0, WallRight}, {2, 1, WallRight}, {4, 6, WallRight}, {6, 3, WallRight},
		},
		targets: []templateTarget{
			{1, 4, TargetPiece(Circle, Red)},
			{3, 1, TargetPiece(Triangle, Green)},
			{4, 6, TargetPiece(SquareShape, Blue)},
			{6, 3, TargetPiece(Hexagon, Yellow)},
		},
	}
	yellow := Template{
		walls: []templateWall{
			{0, 3, WallBottom}, {1, 5, WallBottom}, {3, 4, WallBottom}, {5, 1, WallBottom}, {6, 4, WallBottom}, {7, 2, WallBottom},
			{1, 6, WallRight}, {2, 0, WallRight}, {3, 4, WallRight}, {4, 1, WallRight}, {5, 5, WallRight}, {7, 2, WallRight},
		},
		targets: []templateTarget{
			{1, 6, TargetPiece(Triangle, Yellow)},
			{3, 4, TargetPiece(Hexagon, Red)},
			{5, 1, TargetPiece(Circle, Blue)},
			{6, 5, TargetPiece(SquareShape, Green)},
			{7, 2, SpiralPiece()},
		},
	}
	return [4]Template{red, blue, green, yellow}
}

// DefaultSetup builds the standard session state: the four default quarters
// assembled clockwise, outer border and center walls set, all 17 targets
// placed and the robots on the four corners.
func DefaultSetup() (*Board, *Registry) {
	board := NewBoard(BoardSize)
	registry := NewRegistry()
	templates := DefaultTemplates()
	for i, o := range Orientations {
		templates[i].apply(board, registry, o)
	}
	board.EncloseBorder()
	board.EncloseCenter()

	registry.Put(RobotPiece(Red), Square{X: 0, Y: 0})
	registry.Put(RobotPiece(Green), Square{X: BoardSize - 1, Y: 0})
	registry.Put(RobotPiece(Blue), Square{X: 0, Y: BoardSize - 1})
	registry.Put(RobotPiece(Yellow), Square{X: BoardSize - 1, Y: BoardSize - 1})
	return board, registry
}
