package model

// BoardSize is the side length of the standard board.
const BoardSize = 16

type WallSide int

const (
	WallBottom WallSide = iota
	WallRight
)

func (w WallSide) Name() string {
	switch w {
	case WallBottom:
		return "bottom"
	case WallRight:
		return "right"
	default:
		return "n/a"
	}
}

// Cell holds the wall flags of one board square. A cell only stores its
// bottom and right wall; the top and left walls live on the neighbouring
// cells above and to the left. The board wraps around, so the walls of the
// last row/column double as the outer border.
type Cell struct {
	Bottom bool
	Right  bool
}

// Square is a cell coordinate, x to the right, y downwards.
type Square struct {
	X, Y int
}

// Board is a fixed-size matrix of cells, row-major: Cells[y][x].
type Board struct {
	Size  int
	Cells [][]Cell
}

func NewBoard(size int) *Board {
	cells := make([][]Cell, size)
	for y := range cells {
		cells[y] = make([]Cell, size)
	}
	return &Board{Size: size, Cells: cells}
}

func (b *Board) At(x, y int) Cell {
	return b.Cells[y][x]
}

// ToggleWall flips one wall flag in place. The sentinel -1 is accepted for
// either axis and aliases the last column/row, so toggling the virtual
// border wall of column/row -1 toggles the same physical wall as column/row
// Size-1. Any other out-of-range coordinate is a no-op.
func (b *Board) ToggleWall(x, y int, side WallSide) {
	if x == -1 {
		x = b.Size - 1
	}
	if y == -1 {
		y = b.Size - 1
	}
	if x < 0 || x >= b.Size || y < 0 || y >= b.Size {
		return
	}
	switch side {
	case WallBottom:
		b.Cells[y][x].Bottom = !b.Cells[y][x].Bottom
	case WallRight:
		b.Cells[y][x].Right = !b.Cells[y][x].Right
	}
}

// Enclose walls in the rectangle with upper left corner [x, y] and the given
// width and height. The rectangle's border cells keep their inner walls; the
// walls are set on the surrounding edges. Wraps around at the board edge,
// which is how the outer border ends up on the last row/column.
func (b *Board) Enclose(x, y, width, height int) {
	topRow := y - 1
	if y == 0 {
		topRow = b.Size - 1
	}
	bottomRow := y + height - 1
	if y+height > b.Size {
		bottomRow = b.Size - 1
	}
	leftCol := x - 1
	if x == 0 {
		leftCol = b.Size - 1
	}
	rightCol := x + width - 1
	if x+width > b.Size {
		rightCol = b.Size - 1
	}

	for c := x; c < x+width; c++ {
		b.Cells[topRow][c].Bottom = true
		b.Cells[bottomRow][c].Bottom = true
	}
	for r := y; r < y+height; r++ {
		b.Cells[r][leftCol].Right = true
		b.Cells[r][rightCol].Right = true
	}
}

// EncloseBorder sets the outer border walls of the whole board.
func (b *Board) EncloseBorder() {
	b.Enclose(0, 0, b.Size, b.Size)
}

// EncloseCenter sets the walls around the four center squares of the
// standard 16x16 board.
func (b *Board) EncloseCenter() {
	b.Enclose(b.Size/2-1, b.Size/2-1, 2, 2)
}

// Clone returns a deep copy, used to keep the previous session state around
// while an import is attempted.
func (b *Board) Clone() *Board {
	nb := NewBoard(b.Size)
	for y := range b.Cells {
		copy(nb.Cells[y], b.Cells[y])
	}
	return nb
}
