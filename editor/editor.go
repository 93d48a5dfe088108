// Package editor holds the board editing core: the drag placement engine,
// wall toggling and the solver document codec. It consumes pixel coordinates
// from the input layer and owns the pixel-to-cell conversion; rendering is
// left entirely to the caller.
package editor

import (
	"math"

	"github.com/Lireer/ricochet-robot-solver/model"
)

// Config carries the pixel geometry of the rendered board.
type Config struct {
	CellSize int
	OffsetX  int
	OffsetY  int
}

// Drag is the state of one in-progress piece drag. The piece's committed
// square stays untouched until release; the render layer draws the piece at
// its committed origin shifted by the pixel delta.
type Drag struct {
	Piece    model.Piece
	StartX   int
	StartY   int
	CurrentX int
	CurrentY int
}

// Commit is the outcome of releasing a drag. A rejected move (out of bounds
// or colliding with a same-category piece) is not an error, just Moved=false
// with To == From.
type Commit struct {
	Active bool // a drag was in progress
	Moved  bool
	Piece  model.Piece
	From   model.Square
	To     model.Square
}

// Editor is the session state: board, piece registry and the optional drag.
// All event handlers are synchronous; the editor is owned by a single
// goroutine.
type Editor struct {
	cfg       Config
	board     *model.Board
	registry  *model.Registry
	dragging  bool
	drag      Drag
	importErr string
}

// New creates an editor on the default board setup.
func New(cfg Config) *Editor {
	board, registry := model.DefaultSetup()
	return NewWith(cfg, board, registry)
}

func NewWith(cfg Config, board *model.Board, registry *model.Registry) *Editor {
	return &Editor{cfg: cfg, board: board, registry: registry}
}

func (e *Editor) Board() *model.Board       { return e.board }
func (e *Editor) Registry() *model.Registry { return e.registry }
func (e *Editor) CellSize() int             { return e.cfg.CellSize }

// Drag returns the active drag session, if any.
func (e *Editor) Drag() (Drag, bool) {
	return e.drag, e.dragging
}

// CellOrigin converts a square to the pixel position of its top left corner.
func (e *Editor) CellOrigin(sq model.Square) (int, int) {
	return e.cfg.OffsetX + sq.X*e.cfg.CellSize, e.cfg.OffsetY + sq.Y*e.cfg.CellSize
}

// PiecePos returns the pixel position a piece should be rendered at: its
// committed origin, shifted by the pointer delta while the piece is being
// dragged.
func (e *Editor) PiecePos(p model.Piece) (int, int, bool) {
	sq, ok := e.registry.Get(p)
	if !ok {
		return 0, 0, false
	}
	x, y := e.CellOrigin(sq)
	if e.dragging && e.drag.Piece == p {
		x += e.drag.CurrentX - e.drag.StartX
		y += e.drag.CurrentY - e.drag.StartY
	}
	return x, y, true
}

// PieceAt hit-tests the registry against a pixel position. Robots rank
// before targets and are drawn on top, so the first hit in rank order is the
// piece under the pointer.
func (e *Editor) PieceAt(px, py int) (model.Piece, bool) {
	for _, entry := range e.registry.Pairs() {
		x, y := e.CellOrigin(entry.Square)
		if px >= x && px < x+e.cfg.CellSize && py >= y && py < y+e.cfg.CellSize {
			return entry.Piece, true
		}
	}
	return model.Piece{}, false
}

// Press starts a drag on the given piece. Ignored while another drag is
// active or if the piece is not placed.
func (e *Editor) Press(p model.Piece, px, py int) {
	if e.dragging {
		return
	}
	if _, ok := e.registry.Get(p); !ok {
		return
	}
	e.dragging = true
	e.drag = Drag{Piece: p, StartX: px, StartY: py, CurrentX: px, CurrentY: py}
}

// MoveTo updates the pointer position of the active drag.
func (e *Editor) MoveTo(px, py int) {
	if !e.dragging {
		return
	}
	e.drag.CurrentX = px
	e.drag.CurrentY = py
}

// Release commits the active drag. The pixel delta is converted to a cell
// delta with math.Round, which rounds halves away from zero, so an exact
// half-cell drag moves the piece. A candidate outside the board is rejected
// outright, never clamped; a candidate occupied by another piece of the same
// category is rejected as well. Rejection is a silent snap back.
func (e *Editor) Release(px, py int) Commit {
	if !e.dragging {
		return Commit{}
	}
	e.drag.CurrentX = px
	e.drag.CurrentY = py
	d := e.drag
	e.dragging = false

	from, _ := e.registry.Get(d.Piece)
	candidate := model.Square{
		X: from.X + roundToCells(d.CurrentX-d.StartX, e.cfg.CellSize),
		Y: from.Y + roundToCells(d.CurrentY-d.StartY, e.cfg.CellSize),
	}
	commit := Commit{Active: true, Piece: d.Piece, From: from, To: from}

	if candidate.X < 0 || candidate.X >= e.board.Size ||
		candidate.Y < 0 || candidate.Y >= e.board.Size {
		return commit
	}
	for _, entry := range e.registry.Pairs() {
		if entry.Piece == d.Piece || entry.Piece.Cat != d.Piece.Cat {
			continue
		}
		if entry.Square == candidate {
			return commit
		}
	}
	e.registry.Set(d.Piece, candidate)
	commit.To = candidate
	commit.Moved = true
	return commit
}

func roundToCells(pixels, cellSize int) int {
	return int(math.Round(float64(pixels) / float64(cellSize)))
}

// ToggleWall toggles a wall by cell coordinate, including the -1 boundary
// sentinel. Out-of-range coordinates are ignored.
func (e *Editor) ToggleWall(x, y int, side model.WallSide) {
	e.board.ToggleWall(x, y, side)
}

// ClickWall resolves a pixel position to the nearest cell edge and toggles
// that wall. A click close to the top or left edge of a cell toggles the
// neighbour's bottom/right flag, which for row/column 0 lands on the -1
// sentinel and so toggles the outer border. Returns whether an edge was
// close enough to the click.
func (e *Editor) ClickWall(px, py int) bool {
	cell := e.cfg.CellSize
	rx := px - e.cfg.OffsetX
	ry := py - e.cfg.OffsetY
	cx := floorDiv(rx, cell)
	cy := floorDiv(ry, cell)
	fx := rx - cx*cell
	fy := ry - cy*cell
	tolerance := cell / 4

	type hit struct {
		dist int
		x, y int
		side model.WallSide
	}
	best := hit{dist: tolerance + 1}
	consider := func(dist, x, y int, side model.WallSide) {
		if dist <= tolerance && dist < best.dist {
			best = hit{dist: dist, x: x, y: y, side: side}
		}
	}
	consider(fy, cx, cy-1, model.WallBottom)
	consider(cell-fy, cx, cy, model.WallBottom)
	consider(fx, cx-1, cy, model.WallRight)
	consider(cell-fx, cx, cy, model.WallRight)
	if best.dist > tolerance {
		return false
	}
	e.board.ToggleWall(best.x, best.y, best.side)
	return true
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// MoveRobot slides a robot until a wall or another robot stops it. Ignored
// while a drag is active, the drag owns the session until release.
func (e *Editor) MoveRobot(c model.Color, d model.Direction) {
	if e.dragging {
		return
	}
	model.MoveRobot(e.board, e.registry, c, d)
}

// Import decodes a solver board document and replaces the whole session
// state with it. On failure the previous board and registry are kept
// untouched and the error is stored for display.
func (e *Editor) Import(raw string) error {
	board, registry, err := Decode(raw)
	if err != nil {
		e.importErr = err.Error()
		return err
	}
	e.board = board
	e.registry = registry
	e.dragging = false
	e.importErr = ""
	return nil
}

// Export renders the session state as a solver board document.
func (e *Editor) Export() (string, error) {
	return Encode(e.board, e.registry)
}

// ImportError returns the message of the last failed import, empty after a
// successful import or a dismissal.
func (e *Editor) ImportError() string { return e.importErr }

func (e *Editor) DismissImportError() { e.importErr = "" }
