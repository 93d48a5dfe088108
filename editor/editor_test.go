package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lireer/ricochet-robot-solver/model"
)

func testConfig() Config {
	return Config{CellSize: 25, OffsetX: 0, OffsetY: 0}
}

func testEditor() *Editor {
	board := model.NewBoard(model.BoardSize)
	registry := model.NewRegistry()
	registry.Put(model.RobotPiece(model.Red), model.Square{X: 1, Y: 3})
	registry.Put(model.RobotPiece(model.Green), model.Square{X: 5, Y: 5})
	registry.Put(model.TargetPiece(model.Circle, model.Blue), model.Square{X: 2, Y: 3})
	registry.Put(model.SpiralPiece(), model.Square{X: 8, Y: 8})
	return NewWith(testConfig(), board, registry)
}

func dragPiece(e *Editor, p model.Piece, fromX, fromY, toX, toY int) Commit {
	e.Press(p, fromX, fromY)
	e.MoveTo(toX, toY)
	return e.Release(toX, toY)
}

func TestDragRoundsPixelDeltaToCells(t *testing.T) {
	e := testEditor()
	red := model.RobotPiece(model.Red)

	// +30,+2 pixels at cellSize 25 is one cell right, zero down
	commit := dragPiece(e, red, 30, 80, 60, 82)
	require.True(t, commit.Active)
	assert.True(t, commit.Moved)
	assert.Equal(t, model.Square{X: 2, Y: 3}, commit.To)

	sq, _ := e.Registry().Get(red)
	assert.Equal(t, model.Square{X: 2, Y: 3}, sq)
}

func TestDragHalfCellRoundsAwayFromZero(t *testing.T) {
	e := testEditor()
	red := model.RobotPiece(model.Red)

	commit := dragPiece(e, red, 30, 80, 30, 80+13)
	assert.Equal(t, model.Square{X: 1, Y: 4}, commit.To)

	commit = dragPiece(e, red, 30, 105, 30, 105-13)
	assert.Equal(t, model.Square{X: 1, Y: 3}, commit.To)
}

func TestNoopDragKeepsSquare(t *testing.T) {
	e := testEditor()
	red := model.RobotPiece(model.Red)

	commit := dragPiece(e, red, 30, 80, 35, 85)
	assert.True(t, commit.Moved)
	assert.Equal(t, commit.From, commit.To)
	sq, _ := e.Registry().Get(red)
	assert.Equal(t, model.Square{X: 1, Y: 3}, sq)
}

func TestDragOutOfBoundsIsRejectedOutright(t *testing.T) {
	e := testEditor()
	red := model.RobotPiece(model.Red)

	// two cells left of column 1 would be column -1; no clamping to 0
	commit := dragPiece(e, red, 30, 80, 30-50, 80)
	require.True(t, commit.Active)
	assert.False(t, commit.Moved)
	sq, _ := e.Registry().Get(red)
	assert.Equal(t, model.Square{X: 1, Y: 3}, sq)
}

func TestDragCollidesWithSameCategoryOnly(t *testing.T) {
	e := testEditor()
	red := model.RobotPiece(model.Red)

	// onto the blue circle target: different category, allowed
	commit := dragPiece(e, red, 30, 80, 30+25, 80)
	assert.True(t, commit.Moved)
	assert.Equal(t, model.Square{X: 2, Y: 3}, commit.To)

	// onto the green robot: same category, rejected
	commit = dragPiece(e, red, 55, 80, 55+3*25, 80+2*25)
	assert.False(t, commit.Moved)
	sq, _ := e.Registry().Get(red)
	assert.Equal(t, model.Square{X: 2, Y: 3}, sq)

	// targets collide with targets
	spiral := model.SpiralPiece()
	commit = dragPiece(e, spiral, 210, 210, 210-6*25, 210-5*25)
	assert.False(t, commit.Moved)

	// but a target may share a robot's square
	commit = dragPiece(e, spiral, 210, 210, 210+0, 210-3*25)
	assert.True(t, commit.Moved)
	assert.Equal(t, model.Square{X: 8, Y: 5}, commit.To)
}

func TestReleaseWithoutDragIsInactive(t *testing.T) {
	e := testEditor()
	commit := e.Release(10, 10)
	assert.False(t, commit.Active)
	assert.False(t, commit.Moved)
}

func TestPressOnAbsentPieceIsIgnored(t *testing.T) {
	e := testEditor()
	e.Press(model.TargetPiece(model.Hexagon, model.Yellow), 10, 10)
	_, dragging := e.Drag()
	assert.False(t, dragging)
}

func TestPieceAtPrefersRobots(t *testing.T) {
	e := testEditor()
	// red robot and blue circle share no square here, but move red onto it
	e.Registry().Set(model.RobotPiece(model.Red), model.Square{X: 2, Y: 3})

	piece, ok := e.PieceAt(2*25+10, 3*25+10)
	require.True(t, ok)
	assert.Equal(t, model.RobotPiece(model.Red), piece)

	_, ok = e.PieceAt(400, 400)
	assert.False(t, ok)
}

func TestPiecePosFollowsDrag(t *testing.T) {
	e := testEditor()
	red := model.RobotPiece(model.Red)

	x, y, ok := e.PiecePos(red)
	require.True(t, ok)
	assert.Equal(t, 25, x)
	assert.Equal(t, 75, y)

	e.Press(red, 30, 80)
	e.MoveTo(37, 90)
	x, y, _ = e.PiecePos(red)
	assert.Equal(t, 25+7, x)
	assert.Equal(t, 75+10, y)

	// other pieces are unaffected while the drag is live
	gx, gy, _ := e.PiecePos(model.RobotPiece(model.Green))
	assert.Equal(t, 125, gx)
	assert.Equal(t, 125, gy)
}

func TestClickWallTogglesNearestEdge(t *testing.T) {
	e := testEditor()

	// just above the bottom edge of cell (3,3)
	require.True(t, e.ClickWall(3*25+12, 4*25-2))
	assert.True(t, e.Board().At(3, 3).Bottom)

	// just right of the right edge of cell (3,3)
	require.True(t, e.ClickWall(4*25+2, 3*25+12))
	assert.True(t, e.Board().At(3, 3).Right)

	// nowhere near an edge
	assert.False(t, e.ClickWall(3*25+12, 3*25+12))
}

func TestClickWallOnTopBorderHitsTheSentinel(t *testing.T) {
	e := testEditor()

	// the top edge of row 0 aliases the bottom flag of the last row
	require.True(t, e.ClickWall(5*25+12, 1))
	assert.True(t, e.Board().At(5, model.BoardSize-1).Bottom)
}

func TestToggleWallPassthrough(t *testing.T) {
	e := testEditor()
	e.ToggleWall(-1, 6, model.WallRight)
	assert.True(t, e.Board().At(model.BoardSize-1, 6).Right)
}

func TestMoveRobotIgnoredWhileDragging(t *testing.T) {
	e := testEditor()
	e.Board().EncloseBorder()
	red := model.RobotPiece(model.Red)

	e.Press(red, 30, 80)
	e.MoveRobot(model.Red, model.Right)
	sq, _ := e.Registry().Get(red)
	assert.Equal(t, model.Square{X: 1, Y: 3}, sq)

	e.Release(30, 80)
	e.MoveRobot(model.Red, model.Left)
	sq, _ = e.Registry().Get(red)
	assert.Equal(t, model.Square{X: 0, Y: 3}, sq)
}

func TestImportFailureLeavesStateUntouched(t *testing.T) {
	e := New(testConfig())
	boardBefore := e.Board().Clone()
	pairsBefore := e.Registry().Pairs()

	err := e.Import("not a board document")
	require.Error(t, err)
	assert.Equal(t, boardBefore, e.Board())
	assert.Equal(t, pairsBefore, e.Registry().Pairs())
	assert.NotEmpty(t, e.ImportError())

	e.DismissImportError()
	assert.Empty(t, e.ImportError())
}

func TestImportReplacesWholeSession(t *testing.T) {
	source := New(testConfig())
	source.ToggleWall(4, 4, model.WallRight)
	doc, err := source.Export()
	require.NoError(t, err)

	e := New(testConfig())
	e.Import("garbage")
	require.NoError(t, e.Import(doc))
	assert.Empty(t, e.ImportError())
	assert.True(t, e.Board().At(4, 4).Right)
	assert.Equal(t, model.NumPieces, e.Registry().Len())
}
