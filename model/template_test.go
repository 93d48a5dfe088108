package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSetupPopulatesEveryPiece(t *testing.T) {
	board, registry := DefaultSetup()

	require.Equal(t, BoardSize, board.Size)
	assert.Equal(t, NumPieces, registry.Len())

	targets := 0
	for _, entry := range registry.Pairs() {
		if entry.Piece.Cat == CategoryTarget {
			targets++
		}
		assert.GreaterOrEqual(t, entry.Square.X, 0)
		assert.Less(t, entry.Square.X, BoardSize)
		assert.GreaterOrEqual(t, entry.Square.Y, 0)
		assert.Less(t, entry.Square.Y, BoardSize)
	}
	assert.Equal(t, 17, targets)
}

func TestDefaultSetupRobotsOnCorners(t *testing.T) {
	_, registry := DefaultSetup()
	expect := map[Color]Square{
		Red:    {X: 0, Y: 0},
		Green:  {X: BoardSize - 1, Y: 0},
		Blue:   {X: 0, Y: BoardSize - 1},
		Yellow: {X: BoardSize - 1, Y: BoardSize - 1},
	}
	for color, want := range expect {
		sq, ok := registry.Get(RobotPiece(color))
		require.True(t, ok)
		assert.Equal(t, want, sq)
	}
}

func TestDefaultSetupWalls(t *testing.T) {
	board, _ := DefaultSetup()

	// outer border and center block
	for i := 0; i < BoardSize; i++ {
		assert.True(t, board.At(i, BoardSize-1).Bottom)
		assert.True(t, board.At(BoardSize-1, i).Right)
	}
	assert.True(t, board.At(6, 7).Right)
	assert.True(t, board.At(7, 6).Bottom)

	// a wall from each quarter template, in its rotated place
	assert.True(t, board.At(1, 3).Bottom, "upper left quarter")
	assert.True(t, board.At(4, 1).Right, "upper left quarter")
}

func TestDefaultSetupTargetSquares(t *testing.T) {
	_, registry := DefaultSetup()
	expect := []Entry{
		{Piece: TargetPiece(Triangle, Red), Square: Square{X: 1, Y: 3}},
		{Piece: TargetPiece(Circle, Green), Square: Square{X: 4, Y: 1}},
		{Piece: TargetPiece(SquareShape, Red), Square: Square{X: 11, Y: 2}},
		{Piece: TargetPiece(Circle, Red), Square: Square{X: 14, Y: 11}},
		{Piece: TargetPiece(Hexagon, Yellow), Square: Square{X: 9, Y: 12}},
		{Piece: SpiralPiece(), Square: Square{X: 2, Y: 8}},
	}
	for _, want := range expect {
		sq, ok := registry.Get(want.Piece)
		require.True(t, ok, "%s is placed", want.Piece)
		assert.Equal(t, want.Square, sq, "%s", want.Piece)
	}
}
