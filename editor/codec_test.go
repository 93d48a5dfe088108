package editor

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lireer/ricochet-robot-solver/model"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	board, registry := model.DefaultSetup()
	board.ToggleWall(2, 2, model.WallRight)

	doc, err := Encode(board, registry)
	require.NoError(t, err)

	decodedBoard, decodedRegistry, err := Decode(doc)
	require.NoError(t, err)
	assert.Equal(t, board.Cells, decodedBoard.Cells, "wall flags survive bit for bit")
	assert.Equal(t, registry.Pairs(), decodedRegistry.Pairs())
	assert.Equal(t, model.NumPieces, decodedRegistry.Len())
}

// smallDoc builds a syntactically valid 2x2 document that the tests then
// break in one targeted way.
func smallDoc(fieldCell, targetCell string) string {
	plain := `{"bottom":false,"right":false}`
	fields := fmt.Sprintf(`[[%s,%s],[%s,%s]]`, plain, fieldCell, plain, plain)
	targets := fmt.Sprintf(`[[null,%s],[null,null]]`, targetCell)
	return fmt.Sprintf(`[[[0,0],[1,0],[0,1],[1,1]],{"fields":%s,"targets":%s}]`, fields, targets)
}

func TestDecodeWellFormedSmallDoc(t *testing.T) {
	board, registry, err := Decode(smallDoc(`{"bottom":true,"right":false}`, `{"variant":"Spiral","fields":[]}`))
	require.NoError(t, err)
	assert.Equal(t, 2, board.Size)
	assert.True(t, board.At(0, 1).Bottom, "fields are column-major")
	assert.Equal(t, 5, registry.Len())
	sq, ok := registry.Get(model.SpiralPiece())
	require.True(t, ok)
	assert.Equal(t, model.Square{X: 0, Y: 1}, sq)
}

func TestDecodeMissingCellField(t *testing.T) {
	_, _, err := Decode(smallDoc(`{"right":false}`, `null`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"bottom"`)
	assert.Contains(t, err.Error(), "fields[0][1]")

	_, _, err = Decode(smallDoc(`{"bottom":false}`, `null`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"right"`)
}

func TestDecodeUnknownVariantNamesTheToken(t *testing.T) {
	_, _, err := Decode(smallDoc(`{"bottom":false,"right":false}`, `{"variant":"Star","fields":[]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown target variant "Star"`)

	_, _, err = Decode(smallDoc(`{"bottom":false,"right":false}`, `{"variant":"Circle","fields":["Pink"]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown target color "Pink"`)
}

func TestDecodeVariantArity(t *testing.T) {
	_, _, err := Decode(smallDoc(`{"bottom":false,"right":false}`, `{"variant":"Spiral","fields":["Red"]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spiral")

	_, _, err = Decode(smallDoc(`{"bottom":false,"right":false}`, `{"variant":"Hexagon","fields":[]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected one color")
}

func TestDecodeRobotShape(t *testing.T) {
	doc := strings.Replace(smallDoc(`{"bottom":false,"right":false}`, `null`), `[[[0,0],[1,0],[0,1],[1,1]]`, `[[[0,0],[1,0],[0,1]]`, 1)
	_, _, err := Decode(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 4 coordinate pairs")

	doc = strings.Replace(smallDoc(`{"bottom":false,"right":false}`, `null`), `[1,1]`, `[1]`, 1)
	_, _, err = Decode(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected [x, y]")

	doc = strings.Replace(smallDoc(`{"bottom":false,"right":false}`, `null`), `[1,1]`, `[5,1]`, 1)
	_, _, err = Decode(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside the 2x2 board")
}

func TestDecodeDocumentShape(t *testing.T) {
	_, _, err := Decode(`{"fields":[]}`)
	require.Error(t, err)

	_, _, err = Decode(`[[],[],[]]`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected [positions, board]")

	_, _, err = Decode(`[[[0,0],[1,0],[0,1],[1,1]],{"targets":[[null,null],[null,null]]}]`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing "fields"`)

	_, _, err = Decode(`[[[0,0],[1,0],[0,1],[1,1]],{"fields":[[{"bottom":false,"right":false}],[{"bottom":false,"right":false}]],"targets":[[null],[null]]}]`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "column 0 has 1 cells, expected 2")
}

func TestDecodeDuplicateTarget(t *testing.T) {
	doc := smallDoc(`{"bottom":false,"right":false}`, `{"variant":"Spiral","fields":[]}`)
	doc = strings.Replace(doc, `[null,null]`, `[null,{"variant":"Spiral","fields":[]}]`, 1)
	_, _, err := Decode(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate Spiral")
}
