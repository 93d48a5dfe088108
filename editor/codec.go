package editor

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Lireer/ricochet-robot-solver/model"
)

// The solver writes a board as a two element JSON array: the robot positions
// followed by the board. The positions are four [x, y] pairs in red, green,
// blue, yellow order. The board carries "fields", a column-major grid of
// {"bottom", "right"} records, and "targets", a grid of the same shape whose
// cells are either null or {"variant": shape, "fields": [color]} descriptors
// with an empty fields list for the spiral. The shape of this document is an
// external contract; Decode validates it defensively and reports the first
// mismatch without touching any session state.

type wireCell struct {
	Bottom bool
	Right  bool
}

func (c *wireCell) UnmarshalJSON(data []byte) error {
	var fields map[string]*bool
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	bottom, ok := fields["bottom"]
	if !ok || bottom == nil {
		return errors.New(`missing "bottom"`)
	}
	right, ok := fields["right"]
	if !ok || right == nil {
		return errors.New(`missing "right"`)
	}
	c.Bottom = *bottom
	c.Right = *right
	return nil
}

func (c wireCell) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]bool{"bottom": c.Bottom, "right": c.Right})
}

type wireTarget struct {
	Variant string   `json:"variant"`
	Fields  []string `json:"fields"`
}

// Decode parses a solver board document into a fresh board and registry.
// Either both are returned, or an error describing the first structural
// mismatch; the decode never partially applies.
func Decode(raw string) (*model.Board, *model.Registry, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &parts); err != nil {
		return nil, nil, fmt.Errorf("document: %v", err)
	}
	if len(parts) != 2 {
		return nil, nil, fmt.Errorf("document: expected [positions, board], got %d elements", len(parts))
	}

	robots, err := decodeRobots(parts[0])
	if err != nil {
		return nil, nil, err
	}
	board, targets, err := decodeBoard(parts[1])
	if err != nil {
		return nil, nil, err
	}

	robotRegistry := model.NewRegistry()
	for i, color := range model.Colors {
		sq := robots[i]
		if sq.X < 0 || sq.X >= board.Size || sq.Y < 0 || sq.Y >= board.Size {
			return nil, nil, fmt.Errorf("robot positions[%d]: %d,%d is outside the %dx%d board",
				i, sq.X, sq.Y, board.Size, board.Size)
		}
		robotRegistry.Put(model.RobotPiece(color), sq)
	}
	// disjoint by construction, robots and targets never share a rank
	return board, model.Union(targets, robotRegistry), nil
}

func decodeRobots(raw json.RawMessage) ([4]model.Square, error) {
	var squares [4]model.Square
	var pairs [][]int
	if err := json.Unmarshal(raw, &pairs); err != nil {
		return squares, fmt.Errorf("robot positions: %v", err)
	}
	if len(pairs) != 4 {
		return squares, fmt.Errorf("robot positions: expected 4 coordinate pairs, got %d", len(pairs))
	}
	for i, pair := range pairs {
		if len(pair) != 2 {
			return squares, fmt.Errorf("robot positions[%d]: expected [x, y], got %d values", i, len(pair))
		}
		squares[i] = model.Square{X: pair[0], Y: pair[1]}
	}
	return squares, nil
}

func decodeBoard(raw json.RawMessage) (*model.Board, *model.Registry, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, nil, fmt.Errorf("board: %v", err)
	}
	fieldsRaw, ok := doc["fields"]
	if !ok {
		return nil, nil, errors.New(`board: missing "fields"`)
	}
	targetsRaw, ok := doc["targets"]
	if !ok {
		return nil, nil, errors.New(`board: missing "targets"`)
	}

	var columns [][]json.RawMessage
	if err := json.Unmarshal(fieldsRaw, &columns); err != nil {
		return nil, nil, fmt.Errorf("board fields: %v", err)
	}
	size := len(columns)
	if size == 0 {
		return nil, nil, errors.New("board fields: empty grid")
	}
	board := model.NewBoard(size)
	for x, column := range columns {
		if len(column) != size {
			return nil, nil, fmt.Errorf("board fields: column %d has %d cells, expected %d", x, len(column), size)
		}
		for y, cellRaw := range column {
			var cell wireCell
			if err := json.Unmarshal(cellRaw, &cell); err != nil {
				return nil, nil, fmt.Errorf("board fields[%d][%d]: %v", x, y, err)
			}
			board.Cells[y][x] = model.Cell{Bottom: cell.Bottom, Right: cell.Right}
		}
	}

	registry, err := decodeTargets(targetsRaw, size)
	if err != nil {
		return nil, nil, err
	}
	return board, registry, nil
}

func decodeTargets(raw json.RawMessage, size int) (*model.Registry, error) {
	var columns [][]json.RawMessage
	if err := json.Unmarshal(raw, &columns); err != nil {
		return nil, fmt.Errorf("board targets: %v", err)
	}
	if len(columns) != size {
		return nil, fmt.Errorf("board targets: %d columns, expected %d", len(columns), size)
	}
	registry := model.NewRegistry()
	for x, column := range columns {
		if len(column) != size {
			return nil, fmt.Errorf("board targets: column %d has %d cells, expected %d", x, len(column), size)
		}
		for y, cellRaw := range column {
			var descriptor *wireTarget
			if err := json.Unmarshal(cellRaw, &descriptor); err != nil {
				return nil, fmt.Errorf("board targets[%d][%d]: %v", x, y, err)
			}
			if descriptor == nil {
				continue
			}
			piece, err := targetFromWire(descriptor)
			if err != nil {
				return nil, fmt.Errorf("board targets[%d][%d]: %v", x, y, err)
			}
			if _, dup := registry.Get(piece); dup {
				return nil, fmt.Errorf("board targets[%d][%d]: duplicate %s", x, y, piece)
			}
			registry.Put(piece, model.Square{X: x, Y: y})
		}
	}
	return registry, nil
}

func targetFromWire(descriptor *wireTarget) (model.Piece, error) {
	shape, ok := model.ParseShape(descriptor.Variant)
	if !ok {
		return model.Piece{}, fmt.Errorf("unknown target variant %q", descriptor.Variant)
	}
	if shape == model.Spiral {
		if len(descriptor.Fields) != 0 {
			return model.Piece{}, fmt.Errorf("the spiral carries no color, got %d fields", len(descriptor.Fields))
		}
		return model.SpiralPiece(), nil
	}
	if len(descriptor.Fields) != 1 {
		return model.Piece{}, fmt.Errorf("expected one color for %s, got %d fields", shape.Name(), len(descriptor.Fields))
	}
	color, ok := model.ParseColor(descriptor.Fields[0])
	if !ok {
		return model.Piece{}, fmt.Errorf("unknown target color %q", descriptor.Fields[0])
	}
	return model.TargetPiece(shape, color), nil
}

// Encode renders a board and registry as the solver's document format, the
// exact shape Decode accepts. All four robots must be placed.
func Encode(board *model.Board, registry *model.Registry) (string, error) {
	robots := make([][2]int, 0, 4)
	for _, color := range model.Colors {
		sq, ok := registry.Get(model.RobotPiece(color))
		if !ok {
			return "", fmt.Errorf("export: %s is not placed", model.RobotPiece(color))
		}
		robots = append(robots, [2]int{sq.X, sq.Y})
	}

	fields := make([][]wireCell, board.Size)
	targets := make([][]*wireTarget, board.Size)
	for x := 0; x < board.Size; x++ {
		fields[x] = make([]wireCell, board.Size)
		targets[x] = make([]*wireTarget, board.Size)
		for y := 0; y < board.Size; y++ {
			cell := board.At(x, y)
			fields[x][y] = wireCell{Bottom: cell.Bottom, Right: cell.Right}
		}
	}
	for _, entry := range registry.Pairs() {
		if entry.Piece.Cat != model.CategoryTarget {
			continue
		}
		descriptor := &wireTarget{Variant: entry.Piece.Shape.Name(), Fields: []string{}}
		if entry.Piece.Shape != model.Spiral {
			descriptor.Fields = []string{entry.Piece.Color.Name()}
		}
		targets[entry.Square.X][entry.Square.Y] = descriptor
	}

	document := []interface{}{
		robots,
		map[string]interface{}{"fields": fields, "targets": targets},
	}
	out, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return "", fmt.Errorf("export: %v", err)
	}
	return string(out), nil
}
