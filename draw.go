package main

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten"

	"github.com/Lireer/ricochet-robot-solver/model"
)

func HexToF32(u uint32) GameColor {
	b := float64(0xff&u) / 255
	g := float64(0xff&(u>>8)) / 255
	r := float64(0xff&(u>>16)) / 255
	return GameColor{r, g, b}
}

type GameColor struct {
	r float64
	g float64
	b float64
}

var (
	COLOR_WALL   = HexToF32(0xf0f0e8)
	COLOR_GRID   = HexToF32(0x3a3a3a)
	COLOR_SPIRAL = HexToF32(0x999999)

	COLORS = map[model.Color]GameColor{
		model.Red:    HexToF32(0xfa3636),
		model.Green:  HexToF32(0x0abd38),
		model.Blue:   HexToF32(0x321ecc),
		model.Yellow: HexToF32(0xedbc1e),
	}
)

func pieceColor(p model.Piece) GameColor {
	if p.Cat == model.CategoryTarget && p.Shape == model.Spiral {
		return COLOR_SPIRAL
	}
	return COLORS[p.Color]
}

func shapeLabel(s model.Shape) string {
	switch s {
	case model.Spiral:
		return "*"
	case model.Circle:
		return "C"
	case model.SquareShape:
		return "S"
	case model.Triangle:
		return "T"
	case model.Hexagon:
		return "H"
	default:
		return "?"
	}
}

var emptyImage *ebiten.Image

func init() {
	var err error
	emptyImage, err = ebiten.NewImage(1, 1, ebiten.FilterDefault)
	if err != nil {
		log.Fatal(err)
	}
	emptyImage.Fill(color.White)
}

func fillRect(screen *ebiten.Image, x, y, w, h float64, c GameColor, alpha float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(c.r, c.g, c.b, alpha)
	screen.DrawImage(emptyImage, op)
}

const wallThickness = 3

// drawWalls renders every bottom/right flag as a thick edge. The last
// row/column doubles as the outer border and is mirrored to the top/left
// edge, the way the toroidal model treats it.
func (g *Game) drawWalls(screen *ebiten.Image) {
	board := g.ed.Board()
	cell := float64(g.cfg.CellSize)
	ox := float64(g.cfg.Offset)
	oy := float64(g.cfg.Offset)
	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			c := board.At(x, y)
			if c.Bottom {
				wy := oy + float64(y+1)*cell - wallThickness/2
				fillRect(screen, ox+float64(x)*cell, wy, cell, wallThickness, COLOR_WALL, 1)
				if y == board.Size-1 {
					fillRect(screen, ox+float64(x)*cell, oy-wallThickness/2, cell, wallThickness, COLOR_WALL, 1)
				}
			}
			if c.Right {
				wx := ox + float64(x+1)*cell - wallThickness/2
				fillRect(screen, wx, oy+float64(y)*cell, wallThickness, cell, COLOR_WALL, 1)
				if x == board.Size-1 {
					fillRect(screen, ox-wallThickness/2, oy+float64(y)*cell, wallThickness, cell, COLOR_WALL, 1)
				}
			}
		}
	}
}

func (g *Game) drawGrid(screen *ebiten.Image) {
	board := g.ed.Board()
	cell := float64(g.cfg.CellSize)
	o := float64(g.cfg.Offset)
	span := float64(board.Size) * cell
	for i := 0; i <= board.Size; i++ {
		fillRect(screen, o, o+float64(i)*cell, span, 1, COLOR_GRID, 1)
		fillRect(screen, o+float64(i)*cell, o, 1, span, COLOR_GRID, 1)
	}
}
