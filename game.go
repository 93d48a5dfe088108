package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/hajimehoshi/ebiten/text"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font"

	"github.com/Lireer/ricochet-robot-solver/editor"
	"github.com/Lireer/ricochet-robot-solver/model"
)

// StrokeSource represents a input device to provide strokes.
type StrokeSource interface {
	Position() (int, int)
	IsJustReleased() bool
}

// MouseStrokeSource is a StrokeSource implementation of mouse.
type MouseStrokeSource struct{}

func (m *MouseStrokeSource) Position() (int, int) {
	return ebiten.CursorPosition()
}

func (m *MouseStrokeSource) IsJustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

// TouchStrokeSource is a StrokeSource implementation of touch.
type TouchStrokeSource struct {
	ID int
}

func (t *TouchStrokeSource) Position() (int, int) {
	return ebiten.TouchPosition(t.ID)
}

func (t *TouchStrokeSource) IsJustReleased() bool {
	return inpututil.IsTouchJustReleased(t.ID)
}

// Stroke manages the current drag state of one pointer.
type Stroke struct {
	source StrokeSource

	currentX int
	currentY int

	released bool
}

func NewStroke(source StrokeSource) *Stroke {
	cx, cy := source.Position()
	return &Stroke{
		source:   source,
		currentX: cx,
		currentY: cy,
	}
}

func (s *Stroke) Update() {
	if s.released {
		return
	}
	if s.source.IsJustReleased() {
		s.released = true
		return
	}
	x, y := s.source.Position()
	s.currentX = x
	s.currentY = y
}

func (s *Stroke) IsReleased() bool {
	return s.released
}

func (s *Stroke) Position() (int, int) {
	return s.currentX, s.currentY
}

// snapOffset is the visual offset of a piece animating back to its
// committed square after a rejected drag.
type snapOffset struct {
	dx, dy float64
	v      float64
}

type Game struct {
	cfg      Config
	ed       *editor.Editor
	stroke   *Stroke
	Tweens   map[*gween.Tween]Action
	snaps    map[model.Piece]*snapOffset
	selected model.Color
	status   string
}

var theGame *Game

var Font font.Face

func loadFont(path string) font.Face {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warnf("font: %v, using debug text", err)
		return nil
	}
	tt, err := truetype.Parse(data)
	if err != nil {
		log.Warnf("font: %v, using debug text", err)
		return nil
	}
	return truetype.NewFace(tt, &truetype.Options{
		Size:    18,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func (g *Game) beginStroke(source StrokeSource) {
	x, y := source.Position()
	if piece, ok := g.ed.PieceAt(x, y); ok {
		g.ed.Press(piece, x, y)
		g.stroke = NewStroke(source)
		if piece.Cat == model.CategoryRobot {
			g.selected = piece.Color
		}
		g.status = piece.String()
		return
	}
	if g.ed.ClickWall(x, y) {
		g.status = "wall toggled"
	}
}

func (g *Game) updateStroke() {
	if g.stroke == nil {
		return
	}
	g.stroke.Update()
	x, y := g.stroke.Position()
	g.ed.MoveTo(x, y)
	if !g.stroke.IsReleased() {
		return
	}
	g.stroke = nil

	drag, _ := g.ed.Drag()
	commit := g.ed.Release(x, y)
	if !commit.Active {
		return
	}
	if commit.Moved {
		g.status = fmt.Sprintf("%s -> %d,%d", commit.Piece, commit.To.X, commit.To.Y)
		return
	}
	g.status = fmt.Sprintf("%s snaps back", commit.Piece)
	g.snapBack(commit, x-drag.StartX, y-drag.StartY)
}

// snapBack animates the rejected piece from its release position back onto
// its committed square.
func (g *Game) snapBack(commit editor.Commit, dx, dy int) {
	snap := &snapOffset{dx: float64(dx), dy: float64(dy), v: 1}
	if snap.dx == 0 && snap.dy == 0 {
		return
	}
	g.snaps[commit.Piece] = snap
	action := Action{onChange: func(v float32) {
		snap.v = float64(v)
	}}
	action.addOnFinish(func() {
		delete(g.snaps, commit.Piece)
	})
	g.addTween(gween.New(1, 0, 0.25, ease.OutQuad), action)
}

func (g *Game) handleKeys() {
	type robotMove struct {
		key ebiten.Key
		dir model.Direction
	}
	for _, m := range []robotMove{
		{ebiten.KeyUp, model.Up},
		{ebiten.KeyDown, model.Down},
		{ebiten.KeyLeft, model.Left},
		{ebiten.KeyRight, model.Right},
	} {
		if inpututil.IsKeyJustPressed(m.key) {
			g.ed.MoveRobot(g.selected, m.dir)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		g.importBoard()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.exportBoard()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.publishBoard()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.ed.DismissImportError()
	}
}

func (g *Game) importBoard() {
	data, err := os.ReadFile(g.cfg.BoardFile)
	if err != nil {
		g.status = fmt.Sprintf("import: %v", err)
		return
	}
	if err := g.ed.Import(string(data)); err != nil {
		g.status = "import failed"
		return
	}
	g.status = fmt.Sprintf("imported %s", g.cfg.BoardFile)
}

func (g *Game) exportBoard() {
	doc, err := g.ed.Export()
	if err != nil {
		g.status = err.Error()
		return
	}
	if err := os.WriteFile(g.cfg.BoardFile, []byte(doc), 0644); err != nil {
		g.status = fmt.Sprintf("export: %v", err)
		return
	}
	g.status = fmt.Sprintf("exported %s", g.cfg.BoardFile)
}

func (g *Game) publishBoard() {
	doc, err := g.ed.Export()
	if err != nil {
		g.status = err.Error()
		return
	}
	go publish(g.cfg, doc)
	g.status = fmt.Sprintf("published to room %q", g.cfg.Room)
}

func (g *Game) drawPieces(screen *ebiten.Image) {
	cell := float64(g.ed.CellSize())
	drag, dragging := g.ed.Drag()

	drawOne := func(entry model.Entry) {
		px, py, ok := g.ed.PiecePos(entry.Piece)
		if !ok {
			return
		}
		x, y := float64(px), float64(py)
		if snap, ok := g.snaps[entry.Piece]; ok {
			x += snap.dx * snap.v
			y += snap.dy * snap.v
		}
		c := pieceColor(entry.Piece)
		if entry.Piece.Cat == model.CategoryRobot {
			fillRect(screen, x+2, y+2, cell-4, cell-4, c, 0.95)
			return
		}
		inset := cell / 4
		fillRect(screen, x+inset, y+inset, cell-2*inset, cell-2*inset, c, 0.6)
		g.drawText(screen, shapeLabel(entry.Piece.Shape), int(x+inset)+2, int(y+cell-inset))
	}

	// targets below robots, the dragged piece on top of everything
	for _, entry := range g.ed.Registry().Pairs() {
		if entry.Piece.Cat == model.CategoryTarget && !(dragging && drag.Piece == entry.Piece) {
			drawOne(entry)
		}
	}
	for _, entry := range g.ed.Registry().Pairs() {
		if entry.Piece.Cat == model.CategoryRobot && !(dragging && drag.Piece == entry.Piece) {
			drawOne(entry)
		}
	}
	if dragging {
		sq, _ := g.ed.Registry().Get(drag.Piece)
		drawOne(model.Entry{Piece: drag.Piece, Square: sq})
	}
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y int) {
	if Font == nil {
		ebitenutil.DebugPrintAt(screen, s, x, y-12)
		return
	}
	text.Draw(screen, s, Font, x, y, color.White)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	board := g.ed.Board()
	y := 2*g.cfg.Offset + board.Size*g.cfg.CellSize + 18
	line := fmt.Sprintf("%s robot selected", g.selected.Name())
	if g.status != "" {
		line += "  |  " + g.status
	}
	g.drawText(screen, line, g.cfg.Offset, y)
	if importErr := g.ed.ImportError(); importErr != "" {
		g.drawText(screen, "import error: "+importErr, g.cfg.Offset, y+22)
	}
}

func (g *Game) update(screen *ebiten.Image) error {
	for t, a := range g.Tweens {
		curr, finished := t.Update(0.02)
		if a.onChange != nil {
			a.onChange(curr)
		}
		if finished {
			for _, onFinish := range a.onFinish {
				onFinish()
			}
			delete(g.Tweens, t)
		}
	}

	if g.stroke == nil {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.beginStroke(&MouseStrokeSource{})
		}
		for _, id := range inpututil.JustPressedTouchIDs() {
			g.beginStroke(&TouchStrokeSource{id})
		}
	}
	g.updateStroke()
	g.handleKeys()

	if ebiten.IsDrawingSkipped() {
		return nil
	}

	if err := screen.Fill(color.RGBA{40, 40, 40, 255}); err != nil {
		log.Printf("%v", err)
	}
	g.drawGrid(screen)
	g.drawWalls(screen)
	g.drawPieces(screen)
	g.drawStatus(screen)
	return nil
}

func main() {
	cfg := LoadConfig("editor.yaml")
	Font = loadFont(cfg.FontFile)
	theGame = &Game{
		cfg: cfg,
		ed: editor.New(editor.Config{
			CellSize: cfg.CellSize,
			OffsetX:  cfg.Offset,
			OffsetY:  cfg.Offset,
		}),
		Tweens:   make(map[*gween.Tween]Action),
		snaps:    make(map[model.Piece]*snapOffset),
		selected: model.Red,
	}
	side := 2*cfg.Offset + model.BoardSize*cfg.CellSize
	if err := ebiten.Run(theGame.update, side, side+60, 1, "Board Editor"); err != nil {
		log.Fatal(err)
	}
}
