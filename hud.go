package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

var hudFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

// drawHUD renders the score readout into the left margin of the board.
func drawHUD(screen *ebiten.Image, g *Game) {
	score := g.score()
	if score == nil {
		return
	}

	lines := []string{
		"SCORE",
		fmt.Sprintf("%d", score.Points),
		"",
		"LINES",
		fmt.Sprintf("%d", score.Lines),
		"",
		"PIECES",
		fmt.Sprintf("%d", score.Pieces),
	}

	y := g.board.BlockSize
	for _, line := range lines {
		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(8, y)
		op.ColorScale.ScaleWithColor(color.White)
		ebtext.Draw(screen, line, hudFace, op)
		y += 16
	}
}

// newPauseUI builds a centered pause menu with Resume and Quit buttons, using
// colored nine-slices and the built-in basic font so no theme assets are
// needed.
func newPauseUI(g *Game) *ebitenui.UI {
	return newMenuUI("Paused", []menuItem{
		{label: "Resume", onClick: func() { g.state = statePlaying }},
		{label: "Quit", onClick: func() { g.quit = true }},
	})
}

func newGameOverUI(g *Game) *ebitenui.UI {
	return newMenuUI("Game Over", []menuItem{
		{label: "Restart", onClick: func() { g.reset() }},
		{label: "Quit", onClick: func() { g.quit = true }},
	})
}

type menuItem struct {
	label   string
	onClick func()
}

func newMenuUI(title string, items []menuItem) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x3b, A: 255})
	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(title, &hudFace, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	))

	for _, item := range items {
		onClick := item.onClick
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(item.label, &hudFace, btnTextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		))
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}
