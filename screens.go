package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	promptText = "Press Y to Play Again or N to Quit"
	promptX    = 50
	promptY    = 210
)

// endScreen is the overlay shown under the game over and winner banners: the
// key prompt plus mouse buttons doing the same thing.
type endScreen struct {
	ui   *ebitenui.UI
	face ebtext.Face
}

func newEndScreen(onPlayAgain, onQuit func()) *endScreen {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 230})
	btnPressed := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})
	btnTextColor := &widget.ButtonTextColor{Idle: colornames.White}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	playAgain := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnPressed}),
		widget.ButtonOpts.Text("Play Again (Y)", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(center, widget.WidgetOpts.MinSize(110, 20)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onPlayAgain()
		}),
	)
	quit := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnPressed}),
		widget.ButtonOpts.Text("Quit (N)", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(center, widget.WidgetOpts.MinSize(110, 20)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onQuit()
		}),
	)

	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	row.AddChild(playAgain)
	row.AddChild(quit)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(row)

	return &endScreen{
		ui:   &ebitenui.UI{Container: root},
		face: face,
	}
}

func (s *endScreen) Update() {
	s.ui.Update()
}

func (s *endScreen) Draw(screen *ebiten.Image) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(promptX, promptY)
	op.ColorScale.ScaleWithColor(colornames.White)
	ebtext.Draw(screen, promptText, s.face, op)
	s.ui.Draw(screen)
}
