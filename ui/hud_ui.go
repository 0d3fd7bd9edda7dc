package ui

import (
	cfg "github.com/automoto/tilepaste/config"
	"github.com/automoto/tilepaste/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// HUD is the text strip below the playfield: the game title on the left and
// the score on the right.
type HUD struct {
	UI *ebitenui.UI

	titleLabel *widget.Label
	scoreLabel *widget.Label

	face text.Face
}

// NewHUD builds the HUD. fonts.HUD must be loaded.
func NewHUD() *HUD {
	h := &HUD{
		face: text.NewGoXFace(fonts.HUD.Get()),
	}
	h.buildUI()
	return h
}

func (h *HUD) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Left: 6, Right: 6, Bottom: 2}
	band := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(24),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	h.titleLabel = widget.NewLabel(
		widget.LabelOpts.Text(cfg.HUD.Title, &h.face, &widget.LabelColor{
			Idle: cfg.HUD.TextColor,
		}),
	)
	band.AddChild(h.titleLabel)

	h.scoreLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &h.face, &widget.LabelColor{
			Idle: cfg.HUD.TextColor,
		}),
	)
	band.AddChild(h.scoreLabel)

	rootContainer.AddChild(band)

	h.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// SetScore replaces the score text.
func (h *HUD) SetScore(s string) {
	h.scoreLabel.Label = s
}

func (h *HUD) Update() {
	h.UI.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.UI.Draw(screen)
}
