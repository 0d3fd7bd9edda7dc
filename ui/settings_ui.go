package ui

import (
	"image/color"

	cfg "github.com/automoto/tilepaste/config"
	"github.com/automoto/tilepaste/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// SettingsUI is the row of option buttons under the main menu. Each click
// advances one option and the callback returns the new value to show.
type SettingsUI struct {
	UI *ebitenui.UI

	OnCycleMovement func() string
	OnCycleCamera   func() string

	movementButton *widget.Button
	cameraButton   *widget.Button

	face text.Face
}

func NewSettingsUI(onCycleMovement, onCycleCamera func() string) *SettingsUI {
	s := &SettingsUI{
		OnCycleMovement: onCycleMovement,
		OnCycleCamera:   onCycleCamera,
		face:            text.NewGoXFace(fonts.Small.Get()),
	}
	s.buildUI()
	return s
}

func (s *SettingsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Bottom: 40}
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	s.movementButton = s.optionButton(movementLabel(cfg.Player.Movement), func() {
		if s.OnCycleMovement != nil {
			setButtonText(s.movementButton, movementLabel(s.OnCycleMovement()))
		}
	})
	row.AddChild(s.movementButton)

	s.cameraButton = s.optionButton(cameraLabel(cfg.Camera.Policy), func() {
		if s.OnCycleCamera != nil {
			setButtonText(s.cameraButton, cameraLabel(s.OnCycleCamera()))
		}
	})
	row.AddChild(s.cameraButton)

	rootContainer.AddChild(row)

	s.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (s *SettingsUI) optionButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(150, 24)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &s.face, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func setButtonText(b *widget.Button, label string) {
	if b == nil {
		return
	}
	if textWidget := b.Text(); textWidget != nil {
		textWidget.Label = label
	}
}

func movementLabel(name string) string { return "Movement: " + name }
func cameraLabel(name string) string   { return "Camera: " + name }

func buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(cfg.Menu.ButtonColor)
	hover := image.NewNineSliceColor(cfg.Menu.ButtonHoverColor)
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (s *SettingsUI) Update() {
	s.UI.Update()
}

func (s *SettingsUI) Draw(screen *ebiten.Image) {
	s.UI.Draw(screen)
}
