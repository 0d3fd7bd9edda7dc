package systems

import (
	"image/color"
	"log"

	"github.com/automoto/tilepaste/archetypes"
	"github.com/automoto/tilepaste/components"
	cfg "github.com/automoto/tilepaste/config"
	"github.com/automoto/tilepaste/fonts"
	"github.com/automoto/tilepaste/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(id cfg.SceneID)
}

// NewUpdateMenu creates an UpdateMenu system with scene transition capability.
// Buttons react to the mouse in NDC; left/right and confirm drive the same
// buttons from the keyboard.
func NewUpdateMenu(sceneChanger SceneChanger) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		numButtons := len(menu.Buttons)
		if numButtons == 0 {
			return
		}

		nx, ny := gamemath.ScreenToNDC(
			float64(input.CursorX), float64(input.CursorY),
			float64(cfg.C.Width), float64(cfg.C.Height),
		)
		for i := range menu.Buttons {
			b := &menu.Buttons[i]
			wasHovered := b.Hovered
			b.Hovered = b.Rect.Contains(nx, ny)
			if b.Hovered && !wasHovered {
				PlaySFX(e, cfg.SoundMenuHover)
				menu.SelectedIndex = i
			}
		}

		if input.Clicked {
			for i := range menu.Buttons {
				if menu.Buttons[i].Hovered {
					triggerButton(e, sceneChanger, &menu.Buttons[i])
					return
				}
			}
		}

		if GetAction(input, cfg.ActionMoveLeft).JustPressed || GetAction(input, cfg.ActionPanLeft).JustPressed {
			PlaySFX(e, cfg.SoundMenuHover)
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numButtons) % numButtons
		}
		if GetAction(input, cfg.ActionMoveRight).JustPressed || GetAction(input, cfg.ActionPanRight).JustPressed {
			PlaySFX(e, cfg.SoundMenuHover)
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numButtons
		}

		if GetAction(input, cfg.ActionConfirm).JustPressed {
			triggerButton(e, sceneChanger, &menu.Buttons[menu.SelectedIndex])
			return
		}

		if GetAction(input, cfg.ActionQuit).JustPressed {
			sceneChanger.ChangeScene(cfg.SceneQuit)
		}
	}
}

func triggerButton(e *ecs.ECS, sceneChanger SceneChanger, b *components.MenuButton) {
	log.Printf("%s: triggered!", b.Label)
	PlaySFX(e, cfg.SoundMenuSelect)
	sceneChanger.ChangeScene(b.Target)
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)

	titleFont := fonts.Title.Get()
	drawCentered(screen, cfg.C.Title, titleFont, width/2, cfg.Menu.TitleY, cfg.Menu.TitleColor)

	labelFont := fonts.Label.Get()
	for i, b := range menu.Buttons {
		// NDC rect anchored at its lower-left corner; screen y grows down
		x0, y0 := gamemath.NDCToScreen(b.Rect.X, b.Rect.Y+b.Rect.H, width, height)
		x1, y1 := gamemath.NDCToScreen(b.Rect.X+b.Rect.W, b.Rect.Y, width, height)

		fill := cfg.Menu.ButtonColor
		if b.Hovered {
			fill = cfg.Menu.ButtonHoverColor
		}
		vector.FillRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), fill, false)

		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}
		drawCentered(screen, b.Label, labelFont, (x0+x1)/2, (y0+y1)/2+6, textColor)
	}

	input := getOrCreateInput(e)
	drawCentered(screen, getMenuHint(input.LastInputMethod), fonts.Small.Get(), width/2, height-12, cfg.Menu.TextColorNormal)
}

// drawCentered draws s with its baseline at y, centered on x.
func drawCentered(screen *ebiten.Image, s string, face font.Face, x, y float64, clr color.Color) {
	w := font.MeasureString(face, s).Round()
	text.Draw(screen, s, face, int(x)-w/2, int(y), clr)
}

// getMenuHint returns the appropriate hint for menu navigation
func getMenuHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "D-Pad: Navigate   Cross: Select"
	case components.InputXbox:
		return "D-Pad: Navigate   A: Select"
	}
	return "Click or Enter: Select   Q: Quit"
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		buttons := make([]components.MenuButton, 0, len(cfg.Menu.Buttons))
		for _, b := range cfg.Menu.Buttons {
			buttons = append(buttons, components.MenuButton{
				Label:  b.Label,
				Rect:   gamemath.Rect{X: b.X, Y: b.Y, W: b.Width, H: b.Height},
				Target: b.Target,
			})
		}

		ent := archetypes.Menu.Spawn(e)
		components.Menu.SetValue(ent, components.MenuData{
			SelectedIndex: 0,
			Buttons:       buttons,
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}
