package config

import (
	"image/color"

	"github.com/automoto/tilepaste/shared/leveldata"
	"github.com/yohamta/donburi/ecs"
)

// Default is the single ECS layer every entity and renderer lives on.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// WorldConfig describes the tile world and how it is seeded
type WorldConfig struct {
	Width  int
	Height int

	// Default layout pattern (used when no TMX level is selected)
	PatternPeriod uint32
	BorderID      uint32
	EvenRowID     uint32
	OddRowID      uint32

	// Collect effect: stepping onto CollectableID rewrites it to CollectedID
	CollectableID uint32
	CollectedID   uint32

	// Substituted for lookups outside the world
	ErrorTileID uint32

	// Pixel size of one cell in the collision space
	CellPixels int

	// Static entities of the pattern world, in world cells
	DefaultEntities []leveldata.EntitySpawn

	// TMX level name under assets/levels; empty uses the pattern
	Level string
}

// ViewConfig describes the visible window over the world
type ViewConfig struct {
	Width  int
	Height int
	UIShim float64 // Fraction of vertical NDC space reserved for the HUD
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	Policy  string // "pan" or "follow"
	MaxStep int    // Cells per axis per frame for "follow"; <= 0 snaps
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Movement string // "discrete" or "kinematic"

	// Kinematic model
	Acceleration float64 // Cells per second squared at full input
	Friction     float64 // Negative, proportional to velocity

	// Discrete model: seconds the sprite takes to slide to the new cell
	StepTweenSeconds float32

	// Sprites per facing
	SpriteUp    uint32
	SpriteDown  uint32
	SpriteLeft  uint32
	SpriteRight uint32

	// Collision box inset inside the cell, in pixels
	CollisionInset float64
}

// AtlasConfig describes the tile sheet
type AtlasConfig struct {
	Path       string
	TileWidth  int
	TileHeight int
}

// ButtonConfig places one menu button in NDC
type ButtonConfig struct {
	Label  string
	X, Y   float64
	Width  float64
	Height float64
	Target SceneID
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	ButtonColor       color.RGBA
	ButtonHoverColor  color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	Buttons           []ButtonConfig
}

// HUDConfig contains the in-game overlay configuration
type HUDConfig struct {
	Title      string
	TextColor  color.RGBA
	Background color.RGBA
	FontSize   float64
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to game
	Overlay  bool // Draw collision boxes and camera state
}

// Global configuration instances
var C *Config
var World WorldConfig
var View ViewConfig
var Camera CameraConfig
var Player PlayerConfig
var Atlas AtlasConfig
var Menu MenuConfig
var HUD HUDConfig
var Pause PauseConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	SkyBlue      = color.RGBA{R: 0, G: 0, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 480,
		Title:  "TilePaste",
	}

	World = WorldConfig{
		Width:         101,
		Height:        101,
		PatternPeriod: 5,
		BorderID:      3,
		EvenRowID:     1,
		OddRowID:      2,
		CollectableID: 2,
		CollectedID:   4,
		ErrorTileID:   0,
		CellPixels:    16,
		DefaultEntities: []leveldata.EntitySpawn{
			{Name: "rock", X: 53, Y: 51, TexID: 16, Solid: true},
			{Name: "rock", X: 47, Y: 48, TexID: 16, Solid: true},
			{Name: "tree", X: 56, Y: 46, TexID: 17, Solid: true},
			{Name: "tree", X: 43, Y: 54, TexID: 17, Solid: true},
			{Name: "flower", X: 51.5, Y: 53, TexID: 5},
			{Name: "flower", X: 45, Y: 47.5, TexID: 5},
		},
		Level: "",
	}

	View = ViewConfig{
		Width:  20,
		Height: 14,
		UIShim: 0.075,
	}

	Camera = CameraConfig{
		Policy:  "follow",
		MaxStep: 1, // One cell per frame; the lag is intended
	}

	Player = PlayerConfig{
		Movement:         "discrete",
		Acceleration:     40.0,
		Friction:         -6.0,
		StepTweenSeconds: 0.08,
		SpriteUp:         8,
		SpriteDown:       9,
		SpriteLeft:       10,
		SpriteRight:      11,
		CollisionInset:   2,
	}

	Atlas = AtlasConfig{
		Path:       "images/atlas.png",
		TileWidth:  16,
		TileHeight: 16,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:        Orange,
		ButtonColor:       DarkBlue,
		ButtonHoverColor:  LightBlue,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            120,
		Buttons: []ButtonConfig{
			{Label: "Start", X: -0.25, Y: -0.4, Width: 0.3, Height: 0.2, Target: SceneGame},
			{Label: "Quit", X: 0.25, Y: -0.4, Width: 0.3, Height: 0.2, Target: SceneQuit},
		},
	}

	HUD = HUDConfig{
		Title:      "TilePaste",
		TextColor:  Yellow,
		Background: color.RGBA{R: 0, G: 0, B: 0, A: 255},
		FontSize:   12,
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
		Overlay:  false,
	}
}
