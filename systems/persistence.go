package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/tilepaste/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Movement   string  `json:"movement"`
	Camera     string  `json:"camera"`
	SFXVolume  float64 `json:"sfxVolume"`
	Muted      bool    `json:"muted"`
	Fullscreen bool    `json:"fullscreen"`
}

// SavedProgress is the persistent score record
type SavedProgress struct {
	HighScore int `json:"highScore"`
}

const (
	settingsKey = "settings"
	progressKey = "progress"
)

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "tilepaste",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

func loadItem(key string, v any) (bool, error) {
	if !gdataInitialized || gdataManager == nil {
		return false, nil
	}

	data, err := gdataManager.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", key, err)
		return false, nil
	}
	if len(data) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Warning: Could not parse saved %s: %v", key, err)
		return false, err
	}
	return true, nil
}

func saveItem(key string, v any) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Warning: Could not serialize %s: %v", key, err)
		return err
	}

	if err := gdataManager.SaveItem(key, data); err != nil {
		log.Printf("Warning: Could not save %s: %v", key, err)
		return err
	}
	return nil
}

// LoadSettings loads settings from disk. A nil result means nothing was saved.
func LoadSettings() (*SavedSettings, error) {
	var s SavedSettings
	ok, err := loadItem(settingsKey, &s)
	if !ok {
		return nil, err
	}
	return &s, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	return saveItem(settingsKey, s)
}

// CurrentSettings snapshots the live configuration.
func CurrentSettings() *SavedSettings {
	return snapshotSettings(ebiten.IsFullscreen())
}

func snapshotSettings(fullscreen bool) *SavedSettings {
	return &SavedSettings{
		Movement:   cfg.Player.Movement,
		Camera:     cfg.Camera.Policy,
		SFXVolume:  GetSFXVolume(),
		Muted:      !cfg.Audio.Enabled,
		Fullscreen: fullscreen,
	}
}

// SaveCurrentSettings saves the live configuration
func SaveCurrentSettings() {
	_ = SaveSettings(CurrentSettings())
}

// ApplySavedSettingsGlobal applies settings during startup, before scenes
// are created.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	applySettings(saved)
	ebiten.SetFullscreen(saved.Fullscreen)
}

// applySettings copies the known values of saved into the configuration.
// Unknown model or policy names are ignored and the defaults stay.
func applySettings(saved *SavedSettings) {
	if cfg.ValidMovement(saved.Movement) {
		cfg.Player.Movement = saved.Movement
	} else if saved.Movement != "" {
		log.Printf("Warning: Ignoring saved movement model %q", saved.Movement)
	}
	if cfg.ValidCameraPolicy(saved.Camera) {
		cfg.Camera.Policy = saved.Camera
	} else if saved.Camera != "" {
		log.Printf("Warning: Ignoring saved camera policy %q", saved.Camera)
	}

	SetSFXVolume(saved.SFXVolume)
	cfg.Audio.Enabled = !saved.Muted
}

// LoadHighScore returns the saved high score, or 0.
func LoadHighScore() int {
	var p SavedProgress
	if ok, _ := loadItem(progressKey, &p); !ok {
		return 0
	}
	return p.HighScore
}

// SaveHighScore persists score as the new high score.
func SaveHighScore(score int) error {
	return saveItem(progressKey, &SavedProgress{HighScore: score})
}
