package systems

import (
	"log"

	cfg "github.com/automoto/tilepaste/config"
)

// nextOption returns the option after current, wrapping around. An unknown
// current value restarts at the first option.
func nextOption(options []string, current string) string {
	if len(options) == 0 {
		return current
	}
	for i, o := range options {
		if o == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

// CycleMovement switches to the next movement model and saves the choice.
// The running game keeps its model; the next one started uses the new one.
func CycleMovement() string {
	cfg.Player.Movement = nextOption(cfg.SettingsMenu.MovementModels, cfg.Player.Movement)
	log.Printf("Movement model: %s", cfg.Player.Movement)
	SaveCurrentSettings()
	return cfg.Player.Movement
}

// CycleCameraPolicy switches to the next camera policy and saves the choice.
func CycleCameraPolicy() string {
	cfg.Camera.Policy = nextOption(cfg.SettingsMenu.CameraPolicies, cfg.Camera.Policy)
	log.Printf("Camera policy: %s", cfg.Camera.Policy)
	SaveCurrentSettings()
	return cfg.Camera.Policy
}
