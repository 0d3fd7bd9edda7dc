package config

// SettingsMenuConfig lists the values the persisted settings may take
type SettingsMenuConfig struct {
	MovementModels []string
	CameraPolicies []string
}

// SettingsMenu is the global settings configuration
var SettingsMenu SettingsMenuConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		MovementModels: []string{"discrete", "kinematic"},
		CameraPolicies: []string{"pan", "follow"},
	}
}

// ValidMovement reports whether name is a known movement model.
func ValidMovement(name string) bool {
	return contains(SettingsMenu.MovementModels, name)
}

// ValidCameraPolicy reports whether name is a known camera policy.
func ValidCameraPolicy(name string) bool {
	return contains(SettingsMenu.CameraPolicies, name)
}

func contains(options []string, name string) bool {
	for _, o := range options {
		if o == name {
			return true
		}
	}
	return false
}
