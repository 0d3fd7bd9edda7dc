package config

// SceneID is the result of a scene's frame: stay, or switch to another scene.
type SceneID int

const (
	SceneNone SceneID = iota // Stay in the current scene
	SceneGame
	SceneMenu
	SceneQuit
)

func (s SceneID) String() string {
	switch s {
	case SceneNone:
		return "none"
	case SceneGame:
		return "game"
	case SceneMenu:
		return "menu"
	case SceneQuit:
		return "quit"
	}
	return "unknown"
}
