package components

import "github.com/yohamta/donburi"

// PauseData stores whether gameplay systems are frozen
type PauseData struct {
	IsPaused bool
}

var Pause = donburi.NewComponentType[PauseData]()
