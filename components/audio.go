package components

import (
	cfg "github.com/automoto/tilepaste/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects raised by systems this frame
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
