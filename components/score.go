package components

import "github.com/yohamta/donburi"

// ScoreData counts collected tiles for the running game.
type ScoreData struct {
	Score     int
	HighScore int
}

var Score = donburi.NewComponentType[ScoreData]()
