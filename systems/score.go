package systems

import (
	"fmt"
	"log"

	"github.com/automoto/tilepaste/archetypes"
	"github.com/automoto/tilepaste/components"
	cfg "github.com/automoto/tilepaste/config"
	"github.com/automoto/tilepaste/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollect harvests the tile under the player once per cell entered.
// A collectable tile becomes the collected tile and scores one point.
func UpdateCollect(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	worldEntry, ok := components.TileWorld.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	world := components.TileWorld.Get(worldEntry)

	x, y := player.Cell()
	if x == player.LastCellX && y == player.LastCellY {
		return
	}
	player.LastCellX, player.LastCellY = x, y

	id, ok := world.Lookup(x, y)
	if !ok || id != cfg.World.CollectableID {
		return
	}
	world.Set(x, y, cfg.World.CollectedID)

	score := GetOrCreateScore(e)
	score.Score++
	if score.Score > score.HighScore {
		score.HighScore = score.Score
	}
	PlaySFX(e, cfg.SoundCollect)
}

// GetOrCreateScore returns the singleton Score component, seeding the high
// score from disk on creation.
func GetOrCreateScore(e *ecs.ECS) *components.ScoreData {
	entry, ok := components.Score.First(e.World)
	if !ok {
		entry = archetypes.Score.Spawn(e)
		components.Score.SetValue(entry, components.ScoreData{
			HighScore: LoadHighScore(),
		})
	}
	return components.Score.Get(entry)
}

// SaveScore persists the high score if this game beat the saved one.
func SaveScore(e *ecs.ECS) {
	entry, ok := components.Score.First(e.World)
	if !ok {
		return
	}
	score := components.Score.Get(entry)
	if score.Score == 0 || score.Score < score.HighScore || score.HighScore <= LoadHighScore() {
		return
	}
	if err := SaveHighScore(score.HighScore); err == nil {
		log.Printf("New high score: %d", score.HighScore)
	}
}

// ScoreText is the HUD line for the current score.
func ScoreText(e *ecs.ECS) string {
	score := GetOrCreateScore(e)
	return fmt.Sprintf("score: %d  best: %d", score.Score, score.HighScore)
}
