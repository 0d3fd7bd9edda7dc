package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Solid  = donburi.NewTag().SetName("Solid")
	Prop   = donburi.NewTag().SetName("Prop")
)

// Resolv tags for collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
)
