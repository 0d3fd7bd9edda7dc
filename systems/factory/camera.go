package factory

import (
	"github.com/automoto/tilepaste/archetypes"
	"github.com/automoto/tilepaste/components"
	"github.com/automoto/tilepaste/shared/grid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera opens a width x height view over world, centered on
// (focusX, focusY) as far as the world edges allow.
func CreateCamera(ecs *ecs.ECS, world *grid.World, width, height, focusX, focusY int, policy grid.Policy) (*donburi.Entry, error) {
	view, err := grid.NewView(world, focusX-width/2, focusY-height/2, width, height, policy)
	if err != nil {
		return nil, err
	}
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{View: view})
	return camera, nil
}
