package scene

import (
	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/Carmen-Shannon/oxy-rig/engine/animation"
	"github.com/Carmen-Shannon/oxy-rig/engine/game_object"
)

// GridLayout describes the demo scene: a square ground plane and a grid of unit boxes
// resting on it, spaced along +X and +Z from the origin.
type GridLayout struct {
	GroundSize float32
	Columns    int
	Rows       int
	Spacing    float32
}

// DefaultGridLayout is a 100 unit ground with a 5x5 grid of boxes two units apart.
func DefaultGridLayout() GridLayout {
	return GridLayout{GroundSize: 100, Columns: 5, Rows: 5, Spacing: 2}
}

// Populate adds the ground plane and the box grid to s. Every box gets an idle MoveTo
// so it can be sent around with MoveSelectedTo.
//
// Parameters:
//   - s: the scene to fill
//   - layout: ground size and grid dimensions
//
// Returns:
//   - []uint64: the IDs of the boxes in row-major order
func Populate(s Scene, layout GridLayout) []uint64 {
	ground := s.GroundHeight()
	s.Add(game_object.NewGameObject(
		game_object.WithMesh(common.MeshPlane),
		game_object.WithPosition(0, ground, 0),
		game_object.WithScale(layout.GroundSize, 1, layout.GroundSize),
		game_object.WithColor(common.ColorGround),
		game_object.WithSelectable(false),
	))

	ids := make([]uint64, 0, layout.Columns*layout.Rows)
	for x := 0; x < layout.Columns; x++ {
		for z := 0; z < layout.Rows; z++ {
			ids = append(ids, s.Add(game_object.NewGameObject(
				game_object.WithPosition(float32(x)*layout.Spacing, ground+0.5, float32(z)*layout.Spacing),
				game_object.WithColor(common.ColorBox),
				game_object.WithMover(&animation.MoveTo{}),
			)))
		}
	}
	return ids
}
