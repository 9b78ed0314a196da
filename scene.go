package chalk

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level object that owns the node tree and the timeline that
// drives animated transitions. A scene is single-threaded and frame-
// sequential: all structure mutation happens between frames, never during
// Draw.
type Scene struct {
	root     *Node
	timeline Timeline
	debug    bool
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	return &Scene{root: NewContainer("root")}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Timeline returns the scene's animation timeline.
func (s *Scene) Timeline() *Timeline {
	return &s.timeline
}

// SetDebug toggles per-update invariant checking for structures attached to
// this scene.
func (s *Scene) SetDebug(on bool) {
	s.debug = on
}

// Update advances pending animations by dt seconds.
func (s *Scene) Update(dt float64) {
	s.timeline.Update(float32(dt))
}

// Idle reports whether all animated transitions have settled.
func (s *Scene) Idle() bool {
	return s.timeline.Idle()
}

// Draw renders the node tree to the given screen image.
func (s *Scene) Draw(screen *ebiten.Image) {
	drawNode(screen, s.root, 0, 0, 1)
}
