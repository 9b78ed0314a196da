package chalk

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Node simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenFill,
// TweenAlpha, ...) and call Update(dt) each frame, or hand it to a Timeline.
// The group auto-applies values each update. If the target node is disposed,
// the group stops immediately.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Node
	Done   bool

	// OnComplete, if set, runs once when the group finishes (including the
	// early finish caused by target disposal).
	OnComplete func()
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. If the target node has been disposed, Done is set to true and no
// writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.finish()
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	if allDone {
		g.finish()
	}
}

func (g *TweenGroup) finish() {
	g.Done = true
	if g.OnComplete != nil {
		g.OnComplete()
		g.OnComplete = nil
	}
}

func newGroup(node *Node, duration float32, fn ease.TweenFunc, pairs ...fieldTween) *TweenGroup {
	g := &TweenGroup{count: len(pairs), target: node}
	for i, p := range pairs {
		g.tweens[i] = gween.New(float32(*p.field), float32(p.to), duration, fn)
		g.fields[i] = p.field
	}
	return g
}

type fieldTween struct {
	field *float64
	to    float64
}

// TweenPosition creates a TweenGroup that animates node.X and node.Y to the
// given target coordinates over the specified duration.
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newGroup(node, duration, fn,
		fieldTween{&node.X, toX},
		fieldTween{&node.Y, toY},
	)
}

// TweenSize creates a TweenGroup that animates a box node's Width and Height.
func TweenSize(node *Node, toW, toH float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newGroup(node, duration, fn,
		fieldTween{&node.Width, toW},
		fieldTween{&node.Height, toH},
	)
}

// TweenEndpoints creates a TweenGroup that animates a connector's start and
// end points together.
func TweenEndpoints(node *Node, toX, toY, toEndX, toEndY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newGroup(node, duration, fn,
		fieldTween{&node.X, toX},
		fieldTween{&node.Y, toY},
		fieldTween{&node.EndX, toEndX},
		fieldTween{&node.EndY, toEndY},
	)
}

// TweenFill creates a TweenGroup that animates all four components of
// node.Fill to the target color.
func TweenFill(node *Node, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newGroup(node, duration, fn,
		fieldTween{&node.Fill.R, to.R},
		fieldTween{&node.Fill.G, to.G},
		fieldTween{&node.Fill.B, to.B},
		fieldTween{&node.Fill.A, to.A},
	)
}

// TweenStroke creates a TweenGroup that animates all four components of
// node.Stroke to the target color.
func TweenStroke(node *Node, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newGroup(node, duration, fn,
		fieldTween{&node.Stroke.R, to.R},
		fieldTween{&node.Stroke.G, to.G},
		fieldTween{&node.Stroke.B, to.B},
		fieldTween{&node.Stroke.A, to.A},
	)
}

// TweenAlpha creates a TweenGroup that animates node.Alpha to the target value.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newGroup(node, duration, fn, fieldTween{&node.Alpha, to})
}

// TweenRadius creates a TweenGroup that animates node.Radius to the target value.
func TweenRadius(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newGroup(node, duration, fn, fieldTween{&node.Radius, to})
}

// --- Timeline ---

// Timeline collects tween groups and advances them together. Structures
// register their animated transitions here; the host game loop calls Update
// once per frame. Finished groups are pruned automatically.
type Timeline struct {
	groups []*TweenGroup
}

// Add registers tween groups to be advanced by Update.
func (t *Timeline) Add(groups ...*TweenGroup) {
	t.groups = append(t.groups, groups...)
}

// Update advances all pending groups by dt seconds.
func (t *Timeline) Update(dt float32) {
	live := t.groups[:0]
	for _, g := range t.groups {
		g.Update(dt)
		if !g.Done {
			live = append(live, g)
		}
	}
	// Clear the tail so finished groups are not retained.
	for i := len(live); i < len(t.groups); i++ {
		t.groups[i] = nil
	}
	t.groups = live
}

// Idle reports whether no animations are pending.
func (t *Timeline) Idle() bool {
	return len(t.groups) == 0
}

// Finish runs all pending groups to completion immediately.
func (t *Timeline) Finish() {
	for !t.Idle() {
		t.Update(1)
	}
}
