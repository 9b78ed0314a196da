// Package chalk renders animated visual representations of arrays, strings,
// and linked lists on top of Ebitengine, for step-by-step algorithm
// walkthroughs.
//
// A Scene owns a flat node tree and a timeline of tweens. Structures (Array,
// String, LinkedList) attach themselves to the scene and expose a small
// imperative API: update the logical value, highlight elements, attach
// labeled pointers. The visual state is reconciled against each new value,
// so highlights and pointers survive structural rebuilds.
//
//	scene := chalk.NewScene()
//	arr, err := chalk.NewArray(scene, []any{5, 3, 8}, chalk.ArrayConfig{
//		Font:     font,
//		Pos:      chalk.Vec2{X: 80, Y: 120},
//		Animated: true,
//	})
//	...
//	arr.HighlightContainers([]int{0, 2})
//	arr.UpdateValue([]any{3, 5, 8}, true)
//
// The host game loop drives animation by calling scene.Update(dt) each tick
// and scene.Draw(screen) each frame. Everything is single-threaded: all
// mutation happens between frames on the game loop goroutine.
package chalk
