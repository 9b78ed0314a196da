package chalk

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenPositionReachesTarget(t *testing.T) {
	n := NewBox("n", 10, 10)
	g := TweenPosition(n, 100, 50, 0.2, ease.Linear)

	g.Update(0.1)
	assertTrue(t, !g.Done, "finished early")
	assertClose(t, n.X, 50)

	g.Update(0.1)
	assertTrue(t, g.Done, "should be done")
	assertClose(t, n.X, 100)
	assertClose(t, n.Y, 50)
}

func TestTweenFillAnimatesAllComponents(t *testing.T) {
	n := NewBox("n", 10, 10)
	n.Fill = Color{0, 0, 0, 1}
	g := TweenFill(n, Color{1, 1, 1, 1}, 0.1, ease.Linear)
	g.Update(0.1)
	assertEqual(t, n.Fill, Color{1, 1, 1, 1})
}

func TestTweenStopsOnDisposedTarget(t *testing.T) {
	n := NewBox("n", 10, 10)
	fired := false
	g := TweenPosition(n, 100, 0, 1, ease.Linear)
	g.OnComplete = func() { fired = true }

	n.Dispose()
	g.Update(0.016)
	assertTrue(t, g.Done, "disposed target must stop the group")
	assertTrue(t, fired, "OnComplete must still fire")
}

func TestOnCompleteFiresOnce(t *testing.T) {
	n := NewBox("n", 10, 10)
	count := 0
	g := TweenAlpha(n, 0, 0.1, ease.Linear)
	g.OnComplete = func() { count++ }
	g.Update(1)
	g.Update(1)
	assertEqual(t, count, 1)
}

func TestTimelinePrunesFinishedGroups(t *testing.T) {
	var tl Timeline
	n := NewBox("n", 10, 10)
	tl.Add(TweenAlpha(n, 0, 0.1, ease.Linear))
	assertTrue(t, !tl.Idle(), "group pending")

	tl.Update(1)
	assertTrue(t, tl.Idle(), "finished group not pruned")
}

func TestTimelineFinish(t *testing.T) {
	var tl Timeline
	n := NewBox("n", 10, 10)
	tl.Add(TweenPosition(n, 42, 0, 5, ease.Linear))
	tl.Finish()
	assertTrue(t, tl.Idle(), "Finish must drain the timeline")
	assertClose(t, n.X, 42)
}
