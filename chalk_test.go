package chalk

import (
	"errors"
	"math"
	"testing"
)

// stubFont has fixed, display-independent metrics: every rune advances by
// 0.6*size and the cap height is 0.7*size. Geometry tests derive expectations
// from the same formulas the code uses, so they hold for any metrics.
type stubFont struct{}

func (stubFont) MeasureString(s string, size float64) (float64, float64) {
	return 0.6 * size * float64(len([]rune(s))), 0.7 * size
}

func (stubFont) LineHeight(size float64) float64 {
	return size * 1.2
}

func testFont() Font { return stubFont{} }

// --- Assertion helpers ---

func assertEqual[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func assertClose(t *testing.T, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-6 {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func assertTrue(t *testing.T, cond bool, msg string) {
	t.Helper()
	if !cond {
		t.Fatal(msg)
	}
}

func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func assertErrorAs[T error](t *testing.T, err error) T {
	t.Helper()
	var want T
	if !errors.As(err, &want) {
		t.Fatalf("got error %v (%T), want %T", err, err, want)
	}
	return want
}

func assertPanics(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	fn()
}

// --- Construction helpers ---

func newTestArray(t *testing.T, values ...any) (*Scene, *Array) {
	t.Helper()
	scene := NewScene()
	arr, err := NewArray(scene, values, ArrayConfig{Font: testFont()})
	assertNoError(t, err)
	return scene, arr
}

func newTestString(t *testing.T, value string) (*Scene, *String) {
	t.Helper()
	scene := NewScene()
	s, err := NewString(scene, value, StringConfig{Font: testFont()})
	assertNoError(t, err)
	return scene, s
}

func newTestList(t *testing.T, values ...any) (*Scene, *LinkedList) {
	t.Helper()
	scene := NewScene()
	l, err := NewLinkedList(scene, CreateLinkedList(values), LinkedListConfig{Font: testFont()})
	assertNoError(t, err)
	return scene, l
}
