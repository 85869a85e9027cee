package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func pt(x, y int) core.Point {
	return core.Point{X: x, Y: y}
}

func TestBodyPushPop(t *testing.T) {
	var b Body

	if _, ok := b.PopFront(); ok {
		t.Fatal("PopFront on empty body should report false")
	}

	b.PushBack(pt(1, 0))
	b.PushBack(pt(2, 0))
	b.PushFront(pt(0, 0))

	if b.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", b.Len())
	}
	for i, want := range []core.Point{pt(0, 0), pt(1, 0), pt(2, 0)} {
		if got := b.At(i); got != want {
			t.Errorf("At(%d) = %+v, expected %+v", i, got, want)
		}
	}

	p, ok := b.PopFront()
	if !ok || p != pt(0, 0) {
		t.Errorf("PopFront() = %+v, %v; expected (0,0), true", p, ok)
	}
	if b.Len() != 2 {
		t.Errorf("Len() after pop = %d, expected 2", b.Len())
	}
}

func TestBodyGrowthKeepsOrderAcrossWrap(t *testing.T) {
	var b Body

	// Move the front cursor away from zero so the data wraps in the buffer.
	for i := 0; i < 6; i++ {
		b.PushBack(pt(i, 0))
	}
	for _i := 0; _i < 4; _i++ {
		b.PopFront()
	}
	// Front is now 4, 5; push enough to force several reallocations.
	for i := 6; i < 30; i++ {
		b.PushBack(pt(i, 0))
	}
	for i := 3; i >= 0; i-- {
		b.PushFront(pt(i, 0))
	}

	if b.Len() != 30 {
		t.Fatalf("Len() = %d, expected 30", b.Len())
	}
	for i := 0; i < 30; i++ {
		if got := b.At(i); got != pt(i, 0) {
			t.Fatalf("At(%d) = %+v, expected (%d, 0)", i, got, i)
		}
	}
}

func TestBodyRecycle(t *testing.T) {
	var b Body
	b.Recycle(pt(9, 9)) // no-op on an empty body
	if b.Len() != 0 {
		t.Fatalf("Recycle on empty body should not add segments, Len() = %d", b.Len())
	}

	b.PushBack(pt(0, 0))
	b.PushBack(pt(1, 0))
	b.PushBack(pt(2, 0))
	b.Recycle(pt(3, 0))

	if b.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", b.Len())
	}
	want := []core.Point{pt(3, 0), pt(2, 0), pt(1, 0)}
	got := b.NearestFirst()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("NearestFirst()[%d] = %+v, expected %+v", i, got[i], want[i])
		}
	}
	if b.Contains(pt(0, 0)) {
		t.Error("recycled slot should no longer hold its old position")
	}
	if !b.Contains(pt(3, 0)) {
		t.Error("recycled slot should hold the new position")
	}
}

func TestBodyClear(t *testing.T) {
	var b Body
	b.PushBack(pt(0, 0))
	b.PushBack(pt(1, 0))
	b.Clear()

	if b.Len() != 0 {
		t.Errorf("Len() after Clear = %d, expected 0", b.Len())
	}
	if b.Contains(pt(0, 0)) {
		t.Error("cleared body should contain nothing")
	}
}
