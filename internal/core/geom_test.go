package core

import "testing"

func TestGridDimensions(t *testing.T) {
	g := Grid{Width: 224, Height: 320, CellSize: 32}

	if g.Cols() != 7 {
		t.Errorf("Cols() = %d, expected 7", g.Cols())
	}
	if g.Rows() != 10 {
		t.Errorf("Rows() = %d, expected 10", g.Rows())
	}
	if g.Cells() != 70 {
		t.Errorf("Cells() = %d, expected 70", g.Cells())
	}

	p := g.CellAt(6, 9)
	if p != (Point{X: 192, Y: 288}) {
		t.Errorf("CellAt(6, 9) = %+v, expected (192, 288)", p)
	}
	if !g.Contains(p) {
		t.Errorf("Contains(%+v) should be true for the last cell", p)
	}
}

func TestGridWrap(t *testing.T) {
	g := Grid{Width: 224, Height: 320, CellSize: 32}

	tests := []struct {
		name     string
		in       Point
		expected Point
	}{
		{"inside unchanged", Point{X: 64, Y: 96}, Point{X: 64, Y: 96}},
		{"past right edge", Point{X: 224, Y: 32}, Point{X: 0, Y: 32}},
		{"past left edge", Point{X: -32, Y: 32}, Point{X: 192, Y: 32}},
		{"past top edge", Point{X: 32, Y: 320}, Point{X: 32, Y: 0}},
		{"past bottom edge", Point{X: 32, Y: -32}, Point{X: 32, Y: 288}},
		{"both axes", Point{X: -32, Y: 320}, Point{X: 192, Y: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := g.Wrap(tc.in)
			if result != tc.expected {
				t.Errorf("Wrap(%+v) = %+v, expected %+v", tc.in, result, tc.expected)
			}
			if !g.Contains(result) {
				t.Errorf("Wrap(%+v) = %+v is outside the grid", tc.in, result)
			}
		})
	}
}

func TestPointAdd(t *testing.T) {
	p := Point{X: 32, Y: 64}.Add(Point{X: -32, Y: 32})
	if p != (Point{X: 0, Y: 96}) {
		t.Errorf("Add() = %+v, expected (0, 96)", p)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{0.016, 0.0, 0.25, 0.016},
		{-0.5, 0.0, 0.25, 0.0},
		{3.0, 0.0, 0.25, 0.25},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestInputFrameDown(t *testing.T) {
	var f InputFrame
	if f.Down(ActionLeft) {
		t.Error("zero frame should report no keys down")
	}

	f.Set(ActionLeft)
	var keys KeySource = f
	if !keys.Down(ActionLeft) {
		t.Error("Down(Left) should be true after Set")
	}
	if keys.Down(ActionRight) {
		t.Error("Down(Right) should be false")
	}

	f.Clear()
	if f.Down(ActionLeft) {
		t.Error("Down(Left) should be false after Clear")
	}
}
