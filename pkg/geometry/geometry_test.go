package geometry

import "testing"

func TestClamp(t *testing.T) {
	cases := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"interior", 5, 0, 10, 5},
		{"below", -3, 0, 10, 0},
		{"above", 42, 0, 10, 10},
		{"at low bound", 0, 0, 10, 0},
		{"at high bound", 10, 0, 10, 10},
		{"collapsed range", 7, 3, 3, 3},
	}
	for _, tc := range cases {
		if got := Clamp(tc.v, tc.lo, tc.hi); got != tc.want {
			t.Errorf("%s: Clamp(%v, %v, %v) = %v, want %v", tc.name, tc.v, tc.lo, tc.hi, got, tc.want)
		}
	}
}

func TestAxisAccessors(t *testing.T) {
	size := Size{Width: 30, Height: 70}
	offset := Offset{X: 3, Y: 7}
	insets := Insets{Top: 1, Bottom: 2, Left: 4, Right: 8}

	if got := Vertical.MainExtent(size); got != 70 {
		t.Errorf("Vertical.MainExtent = %v, want 70", got)
	}
	if got := Horizontal.MainExtent(size); got != 30 {
		t.Errorf("Horizontal.MainExtent = %v, want 30", got)
	}
	if got := Vertical.CrossExtent(size); got != 30 {
		t.Errorf("Vertical.CrossExtent = %v, want 30", got)
	}
	if got := Vertical.Component(offset); got != 7 {
		t.Errorf("Vertical.Component = %v, want 7", got)
	}
	if got := Horizontal.Component(offset); got != 3 {
		t.Errorf("Horizontal.Component = %v, want 3", got)
	}
	if got := Vertical.MainInsets(insets); got != 3 {
		t.Errorf("Vertical.MainInsets = %v, want 3", got)
	}
	if got := Horizontal.MainInsets(insets); got != 12 {
		t.Errorf("Horizontal.MainInsets = %v, want 12", got)
	}

	moved := Vertical.WithComponent(offset, 99)
	if moved.Y != 99 || moved.X != 3 {
		t.Errorf("Vertical.WithComponent = %+v, want X:3 Y:99", moved)
	}
}

func TestRectContains(t *testing.T) {
	r := RectFromLTWH(10, 20, 30, 40)

	if !r.Contains(Offset{X: 10, Y: 20}) {
		t.Error("top-left corner should be inside")
	}
	if r.Contains(Offset{X: 40, Y: 30}) {
		t.Error("right edge should be outside")
	}
	if r.Contains(Offset{X: 20, Y: 60}) {
		t.Error("bottom edge should be outside")
	}
	if !r.Contains(r.Center()) {
		t.Error("center should be inside")
	}
}

func TestRectShrink(t *testing.T) {
	r := RectFromLTWH(0, 0, 100, 50)
	in := Insets{Top: 2, Bottom: 3, Left: 4, Right: 5}

	got := r.Shrink(in)
	want := Rect{Left: 4, Top: 2, Right: 95, Bottom: 47}
	if got != want {
		t.Errorf("Shrink = %+v, want %+v", got, want)
	}
}

func TestOverflowAxesAllows(t *testing.T) {
	oa := OverflowAxes{X: OverflowVisible, Y: OverflowScroll}

	if !oa.Allows(Vertical) {
		t.Error("Y scroll should allow vertical")
	}
	if oa.Allows(Horizontal) {
		t.Error("X visible should not allow horizontal")
	}
}
