package tilekit

import "testing"

func TestRectContainsPoint(t *testing.T) {
	r := NewRect(10, 10, 20, 20)
	cases := []struct {
		x, y int
		want bool
	}{
		{10, 10, true},
		{29, 29, true},
		{30, 10, false},
		{10, 30, false},
		{9, 10, false},
		{15, 15, true},
	}
	for _, c := range cases {
		if got := r.ContainsPoint(c.x, c.y); got != c.want {
			t.Errorf("ContainsPoint(%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestRectEmpty(t *testing.T) {
	if !EmptyRect().Empty() {
		t.Fatal("EmptyRect() should be empty")
	}
	if NewRect(0, 0, 1, 1).Empty() {
		t.Fatal("1x1 rect should not be empty")
	}
	if !(Rect{X1: 5, Y1: 5, X2: 5, Y2: 10}).Empty() {
		t.Fatal("zero-width rect should be empty")
	}
}

func TestRectOverlaps(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 15, 15)
	c := NewRect(10, 10, 20, 20)
	if !a.Overlaps(b) {
		t.Fatal("a and b should overlap")
	}
	if a.Overlaps(c) {
		t.Fatal("half-open rects meeting only at a corner should not overlap")
	}
}

func TestRectIntersect(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 15, 15)
	got := a.Intersect(b)
	want := NewRect(5, 5, 5, 5) // corners (5,5)-(10,10)
	if got != want {
		t.Fatalf("Intersect = %+v, want %+v", got, want)
	}

	disjoint := NewRect(100, 100, 110, 110)
	got = a.Intersect(disjoint)
	if !got.Empty() {
		t.Fatalf("disjoint intersection should be empty, got %+v", got)
	}
	if got.X2 != got.X1 || got.Y2 != got.Y1 {
		t.Fatalf("disjoint intersection should have x2=x1 and y2=y1, got %+v", got)
	}
}

func TestRectIntersectIdempotent(t *testing.T) {
	a := NewRect(3, 3, 12, 12)
	if got := a.Intersect(a); got != a {
		t.Fatalf("Intersect(A,A) = %+v, want %+v", got, a)
	}
}

func TestRectSetPos(t *testing.T) {
	r := NewRect(5, 5, 15, 25)
	moved := r.SetPos(100, 200)
	if moved.Width() != r.Width() || moved.Height() != r.Height() {
		t.Fatalf("SetPos must preserve size: got %+v", moved)
	}
	if moved.X1 != 100 || moved.Y1 != 200 {
		t.Fatalf("SetPos origin wrong: %+v", moved)
	}
}
