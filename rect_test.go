package segno

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(1, 2, 10, 20)
	if got := r.Right(); got != 11 {
		t.Errorf("Right = %v, want 11", got)
	}
	if got := r.Bottom(); got != 22 {
		t.Errorf("Bottom = %v, want 22", got)
	}
}

func TestRectTranslateScale(t *testing.T) {
	r := NewRect(1, 2, 10, 20)
	if got := r.Translate(Pt(5, -2)); got != NewRect(6, 0, 10, 20) {
		t.Errorf("Translate = %v", got)
	}
	if got := r.Scale(2); got != NewRect(2, 4, 20, 40) {
		t.Errorf("Scale = %v", got)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	if !r.Contains(Pt(5, 5)) {
		t.Error("expected interior point to be contained")
	}
	if !r.Contains(Pt(10, 10)) {
		t.Error("expected edge point to be contained")
	}
	if r.Contains(Pt(11, 5)) {
		t.Error("expected outside point to not be contained")
	}
}

func TestRectUnion(t *testing.T) {
	a := NewRect(0, 0, 5, 5)
	b := NewRect(3, 3, 5, 5)
	if got := a.Union(b); got != NewRect(0, 0, 8, 8) {
		t.Errorf("Union = %v, want (0, 0, 8, 8)", got)
	}
}

func TestRectOverlaps(t *testing.T) {
	a := NewRect(0, 0, 5, 5)
	if !a.Overlaps(NewRect(4, 4, 5, 5)) {
		t.Error("expected overlapping rects to report overlap")
	}
	if a.Overlaps(NewRect(5, 0, 5, 5)) {
		t.Error("expected edge-touching rects to not report overlap")
	}
	if a.Overlaps(NewRect(10, 10, 5, 5)) {
		t.Error("expected disjoint rects to not report overlap")
	}
}
