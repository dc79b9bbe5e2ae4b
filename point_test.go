package segno

import "testing"

func TestPointArithmetic(t *testing.T) {
	p := Pt(1, 2)
	q := Pt(3, -4)

	if got := p.Add(q); got != Pt(4, -2) {
		t.Errorf("Add = %v, want (4, -2)", got)
	}
	if got := p.Sub(q); got != Pt(-2, 6) {
		t.Errorf("Sub = %v, want (-2, 6)", got)
	}
	if got := p.Scale(2); got != Pt(2, 4) {
		t.Errorf("Scale = %v, want (2, 4)", got)
	}
}

func TestPointLerp(t *testing.T) {
	p := Pt(0, 0)
	q := Pt(10, 20)

	if got := p.Lerp(q, 0); got != p {
		t.Errorf("Lerp(0) = %v, want %v", got, p)
	}
	if got := p.Lerp(q, 1); got != q {
		t.Errorf("Lerp(1) = %v, want %v", got, q)
	}
	if got := p.Lerp(q, 0.5); got != Pt(5, 10) {
		t.Errorf("Lerp(0.5) = %v, want (5, 10)", got)
	}
}

func TestPtMm(t *testing.T) {
	p := PtMm(25.4, 50.8)
	if !p.AlmostEqual(Pt(72, 144), 1e-9) {
		t.Errorf("PtMm(25.4, 50.8) = %v, want (72, 144)", p)
	}
}
