package segno

import (
	"math"
	"testing"
)

func TestUnitConversions(t *testing.T) {
	if got := Inch(1); got != 72 {
		t.Errorf("Inch(1) = %v, want 72", got)
	}
	if got := Mm(25.4); !got.AlmostEqual(72, 1e-9) {
		t.Errorf("Mm(25.4) = %v, want 72", got)
	}
	if got := GraphicUnits(12.5); got != 12.5 {
		t.Errorf("GraphicUnits(12.5) = %v, want 12.5", got)
	}
}

func TestUnitRoundTrip(t *testing.T) {
	u := Mm(17.3)
	if got := u.Mm(); math.Abs(got-17.3) > 1e-9 {
		t.Errorf("Mm round trip = %v, want 17.3", got)
	}
	u = Inch(2.5)
	if got := u.Inch(); math.Abs(got-2.5) > 1e-9 {
		t.Errorf("Inch round trip = %v, want 2.5", got)
	}
	if got := Unit(42).Pt(); got != 42 {
		t.Errorf("Pt() = %v, want 42", got)
	}
}

func TestUnitAbs(t *testing.T) {
	if got := Unit(-3).Abs(); got != 3 {
		t.Errorf("(-3).Abs() = %v, want 3", got)
	}
	if got := Unit(3).Abs(); got != 3 {
		t.Errorf("(3).Abs() = %v, want 3", got)
	}
}

func TestUnitRound(t *testing.T) {
	if got := Unit(2.5).Round(); got != 3 {
		t.Errorf("(2.5).Round() = %v, want 3", got)
	}
	if got := Unit(-1.2).Round(); got != -1 {
		t.Errorf("(-1.2).Round() = %v, want -1", got)
	}
}

func TestUnitAlmostEqual(t *testing.T) {
	if !Unit(1).AlmostEqual(1+1e-10, 1e-9) {
		t.Error("expected values within epsilon to compare equal")
	}
	if Unit(1).AlmostEqual(1.1, 1e-9) {
		t.Error("expected values outside epsilon to compare unequal")
	}
}

func TestMinMaxUnit(t *testing.T) {
	if got := MaxUnit(2, 5); got != 5 {
		t.Errorf("MaxUnit(2, 5) = %v, want 5", got)
	}
	if got := MinUnit(2, 5); got != 2 {
		t.Errorf("MinUnit(2, 5) = %v, want 2", got)
	}
}
