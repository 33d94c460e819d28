package core

import "testing"

func TestPosToCell(t *testing.T) {
	origin := Vec3{0, 0, 0}
	cases := []struct {
		p    Vec3
		rho  float64
		want PosCell
	}{
		{Vec3{0, 0, 0}, 0.5, PosCell{0, 0, 0}},
		{Vec3{0.49, 0, 0}, 0.5, PosCell{0, 0, 0}},
		{Vec3{0.5, 0, 0}, 0.5, PosCell{1, 0, 0}},
		{Vec3{-0.01, 0, 0}, 0.5, PosCell{-1, 0, 0}},
		{Vec3{-0.5, 0, 0}, 0.5, PosCell{-1, 0, 0}},
	}
	for _, c := range cases {
		got := PosToCell(c.p, origin, c.rho)
		if got != c.want {
			t.Errorf("PosToCell(%v, rho=%v) = %v, want %v", c.p, c.rho, got, c.want)
		}
	}
}

func TestTimeToIndex(t *testing.T) {
	if got := TimeToIndex(0.24, 0, 0.25); got != 0 {
		t.Errorf("TimeToIndex = %d, want 0", got)
	}
	if got := TimeToIndex(0.25, 0, 0.25); got != 1 {
		t.Errorf("TimeToIndex = %d, want 1", got)
	}
}

func TestWithTime(t *testing.T) {
	c := PosCell{1, 2, 3}
	got := c.WithTime(7)
	want := TimeCell{1, 2, 3, 7}
	if got != want {
		t.Errorf("WithTime = %v, want %v", got, want)
	}
}

func TestInfNorm(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{3, -5, 1}
	if got := InfNorm(a, b); got != 5 {
		t.Errorf("InfNorm = %v, want 5", got)
	}
}
