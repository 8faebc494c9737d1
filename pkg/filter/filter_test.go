package filter

import "testing"

func TestEMAConvergence(t *testing.T) {

	// alpha = 0.5, seed 0: feeding a constant 10 must converge towards 10
	// monotonically (5, then 7 after fixed-point truncation)
	f := NewEMA(0.5, 0)

	if v := f.Apply(10); v != 5 {
		t.Fatalf("expected 5 after first application, got %d", v)
	}
	if v := f.Apply(10); v != 7 {
		t.Fatalf("expected 7 after second application, got %d", v)
	}

	prev := int16(7)
	for i := 0; i < 16; i++ {
		v := f.Apply(10)
		if v < prev || v > 10 {
			t.Fatalf("EMA not monotonically converging towards 10: %d after %d", v, prev)
		}
		prev = v
	}
}

func TestEMAAlphaFallback(t *testing.T) {

	// Alpha outside (0, 1) is normalized to 0.5 at construction, so both
	// filters must behave identically
	var tests = []struct {
		name  string
		alpha float64
	}{
		{"negative", -0.3},
		{"zero", 0.},
		{"one", 1.},
		{"above one", 1.5},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f, ref := NewEMA(test.alpha, 0), NewEMA(0.5, 0)
			for i := 0; i < 8; i++ {
				if v, want := f.Apply(100), ref.Apply(100); v != want {
					t.Fatalf("expected clamped alpha to behave like 0.5 (want %d, got %d)", want, v)
				}
			}
		})
	}
}

func TestEMASeed(t *testing.T) {

	// Seeding with the first raw reading makes the first application an
	// identity for a constant input
	f := NewEMA(0.15, 213)
	if v := f.Apply(213); v != 213 {
		t.Fatalf("expected seeded filter to return 213 for constant input, got %d", v)
	}
}

func TestSMAConvergence(t *testing.T) {

	// window = 4, seed 0: feeding a constant 8 must converge towards 8 from
	// below, never overshooting
	f := NewSMA(4, 0)

	if v := f.Apply(8); v != 2 {
		t.Fatalf("expected 2 after first application, got %d", v)
	}

	prev := int16(2)
	for i := 0; i < 16; i++ {
		v := f.Apply(8)
		if v < prev || v > 8 {
			t.Fatalf("SMA not monotonically converging towards 8: %d after %d", v, prev)
		}
		prev = v
	}
}

func TestSMAWindowFallback(t *testing.T) {

	// A window of 0 is clamped to 1, turning the filter into a pass-through
	f := NewSMA(0, 0)
	for _, v := range []int16{10, -20, 300} {
		if got := f.Apply(v); got != v {
			t.Fatalf("expected pass-through value %d, got %d", v, got)
		}
	}
}

func TestSMANegativeInput(t *testing.T) {
	f := NewSMA(2, 0)
	if v := f.Apply(-100); v != -50 {
		t.Fatalf("expected -50, got %d", v)
	}
	if v := f.Apply(-100); v != -75 {
		t.Fatalf("expected -75, got %d", v)
	}
}
