package lut

import "testing"

type entry struct {
	key uint32
	val int16
}

var increasing = []entry{
	{100, -100},
	{200, -50},
	{300, 0},
	{400, 50},
	{500, 100},
}

var decreasing = []entry{
	{500, -100},
	{400, -50},
	{300, 0},
	{200, 50},
	{100, 100},
}

func key(e entry) uint32 {
	return e.key
}

func TestSearchExactMatch(t *testing.T) {
	for _, table := range [][]entry{increasing, decreasing} {
		for i, e := range table {
			b := Search(table, e.key, key, OrderAuto)
			if !b.Found {
				t.Fatalf("expected exact match for key %d, got %+v", e.key, b)
			}
			if b.Exact != i || b.Lower != i || b.Upper != i {
				t.Fatalf("expected all indices %d for key %d, got %+v", i, e.key, b)
			}
			if b.Clamped {
				t.Fatalf("exact match for key %d unexpectedly clamped", e.key)
			}
		}
	}
}

func TestSearchBracket(t *testing.T) {
	for i := 0; i < len(increasing)-1; i++ {
		target := (increasing[i].key + increasing[i+1].key) / 2
		b := Search(increasing, target, key, OrderIncreasing)
		if b.Found || b.Clamped {
			t.Fatalf("unexpected exact / clamped result for target %d: %+v", target, b)
		}
		if b.Lower != i || b.Upper != i+1 {
			t.Fatalf("expected bracket (%d, %d) for target %d, got %+v", i, i+1, target, b)
		}
	}

	for i := 0; i < len(decreasing)-1; i++ {
		target := (decreasing[i].key + decreasing[i+1].key) / 2
		b := Search(decreasing, target, key, OrderDecreasing)
		if b.Found || b.Clamped {
			t.Fatalf("unexpected exact / clamped result for target %d: %+v", target, b)
		}
		if b.Lower != i || b.Upper != i+1 {
			t.Fatalf("expected bracket (%d, %d) for target %d, got %+v", i, i+1, target, b)
		}
	}
}

func TestSearchClamped(t *testing.T) {
	var tests = []struct {
		name   string
		table  []entry
		target uint32
		lower  int
		upper  int
	}{
		{"increasing below range", increasing, 50, 0, 1},
		{"increasing above range", increasing, 600, 3, 4},
		{"decreasing below range", decreasing, 50, 3, 4},
		{"decreasing above range", decreasing, 600, 0, 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b := Search(test.table, test.target, key, OrderAuto)
			if !b.Clamped || b.Found {
				t.Fatalf("expected clamped result for target %d, got %+v", test.target, b)
			}
			if b.Lower != test.lower || b.Upper != test.upper {
				t.Fatalf("expected edge pair (%d, %d), got %+v", test.lower, test.upper, b)
			}
		})
	}
}

func TestSearchTwoEntryTable(t *testing.T) {

	// A two-entry table can only ever yield an exact match or a clamp, never
	// the normal bracket branch
	table := []entry{{100, 0}, {200, 10}}

	for _, target := range []uint32{50, 150, 250} {
		b := Search(table, target, key, OrderAuto)
		if b.Found {
			t.Fatalf("unexpected exact match for target %d", target)
		}
		if b.Lower != 0 || b.Upper != 1 {
			t.Fatalf("expected edge pair (0, 1) for target %d, got %+v", target, b)
		}
		if wantClamped := target < 100 || target > 200; b.Clamped != wantClamped {
			t.Fatalf("expected clamped=%v for target %d, got %+v", wantClamped, target, b)
		}
	}

	if b := Search(table, 200, key, OrderAuto); !b.Found || b.Exact != 1 {
		t.Fatalf("expected exact match at index 1, got %+v", b)
	}
}

func TestInterpolateMonotonic(t *testing.T) {

	// Walking the target from the lower to the upper key must move the value
	// monotonically from lowVal to highVal, for both table directions
	prev := int16(-100)
	for target := uint32(100); target <= 200; target += 10 {
		v := Interpolate(target, uint32(100), uint32(200), int16(-100), int16(-50))
		if v < prev {
			t.Fatalf("interpolation not monotonic at target %d: %d < %d", target, v, prev)
		}
		prev = v
	}
	if prev != -50 {
		t.Fatalf("expected end value -50, got %d", prev)
	}

	prev = 100
	for target := uint32(500); target >= 400; target -= 10 {
		v := Interpolate(target, uint32(500), uint32(400), int16(100), int16(50))
		if v > prev {
			t.Fatalf("interpolation not monotonic at target %d: %d > %d", target, v, prev)
		}
		prev = v
	}
	if prev != 50 {
		t.Fatalf("expected end value 50, got %d", prev)
	}
}

func TestInterpolateMidpoint(t *testing.T) {
	v := Interpolate(uint32(150), uint32(100), uint32(200), int16(0), int16(101))
	if mean := int16(50); v < mean || v > mean+1 {
		t.Fatalf("midpoint value %d not within one unit of the mean %d", v, mean)
	}
}

func TestInterpolateDegenerateKeys(t *testing.T) {
	if v := Interpolate(uint32(150), uint32(100), uint32(100), int16(11), int16(99)); v != 11 {
		t.Fatalf("expected lower value 11 for equal keys, got %d", v)
	}
}

func TestClamp(t *testing.T) {
	if v := Clamp(int16(500), int16(-400), int16(400)); v != 400 {
		t.Fatalf("expected 400, got %d", v)
	}
	if v := Clamp(int16(-500), int16(-400), int16(400)); v != -400 {
		t.Fatalf("expected -400, got %d", v)
	}
	if v := Clamp(int16(0), int16(-400), int16(400)); v != 0 {
		t.Fatalf("expected 0, got %d", v)
	}
}
