package divider

import "testing"

func TestConvertMidScale(t *testing.T) {

	// At mid-scale the junction sits at half the reference voltage, so the
	// NTC resistance must come out close to the pullup value
	c := New()

	rX10 := c.ConvertToResistanceX10(512)
	if rX10 == 0 {
		t.Fatal("unexpected sentinel for mid-scale code")
	}

	// 512 * 12700 * 10 / 511
	if want := uint32(127248); rX10 != want {
		t.Fatalf("expected resistance (x10) %d, got %d", want, rX10)
	}
}

func TestConvertDegenerateCodes(t *testing.T) {
	c := New()

	var tests = []struct {
		name   string
		adcRaw uint16
	}{
		{"zero (shorted NTC leg)", 0},
		{"full scale (open NTC leg)", 1023},
		{"beyond full scale", 2000},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if rX10 := c.ConvertToResistanceX10(test.adcRaw); rX10 != 0 {
				t.Fatalf("expected sentinel 0 for code %d, got %d", test.adcRaw, rX10)
			}
		})
	}
}

func TestConvertMonotonic(t *testing.T) {

	// The divider relation is strictly increasing in the ADC code
	c := New()

	var prev uint32
	for code := uint16(1); code < 1023; code++ {
		rX10 := c.ConvertToResistanceX10(code)
		if rX10 <= prev {
			t.Fatalf("resistance not strictly increasing at code %d: %d <= %d", code, rX10, prev)
		}
		prev = rX10
	}
}

func TestPullupFallback(t *testing.T) {

	// A zero pullup is invalid configuration and falls back to the default
	c := New(WithPullupOhms(0))
	ref := New()

	if got, want := c.ConvertToResistanceX10(512), ref.ConvertToResistanceX10(512); got != want {
		t.Fatalf("expected default pullup behavior (want %d, got %d)", want, got)
	}
}

func TestADCBits(t *testing.T) {
	c := New(WithADCBits(12))

	if maxCode := c.MaxCode(); maxCode != 4095 {
		t.Fatalf("expected full-scale code 4095, got %d", maxCode)
	}

	// Mid-scale again lands close to the pullup value
	rX10 := c.ConvertToResistanceX10(2048)
	if rX10 < 126000 || rX10 > 128000 {
		t.Fatalf("expected mid-scale resistance close to pullup, got %d", rX10)
	}

	// Out-of-range resolutions fall back to the 10 bit default
	if maxCode := New(WithADCBits(0)).MaxCode(); maxCode != 1023 {
		t.Fatalf("expected fallback full-scale code 1023, got %d", maxCode)
	}
	if maxCode := New(WithADCBits(24)).MaxCode(); maxCode != 1023 {
		t.Fatalf("expected fallback full-scale code 1023, got %d", maxCode)
	}
}

func TestNoOverflow(t *testing.T) {

	// 16 bit ADC at mid-scale with a large pullup: the raw product exceeds
	// 32 bit, so a non-widened intermediate would have wrapped
	c := New(WithADCBits(16), WithPullupOhms(65535))

	want := uint32(uint64(32768) * 65535 * 10 / 32767)
	if rX10 := c.ConvertToResistanceX10(32768); rX10 != want {
		t.Fatalf("expected resistance (x10) %d, got %d", want, rX10)
	}
}
