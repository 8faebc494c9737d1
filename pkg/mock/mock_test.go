package mock

import "testing"

func TestSampleCycle(t *testing.T) {
	s := New(100, 200, 300)

	for i, want := range []uint16{100, 200, 300, 100, 200} {
		if got := s.Sample(); got != want {
			t.Fatalf("expected code %d at position %d, got %d", want, i, got)
		}
	}
}

func TestSampleDefault(t *testing.T) {
	s := New()

	if got := s.Sample(); got != 512 {
		t.Fatalf("expected default mid-scale code 512, got %d", got)
	}
}

func TestSampleJitter(t *testing.T) {
	s := New(512).WithJitter(4)

	for i := 0; i < 1000; i++ {
		if got := s.Sample(); got < 508 || got > 516 {
			t.Fatalf("jittered code %d outside expected range [508, 516]", got)
		}
	}
}
