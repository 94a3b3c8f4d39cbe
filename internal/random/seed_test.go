package random

import "testing"

func TestNewSeed(t *testing.T) {
	a, err := NewSeed()
	if err != nil {
		t.Fatalf("NewSeed: %v", err)
	}
	b, err := NewSeed()
	if err != nil {
		t.Fatalf("NewSeed: %v", err)
	}
	if a == 0 || b == 0 {
		t.Fatalf("NewSeed returned zero")
	}
	if a == b {
		t.Errorf("two crypto seeds collided: %d", a)
	}
}

func TestNew_Deterministic(t *testing.T) {
	x, y := New(1234), New(1234)
	for i := 0; i < 50; i++ {
		if a, b := x.Uint64(), y.Uint64(); a != b {
			t.Fatalf("draw %d differs: %d vs %d", i, a, b)
		}
	}
}

func TestResolve(t *testing.T) {
	got, err := Resolve(77)
	if err != nil || got != 77 {
		t.Errorf("Resolve(77) = %d, %v; want 77, nil", got, err)
	}
	got, err = Resolve(0)
	if err != nil {
		t.Fatalf("Resolve(0): %v", err)
	}
	if got == 0 {
		t.Error("Resolve(0) returned zero")
	}
}
