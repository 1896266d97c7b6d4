package aoc

import "testing"

func TestSum(t *testing.T) {
	if got := Sum(1, 2, 3); got != 6 {
		t.Errorf("Sum = %d, want 6", got)
	}
	if got := Sum[float64](); got != 0 {
		t.Errorf("Sum() = %v, want 0", got)
	}
}

func TestInt(t *testing.T) {
	if got := Int(" 42\n"); got != 42 {
		t.Errorf("Int = %d, want 42", got)
	}
	defer func() {
		if recover() == nil {
			t.Errorf("Int(x) did not panic")
		}
	}()
	Int("x")
}
