package mathutil

import "testing"

func TestHash2Deterministic(t *testing.T) {
	if Hash2(7, 3, -4) != Hash2(7, 3, -4) {
		t.Fatal("Hash2 should be deterministic")
	}
	if Hash2(7, 3, -4) == Hash2(8, 3, -4) {
		t.Error("Expected different seeds to give different hashes")
	}
	if Hash2(7, 3, 4) == Hash2(7, 4, 3) {
		t.Error("Expected swapped axes to give different hashes")
	}
}

func TestUnitFloatRange(t *testing.T) {
	for _, h := range []uint32{0, 1, 0x7fffffff, 0xffffffff, Hash32(42)} {
		f := UnitFloat(h)
		if f < 0 || f >= 1 {
			t.Errorf("UnitFloat(%#x) = %v, want [0,1)", h, f)
		}
	}
}

func TestIntClamp(t *testing.T) {
	tests := []struct {
		x, lo, hi, want int
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{300, 0, 255, 255},
	}
	for _, tt := range tests {
		if got := IntClamp(tt.x, tt.lo, tt.hi); got != tt.want {
			t.Errorf("IntClamp(%d, %d, %d) = %d, want %d", tt.x, tt.lo, tt.hi, got, tt.want)
		}
	}
}
