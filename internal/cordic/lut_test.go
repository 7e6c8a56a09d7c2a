package cordic

import (
	"math"
	"testing"
)

func TestForWidthCaches(t *testing.T) {
	a := ForWidth(16)
	b := ForWidth(16)
	if a != b {
		t.Fatalf("ForWidth(16) returned distinct tables on second call, cache not hit")
	}
}

func TestArctanTableMonotonicDecreasing(t *testing.T) {
	tb := ForWidth(20)
	for i := 1; i < len(tb.Arctan); i++ {
		if tb.Arctan[i] >= tb.Arctan[i-1] {
			t.Fatalf("Arctan[%d] = %d not less than Arctan[%d] = %d", i, tb.Arctan[i], i-1, tb.Arctan[i-1])
		}
	}
}

func TestGainConstants(t *testing.T) {
	tb := ForWidth(24)
	if math.Abs(tb.KCirc-1.6467602581) > 1e-3 {
		t.Errorf("KCirc = %v, want ~1.6467602581", tb.KCirc)
	}
	if tb.InvKCirc*tb.KCirc < 0.999 || tb.InvKCirc*tb.KCirc > 1.001 {
		t.Errorf("InvKCirc is not the reciprocal of KCirc: %v * %v", tb.InvKCirc, tb.KCirc)
	}
	if tb.InvKHyp*tb.KHyp < 0.999 || tb.InvKHyp*tb.KHyp > 1.001 {
		t.Errorf("InvKHyp is not the reciprocal of KHyp: %v * %v", tb.InvKHyp, tb.KHyp)
	}
}

func TestRepeatedIndices(t *testing.T) {
	idx := repeatedIndices(20)
	counts := map[int]int{}
	for _, i := range idx {
		counts[i]++
	}
	if counts[4] != 2 {
		t.Errorf("index 4 should repeat twice, got %d", counts[4])
	}
	if counts[13] != 2 {
		t.Errorf("index 13 should repeat twice, got %d", counts[13])
	}
	if counts[1] != 1 {
		t.Errorf("index 1 should appear once, got %d", counts[1])
	}
}
