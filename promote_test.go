package libq

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPromoteSum(t *testing.T) {
	a := Descriptor{IntBits: 10, FracBits: 20, ScaleExp: 0, Signed: true}
	b := Descriptor{IntBits: 10, FracBits: 20, ScaleExp: 0, Signed: true}
	got := PromoteSum(a, b)
	want := Descriptor{IntBits: 11, FracBits: 20, ScaleExp: 0, Signed: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PromoteSum() mismatch (-want +got):\n%s", diff)
	}
}

func TestPromoteSumClosedDegeneratesToA(t *testing.T) {
	a := Descriptor{IntBits: 40, FracBits: 23, Signed: true}
	b := Descriptor{IntBits: 40, FracBits: 23, Signed: true}
	got := PromoteSum(a, b)
	if diff := cmp.Diff(a, got); diff != "" {
		t.Errorf("PromoteSum() on a closed pair did not degenerate to A (-want +got):\n%s", diff)
	}
}

func TestPromoteProduct(t *testing.T) {
	a := Descriptor{IntBits: 10, FracBits: 20, ScaleExp: 1, Signed: true}
	b := Descriptor{IntBits: 4, FracBits: 10, ScaleExp: 2, Signed: false}
	got := PromoteProduct(a, b)
	want := Descriptor{IntBits: 14, FracBits: 30, ScaleExp: 3, Signed: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PromoteProduct() mismatch (-want +got):\n%s", diff)
	}
}

func TestPromoteQuotient(t *testing.T) {
	a := Descriptor{IntBits: 10, FracBits: 20, Signed: true}
	b := Descriptor{IntBits: 10, FracBits: 20, Signed: true}
	got := PromoteQuotient(a, b)
	want := Descriptor{IntBits: 20, FracBits: 10, ScaleExp: 0, Signed: true} // f = 20 + (10 - 20)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PromoteQuotient() mismatch (-want +got):\n%s", diff)
	}
}

func TestPromoteFuncSameFormat(t *testing.T) {
	a := Descriptor{IntBits: 8, FracBits: 24, Signed: true, Overflow: PolicySaturate}
	got := PromoteFunc(FuncSameFormat, a)
	if diff := cmp.Diff(a, got); diff != "" {
		t.Errorf("PromoteFunc(FuncSameFormat) mismatch (-want +got):\n%s", diff)
	}
}

func TestPromoteFuncLogPromoted(t *testing.T) {
	a := Descriptor{IntBits: 8, FracBits: 24, Signed: true}
	got := PromoteFunc(FuncLogPromoted, a)
	// terms = 32, ceil(log2(32)) = 5
	want := Descriptor{IntBits: 13, FracBits: 24, Signed: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PromoteFunc(FuncLogPromoted) mismatch (-want +got):\n%s", diff)
	}
}

func TestPromoteFuncExpPromotedIsUnsigned(t *testing.T) {
	a := Descriptor{IntBits: 8, FracBits: 24, Signed: true}
	got := PromoteFunc(FuncExpPromoted, a)
	if got.Signed {
		t.Errorf("PromoteFunc(FuncExpPromoted).Signed = true, want false")
	}
}

func TestPromoteFuncSqrtPromoted(t *testing.T) {
	a := Descriptor{IntBits: 10, FracBits: 20, Signed: true}
	got := PromoteFunc(FuncSqrtPromoted, a)
	want := Descriptor{IntBits: 6, FracBits: 20, Signed: true} // ceil(10/2)+1 = 6
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PromoteFunc(FuncSqrtPromoted) mismatch (-want +got):\n%s", diff)
	}
}
