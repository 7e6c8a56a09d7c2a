package libq

import (
	"errors"
	"testing"
)

// TestAddExactSum checks Q(10,20) signed, x=1.5, y=0.25,
// x+y = 1.75 exactly, stored integer 1835008.
func TestAddExactSum(t *testing.T) {
	x, err := New[Q10_20](1.5)
	if err != nil {
		t.Fatalf("New(1.5): %v", err)
	}
	y, err := New[Q10_20](0.25)
	if err != nil {
		t.Fatalf("New(0.25): %v", err)
	}
	sum, err := Add[Q10_20, Q10_20, Q10_20](x, y)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if sum.Value() != 1835008 {
		t.Errorf("Add(1.5, 0.25).Value() = %d, want 1835008", sum.Value())
	}
	if sum.Float() != 1.75 {
		t.Errorf("Add(1.5, 0.25).Float() = %v, want 1.75", sum.Float())
	}
}

// TestAddOverflowRaises checks Q(5,10) signed, overflow=raise,
// x=15.5, y=16.5, x+y raises overflow.
func TestAddOverflowRaises(t *testing.T) {
	x, err := New[Q5_10Raise](15.5)
	if err != nil {
		t.Fatalf("New(15.5): %v", err)
	}
	y, err := New[Q5_10Raise](16.5)
	if err != nil {
		t.Fatalf("New(16.5): %v", err)
	}
	_, err = Add[Q5_10Raise, Q5_10Raise, Q5_10Raise](x, y)
	if !errors.Is(err, ErrOverflow) {
		t.Errorf("Add(15.5, 16.5) error = %v, want ErrOverflow", err)
	}
}

// TestAddAtMaxRaises checks UQ(4,28), x at the format's largest
// representable value, x + wrap(1) raises overflow.
func TestAddAtMaxRaises(t *testing.T) {
	x := Max[UQ4_28Raise]()
	one := MustWrap[UQ4_28Raise](1)
	_, err := Add[UQ4_28Raise, UQ4_28Raise, UQ4_28Raise](x, one)
	if !errors.Is(err, ErrOverflow) {
		t.Errorf("Add(Max, wrap(1)) error = %v, want ErrOverflow", err)
	}
}

// TestDivMulRoundTrip checks Q(10,20), a=3.0, b=7.0, (a/b)*b is
// within epsilon of 3.0.
func TestDivMulRoundTrip(t *testing.T) {
	a, _ := New[Q10_20](3.0)
	b, _ := New[Q10_20](7.0)
	quot, err := Div[Q10_20, Q10_20, Q10_20](a, b)
	if err != nil {
		t.Fatalf("Div: %v", err)
	}
	back, err := Mul[Q10_20, Q10_20, Q10_20](quot, b)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	eps := descriptorOf[Q10_20]().Precision()
	if diff := back.Float() - 3.0; diff > eps || diff < -eps {
		t.Errorf("(3/7)*7 = %v, want within %v of 3.0", back.Float(), eps)
	}
}

func TestAddDegenerateCase(t *testing.T) {
	x, _ := New[Q10_20](1.0)
	zero := Zero[Q10_20]()
	sum, err := Add[Q10_20, Q10_20, Q10_20](x, zero)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if sum.Value() != x.Value() {
		t.Errorf("x + 0 = %d, want %d", sum.Value(), x.Value())
	}
}

func TestMulIdentity(t *testing.T) {
	x, _ := New[Q10_20](1.0)
	one := One[Q10_20]()
	prod, err := Mul[Q10_20, Q10_20, Q10_20](x, one)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	if prod.Value() != x.Value() {
		t.Errorf("x * 1 = %d, want %d", prod.Value(), x.Value())
	}
}

func TestNegAntiSymmetry(t *testing.T) {
	x, _ := New[Q10_20](1.25)
	negX, err := Neg(x)
	if err != nil {
		t.Fatalf("Neg: %v", err)
	}
	negNegX, err := Neg(negX)
	if err != nil {
		t.Fatalf("Neg: %v", err)
	}
	if negNegX.Value() != x.Value() {
		t.Errorf("-(-x) = %d, want %d", negNegX.Value(), x.Value())
	}
}

func TestNegSignedMinimumRaises(t *testing.T) {
	min := MustWrap[Q5_10Raise](Min[Q5_10Raise]().Value())
	_, err := Neg(min)
	if !errors.Is(err, ErrOverflow) {
		t.Errorf("Neg(signed minimum) error = %v, want ErrOverflow", err)
	}
}

func TestDivisionByZero(t *testing.T) {
	x, _ := New[Q10_20](1.0)
	zero := Zero[Q10_20]()
	_, err := Div[Q10_20, Q10_20, Q10_20](x, zero)
	if !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Div(x, 0) error = %v, want ErrDivisionByZero", err)
	}
}

func TestOverflowDetectionULP(t *testing.T) {
	maxVal := Max[Q5_10Raise]()
	eps := Epsilon[Q5_10Raise]()
	_, err := Add[Q5_10Raise, Q5_10Raise, Q5_10Raise](maxVal, eps)
	if !errors.Is(err, ErrOverflow) {
		t.Errorf("Add(max, epsilon) error = %v, want ErrOverflow", err)
	}
}
