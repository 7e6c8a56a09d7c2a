package libq

import (
	"math"
	"testing"
)

// TestSinQuarterCircle checks Q(8,24) signed, sin(pi/6) ≈ 0.5,
// abs error <= 2^-23.
func TestSinQuarterCircle(t *testing.T) {
	angle, _ := New[Q3_28](math.Pi / 6)
	got, err := Sin[Q3_28, Q8_24](angle)
	if err != nil {
		t.Fatalf("Sin: %v", err)
	}
	if diff := got.Float() - 0.5; diff > math.Ldexp(1, -23) || diff < -math.Ldexp(1, -23) {
		t.Errorf("Sin(pi/6) = %v, want ~0.5 within 2^-23", got.Float())
	}
}

// TestLogOfE checks Q(8,24) signed, log(e) ≈ 1.0, abs
// error <= 2^-22.
func TestLogOfE(t *testing.T) {
	e := E[Q8_24]()
	got, err := Log[Q8_24, Q8_24](e)
	if err != nil {
		t.Fatalf("Log: %v", err)
	}
	if diff := got.Float() - 1.0; diff > math.Ldexp(1, -22) || diff < -math.Ldexp(1, -22) {
		t.Errorf("Log(e) = %v, want ~1.0 within 2^-22", got.Float())
	}
}

// TestSqrtOfTwo checks Q(10,20) signed, sqrt(2.0) ≈
// 1.41421356, abs error <= 2^-19.
func TestSqrtOfTwo(t *testing.T) {
	two, _ := New[Q10_20](2.0)
	got, err := Sqrt[Q10_20, Q10_20](two)
	if err != nil {
		t.Fatalf("Sqrt: %v", err)
	}
	if diff := got.Float() - 1.41421356; diff > math.Ldexp(1, -19) || diff < -math.Ldexp(1, -19) {
		t.Errorf("Sqrt(2.0) = %v, want ~1.41421356 within 2^-19", got.Float())
	}
}

func TestTrigIdentitySinCosSquare(t *testing.T) {
	eps := descriptorOf[Q8_24]().Precision() * 4
	for _, x := range []float64{0, 0.3, 1.0, -1.2, 1.5} {
		angle, _ := New[Q3_28](x)
		sin, err := Sin[Q3_28, Q8_24](angle)
		if err != nil {
			t.Fatalf("Sin(%v): %v", x, err)
		}
		cos, err := Cos[Q3_28, Q8_24](angle)
		if err != nil {
			t.Fatalf("Cos(%v): %v", x, err)
		}
		sq, _ := Mul[Q8_24, Q8_24, Q8_24](sin, sin)
		cq, _ := Mul[Q8_24, Q8_24, Q8_24](cos, cos)
		sum, _ := Add[Q8_24, Q8_24, Q8_24](sq, cq)
		if diff := sum.Float() - 1.0; diff > eps || diff < -eps {
			t.Errorf("sin^2(%v)+cos^2(%v) = %v, want ~1.0", x, x, sum.Float())
		}
	}
}

func TestInverseLawAsinSin(t *testing.T) {
	eps := descriptorOf[Q8_24]().Precision() * 4
	for _, x := range []float64{-1.4, -0.5, 0, 0.5, 1.4} {
		angle, _ := New[Q3_28](x)
		sin, err := Sin[Q3_28, Q8_24](angle)
		if err != nil {
			t.Fatalf("Sin(%v): %v", x, err)
		}
		back, err := Asin[Q8_24, Q3_28](sin)
		if err != nil {
			t.Fatalf("Asin: %v", err)
		}
		if diff := back.Float() - x; diff > eps || diff < -eps {
			t.Errorf("asin(sin(%v)) = %v, want ~%v", x, back.Float(), x)
		}
	}
}

func TestInverseLawLogExp(t *testing.T) {
	eps := descriptorOf[Q8_24]().Precision() * 8
	for _, x := range []float64{-1, 0, 0.5, 1} {
		v, _ := New[Q8_24](x)
		expd, err := Exp[Q8_24, Q8_24](v)
		if err != nil {
			t.Fatalf("Exp(%v): %v", x, err)
		}
		back, err := Log[Q8_24, Q8_24](expd)
		if err != nil {
			t.Fatalf("Log: %v", err)
		}
		if diff := back.Float() - x; diff > eps || diff < -eps {
			t.Errorf("log(exp(%v)) = %v, want ~%v", x, back.Float(), x)
		}
	}
}

func TestDomainErrors(t *testing.T) {
	neg, _ := New[Q8_24](-1.0)
	if _, err := Log[Q8_24, Q8_24](neg); err == nil {
		t.Errorf("Log(-1.0) did not error")
	}
	tooBig, _ := New[Q3_28](2.0)
	if _, err := Asin[Q3_28, Q3_28](tooBig); err == nil {
		t.Errorf("Asin(2.0) did not error")
	}
	half, _ := New[Q3_28](0.5)
	if _, err := Acosh[Q3_28, Q3_28](half); err == nil {
		t.Errorf("Acosh(0.5) did not error")
	}
	one, _ := New[Q3_28](1.0)
	if _, err := Atanh[Q3_28, Q3_28](one); err == nil {
		t.Errorf("Atanh(1.0) did not error")
	}
}

func TestTanhTanhInverseRange(t *testing.T) {
	eps := descriptorOf[Q8_24]().Precision() * 8
	for _, x := range []float64{-0.9, -0.3, 0, 0.3, 0.9} {
		v, _ := New[Q8_24](x)
		th, err := Tanh[Q8_24, Q8_24](v)
		if err != nil {
			t.Fatalf("Tanh(%v): %v", x, err)
		}
		back, err := Atanh[Q8_24, Q8_24](th)
		if err != nil {
			t.Fatalf("Atanh: %v", err)
		}
		if diff := back.Float() - x; diff > eps || diff < -eps {
			t.Errorf("atanh(tanh(%v)) = %v, want ~%v", x, back.Float(), x)
		}
	}
}
