package cordic

import (
	"math"
	"sync"
)

// Tables holds the per-iteration constants a CORDIC evaluation at
// fractional width f needs: the arctan/arctanh angle table (scaled to
// f fractional bits, added to or subtracted from z each iteration) and
// the two gain-compensation constants K_circ/K_hyp.
//
// Arctan[i] holds atan(2^-i) for i = 0..f-1.
// Arctanh[i] holds atanh(2^-(i+1)) for i = 0..f-1, i.e. the hyperbolic
// table is indexed from iteration 1 (atanh(2^-0) diverges).
type Tables struct {
	F        int
	Arctan   []int64
	Arctanh  []int64
	KCirc    float64
	InvKCirc float64
	KHyp     float64
	InvKHyp  float64
}

var (
	tableCacheMu sync.RWMutex
	tableCache   = map[int]*Tables{}
)

// ForWidth returns the Tables for fractional width f, building and
// caching them on first use. Table construction touches math.Atan and
// math.Atanh once per distinct width; every subsequent call is a cache
// hit under a read lock.
func ForWidth(f int) *Tables {
	tableCacheMu.RLock()
	t, ok := tableCache[f]
	tableCacheMu.RUnlock()
	if ok {
		return t
	}

	tableCacheMu.Lock()
	defer tableCacheMu.Unlock()
	if t, ok := tableCache[f]; ok {
		return t
	}
	t = buildTables(f)
	tableCache[f] = t
	return t
}

func buildTables(f int) *Tables {
	t := &Tables{
		F:       f,
		Arctan:  make([]int64, f),
		Arctanh: make([]int64, f),
	}

	scale := math.Ldexp(1, f)
	kCirc := 1.0
	for i := 0; i < f; i++ {
		angle := math.Atan(math.Ldexp(1, -i))
		t.Arctan[i] = int64(math.Round(angle * scale))
		kCirc *= math.Sqrt(1 + math.Ldexp(1, -2*i))
	}
	t.KCirc = kCirc
	t.InvKCirc = 1 / kCirc

	kHyp := 1.0
	for i := 1; i <= f; i++ {
		angle := math.Atanh(math.Ldexp(1, -i))
		t.Arctanh[i-1] = int64(math.Round(angle * scale))
	}
	for _, i := range repeatedIndices(f) {
		kHyp *= math.Sqrt(1 - math.Ldexp(1, -2*i))
	}
	t.KHyp = kHyp
	t.InvKHyp = 1 / kHyp

	return t
}

// repeatedIndices returns, for hyperbolic convergence, the iteration
// indices 1..f with the repeated indices (4, 13, 40, ... each
// 3*previous+1) appearing twice — the schedule needed both for the
// iteration loop itself and for computing K_hyp consistently with it.
func repeatedIndices(f int) []int {
	if fastBitOps {
		return repeatedIndicesBitset(f)
	}
	return repeatedIndicesMap(f)
}

func repeatedIndicesMap(f int) []int {
	repeat := map[int]bool{}
	for n := 4; n <= f; n = 3*n + 1 {
		repeat[n] = true
	}
	indices := make([]int, 0, f+f/4)
	for i := 1; i <= f; i++ {
		indices = append(indices, i)
		if repeat[i] {
			indices = append(indices, i)
		}
	}
	return indices
}

// repeatedIndicesBitset is the same computation as repeatedIndicesMap,
// using a flat bool slice instead of a map — avoids map bucket hashing
// on the CPUs fast enough to make it matter.
func repeatedIndicesBitset(f int) []int {
	repeat := make([]bool, f+1)
	for n := 4; n <= f; n = 3*n + 1 {
		repeat[n] = true
	}
	indices := make([]int, 0, f+f/4)
	for i := 1; i <= f; i++ {
		indices = append(indices, i)
		if repeat[i] {
			indices = append(indices, i)
		}
	}
	return indices
}
