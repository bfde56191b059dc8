package fibonacci

import (
	"math/big"
	"testing"
)

// fastDoubling is an independent O(log n) oracle:
//
//	F(2k)   = F(k) * (2*F(k+1) - F(k))
//	F(2k+1) = F(k)² + F(k+1)²
func fastDoubling(n uint64) *big.Int {
	a, b := big.NewInt(0), big.NewInt(1)
	for bit := 63; bit >= 0; bit-- {
		t := new(big.Int).Lsh(b, 1)
		t.Sub(t, a)
		c := new(big.Int).Mul(a, t)
		d := new(big.Int).Add(new(big.Int).Mul(a, a), new(big.Int).Mul(b, b))
		if (n>>uint(bit))&1 == 1 {
			a, b = d, c.Add(c, d)
		} else {
			a, b = c, d
		}
	}
	return a
}

// FuzzEngineMatchesFastDoubling cross-checks the iterative engine against the
// fast doubling identities.
func FuzzEngineMatchesFastDoubling(f *testing.F) {
	for _, n := range []uint64{0, 1, 2, 3, 10, 92, 93, 94, 1000, 10000} {
		f.Add(n)
	}
	engine := NewEngine(WithDelayPolicy(NoDelay))

	f.Fuzz(func(t *testing.T, n uint64) {
		if n > 20000 {
			n %= 20000
		}
		got := engine.Compute(n, 0)
		want := fastDoubling(n)
		if got.Cmp(want) != 0 {
			t.Errorf("Compute(%d) = %s, fast doubling = %s", n, got, want)
		}
	})
}
