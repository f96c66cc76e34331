package prime

import (
	"errors"
	"math/big"
	"testing"
)

func TestSmallCases(t *testing.T) {
	src := seeded(t, 10)
	small := []struct {
		n    int64
		want bool
	}{
		{-7, false}, {0, false}, {1, false},
		{2, true}, {3, true},
		{4, false}, {9, false}, {100, false},
	}
	for _, c := range small {
		got, err := IsProbablePrime(big.NewInt(c.n), 5, src)
		if err != nil {
			t.Fatalf("IsProbablePrime(%d): %v", c.n, err)
		}
		if got != c.want {
			t.Errorf("IsProbablePrime(%d) = %v, want %v", c.n, got, c.want)
		}
		got, err = IsProbablePrimeEnhanced(big.NewInt(c.n), 5, src)
		if err != nil {
			t.Fatalf("IsProbablePrimeEnhanced(%d): %v", c.n, err)
		}
		if got != c.want {
			t.Errorf("IsProbablePrimeEnhanced(%d) = %v, want %v", c.n, got, c.want)
		}
	}
}

func TestInvalidRounds(t *testing.T) {
	src := seeded(t, 11)
	if _, err := IsProbablePrime(big.NewInt(7), 0, src); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
	if _, err := IsProbablePrimeEnhanced(big.NewInt(7), 0, src); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestKnownPrimesPass(t *testing.T) {
	src := seeded(t, 12)
	for _, p := range GeneratePrimesUpTo(10000) {
		n := new(big.Int).SetUint64(p)
		ok, err := IsProbablePrime(n, 3, src)
		if err != nil {
			t.Fatalf("IsProbablePrime(%d): %v", p, err)
		}
		if !ok {
			t.Fatalf("prime %d rejected by standard test", p)
		}
		ok, err = IsProbablePrimeEnhanced(n, 3, src)
		if err != nil {
			t.Fatalf("IsProbablePrimeEnhanced(%d): %v", p, err)
		}
		if !ok {
			t.Fatalf("prime %d rejected by enhanced test", p)
		}
	}
}

func TestLargeKnownPrime(t *testing.T) {
	src := seeded(t, 13)
	// 2^127 - 1, a Mersenne prime.
	m127 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	for _, k := range []int{1, 10, 40} {
		ok, err := IsProbablePrime(m127, k, src)
		if err != nil || !ok {
			t.Fatalf("standard k=%d on 2^127-1: ok=%v err=%v", k, ok, err)
		}
		ok, err = IsProbablePrimeEnhanced(m127, k, src)
		if err != nil || !ok {
			t.Fatalf("enhanced k=%d on 2^127-1: ok=%v err=%v", k, ok, err)
		}
	}
}

func TestPseudoprimesRejected(t *testing.T) {
	src := seeded(t, 14)
	// Fermat pseudoprimes, Carmichael numbers and strong pseudoprimes to
	// small bases. With 10 random witness rounds the strong-liar bound
	// makes a false pass vanishingly unlikely.
	vectors := []int64{341, 561, 645, 1105, 1729, 2047, 2465, 6601, 8911, 41041, 3215031751}
	for _, n := range vectors {
		v := big.NewInt(n)
		ok, err := IsProbablePrime(v, 10, src)
		if err != nil {
			t.Fatalf("IsProbablePrime(%d): %v", n, err)
		}
		if ok {
			t.Errorf("standard test passed composite %d", n)
		}
		ok, err = IsProbablePrimeEnhanced(v, 10, src)
		if err != nil {
			t.Fatalf("IsProbablePrimeEnhanced(%d): %v", n, err)
		}
		if ok {
			t.Errorf("enhanced test passed composite %d", n)
		}
	}
}

func TestOddCompositesRejected(t *testing.T) {
	src := seeded(t, 15)
	isPrime := make(map[uint64]bool)
	for _, p := range GeneratePrimesUpTo(2000) {
		isPrime[p] = true
	}
	for n := int64(9); n < 2000; n += 2 {
		if isPrime[uint64(n)] {
			continue
		}
		ok, err := IsProbablePrime(big.NewInt(n), 10, src)
		if err != nil {
			t.Fatalf("IsProbablePrime(%d): %v", n, err)
		}
		if ok {
			t.Errorf("standard test passed composite %d", n)
		}
	}
}

func TestEnhancedSharedFactorShortCircuit(t *testing.T) {
	// 25 forces every witness in [2, 23] except multiples of 5 through the
	// squaring chain; with enough rounds a multiple of 5 appears and takes
	// the gcd path. Either way the verdict must be composite.
	src := seeded(t, 16)
	ok, err := IsProbablePrimeEnhanced(big.NewInt(25), 20, src)
	if err != nil {
		t.Fatalf("IsProbablePrimeEnhanced(25): %v", err)
	}
	if ok {
		t.Fatal("enhanced test passed 25")
	}
}
