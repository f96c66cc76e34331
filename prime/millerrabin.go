package prime

import (
	"fmt"
	"math/big"

	"secrand/entropy"
	"secrand/modmath"
)

// IsProbablePrime runs k rounds of the standard Miller-Rabin test on n.
// A true prime always passes; a random odd composite survives a round with
// probability at most 1/4, so the false-positive bound is 4^-k. Witnesses
// are drawn from src and reduced into [2, n-2].
func IsProbablePrime(n *big.Int, k int, src entropy.Source) (bool, error) {
	if k < 1 {
		return false, fmt.Errorf("%w: witness rounds must be at least 1, got %d", ErrInvalidParameter, k)
	}
	if n.Cmp(one) <= 0 {
		return false, nil
	}
	if n.Cmp(three) <= 0 {
		return true, nil
	}
	if n.Bit(0) == 0 {
		return false, nil
	}

	// n-1 = 2^r * d with d odd.
	nMinus1 := new(big.Int).Sub(n, one)
	d := new(big.Int).Set(nMinus1)
	r := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		r++
	}

	span := new(big.Int).Sub(n, four)
	byteLen := (n.BitLen() + 7) / 8
	for round := 0; round < k; round++ {
		raw, err := src.Bytes(byteLen)
		if err != nil {
			return false, err
		}
		a := new(big.Int).SetBytes(raw)
		a.Mod(a, span)
		a.Add(a, two)

		x := modmath.ModPow(a, d, n)
		if x.Cmp(one) == 0 || x.Cmp(nMinus1) == 0 {
			continue
		}
		passed := false
		for i := 0; i < r-1; i++ {
			x.Mul(x, x)
			x.Mod(x, n)
			if x.Cmp(nMinus1) == 0 {
				passed = true
				break
			}
		}
		if !passed {
			return false, nil
		}
	}
	return true, nil
}

// IsProbablePrimeEnhanced runs k rounds of the enhanced Miller-Rabin test of
// FIPS 186-5 appendix C.3.2. On top of the standard squaring chain it
// rejects witnesses sharing a factor with n via gcd, and detects a
// nontrivial square root of 1 appearing mid-chain. Every composite outcome
// is collapsed to a plain false; no factor is reported.
func IsProbablePrimeEnhanced(n *big.Int, k int, src entropy.Source) (bool, error) {
	if k < 1 {
		return false, fmt.Errorf("%w: witness rounds must be at least 1, got %d", ErrInvalidParameter, k)
	}
	if n.Cmp(one) <= 0 {
		return false, nil
	}
	if n.Cmp(three) <= 0 {
		return true, nil
	}
	if n.Bit(0) == 0 {
		return false, nil
	}

	// n-1 = 2^a * m with m odd.
	nMinus1 := new(big.Int).Sub(n, one)
	m := new(big.Int).Set(nMinus1)
	a := 0
	for m.Bit(0) == 0 {
		m.Rsh(m, 1)
		a++
	}

	byteLen := (n.BitLen() + 7) / 8
	// Mask the top byte down to n's bit length so the rejection loop below
	// accepts with probability at least 1/2.
	topMask := byte(0xff >> uint(8*byteLen-n.BitLen()))

	for round := 0; round < k; round++ {
		// Rejection-sample a witness b uniform in (1, n-1).
		var b *big.Int
		for {
			raw, err := src.Bytes(byteLen)
			if err != nil {
				return false, err
			}
			raw[0] &= topMask
			b = new(big.Int).SetBytes(raw)
			if b.Cmp(one) > 0 && b.Cmp(nMinus1) < 0 {
				break
			}
		}

		if modmath.GCD(b, n).Cmp(one) > 0 {
			// b shares a factor with n: proven composite.
			return false, nil
		}

		z := modmath.ModPow(b, m, n)
		if z.Cmp(one) == 0 || z.Cmp(nMinus1) == 0 {
			continue
		}
		passed := false
		for j := 1; j < a; j++ {
			z.Mul(z, z)
			z.Mod(z, n)
			if z.Cmp(nMinus1) == 0 {
				passed = true
				break
			}
			if z.Cmp(one) == 0 {
				// Nontrivial square root of 1: proven composite.
				return false, nil
			}
		}
		if !passed {
			return false, nil
		}
	}
	return true, nil
}
