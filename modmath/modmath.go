// Package modmath provides the modular-arithmetic helpers underneath the
// primality tests: modular exponentiation, modular inverse and gcd over
// math/big integers. All functions are pure and allocate their results.
package modmath

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrNoInverse reports that the requested modular inverse does not exist
// because the operands are not coprime.
var ErrNoInverse = errors.New("modmath: no modular inverse")

var one = big.NewInt(1)

// ModPow returns base^exp mod modulus by square-and-multiply, walking the
// exponent bits from the most significant down. exp must be non-negative.
// When modulus is 1 the result is 0.
func ModPow(base, exp, modulus *big.Int) *big.Int {
	if modulus.Cmp(one) == 0 {
		return new(big.Int)
	}
	result := big.NewInt(1)
	b := new(big.Int).Mod(base, modulus)
	for i := exp.BitLen() - 1; i >= 0; i-- {
		result.Mul(result, result)
		result.Mod(result, modulus)
		if exp.Bit(i) == 1 {
			result.Mul(result, b)
			result.Mod(result, modulus)
		}
	}
	return result
}

// ModInverse returns the inverse of a modulo m, normalized to [0, m), using
// the iterative extended Euclidean algorithm. It fails with ErrNoInverse
// when gcd(a, m) != 1.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, fmt.Errorf("modmath: modulus must be positive, got %s", m)
	}
	// Track s with r = s*a (mod m) through the remainder sequence.
	r0 := new(big.Int).Mod(a, m)
	r1 := new(big.Int).Set(m)
	s0 := big.NewInt(1)
	s1 := new(big.Int)
	q := new(big.Int)
	for r1.Sign() != 0 {
		rem := new(big.Int)
		q.QuoRem(r0, r1, rem)
		r0, r1 = r1, rem
		t := new(big.Int).Mul(q, s1)
		s0, s1 = s1, t.Sub(s0, t)
	}
	if r0.Cmp(one) != 0 {
		return nil, ErrNoInverse
	}
	return s0.Mod(s0, m), nil
}

// GCD returns the greatest common divisor of a and b by the iterative
// Euclidean algorithm. The inputs are not modified.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	for y.Sign() != 0 {
		x.Mod(x, y)
		x, y = y, x
	}
	return x
}
