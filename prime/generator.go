package prime

import (
	"context"
	"fmt"
	"math/big"

	"secrand/entropy"
)

// RandPrime searches for a probable prime with the requested bit length,
// testing candidates from RandBigInt with k Miller-Rabin rounds of the
// chosen variant. The loop is unbounded: termination is probabilistic, with
// an expected attempt count on the order of the bit length. Use
// RandPrimeContext to bound the search.
func RandPrime(bits, k int, enhanced bool, src entropy.Source) (*big.Int, error) {
	return RandPrimeContext(context.Background(), bits, k, enhanced, src)
}

// RandPrimeContext is RandPrime with the context checked between candidate
// attempts, so a deadline or cancellation bounds the otherwise unbounded
// search. Entropy acquisition itself is not interrupted.
func RandPrimeContext(ctx context.Context, bits, k int, enhanced bool, src entropy.Source) (*big.Int, error) {
	if bits < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBitLength, bits)
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: witness rounds must be at least 1, got %d", ErrInvalidParameter, k)
	}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p, err := RandBigInt(bits, src)
		if err != nil {
			return nil, err
		}
		ok, err := testPrime(p, k, enhanced, src)
		if err != nil {
			return nil, err
		}
		if ok {
			return p, nil
		}
	}
}

// RandSafePrime searches for a safe prime p = 2q+1 of exactly the requested
// bit length, with both p and q probable primes. Candidates run through the
// combined sieve before any Miller-Rabin round, and q is tested before p
// since failing on the smaller number is cheaper. Markedly more expensive
// than RandPrime: two primality events must coincide.
func RandSafePrime(bits, k int, enhanced bool, src entropy.Source) (*big.Int, error) {
	return RandSafePrimeContext(context.Background(), bits, k, enhanced, src)
}

// RandSafePrimeContext is RandSafePrime with the context checked between
// candidate attempts.
func RandSafePrimeContext(ctx context.Context, bits, k int, enhanced bool, src entropy.Source) (*big.Int, error) {
	if bits < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBitLength, bits)
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: witness rounds must be at least 1, got %d", ErrInvalidParameter, k)
	}
	smallPrimes := DefaultCache.SmallPrimes(DefaultSieveLimit)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p, err := RandBigInt(bits, src)
		if err != nil {
			return nil, err
		}
		q := new(big.Int).Sub(p, one)
		q.Rsh(q, 1)

		// Quick parity rejects before the sieve touches the candidate.
		if p.Bit(0) == 0 {
			continue
		}
		if q.Bit(0) == 0 && q.Cmp(one) > 0 {
			continue
		}
		if !CombinedSieveTest(p, smallPrimes) {
			continue
		}

		ok, err := testPrime(q, k, enhanced, src)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		ok, err = testPrime(p, k, enhanced, src)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		// RandBigInt only forces the magnitude bit with an OR, so the
		// candidate can come out longer than requested; reject those.
		if p.BitLen() != bits {
			continue
		}
		return p, nil
	}
}

func testPrime(n *big.Int, k int, enhanced bool, src entropy.Source) (bool, error) {
	if enhanced {
		return IsProbablePrimeEnhanced(n, k, src)
	}
	return IsProbablePrime(n, k, src)
}
