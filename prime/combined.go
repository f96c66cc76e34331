package prime

import "math/big"

// CombinedSieveTest reports whether the safe-prime candidate p and its
// Sophie Germain companion q = (p-1)/2 both avoid divisibility by every odd
// prime in smallPrimes. Rejecting on either number before any Miller-Rabin
// round is the combined-sieve optimization: it removes the vast majority of
// candidates at the cost of one small modular reduction per prime. A
// candidate equal to a small prime is not rejected by that prime.
func CombinedSieveTest(p *big.Int, smallPrimes []uint64) bool {
	q := new(big.Int).Sub(p, one)
	q.Rsh(q, 1)
	rem := new(big.Int)
	div := new(big.Int)
	for _, sp := range smallPrimes {
		if sp == 2 {
			// p and q are odd for every candidate p > 3.
			continue
		}
		div.SetUint64(sp)
		if rem.Mod(p, div).Sign() == 0 && p.Cmp(div) != 0 {
			return false
		}
		if rem.Mod(q, div).Sign() == 0 && q.Cmp(div) != 0 {
			return false
		}
	}
	return true
}
