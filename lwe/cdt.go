// Package lwe implements a timing-attack-resistant discrete Gaussian
// sampler over precomputed cumulative-distribution tables (CDT) and the
// LWE-style sample generator built on top of it. The sampler's instruction
// count and entropy consumption are independent of the sampled value.
package lwe

import (
	"errors"
	"math"
)

// TailCut bounds CDT tables at TailCut*sigma magnitudes; mass beyond it is
// invisible at 16-bit resolution.
const TailCut = 13

// DefaultSigma is the standard deviation used by callers that do not pick
// one explicitly.
const DefaultSigma = 3.2

// ErrNoTableForSigma reports that no CDT table is available for the
// requested standard deviation.
var ErrNoTableForSigma = errors.New("lwe: no CDT table for sigma")

// DefaultTables maps a standard deviation to its CDT. Built once at init
// from BuildTable so the shipped tables and the constructor cannot drift
// apart.
var DefaultTables = map[float64][]uint16{}

func init() {
	for _, sigma := range []float64{1.0, 2.0, DefaultSigma, 4.0} {
		DefaultTables[sigma] = BuildTable(sigma)
	}
}

// BuildTable returns the CDT for a centered discrete Gaussian with the
// given standard deviation. Entry i holds round(2^16 * P(x >= i+1)) over
// the one-sided magnitude distribution with the zero mass halved, so that
// applying a uniform sign bit to the sampled magnitude reproduces the
// two-sided distribution exactly. Entries decrease monotonically; trailing
// zero entries are trimmed, leaving table[len-1] the smallest nonzero
// threshold.
func BuildTable(sigma float64) []uint16 {
	maxMag := int(math.Ceil(TailCut * sigma))
	rho := make([]float64, maxMag+1)
	for k := 0; k <= maxMag; k++ {
		rho[k] = math.Exp(-float64(k*k) / (2 * sigma * sigma))
	}
	norm := rho[0] / 2
	for k := 1; k <= maxMag; k++ {
		norm += rho[k]
	}

	// suffix[i] = sum of rho over magnitudes above i.
	suffix := make([]float64, maxMag)
	acc := 0.0
	for i := maxMag - 1; i >= 0; i-- {
		acc += rho[i+1]
		suffix[i] = acc
	}

	table := make([]uint16, 0, maxMag)
	for i := 0; i < maxMag; i++ {
		v := math.Round(suffix[i] / norm * 65536)
		if v <= 0 {
			break
		}
		if v > 65535 {
			v = 65535
		}
		table = append(table, uint16(v))
	}
	return table
}
