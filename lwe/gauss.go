package lwe

import (
	"fmt"

	"secrand/entropy"
)

// Sample draws one value from the centered discrete Gaussian with the given
// standard deviation, using the matching CDT from tables.
//
// One 16-bit uniform draw is compared against every table entry with pure
// bit arithmetic: the borrow bit of table[i]-r decides each comparison, an
// activity mask freezes the accumulator at the first threshold the draw
// exceeds, and the scan always runs the full table length. One further byte
// selects the sign arithmetically. The work done and the entropy consumed
// are therefore fixed per call. True constant-time behavior additionally
// depends on the compiler not reintroducing branches; treat it as a
// best-effort property.
func Sample(sigma float64, tables map[float64][]uint16, src entropy.Source) (int64, error) {
	table, ok := tables[sigma]
	if !ok || len(table) == 0 {
		return 0, fmt.Errorf("%w: %g", ErrNoTableForSigma, sigma)
	}

	raw, err := src.Bytes(2)
	if err != nil {
		return 0, err
	}
	r := uint32(raw[0])<<8 | uint32(raw[1])

	x := uint32(0)
	active := uint32(1)
	for _, t := range table {
		// le = 1 when r <= t, taken from the borrow bit of t-r.
		le := ((uint32(t) - r) >> 31) ^ 1
		x += le & active
		active &= le
	}

	sb, err := src.Bytes(1)
	if err != nil {
		return 0, err
	}
	sign := int64(sb[0]&1)<<1 - 1
	return sign * int64(x), nil
}
