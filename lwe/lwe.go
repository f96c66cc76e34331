package lwe

import (
	"encoding/binary"
	"errors"
	"fmt"

	"secrand/entropy"
)

// OutputMode selects how RandLattice reports the sample.
type OutputMode int

const (
	// ModeInteger returns the raw residue in [0, modulus).
	ModeInteger OutputMode = iota
	// ModeNormalized divides the residue by modulus into [0, 1).
	ModeNormalized
)

// ErrInvalidParameter reports an out-of-range dimension, modulus or output
// mode.
var ErrInvalidParameter = errors.New("lwe: invalid parameter")

// RandLattice produces one LWE-style sample b = (<a,s> + e) mod modulus.
//
// The secret vector s over {-1,0,1} comes from one random byte per four
// coordinates: each 2-bit group maps through sign arithmetic, with codes 0
// and 3 both landing on 0 so the three symbols stay uniform over the four
// codes. The row a is uniform over [0, modulus) from four bytes per
// element, which caps the supported modulus at 2^32; larger values are
// rejected as invalid. The inner product is reduced after every
// accumulation step, and the error e comes from Sample with the given
// sigma. s and a are ephemeral; only b leaves the call. A nil tables
// argument selects DefaultTables.
func RandLattice(dimension, modulus int, sigma float64, mode OutputMode, tables map[float64][]uint16, src entropy.Source) (float64, error) {
	if dimension < 1 {
		return 0, fmt.Errorf("%w: dimension must be at least 1, got %d", ErrInvalidParameter, dimension)
	}
	if modulus < 2 {
		return 0, fmt.Errorf("%w: modulus must be at least 2, got %d", ErrInvalidParameter, modulus)
	}
	if int64(modulus) > 1<<32 {
		return 0, fmt.Errorf("%w: modulus %d exceeds the 32-bit row element range", ErrInvalidParameter, modulus)
	}
	if mode != ModeInteger && mode != ModeNormalized {
		return 0, fmt.Errorf("%w: unknown output mode %d", ErrInvalidParameter, mode)
	}
	if tables == nil {
		tables = DefaultTables
	}

	secretRaw, err := src.Bytes((dimension + 3) / 4)
	if err != nil {
		return 0, err
	}
	secret := make([]int64, dimension)
	for i := 0; i < dimension; i++ {
		code := (secretRaw[i/4] >> uint((i%4)*2)) & 3
		// high bit minus low bit: 0->0, 1->-1, 2->+1, 3->0.
		secret[i] = int64(code>>1) - int64(code&1)
	}

	rowRaw, err := src.Bytes(4 * dimension)
	if err != nil {
		return 0, err
	}
	m := int64(modulus)
	acc := int64(0)
	for i := 0; i < dimension; i++ {
		a := int64(binary.BigEndian.Uint32(rowRaw[4*i:])) % m
		acc = (acc + a*secret[i]) % m
	}

	e, err := Sample(sigma, tables, src)
	if err != nil {
		return 0, err
	}

	b := ((acc+e)%m + m) % m
	if mode == ModeNormalized {
		return float64(b) / float64(m), nil
	}
	return float64(b), nil
}
