package prime

import (
	"errors"
	"fmt"
	"math/big"

	"secrand/entropy"
)

var (
	// ErrInvalidBitLength reports a requested bit length below 2.
	ErrInvalidBitLength = errors.New("prime: bit length must be at least 2")
	// ErrInvalidParameter reports an out-of-range search parameter.
	ErrInvalidParameter = errors.New("prime: invalid parameter")
)

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
	four  = big.NewInt(4)
)

// RandBigInt returns a random odd integer with bit bits-1 set, built from
// ceil(bits/8) bytes of src interpreted big-endian.
//
// The magnitude bit is forced with an OR: random high-order bits above
// position bits-1 inside the sampled byte range are left in place, so the
// true bit length can exceed bits when bits is not a multiple of 8. Callers
// that need the exact bit length must re-check BitLen; RandSafePrime does.
func RandBigInt(bits int, src entropy.Source) (*big.Int, error) {
	if bits < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBitLength, bits)
	}
	raw, err := src.Bytes((bits + 7) / 8)
	if err != nil {
		return nil, err
	}
	v := new(big.Int).SetBytes(raw)
	v.SetBit(v, bits-1, 1)
	v.SetBit(v, 0, 1)
	return v, nil
}
