package prime

import (
	"errors"
	"testing"

	"secrand/entropy"
)

func seeded(t *testing.T, tag byte) entropy.Source {
	t.Helper()
	key := make([]byte, 32)
	key[0] = tag
	src, err := entropy.NewSeeded(key)
	if err != nil {
		t.Fatalf("seeded source: %v", err)
	}
	return src
}

func TestRandBigIntBitsAndParity(t *testing.T) {
	src := seeded(t, 1)
	sizes := []int{2, 3, 4, 7, 8, 9, 15, 16, 17, 31, 32, 33, 63, 64, 65, 127, 128, 255, 256, 1024, 4096}
	for _, bits := range sizes {
		for trial := 0; trial < 8; trial++ {
			v, err := RandBigInt(bits, src)
			if err != nil {
				t.Fatalf("RandBigInt(%d): %v", bits, err)
			}
			if v.Bit(bits-1) != 1 {
				t.Fatalf("bits=%d trial=%d: magnitude bit not set in %s", bits, trial, v)
			}
			if v.Bit(0) != 1 {
				t.Fatalf("bits=%d trial=%d: value is even: %s", bits, trial, v)
			}
			// The top bit is forced with OR, so the true length may only
			// exceed the request, never undershoot it.
			if v.BitLen() < bits {
				t.Fatalf("bits=%d trial=%d: bit length %d below request", bits, trial, v.BitLen())
			}
			if v.BitLen() > ((bits+7)/8)*8 {
				t.Fatalf("bits=%d trial=%d: bit length %d beyond sampled bytes", bits, trial, v.BitLen())
			}
		}
	}
}

func TestRandBigIntExactWhenByteAligned(t *testing.T) {
	src := seeded(t, 2)
	for trial := 0; trial < 32; trial++ {
		v, err := RandBigInt(256, src)
		if err != nil {
			t.Fatalf("RandBigInt(256): %v", err)
		}
		if v.BitLen() != 256 {
			t.Fatalf("trial %d: byte-aligned request produced %d bits", trial, v.BitLen())
		}
	}
}

func TestRandBigIntInvalidBits(t *testing.T) {
	src := seeded(t, 3)
	for _, bits := range []int{-1, 0, 1} {
		if _, err := RandBigInt(bits, src); !errors.Is(err, ErrInvalidBitLength) {
			t.Fatalf("bits=%d: expected ErrInvalidBitLength, got %v", bits, err)
		}
	}
}

func TestRandBigIntDeterministic(t *testing.T) {
	a, err := RandBigInt(128, seeded(t, 4))
	if err != nil {
		t.Fatal(err)
	}
	b, err := RandBigInt(128, seeded(t, 4))
	if err != nil {
		t.Fatal(err)
	}
	if a.Cmp(b) != 0 {
		t.Fatalf("same seed produced %s and %s", a, b)
	}
}
