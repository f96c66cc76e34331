// Package entropy abstracts the source of cryptographically secure random
// bytes consumed by the samplers and prime generators. The process entropy
// pool is exposed through System; deterministic sources backed by a keyed
// XOF are available for reproducible vectors and seeded tool runs.
package entropy

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/tuneinsight/lattigo/v4/utils"
)

// ErrEntropyUnavailable reports that the underlying byte source failed or
// ran dry.
var ErrEntropyUnavailable = errors.New("entropy: source unavailable")

// Source supplies n cryptographically secure random bytes. Implementations
// block until the bytes are available or fail with an error wrapping
// ErrEntropyUnavailable.
type Source interface {
	Bytes(n int) ([]byte, error)
}

type readerSource struct {
	r io.Reader
}

func (s readerSource) Bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("entropy: negative byte count %d", n)
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(s.r, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	return b, nil
}

// System returns the process-wide source backed by crypto/rand.
func System() Source {
	return readerSource{r: crand.Reader}
}

// FromReader adapts any reader into a Source. The reader is trusted to be
// cryptographically secure; short reads surface as ErrEntropyUnavailable.
func FromReader(r io.Reader) Source {
	return readerSource{r: r}
}

// NewSeeded returns a deterministic Source expanding key through a keyed
// blake2b XOF. Two sources built from the same key yield identical streams.
// The key must be at most 64 bytes. Seeded sources are for reproducible
// test vectors and seeded tool runs, not for production key material.
func NewSeeded(key []byte) (Source, error) {
	prng, err := utils.NewKeyedPRNG(key)
	if err != nil {
		return nil, fmt.Errorf("entropy: keyed prng: %w", err)
	}
	return readerSource{r: prng}, nil
}
