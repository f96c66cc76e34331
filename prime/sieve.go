package prime

import (
	"sort"
	"sync"
)

// GeneratePrimesUpTo returns every prime strictly below limit, in order,
// using the Sieve of Eratosthenes.
func GeneratePrimesUpTo(limit int) []uint64 {
	if limit <= 2 {
		return nil
	}
	composite := make([]bool, limit)
	var primes []uint64
	for p := 2; p < limit; p++ {
		if composite[p] {
			continue
		}
		primes = append(primes, uint64(p))
		for q := p * p; q < limit; q += p {
			composite[q] = true
		}
	}
	return primes
}

// DefaultSieveLimit is the exclusive bound on the small primes used to
// pre-filter safe-prime candidates.
const DefaultSieveLimit = 65537

// A cached bound within this distance of a request is served unfiltered;
// filtering would cost more than the few extra primes save.
const reuseSlack = 1000

// SieveCache caches sieve outputs keyed by their exclusive upper bound. An
// entry for a larger bound can serve any smaller request, filtered down when
// the gap is worth it. The cache is safe for concurrent use; returned slices
// are shared and must not be modified.
type SieveCache struct {
	mu      sync.Mutex
	byLimit map[int][]uint64
}

// NewSieveCache returns an empty cache. Tests use private caches to isolate
// state from DefaultCache.
func NewSieveCache() *SieveCache {
	return &SieveCache{byLimit: make(map[int][]uint64)}
}

// DefaultCache backs the package-level prime search loops.
var DefaultCache = NewSieveCache()

// SmallPrimes returns the primes below limit. An exact cached bound is
// returned directly; otherwise the smallest cached bound covering the
// request is reused as-is or filtered down; failing both, a fresh sieve run
// is cached under limit and returned.
func (c *SieveCache) SmallPrimes(limit int) []uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ps, ok := c.byLimit[limit]; ok {
		return ps
	}

	best := 0
	for bound := range c.byLimit {
		if bound >= limit && (best == 0 || bound < best) {
			best = bound
		}
	}
	if best != 0 {
		ps := c.byLimit[best]
		if best-limit < reuseSlack {
			return ps
		}
		cut := sort.Search(len(ps), func(i int) bool { return ps[i] >= uint64(limit) })
		return ps[:cut:cut]
	}

	ps := GeneratePrimesUpTo(limit)
	c.byLimit[limit] = ps
	return ps
}

// Reset drops every cached entry.
func (c *SieveCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byLimit = make(map[int][]uint64)
}
