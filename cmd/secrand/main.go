// Command secrand generates cryptographically-sound random primitives from
// the command line: exact-bit-length integers, probable primes, safe primes,
// discrete Gaussian samples and LWE-style samples.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/crypto/sha3"

	"secrand/entropy"
	"secrand/lwe"
	"secrand/prime"
	"secrand/prof"
)

// config carries environment defaults so scripted runs can omit flags.
type config struct {
	Bits     int     `env:"SECRAND_BITS" envDefault:"256"`
	Rounds   int     `env:"SECRAND_ROUNDS" envDefault:"20"`
	Enhanced bool    `env:"SECRAND_ENHANCED" envDefault:"false"`
	Sigma    float64 `env:"SECRAND_SIGMA" envDefault:"3.2"`
	Seed     string  `env:"SECRAND_SEED"`
}

func usage() {
	fmt.Println(`usage: secrand <bigint|prime|safeprime|gauss|lattice> [options]

Subcommands:
  bigint     Sample a random odd integer of exact bit length
               -bits <int>
  prime      Search for a probable prime
               -bits <int>  -rounds <int>  -enhanced  -timeout <dur>  -v
  safeprime  Search for a safe prime p = 2q+1
               -bits <int>  -rounds <int>  -enhanced  -timeout <dur>  -v
  gauss      Draw discrete Gaussian samples
               -sigma <float>  -n <int>
  lattice    Draw LWE-style samples
               -dim <int>  -mod <int>  -sigma <float>  -normalized  -n <int>

Common:
  -seed <string>  deterministic run keyed by the SHA3-256 of the string

Environment defaults: SECRAND_BITS, SECRAND_ROUNDS, SECRAND_ENHANCED,
SECRAND_SIGMA, SECRAND_SEED.`)
	os.Exit(1)
}

func newSource(seed string) entropy.Source {
	if seed == "" {
		return entropy.System()
	}
	key := sha3.Sum256([]byte(seed))
	src, err := entropy.NewSeeded(key[:])
	if err != nil {
		log.Fatalf("seeded source: %v", err)
	}
	return src
}

func main() {
	log.SetFlags(0)
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("environment: %v", err)
	}
	if len(os.Args) < 2 {
		usage()
	}

	switch os.Args[1] {
	case "bigint":
		runBigInt(cfg, os.Args[2:])
	case "prime":
		runPrime(cfg, os.Args[2:], false)
	case "safeprime":
		runPrime(cfg, os.Args[2:], true)
	case "gauss":
		runGauss(cfg, os.Args[2:])
	case "lattice":
		runLattice(cfg, os.Args[2:])
	default:
		usage()
	}
}

func runBigInt(cfg config, args []string) {
	fs := flag.NewFlagSet("bigint", flag.ExitOnError)
	bits := fs.Int("bits", cfg.Bits, "exact bit length")
	seed := fs.String("seed", cfg.Seed, "deterministic seed")
	fs.Parse(args)

	v, err := prime.RandBigInt(*bits, newSource(*seed))
	if err != nil {
		log.Fatalf("bigint: %v", err)
	}
	fmt.Printf("value: %s\nbits: %d\n", v, v.BitLen())
}

func runPrime(cfg config, args []string, safe bool) {
	name := "prime"
	if safe {
		name = "safeprime"
	}
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	bits := fs.Int("bits", cfg.Bits, "exact bit length")
	rounds := fs.Int("rounds", cfg.Rounds, "Miller-Rabin rounds")
	enhanced := fs.Bool("enhanced", cfg.Enhanced, "use the FIPS 186-5 enhanced test")
	timeout := fs.Duration("timeout", 0, "abort the search after this long (0 = unbounded)")
	seed := fs.String("seed", cfg.Seed, "deterministic seed")
	verbose := fs.Bool("v", false, "print search timing")
	fs.Parse(args)

	src := newSource(*seed)
	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	start := time.Now()
	var p, q *bigIntResult
	if safe {
		v, err := prime.RandSafePrimeContext(ctx, *bits, *rounds, *enhanced, src)
		if err != nil {
			log.Fatalf("%s: %v", name, err)
		}
		p = describe(v)
		q = describe(sophieGermain(v))
	} else {
		v, err := prime.RandPrimeContext(ctx, *bits, *rounds, *enhanced, src)
		if err != nil {
			log.Fatalf("%s: %v", name, err)
		}
		p = describe(v)
	}
	prof.Track(start, name)

	fmt.Printf("p: %s\nbits: %d\nfingerprint: %s\n", p.dec, p.bits, p.fingerprint)
	if q != nil {
		fmt.Printf("q: %s\nq-fingerprint: %s\n", q.dec, q.fingerprint)
	}
	if *verbose {
		for label, stat := range prof.Summarize(prof.SnapshotAndReset()) {
			fmt.Printf("timing %s: %v over %d call(s)\n", label, stat.Mean(), stat.Count)
		}
	}
}

type bigIntResult struct {
	dec         string
	bits        int
	fingerprint string
}

func describe(v *big.Int) *bigIntResult {
	h := sha3.Sum256(v.Bytes())
	return &bigIntResult{
		dec:         v.String(),
		bits:        v.BitLen(),
		fingerprint: fmt.Sprintf("%x", h[:8]),
	}
}

func sophieGermain(p *big.Int) *big.Int {
	q := new(big.Int).Sub(p, big.NewInt(1))
	return q.Rsh(q, 1)
}

func runGauss(cfg config, args []string) {
	fs := flag.NewFlagSet("gauss", flag.ExitOnError)
	sigma := fs.Float64("sigma", cfg.Sigma, "standard deviation")
	n := fs.Int("n", 16, "number of samples")
	seed := fs.String("seed", cfg.Seed, "deterministic seed")
	fs.Parse(args)

	src := newSource(*seed)
	for i := 0; i < *n; i++ {
		s, err := lwe.Sample(*sigma, lwe.DefaultTables, src)
		if err != nil {
			log.Fatalf("gauss: %v", err)
		}
		fmt.Println(s)
	}
}

func runLattice(cfg config, args []string) {
	fs := flag.NewFlagSet("lattice", flag.ExitOnError)
	dim := fs.Int("dim", 256, "lattice dimension")
	mod := fs.Int("mod", 4093, "modulus")
	sigma := fs.Float64("sigma", cfg.Sigma, "error standard deviation")
	normalized := fs.Bool("normalized", false, "report samples in [0,1)")
	n := fs.Int("n", 16, "number of samples")
	seed := fs.String("seed", cfg.Seed, "deterministic seed")
	fs.Parse(args)

	src := newSource(*seed)
	mode := lwe.ModeInteger
	if *normalized {
		mode = lwe.ModeNormalized
	}
	for i := 0; i < *n; i++ {
		b, err := lwe.RandLattice(*dim, *mod, *sigma, mode, nil, src)
		if err != nil {
			log.Fatalf("lattice: %v", err)
		}
		if *normalized {
			fmt.Printf("%.9f\n", b)
		} else {
			fmt.Printf("%.0f\n", b)
		}
	}
}
