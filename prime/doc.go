// Package prime implements random big-integer sampling, Miller-Rabin
// primality testing in its standard and FIPS 186-5 enhanced forms, a cached
// Sieve of Eratosthenes, and the combined-sieve search loops producing
// probable primes and safe primes p = 2q+1.
//
// All randomness is drawn from an explicit entropy.Source; given a seeded
// source every function in this package is deterministic.
package prime
