// Package shamir implements Shamir secret sharing over a prime field ℤ_q,
// optionally augmented with Feldman verifiable secret sharing (VSS).
//
// Given a secret byte string, a threshold t and a total share count n with
// 1 <= t <= n, SplitSecret produces n shares such that any t of them
// reconstruct the secret exactly via RecoverSecret, and any t-1 reveal no
// information about it. When split with verifiable set, SplitSecret also
// publishes Feldman commitments; FeldmanVerification lets a share holder
// confirm their share is consistent with the dealer's polynomial without
// learning it.
//
// The package is single-threaded and allocation-light: every operation is a
// bounded number of big.Int modular operations on a prime of at most a few
// thousand bits, and completes without blocking I/O beyond the randomness
// source consulted during SplitSecret.
package shamir
