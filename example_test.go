package shamir_test

import (
	"fmt"

	shamir "github.com/tomsons/go-shamir-vss"
)

// This example splits a secret into five shares, three of which are enough
// to recover it, and checks every share against the dealer's Feldman
// commitments before trusting it.
func Example() {
	secret := []byte("correct horse battery staple")

	bundle, err := shamir.SplitSecret(secret, 3, 5, true)
	if err != nil {
		panic(err)
	}

	for _, s := range bundle.Shares {
		if err := shamir.FeldmanVerification(bundle.Prime2, bundle.Generator, s.X, s.Y, bundle.Commits); err != nil {
			panic(err)
		}
	}

	recovered, err := shamir.RecoverSecret(&shamir.Bundle{
		RequiredShares: bundle.RequiredShares,
		PrimeMod:       bundle.PrimeMod,
		Shares:         bundle.Shares[:3],
	})
	if err != nil {
		panic(err)
	}

	fmt.Println(string(recovered))
	// Output: correct horse battery staple
}

// This example shows a bundle traveling as text: a dealer serializes it to
// base64, a share holder parses it back, and recovery proceeds exactly as it
// would on the in-memory Bundle.
func Example_text() {
	secret := []byte("wire format round trip")

	bundle, err := shamir.SplitSecret(secret, 2, 4, false)
	if err != nil {
		panic(err)
	}

	text, err := shamir.ToBase64(bundle)
	if err != nil {
		panic(err)
	}

	parsed, err := shamir.FromBase64(text)
	if err != nil {
		panic(err)
	}
	parsed.Shares = parsed.Shares[:2]

	recovered, err := shamir.RecoverSecret(parsed)
	if err != nil {
		panic(err)
	}

	fmt.Println(string(recovered))
	// Output: wire format round trip
}
