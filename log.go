package shamir

import (
	"log"
	"os"
)

// Logger receives the one warning this package ever emits: that
// RecoverSecret was called on a bundle with no RequiredShares set, so a
// short count of supplied shares is silently accepted rather than rejected.
// Callers may reassign it, e.g. to log.New(io.Discard, "", 0) to silence it.
var Logger = log.New(os.Stderr, "shamir: ", log.LstdFlags)
