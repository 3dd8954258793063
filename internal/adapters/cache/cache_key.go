package cache

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes a query's identifying parameters into a short,
// fixed-width cache key so callers never have to worry about key
// length limits or character escaping across SQL and Redis backends.
func Fingerprint(parts ...string) string {
	h := xxhash.New()
	for _, p := range parts {
		_, _ = h.WriteString(p)
		_, _ = h.WriteString("\x1f") // unit separator, avoids part-boundary collisions
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

// FingerprintStrings joins a variable-length slice (e.g. a preference
// filter's carrier whitelist) into a single part for Fingerprint, in the
// order given; callers sort the slice first when the key must not depend
// on ordering.
func FingerprintStrings(ss []string) string {
	return strings.Join(ss, ",")
}
