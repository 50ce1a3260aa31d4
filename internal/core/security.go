// AngelaMos | 2026
// security.go

package core

import (
	"crypto/subtle"
)

// ConstantTimeEquals compares two strings without an early exit. Stored
// credentials in this system are plaintext demo passwords; the comparison
// still avoids leaking a length-prefix match through timing.
func ConstantTimeEquals(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
