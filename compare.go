package downsize

import (
	"bytes"
	"fmt"

	"github.com/cyberphone/json-canonicalization/go/src/webpki.org/jsoncanonicalizer"
)

// SameContent reports whether the JSON texts a and b hold the same content
// regardless of object member order. Both texts are brought into RFC 8785
// canonical form and compared byte for byte, so numbers are compared by
// their IEEE 754 value rather than by literal.
func SameContent(a, b []byte) (bool, error) {
	ca, err := jsoncanonicalizer.Transform(a)
	if err != nil {
		return false, fmt.Errorf("downsize: canonicalizing first document: %w", err)
	}
	cb, err := jsoncanonicalizer.Transform(b)
	if err != nil {
		return false, fmt.Errorf("downsize: canonicalizing second document: %w", err)
	}
	return bytes.Equal(ca, cb), nil
}
