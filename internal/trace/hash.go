package trace

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefix for content-addressed event identity. The version suffix
// leaves room for an algorithm change without colliding with old ids.
const domainEvent = "dispatchlab/event/v1"

// hashWithDomain computes SHA-256 over domain + 0x00 + data. The null
// separator keeps the domain/data boundary unambiguous.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// ID computes the content-addressed id for an event. Two events with the
// same observation at the same position hash identically, which is what
// makes replays comparable.
func (e Event) ID() (string, error) {
	canonical, err := MarshalCanonical(e.canonicalMap())
	if err != nil {
		return "", fmt.Errorf("event id: failed to marshal: %w", err)
	}
	return hashWithDomain(domainEvent, canonical), nil
}
