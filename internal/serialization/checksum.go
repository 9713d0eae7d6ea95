package serialization

import (
	"crypto/sha256"
	"fmt"
	"io"
)

// ComputeChecksum computes the SHA-256 checksum of a payload.
func ComputeChecksum(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// ComputeChecksumReader computes the SHA-256 checksum of the next n bytes of r
// without buffering them. A reader that ends early yields ErrTruncated.
func ComputeChecksumReader(r io.Reader, n int64) ([32]byte, error) {
	h := sha256.New()
	if _, err := io.CopyN(h, r, n); err != nil {
		return [32]byte{}, truncated("payload", err)
	}
	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum, nil
}

// ValidateChecksum compares computed checksum against stored checksum.
// Returns ErrChecksumMismatch if they don't match.
func ValidateChecksum(computed, stored [32]byte) error {
	if computed != stored {
		return fmt.Errorf("%w: stored %x, computed %x", ErrChecksumMismatch, stored[:8], computed[:8])
	}
	return nil
}

// verifyPayload checks payload against the header's checksum, if it has one.
func verifyPayload(h *Header, payload []byte) error {
	if !h.HasChecksum() {
		return nil
	}
	return ValidateChecksum(ComputeChecksum(payload), h.Checksum)
}
