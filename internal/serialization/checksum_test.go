package serialization

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestComputeChecksum verifies SHA-256 checksum computation.
func TestComputeChecksum(t *testing.T) {
	data := []byte("test data")
	assert.Equal(t, ComputeChecksum(data), ComputeChecksum(data))
	assert.NotEqual(t, ComputeChecksum(data), ComputeChecksum([]byte("different data")))
}

// TestComputeChecksumReader verifies streaming checksums match direct ones.
func TestComputeChecksumReader(t *testing.T) {
	data := []byte("test data for reader")

	sum, err := ComputeChecksumReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	assert.Equal(t, ComputeChecksum(data), sum)

	prefix, err := ComputeChecksumReader(bytes.NewReader(data), 4)
	require.NoError(t, err)
	assert.Equal(t, ComputeChecksum(data[:4]), prefix)

	_, err = ComputeChecksumReader(bytes.NewReader(data), int64(len(data))+1)
	assert.ErrorIs(t, err, ErrTruncated)
}

// TestValidateChecksum verifies checksum validation.
func TestValidateChecksum(t *testing.T) {
	sum := ComputeChecksum([]byte("test data"))
	require.NoError(t, ValidateChecksum(sum, sum))

	wrong := [32]byte{1, 2, 3, 4, 5, 6, 7, 8}
	assert.ErrorIs(t, ValidateChecksum(sum, wrong), ErrChecksumMismatch)
}

// TestKnownVectorSHA256 verifies SHA-256 produces correct known vectors.
func TestKnownVectorSHA256(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"hello world", "hello world", "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum := ComputeChecksum([]byte(tt.input))
			assert.Equal(t, tt.expected, hex.EncodeToString(sum[:]))
		})
	}
}
