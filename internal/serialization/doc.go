// Package serialization provides the native binary format for saving and
// loading two-dimensional arrays.
//
// The format is a fixed 64-byte header followed by the raw payload:
//
//	Format Structure:
//	  0x00 [4 bytes:  Magic "NDAR"]
//	  0x04 [4 bytes:  Version (uint32 LE)]
//	  0x08 [4 bytes:  Flags (uint32 LE)]
//	  0x0C [2 bytes:  Data type code (uint16 LE)]
//	  0x0E [2 bytes:  Element size in bytes (uint16 LE)]
//	  0x10 [8 bytes:  Rows (uint64 LE)]
//	  0x18 [8 bytes:  Cols (uint64 LE)]
//	  0x20 [32 bytes: SHA-256 of the payload, zero when absent]
//	  0x40 [Payload:  rows*cols elements, row-major]
//
// Flag bit 0 marks a big-endian payload, bit 1 a valid checksum. The header
// itself is always little-endian; the payload starts 64-byte aligned, which
// lets MapFile hand out arrays that alias the mapped file.
//
// Example usage:
//
//	// Save an array
//	if err := serialization.ToFile("weights.ndar", a, serialization.DefaultOptions()); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Load it back
//	b, err := serialization.FromFile[float64]("weights.ndar")
//	if err != nil {
//	    log.Fatal(err)
//	}
package serialization
