// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package hash

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// ChecksumSize is the length in bytes of a Checksum sum.
const ChecksumSize = 32

// Checksum accumulates a blake3 cryptographic hash over a sequence of
// integers and length-prefixed byte strings. Length prefixes keep
// ["ab", "c"] and ["a", "bc"] from hashing the same.
type Checksum struct {
	hasher *blake3.Hasher
	buf    [binary.MaxVarintLen64]byte
}

// NewChecksum returns a new Checksum.
func NewChecksum() *Checksum {
	return &Checksum{hasher: blake3.New()}
}

// WriteUint64 adds v to the hash.
func (c *Checksum) WriteUint64(v uint64) {
	n := binary.PutUvarint(c.buf[:], v)
	// "Write implements part of the hash.Hash interface. It never returns an error."
	//  -- https://godoc.org/github.com/zeebo/blake3#Hasher.Write
	_, _ = c.hasher.Write(c.buf[:n])
}

// WriteBytes adds b, prefixed by its length, to the hash.
func (c *Checksum) WriteBytes(b []byte) {
	c.WriteUint64(uint64(len(b)))
	_, _ = c.hasher.Write(b)
}

// Sum returns the ChecksumSize bytes hash of everything written so far.
func (c *Checksum) Sum() []byte {
	buf := make([]byte, ChecksumSize)
	// "It always fills the entire buffer and never errors."
	//   -- https://godoc.org/github.com/zeebo/blake3#Digest
	_, _ = c.hasher.Digest().Read(buf)
	return buf
}

