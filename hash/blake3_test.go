// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package hash

import (
	"bytes"
	"testing"
)

func TestChecksum(t *testing.T) {
	sum := func(parts ...string) []byte {
		c := NewChecksum()
		c.WriteUint64(uint64(len(parts)))
		for _, p := range parts {
			c.WriteBytes([]byte(p))
		}
		return c.Sum()
	}

	a := sum("ab", "c")
	if len(a) != ChecksumSize {
		t.Fatalf("expected %d bytes, got %d", ChecksumSize, len(a))
	}
	if !bytes.Equal(a, sum("ab", "c")) {
		t.Fatal("checksum is not deterministic")
	}
	if bytes.Equal(a, sum("a", "bc")) {
		t.Fatal("checksum ignores part boundaries")
	}
	if bytes.Equal(a, sum("ab", "c", "")) {
		t.Fatal("checksum ignores empty parts")
	}
}
