// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0

// Package proto persists transposed matrices as protobuf messages.
package proto

import (
	"bufio"
	"bytes"
	"io"

	"github.com/RoaringBitmap/roaring"
	"github.com/gogo/protobuf/proto"
	"github.com/molecula/analyzer"
	"github.com/molecula/analyzer/errors"
	"github.com/molecula/analyzer/hash"
	"github.com/molecula/analyzer/internal"
)

// Serializer marshals matrices to and from protobuf serialized bytes.
type Serializer struct{}

// MarshalMatrix turns m into protobuf serialized bytes.
func (Serializer) MarshalMatrix(m *analyzer.Matrix) ([]byte, error) {
	pb, err := encodeMatrix(m)
	if err != nil {
		return nil, err
	}
	buf, err := proto.Marshal(pb)
	return buf, errors.Wrap(err, "marshalling matrix")
}

// UnmarshalMatrix decodes bytes produced by MarshalMatrix. Any failure is an
// errors.ErrPersistence error.
func (Serializer) UnmarshalMatrix(buf []byte) (*analyzer.Matrix, error) {
	pb := &internal.Matrix{}
	if err := proto.Unmarshal(buf, pb); err != nil {
		return nil, errors.Wrap(errors.WithCode(err, errors.ErrPersistence), "unmarshalling matrix")
	}
	return decodeMatrix(pb)
}

// Save writes m to w in the form produced by Serializer.MarshalMatrix.
func Save(w io.Writer, m *analyzer.Matrix) error {
	buf, err := Serializer{}.MarshalMatrix(m)
	if err != nil {
		return err
	}
	bw := bufio.NewWriterSize(w, 8<<20)
	if _, err := bw.Write(buf); err != nil {
		return errors.Wrap(err, "writing matrix")
	}
	return errors.Wrap(bw.Flush(), "flushing matrix")
}

// Load reads a matrix written by Save from r. A read failure is an
// errors.ErrStream error; anything wrong with the bytes read is an
// errors.ErrPersistence error.
func Load(r io.Reader) (*analyzer.Matrix, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.WithCode(err, errors.ErrStream), "reading matrix")
	}
	return Serializer{}.UnmarshalMatrix(buf)
}

func encodeMatrix(m *analyzer.Matrix) (*internal.Matrix, error) {
	pb := &internal.Matrix{
		Version: analyzer.LayoutVersion,
		Height:  uint64(m.Height()),
		Width:   uint64(m.Width()),
		Rows:    make([][]byte, m.Height()),
	}
	for i := range pb.Rows {
		var buf bytes.Buffer
		if _, err := m.Row(i).WriteTo(&buf); err != nil {
			return nil, errors.Wrapf(err, "serializing row %d", i)
		}
		pb.Rows[i] = buf.Bytes()
	}
	pb.Checksum = checksum(pb)
	return pb, nil
}

func decodeMatrix(pb *internal.Matrix) (*analyzer.Matrix, error) {
	if pb.Version != analyzer.LayoutVersion {
		return nil, errors.Newf(errors.ErrPersistence, "unsupported layout version %d, expected %d", pb.Version, analyzer.LayoutVersion)
	}
	if pb.Height != uint64(len(pb.Rows)) {
		return nil, errors.Newf(errors.ErrPersistence, "matrix height %d but %d rows", pb.Height, len(pb.Rows))
	}
	if !bytes.Equal(pb.Checksum, checksum(pb)) {
		return nil, errors.New(errors.ErrPersistence, "matrix checksum mismatch")
	}
	if pb.Width > uint64(^uint32(0)) {
		return nil, errors.Newf(errors.ErrPersistence, "matrix width %d too large", pb.Width)
	}

	rows := make([]*roaring.Bitmap, len(pb.Rows))
	for i, data := range pb.Rows {
		rows[i] = roaring.New()
		if err := rows[i].UnmarshalBinary(data); err != nil {
			return nil, errors.Wrapf(errors.WithCode(err, errors.ErrPersistence), "decoding row %d", i)
		}
	}
	m, err := analyzer.NewMatrixFromRows(rows, int(pb.Width))
	if err != nil {
		return nil, errors.WithCode(err, errors.ErrPersistence)
	}
	return m, nil
}

// checksum covers every field of pb but the checksum itself.
func checksum(pb *internal.Matrix) []byte {
	c := hash.NewChecksum()
	c.WriteUint64(uint64(pb.Version))
	c.WriteUint64(pb.Height)
	c.WriteUint64(pb.Width)
	c.WriteUint64(uint64(len(pb.Rows)))
	for _, row := range pb.Rows {
		c.WriteBytes(row)
	}
	return c.Sum()
}

