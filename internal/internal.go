// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0

// Package internal holds the protobuf messages of the persisted formats.
package internal

import (
	"github.com/gogo/protobuf/proto"
)

// Matrix is the persisted form of a transposed item x transaction matrix.
//
//	message Matrix {
//	    uint32 Version = 1;
//	    uint64 Height = 2;
//	    uint64 Width = 3;
//	    repeated bytes Rows = 4;
//	    bytes Checksum = 5;
//	}
//
// Each row is the portable roaring serialization of the transactions holding
// the item.
type Matrix struct {
	Version  uint32   `protobuf:"varint,1,opt,name=Version,proto3" json:"Version,omitempty"`
	Height   uint64   `protobuf:"varint,2,opt,name=Height,proto3" json:"Height,omitempty"`
	Width    uint64   `protobuf:"varint,3,opt,name=Width,proto3" json:"Width,omitempty"`
	Rows     [][]byte `protobuf:"bytes,4,rep,name=Rows,proto3" json:"Rows,omitempty"`
	Checksum []byte   `protobuf:"bytes,5,opt,name=Checksum,proto3" json:"Checksum,omitempty"`
}

func (m *Matrix) Reset()         { *m = Matrix{} }
func (m *Matrix) String() string { return proto.CompactTextString(m) }
func (*Matrix) ProtoMessage()    {}
