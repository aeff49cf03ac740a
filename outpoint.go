// Copyright (c) 2024-2026 The txwire developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txwire

import (
	"strconv"
)

// OutPointSize is the size of a serialized outpoint: the transaction ID plus
// a 4 byte output index.
const OutPointSize = TxIDSize + 4

// OutPoint defines a bitcoin data type that is used to track previous
// transaction outputs.
type OutPoint struct {
	Hash  TxID
	Index uint32
}

// NewOutPoint returns a new bitcoin transaction outpoint point with the
// provided hash and index.
func NewOutPoint(hash *TxID, index uint32) *OutPoint {
	return &OutPoint{
		Hash:  *hash,
		Index: index,
	}
}

// String returns the OutPoint in the human-readable form "hash:index".
func (o OutPoint) String() string {
	// Allocate enough for hash string, colon, and 10 digits, which will
	// fit the decimal representation of any uint32.
	buf := make([]byte, TxIDStringSize+1, TxIDStringSize+1+10)
	copy(buf, o.Hash.String())
	buf[TxIDStringSize] = ':'
	buf = strconv.AppendUint(buf, uint64(o.Index), 10)
	return string(buf)
}

// SerializeSize returns the number of bytes it would take to serialize the
// outpoint, which is always OutPointSize.
func (o *OutPoint) SerializeSize() int {
	return OutPointSize
}

// appendOutPoint appends the wire encoding of o to b and returns the
// extended buffer.
func appendOutPoint(b []byte, o *OutPoint) []byte {
	b = append(b, o.Hash[:]...)
	return littleEndian.AppendUint32(b, o.Index)
}

// Serialize encodes the outpoint as the 32 byte transaction ID followed by
// the 4 byte little-endian output index.  Encoding never fails and the
// result is always exactly OutPointSize bytes.
func (o *OutPoint) Serialize() []byte {
	return appendOutPoint(make([]byte, 0, OutPointSize), o)
}

// Deserialize decodes an outpoint from the front of buf into the receiver
// and returns the number of bytes consumed, which is always OutPointSize on
// success.  No validation beyond length is performed on the transaction ID
// bytes.
func (o *OutPoint) Deserialize(buf []byte) (int, error) {
	if len(buf) < OutPointSize {
		return 0, ErrInsufficientBytes
	}

	copy(o.Hash[:], buf[:TxIDSize])
	o.Index = littleEndian.Uint32(buf[TxIDSize:OutPointSize])
	return OutPointSize, nil
}
