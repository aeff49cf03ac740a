// Copyright (c) 2024-2026 The txwire developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txwire

import (
	"encoding/binary"
)

// littleEndian is a convenience variable since binary.LittleEndian is quite
// long.
var littleEndian = binary.LittleEndian

// VarIntSerializeSize returns the number of bytes it would take to serialize
// val as a variable length integer.
func VarIntSerializeSize(val uint64) int {
	// The value is small enough to be represented by itself, so it's
	// just 1 byte.
	if val < 0xfd {
		return 1
	}

	// Discriminant 1 byte plus 2 bytes for the uint16.
	if val <= 1<<16-1 {
		return 3
	}

	// Discriminant 1 byte plus 4 bytes for the uint32.
	if val <= 1<<32-1 {
		return 5
	}

	// Discriminant 1 byte plus 8 bytes for the uint64.
	return 9
}

// AppendVarInt appends the minimal variable length integer encoding of val
// to b and returns the extended buffer.
func AppendVarInt(b []byte, val uint64) []byte {
	switch {
	case val < 0xfd:
		return append(b, uint8(val))

	case val <= 1<<16-1:
		b = append(b, 0xfd)
		return littleEndian.AppendUint16(b, uint16(val))

	case val <= 1<<32-1:
		b = append(b, 0xfe)
		return littleEndian.AppendUint32(b, uint32(val))

	default:
		b = append(b, 0xff)
		return littleEndian.AppendUint64(b, val)
	}
}

// EncodeVarInt serializes val to a variable length integer using the minimal
// number of bytes for the value.  Encoding never fails.
func EncodeVarInt(val uint64) []byte {
	return AppendVarInt(make([]byte, 0, VarIntSerializeSize(val)), val)
}

// DecodeVarInt deserializes one variable length integer from the front of
// buf and returns the value along with the number of bytes consumed.
//
// Non-minimal ("non-canonical") encodings are accepted and decode to their
// numeric value, matching the historical wire behavior; only encoding
// enforces minimal widths.  ErrInsufficientBytes is returned when buf ends
// before the width announced by the discriminant byte.
func DecodeVarInt(buf []byte) (uint64, int, error) {
	if len(buf) == 0 {
		return 0, 0, ErrInsufficientBytes
	}

	discriminant := buf[0]
	switch discriminant {
	case 0xff:
		if len(buf) < 9 {
			return 0, 0, ErrInsufficientBytes
		}
		return littleEndian.Uint64(buf[1:9]), 9, nil

	case 0xfe:
		if len(buf) < 5 {
			return 0, 0, ErrInsufficientBytes
		}
		return uint64(littleEndian.Uint32(buf[1:5])), 5, nil

	case 0xfd:
		if len(buf) < 3 {
			return 0, 0, ErrInsufficientBytes
		}
		return uint64(littleEndian.Uint16(buf[1:3])), 3, nil

	default:
		return uint64(discriminant), 1, nil
	}
}
