// Copyright (c) 2024-2026 The txwire developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txwire

import (
	"encoding/hex"
	"encoding/json"
)

// TxIDSize is the size of a transaction identifier in bytes.
const TxIDSize = 32

// TxIDStringSize is the exact length of a TxID hex string.
const TxIDStringSize = TxIDSize * 2

// TxID identifies the transaction a previous outpoint refers to.  The bytes
// are treated as opaque by this package; in particular no hashing is
// performed and no byte-order convention is imposed on the text form beyond
// plain hex of the bytes as stored.
type TxID [TxIDSize]byte

// String returns the TxID as a 64 character hexadecimal string.
func (id TxID) String() string {
	return hex.EncodeToString(id[:])
}

// Bytes returns a copy of the bytes which represent the TxID as a byte
// slice.
func (id *TxID) Bytes() []byte {
	newID := make([]byte, TxIDSize)
	copy(newID, id[:])

	return newID
}

// SetBytes sets the bytes which represent the TxID.  An error is returned if
// the number of bytes passed in is not TxIDSize.
func (id *TxID) SetBytes(newID []byte) error {
	if len(newID) != TxIDSize {
		return ErrInvalidFormat
	}
	copy(id[:], newID)

	return nil
}

// IsEqual returns true if target is the same as id.
func (id *TxID) IsEqual(target *TxID) bool {
	return *id == *target
}

// MarshalJSON serializes the TxID as its hex string form.
func (id TxID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

// UnmarshalJSON parses a JSON hex string into the TxID.  ErrInvalidFormat is
// returned when the string is not exactly 64 hex characters.
func (id *TxID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return ErrInvalidFormat
	}

	newID, err := NewTxIDFromStr(s)
	if err != nil {
		return err
	}
	*id = *newID

	return nil
}

// NewTxID returns a new TxID from a byte slice.  An error is returned if the
// number of bytes passed in is not TxIDSize.
func NewTxID(newID []byte) (*TxID, error) {
	var id TxID
	err := id.SetBytes(newID)
	if err != nil {
		return nil, err
	}
	return &id, err
}

// NewTxIDFromStr creates a TxID from its hex string form.  The string must
// be exactly TxIDStringSize hex characters; anything else, including odd
// lengths, short strings, or non-hex characters, results in
// ErrInvalidFormat.
func NewTxIDFromStr(id string) (*TxID, error) {
	if len(id) != TxIDStringSize {
		return nil, ErrInvalidFormat
	}

	buf, err := hex.DecodeString(id)
	if err != nil {
		return nil, ErrInvalidFormat
	}

	var ret TxID
	copy(ret[:], buf)
	return &ret, nil
}
