// Copyright (c) 2024-2026 The txwire developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txwire

// MaxTxInSequenceNum is the maximum sequence number the sequence field of a
// transaction input can be.
const MaxTxInSequenceNum uint32 = 0xffffffff

// minTxInPayload is the minimum payload size for a transaction input:
// previous outpoint 36 bytes + varint for signature script length 1 byte +
// sequence 4 bytes.
const minTxInPayload = OutPointSize + 1 + 4

// TxIn defines a bitcoin transaction input.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Sequence         uint32
}

// NewTxIn returns a new bitcoin transaction input with the provided previous
// outpoint point and signature script with a default sequence of
// MaxTxInSequenceNum.
func NewTxIn(prevOut *OutPoint, signatureScript []byte) *TxIn {
	return &TxIn{
		PreviousOutPoint: *prevOut,
		SignatureScript:  signatureScript,
		Sequence:         MaxTxInSequenceNum,
	}
}

// SerializeSize returns the number of bytes it would take to serialize the
// transaction input.
func (t *TxIn) SerializeSize() int {
	// Outpoint 36 bytes + sequence 4 bytes + serialized varint size for
	// the length of SignatureScript + SignatureScript bytes.
	return OutPointSize + 4 + ScriptSerializeSize(t.SignatureScript)
}

// appendTxIn appends the wire encoding of t to b and returns the extended
// buffer.
func appendTxIn(b []byte, t *TxIn) []byte {
	b = appendOutPoint(b, &t.PreviousOutPoint)
	b = AppendScript(b, t.SignatureScript)
	return littleEndian.AppendUint32(b, t.Sequence)
}

// Serialize encodes the transaction input as the previous outpoint followed
// by the length-prefixed signature script and the 4 byte little-endian
// sequence number.  Encoding never fails.
func (t *TxIn) Serialize() []byte {
	return appendTxIn(make([]byte, 0, t.SerializeSize()), t)
}

// Deserialize decodes a transaction input from the front of buf into the
// receiver and returns the number of bytes consumed.  The sub-decodes run in
// wire order and the first failure aborts the whole input; errors from the
// outpoint and script decoders propagate unchanged.
func (t *TxIn) Deserialize(buf []byte) (int, error) {
	n, err := t.PreviousOutPoint.Deserialize(buf)
	if err != nil {
		return 0, err
	}

	script, sn, err := DecodeScript(buf[n:])
	if err != nil {
		return 0, err
	}
	t.SignatureScript = script
	n += sn

	if len(buf)-n < 4 {
		return 0, ErrInsufficientBytes
	}
	t.Sequence = littleEndian.Uint32(buf[n : n+4])
	n += 4

	return n, nil
}
