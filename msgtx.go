// Copyright (c) 2024-2026 The txwire developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txwire

const (
	// TxVersion is the current latest supported transaction version.
	TxVersion = 1

	// defaultTxInAlloc is the default size used for the backing array for
	// transaction inputs.  The array will dynamically grow as needed, but
	// this figure is intended to provide enough space for the number of
	// inputs in a typical transaction without needing to grow the backing
	// array multiple times.
	defaultTxInAlloc = 15

	// minTxPayload is the minimum payload size for a transaction: version
	// 4 bytes + varint number of transaction inputs 1 byte + lock time 4
	// bytes.  Note that any realistically usable transaction must have at
	// least one input, but that is a rule enforced at a higher layer, so
	// it is intentionally not included here.
	minTxPayload = 4 + 1 + 4
)

// MsgTx represents a bitcoin tx message using the legacy (pre-segwit,
// input-only) encoding handled by this package.
//
// Use the AddTxIn function to build up the list of transaction inputs.
type MsgTx struct {
	Version  int32
	TxIn     []*TxIn
	LockTime uint32
}

// NewMsgTx returns a new bitcoin tx message with the provided version.  The
// returned instance has no transaction inputs.
func NewMsgTx(version int32) *MsgTx {
	return &MsgTx{
		Version: version,
		TxIn:    make([]*TxIn, 0, defaultTxInAlloc),
	}
}

// AddTxIn adds a transaction input to the message.
func (msg *MsgTx) AddTxIn(ti *TxIn) {
	msg.TxIn = append(msg.TxIn, ti)
}

// Copy creates a deep copy of a transaction so that the original does not
// get modified when the copy is manipulated.
func (msg *MsgTx) Copy() *MsgTx {
	// Create new tx and start by copying primitive values and making
	// space for the transaction inputs.
	newTx := MsgTx{
		Version:  msg.Version,
		TxIn:     make([]*TxIn, 0, len(msg.TxIn)),
		LockTime: msg.LockTime,
	}

	// Deep copy the old TxIn data.
	for _, oldTxIn := range msg.TxIn {
		// Deep copy the old signature script.
		var newScript []byte
		oldScriptLen := len(oldTxIn.SignatureScript)
		if oldScriptLen > 0 {
			newScript = make([]byte, oldScriptLen)
			copy(newScript, oldTxIn.SignatureScript)
		}

		newTxIn := TxIn{
			PreviousOutPoint: oldTxIn.PreviousOutPoint,
			SignatureScript:  newScript,
			Sequence:         oldTxIn.Sequence,
		}
		newTx.TxIn = append(newTx.TxIn, &newTxIn)
	}

	return &newTx
}

// SerializeSize returns the number of bytes it would take to serialize the
// transaction.
func (msg *MsgTx) SerializeSize() int {
	// Version 4 bytes + LockTime 4 bytes + serialized varint size for the
	// number of transaction inputs.
	n := 8 + VarIntSerializeSize(uint64(len(msg.TxIn)))

	for _, txIn := range msg.TxIn {
		n += txIn.SerializeSize()
	}

	return n
}

// Serialize encodes the transaction as the 4 byte little-endian version,
// the varint input count, each input in order, and the 4 byte little-endian
// lock time.  Encoding never fails.
func (msg *MsgTx) Serialize() []byte {
	b := make([]byte, 0, msg.SerializeSize())
	b = littleEndian.AppendUint32(b, uint32(msg.Version))
	b = AppendVarInt(b, uint64(len(msg.TxIn)))
	for _, ti := range msg.TxIn {
		b = appendTxIn(b, ti)
	}
	return littleEndian.AppendUint32(b, msg.LockTime)
}

// Deserialize decodes a transaction from the front of buf into the receiver
// and returns the number of bytes consumed.  Extra bytes after a complete
// transaction are permitted and left unread, so the consumed count is not
// necessarily len(buf).
//
// Decoding is a single linear pass: version, input count, exactly that many
// inputs, then lock time.  The first failure aborts the whole decode with
// the sub-decoder's error unchanged, and no partially decoded state is
// meaningful to the caller afterwards.
func (msg *MsgTx) Deserialize(buf []byte) (int, error) {
	if len(buf) < 4 {
		return 0, ErrInsufficientBytes
	}
	msg.Version = int32(littleEndian.Uint32(buf[0:4]))
	n := 4

	count, cn, err := DecodeVarInt(buf[n:])
	if err != nil {
		return 0, err
	}
	n += cn

	// Prevent more input transactions than could possibly fit into the
	// remaining bytes.  It would be possible to cause memory exhaustion
	// and panics without a sane upper bound on this count, and a count
	// that large is guaranteed to run out of buffer anyway.
	if count > uint64(len(buf)-n)/minTxInPayload {
		return 0, ErrInsufficientBytes
	}

	txIns := make([]TxIn, count)
	msg.TxIn = make([]*TxIn, count)
	for i := uint64(0); i < count; i++ {
		ti := &txIns[i]
		msg.TxIn[i] = ti
		tn, err := ti.Deserialize(buf[n:])
		if err != nil {
			return 0, err
		}
		n += tn
	}

	if len(buf)-n < 4 {
		return 0, ErrInsufficientBytes
	}
	msg.LockTime = littleEndian.Uint32(buf[n : n+4])
	n += 4

	return n, nil
}
