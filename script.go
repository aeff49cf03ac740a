// Copyright (c) 2024-2026 The txwire developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txwire

// ScriptSerializeSize returns the number of bytes it would take to serialize
// script, which is the serialized varint size for the script length plus the
// script bytes themselves.
func ScriptSerializeSize(script []byte) int {
	return VarIntSerializeSize(uint64(len(script))) + len(script)
}

// AppendScript appends the wire encoding of script to b and returns the
// extended buffer.  A script is encoded as a varint containing the length of
// the script followed by the script bytes.
func AppendScript(b, script []byte) []byte {
	b = AppendVarInt(b, uint64(len(script)))
	return append(b, script...)
}

// EncodeScript serializes script with its varint length prefix.  Encoding
// never fails; a nil or empty script encodes to the single byte 0x00.
func EncodeScript(script []byte) []byte {
	return AppendScript(make([]byte, 0, ScriptSerializeSize(script)), script)
}

// DecodeScript deserializes one length-prefixed script from the front of buf
// and returns the script bytes along with the number of bytes consumed.  The
// returned script is a copy and does not alias buf.  ErrInsufficientBytes is
// returned when buf holds fewer bytes than the length prefix announces.
func DecodeScript(buf []byte) ([]byte, int, error) {
	count, n, err := DecodeVarInt(buf)
	if err != nil {
		return nil, 0, err
	}

	// The announced length must be fully backed by remaining bytes.  The
	// comparison is done in uint64 so a hostile length near the maximum
	// cannot wrap when added to the prefix width.
	if count > uint64(len(buf)-n) {
		return nil, 0, ErrInsufficientBytes
	}

	script := make([]byte, count)
	copy(script, buf[n:n+int(count)])
	return script, n + int(count), nil
}
