// Copyright (c) 2024-2026 The txwire developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txwire_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/txwire/txwire"
)

// TestTxID tests the TxID API.
func TestTxID(t *testing.T) {
	idStr := "79a61adbc6e5a2e139d2713a546ec7c875632e75f1df9c3fa6010000000000aa"
	id, err := txwire.NewTxIDFromStr(idStr)
	require.NoError(t, err)

	buf := []byte{
		0x79, 0xa6, 0x1a, 0xdb, 0xc6, 0xe5, 0xa2, 0xe1,
		0x39, 0xd2, 0x71, 0x3a, 0x54, 0x6e, 0xc7, 0xc8,
		0x75, 0x63, 0x2e, 0x75, 0xf1, 0xdf, 0x9c, 0x3f,
		0xa6, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0xaa,
	}

	id2, err := txwire.NewTxID(buf)
	require.NoError(t, err)

	// Ensure proper size and contents.
	require.Len(t, id2[:], txwire.TxIDSize)
	require.True(t, bytes.Equal(id2[:], buf))
	require.True(t, id.IsEqual(id2))
	require.Equal(t, buf, id2.Bytes())

	// Set from byte slice and ensure contents match.
	var id3 txwire.TxID
	require.NoError(t, id3.SetBytes(id.Bytes()))
	require.True(t, id3.IsEqual(id))

	// Invalid sizes for SetBytes and NewTxID.
	require.ErrorIs(t, id3.SetBytes([]byte{0x00}), txwire.ErrInvalidFormat)
	_, err = txwire.NewTxID(make([]byte, txwire.TxIDSize+1))
	require.ErrorIs(t, err, txwire.ErrInvalidFormat)
}

// TestTxIDString tests the stringized output for transaction IDs.
func TestTxIDString(t *testing.T) {
	wantStr := "06e533fd1ada86391f3f6c343204b0d278d4aaec1c0b20aa27ba0300000000aa"
	id := txwire.TxID([txwire.TxIDSize]byte{ // Make go vet happy.
		0x06, 0xe5, 0x33, 0xfd, 0x1a, 0xda, 0x86, 0x39,
		0x1f, 0x3f, 0x6c, 0x34, 0x32, 0x04, 0xb0, 0xd2,
		0x78, 0xd4, 0xaa, 0xec, 0x1c, 0x0b, 0x20, 0xaa,
		0x27, 0xba, 0x03, 0x00, 0x00, 0x00, 0x00, 0xaa,
	})

	require.Equal(t, wantStr, id.String())

	// Round-trip through the string form.
	parsed, err := txwire.NewTxIDFromStr(id.String())
	require.NoError(t, err)
	require.True(t, parsed.IsEqual(&id))
}

// TestNewTxIDFromStr executes tests against the NewTxIDFromStr function.
func TestNewTxIDFromStr(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want txwire.TxID
		err  error
	}{
		{
			"all zero",
			strings.Repeat("0", txwire.TxIDStringSize),
			txwire.TxID{},
			nil,
		},
		{
			"uppercase accepted",
			"AB" + strings.Repeat("0", txwire.TxIDStringSize-2),
			txwire.TxID([txwire.TxIDSize]byte{0: 0xab}),
			nil,
		},
		{
			"empty string",
			"",
			txwire.TxID{},
			txwire.ErrInvalidFormat,
		},
		{
			"short string",
			"abcdef",
			txwire.TxID{},
			txwire.ErrInvalidFormat,
		},
		{
			"too long",
			strings.Repeat("0", txwire.TxIDStringSize+2),
			txwire.TxID{},
			txwire.ErrInvalidFormat,
		},
		{
			"non-hex characters",
			"zz" + strings.Repeat("0", txwire.TxIDStringSize-2),
			txwire.TxID{},
			txwire.ErrInvalidFormat,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result, err := txwire.NewTxIDFromStr(test.in)
			if test.err != nil {
				require.ErrorIs(t, err, test.err)
				return
			}
			require.NoError(t, err)
			require.True(t, test.want.IsEqual(result))
		})
	}
}

// TestTxIDJSON tests JSON marshaling of transaction IDs to and from the hex
// string form.
func TestTxIDJSON(t *testing.T) {
	id := txwire.TxID([txwire.TxIDSize]byte{ // Make go vet happy.
		0xde, 0xad, 0xbe, 0xef, 0x04, 0x05, 0x06, 0x07,
		0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
		0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17,
		0x18, 0x19, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e, 0x1f,
	})

	encoded, err := json.Marshal(id)
	require.NoError(t, err)
	require.Equal(t, `"`+id.String()+`"`, string(encoded))

	var decoded txwire.TxID
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	require.True(t, decoded.IsEqual(&id))

	// Malformed inputs.
	require.ErrorIs(t, json.Unmarshal([]byte(`"abcd"`), &decoded),
		txwire.ErrInvalidFormat)
	require.Error(t, json.Unmarshal([]byte(`42`), &decoded))
}
