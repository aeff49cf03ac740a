// Copyright (c) 2024-2026 The txwire developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package txwire implements the legacy bitcoin transaction wire encoding.

The package converts between in-memory transaction structures and their
canonical byte encoding as sent across the bitcoin wire protocol, covering
the pre-segwit subset: CompactSize variable length integers, outpoints,
signature scripts, transaction inputs, and the transaction itself (version,
inputs, lock time).  Transaction outputs, witness data, script execution,
and hashing are intentionally not handled here.

Every structure provides Serialize, which cannot fail and always produces
the canonical minimal encoding, and Deserialize, which reports the number
of bytes consumed from the front of the provided buffer so callers can
advance a cursor through concatenated structures.  Extra bytes after a
complete transaction are ignored.  Decoding is strict about buffer bounds
and fails with ErrInsufficientBytes on any truncated field, but is lenient
about non-minimal CompactSize encodings, matching the historical wire
behavior.
*/
package txwire
