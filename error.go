// Copyright (c) 2024-2026 The txwire developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txwire

import "errors"

// ErrInsufficientBytes describes an error in which a buffer ends before the
// field currently being decoded does.  It is the only error the binary
// decoders return, and it is never wrapped, so callers may compare against
// it directly as well as with errors.Is.
var ErrInsufficientBytes = errors.New("insufficient bytes to decode field")

// ErrInvalidFormat describes an error in which an external text
// representation is structurally malformed, such as a transaction ID string
// with the wrong length or non-hexadecimal characters.  The binary decoders
// never return it.
var ErrInvalidFormat = errors.New("invalid format")
