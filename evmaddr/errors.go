package evmaddr

import "errors"

// ErrWrongFormat is returned when a public key fails to parse, or an
// address string isn't exactly "0x" followed by 40 hex characters.
var ErrWrongFormat = errors.New("evmaddr: wrong format")
