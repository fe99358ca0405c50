// Package xkey implements the BIP-32 extended-key derivation state machine
// and its base58check wire encoding.
//
// Private and public extended keys are modeled as distinct concrete types,
// XPrv and XPub, rather than a single value with a runtime-checked kind: the
// set of legal operations differs enough (hardened derivation, access to the
// private scalar) that splitting them statically removes a whole class of
// type-mismatch bugs at the call site.
package xkey

import "errors"

var (
	// ErrInvalidSeed is returned when a BIP-32 seed produces a degenerate
	// root scalar (zero, or >= the curve order).
	ErrInvalidSeed = errors.New("xkey: invalid seed")
	// ErrInvalidChild is returned when a derivation step's HMAC output is
	// out of range or yields a zero scalar / identity point.
	ErrInvalidChild = errors.New("xkey: derived child is invalid")
	// ErrCannotHardenFromPublic is returned when hardened derivation is
	// requested from a public extended key.
	ErrCannotHardenFromPublic = errors.New("xkey: cannot derive hardened child from public key")
	// ErrDepthOverflow is returned when derivation would exceed depth 255.
	ErrDepthOverflow = errors.New("xkey: maximum derivation depth exceeded")
	// ErrBase58 is returned when a serialized key fails to base58-decode.
	ErrBase58 = errors.New("xkey: malformed base58")
	// ErrChecksumMismatch is returned when the base58check checksum does
	// not match the decoded body.
	ErrChecksumMismatch = errors.New("xkey: checksum mismatch")
	// ErrWrongLength is returned when a decoded key body isn't 78 bytes.
	ErrWrongLength = errors.New("xkey: wrong serialized length")
	// ErrUnsupportedVersion is returned for a version prefix outside the
	// four known mainnet/testnet private/public values.
	ErrUnsupportedVersion = errors.New("xkey: unsupported version prefix")
	// ErrMalformedKey is returned when the 33-byte key material doesn't
	// match its prefix's expected shape (private flag byte, or a point
	// that fails to parse).
	ErrMalformedKey = errors.New("xkey: malformed key body")
	// ErrTypeMismatch is returned when a private prefix is used where a
	// public one is required, or vice versa.
	ErrTypeMismatch = errors.New("xkey: key kind does not match version prefix")
)
