package hdkey

import (
	"errors"

	"github.com/ModChain/hdkey/evmaddr"
	"github.com/ModChain/hdkey/hdpath"
	"github.com/ModChain/hdkey/mnemonic"
	"github.com/ModChain/hdkey/xkey"
)

// ErrorKind classifies an error from any of this module's subpackages into
// the single taxonomy used throughout the library: callers can branch on
// kind without importing each subpackage's sentinel errors.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindWrongLength
	KindInvalidFormat
	KindChecksumMismatch
	KindUnknownWord
	KindUnsupportedVersion
	KindCannotHardenFromPublic
	KindInvalidChild
	KindDepthOverflow
	KindTypeMismatch
)

// Classify maps an error returned by mnemonic, hdpath, xkey, or evmaddr to
// its ErrorKind. Errors not recognized by this module, including nil,
// classify as KindUnknown.
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, mnemonic.ErrWrongLength):
		return KindWrongLength
	case errors.Is(err, mnemonic.ErrUnknownWord):
		return KindUnknownWord
	case errors.Is(err, mnemonic.ErrChecksumMismatch):
		return KindChecksumMismatch
	case errors.Is(err, hdpath.ErrInvalidPath), errors.Is(err, hdpath.ErrIntegerOverflow):
		return KindInvalidFormat
	case errors.Is(err, xkey.ErrBase58), errors.Is(err, xkey.ErrMalformedKey):
		return KindInvalidFormat
	case errors.Is(err, xkey.ErrChecksumMismatch):
		return KindChecksumMismatch
	case errors.Is(err, xkey.ErrWrongLength):
		return KindWrongLength
	case errors.Is(err, xkey.ErrUnsupportedVersion):
		return KindUnsupportedVersion
	case errors.Is(err, xkey.ErrCannotHardenFromPublic):
		return KindCannotHardenFromPublic
	case errors.Is(err, xkey.ErrInvalidChild), errors.Is(err, xkey.ErrInvalidSeed):
		return KindInvalidChild
	case errors.Is(err, xkey.ErrDepthOverflow):
		return KindDepthOverflow
	case errors.Is(err, xkey.ErrTypeMismatch):
		return KindTypeMismatch
	case errors.Is(err, evmaddr.ErrWrongFormat):
		return KindInvalidFormat
	default:
		return KindUnknown
	}
}
