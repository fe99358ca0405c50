package mnemonic

import "errors"

var (
	// ErrWrongLength is returned when entropy or a word list has a length
	// outside what BIP-39 allows.
	ErrWrongLength = errors.New("mnemonic: wrong length")
	// ErrUnknownWord is returned when a word is not present in the wordlist.
	ErrUnknownWord = errors.New("mnemonic: unknown word")
	// ErrChecksumMismatch is returned when the checksum bits recomputed from
	// the entropy portion of a word list don't match the bits encoded in the
	// final word(s).
	ErrChecksumMismatch = errors.New("mnemonic: checksum mismatch")
)
