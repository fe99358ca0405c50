package mnemonic

import (
	"crypto/sha256"
	"crypto/sha512"
	"math/big"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	seedIterations = 2048
	seedKeyLen     = 64
)

// FromEntropy converts raw entropy into its BIP-39 mnemonic word sequence.
// entropy must be 16, 20, 24, 28, or 32 bytes (128/160/192/224/256 bits),
// producing 12, 15, 18, 21, or 24 words respectively.
func FromEntropy(entropy []byte) ([]string, error) {
	entBits := len(entropy) * 8
	switch len(entropy) {
	case 16, 20, 24, 28, 32:
	default:
		return nil, ErrWrongLength
	}

	checksumBits := len(entropy) / 4
	hash := sha256.Sum256(entropy)
	checksum := int64(hash[0] >> (8 - uint(checksumBits)))

	bits := new(big.Int).SetBytes(entropy)
	bits.Lsh(bits, uint(checksumBits))
	bits.Or(bits, big.NewInt(checksum))

	numWords := (entBits + checksumBits) / 11
	words := make([]string, numWords)
	const mask = 0x7FF // low 11 bits
	maskBig := big.NewInt(mask)
	for i := numWords - 1; i >= 0; i-- {
		idx := new(big.Int).And(bits, maskBig).Int64()
		words[i] = wordAt(int(idx))
		bits.Rsh(bits, 11)
	}
	return words, nil
}

// entropyFromWords validates a word list against the wordlist and its
// embedded checksum, returning the recovered entropy bytes.
func entropyFromWords(words []string) ([]byte, error) {
	n := len(words)
	if n < 12 || n > 24 || n%3 != 0 {
		return nil, ErrWrongLength
	}

	totalBits := n * 11
	checksumBits := totalBits / 33
	entBits := totalBits - checksumBits

	bits := new(big.Int)
	for _, w := range words {
		idx, ok := indexOf(w)
		if !ok {
			return nil, ErrUnknownWord
		}
		bits.Lsh(bits, 11)
		bits.Or(bits, big.NewInt(int64(idx)))
	}

	checksumMask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(checksumBits)), big.NewInt(1))
	gotChecksum := new(big.Int).And(bits, checksumMask).Int64()

	entropyInt := new(big.Int).Rsh(bits, uint(checksumBits))
	entropy := make([]byte, entBits/8)
	entropyInt.FillBytes(entropy)

	hash := sha256.Sum256(entropy)
	wantChecksum := int64(hash[0] >> (8 - uint(checksumBits)))
	if wantChecksum != gotChecksum {
		return nil, ErrChecksumMismatch
	}
	return entropy, nil
}

// Validate checks that a word list is well formed: correct length, every
// word resolvable in the wordlist, and the embedded checksum correct.
func Validate(words []string) error {
	_, err := entropyFromWords(words)
	return err
}

// ToSeed stretches a validated mnemonic word list and an optional passphrase
// into the 64-byte seed consumed by BIP-32 root key derivation, via
// PBKDF2-HMAC-SHA512 with 2048 iterations. An empty passphrase is BIP-39's
// "no passphrase" case and still yields a valid seed.
func ToSeed(words []string, passphrase string) ([]byte, error) {
	if _, err := entropyFromWords(words); err != nil {
		return nil, err
	}
	password := strings.Join(words, " ")
	salt := "mnemonic" + passphrase
	return pbkdf2.Key([]byte(password), []byte(salt), seedIterations, seedKeyLen, sha512.New), nil
}
