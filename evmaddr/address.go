// Package evmaddr derives and formats 20-byte Ethereum (EVM) addresses from
// secp256k1 public keys, including EIP-55 mixed-case checksum encoding.
package evmaddr

import (
	"encoding/hex"
	"strings"

	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"golang.org/x/crypto/sha3"
)

// Length is the size in bytes of an EVM address.
const Length = 20

// Address is a 20-byte EVM address.
type Address [Length]byte

func keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}

// FromPublicKey derives the EVM address from a compressed or uncompressed
// SEC1-encoded secp256k1 public key: Keccak-256 of the 64-byte X||Y tail of
// the uncompressed encoding, last 20 bytes.
func FromPublicKey(pubKey []byte) (Address, error) {
	pub, err := secp256k1.ParsePubKey(pubKey)
	if err != nil {
		return Address{}, ErrWrongFormat
	}

	uncompressed := pub.SerializeUncompressed()
	hash := keccak256(uncompressed[1:])

	var addr Address
	copy(addr[:], hash[len(hash)-Length:])
	return addr, nil
}

// Display renders the address with EIP-55 mixed-case checksum encoding: the
// lowercase hex digits, Keccak-256 hashed, with each hex character
// uppercased when its corresponding hash nibble is >= 8.
func (a Address) Display() string {
	lower := hex.EncodeToString(a[:])
	hash := keccak256([]byte(lower))

	out := make([]byte, len(lower))
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		nibble := hash[i/2]
		if i%2 == 0 {
			nibble >>= 4
		} else {
			nibble &= 0x0f
		}
		if nibble >= 8 && c >= 'a' && c <= 'f' {
			c -= 'a' - 'A'
		}
		out[i] = c
	}
	return "0x" + string(out)
}

func (a Address) String() string { return a.Display() }

// Parse accepts a 42-character string: "0x" followed by 40 hex characters
// of either case. Any deviation is ErrWrongFormat.
func Parse(s string) (Address, error) {
	if len(s) != 2+2*Length || !strings.HasPrefix(s, "0x") {
		return Address{}, ErrWrongFormat
	}
	raw, err := hex.DecodeString(s[2:])
	if err != nil {
		return Address{}, ErrWrongFormat
	}

	var addr Address
	copy(addr[:], raw)
	return addr, nil
}
