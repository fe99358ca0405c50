package xkey

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"math/big"

	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"golang.org/x/crypto/ripemd160"
)

// curveOrderN is the secp256k1 base point order, used to reduce a child
// scalar mod n the same way the teacher's original big.Int-based derivation
// code did, before the curve backend moved to decred/dcrd/dcrec/secp256k1/v4.
var curveOrderN, _ = new(big.Int).SetString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16)

// addScalarsModN computes (a + b) mod n and returns it as a 32-byte,
// left-zero-padded scalar. Reported zero via the returned bool when the sum
// reduces to 0 mod n, the BIP-32 "invalid child" case.
func addScalarsModN(a, b [32]byte) (sum [32]byte, isZero bool) {
	x := new(big.Int).SetBytes(a[:])
	y := new(big.Int).SetBytes(b[:])
	x.Add(x, y)
	x.Mod(x, curveOrderN)
	if x.Sign() == 0 {
		return sum, true
	}
	x.FillBytes(sum[:])
	return sum, false
}

// hmacSHA512 returns the two 32-byte halves (IL, IR) of
// HMAC-SHA512(key, data), as used throughout BIP-32 derivation.
func hmacSHA512(key, data []byte) (il, ir [32]byte) {
	mac := hmac.New(sha512.New, key)
	mac.Write(data)
	sum := mac.Sum(nil)
	copy(il[:], sum[:32])
	copy(ir[:], sum[32:])
	return
}

func doubleSHA256(b []byte) [32]byte {
	a := sha256.Sum256(b)
	return sha256.Sum256(a[:])
}

// fingerprintOf computes RIPEMD-160(SHA-256(compressed public key)),
// truncated to its first 4 bytes.
func fingerprintOf(compressed [33]byte) [4]byte {
	h := sha256.Sum256(compressed[:])
	rmd := ripemd160.New()
	rmd.Write(h[:])
	sum := rmd.Sum(nil)
	var fp [4]byte
	copy(fp[:], sum[:4])
	return fp
}

// scalarToCompressedPublic computes the SEC1 compressed point for
// generator*scalar.
func scalarToCompressedPublic(scalar [32]byte) [33]byte {
	priv := secp256k1.PrivKeyFromBytes(scalar[:])
	var out [33]byte
	copy(out[:], priv.PubKey().SerializeCompressed())
	return out
}
