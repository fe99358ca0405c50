package xkey

import (
	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

func (k *XPrv) body() body {
	var km [33]byte
	km[0] = 0x00
	copy(km[1:], k.scalar[:])
	return body{
		prefix:      k.prefix,
		depth:       k.depth,
		parentFP:    k.parentFP,
		childNumber: k.childNumber,
		chainCode:   k.chainCode,
		keyMaterial: km,
	}
}

// String base58check-encodes the key in the standard 78-byte wire format.
func (k *XPrv) String() string {
	return encodeBody(k.body())
}

// ParseXPrv decodes a base58check extended private key string.
func ParseXPrv(s string) (*XPrv, error) {
	b, err := decodeBody(s)
	if err != nil {
		return nil, err
	}
	if !b.prefix.IsPrivate() {
		return nil, ErrTypeMismatch
	}
	if b.keyMaterial[0] != 0x00 {
		return nil, ErrMalformedKey
	}

	var scalarBytes [32]byte
	copy(scalarBytes[:], b.keyMaterial[1:])

	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(scalarBytes[:]); overflow || scalar.IsZero() {
		return nil, ErrMalformedKey
	}

	return &XPrv{
		prefix:      b.prefix,
		depth:       b.depth,
		parentFP:    b.parentFP,
		childNumber: b.childNumber,
		chainCode:   b.chainCode,
		scalar:      scalarBytes,
	}, nil
}

func (k *XPub) body() body {
	return body{
		prefix:      k.prefix,
		depth:       k.depth,
		parentFP:    k.parentFP,
		childNumber: k.childNumber,
		chainCode:   k.chainCode,
		keyMaterial: k.point,
	}
}

// String base58check-encodes the key in the standard 78-byte wire format.
func (k *XPub) String() string {
	return encodeBody(k.body())
}

// ParseXPub decodes a base58check extended public key string.
func ParseXPub(s string) (*XPub, error) {
	b, err := decodeBody(s)
	if err != nil {
		return nil, err
	}
	if b.prefix.IsPrivate() {
		return nil, ErrTypeMismatch
	}
	if _, err := secp256k1.ParsePubKey(b.keyMaterial[:]); err != nil {
		return nil, ErrMalformedKey
	}

	return &XPub{
		prefix:      b.prefix,
		depth:       b.depth,
		parentFP:    b.parentFP,
		childNumber: b.childNumber,
		chainCode:   b.chainCode,
		point:       b.keyMaterial,
	}, nil
}

// Parse decodes a base58check extended key string, dispatching to ParseXPrv
// or ParseXPub based on the decoded version prefix.
func Parse(s string) (Key, error) {
	b, err := decodeBody(s)
	if err != nil {
		return nil, err
	}
	if b.prefix.IsPrivate() {
		return ParseXPrv(s)
	}
	return ParseXPub(s)
}
