package xkey

import (
	"encoding/binary"

	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/ModChain/hdkey/hdpath"
)

// XPrv is a BIP-32 extended private key: a 32-byte scalar plus the chain
// code and lineage fields (version prefix, depth, parent fingerprint, child
// number) that place it in a derivation tree.
type XPrv struct {
	prefix      Prefix
	depth       uint8
	parentFP    [4]byte
	childNumber uint32
	chainCode   [32]byte
	scalar      [32]byte
}

// FromSeed derives the root extended private key from a BIP-32 seed, per
// I = HMAC-SHA512(key="Bitcoin seed", msg=seed); IL becomes the root
// scalar, IR the root chain code. The degenerate case IL = 0 or IL >= n is
// rejected.
func FromSeed(seed []byte, prefix Prefix) (*XPrv, error) {
	if !prefix.IsPrivate() {
		return nil, ErrTypeMismatch
	}

	il, ir := hmacSHA512([]byte("Bitcoin seed"), seed)

	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(il[:]); overflow || scalar.IsZero() {
		return nil, ErrInvalidSeed
	}

	return &XPrv{
		prefix:    prefix,
		chainCode: ir,
		scalar:    il,
	}, nil
}

func (k *XPrv) ChainCode() [32]byte        { return k.chainCode }
func (k *XPrv) Depth() uint8               { return k.depth }
func (k *XPrv) ChildNumber() uint32        { return k.childNumber }
func (k *XPrv) Prefix() Prefix             { return k.prefix }
func (k *XPrv) ParentFingerprint() [4]byte { return k.parentFP }

// Scalar returns the 32-byte private scalar.
func (k *XPrv) Scalar() [32]byte { return k.scalar }

// CompressedPublic returns the SEC1 compressed public point of this key,
// computed on demand rather than stored.
func (k *XPrv) CompressedPublic() [33]byte {
	return scalarToCompressedPublic(k.scalar)
}

// Fingerprint returns the fingerprint of this key's public form: the value
// a child of this key records as its parent fingerprint.
func (k *XPrv) Fingerprint() [4]byte {
	return fingerprintOf(k.CompressedPublic())
}

// Public returns the extended public peer of this key: identical lineage
// fields with the prefix swapped to its public pair and the compressed
// public point as key material.
func (k *XPrv) Public() (*XPub, error) {
	pub, err := k.prefix.Pair()
	if err != nil {
		return nil, err
	}
	return &XPub{
		prefix:      pub,
		depth:       k.depth,
		parentFP:    k.parentFP,
		childNumber: k.childNumber,
		chainCode:   k.chainCode,
		point:       k.CompressedPublic(),
	}, nil
}

// Child derives the child key at the given path step, which may be Normal
// or Hardened.
func (k *XPrv) Child(step hdpath.Step) (*XPrv, error) {
	if step.Kind == hdpath.Root {
		return k, nil
	}
	if k.depth == 0xff {
		return nil, ErrDepthOverflow
	}

	data := make([]byte, 0, 37)
	if step.Kind == hdpath.Hardened {
		data = append(data, 0x00)
		data = append(data, k.scalar[:]...)
	} else {
		pub := k.CompressedPublic()
		data = append(data, pub[:]...)
	}
	var cn [4]byte
	childNumber := step.ChildNumber()
	binary.BigEndian.PutUint32(cn[:], childNumber)
	data = append(data, cn[:]...)

	il, ir := hmacSHA512(k.chainCode[:], data)

	var ilScalar secp256k1.ModNScalar
	if overflow := ilScalar.SetByteSlice(il[:]); overflow {
		return nil, ErrInvalidChild
	}

	childScalar, isZero := addScalarsModN(il, k.scalar)
	if isZero {
		return nil, ErrInvalidChild
	}

	child := &XPrv{
		prefix:      k.prefix,
		depth:       k.depth + 1,
		childNumber: childNumber,
		chainCode:   ir,
		parentFP:    k.Fingerprint(),
		scalar:      childScalar,
	}
	return child, nil
}

// Derive applies each non-root step of path in order, propagating errors.
func (k *XPrv) Derive(path hdpath.Path) (*XPrv, error) {
	cur := k
	for _, step := range path {
		var err error
		cur, err = cur.Child(step)
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}
