package xkey

import (
	"encoding/binary"

	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/ModChain/hdkey/hdpath"
)

// XPub is a BIP-32 extended public key: a compressed secp256k1 point plus
// the same lineage fields as XPrv. It can only derive Normal children.
type XPub struct {
	prefix      Prefix
	depth       uint8
	parentFP    [4]byte
	childNumber uint32
	chainCode   [32]byte
	point       [33]byte
}

func (k *XPub) ChainCode() [32]byte        { return k.chainCode }
func (k *XPub) Depth() uint8               { return k.depth }
func (k *XPub) ChildNumber() uint32        { return k.childNumber }
func (k *XPub) Prefix() Prefix             { return k.prefix }
func (k *XPub) ParentFingerprint() [4]byte { return k.parentFP }
func (k *XPub) CompressedPublic() [33]byte { return k.point }
func (k *XPub) Fingerprint() [4]byte       { return fingerprintOf(k.point) }

// Child derives the child key at the given path step. Hardened derivation
// from a public key is always rejected.
func (k *XPub) Child(step hdpath.Step) (*XPub, error) {
	if step.Kind == hdpath.Root {
		return k, nil
	}
	if step.Kind == hdpath.Hardened {
		return nil, ErrCannotHardenFromPublic
	}
	if k.depth == 0xff {
		return nil, ErrDepthOverflow
	}

	data := make([]byte, 0, 37)
	data = append(data, k.point[:]...)
	var cn [4]byte
	childNumber := step.ChildNumber()
	binary.BigEndian.PutUint32(cn[:], childNumber)
	data = append(data, cn[:]...)

	il, ir := hmacSHA512(k.chainCode[:], data)

	var ilScalar secp256k1.ModNScalar
	if overflow := ilScalar.SetByteSlice(il[:]); overflow {
		return nil, ErrInvalidChild
	}

	parentPub, err := secp256k1.ParsePubKey(k.point[:])
	if err != nil {
		return nil, ErrMalformedKey
	}

	var parentJac, ilJac, childJac secp256k1.JacobianPoint
	parentPub.AsJacobian(&parentJac)
	secp256k1.ScalarBaseMultNonConst(&ilScalar, &ilJac)
	secp256k1.AddNonConst(&ilJac, &parentJac, &childJac)
	childJac.ToAffine()
	if childJac.X.IsZero() && childJac.Y.IsZero() {
		return nil, ErrInvalidChild
	}
	childPub := secp256k1.NewPublicKey(&childJac.X, &childJac.Y)

	child := &XPub{
		prefix:      k.prefix,
		depth:       k.depth + 1,
		childNumber: childNumber,
		chainCode:   ir,
		parentFP:    k.Fingerprint(),
	}
	copy(child.point[:], childPub.SerializeCompressed())
	return child, nil
}

// Derive applies each non-root step of path in order, propagating errors.
func (k *XPub) Derive(path hdpath.Path) (*XPub, error) {
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
