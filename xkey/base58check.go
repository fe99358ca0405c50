package xkey

import (
	"bytes"
	"encoding/binary"

	"github.com/ModChain/base58"
)

// serializedKeyLen is the length, in bytes, of the extended-key body before
// the 4-byte checksum is appended: 4 (prefix) + 1 (depth) + 4 (parent
// fingerprint) + 4 (child number) + 32 (chain code) + 33 (key material).
const serializedKeyLen = 78

// body is the wire shape shared by XPrv and XPub, independent of which kind
// the 33-byte keyMaterial holds.
type body struct {
	prefix      Prefix
	depth       uint8
	parentFP    [4]byte
	childNumber uint32
	chainCode   [32]byte
	keyMaterial [33]byte
}

func (b body) marshal() []byte {
	out := make([]byte, 0, serializedKeyLen+4)
	out = append(out, b.prefix[:]...)
	out = append(out, b.depth)
	out = append(out, b.parentFP[:]...)
	var cn [4]byte
	binary.BigEndian.PutUint32(cn[:], b.childNumber)
	out = append(out, cn[:]...)
	out = append(out, b.chainCode[:]...)
	out = append(out, b.keyMaterial[:]...)
	checksum := doubleSHA256(out)
	return append(out, checksum[:4]...)
}

func encodeBody(b body) string {
	return base58.Bitcoin.Encode(b.marshal())
}

func decodeBody(s string) (body, error) {
	raw, err := base58.Bitcoin.Decode(s)
	if err != nil {
		return body{}, ErrBase58
	}
	if len(raw) != serializedKeyLen+4 {
		return body{}, ErrWrongLength
	}

	payload := raw[:serializedKeyLen]
	checksum := raw[serializedKeyLen:]
	want := doubleSHA256(payload)
	if !bytes.Equal(checksum, want[:4]) {
		return body{}, ErrChecksumMismatch
	}

	var b body
	copy(b.prefix[:], payload[:4])
	if _, err := b.prefix.Pair(); err != nil {
		return body{}, ErrUnsupportedVersion
	}
	b.depth = payload[4]
	copy(b.parentFP[:], payload[5:9])
	b.childNumber = binary.BigEndian.Uint32(payload[9:13])
	copy(b.chainCode[:], payload[13:45])
	copy(b.keyMaterial[:], payload[45:78])
	return b, nil
}
