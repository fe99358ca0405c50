// Package hdpath parses and represents BIP-44 style hierarchical derivation
// paths such as "m/44'/60'/0'/0/0".
package hdpath

import (
	"strconv"
	"strings"
)

// HardenedBit marks a ChildNumber as requesting hardened derivation.
const HardenedBit = 1 << 31

// maxIndex is the largest index representable in the low 31 bits.
const maxIndex = HardenedBit - 1

// Kind distinguishes the three step variants a path can contain.
type Kind uint8

const (
	Root Kind = iota
	Normal
	Hardened
)

// Step is one element of a parsed path: the root, or a normal/hardened child
// index below 2^31.
type Step struct {
	Kind  Kind
	Index uint32
}

// ChildNumber returns the 4-byte big-endian child number this step encodes,
// with the high bit set for hardened steps. It is meaningless for Root.
func (s Step) ChildNumber() uint32 {
	if s.Kind == Hardened {
		return s.Index | HardenedBit
	}
	return s.Index
}

func (s Step) String() string {
	switch s.Kind {
	case Root:
		return "m"
	case Hardened:
		return strconv.FormatUint(uint64(s.Index), 10) + "'"
	default:
		return strconv.FormatUint(uint64(s.Index), 10)
	}
}

// Path is a non-empty, ordered sequence of Steps whose first element is
// always Root and whose remaining elements are Normal or Hardened.
type Path []Step

// String renders the path in canonical form, e.g. "m/44'/60'/0'/0/0".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = s.String()
	}
	return strings.Join(parts, "/")
}

// Parse parses a path string of the form `m ( "/" step )*` where step is a
// decimal index in [0, 2^31) optionally followed by an apostrophe marking it
// hardened. Leading, trailing, and consecutive slashes are rejected, as is a
// path not starting with "m".
func Parse(s string) (Path, error) {
	if s == "" {
		return nil, ErrInvalidPath
	}
	parts := strings.Split(s, "/")
	if parts[0] != "m" {
		return nil, ErrInvalidPath
	}

	path := make(Path, 0, len(parts))
	path = append(path, Step{Kind: Root})

	for _, part := range parts[1:] {
		if part == "" {
			// empty segment means a leading/trailing/doubled slash
			return nil, ErrInvalidPath
		}

		hardened := false
		digits := part
		if strings.HasSuffix(part, "'") {
			hardened = true
			digits = part[:len(part)-1]
		}
		if digits == "" {
			return nil, ErrInvalidPath
		}
		for _, r := range digits {
			if r < '0' || r > '9' {
				return nil, ErrInvalidPath
			}
		}

		// Leading zeros parse fine (e.g. "007" == 7); String always renders
		// the canonical form without them, so round-tripping through Parse
		// is one-way for such inputs, not rejected.
		// digits holds only ASCII digits here, so ParseUint can fail only
		// with a value too large for uint64, which is also >= 2^31.
		idx, err := strconv.ParseUint(digits, 10, 64)
		if err != nil || idx > maxIndex {
			return nil, ErrIntegerOverflow
		}

		kind := Normal
		if hardened {
			kind = Hardened
		}
		path = append(path, Step{Kind: kind, Index: uint32(idx)})
	}

	return path, nil
}
