// Package hdkey ties the mnemonic, hdpath, xkey, and evmaddr packages
// together into the production derivation path: mnemonic words stretch
// into a seed, the seed roots a BIP-32 extended private key, a parsed
// BIP-44 path walks the derivation tree, and the leaf key's compressed
// public point becomes an EIP-55 checksummed EVM address.
package hdkey

import (
	"strings"

	"github.com/ModChain/hdkey/evmaddr"
	"github.com/ModChain/hdkey/hdpath"
	"github.com/ModChain/hdkey/mnemonic"
	"github.com/ModChain/hdkey/xkey"
)

// DefaultPath is the conventional BIP-44 path for the first Ethereum
// account.
const DefaultPath = "m/44'/60'/0'/0/0"

// AddressFromMnemonic validates and stretches words+passphrase into a seed,
// derives the root extended private key, applies path, and returns the
// resulting EVM address.
func AddressFromMnemonic(words []string, passphrase, path string) (evmaddr.Address, error) {
	seed, err := mnemonic.ToSeed(words, passphrase)
	if err != nil {
		return evmaddr.Address{}, err
	}

	root, err := xkey.FromSeed(seed, xkey.MainnetPrivate)
	if err != nil {
		return evmaddr.Address{}, err
	}

	hdPath, err := hdpath.Parse(path)
	if err != nil {
		return evmaddr.Address{}, err
	}

	leaf, err := root.Derive(hdPath)
	if err != nil {
		return evmaddr.Address{}, err
	}

	compressed := leaf.CompressedPublic()
	return evmaddr.FromPublicKey(compressed[:])
}

// MnemonicFromEntropy converts entropy into a space-separated mnemonic
// phrase.
func MnemonicFromEntropy(entropy []byte) (string, error) {
	words, err := mnemonic.FromEntropy(entropy)
	if err != nil {
		return "", err
	}
	return strings.Join(words, " "), nil
}
