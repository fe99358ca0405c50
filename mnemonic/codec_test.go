package mnemonic

import (
	"encoding/hex"
	"strings"
	"testing"
)

func TestSeedFromMnemonic(t *testing.T) {
	words := strings.Fields("bundle elephant observe exile glance desk above flag neither squeeze denial day")
	wantSeed := "00e93e7f34b53297cfa9bebffb48bac5e0fe6f79eb88598ea61881d3bde1e50125e56a8bbe6d333be3bf2be8309e2137977c9ac22c3a15ce0212fe26bfbc4b6d"

	seed, err := ToSeed(words, "")
	if err != nil {
		t.Fatalf("ToSeed: %v", err)
	}
	if got := hex.EncodeToString(seed); got != wantSeed {
		t.Errorf("seed mismatch: got %s, want %s", got, wantSeed)
	}
}

func TestFromEntropyRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		entropy string
	}{
		{"128 bits", strings.Repeat("00", 16)},
		{"256 bits", strings.Repeat("ab", 32)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			entropy, err := hex.DecodeString(test.entropy)
			if err != nil {
				t.Fatalf("DecodeString: %v", err)
			}
			words, err := FromEntropy(entropy)
			if err != nil {
				t.Fatalf("FromEntropy: %v", err)
			}
			if err := Validate(words); err != nil {
				t.Fatalf("Validate: %v", err)
			}
			got, err := entropyFromWords(words)
			if err != nil {
				t.Fatalf("entropyFromWords: %v", err)
			}
			if hex.EncodeToString(got) != test.entropy {
				t.Errorf("entropy round trip mismatch: got %x, want %s", got, test.entropy)
			}
		})
	}
}

func TestFromEntropyWrongLength(t *testing.T) {
	if _, err := FromEntropy(make([]byte, 17)); err != ErrWrongLength {
		t.Errorf("expected ErrWrongLength, got %v", err)
	}
}

func TestValidateUnknownWord(t *testing.T) {
	words := strings.Fields("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon notaword")
	if err := Validate(words); err != ErrUnknownWord {
		t.Errorf("expected ErrUnknownWord, got %v", err)
	}
}

func TestValidateChecksumMismatch(t *testing.T) {
	// The canonical all-zero-entropy vector ends in "about"; replacing it
	// with another "abandon" keeps every word valid but breaks the checksum.
	words := strings.Fields("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon")
	if err := Validate(words); err != ErrChecksumMismatch {
		t.Errorf("expected ErrChecksumMismatch, got %v", err)
	}

	words[11] = "about"
	if err := Validate(words); err != nil {
		t.Errorf("expected valid checksum, got %v", err)
	}
}
