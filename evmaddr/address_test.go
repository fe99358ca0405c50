package evmaddr

import "testing"

func TestEIP55RoundTrip(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"},
		{"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"},
	}
	for _, test := range tests {
		addr, err := Parse(test.input)
		if err != nil {
			t.Fatalf("Parse(%q): %v", test.input, err)
		}
		if got := addr.Display(); got != test.want {
			t.Errorf("Display() = %s, want %s", got, test.want)
		}
	}
}

func TestParseRejectsBadFormat(t *testing.T) {
	bad := []string{"", "0x123", "5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAeZZ"}
	for _, s := range bad {
		if _, err := Parse(s); err != ErrWrongFormat {
			t.Errorf("Parse(%q): expected ErrWrongFormat, got %v", s, err)
		}
	}
}

func TestAddressByteRoundTrip(t *testing.T) {
	var want Address
	for i := range want {
		want[i] = byte(i)
	}
	parsed, err := Parse(want.Display())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if parsed != want {
		t.Errorf("byte round trip mismatch: got %x, want %x", parsed, want)
	}
}
