package hdpath

import "testing"

func TestParseRejections(t *testing.T) {
	bad := []string{"", "/m/0", "m/0/", "1/m/2", "m//1"}
	for _, s := range bad {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q): expected error, got none", s)
		}
	}
}

func TestParseBIP44(t *testing.T) {
	path, err := Parse("m/44'/60'/0'/0/0")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := Path{
		{Kind: Root},
		{Kind: Hardened, Index: 44},
		{Kind: Hardened, Index: 60},
		{Kind: Hardened, Index: 0},
		{Kind: Normal, Index: 0},
		{Kind: Normal, Index: 0},
	}
	if len(path) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(path), len(want))
	}
	for i := range want {
		if path[i] != want[i] {
			t.Errorf("step %d: got %+v, want %+v", i, path[i], want[i])
		}
	}
	if got := path.String(); got != "m/44'/60'/0'/0/0" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseLeadingZeros(t *testing.T) {
	path, err := Parse("m/007")
	if err != nil {
		t.Fatalf("Parse(%q): %v", "m/007", err)
	}
	if want := (Step{Kind: Normal, Index: 7}); path[1] != want {
		t.Errorf("Parse(%q)[1] = %+v, want %+v", "m/007", path[1], want)
	}
	if got := path.String(); got != "m/7" {
		t.Errorf("String() = %q, want %q (canonical form drops leading zeros)", got, "m/7")
	}
}

func TestParseIntegerOverflow(t *testing.T) {
	if _, err := Parse("m/2147483648"); err != ErrIntegerOverflow {
		t.Errorf("expected ErrIntegerOverflow, got %v", err)
	}
	if _, err := Parse("m/2147483647"); err != nil {
		t.Errorf("expected max-1 index to be accepted, got %v", err)
	}
}
