package compliance

import (
	"errors"
	"strings"
	"testing"
)

func TestParse_SplitsGroups(t *testing.T) {
	seq, err := Parse("02:0B:12:34:AB:0c:00:88:01")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if seq.ModuleType != 0x02 {
		t.Errorf("ModuleType = %#x, want 0x02", seq.ModuleType)
	}
	if len(seq.Groups) != 2 {
		t.Fatalf("len(Groups) = %d, want 2", len(seq.Groups))
	}
	if seq.Groups[0] != [4]byte{0x0B, 0x12, 0x34, 0xAB} {
		t.Errorf("Groups[0] = % x", seq.Groups[0])
	}
	if seq.Groups[1] != [4]byte{0x0C, 0x00, 0x88, 0x01} {
		t.Errorf("Groups[1] = % x", seq.Groups[1])
	}
	if seq.Trailing != 0 {
		t.Errorf("Trailing = %d, want 0", seq.Trailing)
	}
}

func TestParse_SeparatorsAreOptional(t *testing.T) {
	a, err := Parse("020B1234AB")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	b, err := Parse("02:0B:12:34:AB")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	c, err := Parse("0:20B:12::34AB:")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if a.ModuleType != b.ModuleType || a.Groups[0] != b.Groups[0] {
		t.Errorf("colon-separated input decoded differently: %+v vs %+v", a, b)
	}
	if a.ModuleType != c.ModuleType || a.Groups[0] != c.Groups[0] {
		t.Errorf("oddly separated input decoded differently: %+v vs %+v", a, c)
	}
}

func TestParse_ModuleTypeOnly(t *testing.T) {
	seq, err := Parse("01")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if seq.ModuleType != 0x01 {
		t.Errorf("ModuleType = %#x, want 0x01", seq.ModuleType)
	}
	if len(seq.Groups) != 0 {
		t.Errorf("len(Groups) = %d, want 0", len(seq.Groups))
	}
}

func TestParse_DropsTrailingPartialGroup(t *testing.T) {
	tests := []struct {
		code       string
		wantGroups int
		trailing   int
	}{
		{"020B1234AB01", 1, 1},
		{"020B1234AB0102", 1, 2},
		{"020B1234AB010203", 1, 3},
		{"020B1234AB01020304", 2, 0},
		{"02AABB", 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			seq, err := Parse(tt.code)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if len(seq.Groups) != tt.wantGroups {
				t.Errorf("len(Groups) = %d, want %d", len(seq.Groups), tt.wantGroups)
			}
			if seq.Trailing != tt.trailing {
				t.Errorf("Trailing = %d, want %d", seq.Trailing, tt.trailing)
			}
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
	}{
		{"non-hex", "ZZ", "invalid hex character 'Z'"},
		{"odd length", "0", "odd number of hex digits (1)"},
		{"odd after separators", "02:0B:1", "odd number of hex digits (5)"},
		{"empty", "", "empty"},
		{"only separators", ":::", "empty"},
		{"whitespace", "02 0B", "invalid hex character ' '"},
		{"hex prefix", "0x02", "invalid hex character 'x'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.code)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.code)
			}
			if !errors.Is(err, ErrMalformedInput) {
				t.Errorf("error %v does not wrap ErrMalformedInput", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}
