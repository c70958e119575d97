package catalog

import "testing"

func TestNormalizeCatNo(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"XL-LP 785!", "XLLP785"},
		{"xl-785", "XL785"},
		{"B003260701", "B003260701"},
		{"", ""},
		{"---", ""},
		{"abc def ghi jkl mno", "ABCDEFGHIJKL"}, // truncated to 12
	}
	for _, c := range cases {
		if got := NormalizeCatNo(c.input); got != c.want {
			t.Errorf("NormalizeCatNo(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestNormalizeCatNoIdempotent(t *testing.T) {
	inputs := []string{"XL-LP 785!", "catno 12/34", "ABCDEFGHIJKLMNOP"}
	for _, input := range inputs {
		once := NormalizeCatNo(input)
		if twice := NormalizeCatNo(once); twice != once {
			t.Errorf("NormalizeCatNo not idempotent for %q: %q != %q", input, once, twice)
		}
		if len(once) > normalizedCatNoMax {
			t.Errorf("NormalizeCatNo(%q) exceeds %d chars: %q", input, normalizedCatNoMax, once)
		}
	}
}

func TestFoldName(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Beyoncé", "beyonce"},
		{"Taylor Swift", "taylor swift"},
		{"  Sigur Rós ", "sigur ros"},
		{"MOTÖRHEAD", "motorhead"},
	}
	for _, c := range cases {
		if got := FoldName(c.input); got != c.want {
			t.Errorf("FoldName(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}
