package normalize

import "testing"

func TestTagName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Fantasy", "Fantasy"},
		{"trims whitespace", "  Fantasy  ", "Fantasy"},
		{"internal space", "Sci Fi", "Sci-Fi"},
		{"trim plus internal space", " Sci Fi ", "Sci-Fi"},
		{"multiple spaces collapse", "slow   burn", "slow-burn"},
		{"tabs and newlines", "slow\tburn\n", "slow-burn"},
		{"case preserved", "SLOW BURN", "SLOW-BURN"},
		{"already hyphenated", "Sci-Fi", "Sci-Fi"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TagName(tt.input); got != tt.want {
				t.Errorf("TagName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Distinct casings must stay distinct: the resolver declares case-sensitive
// identity, so these three inputs produce exactly two canonical names.
func TestTagName_CaseSensitiveIdentity(t *testing.T) {
	inputs := []string{"Sci-Fi", "sci-fi", " Sci Fi "}
	want := []string{"Sci-Fi", "sci-fi", "Sci-Fi"}

	for i, in := range inputs {
		if got := TagName(in); got != want[i] {
			t.Errorf("TagName(%q) = %q, want %q", in, got, want[i])
		}
	}
}
