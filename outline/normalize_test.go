package outline

import "testing"

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"whitespace collapse", "  hello \t world \n", "hello world"},
		{"ff ligature", "oﬀer", "offer"},
		{"fi ligature", "ﬁrst", "first"},
		{"fl ligature", "ﬂight", "flight"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		if got := NormalizeText(tt.in); got != tt.want {
			t.Errorf("%s: NormalizeText(%q) = %q, want %q", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestCleanHeadingText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"leading numeral", "2.1 Intended Audience", "Intended Audience"},
		{"leading numeral with dot", "3. Overview of the System", "Overview of the System"},
		{"trailing page number", "Revision History 4", "Revision History"},
		{"trailing punctuation", "Introduction:", "Introduction"},
		{"plain", "Acknowledgements", "Acknowledgements"},
		{
			"concatenated numbered pair",
			"2.1 Intended Audience 2.2 Career Paths",
			"Intended Audience",
		},
	}

	for _, tt := range tests {
		if got := CleanHeadingText(tt.in); got != tt.want {
			t.Errorf("%s: CleanHeadingText(%q) = %q, want %q", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestIsDigits(t *testing.T) {
	if !isDigits("42") {
		t.Error("isDigits(42) = false")
	}
	if isDigits("4a") || isDigits("") {
		t.Error("isDigits accepted non-digit input")
	}
}
