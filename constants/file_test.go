package constants

import "testing"

func TestNormalizeExt(t *testing.T) {
	tests := []struct{ in, want string }{
		{".pdf", "pdf"},
		{".PDF", "pdf"},
		{"JPG", "jpg"},
		{"", ""},
		{".", ""},
	}
	for _, tc := range tests {
		if got := NormalizeExt(tc.in); got != tc.want {
			t.Errorf("NormalizeExt(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMapExtToFormat(t *testing.T) {
	tests := []struct {
		in   string
		want FileFormat
	}{
		{"pdf", PDF},
		{".PDF", PDF},
		{"png", Image},
		{"jpg", Image},
		{"heic", Image},
		{"", Image},
		{"txt", Image},
	}
	for _, tc := range tests {
		if got := MapExtToFormat(tc.in); got != tc.want {
			t.Errorf("MapExtToFormat(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
