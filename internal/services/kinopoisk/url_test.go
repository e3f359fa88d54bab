package kinopoisk

import "testing"

func TestNormalizeVideoURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{
			"https://www.youtube.com/embed/abc123",
			"https://www.youtube.com/watch?v=abc123",
		},
		{
			"https://www.youtube.com/v/abc123",
			"https://www.youtube.com/watch?v=abc123",
		},
		{
			"https://www.youtube.com/watch?v=abc123",
			"https://www.youtube.com/watch?v=abc123",
		},
		{
			"https://vimeo.com/123456",
			"https://vimeo.com/123456",
		},
	}

	for _, tt := range tests {
		if got := NormalizeVideoURL(tt.in); got != tt.want {
			t.Errorf("NormalizeVideoURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeVideoURLIdempotent(t *testing.T) {
	once := NormalizeVideoURL("https://www.youtube.com/embed/abc123")
	twice := NormalizeVideoURL(once)
	if once != twice {
		t.Errorf("normalization is not idempotent: %q != %q", once, twice)
	}
}
