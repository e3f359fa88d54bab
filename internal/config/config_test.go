package config

import "testing"

func TestSplitCollections(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"top250", []string{"top250"}},
		{"top250, popular-films ,series-top250", []string{"top250", "popular-films", "series-top250"}},
		{"", nil},
		{" , ", nil},
	}

	for _, tt := range tests {
		got := splitCollections(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("splitCollections(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("splitCollections(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}
