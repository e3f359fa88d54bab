package kinopoisk

import (
	"testing"
	"time"
)

func TestResolvePremierDate(t *testing.T) {
	expected := time.Date(2024, time.January, 25, 12, 34, 56, 1_000_000, time.UTC)
	const value = "2024-01-25T12:34:56.001Z"

	tests := []struct {
		name     string
		premiere *Premiere
	}{
		{"World", &Premiere{World: value}},
		{"Russia", &Premiere{Russia: value}},
		{"Cinema", &Premiere{Cinema: value}},
		{"Digital", &Premiere{Digital: value}},
		{"Bluray", &Premiere{Bluray: value}},
		{"Dvd", &Premiere{Dvd: value}},
	}

	for _, tt := range tests {
		date := ResolvePremierDate(tt.premiere)
		if date == nil {
			t.Errorf("%s: expected a date, got nil", tt.name)
			continue
		}
		if !date.Equal(expected) {
			t.Errorf("%s: expected %v, got %v", tt.name, expected, *date)
		}
	}
}

func TestResolvePremierDateAbsent(t *testing.T) {
	if date := ResolvePremierDate(nil); date != nil {
		t.Errorf("nil premiere should resolve to nil, got %v", *date)
	}
	if date := ResolvePremierDate(&Premiere{}); date != nil {
		t.Errorf("empty premiere should resolve to nil, got %v", *date)
	}
	if date := ResolvePremierDate(&Premiere{World: "2024-01-25"}); date != nil {
		t.Errorf("malformed premiere should resolve to nil, got %v", *date)
	}
}

func TestResolvePremierDatePriority(t *testing.T) {
	// World wins over every later field
	premiere := &Premiere{
		World:  "2020-01-01T00:00:00.000Z",
		Cinema: "2021-01-01T00:00:00.000Z",
		Dvd:    "2022-01-01T00:00:00.000Z",
	}
	date := ResolvePremierDate(premiere)
	if date == nil || date.Year() != 2020 {
		t.Errorf("expected world date 2020, got %v", date)
	}

	// A malformed higher-priority field falls through to the next one
	premiere = &Premiere{
		World:  "not-a-date",
		Russia: "2021-06-01T00:00:00.000Z",
		Cinema: "2022-01-01T00:00:00.000Z",
	}
	date = ResolvePremierDate(premiere)
	if date == nil || date.Year() != 2021 {
		t.Errorf("expected russia date 2021, got %v", date)
	}
}
