package kinopoisk

import "time"

// PremierDateFormat is the exact timestamp format Kinopoisk uses for
// premiere dates (millisecond precision, literal UTC designator)
const PremierDateFormat = "2006-01-02T15:04:05.000Z"

// Premiere carries the per-market premiere dates of a movie, as returned
// by api.kinopoisk.dev
type Premiere struct {
	World   string `json:"world"`
	Russia  string `json:"russia"`
	Cinema  string `json:"cinema"`
	Digital string `json:"digital"`
	Bluray  string `json:"bluray"`
	Dvd     string `json:"dvd"`
}

// ResolvePremierDate picks the premiere date of a movie: the fields are
// tried in fixed priority order (world, russia, cinema, digital, bluray,
// dvd) and the first one that parses wins. Returns nil when the premiere
// block is absent or no field holds a valid date.
func ResolvePremierDate(premiere *Premiere) *time.Time {
	if premiere == nil {
		return nil
	}

	for _, value := range []string{
		premiere.World,
		premiere.Russia,
		premiere.Cinema,
		premiere.Digital,
		premiere.Bluray,
		premiere.Dvd,
	} {
		date, err := time.Parse(PremierDateFormat, value)
		if err == nil {
			return &date
		}
	}

	return nil
}
