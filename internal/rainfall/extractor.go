package rainfall

import "time"

// Extractor is one self-contained strategy for pulling candidate records
// out of raw gauge-detail page content. Implementations never panic on
// malformed input; they return an empty slice instead.
type Extractor interface {
	Name() string
	Extract(content []byte) []Record
}

// Extractors returns the strategies in descending priority order. The
// pipeline stops at the first strategy that yields at least one record.
func Extractors(loc *time.Location) []Extractor {
	return []Extractor{
		&ScriptDataExtractor{loc: loc},
		&GridExtractor{loc: loc},
		&TableExtractor{loc: loc},
		&TextPatternExtractor{loc: loc},
	}
}

// buildRecord assembles a Record from raw tokens. The from token doubles
// as the reporting date; the to token is optional. Returns false when the
// date or amount token fails to parse, which drops the candidate.
func buildRecord(fromTok, toTok, amountTok string, loc *time.Location) (Record, bool) {
	from, ok := parseTimestamp(fromTok, loc)
	if !ok {
		return Record{}, false
	}
	amount, ok := parseAmount(amountTok)
	if !ok {
		return Record{}, false
	}
	rec := Record{
		Date:   civilDay(from, loc),
		Amount: amount,
	}
	if to, ok := parseTimestamp(toTok, loc); ok {
		f, t := from, to
		rec.From = &f
		rec.To = &t
	}
	return rec, true
}
