package rainfall

import (
	"regexp"
	"time"
)

// textPatternRe matches a date token followed, within a bounded span of
// characters, by a decimal amount in inch notation. The bounded span
// keeps a date from pairing with an amount several rows away when the
// markup between them has been stripped or mangled.
var textPatternRe = regexp.MustCompile(
	`(?i)(\d{1,2}/\d{1,2}/\d{4}(?:\s+\d{1,2}:\d{2}(?:\s*[AP]M)?)?)` +
		`[\s\S]{0,80}?` +
		`(\d+(?:\.\d+)?)\s*(?:"|in\b|inches\b)`)

// TextPatternExtractor is the last-resort strategy: a regular expression
// over the raw text, tolerant of markup loss.
type TextPatternExtractor struct {
	loc *time.Location
}

// Name identifies the strategy in logs and pipeline errors.
func (e *TextPatternExtractor) Name() string { return "text-pattern" }

// Extract applies the fallback pattern over the whole buffer. Matches
// whose date or amount fails validation are dropped.
func (e *TextPatternExtractor) Extract(content []byte) []Record {
	var out []Record
	for _, m := range textPatternRe.FindAllSubmatch(content, -1) {
		if rec, ok := buildRecord(string(m[1]), "", string(m[2]), e.loc); ok {
			out = append(out, rec)
		}
	}
	return out
}
