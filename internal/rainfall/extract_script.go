package rainfall

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	scriptBlockRe = regexp.MustCompile(`(?is)<script[^>]*>(.*?)</script>`)
	jsonArrayRe   = regexp.MustCompile(`(?s)\[\s*\{.*?\}\s*\]`)
	dotNetDateRe  = regexp.MustCompile(`^/Date\((-?\d+)\)/$`)
)

// ScriptDataExtractor pulls readings out of a JSON data block embedded in
// a script tag. This is the highest-priority strategy: when present, the
// script block carries the same data the grid widget renders, without the
// markup noise.
type ScriptDataExtractor struct {
	loc *time.Location
}

// Name identifies the strategy in logs and pipeline errors.
func (e *ScriptDataExtractor) Name() string { return "script-data" }

// Extract scans every script block for JSON arrays of objects and walks
// their entries for a recognizable date range and rainfall value.
func (e *ScriptDataExtractor) Extract(content []byte) []Record {
	var out []Record
	for _, script := range scriptBlockRe.FindAllSubmatch(content, -1) {
		for _, blob := range jsonArrayRe.FindAll(script[1], -1) {
			var entries []map[string]any
			if err := json.Unmarshal(blob, &entries); err != nil {
				continue
			}
			for _, entry := range entries {
				if rec, ok := e.recordFromEntry(entry); ok {
					out = append(out, rec)
				}
			}
		}
	}
	return out
}

func (e *ScriptDataExtractor) recordFromEntry(entry map[string]any) (Record, bool) {
	var fromTok, toTok, amountTok string
	for key, val := range entry {
		k := strings.ToLower(key)
		switch {
		case strings.Contains(k, "rain"), strings.Contains(k, "amount"):
			amountTok = stringifyAmount(val)
		case strings.HasSuffix(k, "to"), strings.HasSuffix(k, "end"):
			if toTok == "" {
				toTok = e.stringifyDate(val)
			}
		case strings.Contains(k, "from"), strings.Contains(k, "start"),
			strings.Contains(k, "date"):
			if fromTok == "" {
				fromTok = e.stringifyDate(val)
			}
		}
	}
	if fromTok == "" || amountTok == "" {
		return Record{}, false
	}
	return buildRecord(fromTok, toTok, amountTok, e.loc)
}

// stringifyDate renders a JSON date field as a parseable token. Handles
// plain strings, the .NET "/Date(ms)/" wrapper, and epoch milliseconds.
func (e *ScriptDataExtractor) stringifyDate(val any) string {
	switch v := val.(type) {
	case string:
		if m := dotNetDateRe.FindStringSubmatch(strings.TrimSpace(v)); m != nil {
			ms, err := strconv.ParseInt(m[1], 10, 64)
			if err != nil {
				return ""
			}
			return time.UnixMilli(ms).In(e.loc).Format("2006-01-02 15:04:05")
		}
		return v
	case float64:
		// Epoch milliseconds; anything smaller is not a plausible date.
		if v > 1e11 {
			return time.UnixMilli(int64(v)).In(e.loc).Format("2006-01-02 15:04:05")
		}
	}
	return ""
}

func stringifyAmount(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}
