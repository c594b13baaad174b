package rainfall

import (
	"bytes"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// TableExtractor reads any plain table whose header row matches the
// expected column names, resolving date and amount columns by header
// index instead of fixed position.
type TableExtractor struct {
	loc *time.Location
}

// Name identifies the strategy in logs and pipeline errors.
func (e *TableExtractor) Name() string { return "table" }

// Extract scans every table on the page for a header row containing
// "Reading Date From" and "Rain" (case-insensitive), then extracts rows
// by the resolved column indexes.
func (e *TableExtractor) Extract(content []byte) []Record {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return nil
	}
	var out []Record
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		fromCol, toCol, rainCol, headerRow := resolveColumns(table)
		if fromCol < 0 || rainCol < 0 {
			return
		}
		table.Find("tr").Each(func(i int, row *goquery.Selection) {
			if i <= headerRow {
				return
			}
			cells := row.Find("td")
			if cells.Length() <= fromCol || cells.Length() <= rainCol {
				return
			}
			fromTok := strings.TrimSpace(cells.Eq(fromCol).Text())
			amountTok := strings.TrimSpace(cells.Eq(rainCol).Text())
			var toTok string
			if toCol >= 0 && cells.Length() > toCol {
				toTok = strings.TrimSpace(cells.Eq(toCol).Text())
			}
			if rec, ok := buildRecord(fromTok, toTok, amountTok, e.loc); ok {
				out = append(out, rec)
			}
		})
	})
	return out
}

// resolveColumns finds the header row and maps the expected column names
// to indexes. Returns -1 for columns that are absent.
func resolveColumns(table *goquery.Selection) (fromCol, toCol, rainCol, headerRow int) {
	fromCol, toCol, rainCol, headerRow = -1, -1, -1, -1
	table.Find("tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		cells := row.Find("th")
		if cells.Length() == 0 {
			cells = row.Find("td")
		}
		f, t, r := -1, -1, -1
		cells.Each(func(j int, cell *goquery.Selection) {
			header := strings.ToLower(strings.TrimSpace(cell.Text()))
			switch {
			case strings.Contains(header, "date from") || header == "date":
				f = j
			case strings.Contains(header, "date to"):
				t = j
			case strings.Contains(header, "rain"):
				r = j
			}
		})
		if f >= 0 && r >= 0 {
			fromCol, toCol, rainCol, headerRow = f, t, r, i
			return false
		}
		return true
	})
	return fromCol, toCol, rainCol, headerRow
}
