package rainfall

import (
	"bytes"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// gridRowSelector matches the DevExpress-style grid rows the gauge-detail
// page renders: class-tagged data rows or id-tagged DXDataRow elements.
const gridRowSelector = `tr[class*="dxgvDataRow"], tr[id*="DXDataRow"]`

// GridExtractor reads the known grid-widget markup. Column roles are
// fixed: first cell is the reading-from date, second the reading-to date,
// last cell the rainfall amount.
type GridExtractor struct {
	loc *time.Location
}

// Name identifies the strategy in logs and pipeline errors.
func (e *GridExtractor) Name() string { return "grid" }

// Extract walks grid data rows and emits a record per row that carries a
// parseable date and amount. Rows with malformed tokens are skipped.
func (e *GridExtractor) Extract(content []byte) []Record {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return nil
	}
	var out []Record
	doc.Find(gridRowSelector).Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}
		fromTok := strings.TrimSpace(cells.Eq(0).Text())
		amountTok := strings.TrimSpace(cells.Eq(cells.Length() - 1).Text())
		var toTok string
		if cells.Length() >= 3 {
			toTok = strings.TrimSpace(cells.Eq(1).Text())
		}
		if rec, ok := buildRecord(fromTok, toTok, amountTok, e.loc); ok {
			out = append(out, rec)
		}
	})
	return out
}
