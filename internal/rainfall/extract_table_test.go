package rainfall

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const tableFixture = `<html><body>
<table>
  <tr><th>Gage</th><th>Status</th></tr>
  <tr><td>590</td><td>Online</td></tr>
</table>
<table>
  <tr><th>Reading Date From</th><th>Reading Date To</th><th>Rain</th></tr>
  <tr><td>08/25/2025 7:00 AM</td><td>08/26/2025 7:00 AM</td><td>0.42 in</td></tr>
  <tr><td>08/26/2025 7:00 AM</td><td>08/27/2025 7:00 AM</td><td>0.00 in</td></tr>
  <tr><td>13/45/2025</td><td>08/28/2025 7:00 AM</td><td>0.30 in</td></tr>
</table>
</body></html>`

func TestTableExtractor_ResolvesColumnsByHeader(t *testing.T) {
	ex := &TableExtractor{loc: chicago(t)}

	records := ex.Extract([]byte(tableFixture))

	require.Len(t, records, 2)
	require.Equal(t, day(t, "2025-08-25"), records[0].Date)
	require.Equal(t, 0.42, records[0].Amount)
	require.NotNil(t, records[0].To)
	require.Equal(t, day(t, "2025-08-26"), records[1].Date)
	require.Equal(t, 0.00, records[1].Amount)
}

func TestTableExtractor_ReorderedColumns(t *testing.T) {
	fixture := `<table>
	  <tr><th>Rain</th><th>Reading Date From</th></tr>
	  <tr><td>1.25</td><td>08/22/2025</td></tr>
	</table>`
	ex := &TableExtractor{loc: chicago(t)}

	records := ex.Extract([]byte(fixture))

	require.Len(t, records, 1)
	require.Equal(t, day(t, "2025-08-22"), records[0].Date)
	require.Equal(t, 1.25, records[0].Amount)
	require.Nil(t, records[0].To)
}

func TestTableExtractor_NoMatchingHeader(t *testing.T) {
	fixture := `<table>
	  <tr><th>Stage</th><th>Elevation</th></tr>
	  <tr><td>08/22/2025</td><td>41.2</td></tr>
	</table>`
	ex := &TableExtractor{loc: chicago(t)}

	require.Empty(t, ex.Extract([]byte(fixture)))
}
