package rainfall

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const gridFixture = `<html><body>
<table id="gageDetailGrid">
<tr class="dxgvHeader"><td>Reading Date From</td><td>Reading Date To</td><td>Rain</td></tr>
<tr class="dxgvDataRow_Office2003Blue" id="grid_DXDataRow0">
  <td>8/20/2025 7:00 AM</td><td>8/21/2025 7:00 AM</td><td>0.10</td>
</tr>
<tr class="dxgvDataRow_Office2003Blue" id="grid_DXDataRow1">
  <td>8/21/2025 7:00 AM</td><td>8/22/2025 7:00 AM</td><td>0.00</td>
</tr>
<tr class="dxgvDataRow_Office2003Blue" id="grid_DXDataRow2">
  <td>not a date</td><td>8/23/2025 7:00 AM</td><td>0.55</td>
</tr>
<tr class="dxgvDataRow_Office2003Blue" id="grid_DXDataRow3">
  <td>8/22/2025 7:00 AM</td><td>8/23/2025 7:00 AM</td><td>N/A</td>
</tr>
</table>
</body></html>`

func TestGridExtractor_ExtractsDataRows(t *testing.T) {
	ex := &GridExtractor{loc: chicago(t)}

	records := ex.Extract([]byte(gridFixture))

	// Two good rows; the malformed date and amount rows are dropped.
	require.Len(t, records, 2)
	require.Equal(t, day(t, "2025-08-20"), records[0].Date)
	require.Equal(t, 0.10, records[0].Amount)
	require.NotNil(t, records[0].From)
	require.NotNil(t, records[0].To)
	require.Equal(t, day(t, "2025-08-21"), records[1].Date)
	require.Equal(t, 0.00, records[1].Amount)
}

func TestGridExtractor_NoGridMarkup(t *testing.T) {
	ex := &GridExtractor{loc: chicago(t)}

	require.Empty(t, ex.Extract([]byte("<html><body><p>maintenance</p></body></html>")))
	require.Empty(t, ex.Extract(nil))
	require.Empty(t, ex.Extract([]byte("<<<< not html")))
}
