package rainfall

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const scriptFixture = `<html><head>
<script type="text/javascript">
var chartData = [
  {"ReadingDateFrom":"2025-08-20T07:00:00","ReadingDateTo":"2025-08-21T07:00:00","Rain":0.10},
  {"ReadingDateFrom":"2025-08-21T07:00:00","ReadingDateTo":"2025-08-22T07:00:00","Rain":0},
  {"ReadingDateFrom":"not-a-date","ReadingDateTo":"2025-08-23T07:00:00","Rain":0.55}
];
renderChart(chartData);
</script>
</head><body></body></html>`

func TestScriptDataExtractor_WalksEmbeddedJSON(t *testing.T) {
	ex := &ScriptDataExtractor{loc: chicago(t)}

	records := ex.Extract([]byte(scriptFixture))

	require.Len(t, records, 2)
	require.Equal(t, day(t, "2025-08-20"), records[0].Date)
	require.Equal(t, 0.10, records[0].Amount)
	require.NotNil(t, records[0].To)
	require.Equal(t, day(t, "2025-08-21"), records[1].Date)
	require.Equal(t, 0.00, records[1].Amount)
}

func TestScriptDataExtractor_DotNetDates(t *testing.T) {
	// 1755669600000 ms = 2025-08-20 01:00:00 -0500 (CDT).
	fixture := `<script>
	var d = [{"from":"/Date(1755669600000)/","rainfall":"0.75"}];
	</script>`
	ex := &ScriptDataExtractor{loc: chicago(t)}

	records := ex.Extract([]byte(fixture))

	require.Len(t, records, 1)
	require.Equal(t, day(t, "2025-08-20"), records[0].Date)
	require.Equal(t, 0.75, records[0].Amount)
}

func TestScriptDataExtractor_IgnoresNonDataScripts(t *testing.T) {
	ex := &ScriptDataExtractor{loc: chicago(t)}

	tests := []struct {
		name    string
		content string
	}{
		{name: "no scripts", content: "<html><body></body></html>"},
		{name: "script without json", content: "<script>window.alert('hi');</script>"},
		{name: "json without readings", content: `<script>var x = [{"id":1,"name":"gage"}];</script>`},
		{name: "broken json", content: `<script>var x = [{"from":"2025-08-20",];</script>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Empty(t, ex.Extract([]byte(tt.content)))
		})
	}
}
