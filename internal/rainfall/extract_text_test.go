package rainfall

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTextPatternExtractor_MatchesDateAmountPairs(t *testing.T) {
	content := `Rainfall readings for gage 590:
	08/20/2025 7:00 AM through 08/21/2025 recorded 0.10 in
	08/22/2025 recorded 0.38"
	08/26/2025 recorded 0 inches`
	ex := &TextPatternExtractor{loc: chicago(t)}

	records := ex.Extract([]byte(content))

	require.Len(t, records, 3)
	require.Equal(t, day(t, "2025-08-20"), records[0].Date)
	require.Equal(t, 0.10, records[0].Amount)
	require.Equal(t, 0.38, records[1].Amount)
	require.Equal(t, 0.00, records[2].Amount)
}

func TestTextPatternExtractor_SurvivesMarkupLoss(t *testing.T) {
	content := `<td>8/25/2025</td><td class="amt">1.04 in</td>`
	ex := &TextPatternExtractor{loc: chicago(t)}

	records := ex.Extract([]byte(content))

	require.Len(t, records, 1)
	require.Equal(t, 1.04, records[0].Amount)
}

func TestTextPatternExtractor_BoundedPairingWindow(t *testing.T) {
	// The amount sits far beyond the 80-character span, so the date must
	// not pair with it.
	filler := make([]byte, 0, 300)
	filler = append(filler, []byte("08/20/2025")...)
	for i := 0; i < 200; i++ {
		filler = append(filler, 'x')
	}
	filler = append(filler, []byte(" 0.10 in")...)
	ex := &TextPatternExtractor{loc: chicago(t)}

	require.Empty(t, ex.Extract(filler))
}

func TestTextPatternExtractor_DropsImpossibleDates(t *testing.T) {
	ex := &TextPatternExtractor{loc: chicago(t)}

	require.Empty(t, ex.Extract([]byte("13/45/2025 totals 0.50 in")))
}
