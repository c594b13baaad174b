package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/LaurenceW01/harris-county-fws-scraper/internal/locations"
)

// newRainfallCmd creates the 'rainfall' subcommand: a one-shot fetch and
// compute for a single gauge, printing the report as JSON.
func newRainfallCmd() *cobra.Command {
	var (
		locationID string
		asOfFlag   string
	)

	cmd := &cobra.Command{
		Use:   "rainfall",
		Short: "Compute the 7-day rainfall total for one gauge",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := resolveApp(cmd.Context())
			if err != nil {
				return err
			}

			desc, err := locations.Describe(locationID)
			if err != nil {
				return err
			}

			asOf := time.Now().In(a.cfg.Location())
			if asOfFlag != "" {
				asOf, err = time.ParseInLocation("2006-01-02", asOfFlag, a.cfg.Location())
				if err != nil {
					return fmt.Errorf("parse --as-of: %w", err)
				}
			}

			content, err := a.fetcher.FetchPage(cmd.Context(), locationID, asOf)
			if err != nil {
				return fmt.Errorf("fetch gauge page: %w", err)
			}

			report, err := a.pipeline.ComputeSevenDayTotalAt(content, asOf)
			if err != nil {
				return err
			}

			a.logger.Info("rainfall total computed",
				zap.String("location", locationID),
				zap.Float64("total_inches", report.Total),
			)

			out := struct {
				LocationID  string  `json:"location_id"`
				Description string  `json:"location_description"`
				Total       float64 `json:"total_rainfall_inches"`
				RecordCount int     `json:"record_count"`
				WindowStart string  `json:"window_start"`
				WindowEnd   string  `json:"window_end"`
				Strategy    string  `json:"strategy"`
			}{
				LocationID:  locationID,
				Description: desc,
				Total:       report.Total,
				RecordCount: report.RecordCount,
				WindowStart: report.WindowStart.Format("2006-01-02"),
				WindowEnd:   report.WindowEnd.Format("2006-01-02"),
				Strategy:    report.Strategy,
			}
			encoded, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return fmt.Errorf("encode report: %w", err)
			}
			cmd.Println(string(encoded))
			return nil
		},
	}

	cmd.Flags().StringVar(&locationID, "location", locations.DefaultID, "monitoring location ID")
	cmd.Flags().StringVar(&asOfFlag, "as-of", "", "as-of date (YYYY-MM-DD, default today)")

	return cmd
}
