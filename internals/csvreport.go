package internals

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"greencommute-server/model"
)

// WriteCSV renders a result set as CSV: fixed stat columns plus one mileage
// column per mode appearing in the records, in alphabetical order.
func WriteCSV(w io.Writer, records []model.UserStats) error {
	modeNames := make(map[string]bool)
	for _, record := range records {
		for name := range record.Mileage {
			modeNames[name] = true
		}
	}
	sortedModes := make([]string, 0, len(modeNames))
	for name := range modeNames {
		sortedModes = append(sortedModes, name)
	}
	sort.Strings(sortedModes)

	header := []string{"first_name", "last_name", "community_name"}
	for _, name := range sortedModes {
		header = append(header, mileageColumn(name))
	}
	header = append(header,
		"total_green_miles", "total_miles", "total_green_trips",
		"baseline_pct_green", "actual_pct_green", "pct_improvement",
	)

	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, record := range records {
		row := []string{record.User.FirstName, record.User.LastName, record.CommunityName}
		for _, name := range sortedModes {
			row = append(row, formatMiles(record.Mileage[name]))
		}
		row = append(row,
			formatMiles(record.TotalGreenMiles),
			formatMiles(record.TotalMiles),
			strconv.Itoa(record.TotalGreenTrips),
			formatMiles(record.BaselinePctGreen),
			formatMiles(record.ActualPctGreen),
			formatMiles(record.PctImprovement),
		)
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func mileageColumn(modeName string) string {
	return strings.ToLower(modeName) + "_mileage"
}

func formatMiles(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
