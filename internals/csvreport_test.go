package internals_test

import (
	"bytes"
	"encoding/csv"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greencommute-server/internals"
	"greencommute-server/model"
)

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	engine := newEngine(staticUsers{
		{
			UserID:    1,
			FirstName: "Ada",
			LastName:  "Rivera",
			Community: model.Community{Name: "Sunnyvale"},
			Baseline:  validBaseline(),
			Trips:     tripsOf(model.ModeBike, model.DestinationWork, repeat(2.0, 5)...),
		},
		{
			UserID:    2,
			FirstName: "Ben",
			LastName:  "Okafor",
			Community: model.Community{Name: "Palo Alto"},
			Baseline:  validBaseline(),
			Trips:     tripsOf(model.ModeBus, model.DestinationSchool, repeat(4.0, 5)...),
		},
	})
	records, err := engine.UserResults()
	require.NoError(t, err)

	var buffer bytes.Buffer
	require.NoError(t, internals.WriteCSV(&buffer, records))

	reader := csv.NewReader(&buffer)

	header, err := reader.Read()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"first_name", "last_name", "community_name",
		"bike_mileage", "bus_mileage", "carpool_mileage", "drove car alone_mileage",
		"small electric vehicle_mileage", "train_mileage", "walk_mileage",
		"total_green_miles", "total_miles", "total_green_trips",
		"baseline_pct_green", "actual_pct_green", "pct_improvement",
	}, header)

	row, err := reader.Read()
	require.NoError(t, err)
	assert.Equal(t, "Ada", row[0])
	assert.Equal(t, "Rivera", row[1])
	assert.Equal(t, "Sunnyvale", row[2])
	assert.Equal(t, "10", row[3])  // bike_mileage
	assert.Equal(t, "0", row[4])   // bus_mileage
	assert.Equal(t, "10", row[10]) // total_green_miles
	assert.Equal(t, "10", row[11]) // total_miles
	assert.Equal(t, "5", row[12])  // total_green_trips

	row, err = reader.Read()
	require.NoError(t, err)
	assert.Equal(t, "Ben", row[0])
	assert.Equal(t, "20", row[4]) // bus_mileage

	_, err = reader.Read()
	assert.Equal(t, io.EOF, err, "expected EOF after last record")
}

func TestWriteCSV_NoRecords(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer
	require.NoError(t, internals.WriteCSV(&buffer, nil))

	reader := csv.NewReader(&buffer)
	header, err := reader.Read()
	require.NoError(t, err)
	assert.Equal(t, "first_name", header[0])

	_, err = reader.Read()
	assert.Equal(t, io.EOF, err)
}
