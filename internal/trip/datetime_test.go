package trip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitDateTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		date    string
		time    string
		display string
	}{
		{
			name:    "date and time with offset",
			input:   "2024-03-01T23:30:00.000+09:00",
			date:    "2024-03-01",
			time:    "23:30",
			display: "2024-03-01 23:30",
		},
		{
			name:    "date and time without offset",
			input:   "2024-03-01T08:00:00",
			date:    "2024-03-01",
			time:    "08:00",
			display: "2024-03-01 08:00",
		},
		{
			name:    "date only",
			input:   "2024-03-01",
			date:    "2024-03-01",
			time:    "",
			display: "2024-03-01",
		},
		{
			name:  "empty",
			input: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitDateTime(tt.input)
			assert.Equal(t, tt.date, got.Date)
			assert.Equal(t, tt.time, got.Time)
			assert.Equal(t, tt.display, got.Display)
		})
	}
}

func TestSplitDateTimeIgnoresOffsetMath(t *testing.T) {
	// The authored wall-clock survives even when the offset would push the
	// timestamp across midnight in UTC or in the reader's zone.
	got := SplitDateTime("2024-03-01T23:30:00.000+09:00")
	assert.Equal(t, "2024-03-01", got.Date)
	assert.Equal(t, "23:30", got.Time)
}

func TestFormatTripDate(t *testing.T) {
	assert.Equal(t, "3/1 - 3/5", FormatTripDate("2024-03-01", "2024-03-05"))
	assert.Equal(t, "12/30 - 12/31", FormatTripDate("2024-12-30", "2024-12-31"))
	assert.Equal(t, "2024/12/30 - 2025/1/2", FormatTripDate("2024-12-30", "2025-01-02"))
	assert.Equal(t, "2024/3/1", FormatTripDate("2024-03-01", ""))
	assert.Equal(t, "", FormatTripDate("", "2024-03-05"))
}

func TestFormatTripDateUsesNaiveSplit(t *testing.T) {
	// A start timestamp with an offset must not shift the displayed day.
	assert.Equal(t, "2024/3/1", FormatTripDate("2024-03-01T23:30:00.000+09:00", ""))
}
