package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/ledgerlens/internal/calendar"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestGenerate(t *testing.T) {
	type testCase struct {
		name     string
		start    time.Time
		end      time.Time
		wantLen  int
		wantLast time.Time
	}

	tests := []testCase{
		{
			name:     "SingleDay",
			start:    date(2023, 1, 10),
			end:      date(2023, 1, 10),
			wantLen:  1,
			wantLast: date(2023, 1, 10),
		},
		{
			name:     "MonthBoundary",
			start:    date(2023, 1, 30),
			end:      date(2023, 2, 2),
			wantLen:  4,
			wantLast: date(2023, 2, 2),
		},
		{
			name:     "LeapFebruary",
			start:    date(2024, 2, 1),
			end:      date(2024, 3, 1),
			wantLen:  30,
			wantLast: date(2024, 3, 1),
		},
		{
			name:     "FullYear",
			start:    date(2023, 1, 1),
			end:      date(2023, 12, 31),
			wantLen:  365,
			wantLast: date(2023, 12, 31),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := calendar.Generate(tt.start, tt.end)
			require.NoError(t, err)
			require.Len(t, entries, tt.wantLen)

			assert.Equal(t, tt.start, entries[0].Date)
			assert.Equal(t, tt.wantLast, entries[len(entries)-1].Date)

			for i := 1; i < len(entries); i++ {
				assert.Equal(t, entries[i-1].Date.AddDate(0, 0, 1), entries[i].Date)
			}
		})
	}
}

func TestGenerate_Attributes(t *testing.T) {
	entries, err := calendar.Generate(date(2023, 12, 31), date(2024, 1, 1))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, 2023, entries[0].Year)
	assert.Equal(t, 12, entries[0].MonthNumber)
	assert.Equal(t, "December", entries[0].MonthName)
	assert.Equal(t, "2023-12", entries[0].Period())

	assert.Equal(t, 2024, entries[1].Year)
	assert.Equal(t, 1, entries[1].MonthNumber)
	assert.Equal(t, "January", entries[1].MonthName)
	assert.Equal(t, "2024-01", entries[1].Period())
}

func TestGenerate_InvertedRange(t *testing.T) {
	_, err := calendar.Generate(date(2023, 2, 1), date(2023, 1, 1))
	assert.ErrorIs(t, err, calendar.ErrInvalidRange)
}

func TestGenerate_TruncatesToMidnight(t *testing.T) {
	start := time.Date(2023, 5, 1, 15, 30, 0, 0, time.UTC)
	end := time.Date(2023, 5, 1, 23, 59, 59, 0, time.UTC)

	entries, err := calendar.Generate(start, end)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, date(2023, 5, 1), entries[0].Date)
}
