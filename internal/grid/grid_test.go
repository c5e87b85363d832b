package grid_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/ledgerlens/internal/calendar"
	"github.com/MrJamesThe3rd/ledgerlens/internal/grid"
	"github.com/MrJamesThe3rd/ledgerlens/internal/ledger"
)

func TestDateCategory(t *testing.T) {
	dates, err := calendar.Generate(
		time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	categories := []ledger.Category{
		{ID: 7, Description: "Travel"},
		{ID: 2, Description: "Groceries"},
		{ID: 4, Description: "Utilities"},
	}

	cells := grid.DateCategory(dates, categories)
	require.Len(t, cells, len(dates)*len(categories))

	// Every (date, category) pair appears exactly once.
	type key struct {
		date       time.Time
		categoryID int64
	}

	seen := make(map[key]int)
	for _, c := range cells {
		seen[key{c.Date.Date, c.Category.ID}]++
	}

	assert.Len(t, seen, len(dates)*len(categories))

	for k, n := range seen {
		assert.Equal(t, 1, n, "duplicate cell for %v", k)
	}
}

func TestDateCategory_StableOrder(t *testing.T) {
	dates, err := calendar.Generate(
		time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 3, 2, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	categories := []ledger.Category{{ID: 9}, {ID: 1}}

	cells := grid.DateCategory(dates, categories)
	require.Len(t, cells, 4)

	// Ordered by (date, category_id) regardless of input category order.
	assert.Equal(t, int64(1), cells[0].Category.ID)
	assert.Equal(t, int64(9), cells[1].Category.ID)
	assert.True(t, cells[1].Date.Date.Before(cells[2].Date.Date))
	assert.Equal(t, int64(1), cells[2].Category.ID)
}

func TestDateCategory_Empty(t *testing.T) {
	assert.Empty(t, grid.DateCategory(nil, []ledger.Category{{ID: 1}}))

	dates, err := calendar.Generate(
		time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	assert.Empty(t, grid.DateCategory(dates, nil))
}
