// Package grid materializes the dense cross-products that turn absent ledger
// activity into explicit zero rows. A day or (day, category) pair with no
// transactions still gets a row, so downstream aggregates never see gaps.
package grid

import (
	"slices"

	"github.com/MrJamesThe3rd/ledgerlens/internal/calendar"
	"github.com/MrJamesThe3rd/ledgerlens/internal/ledger"
)

// Cell is one (date, category) slot of the dense grid.
type Cell struct {
	Date     calendar.DateEntry
	Category ledger.Category
}

// DateCategory builds the full |dates| x |categories| grid, ordered by
// (date, category_id), with no duplicates. Input order of categories does not
// matter; they are sorted by id.
func DateCategory(dates []calendar.DateEntry, categories []ledger.Category) []Cell {
	sorted := slices.Clone(categories)
	slices.SortFunc(sorted, func(a, b ledger.Category) int {
		return int(a.ID - b.ID)
	})

	cells := make([]Cell, 0, len(dates)*len(sorted))

	for _, d := range dates {
		for _, c := range sorted {
			cells = append(cells, Cell{Date: d, Category: c})
		}
	}

	return cells
}
