package ledgercsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	enc "github.com/MrJamesThe3rd/ledgerlens/internal/encoding"
	"github.com/MrJamesThe3rd/ledgerlens/internal/ingest"
	"github.com/MrJamesThe3rd/ledgerlens/internal/ledger"
)

// Parser reads ledger CSV exports and produces fact records. It auto-detects
// which export layout is in use by matching column headers against known
// profiles, and tolerates preamble and footer rows around the data block.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]ingest.Record, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, cols, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching ledger export layout found")
	}

	return parseRows(profile, cols, rows[headerIdx+1:], headerIdx+1)
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

// detectProfile scans rows for a header that matches a known profile.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows extracts records from data rows using the matched profile.
// firstDataRow is the 0-based index of the first data row in the file.
func parseRows(p *Profile, cols colIndex, rows [][]string, firstDataRow int) ([]ingest.Record, error) {
	var records []ingest.Record

	for i, row := range rows {
		rowNum := firstDataRow + i + 1 // 1-based file line

		date, ok := parseDate(row, cols[p.DateCol])
		if !ok {
			// Footer or blank row.
			continue
		}

		desc := cellValue(row, cols[p.DescCol])
		if desc == "" {
			return nil, fmt.Errorf("row %d: missing description", rowNum)
		}

		cents, ok := parseAmount(p, cols, row)
		if !ok {
			continue
		}

		typeID := ledger.TypePurchase
		if cents > 0 {
			typeID = ledger.TypeDeposit
		}

		rec := ingest.Record{
			Date:        date,
			Description: desc,
			TypeID:      typeID,
			AmountCents: cents,
		}

		if p.AccountCol != "" {
			rec.Account = cellValue(row, cols[p.AccountCol])
		}

		if p.CategoryCol != "" {
			rec.Category = cellValue(row, cols[p.CategoryCol])
		}

		records = append(records, rec)
	}

	return records, nil
}

var dateLayouts = []string{time.DateOnly, "02-01-2006", "02/01/2006"}

// parseDate tries known layouts. Returns false for empty or unparseable
// cells, which is how preamble and footer rows are skipped.
func parseDate(row []string, idx int) (time.Time, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// parseAmount extracts the signed amount in cents based on the profile's
// amount mode. Debits come out negative, matching the ledger convention that
// negative denotes an outflow.
func parseAmount(p *Profile, cols colIndex, row []string) (int64, bool) {
	switch p.AmountMode {
	case amountSingle:
		s := cellValue(row, cols[p.AmountCol])
		if s == "" {
			return 0, false
		}

		cents, err := parseDecimalAmount(s)
		if err != nil || cents == 0 {
			return 0, false
		}

		return cents, true

	case amountSplit:
		if s := cellValue(row, cols[p.DebitCol]); s != "" {
			if cents, err := parseDecimalAmount(s); err == nil && cents != 0 {
				return -abs(cents), true
			}
		}

		if s := cellValue(row, cols[p.CreditCol]); s != "" {
			if cents, err := parseDecimalAmount(s); err == nil && cents != 0 {
				return abs(cents), true
			}
		}
	}

	return 0, false
}

// parseDecimalAmount parses either European ("1.234,56") or plain ("1234.56")
// formatted amounts into cents.
func parseDecimalAmount(s string) (int64, error) {
	clean := s
	if strings.Contains(clean, ",") {
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, err
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}

	return n
}
