package ledgercsv

// amountMode determines how amounts are extracted from a row.
type amountMode int

const (
	// amountSingle means one signed column (e.g. "Amount" with "-10,00").
	amountSingle amountMode = iota
	// amountSplit means separate debit and credit columns.
	amountSplit
)

// Profile describes the column layout of a ledger CSV export. Supporting a
// new portal's export is just another entry in the profiles slice.
type Profile struct {
	Name        string
	DateCol     string
	DescCol     string
	AccountCol  string // optional; empty means the export has no account column
	CategoryCol string // optional; empty means categories come from rules
	AmountMode  amountMode
	AmountCol   string // used when AmountMode == amountSingle
	DebitCol    string // used when AmountMode == amountSplit
	CreditCol   string // used when AmountMode == amountSplit
}

// requiredCols returns the column names that must be present for this profile
// to match.
func (p Profile) requiredCols() []string {
	cols := []string{p.DateCol, p.DescCol}

	if p.AccountCol != "" {
		cols = append(cols, p.AccountCol)
	}

	if p.CategoryCol != "" {
		cols = append(cols, p.CategoryCol)
	}

	switch p.AmountMode {
	case amountSingle:
		cols = append(cols, p.AmountCol)
	case amountSplit:
		cols = append(cols, p.DebitCol, p.CreditCol)
	}

	return cols
}

// profiles is the ordered list of export formats to try during auto-detection.
// More specific profiles come first to avoid false matches.
var profiles = []Profile{
	{
		Name:        "categorized",
		DateCol:     "Date",
		DescCol:     "Description",
		AccountCol:  "Account",
		CategoryCol: "Category",
		AmountMode:  amountSingle,
		AmountCol:   "Amount",
	},
	{
		Name:       "statement",
		DateCol:    "Date",
		DescCol:    "Description",
		AccountCol: "Account",
		AmountMode: amountSplit,
		DebitCol:   "Debit",
		CreditCol:  "Credit",
	},
	{
		Name:       "simple",
		DateCol:    "Date",
		DescCol:    "Description",
		AmountMode: amountSingle,
		AmountCol:  "Amount",
	},
}
