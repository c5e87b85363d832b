package ingest

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
)

// Format identifies a supported ledger export layout.
type Format string

const (
	// FormatLedgerCSV is the semicolon-separated export produced by most
	// home-banking portals.
	FormatLedgerCSV Format = "ledgercsv"
)

// Record is one parsed export row before reference resolution. Amounts are
// signed cents; Category may be empty when the export carries none.
type Record struct {
	Date        time.Time
	Account     string
	AccountType string
	Category    string
	Description string
	TypeID      int64
	AmountCents int64
}

type Parser interface {
	Parse(r io.Reader) ([]Record, error)
}

// Fact is a fully resolved record ready for insertion. TransactionID is
// populated by the store on create.
type Fact struct {
	TransactionID uuid.UUID
	Date          time.Time
	AccountID     int64
	CategoryID    int64
	TypeID        int64
	AmountCents   int64
	Description   string
}

// FactKey identifies a fact for duplicate detection. Category is excluded on
// purpose: re-ingesting the same export after a rule change must not create a
// second copy of the fact.
type FactKey struct {
	Date        string
	AccountID   int64
	TypeID      int64
	AmountCents int64
	Description string
}

func (f *Fact) Key() FactKey {
	return FactKey{
		Date:        f.Date.Format(time.DateOnly),
		AccountID:   f.AccountID,
		TypeID:      f.TypeID,
		AmountCents: f.AmountCents,
		Description: f.Description,
	}
}

// AppendTx is a locked append batch. The advisory lock held for its lifetime
// keeps the duplicate check and the inserts atomic across processes.
type AppendTx interface {
	FindExisting(ctx context.Context, minDate, maxDate time.Time) (map[FactKey]struct{}, error)
	CreateFacts(ctx context.Context, facts []*Fact) error
	Commit() error
	Rollback() error
}
