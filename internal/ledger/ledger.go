package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyLedger is returned when an operation needs at least one fact.
var ErrEmptyLedger = errors.New("ledger: no transaction facts")

// ErrMissingReference marks a fact pointing at reference data that does not exist.
var ErrMissingReference = errors.New("ledger: fact references missing reference data")

// Transaction types. Only the first two count towards spend aggregates.
const (
	TypePurchase         int64 = 1
	TypeRecurringExpense int64 = 2
	TypeDeposit          int64 = 3
)

// Fact is one immutable ledger entry. Amounts are signed cents; negative
// denotes an outflow.
type Fact struct {
	TransactionID uuid.UUID
	Date          time.Time
	AccountID     int64
	CategoryID    int64
	TypeID        int64
	AmountCents   int64
}

// Category is static reference data for the reporting horizon.
type Category struct {
	ID          int64
	Description string
}

// Account is static reference data for the reporting horizon.
type Account struct {
	ID   int64
	Type string
}

// TransactionType flags whether a type counts as purchase spend.
type TransactionType struct {
	ID          int64
	Description string
	Purchase    bool
}

// PurchaseRow is a fact joined to its reference rows, as produced by the
// purchase filter (purchase types only, excluded year removed).
type PurchaseRow struct {
	Fact     Fact
	Category Category
	Account  Account
	Type     TransactionType
}

// AccountEntry is a fact reduced to what account balances need. No type or
// year filtering applies; balances reflect the complete signed history.
type AccountEntry struct {
	AccountID   int64
	AccountType string
	Date        time.Time
	AmountCents int64
}

// ReferenceGap describes a fact excluded from purchase views because one or
// more of its references is dangling.
type ReferenceGap struct {
	Fact            Fact
	MissingCategory bool
	MissingAccount  bool
	MissingType     bool
}
