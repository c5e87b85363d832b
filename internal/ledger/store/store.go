package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/ledgerlens/internal/ledger"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectPurchaseColumns = `
	f.transaction_id, f.date, f.amount_cents,
	c.category_id, c.description,
	a.account_id, a.account_type,
	tt.transaction_type_id, tt.description, tt.is_purchase
`

// scanPurchaseRow reads a joined purchase row.
// Expected column order matches selectPurchaseColumns.
func scanPurchaseRow(s scanner) (ledger.PurchaseRow, error) {
	var row ledger.PurchaseRow

	if err := s.Scan(
		&row.Fact.TransactionID, &row.Fact.Date, &row.Fact.AmountCents,
		&row.Category.ID, &row.Category.Description,
		&row.Account.ID, &row.Account.Type,
		&row.Type.ID, &row.Type.Description, &row.Type.Purchase,
	); err != nil {
		return ledger.PurchaseRow{}, err
	}

	row.Fact.CategoryID = row.Category.ID
	row.Fact.AccountID = row.Account.ID
	row.Fact.TypeID = row.Type.ID

	return row, nil
}

func (s *Store) Purchases(ctx context.Context, excludedYear int) ([]ledger.PurchaseRow, error) {
	query := `SELECT ` + selectPurchaseColumns + `
		FROM transaction_facts f
		JOIN categories c ON f.category_id = c.category_id
		JOIN accounts a ON f.account_id = a.account_id
		JOIN transaction_types tt ON f.transaction_type_id = tt.transaction_type_id
		WHERE tt.transaction_type_id IN ($1, $2)
		  AND EXTRACT(YEAR FROM f.date) <> $3`

	rows, err := s.db.QueryContext(ctx, query,
		ledger.TypePurchase, ledger.TypeRecurringExpense, excludedYear)
	if err != nil {
		return nil, fmt.Errorf("listing purchases: %w", err)
	}
	defer rows.Close()

	var purchases []ledger.PurchaseRow

	for rows.Next() {
		row, err := scanPurchaseRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning purchase: %w", err)
		}

		purchases = append(purchases, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating purchases: %w", err)
	}

	return purchases, nil
}

func (s *Store) AccountEntries(ctx context.Context) ([]ledger.AccountEntry, error) {
	query := `
		SELECT a.account_id, a.account_type, f.date, f.amount_cents
		FROM transaction_facts f
		JOIN accounts a ON f.account_id = a.account_id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing account entries: %w", err)
	}
	defer rows.Close()

	var entries []ledger.AccountEntry

	for rows.Next() {
		var e ledger.AccountEntry
		if err := rows.Scan(&e.AccountID, &e.AccountType, &e.Date, &e.AmountCents); err != nil {
			return nil, fmt.Errorf("scanning account entry: %w", err)
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating account entries: %w", err)
	}

	return entries, nil
}

func (s *Store) Categories(ctx context.Context) ([]ledger.Category, error) {
	query := `SELECT category_id, description FROM categories ORDER BY category_id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var categories []ledger.Category

	for rows.Next() {
		var c ledger.Category
		if err := rows.Scan(&c.ID, &c.Description); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}

	return categories, nil
}

// ReferenceGaps finds facts whose category, account, or transaction type row
// is absent. These never appear in purchase views.
func (s *Store) ReferenceGaps(ctx context.Context) ([]ledger.ReferenceGap, error) {
	query := `
		SELECT f.transaction_id, f.date, f.account_id, f.category_id, f.transaction_type_id, f.amount_cents,
		       c.category_id IS NULL, a.account_id IS NULL, tt.transaction_type_id IS NULL
		FROM transaction_facts f
		LEFT JOIN categories c ON f.category_id = c.category_id
		LEFT JOIN accounts a ON f.account_id = a.account_id
		LEFT JOIN transaction_types tt ON f.transaction_type_id = tt.transaction_type_id
		WHERE c.category_id IS NULL OR a.account_id IS NULL OR tt.transaction_type_id IS NULL
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("finding reference gaps: %w", err)
	}
	defer rows.Close()

	var gaps []ledger.ReferenceGap

	for rows.Next() {
		var g ledger.ReferenceGap
		if err := rows.Scan(
			&g.Fact.TransactionID, &g.Fact.Date, &g.Fact.AccountID,
			&g.Fact.CategoryID, &g.Fact.TypeID, &g.Fact.AmountCents,
			&g.MissingCategory, &g.MissingAccount, &g.MissingType,
		); err != nil {
			return nil, fmt.Errorf("scanning reference gap: %w", err)
		}

		gaps = append(gaps, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reference gaps: %w", err)
	}

	return gaps, nil
}

func (s *Store) FactDateSpan(ctx context.Context) (time.Time, time.Time, error) {
	query := `SELECT MIN(date), MAX(date) FROM transaction_facts`

	var minDate, maxDate sql.NullTime
	if err := s.db.QueryRowContext(ctx, query).Scan(&minDate, &maxDate); err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("reading fact date span: %w", err)
	}

	if !minDate.Valid || !maxDate.Valid {
		return time.Time{}, time.Time{}, ledger.ErrEmptyLedger
	}

	return minDate.Time, maxDate.Time, nil
}
