package store

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/MrJamesThe3rd/ledgerlens/internal/ingest"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) EnsureCategory(ctx context.Context, description string) (int64, error) {
	query := `
		INSERT INTO categories (description)
		VALUES ($1)
		ON CONFLICT (description) DO UPDATE SET description = EXCLUDED.description
		RETURNING category_id
	`

	var id int64
	if err := s.db.QueryRowContext(ctx, query, description).Scan(&id); err != nil {
		return 0, fmt.Errorf("upserting category: %w", err)
	}

	return id, nil
}

func (s *Store) EnsureAccount(ctx context.Context, name, accountType string) (int64, error) {
	query := `
		INSERT INTO accounts (name, account_type)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET account_type = EXCLUDED.account_type
		RETURNING account_id
	`

	var id int64
	if err := s.db.QueryRowContext(ctx, query, name, accountType).Scan(&id); err != nil {
		return 0, fmt.Errorf("upserting account: %w", err)
	}

	return id, nil
}

// appendLockKey derives an advisory lock key from the batch's date range so
// concurrent appends over overlapping ranges serialize instead of racing the
// duplicate check.
func appendLockKey(minDate, maxDate time.Time) int64 {
	h := fnv.New64a()
	h.Write([]byte(minDate.Format(time.DateOnly)))
	h.Write([]byte{0})
	h.Write([]byte(maxDate.Format(time.DateOnly)))

	return int64(h.Sum64())
}

type appendTx struct {
	tx *sql.Tx
}

func (s *Store) BeginAppend(ctx context.Context, minDate, maxDate time.Time) (ingest.AppendTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning append tx: %w", err)
	}

	lockKey := appendLockKey(minDate, maxDate)
	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", lockKey); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring append lock: %w", err)
	}

	return &appendTx{tx: dbTx}, nil
}

func (atx *appendTx) Commit() error   { return atx.tx.Commit() }
func (atx *appendTx) Rollback() error { return atx.tx.Rollback() }

// FindExisting returns the fact keys already present in the given date range.
func (atx *appendTx) FindExisting(ctx context.Context, minDate, maxDate time.Time) (map[ingest.FactKey]struct{}, error) {
	query := `
		SELECT date, account_id, transaction_type_id, amount_cents, description
		FROM transaction_facts
		WHERE date >= $1 AND date <= $2
	`

	rows, err := atx.tx.QueryContext(ctx, query, minDate, maxDate)
	if err != nil {
		return nil, fmt.Errorf("finding existing facts: %w", err)
	}
	defer rows.Close()

	existing := make(map[ingest.FactKey]struct{})

	for rows.Next() {
		var (
			date time.Time
			key  ingest.FactKey
		)

		if err := rows.Scan(&date, &key.AccountID, &key.TypeID, &key.AmountCents, &key.Description); err != nil {
			return nil, fmt.Errorf("scanning fact key: %w", err)
		}

		key.Date = date.Format(time.DateOnly)
		existing[key] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating fact keys: %w", err)
	}

	return existing, nil
}

func (atx *appendTx) CreateFacts(ctx context.Context, facts []*ingest.Fact) error {
	query := `
		INSERT INTO transaction_facts (date, account_id, category_id, transaction_type_id, amount_cents, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING transaction_id
	`

	for _, f := range facts {
		err := atx.tx.QueryRowContext(ctx, query,
			f.Date,
			f.AccountID,
			f.CategoryID,
			f.TypeID,
			f.AmountCents,
			f.Description,
		).Scan(&f.TransactionID)
		if err != nil {
			return fmt.Errorf("creating fact: %w", err)
		}
	}

	return nil
}
