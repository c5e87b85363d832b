package ingest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Names used when an export row carries no account or no resolvable category.
const (
	DefaultAccount     = "Primary"
	DefaultAccountType = "checking"
	FallbackCategory   = "Uncategorized"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=ingest
type Repository interface {
	EnsureCategory(ctx context.Context, description string) (int64, error)
	EnsureAccount(ctx context.Context, name, accountType string) (int64, error)
	BeginAppend(ctx context.Context, minDate, maxDate time.Time) (AppendTx, error)
}

// Categorizer resolves a category from a transaction description. The second
// return reports whether any rule matched.
type Categorizer interface {
	Resolve(ctx context.Context, description string) (int64, bool, error)
}

type Service struct {
	parsers     map[Format]Parser
	categorizer Categorizer
	repo        Repository
}

func NewService(repo Repository, categorizer Categorizer, parsers map[Format]Parser) *Service {
	return &Service{
		parsers:     parsers,
		categorizer: categorizer,
		repo:        repo,
	}
}

type Result struct {
	Imported   int
	Duplicates int
}

// Ingest parses an export stream, resolves accounts and categories, and
// appends the resulting facts, skipping those already in the ledger.
func (s *Service) Ingest(ctx context.Context, format Format, r io.Reader) (*Result, error) {
	parser, ok := s.parsers[format]
	if !ok {
		return nil, fmt.Errorf("unknown format: %s", format)
	}

	records, err := parser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse export: %w", err)
	}

	if len(records) == 0 {
		return &Result{}, nil
	}

	facts, err := s.resolve(ctx, records)
	if err != nil {
		return nil, err
	}

	return s.append(ctx, facts)
}

// resolve maps record names to reference IDs, creating accounts and
// categories as needed.
func (s *Service) resolve(ctx context.Context, records []Record) ([]*Fact, error) {
	accountIDs := make(map[string]int64)
	categoryIDs := make(map[string]int64)

	facts := make([]*Fact, 0, len(records))

	for _, rec := range records {
		accountID, err := s.resolveAccount(ctx, rec, accountIDs)
		if err != nil {
			return nil, err
		}

		categoryID, err := s.resolveCategory(ctx, rec, categoryIDs)
		if err != nil {
			return nil, err
		}

		facts = append(facts, &Fact{
			Date:        rec.Date,
			AccountID:   accountID,
			CategoryID:  categoryID,
			TypeID:      rec.TypeID,
			AmountCents: rec.AmountCents,
			Description: rec.Description,
		})
	}

	return facts, nil
}

func (s *Service) resolveAccount(ctx context.Context, rec Record, cache map[string]int64) (int64, error) {
	name := rec.Account
	if name == "" {
		name = DefaultAccount
	}

	if id, ok := cache[name]; ok {
		return id, nil
	}

	accountType := rec.AccountType
	if accountType == "" {
		accountType = DefaultAccountType
	}

	id, err := s.repo.EnsureAccount(ctx, name, accountType)
	if err != nil {
		return 0, fmt.Errorf("resolve account %q: %w", name, err)
	}

	cache[name] = id

	return id, nil
}

func (s *Service) resolveCategory(ctx context.Context, rec Record, cache map[string]int64) (int64, error) {
	if rec.Category != "" {
		if id, ok := cache[rec.Category]; ok {
			return id, nil
		}

		id, err := s.repo.EnsureCategory(ctx, rec.Category)
		if err != nil {
			return 0, fmt.Errorf("resolve category %q: %w", rec.Category, err)
		}

		cache[rec.Category] = id

		return id, nil
	}

	id, matched, err := s.categorizer.Resolve(ctx, rec.Description)
	if err != nil {
		return 0, fmt.Errorf("categorize %q: %w", rec.Description, err)
	}

	if matched {
		return id, nil
	}

	if id, ok := cache[FallbackCategory]; ok {
		return id, nil
	}

	id, err = s.repo.EnsureCategory(ctx, FallbackCategory)
	if err != nil {
		return 0, fmt.Errorf("resolve fallback category: %w", err)
	}

	cache[FallbackCategory] = id

	return id, nil
}

func (s *Service) append(ctx context.Context, facts []*Fact) (*Result, error) {
	minDate, maxDate := dateRange(facts)

	atx, err := s.repo.BeginAppend(ctx, minDate, maxDate)
	if err != nil {
		return nil, fmt.Errorf("begin append: %w", err)
	}
	defer atx.Rollback()

	existing, err := atx.FindExisting(ctx, minDate, maxDate)
	if err != nil {
		return nil, fmt.Errorf("find existing facts: %w", err)
	}

	var fresh []*Fact

	duplicates := 0

	for _, f := range facts {
		if _, found := existing[f.Key()]; found {
			duplicates++
			continue
		}

		fresh = append(fresh, f)
	}

	if len(fresh) > 0 {
		if err := atx.CreateFacts(ctx, fresh); err != nil {
			return nil, fmt.Errorf("create facts: %w", err)
		}
	}

	if err := atx.Commit(); err != nil {
		return nil, fmt.Errorf("commit append: %w", err)
	}

	if duplicates > 0 {
		slog.Info("skipped duplicate facts during ingest", "count", duplicates)
	}

	return &Result{Imported: len(fresh), Duplicates: duplicates}, nil
}

func dateRange(facts []*Fact) (time.Time, time.Time) {
	minDate := facts[0].Date
	maxDate := facts[0].Date

	for _, f := range facts[1:] {
		if f.Date.Before(minDate) {
			minDate = f.Date
		}

		if f.Date.After(maxDate) {
			maxDate = f.Date
		}
	}

	return minDate, maxDate
}
