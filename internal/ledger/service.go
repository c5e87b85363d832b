package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	Purchases(ctx context.Context, excludedYear int) ([]PurchaseRow, error)
	AccountEntries(ctx context.Context) ([]AccountEntry, error)
	Categories(ctx context.Context) ([]Category, error)
	ReferenceGaps(ctx context.Context) ([]ReferenceGap, error)
	FactDateSpan(ctx context.Context) (time.Time, time.Time, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Purchases returns the joined purchase view: facts of purchase types outside
// the excluded year, each with valid category, account, and type rows. Facts
// with dangling references are excluded and reported as a warning, never
// summed into the result.
func (s *Service) Purchases(ctx context.Context, excludedYear int) ([]PurchaseRow, error) {
	rows, err := s.repo.Purchases(ctx, excludedYear)
	if err != nil {
		return nil, fmt.Errorf("reading purchases: %w", err)
	}

	gaps, err := s.repo.ReferenceGaps(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking reference gaps: %w", err)
	}

	if len(gaps) > 0 {
		slog.Warn("facts excluded due to missing reference data",
			"count", len(gaps), "error", ErrMissingReference)
	}

	return rows, nil
}

// AccountEntries returns every fact joined to its account, unfiltered.
func (s *Service) AccountEntries(ctx context.Context) ([]AccountEntry, error) {
	return s.repo.AccountEntries(ctx)
}

// Categories returns the full set of known categories.
func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	return s.repo.Categories(ctx)
}

// ReferenceGaps lists facts whose category, account, or type is dangling.
func (s *Service) ReferenceGaps(ctx context.Context) ([]ReferenceGap, error) {
	return s.repo.ReferenceGaps(ctx)
}

// FactDateSpan returns the earliest and latest fact dates, or ErrEmptyLedger.
func (s *Service) FactDateSpan(ctx context.Context) (time.Time, time.Time, error) {
	return s.repo.FactDateSpan(ctx)
}
