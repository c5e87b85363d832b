package categorize

import (
	"context"
)

type Rule struct {
	ID         int64
	Pattern    string
	CategoryID int64
	Category   string
}

type Repository interface {
	FindCategory(ctx context.Context, description string) (int64, bool, error)
	CreateRule(ctx context.Context, pattern string, categoryID int64) error
	ListRules(ctx context.Context) ([]Rule, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Resolve finds the category for a transaction description. The bool reports
// whether any rule matched.
func (s *Service) Resolve(ctx context.Context, description string) (int64, bool, error) {
	return s.repo.FindCategory(ctx, description)
}

// Learn remembers a new pattern for a category so future ingests pick it up.
func (s *Service) Learn(ctx context.Context, pattern string, categoryID int64) error {
	return s.repo.CreateRule(ctx, pattern, categoryID)
}

func (s *Service) Rules(ctx context.Context) ([]Rule, error) {
	return s.repo.ListRules(ctx)
}
