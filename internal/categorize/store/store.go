package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MrJamesThe3rd/ledgerlens/internal/categorize"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindCategory(ctx context.Context, description string) (int64, bool, error) {
	query := `
		SELECT category_id
		FROM category_rules
		WHERE $1 ILIKE '%' || pattern || '%'
		ORDER BY LENGTH(pattern) DESC, created_at DESC
		LIMIT 1
	`

	var id int64

	err := s.db.QueryRowContext(ctx, query, description).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, false, nil
		}

		return 0, false, fmt.Errorf("finding category rule: %w", err)
	}

	return id, true, nil
}

func (s *Store) CreateRule(ctx context.Context, pattern string, categoryID int64) error {
	query := `
		INSERT INTO category_rules (pattern, category_id, created_at)
		VALUES ($1, $2, NOW())
	`

	_, err := s.db.ExecContext(ctx, query, pattern, categoryID)
	if err != nil {
		return fmt.Errorf("creating category rule: %w", err)
	}

	return nil
}

func (s *Store) ListRules(ctx context.Context) ([]categorize.Rule, error) {
	query := `
		SELECT r.rule_id, r.pattern, r.category_id, c.description
		FROM category_rules r
		JOIN categories c ON c.category_id = r.category_id
		ORDER BY LENGTH(r.pattern) DESC, r.created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing category rules: %w", err)
	}
	defer rows.Close()

	var rules []categorize.Rule

	for rows.Next() {
		var r categorize.Rule
		if err := rows.Scan(&r.ID, &r.Pattern, &r.CategoryID, &r.Category); err != nil {
			return nil, fmt.Errorf("scanning category rule: %w", err)
		}

		rules = append(rules, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category rules: %w", err)
	}

	return rules, nil
}
