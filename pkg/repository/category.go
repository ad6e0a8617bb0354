package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pazow/feedbox/pkg/domain"
)

// CategoryRepository handles category-related database operations
type CategoryRepository struct {
	db *sqlx.DB
}

// categorySQL represents a category for SQL operations
type categorySQL struct {
	ID    int64  `db:"id"`
	Name  string `db:"name"`
	Color string `db:"color"`
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(database *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: database}
}

// List retrieves all categories ordered by name
func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	var sqlCategories []categorySQL
	err := r.db.SelectContext(ctx, &sqlCategories, "SELECT * FROM categories ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	categories := make([]domain.Category, len(sqlCategories))
	for i, c := range sqlCategories {
		categories[i] = domain.Category{ID: c.ID, Name: c.Name, Color: c.Color}
	}
	return categories, nil
}

// Create inserts a category. Creating an already existing name is a no-op
// that loads the existing record, so startup seeding is idempotent.
func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	if category.Name == "" {
		return &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}

	query := "INSERT INTO categories (name, color) VALUES (?, ?) ON CONFLICT(name) DO NOTHING"
	result, err := r.db.ExecContext(ctx, query, category.Name, category.Color)
	if err != nil {
		return fmt.Errorf("create category: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if affected == 0 {
		// already present, load the stored record
		var existing categorySQL
		if err := r.db.GetContext(ctx, &existing, "SELECT * FROM categories WHERE name = ?", category.Name); err != nil {
			return fmt.Errorf("get existing category: %w", err)
		}
		category.ID = existing.ID
		category.Color = existing.Color
		return nil
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}
	category.ID = id
	return nil
}
