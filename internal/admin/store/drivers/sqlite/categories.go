package sqlite

import (
	"context"
	"database/sql"

	"github.com/nextx/admin-api/internal/admin/domain"
)

type categoriesRepo struct {
	db *sql.DB
}

var categoryFilterColumns = map[string]string{
	"name": "name",
}

const categoryColumns = `id, name, priority, description, created_at, updated_at`

func scanCategory(row interface{ Scan(...any) error }) (domain.Category, error) {
	var c domain.Category
	err := row.Scan(&c.ID, &c.Name, &c.Priority, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Category{}, err
	}
	return c, nil
}

func (r *categoriesRepo) GetCategoryByID(ctx context.Context, id string) (domain.Category, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = ?`, id)
	c, err := scanCategory(row)
	if err != nil {
		return domain.Category{}, mapNotFound(err)
	}
	return c, nil
}

func (r *categoriesRepo) ListCategories(ctx context.Context, filters []domain.Filter, page domain.Paging) ([]domain.Category, error) {
	where, args := whereClause(filters, categoryFilterColumns)
	limit, limitArgs := pageClause(page)
	args = append(args, limitArgs...)

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+categoryColumns+` FROM categories`+where+` ORDER BY priority, name`+limit, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *categoriesRepo) CreateCategory(ctx context.Context, c domain.Category) error {
	ts := now()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (id, name, priority, description, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Priority, c.Description, ts, ts,
	)
	return mapConflict(err)
}

func (r *categoriesRepo) UpdateCategory(ctx context.Context, c domain.Category) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE categories SET name = ?, priority = ?, description = ?, updated_at = ? WHERE id = ?`,
		c.Name, c.Priority, c.Description, now(), c.ID,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *categoriesRepo) DeleteCategory(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
