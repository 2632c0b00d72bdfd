package sqlite

import (
	"context"
	"database/sql"

	"github.com/nextx/admin-api/internal/admin/domain"
)

type nomenclaturesRepo struct {
	db *sql.DB
}

var nomenclatureFilterColumns = map[string]string{
	"name": "name",
	"type": "type",
}

const nomenclatureColumns = `id, name, type, pattern, description, level, created_at, updated_at`

func scanNomenclature(row interface{ Scan(...any) error }) (domain.Nomenclature, error) {
	var (
		n     domain.Nomenclature
		typ   string
		level sql.NullInt64
	)
	err := row.Scan(
		&n.ID, &n.Name, &typ, &n.Pattern, &n.Description,
		&level, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return domain.Nomenclature{}, err
	}
	n.Type = domain.NomenclatureType(typ)
	n.Level = mapNullIntPtr(level)
	return n, nil
}

func (r *nomenclaturesRepo) GetNomenclatureByID(ctx context.Context, id string) (domain.Nomenclature, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+nomenclatureColumns+` FROM nomenclatures WHERE id = ?`, id)
	n, err := scanNomenclature(row)
	if err != nil {
		return domain.Nomenclature{}, mapNotFound(err)
	}
	return n, nil
}

func (r *nomenclaturesRepo) ListNomenclatures(ctx context.Context, filters []domain.Filter, page domain.Paging) ([]domain.Nomenclature, error) {
	where, args := whereClause(filters, nomenclatureFilterColumns)
	limit, limitArgs := pageClause(page)
	args = append(args, limitArgs...)

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+nomenclatureColumns+` FROM nomenclatures`+where+` ORDER BY type, name`+limit, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectNomenclatures(rows)
}

func (r *nomenclaturesRepo) ListNomenclaturesByType(ctx context.Context, typ domain.NomenclatureType, page domain.Paging) ([]domain.Nomenclature, error) {
	limit, limitArgs := pageClause(page)
	args := append([]any{string(typ)}, limitArgs...)

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+nomenclatureColumns+` FROM nomenclatures WHERE type = ? ORDER BY name`+limit, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectNomenclatures(rows)
}

func collectNomenclatures(rows *sql.Rows) ([]domain.Nomenclature, error) {
	var entries []domain.Nomenclature
	for rows.Next() {
		n, err := scanNomenclature(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, n)
	}
	return entries, rows.Err()
}

func (r *nomenclaturesRepo) CreateNomenclature(ctx context.Context, n domain.Nomenclature) error {
	ts := now()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO nomenclatures (id, name, type, pattern, description, level, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		n.ID, n.Name, string(n.Type), n.Pattern, n.Description,
		mapOptionalInt(n.Level), ts, ts,
	)
	return mapConflict(err)
}

func (r *nomenclaturesRepo) UpdateNomenclature(ctx context.Context, n domain.Nomenclature) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE nomenclatures
		 SET name = ?, type = ?, pattern = ?, description = ?, level = ?, updated_at = ?
		 WHERE id = ?`,
		n.Name, string(n.Type), n.Pattern, n.Description,
		mapOptionalInt(n.Level), now(), n.ID,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *nomenclaturesRepo) DeleteNomenclature(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM nomenclatures WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
