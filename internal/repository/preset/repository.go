package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/you-humble/btg-configurator/internal/converter"
	"github.com/you-humble/btg-configurator/internal/model"
)

const uniqueViolation = "23505"

var presetColumns = []string{
	"id", "name", "description", "category", "base_price", "active",
	"platform", "components", "created_at", "updated_at",
}

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewPresetRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) Create(ctx context.Context, p *model.Preset) (uuid.UUID, error) {
	components, err := converter.MarshalSelection(p.Selection)
	if err != nil {
		return uuid.Nil, err
	}

	q := r.sb.
		Insert("presets").
		Columns("name", "description", "category", "base_price", "active", "platform", "components").
		Values(p.Name, p.Description, p.Category, p.BasePrice, p.Active, p.Platform, components).
		Suffix("RETURNING id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return uuid.Nil, model.ErrPresetExists
		}
		return uuid.Nil, err
	}

	return id, nil
}

func (r *repository) PresetByID(ctx context.Context, id uuid.UUID) (*model.Preset, error) {
	q := r.sb.
		Select(presetColumns...).
		From("presets").
		Where(sq.Eq{"id": id})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	p, err := scanPreset(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPresetNotFound
		}
		return nil, err
	}

	return p, nil
}

func (r *repository) List(ctx context.Context, f model.PresetsFilter) ([]*model.Preset, error) {
	q := r.sb.
		Select(presetColumns...).
		From("presets").
		OrderBy("category", "name")

	if f.ActiveOnly {
		q = q.Where(sq.Eq{"active": true})
	}
	if f.Category != "" {
		q = q.Where(sq.Eq{"lower(category)": model.NormalizeAttr(f.Category)})
	}

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.Preset, 0)
	for rows.Next() {
		p, err := scanPreset(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func scanPreset(row pgx.Row) (*model.Preset, error) {
	var (
		p          model.Preset
		components []byte
	)
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Category,
		&p.BasePrice,
		&p.Active,
		&p.Platform,
		&components,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Selection, err = converter.UnmarshalSelection(components)
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", p.ID, err)
	}

	return &p, nil
}
