package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/you-humble/btg-configurator/internal/converter"
	"github.com/you-humble/btg-configurator/internal/model"
)

var orderColumns = []string{
	"id", "owner", "platform", "components", "total_price",
	"delivery_days", "delivery_date", "all_available", "status",
	"created_at", "updated_at",
}

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewOrderRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) Create(ctx context.Context, ord *model.Order) (uuid.UUID, error) {
	components, err := converter.MarshalSelection(ord.Selection)
	if err != nil {
		return uuid.Nil, err
	}

	q := r.sb.
		Insert("orders").
		Columns("owner", "platform", "components", "total_price",
			"delivery_days", "delivery_date", "all_available", "status").
		Values(ord.Owner, ord.Platform, components, ord.TotalPrice,
			ord.Delivery.EstimatedDays, ord.Delivery.DeliveryDate, ord.Delivery.AllAvailable, ord.Status).
		Suffix("RETURNING id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return uuid.Nil, err
	}

	var orderID uuid.UUID
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&orderID); err != nil {
		return uuid.Nil, err
	}

	return orderID, nil
}

func (r *repository) OrderByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	q := r.sb.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var (
		ord        model.Order
		components []byte
	)
	err = r.pool.QueryRow(ctx, sqlStr, args...).Scan(
		&ord.ID,
		&ord.Owner,
		&ord.Platform,
		&components,
		&ord.TotalPrice,
		&ord.Delivery.EstimatedDays,
		&ord.Delivery.DeliveryDate,
		&ord.Delivery.AllAvailable,
		&ord.Status,
		&ord.CreatedAt,
		&ord.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrOrderNotFound
		}
		return nil, err
	}

	ord.Selection, err = converter.UnmarshalSelection(components)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", ord.ID, err)
	}
	ord.Delivery.UnavailableComponents = unavailable(ord.Selection)

	return &ord, nil
}

// Update writes the non-zero fields of upd.
func (r *repository) Update(ctx context.Context, upd *model.Order) error {
	if upd.ID == uuid.Nil {
		return errors.New("empty order id")
	}

	set := sq.Eq{}

	if len(upd.Selection) > 0 {
		components, err := converter.MarshalSelection(upd.Selection)
		if err != nil {
			return err
		}
		set["components"] = components
	}
	if upd.TotalPrice != 0 {
		set["total_price"] = upd.TotalPrice
	}
	if upd.Delivery.EstimatedDays != 0 {
		set["delivery_days"] = upd.Delivery.EstimatedDays
		set["delivery_date"] = upd.Delivery.DeliveryDate
		set["all_available"] = upd.Delivery.AllAvailable
	}
	if upd.Status != "" {
		set["status"] = upd.Status
	}

	if len(set) == 0 {
		return nil
	}
	set["updated_at"] = time.Now()

	q := r.sb.
		Update("orders").
		SetMap(set).
		Where(sq.Eq{"id": upd.ID})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	ct, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return model.ErrOrderNotFound
	}

	return nil
}

func unavailable(sel model.Selection) []model.UnavailableComponent {
	var out []model.UnavailableComponent
	for _, slot := range model.DefaultSlotOrder {
		if c := sel.Get(slot); c != nil && !c.InStock() {
			out = append(out, model.UnavailableComponent{Slot: slot, Name: c.Name})
		}
	}
	return out
}
