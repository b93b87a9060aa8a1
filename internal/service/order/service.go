package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/btg-configurator/internal/model"
	"github.com/you-humble/btg-configurator/platform/logger"
)

type OrderRepository interface {
	Create(ctx context.Context, ord *model.Order) (uuid.UUID, error)
	OrderByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	Update(ctx context.Context, upd *model.Order) error
}

type OrderProducer interface {
	SendConfigurationOrdered(ctx context.Context, event model.ConfigurationOrdered) error
}

type service struct {
	repo           OrderRepository
	producer       OrderProducer
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewOrderService(
	repository OrderRepository,
	producer OrderProducer,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repository,
		producer:       producer,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

// Submit writes a finalized wizard selection as a new order, or an edited
// selection over its original order. The returned id is the order id.
func (svc *service) Submit(ctx context.Context, sub model.Submission) (string, error) {
	const op string = "order.service.Submit"
	log := logger.With(
		logger.String("owner", sub.Owner),
		logger.String("platform", sub.Platform),
		logger.String("kind", string(sub.Kind)),
	)

	if sub.Owner == "" {
		log.Error(ctx, "validation: empty owner")
		return "", errors.Join(model.ErrValidation, errors.New("owner must be non-empty"))
	}
	if missing := sub.Selection.Missing(model.DefaultSlotOrder); len(missing) > 0 {
		log.Error(ctx, "validation: incomplete selection", logger.Int("missing", len(missing)))
		return "", errors.Join(model.ErrValidation, fmt.Errorf("missing slots %v", missing))
	}

	var (
		ordID uuid.UUID
		err   error
	)
	switch sub.Kind {
	case model.SubmissionOrder:
		ordID, err = svc.create(ctx, sub)
	case model.SubmissionEdit:
		ordID, err = svc.edit(ctx, sub)
	default:
		log.Error(ctx, "validation: unsupported submission kind")
		return "", errors.Join(model.ErrValidation, fmt.Errorf("unsupported submission kind %q", sub.Kind))
	}
	if err != nil {
		log.Error(ctx, "write order", logger.ErrorF(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}
	ordersWritten.WithLabelValues(string(sub.Kind)).Inc()

	event := model.ConfigurationOrdered{
		EventID:    uuid.New(),
		OrderID:    ordID,
		Owner:      sub.Owner,
		Platform:   sub.Platform,
		Total:      sub.Total,
		Delivery:   sub.Delivery,
		Edited:     sub.Kind == model.SubmissionEdit,
		Components: sub.Selection.ComponentIDs(),
	}
	if err := svc.producer.SendConfigurationOrdered(ctx, event); err != nil {
		// The order is already stored; the event is best effort.
		eventsFailed.Inc()
		log.Error(ctx, "send configuration ordered", logger.String("order_id", ordID.String()), logger.ErrorF(err))
	}

	return ordID.String(), nil
}

func (svc *service) create(ctx context.Context, sub model.Submission) (uuid.UUID, error) {
	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	return svc.repo.Create(ctx, &model.Order{
		Owner:      sub.Owner,
		Platform:   sub.Platform,
		Selection:  sub.Selection,
		TotalPrice: sub.Total,
		Delivery:   sub.Delivery,
		Status:     model.StatusPending,
	})
}

func (svc *service) edit(ctx context.Context, sub model.Submission) (uuid.UUID, error) {
	if sub.OriginalOrderID == uuid.Nil {
		return uuid.Nil, errors.Join(model.ErrValidation, errors.New("edit without original order id"))
	}

	ord, err := svc.pendingOrder(ctx, sub.OriginalOrderID, sub.Owner)
	if err != nil {
		return uuid.Nil, err
	}

	ord.Selection = sub.Selection
	ord.TotalPrice = sub.Total
	ord.Delivery = sub.Delivery

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	if err := svc.repo.Update(wdbCtx, ord); err != nil {
		return uuid.Nil, err
	}

	return ord.ID, nil
}

// pendingOrder loads an order that owner may still change.
func (svc *service) pendingOrder(ctx context.Context, id uuid.UUID, owner string) (*model.Order, error) {
	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	ord, err := svc.repo.OrderByID(rdbCtx, id)
	if err != nil {
		return nil, err
	}
	if ord.Owner != owner {
		return nil, fmt.Errorf("%w: order belongs to another owner", model.ErrOrderConflict)
	}
	if ord.Status != model.StatusPending {
		return nil, fmt.Errorf("%w: order is %s", model.ErrOrderConflict, ord.Status)
	}

	return ord, nil
}

func (svc *service) OrderByID(ctx context.Context, ordID uuid.UUID) (*model.Order, error) {
	const op string = "order.service.OrderByID"
	log := logger.With(
		logger.String("order_id", ordID.String()),
	)

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	ord, err := svc.repo.OrderByID(ctx, ordID)
	if err != nil {
		log.Error(ctx, "repository order by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return ord, nil
}

func (svc *service) Cancel(ctx context.Context, ordID uuid.UUID) error {
	const op string = "order.service.Cancel"
	log := logger.With(
		logger.String("order_id", ordID.String()),
	)

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	ord, err := svc.repo.OrderByID(rdbCtx, ordID)
	if err != nil {
		log.Error(ctx, "repository order by id", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	switch ord.Status {
	case model.StatusPending:
		wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
		defer wdbCancel()

		if err := svc.repo.Update(wdbCtx, &model.Order{ID: ord.ID, Status: model.StatusCancelled}); err != nil {
			log.Error(ctx, "repository update order", logger.ErrorF(err))
			return fmt.Errorf("%s: %w", op, err)
		}
	case model.StatusCancelled:
		log.Error(ctx, "order conflict: already cancelled")
		return fmt.Errorf("%s: %w", op, model.ErrOrderConflict)
	default:
		log.Error(ctx, "wrong order status", logger.String("status", string(ord.Status)))
		return fmt.Errorf("%s: %w", op, model.ErrOrderConflict)
	}

	return nil
}
