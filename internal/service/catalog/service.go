package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/you-humble/btg-configurator/internal/model"
	"github.com/you-humble/btg-configurator/platform/logger"
)

type ComponentRepository interface {
	ComponentByID(ctx context.Context, id string) (*model.Component, error)
	List(ctx context.Context, category model.Slot, f model.CatalogFilter) ([]model.Component, error)
	ListByIDs(ctx context.Context, ids []string) ([]model.Component, error)
}

type service struct {
	repo          ComponentRepository
	readDBTimeout time.Duration
}

func NewCatalogService(
	repo ComponentRepository,
	readDBTimeout time.Duration,
) *service {
	return &service{repo: repo, readDBTimeout: readDBTimeout}
}

func (s *service) Component(ctx context.Context, id string) (*model.Component, error) {
	const op = "catalog.service.Component"
	log := logger.With(
		logger.String("component_id", id),
	)

	id = strings.TrimSpace(id)
	if id == "" {
		log.Error(ctx, "validation: empty component id")
		return nil, errors.Join(model.ErrValidation, errors.New("component id must be non-empty"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	c, err := s.repo.ComponentByID(ctx, id)
	if err != nil {
		log.Error(ctx, "repository component by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}

// ListComponents returns the in-category components matching every non-empty
// predicate of f.
func (s *service) ListComponents(
	ctx context.Context,
	category model.Slot,
	f model.CatalogFilter,
) ([]model.Component, error) {
	const op = "catalog.service.ListComponents"
	log := logger.With(
		logger.String("category", category.String()),
	)

	if !category.Valid() {
		log.Error(ctx, "validation: unknown category")
		return nil, errors.Join(model.ErrValidation, fmt.Errorf("unknown category %q", category))
	}
	if f.MinWattage < 0 {
		log.Error(ctx, "validation: negative min wattage", logger.Int("min_wattage", f.MinWattage))
		return nil, errors.Join(model.ErrValidation, errors.New("minWattage must be non-negative"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	out, err := s.repo.List(ctx, category, f)
	if err != nil {
		log.Error(ctx, "repository list components", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// ComponentsByIDs resolves every id or fails with ErrComponentNotFound.
func (s *service) ComponentsByIDs(ctx context.Context, ids []string) (map[string]*model.Component, error) {
	const op = "catalog.service.ComponentsByIDs"
	log := logger.With(
		logger.Int("ids_count", len(ids)),
	)

	ids = lo.Uniq(lo.Compact(lo.Map(ids, func(id string, _ int) string { return strings.TrimSpace(id) })))
	if len(ids) == 0 {
		return map[string]*model.Component{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	list, err := s.repo.ListByIDs(ctx, ids)
	if err != nil {
		log.Error(ctx, "repository list by ids", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make(map[string]*model.Component, len(list))
	for i := range list {
		out[list[i].ID] = &list[i]
	}

	if missing := lo.Filter(ids, func(id string, _ int) bool { _, ok := out[id]; return !ok }); len(missing) > 0 {
		log.Error(ctx, "components not found", logger.Strings("missing", missing))
		return nil, errors.Join(model.ErrComponentNotFound, fmt.Errorf("missing ids %v", missing))
	}

	return out, nil
}
