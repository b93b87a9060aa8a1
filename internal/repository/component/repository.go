package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/you-humble/btg-configurator/internal/model"
	"github.com/you-humble/btg-configurator/platform/logger"
)

type repository struct {
	coll *mongo.Collection
}

func NewComponentRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) ComponentByID(ctx context.Context, id string) (*model.Component, error) {
	const op = "repository.ComponentByID"

	var ent ComponentEntity
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrComponentNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), nil
}

// List returns the components of category matching f. Documents are
// re-checked after normalization, so a stray stored value never leaks
// through a predicate.
func (r *repository) List(ctx context.Context, category model.Slot, f model.CatalogFilter) ([]model.Component, error) {
	const op = "repository.List"

	out, err := r.find(ctx, BuildMongoFilter(category, f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return lo.Filter(out, func(c model.Component, _ int) bool {
		return c.Category == category && f.Matches(c)
	}), nil
}

func (r *repository) ListByIDs(ctx context.Context, ids []string) ([]model.Component, error) {
	const op = "repository.ListByIDs"

	if len(ids) == 0 {
		return []model.Component{}, nil
	}

	out, err := r.find(ctx, bson.M{"_id": bson.M{"$in": lo.Uniq(ids)}})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	const op = "repository.Count"

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}

func (r *repository) CreateBatch(ctx context.Context, comps []*model.Component) error {
	const op = "repository.CreateBatch"

	now := time.Now()
	docs := make([]any, 0, len(comps))
	for _, c := range comps {
		if c == nil {
			continue
		}
		if c.ID == "" {
			return fmt.Errorf("%s: component ID is empty", op)
		}
		if !c.Category.Valid() {
			return fmt.Errorf("%s: component %s: unknown category %q", op, c.ID, c.Category)
		}

		ent := EntityFromModel(c)
		ent.CreatedAt = lo.ToPtr(now)
		docs = append(docs, ent)
	}
	if len(docs) == 0 {
		return nil
	}

	_, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) find(ctx context.Context, q bson.M) ([]model.Component, error) {
	cur, err := r.coll.Find(ctx, q)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := cur.Close(ctx); cerr != nil {
			logger.Warn(ctx, "failed to close cursor", logger.ErrorF(cerr))
		}
	}()

	out := make([]model.Component, 0)
	for cur.Next(ctx) {
		var ent ComponentEntity
		if err := cur.Decode(&ent); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		out = append(out, *EntityToModel(&ent))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("cursor: %w", err)
	}

	return out, nil
}
