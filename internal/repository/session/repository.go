package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/you-humble/btg-configurator/internal/converter"
	"github.com/you-humble/btg-configurator/internal/model"
	"github.com/you-humble/btg-configurator/platform/logger"
)

// SessionEntity is a single string value addressed by its key.
type SessionEntity struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func StepKey(owner, platform string) string {
	return fmt.Sprintf("%s:%s:step", owner, platform)
}

func SelectionKey(owner, platform string) string {
	return fmt.Sprintf("%s:%s:selection", owner, platform)
}

type repository struct {
	coll *mongo.Collection
}

func NewSessionRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) Load(ctx context.Context, owner, platform string) (*model.Session, error) {
	const op = "repository.session.Load"

	stepKey, selKey := StepKey(owner, platform), SelectionKey(owner, platform)

	cur, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": []string{stepKey, selKey}}})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if cerr := cur.Close(ctx); cerr != nil {
			logger.Warn(ctx, "failed to close cursor", logger.ErrorF(cerr))
		}
	}()

	values := make(map[string]string, 2)
	for cur.Next(ctx) {
		var ent SessionEntity
		if err := cur.Decode(&ent); err != nil {
			return nil, fmt.Errorf("%s decode: %w", op, err)
		}
		values[ent.Key] = ent.Value
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s cursor: %w", op, err)
	}

	rawSel, ok := values[selKey]
	if !ok {
		return nil, model.ErrSessionNotFound
	}

	sel, err := converter.UnmarshalSelection([]byte(rawSel))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sess := &model.Session{Selection: sel}
	if rawStep, ok := values[stepKey]; ok {
		step, err := strconv.Atoi(rawStep)
		if err != nil {
			return nil, fmt.Errorf("%s: parse step %q: %w", op, rawStep, err)
		}
		sess.Step = step
	}

	return sess, nil
}

func (r *repository) Save(ctx context.Context, owner, platform string, sess model.Session) error {
	const op = "repository.session.Save"

	rawSel, err := converter.MarshalSelection(sess.Selection)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now()
	entries := []SessionEntity{
		{Key: StepKey(owner, platform), Value: strconv.Itoa(sess.Step), UpdatedAt: now},
		{Key: SelectionKey(owner, platform), Value: string(rawSel), UpdatedAt: now},
	}

	writes := make([]mongo.WriteModel, 0, len(entries))
	for _, ent := range entries {
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": ent.Key}).
			SetReplacement(ent).
			SetUpsert(true))
	}

	if _, err := r.coll.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(true)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, owner, platform string) error {
	const op = "repository.session.Delete"

	_, err := r.coll.DeleteMany(ctx, bson.M{
		"_id": bson.M{"$in": []string{StepKey(owner, platform), SelectionKey(owner, platform)}},
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
