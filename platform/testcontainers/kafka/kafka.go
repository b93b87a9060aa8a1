package kafka

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"
	"go.uber.org/zap"
)

const (
	defaultImage     = "confluentinc/cp-kafka:7.6.1"
	defaultClusterID = "Mk3OEYBSD34fcwNTJENDM2Qk"
	adminTimeout     = 10 * time.Second
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

// Container is a single-node KRaft broker.
type Container struct {
	container *tckafka.KafkaContainer
	brokers   []string
	logger    Logger
}

func NewContainer(ctx context.Context, image string, logger Logger) (*Container, error) {
	if image == "" {
		image = defaultImage
	}

	container, err := tckafka.Run(ctx,
		image,
		tckafka.WithClusterID(defaultClusterID),
	)
	if err != nil {
		return nil, errors.Errorf("failed to start kafka container: %v", err)
	}

	brokers, err := container.Brokers(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, errors.Errorf("failed to get kafka brokers: %v", err)
	}

	logger.Info(ctx, "Kafka container started", zap.Strings("brokers", brokers))

	return &Container{container: container, brokers: brokers, logger: logger}, nil
}

func (c *Container) Brokers() []string {
	return c.brokers
}

// CreateTopics creates single-partition topics. Existing topics are kept.
func (c *Container) CreateTopics(topics ...string) error {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V4_0_0_0
	cfg.Admin.Timeout = adminTimeout

	admin, err := sarama.NewClusterAdmin(c.brokers, cfg)
	if err != nil {
		return errors.Wrap(err, "cluster admin")
	}
	defer func() { _ = admin.Close() }()

	for _, t := range topics {
		err := admin.CreateTopic(t, &sarama.TopicDetail{
			NumPartitions:     1,
			ReplicationFactor: 1,
		}, false)
		if err != nil && !errors.Is(err, sarama.ErrTopicAlreadyExists) {
			return errors.Wrapf(err, "create topic %s", t)
		}
	}

	return nil
}

func (c *Container) Terminate(ctx context.Context) error {
	if err := c.container.Terminate(ctx); err != nil {
		c.logger.Error(ctx, "failed to terminate kafka container", zap.Error(err))
		return err
	}

	c.logger.Info(ctx, "Kafka container terminated")
	return nil
}
