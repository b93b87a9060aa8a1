package config

import (
	"time"

	"github.com/IBM/sarama"

	"github.com/you-humble/btg-configurator/internal/model"
	"github.com/you-humble/btg-configurator/internal/pricing"
)

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	DBReadTimeout() time.Duration
	DBWriteTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Mongo interface {
	DSN() string
	DatabaseName() string
	ComponentsCollection() string
	SessionsCollection() string
}

type Database interface {
	MigrationDirectory() string
	DSN() string
}

type Kafka interface {
	Brokers() []string
	ConfigurationOrderedTopic() string
	SessionCleanupGroupID() string
	ProducerConfig() *sarama.Config
	ConsumerConfig() *sarama.Config
}

type Pricing interface {
	Fees() pricing.Fees
	PriceAuthority() model.PriceAuthority
}

type Catalog interface {
	LookupTimeout() time.Duration
	Seed() bool
}
