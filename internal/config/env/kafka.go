package envconfig

import (
	"github.com/IBM/sarama"
	"github.com/caarlos0/env/v11"
)

type kafkaEnv struct {
	Brokers                   []string `env:"KAFKA_BROKERS,required"`
	ConfigurationOrderedTopic string   `env:"CONFIGURATION_ORDERED_TOPIC_NAME" envDefault:"configuration.ordered"`
	SessionCleanupGroupID     string   `env:"SESSION_CLEANUP_CONSUMER_GROUP_ID" envDefault:"configurator-session-cleanup"`
}

type kafka struct {
	raw kafkaEnv
}

func NewKafkaConfig() (*kafka, error) {
	var raw kafkaEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &kafka{raw: raw}, nil
}

func (cfg *kafka) Brokers() []string                 { return cfg.raw.Brokers }
func (cfg *kafka) ConfigurationOrderedTopic() string { return cfg.raw.ConfigurationOrderedTopic }
func (cfg *kafka) SessionCleanupGroupID() string     { return cfg.raw.SessionCleanupGroupID }

func (cfg *kafka) ProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll

	return config
}

func (cfg *kafka) ConsumerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	return config
}
