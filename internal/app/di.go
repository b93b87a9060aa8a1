package app

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/you-humble/btg-configurator/internal/config"
	"github.com/you-humble/btg-configurator/internal/converter"
	"github.com/you-humble/btg-configurator/internal/model"
	comprepository "github.com/you-humble/btg-configurator/internal/repository/component"
	ordrepository "github.com/you-humble/btg-configurator/internal/repository/order"
	prsrepository "github.com/you-humble/btg-configurator/internal/repository/preset"
	sesrepository "github.com/you-humble/btg-configurator/internal/repository/session"
	buildservice "github.com/you-humble/btg-configurator/internal/service/build"
	catalogservice "github.com/you-humble/btg-configurator/internal/service/catalog"
	sesconsumer "github.com/you-humble/btg-configurator/internal/service/consumer/session"
	orderservice "github.com/you-humble/btg-configurator/internal/service/order"
	presetservice "github.com/you-humble/btg-configurator/internal/service/preset"
	ordproducer "github.com/you-humble/btg-configurator/internal/service/producer/order"
	thttp "github.com/you-humble/btg-configurator/internal/transport/http/configurator/v1"
	"github.com/you-humble/btg-configurator/platform/closer"
	"github.com/you-humble/btg-configurator/platform/db/migrator"
	"github.com/you-humble/btg-configurator/platform/kafka"
	"github.com/you-humble/btg-configurator/platform/kafka/consumer"
	"github.com/you-humble/btg-configurator/platform/kafka/middleware"
	"github.com/you-humble/btg-configurator/platform/kafka/producer"
	"github.com/you-humble/btg-configurator/platform/logger"
)

type Converter interface {
	ConfigurationOrderedToPayload(m model.ConfigurationOrdered) ([]byte, error)
	PayloadToConfigurationOrdered(data []byte) (model.ConfigurationOrdered, error)
}

type ComponentRepository interface {
	catalogservice.ComponentRepository
	comprepository.BatchCreator
}

type SessionRepository interface {
	buildservice.SessionStore
	sesconsumer.SessionRepository
}

type CatalogService interface {
	thttp.CatalogService
	buildservice.CatalogService
	presetservice.CatalogService
}

type OrderService interface {
	thttp.OrderService
	buildservice.OrderService
}

type PresetService interface {
	thttp.PresetService
	buildservice.PresetService
}

type RoutesRegistrar interface {
	Routes(r chi.Router)
}

type SessionConsumer interface {
	RunConfigurationOrderedConsume(ctx context.Context) error
}

type di struct {
	mongo          *mongo.Client
	componentsColl *mongo.Collection
	sessionsColl   *mongo.Collection

	componentRepository ComponentRepository
	sessionRepository   SessionRepository

	dbPool           *pgxpool.Pool
	migrator         *migrator.Migrator
	orderRepository  orderservice.OrderRepository
	presetRepository presetservice.PresetRepository

	conv Converter

	syncProducer           sarama.SyncProducer
	configurationProducer  kafka.Producer
	orderProducer          orderservice.OrderProducer
	consumerGroup          sarama.ConsumerGroup
	configurationConsumer  kafka.Consumer
	sessionCleanupConsumer SessionConsumer

	catalogService CatalogService
	orderService   OrderService
	presetService  PresetService
	buildService   thttp.BuildService

	handler RoutesRegistrar
	router  *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) MongoDB(ctx context.Context) *mongo.Client {
	if d.mongo == nil {
		mongoClient, err := mongo.Connect(
			options.Client().ApplyURI(config.C().Mongo.DSN()),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create mongodb client: %v\n", err))
		}
		closer.AddNamed("Mongo Client",
			func(ctx context.Context) error {
				return mongoClient.Disconnect(ctx)
			})

		if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
			panic(fmt.Sprintf("failed to ping database: %v\n", err))
		}

		d.mongo = mongoClient
	}

	return d.mongo
}

func (d *di) ComponentsCollection(ctx context.Context) *mongo.Collection {
	if d.componentsColl == nil {
		d.componentsColl = d.MongoDB(ctx).
			Database(config.C().Mongo.DatabaseName()).
			Collection(config.C().Mongo.ComponentsCollection())

		if err := ensureComponentIndexes(ctx, d.componentsColl); err != nil {
			panic(fmt.Sprintf("failed to ensure component indexes: %v\n", err))
		}
	}

	return d.componentsColl
}

func (d *di) SessionsCollection(ctx context.Context) *mongo.Collection {
	if d.sessionsColl == nil {
		d.sessionsColl = d.MongoDB(ctx).
			Database(config.C().Mongo.DatabaseName()).
			Collection(config.C().Mongo.SessionsCollection())
	}

	return d.sessionsColl
}

func (d *di) ComponentRepository(ctx context.Context) ComponentRepository {
	if d.componentRepository == nil {
		d.componentRepository = comprepository.NewComponentRepository(d.ComponentsCollection(ctx))
	}

	return d.componentRepository
}

func (d *di) SessionRepository(ctx context.Context) SessionRepository {
	if d.sessionRepository == nil {
		d.sessionRepository = sesrepository.NewSessionRepository(d.SessionsCollection(ctx))
	}

	return d.sessionRepository
}

func (d *di) DBPool(ctx context.Context) *pgxpool.Pool {
	if d.dbPool == nil {
		pool, err := pgxpool.New(ctx, config.C().Postgres.DSN())
		if err != nil {
			panic(fmt.Sprintf("failed to create pg pool: %v\n", err))
		}

		closer.AddNamed("PGX Pool",
			func(ctx context.Context) error {
				pool.Close()
				return nil
			})

		if err := pool.Ping(ctx); err != nil {
			panic(fmt.Sprintf("failed to ping db: %v\n", err))
		}

		d.dbPool = pool
	}

	return d.dbPool
}

func (d *di) Migrator(ctx context.Context) *migrator.Migrator {
	if d.migrator == nil {
		d.migrator = migrator.NewMigrator(
			stdlib.OpenDBFromPool(d.DBPool(ctx)),
			config.C().Postgres.MigrationDirectory(),
		)

		closer.AddNamed("Migrator",
			func(ctx context.Context) error {
				return d.migrator.Close()
			})
	}

	return d.migrator
}

func (d *di) OrderRepository(ctx context.Context) orderservice.OrderRepository {
	if d.orderRepository == nil {
		d.orderRepository = ordrepository.NewOrderRepository(d.DBPool(ctx))
	}

	return d.orderRepository
}

func (d *di) PresetRepository(ctx context.Context) presetservice.PresetRepository {
	if d.presetRepository == nil {
		d.presetRepository = prsrepository.NewPresetRepository(d.DBPool(ctx))
	}

	return d.presetRepository
}

func (d *di) KafkaConverter(_ context.Context) Converter {
	if d.conv == nil {
		d.conv = converter.NewKafkaConverter()
	}

	return d.conv
}

func (d *di) SyncProducer(_ context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C()

		p, err := sarama.NewSyncProducer(
			cfg.Kafka.Brokers(),
			cfg.Kafka.ProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

func (d *di) ConfigurationOrderedProducer(ctx context.Context) kafka.Producer {
	if d.configurationProducer == nil {
		d.configurationProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.ConfigurationOrderedTopic(),
			logger.L(),
		)
	}

	return d.configurationProducer
}

func (d *di) OrderProducer(ctx context.Context) orderservice.OrderProducer {
	if d.orderProducer == nil {
		d.orderProducer = ordproducer.NewOrderProducer(
			d.ConfigurationOrderedProducer(ctx),
			d.KafkaConverter(ctx),
		)
	}

	return d.orderProducer
}

func (d *di) ConsumerGroup(_ context.Context) sarama.ConsumerGroup {
	if d.consumerGroup == nil {
		cfg := config.C()

		group, err := sarama.NewConsumerGroup(
			cfg.Kafka.Brokers(),
			cfg.Kafka.SessionCleanupGroupID(),
			cfg.Kafka.ConsumerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create consumer group: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka consumer group", func(ctx context.Context) error {
			return group.Close()
		})

		d.consumerGroup = group
	}

	return d.consumerGroup
}

func (d *di) ConfigurationOrderedConsumer(ctx context.Context) kafka.Consumer {
	if d.configurationConsumer == nil {
		d.configurationConsumer = consumer.NewConsumer(
			d.ConsumerGroup(ctx),
			[]string{
				config.C().Kafka.ConfigurationOrderedTopic(),
			},
			logger.L(),
			middleware.Recovery(logger.L()),
			middleware.Logging(logger.L()),
		)
	}

	return d.configurationConsumer
}

func (d *di) SessionCleanupConsumer(ctx context.Context) SessionConsumer {
	if d.sessionCleanupConsumer == nil {
		d.sessionCleanupConsumer = sesconsumer.NewSessionConsumer(
			d.ConfigurationOrderedConsumer(ctx),
			d.KafkaConverter(ctx),
			d.SessionRepository(ctx),
		)
	}

	return d.sessionCleanupConsumer
}

func (d *di) CatalogService(ctx context.Context) CatalogService {
	if d.catalogService == nil {
		d.catalogService = catalogservice.NewCatalogService(
			d.ComponentRepository(ctx),
			config.C().Server.DBReadTimeout(),
		)
	}

	return d.catalogService
}

func (d *di) OrderService(ctx context.Context) OrderService {
	if d.orderService == nil {
		d.orderService = orderservice.NewOrderService(
			d.OrderRepository(ctx),
			d.OrderProducer(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.orderService
}

func (d *di) PresetService(ctx context.Context) PresetService {
	if d.presetService == nil {
		d.presetService = presetservice.NewPresetService(
			d.PresetRepository(ctx),
			d.CatalogService(ctx),
			config.C().Pricing.Fees(),
			config.C().Pricing.PriceAuthority(),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.presetService
}

func (d *di) BuildService(ctx context.Context) thttp.BuildService {
	if d.buildService == nil {
		d.buildService = buildservice.NewBuildService(
			d.CatalogService(ctx),
			d.OrderService(ctx),
			d.PresetService(ctx),
			d.SessionRepository(ctx),
			buildservice.Settings{
				Fees:          config.C().Pricing.Fees(),
				LookupTimeout: config.C().Catalog.LookupTimeout(),
				Now:           time.Now,
			},
		)
	}

	return d.buildService
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}

func (d *di) ConfiguratorHandler(ctx context.Context) RoutesRegistrar {
	if d.handler == nil {
		d.handler = thttp.NewConfiguratorHandler(
			d.CatalogService(ctx),
			d.BuildService(ctx),
			d.PresetService(ctx),
			d.OrderService(ctx),
		)
	}

	return d.handler
}

func ensureComponentIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "brand_norm", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "socket_norm", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "form_factor_norm", Value: 1}}},
	}, options.CreateIndexes())

	return err
}
