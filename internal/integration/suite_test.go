//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/you-humble/btg-configurator/platform/db/migrator"
	"github.com/you-humble/btg-configurator/platform/logger"
	tckafka "github.com/you-humble/btg-configurator/platform/testcontainers/kafka"
	tcmongo "github.com/you-humble/btg-configurator/platform/testcontainers/mongo"
	tcnetwork "github.com/you-humble/btg-configurator/platform/testcontainers/network"
	"github.com/you-humble/btg-configurator/platform/testcontainers/path"
	tcpostgres "github.com/you-humble/btg-configurator/platform/testcontainers/postgres"
)

// ```bash
// go test -tags integration ./internal/integration/...
// ```

const (
	projectName = "configurator_integration"

	mongoImage    = "mongo:8.2.3"
	postgresImage = "postgres:17-alpine"
	kafkaImage    = "confluentinc/cp-kafka:7.6.1"

	configurationOrderedTopic = "configuration.ordered"
)

var (
	ctx context.Context

	net       *tcnetwork.Network
	mongoC    *tcmongo.Container
	postgresC *tcpostgres.Container
	kafkaC    *tckafka.Container

	mongoDB *mongo.Database
	pool    *pgxpool.Pool
)

func TestIntegration(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Configurator Integration Suite")
}

var _ = BeforeSuite(func() {
	ctx = context.Background()
	gofakeit.Seed(0)

	By("creating isolated docker network")
	var err error
	net, err = tcnetwork.NewNetwork(ctx, projectName)
	Expect(err).NotTo(HaveOccurred())

	By("starting mongo container")
	mongoC, err = tcmongo.NewContainer(ctx,
		tcmongo.WithNetworkName(net.Name()),
		tcmongo.WithContainerName(projectName+"_mongo"),
		tcmongo.WithImageName(mongoImage),
		tcmongo.WithLogger(logger.L()),
	)
	Expect(err).NotTo(HaveOccurred())
	mongoDB = mongoC.Database()

	By("starting postgres container")
	postgresC, err = tcpostgres.NewContainer(ctx,
		tcpostgres.WithNetworkName(net.Name()),
		tcpostgres.WithContainerName(projectName+"_postgres"),
		tcpostgres.WithImageName(postgresImage),
		tcpostgres.WithLogger(logger.L()),
	)
	Expect(err).NotTo(HaveOccurred())
	pool = postgresC.Pool()

	By("applying migrations")
	m := migrator.NewMigrator(stdlib.OpenDBFromPool(pool), path.MigrationsDir())
	Expect(m.Up()).To(Succeed())
	Expect(m.Close()).To(Succeed())

	By("starting kafka container")
	kafkaC, err = tckafka.NewContainer(ctx, kafkaImage, logger.L())
	Expect(err).NotTo(HaveOccurred())
	Expect(kafkaC.CreateTopics(configurationOrderedTopic)).To(Succeed())
})

var _ = AfterSuite(func() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if kafkaC != nil {
		_ = kafkaC.Terminate(ctx)
	}
	if postgresC != nil {
		Expect(postgresC.Terminate(ctx)).To(Succeed())
	}
	if mongoC != nil {
		Expect(mongoC.Terminate(ctx)).To(Succeed())
	}
	Expect(net.Remove(ctx)).To(Succeed())
})
