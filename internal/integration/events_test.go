//go:build integration

package integration

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/you-humble/btg-configurator/internal/converter"
	"github.com/you-humble/btg-configurator/internal/model"
	"github.com/you-humble/btg-configurator/internal/pricing"
	comprepository "github.com/you-humble/btg-configurator/internal/repository/component"
	ordrepository "github.com/you-humble/btg-configurator/internal/repository/order"
	sesrepository "github.com/you-humble/btg-configurator/internal/repository/session"
	sesconsumer "github.com/you-humble/btg-configurator/internal/service/consumer/session"
	orderservice "github.com/you-humble/btg-configurator/internal/service/order"
	ordproducer "github.com/you-humble/btg-configurator/internal/service/producer/order"
	"github.com/you-humble/btg-configurator/platform/kafka/consumer"
	"github.com/you-humble/btg-configurator/platform/kafka/middleware"
	"github.com/you-humble/btg-configurator/platform/kafka/producer"
	"github.com/you-humble/btg-configurator/platform/logger"
)

const assemblyFee = 250

type sessionStore interface {
	Load(ctx context.Context, owner, platform string) (*model.Session, error)
	Save(ctx context.Context, owner, platform string, sess model.Session) error
	Delete(ctx context.Context, owner, platform string) error
}

func pricingTotal(sel model.Selection) float64 {
	return pricing.Round2(pricing.ComputeTotal(sel, assemblyFee))
}

// fullSelection takes the first seeded component of every slot.
func fullSelection() model.Selection {
	sel := model.Selection{}
	for _, c := range comprepository.SeedComponents() {
		if sel.Get(c.Category) == nil {
			sel[c.Category] = c
		}
	}
	return sel
}

func saramaConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V4_0_0_0
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	return cfg
}

var _ = Describe("Configuration ordered flow", Ordered, func() {
	var (
		sessions sessionStore
		orders   interface {
			Submit(ctx context.Context, sub model.Submission) (string, error)
			OrderByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
		}
		ordRepo interface {
			Create(ctx context.Context, ord *model.Order) (uuid.UUID, error)
		}
	)

	BeforeAll(func() {
		coll := mongoDB.Collection("sessions_" + gofakeit.LetterN(6))
		DeferCleanup(func() { _ = coll.Drop(ctx) })

		sessions = sesrepository.NewSessionRepository(coll)
		repo := ordrepository.NewOrderRepository(pool)
		ordRepo = repo
		conv := converter.NewKafkaConverter()

		By("wiring the order service to a real producer")
		sp, err := sarama.NewSyncProducer(kafkaC.Brokers(), saramaConfig())
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(sp.Close)

		orders = orderservice.NewOrderService(
			repo,
			ordproducer.NewOrderProducer(
				producer.NewProducer(sp, configurationOrderedTopic, logger.L()),
				conv,
			),
			2*time.Second,
			2*time.Second,
		)

		By("starting the session cleanup consumer in background")
		group, err := sarama.NewConsumerGroup(kafkaC.Brokers(), "session-cleanup-it", saramaConfig())
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(group.Close)

		c := consumer.NewConsumer(
			group,
			[]string{configurationOrderedTopic},
			logger.L(),
			middleware.Recovery(logger.L()),
			middleware.Logging(logger.L()),
		)

		runCtx, cancel := context.WithCancel(ctx)
		DeferCleanup(cancel)

		errCh := make(chan error, 1)
		go func() {
			errCh <- sesconsumer.NewSessionConsumer(c, conv, sessions).RunConfigurationOrderedConsume(runCtx)
		}()
		Consistently(errCh, 2*time.Second).ShouldNot(Receive())
	})

	It("clears the wizard session of the owner once the order is written", func() {
		owner := gofakeit.Username()
		sel := fullSelection()

		Expect(sessions.Save(ctx, owner, "AMD", model.Session{Step: 8, Selection: sel})).To(Succeed())
		Expect(sessions.Save(ctx, owner, "Intel", model.Session{Step: 2, Selection: model.Selection{}})).To(Succeed())

		id, err := orders.Submit(ctx, model.Submission{
			Kind:      model.SubmissionOrder,
			Owner:     owner,
			Platform:  "AMD",
			Selection: sel,
			Total:     pricingTotal(sel),
			Delivery:  model.DeliveryEstimate{EstimatedDays: 4, AllAvailable: true, DeliveryDate: time.Now().AddDate(0, 0, 4)},
		})
		Expect(err).NotTo(HaveOccurred())

		ord, err := orders.OrderByID(ctx, uuid.MustParse(id))
		Expect(err).NotTo(HaveOccurred())
		Expect(ord.Status).To(Equal(model.StatusPending))
		Expect(ord.Owner).To(Equal(owner))

		By("waiting for the event to be consumed")
		Eventually(func(g Gomega) {
			_, err := sessions.Load(ctx, owner, "AMD")
			g.Expect(err).To(MatchError(model.ErrSessionNotFound))
		}).WithTimeout(20 * time.Second).WithPolling(200 * time.Millisecond).Should(Succeed())

		_, err = sessions.Load(ctx, owner, "Intel")
		Expect(err).NotTo(HaveOccurred())
	})

	It("keeps the session when an existing order is edited", func() {
		owner := gofakeit.Username()
		sel := fullSelection()

		origID, err := ordRepo.Create(ctx, &model.Order{
			Owner: owner, Platform: "AMD", Selection: sel,
			TotalPrice: pricingTotal(sel), Status: model.StatusPending,
			Delivery: model.DeliveryEstimate{EstimatedDays: 4, AllAvailable: true, DeliveryDate: time.Now()},
		})
		Expect(err).NotTo(HaveOccurred())

		Expect(sessions.Save(ctx, owner, "AMD", model.Session{Step: 3, Selection: sel})).To(Succeed())

		id, err := orders.Submit(ctx, model.Submission{
			Kind:            model.SubmissionEdit,
			Owner:           owner,
			Platform:        "AMD",
			Selection:       sel,
			Total:           pricingTotal(sel) + 10,
			Delivery:        model.DeliveryEstimate{EstimatedDays: 4, AllAvailable: true, DeliveryDate: time.Now()},
			OriginalOrderID: origID,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(id).To(Equal(origID.String()))

		Consistently(func(g Gomega) {
			_, err := sessions.Load(ctx, owner, "AMD")
			g.Expect(err).NotTo(HaveOccurred())
		}).WithTimeout(3 * time.Second).WithPolling(250 * time.Millisecond).Should(Succeed())
	})
})
