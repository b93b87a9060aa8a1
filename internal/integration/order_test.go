//go:build integration

package integration

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/you-humble/btg-configurator/internal/model"
	repository "github.com/you-humble/btg-configurator/internal/repository/order"
)

func fakeSelection() model.Selection {
	return model.Selection{
		model.SlotCPU: {
			ID: "cpu-" + gofakeit.LetterN(5), Name: gofakeit.ProductName(), Brand: "AMD",
			Category: model.SlotCPU, Price: 300, Stock: 3, Socket: "AM5", TDP: 65,
		},
		model.SlotGPU: {
			ID: "gpu-" + gofakeit.LetterN(5), Name: gofakeit.ProductName(), Brand: "NVIDIA",
			Category: model.SlotGPU, Price: 500, Stock: 0, TDP: 220,
		},
	}
}

var _ = Describe("Order repository", func() {
	It("creates, reads and updates an order", func() {
		repo := repository.NewOrderRepository(pool)
		date := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

		id, err := repo.Create(ctx, &model.Order{
			Owner:      gofakeit.Username(),
			Platform:   "AMD",
			Selection:  fakeSelection(),
			TotalPrice: 1050,
			Delivery:   model.DeliveryEstimate{EstimatedDays: 7, AllAvailable: false, DeliveryDate: date},
			Status:     model.StatusPending,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(id).NotTo(Equal(uuid.Nil))

		got, err := repo.OrderByID(ctx, id)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.TotalPrice).To(BeNumerically("~", 1050, 0.001))
		Expect(got.Status).To(Equal(model.StatusPending))
		Expect(got.Delivery.DeliveryDate.Equal(date)).To(BeTrue())
		Expect(got.Delivery.UnavailableComponents).To(HaveLen(1))
		Expect(got.Delivery.UnavailableComponents[0].Slot).To(Equal(model.SlotGPU))
		Expect(got.UpdatedAt).To(BeNil())

		By("cancelling")
		Expect(repo.Update(ctx, &model.Order{ID: id, Status: model.StatusCancelled})).To(Succeed())

		got, err = repo.OrderByID(ctx, id)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Status).To(Equal(model.StatusCancelled))
		Expect(got.TotalPrice).To(BeNumerically("~", 1050, 0.001))
		Expect(got.UpdatedAt).NotTo(BeNil())
	})

	It("reports a missing order", func() {
		repo := repository.NewOrderRepository(pool)

		_, err := repo.OrderByID(ctx, uuid.New())
		Expect(err).To(MatchError(model.ErrOrderNotFound))

		err = repo.Update(ctx, &model.Order{ID: uuid.New(), Status: model.StatusCancelled})
		Expect(err).To(MatchError(model.ErrOrderNotFound))
	})
})
