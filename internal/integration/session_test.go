//go:build integration

package integration

import (
	"github.com/brianvoe/gofakeit/v7"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/you-humble/btg-configurator/internal/model"
	repository "github.com/you-humble/btg-configurator/internal/repository/session"
)

var _ = Describe("Session repository", func() {
	var (
		coll  *mongo.Collection
		owner string
	)

	BeforeEach(func() {
		coll = mongoDB.Collection("sessions_" + gofakeit.LetterN(6))
		owner = gofakeit.Username()
	})

	AfterEach(func() {
		Expect(coll.Drop(ctx)).To(Succeed())
	})

	It("reports an unknown session", func() {
		repo := repository.NewSessionRepository(coll)

		_, err := repo.Load(ctx, owner, "AMD")
		Expect(err).To(MatchError(model.ErrSessionNotFound))
	})

	It("round-trips the step and the selection", func() {
		repo := repository.NewSessionRepository(coll)
		cpu := &model.Component{
			ID: "cpu-ryzen5-7600", Name: "AMD Ryzen 5 7600", Brand: "AMD",
			Category: model.SlotCPU, Price: 199.9, Stock: 25, Socket: "AM5", TDP: 65,
		}

		Expect(repo.Save(ctx, owner, "AMD", model.Session{
			Step:      1,
			Selection: model.Selection{model.SlotCPU: cpu},
		})).To(Succeed())

		got, err := repo.Load(ctx, owner, "AMD")
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Step).To(Equal(1))
		Expect(got.Selection.Get(model.SlotCPU).ID).To(Equal(cpu.ID))
		Expect(got.Selection.Get(model.SlotCPU).Socket).To(Equal("AM5"))

		By("overwriting on the next save")
		Expect(repo.Save(ctx, owner, "AMD", model.Session{Step: 2, Selection: got.Selection})).To(Succeed())

		got, err = repo.Load(ctx, owner, "AMD")
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Step).To(Equal(2))

		n, err := coll.CountDocuments(ctx, map[string]any{})
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(BeEquivalentTo(2))
	})

	It("keeps platforms apart and deletes one of them", func() {
		repo := repository.NewSessionRepository(coll)

		Expect(repo.Save(ctx, owner, "AMD", model.Session{Selection: model.Selection{}})).To(Succeed())
		Expect(repo.Save(ctx, owner, "Intel", model.Session{Selection: model.Selection{}})).To(Succeed())

		Expect(repo.Delete(ctx, owner, "AMD")).To(Succeed())

		_, err := repo.Load(ctx, owner, "AMD")
		Expect(err).To(MatchError(model.ErrSessionNotFound))

		_, err = repo.Load(ctx, owner, "Intel")
		Expect(err).NotTo(HaveOccurred())
	})
})
