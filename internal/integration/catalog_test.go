//go:build integration

package integration

import (
	"context"

	"github.com/brianvoe/gofakeit/v7"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/you-humble/btg-configurator/internal/model"
	repository "github.com/you-humble/btg-configurator/internal/repository/component"
)

func ids(list []model.Component) []string {
	return lo.Map(list, func(c model.Component, _ int) string { return c.ID })
}

var _ = Describe("Component repository", Ordered, func() {
	var (
		coll *mongo.Collection
		repo interface {
			repository.BatchCreator
			ComponentByID(ctx context.Context, id string) (*model.Component, error)
			List(ctx context.Context, category model.Slot, f model.CatalogFilter) ([]model.Component, error)
			ListByIDs(ctx context.Context, ids []string) ([]model.Component, error)
		}
	)

	BeforeAll(func() {
		coll = mongoDB.Collection("components_" + gofakeit.LetterN(6))
		repo = repository.NewComponentRepository(coll)

		By("seeding an empty catalog")
		Expect(repository.ComponentsBootstrap(ctx, repo)).To(Succeed())
	})

	AfterAll(func() {
		Expect(coll.Drop(ctx)).To(Succeed())
	})

	It("seeds only once", func() {
		before, err := repo.Count(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(before).To(BeEquivalentTo(len(repository.SeedComponents())))

		Expect(repository.ComponentsBootstrap(ctx, repo)).To(Succeed())

		after, err := repo.Count(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(after).To(Equal(before))
	})

	It("filters motherboards by socket case-insensitively", func() {
		list, err := repo.List(ctx, model.SlotMotherboard, model.CatalogFilter{Socket: " am5 "})
		Expect(err).NotTo(HaveOccurred())
		Expect(ids(list)).To(ConsistOf("mb-b650-tomahawk", "mb-a620m"))
	})

	It("matches coolers against any of their supported sockets", func() {
		list, err := repo.List(ctx, model.SlotCooling, model.CatalogFilter{Socket: "LGA1700"})
		Expect(err).NotTo(HaveOccurred())
		Expect(ids(list)).To(ConsistOf("cool-ak620", "cool-arctic-lf3-280"))
	})

	It("applies a minimum wattage", func() {
		list, err := repo.List(ctx, model.SlotPowerSupply, model.CatalogFilter{MinWattage: 700})
		Expect(err).NotTo(HaveOccurred())
		Expect(ids(list)).To(ConsistOf("psu-750-gold", "psu-1000-gold"))
	})

	It("combines predicates", func() {
		list, err := repo.List(ctx, model.SlotMotherboard, model.CatalogFilter{
			ChipsetBrand: "intel",
			MemoryType:   "ddr5",
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(ids(list)).To(ConsistOf("mb-z790-a"))
	})

	It("reports a missing component", func() {
		_, err := repo.ComponentByID(ctx, "no-such-component")
		Expect(err).To(MatchError(model.ErrComponentNotFound))
	})

	It("normalizes documents written by other tools", func() {
		DeferCleanup(func() {
			_, err := coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": bson.A{"mb-imported", "psu-imported"}}})
			Expect(err).NotTo(HaveOccurred())
		})

		_, err := coll.InsertOne(ctx, bson.M{
			"_id":      "mb-imported",
			"name":     "Imported board",
			"category": "motherboard",
			"price":    "149.50",
			"stock":    int32(4),
			"socket":   bson.A{"AM5"},
		})
		Expect(err).NotTo(HaveOccurred())

		c, err := repo.ComponentByID(ctx, "mb-imported")
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Price).To(BeNumerically("~", 149.5, 0.001))
		Expect(c.Stock).To(BeEquivalentTo(4))
		Expect(c.Socket).To(Equal("AM5"))

		boards, err := repo.List(ctx, model.SlotMotherboard, model.CatalogFilter{Socket: "am5"})
		Expect(err).NotTo(HaveOccurred())
		Expect(ids(boards)).To(ContainElement("mb-imported"))

		boards, err = repo.List(ctx, model.SlotMotherboard, model.CatalogFilter{Socket: "LGA1700"})
		Expect(err).NotTo(HaveOccurred())
		Expect(ids(boards)).NotTo(ContainElement("mb-imported"))

		_, err = coll.InsertOne(ctx, bson.M{
			"_id":      "psu-imported",
			"name":     "Imported PSU",
			"category": "powerSupply",
			"price":    89.9,
			"stock":    "2",
			"wattage":  "750",
		})
		Expect(err).NotTo(HaveOccurred())

		psus, err := repo.List(ctx, model.SlotPowerSupply, model.CatalogFilter{MinWattage: 501})
		Expect(err).NotTo(HaveOccurred())
		Expect(ids(psus)).To(ContainElement("psu-imported"))

		psus, err = repo.List(ctx, model.SlotPowerSupply, model.CatalogFilter{MinWattage: 800})
		Expect(err).NotTo(HaveOccurred())
		Expect(ids(psus)).NotTo(ContainElement("psu-imported"))
	})

	It("resolves several ids at once", func() {
		list, err := repo.ListByIDs(ctx, []string{"cpu-ryzen5-7600", "gpu-rtx4060", "cpu-ryzen5-7600", "ghost"})
		Expect(err).NotTo(HaveOccurred())
		Expect(ids(list)).To(ConsistOf("cpu-ryzen5-7600", "gpu-rtx4060"))
	})
})
