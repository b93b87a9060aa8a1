//go:build integration

package integration

import (
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/you-humble/btg-configurator/internal/model"
	repository "github.com/you-humble/btg-configurator/internal/repository/preset"
)

var _ = Describe("Preset repository", func() {
	It("stores presets and lists them by category", func() {
		repo := repository.NewPresetRepository(pool)
		category := "cat-" + strings.ToLower(gofakeit.LetterN(8))

		active := &model.Preset{
			Name: gofakeit.AppName() + " " + gofakeit.LetterN(6), Category: category,
			BasePrice: 999, Active: true, Platform: "AMD", Selection: fakeSelection(),
		}
		inactive := &model.Preset{
			Name: gofakeit.AppName() + " " + gofakeit.LetterN(6), Category: category,
			Active: false, Platform: "Intel", Selection: fakeSelection(),
		}

		id, err := repo.Create(ctx, active)
		Expect(err).NotTo(HaveOccurred())
		_, err = repo.Create(ctx, inactive)
		Expect(err).NotTo(HaveOccurred())

		got, err := repo.PresetByID(ctx, id)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Name).To(Equal(active.Name))
		Expect(got.BasePrice).To(BeNumerically("~", 999, 0.001))
		Expect(got.Selection).To(HaveLen(2))

		all, err := repo.List(ctx, model.PresetsFilter{Category: strings.ToUpper(category)})
		Expect(err).NotTo(HaveOccurred())
		Expect(all).To(HaveLen(2))

		onlyActive, err := repo.List(ctx, model.PresetsFilter{Category: category, ActiveOnly: true})
		Expect(err).NotTo(HaveOccurred())
		Expect(onlyActive).To(HaveLen(1))
		Expect(onlyActive[0].ID).To(Equal(id))
	})

	It("rejects a duplicate name regardless of case", func() {
		repo := repository.NewPresetRepository(pool)
		name := "Dup " + gofakeit.LetterN(8)

		_, err := repo.Create(ctx, &model.Preset{Name: name, Selection: fakeSelection()})
		Expect(err).NotTo(HaveOccurred())

		_, err = repo.Create(ctx, &model.Preset{Name: strings.ToUpper(name), Selection: fakeSelection()})
		Expect(err).To(MatchError(model.ErrPresetExists))
	})

	It("reports a missing preset", func() {
		_, err := repository.NewPresetRepository(pool).PresetByID(ctx, uuid.New())
		Expect(err).To(MatchError(model.ErrPresetNotFound))
	})
})
