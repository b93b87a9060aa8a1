package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/btg-configurator/internal/model"
	"github.com/you-humble/btg-configurator/internal/pricing"
	"github.com/you-humble/btg-configurator/internal/service/mocks"
)

type deps struct {
	repository *mocks.MockPresetRepository
	catalog    *mocks.MockCatalogService
}

var testFees = pricing.Fees{
	Wizard:        pricing.DefaultAssemblyFee,
	PresetDefault: pricing.DefaultAssemblyFee,
	ByCategory:    map[string]float64{"workstation": 150},
}

func newSvc(d deps, authority model.PriceAuthority) *service {
	return NewPresetService(d.repository, d.catalog, testFees, authority, time.Second, time.Second)
}

// catalogParts is a compatible eight-part build priced at 100 per part.
func catalogParts() map[string]*model.Component {
	parts := []*model.Component{
		{ID: "cpu", Category: model.SlotCPU, Socket: "AM5", TDP: 65},
		{ID: "mb", Category: model.SlotMotherboard, Socket: "AM5", MemoryType: "DDR5", FormFactor: "ATX"},
		{ID: "ram", Category: model.SlotRAM, MemoryType: "DDR5"},
		{ID: "gpu", Category: model.SlotGPU, TDP: 200, Length: 300},
		{ID: "ssd", Category: model.SlotStorage},
		{ID: "psu", Category: model.SlotPowerSupply, Wattage: 750},
		{ID: "case", Category: model.SlotCase, SupportedFormFactors: []string{"ATX"}, MaxGPULength: 350},
		{ID: "cool", Category: model.SlotCooling, SupportedSockets: []string{"AM5"}},
	}
	out := make(map[string]*model.Component, len(parts))
	for _, p := range parts {
		p.Name = p.ID
		p.Price = 100
		p.Stock = 5
		out[p.ID] = p
	}
	return out
}

func draftOf(parts map[string]*model.Component, category string) model.PresetDraft {
	ids := make(map[model.Slot]string, len(parts))
	for id, c := range parts {
		ids[c.Category] = id
	}
	return model.PresetDraft{
		PresetMeta:   model.PresetMeta{Name: "Gamer One", Category: category, Platform: "AMD", BasePrice: 999, Active: true},
		ComponentIDs: ids,
	}
}

func TestServiceValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		authority model.PriceAuthority
		draft     func() model.PresetDraft
		parts     func() map[string]*model.Component
		assert    func(t *testing.T, r *model.PresetReport, err error)
	}{
		{
			name:      "valid workstation build priced with the category fee",
			authority: model.PriceAuthorityComputed,
			parts:     catalogParts,
			draft:     func() model.PresetDraft { return draftOf(catalogParts(), "Workstation") },
			assert: func(t *testing.T, r *model.PresetReport, err error) {
				require.NoError(t, err)
				assert.True(t, r.Valid())
				assert.Equal(t, 150.0, r.AssemblyFee)
				assert.Equal(t, 950.0, r.ComputedPrice)
				assert.Equal(t, 950.0, r.EffectivePrice)
			},
		},
		{
			name:      "base price authority",
			authority: model.PriceAuthorityBasePrice,
			parts:     catalogParts,
			draft:     func() model.PresetDraft { return draftOf(catalogParts(), "gaming") },
			assert: func(t *testing.T, r *model.PresetReport, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1050.0, r.ComputedPrice)
				assert.Equal(t, 999.0, r.EffectivePrice)
			},
		},
		{
			name:      "exhaustive mode reports a socket mismatch",
			authority: model.PriceAuthorityComputed,
			parts: func() map[string]*model.Component {
				p := catalogParts()
				p["mb"].Socket = "LGA1700"
				return p
			},
			draft: func() model.PresetDraft { return draftOf(catalogParts(), "gaming") },
			assert: func(t *testing.T, r *model.PresetReport, err error) {
				require.NoError(t, err)
				assert.False(t, r.Valid())
				codes := make([]model.WarningCode, 0, len(r.Warnings))
				for _, w := range r.Warnings {
					codes = append(codes, w.Code)
				}
				assert.Contains(t, codes, model.WarningSocketMismatch)
			},
		},
		{
			name:      "missing slot",
			authority: model.PriceAuthorityComputed,
			parts:     catalogParts,
			draft: func() model.PresetDraft {
				d := draftOf(catalogParts(), "gaming")
				delete(d.ComponentIDs, model.SlotGPU)
				return d
			},
			assert: func(t *testing.T, r *model.PresetReport, err error) {
				require.NoError(t, err)
				assert.Equal(t, []model.Slot{model.SlotGPU}, r.Missing)
			},
		},
		{
			name:      "blank id counts as a missing slot",
			authority: model.PriceAuthorityComputed,
			parts:     catalogParts,
			draft: func() model.PresetDraft {
				d := draftOf(catalogParts(), "gaming")
				d.ComponentIDs[model.SlotStorage] = "  "
				return d
			},
			assert: func(t *testing.T, r *model.PresetReport, err error) {
				require.NoError(t, err)
				assert.Equal(t, []model.Slot{model.SlotStorage}, r.Missing)
			},
		},
		{
			name:      "unknown component id",
			authority: model.PriceAuthorityComputed,
			parts:     catalogParts,
			draft: func() model.PresetDraft {
				d := draftOf(catalogParts(), "gaming")
				d.ComponentIDs[model.SlotGPU] = "gpu-typo"
				return d
			},
			assert: func(t *testing.T, r *model.PresetReport, err error) {
				require.ErrorIs(t, err, model.ErrComponentNotFound)
				assert.ErrorContains(t, err, "gpu-typo")
				assert.ErrorContains(t, err, string(model.SlotGPU))
				assert.Nil(t, r)
			},
		},
		{
			name:      "component in the wrong slot",
			authority: model.PriceAuthorityComputed,
			parts:     catalogParts,
			draft: func() model.PresetDraft {
				d := draftOf(catalogParts(), "gaming")
				d.ComponentIDs[model.SlotGPU] = "cpu"
				return d
			},
			assert: func(t *testing.T, r *model.PresetReport, err error) {
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, r)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				repository: mocks.NewMockPresetRepository(t),
				catalog:    mocks.NewMockCatalogService(t),
			}
			d.catalog.On("ComponentsByIDs", mock.Anything, mock.Anything).Return(tt.parts(), nil).Once()

			r, err := newSvc(d, tt.authority).Validate(context.Background(), tt.draft())
			tt.assert(t, r, err)
		})
	}
}

func TestServiceCreate(t *testing.T) {
	t.Parallel()

	t.Run("stores a valid preset", func(t *testing.T) {
		t.Parallel()

		d := deps{
			repository: mocks.NewMockPresetRepository(t),
			catalog:    mocks.NewMockCatalogService(t),
		}
		id := uuid.New()
		d.catalog.On("ComponentsByIDs", mock.Anything, mock.Anything).Return(catalogParts(), nil).Once()
		d.repository.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Preset) bool {
			return p.Name == "Gamer One" && len(p.Selection.Missing(model.DefaultSlotOrder)) == 0
		})).Return(id, nil).Once()

		p, r, err := newSvc(d, model.PriceAuthorityComputed).Create(context.Background(), draftOf(catalogParts(), "gaming"))
		require.NoError(t, err)
		assert.Equal(t, id, p.ID)
		assert.True(t, r.Valid())
	})

	t.Run("warnings block creation", func(t *testing.T) {
		t.Parallel()

		d := deps{
			repository: mocks.NewMockPresetRepository(t),
			catalog:    mocks.NewMockCatalogService(t),
		}
		parts := catalogParts()
		parts["psu"].Wattage = 300
		d.catalog.On("ComponentsByIDs", mock.Anything, mock.Anything).Return(parts, nil).Once()

		p, r, err := newSvc(d, model.PriceAuthorityComputed).Create(context.Background(), draftOf(parts, "gaming"))
		assert.ErrorIs(t, err, model.ErrIncompatible)
		assert.Nil(t, p)
		require.NotNil(t, r)
		assert.Equal(t, model.WarningInsufficientWattage, r.Warnings[0].Code)
		d.repository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate name", func(t *testing.T) {
		t.Parallel()

		d := deps{
			repository: mocks.NewMockPresetRepository(t),
			catalog:    mocks.NewMockCatalogService(t),
		}
		d.catalog.On("ComponentsByIDs", mock.Anything, mock.Anything).Return(catalogParts(), nil).Once()
		d.repository.On("Create", mock.Anything, mock.Anything).Return(uuid.Nil, model.ErrPresetExists).Once()

		_, _, err := newSvc(d, model.PriceAuthorityComputed).Create(context.Background(), draftOf(catalogParts(), "gaming"))
		assert.ErrorIs(t, err, model.ErrPresetExists)
	})

	t.Run("blank name", func(t *testing.T) {
		t.Parallel()

		d := deps{
			repository: mocks.NewMockPresetRepository(t),
			catalog:    mocks.NewMockCatalogService(t),
		}
		d.catalog.On("ComponentsByIDs", mock.Anything, mock.Anything).Return(catalogParts(), nil).Once()

		draft := draftOf(catalogParts(), "gaming")
		draft.Name = "  "
		_, _, err := newSvc(d, model.PriceAuthorityComputed).Create(context.Background(), draft)
		assert.ErrorIs(t, err, model.ErrValidation)
	})
}

func TestServiceList(t *testing.T) {
	t.Parallel()

	d := deps{
		repository: mocks.NewMockPresetRepository(t),
		catalog:    mocks.NewMockCatalogService(t),
	}
	sel := model.NewSelection()
	for _, c := range catalogParts() {
		sel[c.Category] = c
	}
	stored := []*model.Preset{
		{ID: uuid.New(), Name: "Studio", Category: "workstation", BasePrice: 700, Selection: sel},
	}
	d.repository.On("List", mock.Anything, model.PresetsFilter{ActiveOnly: true}).Return(stored, nil).Once()

	out, err := newSvc(d, model.PriceAuthorityBasePrice).List(context.Background(), model.PresetsFilter{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 950.0, out[0].ComputedPrice)
	assert.Equal(t, 700.0, out[0].EffectivePrice)
}
