package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/btg-configurator/internal/model"
	"github.com/you-humble/btg-configurator/internal/pricing"
	"github.com/you-humble/btg-configurator/internal/sequencer"
	"github.com/you-humble/btg-configurator/internal/service/mocks"
)

var fixedNow = time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)

type deps struct {
	catalog *mocks.MockCatalogService
	orders  *mocks.MockOrderService
	presets *mocks.MockPresetService
	store   *mocks.MockSessionStore
}

func newDeps(t *testing.T) deps {
	d := deps{
		catalog: mocks.NewMockCatalogService(t),
		orders:  mocks.NewMockOrderService(t),
		presets: mocks.NewMockPresetService(t),
		store:   mocks.NewMockSessionStore(t),
	}
	d.catalog.On("ListComponents", mock.Anything, mock.Anything, mock.Anything).
		Return([]model.Component{}, nil).Maybe()
	d.store.On("Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	return d
}

func newSvc(d deps) *service {
	return NewBuildService(d.catalog, d.orders, d.presets, d.store, Settings{
		Fees: pricing.Fees{
			Wizard:        pricing.DefaultAssemblyFee,
			PresetDefault: pricing.DefaultAssemblyFee,
			ByCategory:    map[string]float64{"workstation": 150},
		},
		LookupTimeout: time.Second,
		Now:           func() time.Time { return fixedNow },
	})
}

// build is a compatible set of parts, one per slot, 100 each.
func build() model.Selection {
	sel := model.Selection{
		model.SlotCPU:         {ID: "cpu", Category: model.SlotCPU, Brand: "AMD", Socket: "AM5", TDP: 65},
		model.SlotMotherboard: {ID: "mb", Category: model.SlotMotherboard, Socket: "AM5", ChipsetBrand: "AMD", MemoryType: "DDR5", FormFactor: "ATX"},
		model.SlotRAM:         {ID: "ram", Category: model.SlotRAM, MemoryType: "DDR5"},
		model.SlotGPU:         {ID: "gpu", Category: model.SlotGPU, TDP: 200},
		model.SlotStorage:     {ID: "ssd", Category: model.SlotStorage},
		model.SlotPowerSupply: {ID: "psu", Category: model.SlotPowerSupply, Wattage: 750},
		model.SlotCase:        {ID: "case", Category: model.SlotCase, SupportedFormFactors: []string{"ATX"}},
		model.SlotCooling:     {ID: "cool", Category: model.SlotCooling, SupportedSockets: []string{"AM5"}},
	}
	for _, c := range sel {
		c.Name, c.Price, c.Stock = c.ID, 100, 2
	}
	return sel
}

func TestStartWizard(t *testing.T) {
	t.Parallel()

	stored := build()

	tests := []struct {
		name     string
		owner    string
		platform string
		setup    func(d deps)
		assert   func(t *testing.T, st sequencer.State, err error)
	}{
		{
			name:     "blank owner",
			owner:    " ",
			platform: "AMD",
			assert: func(t *testing.T, st sequencer.State, err error) {
				assert.ErrorIs(t, err, model.ErrValidation)
			},
		},
		{
			name:     "nothing stored starts at the first slot",
			owner:    "alice",
			platform: "AMD",
			setup: func(d deps) {
				d.store.On("Load", mock.Anything, "alice", "AMD").Return((*model.Session)(nil), model.ErrSessionNotFound).Once()
			},
			assert: func(t *testing.T, st sequencer.State, err error) {
				require.NoError(t, err)
				assert.Equal(t, 0, st.Step)
				assert.Equal(t, model.SlotCPU, st.CurrentSlot)
				assert.Equal(t, 250.0, st.Price)
			},
		},
		{
			name:     "stored build is resumed and repriced",
			owner:    "alice",
			platform: "AMD",
			setup: func(d deps) {
				sel := model.Selection{model.SlotCPU: stored[model.SlotCPU]}
				d.store.On("Load", mock.Anything, "alice", "AMD").
					Return(&model.Session{Step: 1, Selection: sel}, nil).Once()
			},
			assert: func(t *testing.T, st sequencer.State, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, st.Step)
				assert.Equal(t, model.SlotMotherboard, st.CurrentSlot)
				assert.Equal(t, 350.0, st.Price)
			},
		},
		{
			name:     "store failure",
			owner:    "alice",
			platform: "AMD",
			setup: func(d deps) {
				d.store.On("Load", mock.Anything, "alice", "AMD").
					Return((*model.Session)(nil), errors.New("mongo down")).Once()
			},
			assert: func(t *testing.T, st sequencer.State, err error) {
				assert.ErrorIs(t, err, model.ErrPersistence)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			if tt.setup != nil {
				tt.setup(d)
			}

			_, st, err := newSvc(d).StartWizard(context.Background(), tt.owner, tt.platform)
			tt.assert(t, st, err)
		})
	}
}

func TestSelectAndSubmitWizard(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	parts := build()
	svc := newSvc(d)

	d.store.On("Load", mock.Anything, "bob", "AMD").Return((*model.Session)(nil), model.ErrSessionNotFound).Once()
	for _, c := range parts {
		d.catalog.On("Component", mock.Anything, c.ID).Return(c, nil)
	}
	d.orders.On("Submit", mock.Anything, mock.MatchedBy(func(sub model.Submission) bool {
		return sub.Kind == model.SubmissionOrder && sub.Owner == "bob" && sub.Total == 1050
	})).Return("order-1", nil).Once()

	id, _, err := svc.StartWizard(context.Background(), "bob", "AMD")
	require.NoError(t, err)

	var st sequencer.State
	for _, slot := range model.DefaultSlotOrder {
		st, err = svc.Select(context.Background(), id, slot, parts[slot].ID)
		require.NoError(t, err, slot)
	}
	assert.True(t, st.Summary)

	st, err = svc.Submit(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "order-1", st.SubmittedID)
	assert.Equal(t, 0, st.Step)
}

func TestSelectUnknownComponent(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	svc := newSvc(d)

	d.store.On("Load", mock.Anything, "bob", "AMD").Return((*model.Session)(nil), model.ErrSessionNotFound).Once()
	d.catalog.On("Component", mock.Anything, "nope").Return((*model.Component)(nil), model.ErrComponentNotFound).Once()

	id, _, err := svc.StartWizard(context.Background(), "bob", "AMD")
	require.NoError(t, err)

	_, err = svc.Select(context.Background(), id, model.SlotCPU, "nope")
	assert.ErrorIs(t, err, model.ErrComponentNotFound)
}

func TestStartEdit(t *testing.T) {
	t.Parallel()

	ordID := uuid.New()
	order := &model.Order{
		ID:         ordID,
		Owner:      "carol",
		Platform:   "AMD",
		Selection:  build(),
		TotalPrice: 1040,
		Status:     model.StatusPending,
	}

	t.Run("prices against the stored total", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.orders.On("OrderByID", mock.Anything, ordID).Return(order, nil).Once()

		_, st, err := newSvc(d).StartEdit(context.Background(), "carol", ordID)
		require.NoError(t, err)
		assert.Equal(t, sequencer.ModeEdit, st.Mode)
		assert.Equal(t, 1040.0, st.Price)
		assert.True(t, st.Summary)
	})

	t.Run("foreign owner", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.orders.On("OrderByID", mock.Anything, ordID).Return(order, nil).Once()

		_, _, err := newSvc(d).StartEdit(context.Background(), "mallory", ordID)
		assert.ErrorIs(t, err, model.ErrOrderConflict)
	})

	t.Run("missing order", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.orders.On("OrderByID", mock.Anything, ordID).Return((*model.Order)(nil), model.ErrOrderNotFound).Once()

		_, _, err := newSvc(d).StartEdit(context.Background(), "carol", ordID)
		assert.ErrorIs(t, err, model.ErrOrderNotFound)
	})
}

func TestPresetSessionSubmitsPreset(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	parts := build()
	svc := newSvc(d)
	presetID := uuid.New()

	for _, c := range parts {
		d.catalog.On("Component", mock.Anything, c.ID).Return(c, nil)
	}
	d.presets.On("CreateFromSelection", mock.Anything,
		mock.MatchedBy(func(m model.PresetMeta) bool { return m.Name == "Studio" && m.Platform == "AMD" }),
		mock.MatchedBy(func(sel model.Selection) bool { return len(sel.Missing(model.DefaultSlotOrder)) == 0 }),
	).Return(&model.Preset{ID: presetID}, nil).Once()

	id, st, err := svc.StartPreset(context.Background(), "admin", model.PresetMeta{
		Name: "Studio", Category: "workstation", Platform: "AMD",
	})
	require.NoError(t, err)
	assert.Equal(t, 150.0, st.Price)

	// Curation fills slots in any order.
	for i := len(model.DefaultSlotOrder) - 1; i >= 0; i-- {
		slot := model.DefaultSlotOrder[i]
		_, err = svc.Select(context.Background(), id, slot, parts[slot].ID)
		require.NoError(t, err, slot)
	}

	st, err = svc.Submit(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, presetID.String(), st.SubmittedID)
	d.orders.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestSessionLifecycle(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	svc := newSvc(d)

	_, err := svc.Get(uuid.New())
	assert.ErrorIs(t, err, model.ErrSessionNotFound)

	id, _, err := svc.StartPreset(context.Background(), "admin", model.PresetMeta{Name: "X", Platform: "Intel"})
	require.NoError(t, err)

	_, err = svc.Forward(context.Background(), id)
	assert.ErrorIs(t, err, model.ErrValidation)

	require.NoError(t, svc.Delete(id))
	assert.ErrorIs(t, svc.Delete(id), model.ErrSessionNotFound)
	_, err = svc.Back(context.Background(), id)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}
