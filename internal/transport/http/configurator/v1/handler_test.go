package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/btg-configurator/internal/model"
	"github.com/you-humble/btg-configurator/internal/sequencer"
	"github.com/you-humble/btg-configurator/internal/transport/http/configurator/v1/mocks"
)

type deps struct {
	catalog *mocks.MockCatalogService
	builds  *mocks.MockBuildService
	presets *mocks.MockPresetService
	orders  *mocks.MockOrderService
}

func newServer(t *testing.T) (deps, http.Handler) {
	d := deps{
		catalog: mocks.NewMockCatalogService(t),
		builds:  mocks.NewMockBuildService(t),
		presets: mocks.NewMockPresetService(t),
		orders:  mocks.NewMockOrderService(t),
	}
	r := chi.NewRouter()
	NewConfiguratorHandler(d.catalog, d.builds, d.presets, d.orders).Routes(r)
	return d, r
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func wizardState() sequencer.State {
	cpu := &model.Component{ID: "cpu-1", Name: "Ryzen 5 7600", Category: model.SlotCPU, Price: 300, Stock: 2}
	return sequencer.State{
		Mode:        sequencer.ModeWizard,
		Platform:    "AMD",
		Step:        1,
		CurrentSlot: model.SlotMotherboard,
		Selection:   model.Selection{model.SlotCPU: cpu},
		Missing:     []model.Slot{model.SlotMotherboard},
		Price:       550.004,
		Delivery: model.DeliveryEstimate{
			EstimatedDays: 4,
			AllAvailable:  true,
			DeliveryDate:  time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC),
		},
		Version: 3,
	}
}

func TestListComponents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		path  string
		setup func(d deps)
		code  int
	}{
		{
			name: "unknown category",
			path: "/api/v1/catalog/fans",
			code: http.StatusBadRequest,
		},
		{
			name: "bad wattage",
			path: "/api/v1/catalog/powerSupply?minWattage=lots",
			code: http.StatusBadRequest,
		},
		{
			name: "filters are passed through",
			path: "/api/v1/catalog/motherboard?socket=AM5&chipsetBrand=AMD",
			setup: func(d deps) {
				d.catalog.On("ListComponents", mock.Anything, model.SlotMotherboard,
					model.CatalogFilter{Socket: "AM5", ChipsetBrand: "AMD"}).
					Return([]model.Component{{ID: "mb-1", Category: model.SlotMotherboard}}, nil).Once()
			},
			code: http.StatusOK,
		},
		{
			name: "lookup failure",
			path: "/api/v1/catalog/gpu",
			setup: func(d deps) {
				d.catalog.On("ListComponents", mock.Anything, model.SlotGPU, model.CatalogFilter{}).
					Return(nil, model.ErrCatalogLookup).Once()
			},
			code: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d, h := newServer(t)
			if tt.setup != nil {
				tt.setup(d)
			}

			rec := do(h, http.MethodGet, tt.path, "")
			assert.Equal(t, tt.code, rec.Code, rec.Body.String())
		})
	}
}

func TestStartWizard(t *testing.T) {
	t.Parallel()

	t.Run("created", func(t *testing.T) {
		t.Parallel()

		d, h := newServer(t)
		id := uuid.New()
		d.builds.On("StartWizard", mock.Anything, "alice", "AMD").Return(id, wizardState(), nil).Once()

		rec := do(h, http.MethodPost, "/api/v1/builds", `{"owner":"alice","platform":"AMD"}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var body stateResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, id.String(), body.ID)
		assert.Equal(t, "motherboard", body.CurrentSlot)
		assert.Equal(t, 550.0, body.Price)
		assert.Equal(t, "2025-06-06", body.Delivery.DeliveryDate)
		assert.Equal(t, "cpu-1", body.Selection["cpu"].ID)
	})

	t.Run("missing platform", func(t *testing.T) {
		t.Parallel()

		_, h := newServer(t)
		rec := do(h, http.MethodPost, "/api/v1/builds", `{"owner":"alice"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()

		_, h := newServer(t)
		rec := do(h, http.MethodPost, "/api/v1/builds", `{"owner":"alice","platform":"AMD","step":3}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSelect(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	path := "/api/v1/builds/" + id.String() + "/slots/motherboard"

	tests := []struct {
		name  string
		path  string
		body  string
		setup func(d deps)
		code  int
		state bool
	}{
		{
			name: "ok",
			path: path,
			body: `{"componentId":"mb-1"}`,
			setup: func(d deps) {
				d.builds.On("Select", mock.Anything, id, model.SlotMotherboard, "mb-1").Return(wizardState(), nil).Once()
			},
			code: http.StatusOK,
		},
		{
			name: "incompatible keeps the state in the error body",
			path: path,
			body: `{"componentId":"mb-9"}`,
			setup: func(d deps) {
				d.builds.On("Select", mock.Anything, id, model.SlotMotherboard, "mb-9").
					Return(wizardState(), errors.Join(model.ErrIncompatible, errors.New("socket"))).Once()
			},
			code:  http.StatusUnprocessableEntity,
			state: true,
		},
		{
			name: "read only at summary",
			path: path,
			body: `{"componentId":"mb-1"}`,
			setup: func(d deps) {
				d.builds.On("Select", mock.Anything, id, model.SlotMotherboard, "mb-1").
					Return(wizardState(), model.ErrReadOnly).Once()
			},
			code:  http.StatusConflict,
			state: true,
		},
		{
			name: "unknown session",
			path: path,
			body: `{"componentId":"mb-1"}`,
			setup: func(d deps) {
				d.builds.On("Select", mock.Anything, id, model.SlotMotherboard, "mb-1").
					Return(sequencer.State{}, model.ErrSessionNotFound).Once()
			},
			code: http.StatusNotFound,
		},
		{
			name: "unknown slot",
			path: "/api/v1/builds/" + id.String() + "/slots/fan",
			body: `{"componentId":"x"}`,
			code: http.StatusBadRequest,
		},
		{
			name: "bad build id",
			path: "/api/v1/builds/nope/slots/cpu",
			body: `{"componentId":"x"}`,
			code: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d, h := newServer(t)
			if tt.setup != nil {
				tt.setup(d)
			}

			rec := do(h, http.MethodPut, tt.path, tt.body)
			require.Equal(t, tt.code, rec.Code, rec.Body.String())

			if tt.code >= http.StatusBadRequest {
				var body errorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.code, body.Code)
				assert.Equal(t, tt.state, body.State != nil)
			}
		})
	}
}

func TestSubmitPersistenceFailure(t *testing.T) {
	t.Parallel()

	d, h := newServer(t)
	id := uuid.New()
	st := wizardState()
	st.Err = model.ErrPersistence
	d.builds.On("Submit", mock.Anything, id).Return(st, errors.Join(model.ErrPersistence, errors.New("pg down"))).Once()

	rec := do(h, http.MethodPost, "/api/v1/builds/"+id.String()+"/submit", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestCreatePreset(t *testing.T) {
	t.Parallel()

	body := `{"name":"Studio","category":"workstation","platform":"AMD","basePrice":0,"active":true,
		"components":{"cpu":"cpu-1","gpu":"gpu-1"}}`

	t.Run("blocked by missing slots returns the report", func(t *testing.T) {
		t.Parallel()

		d, h := newServer(t)
		report := &model.PresetReport{Missing: []model.Slot{model.SlotRAM}, AssemblyFee: 150}
		d.presets.On("Create", mock.Anything, mock.MatchedBy(func(dr model.PresetDraft) bool {
			return dr.ComponentIDs[model.SlotCPU] == "cpu-1" && dr.Name == "Studio"
		})).Return((*model.Preset)(nil), report, errors.Join(model.ErrValidation, errors.New("missing"))).Once()

		rec := do(h, http.MethodPost, "/api/v1/presets", body)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp struct {
			Report presetReportResponse `json:"report"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Report.Valid)
		assert.Equal(t, []string{"ram"}, resp.Report.Missing)
	})

	t.Run("unknown slot key", func(t *testing.T) {
		t.Parallel()

		_, h := newServer(t)
		rec := do(h, http.MethodPost, "/api/v1/presets",
			`{"name":"S","category":"c","platform":"AMD","components":{"fan":"x"}}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("created", func(t *testing.T) {
		t.Parallel()

		d, h := newServer(t)
		p := &model.Preset{ID: uuid.New(), Name: "Studio", ComputedPrice: 950, EffectivePrice: 950}
		d.presets.On("Create", mock.Anything, mock.Anything).Return(p, &model.PresetReport{}, nil).Once()

		rec := do(h, http.MethodPost, "/api/v1/presets", body)
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp createPresetResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, p.ID.String(), resp.Preset.ID)
		assert.True(t, resp.Report.Valid)
	})
}

func TestOrders(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	t.Run("cancel conflict", func(t *testing.T) {
		t.Parallel()

		d, h := newServer(t)
		d.orders.On("Cancel", mock.Anything, id).Return(model.ErrOrderConflict).Once()

		rec := do(h, http.MethodPost, "/api/v1/orders/"+id.String()+"/cancel", "")
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("get", func(t *testing.T) {
		t.Parallel()

		d, h := newServer(t)
		d.orders.On("OrderByID", mock.Anything, id).Return(&model.Order{
			ID: id, Owner: "alice", Status: model.StatusPending, TotalPrice: 1050,
		}, nil).Once()

		rec := do(h, http.MethodGet, "/api/v1/orders/"+id.String(), "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp orderResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "PENDING", resp.Status)
		assert.Equal(t, 1050.0, resp.TotalPrice)
	})
}

func TestListPresets(t *testing.T) {
	t.Parallel()

	d, h := newServer(t)
	d.presets.On("List", mock.Anything, model.PresetsFilter{ActiveOnly: true}).
		Return([]*model.Preset{{ID: uuid.New(), Name: "Studio"}}, nil).Once()

	rec := do(h, http.MethodGet, "/api/v1/presets?active=true", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []presetResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Studio", resp[0].Name)
}
