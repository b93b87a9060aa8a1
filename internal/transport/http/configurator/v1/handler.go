package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/you-humble/btg-configurator/internal/model"
	"github.com/you-humble/btg-configurator/internal/sequencer"
)

const maxBodyBytes = 1 << 20

type CatalogService interface {
	ListComponents(ctx context.Context, category model.Slot, f model.CatalogFilter) ([]model.Component, error)
}

type BuildService interface {
	StartWizard(ctx context.Context, owner, platform string) (uuid.UUID, sequencer.State, error)
	StartEdit(ctx context.Context, owner string, orderID uuid.UUID) (uuid.UUID, sequencer.State, error)
	StartPreset(ctx context.Context, owner string, meta model.PresetMeta) (uuid.UUID, sequencer.State, error)
	Get(id uuid.UUID) (sequencer.State, error)
	Select(ctx context.Context, id uuid.UUID, slot model.Slot, componentID string) (sequencer.State, error)
	Back(ctx context.Context, id uuid.UUID) (sequencer.State, error)
	Forward(ctx context.Context, id uuid.UUID) (sequencer.State, error)
	Reset(ctx context.Context, id uuid.UUID) (sequencer.State, error)
	Submit(ctx context.Context, id uuid.UUID) (sequencer.State, error)
	Delete(id uuid.UUID) error
}

type PresetService interface {
	Validate(ctx context.Context, draft model.PresetDraft) (*model.PresetReport, error)
	Create(ctx context.Context, draft model.PresetDraft) (*model.Preset, *model.PresetReport, error)
	List(ctx context.Context, f model.PresetsFilter) ([]*model.Preset, error)
}

type OrderService interface {
	OrderByID(ctx context.Context, ordID uuid.UUID) (*model.Order, error)
	Cancel(ctx context.Context, ordID uuid.UUID) error
}

type handler struct {
	catalog  CatalogService
	builds   BuildService
	presets  PresetService
	orders   OrderService
	validate *validator.Validate
}

func NewConfiguratorHandler(
	catalog CatalogService,
	builds BuildService,
	presets PresetService,
	orders OrderService,
) *handler {
	return &handler{
		catalog:  catalog,
		builds:   builds,
		presets:  presets,
		orders:   orders,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Routes mounts the v1 API on r.
func (h *handler) Routes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog/{category}", h.ListComponents)

		r.Route("/builds", func(r chi.Router) {
			r.Post("/", h.StartWizard)
			r.Post("/edit", h.StartEdit)
			r.Post("/preset", h.StartPreset)

			r.Route("/{buildID}", func(r chi.Router) {
				r.Get("/", h.GetBuild)
				r.Delete("/", h.DeleteBuild)
				r.Put("/slots/{slot}", h.Select)
				r.Post("/back", h.transition(h.builds.Back))
				r.Post("/forward", h.transition(h.builds.Forward))
				r.Post("/reset", h.transition(h.builds.Reset))
				r.Post("/submit", h.transition(h.builds.Submit))
			})
		})

		r.Route("/presets", func(r chi.Router) {
			r.Get("/", h.ListPresets)
			r.Post("/", h.CreatePreset)
			r.Post("/validate", h.ValidatePreset)
		})

		r.Route("/orders/{orderID}", func(r chi.Router) {
			r.Get("/", h.GetOrder)
			r.Post("/cancel", h.CancelOrder)
		})
	})
}

func (h *handler) ListComponents(w http.ResponseWriter, r *http.Request) {
	category, ok := model.ParseSlot(chi.URLParam(r, "category"))
	if !ok {
		writeError(w, r, fmt.Errorf("%w: unknown category", model.ErrValidation), nil)
		return
	}

	q := r.URL.Query()
	f := model.CatalogFilter{
		Brand:        q.Get("brand"),
		Socket:       q.Get("socket"),
		ChipsetBrand: q.Get("chipsetBrand"),
		MemoryType:   q.Get("memoryType"),
		FormFactor:   q.Get("formFactor"),
	}
	if raw := q.Get("minWattage"); raw != "" {
		watts, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: minWattage must be an integer", model.ErrValidation), nil)
			return
		}
		f.MinWattage = watts
	}

	list, err := h.catalog.ListComponents(r.Context(), category, f)
	if err != nil {
		writeError(w, r, err, nil)
		return
	}

	writeJSON(w, r, http.StatusOK, componentsToResponse(list))
}

func (h *handler) StartWizard(w http.ResponseWriter, r *http.Request) {
	var req startWizardRequest
	if !h.decode(w, r, &req) {
		return
	}

	id, st, err := h.builds.StartWizard(r.Context(), req.Owner, req.Platform)
	if err != nil {
		writeError(w, r, err, nil)
		return
	}

	writeJSON(w, r, http.StatusCreated, stateToResponse(id, st))
}

func (h *handler) StartEdit(w http.ResponseWriter, r *http.Request) {
	var req startEditRequest
	if !h.decode(w, r, &req) {
		return
	}

	id, st, err := h.builds.StartEdit(r.Context(), req.Owner, uuid.MustParse(req.OrderID))
	if err != nil {
		writeError(w, r, err, nil)
		return
	}

	writeJSON(w, r, http.StatusCreated, stateToResponse(id, st))
}

func (h *handler) StartPreset(w http.ResponseWriter, r *http.Request) {
	var req startPresetRequest
	if !h.decode(w, r, &req) {
		return
	}

	id, st, err := h.builds.StartPreset(r.Context(), req.Owner, req.toModel())
	if err != nil {
		writeError(w, r, err, nil)
		return
	}

	writeJSON(w, r, http.StatusCreated, stateToResponse(id, st))
}

func (h *handler) GetBuild(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "buildID")
	if !ok {
		return
	}

	st, err := h.builds.Get(id)
	if err != nil {
		writeError(w, r, err, nil)
		return
	}

	writeJSON(w, r, http.StatusOK, stateToResponse(id, st))
}

func (h *handler) DeleteBuild(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "buildID")
	if !ok {
		return
	}

	if err := h.builds.Delete(id); err != nil {
		writeError(w, r, err, nil)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) Select(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "buildID")
	if !ok {
		return
	}
	slot, ok := model.ParseSlot(chi.URLParam(r, "slot"))
	if !ok {
		writeError(w, r, fmt.Errorf("%w: unknown slot", model.ErrValidation), nil)
		return
	}

	var req selectRequest
	if !h.decode(w, r, &req) {
		return
	}

	st, err := h.builds.Select(r.Context(), id, slot, req.ComponentID)
	h.writeState(w, r, id, st, err)
}

// transition serves the body-less state transitions of a build.
func (h *handler) transition(fn func(context.Context, uuid.UUID) (sequencer.State, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathUUID(w, r, "buildID")
		if !ok {
			return
		}

		st, err := fn(r.Context(), id)
		h.writeState(w, r, id, st, err)
	}
}

func (h *handler) writeState(w http.ResponseWriter, r *http.Request, id uuid.UUID, st sequencer.State, err error) {
	if err != nil {
		var state *stateResponse
		if !errors.Is(err, model.ErrSessionNotFound) {
			state = stateToResponse(id, st)
		}
		writeError(w, r, err, state)
		return
	}

	writeJSON(w, r, http.StatusOK, stateToResponse(id, st))
}

func (h *handler) ValidatePreset(w http.ResponseWriter, r *http.Request) {
	draft, ok := h.decodeDraft(w, r)
	if !ok {
		return
	}

	report, err := h.presets.Validate(r.Context(), draft)
	if err != nil {
		writeError(w, r, err, nil)
		return
	}

	writeJSON(w, r, http.StatusOK, reportToResponse(report))
}

func (h *handler) CreatePreset(w http.ResponseWriter, r *http.Request) {
	draft, ok := h.decodeDraft(w, r)
	if !ok {
		return
	}

	p, report, err := h.presets.Create(r.Context(), draft)
	if err != nil {
		code := statusFromError(err)
		resp := errorResponse{Code: code, Message: err.Error()}
		if report != nil {
			writeJSON(w, r, code, struct {
				errorResponse
				Report *presetReportResponse `json:"report"`
			}{resp, reportToResponse(report)})
			return
		}
		writeError(w, r, err, nil)
		return
	}

	writeJSON(w, r, http.StatusCreated, createPresetResponse{
		Preset: presetToResponse(p),
		Report: reportToResponse(report),
	})
}

func (h *handler) ListPresets(w http.ResponseWriter, r *http.Request) {
	f := model.PresetsFilter{Category: r.URL.Query().Get("category")}
	if raw := r.URL.Query().Get("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: active must be a boolean", model.ErrValidation), nil)
			return
		}
		f.ActiveOnly = active
	}

	list, err := h.presets.List(r.Context(), f)
	if err != nil {
		writeError(w, r, err, nil)
		return
	}

	out := make([]*presetResponse, 0, len(list))
	for _, p := range list {
		out = append(out, presetToResponse(p))
	}
	writeJSON(w, r, http.StatusOK, out)
}

func (h *handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "orderID")
	if !ok {
		return
	}

	ord, err := h.orders.OrderByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err, nil)
		return
	}

	writeJSON(w, r, http.StatusOK, orderToResponse(ord))
}

func (h *handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "orderID")
	if !ok {
		return
	}

	if err := h.orders.Cancel(r.Context(), id); err != nil {
		writeError(w, r, err, nil)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) decodeDraft(w http.ResponseWriter, r *http.Request) (model.PresetDraft, bool) {
	var req presetDraftRequest
	if !h.decode(w, r, &req) {
		return model.PresetDraft{}, false
	}

	draft := model.PresetDraft{
		PresetMeta:   req.toModel(),
		ComponentIDs: make(map[model.Slot]string, len(req.Components)),
	}
	for raw, id := range req.Components {
		slot, ok := model.ParseSlot(raw)
		if !ok {
			writeError(w, r, fmt.Errorf("%w: unknown slot %q", model.ErrValidation, raw), nil)
			return model.PresetDraft{}, false
		}
		draft.ComponentIDs[slot] = strings.TrimSpace(id)
	}

	return draft, true
}

// decode reads a JSON body into dst and validates it. On failure the 400
// response is already written.
func (h *handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		writeError(w, r, fmt.Errorf("%w: malformed body: %v", model.ErrValidation, err), nil)
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		writeError(w, r, fmt.Errorf("%w: %v", model.ErrValidation, err), nil)
		return false
	}

	return true
}

func pathUUID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: invalid %s", model.ErrValidation, param), nil)
		return uuid.Nil, false
	}
	return id, true
}
