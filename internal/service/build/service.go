package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/btg-configurator/internal/model"
	"github.com/you-humble/btg-configurator/internal/pricing"
	"github.com/you-humble/btg-configurator/internal/sequencer"
	"github.com/you-humble/btg-configurator/platform/logger"
)

type CatalogService interface {
	Component(ctx context.Context, id string) (*model.Component, error)
	ListComponents(ctx context.Context, category model.Slot, f model.CatalogFilter) ([]model.Component, error)
}

type OrderService interface {
	OrderByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	Submit(ctx context.Context, sub model.Submission) (string, error)
}

type PresetService interface {
	CreateFromSelection(ctx context.Context, meta model.PresetMeta, sel model.Selection) (*model.Preset, error)
}

type SessionStore interface {
	Load(ctx context.Context, owner, platform string) (*model.Session, error)
	Save(ctx context.Context, owner, platform string, sess model.Session) error
}

type Settings struct {
	Fees          pricing.Fees
	LookupTimeout time.Duration
	Now           func() time.Time
}

type service struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*sequencer.Sequencer

	catalog  CatalogService
	orders   OrderService
	presets  PresetService
	store    SessionStore
	settings Settings
}

func NewBuildService(
	catalog CatalogService,
	orders OrderService,
	presets PresetService,
	store SessionStore,
	settings Settings,
) *service {
	return &service{
		sessions: make(map[uuid.UUID]*sequencer.Sequencer),
		catalog:  catalog,
		orders:   orders,
		presets:  presets,
		store:    store,
		settings: settings,
	}
}

// StartWizard resumes the owner's stored build for platform, or starts an
// empty one when nothing was stored.
func (s *service) StartWizard(ctx context.Context, owner, platform string) (uuid.UUID, sequencer.State, error) {
	const op = "build.service.StartWizard"
	log := logger.With(
		logger.String("owner", owner),
		logger.String("platform", platform),
	)

	owner, platform = strings.TrimSpace(owner), strings.TrimSpace(platform)
	if owner == "" || platform == "" {
		log.Error(ctx, "validation: empty owner or platform")
		return uuid.Nil, sequencer.State{}, errors.Join(model.ErrValidation, errors.New("owner and platform must be non-empty"))
	}

	seq := sequencer.New(s.config(owner, platform, sequencer.ModeWizard, s.settings.Fees.Wizard),
		s.catalog, s.store, s.orders)

	st, err := seq.Resume(ctx)
	switch {
	case err == nil:
		log.Info(ctx, "build resumed", logger.Int("step", st.Step))
	case errors.Is(err, model.ErrSessionNotFound):
		st = seq.Start(ctx)
	default:
		log.Error(ctx, "resume build", logger.ErrorF(err))
		return uuid.Nil, sequencer.State{}, fmt.Errorf("%s: %w", op, errors.Join(model.ErrPersistence, err))
	}

	return s.register(seq), st, nil
}

// StartEdit opens a pending order of owner for changes.
func (s *service) StartEdit(ctx context.Context, owner string, orderID uuid.UUID) (uuid.UUID, sequencer.State, error) {
	const op = "build.service.StartEdit"
	log := logger.With(
		logger.String("owner", owner),
		logger.String("order_id", orderID.String()),
	)

	ord, err := s.orders.OrderByID(ctx, orderID)
	if err != nil {
		log.Error(ctx, "order by id", logger.ErrorF(err))
		return uuid.Nil, sequencer.State{}, fmt.Errorf("%s: %w", op, err)
	}
	if ord.Owner != strings.TrimSpace(owner) || ord.Status != model.StatusPending {
		log.Error(ctx, "order conflict", logger.String("status", string(ord.Status)))
		return uuid.Nil, sequencer.State{}, fmt.Errorf("%s: %w", op, model.ErrOrderConflict)
	}

	cfg := s.config(ord.Owner, ord.Platform, sequencer.ModeEdit, s.settings.Fees.Wizard)
	cfg.OriginalOrderID = ord.ID
	cfg.OriginalSelection = ord.Selection
	cfg.OriginalTotal = ord.TotalPrice

	seq := sequencer.New(cfg, s.catalog, nil, s.orders)

	return s.register(seq), seq.Start(ctx), nil
}

// StartPreset opens a curation session. Submitting it stores a preset
// described by meta.
func (s *service) StartPreset(ctx context.Context, owner string, meta model.PresetMeta) (uuid.UUID, sequencer.State, error) {
	log := logger.With(
		logger.String("owner", owner),
		logger.String("preset_name", meta.Name),
	)

	if strings.TrimSpace(meta.Name) == "" || strings.TrimSpace(meta.Platform) == "" {
		log.Error(ctx, "validation: empty preset name or platform")
		return uuid.Nil, sequencer.State{}, errors.Join(model.ErrValidation, errors.New("name and platform must be non-empty"))
	}

	seq := sequencer.New(
		s.config(owner, meta.Platform, sequencer.ModePreset, s.settings.Fees.ForPreset(meta.Category)),
		s.catalog, nil, presetSubmitter{presets: s.presets, meta: meta},
	)

	return s.register(seq), seq.Start(ctx), nil
}

func (s *service) Get(id uuid.UUID) (sequencer.State, error) {
	seq, err := s.session(id)
	if err != nil {
		return sequencer.State{}, err
	}
	return seq.State(), nil
}

// Select resolves componentID in the catalog and puts it into slot.
func (s *service) Select(ctx context.Context, id uuid.UUID, slot model.Slot, componentID string) (sequencer.State, error) {
	const op = "build.service.Select"

	seq, err := s.session(id)
	if err != nil {
		return sequencer.State{}, err
	}

	c, err := s.catalog.Component(ctx, componentID)
	if err != nil {
		return seq.State(), fmt.Errorf("%s: %w", op, err)
	}

	return seq.Select(ctx, slot, *c)
}

func (s *service) Back(ctx context.Context, id uuid.UUID) (sequencer.State, error) {
	seq, err := s.session(id)
	if err != nil {
		return sequencer.State{}, err
	}
	return seq.GoBack(ctx), nil
}

func (s *service) Forward(ctx context.Context, id uuid.UUID) (sequencer.State, error) {
	seq, err := s.session(id)
	if err != nil {
		return sequencer.State{}, err
	}
	return seq.GoForward(ctx)
}

func (s *service) Reset(ctx context.Context, id uuid.UUID) (sequencer.State, error) {
	seq, err := s.session(id)
	if err != nil {
		return sequencer.State{}, err
	}
	return seq.Reset(ctx), nil
}

func (s *service) Submit(ctx context.Context, id uuid.UUID) (sequencer.State, error) {
	seq, err := s.session(id)
	if err != nil {
		return sequencer.State{}, err
	}
	return seq.Submit(ctx)
}

// Delete drops the in-memory session. A stored wizard build stays resumable.
func (s *service) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq, ok := s.sessions[id]
	if !ok {
		return model.ErrSessionNotFound
	}
	delete(s.sessions, id)
	activeSessions.WithLabelValues(string(seq.Config().Mode)).Dec()

	return nil
}

func (s *service) config(owner, platform string, mode sequencer.Mode, fee float64) sequencer.Config {
	return sequencer.Config{
		Owner:         owner,
		Platform:      platform,
		AssemblyFee:   fee,
		Mode:          mode,
		LookupTimeout: s.settings.LookupTimeout,
		Now:           s.settings.Now,
	}
}

func (s *service) register(seq *sequencer.Sequencer) uuid.UUID {
	id := uuid.New()

	s.mu.Lock()
	s.sessions[id] = seq
	s.mu.Unlock()

	activeSessions.WithLabelValues(string(seq.Config().Mode)).Inc()
	return id
}

func (s *service) session(id uuid.UUID) (*sequencer.Sequencer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seq, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return seq, nil
}

type presetSubmitter struct {
	presets PresetService
	meta    model.PresetMeta
}

func (p presetSubmitter) Submit(ctx context.Context, sub model.Submission) (string, error) {
	meta := p.meta
	meta.Platform = sub.Platform

	preset, err := p.presets.CreateFromSelection(ctx, meta, sub.Selection)
	if err != nil {
		return "", err
	}
	return preset.ID.String(), nil
}
