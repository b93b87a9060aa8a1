package sequencer

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/btg-configurator/internal/compatibility"
	"github.com/you-humble/btg-configurator/internal/delivery"
	"github.com/you-humble/btg-configurator/internal/model"
	"github.com/you-humble/btg-configurator/internal/pricing"
	"github.com/you-humble/btg-configurator/platform/logger"
)

const defaultLookupTimeout = 3 * time.Second

type Catalog interface {
	ListComponents(ctx context.Context, category model.Slot, filter model.CatalogFilter) ([]model.Component, error)
}

type SessionStore interface {
	Load(ctx context.Context, owner, platform string) (*model.Session, error)
	Save(ctx context.Context, owner, platform string, sess model.Session) error
}

type Submitter interface {
	Submit(ctx context.Context, sub model.Submission) (string, error)
}

type Config struct {
	Owner       string
	Platform    string
	AssemblyFee float64
	// Slot order of the wizard. Defaults to model.DefaultSlotOrder.
	Slots []model.Slot
	Mode  Mode

	// Edit mode only: the order being changed.
	OriginalOrderID   uuid.UUID
	OriginalSelection model.Selection
	OriginalTotal     float64

	// Preset mode only: components to start from.
	Initial model.Selection

	LookupTimeout time.Duration
	Now           func() time.Time
}

// Sequencer drives one build session. Its state is guarded by mu, which is
// never held while the catalog is queried.
type Sequencer struct {
	mu        sync.Mutex
	persistMu sync.Mutex

	cfg       Config
	catalog   Catalog
	store     SessionStore
	submitter Submitter

	step        int
	sel         model.Selection
	pools       compatibility.CandidatePools
	warnings    []model.Warning
	price       float64
	delivery    model.DeliveryEstimate
	version     uint64
	err         error
	submittedID string

	applied  map[model.Slot]model.CatalogFilter
	inflight map[model.Slot]*lookup
}

// New creates a session. store may be nil for sessions that are not resumable.
func New(cfg Config, catalog Catalog, store SessionStore, submitter Submitter) *Sequencer {
	if len(cfg.Slots) == 0 {
		cfg.Slots = model.DefaultSlotOrder
	}
	if !cfg.Mode.Valid() {
		cfg.Mode = ModeWizard
	}
	if cfg.LookupTimeout <= 0 {
		cfg.LookupTimeout = defaultLookupTimeout
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	s := &Sequencer{
		cfg:       cfg,
		catalog:   catalog,
		store:     store,
		submitter: submitter,
		pools:     make(compatibility.CandidatePools, len(cfg.Slots)),
		applied:   make(map[model.Slot]model.CatalogFilter, len(cfg.Slots)),
		inflight:  make(map[model.Slot]*lookup, len(cfg.Slots)),
	}

	switch cfg.Mode {
	case ModeEdit:
		s.sel = s.own(cfg.OriginalSelection)
	case ModePreset:
		s.sel = s.own(cfg.Initial)
	default:
		s.sel = model.NewSelection()
	}
	s.step = s.firstMissing()
	s.deriveLocked()

	return s
}

func (s *Sequencer) Config() Config { return s.cfg }

// Start loads the candidate pools of every slot.
func (s *Sequencer) Start(ctx context.Context) State {
	s.refresh(ctx)
	return s.State()
}

func (s *Sequencer) Select(ctx context.Context, slot model.Slot, c model.Component) (State, error) {
	const op = "sequencer.Select"
	log := logger.With(
		logger.String("owner", s.cfg.Owner),
		logger.String("mode", string(s.cfg.Mode)),
		logger.String("slot", slot.String()),
		logger.String("component_id", c.ID),
	)

	s.mu.Lock()

	var err error
	switch {
	case !slices.Contains(s.cfg.Slots, slot):
		err = errors.Join(model.ErrValidation, fmt.Errorf("slot %q is not part of this build", slot))
	case c.Category != slot:
		err = errors.Join(model.ErrValidation, fmt.Errorf("component %s is a %s, not a %s", c.ID, c.Category, slot))
	case s.cfg.Mode == ModeWizard && s.summaryLocked():
		err = model.ErrReadOnly
	case s.cfg.Mode != ModePreset && !compatibility.Allowed(slot, s.sel, c):
		err = errors.Join(model.ErrIncompatible, fmt.Errorf("component %s does not fit the current selection", c.ID))
	}
	if err != nil {
		s.err = fmt.Errorf("%s: %w", op, err)
		s.mu.Unlock()
		log.Warn(ctx, "selection refused", logger.ErrorF(err))
		return s.State(), s.err
	}

	if cur := s.sel.Get(slot); cur != nil && cur.ID == c.ID {
		s.err = nil
		advanced := s.advanceLocked(slot)
		s.mu.Unlock()
		if advanced {
			s.persist(ctx)
		}
		return s.State(), nil
	}

	s.sel[slot] = &c
	if s.cfg.Mode != ModePreset {
		var dropped []model.Slot
		s.sel, dropped = compatibility.Prune(s.sel)
		if len(dropped) > 0 {
			log.Info(ctx, "dropped incompatible selections", logger.Any("slots", dropped))
		}
		if s.cfg.Mode == ModeWizard {
			for _, d := range dropped {
				if i := slices.Index(s.cfg.Slots, d); i >= 0 && i < s.step {
					s.step = i
				}
			}
		}
	}

	s.advanceLocked(slot)
	s.version++
	s.err = nil
	s.submittedID = ""
	s.deriveLocked()
	s.mu.Unlock()

	s.refresh(ctx)
	s.persist(ctx)

	return s.State(), nil
}

func (s *Sequencer) GoBack(ctx context.Context) State {
	s.mu.Lock()
	if s.step > 0 {
		s.step--
	}
	s.err = nil
	s.deriveLocked()
	s.mu.Unlock()

	s.persist(ctx)
	return s.State()
}

// GoForward moves past the current slot once it is filled.
func (s *Sequencer) GoForward(ctx context.Context) (State, error) {
	const op = "sequencer.GoForward"

	s.mu.Lock()
	if s.summaryLocked() {
		s.mu.Unlock()
		return s.State(), nil
	}

	slot := s.cfg.Slots[s.step]
	if !s.sel.Filled(slot) {
		s.err = fmt.Errorf("%s: %w", op, errors.Join(model.ErrValidation, fmt.Errorf("slot %s is empty", slot)))
		s.mu.Unlock()
		return s.State(), s.err
	}

	s.step++
	s.err = nil
	s.deriveLocked()
	s.mu.Unlock()

	s.persist(ctx)
	return s.State(), nil
}

// Resume restores the selection and step of the owner's last session.
// Price and delivery are recomputed from the restored components.
func (s *Sequencer) Resume(ctx context.Context) (State, error) {
	const op = "sequencer.Resume"

	if s.store == nil {
		return s.State(), fmt.Errorf("%s: %w", op, model.ErrSessionNotFound)
	}

	snap, err := s.store.Load(ctx, s.cfg.Owner, s.cfg.Platform)
	if err != nil {
		if !errors.Is(err, model.ErrSessionNotFound) {
			logger.Error(ctx, "load session", logger.String("owner", s.cfg.Owner), logger.ErrorF(err))
		}
		return s.State(), fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.sel = s.own(snap.Selection)
	if s.cfg.Mode != ModePreset {
		s.sel, _ = compatibility.Prune(s.sel)
	}
	s.step = min(max(snap.Step, 0), len(s.cfg.Slots))
	if s.cfg.Mode == ModeWizard {
		s.step = min(s.step, s.firstMissing())
	}
	s.version++
	s.err = nil
	s.deriveLocked()
	s.mu.Unlock()

	s.refresh(ctx)

	return s.State(), nil
}

// Reset clears every slot and returns to the first step.
func (s *Sequencer) Reset(ctx context.Context) State {
	s.mu.Lock()
	s.resetLocked()
	s.mu.Unlock()

	s.refresh(ctx)
	s.persist(ctx)
	return s.State()
}

// Submit hands a complete selection to the submitter and resets the session
// on success. On failure the selection is kept. A wizard orders only from
// the summary step.
func (s *Sequencer) Submit(ctx context.Context) (State, error) {
	const op = "sequencer.Submit"
	log := logger.With(
		logger.String("owner", s.cfg.Owner),
		logger.String("mode", string(s.cfg.Mode)),
	)

	s.mu.Lock()
	if missing := s.sel.Missing(s.cfg.Slots); len(missing) > 0 {
		s.err = fmt.Errorf("%s: %w", op, errors.Join(model.ErrValidation, fmt.Errorf("empty slots: %v", missing)))
		s.mu.Unlock()
		submissionsTotal.WithLabelValues(string(s.cfg.Mode), "incomplete").Inc()
		return s.State(), s.err
	}

	if s.cfg.Mode == ModeWizard && !s.summaryLocked() {
		s.err = fmt.Errorf("%s: %w", op, errors.Join(model.ErrValidation,
			fmt.Errorf("order from the summary step, current step is %d", s.step)))
		s.mu.Unlock()
		submissionsTotal.WithLabelValues(string(s.cfg.Mode), "not_at_summary").Inc()
		return s.State(), s.err
	}

	if s.cfg.Mode == ModePreset {
		if w := compatibility.DetectWarnings(s.sel, model.ValidationExhaustive); len(w) > 0 {
			s.warnings = w
			s.err = fmt.Errorf("%s: %w: %d warnings", op, model.ErrIncompatible, len(w))
			s.mu.Unlock()
			submissionsTotal.WithLabelValues(string(s.cfg.Mode), "incompatible").Inc()
			return s.State(), s.err
		}
	}

	sub := model.Submission{
		Kind:            s.cfg.Mode.submissionKind(),
		Owner:           s.cfg.Owner,
		Platform:        s.cfg.Platform,
		Selection:       s.sel.Clone(),
		Total:           s.price,
		Delivery:        s.delivery,
		OriginalOrderID: s.cfg.OriginalOrderID,
	}
	s.mu.Unlock()

	id, err := s.submitter.Submit(ctx, sub)
	if err != nil {
		log.Error(ctx, "submit", logger.ErrorF(err))
		submissionsTotal.WithLabelValues(string(s.cfg.Mode), "failed").Inc()

		s.mu.Lock()
		s.err = fmt.Errorf("%s: %w", op, errors.Join(model.ErrPersistence, err))
		s.mu.Unlock()
		return s.State(), s.err
	}

	log.Info(ctx, "submitted", logger.String("id", id), logger.Float64("total", sub.Total))
	submissionsTotal.WithLabelValues(string(s.cfg.Mode), "ok").Inc()

	s.mu.Lock()
	s.resetLocked()
	s.submittedID = id
	s.mu.Unlock()

	s.refresh(ctx)
	s.persist(ctx)

	return s.State(), nil
}

func (s *Sequencer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{
		Mode:           s.cfg.Mode,
		Platform:       s.cfg.Platform,
		Step:           s.step,
		Summary:        s.summaryLocked(),
		Selection:      s.sel.Clone(),
		Missing:        s.sel.Missing(s.cfg.Slots),
		CandidatePools: make(compatibility.CandidatePools, len(s.pools)),
		Warnings:       slices.Clone(s.warnings),
		Price:          s.price,
		Delivery:       s.delivery,
		Version:        s.version,
		Err:            s.err,
		SubmittedID:    s.submittedID,
	}
	if !st.Summary {
		st.CurrentSlot = s.cfg.Slots[s.step]
	}
	for slot, pool := range s.pools {
		st.CandidatePools[slot] = pool
	}

	return st
}

func (s *Sequencer) resetLocked() {
	s.sel = model.NewSelection()
	s.step = 0
	s.warnings = nil
	s.err = nil
	s.submittedID = ""
	s.version++
	s.deriveLocked()
}

func (s *Sequencer) deriveLocked() {
	if s.cfg.Mode == ModeEdit {
		s.price = pricing.ApplyDelta(s.cfg.OriginalTotal, s.cfg.OriginalSelection, s.sel)
	} else {
		s.price = pricing.ComputeTotal(s.sel, s.cfg.AssemblyFee)
	}
	s.delivery = delivery.Estimate(s.sel, s.cfg.Now())

	switch {
	case s.cfg.Mode == ModePreset:
		s.warnings = compatibility.DetectWarnings(s.sel, model.ValidationExhaustive)
	case s.summaryLocked():
		s.warnings = compatibility.DetectWarnings(s.sel, model.ValidationSequential)
	default:
		s.warnings = nil
	}
}

// advanceLocked moves a wizard past slot when slot is the current step.
func (s *Sequencer) advanceLocked(slot model.Slot) bool {
	if s.cfg.Mode != ModeWizard || s.summaryLocked() || s.cfg.Slots[s.step] != slot {
		return false
	}
	s.step++
	s.deriveLocked()
	return true
}

func (s *Sequencer) summaryLocked() bool { return s.step >= len(s.cfg.Slots) }

func (s *Sequencer) firstMissing() int {
	for i, slot := range s.cfg.Slots {
		if !s.sel.Filled(slot) {
			return i
		}
	}
	return len(s.cfg.Slots)
}

// own copies the components of sel that belong to one of the session's
// slots and carry the matching category.
func (s *Sequencer) own(sel model.Selection) model.Selection {
	out := model.NewSelection()
	for _, slot := range s.cfg.Slots {
		if c := sel.Get(slot); c != nil && c.Category == slot {
			cp := *c
			out[slot] = &cp
		}
	}
	return out
}

func (s *Sequencer) persist(ctx context.Context) {
	if s.store == nil {
		return
	}

	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	snap := model.Session{Step: s.step, Selection: s.sel.Clone()}
	s.mu.Unlock()

	if err := s.store.Save(ctx, s.cfg.Owner, s.cfg.Platform, snap); err != nil {
		logger.Error(ctx, "save session", logger.String("owner", s.cfg.Owner), logger.ErrorF(err))

		s.mu.Lock()
		s.err = fmt.Errorf("sequencer.persist: %w", errors.Join(model.ErrPersistence, err))
		s.mu.Unlock()
	}
}
