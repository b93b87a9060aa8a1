package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/you-humble/btg-configurator/internal/compatibility"
	"github.com/you-humble/btg-configurator/internal/model"
	"github.com/you-humble/btg-configurator/internal/pricing"
	"github.com/you-humble/btg-configurator/platform/logger"
)

type PresetRepository interface {
	Create(ctx context.Context, p *model.Preset) (uuid.UUID, error)
	PresetByID(ctx context.Context, id uuid.UUID) (*model.Preset, error)
	List(ctx context.Context, f model.PresetsFilter) ([]*model.Preset, error)
}

type CatalogService interface {
	ComponentsByIDs(ctx context.Context, ids []string) (map[string]*model.Component, error)
}

type service struct {
	repo           PresetRepository
	catalog        CatalogService
	fees           pricing.Fees
	authority      model.PriceAuthority
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewPresetService(
	repo PresetRepository,
	catalog CatalogService,
	fees pricing.Fees,
	authority model.PriceAuthority,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	if !authority.Valid() {
		authority = model.PriceAuthorityComputed
	}

	return &service{
		repo:           repo,
		catalog:        catalog,
		fees:           fees,
		authority:      authority,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

// Validate resolves the draft against the catalog and evaluates every
// compatibility rule. A report with missing slots or warnings is returned
// without error; errors mean the draft could not be evaluated at all.
func (s *service) Validate(ctx context.Context, draft model.PresetDraft) (*model.PresetReport, error) {
	const op = "preset.service.Validate"
	log := logger.With(
		logger.String("preset_name", draft.Name),
		logger.Int("components", len(draft.ComponentIDs)),
	)

	sel, err := s.resolve(ctx, draft.ComponentIDs)
	if err != nil {
		log.Error(ctx, "resolve components", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.report(draft.PresetMeta, sel), nil
}

// Create stores a draft that passes exhaustive validation. The report is
// returned in every case it could be built so callers can show what blocked.
func (s *service) Create(ctx context.Context, draft model.PresetDraft) (*model.Preset, *model.PresetReport, error) {
	const op = "preset.service.Create"

	report, err := s.Validate(ctx, draft)
	if err != nil {
		return nil, nil, err
	}

	p, err := s.store(ctx, draft.PresetMeta, report)
	if err != nil {
		return nil, report, fmt.Errorf("%s: %w", op, err)
	}

	return p, report, nil
}

// CreateFromSelection stores a preset built in a curation session.
func (s *service) CreateFromSelection(ctx context.Context, meta model.PresetMeta, sel model.Selection) (*model.Preset, error) {
	const op = "preset.service.CreateFromSelection"

	p, err := s.store(ctx, meta, s.report(meta, sel))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

func (s *service) PresetByID(ctx context.Context, id uuid.UUID) (*model.Preset, error) {
	const op = "preset.service.PresetByID"
	log := logger.With(
		logger.String("preset_id", id.String()),
	)

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	p, err := s.repo.PresetByID(ctx, id)
	if err != nil {
		log.Error(ctx, "repository preset by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.price(p)

	return p, nil
}

func (s *service) List(ctx context.Context, f model.PresetsFilter) ([]*model.Preset, error) {
	const op = "preset.service.List"
	log := logger.With(
		logger.Bool("active_only", f.ActiveOnly),
		logger.String("category", f.Category),
	)

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	out, err := s.repo.List(ctx, f)
	if err != nil {
		log.Error(ctx, "repository list presets", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for _, p := range out {
		s.price(p)
	}

	return out, nil
}

func (s *service) store(ctx context.Context, meta model.PresetMeta, report *model.PresetReport) (*model.Preset, error) {
	log := logger.With(
		logger.String("preset_name", meta.Name),
		logger.String("category", meta.Category),
	)

	if err := validateMeta(meta); err != nil {
		log.Error(ctx, "validation: preset meta", logger.ErrorF(err))
		return nil, err
	}
	if len(report.Missing) > 0 {
		log.Error(ctx, "validation: incomplete preset", logger.Int("missing", len(report.Missing)))
		return nil, errors.Join(model.ErrValidation, fmt.Errorf("missing slots %v", report.Missing))
	}
	if len(report.Warnings) > 0 {
		log.Error(ctx, "preset has compatibility warnings", logger.Int("warnings", len(report.Warnings)))
		return nil, errors.Join(model.ErrIncompatible, fmt.Errorf("%d compatibility warnings", len(report.Warnings)))
	}

	p := &model.Preset{
		Name:           strings.TrimSpace(meta.Name),
		Description:    meta.Description,
		Category:       strings.TrimSpace(meta.Category),
		BasePrice:      meta.BasePrice,
		Active:         meta.Active,
		Platform:       meta.Platform,
		Selection:      report.Selection,
		ComputedPrice:  report.ComputedPrice,
		EffectivePrice: report.EffectivePrice,
	}

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	id, err := s.repo.Create(ctx, p)
	if err != nil {
		log.Error(ctx, "repository create preset", logger.ErrorF(err))
		return nil, err
	}
	p.ID = id

	return p, nil
}

// resolve maps the draft ids onto catalog components. A blank id leaves the
// slot empty; an id the catalog does not know is an error naming the slot.
func (s *service) resolve(ctx context.Context, ids map[model.Slot]string) (model.Selection, error) {
	for slot := range ids {
		if !slot.Valid() {
			return nil, errors.Join(model.ErrValidation, fmt.Errorf("unknown slot %q", slot))
		}
	}

	wanted := lo.PickBy(lo.MapValues(ids, func(id string, _ model.Slot) string {
		return strings.TrimSpace(id)
	}), func(_ model.Slot, id string) bool { return id != "" })

	found, err := s.catalog.ComponentsByIDs(ctx, lo.Uniq(lo.Values(wanted)))
	if err != nil {
		return nil, err
	}

	sel := model.NewSelection()
	for _, slot := range model.DefaultSlotOrder {
		id, ok := wanted[slot]
		if !ok {
			continue
		}

		c, ok := found[id]
		if !ok {
			return nil, errors.Join(model.ErrComponentNotFound,
				fmt.Errorf("slot %s: component %q is not in the catalog", slot, id))
		}
		if c.Category != slot {
			return nil, errors.Join(model.ErrValidation,
				fmt.Errorf("component %s is a %s, not a %s", c.ID, c.Category, slot))
		}
		sel[slot] = c
	}

	return sel, nil
}

func (s *service) report(meta model.PresetMeta, sel model.Selection) *model.PresetReport {
	fee := s.fees.ForPreset(meta.Category)
	computed, effective := pricing.PresetPrice(s.authority, model.Preset{
		BasePrice: meta.BasePrice,
		Selection: sel,
	}, fee)

	return &model.PresetReport{
		Selection:      sel,
		Missing:        sel.Missing(model.DefaultSlotOrder),
		Warnings:       compatibility.DetectWarnings(sel, model.ValidationExhaustive),
		AssemblyFee:    fee,
		ComputedPrice:  computed,
		EffectivePrice: effective,
	}
}

func (s *service) price(p *model.Preset) {
	p.ComputedPrice, p.EffectivePrice = pricing.PresetPrice(s.authority, *p, s.fees.ForPreset(p.Category))
}

func validateMeta(meta model.PresetMeta) error {
	var errs []error
	if strings.TrimSpace(meta.Name) == "" {
		errs = append(errs, errors.New("name must be non-empty"))
	}
	if strings.TrimSpace(meta.Category) == "" {
		errs = append(errs, errors.New("category must be non-empty"))
	}
	if meta.BasePrice < 0 {
		errs = append(errs, errors.New("basePrice must be non-negative"))
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{model.ErrValidation}, errs...)...)
	}
	return nil
}
