package sequencer

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/you-humble/btg-configurator/internal/compatibility"
	"github.com/you-humble/btg-configurator/internal/model"
	"github.com/you-humble/btg-configurator/platform/logger"
)

type lookup struct {
	slot    model.Slot
	filter  model.CatalogFilter
	version uint64
	ctx     context.Context
	cancel  context.CancelFunc
}

type lookupResult struct {
	*lookup
	comps    []model.Component
	fallback bool
	err      error
}

// refresh re-issues the lookup of every slot whose applied filter no longer
// matches the selection and applies the answers that are still current.
func (s *Sequencer) refresh(ctx context.Context) {
	s.mu.Lock()
	pending := s.issueLocked(ctx)
	s.mu.Unlock()

	if len(pending) == 0 {
		return
	}

	results := make([]lookupResult, len(pending))
	var g errgroup.Group
	for i, l := range pending {
		g.Go(func() error {
			results[i] = s.fetch(l)
			return nil
		})
	}
	_ = g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, res := range results {
		s.applyLocked(ctx, res)
	}
}

func (s *Sequencer) issueLocked(ctx context.Context) []*lookup {
	var pending []*lookup

	for _, slot := range s.cfg.Slots {
		filter := compatibility.QueryFilter(slot, s.sel, s.cfg.Platform)
		if applied, ok := s.applied[slot]; ok && applied == filter {
			continue
		}

		if prev, ok := s.inflight[slot]; ok {
			prev.cancel()
		}

		lctx, cancel := context.WithTimeout(ctx, s.cfg.LookupTimeout)
		l := &lookup{
			slot:    slot,
			filter:  filter,
			version: s.version,
			ctx:     lctx,
			cancel:  cancel,
		}
		s.inflight[slot] = l
		pending = append(pending, l)
	}

	return pending
}

func (s *Sequencer) fetch(l *lookup) lookupResult {
	start := time.Now()
	defer func() {
		lookupDuration.WithLabelValues(l.slot.String()).Observe(time.Since(start).Seconds())
	}()

	comps, err := s.catalog.ListComponents(l.ctx, l.slot, l.filter)
	if err == nil || l.slot != model.SlotPowerSupply || l.filter.Empty() {
		return lookupResult{lookup: l, comps: comps, err: err}
	}

	logger.Warn(l.ctx, "filtered power supply lookup failed, falling back to the full list",
		logger.Int("min_wattage", l.filter.MinWattage),
		logger.ErrorF(err),
	)
	comps, err = s.catalog.ListComponents(l.ctx, l.slot, model.CatalogFilter{})
	return lookupResult{lookup: l, comps: comps, fallback: true, err: err}
}

func (s *Sequencer) applyLocked(ctx context.Context, res lookupResult) {
	const op = "sequencer.refresh"
	slot := res.slot.String()

	res.cancel()
	current := s.inflight[res.slot] == res.lookup
	if current {
		delete(s.inflight, res.slot)
	}

	if !current || res.version != s.version {
		lookupsTotal.WithLabelValues(slot, outcomeStale).Inc()
		logger.Debug(ctx, "discarding stale lookup",
			logger.String("slot", slot),
			logger.Uint64("issued_version", res.version),
			logger.Uint64("version", s.version),
		)
		return
	}

	if res.err != nil {
		lookupsTotal.WithLabelValues(slot, outcomeError).Inc()
		logger.Error(ctx, "catalog lookup", logger.String("slot", slot), logger.ErrorF(res.err))
		s.err = fmt.Errorf("%s: %s: %w: %v", op, slot, model.ErrCatalogLookup, res.err)
		return
	}

	if res.fallback {
		lookupsTotal.WithLabelValues(slot, outcomeFallback).Inc()
		s.pools[res.slot] = lo.Filter(res.comps, func(c model.Component, _ int) bool {
			return c.Category == res.slot
		})
	} else {
		lookupsTotal.WithLabelValues(slot, outcomeOK).Inc()
		s.pools[res.slot] = compatibility.Restrict(res.slot, s.sel, s.cfg.Platform, res.comps)
	}
	s.applied[res.slot] = res.filter
}
