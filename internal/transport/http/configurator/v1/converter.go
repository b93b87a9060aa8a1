package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/you-humble/btg-configurator/internal/converter"
	"github.com/you-humble/btg-configurator/internal/model"
	"github.com/you-humble/btg-configurator/internal/pricing"
	"github.com/you-humble/btg-configurator/internal/sequencer"
)

func stateToResponse(id uuid.UUID, st sequencer.State) *stateResponse {
	resp := &stateResponse{
		Mode:           string(st.Mode),
		Platform:       st.Platform,
		Step:           st.Step,
		CurrentSlot:    st.CurrentSlot.String(),
		Summary:        st.Summary,
		Selection:      selectionToResponse(st.Selection),
		Missing:        slotsToStrings(st.Missing),
		CandidatePools: make(map[string][]converter.ComponentRecord, len(st.CandidatePools)),
		Warnings:       warningsToResponse(st.Warnings),
		Price:          pricing.Round2(st.Price),
		Delivery:       deliveryToResponse(st.Delivery),
		Version:        st.Version,
		SubmittedID:    st.SubmittedID,
	}
	if id != uuid.Nil {
		resp.ID = id.String()
	}
	if st.Err != nil {
		resp.Error = st.Err.Error()
	}
	for slot, pool := range st.CandidatePools {
		resp.CandidatePools[slot.String()] = componentsToResponse(pool)
	}

	return resp
}

func componentsToResponse(list []model.Component) []converter.ComponentRecord {
	return lo.Map(list, func(c model.Component, _ int) converter.ComponentRecord {
		return converter.ComponentToRecord(&c)
	})
}

func selectionToResponse(sel model.Selection) map[string]converter.ComponentRecord {
	out := make(map[string]converter.ComponentRecord, len(sel))
	for slot, c := range sel {
		if c != nil {
			out[slot.String()] = converter.ComponentToRecord(c)
		}
	}
	return out
}

func slotsToStrings(slots []model.Slot) []string {
	return lo.Map(slots, func(s model.Slot, _ int) string { return s.String() })
}

func warningsToResponse(ws []model.Warning) []warningResponse {
	return lo.Map(ws, func(w model.Warning, _ int) warningResponse {
		return warningResponse{Code: string(w.Code), Slots: slotsToStrings(w.Slots), Message: w.Message}
	})
}

func deliveryToResponse(d model.DeliveryEstimate) deliveryResponse {
	resp := deliveryResponse{
		EstimatedDays: d.EstimatedDays,
		AllAvailable:  d.AllAvailable,
		UnavailableComponents: lo.Map(d.UnavailableComponents, func(u model.UnavailableComponent, _ int) unavailableResponse {
			return unavailableResponse{Slot: u.Slot.String(), Name: u.Name}
		}),
	}
	if !d.DeliveryDate.IsZero() {
		resp.DeliveryDate = d.DeliveryDate.Format(time.DateOnly)
	}
	return resp
}

func reportToResponse(r *model.PresetReport) *presetReportResponse {
	return &presetReportResponse{
		Valid:          r.Valid(),
		Selection:      selectionToResponse(r.Selection),
		Missing:        slotsToStrings(r.Missing),
		Warnings:       warningsToResponse(r.Warnings),
		AssemblyFee:    pricing.Round2(r.AssemblyFee),
		ComputedPrice:  pricing.Round2(r.ComputedPrice),
		EffectivePrice: pricing.Round2(r.EffectivePrice),
	}
}

func presetToResponse(p *model.Preset) *presetResponse {
	resp := &presetResponse{
		ID:             p.ID.String(),
		Name:           p.Name,
		Description:    p.Description,
		Category:       p.Category,
		Platform:       p.Platform,
		Active:         p.Active,
		BasePrice:      pricing.Round2(p.BasePrice),
		ComputedPrice:  pricing.Round2(p.ComputedPrice),
		EffectivePrice: pricing.Round2(p.EffectivePrice),
		Components:     selectionToResponse(p.Selection),
	}
	if !p.CreatedAt.IsZero() {
		resp.CreatedAt = p.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

func orderToResponse(o *model.Order) *orderResponse {
	resp := &orderResponse{
		ID:         o.ID.String(),
		Owner:      o.Owner,
		Platform:   o.Platform,
		Status:     string(o.Status),
		TotalPrice: pricing.Round2(o.TotalPrice),
		Delivery:   deliveryToResponse(o.Delivery),
		Components: selectionToResponse(o.Selection),
		CreatedAt:  o.CreatedAt.Format(time.RFC3339),
	}
	if o.UpdatedAt != nil {
		resp.UpdatedAt = o.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

func (r presetMetaRequest) toModel() model.PresetMeta {
	return model.PresetMeta{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		BasePrice:   r.BasePrice,
		Active:      r.Active,
		Platform:    r.Platform,
	}
}
