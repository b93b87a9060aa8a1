package compatibility

import (
	"github.com/samber/lo"

	"github.com/you-humble/btg-configurator/internal/model"
)

// CandidatePools holds the components offered for each slot.
type CandidatePools map[model.Slot][]model.Component

// QueryFilter derives the catalog predicates for slot from the current
// selection. A predicate is only set when the selection carries the
// attribute it depends on.
func QueryFilter(slot model.Slot, sel model.Selection, platform string) model.CatalogFilter {
	cpu := sel.Get(model.SlotCPU)
	mb := sel.Get(model.SlotMotherboard)

	switch slot {
	case model.SlotCPU:
		return model.CatalogFilter{Brand: platform}
	case model.SlotMotherboard:
		f := model.CatalogFilter{ChipsetBrand: platform}
		if cpu != nil {
			f.Socket = cpu.Socket
		}
		return f
	case model.SlotRAM:
		if mb != nil {
			return model.CatalogFilter{MemoryType: mb.MemoryType}
		}
	case model.SlotPowerSupply:
		return model.CatalogFilter{MinWattage: RequiredWattage(cpu, sel.Get(model.SlotGPU))}
	case model.SlotCase:
		if mb != nil {
			return model.CatalogFilter{FormFactor: mb.FormFactor}
		}
	case model.SlotCooling:
		if cpu != nil {
			return model.CatalogFilter{Socket: cpu.Socket}
		}
	}

	return model.CatalogFilter{}
}

// Restrict keeps the components of comps that belong to slot and satisfy
// the predicates QueryFilter derives for it.
func Restrict(slot model.Slot, sel model.Selection, platform string, comps []model.Component) []model.Component {
	f := QueryFilter(slot, sel, platform)

	return lo.Filter(comps, func(c model.Component, _ int) bool {
		return c.Category == slot && f.Matches(c)
	})
}

// FilterCandidates restricts a per-slot catalog listing to what the
// selection allows.
func FilterCandidates(sel model.Selection, catalog map[model.Slot][]model.Component, platform string) CandidatePools {
	pools := make(CandidatePools, len(catalog))
	for slot, comps := range catalog {
		pools[slot] = Restrict(slot, sel, platform, comps)
	}
	return pools
}

// Allowed checks the hard rules: motherboard socket, memory type and
// cooler socket support against what is already selected.
func Allowed(slot model.Slot, sel model.Selection, c model.Component) bool {
	cpu := sel.Get(model.SlotCPU)
	mb := sel.Get(model.SlotMotherboard)

	switch slot {
	case model.SlotMotherboard:
		return cpu == nil || socketsMatch(cpu, &c)
	case model.SlotRAM:
		return mb == nil || memoryMatches(mb, &c)
	case model.SlotCooling:
		return cpu == nil || coolerFits(cpu, &c)
	default:
		return true
	}
}

// Prune drops selections that can no longer coexist with their upstream
// slot: a motherboard needs a cpu with its socket, memory needs a
// motherboard of its type and a cooler needs a cpu whose socket it supports.
func Prune(sel model.Selection) (model.Selection, []model.Slot) {
	out := sel.Clone()
	var dropped []model.Slot

	drop := func(slot model.Slot) {
		delete(out, slot)
		dropped = append(dropped, slot)
	}

	cpu := out.Get(model.SlotCPU)
	if mb := out.Get(model.SlotMotherboard); mb != nil && (cpu == nil || !socketsMatch(cpu, mb)) {
		drop(model.SlotMotherboard)
	}

	mb := out.Get(model.SlotMotherboard)
	if ram := out.Get(model.SlotRAM); ram != nil && (mb == nil || !memoryMatches(mb, ram)) {
		drop(model.SlotRAM)
	}

	if cooler := out.Get(model.SlotCooling); cooler != nil && (cpu == nil || !coolerFits(cpu, cooler)) {
		drop(model.SlotCooling)
	}

	return out, dropped
}

// An attribute missing on either side never makes a pair incompatible.

func socketsMatch(cpu, mb *model.Component) bool {
	if cpu.Socket == "" || mb.Socket == "" {
		return true
	}
	return model.SameAttr(cpu.Socket, mb.Socket)
}

func memoryMatches(mb, ram *model.Component) bool {
	if mb.MemoryType == "" || ram.MemoryType == "" {
		return true
	}
	return model.SameAttr(mb.MemoryType, ram.MemoryType)
}

func coolerFits(cpu, cooler *model.Component) bool {
	sockets := cooler.Sockets()
	if cpu.Socket == "" || len(sockets) == 0 {
		return true
	}
	return model.ContainsAttr(sockets, cpu.Socket)
}
