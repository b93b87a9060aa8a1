package pricing

import (
	"math"
	"strings"

	"github.com/you-humble/btg-configurator/internal/model"
)

const DefaultAssemblyFee = 250.0

// Fees is the assembly fee schedule.
type Fees struct {
	// Fee charged on every wizard and edit build.
	Wizard float64
	// Fee charged on a preset whose category has no entry in ByCategory.
	PresetDefault float64
	// Preset fee per lower-cased category tag.
	ByCategory map[string]float64
}

// ForPreset returns the assembly fee of a preset in category.
func (f Fees) ForPreset(category string) float64 {
	if fee, ok := f.ByCategory[strings.ToLower(strings.TrimSpace(category))]; ok {
		return fee
	}
	return f.PresetDefault
}

// ComputeTotal is the assembly fee plus the price of every filled slot,
// summed in slot order so equal selections give bit-identical totals.
func ComputeTotal(sel model.Selection, assemblyFee float64) float64 {
	total := assemblyFee
	for _, slot := range model.DefaultSlotOrder {
		total += price(sel.Get(slot))
	}
	return total
}

// ComputeDelta prices updated as the total of original plus the price
// difference of every slot whose component was replaced.
func ComputeDelta(original, updated model.Selection, assemblyFee float64) float64 {
	return ApplyDelta(ComputeTotal(original, assemblyFee), original, updated)
}

// ApplyDelta adds the price difference of the replaced slots to a stored
// total. Untouched slots keep the price they had when the total was stored.
func ApplyDelta(originalTotal float64, original, updated model.Selection) float64 {
	total := originalTotal
	for _, slot := range model.DefaultSlotOrder {
		before, after := original.Get(slot), updated.Get(slot)
		if sameComponent(before, after) {
			continue
		}
		total += price(after) - price(before)
	}
	return total
}

// PresetPrice returns the computed and the effective price of a preset.
func PresetPrice(authority model.PriceAuthority, preset model.Preset, assemblyFee float64) (computed, effective float64) {
	computed = ComputeTotal(preset.Selection, assemblyFee)
	if authority == model.PriceAuthorityBasePrice && preset.BasePrice > 0 {
		return computed, preset.BasePrice
	}
	return computed, computed
}

// Round2 rounds to cents for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func sameComponent(a, b *model.Component) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID == b.ID
}

func price(c *model.Component) float64 {
	if c == nil {
		return 0
	}
	return c.Price
}
