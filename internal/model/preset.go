package model

import (
	"time"

	"github.com/google/uuid"
)

// PriceAuthority decides which number is the price of a preset.
type PriceAuthority string

const (
	// PriceAuthorityComputed prices a preset as its category fee plus the
	// sum of its component prices.
	PriceAuthorityComputed PriceAuthority = "computed"
	// PriceAuthorityBasePrice uses the administrator-entered base price,
	// falling back to the computed price when none was entered.
	PriceAuthorityBasePrice PriceAuthority = "base_price"
)

func (a PriceAuthority) Valid() bool {
	return a == PriceAuthorityComputed || a == PriceAuthorityBasePrice
}

type Preset struct {
	ID          uuid.UUID
	Name        string
	Description string
	// Free-form category tag, e.g. "gaming" or "workstation".
	Category string
	// Administrator-entered price. May differ from the computed price.
	BasePrice float64
	Active    bool
	Platform  string
	Selection Selection
	CreatedAt time.Time
	UpdatedAt *time.Time

	// Derived on read from the current fee schedule and price authority.
	ComputedPrice  float64
	EffectivePrice float64
}

// PresetMeta is everything about a preset except its components.
type PresetMeta struct {
	Name        string
	Description string
	Category    string
	BasePrice   float64
	Active      bool
	Platform    string
}

// PresetDraft references components by id, as submitted by an administrator.
type PresetDraft struct {
	PresetMeta
	ComponentIDs map[Slot]string
}

type PresetReport struct {
	Selection      Selection
	Missing        []Slot
	Warnings       []Warning
	AssemblyFee    float64
	ComputedPrice  float64
	EffectivePrice float64
}

func (r PresetReport) Valid() bool { return len(r.Missing) == 0 && len(r.Warnings) == 0 }

type PresetsFilter struct {
	ActiveOnly bool
	Category   string
}
