package model

import "strings"

// Slot is both a component category and the selection position it fills.
type Slot string

const (
	SlotCPU         Slot = "cpu"
	SlotMotherboard Slot = "motherboard"
	SlotRAM         Slot = "ram"
	SlotGPU         Slot = "gpu"
	SlotStorage     Slot = "storage"
	SlotPowerSupply Slot = "powerSupply"
	SlotCase        Slot = "case"
	SlotCooling     Slot = "cooling"
)

// DefaultSlotOrder is the order the consumer wizard walks through.
var DefaultSlotOrder = []Slot{
	SlotCPU,
	SlotMotherboard,
	SlotRAM,
	SlotGPU,
	SlotStorage,
	SlotPowerSupply,
	SlotCase,
	SlotCooling,
}

func (s Slot) Valid() bool {
	switch s {
	case SlotCPU, SlotMotherboard, SlotRAM, SlotGPU,
		SlotStorage, SlotPowerSupply, SlotCase, SlotCooling:
		return true
	default:
		return false
	}
}

func (s Slot) String() string { return string(s) }

// ParseSlot accepts the canonical names case-insensitively.
func ParseSlot(raw string) (Slot, bool) {
	raw = strings.TrimSpace(raw)
	for _, s := range DefaultSlotOrder {
		if strings.EqualFold(raw, string(s)) {
			return s, true
		}
	}
	return "", false
}

type CoolerType string

const (
	CoolerUnknown CoolerType = ""
	CoolerAir     CoolerType = "air"
	CoolerLiquid  CoolerType = "liquid"
)

// Component is a normalized catalog record. Numeric attributes a document
// does not carry are 0, multi-value attributes are always lists.
type Component struct {
	// Catalog identifier.
	ID string
	// Human-readable name.
	Name string
	// Vendor, e.g. "AMD" or "Intel" for processors.
	Brand string
	// Category the component belongs to.
	Category Slot
	// Unit price.
	Price float64
	// Units in stock. Zero means not available from stock.
	Stock int64
	// Free-form marketing description.
	Description string

	// Socket of a cpu or motherboard.
	Socket string
	// Sockets a cooler can be mounted on.
	SupportedSockets []string
	// Vendor of the motherboard chipset.
	ChipsetBrand string
	// Memory generation of a motherboard or memory kit, e.g. "DDR5".
	MemoryType string
	// Board form factor of a motherboard.
	FormFactor string
	// Board form factors a case accepts.
	SupportedFormFactors []string

	// Thermal design power in watts (cpu, gpu).
	TDP int
	// Rated output in watts (power supply).
	Wattage int
	// Card length in millimetres (gpu).
	Length int
	// Clearances in millimetres (case).
	MaxGPULength       int
	MaxCPUCoolerHeight int
	// Cooler height in millimetres, air coolers only.
	Height     int
	CoolerType CoolerType
}

func (c *Component) InStock() bool { return c != nil && c.Stock > 0 }

// Sockets returns the sockets the component has or supports.
func (c *Component) Sockets() []string {
	if len(c.SupportedSockets) > 0 {
		return c.SupportedSockets
	}
	if c.Socket != "" {
		return []string{c.Socket}
	}
	return nil
}

// FormFactors returns the board form factors the component is or accepts.
func (c *Component) FormFactors() []string {
	if len(c.SupportedFormFactors) > 0 {
		return c.SupportedFormFactors
	}
	if c.FormFactor != "" {
		return []string{c.FormFactor}
	}
	return nil
}

// CatalogFilter holds the attribute predicates a catalog lookup supports.
// Zero values mean "no predicate". It is comparable on purpose: the
// sequencer uses it as the identity of a candidate pool.
type CatalogFilter struct {
	Brand        string
	Socket       string
	ChipsetBrand string
	MemoryType   string
	FormFactor   string
	MinWattage   int
}

func (f CatalogFilter) Empty() bool { return f == CatalogFilter{} }

// Matches reports whether c satisfies every predicate of f. String
// predicates are case-insensitive and ignore surrounding whitespace.
func (f CatalogFilter) Matches(c Component) bool {
	if f.Brand != "" && !SameAttr(f.Brand, c.Brand) {
		return false
	}
	if f.Socket != "" && !ContainsAttr(c.Sockets(), f.Socket) {
		return false
	}
	if f.ChipsetBrand != "" && !SameAttr(f.ChipsetBrand, c.ChipsetBrand) {
		return false
	}
	if f.MemoryType != "" && !SameAttr(f.MemoryType, c.MemoryType) {
		return false
	}
	if f.FormFactor != "" && !ContainsAttr(c.FormFactors(), f.FormFactor) {
		return false
	}
	if f.MinWattage > 0 && c.Wattage < f.MinWattage {
		return false
	}
	return true
}

// NormalizeAttr is the canonical form used for every string attribute comparison.
func NormalizeAttr(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func SameAttr(a, b string) bool { return NormalizeAttr(a) == NormalizeAttr(b) }

func ContainsAttr(list []string, v string) bool {
	v = NormalizeAttr(v)
	for _, item := range list {
		if NormalizeAttr(item) == v {
			return true
		}
	}
	return false
}
