package converter

import (
	"encoding/json"
	"fmt"

	"github.com/you-humble/btg-configurator/internal/model"
)

// ComponentRecord is the stored form of a selected component. Orders and
// sessions keep the whole record so a later catalog price change does not
// alter what was chosen.
type ComponentRecord struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Brand                string   `json:"brand,omitempty"`
	Category             string   `json:"category"`
	Price                float64  `json:"price"`
	Stock                int64    `json:"stock"`
	Description          string   `json:"description,omitempty"`
	Socket               string   `json:"socket,omitempty"`
	SupportedSockets     []string `json:"supportedSockets,omitempty"`
	ChipsetBrand         string   `json:"chipsetBrand,omitempty"`
	MemoryType           string   `json:"memoryType,omitempty"`
	FormFactor           string   `json:"formFactor,omitempty"`
	SupportedFormFactors []string `json:"supportedFormFactors,omitempty"`
	TDP                  int      `json:"tdp,omitempty"`
	Wattage              int      `json:"wattage,omitempty"`
	Length               int      `json:"length,omitempty"`
	MaxGPULength         int      `json:"maxGpuLength,omitempty"`
	MaxCPUCoolerHeight   int      `json:"maxCpuCoolerHeight,omitempty"`
	Height               int      `json:"height,omitempty"`
	CoolerType           string   `json:"coolerType,omitempty"`
}

func ComponentToRecord(c *model.Component) ComponentRecord {
	return ComponentRecord{
		ID:                   c.ID,
		Name:                 c.Name,
		Brand:                c.Brand,
		Category:             c.Category.String(),
		Price:                c.Price,
		Stock:                c.Stock,
		Description:          c.Description,
		Socket:               c.Socket,
		SupportedSockets:     c.SupportedSockets,
		ChipsetBrand:         c.ChipsetBrand,
		MemoryType:           c.MemoryType,
		FormFactor:           c.FormFactor,
		SupportedFormFactors: c.SupportedFormFactors,
		TDP:                  c.TDP,
		Wattage:              c.Wattage,
		Length:               c.Length,
		MaxGPULength:         c.MaxGPULength,
		MaxCPUCoolerHeight:   c.MaxCPUCoolerHeight,
		Height:               c.Height,
		CoolerType:           string(c.CoolerType),
	}
}

func RecordToComponent(r ComponentRecord) (*model.Component, error) {
	category, ok := model.ParseSlot(r.Category)
	if !ok {
		return nil, fmt.Errorf("component %s: unknown category %q", r.ID, r.Category)
	}

	return &model.Component{
		ID:                   r.ID,
		Name:                 r.Name,
		Brand:                r.Brand,
		Category:             category,
		Price:                r.Price,
		Stock:                r.Stock,
		Description:          r.Description,
		Socket:               r.Socket,
		SupportedSockets:     r.SupportedSockets,
		ChipsetBrand:         r.ChipsetBrand,
		MemoryType:           r.MemoryType,
		FormFactor:           r.FormFactor,
		SupportedFormFactors: r.SupportedFormFactors,
		TDP:                  r.TDP,
		Wattage:              r.Wattage,
		Length:               r.Length,
		MaxGPULength:         r.MaxGPULength,
		MaxCPUCoolerHeight:   r.MaxCPUCoolerHeight,
		Height:               r.Height,
		CoolerType:           model.CoolerType(r.CoolerType),
	}, nil
}

// MarshalSelection encodes the filled slots as a JSON object keyed by slot.
func MarshalSelection(sel model.Selection) ([]byte, error) {
	out := make(map[string]ComponentRecord, len(sel))
	for slot, c := range sel {
		if c != nil {
			out[slot.String()] = ComponentToRecord(c)
		}
	}

	return json.Marshal(out)
}

func UnmarshalSelection(data []byte) (model.Selection, error) {
	var raw map[string]ComponentRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode selection: %w", err)
	}

	sel := model.NewSelection()
	for key, rec := range raw {
		slot, ok := model.ParseSlot(key)
		if !ok {
			return nil, fmt.Errorf("decode selection: unknown slot %q", key)
		}
		c, err := RecordToComponent(rec)
		if err != nil {
			return nil, fmt.Errorf("decode selection: %w", err)
		}
		sel[slot] = c
	}

	return sel, nil
}
