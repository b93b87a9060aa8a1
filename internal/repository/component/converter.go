package repository

import (
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/you-humble/btg-configurator/internal/model"
)

func EntityToModel(e *ComponentEntity) *model.Component {
	if e == nil {
		return nil
	}

	category, _ := model.ParseSlot(e.Category)

	out := &model.Component{
		ID:                 e.ID,
		Name:               e.Name,
		Brand:              e.Brand,
		Category:           category,
		Description:        e.Description,
		Price:              asFloat(e.Price),
		Stock:              max(int64(asFloat(e.Stock)), 0),
		ChipsetBrand:       strings.TrimSpace(e.ChipsetBrand),
		MemoryType:         strings.TrimSpace(e.MemoryType),
		TDP:                asInt(e.TDP),
		Wattage:            asInt(e.Wattage),
		Length:             asInt(e.Length),
		MaxGPULength:       asInt(e.MaxGPULength),
		MaxCPUCoolerHeight: asInt(e.MaxCPUCoolerHeight),
		Height:             asInt(e.Height),
		CoolerType:         model.CoolerType(model.NormalizeAttr(e.CoolerType)),
	}

	sockets := asStrings(e.Socket)
	if category == model.SlotCooling {
		out.SupportedSockets = sockets
	} else if len(sockets) > 0 {
		out.Socket = sockets[0]
	}

	formFactors := asStrings(e.FormFactor)
	if category == model.SlotCase {
		out.SupportedFormFactors = formFactors
	} else if len(formFactors) > 0 {
		out.FormFactor = formFactors[0]
	}

	return out
}

func EntityFromModel(c *model.Component) *ComponentEntity {
	if c == nil {
		return nil
	}

	out := &ComponentEntity{
		ID:               c.ID,
		Name:             c.Name,
		Brand:            c.Brand,
		BrandNorm:        model.NormalizeAttr(c.Brand),
		Category:         c.Category.String(),
		Description:      c.Description,
		Price:            c.Price,
		Stock:            c.Stock,
		ChipsetBrand:     c.ChipsetBrand,
		ChipsetBrandNorm: model.NormalizeAttr(c.ChipsetBrand),
		MemoryType:       c.MemoryType,
		MemoryTypeNorm:   model.NormalizeAttr(c.MemoryType),
		SocketNorm:       normalizeAll(c.Sockets()),
		FormFactorNorm:   normalizeAll(c.FormFactors()),
		CoolerType:       string(c.CoolerType),

		TDP:                positive(c.TDP),
		Wattage:            positive(c.Wattage),
		Length:             positive(c.Length),
		MaxGPULength:       positive(c.MaxGPULength),
		MaxCPUCoolerHeight: positive(c.MaxCPUCoolerHeight),
		Height:             positive(c.Height),
	}

	if len(c.SupportedSockets) > 0 {
		out.Socket = c.SupportedSockets
	} else if c.Socket != "" {
		out.Socket = c.Socket
	}
	if len(c.SupportedFormFactors) > 0 {
		out.FormFactor = c.SupportedFormFactors
	} else if c.FormFactor != "" {
		out.FormFactor = c.FormFactor
	}

	return out
}

// BuildMongoFilter narrows a category listing by the normalized fields.
// Documents written by other tools carry no *_norm fields and may store
// wattage as a string, so those pass the query and are decided by
// CatalogFilter.Matches after normalization.
func BuildMongoFilter(category model.Slot, f model.CatalogFilter) bson.M {
	q := bson.M{"category": category.String()}

	var and bson.A
	attr := func(field, value string) {
		if value == "" {
			return
		}
		and = append(and, bson.M{"$or": bson.A{
			bson.M{field: model.NormalizeAttr(value)},
			bson.M{field: bson.M{"$in": bson.A{nil, "", bson.A{}}}},
		}})
	}

	attr("brand_norm", f.Brand)
	attr("socket_norm", f.Socket)
	attr("chipset_brand_norm", f.ChipsetBrand)
	attr("memory_type_norm", f.MemoryType)
	attr("form_factor_norm", f.FormFactor)

	if f.MinWattage > 0 {
		and = append(and, bson.M{"$or": bson.A{
			bson.M{"wattage": bson.M{"$gte": f.MinWattage}},
			bson.M{"wattage": bson.M{"$type": "string"}},
		}})
	}

	if len(and) > 0 {
		q["$and"] = and
	}

	return q
}

func normalizeAll(list []string) []string {
	if len(list) == 0 {
		return nil
	}
	return lo.Map(list, func(s string, _ int) string { return model.NormalizeAttr(s) })
}

// positive keeps unknown numeric attributes out of the document.
func positive(v int) any {
	if v <= 0 {
		return nil
	}
	return v
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case int:
		return float64(n)
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return n
	case bson.Decimal128:
		f, err := strconv.ParseFloat(n.String(), 64)
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func asInt(v any) int {
	return int(math.Round(asFloat(v)))
}

func asStrings(v any) []string {
	var raw []string

	switch s := v.(type) {
	case string:
		raw = []string{s}
	case []string:
		raw = s
	case bson.A:
		raw = lo.FilterMap(s, func(item any, _ int) (string, bool) {
			str, ok := item.(string)
			return str, ok
		})
	case []any:
		raw = lo.FilterMap(s, func(item any, _ int) (string, bool) {
			str, ok := item.(string)
			return str, ok
		})
	}

	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
