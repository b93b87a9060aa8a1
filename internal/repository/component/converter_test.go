package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/you-humble/btg-configurator/internal/model"
)

func TestEntityToModel_Normalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		entity ComponentEntity
		want   model.Component
	}{
		{
			name: "cpu socket stored as a list",
			entity: ComponentEntity{
				ID: "cpu-1", Name: "Ryzen", Category: "cpu",
				Price: int32(300), Stock: int64(4),
				Socket: bson.A{" AM5 "}, TDP: "65",
			},
			want: model.Component{
				ID: "cpu-1", Name: "Ryzen", Category: model.SlotCPU,
				Price: 300, Stock: 4, Socket: "AM5", TDP: 65,
			},
		},
		{
			name: "cooler socket stored as a single string",
			entity: ComponentEntity{
				ID: "cool-1", Category: "cooling", Price: 54.5,
				Socket: "AM5", Height: 37.0, CoolerType: "Air",
			},
			want: model.Component{
				ID: "cool-1", Category: model.SlotCooling, Price: 54.5,
				SupportedSockets: []string{"AM5"}, Height: 37, CoolerType: model.CoolerAir,
			},
		},
		{
			name: "case form factors stored as a list",
			entity: ComponentEntity{
				ID: "case-1", Category: "case",
				FormFactor: bson.A{"ATX", "", 42, "Micro-ATX"}, MaxGPULength: int32(330),
			},
			want: model.Component{
				ID: "case-1", Category: model.SlotCase,
				SupportedFormFactors: []string{"ATX", "Micro-ATX"}, MaxGPULength: 330,
			},
		},
		{
			name: "unparsable and missing numbers are zero",
			entity: ComponentEntity{
				ID: "psu-1", Category: "powerSupply",
				Price: "n/a", Stock: int32(-3), Wattage: nil,
			},
			want: model.Component{ID: "psu-1", Category: model.SlotPowerSupply},
		},
		{
			name: "category names are matched case-insensitively",
			entity: ComponentEntity{
				ID: "mb-1", Category: "Motherboard",
				Socket: "AM5", FormFactor: "ATX", MemoryType: " DDR5",
			},
			want: model.Component{
				ID: "mb-1", Category: model.SlotMotherboard,
				Socket: "AM5", FormFactor: "ATX", MemoryType: "DDR5",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := EntityToModel(&tt.entity)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestEntityFromModel_WritesNormalizedFields(t *testing.T) {
	t.Parallel()

	cooler := &model.Component{
		ID: "cool-1", Name: "AK620", Brand: "DeepCool ", Category: model.SlotCooling,
		Price: 64, Stock: 13, SupportedSockets: []string{"AM4", "LGA1700"},
		CoolerType: model.CoolerAir, Height: 160,
	}

	ent := EntityFromModel(cooler)

	assert.Equal(t, "deepcool", ent.BrandNorm)
	assert.Equal(t, []string{"am4", "lga1700"}, ent.SocketNorm)
	assert.Equal(t, []string{"AM4", "LGA1700"}, ent.Socket)
	assert.Nil(t, ent.Wattage)
	assert.Equal(t, 160, ent.Height)

	assert.Equal(t, cooler, EntityToModel(ent))
}

func TestBuildMongoFilter(t *testing.T) {
	t.Parallel()

	unset := bson.M{"$in": bson.A{nil, "", bson.A{}}}

	tests := []struct {
		name     string
		category model.Slot
		filter   model.CatalogFilter
		want     bson.M
	}{
		{
			name:     "category only",
			category: model.SlotGPU,
			want:     bson.M{"category": "gpu"},
		},
		{
			name:     "attributes accept documents without normalized fields",
			category: model.SlotMotherboard,
			filter:   model.CatalogFilter{Socket: "AM5", ChipsetBrand: " AMD"},
			want: bson.M{
				"category": "motherboard",
				"$and": bson.A{
					bson.M{"$or": bson.A{bson.M{"socket_norm": "am5"}, bson.M{"socket_norm": unset}}},
					bson.M{"$or": bson.A{bson.M{"chipset_brand_norm": "amd"}, bson.M{"chipset_brand_norm": unset}}},
				},
			},
		},
		{
			name:     "wattage bound lets numeric strings through",
			category: model.SlotPowerSupply,
			filter:   model.CatalogFilter{MinWattage: 501},
			want: bson.M{
				"category": "powerSupply",
				"$and": bson.A{
					bson.M{"$or": bson.A{
						bson.M{"wattage": bson.M{"$gte": 501}},
						bson.M{"wattage": bson.M{"$type": "string"}},
					}},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, BuildMongoFilter(tt.category, tt.filter))
		})
	}
}

func TestImportedDocumentsMatchFilters(t *testing.T) {
	t.Parallel()

	board := EntityToModel(&ComponentEntity{
		ID:       "mb-imported",
		Category: "motherboard",
		Socket:   bson.A{" AM5 "},
	})
	assert.True(t, model.CatalogFilter{Socket: "am5"}.Matches(*board))
	assert.False(t, model.CatalogFilter{Socket: "LGA1700"}.Matches(*board))

	psu := EntityToModel(&ComponentEntity{
		ID:       "psu-imported",
		Category: "powerSupply",
		Wattage:  "750",
	})
	assert.True(t, model.CatalogFilter{MinWattage: 501}.Matches(*psu))
	assert.False(t, model.CatalogFilter{MinWattage: 800}.Matches(*psu))
}

func TestSeedComponents(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	bySlot := make(map[model.Slot]int)
	for _, c := range SeedComponents() {
		assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true
		assert.True(t, c.Category.Valid(), c.ID)
		bySlot[c.Category]++
	}

	for _, slot := range model.DefaultSlotOrder {
		assert.Positive(t, bySlot[slot], slot.String())
	}
}
