package repository

import (
	"context"
	"fmt"

	"github.com/you-humble/btg-configurator/internal/model"
)

type BatchCreator interface {
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, comps []*model.Component) error
}

// ComponentsBootstrap seeds an empty catalog with a small AMD and Intel
// assortment. A catalog that already holds documents is left alone.
func ComponentsBootstrap(ctx context.Context, c BatchCreator) error {
	const op = "repository.ComponentsBootstrap"

	n, err := c.Count(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n > 0 {
		return nil
	}

	return c.CreateBatch(ctx, SeedComponents())
}

func SeedComponents() []*model.Component {
	return []*model.Component{
		// Processors
		{
			ID: "cpu-ryzen5-7600", Name: "AMD Ryzen 5 7600", Brand: "AMD", Category: model.SlotCPU,
			Price: 199.90, Stock: 25, Socket: "AM5", TDP: 65,
			Description: "6 cores, 12 threads, boost up to 5.1 GHz.",
		},
		{
			ID: "cpu-ryzen7-7800x3d", Name: "AMD Ryzen 7 7800X3D", Brand: "AMD", Category: model.SlotCPU,
			Price: 389.00, Stock: 8, Socket: "AM5", TDP: 120,
			Description: "8 cores with 3D V-Cache for gaming.",
		},
		{
			ID: "cpu-ryzen5-5600", Name: "AMD Ryzen 5 5600", Brand: "AMD", Category: model.SlotCPU,
			Price: 119.00, Stock: 0, Socket: "AM4", TDP: 65,
		},
		{
			ID: "cpu-i5-14600k", Name: "Intel Core i5-14600K", Brand: "Intel", Category: model.SlotCPU,
			Price: 289.00, Stock: 14, Socket: "LGA1700", TDP: 125,
		},
		{
			ID: "cpu-i7-14700k", Name: "Intel Core i7-14700K", Brand: "Intel", Category: model.SlotCPU,
			Price: 399.00, Stock: 5, Socket: "LGA1700", TDP: 125,
		},

		// Motherboards
		{
			ID: "mb-b650-tomahawk", Name: "MSI MAG B650 Tomahawk", Brand: "MSI", Category: model.SlotMotherboard,
			Price: 209.00, Stock: 11, Socket: "AM5", ChipsetBrand: "AMD", MemoryType: "DDR5", FormFactor: "ATX",
		},
		{
			ID: "mb-a620m", Name: "ASRock A620M Pro RS", Brand: "ASRock", Category: model.SlotMotherboard,
			Price: 99.00, Stock: 20, Socket: "AM5", ChipsetBrand: "AMD", MemoryType: "DDR5", FormFactor: "Micro-ATX",
		},
		{
			ID: "mb-b550-itx", Name: "Gigabyte B550I Aorus Pro AX", Brand: "Gigabyte", Category: model.SlotMotherboard,
			Price: 179.00, Stock: 3, Socket: "AM4", ChipsetBrand: "AMD", MemoryType: "DDR4", FormFactor: "Mini-ITX",
		},
		{
			ID: "mb-z790-a", Name: "ASUS Prime Z790-A", Brand: "ASUS", Category: model.SlotMotherboard,
			Price: 279.00, Stock: 7, Socket: "LGA1700", ChipsetBrand: "Intel", MemoryType: "DDR5", FormFactor: "ATX",
		},
		{
			ID: "mb-b760m-ddr4", Name: "MSI PRO B760M-A DDR4", Brand: "MSI", Category: model.SlotMotherboard,
			Price: 129.00, Stock: 0, Socket: "LGA1700", ChipsetBrand: "Intel", MemoryType: "DDR4", FormFactor: "Micro-ATX",
		},

		// Memory
		{
			ID: "ram-ddr5-32-6000", Name: "Kingston Fury Beast 32GB DDR5-6000", Brand: "Kingston", Category: model.SlotRAM,
			Price: 109.00, Stock: 40, MemoryType: "DDR5",
		},
		{
			ID: "ram-ddr5-64-5600", Name: "Corsair Vengeance 64GB DDR5-5600", Brand: "Corsair", Category: model.SlotRAM,
			Price: 199.00, Stock: 6, MemoryType: "DDR5",
		},
		{
			ID: "ram-ddr4-16-3200", Name: "Crucial 16GB DDR4-3200", Brand: "Crucial", Category: model.SlotRAM,
			Price: 39.00, Stock: 55, MemoryType: "DDR4",
		},

		// Graphics cards
		{
			ID: "gpu-rtx4060", Name: "NVIDIA GeForce RTX 4060", Brand: "NVIDIA", Category: model.SlotGPU,
			Price: 299.00, Stock: 18, TDP: 115, Length: 240,
		},
		{
			ID: "gpu-rx7800xt", Name: "AMD Radeon RX 7800 XT", Brand: "AMD", Category: model.SlotGPU,
			Price: 499.00, Stock: 4, TDP: 263, Length: 322,
		},
		{
			ID: "gpu-rtx4080s", Name: "NVIDIA GeForce RTX 4080 Super", Brand: "NVIDIA", Category: model.SlotGPU,
			Price: 999.00, Stock: 0, TDP: 320, Length: 357,
		},

		// Storage
		{
			ID: "ssd-990pro-1tb", Name: "Samsung 990 Pro 1TB", Brand: "Samsung", Category: model.SlotStorage,
			Price: 109.00, Stock: 30,
		},
		{
			ID: "ssd-sn770-2tb", Name: "WD Black SN770 2TB", Brand: "Western Digital", Category: model.SlotStorage,
			Price: 129.00, Stock: 12,
		},

		// Power supplies
		{
			ID: "psu-550-bronze", Name: "be quiet! System Power 10 550W", Brand: "be quiet!", Category: model.SlotPowerSupply,
			Price: 59.00, Stock: 22, Wattage: 550,
		},
		{
			ID: "psu-750-gold", Name: "Corsair RM750e", Brand: "Corsair", Category: model.SlotPowerSupply,
			Price: 99.00, Stock: 15, Wattage: 750,
		},
		{
			ID: "psu-1000-gold", Name: "Seasonic Focus GX-1000", Brand: "Seasonic", Category: model.SlotPowerSupply,
			Price: 179.00, Stock: 2, Wattage: 1000,
		},

		// Cases
		{
			ID: "case-lancool216", Name: "Lian Li Lancool 216", Brand: "Lian Li", Category: model.SlotCase,
			Price: 99.00, Stock: 9, SupportedFormFactors: []string{"ATX", "Micro-ATX", "Mini-ITX"},
			MaxGPULength: 392, MaxCPUCoolerHeight: 180,
		},
		{
			ID: "case-nr200p", Name: "Cooler Master NR200P", Brand: "Cooler Master", Category: model.SlotCase,
			Price: 89.00, Stock: 6, SupportedFormFactors: []string{"Mini-ITX"},
			MaxGPULength: 330, MaxCPUCoolerHeight: 155,
		},
		{
			ID: "case-pop-mini", Name: "Fractal Design Pop Mini Air", Brand: "Fractal Design", Category: model.SlotCase,
			Price: 79.00, Stock: 0, SupportedFormFactors: []string{"Micro-ATX", "Mini-ITX"},
			MaxGPULength: 315, MaxCPUCoolerHeight: 170,
		},

		// Cooling
		{
			ID: "cool-ak620", Name: "DeepCool AK620", Brand: "DeepCool", Category: model.SlotCooling,
			Price: 64.00, Stock: 13, CoolerType: model.CoolerAir, Height: 160,
			SupportedSockets: []string{"AM4", "AM5", "LGA1700"},
		},
		{
			ID: "cool-nh-l9a", Name: "Noctua NH-L9a-AM5", Brand: "Noctua", Category: model.SlotCooling,
			Price: 54.00, Stock: 7, CoolerType: model.CoolerAir, Height: 37,
			SupportedSockets: []string{"AM5"},
		},
		{
			ID: "cool-arctic-lf3-280", Name: "Arctic Liquid Freezer III 280", Brand: "Arctic", Category: model.SlotCooling,
			Price: 89.00, Stock: 10, CoolerType: model.CoolerLiquid,
			SupportedSockets: []string{"AM4", "AM5", "LGA1700", "LGA1851"},
		},
	}
}
