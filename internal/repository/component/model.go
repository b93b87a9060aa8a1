package repository

import (
	"time"
)

// ComponentEntity is a catalog document. Imported documents are not uniform:
// socket and form_factor hold a string or a list, numeric attributes may be
// stored as int, double or string. The *_norm fields are written by this
// service and back the attribute queries.
type ComponentEntity struct {
	ID          string `bson:"_id"`
	Name        string `bson:"name"`
	Brand       string `bson:"brand,omitempty"`
	BrandNorm   string `bson:"brand_norm,omitempty"`
	Category    string `bson:"category"`
	Description string `bson:"description,omitempty"`
	Price       any    `bson:"price,omitempty"`
	Stock       any    `bson:"stock,omitempty"`

	Socket           any      `bson:"socket,omitempty"`
	SocketNorm       []string `bson:"socket_norm,omitempty"`
	ChipsetBrand     string   `bson:"chipset_brand,omitempty"`
	ChipsetBrandNorm string   `bson:"chipset_brand_norm,omitempty"`
	MemoryType       string   `bson:"memory_type,omitempty"`
	MemoryTypeNorm   string   `bson:"memory_type_norm,omitempty"`
	FormFactor       any      `bson:"form_factor,omitempty"`
	FormFactorNorm   []string `bson:"form_factor_norm,omitempty"`

	TDP                any    `bson:"tdp,omitempty"`
	Wattage            any    `bson:"wattage,omitempty"`
	Length             any    `bson:"length,omitempty"`
	MaxGPULength       any    `bson:"max_gpu_length,omitempty"`
	MaxCPUCoolerHeight any    `bson:"max_cpu_cooler_height,omitempty"`
	Height             any    `bson:"height,omitempty"`
	CoolerType         string `bson:"cooler_type,omitempty"`

	CreatedAt *time.Time `bson:"created_at,omitempty"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty"`
}
