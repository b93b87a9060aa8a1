package envconfig

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type catalogEnv struct {
	LookupTimeout time.Duration `env:"CATALOG_LOOKUP_TIMEOUT" envDefault:"3s"`
	Seed          bool          `env:"CATALOG_SEED" envDefault:"true"`
}

type catalog struct {
	raw catalogEnv
}

func NewCatalogConfig() (*catalog, error) {
	var raw catalogEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &catalog{raw: raw}, nil
}

func (cfg *catalog) LookupTimeout() time.Duration { return cfg.raw.LookupTimeout }
func (cfg *catalog) Seed() bool                   { return cfg.raw.Seed }
