package envconfig

import (
	"fmt"
	"maps"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/you-humble/btg-configurator/internal/model"
	"github.com/you-humble/btg-configurator/internal/pricing"
)

type pricingEnv struct {
	AssemblyFee      float64            `env:"ASSEMBLY_FEE" envDefault:"250"`
	PresetDefaultFee float64            `env:"PRESET_DEFAULT_FEE" envDefault:"250"`
	PresetFees       map[string]float64 `env:"PRESET_CATEGORY_FEES" envKeyValSeparator:":" envDefault:"workstation:150"`
	PriceAuthority   string             `env:"PRESET_PRICE_AUTHORITY" envDefault:"computed"`
}

type pricingCfg struct {
	raw pricingEnv
}

func NewPricingConfig() (*pricingCfg, error) {
	var raw pricingEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}

	if !model.PriceAuthority(raw.PriceAuthority).Valid() {
		return nil, fmt.Errorf("PRESET_PRICE_AUTHORITY: unknown value %q", raw.PriceAuthority)
	}
	if raw.AssemblyFee < 0 || raw.PresetDefaultFee < 0 {
		return nil, fmt.Errorf("assembly fees must be non-negative")
	}

	fees := make(map[string]float64, len(raw.PresetFees))
	for k, v := range raw.PresetFees {
		fees[strings.ToLower(strings.TrimSpace(k))] = v
	}
	raw.PresetFees = fees

	return &pricingCfg{raw: raw}, nil
}

func (cfg *pricingCfg) Fees() pricing.Fees {
	return pricing.Fees{
		Wizard:        cfg.raw.AssemblyFee,
		PresetDefault: cfg.raw.PresetDefaultFee,
		ByCategory:    maps.Clone(cfg.raw.PresetFees),
	}
}

func (cfg *pricingCfg) PriceAuthority() model.PriceAuthority {
	return model.PriceAuthority(cfg.raw.PriceAuthority)
}
