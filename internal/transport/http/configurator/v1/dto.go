package http

import (
	"github.com/you-humble/btg-configurator/internal/converter"
)

type startWizardRequest struct {
	Owner    string `json:"owner" validate:"required,max=128"`
	Platform string `json:"platform" validate:"required,max=64"`
}

type startEditRequest struct {
	Owner   string `json:"owner" validate:"required,max=128"`
	OrderID string `json:"orderId" validate:"required,uuid"`
}

type presetMetaRequest struct {
	Name        string  `json:"name" validate:"required,max=128"`
	Description string  `json:"description" validate:"max=2048"`
	Category    string  `json:"category" validate:"required,max=64"`
	BasePrice   float64 `json:"basePrice" validate:"gte=0"`
	Active      bool    `json:"active"`
	Platform    string  `json:"platform" validate:"required,max=64"`
}

type startPresetRequest struct {
	Owner string `json:"owner" validate:"required,max=128"`
	presetMetaRequest
}

type selectRequest struct {
	ComponentID string `json:"componentId" validate:"required"`
}

type presetDraftRequest struct {
	presetMetaRequest
	Components map[string]string `json:"components" validate:"required,min=1,dive,keys,required,endkeys,required"`
}

type errorResponse struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	State   *stateResponse `json:"state,omitempty"`
}

type warningResponse struct {
	Code    string   `json:"code"`
	Slots   []string `json:"slots"`
	Message string   `json:"message"`
}

type unavailableResponse struct {
	Slot string `json:"slot"`
	Name string `json:"name"`
}

type deliveryResponse struct {
	EstimatedDays         int                   `json:"estimatedDays"`
	AllAvailable          bool                  `json:"allAvailable"`
	UnavailableComponents []unavailableResponse `json:"unavailableComponents"`
	DeliveryDate          string                `json:"deliveryDate"`
}

type stateResponse struct {
	ID             string                                 `json:"id,omitempty"`
	Mode           string                                 `json:"mode"`
	Platform       string                                 `json:"platform"`
	Step           int                                    `json:"step"`
	CurrentSlot    string                                 `json:"currentSlot,omitempty"`
	Summary        bool                                   `json:"summary"`
	Selection      map[string]converter.ComponentRecord   `json:"selection"`
	Missing        []string                               `json:"missing"`
	CandidatePools map[string][]converter.ComponentRecord `json:"candidatePools"`
	Warnings       []warningResponse                      `json:"warnings"`
	Price          float64                                `json:"price"`
	Delivery       deliveryResponse                       `json:"delivery"`
	Version        uint64                                 `json:"version"`
	Error          string                                 `json:"error,omitempty"`
	SubmittedID    string                                 `json:"submittedId,omitempty"`
}

type presetReportResponse struct {
	Valid          bool                                 `json:"valid"`
	Selection      map[string]converter.ComponentRecord `json:"selection"`
	Missing        []string                             `json:"missing"`
	Warnings       []warningResponse                    `json:"warnings"`
	AssemblyFee    float64                              `json:"assemblyFee"`
	ComputedPrice  float64                              `json:"computedPrice"`
	EffectivePrice float64                              `json:"effectivePrice"`
}

type presetResponse struct {
	ID             string                               `json:"id"`
	Name           string                               `json:"name"`
	Description    string                               `json:"description,omitempty"`
	Category       string                               `json:"category"`
	Platform       string                               `json:"platform"`
	Active         bool                                 `json:"active"`
	BasePrice      float64                              `json:"basePrice"`
	ComputedPrice  float64                              `json:"computedPrice"`
	EffectivePrice float64                              `json:"effectivePrice"`
	Components     map[string]converter.ComponentRecord `json:"components"`
	CreatedAt      string                               `json:"createdAt,omitempty"`
}

type createPresetResponse struct {
	Preset *presetResponse       `json:"preset,omitempty"`
	Report *presetReportResponse `json:"report,omitempty"`
}

type orderResponse struct {
	ID         string                               `json:"id"`
	Owner      string                               `json:"owner"`
	Platform   string                               `json:"platform"`
	Status     string                               `json:"status"`
	TotalPrice float64                              `json:"totalPrice"`
	Delivery   deliveryResponse                     `json:"delivery"`
	Components map[string]converter.ComponentRecord `json:"components"`
	CreatedAt  string                               `json:"createdAt"`
	UpdatedAt  string                               `json:"updatedAt,omitempty"`
}
