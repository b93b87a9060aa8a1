package model

import "time"

const (
	DeliveryDaysInStock   = 4
	DeliveryDaysBackorder = 15
)

type UnavailableComponent struct {
	Slot Slot
	Name string
}

type DeliveryEstimate struct {
	EstimatedDays         int
	AllAvailable          bool
	UnavailableComponents []UnavailableComponent
	DeliveryDate          time.Time
}
