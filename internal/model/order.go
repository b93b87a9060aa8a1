package model

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusCancelled OrderStatus = "CANCELLED"
)

type Order struct {
	// Unique identifier of the order.
	ID uuid.UUID
	// Who placed the order.
	Owner string
	// Brand/platform lineage the configuration was built for.
	Platform string
	// Components with the prices they had when the order was written.
	Selection Selection
	// Total price including the assembly fee.
	TotalPrice float64
	Delivery   DeliveryEstimate
	Status     OrderStatus
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

// SubmissionKind tells the submitter which flow produced a submission.
type SubmissionKind string

const (
	SubmissionOrder  SubmissionKind = "order"
	SubmissionEdit   SubmissionKind = "edit"
	SubmissionPreset SubmissionKind = "preset"
)

// Submission is a finalized selection handed to a persistence collaborator.
type Submission struct {
	Kind      SubmissionKind
	Owner     string
	Platform  string
	Selection Selection
	Total     float64
	Delivery  DeliveryEstimate
	// Order being edited, set for SubmissionEdit only.
	OriginalOrderID uuid.UUID
}

// ConfigurationOrdered is published after an order was written or edited.
type ConfigurationOrdered struct {
	EventID    uuid.UUID
	OrderID    uuid.UUID
	Owner      string
	Platform   string
	Total      float64
	Delivery   DeliveryEstimate
	Edited     bool
	Components map[Slot]string
}
