package sequencer

import (
	"github.com/you-humble/btg-configurator/internal/compatibility"
	"github.com/you-humble/btg-configurator/internal/model"
)

type Mode string

const (
	// ModeWizard walks a customer through the slots in order.
	ModeWizard Mode = "wizard"
	// ModeEdit changes the components of an existing order.
	ModeEdit Mode = "edit"
	// ModePreset lets an administrator fill slots in any order. Every rule
	// is reported as a warning instead of restricting the pools.
	ModePreset Mode = "preset"
)

func (m Mode) Valid() bool {
	return m == ModeWizard || m == ModeEdit || m == ModePreset
}

func (m Mode) submissionKind() model.SubmissionKind {
	switch m {
	case ModeEdit:
		return model.SubmissionEdit
	case ModePreset:
		return model.SubmissionPreset
	default:
		return model.SubmissionOrder
	}
}

// State is a consistent copy of everything a session exposes.
type State struct {
	Mode     Mode
	Platform string
	// Index into the slot order. Equals len(slots) on the summary.
	Step        int
	CurrentSlot model.Slot
	Summary     bool

	Selection      model.Selection
	Missing        []model.Slot
	CandidatePools compatibility.CandidatePools
	Warnings       []model.Warning
	Price          float64
	Delivery       model.DeliveryEstimate

	// Bumped on every selection change.
	Version uint64
	// Latest failure, cleared by the next successful mutation.
	Err error
	// Id returned by the submitter for the last successful submission.
	SubmittedID string
}
