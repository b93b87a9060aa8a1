package model

type WarningCode string

const (
	WarningSocketMismatch      WarningCode = "socket_mismatch"
	WarningMemoryMismatch      WarningCode = "memory_mismatch"
	WarningFormFactor          WarningCode = "form_factor_unsupported"
	WarningInsufficientWattage WarningCode = "insufficient_wattage"
	WarningGPUClearance        WarningCode = "gpu_clearance"
	WarningCoolerClearance     WarningCode = "cooler_clearance"
	WarningCoolerSocket        WarningCode = "cooler_socket_unsupported"
)

// Warning is a soft compatibility violation between the listed slots.
type Warning struct {
	Code    WarningCode
	Slots   []Slot
	Message string
}

// ValidationMode selects which rules DetectWarnings evaluates.
type ValidationMode int

const (
	// ValidationSequential evaluates only the rules the wizard cannot
	// enforce through its candidate pools.
	ValidationSequential ValidationMode = iota
	// ValidationExhaustive evaluates every rule.
	ValidationExhaustive
)
