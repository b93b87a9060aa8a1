package compatibility

import (
	"fmt"
	"strings"

	"github.com/you-humble/btg-configurator/internal/model"
)

const (
	psuHeadroomNum   = 13 // 1.3 expressed as 13/10
	psuHeadroomDen   = 10
	psuBaseLoadWatts = 100
)

// RequiredWattage is ceil(1.3 * (cpu.tdp + gpu.tdp + 100)). Missing
// components count as 0 W. Integer arithmetic keeps the ceiling exact.
func RequiredWattage(cpu, gpu *model.Component) int {
	load := psuBaseLoadWatts
	if cpu != nil {
		load += cpu.TDP
	}
	if gpu != nil {
		load += gpu.TDP
	}
	return (load*psuHeadroomNum + psuHeadroomDen - 1) / psuHeadroomDen
}

// DetectWarnings evaluates the soft rules against sel. In exhaustive mode the
// hard rules the wizard enforces through its pools are reported as well.
func DetectWarnings(sel model.Selection, mode model.ValidationMode) []model.Warning {
	var (
		out    []model.Warning
		cpu    = sel.Get(model.SlotCPU)
		mb     = sel.Get(model.SlotMotherboard)
		ram    = sel.Get(model.SlotRAM)
		gpu    = sel.Get(model.SlotGPU)
		psu    = sel.Get(model.SlotPowerSupply)
		pcCase = sel.Get(model.SlotCase)
		cooler = sel.Get(model.SlotCooling)
	)

	if mode == model.ValidationExhaustive {
		if cpu != nil && mb != nil && !socketsMatch(cpu, mb) {
			out = append(out, model.Warning{
				Code:  model.WarningSocketMismatch,
				Slots: []model.Slot{model.SlotCPU, model.SlotMotherboard},
				Message: fmt.Sprintf("motherboard %s has socket %s, processor %s needs %s",
					mb.Name, mb.Socket, cpu.Name, cpu.Socket),
			})
		}
		if mb != nil && ram != nil && !memoryMatches(mb, ram) {
			out = append(out, model.Warning{
				Code:  model.WarningMemoryMismatch,
				Slots: []model.Slot{model.SlotMotherboard, model.SlotRAM},
				Message: fmt.Sprintf("memory %s is %s, motherboard %s supports %s",
					ram.Name, ram.MemoryType, mb.Name, mb.MemoryType),
			})
		}
	}

	if mb != nil && pcCase != nil && mb.FormFactor != "" && len(pcCase.FormFactors()) > 0 &&
		!model.ContainsAttr(pcCase.FormFactors(), mb.FormFactor) {
		out = append(out, model.Warning{
			Code:  model.WarningFormFactor,
			Slots: []model.Slot{model.SlotMotherboard, model.SlotCase},
			Message: fmt.Sprintf("case %s does not accept %s boards (supports %s)",
				pcCase.Name, mb.FormFactor, strings.Join(pcCase.FormFactors(), ", ")),
		})
	}

	if psu != nil && psu.Wattage > 0 && (cpu != nil || gpu != nil) {
		if required := RequiredWattage(cpu, gpu); psu.Wattage < required {
			out = append(out, model.Warning{
				Code:  model.WarningInsufficientWattage,
				Slots: []model.Slot{model.SlotPowerSupply, model.SlotCPU, model.SlotGPU},
				Message: fmt.Sprintf("power supply %s delivers %d W, at least %d W required",
					psu.Name, psu.Wattage, required),
			})
		}
	}

	if gpu != nil && pcCase != nil && pcCase.MaxGPULength > 0 && gpu.Length > pcCase.MaxGPULength {
		out = append(out, model.Warning{
			Code:  model.WarningGPUClearance,
			Slots: []model.Slot{model.SlotGPU, model.SlotCase},
			Message: fmt.Sprintf("graphics card %s is %d mm long, case %s fits up to %d mm",
				gpu.Name, gpu.Length, pcCase.Name, pcCase.MaxGPULength),
		})
	}

	if cooler != nil && pcCase != nil && cooler.CoolerType == model.CoolerAir &&
		pcCase.MaxCPUCoolerHeight > 0 && cooler.Height > pcCase.MaxCPUCoolerHeight {
		out = append(out, model.Warning{
			Code:  model.WarningCoolerClearance,
			Slots: []model.Slot{model.SlotCooling, model.SlotCase},
			Message: fmt.Sprintf("cooler %s is %d mm tall, case %s fits up to %d mm",
				cooler.Name, cooler.Height, pcCase.Name, pcCase.MaxCPUCoolerHeight),
		})
	}

	if mode == model.ValidationExhaustive && cpu != nil && cooler != nil && !coolerFits(cpu, cooler) {
		out = append(out, model.Warning{
			Code:  model.WarningCoolerSocket,
			Slots: []model.Slot{model.SlotCPU, model.SlotCooling},
			Message: fmt.Sprintf("cooler %s does not support socket %s",
				cooler.Name, cpu.Socket),
		})
	}

	return out
}
