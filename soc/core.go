package soc

// Core stands in for the host framework's Cortex-M7 CPU model (the
// reference SoC's embedded ARMv7MState): the real instruction-execution
// engine is the host's to provide, but the SoC is still responsible for
// configuring its external-interrupt fan-in and its two clock inputs, and
// for telling it where execution should begin.
//
// Grounded on nxps32k358_soc_realize's armv7m property setup
// (original_source/qemu/hw/arm/nxps32k358_soc.c): num-irq=240,
// num-prio-bits=4, cpuclk/refclk connections and the init-svtor/init-nsvtor
// reset-vector property, all restated here as plain fields since this
// library consumes the host's CPU execution rather than implementing it.
type Core struct {
	IRQ *NVIC

	NumIRQLines     int
	NumPriorityBits int

	CPUClk *Clock
	RefClk *Clock

	ResetVector uint32
}

// NewCore creates a Cortex-M7 stand-in with the channel count and priority
// width the reference SoC hands to its armv7m container, its cpuclk wired
// to sysclk and its refclk wired to a clock already configured to derive
// sysclk/8 (see SoC's realize step 1-2).
func NewCore(sysclk, refclk *Clock) *Core {
	return &Core{
		IRQ:             NewNVIC(),
		NumIRQLines:     numIRQLines,
		NumPriorityBits: numPriorityBits,
		CPUClk:          sysclk,
		RefClk:          refclk,
	}
}
