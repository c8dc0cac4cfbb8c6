// Package devices implements the memory-mapped peripheral models of the
// S32K358 device library: the eDMA transfer engine, the LPUART serial
// controller, the ranged register bus that routes guest accesses to them,
// and the generic stub used for address ranges nothing in this library
// implements.
package devices

// IRQLine is a level-triggered capability handle into the host's interrupt
// controller. Devices hold one IRQLine per interrupt source they own; they
// never hold a reference to the controller itself.
//
// This generalizes the asymmetric one-shot devices.InterruptRaiser shape
// (RaiseIRQ only, no way to deassert) into the level-triggered contract the
// S32K358 peripherals actually need: a channel's interrupt flag can clear
// itself (software write-1-to-clear, or a data-register read draining a
// status flag) and the
// line must drop again when it does.
type IRQLine interface {
	Set(asserted bool)
}

// MemoryBus is the host's guest-physical-memory access primitive. eDMA reads
// and writes through it to move bytes between buffers and to reload scatter-
// gather descriptors; it is never interpreted as host process memory.
type MemoryBus interface {
	ReadPhys(addr uint32, buf []byte) error
	WritePhys(addr uint32, buf []byte) error
}

// Clock provides the frequency an LPUART port's baud-rate divider is
// computed against. The host owns the clock tree; devices only query it.
type Clock interface {
	Hz() uint32
}

// CharBackend is the host's byte-stream collaborator for an LPUART port. It
// mirrors the reference model's chardev front-end: the device pushes
// transmitted bytes out, tells the backend when it may deliver more input, and informs
// the backend of its effective baud rate whenever BAUD is reprogrammed.
type CharBackend interface {
	WriteByte(b byte) error
	SetBaud(hz uint32)
	// AcceptInput is called after a guest read of DATA/DATARO drains the
	// receive register, telling the backend it may deliver another byte.
	AcceptInput()
}

// RegisterDevice is the contract a peripheral exposes to the register bus:
// width-qualified, offset-addressed reads and writes against its own MMIO
// window, plus a reset entry point invoked at SoC bring-up and on a
// software-triggered device reset.
type RegisterDevice interface {
	ReadRegister(offset uint32, width int) uint32
	WriteRegister(offset uint32, width int, value uint32)
	Reset()
}
