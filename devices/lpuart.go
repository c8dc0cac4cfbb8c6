package devices

import (
	"log"
	"sync"

	"github.com/s32k358/soc/internal/bits"
)

// LPUART is one Low-Power UART port. Sixteen instances exist per SoC; each
// is configured independently (baud, framing, enables) and talks to its own
// host character back-end.
//
// Grounded on NXPS32K358LPUartState (original_source/qemu/hw/char/nxps32k358_lpuart.c):
// only VERID, PARAM, STAT, GLOBAL, CONTROL, BAUD, DATA/DATARO and (for
// reads only) FIFO are reachable through the register dispatch; every other
// register this library stores (MATCH, MODIR, WATER, MCR/MSR, REIR/TEIR,
// HDCR, TOCR/TOSR, the timeout/TCBR/TDBR tables) keeps its reset value but
// is otherwise unreachable from the guest.
type LPUART struct {
	mu sync.Mutex

	port  int
	clock Clock
	chr   CharBackend
	irq   IRQLine

	verid   uint32
	param   uint32
	global  uint32
	pincfg  uint32
	baud    uint32
	stat    uint32
	control uint32
	data    uint32
	match   uint32
	modir   uint32
	fifo    uint32
	water   uint32
	mcr     uint32
	msr     uint32
	reir    uint32
	teir    uint32
	hdcr    uint32
	tocr    uint32
	tosr    uint32
	timeout [4]uint32
	tcb     [128]uint32
	tdb     [256]uint32
}

// NewLPUART creates port-indexed LPUART number port (0..15), wired to clock
// for baud computation and chr for byte I/O.
func NewLPUART(port int, clock Clock, chr CharBackend) *LPUART {
	u := &LPUART{port: port, clock: clock, chr: chr}
	u.Reset()
	return u
}

// SetIRQLine wires the port's interrupt output to line.
func (u *LPUART) SetIRQLine(line IRQLine) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.irq = line
}

// Reset restores every register to its power-on value, port-dependent
// where the reference model's reset constants are port-dependent.
func (u *LPUART) Reset() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.resetLocked()
}

// resetLocked is Reset's body, callable with mu already held (a
// guest-triggered GLOBAL.RST write arrives from inside WriteRegister).
func (u *LPUART) resetLocked() {
	if u.port < lowPortCount {
		u.verid = lpuartVERIDResetLow
		u.param = lpuartPARAMResetLow
		u.fifo = lpuartFIFOResetLow
	} else {
		u.verid = lpuartVERIDResetHigh
		u.param = lpuartPARAMResetHigh
		u.fifo = lpuartFIFOResetHigh
	}
	u.global = lpuartGLOBALReset
	u.pincfg = lpuartPINCFGReset
	u.baud = lpuartBAUDReset
	u.stat = lpuartSTATReset
	u.control = lpuartCONTROLReset
	u.data = lpuartDATAReset
	u.match = lpuartMATCHReset
	u.modir = lpuartMODIRReset
	u.water = lpuartWATERReset
	u.mcr = lpuartMCRReset
	u.msr = lpuartMSRReset
	u.reir = lpuartREIRReset
	u.teir = lpuartTEIRReset
	u.hdcr = lpuartHDCRReset
	u.tocr = lpuartTOCRReset
	u.tosr = lpuartTOSRReset
	for i := range u.timeout {
		u.timeout[i] = 0
	}
	for i := range u.tcb {
		u.tcb[i] = 0
	}
	for i := range u.tdb {
		u.tdb[i] = 0
	}
	u.updateIRQLocked()
}

// ReadRegister implements RegisterDevice.
func (u *LPUART) ReadRegister(offset uint32, width int) uint32 {
	u.mu.Lock()
	defer u.mu.Unlock()
	switch offset {
	case lpuartVERIDOffset:
		return u.verid
	case lpuartPARAMOffset:
		return u.param
	case lpuartSTATOffset:
		return u.stat
	case lpuartGLOBALOffset:
		return u.global
	case lpuartDATAOffset, lpuartDATAROOffset:
		value := u.data
		bits.Clear(&u.stat, lpuartStatRDRFBit)
		if u.chr != nil {
			u.chr.AcceptInput()
		}
		u.updateIRQLocked()
		return value
	case lpuartCONTROLOffset:
		return u.control
	case lpuartBAUDOffset:
		return u.baud
	case lpuartFIFOOffset:
		return u.fifo
	}
	log.Printf("lpuart%d: guest error: bad offset 0x%x", u.port, offset)
	return 0
}

// WriteRegister implements RegisterDevice.
func (u *LPUART) WriteRegister(offset uint32, width int, value uint32) {
	u.mu.Lock()
	defer u.mu.Unlock()
	switch offset {
	case lpuartGLOBALOffset:
		u.global = value
		if bits.Test(value, lpuartGlobalRSTBit) {
			u.resetLocked()
		}
		return
	case lpuartSTATOffset:
		return
	case lpuartDATAOffset:
		is7bit := bits.Test(u.control, lpuartControlM7Bit)
		is9bit := bits.Test(u.control, lpuartControlMBit)
		if is9bit {
			log.Printf("lpuart%d: guest error: 9-bit data format not supported", u.port)
			return
		}
		if is7bit {
			value &= 0x7F
		}
		if u.chr != nil {
			if err := u.chr.WriteByte(byte(value)); err != nil {
				log.Printf("lpuart%d: transmit byte dropped: %v", u.port, err)
			}
		}
		return
	case lpuartCONTROLOffset:
		u.control = value
		u.updateIRQLocked()
		return
	case lpuartBAUDOffset:
		u.baud = value
		u.updateParamsLocked()
		return
	}
	log.Printf("lpuart%d: guest error: bad offset 0x%x (value 0x%x)", u.port, offset, value)
}

// updateParamsLocked recomputes the effective baud rate from the current
// clock frequency and SBR/OSR divisor and forwards it to the character
// back-end, mirroring nxps32k358_lpuart_update_params's ioctl to the host
// chardev.
func (u *LPUART) updateParamsLocked() {
	if u.chr == nil || u.clock == nil {
		return
	}
	sbr := bits.Get(u.baud, lpuartBaudSBRBit, lpuartBaudSBRMask)
	osr := bits.Get(u.baud, lpuartBaudOSRBit, lpuartBaudOSRMask)
	if sbr == 0 {
		return
	}
	u.chr.SetBaud(u.clock.Hz() / (sbr * (osr + 1)))
}

// updateIRQLocked recomputes whether the port's interrupt line should be
// asserted: any of TIE/TCIE/RIE set in CONTROL together with its matching
// STAT bit.
func (u *LPUART) updateIRQLocked() {
	mask := u.stat & u.control
	asserted := mask&(1<<lpuartControlTIEBit|1<<lpuartControlTCIEBit|1<<lpuartControlRIEBit) != 0
	if u.irq != nil {
		u.irq.Set(asserted)
	}
}

// CanReceive reports whether the port can currently accept another
// received byte: true iff STAT.RDRF is clear.
func (u *LPUART) CanReceive() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return !bits.Test(u.stat, lpuartStatRDRFBit)
}

// Receive delivers one byte from the host character back-end. A port with
// CONTROL.RE clear drops the byte and logs, matching the reference model's
// guest-error treatment of input arriving at a disabled receiver.
func (u *LPUART) Receive(b byte) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if !bits.Test(u.control, lpuartControlREBit) {
		log.Printf("lpuart%d: guest error: byte received while RE is clear, dropped", u.port)
		return
	}
	u.data = uint32(b)
	bits.Set(&u.stat, lpuartStatRDRFBit)
	u.updateIRQLocked()
}
