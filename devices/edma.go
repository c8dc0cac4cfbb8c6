package devices

import (
	"encoding/binary"
	"log"
	"sync"

	"github.com/s32k358/soc/internal/bits"
)

// EDMA is the 32-channel enhanced DMA transfer engine. Guest code programs a
// channel's transfer control descriptor (TCD) and sets its CSR.START bit;
// the engine then arbitrates among all channels with START pending,
// round-robin, and runs one channel's major/minor loop to completion before
// yielding back to the caller that raised the request.
//
// Grounded on NXPS32K358EDMAState (original_source/qemu/hw/dma/nxps32k358_edma.c):
// channel linking, priority-based arbitration and SMLOE/DMLOE minor-loop
// offsetting are all absent there too ("There is no support for priorities
// in this implementation"). Channel linking and SMLOE/DMLOE are refused here
// with the same fatal-fault treatment the reference engine gives them via
// assert(); the priority registers (CH_PRI, GRPRI) are stored but never
// consulted by arbitration.
type EDMA struct {
	mu sync.Mutex

	mem MemoryBus

	csr    uint32
	es     uint32
	intReg uint32
	hrs    uint32
	grpri  [numChannels]uint32

	tcds [numChannels]tcd
	irqs [numChannels]IRQLine

	nextChannel int
}

// NewEDMA creates an eDMA engine whose transfers read and write guest memory
// through mem.
func NewEDMA(mem MemoryBus) *EDMA {
	e := &EDMA{mem: mem}
	e.Reset()
	return e
}

// SetIRQLine wires channel ch's interrupt output to line. Channels left
// unwired simply never signal an interrupt.
func (e *EDMA) SetIRQLine(ch int, line IRQLine) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.irqs[ch] = line
}

// Window0 is the MMIO surface covering the global registers and TCDs 0..11,
// mirroring the reference engine's mmio0 region.
func (e *EDMA) Window0() RegisterDevice { return edmaWindow0{e} }

// Window1 is the MMIO surface covering TCDs 12..31, mirroring the reference
// engine's mmio12 region.
func (e *EDMA) Window1() RegisterDevice { return edmaWindow1{e} }

// Reset restores every register, including all 32 TCDs, to its power-on
// value and re-evaluates every channel's IRQ line.
func (e *EDMA) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.csr = edmaCSRReset
	e.es = 0
	e.intReg = 0
	e.hrs = 0
	for i := range e.grpri {
		e.grpri[i] = 0
	}
	for i := range e.tcds {
		e.tcds[i].reset()
		e.updateChannelIRQLocked(i)
	}
	e.nextChannel = 0
}

type edmaWindow0 struct{ e *EDMA }

func (w edmaWindow0) ReadRegister(offset uint32, width int) uint32 {
	w.e.mu.Lock()
	defer w.e.mu.Unlock()
	if offset >= tcdStride {
		return w.e.tcdReadLocked(int((offset-tcdStride)/tcdStride), offset%tcdStride)
	}
	return w.e.globalReadLocked(offset)
}

func (w edmaWindow0) WriteRegister(offset uint32, width int, value uint32) {
	w.e.mu.Lock()
	defer w.e.mu.Unlock()
	if offset >= tcdStride {
		w.e.tcdWriteLocked(int((offset-tcdStride)/tcdStride), offset%tcdStride, value)
		return
	}
	w.e.globalWriteLocked(offset, value)
}

func (w edmaWindow0) Reset() { w.e.Reset() }

type edmaWindow1 struct{ e *EDMA }

func (w edmaWindow1) ReadRegister(offset uint32, width int) uint32 {
	w.e.mu.Lock()
	defer w.e.mu.Unlock()
	return w.e.tcdReadLocked(int(offset/tcdStride)+window0Channels, offset%tcdStride)
}

func (w edmaWindow1) WriteRegister(offset uint32, width int, value uint32) {
	w.e.mu.Lock()
	defer w.e.mu.Unlock()
	w.e.tcdWriteLocked(int(offset/tcdStride)+window0Channels, offset%tcdStride, value)
}

func (w edmaWindow1) Reset() { w.e.Reset() }

func (e *EDMA) globalReadLocked(offset uint32) uint32 {
	switch offset {
	case edmaCSROffset:
		return e.csr
	case edmaESOffset:
		return e.es
	case edmaINTOffset:
		return e.intReg
	case edmaHRSOffset:
		return e.hrs
	}
	if offset >= edmaGRPRIBase && offset < edmaGRPRIBase+edmaGRPRIStride*numChannels {
		return e.grpri[(offset-edmaGRPRIBase)/edmaGRPRIStride]
	}
	log.Printf("edma: guest error: bad global offset 0x%x", offset)
	return 0
}

func (e *EDMA) globalWriteLocked(offset uint32, value uint32) {
	switch offset {
	case edmaCSROffset:
		e.csr = (e.csr &^ edmaCSRWriteMask) | (value & edmaCSRWriteMask)
		return
	case edmaESOffset, edmaINTOffset, edmaHRSOffset:
		log.Printf("edma: guest error: write of 0x%x to read-only global offset 0x%x ignored", value, offset)
		return
	}
	if offset >= edmaGRPRIBase && offset < edmaGRPRIBase+edmaGRPRIStride*numChannels {
		n := (offset - edmaGRPRIBase) / edmaGRPRIStride
		e.grpri[n] = (e.grpri[n] &^ grpriWriteMask) | (value & grpriWriteMask)
		return
	}
	log.Printf("edma: guest error: bad global offset 0x%x (value 0x%x)", offset, value)
}

func (e *EDMA) tcdReadLocked(ch int, offset uint32) uint32 {
	t := &e.tcds[ch]
	switch offset {
	case chCSROffset:
		return t.chCSR
	case chESOffset:
		return t.chES
	case chINTOffset:
		return t.chINT
	case chSBROffset:
		return t.chSBR
	case chPRIOffset:
		return t.chPRI
	case tcdSADDROffset:
		return t.saddr
	case tcdSOFFOffset:
		return t.soff
	case tcdATTROffset:
		return t.attr
	case tcdNBYTESMLOFFOffset:
		return t.nbytes
	case tcdSLASTSDAOffset:
		return t.slastSDA
	case tcdDADDROffset:
		return t.daddr
	case tcdDOFFOffset:
		return t.doff
	case tcdCITEROffset:
		return t.citer
	case tcdDLASTSGAOffset:
		return t.dlastSGA
	case tcdCSROffset:
		return t.csr
	case tcdBITEROffset:
		return t.biter
	}
	log.Printf("edma: guest error: bad TCD offset 0x%x on channel %d", offset, ch)
	return 0
}

func (e *EDMA) tcdWriteLocked(ch int, offset uint32, value uint32) {
	t := &e.tcds[ch]
	switch offset {
	case chCSROffset:
		bits.SetN(&t.chCSR, chCSRDoneBit, 0x1, bits.Get(value, chCSRDoneBit, 0x1))
	case chESOffset:
		bits.SetN(&t.chES, chESErrBit, 0x1, bits.Get(value, chESErrBit, 0x1))
	case chINTOffset:
		if bits.Test(value, chINTIntBit) {
			bits.Clear(&t.chINT, chINTIntBit)
		}
		e.updateChannelIRQLocked(ch)
	case chSBROffset:
		t.chSBR = value
	case chPRIOffset:
		t.chPRI = value
	case tcdSADDROffset:
		t.saddr = value
	case tcdSOFFOffset:
		t.soff = value & 0xFFFF
	case tcdATTROffset:
		t.attr = value & 0xFFFF
	case tcdNBYTESMLOFFOffset:
		if bits.Test(value, nbytesSmloeBit) {
			fault("edma", "channel %d: SMLOE minor-loop offsetting is not supported", ch)
		}
		if bits.Test(value, nbytesDmloeBit) {
			fault("edma", "channel %d: DMLOE minor-loop offsetting is not supported", ch)
		}
		t.nbytes = value
	case tcdSLASTSDAOffset:
		t.slastSDA = value
	case tcdDADDROffset:
		t.daddr = value
	case tcdDOFFOffset:
		t.doff = value & 0xFFFF
	case tcdCITEROffset:
		if bits.Test(value, tcdCITERElinkBit) {
			fault("edma", "channel %d: channel linking (CITER.ELINK) is not supported", ch)
		}
		if bits.Get(value, 0, 0x7FFF) != t.biterCount() {
			fault("edma", "channel %d: CITER write (%d) must equal BITER (%d)", ch, bits.Get(value, 0, 0x7FFF), t.biterCount())
		}
		t.citer = value & 0xFFFF
	case tcdDLASTSGAOffset:
		t.dlastSGA = value
	case tcdCSROffset:
		if bits.Test(value, tcdCSRMajorLinkBit) {
			fault("edma", "channel %d: channel linking (MAJORELINK) is not supported", ch)
		}
		t.csr = value & 0xFFFF
		if bits.Test(value, tcdCSRStartBit) {
			e.arbitrateLocked()
		}
	case tcdBITEROffset:
		if bits.Test(value, tcdBITERElinkBit) {
			fault("edma", "channel %d: channel linking (BITER.ELINK) is not supported", ch)
		}
		if bits.Get(value, 0, 0x7FFF) > 1 {
			fault("edma", "channel %d: BITER write (%d) exceeds baseline limit of 1 (channel linking disabled)", ch, bits.Get(value, 0, 0x7FFF))
		}
		t.biter = value & 0xFFFF
	default:
		log.Printf("edma: guest error: bad TCD offset 0x%x on channel %d (value 0x%x)", offset, ch, value)
	}
}

// arbitrateLocked implements round-robin selection among channels with
// CSR.START pending: the channel following the last one serviced is
// checked first, the first match runs to completion, and the next scan
// starts just past it.
func (e *EDMA) arbitrateLocked() {
	for i := 0; i < numChannels; i++ {
		j := (i + e.nextChannel) % numChannels
		t := &e.tcds[j]
		if !t.start() {
			continue
		}
		t.setDone(false)
		bits.Clear(&t.csr, tcdCSRStartBit)
		t.setActive(true)
		e.transmitLocked(j)
		e.nextChannel = (j + 1) % numChannels
		return
	}
}

// transmitLocked runs channel ch's minor loop once and, if that was the
// final iteration, its major-loop completion (last-address adjustment or
// scatter-gather reload, CITER reload, DONE).
func (e *EDMA) transmitLocked(ch int) {
	t := &e.tcds[ch]

	ssize := t.ssize()
	dsize := t.dsize()
	if ssize == reservedSize {
		fault("edma", "channel %d: TCD_ATTR.SSIZE=7 is reserved", ch)
	}
	if dsize == reservedSize {
		fault("edma", "channel %d: TCD_ATTR.DSIZE=7 is reserved", ch)
	}
	ssizeBytes := 1 << ssize
	dsizeBytes := 1 << dsize
	maxSize := ssizeBytes
	if dsizeBytes > maxSize {
		maxSize = dsizeBytes
	}

	if t.citerCount() > 0 {
		saddr := t.saddr
		daddr := t.daddr
		buf := make([]byte, maxTransferUnit)

		nbytes := int(t.nbytesCount())
		for i := 0; i < nbytes/maxSize; i++ {
			for j := 0; j < maxSize/ssizeBytes; j++ {
				if err := e.mem.ReadPhys(saddr, buf[j*ssizeBytes:(j+1)*ssizeBytes]); err != nil {
					log.Printf("edma: channel %d: source read at 0x%x failed: %v", ch, saddr, err)
				}
				saddr = uint32(int32(saddr) + int16FromField(t.soff))
			}
			for j := 0; j < maxSize/dsizeBytes; j++ {
				if err := e.mem.WritePhys(daddr, buf[j*dsizeBytes:(j+1)*dsizeBytes]); err != nil {
					log.Printf("edma: channel %d: destination write at 0x%x failed: %v", ch, daddr, err)
				}
				daddr = uint32(int32(daddr) + int16FromField(t.doff))
			}
		}

		t.saddr = saddr
		t.daddr = daddr
		bits.SetN(&t.citer, 0, 0x7FFF, t.citerCount()-1)
		t.setActive(false)
		e.updateChannelIRQLocked(ch)
	}

	if t.citerCount() != 0 {
		return
	}

	if t.esda() {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], t.daddr)
		if err := e.mem.WritePhys(t.slastSDA, b[:]); err != nil {
			log.Printf("edma: channel %d: ESDA write at 0x%x failed: %v", ch, t.slastSDA, err)
		}
	} else {
		t.saddr = t.saddr + t.slastSDA
	}

	if t.esg() {
		buf := make([]byte, tcdWireSize)
		if err := e.mem.ReadPhys(t.dlastSGA, buf); err != nil {
			log.Printf("edma: channel %d: scatter-gather reload at 0x%x failed: %v", ch, t.dlastSGA, err)
		} else {
			t.decodeWire(buf)
		}
	} else {
		t.daddr = t.daddr + t.dlastSGA
	}

	bits.SetN(&t.citer, 0, 0x7FFF, t.biterCount())
	t.setDone(true)
	bits.Set(&t.chINT, chINTIntBit)
}

// updateChannelIRQLocked recomputes channel ch's CH_INT flag from its
// INTHALF/INTMAJOR enables and current/beginning iteration counts, folds it
// into the engine's aggregate EDMA_INT register, and drives the channel's
// IRQ line to match.
func (e *EDMA) updateChannelIRQLocked(ch int) {
	t := &e.tcds[ch]
	if t.intHalf() && t.citerCount() >= t.biterCount()/2 {
		bits.Set(&t.chINT, chINTIntBit)
	}
	if t.intMajor() && t.citerCount() == 0 {
		bits.Set(&t.chINT, chINTIntBit)
	}

	asserted := bits.Test(t.chINT, chINTIntBit)
	if asserted {
		bits.Set(&e.intReg, ch)
	} else {
		bits.Clear(&e.intReg, ch)
	}
	if line := e.irqs[ch]; line != nil {
		line.Set(asserted)
	}
}
