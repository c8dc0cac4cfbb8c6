package devices

import (
	"encoding/binary"

	"github.com/s32k358/soc/internal/bits"
)

// tcd holds one eDMA channel's transfer-control descriptor: its control and
// status registers plus the transfer-parameter block that scatter-gather
// reloads as a single 32-byte unit.
//
// Grounded on NXPS32K358EDMATCDState (original_source/qemu/include/hw/dma/nxps32k358_tcd.h):
// narrower hardware fields (SOFF, ATTR, DOFF, CITER, TCD_CSR, BITER are
// 16-bit registers there) are widened to uint32 here and masked on write,
// since the bit-field helper package operates uniformly on uint32 and the
// register bus always presents a full word to register logic regardless of
// the access width the guest used.
type tcd struct {
	chCSR    uint32
	chES     uint32
	chINT    uint32
	chSBR    uint32
	chPRI    uint32
	saddr    uint32
	soff     uint32 // 16-bit signed, sign-extended into an int16 by callers
	attr     uint32 // 16-bit: SSIZE bits 8..10, DSIZE bits 0..2
	nbytes   uint32 // NBYTES bits 0..29, DMLOE bit 30, SMLOE bit 31
	slastSDA uint32
	daddr    uint32
	doff     uint32 // 16-bit signed
	citer    uint32 // 16-bit: ELINK bit 15, CITER bits 0..14
	dlastSGA uint32
	csr      uint32 // 16-bit: START/INTMAJOR/INTHALF/ESG/MAJORELINK/ESDA
	biter    uint32 // 16-bit: ELINK bit 15, BITER bits 0..14
}

// Bit positions within CH_CSR, CH_ES, CH_INT and TCD_CSR, restated verbatim
// from nxps32k358_tcd.h's FIELD() declarations.
const (
	chCSRDoneBit   = 30
	chCSRActiveBit = 31
	chESErrBit     = 31
	chINTIntBit    = 0

	tcdCSRStartBit     = 0
	tcdCSRIntMajorBit  = 1
	tcdCSRIntHalfBit   = 2
	tcdCSREsgBit       = 4
	tcdCSRMajorLinkBit = 5
	tcdCSREsdaBit      = 7
	tcdCITERElinkBit   = 15
	tcdBITERElinkBit   = 15

	nbytesDmloeBit = 30
	nbytesSmloeBit = 31
)

func (t *tcd) done() bool       { return bits.Test(t.chCSR, chCSRDoneBit) }
func (t *tcd) active() bool     { return bits.Test(t.chCSR, chCSRActiveBit) }
func (t *tcd) setDone(v bool)   { t.setCSRBit(chCSRDoneBit, v) }
func (t *tcd) setActive(v bool) { t.setCSRBit(chCSRActiveBit, v) }

func (t *tcd) setCSRBit(pos int, v bool) {
	if v {
		bits.Set(&t.chCSR, pos)
	} else {
		bits.Clear(&t.chCSR, pos)
	}
}

func (t *tcd) start() bool      { return bits.Test(t.csr, tcdCSRStartBit) }
func (t *tcd) intMajor() bool   { return bits.Test(t.csr, tcdCSRIntMajorBit) }
func (t *tcd) intHalf() bool    { return bits.Test(t.csr, tcdCSRIntHalfBit) }
func (t *tcd) esg() bool        { return bits.Test(t.csr, tcdCSREsgBit) }
func (t *tcd) esda() bool       { return bits.Test(t.csr, tcdCSREsdaBit) }
func (t *tcd) majorLink() bool  { return bits.Test(t.csr, tcdCSRMajorLinkBit) }
func (t *tcd) citerElink() bool { return bits.Test(t.citer, tcdCITERElinkBit) }
func (t *tcd) biterElink() bool { return bits.Test(t.biter, tcdBITERElinkBit) }

func (t *tcd) citerCount() uint32 { return bits.Get(t.citer, 0, 0x7FFF) }
func (t *tcd) biterCount() uint32 { return bits.Get(t.biter, 0, 0x7FFF) }

func (t *tcd) ssize() uint32 { return bits.Get(t.attr, 8, 0x7) }
func (t *tcd) dsize() uint32 { return bits.Get(t.attr, 0, 0x7) }

func (t *tcd) nbytesCount() uint32 { return bits.Get(t.nbytes, 0, 0x3FFFFFFF) }
func (t *tcd) smloe() bool         { return bits.Test(t.nbytes, nbytesSmloeBit) }
func (t *tcd) dmloe() bool         { return bits.Test(t.nbytes, nbytesDmloeBit) }

func (t *tcd) reset() {
	*t = tcd{chSBR: chSBRReset}
}

// tcdWireSize is the span of the self-modifying scatter-gather block: 32
// bytes starting at TCD_SADDR (relative offset 0x20) through the end of
// TCD_BITER (relative offset 0x40), exactly as the reference engine's
// `memcpy(&ch->tcd_saddr, next_tcd_data, 32)` assumes about its struct
// layout. Spelling the layout explicitly here resolves the open question
// about relying on host struct packing.
const tcdWireSize = 32

// encodeWire serializes the scatter-gather-visible parameter block
// (SADDR..BITER) into its 32-byte little-endian wire representation.
func (t *tcd) encodeWire() []byte {
	buf := make([]byte, tcdWireSize)
	binary.LittleEndian.PutUint32(buf[0:4], t.saddr)
	binary.LittleEndian.PutUint16(buf[4:6], uint16(t.soff))
	binary.LittleEndian.PutUint16(buf[6:8], uint16(t.attr))
	binary.LittleEndian.PutUint32(buf[8:12], t.nbytes)
	binary.LittleEndian.PutUint32(buf[12:16], t.slastSDA)
	binary.LittleEndian.PutUint32(buf[16:20], t.daddr)
	binary.LittleEndian.PutUint16(buf[20:22], uint16(t.doff))
	binary.LittleEndian.PutUint16(buf[22:24], uint16(t.citer))
	binary.LittleEndian.PutUint32(buf[24:28], t.dlastSGA)
	binary.LittleEndian.PutUint16(buf[28:30], uint16(t.csr))
	binary.LittleEndian.PutUint16(buf[30:32], uint16(t.biter))
	return buf
}

// decodeWire reloads the scatter-gather-visible parameter block from a
// 32-byte little-endian buffer read out of guest memory.
func (t *tcd) decodeWire(buf []byte) {
	t.saddr = binary.LittleEndian.Uint32(buf[0:4])
	t.soff = uint32(binary.LittleEndian.Uint16(buf[4:6]))
	t.attr = uint32(binary.LittleEndian.Uint16(buf[6:8]))
	t.nbytes = binary.LittleEndian.Uint32(buf[8:12])
	t.slastSDA = binary.LittleEndian.Uint32(buf[12:16])
	t.daddr = binary.LittleEndian.Uint32(buf[16:20])
	t.doff = uint32(binary.LittleEndian.Uint16(buf[20:22]))
	t.citer = uint32(binary.LittleEndian.Uint16(buf[22:24]))
	t.dlastSGA = binary.LittleEndian.Uint32(buf[24:28])
	t.csr = uint32(binary.LittleEndian.Uint16(buf[28:30]))
	t.biter = uint32(binary.LittleEndian.Uint16(buf[30:32]))
}

func int16FromField(v uint32) int32 { return int32(int16(uint16(v))) }
