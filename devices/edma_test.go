package devices_test

import (
	"encoding/binary"
	"testing"

	"github.com/s32k358/soc/devices"
)

// fakeMemory is a flat byte-addressed stand-in for guest physical memory,
// sized generously enough to hold every test's scratch buffers without
// needing per-test region bookkeeping.
type fakeMemory struct {
	data [1 << 20]byte
}

func (m *fakeMemory) ReadPhys(addr uint32, buf []byte) error {
	copy(buf, m.data[addr:])
	return nil
}

func (m *fakeMemory) WritePhys(addr uint32, buf []byte) error {
	copy(m.data[addr:], buf)
	return nil
}

// fakeIRQ records every level change handed to it, mirroring the teacher
// suite's MockInterruptRaiser shape.
type fakeIRQ struct {
	asserted bool
	history  []bool
}

func (f *fakeIRQ) Set(asserted bool) {
	f.asserted = asserted
	f.history = append(f.history, asserted)
}

const (
	tcdBase   = 0x4000 // channel 0's TCD offset within window0
	tcdStride = 0x4000
)

func tcdOffset(ch int, reg uint32) uint32 {
	return tcdBase + uint32(ch)*tcdStride + reg
}

// newTestEDMA builds a fresh EDMA over a fresh memory backing and returns
// its window0 register surface.
func newTestEDMA() (*devices.EDMA, *fakeMemory, devices.RegisterDevice) {
	mem := &fakeMemory{}
	e := devices.NewEDMA(mem)
	return e, mem, e.Window0()
}

// programBaseline sets SADDR/DADDR/SOFF/DOFF/ATTR/NBYTES on channel ch and
// writes BITER before CITER (the engine asserts CITER == BITER on write, so
// BITER must already hold its final value).
func programBaseline(w devices.RegisterDevice, ch int, saddr, daddr uint32, soff, doff int16, attr uint16, nbytes uint32) {
	w.WriteRegister(tcdOffset(ch, 0x20), 4, saddr)
	w.WriteRegister(tcdOffset(ch, 0x30), 4, daddr)
	w.WriteRegister(tcdOffset(ch, 0x24), 2, uint32(uint16(soff)))
	w.WriteRegister(tcdOffset(ch, 0x34), 2, uint32(uint16(doff)))
	w.WriteRegister(tcdOffset(ch, 0x26), 2, uint32(attr))
	w.WriteRegister(tcdOffset(ch, 0x28), 4, nbytes)
	w.WriteRegister(tcdOffset(ch, 0x3E), 2, 1) // BITER = 1
	w.WriteRegister(tcdOffset(ch, 0x36), 2, 1) // CITER = 1
}

func TestEDMAResetState(t *testing.T) {
	_, _, w0 := newTestEDMA()
	if got := w0.ReadRegister(0x00, 4); got != 0x00300000 {
		t.Errorf("EDMA_CSR reset = 0x%x, want 0x00300000", got)
	}
	if got := w0.ReadRegister(0x04, 4); got != 0 {
		t.Errorf("EDMA_ES reset = 0x%x, want 0", got)
	}
	if got := w0.ReadRegister(tcdOffset(0, 0x0C), 4); got != 0x00008002 {
		t.Errorf("channel 0 CH_SBR reset = 0x%x, want 0x00008002", got)
	}
	if got := w0.ReadRegister(tcdOffset(0, 0x20), 4); got != 0 {
		t.Errorf("channel 0 TCD_SADDR reset = 0x%x, want 0", got)
	}
}

func TestEDMAGlobalReadOnlyRegistersIgnoreWrites(t *testing.T) {
	_, _, w0 := newTestEDMA()
	for _, off := range []uint32{0x04, 0x08, 0x0C} {
		before := w0.ReadRegister(off, 4)
		w0.WriteRegister(off, 4, 0xFFFFFFFF)
		if after := w0.ReadRegister(off, 4); after != before {
			t.Errorf("offset 0x%x: write mutated read-only register: before=0x%x after=0x%x", off, before, after)
		}
	}
}

func TestEDMATCDRoundTrip(t *testing.T) {
	_, _, w0 := newTestEDMA()
	cases := []struct {
		name string
		off  uint32
		val  uint32
	}{
		{"SADDR", 0x20, 0xDEADBEEF},
		{"SOFF", 0x24, 0x0001},
		{"ATTR", 0x26, 0x0300},
		{"NBYTES", 0x28, 24},
		{"SLAST_SDA", 0x2C, 0x100},
		{"DADDR", 0x30, 0xCAFEBABE},
		{"DOFF", 0x34, 0x0001},
		{"DLAST_SGA", 0x38, 0x200},
	}
	for _, c := range cases {
		w0.WriteRegister(tcdOffset(3, c.off), 4, c.val)
		if got := w0.ReadRegister(tcdOffset(3, c.off), 4); got != c.val {
			t.Errorf("%s round-trip: wrote 0x%x, read 0x%x", c.name, c.val, got)
		}
	}
}

func TestEDMACITERMustEqualBITEROnWrite(t *testing.T) {
	_, _, w0 := newTestEDMA()
	w0.WriteRegister(tcdOffset(0, 0x3E), 2, 1) // BITER = 1
	defer func() {
		if recover() == nil {
			t.Fatal("expected a fault for CITER != BITER")
		}
	}()
	w0.WriteRegister(tcdOffset(0, 0x36), 2, 2) // CITER = 2, mismatched
}

func TestEDMABITERExceedingBaselineFaults(t *testing.T) {
	_, _, w0 := newTestEDMA()
	defer func() {
		if recover() == nil {
			t.Fatal("expected a fault for BITER > 1 with channel linking disabled")
		}
	}()
	w0.WriteRegister(tcdOffset(0, 0x3E), 2, 2) // BITER = 2, unsupported
}

func TestEDMAReservedTransferSizeFaults(t *testing.T) {
	_, _, w0 := newTestEDMA()
	programBaseline(w0, 5, 0x1000, 0x2000, 1, 1, 0x0707, 8) // SSIZE=DSIZE=7, reserved

	defer func() {
		if recover() == nil {
			t.Fatal("expected a fault for reserved SSIZE/DSIZE")
		}
	}()
	w0.WriteRegister(tcdOffset(5, 0x3C), 2, 1) // START
}

// TestEDMAMemcpy exercises scenario 1 from the spec: a simple byte-for-byte
// copy via channel 0 with INTMAJOR set.
func TestEDMAMemcpy(t *testing.T) {
	e, mem, w0 := newTestEDMA()
	irq := &fakeIRQ{}
	e.SetIRQLine(0, irq)

	const srcAddr, dstAddr = 0x1000, 0x2000
	src := make([]byte, 24)
	for i := range src {
		src[i] = byte(i)
	}
	copy(mem.data[srcAddr:], src)

	programBaseline(w0, 0, srcAddr, dstAddr, 1, 1, 0x0000, 24)
	w0.WriteRegister(tcdOffset(0, 0x3C), 2, 0x0003) // INTMAJOR|START

	got := mem.data[dstAddr : dstAddr+24]
	for i, b := range got {
		if b != byte(i) {
			t.Fatalf("dst[%d] = %d, want %d", i, b, i)
		}
	}

	csr := w0.ReadRegister(tcdOffset(0, 0x00), 4)
	if csr&(1<<30) == 0 {
		t.Error("CH_CSR.DONE not set after major-loop completion")
	}
	intFlag := w0.ReadRegister(tcdOffset(0, 0x08), 4)
	if intFlag&1 == 0 {
		t.Error("CH_INT.INT not set after INTMAJOR completion")
	}
	if globalInt := w0.ReadRegister(0x08, 4); globalInt&1 == 0 {
		t.Error("EDMA_INT bit 0 not set to mirror channel 0's INT flag")
	}
	if !irq.asserted {
		t.Error("channel 0 IRQ line not asserted after major-loop completion")
	}
}

// TestEDMAStridedCopy exercises scenario 3: a 2-byte-at-a-time strided copy.
func TestEDMAStridedCopy(t *testing.T) {
	_, mem, w0 := newTestEDMA()

	const srcAddr, dstAddr = 0x3000, 0x4000
	src := make([]byte, 24)
	for i := range src {
		src[i] = byte(i)
	}
	copy(mem.data[srcAddr:], src)

	programBaseline(w0, 2, srcAddr, dstAddr, 2, 2, 0x0101, 24) // SSIZE=DSIZE=1 (2 bytes)
	w0.WriteRegister(tcdOffset(2, 0x3C), 2, 1)                 // START only

	got := mem.data[dstAddr : dstAddr+24]
	for i := range src {
		if got[i] != src[i] {
			t.Fatalf("strided copy mismatch at %d: got %d, want %d", i, got[i], src[i])
		}
	}
}

// TestEDMAScatterGather exercises scenario 2: a three-element linked
// transfer. The engine moves exactly one descriptor's data per CSR.START
// trigger and reloads the next descriptor's registers when ESG is set, so
// the driver (here, the test) re-arms START once per link to advance the
// chain, exactly as guest firmware acknowledging each completion interrupt
// would.
func TestEDMAScatterGather(t *testing.T) {
	e, mem, w0 := newTestEDMA()
	irq := &fakeIRQ{}
	e.SetIRQLine(1, irq)

	const (
		s0, s1, s2 = 0x10000, 0x11000, 0x12000
		d0, d1, d2 = 0x20000, 0x21000, 0x22000
		desc1Addr  = 0x30000
		desc2Addr  = 0x30100
	)
	fill := func(addr uint32, n int, seed byte) {
		buf := make([]byte, n)
		for i := range buf {
			buf[i] = seed + byte(i)
		}
		copy(mem.data[addr:], buf)
	}
	fill(s0, 16, 1)
	fill(s1, 32, 50)
	fill(s2, 64, 100)

	putDesc := func(addr uint32, saddr, daddr uint32, nbytes uint32, soff, doff int16, csr uint16, dlastSGA uint32) {
		buf := make([]byte, 32)
		binary.LittleEndian.PutUint32(buf[0:4], saddr)
		binary.LittleEndian.PutUint16(buf[4:6], uint16(soff))
		binary.LittleEndian.PutUint16(buf[6:8], 0) // SSIZE=DSIZE=0
		binary.LittleEndian.PutUint32(buf[8:12], nbytes)
		binary.LittleEndian.PutUint32(buf[12:16], 0) // SLAST_SDA
		binary.LittleEndian.PutUint32(buf[16:20], daddr)
		binary.LittleEndian.PutUint16(buf[20:22], uint16(doff))
		binary.LittleEndian.PutUint16(buf[22:24], 1) // CITER=1
		binary.LittleEndian.PutUint32(buf[24:28], dlastSGA)
		binary.LittleEndian.PutUint16(buf[28:30], csr)
		binary.LittleEndian.PutUint16(buf[30:32], 1) // BITER=1
		copy(mem.data[addr:], buf)
	}

	// Element 2 (final): 64 bytes s2->d2, ESG=0, INTMAJOR=1.
	putDesc(desc2Addr, s2, d2, 64, 1, 1, 0x0002, 0)
	// Element 1: 32 bytes s1->d1, ESG=1, reload from desc2Addr.
	putDesc(desc1Addr, s1, d1, 32, 1, 1, 0x0010, desc2Addr)

	// Element 0 lives directly in channel 1's registers: 16 bytes s0->d0,
	// ESG=1, reload from desc1Addr.
	programBaseline(w0, 1, s0, d0, 1, 1, 0x0000, 16)
	w0.WriteRegister(tcdOffset(1, 0x38), 4, desc1Addr)
	w0.WriteRegister(tcdOffset(1, 0x3C), 2, 0x0011) // ESG|START

	if !bytesEqual(mem.data[d0:d0+16], mem.data[s0:s0+16]) {
		t.Error("element 0 destination mismatch")
	}

	// Element 0 completed and reloaded element 1's descriptor; CH_INT.INT
	// was set on this reload too (the reference engine always raises
	// DONE/INT on major-loop completion, even when ESG just queued the next
	// link), although the IRQ line is only re-driven after a minor loop, so
	// it stayed deasserted. Acknowledge the flag and re-arm to advance the
	// chain.
	w0.WriteRegister(tcdOffset(1, 0x08), 4, 1)      // ack CH_INT.INT
	w0.WriteRegister(tcdOffset(1, 0x3C), 2, 0x0011) // ESG|START, runs element 1

	if !bytesEqual(mem.data[d1:d1+32], mem.data[s1:s1+32]) {
		t.Error("element 1 destination mismatch")
	}

	w0.WriteRegister(tcdOffset(1, 0x08), 4, 1)
	w0.WriteRegister(tcdOffset(1, 0x3C), 2, 0x0003) // INTMAJOR|START, runs element 2

	if !bytesEqual(mem.data[d2:d2+64], mem.data[s2:s2+64]) {
		t.Error("element 2 destination mismatch")
	}

	intFlag := w0.ReadRegister(tcdOffset(1, 0x08), 4)
	if intFlag&1 == 0 {
		t.Error("channel 1 CH_INT.INT not set after the final link's INTMAJOR completion")
	}
	if !irq.asserted {
		t.Error("channel 1 IRQ not asserted after the final link completes")
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
