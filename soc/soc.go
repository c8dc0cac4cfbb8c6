// Package soc composes the S32K358 device models into a complete chip:
// one CPU core, its backing memory regions, sixteen LPUART ports, one
// eDMA engine and the address-space glue that wires them together.
//
// Grounded on NXPS32K358State and nxps32k358_soc_realize
// (original_source/qemu/hw/arm/nxps32k358_soc.c and its header): the
// instantiation order and failure semantics below restate that function's
// body, translated from QEMU's object-model/sysbus idiom into plain Go
// construction plus the devices.RegisterBus this library uses in place of
// QEMU's MemoryRegion subregion tree.
package soc

import (
	"fmt"

	"github.com/s32k358/soc/devices"
)

// Physical memory map, restated from nxps32k358_soc.h's address/size
// defines.
const (
	codeFlashBase      = 0x00400000
	codeFlashBlockSize = 2 * 1024 * 1024
	numCodeFlashBanks  = 4

	dataFlashBase = 0x10000000
	dataFlashSize = 128 * 1024

	sramBase      = 0x20400000
	sramBlockSize = 256 * 1024
	numSRAMBanks  = 3

	dtcmBase = 0x20000000
	dtcmSize = 128*1024 + 1

	itcmBase = 0x00000000
	itcmSize = 64 * 1024

	modeEntryBase = 0x402DC000
	modeEntrySize = 1340

	lpuartBase      = 0x40328000
	lpuartStride    = 0x4000
	numLPUARTs      = 16
	lpuartIRQBase   = 141
	aipsPlatClockHz = 80_000_000
	aipsSlowClockHz = 40_000_000

	edmaBase        = 0x4020C000
	edmaIRQBase     = 4
	numEDMAChannels = 32

	// resetVectorSkip is the boot-header span the reference SoC's
	// init-svtor/init-nsvtor properties skip past: the startup code lives
	// at codeFlashBase + resetVectorSkip, 2048-aligned.
	resetVectorSkip = 2048
)

// aipsPlatPorts lists the LPUART port indices wired to aips_plat_clk (80
// MHz); every other port uses aips_slow_clk (40 MHz), restated from
// nxps32k358_soc_realize's "LPUART 0, 1 and 8 use AIPS_PLAT_CLK" comment.
var aipsPlatPorts = map[int]bool{0: true, 1: true, 8: true}

// MemoryRegion describes one backing-store span of guest physical memory
// the SoC maps. The host owns the actual bytes behind each region (section
// 3: "guest-physical memory is not owned by devices"); this is metadata
// for bring-up diagnostics and address-map tests, not a storage
// implementation.
type MemoryRegion struct {
	Name     string
	Base     uint32
	Size     uint32
	ReadOnly bool
}

// SoC owns one CPU core, one eDMA engine, sixteen LPUART ports and the
// register bus that routes guest MMIO accesses into them. It holds no
// back-pointer to anything above it; the host drives it purely through
// Bus and the IRQ lines it hands out via Core.IRQ.
type SoC struct {
	Core *Core
	Bus  *devices.RegisterBus

	SysClk      *Clock
	RefClk      *Clock
	AIPSPlatClk *Clock
	AIPSSlowClk *Clock

	LPUARTs [numLPUARTs]*devices.LPUART
	EDMA    *devices.EDMA

	Regions []MemoryRegion
}

// New realizes a complete SoC: it instantiates the CPU core, memory
// regions, LPUART and eDMA devices and the unimplemented-peripheral stubs,
// and wires every IRQ line, clock and MMIO window, in the order
// nxps32k358_soc_realize performs them.
//
// sysclk must already be driven by the board bring-up layer (clock_has_
// source's role played by the caller having called sysclk.SetHz or wired
// it to a clock tree of its own) before New is called; mem is the host's
// guest-physical-memory access primitive eDMA transfers read and write
// through; chrs supplies one character back-end per LPUART port, nil
// entries left unconnected.
func New(sysclk *Clock, mem devices.MemoryBus, chrs [numLPUARTs]devices.CharBackend) (*SoC, error) {
	if sysclk.Hz() == 0 {
		return nil, fmt.Errorf("soc: sysclk clock must be wired up by the board code")
	}

	refclk := NewClock("refclk")
	if refclk.HasSource() {
		return nil, fmt.Errorf("soc: refclk clock must not be wired up by the board code")
	}
	refclk.SetSource(sysclk, 1, 8)

	core := NewCore(sysclk, refclk)
	core.ResetVector = codeFlashBase + resetVectorSkip

	aipsPlat := NewClock("aips_plat_clk")
	aipsPlat.SetHz(aipsPlatClockHz)
	aipsSlow := NewClock("aips_slow_clk")
	aipsSlow.SetHz(aipsSlowClockHz)

	s := &SoC{
		Core:        core,
		Bus:         devices.NewRegisterBus(),
		SysClk:      sysclk,
		RefClk:      refclk,
		AIPSPlatClk: aipsPlat,
		AIPSSlowClk: aipsSlow,
	}

	s.mapMemoryRegions()
	s.Bus.Map(modeEntryBase, modeEntrySize, "mc_me", modeEntry{})

	// The unimplemented-peripheral stubs are mapped before the real LPUART
	// and eDMA devices below, so RegisterBus's "later registration wins"
	// overlap rule (see bus.go) gives the real devices priority over any
	// stub window they happen to cover — mirroring the reference SoC's
	// create_unimplemented_device() windows, which are given a lower memory
	// priority than the real devices they can overlap for exactly this
	// reason ("Implemented devices have higher priority than unimplemented
	// ones so we don't care if they overlap").
	for _, p := range unimplementedPeripherals {
		s.Bus.Map(p.base, p.size, p.name, devices.NewUnimplemented(p.name, p.size))
	}

	for i := 0; i < numLPUARTs; i++ {
		clk := aipsSlow
		if aipsPlatPorts[i] {
			clk = aipsPlat
		}
		u := devices.NewLPUART(i, clk, chrs[i])
		line := core.IRQ.Line(lpuartIRQBase + i)
		u.SetIRQLine(line)
		s.LPUARTs[i] = u
		s.Bus.Map(lpuartBase+uint32(i)*lpuartStride, lpuartStride, fmt.Sprintf("lpuart%d", i), u)
	}

	e := devices.NewEDMA(mem)
	for ch := 0; ch < numEDMAChannels; ch++ {
		e.SetIRQLine(ch, core.IRQ.Line(edmaIRQBase+ch))
	}
	s.EDMA = e
	s.Bus.Map(edmaBase, devices.Window0Size, "edma.window0", e.Window0())
	s.Bus.Map(edmaBase+devices.Window0Size, devices.Window1Size, "edma.window1", e.Window1())

	return s, nil
}

// mapMemoryRegions records the SoC's backing memory spans as metadata
// only: RAM and ROM are serviced by the host's own memory subsystem
// (section 3's borrowed-not-owned guest physical memory), never by
// RegisterBus, so these ranges are never Map'd onto it. The reference
// SoC's code_flash/data_flash/sram/dtcm/itcm MemoryRegions sit in the same
// system_memory tree as its MMIO subregions but are backed by QEMU's RAM/
// ROM fast path rather than a read/write callback; Regions exists so
// bring-up diagnostics and tests can see the address map without needing
// their own copy of these constants.
func (s *SoC) mapMemoryRegions() {
	for i := 0; i < numCodeFlashBanks; i++ {
		s.addRegion(fmt.Sprintf("code_flash_%d", i), codeFlashBase+uint32(i)*codeFlashBlockSize, codeFlashBlockSize, true)
	}
	s.addRegion("data_flash", dataFlashBase, dataFlashSize, true)
	for i := 0; i < numSRAMBanks; i++ {
		s.addRegion(fmt.Sprintf("sram_%d", i), sramBase+uint32(i)*sramBlockSize, sramBlockSize, false)
	}
	s.addRegion("dtcm", dtcmBase, dtcmSize, false)
	s.addRegion("itcm", itcmBase, itcmSize, false)
}

func (s *SoC) addRegion(name string, base, size uint32, readOnly bool) {
	s.Regions = append(s.Regions, MemoryRegion{Name: name, Base: base, Size: size, ReadOnly: readOnly})
}

// Reset restores every owned device to its power-on state and deasserts
// every IRQ line CPU core wiring touches.
func (s *SoC) Reset() {
	for _, u := range s.LPUARTs {
		u.Reset()
	}
	s.EDMA.Reset()
}
