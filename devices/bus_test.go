package devices_test

import (
	"testing"

	"github.com/s32k358/soc/devices"
)

func TestRegisterBusRoutesByAddress(t *testing.T) {
	b := devices.NewRegisterBus()
	a := devices.NewUnimplemented("a", 0x100)
	c := devices.NewUnimplemented("b", 0x100)
	b.Map(0x1000, 0x100, "a", a)
	b.Map(0x2000, 0x100, "b", c)

	b.Write(0x1010, 4, 0xAA)
	b.Write(0x2010, 4, 0xBB)

	if got := b.Read(0x1010, 4); got != 0 {
		t.Errorf("unimplemented device read = 0x%x, want 0 (stub always returns 0)", got)
	}
}

func TestRegisterBusLaterMappingOverridesOverlap(t *testing.T) {
	b := devices.NewRegisterBus()
	stub := devices.NewUnimplemented("stub", 0x4000)
	clk := fakeClock{hz: 40_000_000}
	real := devices.NewLPUART(0, clk, nil)

	b.Map(0x40328000, 0x4000, "stub", stub)
	b.Map(0x40328000, 0x4000, "lpuart0", real)

	if got := b.Read(0x40328000, 4); got != 0x04040007 {
		t.Errorf("expected the later lpuart0 mapping to win, got VERID 0x%x", got)
	}
}

func TestRegisterBusUnmappedAddressReadsZero(t *testing.T) {
	b := devices.NewRegisterBus()
	if got := b.Read(0xDEADBEEF, 4); got != 0 {
		t.Errorf("unmapped read = 0x%x, want 0", got)
	}
}
