package soc

import "github.com/s32k358/soc/devices"

// modeEntryMagicOffset and modeEntryMagic are the one address and value the
// mode-entry stub answers; every other offset in its window reads as 0.
const (
	modeEntryMagicOffset = 0x310
	modeEntryMagic       = 0x01000000
)

// modeEntry satisfies firmware's "mode transition complete" poll during
// bring-up without modeling the MC_ME clock/mode-control block it stands
// in for.
//
// Grounded on mc_me_read/mc_me_write (original_source/qemu/hw/arm/
// nxps32k358_soc.c): the reference implementation is exactly this, a
// single-offset magic-value read with every write and every other read a
// no-op, installed as a plain memory_region_init_io rather than a real
// qdev device. It is modeled here as a RegisterDevice so it can share the
// same RegisterBus dispatch as every other peripheral.
type modeEntry struct{}

func (modeEntry) ReadRegister(offset uint32, width int) uint32 {
	if offset == modeEntryMagicOffset {
		return modeEntryMagic
	}
	return 0
}

func (modeEntry) WriteRegister(offset uint32, width int, value uint32) {}

func (modeEntry) Reset() {}

var _ devices.RegisterDevice = modeEntry{}
