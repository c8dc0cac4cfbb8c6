package devices

import "log"

// Unimplemented stands in for a peripheral address window this library
// gives no real behavior to. It accepts any read/write at any offset
// within its mapped size, logs a guest error, and returns 0 on read —
// exactly the reference SoC's create_unimplemented_device() stub.
type Unimplemented struct {
	name string
	size uint32
}

// NewUnimplemented creates a stub named name covering size bytes, used for
// logging only; the register bus determines which address range it owns.
func NewUnimplemented(name string, size uint32) *Unimplemented {
	return &Unimplemented{name: name, size: size}
}

// ReadRegister implements RegisterDevice.
func (d *Unimplemented) ReadRegister(offset uint32, width int) uint32 {
	log.Printf("%s: guest error: unimplemented device read at offset 0x%x", d.name, offset)
	return 0
}

// WriteRegister implements RegisterDevice.
func (d *Unimplemented) WriteRegister(offset uint32, width int, value uint32) {
	log.Printf("%s: guest error: unimplemented device write of 0x%x at offset 0x%x", d.name, value, offset)
}

// Reset implements RegisterDevice; unimplemented devices carry no state.
func (d *Unimplemented) Reset() {}
