package soc

// Clock is a minimal stand-in for the host framework's qdev clock objects
// (Clock* / clock_set_hz / clock_set_source / clock_has_source in the
// reference SoC): a named frequency that is either driven directly or
// derived from another Clock by a fixed multiply/divide ratio.
//
// Grounded on NXPS32K358State's sysclk/refclk/aips_plat_clk/aips_slow_clk
// fields (original_source/qemu/include/hw/arm/nxps32k358_soc.h) and the
// clock_set_mul_div/clock_set_source calls in nxps32k358_soc_realize.
type Clock struct {
	name   string
	hz     uint32
	source *Clock
	mul    uint32
	div    uint32
}

// NewClock creates an undriven clock named name. An undriven clock with no
// source reports 0 Hz until SetHz or SetSource is called.
func NewClock(name string) *Clock {
	return &Clock{name: name}
}

// Hz implements devices.Clock, returning the clock's current frequency:
// its own fixed rate, or its source's rate scaled by mul/div if derived.
func (c *Clock) Hz() uint32 {
	if c.source != nil {
		return c.source.Hz() * c.mul / c.div
	}
	return c.hz
}

// SetHz drives the clock directly at hz. Calling this on a derived clock
// (one with a source already wired) is a programming error in this model,
// mirroring clock_set_hz's expectation of an unparented clock.
func (c *Clock) SetHz(hz uint32) {
	c.hz = hz
}

// HasSource reports whether the clock derives its frequency from another
// clock, the model's equivalent of clock_has_source.
func (c *Clock) HasSource() bool {
	return c.source != nil
}

// SetSource derives the clock from src at the given mul/div ratio,
// mirroring clock_set_mul_div followed by clock_set_source. refclk running
// at sysclk/8 is expressed as refclk.SetSource(sysclk, 1, 8).
func (c *Clock) SetSource(src *Clock, mul, div uint32) {
	c.source = src
	c.mul = mul
	c.div = div
}

// Name returns the clock's label, used in bring-up error messages.
func (c *Clock) Name() string { return c.name }
