package soc

import (
	"sync"

	"github.com/s32k358/soc/devices"
)

// numIRQLines and numPriorityBits restate the Cortex-M7 core configuration
// the reference SoC hands to its armv7m container object (num-irq=240,
// num-prio-bits=4).
const (
	numIRQLines     = 240
	numPriorityBits = 4
)

// NVIC is a capability provider standing in for the Cortex-M7's nested
// vectored interrupt controller: it owns one level-triggered line per
// external interrupt source and tracks which are currently asserted. It
// does not model priority arbitration or vector dispatch — those are the
// host CPU framework's responsibility, the same division of labor the
// reference SoC draws by handing its line count and priority-bit width to
// an external armv7m object rather than implementing them itself.
//
// Adapted in shape (owned lock, per-line state, a RaiseIRQ-style setter)
// from devices.PICDevice, but without the 8259A's cascade/ICW/OCW state
// machine: an NVIC's external lines are independent, not chained through a
// master/slave pair.
type NVIC struct {
	mu       sync.Mutex
	asserted [numIRQLines]bool
}

// NewNVIC creates an NVIC with every line deasserted.
func NewNVIC() *NVIC {
	return &NVIC{}
}

// nvicLine is the devices.IRQLine handle handed to a peripheral for one
// fixed external interrupt number.
type nvicLine struct {
	n    *NVIC
	line int
}

func (l nvicLine) Set(asserted bool) {
	l.n.mu.Lock()
	defer l.n.mu.Unlock()
	l.n.asserted[l.line] = asserted
}

// Line returns the capability handle for external interrupt number line
// (0..239), the numbering space the reference SoC's qdev_get_gpio_in calls
// index into.
func (n *NVIC) Line(line int) devices.IRQLine {
	return nvicLine{n: n, line: line}
}

// Asserted reports whether external interrupt line is currently asserted,
// used by bring-up diagnostics and tests to observe a device's IRQ state
// without needing a fake IRQLine of their own.
func (n *NVIC) Asserted(line int) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.asserted[line]
}
