// Command s32k358-boot is a bring-up harness for the S32K358 device
// library: it realizes a SoC, prints its effective address map, and checks
// a guest firmware image exists and is readable, mirroring the teacher's
// virtual_machine.go bring-up flow (kernel path in, address space wired,
// nothing else) translated into stdlib flags in place of fixed function
// arguments.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/s32k358/soc/devices"
	"github.com/s32k358/soc/soc"
)

// consolePort is the LPUART index the harness treats as the firmware
// console, matching the reference board's usual debug-UART wiring.
const consolePort = 3

// sysclkHz is the fixed system clock this harness drives sysclk at; real
// board bring-up would derive it from a PLL configuration register this
// library does not model.
const sysclkHz = 160_000_000

func main() {
	imagePath := flag.String("image", "", "path to the guest firmware image to check before bring-up")
	trace := flag.Int("trace", 0, "guest-error trace verbosity: 0 silences device logging, 1 enables it")
	flag.Parse()

	if *trace == 0 {
		log.SetOutput(io.Discard)
	}

	if *imagePath != "" {
		f, err := os.Open(*imagePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "s32k358-boot: %v\n", err)
			os.Exit(1)
		}
		f.Close()
	}

	sysclk := soc.NewClock("sysclk")
	sysclk.SetHz(sysclkHz)

	var chrs [16]devices.CharBackend
	chrs[consolePort] = consoleBackend{}

	s, err := soc.New(sysclk, hostMemory{}, chrs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "s32k358-boot: realize failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("s32k358-boot: sysclk=%dHz refclk=%dHz aips_plat=%dHz aips_slow=%dHz\n",
		s.SysClk.Hz(), s.RefClk.Hz(), s.AIPSPlatClk.Hz(), s.AIPSSlowClk.Hz())
	fmt.Println("s32k358-boot: register bus address map:")
	for _, region := range s.Bus.Regions() {
		fmt.Println(" ", region)
	}
	fmt.Println("s32k358-boot: backing memory regions:")
	for _, r := range s.Regions {
		fmt.Printf("  0x%08x+0x%x %s (read-only=%v)\n", r.Base, r.Size, r.Name, r.ReadOnly)
	}
}

// consoleBackend writes transmitted LPUART bytes straight to stdout and
// accepts no input, a minimal CharBackend for a harness with no real
// terminal wired up.
type consoleBackend struct{}

func (consoleBackend) WriteByte(b byte) error {
	_, err := os.Stdout.Write([]byte{b})
	return err
}

func (consoleBackend) SetBaud(hz uint32) {}

func (consoleBackend) AcceptInput() {}

// hostMemory is a no-op MemoryBus: this harness never runs a CPU core, so
// the eDMA engine it wires up never actually issues a transfer.
type hostMemory struct{}

func (hostMemory) ReadPhys(addr uint32, buf []byte) error  { return nil }
func (hostMemory) WritePhys(addr uint32, buf []byte) error { return nil }
