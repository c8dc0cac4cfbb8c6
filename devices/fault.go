package devices

import "fmt"

// Fault is a firmware programming error severe enough that the reference
// eDMA engine's own C implementation used assert() rather than logging and
// continuing: a reserved SSIZE/DSIZE encoding, SMLOE/DMLOE, channel linking,
// or a CITER/BITER write outside the baseline's supported range. Go has no
// analog of a C assert that the host can still recover from across a test
// boundary, so these raise Fault via panic; a bring-up harness or test that
// wants to treat one as a reportable error rather than a crash should
// recover and re-wrap it. LPUART's 9-bit-frame rejection is a softer guest
// error (log and drop, see lpuart.go) rather than a Fault.
type Fault struct {
	Device string
	Reason string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s: firmware fault: %s", f.Device, f.Reason)
}

func fault(device, format string, args ...any) {
	panic(&Fault{Device: device, Reason: fmt.Sprintf(format, args...)})
}
