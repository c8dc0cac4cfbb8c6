package devices

// Register byte offsets, restated from nxps32k358_lpuart.h's REG32/REG8
// declarations.
const (
	lpuartVERIDOffset   = 0x00
	lpuartPARAMOffset   = 0x04
	lpuartGLOBALOffset  = 0x08
	lpuartPINCFGOffset  = 0x0C
	lpuartBAUDOffset    = 0x10
	lpuartSTATOffset    = 0x14
	lpuartCONTROLOffset = 0x18
	lpuartDATAOffset    = 0x1C
	lpuartMATCHOffset   = 0x20
	lpuartMODIROffset   = 0x24
	lpuartFIFOOffset    = 0x28
	lpuartWATEROffset   = 0x2C
	lpuartDATAROOffset  = 0x30
	lpuartMCROffset     = 0x40
	lpuartMSROffset     = 0x44
	lpuartREIROffset    = 0x48
	lpuartTEIROffset    = 0x4C
	lpuartHDCROffset    = 0x50
	lpuartTOCROffset    = 0x58
	lpuartTOSROffset    = 0x5C
)

// Bit positions within BAUD, STAT and CONTROL.
const (
	lpuartBaudSBRBit  = 0
	lpuartBaudSBRMask = 0x1FFF
	lpuartBaudOSRBit  = 24
	lpuartBaudOSRMask = 0x1F

	lpuartStatRDRFBit = 21

	lpuartControlMBit    = 4
	lpuartControlM7Bit   = 11
	lpuartControlREBit   = 18
	lpuartControlRIEBit  = 21
	lpuartControlTCIEBit = 22
	lpuartControlTIEBit  = 23

	lpuartGlobalRSTBit = 1
)

// Power-on reset values. Ports 0 and 1 carry a different VERID/PARAM/FIFO
// than the rest, per nxps32k358_lpuart_reset's port-index check; every
// other register resets identically across all 16 ports.
const (
	lpuartVERIDResetLow  = 0x04040007
	lpuartVERIDResetHigh = 0x04040003
	lpuartPARAMResetLow  = 0x00000404
	lpuartPARAMResetHigh = 0x00000202
	lpuartFIFOResetLow   = 0x00C00033
	lpuartFIFOResetHigh  = 0x00C00011

	lpuartGLOBALReset  = 0x00000002
	lpuartPINCFGReset  = 0
	lpuartBAUDReset    = 0x0F000004
	lpuartSTATReset    = 0x00C00000
	lpuartCONTROLReset = 0
	lpuartDATAReset    = 0x00001000
	lpuartMATCHReset   = 0
	lpuartMODIRReset   = 0
	lpuartWATERReset   = 0
	lpuartDATAROReset  = 0x00001000
	lpuartMCRReset     = 0
	lpuartMSRReset     = 0
	lpuartREIRReset    = 0
	lpuartTEIRReset    = 0
	lpuartHDCRReset    = 0
	lpuartTOCRReset    = 0
	lpuartTOSRReset    = 0x0000000F
)

// lowPortCount marks ports 0 and 1 as the two carrying the "low" VERID/
// PARAM/FIFO reset constants; all other ports (2..15) use the "high" set.
const lowPortCount = 2
