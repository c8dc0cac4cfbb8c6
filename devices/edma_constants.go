package devices

// Channel register offsets within a channel's own TCD block, and TCD field
// offsets within the same block. Each channel's block is addressed modulo
// tcdStride (see edma.go's window decode), mirroring the reference engine's
// `nxps32k358_edma_tcd_read`/`_write` switch, which is keyed purely by this
// offset regardless of which window or channel dispatched into it.
const (
	chCSROffset = 0x00
	chESOffset  = 0x04
	chINTOffset = 0x08
	chSBROffset = 0x0C
	chPRIOffset = 0x10

	tcdSADDROffset       = 0x20
	tcdSOFFOffset        = 0x24
	tcdATTROffset        = 0x26
	tcdNBYTESMLOFFOffset = 0x28
	tcdSLASTSDAOffset    = 0x2C
	tcdDADDROffset       = 0x30
	tcdDOFFOffset        = 0x34
	tcdCITEROffset       = 0x36
	tcdDLASTSGAOffset    = 0x38
	tcdCSROffset         = 0x3C
	tcdBITEROffset       = 0x3E
)

// tcdStride is the per-channel addressing granularity: each TCD occupies a
// 16KiB slot even though its registers only populate the first 0x40 bytes.
const tcdStride = 0x4000

// numChannels is the eDMA engine's fixed channel count.
const numChannels = 32

// window0Channels is how many channels the first MMIO window (global
// registers followed by TCDs) covers before the second window takes over,
// per nxps32k358_edma_init's mmio0/mmio12 split.
const window0Channels = 12

// window0Size and window1Size are the two MMIO windows' byte spans.
const (
	window0Size = tcdStride * (window0Channels + 1)
	window1Size = tcdStride * (numChannels - window0Channels)
)

// Window0Size and Window1Size expose the two MMIO windows' byte spans to
// callers mapping an EDMA instance into an address space, e.g. soc.New.
const (
	Window0Size = window0Size
	Window1Size = window1Size
)

// Global engine register offsets, valid only within window0's first
// tcdStride bytes.
const (
	edmaCSROffset   = 0x00
	edmaESOffset    = 0x04
	edmaINTOffset   = 0x08
	edmaHRSOffset   = 0x0C
	edmaGRPRIBase   = 0x100
	edmaGRPRIStride = 0x04
)

// Reset values and guest-writable masks, restated from the reference
// engine's register field tables.
const (
	edmaCSRReset = 0x00300000
	chSBRReset   = 0x00008002

	edmaCSRWriteMask = 0x000003F6
	grpriWriteMask   = 0x0000001F
)

// reservedSize marks an SSIZE/DSIZE encoding the reference manual declares
// reserved; programming it is a firmware fault.
const reservedSize = 0x7

// maxTransferUnit bounds one minor-loop's max(ssize, dsize) chunk buffer,
// restated from the reference engine's `uint8_t buf[MAX_SIZE]`.
const maxTransferUnit = 64
