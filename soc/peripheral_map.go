package soc

// Window sizes shared by the unimplemented peripheral table below; only the
// aes_* windows are wider than the common 16KiB peripheral slot.
const stubSize = 0x4000
const aesStubSize = 0x10000

// unimplementedPeripheral names one address window this library gives no
// real device model to.
type unimplementedPeripheral struct {
	name string
	base uint32
	size uint32
}

// unimplementedPeripherals restates create_unimplemented_devices() from the
// reference SoC verbatim (including its few repeated device names mapped at
// distinct addresses, e.g. "mu_2" and "mu_1" each appearing twice). The
// mc_me entry is omitted: this library maps a real mode-entry stub at that
// address instead (see modeEntry in modeentry.go). The lpuart_* entries are
// omitted: they are superseded by the 16 real LPUART devices mapped over
// the same windows, matching the reference comment that implemented
// devices take priority on overlap.
var unimplementedPeripherals = []unimplementedPeripheral{
	{"hse_xbic", 0x40008000, stubSize},
	{"erm1", 0x4000c000, stubSize},
	{"pfc1", 0x40068000, stubSize},
	{"pfc1_alt", 0x4006c000, stubSize},
	{"swt_3", 0x40070000, stubSize},
	{"trgmux", 0x40080000, stubSize},
	{"bctu", 0x40084000, stubSize},
	{"emios0", 0x40088000, stubSize},
	{"emios1", 0x4008c000, stubSize},
	{"emios2", 0x40090000, stubSize},
	{"lcu0", 0x40098000, stubSize},
	{"lcu1", 0x4009c000, stubSize},
	{"adc_0", 0x400a0000, stubSize},
	{"adc_1", 0x400a4000, stubSize},
	{"adc_2", 0x400a8000, stubSize},
	{"pit0", 0x400b0000, stubSize},
	{"pit1", 0x400b4000, stubSize},
	{"mu_2", 0x400b8000, stubSize},
	{"mu_2", 0x400bc000, stubSize},
	{"mu_3", 0x400c4000, stubSize},
	{"mu_3", 0x400c8000, stubSize},
	{"mu_4", 0x400cc000, stubSize},
	{"mu_4", 0x400d0000, stubSize},
	{"axbs", 0x40200000, stubSize},
	{"system_xbic", 0x40204000, stubSize},
	{"periph_xbic", 0x40208000, stubSize},
	{"edma", 0x4020c000, stubSize},
	{"edma_tcd_0", 0x40210000, stubSize},
	{"edma_tcd_1", 0x40214000, stubSize},
	{"edma_tcd_2", 0x40218000, stubSize},
	{"edma_tcd_3", 0x4021c000, stubSize},
	{"edma_tcd_4", 0x40220000, stubSize},
	{"edma_tcd_5", 0x40224000, stubSize},
	{"edma_tcd_6", 0x40228000, stubSize},
	{"edma_tcd_7", 0x4022c000, stubSize},
	{"edma_tcd_8", 0x40230000, stubSize},
	{"edma_tcd_9", 0x40234000, stubSize},
	{"edma_tcd_10", 0x40238000, stubSize},
	{"edma_tcd_11", 0x4023c000, stubSize},
	{"debug_apb_page0", 0x40240000, stubSize},
	{"debug_apb_page1", 0x40244000, stubSize},
	{"debug_apb_page2", 0x40248000, stubSize},
	{"debug_apb_page3", 0x4024c000, stubSize},
	{"debug_apb_paged_area", 0x40250000, stubSize},
	{"sda-ap", 0x40254000, stubSize},
	{"eim0", 0x40258000, stubSize},
	{"erm0", 0x4025c000, stubSize},
	{"mscm", 0x40260000, stubSize},
	{"pram_0", 0x40264000, stubSize},
	{"pfc", 0x40268000, stubSize},
	{"pfc_alt", 0x4026c000, stubSize},
	{"swt_0", 0x40270000, stubSize},
	{"stm_0", 0x40274000, stubSize},
	{"xrdc", 0x40278000, stubSize},
	{"intm", 0x4027c000, stubSize},
	{"dmamux_0", 0x40280000, stubSize},
	{"dmamux_1", 0x40284000, stubSize},
	{"rtc", 0x40288000, stubSize},
	{"mc_rgm", 0x4028c000, stubSize},
	{"siul_virtwrapper_pdac0_hse", 0x40290000, stubSize},
	{"siul_virtwrapper_pdac0_hse", 0x40294000, stubSize},
	{"siul_virtwrapper_pdac1_m7_0", 0x40298000, stubSize},
	{"siul_virtwrapper_pdac1_m7_0", 0x4029c000, stubSize},
	{"siul_virtwrapper_pdac2_m7_1", 0x402a0000, stubSize},
	{"siul_virtwrapper_pdac2_m7_1", 0x402a4000, stubSize},
	{"siul_virtwrapper_pdac3", 0x402a8000, stubSize},
	{"dcm", 0x402ac000, stubSize},
	{"wkpu", 0x402b4000, stubSize},
	{"cmu", 0x402bc000, stubSize},
	{"tspc", 0x402c4000, stubSize},
	{"sirc", 0x402c8000, stubSize},
	{"sxosc", 0x402cc000, stubSize},
	{"firc", 0x402d0000, stubSize},
	{"fxosc", 0x402d4000, stubSize},
	{"mc_cgm", 0x402d8000, stubSize},
	{"pll", 0x402e0000, stubSize},
	{"pll2", 0x402e4000, stubSize},
	{"pmc", 0x402e8000, stubSize},
	{"fmu", 0x402ec000, stubSize},
	{"fmu_alt", 0x402f0000, stubSize},
	{"siul_virtwrapper_pdac4_m7_2", 0x402f4000, stubSize},
	{"siul_virtwrapper_pdac4_m7_2", 0x402f8000, stubSize},
	{"pit2", 0x402fc000, stubSize},
	{"pit3", 0x40300000, stubSize},
	{"flexcan_0", 0x40304000, stubSize},
	{"flexcan_1", 0x40308000, stubSize},
	{"flexcan_2", 0x4030c000, stubSize},
	{"flexcan_3", 0x40310000, stubSize},
	{"flexcan_4", 0x40314000, stubSize},
	{"flexcan_5", 0x40318000, stubSize},
	{"flexcan_6", 0x4031c000, stubSize},
	{"flexcan_7", 0x40320000, stubSize},
	{"flexio", 0x40324000, stubSize},
	{"siul_virtwrapper_pdac5_m7_3", 0x40348000, stubSize},
	{"siul_virtwrapper_pdac5_m7_3", 0x4034c000, stubSize},
	{"lpi2c_0", 0x40350000, stubSize},
	{"lpi2c_1", 0x40354000, stubSize},
	{"lpspi_0", 0x40358000, stubSize},
	{"lpspi_1", 0x4035c000, stubSize},
	{"lpspi_2", 0x40360000, stubSize},
	{"lpspi_3", 0x40364000, stubSize},
	{"sai0", 0x4036c000, stubSize},
	{"lpcmp_0", 0x40370000, stubSize},
	{"lpcmp_1", 0x40374000, stubSize},
	{"tmu", 0x4037c000, stubSize},
	{"crc", 0x40380000, stubSize},
	{"fccu_", 0x40384000, stubSize},
	{"mu_0", 0x4038c000, stubSize},
	{"mu_1", 0x40390000, stubSize},
	{"jdc", 0x40394000, stubSize},
	{"configuration_gpr", 0x4039c000, stubSize},
	{"stcu", 0x403a0000, stubSize},
	{"selftest_gpr", 0x403b0000, stubSize},
	{"aes_accel", 0x403c0000, aesStubSize},
	{"aes_app0", 0x403d0000, aesStubSize},
	{"aes_app1", 0x403e0000, aesStubSize},
	{"aes_app2", 0x403f0000, aesStubSize},
	{"tcm_xbic", 0x40400000, stubSize},
	{"edma_xbic", 0x40404000, stubSize},
	{"pram2_tcm_xbic", 0x40408000, stubSize},
	{"aes_mux_xbic", 0x4040c000, stubSize},
	{"edma_tcd_12", 0x40410000, stubSize},
	{"edma_tcd_13", 0x40414000, stubSize},
	{"edma_tcd_14", 0x40418000, stubSize},
	{"edma_tcd_15", 0x4041c000, stubSize},
	{"edma_tcd_16", 0x40420000, stubSize},
	{"edma_tcd_17", 0x40424000, stubSize},
	{"edma_tcd_18", 0x40428000, stubSize},
	{"edma_tcd_19", 0x4042c000, stubSize},
	{"edma_tcd_20", 0x40430000, stubSize},
	{"edma_tcd_21", 0x40434000, stubSize},
	{"edma_tcd_22", 0x40438000, stubSize},
	{"edma_tcd_23", 0x4043c000, stubSize},
	{"edma_tcd_24", 0x40440000, stubSize},
	{"edma_tcd_25", 0x40444000, stubSize},
	{"edma_tcd_26", 0x40448000, stubSize},
	{"edma_tcd_27", 0x4044c000, stubSize},
	{"edma_tcd_28", 0x40450000, stubSize},
	{"edma_tcd_29", 0x40454000, stubSize},
	{"edma_tcd_30", 0x40458000, stubSize},
	{"edma_tcd_31", 0x4045c000, stubSize},
	{"sema42", 0x40460000, stubSize},
	{"pram_1", 0x40464000, stubSize},
	{"pram_2", 0x40468000, stubSize},
	{"swt_1", 0x4046c000, stubSize},
	{"swt_2", 0x40470000, stubSize},
	{"stm_1", 0x40474000, stubSize},
	{"stm_2", 0x40478000, stubSize},
	{"stm_3", 0x4047c000, stubSize},
	{"emac", 0x40480000, stubSize},
	{"gmac0", 0x40484000, stubSize},
	{"gmac1", 0x40488000, stubSize},
	{"lpspi_4", 0x404bc000, stubSize},
	{"lpspi_5", 0x404c0000, stubSize},
	{"quadspi", 0x404cc000, stubSize},
	{"sai1", 0x404dc000, stubSize},
	{"usdhc", 0x404e4000, stubSize},
	{"lpcmp_2", 0x404e8000, stubSize},
	{"mu_1", 0x404ec000, stubSize},
	{"eim0", 0x4050c000, stubSize},
	{"eim1", 0x40510000, stubSize},
	{"eim2", 0x40514000, stubSize},
	{"eim3", 0x40518000, stubSize},
	{"aes_app3", 0x40520000, aesStubSize},
	{"aes_app4", 0x40530000, aesStubSize},
	{"aes_app5", 0x40540000, aesStubSize},
	{"aes_app6", 0x40550000, aesStubSize},
	{"aes_app7", 0x40560000, aesStubSize},
	{"flexcan_8", 0x40570000, stubSize},
	{"flexcan_9", 0x40574000, stubSize},
	{"flexcan_10", 0x40578000, stubSize},
	{"flexcan_11", 0x4057c000, stubSize},
	{"fmu1", 0x40580000, stubSize},
	{"fmu1_alt", 0x40584000, stubSize},
	{"pram_3", 0x40588000, stubSize},
}
