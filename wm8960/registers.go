package wm8960

// Registers
const (
	REG_LEFT_INPUT_VOLUME     = 0x00 //!< Left input PGA volume
	REG_RIGHT_INPUT_VOLUME    = 0x01 //!< Right input PGA volume
	REG_LOUT1_VOLUME          = 0x02 //!< Left headphone (LOUT1) volume
	REG_ROUT1_VOLUME          = 0x03 //!< Right headphone (ROUT1) volume
	REG_CLOCKING_1            = 0x04 //!< SYSCLK source, SYSCLK/ADC/DAC dividers
	REG_ADC_DAC_CTRL_1        = 0x05 //!< DAC mute, DAC 6dB attenuation
	REG_ADC_DAC_CTRL_2        = 0x06 //!< DAC soft mute
	REG_AUDIO_INTERFACE_1     = 0x07 //!< Format, word length, master mode
	REG_CLOCKING_2            = 0x08 //!< Class-D clock and BCLK dividers
	REG_AUDIO_INTERFACE_2     = 0x09 //!< GPIO on ADCLRC, loopback
	REG_LEFT_DAC_VOLUME       = 0x0A //!< Left DAC digital volume
	REG_RIGHT_DAC_VOLUME      = 0x0B //!< Right DAC digital volume
	REG_RESET                 = 0x0F //!< Writing any value resets the device
	REG_3D_CONTROL            = 0x10 //!< 3D enhance
	REG_ALC1                  = 0x11 //!< ALC enable, max gain, target
	REG_ALC2                  = 0x12 //!< ALC min gain, hold time
	REG_ALC3                  = 0x13 //!< ALC mode, decay, attack
	REG_NOISE_GATE            = 0x14 //!< Noise gate threshold, enable
	REG_LEFT_ADC_VOLUME       = 0x15 //!< Left ADC digital volume
	REG_RIGHT_ADC_VOLUME      = 0x16 //!< Right ADC digital volume
	REG_ADDITIONAL_CONTROL_1  = 0x17 //!< Analog bias (VSEL)
	REG_ADDITIONAL_CONTROL_2  = 0x18 //!< Headphone switch
	REG_PWR_MGMT_1            = 0x19 //!< VMID, VREF, AIN, ADC, MICBIAS power
	REG_PWR_MGMT_2            = 0x1A //!< DAC, LOUT1/ROUT1, SPK, OUT3, PLL power
	REG_ADDITIONAL_CONTROL_3  = 0x1B //!< VREF output disable
	REG_ANTI_POP_1            = 0x1C //!< Headphone standby
	REG_ANTI_POP_2            = 0x1D //!< Anti-pop discharge
	REG_ADCL_SIGNAL_PATH      = 0x20 //!< Left PGA input select, boost
	REG_ADCR_SIGNAL_PATH      = 0x21 //!< Right PGA input select, boost
	REG_LEFT_OUT_MIX          = 0x22 //!< Left output mixer (DAC, LINPUT3)
	REG_RIGHT_OUT_MIX         = 0x25 //!< Right output mixer (DAC, RINPUT3)
	REG_MONO_OUT_MIX_1        = 0x26 //!< Left mixer to mono out
	REG_MONO_OUT_MIX_2        = 0x27 //!< Right mixer to mono out
	REG_LOUT2_VOLUME          = 0x28 //!< Left speaker (LOUT2) volume
	REG_ROUT2_VOLUME          = 0x29 //!< Right speaker (ROUT2) volume
	REG_MONO_OUT_VOLUME       = 0x2A //!< Mono out attenuation
	REG_INPUT_BOOST_MIXER_1   = 0x2B //!< Left INPUT2/INPUT3 boost
	REG_INPUT_BOOST_MIXER_2   = 0x2C //!< Right INPUT2/INPUT3 boost
	REG_BYPASS_1              = 0x2D //!< Left boost mixer to output mixer
	REG_BYPASS_2              = 0x2E //!< Right boost mixer to output mixer
	REG_PWR_MGMT_3            = 0x2F //!< PGA and output mixer power
	REG_ADDITIONAL_CONTROL_4  = 0x30 //!< GPIO select, MICBIAS level
	REG_CLASS_D_CONTROL_1     = 0x31 //!< Speaker output enables
	REG_CLASS_D_CONTROL_3     = 0x33 //!< Speaker DC/AC boost
	REG_PLL_N                 = 0x34 //!< OPCLK divider, SDM, prescale, PLL N
	REG_PLL_K_1               = 0x35 //!< PLL K[23:16]
	REG_PLL_K_2               = 0x36 //!< PLL K[15:8]
	REG_PLL_K_3               = 0x37 //!< PLL K[7:0]

	RegisterCount = 0x38 //!< Size of the register file (R0..R55)
)

// DefaultAddress is the 7-bit I2C address of the WM8960 (CSB/ADDR strapped low).
const DefaultAddress = 0x1A

// Power-on register values. Reserved registers read as zero.
var registerDefaults = [RegisterCount]uint16{
	0x0097, // R0
	0x0097, // R1
	0x0000, // R2
	0x0000, // R3
	0x0000, // R4
	0x0008, // R5
	0x0000, // R6
	0x000A, // R7
	0x01C0, // R8
	0x0000, // R9
	0x00FF, // R10
	0x00FF, // R11
	0x0000, // R12 reserved
	0x0000, // R13 reserved
	0x0000, // R14 reserved
	0x0000, // R15
	0x0000, // R16
	0x007B, // R17
	0x0100, // R18
	0x0032, // R19
	0x0000, // R20
	0x00C3, // R21
	0x00C3, // R22
	0x01C0, // R23
	0x0000, // R24
	0x0000, // R25
	0x0000, // R26
	0x0000, // R27
	0x0000, // R28
	0x0000, // R29
	0x0000, // R30 reserved
	0x0000, // R31 reserved
	0x0100, // R32
	0x0100, // R33
	0x0050, // R34
	0x0000, // R35 reserved
	0x0000, // R36 reserved
	0x0050, // R37
	0x0000, // R38
	0x0000, // R39
	0x0000, // R40
	0x0000, // R41
	0x0040, // R42
	0x0000, // R43
	0x0000, // R44
	0x0050, // R45
	0x0050, // R46
	0x0000, // R47
	0x0002, // R48
	0x0037, // R49
	0x0000, // R50 reserved
	0x0080, // R51
	0x0008, // R52
	0x0031, // R53
	0x0026, // R54
	0x00E9, // R55
}

// DefaultRegister returns the power-on value of register index, without the
// address bits the shadow store folds into each cell.
func DefaultRegister(index uint8) uint16 {
	return registerDefaults[index]
}

// Engineering-unit limits (dB unless noted)
const (
	MIC_GAIN_MIN       = -17.25 //!< PGA
	MIC_GAIN_MAX       = 30.00
	BOOST_GAIN_MIN     = -12.00 //!< INPUT2/INPUT3 boost mixer
	BOOST_GAIN_MAX     = 6.00
	ADC_VOLUME_MIN     = -97.00
	ADC_VOLUME_MAX     = 30.00
	DAC_VOLUME_MIN     = -127.00
	DAC_VOLUME_MAX     = 0.00
	ALC_TARGET_MIN     = -22.50 //!< dBFS
	ALC_TARGET_MAX     = -1.50
	ALC_MAX_GAIN_MIN   = -12.00
	ALC_MAX_GAIN_MAX   = 30.00
	ALC_MIN_GAIN_MIN   = -17.25
	ALC_MIN_GAIN_MAX   = 24.75
	GATE_THRESHOLD_MIN = -76.50 //!< dBFS
	GATE_THRESHOLD_MAX = -30.00
	OUTPUT_VOLUME_MIN  = -21.00 //!< Output mixer bypass (INPUT3, boost mixer)
	OUTPUT_VOLUME_MAX  = 0.00
	AMP_VOLUME_MIN     = -73.00 //!< Headphone and speaker amplifiers
	AMP_VOLUME_MAX     = 6.00

	ALC_ATTACK_TIME_MIN = 0.006 //!< seconds
	ALC_ATTACK_TIME_MAX = 6.140
	ALC_DECAY_TIME_MIN  = 0.024
	ALC_DECAY_TIME_MAX  = 24.580
	ALC_HOLD_TIME_MIN   = 0.00267
	ALC_HOLD_TIME_MAX   = 43.691
)

// Field codes
const (
	alcAttackCodeMax = 10
	alcDecayCodeMax  = 10
	alcHoldCodeMax   = 15

	sysclkDivBy1 = 0
	sysclkDivBy2 = 2
)

// Non-linear gain steps in dB, indexed by field code.
var (
	micBoostGains     = []float64{0.0, 13.0, 20.0, 29.0}
	speakerBoostGains = []float64{0.0, 2.1, 2.9, 3.6, 4.5, 5.1}
)

// Clock divider ratios, indexed by field code.
var (
	bclkDividers   = []float64{1.0, 1.5, 2.0, 3.0, 4.0, 5.5, 6.0, 8.0, 11.0, 12.0, 16.0, 22.0, 24.0, 32.0}
	dclkDividers   = []float64{1.5, 2.0, 3.0, 4.0, 6.0, 8.0, 12.0, 16.0}
	adcDacDividers = []float64{1.0, 1.5, 2.0, 3.0, 4.0, 5.5, 6.0}
	opclkDividers  = []float64{1.0, 2.0, 3.0, 4.0, 5.5, 6.0}
)
