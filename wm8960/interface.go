package wm8960

var (
	loopback         = Bit{REG_AUDIO_INTERFACE_2, 0}
	masterMode       = Bit{REG_AUDIO_INTERFACE_1, 6}
	wordLength       = Bits{REG_AUDIO_INTERFACE_1, 2, 2}
	wordSelectInvert = Bit{REG_AUDIO_INTERFACE_1, 4}
	adcChannelSwap   = Bit{REG_AUDIO_INTERFACE_1, 8}

	vrefOutputDisable = Bit{REG_ADDITIONAL_CONTROL_3, 6}
	supplySelect      = Bits{REG_ADDITIONAL_CONTROL_1, 2, 6}

	gpioOutput       = Bit{REG_AUDIO_INTERFACE_2, 6}
	gpioOutputMode   = Bits{REG_ADDITIONAL_CONTROL_4, 3, 4}
	gpioOutputInvert = Bit{REG_ADDITIONAL_CONTROL_4, 7}
)

// Analog bias selections of the VSEL field.
const (
	supply27V = 1
	supply33V = 3
)

// GPIO1 functions selected by SetGPIOOutputMode.
const (
	GPIOJackDetect  = 0 //!< Jack detect input
	GPIOTemperature = 2 //!< Temperature ok
	GPIODebounced   = 3 //!< Debounced jack detect output
	GPIOSysclk      = 4 //!< SYSCLK / GPIOClockDivider
	GPIOPLLLock     = 5 //!< PLL lock
	GPIOLogic0      = 6 //!< Logic 0
	GPIOLogic1      = 7 //!< Logic 1
)

// Loopback reports whether ADC data is looped back into the DAC.
func (d *Device) Loopback() bool { return loopback.Get(d) }

// SetLoopback loops the ADC output back into the DAC inside the digital
// interface.
func (d *Device) SetLoopback(on bool) error { return loopback.Set(d, on) }

// MasterMode reports whether the WM8960 generates BCLK and LRCLK itself.
func (d *Device) MasterMode() bool { return masterMode.Get(d) }

// SetMasterMode makes the WM8960 drive BCLK and LRCLK instead of following
// the host.
func (d *Device) SetMasterMode(on bool) error { return masterMode.Set(d, on) }

// BitDepth returns the audio interface word length in bits: 16, 20, 24 or 32.
func (d *Device) BitDepth() int {
	code := wordLength.Get(d)
	if code == 3 {
		return 32
	}
	return 16 + 4*int(code)
}

// SetBitDepth sets the audio interface word length. Depths are rounded down
// to 16, 20 or 24; anything above 27 selects 32.
func (d *Device) SetBitDepth(bits int) error {
	if bits > 28 {
		bits = 28
	}
	code := (bits - 16) / 4
	if code < 0 {
		code = 0
	}
	return wordLength.Set(d, uint16(code))
}

// WordSelectInvert reports whether LRCLK polarity is inverted (right channel first).
func (d *Device) WordSelectInvert() bool { return wordSelectInvert.Get(d) }

// SetWordSelectInvert inverts the LRCLK polarity.
func (d *Device) SetWordSelectInvert(on bool) error { return wordSelectInvert.Set(d, on) }

// ADCChannelSwap reports whether left and right ADC data are swapped.
func (d *Device) ADCChannelSwap() bool { return adcChannelSwap.Get(d) }

// SetADCChannelSwap swaps left and right ADC data on the interface.
func (d *Device) SetADCChannelSwap(on bool) error { return adcChannelSwap.Set(d, on) }

// VREFOutput reports whether VMID reaches the output stages. It is on after reset.
func (d *Device) VREFOutput() bool { return !vrefOutputDisable.Get(d) }

// SetVREFOutput connects VMID to the output stages. Turning it off
// effectively silences every output.
func (d *Device) SetVREFOutput(on bool) error { return vrefOutputDisable.Set(d, !on) }

// PowerSupply returns the AVDD voltage the analog bias is tuned for: 2.7 or 3.3.
func (d *Device) PowerSupply() float64 {
	if supplySelect.Get(d) >= 2 {
		return 3.3
	}
	return 2.7
}

// SetPowerSupply tunes the analog bias current for an AVDD of volts. Supplies
// below 3.0 V select the 2.7 V setting, everything else the 3.3 V one.
func (d *Device) SetPowerSupply(volts float64) error {
	if volts < 3.0 {
		return supplySelect.Set(d, supply27V)
	}
	return supplySelect.Set(d, supply33V)
}

// GPIOOutput reports whether ADCLRC/GPIO1 runs as a GPIO.
func (d *Device) GPIOOutput() bool { return gpioOutput.Get(d) }

// SetGPIOOutput switches the ADCLRC/GPIO1 pin to its GPIO function. The ADC
// then shares LRCLK with the DAC.
func (d *Device) SetGPIOOutput(on bool) error { return gpioOutput.Set(d, on) }

// GPIOOutputMode returns the GPIO1 function code.
func (d *Device) GPIOOutputMode() uint16 { return gpioOutputMode.Get(d) }

// SetGPIOOutputMode selects the GPIO1 function, 0 to 7.
func (d *Device) SetGPIOOutputMode(mode uint16) error { return gpioOutputMode.Set(d, mode) }

// GPIOOutputInvert reports whether GPIO1 is inverted.
func (d *Device) GPIOOutputInvert() bool { return gpioOutputInvert.Get(d) }

// SetGPIOOutputInvert inverts the GPIO1 output.
func (d *Device) SetGPIOOutputInvert(on bool) error { return gpioOutputInvert.Set(d, on) }
