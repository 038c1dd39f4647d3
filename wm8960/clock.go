package wm8960

import (
	"errors"
	"fmt"
)

// ErrInvalidSampleRate is returned by SetSampleRate for rates the clock
// recipe cannot produce.
var ErrInvalidSampleRate = errors.New("wm8960: invalid sample rate")

const pllKMask = 1<<24 - 1

var (
	pll              = Bit{REG_PWR_MGMT_2, 0}
	pllPrescaleDiv2  = Bit{REG_PLL_N, 4}
	pllN             = Bits{REG_PLL_N, 4, 0}
	pllFractional    = Bit{REG_PLL_N, 5}
	pllK             = [3]Bits{{REG_PLL_K_1, 8, 0}, {REG_PLL_K_2, 8, 0}, {REG_PLL_K_3, 8, 0}}
	clockFromPLL     = Bit{REG_CLOCKING_1, 0}
	systemClockDiv   = Bits{REG_CLOCKING_1, 2, 1}
	adcClockDivider  = Bits{REG_CLOCKING_1, 3, 6}
	dacClockDivider  = Bits{REG_CLOCKING_1, 3, 3}
	baseClockDivider = Bits{REG_CLOCKING_2, 4, 0}
	ampClockDivider  = Bits{REG_CLOCKING_2, 3, 6}
	gpioClockDivider = Bits{REG_PLL_N, 3, 6}

	sampleRateFamilies = []struct {
		base  int
		rates []int
		n     uint16
		k     uint32
	}{
		// SYSCLK 12.288 MHz, DCLK 768 kHz
		{48000, []int{8000, 12000, 16000, 24000, 32000, 48000}, 8, 0x3126E8},
		// SYSCLK 11.2896 MHz, DCLK 705.6 kHz
		{44100, []int{11025, 22050, 44100}, 7, 0x86C226},
	}
)

// PLL reports whether the PLL is powered.
func (d *Device) PLL() bool { return pll.Get(d) }

// SetPLL powers the PLL. The class D speaker driver needs it.
func (d *Device) SetPLL(on bool) error { return pll.Set(d, on) }

// PLLPrescaleDiv2 reports whether MCLK is halved before the PLL.
func (d *Device) PLLPrescaleDiv2() bool { return pllPrescaleDiv2.Get(d) }

// SetPLLPrescaleDiv2 halves MCLK before it enters the PLL.
func (d *Device) SetPLLPrescaleDiv2(on bool) error { return pllPrescaleDiv2.Set(d, on) }

// PLLN returns the integer part of the PLL ratio.
func (d *Device) PLLN() uint16 { return pllN.Get(d) }

// SetPLLN sets the integer part of the PLL ratio. The PLL locks for values
// from 6 to 12.
func (d *Device) SetPLLN(n uint16) error { return pllN.Set(d, n) }

// PLLK returns the 24-bit fractional part of the PLL ratio.
func (d *Device) PLLK() uint32 {
	var k uint32
	for _, f := range pllK {
		k = k<<8 | uint32(f.Get(d))
	}
	return k
}

// SetPLLK sets the 24-bit fractional part of the PLL ratio, high byte first.
// Higher bits of k are ignored.
func (d *Device) SetPLLK(k uint32) error {
	k &= pllKMask
	for i, f := range pllK {
		shift := 8 * uint(len(pllK)-1-i)
		if err := f.Set(d, uint16(k>>shift&0xff)); err != nil {
			return err
		}
	}
	return nil
}

// ClockFractionalMode reports whether the PLL runs in fractional mode.
func (d *Device) ClockFractionalMode() bool { return pllFractional.Get(d) }

// SetClockFractionalMode switches the PLL between integer and fractional mode.
func (d *Device) SetClockFractionalMode(on bool) error { return pllFractional.Set(d, on) }

// ClockFromPLL reports whether SYSCLK comes from the PLL rather than MCLK.
func (d *Device) ClockFromPLL() bool { return clockFromPLL.Get(d) }

// SetClockFromPLL derives SYSCLK from the PLL output instead of MCLK.
func (d *Device) SetClockFromPLL(on bool) error { return clockFromPLL.Set(d, on) }

// SystemClockDiv2 reports whether the SYSCLK source is divided by 2.
func (d *Device) SystemClockDiv2() bool { return systemClockDiv.Get(d) == sysclkDivBy2 }

// SetSystemClockDiv2 divides the SYSCLK source by 2.
func (d *Device) SetSystemClockDiv2(on bool) error {
	if on {
		return systemClockDiv.Set(d, sysclkDivBy2)
	}
	return systemClockDiv.Set(d, sysclkDivBy1)
}

func setDivider(d *Device, field Bits, table []float64, ratio float64) error {
	code, ok := dividerIndex(table, ratio)
	if !ok {
		return nil
	}
	return field.Set(d, code)
}

// ADCClockDivider returns the ADC rate divisor, sample rate = SYSCLK / (256 * divisor).
func (d *Device) ADCClockDivider() float64 {
	return tableValue(adcDacDividers, adcClockDivider.Get(d))
}

// SetADCClockDivider sets the ADC rate divisor to one of 1.0, 1.5, 2.0, 3.0,
// 4.0, 5.5 or 6.0. Other values leave the divisor unchanged.
func (d *Device) SetADCClockDivider(div float64) error {
	return setDivider(d, adcClockDivider, adcDacDividers, div)
}

// DACClockDivider returns the DAC rate divisor, sample rate = SYSCLK / (256 * divisor).
func (d *Device) DACClockDivider() float64 {
	return tableValue(adcDacDividers, dacClockDivider.Get(d))
}

// SetDACClockDivider sets the DAC rate divisor to one of 1.0, 1.5, 2.0, 3.0,
// 4.0, 5.5 or 6.0. Other values leave the divisor unchanged.
func (d *Device) SetDACClockDivider(div float64) error {
	return setDivider(d, dacClockDivider, adcDacDividers, div)
}

// BaseClockDivider returns the BCLK divisor used in master mode.
func (d *Device) BaseClockDivider() float64 {
	return tableValue(bclkDividers, baseClockDivider.Get(d))
}

// SetBaseClockDivider sets BCLK = SYSCLK / div in master mode. Unsupported
// divisors leave the setting unchanged.
func (d *Device) SetBaseClockDivider(div float64) error {
	return setDivider(d, baseClockDivider, bclkDividers, div)
}

// AmpClockDivider returns the class D switching clock divisor.
func (d *Device) AmpClockDivider() float64 {
	return tableValue(dclkDividers, ampClockDivider.Get(d))
}

// SetAmpClockDivider sets DCLK = SYSCLK / div for the class D driver.
// Unsupported divisors leave the setting unchanged.
func (d *Device) SetAmpClockDivider(div float64) error {
	return setDivider(d, ampClockDivider, dclkDividers, div)
}

// GPIOClockDivider returns the OPCLK divisor presented on GPIO1.
func (d *Device) GPIOClockDivider() float64 {
	return tableValue(opclkDividers, gpioClockDivider.Get(d))
}

// SetGPIOClockDivider sets OPCLK = SYSCLK / div, output on GPIO1 when the
// GPIO mode is 4. Unsupported divisors leave the setting unchanged.
func (d *Device) SetGPIOClockDivider(div float64) error {
	return setDivider(d, gpioClockDivider, opclkDividers, div)
}

// SampleRate returns the rate last set by SetSampleRate; ok is false if none
// was set since New or Reset.
func (d *Device) SampleRate() (rate int, ok bool) {
	d.busMutex.Lock()
	defer d.busMutex.Unlock()
	return d.sampleRate, d.sampleRate != 0
}

// SetSampleRate configures the PLL and clock dividers for rate, assuming a
// 24 MHz MCLK. Supported rates are 8000, 11025, 12000, 16000, 22050, 24000,
// 32000, 44100 and 48000. Any other rate returns ErrInvalidSampleRate
// without touching the chip.
func (d *Device) SetSampleRate(rate int) error {
	family := -1
	for i, f := range sampleRateFamilies {
		for _, r := range f.rates {
			if r == rate {
				family = i
			}
		}
	}
	if family < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, rate)
	}
	f := sampleRateFamilies[family]
	div := float64(f.base) / float64(rate)

	steps := []func() error{
		func() error { return d.SetPLL(true) },
		func() error { return d.SetClockFractionalMode(true) },
		func() error { return d.SetClockFromPLL(true) },
		func() error { return d.SetPLLPrescaleDiv2(true) },
		func() error { return d.SetSystemClockDiv2(true) },
		func() error { return d.SetBaseClockDivider(4.0) },
		func() error { return d.SetAmpClockDivider(16.0) },
		func() error { return d.SetPLLN(f.n) },
		func() error { return d.SetPLLK(f.k) },
		func() error { return d.SetADCClockDivider(div) },
		func() error { return d.SetDACClockDivider(div) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	d.busMutex.Lock()
	d.sampleRate = rate
	d.busMutex.Unlock()
	return nil
}
