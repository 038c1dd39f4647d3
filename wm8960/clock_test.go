package wm8960

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetSampleRate_44100(t *testing.T) {
	d, _ := newTestDevice(t)
	require.NoError(t, d.SetSampleRate(44100))

	assert.True(t, d.PLL())
	assert.True(t, d.ClockFractionalMode())
	assert.True(t, d.ClockFromPLL())
	assert.True(t, d.PLLPrescaleDiv2())
	assert.True(t, d.SystemClockDiv2())
	assert.Equal(t, uint16(7), d.PLLN())
	assert.Equal(t, uint32(0x86C226), d.PLLK())
	assert.Equal(t, 4.0, d.BaseClockDivider())
	assert.Equal(t, 16.0, d.AmpClockDivider())
	assert.Equal(t, 1.0, d.ADCClockDivider())
	assert.Equal(t, 1.0, d.DACClockDivider())

	assert.Equal(t, uint16(0x037), value(d, REG_PLL_N))
	assert.Equal(t, uint16(0x086), value(d, REG_PLL_K_1))
	assert.Equal(t, uint16(0x0C2), value(d, REG_PLL_K_2))
	assert.Equal(t, uint16(0x026), value(d, REG_PLL_K_3))
	assert.Equal(t, uint16(0x005), value(d, REG_CLOCKING_1))
	assert.Equal(t, uint16(0x1C4), value(d, REG_CLOCKING_2))

	rate, ok := d.SampleRate()
	assert.True(t, ok)
	assert.Equal(t, 44100, rate)
}

func TestSetSampleRate_48000(t *testing.T) {
	d, _ := newTestDevice(t)
	require.NoError(t, d.SetSampleRate(48000))

	assert.Equal(t, uint16(8), d.PLLN())
	assert.Equal(t, uint32(0x3126E8), d.PLLK())
	assert.Equal(t, uint16(0x038), value(d, REG_PLL_N))
	assert.Equal(t, uint16(0x0E8), value(d, REG_PLL_K_3))
	assert.Equal(t, 1.0, d.ADCClockDivider())

	rate, ok := d.SampleRate()
	assert.True(t, ok)
	assert.Equal(t, 48000, rate)
}

func TestSetSampleRate_Dividers(t *testing.T) {
	tests := []struct {
		rate int
		n    uint16
		div  float64
	}{
		{8000, 8, 6.0},
		{11025, 7, 4.0},
		{12000, 8, 4.0},
		{16000, 8, 3.0},
		{22050, 7, 2.0},
		{24000, 8, 2.0},
		{32000, 8, 1.5},
	}
	for _, tt := range tests {
		d, _ := newTestDevice(t)
		require.NoErrorf(t, d.SetSampleRate(tt.rate), "rate %d", tt.rate)
		assert.Equalf(t, tt.n, d.PLLN(), "rate %d", tt.rate)
		assert.Equalf(t, tt.div, d.ADCClockDivider(), "rate %d", tt.rate)
		assert.Equalf(t, tt.div, d.DACClockDivider(), "rate %d", tt.rate)
	}
}

func TestSetSampleRate_8000Register(t *testing.T) {
	d, _ := newTestDevice(t)
	require.NoError(t, d.SetSampleRate(8000))
	assert.Equal(t, uint16(0x1B5), value(d, REG_CLOCKING_1))
}

func TestSetSampleRate_Invalid(t *testing.T) {
	d, bus := newTestDevice(t)
	err := d.SetSampleRate(12345)
	assert.ErrorIs(t, err, ErrInvalidSampleRate)
	assert.Zero(t, bus.count(), "invalid rates must not touch the chip")

	_, ok := d.SampleRate()
	assert.False(t, ok)
}

func TestSetSampleRate_InvalidKeepsPrevious(t *testing.T) {
	d, _ := newTestDevice(t)
	require.NoError(t, d.SetSampleRate(22050))
	assert.Error(t, d.SetSampleRate(96000))

	rate, ok := d.SampleRate()
	assert.True(t, ok)
	assert.Equal(t, 22050, rate)
}

func TestClockDivider_UnsupportedIgnored(t *testing.T) {
	d, bus := newTestDevice(t)
	require.NoError(t, d.SetBaseClockDivider(7.0))
	assert.Zero(t, bus.count())
	assert.Equal(t, 1.0, d.BaseClockDivider())

	require.NoError(t, d.SetGPIOClockDivider(5.5))
	assert.Equal(t, 5.5, d.GPIOClockDivider())
	assert.Equal(t, uint16(0x108), value(d, REG_PLL_N))
}

func TestPLLK_MasksHighBits(t *testing.T) {
	d, _ := newTestDevice(t)
	require.NoError(t, d.SetPLLK(0xFF123456))
	assert.Equal(t, uint32(0x123456), d.PLLK())
}

func TestPLLK_Default(t *testing.T) {
	d, _ := newTestDevice(t)
	assert.Equal(t, uint32(0x3126E9), d.PLLK())
}
