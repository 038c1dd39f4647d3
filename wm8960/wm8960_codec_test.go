package wm8960

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCodec(t *testing.T) (*Codec, *fakeBus) {
	t.Helper()
	d, bus := newTestDevice(t)
	c := NewCodec(d)
	require.NoError(t, c.Configure(44100, 16))
	return &c, bus
}

func TestCodec_Configure(t *testing.T) {
	c, bus := newTestCodec(t)
	d := c.Device()

	assert.Equal(t, []byte{0x1E, 0x80}, bus.frames[0], "starts with a reset")
	assert.True(t, d.Power())
	assert.Equal(t, VMIDPlayback, d.VMID())

	rate, ok := c.SampleRate()
	assert.True(t, ok)
	assert.Equal(t, 44100, rate)
	assert.Equal(t, 16, c.BitDepth())

	assert.True(t, d.ADC())
	assert.True(t, d.Input())
	assert.Equal(t, 0.0, d.MicBoostGain())
	assert.True(t, d.MicZeroCross())
	assert.True(t, d.DAC())
	assert.True(t, d.DACOutput())
	assert.True(t, d.Output())
	assert.True(t, d.MonoOutput())
	assert.True(t, d.HeadphoneZeroCross())
	assert.True(t, d.SpeakerZeroCross())

	assert.Equal(t, InputDisabled, c.Input())
	assert.Equal(t, 0.0, c.Gain())
	assert.Equal(t, 0.0, c.Volume(), "DAC is muted after reset")
	assert.Equal(t, 0.0, c.Headphone())
	assert.Equal(t, 0.0, c.Speaker())
}

func TestCodec_ConfigureInvalidRate(t *testing.T) {
	d, _ := newTestDevice(t)
	c := NewCodec(d)
	assert.ErrorIs(t, c.Configure(12345, 16), ErrInvalidSampleRate)
}

func TestCodec_ConfigureBusError(t *testing.T) {
	d, bus := newTestDevice(t)
	nack := errors.New("nack")
	bus.err = nack
	c := NewCodec(d)
	assert.ErrorIs(t, c.Configure(48000, 24), nack)
}

// --- input ---

func TestCodec_InputMic2(t *testing.T) {
	c, _ := newTestCodec(t)
	d := c.Device()
	require.NoError(t, c.SetInput(InputMic2))

	assert.Equal(t, InputMic2, c.Input())
	assert.True(t, d.Mic())
	assert.True(t, d.MicInvertingInput())
	assert.Equal(t, MicInputInput2, d.LeftMicInput())
	assert.Equal(t, MicInputInput2, d.RightMicInput())
	assert.False(t, d.MicMute())
	assert.True(t, d.MicBoost())

	_, ok := d.Input2Boost()
	assert.False(t, ok, "line paths are muted while a mic is selected")
	_, ok = d.Input3Boost()
	assert.False(t, ok)

	require.NoError(t, c.SetGain(1.0))
	assert.InDelta(t, MIC_GAIN_MAX, d.MicVolume(), 1e-9)
}

func TestCodec_InputMic1(t *testing.T) {
	c, _ := newTestCodec(t)
	require.NoError(t, c.SetInput(InputMic1))
	assert.Equal(t, MicInputVMID, c.Device().LeftMicInput())
}

func TestCodec_InputMic3(t *testing.T) {
	c, _ := newTestCodec(t)
	require.NoError(t, c.SetInput(InputMic3))
	assert.Equal(t, MicInputInput3, c.Device().LeftMicInput())
}

func TestCodec_InputLine3(t *testing.T) {
	c, _ := newTestCodec(t)
	d := c.Device()
	require.NoError(t, c.SetGain(1.0))
	require.NoError(t, c.SetInput(InputLine3))

	assert.False(t, d.Mic())
	assert.True(t, d.MicMute())
	assert.False(t, d.MicBoost())
	assert.Equal(t, MicInputVMID, d.LeftMicInput())
	assert.InDelta(t, MIC_GAIN_MIN, d.MicVolume(), 1e-9)

	db, ok := d.Input3Boost()
	assert.True(t, ok)
	assert.InDelta(t, BOOST_GAIN_MAX, db, 1e-9)
	_, ok = d.Input2Boost()
	assert.False(t, ok)
}

func TestCodec_GainClamped(t *testing.T) {
	c, _ := newTestCodec(t)
	require.NoError(t, c.SetInput(InputLine2))
	require.NoError(t, c.SetGain(2.0))
	assert.Equal(t, 1.0, c.Gain())

	require.NoError(t, c.SetGain(-1.0))
	assert.Equal(t, 0.0, c.Gain())
	db, ok := c.Device().Input2Boost()
	assert.True(t, ok)
	assert.InDelta(t, BOOST_GAIN_MIN, db, 1e-9)
}

// --- output ---

func TestCodec_Volume(t *testing.T) {
	c, _ := newTestCodec(t)
	d := c.Device()

	require.NoError(t, c.SetVolume(1.0))
	assert.False(t, d.DACMute())
	assert.InDelta(t, 0.0, d.DACVolume(), 1e-9)
	assert.InDelta(t, 1.0, c.Volume(), 1e-9)

	require.NoError(t, c.SetVolume(0.5))
	assert.InDelta(t, 0.5, c.Volume(), 1.0/254)

	require.NoError(t, c.SetVolume(0.0))
	assert.True(t, d.DACMute())
	assert.Equal(t, 0.0, c.Volume())
}

func TestCodec_Headphone(t *testing.T) {
	c, _ := newTestCodec(t)
	d := c.Device()

	require.NoError(t, c.SetHeadphone(1.0))
	assert.True(t, d.Headphone())
	assert.InDelta(t, 1.0, c.Headphone(), 1e-9)

	require.NoError(t, c.SetHeadphone(0.0))
	assert.False(t, d.Headphone())
	_, ok := d.HeadphoneVolume()
	assert.False(t, ok, "muted")
	assert.Equal(t, 0.0, c.Headphone())
}

func TestCodec_Speaker(t *testing.T) {
	c, _ := newTestCodec(t)
	d := c.Device()

	require.NoError(t, c.SetSpeaker(0.5))
	assert.True(t, d.Speaker())
	assert.InDelta(t, 0.5, c.Speaker(), 1.0/79)

	require.NoError(t, c.SetSpeaker(0.0))
	assert.False(t, d.Speaker())
	assert.Equal(t, 0.0, c.Speaker())
}

func TestCodec_Monitor(t *testing.T) {
	c, _ := newTestCodec(t)
	d := c.Device()

	require.NoError(t, c.SetMonitor(1.0))
	assert.True(t, d.MicOutput())
	assert.InDelta(t, 1.0, c.Monitor(), 1e-9)

	require.NoError(t, c.SetMonitor(0.0))
	assert.False(t, d.MicOutput())
	assert.Equal(t, 0.0, c.Monitor())
}

func TestCodec_Loopback(t *testing.T) {
	c, _ := newTestCodec(t)
	d := c.Device()
	assert.False(t, c.Loopback())

	require.NoError(t, c.SetLoopback(true))
	assert.True(t, d.MasterMode())
	assert.True(t, d.GPIOOutput())
	assert.True(t, d.Loopback())
	assert.True(t, c.Loopback())

	require.NoError(t, c.SetLoopback(false))
	assert.False(t, c.Loopback())
}

func TestCodec_Enhance(t *testing.T) {
	c, _ := newTestCodec(t)
	require.NoError(t, c.SetEnhance(1.0))
	assert.True(t, c.Device().Enhance())
	assert.InDelta(t, 1.0, c.Enhance(), 1e-9)

	require.NoError(t, c.SetEnhance(0.0))
	assert.False(t, c.Device().Enhance())
	assert.Equal(t, 0.0, c.Enhance())
}

// --- ALC ---

func TestCodec_ALC(t *testing.T) {
	c, _ := newTestCodec(t)
	require.NoError(t, c.SetALC(true))
	assert.True(t, c.ALC())
	assert.True(t, c.Device().LeftALC())
	assert.True(t, c.Device().RightALC())
}

func TestCodec_ALCGain(t *testing.T) {
	c, _ := newTestCodec(t)

	require.NoError(t, c.SetALCGain(ALCGain{Target: 1.0, MaxGain: 1.0, MinGain: 0.0, NoiseGate: 0.0}))
	g := c.ALCGain()
	assert.InDelta(t, 1.0, g.Target, 1e-9)
	assert.InDelta(t, 1.0, g.MaxGain, 1e-9)
	assert.InDelta(t, 0.0, g.MinGain, 1e-9)
	assert.Equal(t, 0.0, g.NoiseGate)
	assert.False(t, c.Device().NoiseGate())

	require.NoError(t, c.SetALCGain(ALCGain{Target: 0.5, MaxGain: 0.5, MinGain: 0.5, NoiseGate: 0.5}))
	g = c.ALCGain()
	assert.True(t, c.Device().NoiseGate())
	assert.InDelta(t, 0.5, g.Target, 1.0/15)
	assert.InDelta(t, 0.5, g.MaxGain, 1.0/7)
	assert.InDelta(t, 0.5, g.MinGain, 1.0/7)
	assert.InDelta(t, 0.5, g.NoiseGate, 1.0/31)
}

func TestCodec_ALCTime(t *testing.T) {
	c, _ := newTestCodec(t)
	require.NoError(t, c.SetALCTime(ALCTime{
		Attack: 24 * time.Millisecond,
		Decay:  192 * time.Millisecond,
		Hold:   0,
	}))

	got := c.ALCTime()
	assert.InDelta(t, 0.024, got.Attack.Seconds(), 1e-6)
	assert.InDelta(t, 0.192, got.Decay.Seconds(), 1e-6)
	assert.Equal(t, time.Duration(0), got.Hold)
}
