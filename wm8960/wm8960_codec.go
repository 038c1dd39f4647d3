/*!
 * @file wm8960_codec.go
 *
 * Simplified control surface for the WM8960, modelled on the CircuitPython
 * WM8960 class by Scott Shawcroft and Cooper Dalrymple (Adafruit).
 *
 * @section license License
 *
 * MIT license, all text above must be included in any redistribution
 */

/*
 * ported to TinyGo by Elehobica, 2024
 */

package wm8960

import (
	"time"
)

// Input is a signal routing choice for Codec.SetInput. Bit 0 selects the
// microphone amplifier; bits 2:1 name input 2 or input 3.
type Input uint8

const (
	InputDisabled Input = 0b000 //!< Disconnect all inputs
	InputMic1     Input = 0b001 //!< Input 1 into the mic amplifier, single ended
	InputMic2     Input = 0b011 //!< Inputs 1 and 2 into the mic amplifier, differential
	InputMic3     Input = 0b101 //!< Inputs 1 and 3 into the mic amplifier, differential
	InputLine2    Input = 0b010 //!< Input 2 as a line input
	InputLine3    Input = 0b100 //!< Input 3 as a line input
)

func (in Input) mic() bool { return in&0b001 != 0 }

// ALCGain holds the ALC levels as 0.0 to 1.0 fractions of their ranges.
// A NoiseGate of 0 disables the noise gate.
type ALCGain struct {
	Target    float64
	MaxGain   float64
	MinGain   float64
	NoiseGate float64
}

// ALCTime holds the ALC time constants.
type ALCTime struct {
	Attack time.Duration
	Decay  time.Duration
	Hold   time.Duration
}

// Codec drives a Device through a handful of 0.0 to 1.0 controls, enough to
// record from a mic or line input and to play to the headphone and speaker
// amplifiers over I2S. MCLK is assumed to be 24 MHz.
type Codec struct {
	dev   *Device
	input Input
	gain  float64
}

func NewCodec(dev *Device) Codec {
	return Codec{
		dev:   dev,
		input: InputDisabled,
		gain:  0.0,
	}
}

// Configure resets the device and sets up both signal paths for the given
// sample rate and bit depth. Inputs stay disconnected and all outputs muted
// until the respective controls are raised.
func (c *Codec) Configure(sampleRate, bitDepth int) error {
	c.input = InputDisabled
	c.gain = 0.0

	steps := []func() error{
		c.dev.Configure,
		func() error { return c.dev.SetSampleRate(sampleRate) },
		func() error { return c.dev.SetBitDepth(bitDepth) },
		// ADC
		func() error { return c.dev.SetADC(true) },
		func() error { return c.dev.SetInput(true) },
		func() error { return c.dev.SetMicBoostGain(0.0) },
		func() error { return c.dev.SetMicZeroCross(true) },
		// DAC
		func() error { return c.dev.SetDAC(true) },
		func() error { return c.dev.SetDACOutput(true) },
		// Output
		func() error { return c.dev.SetOutput(true) },
		func() error { return c.dev.SetMonoOutput(true) },
		func() error { return c.dev.SetHeadphoneZeroCross(true) },
		func() error { return c.dev.SetSpeakerZeroCross(true) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// Device returns the underlying register-level driver.
func (c *Codec) Device() *Device {
	return c.dev
}

// SampleRate returns the I2S sample rate.
func (c *Codec) SampleRate() (int, bool) {
	return c.dev.SampleRate()
}

// BitDepth returns the number of bits per I2S sample.
func (c *Codec) BitDepth() int {
	return c.dev.BitDepth()
}

// Input returns the current input selection.
func (c *Codec) Input() Input {
	return c.input
}

// SetInput routes in to the ADC and reapplies the current gain to it.
func (c *Codec) SetInput(in Input) error {
	mic := in.mic()
	source := MicInputVMID
	if mic {
		source = MicInput((in & 0b110) >> 1)
	}

	steps := []func() error{
		func() error { return c.dev.SetMic(mic) },
		func() error { return c.dev.SetMicInvertingInput(mic) },
		func() error { return c.dev.SetMicInput(source) },
		func() error { return c.dev.SetMicMute(!mic) },
		func() error { return c.dev.SetMicBoost(mic) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	c.input = in
	return c.SetGain(c.gain)
}

// Gain returns the analog input gain from 0.0 to 1.0.
func (c *Codec) Gain() float64 {
	return c.gain
}

// SetGain sets the analog gain of the selected input before the ADC, from
// 0.0 to 1.0. Mic inputs use the PGA; line inputs use the boost mixer and
// unselected line inputs are muted.
func (c *Codec) SetGain(gain float64) error {
	gain = clamp(gain, 0.0, 1.0)
	mic := c.input.mic()

	micVolume := MIC_GAIN_MIN
	if mic {
		micVolume = mapRange(gain, 0.0, 1.0, MIC_GAIN_MIN, MIC_GAIN_MAX)
	}
	boost := func(sel Input) float64 {
		if !mic && c.input&sel != 0 {
			return mapRange(gain, 0.0, 1.0, BOOST_GAIN_MIN, BOOST_GAIN_MAX)
		}
		return BOOST_GAIN_MIN - 1.0 // mute
	}

	if err := c.dev.SetMicVolume(micVolume); err != nil {
		return err
	}
	if err := c.dev.SetInput2Boost(boost(InputLine2)); err != nil {
		return err
	}
	if err := c.dev.SetInput3Boost(boost(InputLine3)); err != nil {
		return err
	}
	c.gain = gain
	return nil
}

// Monitor returns how much of the analog input is mixed straight into the
// outputs, from 0.0 to 1.0.
func (c *Codec) Monitor() float64 {
	if !c.dev.MicOutput() {
		return 0.0
	}
	return mapRange(c.dev.MicOutputVolume(), OUTPUT_VOLUME_MIN, OUTPUT_VOLUME_MAX, 0.0, 1.0)
}

// SetMonitor mixes the analog input into the outputs, bypassing the ADC.
// 0.0 disconnects the bypass.
func (c *Codec) SetMonitor(value float64) error {
	if value <= 0.0 {
		if err := c.dev.SetMicOutput(false); err != nil {
			return err
		}
	} else if !c.dev.MicOutput() {
		if err := c.dev.SetMicOutput(true); err != nil {
			return err
		}
	}
	return c.dev.SetMicOutputVolume(mapRange(value, 0.0, 1.0, OUTPUT_VOLUME_MIN, OUTPUT_VOLUME_MAX))
}

// Loopback reports whether the ADC output is fed back into the DAC.
func (c *Codec) Loopback() bool {
	return c.dev.MasterMode() && c.dev.GPIOOutput() && c.dev.Loopback()
}

// SetLoopback feeds the ADC output back into the DAC. The WM8960 then runs
// the interface clocks itself and I2S to the host is unusable.
func (c *Codec) SetLoopback(on bool) error {
	if err := c.dev.SetMasterMode(on); err != nil {
		return err
	}
	if err := c.dev.SetGPIOOutput(on); err != nil {
		return err
	}
	return c.dev.SetLoopback(on)
}

// Volume returns the DAC volume from 0.0 to 1.0.
func (c *Codec) Volume() float64 {
	if c.dev.DACMute() {
		return 0.0
	}
	return mapRange(c.dev.DACVolume(), DAC_VOLUME_MIN, DAC_VOLUME_MAX, 0.0, 1.0)
}

// SetVolume sets the DAC volume feeding both amplifiers. 0.0 mutes the DAC.
func (c *Codec) SetVolume(value float64) error {
	if value <= 0.0 {
		if err := c.dev.SetDACMute(true); err != nil {
			return err
		}
	} else if c.dev.DACMute() {
		if err := c.dev.SetDACMute(false); err != nil {
			return err
		}
	}
	return c.dev.SetDACVolume(mapRange(value, 0.0, 1.0, DAC_VOLUME_MIN, DAC_VOLUME_MAX))
}

// Headphone returns the headphone volume from 0.0 to 1.0.
func (c *Codec) Headphone() float64 {
	if !c.dev.Headphone() {
		return 0.0
	}
	db, ok := c.dev.HeadphoneVolume()
	if !ok {
		return 0.0
	}
	return mapRange(db, AMP_VOLUME_MIN, AMP_VOLUME_MAX, 0.0, 1.0)
}

// SetHeadphone sets the headphone volume. 0.0 mutes and powers off the
// headphone amplifier.
func (c *Codec) SetHeadphone(value float64) error {
	if value <= 0.0 {
		if err := c.dev.SetHeadphone(false); err != nil {
			return err
		}
	} else if !c.dev.Headphone() {
		if err := c.dev.SetHeadphone(true); err != nil {
			return err
		}
	}
	db := AMP_VOLUME_MIN - 1.0 // mute
	if value > 0.0 {
		db = mapRange(value, 0.0, 1.0, AMP_VOLUME_MIN, AMP_VOLUME_MAX)
	}
	return c.dev.SetHeadphoneVolume(db)
}

// Speaker returns the speaker volume from 0.0 to 1.0.
func (c *Codec) Speaker() float64 {
	if !c.dev.Speaker() {
		return 0.0
	}
	db, ok := c.dev.SpeakerVolume()
	if !ok {
		return 0.0
	}
	return mapRange(db, AMP_VOLUME_MIN, AMP_VOLUME_MAX, 0.0, 1.0)
}

// SetSpeaker sets the speaker volume. 0.0 powers off the speaker amplifier.
func (c *Codec) SetSpeaker(value float64) error {
	if value <= 0.0 {
		if err := c.dev.SetSpeaker(false); err != nil {
			return err
		}
	} else if !c.dev.Speaker() {
		if err := c.dev.SetSpeaker(true); err != nil {
			return err
		}
	}
	return c.dev.SetSpeakerVolume(mapRange(value, 0.0, 1.0, AMP_VOLUME_MIN, AMP_VOLUME_MAX))
}

// Enhance returns the 3D enhance depth from 0.0 to 1.0.
func (c *Codec) Enhance() float64 {
	if !c.dev.Enhance() {
		return 0.0
	}
	return c.dev.EnhanceDepth()
}

// SetEnhance widens the stereo image in the DAC. 0.0 disables it.
func (c *Codec) SetEnhance(value float64) error {
	if value <= 0.0 {
		if err := c.dev.SetEnhance(false); err != nil {
			return err
		}
	} else if !c.dev.Enhance() {
		if err := c.dev.SetEnhance(true); err != nil {
			return err
		}
	}
	return c.dev.SetEnhanceDepth(value)
}

// ALC reports whether automatic level control drives the mic amplifier.
func (c *Codec) ALC() bool {
	return c.dev.ALC()
}

// SetALC lets the ALC drive the mic amplifier gain. It has no effect on
// line inputs.
func (c *Codec) SetALC(on bool) error {
	return c.dev.SetALC(on)
}

// ALCGain returns the ALC levels.
func (c *Codec) ALCGain() ALCGain {
	g := ALCGain{
		Target:  mapRange(c.dev.ALCTarget(), ALC_TARGET_MIN, ALC_TARGET_MAX, 0.0, 1.0),
		MaxGain: mapRange(c.dev.ALCMaxGain(), ALC_MAX_GAIN_MIN, ALC_MAX_GAIN_MAX, 0.0, 1.0),
		MinGain: mapRange(c.dev.ALCMinGain(), ALC_MIN_GAIN_MIN, ALC_MIN_GAIN_MAX, 0.0, 1.0),
	}
	if c.dev.NoiseGate() {
		g.NoiseGate = mapRange(c.dev.NoiseGateThreshold(), GATE_THRESHOLD_MIN, GATE_THRESHOLD_MAX, 0.0, 1.0)
	}
	return g
}

// SetALCGain sets the ALC levels.
func (c *Codec) SetALCGain(g ALCGain) error {
	steps := []func() error{
		func() error {
			return c.dev.SetALCTarget(mapRange(g.Target, 0.0, 1.0, ALC_TARGET_MIN, ALC_TARGET_MAX))
		},
		func() error {
			return c.dev.SetALCMaxGain(mapRange(g.MaxGain, 0.0, 1.0, ALC_MAX_GAIN_MIN, ALC_MAX_GAIN_MAX))
		},
		func() error {
			return c.dev.SetALCMinGain(mapRange(g.MinGain, 0.0, 1.0, ALC_MIN_GAIN_MIN, ALC_MIN_GAIN_MAX))
		},
		func() error { return c.dev.SetNoiseGate(g.NoiseGate > 0.0) },
		func() error {
			return c.dev.SetNoiseGateThreshold(mapRange(g.NoiseGate, 0.0, 1.0, GATE_THRESHOLD_MIN, GATE_THRESHOLD_MAX))
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func toDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}

// ALCTime returns the ALC time constants.
func (c *Codec) ALCTime() ALCTime {
	return ALCTime{
		Attack: toDuration(c.dev.ALCAttackTime()),
		Decay:  toDuration(c.dev.ALCDecayTime()),
		Hold:   toDuration(c.dev.ALCHoldTime()),
	}
}

// SetALCTime sets the ALC time constants. Attack ranges from 6 ms to 6.14 s,
// decay from 24 ms to 24.58 s and hold is 0 or 2.67 ms to 43.691 s.
func (c *Codec) SetALCTime(t ALCTime) error {
	if err := c.dev.SetALCAttackTime(t.Attack.Seconds()); err != nil {
		return err
	}
	if err := c.dev.SetALCDecayTime(t.Decay.Seconds()); err != nil {
		return err
	}
	return c.dev.SetALCHoldTime(t.Hold.Seconds())
}
