package wm8960

// VMIDMode selects the VMID potential divider.
type VMIDMode uint8

const (
	VMIDDisabled  VMIDMode = 0 //!< VMID off
	VMIDPlayback  VMIDMode = 1 //!< 2 x 50k: normal playback and record
	VMIDLowPower  VMIDMode = 2 //!< 2 x 250k: low power standby
	VMIDFastStart VMIDMode = 3 //!< 2 x 5k: fast start-up
)

// MicInput selects what drives the non-inverting input of a PGA.
type MicInput uint8

const (
	MicInputVMID   MicInput = iota //!< Internally buffered VMID
	MicInputInput2                 //!< LINPUT2 / RINPUT2
	MicInputInput3                 //!< LINPUT3 / RINPUT3
)

var (
	powerBit = Bit{REG_PWR_MGMT_1, 6}
	vmidBits = Bits{REG_PWR_MGMT_1, 2, 7}

	inputPower = stereoBit{Bit{REG_PWR_MGMT_1, 5}, Bit{REG_PWR_MGMT_1, 4}}
	micPower   = stereoBit{Bit{REG_PWR_MGMT_3, 5}, Bit{REG_PWR_MGMT_3, 4}}

	micInvertingInput = stereoBit{Bit{REG_ADCL_SIGNAL_PATH, 8}, Bit{REG_ADCR_SIGNAL_PATH, 8}}
	micBoost          = stereoBit{Bit{REG_ADCL_SIGNAL_PATH, 3}, Bit{REG_ADCR_SIGNAL_PATH, 3}}
	micBoostGain      = stereoBits{Bits{REG_ADCL_SIGNAL_PATH, 2, 4}, Bits{REG_ADCR_SIGNAL_PATH, 2, 4}}
	micZeroCross      = stereoBit{Bit{REG_LEFT_INPUT_VOLUME, 6}, Bit{REG_RIGHT_INPUT_VOLUME, 6}}
	micMute           = stereoBit{Bit{REG_LEFT_INPUT_VOLUME, 7}, Bit{REG_RIGHT_INPUT_VOLUME, 7}}

	micVolume = stereoLevel{
		level{field: Bits{REG_LEFT_INPUT_VOLUME, 6, 0}, update: true, scale: micVolumeScale},
		level{field: Bits{REG_RIGHT_INPUT_VOLUME, 6, 0}, update: true, scale: micVolumeScale},
	}
	input2Boost = stereoLevel{
		level{field: Bits{REG_INPUT_BOOST_MIXER_1, 3, 1}, scale: boostScale, muteBelow: 1},
		level{field: Bits{REG_INPUT_BOOST_MIXER_2, 3, 1}, scale: boostScale, muteBelow: 1},
	}
	input3Boost = stereoLevel{
		level{field: Bits{REG_INPUT_BOOST_MIXER_1, 3, 4}, scale: boostScale, muteBelow: 1},
		level{field: Bits{REG_INPUT_BOOST_MIXER_2, 3, 4}, scale: boostScale, muteBelow: 1},
	}

	micBias        = Bit{REG_PWR_MGMT_1, 1}
	micBiasVoltage = Bit{REG_ADDITIONAL_CONTROL_4, 0}
)

// Power reports whether the reference (VREF) powering all analog functions is on.
func (d *Device) Power() bool { return powerBit.Get(d) }

// SetPower switches VREF. Nothing analog works while it is off.
func (d *Device) SetPower(on bool) error { return powerBit.Set(d, on) }

// VMID returns the VMID divider mode.
func (d *Device) VMID() VMIDMode { return VMIDMode(vmidBits.Get(d)) }

// SetVMID selects the VMID divider used by the PGAs and as buffered
// headphone ground.
func (d *Device) SetVMID(mode VMIDMode) error { return vmidBits.Set(d, uint16(mode)) }

// LeftInput reports whether the left boost stage (AINL) is powered.
func (d *Device) LeftInput() bool { return inputPower.left.Get(d) }

// SetLeftInput powers the left boost stage (AINL).
func (d *Device) SetLeftInput(on bool) error { return inputPower.left.Set(d, on) }

// RightInput reports whether the right boost stage (AINR) is powered.
func (d *Device) RightInput() bool { return inputPower.right.Get(d) }

// SetRightInput powers the right boost stage (AINR).
func (d *Device) SetRightInput(on bool) error { return inputPower.right.Set(d, on) }

// Input reports whether both boost stages are powered.
func (d *Device) Input() bool { return inputPower.get(d) }

// SetInput powers both boost stages.
func (d *Device) SetInput(on bool) error { return inputPower.set(d, on) }

// LeftMic reports whether the left PGA is powered.
func (d *Device) LeftMic() bool { return micPower.left.Get(d) }

// SetLeftMic powers the left PGA. The left input must be on as well.
func (d *Device) SetLeftMic(on bool) error { return micPower.left.Set(d, on) }

// RightMic reports whether the right PGA is powered.
func (d *Device) RightMic() bool { return micPower.right.Get(d) }

// SetRightMic powers the right PGA. The right input must be on as well.
func (d *Device) SetRightMic(on bool) error { return micPower.right.Set(d, on) }

// Mic reports whether both PGAs are powered.
func (d *Device) Mic() bool { return micPower.get(d) }

// SetMic powers both PGAs.
func (d *Device) SetMic(on bool) error { return micPower.set(d, on) }

// LeftMicInvertingInput reports whether LINPUT1 drives the left PGA inverting input.
func (d *Device) LeftMicInvertingInput() bool { return micInvertingInput.left.Get(d) }

// SetLeftMicInvertingInput connects LINPUT1 to the left PGA inverting input.
func (d *Device) SetLeftMicInvertingInput(on bool) error {
	return micInvertingInput.left.Set(d, on)
}

// RightMicInvertingInput reports whether RINPUT1 drives the right PGA inverting input.
func (d *Device) RightMicInvertingInput() bool { return micInvertingInput.right.Get(d) }

// SetRightMicInvertingInput connects RINPUT1 to the right PGA inverting input.
func (d *Device) SetRightMicInvertingInput(on bool) error {
	return micInvertingInput.right.Set(d, on)
}

// MicInvertingInput reports whether input 1 drives both PGA inverting inputs.
func (d *Device) MicInvertingInput() bool { return micInvertingInput.get(d) }

// SetMicInvertingInput connects input 1 to both PGA inverting inputs.
func (d *Device) SetMicInvertingInput(on bool) error { return micInvertingInput.set(d, on) }

func micInputOf(d *Device, reg uint8) MicInput {
	v := d.Register(reg)
	switch {
	case v&(1<<6) != 0:
		return MicInputInput2
	case v&(1<<7) != 0:
		return MicInputInput3
	}
	return MicInputVMID
}

func setMicInput(d *Device, reg uint8, in MicInput) error {
	var v uint16
	switch in {
	case MicInputInput2:
		v = 1 << 6
	case MicInputInput3:
		v = 1 << 7
	}
	return d.modify(reg, 1<<6|1<<7, v)
}

// LeftMicInput returns the source of the left PGA non-inverting input.
func (d *Device) LeftMicInput() MicInput { return micInputOf(d, REG_ADCL_SIGNAL_PATH) }

// SetLeftMicInput selects the source of the left PGA non-inverting input.
func (d *Device) SetLeftMicInput(in MicInput) error {
	return setMicInput(d, REG_ADCL_SIGNAL_PATH, in)
}

// RightMicInput returns the source of the right PGA non-inverting input.
func (d *Device) RightMicInput() MicInput { return micInputOf(d, REG_ADCR_SIGNAL_PATH) }

// SetRightMicInput selects the source of the right PGA non-inverting input.
func (d *Device) SetRightMicInput(in MicInput) error {
	return setMicInput(d, REG_ADCR_SIGNAL_PATH, in)
}

// SetMicInput selects the non-inverting input source of both PGAs. There is
// no combined getter; read the channels with LeftMicInput and RightMicInput.
func (d *Device) SetMicInput(in MicInput) error {
	if err := d.SetLeftMicInput(in); err != nil {
		return err
	}
	return d.SetRightMicInput(in)
}

// LeftMicBoost reports whether the left PGA feeds the left boost mixer.
func (d *Device) LeftMicBoost() bool { return micBoost.left.Get(d) }

// SetLeftMicBoost connects the left PGA to the left boost mixer.
func (d *Device) SetLeftMicBoost(on bool) error { return micBoost.left.Set(d, on) }

// RightMicBoost reports whether the right PGA feeds the right boost mixer.
func (d *Device) RightMicBoost() bool { return micBoost.right.Get(d) }

// SetRightMicBoost connects the right PGA to the right boost mixer.
func (d *Device) SetRightMicBoost(on bool) error { return micBoost.right.Set(d, on) }

// MicBoost reports whether both PGAs feed their boost mixers.
func (d *Device) MicBoost() bool { return micBoost.get(d) }

// SetMicBoost connects both PGAs to their boost mixers.
func (d *Device) SetMicBoost(on bool) error { return micBoost.set(d, on) }

// LeftMicBoostGain returns the left PGA boost in dB: 0, 13, 20 or 29.
func (d *Device) LeftMicBoostGain() float64 {
	return tableValue(micBoostGains, micBoostGain.left.Get(d))
}

// SetLeftMicBoostGain sets the left PGA boost to the largest step not above db.
func (d *Device) SetLeftMicBoostGain(db float64) error {
	return micBoostGain.left.Set(d, floorIndex(micBoostGains, db))
}

// RightMicBoostGain returns the right PGA boost in dB: 0, 13, 20 or 29.
func (d *Device) RightMicBoostGain() float64 {
	return tableValue(micBoostGains, micBoostGain.right.Get(d))
}

// SetRightMicBoostGain sets the right PGA boost to the largest step not above db.
func (d *Device) SetRightMicBoostGain(db float64) error {
	return micBoostGain.right.Set(d, floorIndex(micBoostGains, db))
}

// MicBoostGain returns the larger of the two PGA boosts in dB.
func (d *Device) MicBoostGain() float64 {
	return tableValue(micBoostGains, micBoostGain.get(d))
}

// SetMicBoostGain sets both PGA boosts to the largest step not above db.
func (d *Device) SetMicBoostGain(db float64) error {
	return micBoostGain.set(d, floorIndex(micBoostGains, db))
}

// LeftMicVolume returns the left PGA gain in dB (-17.25 to +30).
func (d *Device) LeftMicVolume() float64 {
	v, _ := micVolume.left.get(d)
	return v
}

// SetLeftMicVolume sets the left PGA gain in dB, clamped to -17.25..+30.
func (d *Device) SetLeftMicVolume(db float64) error { return micVolume.left.set(d, db) }

// RightMicVolume returns the right PGA gain in dB (-17.25 to +30).
func (d *Device) RightMicVolume() float64 {
	v, _ := micVolume.right.get(d)
	return v
}

// SetRightMicVolume sets the right PGA gain in dB, clamped to -17.25..+30.
func (d *Device) SetRightMicVolume(db float64) error { return micVolume.right.set(d, db) }

// MicVolume returns the larger of the two PGA gains in dB.
func (d *Device) MicVolume() float64 {
	v, _ := micVolume.get(d)
	return v
}

// SetMicVolume sets both PGA gains in dB.
func (d *Device) SetMicVolume(db float64) error { return micVolume.set(d, db) }

// LeftMicZeroCross reports whether left PGA gain changes wait for a zero crossing.
func (d *Device) LeftMicZeroCross() bool { return micZeroCross.left.Get(d) }

// SetLeftMicZeroCross defers left PGA gain changes to a zero crossing.
func (d *Device) SetLeftMicZeroCross(on bool) error { return micZeroCross.left.Set(d, on) }

// RightMicZeroCross reports whether right PGA gain changes wait for a zero crossing.
func (d *Device) RightMicZeroCross() bool { return micZeroCross.right.Get(d) }

// SetRightMicZeroCross defers right PGA gain changes to a zero crossing.
func (d *Device) SetRightMicZeroCross(on bool) error { return micZeroCross.right.Set(d, on) }

// MicZeroCross reports whether both PGAs use zero-cross gain updates.
func (d *Device) MicZeroCross() bool { return micZeroCross.get(d) }

// SetMicZeroCross sets zero-cross gain updates on both PGAs.
func (d *Device) SetMicZeroCross(on bool) error { return micZeroCross.set(d, on) }

func setMicMute(d *Device, mute Bit, on bool) error {
	var v uint16 = volumeUpdate
	if on {
		v |= mute.mask()
	}
	return d.modify(mute.Register, mute.mask()|volumeUpdate, v)
}

// LeftMicMute reports whether the left PGA is muted.
func (d *Device) LeftMicMute() bool { return micMute.left.Get(d) }

// SetLeftMicMute mutes the left PGA.
func (d *Device) SetLeftMicMute(on bool) error { return setMicMute(d, micMute.left, on) }

// RightMicMute reports whether the right PGA is muted.
func (d *Device) RightMicMute() bool { return micMute.right.Get(d) }

// SetRightMicMute mutes the right PGA.
func (d *Device) SetRightMicMute(on bool) error { return setMicMute(d, micMute.right, on) }

// MicMute reports whether both PGAs are muted.
func (d *Device) MicMute() bool { return micMute.get(d) }

// SetMicMute mutes both PGAs.
func (d *Device) SetMicMute(on bool) error {
	if err := d.SetLeftMicMute(on); err != nil {
		return err
	}
	return d.SetRightMicMute(on)
}

// LeftInput2Boost returns the LINPUT2 boost mixer gain in dB; ok is false
// when the path is muted.
func (d *Device) LeftInput2Boost() (db float64, ok bool) { return input2Boost.left.get(d) }

// SetLeftInput2Boost sets the LINPUT2 boost mixer gain (-12..+6 dB). Values
// below -12 dB mute the path.
func (d *Device) SetLeftInput2Boost(db float64) error { return input2Boost.left.set(d, db) }

// RightInput2Boost returns the RINPUT2 boost mixer gain in dB; ok is false
// when the path is muted.
func (d *Device) RightInput2Boost() (db float64, ok bool) { return input2Boost.right.get(d) }

// SetRightInput2Boost sets the RINPUT2 boost mixer gain (-12..+6 dB). Values
// below -12 dB mute the path.
func (d *Device) SetRightInput2Boost(db float64) error { return input2Boost.right.set(d, db) }

// Input2Boost returns the louder unmuted input 2 boost gain in dB; ok is
// false when both channels are muted.
func (d *Device) Input2Boost() (db float64, ok bool) { return input2Boost.get(d) }

// SetInput2Boost sets both input 2 boost gains.
func (d *Device) SetInput2Boost(db float64) error { return input2Boost.set(d, db) }

// LeftInput3Boost returns the LINPUT3 boost mixer gain in dB; ok is false
// when the path is muted.
func (d *Device) LeftInput3Boost() (db float64, ok bool) { return input3Boost.left.get(d) }

// SetLeftInput3Boost sets the LINPUT3 boost mixer gain (-12..+6 dB). Values
// below -12 dB mute the path.
func (d *Device) SetLeftInput3Boost(db float64) error { return input3Boost.left.set(d, db) }

// RightInput3Boost returns the RINPUT3 boost mixer gain in dB; ok is false
// when the path is muted.
func (d *Device) RightInput3Boost() (db float64, ok bool) { return input3Boost.right.get(d) }

// SetRightInput3Boost sets the RINPUT3 boost mixer gain (-12..+6 dB). Values
// below -12 dB mute the path.
func (d *Device) SetRightInput3Boost(db float64) error { return input3Boost.right.set(d, db) }

// Input3Boost returns the louder unmuted input 3 boost gain in dB; ok is
// false when both channels are muted.
func (d *Device) Input3Boost() (db float64, ok bool) { return input3Boost.get(d) }

// SetInput3Boost sets both input 3 boost gains.
func (d *Device) SetInput3Boost(db float64) error { return input3Boost.set(d, db) }

// MicBias reports whether MICBIAS is enabled.
func (d *Device) MicBias() bool { return micBias.Get(d) }

// SetMicBias enables the MICBIAS output for electret microphones.
func (d *Device) SetMicBias(on bool) error { return micBias.Set(d, on) }

// MicBiasVoltage reports the MICBIAS level: false is 0.9 x AVDD, true is 0.65 x AVDD.
func (d *Device) MicBiasVoltage() bool { return micBiasVoltage.Get(d) }

// SetMicBiasVoltage selects the MICBIAS level.
func (d *Device) SetMicBiasVoltage(low bool) error { return micBiasVoltage.Set(d, low) }
