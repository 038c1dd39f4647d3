package wm8960

var (
	outputPower  = stereoBit{Bit{REG_PWR_MGMT_3, 3}, Bit{REG_PWR_MGMT_3, 2}}
	dacOutput    = stereoBit{Bit{REG_LEFT_OUT_MIX, 8}, Bit{REG_RIGHT_OUT_MIX, 8}}
	input3Output = stereoBit{Bit{REG_LEFT_OUT_MIX, 7}, Bit{REG_RIGHT_OUT_MIX, 7}}
	micOutput    = stereoBit{Bit{REG_BYPASS_1, 7}, Bit{REG_BYPASS_2, 7}}

	input3OutputVolume = stereoLevel{
		level{field: Bits{REG_LEFT_OUT_MIX, 3, 4}, scale: outputVolumeScale},
		level{field: Bits{REG_RIGHT_OUT_MIX, 3, 4}, scale: outputVolumeScale},
	}
	micOutputVolume = stereoLevel{
		level{field: Bits{REG_BYPASS_1, 3, 4}, scale: outputVolumeScale},
		level{field: Bits{REG_BYPASS_2, 3, 4}, scale: outputVolumeScale},
	}

	monoOutput            = Bit{REG_PWR_MGMT_2, 1}
	monoMix               = stereoBit{Bit{REG_MONO_OUT_MIX_1, 7}, Bit{REG_MONO_OUT_MIX_2, 7}}
	monoOutputAttenuation = Bit{REG_MONO_OUT_VOLUME, 6}

	headphonePower   = stereoBit{Bit{REG_PWR_MGMT_2, 6}, Bit{REG_PWR_MGMT_2, 5}}
	headphoneStandby = Bit{REG_ANTI_POP_1, 0}
	headphoneVolume  = stereoLevel{
		level{field: Bits{REG_LOUT1_VOLUME, 7, 0}, update: true, scale: ampVolumeScale, muteBelow: 48},
		level{field: Bits{REG_ROUT1_VOLUME, 7, 0}, update: true, scale: ampVolumeScale, muteBelow: 48},
	}
	headphoneZeroCross = stereoBit{Bit{REG_LOUT1_VOLUME, 7}, Bit{REG_ROUT1_VOLUME, 7}}

	// a speaker channel needs both its output stage and its class D driver
	speakerPower  = stereoBit{Bit{REG_PWR_MGMT_2, 4}, Bit{REG_PWR_MGMT_2, 3}}
	speakerDriver = stereoBit{Bit{REG_CLASS_D_CONTROL_1, 6}, Bit{REG_CLASS_D_CONTROL_1, 7}}
	speakerVolume = stereoLevel{
		level{field: Bits{REG_LOUT2_VOLUME, 7, 0}, update: true, scale: ampVolumeScale, muteBelow: 48},
		level{field: Bits{REG_ROUT2_VOLUME, 7, 0}, update: true, scale: ampVolumeScale, muteBelow: 48},
	}
	speakerZeroCross = stereoBit{Bit{REG_LOUT2_VOLUME, 7}, Bit{REG_ROUT2_VOLUME, 7}}
	speakerDCGain    = Bits{REG_CLASS_D_CONTROL_3, 3, 3}
	speakerACGain    = Bits{REG_CLASS_D_CONTROL_3, 3, 0}
)

// LeftOutput reports whether the left output mixer is powered.
func (d *Device) LeftOutput() bool { return outputPower.left.Get(d) }

// SetLeftOutput powers the left output mixer.
func (d *Device) SetLeftOutput(on bool) error { return outputPower.left.Set(d, on) }

// RightOutput reports whether the right output mixer is powered.
func (d *Device) RightOutput() bool { return outputPower.right.Get(d) }

// SetRightOutput powers the right output mixer.
func (d *Device) SetRightOutput(on bool) error { return outputPower.right.Set(d, on) }

// Output reports whether both output mixers are powered.
func (d *Device) Output() bool { return outputPower.get(d) }

// SetOutput powers both output mixers.
func (d *Device) SetOutput(on bool) error { return outputPower.set(d, on) }

// LeftDACOutput reports whether the left DAC feeds the left output mixer.
func (d *Device) LeftDACOutput() bool { return dacOutput.left.Get(d) }

// SetLeftDACOutput routes the left DAC into the left output mixer.
func (d *Device) SetLeftDACOutput(on bool) error { return dacOutput.left.Set(d, on) }

// RightDACOutput reports whether the right DAC feeds the right output mixer.
func (d *Device) RightDACOutput() bool { return dacOutput.right.Get(d) }

// SetRightDACOutput routes the right DAC into the right output mixer.
func (d *Device) SetRightDACOutput(on bool) error { return dacOutput.right.Set(d, on) }

// DACOutput reports whether both DACs feed the output mixers.
func (d *Device) DACOutput() bool { return dacOutput.get(d) }

// SetDACOutput routes both DACs into the output mixers, needed for playback.
func (d *Device) SetDACOutput(on bool) error { return dacOutput.set(d, on) }

// LeftInput3Output reports whether LINPUT3 bypasses the ADC into the left output mixer.
func (d *Device) LeftInput3Output() bool { return input3Output.left.Get(d) }

// SetLeftInput3Output routes LINPUT3 into the left output mixer.
func (d *Device) SetLeftInput3Output(on bool) error { return input3Output.left.Set(d, on) }

// RightInput3Output reports whether RINPUT3 bypasses the ADC into the right output mixer.
func (d *Device) RightInput3Output() bool { return input3Output.right.Get(d) }

// SetRightInput3Output routes RINPUT3 into the right output mixer.
func (d *Device) SetRightInput3Output(on bool) error { return input3Output.right.Set(d, on) }

// Input3Output reports whether input 3 bypasses the ADC on both channels.
func (d *Device) Input3Output() bool { return input3Output.get(d) }

// SetInput3Output routes input 3 into both output mixers.
func (d *Device) SetInput3Output(on bool) error { return input3Output.set(d, on) }

// LeftInput3OutputVolume returns the LINPUT3 bypass level in dB (-21 to 0).
func (d *Device) LeftInput3OutputVolume() float64 {
	v, _ := input3OutputVolume.left.get(d)
	return v
}

// SetLeftInput3OutputVolume sets the LINPUT3 bypass level in 3 dB steps.
func (d *Device) SetLeftInput3OutputVolume(db float64) error {
	return input3OutputVolume.left.set(d, db)
}

// RightInput3OutputVolume returns the RINPUT3 bypass level in dB (-21 to 0).
func (d *Device) RightInput3OutputVolume() float64 {
	v, _ := input3OutputVolume.right.get(d)
	return v
}

// SetRightInput3OutputVolume sets the RINPUT3 bypass level in 3 dB steps.
func (d *Device) SetRightInput3OutputVolume(db float64) error {
	return input3OutputVolume.right.set(d, db)
}

// Input3OutputVolume returns the louder input 3 bypass level in dB.
func (d *Device) Input3OutputVolume() float64 {
	v, _ := input3OutputVolume.get(d)
	return v
}

// SetInput3OutputVolume sets both input 3 bypass levels.
func (d *Device) SetInput3OutputVolume(db float64) error { return input3OutputVolume.set(d, db) }

// LeftMicOutput reports whether the left boost mixer bypasses the ADC into the left output mixer.
func (d *Device) LeftMicOutput() bool { return micOutput.left.Get(d) }

// SetLeftMicOutput routes the left boost mixer into the left output mixer.
func (d *Device) SetLeftMicOutput(on bool) error { return micOutput.left.Set(d, on) }

// RightMicOutput reports whether the right boost mixer bypasses the ADC into the right output mixer.
func (d *Device) RightMicOutput() bool { return micOutput.right.Get(d) }

// SetRightMicOutput routes the right boost mixer into the right output mixer.
func (d *Device) SetRightMicOutput(on bool) error { return micOutput.right.Set(d, on) }

// MicOutput reports whether both boost mixers bypass the ADC.
func (d *Device) MicOutput() bool { return micOutput.get(d) }

// SetMicOutput routes both boost mixers into the output mixers.
func (d *Device) SetMicOutput(on bool) error { return micOutput.set(d, on) }

// LeftMicOutputVolume returns the left boost mixer bypass level in dB (-21 to 0).
func (d *Device) LeftMicOutputVolume() float64 {
	v, _ := micOutputVolume.left.get(d)
	return v
}

// SetLeftMicOutputVolume sets the left boost mixer bypass level in 3 dB steps.
func (d *Device) SetLeftMicOutputVolume(db float64) error { return micOutputVolume.left.set(d, db) }

// RightMicOutputVolume returns the right boost mixer bypass level in dB (-21 to 0).
func (d *Device) RightMicOutputVolume() float64 {
	v, _ := micOutputVolume.right.get(d)
	return v
}

// SetRightMicOutputVolume sets the right boost mixer bypass level in 3 dB steps.
func (d *Device) SetRightMicOutputVolume(db float64) error {
	return micOutputVolume.right.set(d, db)
}

// MicOutputVolume returns the louder boost mixer bypass level in dB.
func (d *Device) MicOutputVolume() float64 {
	v, _ := micOutputVolume.get(d)
	return v
}

// SetMicOutputVolume sets both boost mixer bypass levels.
func (d *Device) SetMicOutputVolume(db float64) error { return micOutputVolume.set(d, db) }

// MonoOutput reports whether OUT3 is powered.
func (d *Device) MonoOutput() bool { return monoOutput.Get(d) }

// SetMonoOutput powers OUT3, either as a mono mix of the output mixers or as
// the buffered VMID ground for capless headphones.
func (d *Device) SetMonoOutput(on bool) error { return monoOutput.Set(d, on) }

// MonoLeftMix reports whether the left output mixer feeds OUT3.
func (d *Device) MonoLeftMix() bool { return monoMix.left.Get(d) }

// SetMonoLeftMix routes the left output mixer to OUT3.
func (d *Device) SetMonoLeftMix(on bool) error { return monoMix.left.Set(d, on) }

// MonoRightMix reports whether the right output mixer feeds OUT3.
func (d *Device) MonoRightMix() bool { return monoMix.right.Get(d) }

// SetMonoRightMix routes the right output mixer to OUT3.
func (d *Device) SetMonoRightMix(on bool) error { return monoMix.right.Set(d, on) }

// MonoMix reports whether both output mixers feed OUT3.
func (d *Device) MonoMix() bool { return monoMix.get(d) }

// SetMonoMix routes both output mixers to OUT3.
func (d *Device) SetMonoMix(on bool) error { return monoMix.set(d, on) }

// MonoOutputAttenuation reports whether OUT3 is attenuated by 6 dB.
func (d *Device) MonoOutputAttenuation() bool { return monoOutputAttenuation.Get(d) }

// SetMonoOutputAttenuation attenuates OUT3 by 6 dB. Change it only while
// OUT3 is off to avoid a click.
func (d *Device) SetMonoOutputAttenuation(on bool) error {
	return monoOutputAttenuation.Set(d, on)
}

// LeftHeadphone reports whether the left headphone amplifier (LOUT1) is powered.
func (d *Device) LeftHeadphone() bool { return headphonePower.left.Get(d) }

// SetLeftHeadphone powers the left headphone amplifier.
func (d *Device) SetLeftHeadphone(on bool) error { return headphonePower.left.Set(d, on) }

// RightHeadphone reports whether the right headphone amplifier (ROUT1) is powered.
func (d *Device) RightHeadphone() bool { return headphonePower.right.Get(d) }

// SetRightHeadphone powers the right headphone amplifier.
func (d *Device) SetRightHeadphone(on bool) error { return headphonePower.right.Set(d, on) }

// Headphone reports whether both headphone amplifiers are powered.
func (d *Device) Headphone() bool { return headphonePower.get(d) }

// SetHeadphone powers both headphone amplifiers.
func (d *Device) SetHeadphone(on bool) error { return headphonePower.set(d, on) }

// HeadphoneStandby reports whether the headphone amplifiers are in anti-pop standby.
func (d *Device) HeadphoneStandby() bool { return headphoneStandby.Get(d) }

// SetHeadphoneStandby puts the headphone amplifiers into anti-pop standby.
func (d *Device) SetHeadphoneStandby(on bool) error { return headphoneStandby.Set(d, on) }

// LeftHeadphoneVolume returns the left headphone volume in dB; ok is false
// when the channel is muted.
func (d *Device) LeftHeadphoneVolume() (db float64, ok bool) { return headphoneVolume.left.get(d) }

// SetLeftHeadphoneVolume sets the left headphone volume (-73..+6 dB). Values
// below -73 dB mute the channel.
func (d *Device) SetLeftHeadphoneVolume(db float64) error { return headphoneVolume.left.set(d, db) }

// RightHeadphoneVolume returns the right headphone volume in dB; ok is false
// when the channel is muted.
func (d *Device) RightHeadphoneVolume() (db float64, ok bool) {
	return headphoneVolume.right.get(d)
}

// SetRightHeadphoneVolume sets the right headphone volume (-73..+6 dB). Values
// below -73 dB mute the channel.
func (d *Device) SetRightHeadphoneVolume(db float64) error {
	return headphoneVolume.right.set(d, db)
}

// HeadphoneVolume returns the louder unmuted headphone volume in dB; ok is
// false when both channels are muted.
func (d *Device) HeadphoneVolume() (db float64, ok bool) { return headphoneVolume.get(d) }

// SetHeadphoneVolume sets both headphone volumes.
func (d *Device) SetHeadphoneVolume(db float64) error { return headphoneVolume.set(d, db) }

// LeftHeadphoneZeroCross reports whether left headphone volume changes wait for a zero crossing.
func (d *Device) LeftHeadphoneZeroCross() bool { return headphoneZeroCross.left.Get(d) }

// SetLeftHeadphoneZeroCross defers left headphone volume changes to a zero crossing.
func (d *Device) SetLeftHeadphoneZeroCross(on bool) error {
	return headphoneZeroCross.left.Set(d, on)
}

// RightHeadphoneZeroCross reports whether right headphone volume changes wait for a zero crossing.
func (d *Device) RightHeadphoneZeroCross() bool { return headphoneZeroCross.right.Get(d) }

// SetRightHeadphoneZeroCross defers right headphone volume changes to a zero crossing.
func (d *Device) SetRightHeadphoneZeroCross(on bool) error {
	return headphoneZeroCross.right.Set(d, on)
}

// HeadphoneZeroCross reports whether both headphone channels use zero-cross updates.
func (d *Device) HeadphoneZeroCross() bool { return headphoneZeroCross.get(d) }

// SetHeadphoneZeroCross sets zero-cross volume updates on both headphone channels.
func (d *Device) SetHeadphoneZeroCross(on bool) error { return headphoneZeroCross.set(d, on) }

// LeftSpeaker reports whether the left speaker output and its class D driver are on.
func (d *Device) LeftSpeaker() bool {
	return speakerPower.left.Get(d) && speakerDriver.left.Get(d)
}

// SetLeftSpeaker switches the left speaker output and its class D driver.
func (d *Device) SetLeftSpeaker(on bool) error {
	if err := speakerPower.left.Set(d, on); err != nil {
		return err
	}
	return speakerDriver.left.Set(d, on)
}

// RightSpeaker reports whether the right speaker output and its class D driver are on.
func (d *Device) RightSpeaker() bool {
	return speakerPower.right.Get(d) && speakerDriver.right.Get(d)
}

// SetRightSpeaker switches the right speaker output and its class D driver.
func (d *Device) SetRightSpeaker(on bool) error {
	if err := speakerPower.right.Set(d, on); err != nil {
		return err
	}
	return speakerDriver.right.Set(d, on)
}

// Speaker reports whether both speaker channels are on.
func (d *Device) Speaker() bool { return d.LeftSpeaker() && d.RightSpeaker() }

// SetSpeaker switches both speaker channels. The class D driver needs the
// PLL-derived DCLK, see SetSampleRate.
func (d *Device) SetSpeaker(on bool) error {
	if err := d.SetLeftSpeaker(on); err != nil {
		return err
	}
	return d.SetRightSpeaker(on)
}

// LeftSpeakerVolume returns the left speaker volume in dB; ok is false when
// the channel is muted.
func (d *Device) LeftSpeakerVolume() (db float64, ok bool) { return speakerVolume.left.get(d) }

// SetLeftSpeakerVolume sets the left speaker volume (-73..+6 dB). Values
// below -73 dB mute the channel.
func (d *Device) SetLeftSpeakerVolume(db float64) error { return speakerVolume.left.set(d, db) }

// RightSpeakerVolume returns the right speaker volume in dB; ok is false when
// the channel is muted.
func (d *Device) RightSpeakerVolume() (db float64, ok bool) { return speakerVolume.right.get(d) }

// SetRightSpeakerVolume sets the right speaker volume (-73..+6 dB). Values
// below -73 dB mute the channel.
func (d *Device) SetRightSpeakerVolume(db float64) error { return speakerVolume.right.set(d, db) }

// SpeakerVolume returns the louder unmuted speaker volume in dB; ok is false
// when both channels are muted.
func (d *Device) SpeakerVolume() (db float64, ok bool) { return speakerVolume.get(d) }

// SetSpeakerVolume sets both speaker volumes.
func (d *Device) SetSpeakerVolume(db float64) error { return speakerVolume.set(d, db) }

// LeftSpeakerZeroCross reports whether left speaker volume changes wait for a zero crossing.
func (d *Device) LeftSpeakerZeroCross() bool { return speakerZeroCross.left.Get(d) }

// SetLeftSpeakerZeroCross defers left speaker volume changes to a zero crossing.
func (d *Device) SetLeftSpeakerZeroCross(on bool) error { return speakerZeroCross.left.Set(d, on) }

// RightSpeakerZeroCross reports whether right speaker volume changes wait for a zero crossing.
func (d *Device) RightSpeakerZeroCross() bool { return speakerZeroCross.right.Get(d) }

// SetRightSpeakerZeroCross defers right speaker volume changes to a zero crossing.
func (d *Device) SetRightSpeakerZeroCross(on bool) error {
	return speakerZeroCross.right.Set(d, on)
}

// SpeakerZeroCross reports whether both speaker channels use zero-cross updates.
func (d *Device) SpeakerZeroCross() bool { return speakerZeroCross.get(d) }

// SetSpeakerZeroCross sets zero-cross volume updates on both speaker channels.
func (d *Device) SetSpeakerZeroCross(on bool) error { return speakerZeroCross.set(d, on) }

// SpeakerDCGain returns the class D DC boost in dB.
func (d *Device) SpeakerDCGain() float64 {
	return tableValue(speakerBoostGains, speakerDCGain.Get(d))
}

// SetSpeakerDCGain sets the class D DC boost to the largest of 0, 2.1, 2.9,
// 3.6, 4.5 and 5.1 dB not above db.
func (d *Device) SetSpeakerDCGain(db float64) error {
	return speakerDCGain.Set(d, floorIndex(speakerBoostGains, db))
}

// SpeakerACGain returns the class D AC boost in dB.
func (d *Device) SpeakerACGain() float64 {
	return tableValue(speakerBoostGains, speakerACGain.Get(d))
}

// SetSpeakerACGain sets the class D AC boost to the largest of 0, 2.1, 2.9,
// 3.6, 4.5 and 5.1 dB not above db.
func (d *Device) SetSpeakerACGain(db float64) error {
	return speakerACGain.Set(d, floorIndex(speakerBoostGains, db))
}
