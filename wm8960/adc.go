package wm8960

var (
	adcPower  = stereoBit{Bit{REG_PWR_MGMT_1, 3}, Bit{REG_PWR_MGMT_1, 2}}
	adcVolume = stereoLevel{
		level{field: Bits{REG_LEFT_ADC_VOLUME, 8, 0}, update: true, scale: adcVolumeScale, muteBelow: 1},
		level{field: Bits{REG_RIGHT_ADC_VOLUME, 8, 0}, update: true, scale: adcVolumeScale, muteBelow: 1},
	}

	alcEnable  = stereoBit{Bit{REG_ALC1, 7}, Bit{REG_ALC1, 8}}
	alcTarget  = level{field: Bits{REG_ALC1, 4, 0}, scale: alcTargetScale}
	alcMaxGain = level{field: Bits{REG_ALC1, 3, 4}, scale: alcMaxGainScale}
	alcMinGain = level{field: Bits{REG_ALC2, 3, 4}, scale: alcMinGainScale}
	alcHold    = Bits{REG_ALC2, 4, 0}
	alcDecay   = Bits{REG_ALC3, 4, 4}
	alcAttack  = Bits{REG_ALC3, 4, 0}
	alcLimiter = Bit{REG_ALC3, 8}

	noiseGate          = Bit{REG_NOISE_GATE, 0}
	noiseGateThreshold = level{field: Bits{REG_NOISE_GATE, 5, 3}, scale: gateThresholdScale}
)

// LeftADC reports whether the left ADC is powered.
func (d *Device) LeftADC() bool { return adcPower.left.Get(d) }

// SetLeftADC powers the left ADC.
func (d *Device) SetLeftADC(on bool) error { return adcPower.left.Set(d, on) }

// RightADC reports whether the right ADC is powered.
func (d *Device) RightADC() bool { return adcPower.right.Get(d) }

// SetRightADC powers the right ADC.
func (d *Device) SetRightADC(on bool) error { return adcPower.right.Set(d, on) }

// ADC reports whether both ADCs are powered.
func (d *Device) ADC() bool { return adcPower.get(d) }

// SetADC powers both ADCs.
func (d *Device) SetADC(on bool) error { return adcPower.set(d, on) }

// LeftADCVolume returns the left ADC digital volume in dB; ok is false when
// the channel is digitally muted.
func (d *Device) LeftADCVolume() (db float64, ok bool) { return adcVolume.left.get(d) }

// SetLeftADCVolume sets the left ADC digital volume (-97..+30 dB). Values
// below -97 dB mute the channel.
func (d *Device) SetLeftADCVolume(db float64) error { return adcVolume.left.set(d, db) }

// RightADCVolume returns the right ADC digital volume in dB; ok is false when
// the channel is digitally muted.
func (d *Device) RightADCVolume() (db float64, ok bool) { return adcVolume.right.get(d) }

// SetRightADCVolume sets the right ADC digital volume (-97..+30 dB). Values
// below -97 dB mute the channel.
func (d *Device) SetRightADCVolume(db float64) error { return adcVolume.right.set(d, db) }

// ADCVolume returns the louder unmuted ADC volume in dB; ok is false when
// both channels are muted.
func (d *Device) ADCVolume() (db float64, ok bool) { return adcVolume.get(d) }

// SetADCVolume sets both ADC digital volumes.
func (d *Device) SetADCVolume(db float64) error { return adcVolume.set(d, db) }

// LeftALC reports whether the ALC controls the left PGA.
func (d *Device) LeftALC() bool { return alcEnable.left.Get(d) }

// SetLeftALC lets the ALC control the left PGA.
func (d *Device) SetLeftALC(on bool) error { return alcEnable.left.Set(d, on) }

// RightALC reports whether the ALC controls the right PGA.
func (d *Device) RightALC() bool { return alcEnable.right.Get(d) }

// SetRightALC lets the ALC control the right PGA.
func (d *Device) SetRightALC(on bool) error { return alcEnable.right.Set(d, on) }

// ALC reports whether the ALC controls both PGAs.
func (d *Device) ALC() bool { return alcEnable.get(d) }

// SetALC lets the ALC control both PGAs.
func (d *Device) SetALC(on bool) error { return alcEnable.set(d, on) }

// ALCTarget returns the ALC target level in dBFS.
func (d *Device) ALCTarget() float64 {
	v, _ := alcTarget.get(d)
	return v
}

// SetALCTarget sets the ALC target level, clamped to -22.5..-1.5 dBFS.
func (d *Device) SetALCTarget(db float64) error { return alcTarget.set(d, db) }

// ALCMaxGain returns the highest PGA gain the ALC may apply, in dB.
func (d *Device) ALCMaxGain() float64 {
	v, _ := alcMaxGain.get(d)
	return v
}

// SetALCMaxGain sets the highest PGA gain the ALC may apply, clamped to -12..+30 dB.
func (d *Device) SetALCMaxGain(db float64) error { return alcMaxGain.set(d, db) }

// ALCMinGain returns the lowest PGA gain the ALC may apply, in dB.
func (d *Device) ALCMinGain() float64 {
	v, _ := alcMinGain.get(d)
	return v
}

// SetALCMinGain sets the lowest PGA gain the ALC may apply, clamped to -17.25..+24.75 dB.
func (d *Device) SetALCMinGain(db float64) error { return alcMinGain.set(d, db) }

// ALCAttackTime returns the gain ramp-down time in seconds.
func (d *Device) ALCAttackTime() float64 { return alcAttackTime.seconds(alcAttack.Get(d)) }

// SetALCAttackTime sets the gain ramp-down time, 0.006 s to 6.14 s in doubling steps.
func (d *Device) SetALCAttackTime(seconds float64) error {
	return alcAttack.Set(d, alcAttackTime.code(seconds))
}

// ALCDecayTime returns the gain ramp-up time in seconds.
func (d *Device) ALCDecayTime() float64 { return alcDecayTime.seconds(alcDecay.Get(d)) }

// SetALCDecayTime sets the gain ramp-up time, 0.024 s to 24.58 s in doubling steps.
func (d *Device) SetALCDecayTime(seconds float64) error {
	return alcDecay.Set(d, alcDecayTime.code(seconds))
}

// ALCHoldTime returns the delay before the ALC ramps gain up, in seconds.
func (d *Device) ALCHoldTime() float64 { return alcHoldTime.seconds(alcHold.Get(d)) }

// SetALCHoldTime sets the delay before the ALC ramps gain up: 0, or 2.67 ms
// to 43.691 s in doubling steps.
func (d *Device) SetALCHoldTime(seconds float64) error {
	return alcHold.Set(d, alcHoldTime.code(seconds))
}

// ALCLimiter reports whether the ALC runs in limiter mode.
func (d *Device) ALCLimiter() bool { return alcLimiter.Get(d) }

// SetALCLimiter switches the ALC between ALC mode and limiter mode.
func (d *Device) SetALCLimiter(on bool) error { return alcLimiter.Set(d, on) }

// NoiseGate reports whether the noise gate is enabled.
func (d *Device) NoiseGate() bool { return noiseGate.Get(d) }

// SetNoiseGate enables the noise gate. It only acts while the ALC is on.
func (d *Device) SetNoiseGate(on bool) error { return noiseGate.Set(d, on) }

// NoiseGateThreshold returns the noise gate threshold in dBFS.
func (d *Device) NoiseGateThreshold() float64 {
	v, _ := noiseGateThreshold.get(d)
	return v
}

// SetNoiseGateThreshold sets the noise gate threshold, clamped to -76.5..-30 dBFS.
func (d *Device) SetNoiseGateThreshold(db float64) error { return noiseGateThreshold.set(d, db) }
