package wm8960

var (
	dacPower  = stereoBit{Bit{REG_PWR_MGMT_2, 8}, Bit{REG_PWR_MGMT_2, 7}}
	dacVolume = stereoLevel{
		level{field: Bits{REG_LEFT_DAC_VOLUME, 8, 0}, update: true, scale: dacVolumeScale},
		level{field: Bits{REG_RIGHT_DAC_VOLUME, 8, 0}, update: true, scale: dacVolumeScale},
	}
	dacMute         = Bit{REG_ADC_DAC_CTRL_1, 3}
	dacSoftMute     = Bit{REG_ADC_DAC_CTRL_2, 3}
	dacSlowSoftMute = Bit{REG_ADC_DAC_CTRL_2, 2}
	dacAttenuation  = Bit{REG_ADC_DAC_CTRL_1, 7}

	enhance          = Bit{REG_3D_CONTROL, 0}
	enhanceDepth     = level{field: Bits{REG_3D_CONTROL, 4, 1}, scale: enhanceDepthScale}
	enhanceFilterLPF = Bit{REG_3D_CONTROL, 6}
	enhanceFilterHPF = Bit{REG_3D_CONTROL, 5}
)

// LeftDAC reports whether the left DAC is powered.
func (d *Device) LeftDAC() bool { return dacPower.left.Get(d) }

// SetLeftDAC powers the left DAC.
func (d *Device) SetLeftDAC(on bool) error { return dacPower.left.Set(d, on) }

// RightDAC reports whether the right DAC is powered.
func (d *Device) RightDAC() bool { return dacPower.right.Get(d) }

// SetRightDAC powers the right DAC.
func (d *Device) SetRightDAC(on bool) error { return dacPower.right.Set(d, on) }

// DAC reports whether both DACs are powered.
func (d *Device) DAC() bool { return dacPower.get(d) }

// SetDAC powers both DACs.
func (d *Device) SetDAC(on bool) error { return dacPower.set(d, on) }

// LeftDACVolume returns the left DAC digital volume in dB (-127 to 0).
func (d *Device) LeftDACVolume() float64 {
	v, _ := dacVolume.left.get(d)
	return v
}

// SetLeftDACVolume sets the left DAC digital volume, clamped to -127..0 dB.
func (d *Device) SetLeftDACVolume(db float64) error { return dacVolume.left.set(d, db) }

// RightDACVolume returns the right DAC digital volume in dB (-127 to 0).
func (d *Device) RightDACVolume() float64 {
	v, _ := dacVolume.right.get(d)
	return v
}

// SetRightDACVolume sets the right DAC digital volume, clamped to -127..0 dB.
func (d *Device) SetRightDACVolume(db float64) error { return dacVolume.right.set(d, db) }

// DACVolume returns the louder DAC volume in dB.
func (d *Device) DACVolume() float64 {
	v, _ := dacVolume.get(d)
	return v
}

// SetDACVolume sets both DAC digital volumes.
func (d *Device) SetDACVolume(db float64) error { return dacVolume.set(d, db) }

// DACMute reports whether the DAC is digitally muted. It is muted after reset.
func (d *Device) DACMute() bool { return dacMute.Get(d) }

// SetDACMute mutes the DAC.
func (d *Device) SetDACMute(on bool) error { return dacMute.Set(d, on) }

// DACSoftMute reports whether DAC mute/unmute ramps the volume.
func (d *Device) DACSoftMute() bool { return dacSoftMute.Get(d) }

// SetDACSoftMute ramps the volume on mute and unmute instead of switching it.
func (d *Device) SetDACSoftMute(on bool) error { return dacSoftMute.Set(d, on) }

// DACSlowSoftMute reports whether the soft mute ramp is the slow one
// (about 171 ms instead of 10.7 ms at 48 kHz).
func (d *Device) DACSlowSoftMute() bool { return dacSlowSoftMute.Get(d) }

// SetDACSlowSoftMute selects the slow soft mute ramp.
func (d *Device) SetDACSlowSoftMute(on bool) error { return dacSlowSoftMute.Set(d, on) }

// DACAttenuation reports whether the DAC output is attenuated by 6 dB.
func (d *Device) DACAttenuation() bool { return dacAttenuation.Get(d) }

// SetDACAttenuation attenuates the DAC output by 6 dB, which avoids
// clipping with 3D enhance.
func (d *Device) SetDACAttenuation(on bool) error { return dacAttenuation.Set(d, on) }

// Enhance reports whether 3D stereo enhancement is enabled.
func (d *Device) Enhance() bool { return enhance.Get(d) }

// SetEnhance enables 3D stereo enhancement in the DAC path.
func (d *Device) SetEnhance(on bool) error { return enhance.Set(d, on) }

// EnhanceDepth returns the 3D enhance depth from 0.0 to 1.0.
func (d *Device) EnhanceDepth() float64 {
	v, _ := enhanceDepth.get(d)
	return v
}

// SetEnhanceDepth sets the 3D enhance depth from 0.0 to 1.0 in 16 steps.
func (d *Device) SetEnhanceDepth(depth float64) error { return enhanceDepth.set(d, depth) }

// EnhanceFilterLPF reports whether the 3D upper cut-off is lowered from
// 2.2 kHz to 1.5 kHz.
func (d *Device) EnhanceFilterLPF() bool { return enhanceFilterLPF.Get(d) }

// SetEnhanceFilterLPF lowers the 3D upper cut-off; recommended below 32 kHz.
func (d *Device) SetEnhanceFilterLPF(on bool) error { return enhanceFilterLPF.Set(d, on) }

// EnhanceFilterHPF reports whether the 3D lower cut-off is raised from
// 200 Hz to 500 Hz.
func (d *Device) EnhanceFilterHPF() bool { return enhanceFilterHPF.Get(d) }

// SetEnhanceFilterHPF raises the 3D lower cut-off; recommended below 32 kHz.
func (d *Device) SetEnhanceFilterHPF(on bool) error { return enhanceFilterHPF.Set(d, on) }
