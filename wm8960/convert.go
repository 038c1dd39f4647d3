package wm8960

import "math"

func clamp(x, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// mapRange maps x linearly from [inMin, inMax] onto [outMin, outMax] and
// clamps the result to the output range. Either range may be descending.
func mapRange(x, inMin, inMax, outMin, outMax float64) float64 {
	y := outMin + (x-inMin)*(outMax-outMin)/(inMax-inMin)
	return clamp(y, outMin, outMax)
}

// roundCode rounds half to even and clamps into [lo, hi].
func roundCode(x float64, lo, hi uint16) uint16 {
	x = math.RoundToEven(x)
	if math.IsNaN(x) || x < float64(lo) {
		return lo
	}
	if x > float64(hi) {
		return hi
	}
	return uint16(x)
}

// linear relates a dB range to a code range: min dB is codeMin, max dB is
// codeMax. codeMin may be above codeMax for attenuators.
type linear struct {
	min, max         float64
	codeMin, codeMax uint16
}

func (l linear) lowCode() uint16 {
	if l.codeMin < l.codeMax {
		return l.codeMin
	}
	return l.codeMax
}

func (l linear) highCode() uint16 {
	if l.codeMin < l.codeMax {
		return l.codeMax
	}
	return l.codeMin
}

func (l linear) code(value float64) uint16 {
	c := mapRange(value, l.min, l.max, float64(l.codeMin), float64(l.codeMax))
	return roundCode(c, l.lowCode(), l.highCode())
}

func (l linear) value(code uint16) float64 {
	return mapRange(float64(code), float64(l.codeMin), float64(l.codeMax), l.min, l.max)
}

// step is the size of one code in engineering units.
func (l linear) step() float64 {
	return math.Abs(l.max-l.min) / float64(l.highCode()-l.lowCode())
}

// Scales of the linear controls.
var (
	micVolumeScale     = linear{MIC_GAIN_MIN, MIC_GAIN_MAX, 0, 63}
	boostScale         = linear{BOOST_GAIN_MIN, BOOST_GAIN_MAX, 1, 7}
	adcVolumeScale     = linear{ADC_VOLUME_MIN, ADC_VOLUME_MAX, 1, 255}
	dacVolumeScale     = linear{DAC_VOLUME_MIN, DAC_VOLUME_MAX, 1, 255}
	alcTargetScale     = linear{ALC_TARGET_MIN, ALC_TARGET_MAX, 0, 15}
	alcMaxGainScale    = linear{ALC_MAX_GAIN_MIN, ALC_MAX_GAIN_MAX, 0, 7}
	alcMinGainScale    = linear{ALC_MIN_GAIN_MIN, ALC_MIN_GAIN_MAX, 0, 7}
	gateThresholdScale = linear{GATE_THRESHOLD_MIN, GATE_THRESHOLD_MAX, 0, 31}
	outputVolumeScale  = linear{OUTPUT_VOLUME_MIN, OUTPUT_VOLUME_MAX, 7, 0}
	ampVolumeScale     = linear{AMP_VOLUME_MIN, AMP_VOLUME_MAX, 48, 127}
	enhanceDepthScale  = linear{0.0, 1.0, 0, 15}
)

// level is a dB control backed by one register field. When muteBelow is
// non-zero, codes below it mean the stage is muted and requests below the
// scale minimum write code 0. update, if set, is the volume-update latch of
// the same register and is written together with the field.
type level struct {
	field     Bits
	update    bool
	scale     linear
	muteBelow uint16
}

func (l level) encode(value float64) uint16 {
	if l.muteBelow > 0 && value < l.scale.min {
		return 0
	}
	return l.scale.code(value)
}

// get returns the level in dB; ok is false when the stage is muted.
func (l level) get(d *Device) (value float64, ok bool) {
	code := l.field.Get(d)
	if l.muteBelow > 0 && code < l.muteBelow {
		return 0, false
	}
	return l.scale.value(code), true
}

func (l level) set(d *Device, value float64) error {
	mask := l.field.mask()
	v := l.encode(value) << l.field.Low
	if l.update {
		mask |= volumeUpdate
		v |= volumeUpdate
	}
	return d.modify(l.field.Register, mask, v)
}

// volumeUpdate is the bit 8 latch shared by the PGA, ADC, DAC, headphone and
// speaker volume registers.
const volumeUpdate = 1 << 8

// stereoLevel drives a left/right pair of levels together.
type stereoLevel struct {
	left, right level
}

// get returns the louder of the unmuted channels; ok is false only when both
// channels are muted.
func (s stereoLevel) get(d *Device) (float64, bool) {
	l, lok := s.left.get(d)
	r, rok := s.right.get(d)
	switch {
	case !lok && !rok:
		return 0, false
	case !lok:
		return r, true
	case !rok:
		return l, true
	}
	return math.Max(l, r), true
}

func (s stereoLevel) set(d *Device, value float64) error {
	if err := s.left.set(d, value); err != nil {
		return err
	}
	return s.right.set(d, value)
}

// logTime is an ALC time constant encoded as min * 2^code. Hold times use a
// shifted exponent so that code 0 can mean no hold at all.
type logTime struct {
	min, max float64
	maxCode  uint16
	hold     bool
}

func (t logTime) code(seconds float64) uint16 {
	if t.hold && seconds <= 0 {
		return 0
	}
	c := math.Log2((clamp(seconds, t.min, t.max) - t.min) / t.min)
	var lo uint16
	if t.hold {
		c++
		lo = 1
	}
	if math.IsInf(c, -1) {
		return lo
	}
	return roundCode(c, lo, t.maxCode)
}

func (t logTime) seconds(code uint16) float64 {
	if t.hold {
		if code == 0 {
			return 0
		}
		return t.min * math.Exp2(float64(code-1))
	}
	return t.min * math.Exp2(float64(code))
}

var (
	alcAttackTime = logTime{ALC_ATTACK_TIME_MIN, ALC_ATTACK_TIME_MAX, alcAttackCodeMax, false}
	alcDecayTime  = logTime{ALC_DECAY_TIME_MIN, ALC_DECAY_TIME_MAX, alcDecayCodeMax, false}
	alcHoldTime   = logTime{ALC_HOLD_TIME_MIN, ALC_HOLD_TIME_MAX, alcHoldCodeMax, true}
)

// floorIndex returns the index of the largest table entry not above value,
// or 0 when value is below every entry.
func floorIndex(table []float64, value float64) uint16 {
	for i := len(table) - 1; i >= 0; i-- {
		if value >= table[i] {
			return uint16(i)
		}
	}
	return 0
}

// tableValue returns table[code], saturating codes past the end.
func tableValue(table []float64, code uint16) float64 {
	if int(code) >= len(table) {
		return table[len(table)-1]
	}
	return table[code]
}

// dividerIndex rounds ratio to the nearest half and looks it up in table.
func dividerIndex(table []float64, ratio float64) (uint16, bool) {
	ratio = math.Round(ratio*2.0) / 2.0
	for i, v := range table {
		if v == ratio {
			return uint16(i), true
		}
	}
	return 0, false
}
