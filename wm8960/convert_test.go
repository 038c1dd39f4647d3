package wm8960

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapRange(t *testing.T) {
	tests := []struct {
		x, inMin, inMax, outMin, outMax float64
		want                            float64
	}{
		{0.5, 0, 1, -10, 10, 0},
		{2.0, 0, 1, -10, 10, 10},  // clamped high
		{-1.0, 0, 1, -10, 10, -10}, // clamped low
		{-21, -21, 0, 7, 0, 7},    // descending output
		{0, -21, 0, 7, 0, 0},
		{5, 7, 0, -21, 0, -15}, // descending input
	}
	for _, tt := range tests {
		assert.InDeltaf(t, tt.want, mapRange(tt.x, tt.inMin, tt.inMax, tt.outMin, tt.outMax), 1e-9,
			"mapRange(%v, %v, %v, %v, %v)", tt.x, tt.inMin, tt.inMax, tt.outMin, tt.outMax)
	}
}

func TestRoundCode(t *testing.T) {
	assert.Equal(t, uint16(2), roundCode(2.5, 0, 7), "half to even")
	assert.Equal(t, uint16(4), roundCode(3.5, 0, 7), "half to even")
	assert.Equal(t, uint16(7), roundCode(9.0, 0, 7))
	assert.Equal(t, uint16(1), roundCode(-3.0, 1, 7))
	assert.Equal(t, uint16(1), roundCode(math.NaN(), 1, 7))
}

func TestLinear_DescendingCodes(t *testing.T) {
	assert.Equal(t, uint16(7), outputVolumeScale.code(-21))
	assert.Equal(t, uint16(0), outputVolumeScale.code(0))
	assert.Equal(t, uint16(2), outputVolumeScale.code(-6))
	assert.InDelta(t, -6.0, outputVolumeScale.value(2), 1e-9)
	assert.InDelta(t, 3.0, outputVolumeScale.step(), 1e-9)
}

func TestLinear_Steps(t *testing.T) {
	assert.InDelta(t, 0.75, micVolumeScale.step(), 1e-9)
	assert.InDelta(t, 0.5, adcVolumeScale.step(), 1e-9)
	assert.InDelta(t, 0.5, dacVolumeScale.step(), 1e-9)
	assert.InDelta(t, 1.0, ampVolumeScale.step(), 1e-9)
	assert.InDelta(t, 1.5, gateThresholdScale.step(), 1e-9)
}

// --- log time ---

func TestLogTime_HoldZero(t *testing.T) {
	assert.Equal(t, uint16(0), alcHoldTime.code(0.0))
	assert.Equal(t, 0.0, alcHoldTime.seconds(0))
}

func TestLogTime_HoldMinimum(t *testing.T) {
	assert.Equal(t, uint16(1), alcHoldTime.code(ALC_HOLD_TIME_MIN))
	assert.InDelta(t, ALC_HOLD_TIME_MIN, alcHoldTime.seconds(1), 1e-12)
	assert.Equal(t, uint16(alcHoldCodeMax), alcHoldTime.code(100.0))
}

func TestLogTime_AttackClampsToMaxCode(t *testing.T) {
	assert.Equal(t, uint16(10), alcAttackTime.code(6.14))
	assert.Equal(t, uint16(10), alcAttackTime.code(60.0))
	assert.InDelta(t, 6.144, alcAttackTime.seconds(10), 1e-9)
}

func TestLogTime_AttackMinimum(t *testing.T) {
	assert.Equal(t, uint16(0), alcAttackTime.code(0.006))
	assert.Equal(t, uint16(0), alcAttackTime.code(0.0))
	assert.InDelta(t, 0.006, alcAttackTime.seconds(0), 1e-12)
}

func TestLogTime_Decay(t *testing.T) {
	assert.Equal(t, uint16(3), alcDecayTime.code(0.192))
	assert.InDelta(t, 0.192, alcDecayTime.seconds(3), 1e-9)
}

// --- tables ---

func TestFloorIndex(t *testing.T) {
	assert.Equal(t, uint16(1), floorIndex(micBoostGains, 15.0))
	assert.Equal(t, uint16(0), floorIndex(micBoostGains, -5.0))
	assert.Equal(t, uint16(3), floorIndex(micBoostGains, 100.0))
	assert.Equal(t, uint16(3), floorIndex(speakerBoostGains, 4.0))
	assert.Equal(t, uint16(5), floorIndex(speakerBoostGains, 5.1))
}

func TestTableValue_Saturates(t *testing.T) {
	assert.Equal(t, 5.1, tableValue(speakerBoostGains, 7))
	assert.Equal(t, 2.9, tableValue(speakerBoostGains, 2))
}

func TestDividerIndex(t *testing.T) {
	i, ok := dividerIndex(adcDacDividers, 5.4)
	assert.True(t, ok)
	assert.Equal(t, uint16(5), i, "5.4 rounds to 5.5")

	i, ok = dividerIndex(bclkDividers, 4.0)
	assert.True(t, ok)
	assert.Equal(t, uint16(4), i)

	_, ok = dividerIndex(adcDacDividers, 5.0)
	assert.False(t, ok)
}
