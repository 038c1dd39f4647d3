package wm8960

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBus records every write transfer addressed to it.
type fakeBus struct {
	mu     sync.Mutex
	addrs  []uint16
	frames [][]byte
	err    error
}

func (b *fakeBus) Tx(addr uint16, w, r []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return b.err
	}
	frame := make([]byte, len(w))
	copy(frame, w)
	b.addrs = append(b.addrs, addr)
	b.frames = append(b.frames, frame)
	return nil
}

func (b *fakeBus) last() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.frames) == 0 {
		return nil
	}
	return b.frames[len(b.frames)-1]
}

func (b *fakeBus) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.frames)
}

func newTestDevice(t *testing.T) (*Device, *fakeBus) {
	t.Helper()
	bus := &fakeBus{}
	return New(bus, Config{}), bus
}

// value strips the address bits from a shadow register image.
func value(d *Device, reg uint8) uint16 {
	return d.Register(reg) & 0x1FF
}

// --- construction ---

func TestNew_DefaultAddress(t *testing.T) {
	d, bus := newTestDevice(t)
	assert.Equal(t, uint16(DefaultAddress), d.Address())
	assert.Zero(t, bus.count(), "New must not touch the bus")
}

func TestNew_CustomAddress(t *testing.T) {
	bus := &fakeBus{}
	d := New(bus, Config{Address: 0x1B})
	require.NoError(t, d.SetLeftDAC(true))
	assert.Equal(t, []uint16{0x1B}, bus.addrs)
}

func TestNew_ShadowDefaults(t *testing.T) {
	d, _ := newTestDevice(t)
	for i := uint8(0); i < RegisterCount; i++ {
		want := uint16(i)<<9 | DefaultRegister(i)
		assert.Equalf(t, want, d.Register(i), "R%d", i)
	}
}

func TestNew_SampleRateUnset(t *testing.T) {
	d, _ := newTestDevice(t)
	_, ok := d.SampleRate()
	assert.False(t, ok)
}

// --- frames ---

func TestWrite_FrameFormat(t *testing.T) {
	d, bus := newTestDevice(t)

	// R26 bit 8: address 0x1A shifted left, register bit 8 in bit 0
	require.NoError(t, d.SetLeftDAC(true))
	assert.Equal(t, []byte{0x35, 0x00}, bus.last())

	require.NoError(t, d.SetRightDAC(true))
	assert.Equal(t, []byte{0x35, 0x80}, bus.last())

	require.NoError(t, d.SetLeftDAC(false))
	assert.Equal(t, []byte{0x34, 0x80}, bus.last())

	assert.Equal(t, 3, bus.count())
}

func TestWrite_OneFramePerSetter(t *testing.T) {
	d, bus := newTestDevice(t)
	require.NoError(t, d.SetLeftMicVolume(10.0))
	assert.Equal(t, 1, bus.count())
	require.NoError(t, d.SetMicVolume(10.0))
	assert.Equal(t, 3, bus.count())
}

func TestWrite_ShadowMatchesLastFrame(t *testing.T) {
	d, bus := newTestDevice(t)
	require.NoError(t, d.SetSpeakerDCGain(3.6))
	f := bus.last()
	assert.Equal(t, uint16(f[0])<<8|uint16(f[1]), d.Register(REG_CLASS_D_CONTROL_3))
}

func TestWrite_BusErrorKeepsShadow(t *testing.T) {
	d, bus := newTestDevice(t)
	nack := errors.New("nack")
	bus.err = nack

	err := d.SetLeftDAC(true)
	assert.ErrorIs(t, err, nack)
	assert.True(t, d.LeftDAC(), "shadow is updated before the transfer")
	assert.Zero(t, bus.count())
}

func TestWrite_ConcurrentSettersSameRegister(t *testing.T) {
	d, _ := newTestDevice(t)
	setters := []func(bool) error{
		d.SetPLL,
		d.SetMonoOutput,
		d.SetRightSpeaker,
		d.SetLeftHeadphone,
		d.SetRightHeadphone,
		d.SetLeftDAC,
		d.SetRightDAC,
	}

	var wg sync.WaitGroup
	for _, set := range setters {
		wg.Add(1)
		go func(set func(bool) error) {
			defer wg.Done()
			assert.NoError(t, set(true))
		}(set)
	}
	wg.Wait()

	// every bit of R26 except the left speaker (bit 4) and bit 2
	assert.Equal(t, uint16(0x1EB), value(d, REG_PWR_MGMT_2))
}

// --- reset ---

func TestReset_Frame(t *testing.T) {
	d, bus := newTestDevice(t)
	require.NoError(t, d.Reset())
	assert.Equal(t, [][]byte{{0x1E, 0x80}}, bus.frames)
}

func TestReset_RestoresDefaults(t *testing.T) {
	d, _ := newTestDevice(t)
	require.NoError(t, d.SetHeadphoneVolume(0.0))
	require.NoError(t, d.SetSampleRate(48000))
	require.NoError(t, d.SetBitDepth(32))

	require.NoError(t, d.Reset())

	for i := uint8(0); i < RegisterCount; i++ {
		want := uint16(i)<<9 | DefaultRegister(i)
		assert.Equalf(t, want, d.Register(i), "R%d", i)
	}
	_, ok := d.SampleRate()
	assert.False(t, ok)
}

func TestReset_BusError(t *testing.T) {
	d, bus := newTestDevice(t)
	require.NoError(t, d.SetDAC(true))
	bus.err = errors.New("nack")

	assert.Error(t, d.Reset())
	assert.Equal(t, DefaultRegister(REG_PWR_MGMT_2), value(d, REG_PWR_MGMT_2))
}

func TestConfigure(t *testing.T) {
	d, bus := newTestDevice(t)
	require.NoError(t, d.Configure())

	assert.Equal(t, []byte{0x1E, 0x80}, bus.frames[0])
	assert.True(t, d.Power())
	assert.Equal(t, VMIDPlayback, d.VMID())
	assert.Equal(t, 3, bus.count())
}
