/*!
 * @file wm8960.go
 *
 * This is a library for the Cirrus Logic (Wolfson) WM8960 stereo CODEC,
 * controlled over I2C.
 *
 * Register map, gain tables and clocking recipe follow the CircuitPython
 * WM8960 driver by Scott Shawcroft and Cooper Dalrymple (Adafruit), itself
 * based on the SparkFun WM8960 Arduino library by Pete Lewis.
 *
 * @section license License
 *
 * MIT license, all text above must be included in any redistribution
 */

/*
 * ported to TinyGo by Elehobica, 2024
 */

// Package wm8960 is a driver for the WM8960 stereo CODEC.
//
// The WM8960 control interface is write-only: registers cannot be read back
// over I2C. The driver therefore keeps a shadow copy of all registers and
// every setter is a read-modify-write against that copy followed by a single
// two-byte bus write. The shadow is updated before the write is attempted, so
// after a failed write the shadow and the chip may disagree; Reset is the only
// way to bring them back in step.
//
// Datasheet: https://www.cirrus.com/products/wm8960/
package wm8960

import (
	"sync"

	"tinygo.org/x/drivers"
)

// Config holds the bus-level configuration of a Device.
type Config struct {
	// Address is the 7-bit I2C address. Zero selects DefaultAddress.
	Address uint16
}

// Writing the reset register resets every register to its default.
var resetBit = Bit{REG_RESET, 7}

// Device is one WM8960 on an I2C bus.
type Device struct {
	bus        drivers.I2C
	busMutex   sync.Mutex
	address    uint16
	registers  [RegisterCount][2]byte
	sampleRate int
}

// New creates a driver for the WM8960 on the given, already configured, I2C
// bus. No bus traffic happens until Configure or a setter is called.
func New(bus drivers.I2C, cfg Config) *Device {
	if cfg.Address == 0 {
		cfg.Address = DefaultAddress
	}
	d := &Device{
		bus:     bus,
		address: cfg.Address,
	}
	d.resetRegisters()
	return d
}

// Configure resets the chip, then powers up the reference (VREF) and selects
// the playback VMID divider.
func (d *Device) Configure() error {
	if err := d.Reset(); err != nil {
		return err
	}
	if err := d.SetPower(true); err != nil {
		return err
	}
	return d.SetVMID(VMIDPlayback)
}

// Address returns the 7-bit I2C address of the device.
func (d *Device) Address() uint16 {
	return d.address
}

// Reset issues a software reset and reloads the shadow registers with their
// power-on defaults. The chip is powered down afterwards; Configure (or
// SetPower and SetVMID) is needed to resume normal operation.
func (d *Device) Reset() error {
	// the reset frame is addressed from the shadow, so the shadow must be
	// valid before the write and reloaded after it
	err := resetBit.Set(d, true)
	d.busMutex.Lock()
	d.resetRegisters()
	d.sampleRate = 0
	d.busMutex.Unlock()
	return err
}

// Register returns the shadow image of register index: the register address
// in bits 15:9 and the 9-bit register value in bits 8:0.
func (d *Device) Register(index uint8) uint16 {
	d.busMutex.Lock()
	defer d.busMutex.Unlock()
	return d.readCell(index)
}

func (d *Device) resetRegisters() {
	for i, v := range registerDefaults {
		d.registers[i][0] = uint8(v>>8) | uint8(i<<1)
		d.registers[i][1] = uint8(v & 0xff)
	}
}

func (d *Device) readCell(index uint8) uint16 {
	return uint16(d.registers[index][0])<<8 | uint16(d.registers[index][1])
}

// modify clears mask in register index, ORs in value and sends the result.
func (d *Device) modify(index uint8, mask, value uint16) error {
	d.busMutex.Lock()
	defer d.busMutex.Unlock()
	image := d.readCell(index)
	image = (image &^ mask) | (value & mask)
	return d.writeCell(index, image)
}

// writeCell updates the shadow and then transmits it, high byte first.
// Callers must hold busMutex.
func (d *Device) writeCell(index uint8, image uint16) error {
	d.registers[index][0] = uint8(image >> 8)
	d.registers[index][1] = uint8(image & 0xff)
	frame := d.registers[index]
	return d.bus.Tx(d.address, frame[:], nil)
}
