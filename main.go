//go:build tinygo

package main

import (
	"fmt"
	"machine"
	"time"

	"github.com/elehobica/pico_tinygo_wm8960/wm8960"
)

var (
	i2c    *machine.I2C
	sdaPin machine.Pin
	sclPin machine.Pin
	ledPin machine.Pin
	serial = machine.Serial
)

const (
	sampleRate = 44100
	bitDepth   = 16
)

type Pin struct {
	*machine.Pin
}

func (pin Pin) Toggle() {
	pin.Set(!pin.Get())
}

func (pin Pin) ErrorBlinkFor(count int) {
	for {
		for i := 0; i < count; i++ {
			pin.High()
			time.Sleep(250 * time.Millisecond)
			pin.Low()
			time.Sleep(250 * time.Millisecond)
		}
		pin.Low()
		time.Sleep(500 * time.Millisecond)
	}
}

func (pin Pin) OkBlinkFor() {
	for {
		pin.High()
		time.Sleep(1000 * time.Millisecond)
		pin.Low()
		time.Sleep(1000 * time.Millisecond)
	}
}

type TestError struct {
	error
	Code int
}

func main() {
	led := &Pin{&ledPin}
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	led.High()

	err := i2c.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       sdaPin,
		SCL:       sclPin,
	})
	if err != nil {
		fmt.Printf("ERROR[%d]: i2c configure error: %s\r\n", 1, err.Error())
		led.ErrorBlinkFor(1)
	}
	dev := wm8960.New(i2c, wm8960.Config{})
	codec := wm8960.NewCodec(dev)

	// Start Test
	if err := wm8960_test(led, &codec); err != nil {
		fmt.Printf("ERROR[%d]: %s\r\n", err.Code, err.Error())
		led.ErrorBlinkFor(err.Code)
	}

	led.OkBlinkFor()
}

func wm8960_test(led *Pin, codec *wm8960.Codec) (testError *TestError) {
	println(); println()
	println("========================")
	println("== pico_tinygo_wm8960 ==")
	println("========================")

	err := codec.Configure(sampleRate, bitDepth)
	if err != nil {
		return &TestError{error: fmt.Errorf("codec configure error: %w", err), Code: 2}
	}
	fmt.Printf("codec configured for %d Hz, %d bit\r\n", sampleRate, codec.BitDepth())

	// Line input 2 monitored straight to the headphone, DAC audible on the speaker
	err = codec.SetInput(wm8960.InputLine2)
	if err != nil {
		return &TestError{error: fmt.Errorf("input select error: %w", err), Code: 3}
	}
	err = codec.SetGain(0.5)
	if err != nil {
		return &TestError{error: fmt.Errorf("gain error: %w", err), Code: 3}
	}

	volume := 0.75
	steps := []func() error{
		func() error { return codec.SetVolume(volume) },
		func() error { return codec.SetHeadphone(0.5) },
		func() error { return codec.SetSpeaker(0.5) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return &TestError{error: fmt.Errorf("output setup error: %w", err), Code: 4}
		}
	}

	fmt.Printf("keys: +/- volume, m monitor, l loopback, e enhance, q quit\r\n")
	for loop := 0; ; loop++ {
		if serial.Buffered() > 0 {
			data, _ := serial.ReadByte()
			switch data {
			case 'q':
				fmt.Printf("Done\r\n")
				return nil
			case '=':
				fallthrough
			case '+':
				if volume < 1.0 {
					volume += 0.05
					err = codec.SetVolume(volume)
				}
			case '-':
				if volume > 0.0 {
					volume -= 0.05
					err = codec.SetVolume(volume)
				}
			case 'm':
				if codec.Monitor() > 0.0 {
					err = codec.SetMonitor(0.0)
				} else {
					err = codec.SetMonitor(1.0)
				}
				fmt.Printf("Monitor %.2f\r\n", codec.Monitor())
			case 'l':
				err = codec.SetLoopback(!codec.Loopback())
				fmt.Printf("Loopback %t\r\n", codec.Loopback())
			case 'e':
				if codec.Enhance() > 0.0 {
					err = codec.SetEnhance(0.0)
				} else {
					err = codec.SetEnhance(0.5)
				}
				fmt.Printf("Enhance %.2f\r\n", codec.Enhance())
			default:
			}
			if err != nil {
				return &TestError{error: fmt.Errorf("control error: %w", err), Code: 5}
			}
		}
		if loop%10 == 0 {
			led.Toggle()
		}
		time.Sleep(10 * time.Millisecond)
	}
}
