package wm8960

// Bit is a single bit of a register. Bit 8 is bit 0 of the high byte of the
// register frame; bits 7..0 are the low byte.
type Bit struct {
	Register uint8
	Bit      uint8
}

func (b Bit) mask() uint16 {
	return 1 << b.Bit
}

// Get reports the bit from the shadow registers of d.
func (b Bit) Get(d *Device) bool {
	return d.Register(b.Register)&b.mask() != 0
}

// Set updates the bit and writes the register to the chip.
func (b Bit) Set(d *Device, value bool) error {
	var v uint16
	if value {
		v = b.mask()
	}
	return d.modify(b.Register, b.mask(), v)
}

// Bits is a Width-bit field of a register starting at bit Low. The register
// frame is treated as one big-endian 16-bit word.
type Bits struct {
	Register uint8
	Width    uint8
	Low      uint8
}

func (f Bits) mask() uint16 {
	return (1<<f.Width - 1) << f.Low
}

// Get returns the field from the shadow registers of d.
func (f Bits) Get(d *Device) uint16 {
	return (d.Register(f.Register) & f.mask()) >> f.Low
}

// Set writes value into the field. Bits of value above Width are dropped;
// neighbouring fields of the register are left untouched.
func (f Bits) Set(d *Device, value uint16) error {
	return d.modify(f.Register, f.mask(), value<<f.Low)
}

// stereoBit is a left/right pair of switches driven together.
type stereoBit struct {
	left, right Bit
}

// get reports true only when both channels are set.
func (s stereoBit) get(d *Device) bool {
	return s.left.Get(d) && s.right.Get(d)
}

func (s stereoBit) set(d *Device, value bool) error {
	if err := s.left.Set(d, value); err != nil {
		return err
	}
	return s.right.Set(d, value)
}

// stereoBits is a left/right pair of raw fields driven together.
type stereoBits struct {
	left, right Bits
}

// get returns the larger of the two channel codes.
func (s stereoBits) get(d *Device) uint16 {
	l, r := s.left.Get(d), s.right.Get(d)
	if r > l {
		return r
	}
	return l
}

func (s stereoBits) set(d *Device, value uint16) error {
	if err := s.left.Set(d, value); err != nil {
		return err
	}
	return s.right.Set(d, value)
}
