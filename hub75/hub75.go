package hub75

import (
	"errors"
	"fmt"
)

const (
	PanelWidth  = 64
	PanelHeight = 32
	// ScanRows is the number of row pairs addressed by A-D.
	ScanRows = PanelHeight / 2
)

var ErrDuplicatePin = errors.New("pin assigned to more than one signal")

// Pin is an Arduino-style digital pin number.
type Pin uint8

// Analog pin aliases, Mega/Due numbering.
const (
	A0 Pin = 54 + iota
	A1
	A2
	A3
	A4
	A5
	A6
	A7
	A8
	A9
	A10
	A11
	A12
	A13
	A14
	A15
)

// HeaderPins is the number of pins on a Mega-form-factor header, D0-D53
// followed by A0-A15.
const HeaderPins = int(A15) + 1

type Pins struct {
	// Address pins
	A Pin
	B Pin
	C Pin
	D Pin
	// Signal pins
	CLK Pin
	LAT Pin
	OE  Pin
}

type Role struct {
	Name string
	Pin  Pin
}

func (p Pins) Roles() []Role {
	return []Role{
		{"A", p.A},
		{"B", p.B},
		{"C", p.C},
		{"D", p.D},
		{"CLK", p.CLK},
		{"LAT", p.LAT},
		{"OE", p.OE},
	}
}

// Validate reports the first pin claimed by two signals.
func (p Pins) Validate() error {
	seen := make(map[Pin]string, 7)
	for _, r := range p.Roles() {
		if prev, ok := seen[r.Pin]; ok {
			return fmt.Errorf("%w: %s and %s on pin %d", ErrDuplicatePin, prev, r.Name, r.Pin)
		}
		seen[r.Pin] = r.Name
	}
	return nil
}

// Config is what a Driver is constructed with.
type Config struct {
	Pins  Pins
	Width int
	// DoubleBuffer selects the driver's double-buffered plane. When false the
	// driver keeps one plane and uses half the memory.
	DoubleBuffer bool
}

// BufferSize returns the bytes the driver needs for its pixel planes at
// 4 bits per channel, two rows packed per scan line.
func (c Config) BufferSize() int {
	n := c.Width * ScanRows * 3
	if c.DoubleBuffer {
		n *= 2
	}
	return n
}

// Driver is the external panel driver. Begin brings up the pins, the pixel
// buffer and the refresh; it reports nothing.
type Driver interface {
	Begin()
}

type NewDriverFunc func(Config) Driver
