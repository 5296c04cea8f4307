package shield

import (
	"github.com/ardnew/matrix64x32/hub75"
	"github.com/ardnew/matrix64x32/target"
)

// Matrix64x32 is a 64x32 panel wired to the board selected at build time.
// It holds the driver rather than exposing it.
type Matrix64x32 struct {
	driver hub75.Driver
}

// New constructs the driver for the active pin profile, 64 pixels wide and
// single buffered. Drivers must not touch the hardware until Init.
func New(newDriver hub75.NewDriverFunc) *Matrix64x32 {
	return &Matrix64x32{
		driver: newDriver(hub75.Config{
			Pins:         target.Active().Pins,
			Width:        hub75.PanelWidth,
			DoubleBuffer: false,
		}),
	}
}

func (m *Matrix64x32) Init() {
	m.driver.Begin()
}
