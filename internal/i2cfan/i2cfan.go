// Package i2cfan commands an Argon-style fan controller: a single
// duty-cycle register on a device behind the I2C bus.
package i2cfan

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

type Fan struct {
	bus i2c.BusCloser
	dev i2c.Dev
	reg byte
}

// Open initializes the host drivers and claims the given bus.
// Failure here means the fan cannot be commanded at all.
func Open(busName string, addr uint16, reg byte) (*Fan, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("initializing periph host: %w", err)
	}

	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("opening i2c bus %q: %w", busName, err)
	}

	return &Fan{
		bus: bus,
		dev: i2c.Dev{Bus: bus, Addr: addr},
		reg: reg,
	}, nil
}

// WriteDutyCycle writes the duty cycle to the fan register.
func (f *Fan) WriteDutyCycle(dutyCycle int) error {
	if dutyCycle < 0 || dutyCycle > 100 {
		return fmt.Errorf("duty cycle %d out of range [0,100]", dutyCycle)
	}
	if err := f.dev.Tx([]byte{f.reg, byte(dutyCycle)}, nil); err != nil {
		return fmt.Errorf("i2c write to register 0x%02x: %w", f.reg, err)
	}
	return nil
}

func (f *Fan) Close() error {
	return f.bus.Close()
}
