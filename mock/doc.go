// Package mock provides in-memory stand-ins for the capabilities in package
// hal, so drivers can be tested without a bus or a timer.
//
// I2C answers reads with bytes supplied by the test and ignores writes:
//
//	bus := mock.NewI2C()
//	bus.SetReadData([]byte{0x01, 0x9a})
//	dev := sensor.New(bus, mock.Delay[uint16]{})
//
// Delay returns immediately for every width and unit.
package mock
