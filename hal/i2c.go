// Package hal defines the blocking capabilities device drivers are written
// against. Real buses and timers implement them on hardware; package mock
// implements them in memory for tests.
package hal

// I2CRead reads len(buffer) bytes from the device at address.
type I2CRead interface {
	Read(address uint8, buffer []byte) error
}

// I2CWrite writes bytes to the device at address.
type I2CWrite interface {
	Write(address uint8, bytes []byte) error
}

// I2CWriteRead writes bytes then reads into buffer in a single transaction.
type I2CWriteRead interface {
	WriteRead(address uint8, bytes []byte, buffer []byte) error
}

// I2C is a bus offering all three transaction kinds.
type I2C interface {
	I2CRead
	I2CWrite
	I2CWriteRead
}
