package mock

import (
	"bytes"
	"io"

	"github.com/barnybug/halmock/hal"
)

var _ hal.I2C = (*I2C)(nil)

var newReader = func(data []byte) io.Reader {
	return bytes.NewReader(data)
}

// I2C is a bus whose reads return the data given to SetReadData. Writes are
// accepted and discarded, and the address is never looked at.
//
// The mock holds the slice passed to SetReadData, not a copy. The caller
// must not modify it while the mock is in use.
type I2C struct {
	data []byte
}

// NewI2C returns a mock with no read data. Reads leave the buffer untouched
// until SetReadData is called.
func NewI2C() *I2C {
	return &I2C{}
}

// SetReadData sets the data returned by subsequent reads. There is no read
// cursor: every read starts again from the beginning of data.
func (self *I2C) SetReadData(data []byte) {
	self.data = data
}

// ReadData returns the data reads are currently served from.
func (self *I2C) ReadData() []byte {
	return self.data
}

// Read copies up to len(buffer) bytes of read data into buffer. Any bytes of
// buffer beyond the read data are left as they were.
func (self *I2C) Read(address uint8, buffer []byte) error {
	n, err := self.fill(buffer)
	logf(LOG_TRACE, "i2c read addr=0x%02x want=%d got=%d", address, len(buffer), n)
	return err
}

// Write discards bytes and always succeeds.
func (self *I2C) Write(address uint8, bytes []byte) error {
	logf(LOG_TRACE, "i2c write addr=0x%02x % x", address, bytes)
	return nil
}

// WriteRead discards bytes and fills buffer as Read does.
func (self *I2C) WriteRead(address uint8, bytes []byte, buffer []byte) error {
	n, err := self.fill(buffer)
	logf(LOG_TRACE, "i2c write-read addr=0x%02x % x want=%d got=%d", address, bytes, len(buffer), n)
	return err
}

func (self *I2C) fill(buffer []byte) (int, error) {
	n, err := newReader(self.data).Read(buffer)
	if err == io.EOF {
		// nothing left to read is not a failure
		return n, nil
	}
	if err != nil {
		logs(LOG_ERROR, "i2c read failed:", err)
		return n, wrap(err)
	}
	return n, nil
}
