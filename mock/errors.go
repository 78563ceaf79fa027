package mock

import "github.com/pkg/errors"

// Error is returned when copying read data into the caller's buffer fails.
type Error struct {
	err error
}

func wrap(err error) error {
	return &Error{err: errors.WithStack(err)}
}

func (self *Error) Error() string {
	return "i2c mock: " + self.err.Error()
}

// Cause returns the underlying I/O error.
func (self *Error) Cause() error {
	return errors.Cause(self.err)
}

func (self *Error) Unwrap() error {
	return self.err
}
