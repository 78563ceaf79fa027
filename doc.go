// Test doubles for writing device drivers without the device
//
// Packages
//
// - hal: the blocking I2C and delay capabilities a driver depends on
//
// - mock: an I2C bus that answers reads with canned bytes and ignores
// writes, and a delay that never waits
//
// - fixture: canned bytes kept in YAML files
//
// A driver written against hal.I2C and hal.Delay can be handed a
// *mock.I2C and a mock.Delay in its unit tests.
package halmock
