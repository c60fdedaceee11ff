// Package eeprom drives a 24xx-family serial EEPROM over a two-wire bus.
//
// The device's memory is a flat array of bytes split into fixed-size pages.
// A Device reads any in-range span with the random-read sequence (address
// set, repeated start, sequential read with the final byte NACKed) and
// writes exactly one aligned page per transaction. Every address is checked
// against the device Geometry before the bus is touched, so an invalid
// request never leaves a transaction half issued.
package eeprom
