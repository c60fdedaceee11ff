package bus

import (
	"fmt"
)

// ADDR7_24XX is the base identifier of a 24xx serial EEPROM with all
// chip-select pins tied low.
const ADDR7_24XX = Addr7(0x50)

// Addr7 is a right-aligned 7 bit device identifier. The read/write
// direction bit is not part of it.
type Addr7 uint8

// WriteSelector is the selector byte that addresses the device for a
// write-direction transfer.
func (a Addr7) WriteSelector() byte {
	return byte(a&0x7f) << 1
}

// ReadSelector is the selector byte that addresses the device for a
// read-direction transfer.
func (a Addr7) ReadSelector() byte {
	return a.WriteSelector() | 1
}

func (a Addr7) String() string {
	return fmt.Sprintf("0x%02x", uint8(a&0x7f))
}
