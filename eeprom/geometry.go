package eeprom

import (
	"fmt"
	"math"
)

// Geometry is the layout of a device's memory array.
type Geometry struct {
	Capacity int // Size of the array in bytes.
	PageSize int // Size of a write page in bytes.
}

// Datasheet geometries of the Microchip 24LC series.
var (
	Profile24LC32  = Geometry{Capacity: 4096, PageSize: 32}
	Profile24LC64  = Geometry{Capacity: 8192, PageSize: 32}
	Profile24LC128 = Geometry{Capacity: 16384, PageSize: 64}
	Profile24LC256 = Geometry{Capacity: 32768, PageSize: 64}
	Profile24LC512 = Geometry{Capacity: 65536, PageSize: 128}
)

// Profiles maps part names to their geometry.
var Profiles = map[string]Geometry{
	"24lc32":  Profile24LC32,
	"24lc64":  Profile24LC64,
	"24lc128": Profile24LC128,
	"24lc256": Profile24LC256,
	"24lc512": Profile24LC512,
}

// Validate checks the geometry can be addressed with two address bytes and
// is a whole number of pages.
func (geom Geometry) Validate() (err error) {
	switch {
	case geom.Capacity <= 0, geom.PageSize <= 0:
	case geom.Capacity > math.MaxUint16+1:
	case geom.Capacity%geom.PageSize != 0:
	default:
		return
	}

	err = fmt.Errorf("%w: %v", ErrGeometry, geom)
	return
}

// Pages is the number of pages in the array.
func (geom Geometry) Pages() int {
	return geom.Capacity / geom.PageSize
}

func (geom Geometry) String() string {
	return fmt.Sprintf("%d bytes in %d byte pages", geom.Capacity, geom.PageSize)
}

// ValidateRead checks that length bytes starting at address lie within the
// array.
func (geom Geometry) ValidateRead(address uint16, length int) (err error) {
	switch {
	case length <= 0:
		err = ErrEmpty
	case length > geom.Capacity-int(address):
		err = ErrOutOfRange
	default:
		return
	}

	err = &ErrAddress{Op: "read", Address: int(address), Length: length, Err: err}
	return
}

// ValidateWrite checks that a write of length bytes at address covers
// exactly one page of the array.
func (geom Geometry) ValidateWrite(address uint16, length int) (err error) {
	switch {
	case length != geom.PageSize:
		err = ErrPageLength
	case int(address)%geom.PageSize != 0:
		err = ErrUnaligned
	case length > geom.Capacity-int(address):
		err = ErrOutOfRange
	default:
		return
	}

	err = &ErrAddress{Op: "write", Address: int(address), Length: length, Err: err}
	return
}
