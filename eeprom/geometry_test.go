package eeprom

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeometry_Validate(t *testing.T) {
	assert := assert.New(t)

	for name, geom := range Profiles {
		assert.NoError(geom.Validate(), name)
		assert.Equal(0, geom.Capacity%geom.PageSize, name)
	}

	table := []Geometry{
		{},
		{Capacity: 8192},
		{PageSize: 32},
		{Capacity: -32, PageSize: 32},
		{Capacity: 100, PageSize: 32},
		{Capacity: 131072, PageSize: 256},
	}

	for _, geom := range table {
		assert.ErrorIs(geom.Validate(), ErrGeometry, geom.String())
	}

	assert.Equal(256, Profile24LC64.Pages())
}

func TestGeometry_ValidateRead(t *testing.T) {
	assert := assert.New(t)

	geom := Profile24LC64

	table := []struct {
		Address uint16
		Length  int
		Err     error
	}{
		{0, 4, nil},
		{0, 8192, nil},
		{8188, 4, nil},
		{8191, 1, nil},
		{8189, 4, ErrOutOfRange},
		{8192, 1, ErrOutOfRange},
		{0xffff, 4, ErrOutOfRange},
		{0, 8193, ErrOutOfRange},
		{1, math.MaxInt, ErrOutOfRange},
		{0xffff, math.MaxInt - 100, ErrOutOfRange},
		{0, 0, ErrEmpty},
		{100, -1, ErrEmpty},
	}

	for _, tc := range table {
		err := geom.ValidateRead(tc.Address, tc.Length)
		if tc.Err == nil {
			assert.NoError(err, "%+v", tc)
			continue
		}
		assert.ErrorIs(err, tc.Err, "%+v", tc)
		assert.ErrorIs(err, ErrInvalidMemory, "%+v", tc)
	}
}

func TestGeometry_ValidateWrite(t *testing.T) {
	assert := assert.New(t)

	geom := Profile24LC64

	assert.NoError(geom.ValidateWrite(32, 32))
	assert.NoError(geom.ValidateWrite(0, 32))
	assert.NoError(geom.ValidateWrite(8160, 32))

	err := geom.ValidateWrite(33, 32)
	assert.ErrorIs(err, ErrInvalidMemory)
	assert.ErrorIs(err, ErrUnaligned)

	err = geom.ValidateWrite(8192, 32)
	assert.ErrorIs(err, ErrOutOfRange)

	err = geom.ValidateWrite(0xffe0, 32)
	assert.ErrorIs(err, ErrOutOfRange)

	err = geom.ValidateWrite(0, 64)
	assert.ErrorIs(err, ErrPageLength)

	var address *ErrAddress
	assert.True(errors.As(geom.ValidateWrite(33, 32), &address))
	assert.Equal(33, address.Address)
	assert.Equal(ErrUnaligned, address.Err)
}

func FuzzGeometry_Validate(f *testing.F) {
	f.Add(uint16(0), 4)
	f.Add(uint16(33), 32)
	f.Add(uint16(8188), 4)
	f.Add(uint16(0xffff), 1)
	f.Add(uint16(1), math.MaxInt)

	f.Fuzz(func(t *testing.T, address uint16, length int) {
		assert := assert.New(t)

		for _, geom := range Profiles {
			err := geom.ValidateRead(address, length)
			valid := length > 0 && length <= geom.Capacity-int(address)
			assert.Equal(valid, err == nil, "read %v 0x%04x+%d", geom, address, length)
			if err != nil {
				assert.ErrorIs(err, ErrInvalidMemory)
			}

			err = geom.ValidateWrite(address, geom.PageSize)
			if int(address)%geom.PageSize != 0 {
				assert.ErrorIs(err, ErrUnaligned)
			} else {
				assert.Equal(int(address)+geom.PageSize <= geom.Capacity, err == nil)
			}
		}
	})
}
