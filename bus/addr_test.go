package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddr7(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		Addr  Addr7
		Write byte
		Read  byte
	}{
		{ADDR7_24XX, 0xa0, 0xa1},
		{Addr7(0x57), 0xae, 0xaf},
		{Addr7(0x00), 0x00, 0x01},
		{Addr7(0xd0), 0xa0, 0xa1}, // Bit 7 is not part of the identifier.
	}

	for _, tc := range table {
		assert.Equal(tc.Write, tc.Addr.WriteSelector(), tc.Addr.String())
		assert.Equal(tc.Read, tc.Addr.ReadSelector(), tc.Addr.String())
		assert.Equal(tc.Write, tc.Addr.ReadSelector()&^1)
	}

	assert.Equal("0x50", ADDR7_24XX.String())
}
