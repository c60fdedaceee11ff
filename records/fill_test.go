package records

import (
	"context"
	"encoding/binary"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/i2ceeprom/bus"
	"github.com/ezrec/i2ceeprom/eeprom"
	"github.com/ezrec/i2ceeprom/sim"
)

type flushed struct {
	Address uint16
	Page    []byte
}

// pageLog is a PageWriter that keeps a copy of every page it is given.
type pageLog struct {
	geom  eeprom.Geometry
	fail  error
	pages []flushed
}

func (pl *pageLog) Geometry() eeprom.Geometry {
	return pl.geom
}

func (pl *pageLog) WritePage(ctx context.Context, address uint16, page []byte) (err error) {
	err = pl.geom.ValidateWrite(address, len(page))
	if err != nil {
		return
	}
	if pl.fail != nil {
		return pl.fail
	}
	pl.pages = append(pl.pages, flushed{Address: address, Page: slices.Clone(page)})
	return
}

func sequence(count int) (values []uint32) {
	for n := range count {
		values = append(values, uint32(n+1))
	}
	return
}

func TestFill_OnePage(t *testing.T) {
	assert := assert.New(t)

	pl := &pageLog{geom: eeprom.Profile24LC64}
	fl := NewFiller(pl)

	report, err := fl.Fill(context.Background(), slices.Values(sequence(8)))
	assert.NoError(err)
	assert.Equal(FillReport{Records: 8, Bytes: 32, Pages: 1}, report)

	assert.Len(pl.pages, 1)
	assert.Equal(uint16(0), pl.pages[0].Address)

	expect := []byte{}
	for n := range 8 {
		expect = binary.LittleEndian.AppendUint32(expect, uint32(n+1))
	}
	assert.Equal(expect, pl.pages[0].Page)
}

func TestFill_PageCount(t *testing.T) {
	assert := assert.New(t)

	for _, count := range []int{0, 1, 7, 8, 9, 15, 16, 17, 100, 2048} {
		pl := &pageLog{geom: eeprom.Profile24LC64}
		fl := NewFiller(pl)

		report, err := fl.Fill(context.Background(), slices.Values(sequence(count)))
		assert.NoError(err, "count %d", count)

		full := (4 * count) / 32
		partial := (4*count)%32 != 0
		assert.Equal(full, report.Pages, "count %d", count)
		assert.Equal(partial, report.Partial, "count %d", count)

		flushes := full
		if partial {
			flushes++
		}
		assert.Len(pl.pages, flushes, "count %d", count)
		for n, page := range pl.pages {
			assert.Equal(uint16(n*32), page.Address)
		}
	}
}

func TestFill_StaleTail(t *testing.T) {
	assert := assert.New(t)

	pl := &pageLog{geom: eeprom.Profile24LC64}
	fl := NewFiller(pl)

	// 10 records: one full page of 1..8, then 9 and 10 over a stale buffer.
	_, err := fl.Fill(context.Background(), slices.Values(sequence(10)))
	assert.NoError(err)
	assert.Len(pl.pages, 2)

	tail := pl.pages[1]
	assert.Equal(uint16(32), tail.Address)
	assert.Equal(uint32(9), binary.LittleEndian.Uint32(tail.Page[0:]))
	assert.Equal(uint32(10), binary.LittleEndian.Uint32(tail.Page[4:]))
	for n := 2; n < 8; n++ {
		assert.Equal(uint32(n+1), binary.LittleEndian.Uint32(tail.Page[n*4:]))
	}
}

func TestFill_Pad(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		Pad  PadMode
		Fill byte
	}{
		{PAD_ZERO, 0x00},
		{PAD_ERASED, 0xff},
	}

	for _, tc := range table {
		pl := &pageLog{geom: eeprom.Profile24LC64}
		fl := &Filler{Device: pl, Pad: tc.Pad}

		_, err := fl.Fill(context.Background(), slices.Values(sequence(10)))
		assert.NoError(err)

		tail := pl.pages[1].Page
		assert.Equal(uint32(10), binary.LittleEndian.Uint32(tail[4:]))
		for _, value := range tail[8:] {
			assert.Equal(tc.Fill, value, tc.Pad.String())
		}
	}
}

func TestFill_Base(t *testing.T) {
	assert := assert.New(t)

	pl := &pageLog{geom: eeprom.Profile24LC64}
	fl := &Filler{Device: pl, Base: 0x0100}

	_, err := fl.Fill(context.Background(), slices.Values(sequence(16)))
	assert.NoError(err)
	assert.Equal(uint16(0x0100), pl.pages[0].Address)
	assert.Equal(uint16(0x0120), pl.pages[1].Address)

	// Unaligned base is rejected by the first flush.
	pl = &pageLog{geom: eeprom.Profile24LC64}
	fl = &Filler{Device: pl, Base: 0x0104}
	_, err = fl.Fill(context.Background(), slices.Values(sequence(16)))
	assert.ErrorIs(err, eeprom.ErrUnaligned)
	assert.Empty(pl.pages)
}

func TestFill_Abort(t *testing.T) {
	assert := assert.New(t)

	// One page more than the device holds.
	pl := &pageLog{geom: eeprom.Geometry{Capacity: 64, PageSize: 32}}
	fl := NewFiller(pl)

	consumed := 0
	seq := func(yield func(uint32) bool) {
		for n := range 24 {
			consumed++
			if !yield(uint32(n)) {
				return
			}
		}
	}

	report, err := fl.Fill(context.Background(), seq)
	assert.ErrorIs(err, eeprom.ErrInvalidMemory)
	assert.Equal(2, report.Pages)
	assert.Equal(24, consumed)

	var flush *ErrFlush
	assert.True(errors.As(err, &flush))
	assert.Equal(64, flush.Address)

	// A device error stops the stream at the page that failed.
	pl = &pageLog{geom: eeprom.Profile24LC64, fail: bus.ErrBusTimeout}
	consumed = 0
	_, err = NewFiller(pl).Fill(context.Background(), seq)
	assert.ErrorIs(err, bus.ErrBusTimeout)
	assert.Equal(8, consumed)
}

func TestFill_BeyondAddressSpace(t *testing.T) {
	assert := assert.New(t)

	pl := &pageLog{geom: eeprom.Profile24LC512}
	fl := &Filler{Device: pl, Base: 0xff80}

	_, err := fl.Fill(context.Background(), slices.Values(sequence(33)))
	assert.ErrorIs(err, eeprom.ErrOutOfRange)

	var flush *ErrFlush
	assert.True(errors.As(err, &flush))
	assert.Equal(0x10000, flush.Address)
}

func TestFill_PageWidth(t *testing.T) {
	assert := assert.New(t)

	pl := &pageLog{geom: eeprom.Geometry{Capacity: 60, PageSize: 6}}
	_, err := NewFiller(pl).Fill(context.Background(), slices.Values(sequence(3)))
	assert.ErrorIs(err, ErrPageWidth)
}

func TestFill_TestTable(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	chip := sim.NewEEPROM(bus.ADDR7_24XX, eeprom.Profile24LC64)
	chip.WriteCycle = 3
	dev, err := eeprom.NewDevice(chip, bus.ADDR7_24XX, eeprom.Profile24LC64, bus.Policy{})
	assert.NoError(err)

	report, err := NewFiller(dev).Fill(ctx, slices.Values(TestTable[:]))
	assert.NoError(err)
	assert.Equal(250, report.Pages)
	assert.False(report.Partial)
	assert.Equal(250, chip.Commits)

	result, err := NewVerifier(dev).Verify(ctx, slices.Values(TestTable[:]))
	assert.NoError(err)
	assert.True(result.Pass)
	assert.Equal(2000, result.Compared)
	assert.Empty(result.Skipped)
}
