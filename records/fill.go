package records

import (
	"context"
	"encoding/binary"
	"iter"
	"log"
	"math"

	"github.com/ezrec/i2ceeprom/eeprom"
)

// RECORD_WIDTH is the size in bytes of one stored record.
const RECORD_WIDTH = 4

// PageWriter stores whole pages. *eeprom.Device is a PageWriter.
type PageWriter interface {
	Geometry() eeprom.Geometry
	WritePage(ctx context.Context, address uint16, page []byte) error
}

var _ PageWriter = (*eeprom.Device)(nil)

// PadMode selects what fills the tail of a final, partial page.
type PadMode int

//go:generate go tool stringer -linecomment -type=PadMode
const (
	PAD_STALE  = PadMode(0) // stale
	PAD_ZERO   = PadMode(1) // zero
	PAD_ERASED = PadMode(2) // erased
)

// FillReport describes a completed fill.
type FillReport struct {
	Records int  // Records consumed.
	Bytes   int  // Record bytes written, excluding padding.
	Pages   int  // Full pages flushed.
	Partial bool // A final partial page was flushed.
}

// Filler packs records into pages and writes them in order.
type Filler struct {
	Verbose bool       // If set, enables verbose logging.
	Device  PageWriter // Destination device.
	Base    uint16     // Address of the first record; must be page aligned.
	Pad     PadMode    // Tail of a final partial page.

	page []byte
}

// NewFiller creates a Filler that writes from address 0.
func NewFiller(dev PageWriter) *Filler {
	return &Filler{Device: dev}
}

// Fill consumes seq once, in order. Every full page is flushed as soon as
// it is complete; a final partial page is flushed after the stream ends.
// The first failed flush aborts the fill.
//
// With PAD_STALE the tail of a partial page keeps whatever the page
// buffer last held, as the buffer is reused from page to page.
func (fl *Filler) Fill(ctx context.Context, seq iter.Seq[uint32]) (report FillReport, err error) {
	geom := fl.Device.Geometry()
	if geom.PageSize%RECORD_WIDTH != 0 {
		err = ErrPageWidth
		return
	}

	if len(fl.page) != geom.PageSize {
		fl.page = make([]byte, geom.PageSize)
	}

	address := int(fl.Base)
	offset := 0

	for value := range seq {
		binary.LittleEndian.PutUint32(fl.page[offset:], value)
		offset += RECORD_WIDTH
		report.Records++
		report.Bytes += RECORD_WIDTH

		if offset == len(fl.page) {
			err = fl.flush(ctx, address)
			if err != nil {
				return
			}
			report.Pages++
			offset = 0
			address += geom.PageSize
		}
	}

	if offset > 0 {
		fl.pad(offset)
		err = fl.flush(ctx, address)
		if err != nil {
			return
		}
		report.Partial = true
	}

	return
}

func (fl *Filler) pad(offset int) {
	var value byte
	switch fl.Pad {
	case PAD_ZERO:
		value = 0
	case PAD_ERASED:
		value = 0xff
	default:
		return
	}

	for n := offset; n < len(fl.page); n++ {
		fl.page[n] = value
	}
}

func (fl *Filler) flush(ctx context.Context, address int) (err error) {
	if address > math.MaxUint16 {
		err = &eeprom.ErrAddress{Op: "write", Address: address, Length: len(fl.page), Err: eeprom.ErrOutOfRange}
	} else {
		if fl.Verbose {
			log.Printf("records: flush page 0x%04x", address)
		}
		err = fl.Device.WritePage(ctx, uint16(address), fl.page)
	}

	if err != nil {
		err = &ErrFlush{Address: address, Err: err}
	}

	return
}
