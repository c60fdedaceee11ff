// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package eeprom

import (
	"context"
	"io"
	"log"

	"github.com/ezrec/i2ceeprom/bus"
)

// Device is a serial EEPROM on a bus. A Device owns its bus exclusively;
// only one operation may be in flight at a time.
type Device struct {
	Verbose bool // If set, enables verbose logging.

	addr  bus.Addr7
	geom  Geometry
	retry *bus.Retrier
}

// NewDevice creates a driver for the device at addr, with the given memory
// geometry, retrying busy primitives according to policy.
func NewDevice(b bus.Bus, addr bus.Addr7, geom Geometry, policy bus.Policy) (dev *Device, err error) {
	err = geom.Validate()
	if err != nil {
		return
	}

	dev = &Device{
		addr:  addr,
		geom:  geom,
		retry: bus.NewRetrier(b, policy),
	}

	return
}

// Geometry of the device memory array.
func (dev *Device) Geometry() Geometry {
	return dev.geom
}

// Addr is the device's bus identifier.
func (dev *Device) Addr() bus.Addr7 {
	return dev.addr
}

// Stats returns the primitive attempt counters since the device was created.
func (dev *Device) Stats() bus.Stats {
	return dev.retry.Stats
}

// setCursor moves the device's internal address counter. The transfer is
// left open, without a stop condition.
func (dev *Device) setCursor(ctx context.Context, address uint16) (err error) {
	err = dev.retry.Begin(ctx, dev.addr.WriteSelector())
	if err != nil {
		return
	}
	err = dev.retry.Send(ctx, byte(address>>8))
	if err != nil {
		return
	}
	err = dev.retry.Send(ctx, byte(address))
	return
}

// Read fills out with the bytes stored from address onwards, using one
// random-read transaction.
func (dev *Device) Read(ctx context.Context, address uint16, out []byte) (err error) {
	err = dev.geom.ValidateRead(address, len(out))
	if err != nil {
		return
	}

	if dev.Verbose {
		log.Printf("eeprom %v: read 0x%04x+%d", dev.addr, address, len(out))
	}

	err = dev.setCursor(ctx, address)
	if err != nil {
		return
	}

	// Repeated start turns the bus around without releasing it.
	err = dev.retry.Begin(ctx, dev.addr.ReadSelector())
	if err != nil {
		return
	}

	last := len(out) - 1
	for n := range out {
		if n == last {
			// The NACK ends the transfer; no stop follows.
			out[n], err = dev.retry.ReceiveNack(ctx)
		} else {
			out[n], err = dev.retry.ReceiveAck(ctx)
		}
		if err != nil {
			return
		}
	}

	return
}

// WritePage stores one full page at a page aligned address, in a single
// transaction.
func (dev *Device) WritePage(ctx context.Context, address uint16, page []byte) (err error) {
	err = dev.geom.ValidateWrite(address, len(page))
	if err != nil {
		return
	}

	if dev.Verbose {
		log.Printf("eeprom %v: write page 0x%04x", dev.addr, address)
	}

	err = dev.setCursor(ctx, address)
	if err != nil {
		return
	}

	for _, value := range page {
		err = dev.retry.Send(ctx, value)
		if err != nil {
			return
		}
	}

	err = dev.retry.End(ctx)
	return
}

// Dump copies the whole memory array to w, one page per read.
func (dev *Device) Dump(ctx context.Context, w io.Writer) (err error) {
	page := make([]byte, dev.geom.PageSize)
	for address := 0; address < dev.geom.Capacity; address += dev.geom.PageSize {
		err = dev.Read(ctx, uint16(address), page)
		if err != nil {
			return
		}
		_, err = w.Write(page)
		if err != nil {
			return
		}
	}

	return
}
