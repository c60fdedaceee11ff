package main

import (
	"log"

	"github.com/tebeka/atexit"

	"github.com/ezrec/i2ceeprom/bus"
	"github.com/ezrec/i2ceeprom/eeprom"
	"github.com/ezrec/i2ceeprom/sim"
)

// session is one simulated device loaded from an image file, driven
// through a recording bus.
type session struct {
	image  string
	chip   *sim.EEPROM
	trace  *bus.Recorder
	device *eeprom.Device

	dirty bool
	saved bool
}

func openSession(opts *options) (s *session, err error) {
	geom, err := opts.geometry()
	if err != nil {
		return
	}

	chip := sim.NewEEPROM(bus.Addr7(opts.addr), geom)
	chip.WriteCycle = opts.writeCycle
	err = chip.Load(opts.image)
	if err != nil {
		return
	}

	trace := &bus.Recorder{Verbose: opts.trace, Bus: chip}

	// The driver always addresses the 24xx block; a chip strapped elsewhere
	// never answers.
	device, err := eeprom.NewDevice(trace, bus.ADDR7_24XX, geom, opts.policy())
	if err != nil {
		return
	}
	device.Verbose = opts.verbose

	s = &session{
		image:  opts.image,
		chip:   chip,
		trace:  trace,
		device: device,
	}

	atexit.Register(s.flush)

	return
}

// Close saves the image if the device was written.
func (s *session) Close() (err error) {
	if !s.dirty || s.saved {
		return
	}

	err = s.chip.Save(s.image)
	if err != nil {
		return
	}
	s.saved = true

	return
}

func (s *session) flush() {
	err := s.Close()
	if err != nil {
		log.Printf("%v: %v", s.image, err)
	}
}

func (s *session) report() {
	stats := s.device.Stats()
	log.Printf("%v: %v bus retries, %v page commits, %v primitives traced",
		s.image, stats.Retries(), s.chip.Commits, len(s.trace.Log))
}
