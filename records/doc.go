// Package records persists a stream of fixed-width records to a serial
// EEPROM and verifies it by reading it back.
//
// Records are 32-bit unsigned values stored little-endian, RECORD_WIDTH
// bytes each, packed back to back from a page aligned base address. The
// Filler packs them into page-sized writes; the Verifier re-reads each
// record at base + index*RECORD_WIDTH and compares.
package records
