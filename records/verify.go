package records

import (
	"context"
	"encoding/binary"
	"errors"
	"iter"
	"log"
	"math"

	"github.com/ezrec/i2ceeprom/eeprom"
)

// Reader reads spans of device memory. *eeprom.Device is a Reader.
type Reader interface {
	Read(ctx context.Context, address uint16, out []byte) error
}

var _ Reader = (*eeprom.Device)(nil)

// VerifyMode selects how far verification goes after a mismatch.
type VerifyMode int

//go:generate go tool stringer -linecomment -type=VerifyMode
const (
	VERIFY_SHORT_CIRCUIT = VerifyMode(0) // short-circuit
	VERIFY_EXHAUSTIVE    = VerifyMode(1) // exhaustive
)

// Mismatch is a record whose stored value differs from the stream.
type Mismatch struct {
	Index   int
	Address int
	Want    uint32
	Got     uint32
}

// Result of a verification.
type Result struct {
	Pass       bool       // No compared record differed.
	Compared   int        // Records read back and compared.
	Skipped    []int      // Indices of records that could not be addressed.
	Mismatches []Mismatch // In stream order.
}

// Verifier reads records back and compares them with the stream that was
// written.
type Verifier struct {
	Verbose bool       // If set, enables verbose logging.
	Device  Reader     // Source device.
	Base    uint16     // Address of the first record.
	Mode    VerifyMode // Stop at the first mismatch, or report all.
}

// NewVerifier creates a short-circuit Verifier reading from address 0.
func NewVerifier(dev Reader) *Verifier {
	return &Verifier{Device: dev}
}

// Verify compares each record of seq, in order, with the device. A record
// whose address the device rejects is skipped. In VERIFY_SHORT_CIRCUIT mode
// the first mismatch ends the verification.
//
// Only failures other than an invalid address are returned as errors.
func (vf *Verifier) Verify(ctx context.Context, seq iter.Seq[uint32]) (result Result, err error) {
	var buf [RECORD_WIDTH]byte

	result.Pass = true
	index := -1

	for want := range seq {
		index++

		address := int(vf.Base) + index*RECORD_WIDTH
		if address > math.MaxUint16 {
			result.Skipped = append(result.Skipped, index)
			continue
		}

		err = vf.Device.Read(ctx, uint16(address), buf[:])
		if errors.Is(err, eeprom.ErrInvalidMemory) {
			err = nil
			result.Skipped = append(result.Skipped, index)
			continue
		}
		if err != nil {
			err = &ErrRecord{Index: index, Err: err}
			return
		}

		result.Compared++

		got := binary.LittleEndian.Uint32(buf[:])
		if got == want {
			continue
		}

		if vf.Verbose {
			log.Printf("records: record %d at 0x%04x: want 0x%08x, got 0x%08x", index, address, want, got)
		}

		result.Pass = false
		result.Mismatches = append(result.Mismatches, Mismatch{
			Index:   index,
			Address: address,
			Want:    want,
			Got:     got,
		})

		if vf.Mode == VERIFY_SHORT_CIRCUIT {
			return
		}
	}

	return
}
