package checksum

import (
	"bytes"

	"github.com/sigurn/crc16"
)

// Size is the length in bytes of a checksum trailer.
const Size = 2

// xmodemTable holds the CRC-16/XMODEM lookup table (polynomial 0x1021, zero initial register, no reflection).
var xmodemTable = crc16.MakeTable(crc16.CRC16_XMODEM)

// CRC16 computes the CRC-16/XMODEM checksum of the given data.
//
// The table driven result equals the bit-serial register definition in which the message is extended by two zero
// bytes, shifted in MSB first, and reduced by the polynomial whenever the register overflows 16 bits.
func CRC16(data []byte) uint16 {
	return crc16.Checksum(data, xmodemTable)
}

// Sum returns the big-endian encoding of the CRC16 of data.
func Sum(data []byte) (trailer [Size]byte) {
	crc := CRC16(data)
	trailer[0] = byte(crc >> 8)
	trailer[1] = byte(crc)

	return
}

// Verify checks whether trailer is the byte-exact big-endian CRC16 of data.
func Verify(data []byte, trailer []byte) bool {
	expected := Sum(data)

	return bytes.Equal(expected[:], trailer)
}
