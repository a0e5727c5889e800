package address

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// rawSeparator divides the workchain from the hash in the raw form.
const rawSeparator = ":"

// ParseRaw creates an Address from its raw form "workchain:hexhash". Segments after a second separator are ignored.
func ParseRaw(source string) (address Address, err error) {
	parts := strings.Split(source, rawSeparator)
	if len(parts) < 2 {
		err = errors.Errorf("missing separator in %q: %w", source, ErrMalformedRaw)
		return
	}

	workchain, err := strconv.ParseInt(parts[0], 10, 32)
	if err != nil {
		err = errors.Errorf("failed to parse workchain %q (%v): %w", parts[0], err, ErrMalformedRaw)
		return
	}

	hash, err := hex.DecodeString(parts[1])
	if err != nil {
		err = errors.Errorf("failed to decode hash %q (%v): %w", parts[1], err, ErrMalformedRaw)
		return
	}

	return New(int32(workchain), hash)
}

// RawString returns the raw form of the Address: the decimal workchain and the lowercase hex hash joined by ":".
func (a Address) RawString() string {
	return strconv.FormatInt(int64(a.workchain), 10) + rawSeparator + hex.EncodeToString(a.hash[:])
}
