package address

import (
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// friendlyCharacters only has to match somewhere in the source, the binary parse is the real validation.
	friendlyCharacters = regexp.MustCompile(`[A-Za-z0-9+/_-]+`)

	// rawWorkchain matches a decimal workchain identifier.
	rawWorkchain = regexp.MustCompile(`^[+-]?[0-9]+$`)

	// rawHash only has to match somewhere in the hash segment, like friendlyCharacters.
	rawHash = regexp.MustCompile(`(?i)[a-f0-9]{64}`)
)

// IsFriendly returns true if the source has the length of a friendly address and contains base64 characters.
func IsFriendly(source string) bool {
	return len(source) == FriendlyStringLength && friendlyCharacters.MatchString(source)
}

// IsRaw returns true if the source looks like "workchain:hexhash".
func IsRaw(source string) bool {
	if !strings.Contains(source, rawSeparator) {
		return false
	}

	parts := strings.Split(source, rawSeparator)

	return rawWorkchain.MatchString(parts[0]) && rawHash.MatchString(parts[1])
}

// Parse creates an Address from either its friendly or its raw form. Flags of a friendly source are dropped.
func Parse(source string) (address Address, err error) {
	switch {
	case IsFriendly(source):
		friendly, parseErr := ParseFriendly(source)
		if parseErr != nil {
			err = errors.Errorf("failed to parse friendly address: %w", parseErr)
			return
		}

		return friendly.Address, nil
	case IsRaw(source):
		if address, err = ParseRaw(source); err != nil {
			err = errors.Errorf("failed to parse raw address: %w", err)
		}

		return
	default:
		err = errors.Errorf("%q is neither a friendly nor a raw address: %w", source, ErrUnknownAddressFormat)
		return
	}
}

// Normalize returns the raw form of the given source. Supported sources are friendly or raw strings, binary friendly
// addresses and Addresses.
func Normalize(source interface{}) (string, error) {
	switch typedSource := source.(type) {
	case Address:
		return typedSource.RawString(), nil
	case *Address:
		if typedSource == nil {
			return "", errors.Errorf("nil Address: %w", ErrUnknownAddressFormat)
		}

		return typedSource.RawString(), nil
	case string:
		address, err := Parse(typedSource)
		if err != nil {
			return "", err
		}

		return address.RawString(), nil
	case []byte:
		friendly, err := FriendlyFromBytes(typedSource)
		if err != nil {
			return "", err
		}

		return friendly.Address.RawString(), nil
	default:
		return "", errors.Errorf("unsupported source type %T: %w", source, ErrUnknownAddressFormat)
	}
}
