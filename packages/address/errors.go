package address

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidHashLength is returned if an Address is created from a hash that is not HashLength bytes long.
	ErrInvalidHashLength = errors.New("invalid address hash length")
	// ErrUnknownAddressFormat is returned if a source is neither a friendly nor a raw address.
	ErrUnknownAddressFormat = errors.New("unknown address format")
	// ErrInvalidFriendlyLength is returned if a friendly address does not decode to FriendlyLength bytes.
	ErrInvalidFriendlyLength = errors.New("invalid friendly address length")
	// ErrChecksumMismatch is returned if the trailer of a friendly address does not match its payload.
	ErrChecksumMismatch = errors.New("friendly address checksum mismatch")
	// ErrMalformedRaw is returned if a raw address has a non-numeric workchain or a non-hex hash.
	ErrMalformedRaw = errors.New("malformed raw address")
	// ErrWorkchainOutOfRange is returned if a workchain can not be packed into the single workchain byte.
	ErrWorkchainOutOfRange = errors.New("workchain out of range")
)
