package address

import (
	"encoding/base64"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/byteutils"
	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/iotaledger/hive.go/stringify"

	"github.com/tonkit/tonaddr/packages/checksum"
)

const (
	// BounceableTag is the tag byte of a friendly address that bounces failed transfers.
	BounceableTag byte = 0x11

	// NonBounceableTag is the tag byte of a friendly address that does not bounce failed transfers.
	NonBounceableTag byte = 0x51

	// TestOnlyFlag is OR'd into the tag byte of friendly addresses that are only valid on test networks.
	TestOnlyFlag byte = 0x80

	// FriendlyPayloadLength contains the length of the checksummed part of a friendly address (tag, workchain, hash).
	FriendlyPayloadLength = 2 + HashLength

	// FriendlyLength contains the length of the binary friendly address (payload + checksum).
	FriendlyLength = FriendlyPayloadLength + checksum.Size

	// FriendlyStringLength contains the length of the base64 rendering of a friendly address.
	FriendlyStringLength = FriendlyLength / 3 * 4

	// masterchainByte is the workchain byte that stands for the MasterchainID.
	masterchainByte byte = 0xff
)

// urlSafeReverser maps the URL-safe alphabet back to the standard base64 alphabet.
var urlSafeReverser = strings.NewReplacer("-", "+", "_", "/")

// region Friendly /////////////////////////////////////////////////////////////////////////////////////////////////////

// Friendly is the result of decoding a friendly address. The flags are metadata of the encoding and not part of the
// identity of the Address: the bounceable and the non-bounceable rendering decode to the same Address.
type Friendly struct {
	Address    Address
	Bounceable bool
	TestOnly   bool
}

// ParseFriendly decodes a friendly address given in standard or URL-safe base64.
func ParseFriendly(source string) (friendly Friendly, err error) {
	data, err := base64.StdEncoding.DecodeString(urlSafeReverser.Replace(source))
	if err != nil {
		err = errors.Errorf("failed to decode base64 of %q (%v): %w", source, err, ErrInvalidFriendlyLength)
		return
	}

	return FriendlyFromBytes(data)
}

// FriendlyFromBytes decodes a binary friendly address.
func FriendlyFromBytes(data []byte) (friendly Friendly, err error) {
	if len(data) != FriendlyLength {
		err = errors.Errorf("friendly address has %d bytes instead of %d: %w", len(data), FriendlyLength, ErrInvalidFriendlyLength)
		return
	}
	if !checksum.Verify(data[:FriendlyPayloadLength], data[FriendlyPayloadLength:]) {
		err = errors.Errorf("invalid checksum %x of %x: %w", data[FriendlyPayloadLength:], data[:FriendlyPayloadLength], ErrChecksumMismatch)
		return
	}

	marshalUtil := marshalutil.New(data)
	tag, err := marshalUtil.ReadByte()
	if err != nil {
		err = errors.Errorf("failed to parse tag (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	workchainByte, err := marshalUtil.ReadByte()
	if err != nil {
		err = errors.Errorf("failed to parse workchain (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	hash, err := marshalUtil.ReadBytes(HashLength)
	if err != nil {
		err = errors.Errorf("failed to parse hash (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}

	if friendly.Address, err = New(workchainFromByte(workchainByte), hash); err != nil {
		return
	}
	friendly.TestOnly = tag&TestOnlyFlag != 0
	// apart from the test-only bit only the exact bounceable tag counts, unknown tags decode as non-bounceable
	friendly.Bounceable = tag&^TestOnlyFlag == BounceableTag

	return
}

// String returns a human readable version of the Friendly for debug purposes.
func (f Friendly) String() string {
	return stringify.Struct("Friendly",
		stringify.StructField("Address", f.Address),
		stringify.StructField("Bounceable", f.Bounceable),
		stringify.StructField("TestOnly", f.TestOnly),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Address encoding /////////////////////////////////////////////////////////////////////////////////////////////

// FriendlyBytes returns the binary friendly form of the Address: tag byte, workchain byte, hash and the big-endian
// CRC16 of those 34 bytes.
func (a Address) FriendlyBytes(options ...Option) (friendlyBytes []byte, err error) {
	workchainByte, err := workchainToByte(a.workchain)
	if err != nil {
		return
	}

	payload := byteutils.ConcatBytes([]byte{NewOptions(options...).Tag(), workchainByte}, a.hash[:])
	trailer := checksum.Sum(payload)

	return byteutils.ConcatBytes(payload, trailer[:]), nil
}

// FriendlyString returns the base64 rendering of FriendlyBytes. The URL-safe alphabet is used unless disabled.
func (a Address) FriendlyString(options ...Option) (friendlyString string, err error) {
	friendlyBytes, err := a.FriendlyBytes(options...)
	if err != nil {
		return
	}

	if NewOptions(options...).urlSafe {
		return base64.URLEncoding.EncodeToString(friendlyBytes), nil
	}

	return base64.StdEncoding.EncodeToString(friendlyBytes), nil
}

func workchainToByte(workchain int32) (byte, error) {
	switch {
	case workchain == MasterchainID:
		return masterchainByte, nil
	case workchain >= 0 && workchain < int32(masterchainByte):
		return byte(workchain), nil
	default:
		return 0, errors.Errorf("workchain %d does not fit into the workchain byte: %w", workchain, ErrWorkchainOutOfRange)
	}
}

func workchainFromByte(workchainByte byte) int32 {
	if workchainByte == masterchainByte {
		return MasterchainID
	}

	return int32(workchainByte)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Options //////////////////////////////////////////////////////////////////////////////////////////////////////

// Options is a struct that represents the flags that are encoded into a friendly address.
type Options struct {
	testOnly   bool
	bounceable bool
	urlSafe    bool
}

// NewOptions returns the Options of a friendly address: bounceable, URL-safe and valid on all networks unless
// overridden by the given Option(s).
func NewOptions(options ...Option) (friendlyOptions *Options) {
	friendlyOptions = &Options{
		bounceable: true,
		urlSafe:    true,
	}

	for _, option := range options {
		option(friendlyOptions)
	}

	return
}

// Tag returns the tag byte that encodes the bounceable and test-only flags.
func (o *Options) Tag() (tag byte) {
	tag = NonBounceableTag
	if o.bounceable {
		tag = BounceableTag
	}
	if o.testOnly {
		tag |= TestOnlyFlag
	}

	return
}

// Option is the type that is used for options that can be passed into the friendly encoders of an Address.
type Option func(*Options)

// WithTestOnly marks the friendly address as valid on test networks only.
func WithTestOnly(testOnly bool) Option {
	return func(options *Options) {
		options.testOnly = testOnly
	}
}

// WithBounceable sets whether failed transfers to the friendly address are bounced back.
func WithBounceable(bounceable bool) Option {
	return func(options *Options) {
		options.bounceable = bounceable
	}
}

// WithURLSafe sets whether the text rendering uses the URL-safe base64 alphabet.
func WithURLSafe(urlSafe bool) Option {
	return func(options *Options) {
		options.urlSafe = urlSafe
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
