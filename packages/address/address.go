package address

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/stringify"
)

const (
	// HashLength contains the length of the account hash of an Address.
	HashLength = 32

	// MasterchainID is the workchain identifier of the masterchain.
	MasterchainID int32 = -1

	// BasechainID is the workchain identifier of the basechain.
	BasechainID int32 = 0
)

// region Address //////////////////////////////////////////////////////////////////////////////////////////////////////

// Address identifies an account by the workchain it lives in and the hash of the account. It is an immutable value
// type that can be copied and compared with ==.
type Address struct {
	workchain int32
	hash      [HashLength]byte
}

// New creates a new Address from the given workchain and account hash.
func New(workchain int32, hash []byte) (address Address, err error) {
	if len(hash) != HashLength {
		err = errors.Errorf("hash has %d bytes instead of %d: %w", len(hash), HashLength, ErrInvalidHashLength)
		return
	}

	address.workchain = workchain
	copy(address.hash[:], hash)

	return
}

// Workchain returns the workchain identifier of the Address.
func (a Address) Workchain() int32 {
	return a.workchain
}

// Hash returns a copy of the account hash of the Address.
func (a Address) Hash() [HashLength]byte {
	return a.hash
}

// IsMasterchain returns true if the Address belongs to the masterchain.
func (a Address) IsMasterchain() bool {
	return a.workchain == MasterchainID
}

// Equals returns true if both Addresses share the same workchain and hash.
func (a Address) Equals(other Address) bool {
	return a.workchain == other.workchain && a.hash == other.hash
}

// MarshalText encodes the Address in its raw form. The raw form carries no flags, so it round-trips the identity of
// the Address exactly.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.RawString()), nil
}

// UnmarshalText decodes an Address from either its friendly or its raw form.
func (a *Address) UnmarshalText(text []byte) (err error) {
	parsed, err := Parse(string(text))
	if err != nil {
		return errors.Errorf("failed to unmarshal Address: %w", err)
	}
	*a = parsed

	return nil
}

// String returns a human readable version of the Address for debug purposes.
func (a Address) String() string {
	return stringify.Struct("Address",
		stringify.StructField("Workchain", a.workchain),
		stringify.StructField("Raw", a.RawString()),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
