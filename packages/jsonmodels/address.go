package jsonmodels

import (
	"github.com/cockroachdb/errors"

	"github.com/tonkit/tonaddr/packages/address"
)

// region Address //////////////////////////////////////////////////////////////////////////////////////////////////////

// Address represents the JSON model of an address.Address with all of its renderings.
type Address struct {
	Workchain     int32  `json:"workchain"`
	Raw           string `json:"raw"`
	Bounceable    string `json:"bounceable"`
	NonBounceable string `json:"nonBounceable"`
	TestOnly      bool   `json:"testOnly"`
}

// NewAddress returns an Address from the given address.Address. Both friendly renderings are URL-safe and carry the
// given test-only flag.
func NewAddress(addr address.Address, testOnly bool) (*Address, error) {
	bounceable, err := addr.FriendlyString(address.WithTestOnly(testOnly), address.WithBounceable(true))
	if err != nil {
		return nil, errors.Errorf("failed to render bounceable address: %w", err)
	}

	nonBounceable, err := addr.FriendlyString(address.WithTestOnly(testOnly), address.WithBounceable(false))
	if err != nil {
		return nil, errors.Errorf("failed to render non-bounceable address: %w", err)
	}

	return &Address{
		Workchain:     addr.Workchain(),
		Raw:           addr.RawString(),
		Bounceable:    bounceable,
		NonBounceable: nonBounceable,
		TestOnly:      testOnly,
	}, nil
}

// ToAddress returns the address.Address described by the model.
func (a *Address) ToAddress() (address.Address, error) {
	return address.ParseRaw(a.Raw)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
