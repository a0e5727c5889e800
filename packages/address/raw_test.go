package address

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRaw(t *testing.T) {
	address, err := ParseRaw(testRaw)
	require.NoError(t, err)
	assert.Equal(t, BasechainID, address.Workchain())
	assert.Equal(t, testRaw, address.RawString())

	upper, err := ParseRaw("-1:2CF55953E92EFBEADAB7BA725C3F93A0B23F842CBBA72D7B8E6F510A70E422E3")
	require.NoError(t, err)
	assert.Equal(t, MasterchainID, upper.Workchain())
	assert.Equal(t, "-1:"+testHashHex, upper.RawString())
}

func TestParseRaw_IgnoresTrailingSegments(t *testing.T) {
	address, err := ParseRaw(testRaw + ":ignored")
	require.NoError(t, err)
	assert.Equal(t, testRaw, address.RawString())
}

func TestParseRaw_Errors(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		wantErr error
	}{
		{"no separator", testHashHex, ErrMalformedRaw},
		{"non-numeric workchain", "x:" + testHashHex, ErrMalformedRaw},
		{"empty workchain", ":" + testHashHex, ErrMalformedRaw},
		{"workchain overflow", "4294967296:" + testHashHex, ErrMalformedRaw},
		{"odd hash length", "0:" + testHashHex[1:], ErrMalformedRaw},
		{"non-hex hash", "0:" + testHashHex[:62] + "zz", ErrMalformedRaw},
		{"short hash", "0:" + testHashHex[:62], ErrInvalidHashLength},
		{"long hash", "0:" + testHashHex + "00", ErrInvalidHashLength},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRaw(tt.source)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestRawRoundTrip(t *testing.T) {
	hash := testHash(t)

	for _, workchain := range []int32{MasterchainID, BasechainID, 1, 127, 254} {
		address, err := New(workchain, hash)
		require.NoError(t, err)

		parsed, err := ParseRaw(address.RawString())
		require.NoError(t, err)
		assert.True(t, address.Equals(parsed), "workchain %d", workchain)
	}
}
