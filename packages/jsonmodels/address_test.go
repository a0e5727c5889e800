package jsonmodels

import (
	"encoding/json"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonkit/tonaddr/packages/address"
)

const testRaw = "0:2cf55953e92efbeadab7ba725c3f93a0b23f842cbba72d7b8e6f510a70e422e3"

func TestNewAddress(t *testing.T) {
	addr, err := address.ParseRaw(testRaw)
	require.NoError(t, err)

	model, err := NewAddress(addr, true)
	require.NoError(t, err)

	jsonBytes, err := json.Marshal(model)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"workchain": 0,
		"raw": "0:2cf55953e92efbeadab7ba725c3f93a0b23f842cbba72d7b8e6f510a70e422e3",
		"bounceable": "kQAs9VlT6S776tq3unJcP5Ogsj-ELLunLXuOb1EKcOQi47nL",
		"nonBounceable": "0QAs9VlT6S776tq3unJcP5Ogsj-ELLunLXuOb1EKcOQi4-QO",
		"testOnly": true
	}`, string(jsonBytes))

	var decoded Address
	require.NoError(t, json.Unmarshal(jsonBytes, &decoded))
	decodedAddress, err := decoded.ToAddress()
	require.NoError(t, err)
	assert.True(t, addr.Equals(decodedAddress))
}

func TestNewAddress_WorkchainOutOfRange(t *testing.T) {
	addr, err := address.New(512, make([]byte, address.HashLength))
	require.NoError(t, err)

	_, err = NewAddress(addr, false)
	assert.True(t, errors.Is(err, address.ErrWorkchainOutOfRange))
}
