package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWalletAddress_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		address  WalletAddress
		expected WalletAddress
	}{
		{
			name:     "already normalized",
			address:  "0xabc",
			expected: "0xabc",
		},
		{
			name:     "surrounding whitespace",
			address:  "  0xABC ",
			expected: "0xabc",
		},
		{
			name:     "mixed case",
			address:  "bc1QxY2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh",
			expected: "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh",
		},
		{
			name:     "empty",
			address:  "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.address.Normalize())
		})
	}
}

func TestWalletAddress_Equal(t *testing.T) {
	assert.True(t, WalletAddress(" 0xABC ").Equal("0xabc"))
	assert.True(t, WalletAddress("0xabc").Equal("0xABC"))
	assert.False(t, WalletAddress("0xabc").Equal("0xabd"))
}

func TestDecideAction(t *testing.T) {
	tests := []struct {
		name     string
		desired  bool
		held     bool
		expected RoleAction
	}{
		{name: "desired and not held grants", desired: true, held: false, expected: ActionGrant},
		{name: "not desired and held revokes", desired: false, held: true, expected: ActionRevoke},
		{name: "desired and held is a no-op", desired: true, held: true, expected: ActionNone},
		{name: "not desired and not held is a no-op", desired: false, held: false, expected: ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DecideAction(tt.desired, tt.held))
		})
	}
}

func TestNewCollectionSet_DeterministicOrder(t *testing.T) {
	set := NewCollectionSet(map[string]string{
		"space-pepes": "Space Pepe Holder",
		"clay-pepes":  "Clay Pepe Holder",
		"pixelpepes":  "Pixel Pepe Holder",
	})

	assert.Equal(t, CollectionSet{
		{Slug: "clay-pepes", RoleName: "Clay Pepe Holder"},
		{Slug: "pixelpepes", RoleName: "Pixel Pepe Holder"},
		{Slug: "space-pepes", RoleName: "Space Pepe Holder"},
	}, set)

	assert.Equal(t, []string{"Clay Pepe Holder", "Pixel Pepe Holder", "Space Pepe Holder"}, set.RoleNames())
}

func TestHoldingRecord_Constructors(t *testing.T) {
	h := Holder(3, "insc1,insc2,insc3")
	assert.True(t, h.IsHolder)
	assert.Equal(t, 3, *h.Count)
	assert.Equal(t, "insc1,insc2,insc3", *h.Detail)
	assert.False(t, h.LookupFailed)

	n := NotHolder()
	assert.False(t, n.IsHolder)
	assert.Nil(t, n.Count)
	assert.Nil(t, n.Detail)
	assert.False(t, n.LookupFailed)

	u := Unknown()
	assert.False(t, u.IsHolder)
	assert.Nil(t, u.Count)
	assert.True(t, u.LookupFailed)
}
