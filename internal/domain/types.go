package domain

import (
	"sort"
	"strings"
)

// WalletAddress is an opaque on-chain address token. Comparisons and
// external lookups always use the normalized form.
type WalletAddress string

// Normalize trims surrounding whitespace and lowercases the address.
// Two addresses are the same address iff their normalized forms are equal.
func (a WalletAddress) Normalize() WalletAddress {
	return WalletAddress(strings.ToLower(strings.TrimSpace(string(a))))
}

// Equal reports whether two addresses refer to the same wallet
func (a WalletAddress) Equal(other WalletAddress) bool {
	return a.Normalize() == other.Normalize()
}

// UserID identifies a platform member. Stable for the member's lifetime.
type UserID string

// Collection maps an external collection slug to the role that represents
// holding membership in it
type Collection struct {
	Slug     string
	RoleName string
}

// CollectionSet is the ordered set of collections the bot manages.
// The order is the processing order for reconciliation.
type CollectionSet []Collection

// NewCollectionSet builds a CollectionSet from a slug->role mapping.
// Slugs are ordered lexicographically so reconciliation order is
// deterministic regardless of map iteration order.
func NewCollectionSet(mapping map[string]string) CollectionSet {
	slugs := make([]string, 0, len(mapping))
	for slug := range mapping {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	set := make(CollectionSet, 0, len(slugs))
	for _, slug := range slugs {
		set = append(set, Collection{Slug: slug, RoleName: mapping[slug]})
	}
	return set
}

// RoleNames returns the role names of all collections, in collection order
func (s CollectionSet) RoleNames() []string {
	names := make([]string, 0, len(s))
	for _, c := range s {
		names = append(names, c.RoleName)
	}
	return names
}

// HoldingRecord is the result of one ownership check.
// Invariants: IsHolder implies Count != nil and *Count >= 1; a non-holder
// record carries neither count nor detail. LookupFailed marks records
// produced by a failed lookup, which are degraded to non-holder for role
// purposes but must not count as negative proof.
type HoldingRecord struct {
	IsHolder     bool
	Count        *int
	Detail       *string
	LookupFailed bool
}

// Holder builds a holder record with the given inscription count and detail
func Holder(count int, detail string) HoldingRecord {
	return HoldingRecord{IsHolder: true, Count: &count, Detail: &detail}
}

// NotHolder builds a record for an address absent from the snapshot
func NotHolder() HoldingRecord {
	return HoldingRecord{}
}

// Unknown builds a record for a lookup that failed to resolve the address
func Unknown() HoldingRecord {
	return HoldingRecord{LookupFailed: true}
}

// RoleAction is the role mutation derived from a desired/held pair
type RoleAction string

const (
	ActionNone   RoleAction = "none"
	ActionGrant  RoleAction = "grant"
	ActionRevoke RoleAction = "revoke"
)

// DecideAction applies the decision table:
// (desired, held) -> grant when desired and not held, revoke when held and
// not desired, none otherwise.
func DecideAction(desired, currentlyHeld bool) RoleAction {
	switch {
	case desired && !currentlyHeld:
		return ActionGrant
	case !desired && currentlyHeld:
		return ActionRevoke
	default:
		return ActionNone
	}
}

// RoleDecision is the per (user, collection) reconciliation verdict. It is
// the sole source of truth for role mutation: no other code path may grant
// or revoke collection roles.
type RoleDecision struct {
	Collection    string
	RoleName      string
	Desired       bool
	CurrentlyHeld bool
	Action        RoleAction
}
