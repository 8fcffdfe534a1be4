package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/pixelpepes/holderbot/internal/adapter"
	"github.com/pixelpepes/holderbot/internal/domain"
	"github.com/pixelpepes/holderbot/internal/logger"
	"github.com/pixelpepes/holderbot/internal/messaging"
	"github.com/pixelpepes/holderbot/internal/providers/vendors/bestinslot"
)

// Outcome classifies a verification run for a single user
type Outcome string

const (
	// OutcomeNoAddresses means the user has no registered addresses; no
	// oracle call is made and no roles are touched
	OutcomeNoAddresses Outcome = "no-addresses"
	// OutcomeHoldings means at least one collection matched
	OutcomeHoldings Outcome = "holdings"
	// OutcomeNoHoldings means no collection matched and at least one lookup
	// per collection resolved, so the negative result is trustworthy
	OutcomeNoHoldings Outcome = "no-holdings"
	// OutcomeInconclusive means no collection matched and every lookup
	// failed; nothing was proven either way
	OutcomeInconclusive Outcome = "inconclusive"
)

// RoleGateway mutates and inspects member roles on the chat platform
//
//go:generate mockgen -source=engine.go -destination=../mocks/reconcile.go -package=mocks -mock_names=RoleGateway=MockRoleGateway,AddressSource=MockAddressSource,Engine=MockEngine
type RoleGateway interface {
	// MemberRoles returns the names of the roles the member currently holds
	MemberRoles(ctx context.Context, user domain.UserID) ([]string, error)
	// AddRole grants the named role to the member
	AddRole(ctx context.Context, user domain.UserID, roleName string) error
	// RemoveRole revokes the named role from the member
	RemoveRole(ctx context.Context, user domain.UserID, roleName string) error
}

// AddressSource provides the registered addresses to reconcile against
type AddressSource interface {
	Addresses(user domain.UserID) []domain.WalletAddress
	Users() []domain.UserID
}

// CollectionHolding is the per-collection verdict of the address scan
type CollectionHolding struct {
	Collection domain.Collection
	// Record is the holder record from the first matching address, or a
	// non-holder record when no address matched
	Record domain.HoldingRecord
	// Address is the address that matched, empty for non-holders
	Address domain.WalletAddress
	// AllLookupsFailed is set when every address lookup for this
	// collection failed, so absence is not proven
	AllLookupsFailed bool
}

// RoleError records a role mutation the platform rejected
type RoleError struct {
	RoleName string
	Action   domain.RoleAction
	Err      error
}

// Result is the outcome of one verification run for one user
type Result struct {
	RunID     string
	User      domain.UserID
	Outcome   Outcome
	Holdings  []CollectionHolding
	Decisions []domain.RoleDecision
	// Granted and Revoked list the role names successfully mutated
	Granted []string
	Revoked []string
	// RoleErrors accumulates mutations the platform rejected; a rejection
	// never aborts the remaining collections
	RoleErrors []RoleError
}

// Summary aggregates a full sweep over all registered users
type Summary struct {
	Users      int
	Succeeded  int
	Failed     int
	Granted    int
	Revoked    int
	RoleErrors int
	Duration   time.Duration
}

// Engine reconciles desired holder roles with currently held roles
type Engine interface {
	// Reconcile runs a full verification for one user and applies the
	// resulting role mutations
	Reconcile(ctx context.Context, user domain.UserID) (*Result, error)
	// SweepAll reconciles every registered user, isolating per-user failures
	SweepAll(ctx context.Context) (*Summary, error)
}

type engine struct {
	oracle      bestinslot.Client
	gateway     RoleGateway
	addresses   AddressSource
	collections domain.CollectionSet
	publisher   messaging.Publisher // optional, nil disables audit events
	clock       adapter.Clock
	userPause   time.Duration
}

// NewEngine creates a reconciliation engine. publisher may be nil.
func NewEngine(
	oracle bestinslot.Client,
	gateway RoleGateway,
	addresses AddressSource,
	collections domain.CollectionSet,
	publisher messaging.Publisher,
	clock adapter.Clock,
	userPause time.Duration,
) Engine {
	return &engine{
		oracle:      oracle,
		gateway:     gateway,
		addresses:   addresses,
		collections: collections,
		publisher:   publisher,
		clock:       clock,
		userPause:   userPause,
	}
}

// Reconcile runs the verification algorithm for one user: scan the user's
// addresses per collection (short-circuiting on the first holder), compare
// desired against currently held, and apply grant/revoke decisions.
func (e *engine) Reconcile(ctx context.Context, user domain.UserID) (*Result, error) {
	runID := ulid.MustNewDefault(e.clock.Now()).String()
	result := &Result{RunID: runID, User: user}

	addresses := e.addresses.Addresses(user)
	if len(addresses) == 0 {
		result.Outcome = OutcomeNoAddresses
		logger.InfoCtx(ctx, "User has no registered addresses",
			zap.String("run_id", runID),
			zap.String("user_id", string(user)),
		)
		return result, nil
	}

	result.Holdings = e.scanHoldings(ctx, addresses)

	heldRoles, err := e.gateway.MemberRoles(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to read member roles: %w", err)
	}
	heldSet := make(map[string]bool, len(heldRoles))
	for _, name := range heldRoles {
		heldSet[name] = true
	}

	anyHolding := false
	anyResolved := false
	for _, holding := range result.Holdings {
		if holding.Record.IsHolder {
			anyHolding = true
		}
		if !holding.AllLookupsFailed {
			anyResolved = true
		}

		decision := domain.RoleDecision{
			Collection:    holding.Collection.Slug,
			RoleName:      holding.Collection.RoleName,
			Desired:       holding.Record.IsHolder,
			CurrentlyHeld: heldSet[holding.Collection.RoleName],
			Action:        domain.DecideAction(holding.Record.IsHolder, heldSet[holding.Collection.RoleName]),
		}

		// Never revoke on the strength of a failed lookup: absence from a
		// snapshot we could not fetch proves nothing
		if decision.Action == domain.ActionRevoke && holding.AllLookupsFailed {
			logger.WarnCtx(ctx, "Suppressing revoke, every snapshot lookup failed",
				zap.String("run_id", runID),
				zap.String("user_id", string(user)),
				zap.String("collection", holding.Collection.Slug),
			)
			decision.Action = domain.ActionNone
		}

		result.Decisions = append(result.Decisions, decision)
	}

	switch {
	case anyHolding:
		result.Outcome = OutcomeHoldings
	case anyResolved:
		result.Outcome = OutcomeNoHoldings
	default:
		result.Outcome = OutcomeInconclusive
	}

	e.applyDecisions(ctx, result)

	logger.InfoCtx(ctx, "Verification run completed",
		zap.String("run_id", runID),
		zap.String("user_id", string(user)),
		zap.String("outcome", string(result.Outcome)),
		zap.Strings("granted", result.Granted),
		zap.Strings("revoked", result.Revoked),
		zap.Int("role_errors", len(result.RoleErrors)),
	)

	return result, nil
}

// scanHoldings checks every collection against the user's addresses in
// order, stopping at the first address that holds
func (e *engine) scanHoldings(ctx context.Context, addresses []domain.WalletAddress) []CollectionHolding {
	holdings := make([]CollectionHolding, 0, len(e.collections))

	for _, collection := range e.collections {
		holding := CollectionHolding{Collection: collection}

		failed := 0
		for _, address := range addresses {
			record := e.oracle.CheckOwnership(ctx, address, collection.Slug)
			if record.LookupFailed {
				failed++
				continue
			}
			if record.IsHolder {
				holding.Record = record
				holding.Address = address
				break
			}
		}
		if !holding.Record.IsHolder && failed == len(addresses) {
			holding.AllLookupsFailed = true
			holding.Record = domain.Unknown()
		}

		holdings = append(holdings, holding)
	}

	return holdings
}

// applyDecisions executes grant and revoke actions, accumulating platform
// rejections instead of aborting
func (e *engine) applyDecisions(ctx context.Context, result *Result) {
	for _, decision := range result.Decisions {
		var err error
		switch decision.Action {
		case domain.ActionGrant:
			err = e.gateway.AddRole(ctx, result.User, decision.RoleName)
			if err == nil {
				result.Granted = append(result.Granted, decision.RoleName)
			}
		case domain.ActionRevoke:
			err = e.gateway.RemoveRole(ctx, result.User, decision.RoleName)
			if err == nil {
				result.Revoked = append(result.Revoked, decision.RoleName)
			}
		default:
			continue
		}

		if err != nil {
			logger.WarnCtx(ctx, "Role mutation rejected",
				zap.String("run_id", result.RunID),
				zap.String("user_id", string(result.User)),
				zap.String("role", decision.RoleName),
				zap.String("action", string(decision.Action)),
				zap.Error(err),
			)
			result.RoleErrors = append(result.RoleErrors, RoleError{
				RoleName: decision.RoleName,
				Action:   decision.Action,
				Err:      err,
			})
		}

		e.publishRoleChange(ctx, result, decision, err)
	}
}

// publishRoleChange emits an audit event for an attempted mutation.
// Publishing is best effort: a broker failure is logged and dropped.
func (e *engine) publishRoleChange(ctx context.Context, result *Result, decision domain.RoleDecision, mutationErr error) {
	if e.publisher == nil {
		return
	}

	event := &messaging.RoleChangeEvent{
		EventID:    ulid.MustNewDefault(e.clock.Now()).String(),
		RunID:      result.RunID,
		UserID:     result.User,
		Collection: decision.Collection,
		RoleName:   decision.RoleName,
		Action:     decision.Action,
		Applied:    mutationErr == nil,
		Timestamp:  e.clock.Now(),
	}
	if mutationErr != nil {
		msg := mutationErr.Error()
		event.Error = &msg
	}

	if err := e.publisher.PublishRoleChange(ctx, event); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to publish role change event: %w", err),
			zap.String("run_id", result.RunID),
			zap.String("event_id", event.EventID),
		)
	}
}

// SweepAll reconciles every registered user in order. A user's failure is
// logged and skipped; the sweep pauses between users to spread API load.
func (e *engine) SweepAll(ctx context.Context) (*Summary, error) {
	start := e.clock.Now()
	users := e.addresses.Users()
	summary := &Summary{Users: len(users)}

	for i, user := range users {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		result, err := e.Reconcile(ctx, user)
		if err != nil {
			summary.Failed++
			logger.ErrorCtx(ctx, fmt.Errorf("failed to reconcile user: %w", err),
				zap.String("user_id", string(user)),
			)
		} else {
			summary.Succeeded++
			summary.Granted += len(result.Granted)
			summary.Revoked += len(result.Revoked)
			summary.RoleErrors += len(result.RoleErrors)
		}

		if i < len(users)-1 && e.userPause > 0 {
			select {
			case <-e.clock.After(e.userPause):
			case <-ctx.Done():
				return summary, ctx.Err()
			}
		}
	}

	summary.Duration = e.clock.Since(start)
	return summary, nil
}
