package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pixelpepes/holderbot/internal/domain"
	"github.com/pixelpepes/holderbot/internal/gateway/discord"
	"github.com/pixelpepes/holderbot/internal/logger"
	"github.com/pixelpepes/holderbot/internal/providers/vendors/magiceden"
	"github.com/pixelpepes/holderbot/internal/reconcile"
)

// AddressRegistry is the registry surface the command handlers use
//
//go:generate mockgen -source=handlers.go -destination=../mocks/bot.go -package=mocks -mock_names=AddressRegistry=MockAddressRegistry
type AddressRegistry interface {
	Add(user domain.UserID, address domain.WalletAddress) error
	Remove(user domain.UserID, address domain.WalletAddress) error
	Addresses(user domain.UserID) []domain.WalletAddress
}

// Handlers implements the slash commands. Every handler returns the reply
// text to show the invoking user; failures of background collaborators are
// logged and rendered as a friendly message, never exposed as raw errors.
type Handlers struct {
	registry    AddressRegistry
	engine      reconcile.Engine
	bio         magiceden.Client
	gateway     discord.Gateway
	collections domain.CollectionSet
}

// NewHandlers creates the command handler set
func NewHandlers(
	registry AddressRegistry,
	engine reconcile.Engine,
	bio magiceden.Client,
	gateway discord.Gateway,
	collections domain.CollectionSet,
) *Handlers {
	return &Handlers{
		registry:    registry,
		engine:      engine,
		bio:         bio,
		gateway:     gateway,
		collections: collections,
	}
}

// Ping answers the liveness command
func (h *Handlers) Ping() string {
	return "Pong!"
}

// AddAddress registers a wallet address after proving control through the
// profile bio, then runs a verification for the user
func (h *Handlers) AddAddress(ctx context.Context, user domain.UserID, address domain.WalletAddress) string {
	if strings.TrimSpace(string(address)) == "" {
		return "Please provide a wallet address."
	}

	if !h.bio.VerifyBio(ctx, address, user) {
		return fmt.Sprintf(
			"Could not verify that you control this wallet. Add your Discord ID `%s` to the wallet's Magic Eden bio and try again. You can remove it once the address is registered.",
			user,
		)
	}

	if err := h.registry.Add(user, address); err != nil {
		if errors.Is(err, domain.ErrAddressAlreadyRegistered) {
			return "That address is already registered."
		}
		logger.ErrorCtx(ctx, fmt.Errorf("failed to register address: %w", err),
			zap.String("user_id", string(user)),
		)
		return "Something went wrong saving your address. Please try again later."
	}

	return "Address registered.\n\n" + h.Verify(ctx, user)
}

// RemoveAddress unregisters a wallet address, then runs a verification so
// roles no longer backed by an address are revoked
func (h *Handlers) RemoveAddress(ctx context.Context, user domain.UserID, address domain.WalletAddress) string {
	if err := h.registry.Remove(user, address); err != nil {
		if errors.Is(err, domain.ErrAddressNotRegistered) {
			return "That address is not registered."
		}
		logger.ErrorCtx(ctx, fmt.Errorf("failed to remove address: %w", err),
			zap.String("user_id", string(user)),
		)
		return "Something went wrong removing your address. Please try again later."
	}

	return "Address removed.\n\n" + h.Verify(ctx, user)
}

// ListAddresses shows the user's registered addresses in registration order
func (h *Handlers) ListAddresses(user domain.UserID) string {
	addresses := h.registry.Addresses(user)
	if len(addresses) == 0 {
		return "You have no registered addresses. Use `/add_address` to register one."
	}

	var b strings.Builder
	b.WriteString("Your registered addresses:\n")
	for _, address := range addresses {
		fmt.Fprintf(&b, "- `%s`\n", address)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Verify runs a full verification for the user and renders the summary
func (h *Handlers) Verify(ctx context.Context, user domain.UserID) string {
	result, err := h.engine.Reconcile(ctx, user)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("verification failed: %w", err),
			zap.String("user_id", string(user)),
		)
		return "Verification failed. Please try again later."
	}
	return renderResult(result)
}

// CheckRoles shows which collection roles the user currently holds
func (h *Handlers) CheckRoles(ctx context.Context, user domain.UserID) string {
	held, err := h.gateway.MemberRoles(ctx, user)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to read member roles: %w", err),
			zap.String("user_id", string(user)),
		)
		return "Could not read your roles. Please try again later."
	}

	heldSet := make(map[string]bool, len(held))
	for _, name := range held {
		heldSet[name] = true
	}

	var b strings.Builder
	b.WriteString("Collection roles:\n")
	for _, collection := range h.collections {
		marker := "✗"
		if heldSet[collection.RoleName] {
			marker = "✓"
		}
		fmt.Fprintf(&b, "%s %s\n", marker, collection.RoleName)
	}
	return strings.TrimRight(b.String(), "\n")
}

// SetupRoles creates any missing collection roles in the guild
func (h *Handlers) SetupRoles(ctx context.Context) string {
	created, err := h.gateway.EnsureRoles(ctx, h.collections.RoleNames())
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to ensure roles: %w", err))
		return "Could not create all roles. Check that the bot has the Manage Roles permission."
	}

	if len(created) == 0 {
		return "All collection roles already exist."
	}
	return "Created roles: " + strings.Join(created, ", ")
}

// renderResult renders the verification summary: holdings, roles added and
// removed, and roles the bot could not manage
func renderResult(result *reconcile.Result) string {
	if result.Outcome == reconcile.OutcomeNoAddresses {
		return "You have no registered addresses. Use `/add_address` to register one."
	}

	var b strings.Builder

	b.WriteString("**Holdings**\n")
	switch result.Outcome {
	case reconcile.OutcomeInconclusive:
		b.WriteString("Could not reach the snapshot service, your holdings are unknown. Existing roles were left untouched.\n")
	case reconcile.OutcomeNoHoldings:
		b.WriteString("No holdings found across your registered addresses.\n")
	default:
		for _, holding := range result.Holdings {
			if !holding.Record.IsHolder {
				continue
			}
			count := 0
			if holding.Record.Count != nil {
				count = *holding.Record.Count
			}
			noun := "inscriptions"
			if count == 1 {
				noun = "inscription"
			}
			fmt.Fprintf(&b, "- %s (`%s`): %d %s\n", holding.Collection.RoleName, holding.Collection.Slug, count, noun)
		}
	}

	if len(result.Granted) > 0 {
		b.WriteString("\n**Roles added**\n")
		for _, name := range result.Granted {
			fmt.Fprintf(&b, "- %s\n", name)
		}
	}

	if len(result.Revoked) > 0 {
		b.WriteString("\n**Roles removed**\n")
		for _, name := range result.Revoked {
			fmt.Fprintf(&b, "- %s\n", name)
		}
	}

	if len(result.RoleErrors) > 0 {
		b.WriteString("\n**Roles the bot could not manage**\n")
		for _, roleErr := range result.RoleErrors {
			fmt.Fprintf(&b, "- %s (%s)\n", roleErr.RoleName, roleErr.Action)
		}
		b.WriteString("Ask an admin to check the bot's role position and permissions.\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
