package discord

import (
	"context"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/pixelpepes/holderbot/internal/domain"
	"github.com/pixelpepes/holderbot/internal/logger"
)

// Gateway mutates and inspects member roles in one guild. Roles are
// addressed by name; the gateway resolves names to Discord role IDs
// through a cache refreshed on miss.
//
//go:generate mockgen -source=gateway.go -destination=../../mocks/discord_gateway.go -package=mocks -mock_names=Gateway=MockDiscordGateway
type Gateway interface {
	// MemberRoles returns the names of the roles the member currently holds
	MemberRoles(ctx context.Context, user domain.UserID) ([]string, error)
	// AddRole grants the named role to the member
	AddRole(ctx context.Context, user domain.UserID, roleName string) error
	// RemoveRole revokes the named role from the member
	RemoveRole(ctx context.Context, user domain.UserID, roleName string) error
	// EnsureRoles creates any of the named roles missing from the guild
	// and returns the names it created
	EnsureRoles(ctx context.Context, roleNames []string) ([]string, error)
}

type gateway struct {
	session Session
	guildID string

	mu       sync.RWMutex
	idByName map[string]string
	nameByID map[string]string
}

// NewGateway creates a role gateway bound to one guild
func NewGateway(session Session, guildID string) Gateway {
	return &gateway{
		session:  session,
		guildID:  guildID,
		idByName: make(map[string]string),
		nameByID: make(map[string]string),
	}
}

// MemberRoles returns the member's current role names
func (g *gateway) MemberRoles(ctx context.Context, user domain.UserID) ([]string, error) {
	member, err := g.session.GuildMember(g.guildID, string(user), discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guild member: %w", err)
	}

	if err := g.refreshRoles(ctx); err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	names := make([]string, 0, len(member.Roles))
	for _, roleID := range member.Roles {
		if name, ok := g.nameByID[roleID]; ok {
			names = append(names, name)
		}
	}
	return names, nil
}

// AddRole grants the named role to the member
func (g *gateway) AddRole(ctx context.Context, user domain.UserID, roleName string) error {
	roleID, err := g.roleID(ctx, roleName)
	if err != nil {
		return err
	}

	if err := g.session.GuildMemberRoleAdd(g.guildID, string(user), roleID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to add role %q: %w", roleName, err)
	}
	return nil
}

// RemoveRole revokes the named role from the member
func (g *gateway) RemoveRole(ctx context.Context, user domain.UserID, roleName string) error {
	roleID, err := g.roleID(ctx, roleName)
	if err != nil {
		return err
	}

	if err := g.session.GuildMemberRoleRemove(g.guildID, string(user), roleID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to remove role %q: %w", roleName, err)
	}
	return nil
}

// EnsureRoles creates the named roles that do not exist in the guild yet
func (g *gateway) EnsureRoles(ctx context.Context, roleNames []string) ([]string, error) {
	if err := g.refreshRoles(ctx); err != nil {
		return nil, err
	}

	var created []string
	for _, name := range roleNames {
		g.mu.RLock()
		_, exists := g.idByName[name]
		g.mu.RUnlock()
		if exists {
			continue
		}

		role, err := g.session.GuildRoleCreate(g.guildID, &discordgo.RoleParams{Name: name}, discordgo.WithContext(ctx))
		if err != nil {
			return created, fmt.Errorf("failed to create role %q: %w", name, err)
		}

		g.mu.Lock()
		g.idByName[role.Name] = role.ID
		g.nameByID[role.ID] = role.Name
		g.mu.Unlock()

		logger.InfoCtx(ctx, "Created guild role",
			zap.String("role", role.Name),
			zap.String("role_id", role.ID),
		)
		created = append(created, role.Name)
	}

	return created, nil
}

// roleID resolves a role name to its Discord ID, refreshing the cache on miss
func (g *gateway) roleID(ctx context.Context, roleName string) (string, error) {
	g.mu.RLock()
	id, ok := g.idByName[roleName]
	g.mu.RUnlock()
	if ok {
		return id, nil
	}

	if err := g.refreshRoles(ctx); err != nil {
		return "", err
	}

	g.mu.RLock()
	id, ok = g.idByName[roleName]
	g.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrRoleNotFound, roleName)
	}
	return id, nil
}

// refreshRoles reloads the guild's role list into the cache
func (g *gateway) refreshRoles(ctx context.Context) error {
	roles, err := g.session.GuildRoles(g.guildID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to fetch guild roles: %w", err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.idByName = make(map[string]string, len(roles))
	g.nameByID = make(map[string]string, len(roles))
	for _, role := range roles {
		g.idByName[role.Name] = role.ID
		g.nameByID[role.ID] = role.Name
	}
	return nil
}
