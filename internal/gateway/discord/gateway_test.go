package discord_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelpepes/holderbot/internal/domain"
	"github.com/pixelpepes/holderbot/internal/gateway/discord"
	"github.com/pixelpepes/holderbot/internal/logger"
	"github.com/pixelpepes/holderbot/internal/mocks"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

const guildID = "guild-123"

var guildRoles = []*discordgo.Role{
	{ID: "role-1", Name: "Pixel Pepe Holder"},
	{ID: "role-2", Name: "Moderator"},
}

func TestMemberRoles_MapsIDsToNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := mocks.NewMockDiscordSession(ctrl)
	g := discord.NewGateway(session, guildID)

	session.EXPECT().
		GuildMember(guildID, "user-1", gomock.Any()).
		Return(&discordgo.Member{Roles: []string{"role-1", "role-unknown"}}, nil)
	session.EXPECT().GuildRoles(guildID, gomock.Any()).Return(guildRoles, nil)

	names, err := g.MemberRoles(context.Background(), "user-1")
	require.NoError(t, err)

	// Roles the guild no longer defines are dropped
	assert.Equal(t, []string{"Pixel Pepe Holder"}, names)
}

func TestAddRole_ResolvesNameThroughCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := mocks.NewMockDiscordSession(ctrl)
	g := discord.NewGateway(session, guildID)

	// First call misses the cache and refreshes once; the second call hits
	session.EXPECT().GuildRoles(guildID, gomock.Any()).Return(guildRoles, nil).Times(1)
	session.EXPECT().GuildMemberRoleAdd(guildID, "user-1", "role-1", gomock.Any()).Return(nil).Times(2)

	require.NoError(t, g.AddRole(context.Background(), "user-1", "Pixel Pepe Holder"))
	require.NoError(t, g.AddRole(context.Background(), "user-1", "Pixel Pepe Holder"))
}

func TestAddRole_UnknownRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := mocks.NewMockDiscordSession(ctrl)
	g := discord.NewGateway(session, guildID)

	session.EXPECT().GuildRoles(guildID, gomock.Any()).Return(guildRoles, nil)

	err := g.AddRole(context.Background(), "user-1", "Nonexistent Role")
	assert.ErrorIs(t, err, domain.ErrRoleNotFound)
}

func TestRemoveRole_PermissionErrorIsReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := mocks.NewMockDiscordSession(ctrl)
	g := discord.NewGateway(session, guildID)

	permission := errors.New("HTTP 403 Forbidden")
	session.EXPECT().GuildRoles(guildID, gomock.Any()).Return(guildRoles, nil)
	session.EXPECT().GuildMemberRoleRemove(guildID, "user-1", "role-1", gomock.Any()).Return(permission)

	err := g.RemoveRole(context.Background(), "user-1", "Pixel Pepe Holder")
	assert.ErrorIs(t, err, permission)
}

func TestEnsureRoles_CreatesOnlyMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := mocks.NewMockDiscordSession(ctrl)
	g := discord.NewGateway(session, guildID)

	session.EXPECT().GuildRoles(guildID, gomock.Any()).Return(guildRoles, nil)
	session.EXPECT().
		GuildRoleCreate(guildID, &discordgo.RoleParams{Name: "Ordinalo Holder"}, gomock.Any()).
		Return(&discordgo.Role{ID: "role-3", Name: "Ordinalo Holder"}, nil)

	created, err := g.EnsureRoles(context.Background(), []string{"Pixel Pepe Holder", "Ordinalo Holder"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Ordinalo Holder"}, created)

	// The created role is now resolvable without another refresh
	session.EXPECT().GuildMemberRoleAdd(guildID, "user-1", "role-3", gomock.Any()).Return(nil)
	require.NoError(t, g.AddRole(context.Background(), "user-1", "Ordinalo Holder"))
}

func TestEnsureRoles_CreateFailureStops(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := mocks.NewMockDiscordSession(ctrl)
	g := discord.NewGateway(session, guildID)

	session.EXPECT().GuildRoles(guildID, gomock.Any()).Return(guildRoles, nil)
	session.EXPECT().
		GuildRoleCreate(guildID, gomock.Any(), gomock.Any()).
		Return(nil, errors.New("missing permissions"))

	_, err := g.EnsureRoles(context.Background(), []string{"Ordinalo Holder"})
	assert.Error(t, err)
}
