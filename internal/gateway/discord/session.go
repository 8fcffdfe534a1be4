package discord

import (
	"github.com/bwmarrin/discordgo"
)

// Session is the subset of the discordgo session the gateway uses.
// *discordgo.Session satisfies it.
//
//go:generate mockgen -source=session.go -destination=../../mocks/discord_session.go -package=mocks -mock_names=Session=MockDiscordSession
type Session interface {
	GuildMember(guildID, userID string, options ...discordgo.RequestOption) (*discordgo.Member, error)
	GuildMemberRoleAdd(guildID, userID, roleID string, options ...discordgo.RequestOption) error
	GuildMemberRoleRemove(guildID, userID, roleID string, options ...discordgo.RequestOption) error
	GuildRoles(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Role, error)
	GuildRoleCreate(guildID string, data *discordgo.RoleParams, options ...discordgo.RequestOption) (*discordgo.Role, error)
}
