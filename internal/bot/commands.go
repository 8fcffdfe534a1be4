package bot

import (
	"github.com/bwmarrin/discordgo"
)

const (
	cmdPing          = "ping"
	cmdAddAddress    = "add_address"
	cmdRemoveAddress = "remove_address"
	cmdListAddresses = "list_addresses"
	cmdVerify        = "verify"
	cmdCheckRoles    = "check_roles"
	cmdSetupRoles    = "setup_roles"

	optionAddress = "address"
)

var adminPermission = int64(discordgo.PermissionManageRoles)

// commandDefinitions are the slash commands registered with the guild
var commandDefinitions = []*discordgo.ApplicationCommand{
	{
		Name:        cmdPing,
		Description: "Check that the bot is alive",
	},
	{
		Name:        cmdAddAddress,
		Description: "Register a wallet address (requires your Discord ID in the wallet's Magic Eden bio)",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        optionAddress,
				Description: "The wallet address to register",
				Required:    true,
			},
		},
	},
	{
		Name:        cmdRemoveAddress,
		Description: "Remove a registered wallet address",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        optionAddress,
				Description: "The wallet address to remove",
				Required:    true,
			},
		},
	},
	{
		Name:        cmdListAddresses,
		Description: "List your registered wallet addresses",
	},
	{
		Name:        cmdVerify,
		Description: "Verify your holdings and update your roles",
	},
	{
		Name:        cmdCheckRoles,
		Description: "Show which collection roles you hold",
	},
	{
		Name:                     cmdSetupRoles,
		Description:              "Create missing collection roles (admin)",
		DefaultMemberPermissions: &adminPermission,
	},
}
