package bot

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/pixelpepes/holderbot/internal/domain"
	"github.com/pixelpepes/holderbot/internal/logger"
)

// Bot wires the command handlers to a Discord session. All command logic
// lives in Handlers; this layer only parses interactions and responds.
type Bot struct {
	session  *discordgo.Session
	guildID  string
	handlers *Handlers

	removeHandler func()
}

// New creates a bot for one guild
func New(session *discordgo.Session, guildID string, handlers *Handlers) *Bot {
	return &Bot{
		session:  session,
		guildID:  guildID,
		handlers: handlers,
	}
}

// Start opens the gateway connection and registers the guild's slash
// commands. Commands are bulk-overwritten so removed commands disappear.
func (b *Bot) Start(ctx context.Context) error {
	b.removeHandler = b.session.AddHandler(b.onInteraction)

	b.session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}

	appID := b.session.State.User.ID
	if _, err := b.session.ApplicationCommandBulkOverwrite(appID, b.guildID, commandDefinitions); err != nil {
		return fmt.Errorf("failed to register slash commands: %w", err)
	}

	logger.InfoCtx(ctx, "Bot connected",
		zap.String("guild_id", b.guildID),
		zap.Int("commands", len(commandDefinitions)),
	)
	return nil
}

// Stop closes the gateway connection
func (b *Bot) Stop() error {
	if b.removeHandler != nil {
		b.removeHandler()
	}
	return b.session.Close()
}

// onInteraction dispatches a slash command to its handler. Verification can
// take a while behind the shared rate limiter, so every command defers
// first and follows up with the reply.
func (b *Bot) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if i.Member == nil || i.Member.User == nil {
		return
	}

	ctx := context.Background()
	user := domain.UserID(i.Member.User.ID)
	data := i.ApplicationCommandData()

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to defer interaction: %w", err),
			zap.String("command", data.Name),
		)
		return
	}

	var reply string
	switch data.Name {
	case cmdPing:
		reply = b.handlers.Ping()
	case cmdAddAddress:
		reply = b.handlers.AddAddress(ctx, user, addressOption(data))
	case cmdRemoveAddress:
		reply = b.handlers.RemoveAddress(ctx, user, addressOption(data))
	case cmdListAddresses:
		reply = b.handlers.ListAddresses(user)
	case cmdVerify:
		reply = b.handlers.Verify(ctx, user)
	case cmdCheckRoles:
		reply = b.handlers.CheckRoles(ctx, user)
	case cmdSetupRoles:
		reply = b.handlers.SetupRoles(ctx)
	default:
		reply = "Unknown command."
	}

	if _, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: reply,
		Flags:   discordgo.MessageFlagsEphemeral,
	}); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to send followup: %w", err),
			zap.String("command", data.Name),
		)
	}
}

// addressOption extracts the address option from a command invocation
func addressOption(data discordgo.ApplicationCommandInteractionData) domain.WalletAddress {
	for _, option := range data.Options {
		if option.Name == optionAddress {
			return domain.WalletAddress(option.StringValue())
		}
	}
	return ""
}
