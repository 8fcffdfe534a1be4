package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pixelpepes/holderbot/internal/adapter"
	"github.com/pixelpepes/holderbot/internal/bot"
	"github.com/pixelpepes/holderbot/internal/config"
	"github.com/pixelpepes/holderbot/internal/domain"
	"github.com/pixelpepes/holderbot/internal/gateway/discord"
	"github.com/pixelpepes/holderbot/internal/lockfile"
	"github.com/pixelpepes/holderbot/internal/logger"
	"github.com/pixelpepes/holderbot/internal/messaging"
	"github.com/pixelpepes/holderbot/internal/providers/jetstream"
	"github.com/pixelpepes/holderbot/internal/providers/vendors/bestinslot"
	"github.com/pixelpepes/holderbot/internal/providers/vendors/magiceden"
	"github.com/pixelpepes/holderbot/internal/ratelimit"
	"github.com/pixelpepes/holderbot/internal/reconcile"
	"github.com/pixelpepes/holderbot/internal/registry"
	"github.com/pixelpepes/holderbot/internal/sweeper"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadBotConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "bot",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting holder bot")

	// Refuse to run next to another instance
	lock, err := lockfile.Acquire(cfg.LockFilePath)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to acquire instance lock", zap.Error(err), zap.String("path", cfg.LockFilePath))
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logger.Error(err)
		}
	}()

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	fs := adapter.NewFileSystem()
	httpClient := adapter.NewHTTPClient(cfg.HTTP.Timeout)

	// Shared rate limiter for all outbound vendor calls
	rateLimitProxy, err := ratelimit.NewProxy(cfg.RateLimit, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create rate limit proxy", zap.Error(err))
	}
	defer rateLimitProxy.Close()

	// Vendor clients
	snapshotClient := bestinslot.NewClient(httpClient, rateLimitProxy, cfg.Snapshot.APIURL)
	profileClient := magiceden.NewClient(httpClient, rateLimitProxy, cfg.Profile.APIURL)

	// Address registry
	addressBook, err := registry.LoadAddressBook(cfg.Registry.Path, fs, jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to load address registry", zap.Error(err), zap.String("path", cfg.Registry.Path))
	}
	logger.InfoCtx(ctx, "Loaded address registry",
		zap.String("path", cfg.Registry.Path),
		zap.Int("users", len(addressBook.Users())),
	)

	// Optional role-change audit publisher
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(cfg.NATS, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		defer publisher.Close()
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("url", cfg.NATS.URL))
	}

	// Discord session and role gateway
	session, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create Discord session", zap.Error(err))
	}
	roleGateway := discord.NewGateway(session, cfg.Discord.GuildID)

	// Reconciliation engine
	collections := domain.NewCollectionSet(cfg.Collections)
	engine := reconcile.NewEngine(
		snapshotClient,
		roleGateway,
		addressBook,
		collections,
		publisher,
		clock,
		cfg.Sweep.UserPause,
	)

	// Command front end
	handlers := bot.NewHandlers(addressBook, engine, profileClient, roleGateway, collections)
	b := bot.New(session, cfg.Discord.GuildID, handlers)
	if err := b.Start(ctx); err != nil {
		logger.FatalCtx(ctx, "Failed to start bot", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Bot started",
		zap.String("guild_id", cfg.Discord.GuildID),
		zap.Int("collections", len(collections)),
	)

	// Periodic verification sweep
	holderSweeper := sweeper.NewHolderSweeper(&sweeper.HolderSweeperConfig{
		Interval: cfg.Sweep.Interval,
	}, engine, clock)

	errChan := make(chan error, 1)
	go func() {
		if err := holderSweeper.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, fmt.Errorf("sweeper failed: %w", err))
	}

	// Graceful shutdown with timeout
	stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer stopCancel()

	if err := holderSweeper.Stop(stopCtx); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to stop sweeper: %w", err))
	}
	if err := b.Stop(); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to stop bot: %w", err))
	}

	logger.InfoCtx(ctx, "Shutdown complete")
}
