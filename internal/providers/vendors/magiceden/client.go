package magiceden

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/pixelpepes/holderbot/internal/adapter"
	"github.com/pixelpepes/holderbot/internal/domain"
	"github.com/pixelpepes/holderbot/internal/logger"
	"github.com/pixelpepes/holderbot/internal/ratelimit"
)

// Profile represents the public wallet profile returned by Magic Eden
type Profile struct {
	DisplayName string `json:"displayName"`
	Bio         string `json:"bio"`
}

// Client defines the interface for Magic Eden profile operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../../mocks/magiceden_client.go -package=mocks -mock_names=Client=MockMagicEdenClient
type Client interface {
	// VerifyBio reports whether the wallet's public profile bio contains
	// the literal user identifier. Used as the proof-of-control gate
	// before an address is accepted into the registry. Any failure means
	// not verified; errors are never propagated.
	VerifyBio(ctx context.Context, address domain.WalletAddress, userID domain.UserID) bool
}

// MagicEdenClient implements the Magic Eden wallet profile client
type MagicEdenClient struct {
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	apiURL         string
}

// NewClient creates a new Magic Eden client
func NewClient(httpClient adapter.HTTPClient, rateLimitProxy ratelimit.Proxy, apiURL string) Client {
	return &MagicEdenClient{
		httpClient:     httpClient,
		rateLimitProxy: rateLimitProxy,
		apiURL:         apiURL,
	}
}

// VerifyBio fetches the wallet profile and checks the bio for the user identifier
func (c *MagicEdenClient) VerifyBio(ctx context.Context, address domain.WalletAddress, userID domain.UserID) bool {
	profile, err := c.fetchProfile(ctx, address)
	if err != nil {
		logger.WarnCtx(ctx, "profile lookup failed, treating bio as unverified",
			zap.Error(err),
		)
		return false
	}

	bio := strings.TrimSpace(profile.Bio)
	if bio == "" {
		return false
	}

	return strings.Contains(bio, string(userID))
}

func (c *MagicEdenClient) fetchProfile(ctx context.Context, address domain.WalletAddress) (*Profile, error) {
	requestURL := fmt.Sprintf("%s/%s",
		strings.TrimSuffix(c.apiURL, "/"),
		url.PathEscape(string(address.Normalize())),
	)

	profile, err := ratelimit.Request(ctx, c.rateLimitProxy, func(ctx context.Context) (*Profile, error) {
		var p Profile
		if err := c.httpClient.Get(ctx, requestURL, nil, &p); err != nil {
			return nil, err
		}
		return &p, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch wallet profile: %w", err)
	}

	return profile, nil
}
