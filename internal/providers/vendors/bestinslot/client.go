package bestinslot

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/pixelpepes/holderbot/internal/adapter"
	"github.com/pixelpepes/holderbot/internal/domain"
	"github.com/pixelpepes/holderbot/internal/logger"
	"github.com/pixelpepes/holderbot/internal/ratelimit"
)

// Client defines the interface for BestInSlot snapshot operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../../mocks/bestinslot_client.go -package=mocks -mock_names=Client=MockBestInSlotClient
type Client interface {
	// CheckOwnership reports whether the address holds any inscriptions in
	// the collection identified by slug. Lookup failures degrade to an
	// unknown (non-holder) record and are never propagated: a flaky
	// snapshot API must not abort a verification or a sweep.
	CheckOwnership(ctx context.Context, address domain.WalletAddress, slug string) domain.HoldingRecord
}

// BestInSlotClient implements the BestInSlot collection snapshot client
type BestInSlotClient struct {
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	apiURL         string
}

// NewClient creates a new BestInSlot client
func NewClient(httpClient adapter.HTTPClient, rateLimitProxy ratelimit.Proxy, apiURL string) Client {
	return &BestInSlotClient{
		httpClient:     httpClient,
		rateLimitProxy: rateLimitProxy,
		apiURL:         apiURL,
	}
}

// CheckOwnership fetches the collection snapshot and matches the address
// against it. The snapshot is tabular (CSV) with wallet, inscriptions_count
// and inscriptions columns; wallets are matched case- and
// whitespace-insensitively.
func (c *BestInSlotClient) CheckOwnership(ctx context.Context, address domain.WalletAddress, slug string) domain.HoldingRecord {
	record, err := c.checkOwnership(ctx, address, slug)
	if err != nil {
		logger.WarnCtx(ctx, "snapshot lookup failed, treating address as unknown",
			zap.String("slug", slug),
			zap.Error(err),
		)
		return domain.Unknown()
	}
	return record
}

func (c *BestInSlotClient) checkOwnership(ctx context.Context, address domain.WalletAddress, slug string) (domain.HoldingRecord, error) {
	requestURL := fmt.Sprintf("%s?slug=%s&type=csv", c.apiURL, url.QueryEscape(slug))

	body, err := ratelimit.Request(ctx, c.rateLimitProxy, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, requestURL, nil)
	})
	if err != nil {
		return domain.HoldingRecord{}, fmt.Errorf("failed to fetch snapshot: %w", err)
	}

	return matchSnapshot(body, address)
}

// matchSnapshot scans the snapshot CSV for the normalized address
func matchSnapshot(body []byte, address domain.WalletAddress) (domain.HoldingRecord, error) {
	reader := csv.NewReader(bytes.NewReader(body))
	reader.FieldsPerRecord = -1 // snapshot rows are occasionally ragged

	rows, err := reader.ReadAll()
	if err != nil {
		return domain.HoldingRecord{}, fmt.Errorf("failed to parse snapshot CSV: %w", err)
	}
	if len(rows) == 0 {
		return domain.HoldingRecord{}, fmt.Errorf("snapshot is empty")
	}

	// Column names carry stray whitespace in the feed
	walletCol, countCol, detailCol := -1, -1, -1
	for i, name := range rows[0] {
		switch strings.TrimSpace(name) {
		case "wallet":
			walletCol = i
		case "inscriptions_count":
			countCol = i
		case "inscriptions":
			detailCol = i
		}
	}
	if walletCol < 0 {
		return domain.HoldingRecord{}, fmt.Errorf("snapshot has no wallet column")
	}

	want := address.Normalize()
	for _, row := range rows[1:] {
		if walletCol >= len(row) {
			continue
		}
		if domain.WalletAddress(row[walletCol]).Normalize() != want {
			continue
		}

		if countCol < 0 || countCol >= len(row) {
			return domain.HoldingRecord{}, fmt.Errorf("snapshot has no inscriptions_count column")
		}
		count, err := strconv.Atoi(strings.TrimSpace(row[countCol]))
		if err != nil {
			return domain.HoldingRecord{}, fmt.Errorf("failed to parse inscriptions_count: %w", err)
		}
		if count < 1 {
			// Listed but holding nothing: not a holder
			return domain.NotHolder(), nil
		}

		detail := ""
		if detailCol >= 0 && detailCol < len(row) {
			detail = strings.TrimSpace(row[detailCol])
		}
		return domain.Holder(count, detail), nil
	}

	return domain.NotHolder(), nil
}
