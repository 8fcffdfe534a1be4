// snapshotcheck fetches a collection snapshot and reports whether a wallet
// address holds, using the same client the bot uses. Handy for checking a
// user's report against the live snapshot without touching Discord.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pixelpepes/holderbot/internal/adapter"
	"github.com/pixelpepes/holderbot/internal/domain"
	"github.com/pixelpepes/holderbot/internal/logger"
	"github.com/pixelpepes/holderbot/internal/providers/vendors/bestinslot"
)

var (
	apiURL  = flag.String("api", "https://v2api.bestinslot.xyz/collection/snapshot", "Snapshot API base URL")
	slug    = flag.String("slug", "", "Collection slug to check")
	address = flag.String("address", "", "Wallet address to check")
	timeout = flag.Duration("timeout", 30*time.Second, "HTTP timeout")
)

func main() {
	flag.Parse()

	if *slug == "" || *address == "" {
		fmt.Fprintln(os.Stderr, "usage: snapshotcheck -slug <collection> -address <wallet>")
		os.Exit(2)
	}

	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	// No rate limit proxy: this is a one-shot manual check
	client := bestinslot.NewClient(adapter.NewHTTPClient(*timeout), nil, *apiURL)
	record := client.CheckOwnership(ctx, domain.WalletAddress(*address), *slug)

	switch {
	case record.LookupFailed:
		fmt.Println("lookup failed, see log output")
		os.Exit(1)
	case record.IsHolder:
		fmt.Printf("holder: %d inscription(s)\n", *record.Count)
		if record.Detail != nil {
			fmt.Printf("inscriptions: %s\n", *record.Detail)
		}
	default:
		fmt.Println("not a holder")
	}
}
