package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/pixelpepes/holderbot/internal/adapter"
	"github.com/pixelpepes/holderbot/internal/domain"
)

// AddressBook is the persisted mapping of user identifier to registered
// wallet addresses. The file is read fully at load and rewritten wholesale
// after every mutation, before the mutating call returns. One book-wide
// mutex serializes writers so simultaneous add/remove requests cannot
// interleave partial files.
type AddressBook struct {
	mu   sync.Mutex
	path string
	fs   adapter.FileSystem
	json adapter.JSON
	data map[domain.UserID][]domain.WalletAddress
}

// LoadAddressBook loads the registry from a JSON file. A missing file is an
// empty registry, not an error: first run starts with no registrations.
func LoadAddressBook(path string, fs adapter.FileSystem, jsonAdapter adapter.JSON) (*AddressBook, error) {
	book := &AddressBook{
		path: path,
		fs:   fs,
		json: jsonAdapter,
		data: make(map[domain.UserID][]domain.WalletAddress),
	}

	if !fs.Exists(path) {
		return book, nil
	}

	raw, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file: %w", err)
	}

	var stored map[string][]string
	if err := jsonAdapter.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("failed to parse registry file: %w", err)
	}

	for user, addresses := range stored {
		list := make([]domain.WalletAddress, 0, len(addresses))
		for _, addr := range addresses {
			list = append(list, domain.WalletAddress(addr))
		}
		book.data[domain.UserID(user)] = list
	}

	return book, nil
}

// Add registers an address for a user. Duplicate detection uses the
// normalized form; the stored form preserves the user's input trimmed.
func (b *AddressBook) Add(user domain.UserID, address domain.WalletAddress) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	stored := domain.WalletAddress(strings.TrimSpace(string(address)))
	for _, existing := range b.data[user] {
		if existing.Equal(stored) {
			return domain.ErrAddressAlreadyRegistered
		}
	}

	b.data[user] = append(b.data[user], stored)
	if err := b.persist(); err != nil {
		// Roll back so memory never diverges from disk
		b.data[user] = b.data[user][:len(b.data[user])-1]
		if len(b.data[user]) == 0 {
			delete(b.data, user)
		}
		return err
	}
	return nil
}

// Remove unregisters an address for a user, matching on the normalized form
func (b *AddressBook) Remove(user domain.UserID, address domain.WalletAddress) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	current := b.data[user]
	index := -1
	for i, existing := range current {
		if existing.Equal(address) {
			index = i
			break
		}
	}
	if index < 0 {
		return domain.ErrAddressNotRegistered
	}

	updated := make([]domain.WalletAddress, 0, len(current)-1)
	updated = append(updated, current[:index]...)
	updated = append(updated, current[index+1:]...)

	if len(updated) == 0 {
		delete(b.data, user)
	} else {
		b.data[user] = updated
	}

	if err := b.persist(); err != nil {
		b.data[user] = current
		return err
	}
	return nil
}

// Addresses returns the user's registered addresses in registration order
func (b *AddressBook) Addresses(user domain.UserID) []domain.WalletAddress {
	b.mu.Lock()
	defer b.mu.Unlock()

	addresses := make([]domain.WalletAddress, len(b.data[user]))
	copy(addresses, b.data[user])
	return addresses
}

// Users returns all registered user identifiers, sorted for deterministic
// sweep logging. Sweep ordering across users carries no semantic guarantee.
func (b *AddressBook) Users() []domain.UserID {
	b.mu.Lock()
	defer b.mu.Unlock()

	users := make([]domain.UserID, 0, len(b.data))
	for user := range b.data {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i] < users[j] })
	return users
}

// persist rewrites the whole registry file. Caller must hold the mutex.
func (b *AddressBook) persist() error {
	stored := make(map[string][]string, len(b.data))
	for user, addresses := range b.data {
		list := make([]string, 0, len(addresses))
		for _, addr := range addresses {
			list = append(list, string(addr))
		}
		stored[string(user)] = list
	}

	raw, err := b.json.MarshalIndent(stored, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}

	if dir := filepath.Dir(b.path); dir != "." {
		if err := b.fs.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create registry directory: %w", err)
		}
	}

	if err := b.fs.WriteFile(b.path, raw, os.FileMode(0o600)); err != nil {
		return fmt.Errorf("failed to write registry file: %w", err)
	}
	return nil
}
