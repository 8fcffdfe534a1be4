package registry_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelpepes/holderbot/internal/adapter"
	"github.com/pixelpepes/holderbot/internal/domain"
	"github.com/pixelpepes/holderbot/internal/registry"
)

func newTestBook(t *testing.T) (*registry.AddressBook, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "user_addresses.json")
	book, err := registry.LoadAddressBook(path, adapter.NewFileSystem(), adapter.NewJSON())
	require.NoError(t, err)
	return book, path
}

func TestAddressBook_AddAndList(t *testing.T) {
	book, _ := newTestBook(t)

	require.NoError(t, book.Add("user-1", "bc1qfirst"))
	require.NoError(t, book.Add("user-1", "bc1qsecond"))
	require.NoError(t, book.Add("user-2", "bc1qother"))

	// Registration order is preserved
	assert.Equal(t, []domain.WalletAddress{"bc1qfirst", "bc1qsecond"}, book.Addresses("user-1"))
	assert.Equal(t, []domain.WalletAddress{"bc1qother"}, book.Addresses("user-2"))
	assert.Equal(t, []domain.UserID{"user-1", "user-2"}, book.Users())
}

func TestAddressBook_DuplicateDetectionIsNormalized(t *testing.T) {
	book, _ := newTestBook(t)

	require.NoError(t, book.Add("user-1", "0xabc"))

	// Same address with different case and whitespace
	err := book.Add("user-1", " 0xABC ")
	assert.ErrorIs(t, err, domain.ErrAddressAlreadyRegistered)

	// Stored form keeps the original input trimmed
	assert.Equal(t, []domain.WalletAddress{"0xabc"}, book.Addresses("user-1"))
}

func TestAddressBook_Remove(t *testing.T) {
	book, _ := newTestBook(t)

	require.NoError(t, book.Add("user-1", "bc1qfirst"))
	require.NoError(t, book.Add("user-1", "bc1qSecond"))

	// Removal matches on the normalized form
	require.NoError(t, book.Remove("user-1", " BC1QSECOND "))
	assert.Equal(t, []domain.WalletAddress{"bc1qfirst"}, book.Addresses("user-1"))

	err := book.Remove("user-1", "bc1qsecond")
	assert.ErrorIs(t, err, domain.ErrAddressNotRegistered)

	// Removing the last address removes the user entry
	require.NoError(t, book.Remove("user-1", "bc1qfirst"))
	assert.Empty(t, book.Addresses("user-1"))
	assert.Empty(t, book.Users())
}

func TestAddressBook_RemoveUnknownUser(t *testing.T) {
	book, _ := newTestBook(t)

	err := book.Remove("ghost", "bc1qfirst")
	assert.ErrorIs(t, err, domain.ErrAddressNotRegistered)
}

func TestAddressBook_PersistsAcrossReload(t *testing.T) {
	book, path := newTestBook(t)

	require.NoError(t, book.Add("user-1", "bc1qfirst"))
	require.NoError(t, book.Add("user-1", "bc1qsecond"))
	require.NoError(t, book.Add("user-2", "bc1qother"))
	require.NoError(t, book.Remove("user-2", "bc1qother"))

	// Every mutation rewrote the file, a fresh load sees the final state
	reloaded, err := registry.LoadAddressBook(path, adapter.NewFileSystem(), adapter.NewJSON())
	require.NoError(t, err)
	assert.Equal(t, []domain.WalletAddress{"bc1qfirst", "bc1qsecond"}, reloaded.Addresses("user-1"))
	assert.Empty(t, reloaded.Addresses("user-2"))
}

func TestLoadAddressBook_MissingFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.json")
	book, err := registry.LoadAddressBook(path, adapter.NewFileSystem(), adapter.NewJSON())
	require.NoError(t, err)
	assert.Empty(t, book.Users())

	// Loading must not create the file; only mutation persists
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestLoadAddressBook_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_addresses.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := registry.LoadAddressBook(path, adapter.NewFileSystem(), adapter.NewJSON())
	assert.Error(t, err)
}
