package pass

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/foodorder-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeRun(t *testing.T, wantArgs []string, wantStdin string, stdout string, stderr string, err error) runFunc {
	t.Helper()

	return func(_ context.Context, stdin string, args ...string) (string, string, error) {
		assert.Equal(t, wantArgs, args)
		assert.Equal(t, wantStdin, stdin)
		return stdout, stderr, err
	}
}

func TestStorePutInsertsUnderPrefix(t *testing.T) {
	t.Parallel()

	store := NewStore("")
	store.run = fakeRun(t, []string{"insert", "--multiline", "--force", "foodorder/auth/token"}, "abc123\n", "", "", nil)

	require.NoError(t, store.Put(context.Background(), "auth/token", "abc123"))
}

func TestStoreGetTrimsTrailingNewline(t *testing.T) {
	t.Parallel()

	store := NewStore("apps/fo/")
	store.run = fakeRun(t, []string{"show", "apps/fo/auth/token"}, "", "abc123\r\n", "", nil)

	value, err := store.Get(context.Background(), "auth/token")
	require.NoError(t, err)
	assert.Equal(t, "abc123", value)
}

func TestStoreGetMissingEntryIsNotFound(t *testing.T) {
	t.Parallel()

	store := NewStore("")
	store.run = fakeRun(t, []string{"show", "foodorder/auth/token"}, "",
		"", "Error: foodorder/auth/token is not in the password store.", errors.New("exit status 1"))

	_, err := store.Get(context.Background(), "auth/token")
	require.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestStoreGetReportsOtherFailures(t *testing.T) {
	t.Parallel()

	store := NewStore("")
	store.run = fakeRun(t, []string{"show", "foodorder/auth/token"}, "",
		"", "gpg: decryption failed: No secret key", errors.New("exit status 2"))

	_, err := store.Get(context.Background(), "auth/token")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrKeyNotFound)
	assert.ErrorContains(t, err, "pass show")
	assert.ErrorContains(t, err, "No secret key")
}

func TestStoreDeleteToleratesMissingEntry(t *testing.T) {
	t.Parallel()

	store := NewStore("")
	store.run = fakeRun(t, []string{"rm", "--force", "foodorder/auth/token"}, "",
		"", "Error: foodorder/auth/token is not in the password store.", errors.New("exit status 1"))

	require.NoError(t, store.Delete(context.Background(), "auth/token"))
}

func TestStorePropagatesUnavailable(t *testing.T) {
	t.Parallel()

	store := NewStore("")
	store.run = func(context.Context, string, ...string) (string, string, error) {
		return "", "", ErrUnavailable
	}

	err := store.Put(context.Background(), "auth/token", "abc123")
	require.ErrorIs(t, err, ErrUnavailable)
}
