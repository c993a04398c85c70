package toml

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/bnema/foodorder-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClock struct{ now time.Time }

func (c stubClock) Now() time.Time { return c.now }

func newTestRepository(t *testing.T) (*CartRepository, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cart.toml")
	repo, err := NewCartRepository(path, stubClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	return repo, path
}

func TestCartRepositoryLoadMissingFileIsEmpty(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	cart, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
	assert.NotNil(t, cart.Items)
}

func TestCartRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo, path := newTestRepository(t)

	cart := domain.NewCart()
	cart.Add(domain.CartItem{DishID: "pho-bo", Name: "Phở bò", Quantity: 2, Note: "ít hành"})
	cart.Add(domain.CartItem{DishID: "tra-da", Name: "Trà đá", Quantity: 1})

	require.NoError(t, repo.Save(context.Background(), cart))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cart, got)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "version = 1")
	assert.Contains(t, string(raw), "2026-03-01T09:00:00Z")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(cartFileMode), info.Mode().Perm())
}

func TestCartRepositorySaveEmptyCartClears(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	cart := domain.NewCart()
	cart.Add(domain.CartItem{DishID: "pho-bo", Name: "Phở bò", Quantity: 1})
	require.NoError(t, repo.Save(context.Background(), cart))

	require.NoError(t, repo.Save(context.Background(), domain.NewCart()))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
}

func TestCartRepositoryRejectsNewerSchema(t *testing.T) {
	t.Parallel()

	repo, path := newTestRepository(t)
	require.NoError(t, os.WriteFile(path, []byte("version = 2\n"), 0o600))

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported cart schema version 2")
}

func TestCartRepositoryRejectsInvalidItems(t *testing.T) {
	t.Parallel()

	repo, path := newTestRepository(t)
	content := "version = 1\n\n[[items]]\ndish_id = 'pho-bo'\nname = 'Phở bò'\nquantity = 0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, err := repo.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrInvalidCartItem)
}

func TestCartRepositoryConcurrentSaves(t *testing.T) {
	t.Parallel()

	repo, path := newTestRepository(t)

	var wg sync.WaitGroup
	for i := 1; i <= 10; i++ {
		wg.Add(1)
		go func(quantity int) {
			defer wg.Done()
			cart := domain.NewCart()
			cart.Add(domain.CartItem{DishID: domain.DishID("dish-" + strconv.Itoa(quantity)), Name: "x", Quantity: quantity})
			assert.NoError(t, repo.Save(context.Background(), cart))
		}(i)
	}
	wg.Wait()

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, got.Items, 1)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestNewCartRepositoryRequiresPath(t *testing.T) {
	t.Parallel()

	_, err := NewCartRepository("", nil)
	require.Error(t, err)
}
