package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/foodorder-cli/internal/domain"
	"github.com/bnema/foodorder-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	cartFileMode    = 0o600
	cartDirMode     = 0o700
	tempFilePattern = ".cart-*.toml.tmp"
)

// CartRepository persists the cart as a versioned TOML document.
type CartRepository struct {
	path  string
	clock ports.Clock
	mu    *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLocks      = map[string]*sync.RWMutex{}
)

var _ ports.CartRepository = (*CartRepository)(nil)

func NewCartRepository(path string, clock ports.Clock) (*CartRepository, error) {
	if path == "" {
		return nil, errors.New("cart path is empty")
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve cart path: %w", err)
	}
	absPath = filepath.Clean(absPath)

	return &CartRepository{path: absPath, clock: clock, mu: lockForPath(absPath)}, nil
}

func (r *CartRepository) Path() string {
	return r.path
}

// Load returns the stored cart. A missing file is an empty cart.
func (r *CartRepository) Load(ctx context.Context) (domain.Cart, error) {
	if err := ctx.Err(); err != nil {
		return domain.Cart{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.read()
	if err != nil {
		return domain.Cart{}, err
	}

	cart := domain.NewCart()
	for _, entry := range file.Items {
		item := domain.CartItem{
			DishID:   domain.DishID(entry.DishID),
			Name:     entry.Name,
			Quantity: entry.Quantity,
			Note:     entry.Note,
		}
		if err := item.Validate(); err != nil {
			return domain.Cart{}, fmt.Errorf("cart file %s: %w", r.path, err)
		}
		cart.Add(item)
	}

	return cart, nil
}

func (r *CartRepository) Save(ctx context.Context, cart domain.Cart) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	file := cartFileSchema{
		Version:   currentCartSchemaVersion,
		UpdatedAt: r.clock.Now().UTC().Format(time.RFC3339),
		Items:     make([]cartItemSchema, 0, len(cart.Items)),
	}
	for _, item := range cart.Sorted() {
		file.Items = append(file.Items, cartItemSchema{
			DishID:   string(item.DishID),
			Name:     item.Name,
			Quantity: item.Quantity,
			Note:     item.Note,
		})
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.write(file)
}

func (r *CartRepository) read() (cartFileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cartFileSchema{}, nil
		}
		return cartFileSchema{}, fmt.Errorf("read cart file: %w", err)
	}

	var file cartFileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return cartFileSchema{}, fmt.Errorf("decode cart file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return cartFileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *CartRepository) write(file cartFileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.path), cartDirMode); err != nil {
		return fmt.Errorf("create cart directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode cart file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp cart file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp cart file: %w", err)
	}
	if err := tmp.Chmod(cartFileMode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp cart file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp cart file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("replace cart file: %w", err)
	}
	committed = true

	return nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLocks[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLocks[path] = mu
	return mu
}
