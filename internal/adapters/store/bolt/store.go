package bolt

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/foodorder-cli/internal/domain"
	"github.com/bnema/foodorder-cli/internal/ports"
	"github.com/boltdb/bolt"
)

const (
	DefaultBucket   = "deeplinks"
	dbFileMode      = 0o600
	dbDirMode       = 0o700
	defaultLockWait = 2 * time.Second
)

// Store is a KeyValueStore backed by a single bolt bucket. The database is
// opened per operation so separate fo processes can share the file.
type Store struct {
	path     string
	bucket   []byte
	lockWait time.Duration
}

var _ ports.KeyValueStore = (*Store)(nil)

type Option func(*Store)

func WithBucket(name string) Option {
	return func(s *Store) {
		if name != "" {
			s.bucket = []byte(name)
		}
	}
}

func WithLockWait(wait time.Duration) Option {
	return func(s *Store) {
		if wait > 0 {
			s.lockWait = wait
		}
	}
}

func NewStore(path string, opts ...Option) *Store {
	s := &Store{
		path:     filepath.Clean(path),
		bucket:   []byte(DefaultBucket),
		lockWait: defaultLockWait,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if key == "" {
		return errors.New("bolt key is empty")
	}

	return s.withDB(func(db *bolt.DB) error {
		return db.Update(func(tx *bolt.Tx) error {
			bucket, err := tx.CreateBucketIfNotExists(s.bucket)
			if err != nil {
				return fmt.Errorf("create bucket %s: %w", s.bucket, err)
			}
			if err := bucket.Put([]byte(key), []byte(value)); err != nil {
				return fmt.Errorf("put %q: %w", key, err)
			}
			return nil
		})
	})
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var value string
	err := s.withDB(func(db *bolt.DB) error {
		return db.View(func(tx *bolt.Tx) error {
			bucket := tx.Bucket(s.bucket)
			if bucket == nil {
				return fmt.Errorf("bolt key %q: %w", key, domain.ErrKeyNotFound)
			}

			raw := bucket.Get([]byte(key))
			if raw == nil {
				return fmt.Errorf("bolt key %q: %w", key, domain.ErrKeyNotFound)
			}
			// raw is only valid inside the transaction.
			value = string(raw)
			return nil
		})
	})
	if err != nil {
		return "", err
	}

	return value, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.withDB(func(db *bolt.DB) error {
		return db.Update(func(tx *bolt.Tx) error {
			bucket := tx.Bucket(s.bucket)
			if bucket == nil {
				return nil
			}
			if err := bucket.Delete([]byte(key)); err != nil {
				return fmt.Errorf("delete %q: %w", key, err)
			}
			return nil
		})
	})
}

func (s *Store) withDB(fn func(db *bolt.DB) error) (err error) {
	if err := os.MkdirAll(filepath.Dir(s.path), dbDirMode); err != nil {
		return fmt.Errorf("create bolt directory: %w", err)
	}

	db, err := bolt.Open(s.path, dbFileMode, &bolt.Options{Timeout: s.lockWait})
	if err != nil {
		return fmt.Errorf("open bolt db %s: %w", s.path, err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close bolt db %s: %w", s.path, closeErr)
		}
	}()

	return fn(db)
}
