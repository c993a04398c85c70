package pass

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path"
	"strings"

	"github.com/bnema/foodorder-cli/internal/domain"
	"github.com/bnema/foodorder-cli/internal/ports"
)

const DefaultPrefix = "foodorder"

var ErrUnavailable = errors.New("pass command unavailable")

const notInStoreMarker = "is not in the password store"

type runFunc func(ctx context.Context, stdin string, args ...string) (stdout string, stderr string, err error)

// Store keeps entries in the user's pass(1) password store under a fixed prefix.
type Store struct {
	prefix string
	run    runFunc
}

var _ ports.KeyValueStore = (*Store)(nil)

func NewStore(prefix string) *Store {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Store{prefix: prefix, run: execPass}
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entry := s.entry(key)
	if _, stderr, err := s.run(ctx, value+"\n", "insert", "--multiline", "--force", entry); err != nil {
		return passError("insert", entry, err, stderr)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	entry := s.entry(key)
	stdout, stderr, err := s.run(ctx, "", "show", entry)
	if err != nil {
		if strings.Contains(stderr, notInStoreMarker) {
			return "", fmt.Errorf("pass entry %q: %w", entry, domain.ErrKeyNotFound)
		}
		return "", passError("show", entry, err, stderr)
	}

	return strings.TrimRight(stdout, "\r\n"), nil
}

// Delete removes the entry. A missing entry is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entry := s.entry(key)
	if _, stderr, err := s.run(ctx, "", "rm", "--force", entry); err != nil {
		if strings.Contains(stderr, notInStoreMarker) {
			return nil
		}
		return passError("rm", entry, err, stderr)
	}

	return nil
}

func (s *Store) entry(key string) string {
	return path.Join(s.prefix, strings.Trim(key, "/"))
}

func execPass(ctx context.Context, stdin string, args ...string) (string, string, error) {
	bin, err := exec.LookPath("pass")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", ErrUnavailable
		}
		return "", "", fmt.Errorf("locate pass command: %w", err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

func passError(op string, entry string, err error, stderr string) error {
	if stderr == "" {
		return fmt.Errorf("pass %s %q: %w", op, entry, err)
	}
	return fmt.Errorf("pass %s %q: %w: %s", op, entry, err, stderr)
}
