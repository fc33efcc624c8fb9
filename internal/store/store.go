package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/spenweb/kd/internal/catalog"
	"github.com/spenweb/kd/internal/config"
	"github.com/spenweb/kd/internal/logging"
)

const lockRetryDelay = 50 * time.Millisecond

// ErrLocked is returned when another process holds the document lock until ctx ends.
var ErrLocked = errors.New("catalog is locked by another kd process")

// Store owns the location of the catalog document.
type Store struct {
	path   string
	lock   *flock.Flock
	logger *slog.Logger
}

// New returns a store for the document at path.
func New(path string, logger *slog.Logger) *Store {
	return &Store{
		path:   path,
		lock:   flock.New(path + ".lock"),
		logger: logging.NewComponentLogger(logger, "store"),
	}
}

// Open returns a store for the document inside the configured data directory.
func Open(cfg *config.Config, logger *slog.Logger) (*Store, error) {
	if cfg == nil {
		return nil, errors.New("store requires config")
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	return New(DocumentPath(cfg), logger), nil
}

// DocumentPath returns where the catalog document lives for cfg.
func DocumentPath(cfg *config.Config) string {
	return filepath.Join(cfg.Paths.DataDir, catalog.DocumentName)
}

// Path returns the document path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the collection without taking the lock. Use it for read-only commands.
func (s *Store) Load() (*catalog.Collection, error) {
	c, err := catalog.Load(s.path)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("loaded collection",
		logging.String(logging.FieldPath, s.path),
		logging.Int("shows", c.Len()))
	return c, nil
}

// Update loads the collection under the document lock, applies fn, and saves
// the result. When fn fails the collection is discarded and fn's error returned.
func (s *Store) Update(ctx context.Context, fn func(*catalog.Collection) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	locked, err := s.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w: %w", ErrLocked, ctxErr)
		}
		return fmt.Errorf("acquire catalog lock: %w", err)
	}
	if !locked {
		return ErrLocked
	}
	defer func() {
		if err := s.lock.Unlock(); err != nil {
			logging.WarnWithContext(s.logger, "failed to release catalog lock", "store_unlock_failed",
				logging.String(logging.FieldPath, s.lock.Path()),
				logging.Error(err))
		}
	}()

	c, err := s.Load()
	if err != nil {
		return err
	}
	if err := fn(c); err != nil {
		s.logger.Debug("mutation rejected; nothing saved", logging.Error(err))
		return err
	}
	if err := c.Save(s.path); err != nil {
		return err
	}
	s.logger.Info("saved collection",
		logging.String(logging.FieldPath, s.path),
		logging.Int("shows", c.Len()))
	return nil
}
