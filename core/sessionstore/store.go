package sessionstore

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"

	"stock-check/core/ledger"
	"stock-check/core/storage"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when no session exists under the given id.
	ErrNotFound = errors.New("session not found")
	// ErrInvalidID is returned for ids that cannot name a stored session.
	ErrInvalidID = errors.New("invalid session id")
)

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// Store persists session records by id.
type Store interface {
	ledger.Persister
	// Get loads one session.
	Get(ctx context.Context, id string) (*ledger.Record, error)
	// List returns session summaries, newest first.
	List(ctx context.Context) ([]ledger.Summary, error)
	// Delete removes one session.
	Delete(ctx context.Context, id string) error
}

// Config selects and configures the session backend.
type Config struct {
	// Backend is one of memory, storage or database.
	Backend string `mapstructure:"backend" default:"storage"`
	// Prefix is prepended to object names by the storage backend.
	Prefix string `mapstructure:"prefix" default:"sessions/"`
}

// New builds the configured store. client and db may be nil when the
// selected backend does not need them.
func New(ctx context.Context, cfg Config, client storage.Client, bucket string, db *gorm.DB) (Store, error) {
	switch cfg.Backend {
	case "memory":
		return NewMemoryStore(), nil
	case "", "storage":
		if client == nil {
			return nil, errors.New("storage backend requires a storage client")
		}
		store := NewObjectStore(client, bucket, cfg.Prefix)
		if err := store.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return store, nil
	case "database":
		if db == nil {
			return nil, errors.New("database backend requires a database connection")
		}
		return NewDBStore(db)
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Backend)
	}
}

func validateID(id string) error {
	if !idPattern.MatchString(id) {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}

func sortNewestFirst(summaries []ledger.Summary) {
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].SessionID > summaries[j].SessionID
	})
}
