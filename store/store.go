// Package store persists generated mazes in an embedded badger database.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazeforge/synth"
)

// Sentinel errors for the store.
var (
	// ErrNotFound is returned when no maze is stored under an ID.
	ErrNotFound = errors.New("store: maze not found")
	// ErrNoPath is returned when a persistent store is opened without a
	// directory.
	ErrNoPath = errors.New("store: directory is required for a persistent store")
	// ErrNilMaze is returned by Put for a nil maze or a maze without a grid.
	ErrNilMaze = errors.New("store: maze is nil")
)

const keyPrefix = "maze/"

// Options configures Open.
type Options struct {
	// Dir is the badger directory; ignored when InMemory is set.
	Dir string
	// InMemory keeps everything in RAM (tests, ephemeral servers).
	InMemory bool
	// Logger receives badger's internal messages. nil silences them.
	Logger logrus.FieldLogger
}

// Record is a stored maze plus its creation time.
type Record struct {
	synth.Maze
	CreatedAt time.Time `json:"created_at"`
}

// Store is a badger-backed maze repository. It is safe for concurrent use.
type Store struct {
	db  *badger.DB
	log logrus.FieldLogger
	now func() time.Time
}

// Open opens (creating if needed) the database described by o.
func Open(o Options) (*Store, error) {
	var bo badger.Options
	if o.InMemory {
		bo = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if o.Dir == "" {
			return nil, ErrNoPath
		}
		if err := os.MkdirAll(o.Dir, 0o750); err != nil {
			return nil, fmt.Errorf("store: create directory %s: %w", o.Dir, err)
		}
		bo = badger.DefaultOptions(o.Dir)
	}

	log := o.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
		bo = bo.WithLogger(nil)
	} else {
		bo = bo.WithLogger(log.WithField("component", "badger"))
	}

	db, err := badger.Open(bo)
	if err != nil {
		return nil, fmt.Errorf("store: open badger: %w", err)
	}
	return &Store{db: db, log: log, now: time.Now}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func key(id uuid.UUID) []byte {
	return []byte(keyPrefix + id.String())
}

// Put stores m, replacing any record with the same ID, and returns the
// stored record.
func (s *Store) Put(ctx context.Context, m *synth.Maze) (*Record, error) {
	if m == nil || m.Grid == nil {
		return nil, ErrNilMaze
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rec := &Record{Maze: *m, CreatedAt: s.now().UTC()}
	val, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("store: encode %s: %w", m.ID, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(m.ID), val)
	})
	if err != nil {
		return nil, fmt.Errorf("store: put %s: %w", m.ID, err)
	}
	s.log.WithFields(logrus.Fields{"id": m.ID, "bytes": len(val)}).Debug("maze stored")
	return rec, nil
}

// Get loads the record stored under id or returns ErrNotFound.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var rec Record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("store: get %s: %w", id, err)
	}
	return &rec, nil
}

// List returns up to limit records, newest first. A non-positive limit
// returns every record.
func (s *Store) List(ctx context.Context, limit int) ([]*Record, error) {
	var out []*Record
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(keyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var rec Record
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			}); err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			out = append(out, &rec)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Delete removes the record under id or returns ErrNotFound.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key(id)); err != nil {
			return err
		}
		return txn.Delete(key(id))
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("store: delete %s: %w", id, err)
	}
	s.log.WithField("id", id).Debug("maze deleted")
	return nil
}
