// internal/record/kvregion/kvregion.go

// Package kvregion keeps the persistent record in a Badger key-value store.
// It suits hosts where the state directory is shared with other tooling.
package kvregion

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v3"
)

// Key is the single key the record is stored under.
var Key = []byte("wifiquick/record")

// Region implements record.Region on a Badger DB.
type Region struct {
	db *badger.DB
}

// Open opens (or creates) the store in dir.
func Open(dir string, logger *slog.Logger) (*Region, error) {
	if dir == "" {
		return nil, errors.New("kvregion: dir is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	opts := badger.DefaultOptions(dir)
	opts.Logger = &badgerLogger{logger: logger}
	opts.SyncWrites = true

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("kvregion: open db: %w", err)
	}
	return &Region{db: db}, nil
}

// Load copies the stored record into p. A missing key or a value of
// another size yields a zeroed buffer, which never validates.
func (r *Region) Load(p []byte) error {
	clear(p)
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(Key)
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			if len(v) == len(p) {
				copy(p, v)
			}
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("kvregion: load: %w", err)
	}
	return nil
}

func (r *Region) Store(p []byte) error {
	v := append([]byte(nil), p...)
	if err := r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(Key, v)
	}); err != nil {
		return fmt.Errorf("kvregion: store: %w", err)
	}
	return nil
}

// Wipe deletes the record, the store's equivalent of power loss.
func (r *Region) Wipe() error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(Key)
	})
}

func (r *Region) Close() error {
	if err := r.db.Close(); err != nil {
		return fmt.Errorf("kvregion: close db: %w", err)
	}
	return nil
}

// badgerLogger adapts slog.Logger to Badger's Logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}
