// Package store persists VDF challenges from issuance until a solution
// arrives or they expire, backed by BadgerDB.
package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/chronosvdf/wesolowski"
)

// Status is the lifecycle state of a ChallengeRecord.
type Status string

const (
	StatusPending Status = "pending"
	StatusSolved  Status = "solved"
	StatusExpired Status = "expired"
)

// Record is a persisted challenge: the UnsolvedVDF the challenger
// issued, plus the bookkeeping fields the service layer needs.
type Record struct {
	ID       string               `json:"id"`
	X        []byte               `json:"x"`
	T        uint64               `json:"t"`
	IssuedAt time.Time            `json:"issued_at"`
	Status   Status               `json:"status"`
	Proof    *vdf.SerializedProof `json:"proof,omitempty"`
}

// Unsolved reconstructs the UnsolvedVDF this record was issued for.
func (r *Record) Unsolved() *vdf.UnsolvedVDF {
	return &vdf.UnsolvedVDF{X: r.X, Setup: vdf.PublicSetup(r.T)}
}

func challengeKey(id string) []byte {
	return []byte("challenge:" + id)
}

func statusIndexKey(status Status, id string) []byte {
	return []byte(fmt.Sprintf("status:%s:%s", status, id))
}

// Store wraps a BadgerDB instance opened at a fixed path.
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) a challenge store at path.
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // BadgerDB's own logger is noisy at default level; the service logs at a higher level itself.

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening challenge store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put persists a new pending challenge record.
func (s *Store) Put(r *Record) error {
	r.Status = StatusPending
	return s.db.Update(func(txn *badger.Txn) error {
		data, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("marshaling challenge record: %w", err)
		}
		if err := txn.Set(challengeKey(r.ID), data); err != nil {
			return err
		}
		return txn.Set(statusIndexKey(StatusPending, r.ID), nil)
	})
}

// Get retrieves a challenge record by ID.
func (s *Store) Get(id string) (*Record, error) {
	var r Record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(challengeKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &r)
		})
	})
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// MarkSolved records proof against id and moves it out of the pending index.
func (s *Store) MarkSolved(id string, proof *vdf.SerializedProof) error {
	return s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(challengeKey(id))
		if err != nil {
			return err
		}
		var r Record
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &r)
		}); err != nil {
			return err
		}

		if err := txn.Delete(statusIndexKey(r.Status, id)); err != nil {
			return err
		}
		r.Status = StatusSolved
		r.Proof = proof

		data, err := json.Marshal(&r)
		if err != nil {
			return fmt.Errorf("marshaling challenge record: %w", err)
		}
		if err := txn.Set(challengeKey(id), data); err != nil {
			return err
		}
		return txn.Set(statusIndexKey(StatusSolved, id), nil)
	})
}

// DeleteExpired transitions pending records issued before cutoff to
// StatusExpired: it moves each one out of the pending status index
// into the expired one and persists the updated record, so a later
// Get still finds it (with Status == StatusExpired) rather than
// disappearing outright. It returns the number of records expired.
func (s *Store) DeleteExpired(cutoff time.Time) (int, error) {
	expired := 0
	err := s.db.Update(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte("status:" + string(StatusPending) + ":")
		it := txn.NewIterator(opts)
		defer it.Close()

		var toExpire []string
		for it.Seek(opts.Prefix); it.ValidForPrefix(opts.Prefix); it.Next() {
			key := string(it.Item().Key())
			id := strings.TrimPrefix(key, string(opts.Prefix))
			toExpire = append(toExpire, id)
		}

		for _, id := range toExpire {
			item, err := txn.Get(challengeKey(id))
			if err != nil {
				continue
			}
			var r Record
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &r)
			}); err != nil {
				continue
			}
			if r.IssuedAt.After(cutoff) {
				continue
			}

			if err := txn.Delete(statusIndexKey(StatusPending, id)); err != nil {
				return err
			}
			r.Status = StatusExpired
			data, err := json.Marshal(&r)
			if err != nil {
				return fmt.Errorf("marshaling challenge record: %w", err)
			}
			if err := txn.Set(challengeKey(id), data); err != nil {
				return err
			}
			if err := txn.Set(statusIndexKey(StatusExpired, id), nil); err != nil {
				return err
			}
			expired++
		}
		return nil
	})
	return expired, err
}
