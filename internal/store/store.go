// Package store implement generic keyed-record access over the gorm handle.
// Each collection is addressed by its declared primary key column plus at most
// one secondary index column for equality lookup; anything richer than that is
// a full-collection read filtered by the caller.
package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"talentflow-backend/internal/database"
)

// Store wraps the gorm handle with the record-level operation set.
type Store struct {
	gdb *gorm.DB
}

// New creates a Store over the given database instance.
func New(db *database.DBinstanceStruct) (*Store, error) {
	if db == nil || db.DB == nil {
		return nil, ErrUnavailable
	}
	return &Store{gdb: db.DB}, nil
}

// WithContext returns a Store bound to ctx for its subsequent operations.
func (s *Store) WithContext(ctx context.Context) *Store {
	if s == nil || s.gdb == nil {
		return s
	}
	return &Store{gdb: s.gdb.WithContext(ctx)}
}

// Tx runs fn inside a single transaction. Every write issued through the
// Store passed to fn commits together or not at all.
func (s *Store) Tx(fn func(tx *Store) error) error {
	if s == nil || s.gdb == nil {
		return ErrUnavailable
	}
	return s.gdb.Transaction(func(g *gorm.DB) error {
		return fn(&Store{gdb: g})
	})
}

func (s *Store) ready() error {
	if s == nil || s.gdb == nil {
		return ErrUnavailable
	}
	return nil
}

// Get fetches the record whose key column equals key.
// column is a declared key column name, never caller input.
func Get[T any](s *Store, column string, key interface{}) (*T, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var rec T
	err := s.gdb.Where(fmt.Sprintf("%s = ?", column), key).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("get %T %v: %w", rec, key, ErrNotFound)
		}
		return nil, err
	}
	return &rec, nil
}

// All fetches every record in the collection. Order is whatever the store
// returns; callers that care sort the result themselves.
func All[T any](s *Store) ([]T, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var recs []T
	if err := s.gdb.Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// Put upserts rec by its primary key, replacing any existing record
// wholesale. Putting the same record twice leaves the same stored state.
func Put[T any](s *Store, rec *T) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.gdb.Save(rec).Error
}

// Add inserts rec. Collections with auto-assigned keys get a fresh key
// written back into rec; explicit-key collections fail with ErrDuplicateKey
// when the key is already taken.
func Add[T any](s *Store, rec *T) error {
	if err := s.ready(); err != nil {
		return err
	}
	err := s.gdb.Create(rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("add %T: %w", *rec, ErrDuplicateKey)
		}
		return err
	}
	return nil
}

// FindBy fetches every record whose indexed column equals value.
func FindBy[T any](s *Store, column string, value interface{}) ([]T, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var recs []T
	if err := s.gdb.Where(fmt.Sprintf("%s = ?", column), value).Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// Delete removes the record whose key column equals key.
// Deleting an absent key is a no-op, not an error.
func Delete[T any](s *Store, column string, key interface{}) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.gdb.Where(fmt.Sprintf("%s = ?", column), key).Delete(new(T)).Error
}

// Count returns the number of records in the collection.
func Count[T any](s *Store) (int64, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	var n int64
	if err := s.gdb.Model(new(T)).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
