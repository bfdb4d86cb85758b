// Package store persists parameter values between runs in a local
// bolt database, so an interface can reopen with the values the user
// left behind.
package store

import (
	"encoding/json"
	goerrors "errors"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/go-facet/facet/pkg/errors"
)

const bucketParams = "params"

// ErrNoParam is returned by (*Store).Param when there is no such
// parameter.
var ErrNoParam = goerrors.New("no such parameter")

// Store is a parameter-value database backed by a single bolt file.
type Store struct {
	db *bolt.DB
}

// Open opens or creates the database at path and ensures the parameter
// bucket exists.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, &errors.Error{Op: "store.Open", Kind: errors.KindStore, Err: err}
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketParams))
		return err
	})
	if err != nil {
		db.Close()
		return nil, &errors.Error{Op: "store.Open", Kind: errors.KindStore, Err: err}
	}
	return &Store{db: db}, nil
}

// Close releases the database file.
func (s *Store) Close() error {
	return s.db.Close()
}

// SetParam stores one parameter value. Values round-trip through JSON,
// so numbers come back as float64.
func (s *Store) SetParam(name string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return &errors.Error{Op: "store.SetParam", Kind: errors.KindStore, Element: name, Err: err}
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketParams))
		return b.Put([]byte(name), data)
	})
}

// Param returns the stored value of one parameter, or ErrNoParam.
func (s *Store) Param(name string) (any, error) {
	var value any
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketParams))
		v := b.Get([]byte(name))
		if v == nil {
			return ErrNoParam
		}
		return json.Unmarshal(v, &value)
	})
	return value, err
}

// DelParam deletes one parameter. Deleting an absent parameter is not
// an error.
func (s *Store) DelParam(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketParams))
		return b.Delete([]byte(name))
	})
}

// AllParams returns every stored parameter value.
func (s *Store) AllParams() (map[string]any, error) {
	values := map[string]any{}
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketParams))
		return b.ForEach(func(k, v []byte) error {
			var value any
			if err := json.Unmarshal(v, &value); err != nil {
				return err
			}
			values[string(k)] = value
			return nil
		})
	})
	if err != nil {
		return nil, &errors.Error{Op: "store.AllParams", Kind: errors.KindStore, Err: err}
	}
	return values, nil
}

// SaveSnapshot replaces the stored state with the given values in one
// transaction.
func (s *Store) SaveSnapshot(values map[string]any) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket([]byte(bucketParams)); err != nil {
			return err
		}
		b, err := tx.CreateBucket([]byte(bucketParams))
		if err != nil {
			return err
		}
		for name, value := range values {
			data, err := json.Marshal(value)
			if err != nil {
				return err
			}
			if err := b.Put([]byte(name), data); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return &errors.Error{Op: "store.SaveSnapshot", Kind: errors.KindStore, Err: err}
	}
	return nil
}

// LoadSnapshot returns the stored state as one value map.
func (s *Store) LoadSnapshot() (map[string]any, error) {
	return s.AllParams()
}
