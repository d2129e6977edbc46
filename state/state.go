// Copyright 2026 The Tempo Authors
// SPDX-License-Identifier: GPL-3.0-only

// Package state persists the last playback position per track, so a
// track interrupted by quitting resumes where it left off.
package state

import (
	"errors"
	"strconv"

	bolt "go.etcd.io/bbolt"
)

var positionsBucket = []byte("positions")

// Store is a bbolt-backed resume-position store, keyed by track URI.
// Positions are stored as normalized ratios (0..1), the same unit the
// seek bar commits in.
type Store struct {
	db *bolt.DB
}

// Open creates or opens the store file.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(positionsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// SavePosition stores the resume ratio for uri. Ratios outside (0,1)
// mean "start from the beginning" and clear any stored entry instead,
// so finished or barely-started tracks don't accumulate state.
func (s *Store) SavePosition(uri string, ratio float64) error {
	if uri == "" {
		return errors.New("empty track uri")
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(positionsBucket)
		if ratio <= 0 || ratio >= 1 {
			return b.Delete([]byte(uri))
		}
		v := strconv.FormatFloat(ratio, 'f', -1, 64)
		return b.Put([]byte(uri), []byte(v))
	})
}

// Position returns the stored resume ratio for uri, or false when none
// is stored. A corrupt entry counts as absent.
func (s *Store) Position(uri string) (float64, bool) {
	var ratio float64
	found := false
	_ = s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(positionsBucket).Get([]byte(uri))
		if v == nil {
			return nil
		}
		parsed, err := strconv.ParseFloat(string(v), 64)
		if err != nil || parsed <= 0 || parsed >= 1 {
			return nil
		}
		ratio = parsed
		found = true
		return nil
	})
	return ratio, found
}

// Forget removes the stored position for uri.
func (s *Store) Forget(uri string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(positionsBucket).Delete([]byte(uri))
	})
}

func (s *Store) Close() error {
	return s.db.Close()
}
