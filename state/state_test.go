// Copyright 2026 The Tempo Authors
// SPDX-License-Identifier: GPL-3.0-only

package state

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "tempo.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndLoadPosition(t *testing.T) {
	s := openTestStore(t)

	_, found := s.Position("/music/a.flac")
	assert.False(t, found)

	require.NoError(t, s.SavePosition("/music/a.flac", 0.42))
	ratio, found := s.Position("/music/a.flac")
	assert.True(t, found)
	assert.Equal(t, 0.42, ratio)

	// entries are independent per uri
	_, found = s.Position("/music/b.flac")
	assert.False(t, found)
}

func TestBoundaryRatiosClearTheEntry(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.SavePosition("track", 0.5))

	for _, ratio := range []float64{0, 1, -0.2, 1.5} {
		require.NoError(t, s.SavePosition("track", ratio))
		_, found := s.Position("track")
		assert.False(t, found, "ratio %v must clear the stored position", ratio)

		require.NoError(t, s.SavePosition("track", 0.5))
	}
}

func TestForget(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.SavePosition("track", 0.7))
	require.NoError(t, s.Forget("track"))
	_, found := s.Position("track")
	assert.False(t, found)

	// forgetting an absent entry is fine
	assert.NoError(t, s.Forget("missing"))
}

func TestEmptyUriRejected(t *testing.T) {
	s := openTestStore(t)
	assert.Error(t, s.SavePosition("", 0.5))
}
