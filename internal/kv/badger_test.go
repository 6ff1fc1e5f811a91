// ABOUTME: Tests for the badger-backed store.
// ABOUTME: Runs the shared contract plus on-disk persistence checks.

package kv

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBadgerStoreContract(t *testing.T) {
	runStoreContract(t, func(t *testing.T) Store {
		s, err := OpenInMemory(nil)
		require.NoError(t, err)
		t.Cleanup(func() { _ = s.Close() })
		return s
	})
}

func TestBadgerStorePersistsAcrossReopen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "store")
	ctx := context.Background()

	s, err := OpenBadger(dir, nil)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "neonotes_liked_ids", []byte(`["n1"]`)))
	require.NoError(t, s.Close())

	s, err = OpenBadger(dir, nil)
	require.NoError(t, err)
	defer s.Close()

	v, err := s.Get(ctx, "neonotes_liked_ids")
	require.NoError(t, err)
	assert.JSONEq(t, `["n1"]`, string(v))
}
