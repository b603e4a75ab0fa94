package storage_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ogusta/ripple/internal/storage"
)

func TestPebbleRoundTrip(t *testing.T) {
	dir := t.TempDir()

	st, err := storage.OpenPebble(dir)
	require.NoError(t, err)

	require.NoError(t, st.Save(storage.KeyUsers, []string{"a", "b"}))

	var got []string
	ok, err := st.Load(storage.KeyUsers, &got)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []string{"a", "b"}, got)

	require.NoError(t, st.Close())
}

func TestPebbleSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	st, err := storage.OpenPebble(dir)
	require.NoError(t, err)
	require.NoError(t, st.Save(storage.KeyPosts, map[string]int{"count": 3}))
	require.NoError(t, st.Close())

	st, err = storage.OpenPebble(dir)
	require.NoError(t, err)
	defer st.Close()

	var got map[string]int
	ok, err := st.Load(storage.KeyPosts, &got)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 3, got["count"])
}

func TestPebbleMissingKeyReadsAsNoData(t *testing.T) {
	st, err := storage.OpenPebble(t.TempDir())
	require.NoError(t, err)
	defer st.Close()

	var got []string
	ok, err := st.Load("nothing-here", &got)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPebbleMalformedValueReadsAsNoData(t *testing.T) {
	st, err := storage.OpenPebble(t.TempDir())
	require.NoError(t, err)
	defer st.Close()

	// A valid JSON string that cannot decode into the expected shape.
	require.NoError(t, st.Save(storage.KeyMessages, "not-a-list"))

	var got []int
	ok, err := st.Load(storage.KeyMessages, &got)
	require.NoError(t, err)
	require.False(t, ok)
}
