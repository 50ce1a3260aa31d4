// AngelaMos | 2026
// kv_test.go

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func runKVContract(t *testing.T, kv KV) {
	t.Helper()
	ctx := context.Background()

	_, err := kv.Get(ctx, "absent")
	require.ErrorIs(t, err, ErrKeyNotFound)

	payload := []byte(`[{"id":"1"}]`)
	require.NoError(t, kv.Set(ctx, "frontdesk:users", payload))

	got, err := kv.Get(ctx, "frontdesk:users")
	require.NoError(t, err)
	require.Equal(t, payload, got)

	require.NoError(t, kv.Set(ctx, "frontdesk:users", []byte(`[]`)))
	got, err = kv.Get(ctx, "frontdesk:users")
	require.NoError(t, err)
	require.Equal(t, []byte(`[]`), got)

	require.NoError(t, kv.Delete(ctx, "frontdesk:users"))
	_, err = kv.Get(ctx, "frontdesk:users")
	require.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, kv.Delete(ctx, "frontdesk:users"))

	require.NoError(t, kv.Ping(ctx))
}

func TestMemoryKV(t *testing.T) {
	runKVContract(t, NewMemoryKV())
}

func TestFileKV(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)
	runKVContract(t, kv)
}

func TestFileKVSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first, err := NewFileKV(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "ns:bills", []byte(`[{"id":"b1"}]`)))

	second, err := NewFileKV(dir)
	require.NoError(t, err)

	got, err := second.Get(ctx, "ns:bills")
	require.NoError(t, err)
	require.Equal(t, []byte(`[{"id":"b1"}]`), got)
}

func TestMemoryKVCopiesValues(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	payload := []byte(`[1,2,3]`)
	require.NoError(t, kv.Set(ctx, "k", payload))
	payload[0] = 'X'

	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte(`[1,2,3]`), got)
}
