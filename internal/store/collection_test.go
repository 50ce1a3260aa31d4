// AngelaMos | 2026
// collection_test.go

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/angelamos/frontdesk/internal/core"
)

type widget struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

func (w widget) EntityID() string { return w.ID }

func newTestCollection(t *testing.T) *Collection[widget] {
	t.Helper()
	st := New(NewMemoryKV(), "test")
	return NewCollection[widget](st, "widgets")
}

func TestCollectionInsertThenGet(t *testing.T) {
	ctx := context.Background()
	coll := newTestCollection(t)

	w := widget{ID: NewID(), Label: "first"}
	require.NoError(t, coll.Insert(ctx, w))

	got, err := coll.Get(ctx, w.ID)
	require.NoError(t, err)
	require.Equal(t, w, *got)
}

func TestCollectionGetMissing(t *testing.T) {
	ctx := context.Background()
	coll := newTestCollection(t)

	_, err := coll.Get(ctx, "nope")
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestCollectionReplaceMissingLeavesUntouched(t *testing.T) {
	ctx := context.Background()
	coll := newTestCollection(t)

	require.NoError(t, coll.Insert(ctx, widget{ID: "a", Label: "keep"}))

	err := coll.Replace(ctx, widget{ID: "ghost", Label: "new"})
	require.ErrorIs(t, err, core.ErrNotFound)

	records, err := coll.All(ctx)
	require.NoError(t, err)
	require.Equal(t, []widget{{ID: "a", Label: "keep"}}, records)
}

func TestCollectionDeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	coll := newTestCollection(t)

	require.NoError(t, coll.Insert(ctx, widget{ID: "a"}))
	require.NoError(t, coll.Insert(ctx, widget{ID: "b"}))

	require.NoError(t, coll.Delete(ctx, "a"))
	first, err := coll.All(ctx)
	require.NoError(t, err)

	require.NoError(t, coll.Delete(ctx, "a"))
	second, err := coll.All(ctx)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Len(t, second, 1)
}

// Two writers working from the same snapshot: the second whole-collection
// write wins and the first writer's record is silently lost. The storage
// model makes no promise beyond this.
func TestCollectionLostUpdateRace(t *testing.T) {
	ctx := context.Background()
	coll := newTestCollection(t)

	for _, id := range []string{"1", "2", "3"} {
		require.NoError(t, coll.Insert(ctx, widget{ID: id}))
	}

	snapshotA, err := coll.All(ctx)
	require.NoError(t, err)
	snapshotB, err := coll.All(ctx)
	require.NoError(t, err)

	require.NoError(t, coll.ReplaceAll(ctx, append(snapshotA, widget{ID: "x"})))
	require.NoError(t, coll.ReplaceAll(ctx, append(snapshotB, widget{ID: "y"})))

	final, err := coll.All(ctx)
	require.NoError(t, err)
	require.Len(t, final, 4)

	_, err = coll.Get(ctx, "y")
	require.NoError(t, err)
	_, err = coll.Get(ctx, "x")
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestCollectionCorruptBlobTreatedAsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	st := New(kv, "test")
	coll := NewCollection[widget](st, "widgets")

	require.NoError(t, kv.Set(ctx, st.Key("widgets"), []byte("{not json")))

	records, err := coll.All(ctx)
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestCollectionMissingKeyIsEmpty(t *testing.T) {
	ctx := context.Background()
	coll := newTestCollection(t)

	records, err := coll.All(ctx)
	require.NoError(t, err)
	require.NotNil(t, records)
	require.Empty(t, records)

	count, err := coll.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, count)
}
