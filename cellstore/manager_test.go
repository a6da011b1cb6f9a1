package cellstore

import (
	"context"
	"errors"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-rollgrid/rollgrid"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tile struct {
	Kind   string `cbor:"1,keyasint"`
	Height int64  `cbor:"2,keyasint"`
}

func genTile(c rollgrid.Coord2) (tile, error) {
	return tile{Kind: "gen", Height: int64(c.X)*100 + int64(c.Y)}, nil
}

var testGridID = uuid.MustParse("01947000-3456-780f-bfa9-29881e3bac88")

func newTestManager(t *testing.T, store ObjectStore) *Manager[rollgrid.Coord2, tile] {
	t.Helper()
	m, err := NewManager2D(context.Background(), store, testGridID, genTile)
	require.NoError(t, err)
	return m
}

func TestManagerTranslateAwayAndBack(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	m, err := NewManager2D(
		context.Background(), NewMemoryStore(), testGridID, genTile,
		WithLogger(logger.Sugar.WithServiceName("TestManagerTranslateAwayAndBack")))
	require.NoError(t, err)

	g, err := rollgrid.TryNew2D(rollgrid.Size2{W: 4, H: 4}, rollgrid.Coord2{}, m.Load)
	require.NoError(t, err)
	assert.Equal(t, Stats{Generated: 16}, m.Stats())

	g.GetPtr(rollgrid.Coord2{}).Kind = "edited"

	require.NoError(t, g.TryTranslate(rollgrid.Coord2{X: 4}, m.Reload))
	assert.Equal(t, Stats{Generated: 32, Stored: 16}, m.Stats())
	v, ok := g.Get(rollgrid.Coord2{X: 4, Y: 1})
	require.True(t, ok)
	assert.Equal(t, tile{Kind: "gen", Height: 401}, v)

	require.NoError(t, g.TryTranslate(rollgrid.Coord2{X: -4}, m.Reload))
	assert.Equal(t, Stats{Restored: 16, Generated: 32, Stored: 32}, m.Stats())

	v, ok = g.Get(rollgrid.Coord2{})
	require.True(t, ok)
	assert.Equal(t, tile{Kind: "edited", Height: 0}, v)
	v, ok = g.Get(rollgrid.Coord2{X: 1, Y: 2})
	require.True(t, ok)
	assert.Equal(t, tile{Kind: "gen", Height: 102}, v)

	stored, err := m.Stored()
	require.NoError(t, err)
	var want []rollgrid.Coord2
	for c := range rollgrid.NewBounds2D(rollgrid.Coord2{}, rollgrid.Coord2{X: 8, Y: 4}).All() {
		want = append(want, c)
	}
	assert.ElementsMatch(t, want, stored)
}

func TestManagerOverlappingTranslate(t *testing.T) {
	m := newTestManager(t, NewMemoryStore())
	g, err := rollgrid.TryNew2D(rollgrid.Size2{W: 4, H: 4}, rollgrid.Coord2{}, m.Load)
	require.NoError(t, err)

	for y := int32(0); y < 4; y++ {
		g.GetPtr(rollgrid.Coord2{Y: y}).Kind = "left edge"
	}

	require.NoError(t, g.TryTranslate(rollgrid.Coord2{X: 1}, m.Reload))
	assert.Equal(t, Stats{Generated: 20, Stored: 4}, m.Stats())
	assert.False(t, g.Contains(rollgrid.Coord2{}))

	require.NoError(t, g.TryTranslate(rollgrid.Coord2{X: -1}, m.Reload))
	assert.Equal(t, Stats{Restored: 4, Generated: 20, Stored: 8}, m.Stats())
	for y := int32(0); y < 4; y++ {
		v, ok := g.Get(rollgrid.Coord2{Y: y})
		require.True(t, ok)
		assert.Equal(t, "left edge", v.Kind)
	}
	assert.Equal(t, 0, g.Vacant())
}

func TestManagerResize(t *testing.T) {
	m := newTestManager(t, NewMemoryStore())
	g, err := rollgrid.TryNew2D(rollgrid.Size2{W: 4, H: 4}, rollgrid.Coord2{}, m.Load)
	require.NoError(t, err)
	g.GetPtr(rollgrid.Coord2{X: 2, Y: 2}).Height = -1

	require.NoError(t, g.TryResize(rollgrid.Size2{W: 2, H: 2}, m))
	assert.Equal(t, Stats{Generated: 16, Stored: 12}, m.Stats())
	assert.Equal(t, 4, g.Len())

	// [-1,3) x [-1,3) takes back 5 of the 12 stored cells.
	require.NoError(t, g.TryInflateSize(rollgrid.Size2{W: 1, H: 1}, m))
	assert.Equal(t, Stats{Restored: 5, Generated: 23, Stored: 12}, m.Stats())
	assert.Equal(t, rollgrid.Coord2{X: -1, Y: -1}, g.Offset())

	v, ok := g.Get(rollgrid.Coord2{X: 2, Y: 2})
	require.True(t, ok)
	assert.Equal(t, int64(-1), v.Height)
	v, ok = g.Get(rollgrid.Coord2{X: -1, Y: 0})
	require.True(t, ok)
	assert.Equal(t, int64(-100), v.Height)
}

func TestManagerCoordMismatch(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	m := newTestManager(t, store)

	require.NoError(t, m.Unload(rollgrid.Coord2{X: 1, Y: 1}, tile{Kind: "misplaced"}))
	data, err := store.Get(ctx, FmtCellPath2D(m.Prefix(), rollgrid.Coord2{X: 1, Y: 1}))
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, FmtCellPath2D(m.Prefix(), rollgrid.Coord2{}), data))

	_, err = m.Load(rollgrid.Coord2{})
	require.ErrorIs(t, err, ErrCoordMismatch)

	v, err := m.Load(rollgrid.Coord2{X: 1, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, tile{Kind: "misplaced"}, v)
}

func TestManagerCorruptCell(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	m := newTestManager(t, store)
	require.NoError(t, store.Put(ctx, FmtCellPath2D(m.Prefix(), rollgrid.Coord2{}), []byte{0xff, 0x00}))

	_, err := rollgrid.TryNew2D(rollgrid.Size2{W: 2, H: 2}, rollgrid.Coord2{}, m.Load)
	require.Error(t, err)
}

func TestManagerGenerateError(t *testing.T) {
	errNoTerrain := errors.New("no terrain")
	m, err := NewManager2D(context.Background(), NewMemoryStore(), testGridID,
		func(c rollgrid.Coord2) (tile, error) {
			if c.X == 2 {
				return tile{}, errNoTerrain
			}
			return genTile(c)
		})
	require.NoError(t, err)

	_, err = rollgrid.TryNew2D(rollgrid.Size2{W: 4, H: 1}, rollgrid.Coord2{}, m.Load)
	require.ErrorIs(t, err, errNoTerrain)
	assert.Equal(t, Stats{Generated: 2}, m.Stats())
}

func TestManagerWithoutGenerator(t *testing.T) {
	m, err := NewManager2D[tile](context.Background(), NewMemoryStore(), testGridID, nil)
	require.NoError(t, err)
	_, err = m.Load(rollgrid.Coord2{})
	require.ErrorIs(t, err, ErrNotFound)

	_, err = NewManager2D(context.Background(), nil, testGridID, genTile)
	require.ErrorIs(t, err, ErrStoreNotProvided)
}

func TestManagerPersistAndForget(t *testing.T) {
	m := newTestManager(t, NewMemoryStore())
	g, err := rollgrid.TryNew2D(rollgrid.Size2{W: 3, H: 2}, rollgrid.Coord2{X: -1}, m.Load)
	require.NoError(t, err)

	require.NoError(t, m.Persist(g.All()))
	assert.Equal(t, 6, m.Stats().Stored)
	assert.Equal(t, 6, g.Len())

	require.NoError(t, m.Forget(rollgrid.Coord2{X: -1}))
	require.NoError(t, m.Forget(rollgrid.Coord2{X: -1}))
	stored, err := m.Stored()
	require.NoError(t, err)
	assert.Len(t, stored, 5)
	assert.NotContains(t, stored, rollgrid.Coord2{X: -1})
}

func TestManagerSurvivesRestart(t *testing.T) {
	root := t.TempDir()

	store, err := NewDirStore(root)
	require.NoError(t, err)
	m := newTestManager(t, store)
	g, err := rollgrid.TryNew2D(rollgrid.Size2{W: 2, H: 2}, rollgrid.Coord2{X: 10, Y: 10}, m.Load)
	require.NoError(t, err)
	g.GetPtr(rollgrid.Coord2{X: 11, Y: 10}).Kind = "built"
	require.NoError(t, m.Persist(g.All()))
	g.Close()

	store, err = NewDirStore(root)
	require.NoError(t, err)
	m = newTestManager(t, store)
	g, err = rollgrid.TryNew2D(rollgrid.Size2{W: 2, H: 2}, rollgrid.Coord2{X: 10, Y: 10}, m.Load)
	require.NoError(t, err)
	assert.Equal(t, Stats{Restored: 4}, m.Stats())

	v, ok := g.Get(rollgrid.Coord2{X: 11, Y: 10})
	require.True(t, ok)
	assert.Equal(t, tile{Kind: "built", Height: 1110}, v)
}

func TestManager3D(t *testing.T) {
	type voxel struct {
		Solid bool `cbor:"1,keyasint"`
	}
	m, err := NewManager3D(context.Background(), NewMemoryStore(), testGridID,
		func(c rollgrid.Coord3) (voxel, error) { return voxel{Solid: c.Y < 0}, nil })
	require.NoError(t, err)

	g, err := rollgrid.TryNew3D(rollgrid.Size3{W: 2, H: 2, D: 2}, rollgrid.Coord3{Y: -1}, m.Load)
	require.NoError(t, err)
	g.GetPtr(rollgrid.Coord3{X: 1, Y: 0, Z: 1}).Solid = true

	require.NoError(t, g.TryTranslate(rollgrid.Coord3{Z: 1}, m.Reload))
	assert.Equal(t, Stats{Generated: 12, Stored: 4}, m.Stats())
	require.NoError(t, g.TryTranslate(rollgrid.Coord3{Z: 2}, m.Reload))
	require.NoError(t, g.TryReposition(rollgrid.Coord3{Y: -1}, m.Reload))

	v, ok := g.Get(rollgrid.Coord3{X: 1, Y: 0, Z: 1})
	require.True(t, ok)
	assert.True(t, v.Solid)
	v, ok = g.Get(rollgrid.Coord3{X: 1, Y: 0, Z: 0})
	require.True(t, ok)
	assert.False(t, v.Solid)

	stored, err := m.Stored()
	require.NoError(t, err)
	assert.Contains(t, stored, rollgrid.Coord3{X: 1, Y: -1, Z: 4})
}

func TestManagerFailedReloadLeavesNoStaleCell(t *testing.T) {
	errBoom := errors.New("boom")
	fail := true
	m, err := NewManager2D(context.Background(), NewMemoryStore(), testGridID,
		func(c rollgrid.Coord2) (tile, error) {
			if fail && c == (rollgrid.Coord2{X: 4}) {
				return tile{}, errBoom
			}
			return genTile(c)
		})
	require.NoError(t, err)

	g, err := rollgrid.TryNew2D(rollgrid.Size2{W: 4, H: 4}, rollgrid.Coord2{}, m.Load)
	require.NoError(t, err)

	err = g.TryTranslate(rollgrid.Coord2{X: 1}, m.Reload)
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, 4, g.Vacant())
	for y := int32(0); y < 4; y++ {
		_, ok := g.Get(rollgrid.Coord2{X: 4, Y: y})
		assert.False(t, ok)
	}

	require.NoError(t, m.Persist(g.All()))
	stored, err := m.Stored()
	require.NoError(t, err)
	assert.Len(t, stored, 13)
	assert.Contains(t, stored, rollgrid.Coord2{})
	assert.NotContains(t, stored, rollgrid.Coord2{X: 4})

	fail = false
	v, err := m.Load(rollgrid.Coord2{X: 4})
	require.NoError(t, err)
	assert.Equal(t, tile{Kind: "gen", Height: 400}, v)

	require.NoError(t, g.TryFillVacant(m.Load))
	assert.Equal(t, 0, g.Vacant())
	v, ok := g.Get(rollgrid.Coord2{X: 4, Y: 1})
	require.True(t, ok)
	assert.Equal(t, tile{Kind: "gen", Height: 401}, v)
}
