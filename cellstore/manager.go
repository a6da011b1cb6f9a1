package cellstore

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-rollgrid/rollgrid"
	"github.com/google/uuid"

	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
)

// layout ties a coordinate type to its storage paths.
type layout[C comparable] struct {
	path       func(prefix string, c C) string
	components func(c C) []int32
	parse      func(storagePath string) (C, error)
}

var layout2D = layout[rollgrid.Coord2]{
	path:       FmtCellPath2D,
	components: func(c rollgrid.Coord2) []int32 { return []int32{c.X, c.Y} },
	parse:      Coord2FromPath,
}

var layout3D = layout[rollgrid.Coord3]{
	path:       FmtCellPath3D,
	components: func(c rollgrid.Coord3) []int32 { return []int32{c.X, c.Y, c.Z} },
	parse:      Coord3FromPath,
}

// Stats counts the work a Manager has done.
type Stats struct {
	// Restored cells were decoded from the store.
	Restored int
	// Generated cells had nothing stored and came from the generator.
	Generated int
	// Stored cells were encoded and written.
	Stored int
}

// Manager is a rollgrid.TryCellManager that persists cells leaving a grid and
// restores them when their coordinate comes back. Coordinates that were never
// stored are produced by the generator.
//
// The context given at construction bounds every store operation, the cell
// manager interface has no per call context. A Manager is not safe for
// concurrent use, though the store it wraps may be shared.
type Manager[C comparable, T any] struct {
	ctx      context.Context
	log      logger.Logger
	store    ObjectStore
	codec    dtcbor.CBORCodec
	prefix   string
	layout   layout[C]
	generate func(c C) (T, error)
	stats    Stats
}

var (
	_ rollgrid.TryCellManager[rollgrid.Coord2, int] = (*Manager[rollgrid.Coord2, int])(nil)
	_ rollgrid.TryCellManager[rollgrid.Coord3, int] = (*Manager[rollgrid.Coord3, int])(nil)
)

func NewManager2D[T any](
	ctx context.Context, store ObjectStore, gridID uuid.UUID,
	generate func(c rollgrid.Coord2) (T, error), opts ...Option,
) (*Manager[rollgrid.Coord2, T], error) {
	return newManager(ctx, store, gridID, layout2D, generate, opts)
}

func NewManager3D[T any](
	ctx context.Context, store ObjectStore, gridID uuid.UUID,
	generate func(c rollgrid.Coord3) (T, error), opts ...Option,
) (*Manager[rollgrid.Coord3, T], error) {
	return newManager(ctx, store, gridID, layout3D, generate, opts)
}

func newManager[C comparable, T any](
	ctx context.Context, store ObjectStore, gridID uuid.UUID,
	l layout[C], generate func(c C) (T, error), opts []Option,
) (*Manager[C, T], error) {
	if store == nil {
		return nil, ErrStoreNotProvided
	}
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	m := &Manager[C, T]{
		ctx:      ctx,
		log:      o.Log,
		store:    store,
		prefix:   StoragePrefix(gridID),
		layout:   l,
		generate: generate,
	}
	if o.CBORCodec != nil {
		m.codec = *o.CBORCodec
		return m, nil
	}
	var err error
	if m.codec, err = NewCellCodec(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manager[C, T]) debugf(format string, args ...any) {
	if m.log == nil {
		return
	}
	m.log.Debugf(format, args...)
}

// Prefix returns the storage prefix of the managed grid.
func (m *Manager[C, T]) Prefix() string { return m.prefix }

func (m *Manager[C, T]) Stats() Stats { return m.stats }

// Load restores the cell stored for c, or generates one if nothing is stored.
func (m *Manager[C, T]) Load(c C) (T, error) {
	var zero T
	storagePath := m.layout.path(m.prefix, c)
	data, err := m.store.Get(m.ctx, storagePath)
	if errors.Is(err, ErrNotFound) {
		if m.generate == nil {
			return zero, err
		}
		value, err := m.generate(c)
		if err != nil {
			return zero, err
		}
		m.stats.Generated++
		return value, nil
	}
	if err != nil {
		return zero, err
	}

	var rec cellRecord[T]
	if err = m.codec.UnmarshalInto(data, &rec); err != nil {
		return zero, fmt.Errorf("cellstore: decoding %s: %w", storagePath, err)
	}
	if !slices.Equal(rec.Coord, m.layout.components(c)) {
		return zero, fmt.Errorf("%w: %s holds %v", ErrCoordMismatch, storagePath, rec.Coord)
	}
	m.stats.Restored++
	m.debugf("cellstore: restored %s", storagePath)
	return rec.Value, nil
}

// Unload stores value as the cell for c.
func (m *Manager[C, T]) Unload(c C, value T) error {
	storagePath := m.layout.path(m.prefix, c)
	data, err := m.codec.MarshalCBOR(cellRecord[T]{Coord: m.layout.components(c), Value: value})
	if err != nil {
		return fmt.Errorf("cellstore: encoding %s: %w", storagePath, err)
	}
	if err = m.store.Put(m.ctx, storagePath, data); err != nil {
		return err
	}
	m.stats.Stored++
	m.debugf("cellstore: stored %s", storagePath)
	return nil
}

// Reload stores the slot's value for from and replaces it with the cell for
// to. On error the slot is left unchanged, and a grid calling Reload through
// TryTranslate or TryReposition then vacates it.
func (m *Manager[C, T]) Reload(from, to C, value *T) error {
	if err := m.Unload(from, *value); err != nil {
		return err
	}
	next, err := m.Load(to)
	if err != nil {
		return err
	}
	*value = next
	return nil
}

// Persist stores every cell yielded by cells, typically a grid's All, without
// removing anything from the grid.
func (m *Manager[C, T]) Persist(cells iter.Seq2[C, T]) error {
	for c, value := range cells {
		if err := m.Unload(c, value); err != nil {
			return err
		}
	}
	return nil
}

// Stored lists the coordinates that have a stored cell.
func (m *Manager[C, T]) Stored() ([]C, error) {
	paths, err := m.store.List(m.ctx, m.prefix)
	if err != nil {
		return nil, err
	}
	coords := make([]C, 0, len(paths))
	for _, p := range paths {
		c, err := m.layout.parse(p)
		if err != nil {
			return nil, err
		}
		coords = append(coords, c)
	}
	return coords, nil
}

// Forget deletes the stored cell for c, if there is one.
func (m *Manager[C, T]) Forget(c C) error {
	err := m.store.Delete(m.ctx, m.layout.path(m.prefix, c))
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}
