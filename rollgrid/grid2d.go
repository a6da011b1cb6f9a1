package rollgrid

import "iter"

// Grid2D is a rolling window of cells over the 2D integer plane.
type Grid2D[T any] struct {
	c *core[T]
}

// New2D creates a grid covering size cells from offset, calling load for each
// coordinate in row major order. It panics if the size is zero on either
// axis, or if the window does not fit in the coordinate range.
func New2D[T any](size Size2, offset Coord2, load func(c Coord2) T, opts ...Option) *Grid2D[T] {
	c, err := newCore(size.vec(), offset.vec(), loaderOf(load, coord2), opts)
	must(err)
	return &Grid2D[T]{c: c}
}

// TryNew2D is New2D with a fallible load. If load fails the cells already
// loaded are dropped and no grid is returned.
func TryNew2D[T any](size Size2, offset Coord2, load func(c Coord2) (T, error), opts ...Option) (*Grid2D[T], error) {
	c, err := newCore(size.vec(), offset.vec(), tryLoaderOf(load, coord2), opts)
	if err != nil {
		return nil, err
	}
	return &Grid2D[T]{c: c}, nil
}

// Translate moves the window by delta. See Reposition.
func (g *Grid2D[T]) Translate(delta Coord2, reload func(from, to Coord2, cell *T)) {
	g.Reposition(g.translated(delta), reload)
}

// TryTranslate is the fallible form of Translate, failing as TryReposition.
func (g *Grid2D[T]) TryTranslate(delta Coord2, reload func(from, to Coord2, cell *T) error) error {
	return g.TryReposition(g.translated(delta), reload)
}

func (g *Grid2D[T]) translated(delta Coord2) Coord2 {
	v := g.c.sp.offset.add(delta.vec())
	checkSpace(g.c.sp.size, v)
	return coord2(v)
}

// Reposition moves the minimum corner of the window to offset. Every cell
// whose coordinate leaves the window is handed to reload together with the
// coordinate that now occupies its slot. Cells that stay in the window are not
// touched.
func (g *Grid2D[T]) Reposition(offset Coord2, reload func(from, to Coord2, cell *T)) {
	must(g.c.reposition(offset.vec(), reloaderOf(reload, coord2)))
}

// TryReposition is the fallible form of Reposition. The window has already
// moved when reload is first called. If reload fails, the cell it failed on
// and every cell not yet reloaded are dropped and left vacant, so no cell
// keeps the value of a coordinate that left the window. Use Vacant and
// TryFillVacant to recover.
func (g *Grid2D[T]) TryReposition(offset Coord2, reload func(from, to Coord2, cell *T) error) error {
	return g.c.reposition(offset.vec(), tryReloaderOf(reload, coord2))
}

// Resize changes the size of the window, keeping the offset.
func (g *Grid2D[T]) Resize(size Size2, m CellManager[Coord2, T]) {
	g.ResizeAndReposition(size, g.Offset(), m)
}

// TryResize is the fallible form of Resize, failing as
// TryResizeAndReposition.
func (g *Grid2D[T]) TryResize(size Size2, m TryCellManager[Coord2, T]) error {
	return g.TryResizeAndReposition(size, g.Offset(), m)
}

// ResizeAndReposition changes the size and offset of the window together.
// Cells whose coordinate leaves the window are unloaded, coordinates entering
// it are loaded. Cells in both the old and new window keep their values.
func (g *Grid2D[T]) ResizeAndReposition(size Size2, offset Coord2, m CellManager[Coord2, T]) {
	must(g.c.resize(size.vec(), offset.vec(), managerOf(m, coord2)))
}

// TryResizeAndReposition is the fallible form of ResizeAndReposition.
//
// If an unload fails the grid keeps its old bounds, and the cells unloaded so
// far are vacant. If a load fails the grid still takes the new bounds, every
// retained cell is kept and the coordinates not yet loaded are vacant. When
// only the offset changes, the cell that failed and every cell not yet swapped
// are vacant. Use Vacant and TryFillVacant to recover.
func (g *Grid2D[T]) TryResizeAndReposition(size Size2, offset Coord2, m TryCellManager[Coord2, T]) error {
	return g.c.resize(size.vec(), offset.vec(), tryManagerOf(m, coord2))
}

// InflateSize grows the window by growth on every side.
func (g *Grid2D[T]) InflateSize(growth Size2, m CellManager[Coord2, T]) {
	size, offset := g.c.inflated(growth.growth())
	must(g.c.resize(size, offset, managerOf(m, coord2)))
}

// TryInflateSize is the fallible form of InflateSize, failing as
// TryResizeAndReposition.
func (g *Grid2D[T]) TryInflateSize(growth Size2, m TryCellManager[Coord2, T]) error {
	size, offset := g.c.inflated(growth.growth())
	return g.c.resize(size, offset, tryManagerOf(m, coord2))
}

// DeflateSize shrinks the window by shrink on every side. It panics if the
// window would be empty.
func (g *Grid2D[T]) DeflateSize(shrink Size2, m CellManager[Coord2, T]) {
	size, offset := g.c.inflated(shrink.growth().neg())
	must(g.c.resize(size, offset, managerOf(m, coord2)))
}

// TryDeflateSize is the fallible form of DeflateSize, failing as
// TryResizeAndReposition.
func (g *Grid2D[T]) TryDeflateSize(shrink Size2, m TryCellManager[Coord2, T]) error {
	size, offset := g.c.inflated(shrink.growth().neg())
	return g.c.resize(size, offset, tryManagerOf(m, coord2))
}

// Vacant returns the number of cells left empty by an aborted Try operation.
func (g *Grid2D[T]) Vacant() int { return g.c.vacant() }

// FillVacant loads every vacant cell.
func (g *Grid2D[T]) FillVacant(load func(c Coord2) T) {
	must(g.c.fillVacant(loaderOf(load, coord2)))
}

// TryFillVacant is the fallible form of FillVacant. It stops at the first
// error, leaving the remaining cells vacant.
func (g *Grid2D[T]) TryFillVacant(load func(c Coord2) (T, error)) error {
	return g.c.fillVacant(tryLoaderOf(load, coord2))
}

// Get returns the cell at c, and false if c is outside the window.
func (g *Grid2D[T]) Get(c Coord2) (T, bool) { return g.c.get(c.vec()) }

// GetPtr returns a pointer to the cell at c, or nil if c is outside the
// window. The pointer is invalidated by any mutating operation.
func (g *Grid2D[T]) GetPtr(c Coord2) *T { return g.c.ptr(c.vec()) }

// Set stores value at c and returns the previous value. It panics if c is
// outside the window.
func (g *Grid2D[T]) Set(c Coord2, value T) (T, bool) { return g.c.set(c.vec(), value) }

// Take removes the cell at c and returns it, leaving the cell vacant. It
// returns false if c is outside the window or the cell is already vacant.
func (g *Grid2D[T]) Take(c Coord2) (T, bool) { return g.c.take(c.vec()) }

// GetOrInsertWith returns a pointer to the cell at c, first storing fn() there
// if the cell is vacant. It panics if c is outside the window.
func (g *Grid2D[T]) GetOrInsertWith(c Coord2, fn func() T) *T {
	return g.c.getOrInsertWith(c.vec(), fn)
}

// GetOrInsert is GetOrInsertWith for a ready made value.
func (g *Grid2D[T]) GetOrInsert(c Coord2, value T) *T {
	return g.c.getOrInsertWith(c.vec(), func() T { return value })
}

// ReplaceWith stores fn(old) in place of the cell at c. It returns false,
// without calling fn, if the cell is vacant, and panics if c is outside the
// window.
func (g *Grid2D[T]) ReplaceWith(c Coord2, fn func(old T) T) bool {
	return g.c.replaceWith(c.vec(), fn)
}

func (g *Grid2D[T]) Contains(c Coord2) bool { return g.c.sp.contains(c.vec()) }

func (g *Grid2D[T]) Bounds() Bounds2D {
	return Bounds2D{Min: g.Offset(), Max: coord2(g.c.sp.max())}
}

func (g *Grid2D[T]) Offset() Coord2 { return coord2(g.c.sp.offset) }
func (g *Grid2D[T]) Size() Size2    { return size2(g.c.sp.size) }
func (g *Grid2D[T]) Width() uint32  { return uint32(g.c.sp.size[axisX]) }
func (g *Grid2D[T]) Height() uint32 { return uint32(g.c.sp.size[axisY]) }

func (g *Grid2D[T]) XMin() int32 { return int32(g.c.sp.offset[axisX]) }
func (g *Grid2D[T]) YMin() int32 { return int32(g.c.sp.offset[axisY]) }

// XMax is exclusive.
func (g *Grid2D[T]) XMax() int32 { return int32(g.c.sp.max()[axisX]) }

// YMax is exclusive.
func (g *Grid2D[T]) YMax() int32 { return int32(g.c.sp.max()[axisY]) }

// Len returns the capacity of the grid.
func (g *Grid2D[T]) Len() int { return g.c.cells.Len() }

// WrapOffset returns the storage index holding the cell at Offset.
func (g *Grid2D[T]) WrapOffset() int { return g.c.sp.wrapIndex() }

// RelativeOffset returns c relative to the minimum corner, reduced modulo the
// size on each axis.
func (g *Grid2D[T]) RelativeOffset(c Coord2) Coord2 {
	return coord2(g.c.sp.relativeOffset(c.vec()))
}

// All yields each cell with its coordinate, in storage order.
func (g *Grid2D[T]) All() iter.Seq2[Coord2, T] {
	return func(yield func(Coord2, T) bool) {
		for i, v := range g.c.cells.All() {
			if !yield(coord2(g.c.sp.fromIndex(i)), v) {
				return
			}
		}
	}
}

// AllPtr is All yielding pointers, for in place mutation.
func (g *Grid2D[T]) AllPtr() iter.Seq2[Coord2, *T] {
	return func(yield func(Coord2, *T) bool) {
		for i := range g.c.cells.All() {
			if !yield(coord2(g.c.sp.fromIndex(i)), g.c.cells.Ptr(i)) {
				return
			}
		}
	}
}

// Close drops every cell. The grid must not be used afterwards.
func (g *Grid2D[T]) Close() { g.c.close() }
