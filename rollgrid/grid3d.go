package rollgrid

import "iter"

// Grid3D is a rolling window of cells over the 3D integer lattice.
type Grid3D[T any] struct {
	c *core[T]
}

// New3D creates a grid covering size cells from offset, calling load for each
// coordinate with x fastest, then z, then y. It panics if the size is zero on
// any axis, or if the window does not fit in the coordinate range.
func New3D[T any](size Size3, offset Coord3, load func(c Coord3) T, opts ...Option) *Grid3D[T] {
	c, err := newCore(size.vec(), offset.vec(), loaderOf(load, coord3), opts)
	must(err)
	return &Grid3D[T]{c: c}
}

// TryNew3D is New3D with a fallible load. If load fails the cells already
// loaded are dropped and no grid is returned.
func TryNew3D[T any](size Size3, offset Coord3, load func(c Coord3) (T, error), opts ...Option) (*Grid3D[T], error) {
	c, err := newCore(size.vec(), offset.vec(), tryLoaderOf(load, coord3), opts)
	if err != nil {
		return nil, err
	}
	return &Grid3D[T]{c: c}, nil
}

// Translate moves the window by delta. See Reposition.
func (g *Grid3D[T]) Translate(delta Coord3, reload func(from, to Coord3, cell *T)) {
	g.Reposition(g.translated(delta), reload)
}

// TryTranslate is the fallible form of Translate, failing as TryReposition.
func (g *Grid3D[T]) TryTranslate(delta Coord3, reload func(from, to Coord3, cell *T) error) error {
	return g.TryReposition(g.translated(delta), reload)
}

func (g *Grid3D[T]) translated(delta Coord3) Coord3 {
	v := g.c.sp.offset.add(delta.vec())
	checkSpace(g.c.sp.size, v)
	return coord3(v)
}

// Reposition moves the minimum corner of the window to offset. A diagonal
// move reloads up to seven boxes, see Grid2D.Reposition.
func (g *Grid3D[T]) Reposition(offset Coord3, reload func(from, to Coord3, cell *T)) {
	must(g.c.reposition(offset.vec(), reloaderOf(reload, coord3)))
}

// TryReposition has the same failure behaviour as Grid2D.TryReposition.
func (g *Grid3D[T]) TryReposition(offset Coord3, reload func(from, to Coord3, cell *T) error) error {
	return g.c.reposition(offset.vec(), tryReloaderOf(reload, coord3))
}

// Resize changes the size of the window, keeping the offset.
func (g *Grid3D[T]) Resize(size Size3, m CellManager[Coord3, T]) {
	g.ResizeAndReposition(size, g.Offset(), m)
}

// TryResize is the fallible form of Resize, failing as
// TryResizeAndReposition.
func (g *Grid3D[T]) TryResize(size Size3, m TryCellManager[Coord3, T]) error {
	return g.TryResizeAndReposition(size, g.Offset(), m)
}

func (g *Grid3D[T]) ResizeAndReposition(size Size3, offset Coord3, m CellManager[Coord3, T]) {
	must(g.c.resize(size.vec(), offset.vec(), managerOf(m, coord3)))
}

// TryResizeAndReposition has the same failure behaviour as
// Grid2D.TryResizeAndReposition.
func (g *Grid3D[T]) TryResizeAndReposition(size Size3, offset Coord3, m TryCellManager[Coord3, T]) error {
	return g.c.resize(size.vec(), offset.vec(), tryManagerOf(m, coord3))
}

// InflateSize grows the window by growth on every side.
func (g *Grid3D[T]) InflateSize(growth Size3, m CellManager[Coord3, T]) {
	size, offset := g.c.inflated(growth.growth())
	must(g.c.resize(size, offset, managerOf(m, coord3)))
}

// TryInflateSize is the fallible form of InflateSize, failing as
// TryResizeAndReposition.
func (g *Grid3D[T]) TryInflateSize(growth Size3, m TryCellManager[Coord3, T]) error {
	size, offset := g.c.inflated(growth.growth())
	return g.c.resize(size, offset, tryManagerOf(m, coord3))
}

// DeflateSize shrinks the window by shrink on every side. It panics if the
// window would be empty.
func (g *Grid3D[T]) DeflateSize(shrink Size3, m CellManager[Coord3, T]) {
	size, offset := g.c.inflated(shrink.growth().neg())
	must(g.c.resize(size, offset, managerOf(m, coord3)))
}

// TryDeflateSize is the fallible form of DeflateSize, failing as
// TryResizeAndReposition.
func (g *Grid3D[T]) TryDeflateSize(shrink Size3, m TryCellManager[Coord3, T]) error {
	size, offset := g.c.inflated(shrink.growth().neg())
	return g.c.resize(size, offset, tryManagerOf(m, coord3))
}

// Vacant returns the number of cells left empty by an aborted Try operation.
func (g *Grid3D[T]) Vacant() int { return g.c.vacant() }

// FillVacant loads every vacant cell.
func (g *Grid3D[T]) FillVacant(load func(c Coord3) T) {
	must(g.c.fillVacant(loaderOf(load, coord3)))
}

// TryFillVacant is the fallible form of FillVacant. It stops at the first
// error, leaving the remaining cells vacant.
func (g *Grid3D[T]) TryFillVacant(load func(c Coord3) (T, error)) error {
	return g.c.fillVacant(tryLoaderOf(load, coord3))
}

// Get returns the cell at c, and false if c is outside the window.
func (g *Grid3D[T]) Get(c Coord3) (T, bool) { return g.c.get(c.vec()) }

func (g *Grid3D[T]) GetPtr(c Coord3) *T { return g.c.ptr(c.vec()) }

// Set stores value at c and returns the previous value. It panics if c is
// outside the window.
func (g *Grid3D[T]) Set(c Coord3, value T) (T, bool) { return g.c.set(c.vec(), value) }

// Take removes the cell at c, see Grid2D.Take.
func (g *Grid3D[T]) Take(c Coord3) (T, bool) { return g.c.take(c.vec()) }

func (g *Grid3D[T]) GetOrInsertWith(c Coord3, fn func() T) *T {
	return g.c.getOrInsertWith(c.vec(), fn)
}

func (g *Grid3D[T]) GetOrInsert(c Coord3, value T) *T {
	return g.c.getOrInsertWith(c.vec(), func() T { return value })
}

// ReplaceWith stores fn(old) in place of the cell at c, see Grid2D.ReplaceWith.
func (g *Grid3D[T]) ReplaceWith(c Coord3, fn func(old T) T) bool {
	return g.c.replaceWith(c.vec(), fn)
}

func (g *Grid3D[T]) Contains(c Coord3) bool { return g.c.sp.contains(c.vec()) }

func (g *Grid3D[T]) Bounds() Bounds3D {
	return Bounds3D{Min: g.Offset(), Max: coord3(g.c.sp.max())}
}

func (g *Grid3D[T]) Offset() Coord3 { return coord3(g.c.sp.offset) }
func (g *Grid3D[T]) Size() Size3    { return size3(g.c.sp.size) }
func (g *Grid3D[T]) Width() uint32  { return uint32(g.c.sp.size[axisX]) }
func (g *Grid3D[T]) Height() uint32 { return uint32(g.c.sp.size[axisY]) }
func (g *Grid3D[T]) Depth() uint32  { return uint32(g.c.sp.size[axisZ]) }

func (g *Grid3D[T]) XMin() int32 { return int32(g.c.sp.offset[axisX]) }
func (g *Grid3D[T]) YMin() int32 { return int32(g.c.sp.offset[axisY]) }
func (g *Grid3D[T]) ZMin() int32 { return int32(g.c.sp.offset[axisZ]) }

// XMax is exclusive.
func (g *Grid3D[T]) XMax() int32 { return int32(g.c.sp.max()[axisX]) }

// YMax is exclusive.
func (g *Grid3D[T]) YMax() int32 { return int32(g.c.sp.max()[axisY]) }

// ZMax is exclusive.
func (g *Grid3D[T]) ZMax() int32 { return int32(g.c.sp.max()[axisZ]) }

// Len returns the capacity of the grid.
func (g *Grid3D[T]) Len() int { return g.c.cells.Len() }

// WrapOffset returns the storage index holding the cell at Offset.
func (g *Grid3D[T]) WrapOffset() int { return g.c.sp.wrapIndex() }

func (g *Grid3D[T]) RelativeOffset(c Coord3) Coord3 {
	return coord3(g.c.sp.relativeOffset(c.vec()))
}

// All yields each cell with its coordinate, in storage order.
func (g *Grid3D[T]) All() iter.Seq2[Coord3, T] {
	return func(yield func(Coord3, T) bool) {
		for i, v := range g.c.cells.All() {
			if !yield(coord3(g.c.sp.fromIndex(i)), v) {
				return
			}
		}
	}
}

func (g *Grid3D[T]) AllPtr() iter.Seq2[Coord3, *T] {
	return func(yield func(Coord3, *T) bool) {
		for i := range g.c.cells.All() {
			if !yield(coord3(g.c.sp.fromIndex(i)), g.c.cells.Ptr(i)) {
				return
			}
		}
	}
}

// Close drops every cell. The grid must not be used afterwards.
func (g *Grid3D[T]) Close() { g.c.close() }
