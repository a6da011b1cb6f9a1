package rollgrid

import (
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-rollgrid/fixedarray"
)

// core is the dimension agnostic grid. Grid2D and Grid3D are typed views
// over it.
type core[T any] struct {
	sp    space
	cells *fixedarray.Array[T]
	log   logger.Logger
}

func newCore[T any](size, offset vec, load func(vec) (T, error), opts []Option) (*core[T], error) {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	sp := newSpace(size, offset)

	// With a zero wrap, index order is row major over the bounds.
	cells, err := fixedarray.TryFill(sp.capacity(), func(i int) (T, error) {
		return load(sp.fromIndex(i))
	})
	if err != nil {
		return nil, err
	}
	return &core[T]{sp: sp, cells: cells, log: o.Log}, nil
}

func (g *core[T]) debugf(format string, args ...any) {
	if g.log == nil {
		return
	}
	g.log.Debugf(format, args...)
}

func (g *core[T]) get(c vec) (T, bool) {
	if !g.sp.contains(c) {
		var zero T
		return zero, false
	}
	return g.cells.Get(g.sp.toIndex(c))
}

func (g *core[T]) ptr(c vec) *T {
	if !g.sp.contains(c) {
		return nil
	}
	return g.cells.Ptr(g.sp.toIndex(c))
}

func (g *core[T]) set(c vec, value T) (T, bool) {
	if !g.sp.contains(c) {
		panic(ErrOutOfBounds)
	}
	return g.cells.Replace(g.sp.toIndex(c), value)
}

func (g *core[T]) take(c vec) (T, bool) {
	if !g.sp.contains(c) {
		var zero T
		return zero, false
	}
	i := g.sp.toIndex(c)
	if !g.cells.IsLive(i) {
		var zero T
		return zero, false
	}
	return g.cells.Take(i), true
}

func (g *core[T]) getOrInsertWith(c vec, fn func() T) *T {
	if !g.sp.contains(c) {
		panic(ErrOutOfBounds)
	}
	i := g.sp.toIndex(c)
	if !g.cells.IsLive(i) {
		g.cells.Write(i, fn())
	}
	return g.cells.Ptr(i)
}

func (g *core[T]) replaceWith(c vec, fn func(old T) T) bool {
	if !g.sp.contains(c) {
		panic(ErrOutOfBounds)
	}
	p := g.cells.Ptr(g.sp.toIndex(c))
	if p == nil {
		return false
	}
	*p = fn(*p)
	return true
}

func (g *core[T]) vacant() int { return g.cells.Len() - g.cells.Live() }

// reposition moves the window to offset, handing every live cell whose
// coordinate changed to reload.
//
// Once reload fails no further calls are made. The failing slot and every
// slot still waiting for its reload are dropped, so no cell is left holding
// the value of a coordinate outside the window.
func (g *core[T]) reposition(offset vec, reload reloadFunc[T]) error {
	var reloadErr error
	n, dropped := 0, 0
	// The visit never fails, see reloadErr.
	_ = g.shift(offset, func(from, to vec, i int) error {
		value := g.cells.Ptr(i)
		if value == nil {
			return nil
		}
		if reloadErr == nil {
			n++
			if reloadErr = reload(from, to, value); reloadErr == nil {
				return nil
			}
		}
		g.cells.DropInPlace(i)
		dropped++
		return nil
	})
	if n > 0 {
		g.debugf("reposition: offset=%v, reloaded=%d, dropped=%d", g.sp.offset, n, dropped)
	}
	return reloadErr
}

// shift updates the offset and wrap for a same size move and then visits each
// slot whose coordinate changed. visit receives the coordinate the slot held
// before the move, the coordinate it holds now and its storage index.
//
// When the old and new windows overlap, the newly exposed region is the union
// of one box per non empty subset of the moved axes. Each box takes the
// exposed strip on the axes in its subset and the retained range on the
// others. Boxes are visited in ascending subset order, x being the lowest bit,
// so a 2D move visits the x strip, the y strip and then the corner.
func (g *core[T]) shift(offset vec, visit func(from, to vec, i int) error) error {
	delta := offset.sub(g.sp.offset)
	if delta == (vec{}) {
		return nil
	}
	checkSpace(g.sp.size, offset)

	size := g.sp.size
	overlap := true
	for a := range delta {
		if abs(delta[a]) >= size[a] {
			overlap = false
		}
	}

	g.sp.offset = offset
	top := g.sp.max()

	if !overlap {
		// Every slot changes meaning. The wrap is left alone, which keeps
		// each slot at the same local position.
		return eachInBox(offset, top, func(c vec) error {
			return visit(c.sub(delta), c, g.sp.toIndex(c))
		})
	}

	var retainedLo, retainedHi, exposedLo, exposedHi vec
	for a := range delta {
		retainedLo[a], retainedHi[a] = offset[a], top[a]
		switch {
		case delta[a] > 0:
			retainedHi[a] = top[a] - delta[a]
			exposedLo[a], exposedHi[a] = retainedHi[a], top[a]
		case delta[a] < 0:
			retainedLo[a] = offset[a] - delta[a]
			exposedLo[a], exposedHi[a] = offset[a], retainedLo[a]
		}
		g.sp.wrap[a] = mod(g.sp.wrap[a]+delta[a], size[a])
	}

	for subset := 1; subset < 1<<axes; subset++ {
		var lo, hi, back vec
		empty := false
		for a := range delta {
			if subset&(1<<a) == 0 {
				lo[a], hi[a] = retainedLo[a], retainedHi[a]
				continue
			}
			if delta[a] == 0 {
				empty = true
				break
			}
			lo[a], hi[a] = exposedLo[a], exposedHi[a]
			back[a] = sign(delta[a]) * size[a]
		}
		if empty {
			continue
		}
		err := eachInBox(lo, hi, func(c vec) error {
			return visit(c.sub(back), c, g.sp.toIndex(c))
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// resize changes the window to size and offset. Coordinates leaving the
// window are unloaded, coordinates entering it are loaded and the remainder
// keep their values.
func (g *core[T]) resize(size, offset vec, m manager[T]) error {
	if size == g.sp.size {
		var swapErr error
		n, dropped := 0, 0
		// As for reposition, slots not swapped after a failure are dropped.
		_ = g.shift(offset, func(from, to vec, i int) error {
			if swapErr == nil {
				n++
				swapErr = g.swap(from, to, i, m)
				return nil
			}
			if g.cells.IsLive(i) {
				g.cells.DropInPlace(i)
				dropped++
			}
			return nil
		})
		if n > 0 {
			g.debugf("resize: offset=%v, swapped=%d, dropped=%d", offset, n, dropped)
		}
		return swapErr
	}
	next := newSpace(size, offset)

	unloaded := 0
	err := eachInBox(g.sp.offset, g.sp.max(), func(c vec) error {
		if next.contains(c) {
			return nil
		}
		i := g.sp.toIndex(c)
		if !g.cells.IsLive(i) {
			return nil
		}
		unloaded++
		return m.unload(c, g.cells.Take(i))
	})
	if err != nil {
		// The old bounds are kept. Cells already unloaded stay vacant.
		return err
	}

	cells := fixedarray.New[T](next.capacity())
	var loadErr error
	loaded, kept := 0, 0
	// The visit never fails. A load error is held in loadErr so the retained
	// cells are still transplanted.
	_ = eachInBox(next.offset, next.max(), func(c vec) error {
		j := next.toIndex(c)
		if g.sp.contains(c) {
			if i := g.sp.toIndex(c); g.cells.IsLive(i) {
				g.cells.Transplant(cells, i, j)
				kept++
			}
			return nil
		}
		if loadErr != nil {
			return nil
		}
		value, err := m.load(c)
		if err != nil {
			loadErr = err
			return nil
		}
		cells.Write(j, value)
		loaded++
		return nil
	})

	old := g.cells
	g.cells = cells
	g.sp = next
	old.Dealloc()

	g.debugf("resize: size=%v, offset=%v, kept=%d, loaded=%d, unloaded=%d",
		size, offset, kept, loaded, unloaded)
	return loadErr
}

// swap unloads the value slot i held for from, if any, and loads a fresh
// value for to into the same slot.
func (g *core[T]) swap(from, to vec, i int, m manager[T]) error {
	if g.cells.IsLive(i) {
		if err := m.unload(from, g.cells.Take(i)); err != nil {
			return err
		}
	}
	value, err := m.load(to)
	if err != nil {
		return err
	}
	g.cells.Write(i, value)
	return nil
}

// inflated returns the size and offset grown by growth on both sides of every
// axis. A negative growth shrinks.
func (g *core[T]) inflated(growth vec) (vec, vec) {
	size, offset := g.sp.size, g.sp.offset
	for a := range growth {
		size[a] += 2 * growth[a]
		offset[a] -= growth[a]
	}
	return size, offset
}

// fillVacant loads every vacant slot in the current bounds.
func (g *core[T]) fillVacant(load func(vec) (T, error)) error {
	if g.vacant() == 0 {
		return nil
	}
	return eachInBox(g.sp.offset, g.sp.max(), func(c vec) error {
		i := g.sp.toIndex(c)
		if g.cells.IsLive(i) {
			return nil
		}
		value, err := load(c)
		if err != nil {
			return err
		}
		g.cells.Write(i, value)
		return nil
	})
}

func (g *core[T]) close() {
	g.cells.Dealloc()
}
