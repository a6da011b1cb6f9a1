package rollgrid

/*

# Rolling grids

A rolling grid is a fixed capacity window over an unbounded 2D or 3D integer
coordinate space. Typical uses are chunk buffers for large worlds and tile
caches: the window follows a point of interest and only the cells entering or
leaving it are touched.

## Toroidal addressing

Storage never moves. Each axis carries a wrap offset, and a coordinate maps to
its slot by rolling its local offset from the minimum corner:

	l = (c - offset + wrap) mod size          (per axis)
	index = ly*w*d + lz*w + lx                (d is 1 for 2D)

Moving the window by a delta smaller than the window on every axis changes
only the offset and the wrap. Consider a 4x4 window at (0,0) moved to (1,2):

	      x: 0 1 2 3 4            x: 0 1 2 3 4
	y 0    [ . . . . ]          y 0
	  1    [ . . . . ]            1
	  2    [ . . . . ]            2      [ . . . X ]
	  3    [ . . . . ]            3      [ . . . X ]
	  4                           4      [ Y Y Y C ]
	  5                           5      [ Y Y Y C ]

Ten slots change meaning. Each is reinterpreted in place: the slot that held
(0,2) now holds (4,2), the slot that held (1,0) now holds (1,4), and so on.
The caller's reload sees each (old, new) pair exactly once, strips first along
x (X), then along y (Y), then the corner (C). In 3D the exposed region is up
to seven boxes, visited in the same ascending axis subset order. A move of a
full window or more on any axis reloads every cell.

## Resizing

A size change allocates fresh storage with a zero wrap. Cells outside the new
window are unloaded first, then the new window is walked in storage order,
transplanting cells that were already present and loading the rest. Inflate
and deflate grow or shrink the window equally on both sides of each axis.

## Cell management

The grid has no opinion on what a cell is. Loading, unloading and reloading
are delegated to a CellManager (or a plain reload function for moves) that is
borrowed for a single call. The Try forms accept a TryCellManager whose first
error aborts the operation.

An aborted operation is applied partially and is not rolled back. The grid
stays usable: cells that could not be produced are vacant, read as absent,
and can be repopulated with TryFillVacant. A cell whose reload failed, or was
never attempted, is dropped and left vacant, so a live cell always holds the
value for its own coordinate.

## Limits

Coordinates are int32, sizes uint32 and the capacity is at most
math.MaxInt32. A zero sized axis, a capacity over the limit, or a window whose
exclusive maximum corner overflows int32 is a programming error and panics
with ErrZeroSize, ErrSizeTooLarge or ErrOffsetOutOfRange.

Grids are not safe for concurrent use.
*/
