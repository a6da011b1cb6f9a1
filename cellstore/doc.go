// Package cellstore persists rolling grid cells to a path based object store.
//
// A Manager implements rollgrid.TryCellManager. Cells leaving a grid are
// CBOR encoded and written under
//
//	v1/rollgrids/{grid uuid}/{x}.{y}.cell
//	v1/rollgrids/{grid uuid}/{x}.{y}.{z}.cell
//
// and are decoded again when their coordinate re-enters the grid.
// Coordinates with nothing stored are produced by a generator.
package cellstore
