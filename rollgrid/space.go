package rollgrid

import (
	"fmt"
	"math"
)

const (
	axisX = iota
	axisY
	axisZ
	axes
)

// vec is the axis generic form of a coordinate or size. Two dimensional grids
// use a z size of 1 and a z offset of 0.
type vec [axes]int64

func (v vec) add(o vec) vec {
	for a := range v {
		v[a] += o[a]
	}
	return v
}

func (v vec) sub(o vec) vec {
	for a := range v {
		v[a] -= o[a]
	}
	return v
}

func (v vec) neg() vec {
	for a := range v {
		v[a] = -v[a]
	}
	return v
}

// space maps world coordinates onto storage indices.
//
// The storage layout is x fastest, then z, then y:
//
//	index = ly*w*d + lz*w + lx
//
// where each local component is rolled by the wrap offset for its axis,
//
//	l = (c - offset + wrap) mod size
//
// A reposition only changes offset and wrap, the cells never move.
type space struct {
	size   vec
	offset vec
	wrap   vec
}

// checkSpace panics unless size and offset describe a valid window, and
// returns the capacity.
func checkSpace(size, offset vec) int {
	volume := int64(1)
	for a := range size {
		if size[a] <= 0 {
			panic(ErrZeroSize)
		}
		var ok bool
		if volume, ok = mulCapacity(volume, size[a]); !ok {
			panic(fmt.Errorf("%w: %v", ErrSizeTooLarge, size))
		}
		if offset[a] < math.MinInt32 || offset[a]+size[a] > math.MaxInt32 {
			panic(fmt.Errorf("%w: offset %v, size %v", ErrOffsetOutOfRange, offset, size))
		}
	}
	return int(volume)
}

func newSpace(size, offset vec) space {
	checkSpace(size, offset)
	return space{size: size, offset: offset}
}

func (s space) capacity() int {
	return int(s.size[axisX] * s.size[axisY] * s.size[axisZ])
}

func (s space) max() vec { return s.offset.add(s.size) }

func (s space) contains(c vec) bool {
	for a := range c {
		if c[a] < s.offset[a] || c[a] >= s.offset[a]+s.size[a] {
			return false
		}
	}
	return true
}

func (s space) linear(l vec) int {
	w, d := s.size[axisX], s.size[axisZ]
	return int(l[axisY]*w*d + l[axisZ]*w + l[axisX])
}

// toIndex requires contains(c).
func (s space) toIndex(c vec) int {
	var l vec
	for a := range c {
		l[a] = c[a] - s.offset[a] + s.wrap[a]
		if l[a] >= s.size[a] {
			l[a] -= s.size[a]
		}
	}
	return s.linear(l)
}

// fromIndex is the inverse of toIndex.
func (s space) fromIndex(i int) vec {
	w, d := s.size[axisX], s.size[axisZ]
	n := int64(i)
	l := vec{n % w, n / (w * d), (n / w) % d}
	var c vec
	for a := range c {
		c[a] = s.offset[a] + mod(l[a]-s.wrap[a], s.size[a])
	}
	return c
}

func (s space) relativeOffset(c vec) vec {
	var r vec
	for a := range c {
		r[a] = mod(c[a]-s.offset[a], s.size[a])
	}
	return r
}

// wrapIndex is the storage index holding the minimum corner.
func (s space) wrapIndex() int { return s.linear(s.wrap) }

// eachInBox visits [lo, hi) in storage order, y outermost and x innermost,
// stopping at the first error.
func eachInBox(lo, hi vec, fn func(c vec) error) error {
	var c vec
	for c[axisY] = lo[axisY]; c[axisY] < hi[axisY]; c[axisY]++ {
		for c[axisZ] = lo[axisZ]; c[axisZ] < hi[axisZ]; c[axisZ]++ {
			for c[axisX] = lo[axisX]; c[axisX] < hi[axisX]; c[axisX]++ {
				if err := fn(c); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
