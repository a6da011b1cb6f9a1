package rollgrid

import "iter"

// Bounds2D is the box [Min, Max) on each axis.
type Bounds2D struct {
	Min, Max Coord2
}

// Bounds3D is the box [Min, Max) on each axis.
type Bounds3D struct {
	Min, Max Coord3
}

func NewBounds2D(min, max Coord2) Bounds2D { return Bounds2D{Min: min, Max: max} }
func NewBounds3D(min, max Coord3) Bounds3D { return Bounds3D{Min: min, Max: max} }

func (b Bounds2D) Width() int64  { return int64(b.Max.X) - int64(b.Min.X) }
func (b Bounds2D) Height() int64 { return int64(b.Max.Y) - int64(b.Min.Y) }

// Area is 0 for an empty or inverted box.
func (b Bounds2D) Area() int64 {
	if b.Width() <= 0 || b.Height() <= 0 {
		return 0
	}
	return b.Width() * b.Height()
}

func (b Bounds2D) Contains(c Coord2) bool {
	return c.X >= b.Min.X && c.X < b.Max.X &&
		c.Y >= b.Min.Y && c.Y < b.Max.Y
}

func (b Bounds2D) Intersects(o Bounds2D) bool {
	return b.Min.X < o.Max.X && o.Min.X < b.Max.X &&
		b.Min.Y < o.Max.Y && o.Min.Y < b.Max.Y
}

// All yields every coordinate in the box, x fastest.
func (b Bounds2D) All() iter.Seq[Coord2] {
	return func(yield func(Coord2) bool) {
		for y := int64(b.Min.Y); y < int64(b.Max.Y); y++ {
			for x := int64(b.Min.X); x < int64(b.Max.X); x++ {
				if !yield(Coord2{int32(x), int32(y)}) {
					return
				}
			}
		}
	}
}

func (b Bounds3D) Width() int64  { return int64(b.Max.X) - int64(b.Min.X) }
func (b Bounds3D) Height() int64 { return int64(b.Max.Y) - int64(b.Min.Y) }
func (b Bounds3D) Depth() int64  { return int64(b.Max.Z) - int64(b.Min.Z) }

func (b Bounds3D) Volume() int64 {
	if b.Width() <= 0 || b.Height() <= 0 || b.Depth() <= 0 {
		return 0
	}
	return b.Width() * b.Height() * b.Depth()
}

func (b Bounds3D) Contains(c Coord3) bool {
	return c.X >= b.Min.X && c.X < b.Max.X &&
		c.Y >= b.Min.Y && c.Y < b.Max.Y &&
		c.Z >= b.Min.Z && c.Z < b.Max.Z
}

func (b Bounds3D) Intersects(o Bounds3D) bool {
	return b.Min.X < o.Max.X && o.Min.X < b.Max.X &&
		b.Min.Y < o.Max.Y && o.Min.Y < b.Max.Y &&
		b.Min.Z < o.Max.Z && o.Min.Z < b.Max.Z
}

// All yields every coordinate in the box, x fastest, then z, then y. This is
// the storage order of a grid with no wrap.
func (b Bounds3D) All() iter.Seq[Coord3] {
	return func(yield func(Coord3) bool) {
		for y := int64(b.Min.Y); y < int64(b.Max.Y); y++ {
			for z := int64(b.Min.Z); z < int64(b.Max.Z); z++ {
				for x := int64(b.Min.X); x < int64(b.Max.X); x++ {
					if !yield(Coord3{int32(x), int32(y), int32(z)}) {
						return
					}
				}
			}
		}
	}
}
