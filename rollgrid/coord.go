package rollgrid

// Coord2 is a world coordinate in a 2D grid.
type Coord2 struct {
	X, Y int32
}

// Coord3 is a world coordinate in a 3D grid.
type Coord3 struct {
	X, Y, Z int32
}

// Size2 is the width and height of a 2D window.
type Size2 struct {
	W, H uint32
}

// Size3 is the width, height and depth of a 3D window.
type Size3 struct {
	W, H, D uint32
}

func (c Coord2) Add(o Coord2) Coord2 { return Coord2{c.X + o.X, c.Y + o.Y} }
func (c Coord2) Sub(o Coord2) Coord2 { return Coord2{c.X - o.X, c.Y - o.Y} }

func (c Coord3) Add(o Coord3) Coord3 { return Coord3{c.X + o.X, c.Y + o.Y, c.Z + o.Z} }
func (c Coord3) Sub(o Coord3) Coord3 { return Coord3{c.X - o.X, c.Y - o.Y, c.Z - o.Z} }

func (s Size2) Area() int64   { return int64(s.W) * int64(s.H) }
func (s Size3) Volume() int64 { return int64(s.W) * int64(s.H) * int64(s.D) }

func (c Coord2) vec() vec { return vec{int64(c.X), int64(c.Y), 0} }
func (c Coord3) vec() vec { return vec{int64(c.X), int64(c.Y), int64(c.Z)} }
func (s Size2) vec() vec  { return vec{int64(s.W), int64(s.H), 1} }
func (s Size3) vec() vec  { return vec{int64(s.W), int64(s.H), int64(s.D)} }

// growth is the per side change a size applies in InflateSize and
// DeflateSize. A 2D grid never grows along z.
func (s Size2) growth() vec { return vec{int64(s.W), int64(s.H), 0} }
func (s Size3) growth() vec { return s.vec() }

// Values reaching these have been range checked by checkSpace.
func coord2(v vec) Coord2 { return Coord2{int32(v[axisX]), int32(v[axisY])} }
func coord3(v vec) Coord3 { return Coord3{int32(v[axisX]), int32(v[axisY]), int32(v[axisZ])} }
func size2(v vec) Size2   { return Size2{uint32(v[axisX]), uint32(v[axisY])} }
func size3(v vec) Size3   { return Size3{uint32(v[axisX]), uint32(v[axisY]), uint32(v[axisZ])} }

