package rollgrid

import (
	"math/bits"

	"github.com/forestrie/go-rollgrid/fixedarray"
)

// MaxCapacity is the largest number of cells a grid can hold.
const MaxCapacity = fixedarray.MaxCapacity

// mulCapacity multiplies two positive factors, reporting false if the product
// exceeds MaxCapacity.
func mulCapacity(a, b int64) (int64, bool) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > MaxCapacity {
		return 0, false
	}
	return int64(lo), true
}

// mod returns a mod m in [0, m) for positive m.
func mod(a, m int64) int64 {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

func sign(a int64) int64 {
	switch {
	case a > 0:
		return 1
	case a < 0:
		return -1
	}
	return 0
}

func abs(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}
