package fixedarray

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counted records how often each id was dropped.
type counted struct {
	id    int
	drops map[int]int
}

func (c counted) Drop() { c.drops[c.id]++ }

// ptrDropper implements Dropper on its pointer receiver only.
type ptrDropper struct {
	n *int
}

func (p *ptrDropper) Drop() { *p.n++ }

func newCounted(drops map[int]int) func(i int) counted {
	return func(i int) counted { return counted{id: i, drops: drops} }
}

func TestNewIsVacant(t *testing.T) {
	a := New[int](10)
	require.Equal(t, 10, a.Len())
	require.Equal(t, 0, a.Live())
	for i := 0; i < 10; i++ {
		require.False(t, a.IsLive(i))
		_, ok := a.Get(i)
		require.False(t, ok)
		require.Nil(t, a.Ptr(i))
	}
}

func TestNewCapacityLimits(t *testing.T) {
	require.PanicsWithValue(t, ErrZeroCapacity, func() { New[int](0) })
	require.PanicsWithValue(t, ErrZeroCapacity, func() { New[int](-1) })
	require.Panics(t, func() { New[int](MaxCapacity + 1) })
}

func TestFill(t *testing.T) {
	a := Fill(9, func(i int) int { return i * i })
	require.Equal(t, 9, a.Live())
	for i := 0; i < 9; i++ {
		v, ok := a.Get(i)
		require.True(t, ok)
		require.Equal(t, i*i, v)
	}
}

func TestTryFillFailureDropsConstructed(t *testing.T) {
	drops := map[int]int{}
	errBoom := errors.New("boom")
	mk := newCounted(drops)
	a, err := TryFill(8, func(i int) (counted, error) {
		if i == 5 {
			return counted{}, errBoom
		}
		return mk(i), nil
	})
	require.ErrorIs(t, err, errBoom)
	require.Nil(t, a)
	require.Equal(t, map[int]int{0: 1, 1: 1, 2: 1, 3: 1, 4: 1}, drops)
}

func TestWriteOccupiedPanics(t *testing.T) {
	a := New[string](2)
	a.Write(0, "a")
	require.Panics(t, func() { a.Write(0, "b") })
	v, _ := a.Get(0)
	require.Equal(t, "a", v)
}

func TestReplace(t *testing.T) {
	a := New[string](2)

	old, ok := a.Replace(1, "first")
	require.False(t, ok)
	require.Equal(t, "", old)
	require.Equal(t, 1, a.Live())

	old, ok = a.Replace(1, "second")
	require.True(t, ok)
	require.Equal(t, "first", old)
	require.Equal(t, 1, a.Live())

	v, ok := a.Get(1)
	require.True(t, ok)
	require.Equal(t, "second", v)
}

func TestReplaceDoesNotDrop(t *testing.T) {
	drops := map[int]int{}
	mk := newCounted(drops)
	a := Fill(3, mk)
	old, ok := a.Replace(1, mk(10))
	require.True(t, ok)
	require.Equal(t, 1, old.id)
	require.Empty(t, drops)

	a.Dealloc()
	require.Equal(t, map[int]int{0: 1, 10: 1, 2: 1}, drops)
}

func TestTake(t *testing.T) {
	a := Fill(4, func(i int) int { return i + 100 })
	require.Equal(t, 102, a.Take(2))
	require.False(t, a.IsLive(2))
	require.Equal(t, 3, a.Live())

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		require.ErrorIs(t, err, ErrSlotVacant)
	}()
	a.Take(2)
}

func TestIndexOutOfRangePanics(t *testing.T) {
	a := New[int](4)
	for _, i := range []int{-1, 4, 100} {
		require.Panics(t, func() { a.Get(i) })
		require.Panics(t, func() { a.Write(i, 1) })
	}
}

func TestPtrMutatesInPlace(t *testing.T) {
	a := Fill(3, func(i int) []int { return []int{i} })
	p := a.Ptr(1)
	require.NotNil(t, p)
	*p = append(*p, 42)
	v, _ := a.Get(1)
	require.Equal(t, []int{1, 42}, v)
}

func TestTransplant(t *testing.T) {
	drops := map[int]int{}
	src := Fill(4, newCounted(drops))
	dst := New[counted](2)

	src.Transplant(dst, 3, 0)
	src.Transplant(dst, 1, 1)
	require.Equal(t, 2, src.Live())
	require.Equal(t, 2, dst.Live())

	v, ok := dst.Get(0)
	require.True(t, ok)
	require.Equal(t, 3, v.id)

	require.Panics(t, func() { src.Transplant(dst, 0, 0) }, "destination occupied")
	require.Panics(t, func() { src.Transplant(src, 0, 1) })

	src.Dealloc()
	assert.Equal(t, map[int]int{0: 1, 2: 1}, drops)
	dst.Dealloc()
	assert.Equal(t, map[int]int{0: 1, 1: 1, 2: 1, 3: 1}, drops)
}

func TestDropInPlace(t *testing.T) {
	drops := map[int]int{}
	a := Fill(3, newCounted(drops))
	a.DropInPlace(1)
	a.DropInPlace(1)
	require.Equal(t, map[int]int{1: 1}, drops)
	require.False(t, a.IsLive(1))
	require.Equal(t, 2, a.Live())
}

func TestDeallocDropsOnlyLive(t *testing.T) {
	drops := map[int]int{}
	a := Fill(17, newCounted(drops))
	taken := a.Take(16)
	a.DropInPlace(0)

	a.Dealloc()
	require.Equal(t, 0, a.Len())
	require.Equal(t, 0, a.Live())
	for i := 0; i < 16; i++ {
		require.Equal(t, 1, drops[i], "slot %d", i)
	}
	require.Equal(t, 0, drops[taken.id])

	a.Dealloc()
	require.Len(t, drops, 16)
}

func TestDropThroughPointerReceiver(t *testing.T) {
	n := 0
	a := Fill(5, func(int) ptrDropper { return ptrDropper{n: &n} })
	a.Dealloc()
	require.Equal(t, 5, n)
}

func TestAllSkipsVacant(t *testing.T) {
	a := Fill(10, func(i int) int { return i })
	a.Take(0)
	a.Take(7)
	a.Take(9)

	var got []int
	for i, v := range a.All() {
		require.Equal(t, i, v)
		got = append(got, i)
	}
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 8}, got)

	got = got[:0]
	for i := range a.All() {
		got = append(got, i)
		if len(got) == 2 {
			break
		}
	}
	require.Equal(t, []int{1, 2}, got)
}

func TestBitmapLSB0(t *testing.T) {
	bitset := make([]byte, bitmapBytes(17))
	require.Len(t, bitset, 3)
	setBitLSB0(bitset, 0)
	setBitLSB0(bitset, 9)
	setBitLSB0(bitset, 16)
	require.Equal(t, []byte{0x01, 0x02, 0x01}, bitset)
	require.True(t, testBitLSB0(bitset, 9))
	clearBitLSB0(bitset, 9)
	require.False(t, testBitLSB0(bitset, 9))
	require.Equal(t, []byte{0x01, 0x00, 0x01}, bitset)
}
