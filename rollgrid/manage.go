package rollgrid

// CellManager is the capability a grid drives while it changes shape. Load
// produces a value for a coordinate entering the grid, Unload receives
// ownership of a value whose coordinate has left. Reload re-purposes a
// retained slot in place and has the signature expected by Translate and
// Reposition, so a manager's Reload method value can be passed directly.
//
// A manager is only borrowed for the duration of a single call and must not
// keep the pointer it is given by Reload.
type CellManager[C, T any] interface {
	Load(c C) T
	Unload(c C, value T)
	Reload(from, to C, value *T)
}

// TryCellManager is the fallible form of CellManager. The first error returned
// aborts the operation and is returned, unwrapped, by the grid.
type TryCellManager[C, T any] interface {
	Load(c C) (T, error)
	Unload(c C, value T) error
	Reload(from, to C, value *T) error
}

// Funcs adapts plain functions to CellManager. Nil UnloadFunc and ReloadFunc
// are treated as no-ops.
type Funcs[C, T any] struct {
	LoadFunc   func(c C) T
	UnloadFunc func(c C, value T)
	ReloadFunc func(from, to C, value *T)
}

func (f Funcs[C, T]) Load(c C) T { return f.LoadFunc(c) }

func (f Funcs[C, T]) Unload(c C, value T) {
	if f.UnloadFunc != nil {
		f.UnloadFunc(c, value)
	}
}

func (f Funcs[C, T]) Reload(from, to C, value *T) {
	if f.ReloadFunc != nil {
		f.ReloadFunc(from, to, value)
	}
}

// TryFuncs adapts plain functions to TryCellManager.
type TryFuncs[C, T any] struct {
	LoadFunc   func(c C) (T, error)
	UnloadFunc func(c C, value T) error
	ReloadFunc func(from, to C, value *T) error
}

func (f TryFuncs[C, T]) Load(c C) (T, error) { return f.LoadFunc(c) }

func (f TryFuncs[C, T]) Unload(c C, value T) error {
	if f.UnloadFunc == nil {
		return nil
	}
	return f.UnloadFunc(c, value)
}

func (f TryFuncs[C, T]) Reload(from, to C, value *T) error {
	if f.ReloadFunc == nil {
		return nil
	}
	return f.ReloadFunc(from, to, value)
}

// manager is the axis generic form the engine works with.
type manager[T any] struct {
	load   func(c vec) (T, error)
	unload func(c vec, value T) error
}

type reloadFunc[T any] func(from, to vec, value *T) error

func managerOf[C, T any](m CellManager[C, T], conv func(vec) C) manager[T] {
	return manager[T]{
		load: func(c vec) (T, error) { return m.Load(conv(c)), nil },
		unload: func(c vec, value T) error {
			m.Unload(conv(c), value)
			return nil
		},
	}
}

func tryManagerOf[C, T any](m TryCellManager[C, T], conv func(vec) C) manager[T] {
	return manager[T]{
		load:   func(c vec) (T, error) { return m.Load(conv(c)) },
		unload: func(c vec, value T) error { return m.Unload(conv(c), value) },
	}
}

func loaderOf[C, T any](load func(C) T, conv func(vec) C) func(vec) (T, error) {
	return func(c vec) (T, error) { return load(conv(c)), nil }
}

func tryLoaderOf[C, T any](load func(C) (T, error), conv func(vec) C) func(vec) (T, error) {
	return func(c vec) (T, error) { return load(conv(c)) }
}

func reloaderOf[C, T any](reload func(from, to C, value *T), conv func(vec) C) reloadFunc[T] {
	return func(from, to vec, value *T) error {
		reload(conv(from), conv(to), value)
		return nil
	}
}

func tryReloaderOf[C, T any](reload func(from, to C, value *T) error, conv func(vec) C) reloadFunc[T] {
	return func(from, to vec, value *T) error { return reload(conv(from), conv(to), value) }
}

// must is used by the infallible operations, whose callbacks never return
// errors.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
