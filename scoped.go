package emptyoption

// WithStolen steals the slot's value, runs fn on it, and restores the
// replacement value fn returns. The restoration guarantee holds on every
// exit path: if fn panics, the original value is put back into the slot
// before the panic propagates. Returns a guarderr.TypeEmpty error if the
// slot is empty.
func WithStolen[T, R any](o *Option[T], fn func(T) (R, T)) (R, error) {
	g, err := StealMut(o)
	if err != nil {
		var zero R
		return zero, err
	}
	defer g.Drop()
	r, replacement := fn(g.Get())
	g.Set(replacement)
	return r, nil
}

// WithStolenMut steals the slot's value and runs fn with a pointer to it
// for in-place mutation. The (possibly mutated) value moves back into the
// slot when fn returns, or panics. Returns a guarderr.TypeEmpty error if
// the slot is empty; fn's error is passed through.
func WithStolenMut[T, R any](o *Option[T], fn func(*T) (R, error)) (R, error) {
	g, err := StealMut(o)
	if err != nil {
		var zero R
		return zero, err
	}
	defer g.Drop()
	return fn(g.Ptr())
}
