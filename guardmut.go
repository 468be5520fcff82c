package emptyoption

import "github.com/sdleffler/empty-option-go/guarderr"

// InPlaceGuard owns a value stolen from a slot for the guard's lifetime.
// The value can be read and mutated through the guard; when the guard's
// life ends via Drop, the value moves back into the slot automatically.
// IntoInner instead hands the value to the caller and leaves the slot
// empty. Exactly one of the two happens.
type InPlaceGuard[T any] struct {
	slot     *Option[T]
	value    T
	resolved bool
}

// Get returns the held value.
func (g *InPlaceGuard[T]) Get() T {
	g.ensureLive("Get")
	return g.value
}

// Set replaces the held value.
func (g *InPlaceGuard[T]) Set(v T) {
	g.ensureLive("Set")
	g.value = v
}

// Ptr returns a pointer to the held value for in-place mutation. The
// pointer must not outlive the guard: once the guard resolves, the value
// has moved out.
func (g *InPlaceGuard[T]) Ptr() *T {
	g.ensureLive("Ptr")
	return &g.value
}

// IntoInner resolves the guard, keeping the value: it is returned to the
// caller and the slot stays empty.
func (g *InPlaceGuard[T]) IntoInner() T {
	g.ensureLive("IntoInner")
	g.resolved = true
	g.slot.guarded = false
	v := g.value
	var zero T
	g.value = zero
	return v
}

// Drop ends the guard's life and is meant to be deferred at the steal site.
// If the guard is still unresolved, the held value moves back into the
// slot. After IntoInner, or after an earlier Drop, it is a no-op.
func (g *InPlaceGuard[T]) Drop() {
	if g.resolved {
		return
	}
	g.resolved = true
	g.slot.value = g.value
	g.slot.defined = true
	g.slot.guarded = false
	var zero T
	g.value = zero
}

func (g *InPlaceGuard[T]) ensureLive(op string) {
	if g.resolved {
		panic(guarderr.NewResolvedGuardError(op))
	}
}
