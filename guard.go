package emptyoption

import "github.com/sdleffler/empty-option-go/guarderr"

// ValueGuard is the obligation left behind by Steal: the slot it holds is
// empty, and the guard must be resolved by putting a value back with
// Restore. The stolen value itself lives with the caller, not the guard.
//
// ValueGuard is deliberately strict: reaching Drop without a Restore is a
// fatal usage error, because the alternative is a slot left silently empty
// while downstream code assumes it is populated. Callers who want a
// forgiving default should use StealMut instead.
type ValueGuard[T any] struct {
	slot     *Option[T]
	restored bool
}

// Restore puts v back into the slot and resolves the guard. The guard must
// not be used afterwards. Restore cannot fail: the slot is empty and
// exclusively held for the guard's whole life.
func (g *ValueGuard[T]) Restore(v T) {
	if g.restored {
		panic(guarderr.NewResolvedGuardError("Restore"))
	}
	g.slot.value = v
	g.slot.defined = true
	g.slot.guarded = false
	g.restored = true
}

// Drop ends the guard's life and is meant to be deferred at the steal site.
// If the guard was resolved by Restore, Drop is a no-op. If not, Drop
// panics with a guarderr.TypeUnresolved error: the slot would otherwise
// stay empty forever with nothing to signal it.
func (g *ValueGuard[T]) Drop() {
	if !g.restored {
		panic(guarderr.NewUnresolvedError())
	}
}
