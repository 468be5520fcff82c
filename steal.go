package emptyoption

import "github.com/sdleffler/empty-option-go/guarderr"

// Steal takes the value out of the slot, leaving it empty, and returns the
// value together with a ValueGuard holding the slot. The caller must end the
// guard's life with Restore; a guard dropped unresolved panics. The usual
// shape is:
//
//	guard, v, err := emptyoption.Steal(&slot)
//	if err != nil { ... }
//	defer guard.Drop()
//	...
//	guard.Restore(newValue)
//
// Stealing from an empty slot returns a guarderr.TypeEmpty error and leaves
// the slot untouched. Stealing from a slot that is already held by a live
// guard is a logic error and panics with a guarderr.TypeExclusivity error.
func Steal[T any](o *Option[T]) (*ValueGuard[T], T, error) {
	if o.guarded {
		panic(guarderr.NewExclusivityError("Steal"))
	}
	if !o.defined {
		var zero T
		return nil, zero, guarderr.NewEmptyError("Steal")
	}
	v := o.clear()
	o.guarded = true
	return &ValueGuard[T]{slot: o}, v, nil
}

// StealMut takes the value out of the slot and moves it into an
// InPlaceGuard, through which it can be read and mutated. At the end of the
// guard's life the value moves back into the slot automatically, unless the
// caller keeps it with IntoInner:
//
//	guard, err := emptyoption.StealMut(&slot)
//	if err != nil { ... }
//	defer guard.Drop()
//	guard.Set(guard.Get() + 1)
//
// Failure policy matches Steal: a guarderr.TypeEmpty error on an empty
// slot, a panic on a slot already held by a live guard.
func StealMut[T any](o *Option[T]) (*InPlaceGuard[T], error) {
	if o.guarded {
		panic(guarderr.NewExclusivityError("StealMut"))
	}
	if !o.defined {
		return nil, guarderr.NewEmptyError("StealMut")
	}
	v := o.clear()
	o.guarded = true
	return &InPlaceGuard[T]{slot: o, value: v}, nil
}

// MustSteal is like Steal but panics on an empty slot, for callers that
// treat presence as an invariant. This matches the strict policy of
// Option.Get.
func MustSteal[T any](o *Option[T]) (*ValueGuard[T], T) {
	g, v, err := Steal(o)
	if err != nil {
		panic(err)
	}
	return g, v
}

// MustStealMut is like StealMut but panics on an empty slot.
func MustStealMut[T any](o *Option[T]) *InPlaceGuard[T] {
	g, err := StealMut(o)
	if err != nil {
		panic(err)
	}
	return g
}

// clear empties the slot and hands back the value it held.
func (o *Option[T]) clear() T {
	v := o.value
	var zero T
	o.value = zero
	o.defined = false
	return v
}
