package emptyoption

import (
	"fmt"
	"reflect"

	"github.com/sdleffler/empty-option-go/guarderr"
)

// Option is a single-value optional slot: it holds either a value of type T
// or nothing. The zero value is None.
//
// An Option used as a slot (through a pointer) can have its value stolen by
// Steal or StealMut. While a guard produced by a steal is alive, the slot is
// exclusively held by that guard and every accessor below panics with a
// guarderr.TypeExclusivity error. Go has no borrow checker, so this runtime
// flag stands in for the exclusive borrow the guards rely on.
type Option[T any] struct {
	value   T
	defined bool
	guarded bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, defined: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsDefined reports whether the Option holds a value.
func (o Option[T]) IsDefined() bool {
	o.ensureUnguarded("IsDefined")
	return o.defined
}

// IsEmpty reports whether the Option holds nothing.
func (o Option[T]) IsEmpty() bool {
	o.ensureUnguarded("IsEmpty")
	return !o.defined
}

// Get returns the held value. Calling Get on an empty Option panics.
func (o Option[T]) Get() T {
	o.ensureUnguarded("Get")
	if !o.defined {
		panic("Option.Get on None")
	}
	return o.value
}

// GetOrElse returns the held value, or defaultValue if the Option is empty.
func (o Option[T]) GetOrElse(defaultValue T) T {
	o.ensureUnguarded("GetOrElse")
	if o.defined {
		return o.value
	}
	return defaultValue
}

// Take removes the value from the Option, leaving it empty. The second
// return reports whether a value was present.
func (o *Option[T]) Take() (T, bool) {
	o.ensureUnguarded("Take")
	v, ok := o.value, o.defined
	var zero T
	o.value = zero
	o.defined = false
	return v, ok
}

// Replace puts v into the Option and returns the previous value, if any.
func (o *Option[T]) Replace(v T) (T, bool) {
	o.ensureUnguarded("Replace")
	prev, ok := o.value, o.defined
	o.value = v
	o.defined = true
	return prev, ok
}

// Insert sets the Option to hold v, discarding any previous value.
func (o *Option[T]) Insert(v T) {
	o.ensureUnguarded("Insert")
	o.value = v
	o.defined = true
}

// ForEach calls f with the held value if one is present.
func (o Option[T]) ForEach(f func(T)) {
	o.ensureUnguarded("ForEach")
	if o.defined {
		f(o.value)
	}
}

// Filter returns the Option unchanged if it holds a value for which p is
// true, and an empty Option otherwise.
func (o Option[T]) Filter(p func(T) bool) Option[T] {
	o.ensureUnguarded("Filter")
	if o.defined && p(o.value) {
		return Some(o.value)
	}
	return None[T]()
}

// Equal reports whether both Options are in the same state with deeply
// equal values. Both sides count as accesses: comparing against a guarded
// slot trips the exclusivity check as well.
func (o Option[T]) Equal(other Option[T]) bool {
	o.ensureUnguarded("Equal")
	other.ensureUnguarded("Equal")
	if o.defined != other.defined {
		return false
	}
	if !o.defined {
		return true
	}
	return reflect.DeepEqual(o.value, other.value)
}

// String renders the Option as Some(v) or None.
func (o Option[T]) String() string {
	o.ensureUnguarded("String")
	if o.defined {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// Map is provided as a function because Go methods cannot have type
// parameters. It returns an Option holding f of the input's value, or an
// empty Option if the input is empty.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	o.ensureUnguarded("Map")
	if o.defined {
		return Some(f(o.value))
	}
	return None[U]()
}

// ensureUnguarded panics if a steal guard currently holds the slot.
func (o Option[T]) ensureUnguarded(op string) {
	if o.guarded {
		panic(guarderr.NewExclusivityError(op))
	}
}
