// Package emptyoption provides guarded access to a value temporarily taken
// out of an optional slot.
//
// An [Option] is a single-value slot holding either a value or nothing.
// Sometimes a value has to be moved out of the slot to be worked on
// by-value, while the surrounding code keeps the invariant that the slot is
// always populated. The two guards in this package mediate that temporary
// removal and make sure the slot is not left silently empty.
//
// # ValueGuard
//
// [Steal] hands the caller the value and a [ValueGuard] holding the
// now-empty slot. The guard must be resolved with [ValueGuard.Restore];
// dropping it unresolved is a fatal usage error and panics:
//
//	slot := emptyoption.Some(5)
//
//	guard, five, err := emptyoption.Steal(&slot)
//	if err != nil {
//		// slot was empty
//	}
//	defer guard.Drop()
//
//	// five == 5, slot is empty, and we owe the slot a value.
//	guard.Restore(6)
//
//	// slot is Some(6).
//
// # InPlaceGuard
//
// [StealMut] moves the value into an [InPlaceGuard] instead, where it can
// be read and mutated through [InPlaceGuard.Get], [InPlaceGuard.Set] and
// [InPlaceGuard.Ptr]. Here forgetting to resolve is not an error: at
// [InPlaceGuard.Drop] the value moves back into the slot automatically.
// [InPlaceGuard.IntoInner] keeps the value instead, leaving the slot empty:
//
//	slot := emptyoption.Some(5)
//
//	guard, _ := emptyoption.StealMut(&slot)
//	guard.Set(6)
//	guard.Drop()
//
//	// slot is Some(6).
//
// The asymmetry is the point: ValueGuard forces the caller to supply a
// replacement value, InPlaceGuard degrades gracefully to "value preserved
// in its original home".
//
// # Exclusivity
//
// At most one guard may be alive per slot. Go cannot enforce this at
// compile time, so the slot carries a runtime flag: accessing the Option,
// or stealing from it again, while a guard is alive panics with a
// guarderr.TypeExclusivity error. The package is not safe for concurrent
// use; exclusivity is a single-goroutine discipline.
//
// # Scoped form
//
// [WithStolen] and [WithStolenMut] wrap a whole steal in a callback, so the
// restoration guarantee holds on every exit path without a defer at the
// call site.
package emptyoption
