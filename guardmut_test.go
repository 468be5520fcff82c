package emptyoption

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sdleffler/empty-option-go/guarderr"
)

func TestStealMutAndDrop(t *testing.T) {
	o := Some(5)

	g, err := StealMut(&o)
	assert.NoError(t, err)
	assert.Equal(t, 5, g.Get())
	assert.False(t, o.defined)
	assert.True(t, o.guarded)

	g.Set(6)
	g.Drop()

	// The mutated value moved back into the slot.
	assert.False(t, o.guarded)
	assert.True(t, o.Equal(Some(6)))
}

func TestStealMutUntouchedDrop(t *testing.T) {
	o := Some(5)

	g, err := StealMut(&o)
	assert.NoError(t, err)
	g.Drop()

	assert.True(t, o.Equal(Some(5)))
}

func TestStealMutPtr(t *testing.T) {
	o := Some(5)

	g, err := StealMut(&o)
	assert.NoError(t, err)
	*g.Ptr() = 7
	assert.Equal(t, 7, g.Get())
	g.Drop()

	assert.True(t, o.Equal(Some(7)))
}

func TestIntoInner(t *testing.T) {
	o := Some(5)

	g, err := StealMut(&o)
	assert.NoError(t, err)
	v := g.IntoInner()
	assert.Equal(t, 5, v)

	// The caller kept the value: the slot stays empty, no auto-restore.
	assert.True(t, o.IsEmpty())
	assert.NotPanics(t, func() { g.Drop() })
	assert.True(t, o.IsEmpty())
}

func TestStealMutEmpty(t *testing.T) {
	o := None[int]()

	g, err := StealMut(&o)
	assert.Error(t, err)
	assert.True(t, guarderr.IsEmpty(err))
	assert.Nil(t, g)
	assert.True(t, o.IsEmpty())
}

func TestGuardUseAfterResolve(t *testing.T) {
	t.Run("AfterDrop", func(t *testing.T) {
		o := Some(5)
		g, err := StealMut(&o)
		assert.NoError(t, err)
		g.Drop()

		assert.PanicsWithError(t, guarderr.NewResolvedGuardError("Get").Error(), func() { g.Get() })
		assert.PanicsWithError(t, guarderr.NewResolvedGuardError("Set").Error(), func() { g.Set(6) })
		assert.PanicsWithError(t, guarderr.NewResolvedGuardError("Ptr").Error(), func() { g.Ptr() })
		assert.PanicsWithError(t, guarderr.NewResolvedGuardError("IntoInner").Error(), func() { g.IntoInner() })
	})

	t.Run("AfterIntoInner", func(t *testing.T) {
		o := Some(5)
		g, err := StealMut(&o)
		assert.NoError(t, err)
		g.IntoInner()

		assert.PanicsWithError(t, guarderr.NewResolvedGuardError("Get").Error(), func() { g.Get() })
	})
}

func TestDoubleDrop(t *testing.T) {
	o := Some(5)
	g, err := StealMut(&o)
	assert.NoError(t, err)

	g.Drop()
	assert.NotPanics(t, func() { g.Drop() })
	assert.True(t, o.Equal(Some(5)))
}

func TestMustStealMut(t *testing.T) {
	t.Run("Present", func(t *testing.T) {
		o := Some(5)
		g := MustStealMut(&o)
		g.Set(6)
		g.Drop()
		assert.Equal(t, 6, o.Get())
	})

	t.Run("Empty", func(t *testing.T) {
		o := None[int]()
		assert.PanicsWithError(t, guarderr.NewEmptyError("StealMut").Error(), func() {
			MustStealMut(&o)
		})
	})
}

func TestStealMutStructValue(t *testing.T) {
	type point struct{ X, Y int }
	o := Some(point{X: 1, Y: 2})

	g, err := StealMut(&o)
	assert.NoError(t, err)
	g.Ptr().X = 10
	g.Drop()

	assert.True(t, o.Equal(Some(point{X: 10, Y: 2})))
}
