package lazyexpr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpression_ForcesOnce(t *testing.T) {
	calls := 0
	e := NewExpression(func() (int, error) {
		calls++
		return 42, nil
	})

	v1, err := e.Get()
	require.NoError(t, err)
	assert.Equal(t, 42, v1)

	v2, err := e.Get()
	require.NoError(t, err)
	assert.Equal(t, 42, v2)

	assert.Equal(t, 1, calls, "thunk must be forced at most once")
}

func TestExpression_NeverPulled(t *testing.T) {
	calls := 0
	_ = NewExpression(func() (int, error) {
		calls++
		return 0, nil
	})

	assert.Equal(t, 0, calls, "constructing an Expression must not force it")
}

func TestExpression_CachesError(t *testing.T) {
	calls := 0
	boom := errors.New("boom")
	e := NewExpression(func() (int, error) {
		calls++
		return 0, boom
	})

	_, err1 := e.Get()
	_, err2 := e.Get()

	assert.ErrorIs(t, err1, boom)
	assert.ErrorIs(t, err2, boom)
	assert.Equal(t, 1, calls)
}

func TestReady_IsAlreadyForced(t *testing.T) {
	e := Ready("hello")

	v, err := e.Get()
	require.NoError(t, err)
	assert.Equal(t, "hello", v)
}
