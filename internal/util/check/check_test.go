package check

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestThat(t *testing.T) {
	require.NotPanics(t, func() { That(true, "fine") })

	defer func() {
		r := recover()
		v, ok := r.(*Violation)
		require.True(t, ok, "expected *Violation, got %T", r)
		require.ErrorIs(t, v, ErrPrecondition)
		require.Equal(t, "precondition violated: min > max", v.Error())
	}()
	That(false, "min > max")
}

func TestNotNil(t *testing.T) {
	var nilPtr *int
	var nilMap map[string]int
	var nilFunc func()
	var nilErr error
	x := 1

	require.NotPanics(t, func() { NotNil(&x, "s", 0, []int{}, map[string]int{}) })

	tests := []struct {
		name string
		args []any
	}{
		{"untyped nil", []any{nil}},
		{"nil pointer", []any{&x, nilPtr}},
		{"nil map", []any{nilMap}},
		{"nil func", []any{"a", "b", nilFunc}},
		{"nil interface", []any{nilErr}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Panics(t, func() { NotNil(tt.args...) })
		})
	}
}

func TestRecover(t *testing.T) {
	run := func() (err error) {
		defer Recover(&err)
		That(false, "bad range")
		return nil
	}
	err := run()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrPrecondition))

	require.PanicsWithValue(t, "other", func() {
		var err error
		defer Recover(&err)
		panic("other")
	})
}
