// Package check reports programmer errors (violated preconditions).
//
// Violations panic instead of returning an error: they indicate a bug at the
// call site, not a condition the caller can recover from. The panic value is a
// *Violation, which wraps ErrPrecondition.
package check

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrPrecondition is wrapped by every Violation.
var ErrPrecondition = errors.New("precondition violated")

// Violation is the panic value raised by That and NotNil.
type Violation struct {
	Msg string
}

func (v *Violation) Error() string {
	if v.Msg == "" {
		return ErrPrecondition.Error()
	}
	return fmt.Sprintf("%s: %s", ErrPrecondition, v.Msg)
}

func (v *Violation) Unwrap() error {
	return ErrPrecondition
}

// That panics with a *Violation carrying msg if cond is false.
func That(cond bool, msg string) {
	if !cond {
		panic(&Violation{Msg: msg})
	}
}

// NotNil panics if any argument is nil, including typed nils such as a nil
// pointer stored in an interface.
func NotNil(args ...any) {
	for i, a := range args {
		if isNil(a) {
			panic(&Violation{Msg: fmt.Sprintf("argument %d is nil", i)})
		}
	}
}

func isNil(a any) bool {
	if a == nil {
		return true
	}
	v := reflect.ValueOf(a)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// Recover converts a *Violation panic into an error stored in *err. Other
// panics are re-raised. Use it deferred at API boundaries that must not crash:
//
//	defer check.Recover(&err)
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if v, ok := r.(*Violation); ok {
		*err = v
		return
	}
	panic(r)
}
