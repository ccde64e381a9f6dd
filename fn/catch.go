package fn

import (
	"errors"
	"fmt"
)

// Matcher selects the failures Catching recovers.
type Matcher func(error) bool

// AnyError matches every failure.
func AnyError(error) bool { return true }

// Is matches failures whose chain contains target (errors.Is).
func Is(target error) Matcher {
	return func(err error) bool { return errors.Is(err, target) }
}

// As matches failures whose chain contains an E (errors.As).
func As[E error]() Matcher {
	return func(err error) bool {
		var target E
		return errors.As(err, &target)
	}
}

// OneOf matches when any of ms matches. Nil matchers are skipped.
func OneOf(ms ...Matcher) Matcher {
	return func(err error) bool {
		for _, m := range ms {
			if m != nil && m(err) {
				return true
			}
		}
		return false
	}
}

// PanicError carries a recovered panic value that was not itself an error.
type PanicError struct {
	Value any
}

func (p *PanicError) Error() string { return fmt.Sprintf("panic: %v", p.Value) }

// Catching calls comp and recovers the failures match selects.
//
// A failure is an error returned by comp or a panic raised inside it. Panic
// values that are not errors are presented to match and catcher as *PanicError.
//
//   - comp succeeds => its result, catcher is not called
//   - failure matches => (catcher(err), nil); nil match means AnyError
//   - nil catcher => the failure itself as the value when T can hold it
//     (any, error), otherwise the zero T
//   - returned error does not match => (zero, err) unchanged
//   - panic does not match => re-panics with the original value
func Catching[T any](comp func() (T, error), catcher func(error) T, match Matcher) (T, error) {
	if match == nil {
		match = AnyError
	}

	if catcher == nil {
		catcher = errorValue[T]
	}

	res, panicked, pv, err := run(comp)
	if panicked {
		perr, ok := pv.(error)
		if !ok {
			perr = &PanicError{Value: pv}
		}

		if !match(perr) {
			panic(pv)
		}

		return catcher(perr), nil
	}

	if err == nil {
		return res, nil
	}

	if !match(err) {
		var zero T
		return zero, err
	}

	return catcher(err), nil
}

// Defaulting is Catching with a catcher that always yields def.
func Defaulting[T any](comp func() (T, error), def T, match Matcher) (T, error) {
	return Catching(comp, func(err error) T { return Const(def)(err) }, match)
}

func run[T any](comp func() (T, error)) (res T, panicked bool, pv any, err error) {
	panicked = true

	defer func() {
		if panicked {
			pv = recover()
		}
	}()

	res, err = comp()
	panicked = false

	return res, panicked, pv, err
}

func errorValue[T any](err error) T {
	if v, ok := any(err).(T); ok {
		return v
	}

	var zero T
	return zero
}
