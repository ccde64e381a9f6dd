package fn_test

import (
	"errors"
	"io/fs"
	"os"
	"runtime"
	"testing"

	"github.com/next-trace/scg-uikit/fn"
	"github.com/next-trace/scg-uikit/httperr"
)

var errMissing = errors.New("meh")

func lookup(m map[string]string, k string) func() (string, error) {
	return func() (string, error) {
		v, ok := m[k]
		if !ok {
			return "", errMissing
		}
		return v, nil
	}
}

func divide(a, b int) func() (int, error) {
	return func() (int, error) { return a / b, nil }
}

func TestCatching_SuccessSkipsCatcher(t *testing.T) {
	t.Parallel()

	called := false
	got, err := fn.Catching(lookup(map[string]string{"foo": "bar"}, "foo"), func(error) string {
		called = true
		return "caught"
	}, nil)

	if err != nil || got != "bar" {
		t.Fatalf("Catching=%q,%v want=bar,nil", got, err)
	}

	if called {
		t.Fatalf("catcher must not run on success")
	}
}

func TestCatching_MatchingErrorGoesToCatcher(t *testing.T) {
	t.Parallel()

	got, err := fn.Catching(
		lookup(map[string]string{"foo": "bar"}, "meh"),
		func(err error) string { return fn.Const("nope")(err) },
		fn.Is(errMissing),
	)

	if err != nil || got != "nope" {
		t.Fatalf("Catching=%q,%v want=nope,nil", got, err)
	}
}

func TestCatching_DefaultCatcherReturnsError(t *testing.T) {
	t.Parallel()

	got, err := fn.Catching(func() (any, error) { return nil, errMissing }, nil, nil)
	if err != nil {
		t.Fatalf("unexpected propagated error %v", err)
	}

	if got != errMissing {
		t.Fatalf("default catcher must yield the error itself, got %v", got)
	}

	gotErr, err := fn.Catching(func() (error, error) { return nil, errMissing }, nil, nil)
	if err != nil || !errors.Is(gotErr, errMissing) {
		t.Fatalf("Catching[error]=%v,%v", gotErr, err)
	}

	n, err := fn.Catching(func() (int, error) { return 7, errMissing }, nil, nil)
	if err != nil || n != 0 {
		t.Fatalf("T that cannot hold the error must give zero, got %d,%v", n, err)
	}
}

func TestCatching_NonMatchingErrorPropagates(t *testing.T) {
	t.Parallel()

	called := false
	_, err := fn.Catching(func() (string, error) {
		_, err := os.Open("/definitely/not/here")
		return "", err
	}, func(error) string {
		called = true
		return ""
	}, fn.Is(errMissing))

	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("error must propagate unchanged, got %v", err)
	}

	if called {
		t.Fatalf("catcher must not run for a non-matching error")
	}
}

func TestCatching_RecoversMatchingPanic(t *testing.T) {
	t.Parallel()

	got, err := fn.Catching(divide(1, 0), func(error) int { return -1 }, fn.As[runtime.Error]())
	if err != nil || got != -1 {
		t.Fatalf("Catching(1/0)=%d,%v want=-1,nil", got, err)
	}

	v, err := fn.Catching(func() (any, error) { panic("plain value") }, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	var pe *fn.PanicError
	if e, ok := v.(error); !ok || !errors.As(e, &pe) || pe.Value != "plain value" {
		t.Fatalf("non-error panic must surface as *PanicError, got %#v", v)
	}
}

func TestCatching_NonMatchingPanicRepanics(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		if _, ok := r.(runtime.Error); !ok {
			t.Fatalf("expected original runtime.Error panic, got %#v", r)
		}
	}()

	_, _ = fn.Catching(divide(1, 0), nil, fn.Is(errMissing))
	t.Fatalf("Catching must re-panic")
}

func TestCatching_KindMatcher(t *testing.T) {
	t.Parallel()

	timeout := httperr.New(httperr.KindConnectTimeout, "slow")
	got, err := fn.Catching(func() (string, error) { return "", timeout },
		func(err error) string { return httperr.ShortMessage(err) },
		httperr.KindMatcher(httperr.KindConnection, httperr.KindConnectTimeout),
	)

	if err != nil || got != "ConnectTimeout" {
		t.Fatalf("Catching=%q,%v", got, err)
	}

	other := httperr.New(httperr.KindHTTP, "boom")
	_, err = fn.Catching(func() (string, error) { return "", other }, nil,
		httperr.KindMatcher(httperr.KindConnection))

	if err != other {
		t.Fatalf("non-matching kind must propagate, got %v", err)
	}
}

func TestOneOf(t *testing.T) {
	t.Parallel()

	m := fn.OneOf(nil, fn.Is(errMissing), fn.Is(fs.ErrNotExist))
	if !m(errMissing) || !m(fs.ErrNotExist) || m(errors.New("x")) {
		t.Fatalf("OneOf matched incorrectly")
	}

	if fn.OneOf()(errMissing) {
		t.Fatalf("empty OneOf must match nothing")
	}
}

func TestDefaulting(t *testing.T) {
	t.Parallel()

	got, err := fn.Defaulting(lookup(map[string]string{"foo": "bar"}, "meh"), "nope", nil)
	if err != nil || got != "nope" {
		t.Fatalf("Defaulting=%q,%v want=nope,nil", got, err)
	}

	none, err := fn.Defaulting(func() (any, error) {
		q, err := divide(1, 0)()
		return q, err
	}, nil, nil)
	if err != nil || none != nil {
		t.Fatalf("Defaulting(1/0)=%v,%v want=nil,nil", none, err)
	}

	n, err := fn.Defaulting(divide(6, 3), 0, nil)
	if err != nil || n != 2 {
		t.Fatalf("Defaulting success=%d,%v", n, err)
	}

	_, err = fn.Defaulting(lookup(nil, "x"), "nope", fn.Is(fs.ErrNotExist))
	if !errors.Is(err, errMissing) {
		t.Fatalf("non-matching error must propagate, got %v", err)
	}
}
