package runtimex

import (
	"errors"
	"testing"
)

func TestPanicOnError(t *testing.T) {
	badfunc := func(in error) (out error) {
		defer func() {
			out = recover().(error)
		}()
		PanicOnError(in, "we expect this assertion to fail")
		return
	}

	t.Run("for nil error", func(t *testing.T) {
		PanicOnError(nil, "this assertion should not fail")
	})

	t.Run("for non-nil error", func(t *testing.T) {
		expected := errors.New("mocked error")
		if !errors.Is(badfunc(expected), expected) {
			t.Fatal("not the error we expected")
		}
	})
}

func TestPanicIfFalse(t *testing.T) {
	badfunc := func(in bool, message string) (out error) {
		defer func() {
			out = errors.New(recover().(string))
		}()
		PanicIfFalse(in, message)
		return
	}

	t.Run("for true assertion", func(t *testing.T) {
		PanicIfFalse(true, "this assertion should not fail")
	})

	t.Run("for false assertion", func(t *testing.T) {
		message := "we expect this assertion to fail"
		err := badfunc(false, message)
		if err == nil || err.Error() != message {
			t.Fatal("not the error we expected")
		}
	})
}

func TestPanicIfTrue(t *testing.T) {
	badfunc := func(in bool, message string) (out error) {
		defer func() {
			out = errors.New(recover().(string))
		}()
		PanicIfTrue(in, message)
		return
	}

	t.Run("for false assertion", func(t *testing.T) {
		PanicIfTrue(false, "this assertion should not fail")
	})

	t.Run("for true assertion", func(t *testing.T) {
		message := "we expect this assertion to fail"
		err := badfunc(true, message)
		if err == nil || err.Error() != message {
			t.Fatal("not the error we expected")
		}
	})
}
