// Copyright 2025 The yamlscan Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package assert provides the small set of assertions used by the tests of
// this module. Every assertion stops the test on failure.
package assert

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"

	"github.com/google/go-cmp/cmp"
)

type miniTB interface {
	Helper()
	Fatalf(string, ...any)
}

// fail stops the test with msg, followed by the optional caller message.
func fail(tb miniTB, msg string, msgFormat string, args ...any) {
	tb.Helper()
	if msgFormat != "" {
		msg += " - " + fmt.Sprintf(msgFormat, args...)
	}
	tb.Fatalf("%s", msg)
}

// Equal asserts that want == got.
func Equal(tb miniTB, want, got any) {
	tb.Helper()
	Equalf(tb, want, got, "")
}

func Equalf(tb miniTB, want, got any, msgFormat string, args ...any) {
	tb.Helper()
	if got != want {
		fail(tb, fmt.Sprintf("got %v; want %v", got, want), msgFormat, args...)
	}
}

// DeepEqual asserts that want and got are equal according to [cmp.Equal],
// and reports the difference if they are not.
func DeepEqual(tb miniTB, want, got any, opts ...cmp.Option) {
	tb.Helper()
	if diff := cmp.Diff(want, got, opts...); diff != "" {
		fail(tb, "mismatch (-want +got):\n"+diff, "")
	}
}

func DeepEqualf(tb miniTB, want, got any, msgFormat string, args ...any) {
	tb.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		fail(tb, "mismatch (-want +got):\n"+diff, msgFormat, args...)
	}
}

// ErrorMatches asserts that the message of err matches pattern.
func ErrorMatches(tb miniTB, pattern string, err error) {
	tb.Helper()
	ErrorMatchesf(tb, pattern, err, "")
}

func ErrorMatchesf(tb miniTB, pattern string, err error, msgFormat string, args ...any) {
	tb.Helper()
	if err == nil {
		fail(tb, fmt.Sprintf("got nil; want error matching %q", pattern), msgFormat, args...)
		return
	}
	matchf(tb, "error", pattern, err.Error(), msgFormat, args...)
}

func matchf(tb miniTB, what, pattern, s string, msgFormat string, args ...any) {
	tb.Helper()
	re, err := regexp.Compile(pattern)
	if err != nil {
		fail(tb, fmt.Sprintf("invalid regexp %q: %v", pattern, err), msgFormat, args...)
		return
	}
	if !re.MatchString(s) {
		fail(tb, fmt.Sprintf("%s %q does not match %q", what, s, pattern), msgFormat, args...)
	}
}

// ErrorIs asserts that errors.Is(got, want).
func ErrorIs(tb miniTB, got, want error) {
	tb.Helper()
	ErrorIsf(tb, got, want, "")
}

func ErrorIsf(tb miniTB, got, want error, msgFormat string, args ...any) {
	tb.Helper()
	if !errors.Is(got, want) {
		fail(tb, fmt.Sprintf("got %v; want an error wrapping %v", got, want), msgFormat, args...)
	}
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// ErrorAs asserts that errors.As(err, target). Target must be a non-nil
// pointer to an interface or to a type implementing error.
func ErrorAs(tb miniTB, err error, target any) {
	tb.Helper()
	rt := reflect.TypeOf(target)
	if rt == nil || rt.Kind() != reflect.Pointer || reflect.ValueOf(target).IsNil() {
		fail(tb, fmt.Sprintf("target must be a non-nil pointer, got %T", target), "")
		return
	}
	if e := rt.Elem(); e.Kind() != reflect.Interface && !e.Implements(errorType) {
		fail(tb, fmt.Sprintf("target must point to an interface or an error type, got %T", target), "")
		return
	}
	if !errors.As(err, target) {
		fail(tb, fmt.Sprintf("got %#v; want %s", err, rt.Elem()), "")
	}
}

// NoError asserts that err is nil.
func NoError(tb miniTB, err error) {
	tb.Helper()
	NoErrorf(tb, err, "")
}

func NoErrorf(tb miniTB, err error, msgFormat string, args ...any) {
	tb.Helper()
	if err != nil {
		fail(tb, fmt.Sprintf("unexpected error: %v", err), msgFormat, args...)
	}
}

// IsNil asserts that v is nil, or a nil pointer, slice, map, channel or func.
func IsNil(tb miniTB, v any) {
	tb.Helper()
	if !isNil(v) {
		fail(tb, fmt.Sprintf("got non-nil (type %T): %#v", v, v), "")
	}
}

// NotNil is the opposite of IsNil.
func NotNil(tb miniTB, v any) {
	tb.Helper()
	if isNil(v) {
		fail(tb, "got nil; want non-nil", "")
	}
}

func True(tb miniTB, got bool) {
	tb.Helper()
	Truef(tb, got, "")
}

func Truef(tb miniTB, got bool, msgFormat string, args ...any) {
	tb.Helper()
	if !got {
		fail(tb, "got false; want true", msgFormat, args...)
	}
}

func False(tb miniTB, got bool) {
	tb.Helper()
	Falsef(tb, got, "")
}

func Falsef(tb miniTB, got bool, msgFormat string, args ...any) {
	tb.Helper()
	if got {
		fail(tb, "got true; want false", msgFormat, args...)
	}
}

// PanicMatches asserts that f panics with a message matching pattern.
func PanicMatches(tb miniTB, pattern string, f func()) {
	tb.Helper()
	var pan any
	func() {
		defer func() { pan = recover() }()
		f()
	}()
	if pan == nil {
		fail(tb, fmt.Sprintf("function did not panic; want panic matching %q", pattern), "")
		return
	}
	var msg string
	switch x := pan.(type) {
	case error:
		msg = x.Error()
	case string:
		msg = x
	default:
		msg = fmt.Sprint(x)
	}
	matchf(tb, "panic", pattern, msg, "")
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer, reflect.Slice, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
