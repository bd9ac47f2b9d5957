// Copyright 2025 The yamlscan Project Contributors
// SPDX-License-Identifier: Apache-2.0

package assert

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"testing"
)

type fakeTB struct {
	failed bool
	msg    string
}

func (f *fakeTB) Helper() {}

func (f *fakeTB) Fatalf(format string, args ...any) {
	f.failed = true
	f.msg = fmt.Sprintf(format, args...)
}

func checkFailure(t *testing.T, f *fakeTB, pattern string) {
	t.Helper()
	if !f.failed {
		t.Fatalf("expected failure")
	}
	if !regexp.MustCompile(pattern).MatchString(f.msg) {
		t.Fatalf("message does not match:\ngot: `%s`\nregexp: `%s`", f.msg, pattern)
	}
}

func TestPassingAssertions(t *testing.T) {
	Equal(t, 2, 2)
	Equalf(t, "ok", "ok", "with %s", "message")
	DeepEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	DeepEqualf(t, map[string]int{"a": 1}, map[string]int{"a": 1}, "")
	ErrorMatches(t, `http \d+: not found`, fmt.Errorf("http 404: not found"))
	NoError(t, nil)
	True(t, true)
	False(t, false)
	PanicMatches(t, `boom \d+`, func() { panic("boom 123") })
	PanicMatches(t, `fail xyz`, func() { panic(fmt.Errorf("fail xyz")) })

	var p *int
	IsNil(t, p)
	var w io.Writer
	IsNil(t, w)
	NotNil(t, make([]int, 0))
}

func TestEqualFails(t *testing.T) {
	mock := &fakeTB{}
	Equalf(mock, 2, 1, "item %d", 3)
	checkFailure(t, mock, `^got 1; want 2 - item 3$`)
}

func TestDeepEqualReportsDiff(t *testing.T) {
	mock := &fakeTB{}
	DeepEqual(mock, []string{"a", "b"}, []string{"a", "c"})
	checkFailure(t, mock, `^mismatch \(-want \+got\):\n`)
	if !strings.Contains(mock.msg, `"b"`) || !strings.Contains(mock.msg, `"c"`) {
		t.Fatalf("diff does not show both elements: %s", mock.msg)
	}
}

func TestErrorMatchesFails(t *testing.T) {
	mock := &fakeTB{}
	ErrorMatches(mock, `x`, nil)
	checkFailure(t, mock, `^got nil; want error matching "x"$`)

	mock = &fakeTB{}
	ErrorMatches(mock, `^x$`, errors.New("y"))
	checkFailure(t, mock, `^error "y" does not match "\^x\$"$`)

	mock = &fakeTB{}
	ErrorMatches(mock, `(`, errors.New("y"))
	checkFailure(t, mock, `^invalid regexp`)
}

var errSentinel = errors.New("sentinel")

type customErr struct{ code int }

func (e *customErr) Error() string { return fmt.Sprintf("code %d", e.code) }

func TestErrorIsAndAs(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", errSentinel)
	ErrorIs(t, wrapped, errSentinel)

	mock := &fakeTB{}
	ErrorIs(mock, errors.New("other"), errSentinel)
	checkFailure(t, mock, `want an error wrapping sentinel`)

	var target *customErr
	ErrorAs(t, fmt.Errorf("wrap: %w", &customErr{code: 7}), &target)
	Equal(t, 7, target.code)

	mock = &fakeTB{}
	ErrorAs(mock, errSentinel, &target)
	checkFailure(t, mock, `want \*assert.customErr$`)

	mock = &fakeTB{}
	ErrorAs(mock, errSentinel, target)
	checkFailure(t, mock, `^target must point to an interface or an error type, got \*assert.customErr$`)

	mock = &fakeTB{}
	ErrorAs(mock, errSentinel, customErr{})
	checkFailure(t, mock, `^target must be a non-nil pointer`)

	var iface interface{ Error() string }
	ErrorAs(t, wrapped, &iface)
	Equal(t, "outer: sentinel", iface.Error())
}

func TestNilAssertionsFail(t *testing.T) {
	mock := &fakeTB{}
	IsNil(mock, 1)
	checkFailure(t, mock, `^got non-nil \(type int\)`)

	mock = &fakeTB{}
	NotNil(mock, nil)
	checkFailure(t, mock, `^got nil; want non-nil$`)

	mock = &fakeTB{}
	NoErrorf(mock, errors.New("bad"), "step %d", 2)
	checkFailure(t, mock, `^unexpected error: bad - step 2$`)
}

func TestBoolAssertionsFail(t *testing.T) {
	mock := &fakeTB{}
	True(mock, false)
	checkFailure(t, mock, `^got false; want true$`)

	mock = &fakeTB{}
	Falsef(mock, true, "flag")
	checkFailure(t, mock, `^got true; want false - flag$`)
}

func TestPanicMatchesFails(t *testing.T) {
	mock := &fakeTB{}
	PanicMatches(mock, `x`, func() {})
	checkFailure(t, mock, `^function did not panic`)

	mock = &fakeTB{}
	PanicMatches(mock, `^x$`, func() { panic(42) })
	checkFailure(t, mock, `^panic "42" does not match`)
}
