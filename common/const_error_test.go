package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestConstError_IsError(t *testing.T) {
	var _ error = ConstError("bla")
}

func TestConstError_MessageIsPreserved(t *testing.T) {
	const err = ConstError("invalid configuration")
	if got, want := err.Error(), "invalid configuration"; got != want {
		t.Errorf("unexpected message, wanted %q, got %q", want, got)
	}
	wrapped := fmt.Errorf("%w: depth 80 exceeds 64 key bits", err)
	if got, want := wrapped.Error(), "invalid configuration: depth 80 exceeds 64 key bits"; got != want {
		t.Errorf("unexpected message, wanted %q, got %q", want, got)
	}
}

func TestConstError_CanBeTestedForWithErrorsIs(t *testing.T) {
	target := ConstError("target")
	other := ConstError("other")
	tests := []struct {
		err            error
		containsTarget bool
	}{
		{nil, false},
		{target, true},
		{other, false},
		{fmt.Errorf("unrelated"), false},
		{fmt.Errorf("%w: detail", target), true},
		{fmt.Errorf("%w: more detail", fmt.Errorf("%w: detail", target)), true},
		{errors.Join(), false},
		{errors.Join(target), true},
		{errors.Join(other, fmt.Errorf("unrelated")), false},
		{errors.Join(fmt.Errorf("%w: a", other), fmt.Errorf("%w: b", target)), true},
	}

	for _, test := range tests {
		if want, got := test.containsTarget, errors.Is(test.err, target); want != got {
			t.Errorf("unexpected result for %v, wanted %t, got %t", test.err, want, got)
		}
	}
}
