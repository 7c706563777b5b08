package errors

import (
	stdErrors "errors"
	"strings"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"already exists", ErrAlreadyExists},
		{"not found", ErrNotFound},
		{"invalid credentials", ErrInvalidCredentials},
		{"permission denied", ErrPermissionDenied},
		{"invalid transition", ErrInvalidTransition},
		{"invalid status", ErrInvalidStatus},
		{"empty order", ErrEmptyOrder},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
		})
	}
}

func TestPermissionDeniedWrapsSentinel(t *testing.T) {
	err := PermissionDenied("seller %d does not own lot %d", 3, 9)
	if !stdErrors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected wrapped ErrPermissionDenied, got %v", err)
	}
	if !strings.Contains(err.Error(), "seller 3 does not own lot 9") {
		t.Fatalf("expected reason in message, got %q", err.Error())
	}
}

func TestInvalidTransitionWrapsSentinel(t *testing.T) {
	err := InvalidTransition("%s -> %s", "delivered", "shipped")
	if !stdErrors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected wrapped ErrInvalidTransition, got %v", err)
	}
	if !strings.Contains(err.Error(), "delivered -> shipped") {
		t.Fatalf("expected edge in message, got %q", err.Error())
	}
}
