// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/smbsnap/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "share_not_found",
			code:    errors.ErrShareNotFound,
			message: "share missing",
			wantStr: "[SHARE_NOT_FOUND] share missing",
		},
		{
			name:    "invalid_command",
			code:    errors.ErrCommandInvalid,
			message: "argument vector has no program",
			wantStr: "[COMMAND_INVALID] argument vector has no program",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}
			if err.Details == nil {
				t.Error("New() details should be initialized")
			}
			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrConfigMissing, "key %s missing in configuration file", "directories.snap_root")
	if err.Message != "key directories.snap_root missing in configuration file" {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("permission denied")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrSnapshotRemove, "cannot remove snapshot")

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}
		wantStr := "[SNAPSHOT_REMOVE] cannot remove snapshot: permission denied"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
		if err := errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrDirCreate, "cannot create snapshot root").
		WithDetail("path", "/srv/snapshots/Public")

	if err.Details["path"] != "/srv/snapshots/Public" {
		t.Errorf("WithDetail() path = %v", err.Details["path"])
	}
	if got := errors.GetErrorDetails(err); got["path"] != "/srv/snapshots/Public" {
		t.Errorf("GetErrorDetails() = %v", got)
	}
	if got := errors.GetErrorDetails(stderrors.New("plain")); got != nil {
		t.Errorf("GetErrorDetails() on plain error = %v, want nil", got)
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrNotFound, "error 1")
	err2 := errors.New(errors.ErrNotFound, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	if !stderrors.Is(err1, err2) {
		t.Error("errors.Is() should match on code")
	}
	if stderrors.Is(err1, err3) {
		t.Error("errors.Is() should not match different codes")
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{
			name:     "snap_error",
			err:      errors.New(errors.ErrSnapshotList, "cannot list"),
			expected: errors.ErrSnapshotList,
		},
		{
			name:     "wrapped_snap_error",
			err:      errors.Wrap(errors.New(errors.ErrStatFS, "statfs"), errors.ErrConfigLoad, "load"),
			expected: errors.ErrConfigLoad,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			expected: errors.ErrUnknown,
		},
		{
			name:     "nil_error",
			err:      nil,
			expected: errors.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	listErr := errors.Wrap(rootCause, errors.ErrSnapshotList, "cannot read snapshot root")
	top := errors.Wrap(listErr, errors.ErrInternal, "share failed")

	if !errors.IsErrorCode(top, errors.ErrInternal) {
		t.Error("top level should have ErrInternal code")
	}
	var snapErr *errors.SnapError
	if stderrors.As(top.Unwrap(), &snapErr) && snapErr.Code != errors.ErrSnapshotList {
		t.Error("middle error should have ErrSnapshotList code")
	}
	if !stderrors.Is(top, rootCause) {
		t.Error("should find root cause with errors.Is")
	}
}

func TestAsAndDetail(t *testing.T) {
	inner := errors.New(errors.ErrSharesRootNotFound, "shares root not found").
		WithDetail("path", "/srv/shares")
	outer := fmt.Errorf("checking roots: %w", inner)

	snapErr, ok := errors.As(outer)
	if !ok || snapErr.Code != errors.ErrSharesRootNotFound {
		t.Fatalf("As() = %v, %v", snapErr, ok)
	}
	if got := errors.Detail(outer, "path"); got != "/srv/shares" {
		t.Errorf("Detail(path) = %q", got)
	}
	if got := errors.Detail(outer, "missing"); got != "" {
		t.Errorf("Detail(missing) = %q, want empty", got)
	}

	if _, ok := errors.As(stderrors.New("plain")); ok {
		t.Error("As() matched a plain error")
	}
	if _, ok := errors.As(nil); ok {
		t.Error("As() matched nil")
	}
}
