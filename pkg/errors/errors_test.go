// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/dotman/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_tracked_error",
			code:    errors.ErrNotTracked,
			message: "file is not tracked",
			wantStr: "[NOT_TRACKED] file is not tracked",
		},
		{
			name:    "not_in_home_error",
			code:    errors.ErrNotInHome,
			message: "path is outside the home directory",
			wantStr: "[NOT_IN_HOME] path is outside the home directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
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

func TestWrap(t *testing.T) {
	cause := stderrors.New("open /tmp/index.txt: permission denied")
	err := errors.Wrap(cause, errors.ErrIndexWriteFailed, "failed to persist index")

	if err.Code != errors.ErrIndexWriteFailed {
		t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrIndexWriteFailed)
	}

	if !stderrors.Is(err, cause) {
		t.Error("Wrap() should preserve the wrapped error for errors.Is")
	}

	want := "[INDEX_WRITE_FAILED] failed to persist index: open /tmp/index.txt: permission denied"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWrapNil(t *testing.T) {
	if err := errors.Wrap(nil, errors.ErrInternal, "should vanish"); err != nil {
		t.Errorf("Wrap(nil) = %v, want nil", err)
	}
	if err := errors.Wrapf(nil, errors.ErrInternal, "should %s", "vanish"); err != nil {
		t.Errorf("Wrapf(nil) = %v, want nil", err)
	}
}

func TestIsErrorCode(t *testing.T) {
	base := errors.New(errors.ErrAlreadyTracked, "already tracked")
	wrapped := errors.Wrap(base, errors.ErrInternal, "outer")

	if !errors.IsErrorCode(base, errors.ErrAlreadyTracked) {
		t.Error("IsErrorCode() should match the error's own code")
	}

	// errors.As finds the outermost DotmanError, so the outer code wins.
	if !errors.IsErrorCode(wrapped, errors.ErrInternal) {
		t.Error("IsErrorCode() should match the outermost code")
	}

	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrAlreadyTracked) {
		t.Error("IsErrorCode() should not match plain errors")
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrSyncFailed, "git failed")); got != errors.ErrSyncFailed {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrSyncFailed)
	}

	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrUnknown)
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrNotInHome, "outside home").
		WithDetail("path", "/etc/hosts").
		WithDetail("home", "/home/user")

	if err.Details["path"] != "/etc/hosts" {
		t.Errorf("WithDetail() path = %v, want /etc/hosts", err.Details["path"])
	}
	if err.Details["home"] != "/home/user" {
		t.Errorf("WithDetail() home = %v, want /home/user", err.Details["home"])
	}
}
