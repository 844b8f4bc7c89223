package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestXferErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *XferError
		want string
	}{
		{
			name: "with context",
			err: &XferError{
				Op:      "parse_location",
				Code:    ErrCodeLocationParsing,
				Err:     fmt.Errorf("unknown alias"),
				Context: "location: nope:/x",
			},
			want: "parse_location: location: nope:/x: unknown alias",
		},
		{
			name: "without context",
			err: &XferError{
				Op:   "transfer",
				Code: ErrCodeTransfer,
				Err:  fmt.Errorf("boom"),
			},
			want: "transfer: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestXferErrorUnwrap(t *testing.T) {
	inner := fmt.Errorf("underlying failure")
	err := NewTransferError("a", "b", inner)

	if !errors.Is(err, inner) {
		t.Error("errors.Is should find the wrapped error")
	}
	if err.GetCode() != ErrCodeTransfer {
		t.Errorf("GetCode() = %v, want ErrCodeTransfer", err.GetCode())
	}
}

func TestProcessExecErrorCarriesExitCode(t *testing.T) {
	err := NewProcessExecError("rsync", 23, fmt.Errorf("rsync exited with code 23"))

	if err.ExitCode != 23 {
		t.Errorf("ExitCode = %d, want 23", err.ExitCode)
	}
	if err.Code != ErrCodeProcessExec {
		t.Errorf("Code = %v, want ErrCodeProcessExec", err.Code)
	}
	if !strings.Contains(err.Error(), "rsync") {
		t.Errorf("Error() = %q, want binary name included", err.Error())
	}
}

func TestConstructorFatality(t *testing.T) {
	tests := []struct {
		name  string
		err   *XferError
		fatal bool
	}{
		{"configuration errors are fatal", NewConfigurationError("load", "/tmp/c.toml", fmt.Errorf("x")), true},
		{"location errors are fatal", NewLocationError("a:b", fmt.Errorf("x")), true},
		{"validation errors are fatal", NewValidationError("server_add", fmt.Errorf("x")), true},
		{"transfer errors are not fatal", NewTransferError("a", "b", fmt.Errorf("x")), false},
		{"exec errors are not fatal", NewProcessExecError("scp", 1, fmt.Errorf("x")), false},
		{"listing errors are not fatal", NewListingError("work", fmt.Errorf("x")), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.IsFatal() != tt.fatal {
				t.Errorf("IsFatal() = %v, want %v", tt.err.IsFatal(), tt.fatal)
			}
		})
	}
}
