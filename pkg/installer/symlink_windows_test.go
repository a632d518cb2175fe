//go:build windows

package installer

import (
	"os"
	"syscall"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestIsSymlinkUnsupported(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"privilege not held", &os.LinkError{Op: "symlink", Err: syscall.Errno(1314)}, true},
		{"ewindows", syscall.EWINDOWS, true},
		{"wrapped errno", errors.Wrap(&os.LinkError{Op: "symlink", Err: syscall.Errno(1314)}, "install"), true},
		{"plain error", errors.New("disk full"), false},
		{"unrelated errno", &os.LinkError{Op: "symlink", Err: syscall.ENOENT}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isSymlinkUnsupported(tt.err))
		})
	}
}
