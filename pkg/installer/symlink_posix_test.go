//go:build unix

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
		{"eperm", &os.LinkError{Op: "symlink", Err: syscall.EPERM}, true},
		{"enotsup", syscall.ENOTSUP, true},
		{"wrapped eperm", errors.Wrap(&os.LinkError{Op: "symlink", Err: syscall.EPERM}, "install"), true},
		{"plain error", errors.New("disk full"), false},
		{"unrelated errno", &os.LinkError{Op: "symlink", Err: syscall.ENOENT}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isSymlinkUnsupported(tt.err))
		})
	}
}
