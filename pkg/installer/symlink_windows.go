//go:build windows

package installer

import (
	"syscall"

	"github.com/pkg/errors"
)

// isSymlinkUnsupported reports whether a symlink failure means the
// platform refused to create symlinks. On Windows this is the common case:
// creating symlinks requires either developer mode or elevated privileges.
func isSymlinkUnsupported(err error) bool {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		// ERROR_PRIVILEGE_NOT_HELD
		return errno == 1314 || errno == syscall.EWINDOWS
	}
	return false
}
