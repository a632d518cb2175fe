//go:build unix

package installer

import (
	"syscall"

	"github.com/pkg/errors"
)

// isSymlinkUnsupported reports whether a symlink failure means the
// filesystem or platform cannot create symlinks at all, as opposed to an
// ordinary I/O failure.
func isSymlinkUnsupported(err error) bool {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno == syscall.EPERM || errno == syscall.ENOTSUP || errno == syscall.EOPNOTSUPP
	}
	return false
}
