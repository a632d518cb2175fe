// Package installer places a bundle's manifest into a target project's
// slash-command directory, either by copying bytes or creating a symlink.
package installer

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/skillpack-dev/skillpack/pkg/bundle"
	"github.com/skillpack-dev/skillpack/pkg/logger"
)

// commandsSubdir is where installed command files live within a target project.
const commandsSubdir = ".claude/commands"

// commandSuffixes lists the bundle-name suffixes stripped when deriving a
// command name, in match order. Exactly one trailing suffix is removed;
// the list is an explicit enumeration so behavior stays auditable.
var commandSuffixes = []string{
	"-modelling",
	"-modeling",
	"-pattern",
	"-skill",
}

// Mode selects how the manifest reaches the target
type Mode int

const (
	// ModeCopy copies the manifest bytes into the target
	ModeCopy Mode = iota
	// ModeSymlink links the target to the manifest's absolute path
	ModeSymlink
)

func (m Mode) String() string {
	if m == ModeSymlink {
		return "symlink"
	}
	return "copy"
}

// Target describes the destination project for an install
type Target struct {
	Dir  string // Project root; the command directory is created beneath it
	Mode Mode
}

// InstalledLocation describes the outcome of a successful install
type InstalledLocation struct {
	Path        string // Destination file or symlink
	CommandName string // Derived slash-command name
	Mode        Mode
}

// UnsupportedOperationError indicates the requested install mode cannot
// work on this platform or filesystem.
type UnsupportedOperationError struct {
	Op    string
	Cause error
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("%s is not supported on this platform: %v", e.Op, e.Cause)
}

func (e *UnsupportedOperationError) Unwrap() error {
	return e.Cause
}

// DeriveCommandName derives the slash-command name from a bundle name by
// stripping at most one known trailing suffix. Names without a matching
// suffix are returned unchanged.
func DeriveCommandName(name string) string {
	for _, suffix := range commandSuffixes {
		if trimmed := strings.TrimSuffix(name, suffix); trimmed != name && trimmed != "" {
			return trimmed
		}
	}
	return name
}

// Install places the bundle's manifest at
// <target.Dir>/.claude/commands/<command>.md. Copy mode overwrites any
// existing file (last-write-wins); symlink mode replaces whatever is at
// the destination with a link to the manifest's absolute path. Both modes
// are idempotent and never mutate the source bundle.
func Install(ctx context.Context, b *bundle.Bundle, target Target) (*InstalledLocation, error) {
	manifest, err := b.Manifest()
	if err != nil {
		return nil, err
	}

	commandName := DeriveCommandName(b.Name)
	commandDir := filepath.Join(target.Dir, commandsSubdir)
	if err := os.MkdirAll(commandDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create command directory %s", commandDir)
	}

	dest := filepath.Join(commandDir, commandName+filepath.Ext(manifest))

	switch target.Mode {
	case ModeSymlink:
		if err := installSymlink(manifest, dest); err != nil {
			return nil, err
		}
	default:
		if err := installCopy(manifest, dest); err != nil {
			return nil, err
		}
	}

	logger.G(ctx).WithFields(logrus.Fields{
		"bundle":  b.Name,
		"command": commandName,
		"mode":    target.Mode.String(),
		"dest":    dest,
	}).Debug("Installed bundle manifest")

	return &InstalledLocation{
		Path:        dest,
		CommandName: commandName,
		Mode:        target.Mode,
	}, nil
}

func installCopy(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, "failed to open manifest %s", src)
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return errors.Wrap(err, "failed to stat manifest")
	}

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", dst)
	}
	defer dstFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return errors.Wrapf(err, "failed to copy manifest to %s", dst)
	}

	return nil
}

func installSymlink(src, dst string) error {
	absSrc, err := filepath.Abs(src)
	if err != nil {
		return errors.Wrapf(err, "failed to resolve absolute path of %s", src)
	}

	// Remove whatever occupies the destination so re-installs converge on
	// exactly one symlink.
	if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to remove existing file at %s", dst)
	}

	if err := os.Symlink(absSrc, dst); err != nil {
		if isSymlinkUnsupported(err) {
			return &UnsupportedOperationError{Op: "symlink", Cause: err}
		}
		return errors.Wrapf(err, "failed to create symlink at %s", dst)
	}

	return nil
}
