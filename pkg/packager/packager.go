// Package packager archives a bundle directory into a single
// distributable zip file, excluding OS metadata, cache, and
// version-control entries.
package packager

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/skillpack-dev/skillpack/pkg/bundle"
	"github.com/skillpack-dev/skillpack/pkg/logger"
)

// DefaultExcludes are the glob patterns never included in an archive.
// Matching is against the entry's base name.
var DefaultExcludes = []string{
	".DS_Store",
	"Thumbs.db",
	"__pycache__",
	"*.pyc",
	".git",
	".svn",
	".hg",
	"node_modules",
	"dist",
}

// Artifact describes a written archive
type Artifact struct {
	Path    string   // Absolute or caller-relative path of the zip file
	Entries []string // Archive entry names in the order written
}

// IOError indicates the bundle's contents could not be read
type IOError struct {
	Path  string
	Cause error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Cause)
}

func (e *IOError) Unwrap() error {
	return e.Cause
}

// WriteError indicates the archive destination is not writable
type WriteError struct {
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Cause)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}

// Packager archives bundles with a fixed, pre-compiled exclusion set.
type Packager struct {
	excludes []glob.Glob
}

// Option is a function that configures a Packager
type Option func(*Packager) error

// WithExcludes replaces the default exclusion patterns
func WithExcludes(patterns ...string) Option {
	return func(p *Packager) error {
		compiled, err := compilePatterns(patterns)
		if err != nil {
			return err
		}
		p.excludes = compiled
		return nil
	}
}

// New creates a Packager with the default exclusion patterns unless
// overridden by options.
func New(opts ...Option) (*Packager, error) {
	compiled, err := compilePatterns(DefaultExcludes)
	if err != nil {
		return nil, err
	}

	p := &Packager{excludes: compiled}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

func compilePatterns(patterns []string) ([]glob.Glob, error) {
	compiled := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid exclusion pattern %q", pattern)
		}
		compiled = append(compiled, g)
	}
	return compiled, nil
}

func (p *Packager) excluded(baseName string) bool {
	for _, g := range p.excludes {
		if g.Match(baseName) {
			return true
		}
	}
	return false
}

// Package archives the bundle's directory into <outputDir>/<name>.zip,
// keeping the bundle's directory name as the single top-level entry so
// extraction reproduces <name>/... . Any pre-existing artifact at the
// output path is replaced. The archive is written to a temporary file and
// renamed into place, so a failure never leaves a partial zip behind.
func (p *Packager) Package(ctx context.Context, b *bundle.Bundle, outputDir string) (*Artifact, error) {
	if _, err := os.Stat(b.Root); err != nil {
		return nil, &IOError{Path: b.Root, Cause: err}
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, &WriteError{Path: outputDir, Cause: err}
	}

	outputPath := filepath.Join(outputDir, b.Name+".zip")
	if err := os.Remove(outputPath); err != nil && !os.IsNotExist(err) {
		return nil, &WriteError{Path: outputPath, Cause: err}
	}

	tmpFile, err := os.CreateTemp(outputDir, b.Name+".*.zip.tmp")
	if err != nil {
		return nil, &WriteError{Path: outputDir, Cause: err}
	}
	tmpPath := tmpFile.Name()

	entries, err := p.writeArchive(tmpFile, b)
	closeErr := tmpFile.Close()
	if err == nil && closeErr != nil {
		err = &WriteError{Path: tmpPath, Cause: closeErr}
	}
	if err != nil {
		os.Remove(tmpPath)
		return nil, err
	}

	if err := os.Rename(tmpPath, outputPath); err != nil {
		os.Remove(tmpPath)
		return nil, &WriteError{Path: outputPath, Cause: err}
	}

	logger.G(ctx).WithFields(logrus.Fields{
		"bundle":  b.Name,
		"archive": outputPath,
		"entries": len(entries),
	}).Debug("Packaged bundle")

	return &Artifact{
		Path:    outputPath,
		Entries: entries,
	}, nil
}

// writeArchive walks the bundle in lexical order and streams each entry
// into the zip writer.
func (p *Packager) writeArchive(w io.Writer, b *bundle.Bundle) ([]string, error) {
	zw := zip.NewWriter(w)

	var entries []string
	walkErr := filepath.WalkDir(b.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return &IOError{Path: path, Cause: err}
		}

		relPath, err := filepath.Rel(b.Root, path)
		if err != nil {
			return &IOError{Path: path, Cause: err}
		}

		if relPath == "." {
			return nil
		}

		if p.excluded(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		entryName := filepath.ToSlash(filepath.Join(b.Name, relPath))

		if d.IsDir() {
			if _, err := zw.Create(entryName + "/"); err != nil {
				return &WriteError{Path: entryName, Cause: err}
			}
			entries = append(entries, entryName+"/")
			return nil
		}

		return func() error {
			src, err := os.Open(path)
			if err != nil {
				return &IOError{Path: path, Cause: err}
			}
			defer src.Close()

			dst, err := zw.Create(entryName)
			if err != nil {
				return &WriteError{Path: entryName, Cause: err}
			}

			if _, err := io.Copy(dst, src); err != nil {
				return &WriteError{Path: entryName, Cause: err}
			}

			entries = append(entries, entryName)
			return nil
		}()
	})

	if walkErr != nil {
		zw.Close()
		return nil, walkErr
	}

	if err := zw.Close(); err != nil {
		return nil, &WriteError{Path: b.Name + ".zip", Cause: err}
	}

	return entries, nil
}
