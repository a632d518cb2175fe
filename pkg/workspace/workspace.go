// Package workspace resolves the repository root, skills root, and dist
// directory for a single invocation. Nothing is cached between runs: the
// layout is re-detected every time so bundles added or removed between
// invocations are always seen.
package workspace

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/skillpack-dev/skillpack/pkg/logger"
)

const (
	// SkillsDirName is the conventional subdirectory holding bundles
	SkillsDirName = "skills"
	// DistDirName is the conventional subdirectory for packaged artifacts
	DistDirName = "dist"
)

// Workspace describes the resolved on-disk layout for one invocation
type Workspace struct {
	RepoRoot   string // Directory containing the skills root
	SkillsRoot string // Directory whose subdirectories are bundles
	DistDir    string // Default output directory for archives
}

// Resolve determines the workspace layout. An explicit skills root (from
// flag, environment, or config) wins; otherwise the repository root is
// auto-detected by walking up from the working directory looking for a
// skills/ subdirectory, falling back to the executable's parent directory.
func Resolve(ctx context.Context, explicitRoot string) (*Workspace, error) {
	if explicitRoot != "" {
		abs, err := filepath.Abs(explicitRoot)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve root %s", explicitRoot)
		}
		repoRoot := filepath.Dir(abs)
		ws := &Workspace{
			RepoRoot:   repoRoot,
			SkillsRoot: abs,
			DistDir:    filepath.Join(repoRoot, DistDirName),
		}
		logResolved(ctx, ws, "explicit root")
		return ws, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "failed to determine working directory")
	}

	if repoRoot, ok := findUp(cwd); ok {
		ws := fromRepoRoot(repoRoot)
		logResolved(ctx, ws, "working directory")
		return ws, nil
	}

	if exe, err := os.Executable(); err == nil {
		if repoRoot, ok := findUp(filepath.Dir(exe)); ok {
			ws := fromRepoRoot(repoRoot)
			logResolved(ctx, ws, "executable directory")
			return ws, nil
		}
	}

	return nil, errors.Errorf("no %s/ directory found above %s; pass --root or set SKILLPACK_ROOT", SkillsDirName, cwd)
}

func logResolved(ctx context.Context, ws *Workspace, via string) {
	logger.G(ctx).WithFields(logrus.Fields{
		"repo_root":   ws.RepoRoot,
		"skills_root": ws.SkillsRoot,
		"via":         via,
	}).Debug("Resolved workspace")
}

func fromRepoRoot(repoRoot string) *Workspace {
	return &Workspace{
		RepoRoot:   repoRoot,
		SkillsRoot: filepath.Join(repoRoot, SkillsDirName),
		DistDir:    filepath.Join(repoRoot, DistDirName),
	}
}

// findUp walks from start toward the filesystem root looking for a
// directory containing a skills/ subdirectory.
func findUp(start string) (string, bool) {
	dir := start
	for {
		candidate := filepath.Join(dir, SkillsDirName)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return dir, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
