// Package bundle provides discovery, resolution, and validation of skill
// bundles. A bundle is a directory containing a Markdown manifest with
// optional YAML frontmatter describing the skill, plus an optional
// references/ subdirectory of supporting files.
package bundle

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
)

// manifestCandidates lists the manifest filenames tried per bundle, in
// priority order. Mixed conventions within one root are tolerated: older
// bundles use <name>.md while newer ones use SKILL.md.
func manifestCandidates(name string) []string {
	return []string{"SKILL.md", name + ".md"}
}

// referencesDir is the conventional subdirectory for supporting files.
const referencesDir = "references"

// Bundle represents a discovered skill bundle. It is a view over the
// filesystem, computed fresh on every invocation and never cached.
type Bundle struct {
	Name         string // Directory base name, unique within the root
	Root         string // Absolute path to the bundle directory
	ManifestPath string // Path to the primary manifest file
}

// Metadata represents the YAML frontmatter in a bundle manifest
type Metadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// newBundle constructs a Bundle for the directory at root/name, resolving
// the manifest path by trying each convention in priority order. If no
// candidate exists, ManifestPath points at the primary convention so that
// validation can report a precise missing path.
func newBundle(root, name string) *Bundle {
	dir := filepath.Join(root, name)
	b := &Bundle{
		Name:         name,
		Root:         dir,
		ManifestPath: filepath.Join(dir, manifestCandidates(name)[0]),
	}

	for _, candidate := range manifestCandidates(name) {
		path := filepath.Join(dir, candidate)
		if info, err := os.Stat(path); err == nil && !info.IsDir() && info.Size() > 0 {
			b.ManifestPath = path
			break
		}
	}

	return b
}

// Manifest returns the path of the bundle's manifest file, failing with
// NotFoundError if the file does not exist.
func (b *Bundle) Manifest() (string, error) {
	info, err := os.Stat(b.ManifestPath)
	if err != nil {
		return "", &NotFoundError{Name: b.Name, Path: b.ManifestPath}
	}
	if info.IsDir() {
		return "", &NotFoundError{Name: b.Name, Path: b.ManifestPath}
	}
	return b.ManifestPath, nil
}

// ReadContent reads and returns the manifest's full contents verbatim.
func (b *Bundle) ReadContent() ([]byte, error) {
	path, err := b.Manifest()
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read bundle manifest")
	}

	return content, nil
}

// Supporting returns the sorted paths of files under the bundle's
// references/ subdirectory. A bundle without one yields an empty slice.
func (b *Bundle) Supporting() []string {
	var paths []string

	refDir := filepath.Join(b.Root, referencesDir)
	_ = filepath.Walk(refDir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		paths = append(paths, path)
		return nil
	})

	sort.Strings(paths)
	return paths
}

// Exists reports whether the bundle's manifest file is present on disk.
func (b *Bundle) Exists() bool {
	_, err := b.Manifest()
	return err == nil
}
