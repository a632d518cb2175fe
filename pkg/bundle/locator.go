package bundle

import (
	"context"
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/skillpack-dev/skillpack/pkg/logger"
)

// Locator discovers bundles under a single root directory.
type Locator struct {
	root string
}

// Option is a function that configures a Locator
type Option func(*Locator)

// WithRoot sets the root directory bundles are discovered under
func WithRoot(root string) Option {
	return func(l *Locator) {
		l.root = root
	}
}

// NewLocator creates a new bundle locator
func NewLocator(opts ...Option) *Locator {
	l := &Locator{root: "."}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Root returns the root directory the locator discovers bundles under.
func (l *Locator) Root() string {
	return l.root
}

// List enumerates the immediate subdirectories of the root, each becoming
// a candidate bundle. The order follows directory-entry order; callers
// needing determinism must sort. An empty root yields an empty slice; a
// missing root fails with NotFoundError.
func (l *Locator) List(ctx context.Context) ([]*Bundle, error) {
	entries, err := os.ReadDir(l.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: l.root}
		}
		return nil, errors.Wrapf(err, "failed to read bundle root %s", l.root)
	}

	var bundles []*Bundle
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		bundles = append(bundles, newBundle(l.root, entry.Name()))
	}

	logger.G(ctx).WithFields(logrus.Fields{
		"root":    l.root,
		"bundles": len(bundles),
	}).Debug("Enumerated bundle root")

	return bundles, nil
}

// Resolve looks up one bundle by exact name match. A miss fails with
// NotFoundError carrying the sorted names of available bundles.
func (l *Locator) Resolve(ctx context.Context, name string) (*Bundle, error) {
	bundles, err := l.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, b := range bundles {
		if b.Name == name {
			logger.G(ctx).WithFields(logrus.Fields{
				"bundle":   b.Name,
				"manifest": b.ManifestPath,
			}).Debug("Resolved bundle")
			return b, nil
		}
	}

	logger.G(ctx).WithField("bundle", name).Debug("Bundle not found")

	return nil, &NotFoundError{
		Name:      name,
		Available: names(bundles),
	}
}

// Names returns the sorted names of all bundles under the root.
func (l *Locator) Names(ctx context.Context) ([]string, error) {
	bundles, err := l.List(ctx)
	if err != nil {
		return nil, err
	}
	return names(bundles), nil
}

func names(bundles []*Bundle) []string {
	out := make([]string, 0, len(bundles))
	for _, b := range bundles {
		out = append(out, b.Name)
	}
	sort.Strings(out)
	return out
}
