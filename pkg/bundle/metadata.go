package bundle

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
)

// ParseMetadata parses the YAML frontmatter of a manifest. The second
// return value reports whether a frontmatter block was present at all;
// manifests without one are legal plain Markdown.
func ParseMetadata(content []byte) (*Metadata, bool, error) {
	if !bytes.HasPrefix(content, []byte("---")) {
		return nil, false, nil
	}

	md := goldmark.New(
		goldmark.WithExtensions(meta.Meta),
	)

	var buf bytes.Buffer
	pctx := parser.NewContext()

	if err := md.Convert(content, &buf, parser.WithContext(pctx)); err != nil {
		return nil, true, errors.Wrap(err, "failed to parse manifest markdown")
	}

	metaData := meta.Get(pctx)
	if metaData == nil {
		return nil, false, nil
	}

	name, _ := metaData["name"].(string)
	description, _ := metaData["description"].(string)

	return &Metadata{
		Name:        name,
		Description: description,
	}, true, nil
}

// Body returns the manifest content with any YAML frontmatter removed.
func Body(content string) string {
	if !strings.HasPrefix(content, "---") {
		return content
	}

	lines := strings.Split(content, "\n")
	frontmatterEnd := -1

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			frontmatterEnd = i
			break
		}
	}

	if frontmatterEnd == -1 {
		return content
	}

	return strings.TrimLeft(strings.Join(lines[frontmatterEnd+1:], "\n"), "\n")
}
