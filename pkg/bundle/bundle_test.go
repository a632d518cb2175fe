package bundle

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadContent(t *testing.T) {
	root := t.TempDir()
	writeBundle(t, root, "alpha", "SKILL.md", alphaContent)

	b, err := NewLocator(WithRoot(root)).Resolve(context.Background(), "alpha")
	require.NoError(t, err)

	content, err := b.ReadContent()
	require.NoError(t, err)
	assert.Equal(t, alphaContent, string(content), "content must be returned verbatim")
	assert.True(t, b.Exists())
}

func TestReadContent_MissingManifest(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty"), 0o755))

	b, err := NewLocator(WithRoot(root)).Resolve(context.Background(), "empty")
	require.NoError(t, err)

	_, err = b.ReadContent()
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.False(t, b.Exists())
}

func TestSupporting(t *testing.T) {
	root := t.TempDir()
	dir := writeBundle(t, root, "alpha", "SKILL.md", alphaContent)

	refDir := filepath.Join(dir, "references")
	require.NoError(t, os.MkdirAll(filepath.Join(refDir, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(refDir, "zz.md"), []byte("z"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(refDir, "aa.md"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(refDir, "nested", "deep.md"), []byte("d"), 0o644))

	b, err := NewLocator(WithRoot(root)).Resolve(context.Background(), "alpha")
	require.NoError(t, err)

	supporting := b.Supporting()
	assert.Equal(t, []string{
		filepath.Join(refDir, "aa.md"),
		filepath.Join(refDir, "nested", "deep.md"),
		filepath.Join(refDir, "zz.md"),
	}, supporting)
}

func TestSupporting_NoReferencesDir(t *testing.T) {
	root := t.TempDir()
	writeBundle(t, root, "alpha", "SKILL.md", alphaContent)

	b, err := NewLocator(WithRoot(root)).Resolve(context.Background(), "alpha")
	require.NoError(t, err)
	assert.Empty(t, b.Supporting())
}

func TestParseMetadata(t *testing.T) {
	t.Run("with frontmatter", func(t *testing.T) {
		md, present, err := ParseMetadata([]byte(alphaContent))
		require.NoError(t, err)
		require.True(t, present)
		assert.Equal(t, "alpha", md.Name)
		assert.Equal(t, "A test bundle", md.Description)
	})

	t.Run("plain markdown", func(t *testing.T) {
		md, present, err := ParseMetadata([]byte("# No frontmatter\n\nBody.\n"))
		require.NoError(t, err)
		assert.False(t, present)
		assert.Nil(t, md)
	})
}

func TestBody(t *testing.T) {
	body := Body(alphaContent)
	assert.NotContains(t, body, "description:")
	assert.Contains(t, body, "# Alpha")

	plain := "# Plain\n\nNo frontmatter.\n"
	assert.Equal(t, plain, Body(plain))
}
