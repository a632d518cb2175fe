package version

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	info := Get()

	assert.Equal(t, Version, info.Version)
	assert.Equal(t, GitCommit, info.GitCommit)
	assert.NotEmpty(t, info.GoVersion, "Go version should not be empty")
	assert.Contains(t, info.GoVersion, "go", "Go version should contain 'go'")
	assert.Contains(t, info.Platform, "/")
}

func TestInfo_String(t *testing.T) {
	info := Info{
		Version:   "1.0.0",
		GitCommit: "abc123",
		GoVersion: "go1.25.1",
		Platform:  "linux/amd64",
	}

	result := info.String()
	expected := "Version: 1.0.0, GitCommit: abc123, GoVersion: go1.25.1, Platform: linux/amd64"
	assert.Equal(t, expected, result)
}

func TestInfo_JSON(t *testing.T) {
	info := Info{
		Version:   "1.0.0",
		GitCommit: "abc123",
		GoVersion: "go1.25.1",
		Platform:  "linux/amd64",
	}

	jsonString, err := info.JSON()
	require.NoError(t, err)

	var parsed Info
	err = json.Unmarshal([]byte(jsonString), &parsed)
	require.NoError(t, err)

	assert.Equal(t, info.Version, parsed.Version)
	assert.Equal(t, info.GitCommit, parsed.GitCommit)
	assert.Equal(t, info.GoVersion, parsed.GoVersion)
	assert.Equal(t, info.Platform, parsed.Platform)

	assert.True(t, strings.Contains(jsonString, `"version"`))
	assert.True(t, strings.Contains(jsonString, `"gitCommit"`))
	assert.True(t, strings.Contains(jsonString, `"goVersion"`))
	assert.True(t, strings.Contains(jsonString, `"platform"`))
}
