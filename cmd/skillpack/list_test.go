package main

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateDescription(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"short untouched", "brief", "brief"},
		{"ascii truncated", "aaaaaaaaaabbbbbbbbbbccccccccccddddddddddeeeeeeeeeeffffffffffg", "aaaaaaaaaabbbbbbbbbbccccccccccddddddddddeeeeeeeeeefffffff..."},
		{"multi-byte untouched", "説明テキスト", "説明テキスト"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, truncateDescription(tt.in, 60))
		})
	}
}

func TestTruncateDescriptionKeepsRunesWhole(t *testing.T) {
	long := ""
	for i := 0; i < 40; i++ {
		long += "日本"
	}

	got := truncateDescription(long, 60)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 60, len([]rune(got)))
}
