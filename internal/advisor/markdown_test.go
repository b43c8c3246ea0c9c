package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripMarkdown(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"**Bold** and ### Heading", "Bold and  Heading"},
		{"# Title", " Title"},
		{"### Sub\n#### Deep", " Sub\n Deep"},
		{"**bold** and *it*", "bold and it"},
		{"plain 中文", "plain 中文"},
		{"", ""},
	}
	for _, tt := range tests {
		got := StripMarkdown(tt.in)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, got, StripMarkdown(got), "idempotent")
		assert.NotContains(t, got, "#")
		assert.NotContains(t, got, "*")
	}
}
