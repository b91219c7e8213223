package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextMissingFile(t *testing.T) {
	parser := NewResumeParserService()

	_, err := parser.ExtractText(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.ErrorContains(t, err, "file does not exist")
}

func TestExtractTextUnsupportedExtension(t *testing.T) {
	parser := NewResumeParserService()

	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text resume"), 0644))

	_, err := parser.ExtractText(path)
	assert.ErrorContains(t, err, "unsupported file extension")
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "collapses whitespace",
			in:   "  Jane   Doe  \n\n\n  Engineer ",
			want: "Jane Doe\nEngineer",
		},
		{
			name: "empty input",
			in:   "   \n  ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}
