package services

import (
	"mime/multipart"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveFileRejectsUnknownExtension(t *testing.T) {
	svc := NewStorageService(t.TempDir())

	for _, name := range []string{"resume.txt", "resume.exe", "resume"} {
		_, _, err := svc.SaveFile(&multipart.FileHeader{Filename: name})
		assert.ErrorContains(t, err, "invalid file extension")
	}
}

func TestEnsureUploadDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	svc := NewStorageService(dir)

	require.NoError(t, svc.EnsureUploadDir())

	// Idempotent
	require.NoError(t, svc.EnsureUploadDir())
}

func TestGetFilePath(t *testing.T) {
	svc := NewStorageService("/data/uploads")
	assert.Equal(t, filepath.Join("/data/uploads", "resume_x.pdf"), svc.GetFilePath("resume_x.pdf"))
}
