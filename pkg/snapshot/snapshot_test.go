package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSnapshot(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	assert.NoError(t, err)
	assert.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(wd) }()

	obj := map[string]int{"a": 1}
	ValidateSnapshot(t, obj, 0)

	files, err := filepath.Glob(filepath.Join(dir, "testdata", "*.json"))
	assert.NoError(t, err)
	assert.Len(t, files, 1)

	// same call counter name, second snapshot is a new file
	ValidateSnapshot(t, obj, 0)
	files, _ = filepath.Glob(filepath.Join(dir, "testdata", "*.json"))
	assert.Len(t, files, 2)
}

func TestValidateSnapshot_compare(t *testing.T) {
	dir := t.TempDir()
	wd, _ := os.Getwd()
	assert.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(wd) }()

	assert.NoError(t, os.MkdirAll("testdata", 0o755))
	assert.NoError(t, os.WriteFile(filepath.Join("testdata", "snapshot.TestValidateSnapshot_compare-0.json"), []byte("{\n  \"b\": 2\n}\n"), 0o644))

	ValidateSnapshot(t, map[string]int{"b": 2}, 0)
}
