package initializers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitStorageCreatesDirectories(t *testing.T) {
	base := t.TempDir()
	t.Setenv("GENERATED_DIR", filepath.Join(base, "gen"))
	t.Setenv("UPLOADS_DIR", filepath.Join(base, "logos"))

	InitStorage()

	assert.Equal(t, filepath.Join(base, "gen"), GeneratedDir)
	assert.Equal(t, filepath.Join(base, "logos"), UploadsDir)

	for _, dir := range []string{GeneratedDir, UploadsDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_ENV_VAR", "value")
	assert.Equal(t, "value", getEnv("TEST_ENV_VAR", "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT_ENV_VAR", "default"))
}
