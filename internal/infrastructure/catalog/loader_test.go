package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/DailyWish/internal/domain/entity"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wishes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Default(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, len(entity.DefaultWishes), c.Len())
}

func TestLoad_YAML(t *testing.T) {
	c, err := Load(writeFile(t, "- Have a calm day.\n- \"May: colons work too\"\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	w, _ := c.At(1)
	assert.Equal(t, "May: colons work too", w)
}

func TestLoad_JSON(t *testing.T) {
	c, err := Load(writeFile(t, `["one", "two", "three"]`))
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "wish: not a list"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "[]"))
	assert.ErrorIs(t, err, entity.ErrEmptyCatalog)
}
