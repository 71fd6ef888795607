// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package staging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStage(t *testing.T) {
	t.Run("writes content with the upload's extension", func(t *testing.T) {
		dir := t.TempDir()

		a, err := Stage(dir, "report.PDF", []byte("%PDF fake"))
		require.NoError(t, err)
		defer a.Remove()

		assert.Equal(t, dir, filepath.Dir(a.Path()))
		assert.True(t, strings.HasSuffix(a.Path(), ".PDF"), "path %q should keep the extension", a.Path())

		data, err := os.ReadFile(a.Path())
		require.NoError(t, err)
		assert.Equal(t, "%PDF fake", string(data))
	})

	t.Run("artifacts never alias", func(t *testing.T) {
		dir := t.TempDir()

		a, err := Stage(dir, "sample.txt", []byte("one"))
		require.NoError(t, err)
		defer a.Remove()
		b, err := Stage(dir, "sample.txt", []byte("two"))
		require.NoError(t, err)
		defer b.Remove()

		assert.NotEqual(t, a.Path(), b.Path())
	})

	t.Run("filename without extension", func(t *testing.T) {
		a, err := Stage(t.TempDir(), "LICENSE", []byte("text"))
		require.NoError(t, err)
		defer a.Remove()

		assert.NotEmpty(t, a.Path())
	})

	t.Run("hostile filename gets no suffix", func(t *testing.T) {
		dir := t.TempDir()
		a, err := Stage(dir, "x.t*t", []byte("text"))
		require.NoError(t, err)
		defer a.Remove()

		assert.Equal(t, dir, filepath.Dir(a.Path()))
		assert.NotContains(t, filepath.Base(a.Path()), "*")
	})

	t.Run("missing staging directory", func(t *testing.T) {
		_, err := Stage(filepath.Join(t.TempDir(), "missing"), "a.txt", []byte("x"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "creating staging file")
	})
}

func TestRemove(t *testing.T) {
	t.Run("deletes the staged file", func(t *testing.T) {
		a, err := Stage(t.TempDir(), "a.txt", []byte("x"))
		require.NoError(t, err)

		require.NoError(t, a.Remove())
		_, statErr := os.Stat(a.Path())
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("already gone is not an error", func(t *testing.T) {
		a, err := Stage(t.TempDir(), "a.txt", []byte("x"))
		require.NoError(t, err)

		require.NoError(t, os.Remove(a.Path()))
		assert.NoError(t, a.Remove())
	})
}
