package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	p, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestLoadInvalidFileReturnsDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.MkdirAll(filepath.Dir(ConfigPath), 0755))
	require.NoError(t, os.WriteFile(ConfigPath, []byte("{not json"), 0644))
	p, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	chdir(t, t.TempDir())
	want := Prefs{Width: 1920, Height: 1080, ShowFPS: true, GridVisible: true, ScenePath: "scenes/alt.yaml"}
	require.NoError(t, Save(want))
	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
