package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("APPDATA", "")
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, "tinydesk")
}

func TestLoadMerged_IgnoreConfig(t *testing.T) {
	isolate(t)

	cfg, used, err := LoadMerged(Options{
		IgnoreConfig:   true,
		Output:         "out",
		TimeoutSeconds: 15,
		TolerateStatus: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "(ignored config)", used)
	assert.Equal(t, "out", cfg.Output)
	assert.Equal(t, 15*time.Second, cfg.Timeout())
	assert.True(t, cfg.TolerateStatus)
	assert.Equal(t, DefaultArchiveURL, cfg.ArchiveURL)
	assert.Empty(t, cfg.UserAgent)
}

func TestLoadMerged_NoActiveConfig(t *testing.T) {
	isolate(t)

	cfg, used, err := LoadMerged(Options{})
	require.NoError(t, err)

	assert.Contains(t, used, "default config in memory")
	assert.Equal(t, ".", cfg.Output)
	assert.Equal(t, time.Duration(0), cfg.Timeout())
	assert.False(t, cfg.NoProgress)
}

func TestLoadMerged_ActiveProfileWithOverrides(t *testing.T) {
	isolate(t)
	require.NoError(t, os.MkdirAll(ConfigsDir(), 0755))

	profile := &Config{
		Output:         "concerts",
		UserAgent:      "tinydesk-test",
		TimeoutSeconds: 30,
		ArchiveURL:     "",
	}
	path, err := ConfigPathByLabel("Work")
	require.NoError(t, err)
	require.NoError(t, SaveYAML(profile, path))
	require.NoError(t, SwitchConfig("Work"))

	cfg, used, err := LoadMerged(Options{Output: "override", NoProgress: true})
	require.NoError(t, err)

	assert.Equal(t, path, used)
	assert.Equal(t, "override", cfg.Output)
	assert.Equal(t, "tinydesk-test", cfg.UserAgent)
	assert.Equal(t, 30, cfg.TimeoutSeconds)
	assert.True(t, cfg.NoProgress)
	assert.Equal(t, DefaultArchiveURL, cfg.ArchiveURL)
}

func TestLoadMerged_BrokenYAML(t *testing.T) {
	isolate(t)
	require.NoError(t, os.MkdirAll(ConfigsDir(), 0755))

	path, err := ConfigPathByLabel("Broken")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("output: [unclosed"), 0644))
	require.NoError(t, SwitchConfig("Broken"))

	_, _, err = LoadMerged(Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestProfiles(t *testing.T) {
	root := isolate(t)
	assert.Equal(t, filepath.Join(root, "configs"), ConfigsDir())

	_, err := CurrentLabel()
	assert.ErrorIs(t, err, ErrNoConfig)

	assert.Error(t, SwitchConfig("Missing"))
	assert.Error(t, SwitchConfig(" "))

	for _, label := range []string{"b", "a"} {
		path, err := ConfigPathByLabel(label)
		require.NoError(t, err)
		require.NoError(t, SaveYAML(DefaultConfig(), path))
	}
	require.NoError(t, os.WriteFile(filepath.Join(ConfigsDir(), "notes.txt"), []byte("x"), 0644))
	require.NoError(t, SwitchConfig("b"))

	list, err := ListConfigs()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].Label)
	assert.False(t, list[0].Active)
	assert.Equal(t, "b", list[1].Label)
	assert.True(t, list[1].Active)

	label, err := CurrentLabel()
	require.NoError(t, err)
	assert.Equal(t, "b", label)
}
