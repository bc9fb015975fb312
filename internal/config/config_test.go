package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresRootFolderID(t *testing.T) {
	t.Setenv("GOOGLE_DRIVE_FOLDER_ID", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GOOGLE_DRIVE_FOLDER_ID", "root-123")
	t.Setenv("REDIS_URL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "root-123", cfg.RootFolderID)
	assert.Equal(t, "Drive Files", cfg.FolderName)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "data/hidden.json", cfg.HiddenIDsPath)
	assert.False(t, cfg.UseRedis())
}

func TestLoad_RedisToggle(t *testing.T) {
	t.Setenv("GOOGLE_DRIVE_FOLDER_ID", "root-123")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.UseRedis())
}
