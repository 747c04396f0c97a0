package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/realsense-capture-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeConfigFile(t *testing.T, dir, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, ConfigurationFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// regularFile creates a plain file so that paths below it cannot exist.
func regularFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	return path
}

// ── Path ──────────────────────────────────────────────────────────────────────

func TestConfigurationFileStorage_Path(t *testing.T) {
	s := NewConfigurationFileStorage("/home/user/.realsense-capture-service")
	assert.Equal(t, "/home/user/.realsense-capture-service/config.yaml", s.Path())
}

// ── Exists ────────────────────────────────────────────────────────────────────

func TestConfigurationFileStorage_Exists(t *testing.T) {
	ctx := context.Background()

	t.Run("missing directory", func(t *testing.T) {
		s := NewConfigurationFileStorage(filepath.Join(t.TempDir(), "absent"))
		ok, err := s.Exists(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("directory without file", func(t *testing.T) {
		s := NewConfigurationFileStorage(t.TempDir())
		ok, err := s.Exists(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("file present", func(t *testing.T) {
		dir := t.TempDir()
		writeConfigFile(t, dir, "storage_path: /x\n")
		ok, err := NewConfigurationFileStorage(dir).Exists(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("parent is a regular file", func(t *testing.T) {
		ok, err := NewConfigurationFileStorage(regularFile(t)).Exists(ctx)
		assert.False(t, ok)
		assert.ErrorIs(t, err, ErrConfigReadFailed)
	})
}

func TestConfigurationFileStorage_Exists_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewConfigurationFileStorage(t.TempDir()).Exists(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

// ── Load ──────────────────────────────────────────────────────────────────────

func TestConfigurationFileStorage_Load_Success(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "storage_path: /mnt/captures\n")

	cfg, err := NewConfigurationFileStorage(dir).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.Configuration{StoragePath: "/mnt/captures"}, cfg)
}

func TestConfigurationFileStorage_Load_MissingFile(t *testing.T) {
	dir := t.TempDir()

	_, err := NewConfigurationFileStorage(dir).Load(context.Background())

	require.ErrorIs(t, err, ErrConfigReadFailed)
	assert.Contains(t, err.Error(), filepath.Join(dir, ConfigurationFileName))
}

func TestConfigurationFileStorage_Load_MalformedDocument(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, dir, "unrelated: document\n")

	_, err := NewConfigurationFileStorage(dir).Load(context.Background())

	require.ErrorIs(t, err, ErrConfigParseFailed)
	assert.NotErrorIs(t, err, ErrConfigReadFailed)
	assert.Contains(t, err.Error(), path)
}

func TestConfigurationFileStorage_Load_KeepsModelError(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "")

	_, err := NewConfigurationFileStorage(dir).Load(context.Background())

	assert.ErrorIs(t, err, ErrConfigParseFailed)
	assert.ErrorIs(t, err, models.ErrEmptyConfigurationDocument)
}

// ── Save ──────────────────────────────────────────────────────────────────────

func TestConfigurationFileStorage_Save_CreatesDirectoryAndFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".realsense-capture-service")
	s := NewConfigurationFileStorage(dir)

	err := s.Save(context.Background(), models.Configuration{StoragePath: "/home/u/realsense_captures"})
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "storage_path: /home/u/realsense_captures\n", string(data))
}

func TestConfigurationFileStorage_SaveThenLoad(t *testing.T) {
	s := NewConfigurationFileStorage(t.TempDir())
	want := models.Configuration{StoragePath: "/data/depth: frames"}

	require.NoError(t, s.Save(context.Background(), want))
	got, err := s.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestConfigurationFileStorage_Save_DirectoryCannotBeCreated(t *testing.T) {
	dir := filepath.Join(regularFile(t), "conf")

	err := NewConfigurationFileStorage(dir).Save(context.Background(), models.Configuration{StoragePath: "/x"})

	require.ErrorIs(t, err, ErrConfigDirCreateFailed)
	assert.Contains(t, err.Error(), dir)
}

func TestConfigurationFileStorage_Save_FileCannotBeWritten(t *testing.T) {
	dir := t.TempDir()
	// a directory in place of the document makes the write fail
	require.NoError(t, os.Mkdir(filepath.Join(dir, ConfigurationFileName), 0o755))

	err := NewConfigurationFileStorage(dir).Save(context.Background(), models.Configuration{StoragePath: "/x"})

	assert.ErrorIs(t, err, ErrConfigWriteFailed)
}

func TestConfigurationFileStorage_Save_CancelledContext(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "conf")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewConfigurationFileStorage(dir).Save(ctx, models.Configuration{StoragePath: "/x"})

	assert.ErrorIs(t, err, context.Canceled)
	_, statErr := os.Stat(dir)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}
