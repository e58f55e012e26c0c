package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nishantsir0hi/streamify/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")

	cfg, err := config.Load(missingEnvFile(t))

	require.NoError(t, err)
	assert.Equal(t, config.BlobBackendFS, cfg.Storage.BlobBackend)
	assert.Equal(t, config.MetadataBackendMongo, cfg.Storage.MetadataBackend)
	assert.Equal(t, int64(1073741824), cfg.Upload.MaxVideoSize)
	assert.False(t, cfg.Upload.RequireThumbnail)
	assert.Equal(t, "movies", cfg.Mongo.Collection)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, time.Hour, cfg.Cleanup.Every)
}

func TestLoad_MongoURIRequiredForMongoBackend(t *testing.T) {
	t.Setenv("MONGODB_URI", "")

	_, err := config.Load(missingEnvFile(t))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "URI")
}

func TestLoad_PostgresBackendSkipsMongoSection(t *testing.T) {
	t.Setenv("MONGODB_URI", "")
	t.Setenv("METADATA_BACKEND", "postgres")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "user")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "streamify")

	cfg, err := config.Load(missingEnvFile(t))

	require.NoError(t, err)
	assert.Equal(t, config.MetadataBackendPostgres, cfg.Storage.MetadataBackend)
	assert.Equal(t, 5432, cfg.Database.Port)
}

func TestLoad_MinioSectionRequiredForMinioBackend(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("BLOB_BACKEND", "minio")

	_, err := config.Load(missingEnvFile(t))

	require.Error(t, err)
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("BLOB_BACKEND", "ftp")

	_, err := config.Load(missingEnvFile(t))

	require.Error(t, err)
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	content := "MONGODB_URI=mongodb://db:27017\nUPLOAD_REQUIRE_THUMBNAIL=true\nUPLOAD_MAX_VIDEO_SIZE=2147483648\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))
	t.Setenv("MONGODB_URI", "")
	// godotenv never overrides variables that are already set
	require.NoError(t, os.Unsetenv("MONGODB_URI"))
	t.Cleanup(func() {
		os.Unsetenv("UPLOAD_REQUIRE_THUMBNAIL")
		os.Unsetenv("UPLOAD_MAX_VIDEO_SIZE")
	})

	cfg, err := config.Load(envFile)

	require.NoError(t, err)
	assert.Equal(t, "mongodb://db:27017", cfg.Mongo.URI)
	assert.True(t, cfg.Upload.RequireThumbnail)
	assert.Equal(t, int64(2147483648), cfg.Upload.MaxVideoSize)
}

func TestUploadConfig_MaxRequestSize(t *testing.T) {
	cfg := config.UploadConfig{MaxVideoSize: 1000, MaxThumbnailSize: 10}

	assert.Equal(t, int64(1000+10+1<<20), cfg.MaxRequestSize())
}

func TestDatabaseConfig_URLAndDSN(t *testing.T) {
	cfg := config.DatabaseConfig{Host: "db", Port: 5433, User: "app", Password: "p@ss", Name: "streamify", SSLMode: "disable"}

	assert.Equal(t, "postgres://app:p%40ss@db:5433/streamify?sslmode=disable", cfg.URL())
	assert.Equal(t, "host=db port=5433 user=app password=p@ss dbname=streamify sslmode=disable", cfg.DSN())
}

func TestLoadDatabase(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "user")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "streamify")

	cfg, err := config.LoadDatabase(missingEnvFile(t))

	require.NoError(t, err)
	assert.Equal(t, 5432, cfg.Port)
	assert.Equal(t, "disable", cfg.SSLMode)
}
