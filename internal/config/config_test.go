package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("TESTING", "1")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MODEL_PATH", "/opt/models/wine.yaml")
	t.Setenv("MINIO_USE_SSL", "true")

	cfg := Load()

	assert.True(t, cfg.Testing)
	assert.True(t, cfg.Database.Ephemeral)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.Equal(t, "/opt/models/wine.yaml", cfg.Model.Path)
	assert.True(t, cfg.MinIO.UseSSL)
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"TESTING", "DB_DRIVER", "DB_PATH", "MODEL_PATH", "MODEL_BUCKET_KEY", "PORT"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.False(t, cfg.Testing)
	assert.False(t, cfg.Database.Ephemeral)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "wine_records.db", cfg.Database.Path)
	assert.Equal(t, "models/wine_quality.json", cfg.Model.Path)
	assert.Empty(t, cfg.Model.BucketKey)
	assert.Equal(t, "8080", cfg.Port)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "1")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
