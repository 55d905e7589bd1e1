package config_test

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/enterprise-api/pkg/config"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	v.Set("DB_PASSWORD", "secret")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "enterprise-api", cfg.App.Name)
	assert.Equal(t, config.StoragePostgres, cfg.Storage.Driver)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 25, cfg.DB.MaxConns)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Empty(t, cfg.JWT.Secret)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("STORAGE_DRIVER", "MEMORY")
	v.Set("HTTP_PORT", "9090")
	v.Set("LOG_LEVEL", "debug")
	v.Set("JWT_SECRET", "s3cret")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, config.StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
}

func TestFromViper_Errores(t *testing.T) {
	v := viper.New()
	_, err := config.FromViper(v)
	assert.Error(t, err, "postgres sin credenciales")

	v = viper.New()
	v.Set("STORAGE_DRIVER", "mongo")
	_, err = config.FromViper(v)
	assert.ErrorContains(t, err, "STORAGE_DRIVER")

	v = viper.New()
	v.Set("STORAGE_DRIVER", "memory")
	v.Set("HTTP_PORT", 70000)
	_, err = config.FromViper(v)
	assert.ErrorContains(t, err, "HTTP_PORT")
}

func TestLoad_DesdeEntorno(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("APP_NAME", "enterprise-api-test")
	t.Setenv("DB_PORT", "6543")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "enterprise-api-test", cfg.App.Name)
	assert.Equal(t, 6543, cfg.DB.Port)
}

func TestDBConfig_DSN(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "enterprises", SSLMode: "require"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/enterprises?sslmode=require", c.DSN())

	c.DatabaseURL = "postgres://other"
	assert.Equal(t, "postgres://other", c.ConnectionString())
}
