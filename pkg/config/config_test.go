package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	cfg := fromViper(v)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/api/v1", cfg.APIPrefix)
	assert.Equal(t, "Springdale Public School", cfg.School.Name)
	assert.True(t, cfg.School.SeedDemo)
	assert.True(t, cfg.Metrics.Enabled)
	assert.False(t, cfg.Events.Enabled)
	assert.Equal(t, "school-admin:events", cfg.Events.Channel)
	assert.Equal(t, 2, cfg.Events.Workers)
	assert.Equal(t, 3, cfg.Events.MaxRetries)
	assert.Equal(t, int64(5*1024*1024), cfg.Import.MaxFileSizeBytes)
	assert.Nil(t, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("ENV", EnvProduction)
	v.Set("ALLOWED_ORIGINS", " https://a.example , ,https://b.example")
	v.Set("IMPORT_MAX_FILE_SIZE", -1)
	v.Set("SCHOOL_NAME", "Hillcrest Academy")
	cfg := fromViper(v)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, int64(defaultImportMaxSize), cfg.Import.MaxFileSizeBytes)
	assert.Equal(t, "Hillcrest Academy", cfg.School.Name)
}

func TestLoadReadsEnvironment(t *testing.T) {
	wd, err := os.Getwd()
	assert.NoError(t, err)
	assert.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("PORT", "9090")
	t.Setenv("ENABLE_EVENTS", "true")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Events.Enabled)
}
