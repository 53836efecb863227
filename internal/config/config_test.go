package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// etcPath returns the repository etc/ directory with a trailing separator.
func etcPath(t *testing.T) string {
	t.Helper()

	projectRoot, err := filepath.Abs("../../")
	require.NoError(t, err, "failed to get project root")

	return filepath.Join(projectRoot, "etc") + string(filepath.Separator)
}

func TestReadConfig(t *testing.T) {
	cfg, err := ReadConfig(etcPath(t))
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Title)
	assert.NotZero(t, cfg.Webserver.Port)
	assert.Equal(t, EngineSQLite, cfg.DB.GormEngine)
	assert.Equal(t, "cpm.db", cfg.DB.Name)
	assert.Equal(t, 30*time.Minute, cfg.DB.ConnMaxLifetime)
	assert.Equal(t, 200*time.Millisecond, cfg.DB.SlowThreshold)
	assert.Equal(t, "/checkalive", cfg.Webserver.CheckAliveURI)

	// nested logger sections
	assert.Equal(t, "cpm-api", cfg.Log.ServiceName)
	assert.True(t, cfg.Log.Console.Enabled)
	assert.Equal(t, "access.log", cfg.Log.File.AccessLog)
	assert.Equal(t, 100, cfg.Log.File.ErrorMaxSize)
}

func TestReadConfigMissingFile(t *testing.T) {
	_, err := ReadConfig(t.TempDir() + string(filepath.Separator))
	require.Error(t, err)
}

func TestReadConfigWithEnvOverride(t *testing.T) {
	t.Setenv("CPM_WEBSERVER_PORT", "9191")
	t.Setenv("CPM_DB_PASSWORD", "s3cret")

	cfg, err := ReadConfig(etcPath(t))
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Webserver.Port)
	assert.Equal(t, "s3cret", cfg.DB.Password)
}

func TestReadConfigWithJSONOverride(t *testing.T) {
	t.Setenv(EnvConfigJSON, `{"Title":"Test Override","Webserver":{"Port":9090}}`)

	cfg, err := ReadConfig(etcPath(t))
	require.NoError(t, err)

	assert.Equal(t, "Test Override", cfg.Title)
	assert.Equal(t, 9090, cfg.Webserver.Port)
	// untouched keys survive the merge
	assert.Equal(t, EngineSQLite, cfg.DB.GormEngine)
}

func TestReadConfigWithBrokenJSONOverride(t *testing.T) {
	t.Setenv(EnvConfigJSON, `{"Title":`)

	_, err := ReadConfig(etcPath(t))
	require.Error(t, err)
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name: "valid config",
			config: Config{
				DB:        DB{GormEngine: EngineSQLite},
				Webserver: Webserver{Port: 8080},
			},
		},
		{
			name: "missing port",
			config: Config{
				DB:        DB{GormEngine: EnginePostgres},
				Webserver: Webserver{Port: 0},
			},
			wantErr: ErrWebServerPortCanNotBeZero,
		},
		{
			name: "unknown engine",
			config: Config{
				DB:        DB{GormEngine: "oracle"},
				Webserver: Webserver{Port: 8080},
			},
			wantErr: ErrUnsupportedGormEngine,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(&tt.config)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, defaultShutDownTime, tt.config.Webserver.ShutDownTime)
			assert.Equal(t, defaultCheckAliveURI, tt.config.Webserver.CheckAliveURI)
		})
	}
}

func TestDump(t *testing.T) {
	cfg := Config{
		Title: "Test",
		DB:    DB{GormEngine: EngineMySQL, Host: "db.local"},
		Webserver: Webserver{
			Port: 8080,
		},
	}

	tests := []struct {
		format   string
		contains string
		wantErr  bool
	}{
		{format: "toml", contains: `Title = "Test"`},
		{format: "json", contains: `"Title": "Test"`},
		{format: "", contains: `Host = "db.local"`},
		{format: "yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("format "+tt.format, func(t *testing.T) {
			out, err := Dump(&cfg, tt.format)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedDumpFormat)
				return
			}

			require.NoError(t, err)
			assert.True(t, strings.Contains(out, tt.contains), "output %q should contain %q", out, tt.contains)
		})
	}
}
