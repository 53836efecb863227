package daemon

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevenup/cpm/internal/config"
	"github.com/sevenup/cpm/internal/db/models"
	"github.com/sevenup/cpm/internal/db/store"
)

func sqliteConfig(name string) *config.Config {
	return &config.Config{
		DB: config.DB{
			GormEngine:   config.EngineSQLite,
			Name:         name,
			MaxOpenConns: 1,
		},
		Webserver: config.Webserver{
			Port:          8080,
			FastShutDown:  true,
			CheckAliveURI: "/checkalive",
		},
	}
}

func TestNewRejectsNilConfig(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, ErrNilConfig)
}

func TestNewMigratesTables(t *testing.T) {
	d, err := New(sqliteConfig(filepath.Join(t.TempDir(), "cpm.db")))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = d.Close()
	})

	assert.True(t, d.db.Migrator().HasTable(&models.GroupRole{}))
	assert.True(t, d.db.Migrator().HasTable(&models.GroupUser{}))

	s := store.New[models.GroupUser](d.db, "groupUser")

	saved, err := s.Save(context.Background(), &models.GroupUser{GroupID: models.Int64(1), UserID: models.Int64(2)})
	require.NoError(t, err)
	assert.NotNil(t, saved.ID)
}

func TestOpenDatabaseUnknownEngine(t *testing.T) {
	cfg := sqliteConfig(":memory:")
	cfg.DB.GormEngine = "oracle"

	_, err := openDatabase(cfg)
	require.Error(t, err)
}

func TestOpenDatabasePoolSettings(t *testing.T) {
	cfg := sqliteConfig(":memory:")
	cfg.DB.MaxOpenConns = 3

	db, err := openDatabase(cfg)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	assert.Equal(t, 3, sqlDB.Stats().MaxOpenConnections)
}
