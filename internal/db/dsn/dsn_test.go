package dsn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevenup/cpm/internal/config"
)

func TestCreate(t *testing.T) {
	tests := []struct {
		name    string
		db      config.DB
		want    string
		wantErr error
	}{
		{
			name: "mysql",
			db: config.DB{
				GormEngine: config.EngineMySQL,
				User:       "cpm",
				Password:   "pw",
				Host:       "db",
				Port:       3306,
				Name:       "cpm",
				Extras:     "parseTime=true",
			},
			want: "cpm:pw@tcp(db:3306)/cpm?parseTime=true",
		},
		{
			name: "postgres with extras",
			db: config.DB{
				GormEngine: config.EnginePostgres,
				User:       "cpm",
				Password:   "pw",
				Host:       "db",
				Port:       5432,
				Name:       "cpm",
				Extras:     "sslmode=disable",
			},
			want: "host=db port=5432 user=cpm password=pw dbname=cpm sslmode=disable",
		},
		{
			name: "postgres without extras",
			db:   config.DB{GormEngine: config.EnginePostgres, Host: "db", Port: 5432, Name: "cpm"},
			want: "host=db port=5432 user= password= dbname=cpm",
		},
		{
			name: "sqlite file",
			db:   config.DB{GormEngine: config.EngineSQLite, Name: "cpm.db"},
			want: "cpm.db",
		},
		{
			name: "sqlite with pragma",
			db:   config.DB{GormEngine: config.EngineSQLite, Name: "cpm.db", Extras: "_pragma=foreign_keys(1)"},
			want: "cpm.db?_pragma=foreign_keys(1)",
		},
		{
			name:    "unknown",
			db:      config.DB{GormEngine: "oracle"},
			wantErr: ErrUnknownEngine,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Create(&config.Config{DB: tt.db})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
