package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	t.Run("Sqlite", func(t *testing.T) {
		cfg := Config{
			Driver: "sqlite",
			Path:   filepath.Join(t.TempDir(), "export.sqlite"),
		}

		db, err := Connect(cfg)
		require.NoError(t, err)
		assert.NotNil(t, db)
	})

	t.Run("SqliteInMemory", func(t *testing.T) {
		cfg := Config{Driver: "sqlite", Path: ":memory:"}

		db, err := Connect(cfg)
		require.NoError(t, err)
		assert.NotNil(t, db)
	})

	t.Run("InvalidMysqlConnection", func(t *testing.T) {
		cfg := Config{
			Driver:         "mysql",
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "thermodb",
			TimeoutSeconds: 1,
		}

		// Connect should fail (timeout or refused)
		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})
}
