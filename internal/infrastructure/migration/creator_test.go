package migration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMigration(t *testing.T) {
	t.Run("creates up and down files", func(t *testing.T) {
		dir := t.TempDir()

		mf, err := CreateMigration(dir, "add bale grade index")
		require.NoError(t, err)
		require.NotNil(t, mf)

		assert.Len(t, mf.Version, 14)
		assert.True(t, strings.HasSuffix(mf.UpPath, "_add_bale_grade_index.up.sql"))
		assert.True(t, strings.HasSuffix(mf.DownPath, "_add_bale_grade_index.down.sql"))

		upContent, err := os.ReadFile(mf.UpPath)
		require.NoError(t, err)
		assert.Contains(t, string(upContent), "add bale grade index")

		downContent, err := os.ReadFile(mf.DownPath)
		require.NoError(t, err)
		assert.Contains(t, string(downContent), "rollback")
	})

	t.Run("creates the migrations directory when missing", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "migrations")

		mf, err := CreateMigration(dir, "init")
		require.NoError(t, err)

		_, err = os.Stat(mf.UpPath)
		assert.NoError(t, err)
	})
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase passthrough", "add_users", "add_users"},
		{"spaces to underscores", "add users table", "add_users_table"},
		{"mixed case", "AddBaleIndex", "addbaleindex"},
		{"collapses separators", "add -- index", "add_index"},
		{"trims trailing separator", "add index ", "add_index"},
		{"strips unsafe characters", "drop;table!", "droptable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeName(tt.input))
		})
	}
}

func TestListMigrations(t *testing.T) {
	t.Run("lists base names of up migrations", func(t *testing.T) {
		dir := t.TempDir()

		_, err := CreateMigration(dir, "first")
		require.NoError(t, err)

		migrations, err := ListMigrations(dir)
		require.NoError(t, err)
		require.Len(t, migrations, 1)
		assert.True(t, strings.HasSuffix(migrations[0], "_first"))
	})

	t.Run("returns empty list for missing directory", func(t *testing.T) {
		migrations, err := ListMigrations(filepath.Join(t.TempDir(), "does-not-exist"))
		require.NoError(t, err)
		assert.Empty(t, migrations)
	})
}
