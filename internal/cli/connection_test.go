package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvka-141/depmap/internal/config"
	"github.com/vvka-141/depmap/internal/logging"
	"github.com/vvka-141/depmap/pkg/depmap"
)

func TestResolveConnectionString(t *testing.T) {
	fromFile := &config.ProjectConfig{Connection: "postgresql://file@localhost/deps"}
	structured := &config.ProjectConfig{Database: config.DatabaseConfig{Host: "db.internal", Username: "ci", Database: "deps"}}

	tests := []struct {
		name       string
		flag       string
		envPrimary string
		envGeneric string
		projectCfg *config.ProjectConfig
		wantConn   string
		wantSource string
	}{
		{
			name:       "flag wins over everything",
			flag:       "postgresql://flag@localhost/deps",
			envPrimary: "postgresql://env@localhost/deps",
			envGeneric: "postgresql://generic@localhost/deps",
			projectCfg: fromFile,
			wantConn:   "postgresql://flag@localhost/deps",
			wantSource: "--connection",
		},
		{
			name:       "DEPMAP_DATABASE_URL before DATABASE_URL",
			envPrimary: "postgresql://env@localhost/deps",
			envGeneric: "postgresql://generic@localhost/deps",
			projectCfg: fromFile,
			wantConn:   "postgresql://env@localhost/deps",
			wantSource: "$DEPMAP_DATABASE_URL",
		},
		{
			name:       "DATABASE_URL before config file",
			envGeneric: "postgresql://generic@localhost/deps",
			projectCfg: fromFile,
			wantConn:   "postgresql://generic@localhost/deps",
			wantSource: "$DATABASE_URL",
		},
		{
			name:       "config connection string",
			projectCfg: fromFile,
			wantConn:   "postgresql://file@localhost/deps",
			wantSource: config.ConfigFileName,
		},
		{
			name:       "structured database block",
			projectCfg: structured,
			wantConn:   "postgresql://ci@db.internal:5432/deps",
			wantSource: config.ConfigFileName,
		},
		{
			name: "nothing configured",
		},
		{
			name:       "empty config",
			projectCfg: &config.ProjectConfig{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(envConnection, tt.envPrimary)
			t.Setenv(envDatabase, tt.envGeneric)
			t.Setenv("PGPASSWORD", "")

			conn, source := resolveConnectionString(tt.flag, tt.projectCfg)
			assert.Equal(t, tt.wantConn, conn)
			assert.Equal(t, tt.wantSource, source)
		})
	}
}

func TestConnectionFromDatabase_Defaults(t *testing.T) {
	t.Setenv("PGPASSWORD", "secret")

	cfg := connectionFromDatabase(config.DatabaseConfig{})
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 5432, cfg.Port)
	assert.Equal(t, "postgres", cfg.Database)
	assert.Equal(t, "secret", cfg.Password)
}

func TestResolveReferencePath(t *testing.T) {
	assert.Equal(t, "", resolveReferencePath("", nil))
	assert.Equal(t, "flag.yaml", resolveReferencePath("flag.yaml", &config.ProjectConfig{Reference: "file.yaml"}))
}

func TestOpenStore_NoDatabase(t *testing.T) {
	t.Setenv(envConnection, "")
	t.Setenv(envDatabase, "")

	st, err := openStore(t.Context(), storeFlags{}, nil, logging.NewNullLogger())
	require.Error(t, err)
	assert.Nil(t, st)
	assert.ErrorIs(t, err, depmap.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "--reference")
}

func TestOpenStore_InvalidConnectionString(t *testing.T) {
	t.Setenv(envConnection, "")
	t.Setenv(envDatabase, "")

	_, err := openStore(t.Context(), storeFlags{connection: "postgresql://localhost:99999/db"}, nil, logging.NewNullLogger())
	require.Error(t, err)
	assert.ErrorIs(t, err, depmap.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "connection from --connection")
}

func TestOpenStore_MemoryFallback(t *testing.T) {
	t.Setenv(envConnection, "")
	t.Setenv(envDatabase, "")

	st, err := openStore(t.Context(), storeFlags{reference: writeReference(t)}, nil, logging.NewNullLogger())
	require.NoError(t, err)
	defer st.Close()

	entries, err := st.Search(t.Context(), "com.example", "")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "libexample-java", entries[0].PackageName)
}
