package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearSupabaseEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"SUPABASE_URL", "SUPABASE_SERVICE_ROLE_KEY", "SUPABASE_SERVICE_KEY", "SUPABASE_ANON_KEY", "PORT", "REFRESH_WORKERS"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.env")

	t.Run("defaults", func(t *testing.T) {
		clearSupabaseEnv(t)
		t.Setenv("SUPABASE_URL", "https://abc.supabase.co/")
		t.Setenv("SUPABASE_SERVICE_ROLE_KEY", "role-key")

		cfg, err := Load(missing)
		require.NoError(t, err)
		assert.Equal(t, "https://abc.supabase.co", cfg.SupabaseURL)
		assert.Equal(t, ":8080", cfg.ListenAddr())
		assert.Equal(t, 3, cfg.RefreshWorkers)
		assert.Equal(t, "0 */6 * * *", cfg.ViralityRefreshCron)
		assert.False(t, cfg.UsingAnonKey())
	})

	t.Run("key precedence", func(t *testing.T) {
		clearSupabaseEnv(t)
		t.Setenv("SUPABASE_URL", "https://abc.supabase.co")
		t.Setenv("SUPABASE_SERVICE_KEY", "legacy-key")
		t.Setenv("SUPABASE_ANON_KEY", "anon-key")

		cfg, err := Load(missing)
		require.NoError(t, err)
		assert.Equal(t, "legacy-key", cfg.ServiceKey())
	})

	t.Run("anon only", func(t *testing.T) {
		clearSupabaseEnv(t)
		t.Setenv("SUPABASE_URL", "https://abc.supabase.co")
		t.Setenv("SUPABASE_ANON_KEY", "anon-key")

		cfg, err := Load(missing)
		require.NoError(t, err)
		assert.True(t, cfg.UsingAnonKey())
	})

	t.Run("missing url", func(t *testing.T) {
		clearSupabaseEnv(t)
		t.Setenv("SUPABASE_SERVICE_ROLE_KEY", "role-key")

		_, err := Load(missing)
		assert.Error(t, err)
	})

	t.Run("missing key", func(t *testing.T) {
		clearSupabaseEnv(t)
		t.Setenv("SUPABASE_URL", "https://abc.supabase.co")

		_, err := Load(missing)
		assert.ErrorContains(t, err, "SUPABASE_SERVICE_ROLE_KEY")
	})

	t.Run("dotenv file", func(t *testing.T) {
		clearSupabaseEnv(t)
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("SUPABASE_URL=https://file.supabase.co\nSUPABASE_SERVICE_ROLE_KEY=file-key\nPORT=9090\n"), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "https://file.supabase.co", cfg.SupabaseURL)
		assert.Equal(t, ":9090", cfg.ListenAddr())
	})
}

func TestInitLogger(t *testing.T) {
	l := InitLogger("debug")
	assert.Equal(t, "debug", l.GetLevel().String())
	assert.Same(t, l, Log)

	l = InitLogger("loud")
	assert.Equal(t, "info", l.GetLevel().String())
}
