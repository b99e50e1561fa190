package config_test

import (
	"countries/internal/config"
	"countries/internal/country"
	"countries/internal/fetch"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigHome(t)

	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"URL", cfg.URL, fetch.DefaultURL},
		{"Data", cfg.Data, ""},
		{"Sort", cfg.Sort, "alphabetical"},
		{"Region", cfg.Region, country.Worldwide},
		{"Verbose", cfg.Verbose, false},
		{"FlagProbeLimit", cfg.FlagProbeLimit, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestLoad_File(t *testing.T) {
	t.Run("reads default config path", func(t *testing.T) {
		home := isolateConfigHome(t)
		path := filepath.Join(home, "countries", "config.yaml")
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("sort: population\nverbose: true\n"), 0o644))

		cfg, err := config.Load(viper.New(), "")

		require.NoError(t, err)
		assert.Equal(t, "population", cfg.Sort)
		assert.True(t, cfg.Verbose)
	})

	t.Run("reads explicit config path", func(t *testing.T) {
		isolateConfigHome(t)
		path := filepath.Join(t.TempDir(), "custom.yaml")
		require.NoError(t, os.WriteFile(path, []byte("url: https://example.test/c.json\nflag_probe_limit: 9\n"), 0o644))

		cfg, err := config.Load(viper.New(), path)

		require.NoError(t, err)
		assert.Equal(t, "https://example.test/c.json", cfg.URL)
		assert.Equal(t, 9, cfg.FlagProbeLimit)
	})

	t.Run("missing explicit path is an error", func(t *testing.T) {
		isolateConfigHome(t)

		_, err := config.Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))

		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		isolateConfigHome(t)
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("sort: [unclosed"), 0o644))

		_, err := config.Load(viper.New(), path)

		assert.Error(t, err)
	})
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		name   string
		envKey string
		envVal string
		field  func(config.Config) any
		want   any
	}{
		{"url", "COUNTRIES_URL", "https://mirror.test/c.json", func(c config.Config) any { return c.URL }, "https://mirror.test/c.json"},
		{"sort", "COUNTRIES_SORT", "region", func(c config.Config) any { return c.Sort }, "region"},
		{"region", "COUNTRIES_REGION", "Asia", func(c config.Config) any { return c.Region }, "Asia"},
		{"verbose", "COUNTRIES_VERBOSE", "true", func(c config.Config) any { return c.Verbose }, true},
		{"flag_probe_limit", "COUNTRIES_FLAG_PROBE_LIMIT", "2", func(c config.Config) any { return c.FlagProbeLimit }, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateConfigHome(t)
			t.Setenv(tt.envKey, tt.envVal)

			cfg, err := config.Load(viper.New(), "")

			require.NoError(t, err)
			assert.Equal(t, tt.want, tt.field(cfg))
		})
	}
}

func TestConfig_Query(t *testing.T) {
	t.Run("builds normalized query", func(t *testing.T) {
		q, err := config.Config{Sort: "Region"}.Query()

		require.NoError(t, err)
		assert.Equal(t, country.Query{Sort: country.SortRegion, Region: country.Worldwide}, q)
	})

	t.Run("rejects unknown sort", func(t *testing.T) {
		_, err := config.Config{Sort: "area"}.Query()

		assert.ErrorIs(t, err, country.ErrUnknownSort)
	})
}
