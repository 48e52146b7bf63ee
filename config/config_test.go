package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, args ...string) (Config, error) {
	t.Helper()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))

	v, err := New(fs)
	require.NoError(t, err)
	return Load(v)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, Config{LogLevel: "info"}, cfg)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("SINGLETON_LOG_LEVEL", "debug")
	t.Setenv("SINGLETON_DEVELOPMENT", "true")
	t.Setenv("SINGLETON_WORKERS", "8")

	cfg, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, Config{LogLevel: "debug", Development: true, Workers: 8}, cfg)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("SINGLETON_WORKERS", "8")

	cfg, err := load(t, "--workers=3", "--log-level=warn")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_WithoutFlags(t *testing.T) {
	v, err := New(nil)
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		cfg     Config
		wantErr string
		wantIs  error
	}{
		{name: "valid", cfg: Config{LogLevel: "error", Workers: 2}},
		{name: "empty level is info", cfg: Config{}},
		{name: "bad level", cfg: Config{LogLevel: "chatty"}, wantErr: "config: log-level:"},
		{name: "negative workers", cfg: Config{LogLevel: "info", Workers: -1}, wantIs: ErrNegativeWorkers},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.cfg.Validate()
			switch {
			case tc.wantIs != nil:
				assert.ErrorIs(t, err, tc.wantIs)
			case tc.wantErr != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
			default:
				assert.NoError(t, err)
			}
		})
	}
}
