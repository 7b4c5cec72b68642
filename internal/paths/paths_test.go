package paths

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		got, err := DefaultConfigDir()
		require.NoError(t, err)
		base, err := os.UserConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(base, "chemicals"), got)
		return
	}

	t.Run("XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/xdg-config/chemicals", got)
	})

	t.Run("home fallback", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".config", "chemicals"), got)
	})

	t.Run("home lookup fails", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		saved := platformDir.homeDir
		platformDir.homeDir = func() (string, error) { return "", errors.New("no home") }
		t.Cleanup(func() { platformDir.homeDir = saved })

		_, err := DefaultConfigDir()
		assert.EqualError(t, err, "no home")
	})
}

func TestResolveConfigDir(t *testing.T) {
	platform, err := DefaultConfigDir()
	require.NoError(t, err)

	tests := []struct {
		name string
		flag string
		env  string
		want string
	}{
		{name: "flag over env", flag: "/flag/config", env: "/env/config", want: "/flag/config"},
		{name: "env", env: "/env/config", want: "/env/config"},
		{name: "platform default", want: platform},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvConfigDir, tt.env)
			got, err := ResolveConfigDir(tt.flag)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveDataDir(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	tests := []struct {
		name        string
		flag        string
		env         string
		configValue string
		want        string
	}{
		{
			name:        "flag over env and config",
			flag:        "/flag/data",
			env:         "/env/data",
			configValue: "/config/data",
			want:        "/flag/data",
		},
		{
			name:        "env over config",
			env:         "/env/data",
			configValue: "/config/data",
			want:        "/env/data",
		},
		{
			name:        "config value",
			configValue: "/config/data",
			want:        "/config/data",
		},
		{
			name: "working directory default",
			want: filepath.Join(cwd, DefaultDataDirName),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvDataDir, tt.env)
			got, err := ResolveDataDir(tt.flag, tt.configValue)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveDataDir_IgnoresXDGDataHome(t *testing.T) {
	t.Setenv(EnvDataDir, "")
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	cwd, err := os.Getwd()
	require.NoError(t, err)

	got, err := ResolveDataDir("", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, ".chemicals-db"), got)
}

func TestResolve_RelativePathsBecomeAbsolute(t *testing.T) {
	t.Setenv(EnvConfigDir, "relative/env-config")
	t.Setenv(EnvDataDir, "")

	cases := map[string]func() (string, error){
		"config flag":  func() (string, error) { return ResolveConfigDir("relative/config") },
		"config env":   func() (string, error) { return ResolveConfigDir("") },
		"data flag":    func() (string, error) { return ResolveDataDir("relative/data", "") },
		"config value": func() (string, error) { return ResolveDataDir("", "relative/from-config") },
	}
	for name, resolve := range cases {
		got, err := resolve()
		require.NoError(t, err, name)
		assert.True(t, filepath.IsAbs(got), "%s: expected absolute path, got %s", name, got)
	}
}
