package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/textkit/internal/constants"
	"github.com/oshokin/textkit/internal/fileutil"
	"github.com/oshokin/textkit/internal/strcase"
)

// TestDefaultConfig tests the default settings.
func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "ascii", cfg.CaseMode)
	assert.Equal(t, "0644", cfg.FilePermissions)
	assert.True(t, cfg.StrictIO)
	require.NoError(t, ValidateConfig(cfg))
	assert.Equal(t, constants.DefaultFilePermissions, cfg.ParsedFilePermissions)
}

// TestLoadConfig tests the LoadConfig function.
func TestLoadConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		configContent string
		skipWrite     bool
		expectedError string
		check         func(*testing.T, *Config)
	}{
		{
			name: "valid config file",
			configContent: `
log_level: "debug"
case_mode: "unicode"
file_permissions: "0600"
strict_io: false
`,
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.Equal(t, "unicode", cfg.CaseMode)
				assert.Equal(t, "0600", cfg.FilePermissions)
				assert.False(t, cfg.StrictIO)
			},
		},
		{
			name:          "partial config falls back to defaults",
			configContent: `log_level: "warn"`,
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "warn", cfg.LogLevel)
				assert.Equal(t, DefaultCaseMode, cfg.CaseMode)
				assert.Equal(t, DefaultFilePermissions, cfg.FilePermissions)
				assert.True(t, cfg.StrictIO)
			},
		},
		{
			name:          "explicit missing file",
			skipWrite:     true,
			expectedError: "failed to read config from file",
		},
		{
			name:          "invalid yaml",
			configContent: "log_level: [unclosed",
			expectedError: "failed to read config from file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			configPath := filepath.Join(t.TempDir(), "config.yaml")
			if !tt.skipWrite {
				require.NoError(t, os.WriteFile(configPath, []byte(tt.configContent), constants.DefaultFilePermissions))
			}

			cfg, err := LoadConfig(configPath)
			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.Nil(t, cfg)

				return
			}

			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

// TestLoadConfig_UnquotedFilePermissions tests that unquoted octal modes keep their octal meaning.
func TestLoadConfig_UnquotedFilePermissions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		value         string
		expected      os.FileMode
		expectedError error
	}{
		{name: "leading zero", value: "0644", expected: 0o644},
		{name: "no leading zero", value: "600", expected: 0o600},
		{name: "yaml 1.2 octal prefix", value: "0o640", expected: 0o640},
		{name: "quoted", value: `"0755"`, expected: 0o755},
		{name: "decimal digits out of octal range", value: "0689", expectedError: ErrInvalidFilePermissions},
		{name: "hexadecimal", value: "0x1a4", expectedError: ErrInvalidFilePermissions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			configPath := filepath.Join(t.TempDir(), "config.yaml")
			content := "log_level: info\nfile_permissions: " + tt.value + "\n"
			require.NoError(t, os.WriteFile(configPath, []byte(content), constants.DefaultFilePermissions))

			cfg, err := LoadConfig(configPath)
			require.NoError(t, err)

			err = ValidateConfig(cfg)
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.ParsedFilePermissions)
		})
	}
}

// TestLoadConfig_DefaultFileAbsent tests that a missing default file yields defaults.
func TestLoadConfig_DefaultFileAbsent(t *testing.T) {
	// Not parallel: changes the working directory.
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

// TestValidateConfig tests the ValidateConfig function.
func TestValidateConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		mutate        func(*Config)
		expectedError error
		check         func(*testing.T, *Config)
	}{
		{
			name:   "defaults",
			mutate: func(*Config) {},
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, zapcore.InfoLevel, cfg.ParsedLogLevel)
				assert.Equal(t, strcase.ModeASCII, cfg.ParsedCaseMode)
				assert.Equal(t, os.FileMode(0o644), cfg.ParsedFilePermissions)
			},
		},
		{
			name: "unicode mode and custom permissions",
			mutate: func(cfg *Config) {
				cfg.LogLevel = "ERROR"
				cfg.CaseMode = "unicode"
				cfg.FilePermissions = "600"
			},
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, zapcore.ErrorLevel, cfg.ParsedLogLevel)
				assert.Equal(t, strcase.ModeUnicode, cfg.ParsedCaseMode)
				assert.Equal(t, os.FileMode(0o600), cfg.ParsedFilePermissions)
			},
		},
		{
			name:   "empty permissions use default",
			mutate: func(cfg *Config) { cfg.FilePermissions = " " },
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, constants.DefaultFilePermissions, cfg.ParsedFilePermissions)
			},
		},
		{
			name:          "unknown log level",
			mutate:        func(cfg *Config) { cfg.LogLevel = "chatty" },
			expectedError: ErrUnknownLogLevel,
		},
		{
			name:          "unknown case mode",
			mutate:        func(cfg *Config) { cfg.CaseMode = "title" },
			expectedError: ErrUnknownCaseMode,
		},
		{
			name:          "non octal permissions",
			mutate:        func(cfg *Config) { cfg.FilePermissions = "0689" },
			expectedError: ErrInvalidFilePermissions,
		},
		{
			name:          "permissions out of range",
			mutate:        func(cfg *Config) { cfg.FilePermissions = "1777" },
			expectedError: ErrInvalidFilePermissions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := ValidateConfig(cfg)
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)

				return
			}

			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

// TestSaveConfig tests that a saved configuration loads back unchanged.
func TestSaveConfig(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "saved.yaml")

	cfg := DefaultConfig()
	cfg.LogLevel = "debug"
	cfg.CaseMode = "unicode"

	require.NoError(t, SaveConfig(fileutil.NewOSAccessor(), configPath, cfg))

	loaded, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

// TestSaveConfig_WriteFailure tests that write errors are wrapped.
func TestSaveConfig_WriteFailure(t *testing.T) {
	t.Parallel()

	files := fileutil.NewAccessor(afero.NewReadOnlyFs(afero.NewMemMapFs()), constants.DefaultFilePermissions)

	err := SaveConfig(files, "/config.yaml", DefaultConfig())
	require.ErrorIs(t, err, ErrConfigWriteFailed)
	assert.ErrorIs(t, err, fileutil.ErrPermissionDenied)
}
