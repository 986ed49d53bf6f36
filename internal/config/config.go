package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/textkit/internal/constants"
	"github.com/oshokin/textkit/internal/fileutil"
	"github.com/oshokin/textkit/internal/logger"
	"github.com/oshokin/textkit/internal/strcase"
)

// Config holds all configuration settings.
type Config struct {
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	// CaseMode selects the case mapping: "ascii" (byte-wise) or "unicode".
	CaseMode string `mapstructure:"case_mode" yaml:"case_mode"`
	// FilePermissions is the octal mode given to files created by textkit.
	FilePermissions string `mapstructure:"file_permissions" yaml:"file_permissions"`
	// StrictIO reports read and write failures as errors instead of empty content.
	StrictIO bool `mapstructure:"strict_io" yaml:"strict_io"`
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level `yaml:"-"`
	// ParsedCaseMode is the parsed case mode.
	ParsedCaseMode strcase.Mode `yaml:"-"`
	// ParsedFilePermissions is the parsed file mode.
	ParsedFilePermissions os.FileMode `yaml:"-"`
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".textkit.yaml"

	// DefaultLogLevel is the log level used when none is configured.
	DefaultLogLevel = "info"

	// DefaultCaseMode is the case mode used when none is configured.
	DefaultCaseMode = strcase.ModeASCIIString

	// DefaultFilePermissions is the textual form of constants.DefaultFilePermissions.
	DefaultFilePermissions = "0644"

	// DefaultStrictIO is the I/O contract used when none is configured.
	DefaultStrictIO = true
)

// Static error definitions for better error handling.
var (
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrUnknownCaseMode indicates that the case mode is not recognized.
	ErrUnknownCaseMode = errors.New("unknown case mode")
	// ErrInvalidFilePermissions indicates that the file permissions are not a valid octal mode.
	ErrInvalidFilePermissions = errors.New("invalid file permissions")
	// ErrConfigWriteFailed indicates that the configuration could not be saved.
	ErrConfigWriteFailed = errors.New("failed to write config file")
)

// DefaultConfig returns a configuration with every setting at its default value.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:        DefaultLogLevel,
		CaseMode:        DefaultCaseMode,
		FilePermissions: DefaultFilePermissions,
		StrictIO:        DefaultStrictIO,
	}
}

// LoadConfig loads configuration settings from a YAML file.
// When configFilename is empty the default file is used if present, and
// defaults apply when it is absent. An explicitly named file must exist.
func LoadConfig(configFilename string) (*Config, error) {
	isExplicit := configFilename != ""
	if !isExplicit {
		configFilename = DefaultConfigFilename
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(configFilename)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if isExplicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}
	} else if err = restoreOctalFilePermissions(v, configFilename); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// restoreOctalFilePermissions keeps an unquoted file_permissions value as written.
// YAML resolves 0644 to the integer 420, which would otherwise reach
// ValidateConfig as the string "420".
func restoreOctalFilePermissions(v *viper.Viper, configFilename string) error {
	content, err := os.ReadFile(filepath.Clean(configFilename))
	if err != nil {
		return fmt.Errorf("failed to read config from file: %w", err)
	}

	var node yaml.Node
	if err = yaml.Unmarshal(content, &node); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	valueNode := findMappingValue(&node, "file_permissions")
	if valueNode == nil || valueNode.ShortTag() != "!!int" {
		return nil
	}

	v.Set("file_permissions", strings.TrimPrefix(valueNode.Value, "0o"))

	return nil
}

// findMappingValue returns the value node of key in the top-level mapping of a YAML document.
func findMappingValue(node *yaml.Node, key string) *yaml.Node {
	// The root node is a document node, content[0] is the actual map.
	if len(node.Content) == 0 || node.Content[0].Kind != yaml.MappingNode {
		return nil
	}

	mapNode := node.Content[0]

	// Keys and values are stored as alternating nodes.
	for i := 0; i+1 < len(mapNode.Content); i += 2 {
		if mapNode.Content[i].Value == key {
			return mapNode.Content[i+1]
		}
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()

	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("case_mode", defaults.CaseMode)
	v.SetDefault("file_permissions", defaults.FilePermissions)
	v.SetDefault("strict_io", defaults.StrictIO)
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	parsedCaseMode, isCaseModeCorrect := strcase.ParseMode(cfg.CaseMode)
	if !isCaseModeCorrect {
		return fmt.Errorf("%w: '%s', expected '%s' or '%s'",
			ErrUnknownCaseMode, cfg.CaseMode, strcase.ModeASCIIString, strcase.ModeUnicodeString)
	}

	cfg.ParsedCaseMode = parsedCaseMode

	filePermissions := strings.TrimSpace(cfg.FilePermissions)
	if filePermissions == "" {
		cfg.ParsedFilePermissions = constants.DefaultFilePermissions

		return nil
	}

	parsedFilePermissions, err := strconv.ParseUint(filePermissions, 8, 32)
	if err != nil {
		return fmt.Errorf("%w: '%s': %w", ErrInvalidFilePermissions, cfg.FilePermissions, err)
	}

	if os.FileMode(parsedFilePermissions) > constants.MaxFilePermissions {
		return fmt.Errorf("%w: '%s' exceeds %#o",
			ErrInvalidFilePermissions, cfg.FilePermissions, uint32(constants.MaxFilePermissions))
	}

	cfg.ParsedFilePermissions = os.FileMode(parsedFilePermissions)

	return nil
}

// SaveConfig renders cfg as YAML and writes it to configFilename through files.
func SaveConfig(files fileutil.Accessor, configFilename string, cfg *Config) error {
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	content, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err = files.WriteFile(configFilename, string(content)); err != nil {
		return fmt.Errorf("%w: %w", ErrConfigWriteFailed, err)
	}

	return nil
}
