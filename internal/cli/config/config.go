package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/zeusync/schemagen/internal/codegen"
)

// Config represents the schemagen configuration
type Config struct {
	// Bundles lists the schema bundle files to generate from.
	Bundles []string `mapstructure:"bundles"`
	// Output is a .go file for a single bundle, or a directory that receives
	// one package per bundle. Empty writes a single bundle to stdout.
	Output         string `mapstructure:"output"`
	Package        string `mapstructure:"package"`
	QualifiedNames bool   `mapstructure:"qualified_names"`
	SchemaImport   string `mapstructure:"schema_import"`
	Workers        int    `mapstructure:"workers"`
	LogLevel       string `mapstructure:"log_level"`
}

// New returns a viper instance with defaults, the schemagen.yaml search path
// and SCHEMAGEN_ environment variables configured. Commands bind their flags
// to it before calling Load.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("package", codegen.DefaultPackageName)
	v.SetDefault("schema_import", codegen.DefaultSchemaImport)
	v.SetDefault("qualified_names", false)
	v.SetDefault("workers", 4)
	v.SetDefault("log_level", "info")

	v.SetConfigName("schemagen")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("SCHEMAGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the config file, if any, and decodes the merged settings. An
// explicit path must exist; the default schemagen.yaml is optional.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	if config.Package == "" {
		return fmt.Errorf("package name cannot be empty")
	}
	if config.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", config.Workers)
	}
	if len(config.Bundles) > 1 && strings.HasSuffix(config.Output, ".go") {
		return fmt.Errorf("output %q is a file but %d bundles were given; use a directory", config.Output, len(config.Bundles))
	}
	if len(config.Bundles) > 1 && config.Output == "" {
		return fmt.Errorf("an output directory is required when generating %d bundles", len(config.Bundles))
	}
	return nil
}

// Options converts the config into generator options.
func (c *Config) Options() codegen.Options {
	return codegen.Options{
		PackageName:    c.Package,
		QualifiedNames: c.QualifiedNames,
		SchemaImport:   c.SchemaImport,
	}
}
