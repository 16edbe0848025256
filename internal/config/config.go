package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/vvka-141/glamgen/pkg/glamgen"
)

const (
	ConfigFileName = "glamgen.yaml"
	EnvFileName    = ".env"
)

// Settings are the tool-level options. Values come from glamgen.yaml, then
// from GLAMGEN_* environment variables, then from the defaults below.
type Settings struct {
	TemplatesDir string `yaml:"templates_dir" env:"GLAMGEN_TEMPLATES_DIR" env-description:"Directory of template sets used instead of the built-in ones"`
	ShapesFile   string `yaml:"shapes_file" env:"GLAMGEN_SHAPES_FILE" env-description:"YAML file with additional shapes"`
	OutputRoot   string `yaml:"output_root" env:"GLAMGEN_OUTPUT_ROOT" env-default:"sql" env-description:"Root directory of the dataset/table/query.sql layout"`
	DefaultShape string `yaml:"default_shape" env:"GLAMGEN_SHAPE" env-default:"telemetry" env-description:"Shape rendered when --shape is not given"`
	LogFormat    string `yaml:"log_format" env:"GLAMGEN_LOG_FORMAT" env-default:"console" env-description:"Log format: console or json"`
}

// Load reads settings for the project rooted at dir. A .env file in dir is
// loaded into the environment first without replacing variables that are
// already set. A missing glamgen.yaml is not an error.
func Load(dir string) (*Settings, error) {
	envPath := filepath.Join(dir, EnvFileName)
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", glamgen.ErrInvalidConfig, envPath, err)
		}
	}

	cfg := &Settings{}
	configPath := filepath.Join(dir, ConfigFileName)
	_, statErr := os.Stat(configPath)

	var err error
	switch {
	case statErr == nil:
		err = cleanenv.ReadConfig(configPath, cfg)
	case errors.Is(statErr, fs.ErrNotExist):
		err = cleanenv.ReadEnv(cfg)
	default:
		err = statErr
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", glamgen.ErrInvalidConfig, configPath, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s *Settings) validate() error {
	switch s.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log_format must be console or json, got %q", glamgen.ErrInvalidConfig, s.LogFormat)
	}
	if s.OutputRoot == "" {
		return fmt.Errorf("%w: output_root must not be empty", glamgen.ErrInvalidConfig)
	}
	return nil
}

// Describe returns a help text listing the environment variables Settings reads.
func Describe() (string, error) {
	return cleanenv.GetDescription(&Settings{}, nil)
}
