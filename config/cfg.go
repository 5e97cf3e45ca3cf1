package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	validator "github.com/go-playground/validator/v10"
	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TagsConfig struct {
		Path string `yaml:"path" sanitize:"path_clean,assure_dir_exists_for_file" validate:"required,filepath"`
	}

	NameplatesConfig struct {
		FreeCompanyVisibility NameplateFreeCompanyVisibility `yaml:"free_company_visibility" validate:"gte=0"`
		TitleVisibility       NameplateTitleVisibility       `yaml:"title_visibility" validate:"gte=0"`
		TitlePosition         NameplateTitlePosition         `yaml:"title_position" validate:"gte=0"`
	}

	DevelopmentConfig struct {
		RandomizeNames bool `yaml:"randomize_names"`
	}

	Config struct {
		Version     int               `yaml:"version" validate:"eq=1"`
		Tags        TagsConfig        `yaml:"tags"`
		Nameplates  NameplatesConfig  `yaml:"nameplates"`
		Development DevelopmentConfig `yaml:"development"`
		Logging     LoggingConfig     `yaml:"logging"`
		Reporting   ReporterConfig    `yaml:"reporting"`
	}
)

// checkPaths makes sure tag store does not share file with the log.
func checkPaths(sl validator.StructLevel) {
	cfg, ok := sl.Current().Interface().(Config)
	if !ok {
		return
	}
	log := cfg.Logging.FileLogger.Destination
	if len(log) == 0 || len(cfg.Tags.Path) == 0 {
		return
	}
	if filepath.Clean(log) == filepath.Clean(cfg.Tags.Path) {
		sl.ReportError(cfg.Tags.Path, "Tags.Path", "Path", "differs_from_log", "")
	}
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg, gencfg.WithAdditionalChecks(checkPaths)); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration tamplate to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
