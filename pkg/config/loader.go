package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	solerrors "github.com/EbonJaeger/soltools/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable read as configuration.
// Nested keys are separated by a double underscore, e.g.
// SOLTOOLS_INDEXER__COMMAND sets indexer.command.
const EnvPrefix = "SOLTOOLS_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// LoadOptions controls which layers Load merges.
type LoadOptions struct {
	// ConfigFile is an explicit config file. It must exist when set.
	// When empty, DefaultConfigPath is used if it exists.
	ConfigFile string
	// Overrides are applied last, keyed by dotted config path.
	Overrides map[string]interface{}
	// SkipFile disables the config file layer.
	SkipFile bool
	// SkipEnv disables the environment layer.
	SkipEnv bool
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/soltools/config.toml.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = xdg.ConfigHome
	}
	return filepath.Join(configHome, "soltools", "config.toml")
}

// Load merges, in order: embedded defaults, the config file, SOLTOOLS_*
// environment variables and explicit overrides.
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, solerrors.Wrap(err, solerrors.ErrConfig, "failed to load defaults")
	}

	// 2. Config file
	var loaded string
	if !opts.SkipFile {
		var err error
		if loaded, err = loadFile(k, opts.ConfigFile); err != nil {
			return nil, err
		}
	}

	// 3. Environment
	if !opts.SkipEnv {
		err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
			return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
		}), nil)
		if err != nil {
			return nil, solerrors.Wrap(err, solerrors.ErrConfig, "failed to load env vars")
		}
	}

	// 4. Flag overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, solerrors.Wrap(err, solerrors.ErrConfig, "failed to apply overrides")
		}
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}
	cfg.File = loaded
	return cfg, nil
}

// Default returns the embedded defaults only.
func Default() *Config {
	cfg, err := Load(LoadOptions{SkipFile: true, SkipEnv: true})
	if err != nil {
		panic("embedded defaults are invalid: " + err.Error())
	}
	return cfg
}

// loadFile merges the config file into k and returns its absolute path,
// or "" when no file was read.
func loadFile(k *koanf.Koanf, path string) (string, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}
	if _, err := os.Stat(path); err != nil {
		if explicit {
			return "", solerrors.Wrapf(err, solerrors.ErrConfig, "config file %s not found", path)
		}
		return "", nil
	}
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return "", solerrors.Wrapf(err, solerrors.ErrConfig, "failed to load config from %s", path)
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return path, nil
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, solerrors.Wrap(err, solerrors.ErrConfig, "failed to unmarshal configuration")
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.RepositoryPath == "" {
		return solerrors.New(solerrors.ErrConfig, "repository_path must not be empty")
	}
	if !filepath.IsAbs(cfg.RepositoryPath) {
		abs, err := filepath.Abs(cfg.RepositoryPath)
		if err != nil {
			return solerrors.Wrapf(err, solerrors.ErrConfig, "invalid repository_path %q", cfg.RepositoryPath)
		}
		cfg.RepositoryPath = abs
	}
	cfg.PackageSuffix = strings.TrimPrefix(cfg.PackageSuffix, ".")
	if cfg.PackageSuffix == "" {
		return solerrors.New(solerrors.ErrConfig, "package_suffix must not be empty")
	}
	if cfg.Indexer.Command == "" {
		return solerrors.New(solerrors.ErrConfig, "indexer.command must not be empty")
	}
	if !strings.Contains(cfg.Source.URLTemplate, "{name}") {
		return solerrors.Newf(solerrors.ErrConfig, "source.url_template %q has no {name} placeholder", cfg.Source.URLTemplate)
	}
	return nil
}
