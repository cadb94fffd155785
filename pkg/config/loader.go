package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/arthur-debert/smbsnap/pkg/errors"
	"github.com/arthur-debert/smbsnap/pkg/logging"
	"github.com/arthur-debert/smbsnap/pkg/paths"
	"github.com/arthur-debert/smbsnap/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every configuration environment variable.
// Sections are separated by a double underscore:
// SMBSNAP_DIRECTORIES__SNAP_ROOT sets directories.snap_root.
const EnvPrefix = "SMBSNAP_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, fmt.Errorf("not implemented")
}

// LoadOptions controls where configuration comes from
type LoadOptions struct {
	// Path is the configuration file. When empty the search path is used.
	Path string
	// Overrides are applied last, keyed by dotted path (e.g. "logging.file")
	Overrides map[string]interface{}
}

// Load reads, merges and validates the configuration
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")

	path := opts.Path
	if path == "" {
		found, ok := paths.FindConfigFile()
		if !ok {
			return nil, errors.Newf(errors.ErrConfigNotFound,
				"configuration file not found! Default location: %s", paths.LegacyConfigFile).
				WithDetail("searched", paths.ConfigSearchPaths())
		}
		path = found
	}
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigNotFound, "configuration file %s not found", path).
			WithDetail("path", path)
	}

	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load defaults")
	}

	// 2. Configuration file
	if err := loadFile(k, path); err != nil {
		return nil, err
	}
	logger.Debug().Str("path", path).Msg("Loaded configuration file")

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	// 4. Command line overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}
	cfg.Source = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile merges path into k, picking the parser from the extension
func loadFile(k *koanf.Koanf, path string) error {
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = k.Load(file.Provider(path), yaml.Parser())
	case ".conf", ".ini", ".cfg":
		var legacy map[string]interface{}
		legacy, err = loadLegacy(path)
		if err == nil {
			err = k.Load(confmap.Provider(legacy, "."), nil)
		}
	default:
		err = k.Load(file.Provider(path), toml.Parser())
	}
	if err != nil {
		if errors.GetErrorCode(err) != errors.ErrUnknown {
			return err
		}
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to parse configuration file %s", path).
			WithDetail("path", path)
	}
	return nil
}

// envKey maps SMBSNAP_SYNC__KEEP_PARTIAL to sync.keep_partial
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				commandHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}

	cfg.Directories.Shares = cleanList(cfg.Directories.Shares)
	cfg.Sync.Exclude = cleanList(cfg.Sync.Exclude)
	return &cfg, nil
}

// commandHookFunc decodes a string into a shell-line command and a list
// into an argument vector.
func commandHookFunc() mapstructure.DecodeHookFuncType {
	commandType := reflect.TypeOf(types.Command{})
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != commandType {
			return data, nil
		}
		switch v := data.(type) {
		case string:
			if strings.TrimSpace(v) == "" {
				return types.Command{}, nil
			}
			return types.ShellLine(v), nil
		case []string:
			return types.Argv(v...), nil
		case []interface{}:
			args := make([]string, 0, len(v))
			for _, a := range v {
				args = append(args, fmt.Sprint(a))
			}
			return types.Argv(args...), nil
		case nil:
			return types.Command{}, nil
		}
		return data, nil
	}
}

// cleanList trims every entry and drops the empty ones
func cleanList(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
