package config

import (
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	KeyTokenizer    = "tokenizer"
	KeyNormalizer   = "normalizer"
	KeyLanguage     = "language"
	KeyDictPath     = "dict_path"
	KeyTopN         = "top_n"
	KeyCacheSize    = "cache_size"
	KeyListen       = "listen"
	KeyMaxConns     = "max_conns"
	KeyMaxBodyBytes = "max_body_bytes"
	KeyLogLevel     = "log.level"
)

type Config struct {
	Tokenizer    string
	Normalizer   string
	Language     string
	DictPath     string
	TopN         int
	CacheSize    int
	Listen       string
	MaxConns     int
	MaxBodyBytes int64
	LogLevel     string
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyTokenizer, "word")
	v.SetDefault(KeyNormalizer, "auto")
	v.SetDefault(KeyLanguage, "russian")
	v.SetDefault(KeyDictPath, "")
	v.SetDefault(KeyTopN, 50)
	v.SetDefault(KeyCacheSize, 128)
	v.SetDefault(KeyListen, ":9400")
	v.SetDefault(KeyMaxConns, 64)
	v.SetDefault(KeyMaxBodyBytes, 4<<20)
	v.SetDefault(KeyLogLevel, "info")
}

// New returns a viper instance with defaults and WORDFREQ_ env overrides.
// cfgFile may be empty, then wordfreq.yaml is searched in the home and the
// working directory and its absence is not an error.
func New(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix("wordfreq")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		path, err := homedir.Expand(cfgFile)
		if err != nil {
			return nil, errors.Wrap(err, "expand config path")
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
		return v, nil
	}

	v.SetConfigName("wordfreq")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, "read config")
		}
	}
	return v, nil
}

// Load resolves v into a Config.
func Load(v *viper.Viper) (*Config, error) {
	c := &Config{
		Tokenizer:    v.GetString(KeyTokenizer),
		Normalizer:   v.GetString(KeyNormalizer),
		Language:     v.GetString(KeyLanguage),
		DictPath:     v.GetString(KeyDictPath),
		TopN:         v.GetInt(KeyTopN),
		CacheSize:    v.GetInt(KeyCacheSize),
		Listen:       v.GetString(KeyListen),
		MaxConns:     v.GetInt(KeyMaxConns),
		MaxBodyBytes: v.GetInt64(KeyMaxBodyBytes),
		LogLevel:     v.GetString(KeyLogLevel),
	}
	if c.DictPath != "" {
		path, err := homedir.Expand(c.DictPath)
		if err != nil {
			return nil, errors.Wrap(err, "expand dict_path")
		}
		c.DictPath = path
	}
	if c.TopN <= 0 {
		return nil, errors.Errorf("%s must be positive, got %d", KeyTopN, c.TopN)
	}
	if c.MaxConns <= 0 {
		return nil, errors.Errorf("%s must be positive, got %d", KeyMaxConns, c.MaxConns)
	}
	if c.MaxBodyBytes <= 0 {
		return nil, errors.Errorf("%s must be positive, got %d", KeyMaxBodyBytes, c.MaxBodyBytes)
	}
	return c, nil
}
