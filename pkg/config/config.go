package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/szuwgh/cograph/pkg/cooccur"
)

const EnvPrefix = "COGRAPH"

type AnalysisConfig struct {
	Tokenizer string
	Normalize bool
	HMM       bool
	Mode      string
	DictPath  string `mapstructure:"dict_path"`
}

type CooccurConfig struct {
	Window    int
	TopN      int `mapstructure:"top_n"`
	Restrict  bool
	Mode      string
	Stopwords string
}

type ServerConfig struct {
	Addr string
}

type LogConfig struct {
	Level string
}

type Config struct {
	Analysis AnalysisConfig
	Cooccur  CooccurConfig
	Server   ServerConfig
	Log      LogConfig
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("analysis.tokenizer", "gojieba")
	v.SetDefault("analysis.normalize", false)
	v.SetDefault("analysis.hmm", true)
	v.SetDefault("analysis.mode", "precise")
	v.SetDefault("analysis.dict_path", "")
	v.SetDefault("cooccur.window", cooccur.DefaultWindow)
	v.SetDefault("cooccur.top_n", cooccur.DefaultTopN)
	v.SetDefault("cooccur.restrict", true)
	v.SetDefault("cooccur.mode", cooccur.ModeFilterPairs.String())
	v.SetDefault("cooccur.stopwords", cooccur.DefaultStopwordsPath)
	v.SetDefault("server.addr", ":9400")
	v.SetDefault("log.level", "info")
}

// New returns a viper instance with defaults and environment binding.
// COGRAPH_COOCCUR_TOP_N overrides cooccur.top_n.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads an optional .env file and an optional config file into v.
// Empty paths are skipped; a missing .env is not an error.
func Load(v *viper.Viper, configFile, envFile string) (*Config, error) {
	if envFile != "" {
		p, err := homedir.Expand(envFile)
		if err != nil {
			return nil, errors.Wrapf(err, "expand env file %s", envFile)
		}
		if err := godotenv.Load(p); err != nil && !os.IsNotExist(errors.Cause(err)) {
			return nil, errors.Wrapf(err, "load env file %s", p)
		}
	}
	if configFile != "" {
		p, err := homedir.Expand(configFile)
		if err != nil {
			return nil, errors.Wrapf(err, "expand config file %s", configFile)
		}
		v.SetConfigFile(p)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config file %s", p)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	return &c, nil
}

// PipelineOptions converts the cooccur section. The stopword file is not
// read here.
func (c *Config) PipelineOptions() (cooccur.Options, error) {
	mode, err := cooccur.ParseMode(c.Cooccur.Mode)
	if err != nil {
		return cooccur.Options{}, err
	}
	opts := cooccur.Options{
		Window:   c.Cooccur.Window,
		TopN:     c.Cooccur.TopN,
		Restrict: c.Cooccur.Restrict,
		Mode:     mode,
	}
	return opts, nil
}

// TokenizerConfig is the map handed to the tokenizer constructor.
func (c *Config) TokenizerConfig() map[string]interface{} {
	m := map[string]interface{}{
		"hmm":  c.Analysis.HMM,
		"mode": c.Analysis.Mode,
	}
	if c.Analysis.DictPath != "" {
		m["dict_path"] = c.Analysis.DictPath
	}
	return m
}
