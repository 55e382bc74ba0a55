package cmd

import (
	"log"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/szuwgh/cograph/pkg/analysis"
	"github.com/szuwgh/cograph/pkg/config"
	"github.com/szuwgh/cograph/pkg/cooccur"
	"github.com/szuwgh/cograph/pkg/tokenizer"
	_ "github.com/szuwgh/cograph/pkg/tokenizer/blank"
	_ "github.com/szuwgh/cograph/pkg/tokenizer/gojieba"
	"github.com/szuwgh/cograph/util"
)

var (
	cfgFile string
	envFile string
	v       = config.New()
)

var rootCmd = &cobra.Command{
	Use:           "cograph",
	Short:         "chinese term co-occurrence graphs",
	Long:          `segment chinese text and build windowed term co-occurrence graphs`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (yaml, toml or json)")
	pf.StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the environment is read")
	pf.String("log-level", "info", "log level: debug, info or error")
	pf.StringP("tokenizer", "t", "gojieba", "tokenizer: gojieba or blank")
	pf.Bool("normalize", false, "apply unicode NFC before segmentation")
	pf.IntP("window", "w", cooccur.DefaultWindow, "co-occurrence window size")
	pf.IntP("top-n", "n", cooccur.DefaultTopN, "vocabulary size")
	pf.Bool("restrict", true, "restrict the graph to the top-n terms")
	pf.String("mode", cooccur.ModeFilterPairs.String(), "windowing mode: filter-pairs, window-vocabulary or filter-stream")
	pf.String("stopwords", cooccur.DefaultStopwordsPath, "stopword file, one term per line")

	for key, flag := range map[string]string{
		"log.level":          "log-level",
		"analysis.tokenizer": "tokenizer",
		"analysis.normalize": "normalize",
		"cooccur.window":     "window",
		"cooccur.top_n":      "top-n",
		"cooccur.restrict":   "restrict",
		"cooccur.mode":       "mode",
		"cooccur.stopwords":  "stopwords",
	} {
		v.BindPFlag(key, pf.Lookup(flag))
	}
}

func Execute() error {
	return rootCmd.Execute()
}

// env holds what every subcommand needs.
type env struct {
	conf     *config.Config
	log      *util.Logger
	opts     cooccur.Options
	analyzer *analysis.Analyzer
}

func setup() (*env, error) {
	log.SetFlags(log.Lshortfile | log.LstdFlags)
	conf, err := config.Load(v, cfgFile, envFile)
	if err != nil {
		return nil, err
	}
	e := &env{conf: conf, log: util.NewLogger(conf.Log.Level)}
	if e.opts, err = conf.PipelineOptions(); err != nil {
		return nil, err
	}
	e.opts.Stopwords = loadStopwords(conf.Cooccur.Stopwords, e.log)

	e.analyzer, err = analysis.NewAnalyzer(tokenizer.NewRegistry(), analysis.Options{
		Tokenizer: conf.Analysis.Tokenizer,
		Config:    conf.TokenizerConfig(),
		Normalize: conf.Analysis.Normalize,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create analyzer")
	}
	return e, nil
}

func (e *env) close() {
	e.analyzer.Close()
}

func loadStopwords(path string, logger *util.Logger) cooccur.StopwordSet {
	set, err := cooccur.LoadStopwordsOrDefault(path)
	if err != nil {
		if cooccur.IsStopwordsNotFound(err) {
			logger.Info("stopword file %s not found, using built-in stopwords", path)
			return set
		}
		logger.Error("load stopwords: %v, using built-in stopwords", err)
		return cooccur.DefaultStopwords()
	}
	logger.Debug("loaded %d stopwords from %s", set.Len(), path)
	return set
}
