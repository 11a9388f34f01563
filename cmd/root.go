package cmd

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/szuwgh/wordfreq/core/config"
	"github.com/szuwgh/wordfreq/pkg/analysis"
	"github.com/szuwgh/wordfreq/pkg/log"
	"github.com/szuwgh/wordfreq/pkg/morph"
	"github.com/szuwgh/wordfreq/pkg/tokenizer"
	_ "github.com/szuwgh/wordfreq/pkg/tokenizer/buildinit"
	"github.com/szuwgh/wordfreq/pkg/tokenizer/gojieba"
)

var (
	cfgFile string
	conf    *config.Config
)

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&cfgFile, "config", "", "config file (default $HOME/wordfreq.yaml)")
	tokenizer.Init()
	f.String("tokenizer", "word", "tokenizer type: "+strings.Join(tokenizer.RegistryInstance.Types(), ", "))
	f.String("normalizer", "auto", "normalizer: auto, dictionary, snowball, identity")
	f.String("language", "russian", "snowball stemmer language")
	f.String("dict", "", "form<TAB>lemma dictionary, .sz for snappy (default embedded)")
	f.String("log-level", "info", "log level")
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "wordfreq",
	Short:         "count word frequencies",
	Long:          `wordfreq counts normalized word frequencies and reports the most frequent words`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v, err := config.New(cfgFile)
		if err != nil {
			return err
		}
		if err := bindFlags(v, cmd.Flags()); err != nil {
			return err
		}
		conf, err = config.Load(v)
		if err != nil {
			return err
		}
		return log.Init(conf.LogLevel)
	},
}

var flagKeys = map[string]string{
	"tokenizer":  config.KeyTokenizer,
	"normalizer": config.KeyNormalizer,
	"language":   config.KeyLanguage,
	"dict":       config.KeyDictPath,
	"log-level":  config.KeyLogLevel,
	"top":        config.KeyTopN,
	"listen":     config.KeyListen,
	"max-conns":  config.KeyMaxConns,
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "bind flag %s", name)
		}
	}
	return nil
}

// Execute runs the command line.
func Execute() error {
	defer log.Sync()
	return rootCmd.Execute()
}

func newAnalyzer(c *config.Config) (*analysis.Analyzer, error) {
	n, err := morph.New(morph.Options{
		Kind:     c.Normalizer,
		Language: c.Language,
		DictPath: c.DictPath,
	})
	if err != nil {
		return nil, err
	}
	var tkConfig map[string]interface{}
	if c.Tokenizer == gojieba.Type {
		tkConfig = gojieba.DefaultConfig()
	}
	tokenizer.Init()
	return analysis.NewAnalyzer(c.Tokenizer, tkConfig, n, c.TopN)
}
