package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/szuwgh/wordfreq/pkg/analysis"
	"github.com/szuwgh/wordfreq/pkg/log"
	"github.com/szuwgh/wordfreq/pkg/server"
)

var (
	outFile  string
	jsonMode bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&outFile, "out", "o", "", "save the results to a file")
	analyzeCmd.Flags().BoolVar(&jsonMode, "json", false, "print the report as JSON")
	analyzeCmd.Flags().Int("top", analysis.DefaultTopN, "number of words to report")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "analyze a text file or stdin",
	Long:  `analyze counts the normalized words of a file, or of stdin when no file is given`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var in io.Reader = cmd.InOrStdin()
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}
		return analyze(in, cmd.OutOrStdout())
	},
}

func analyze(in io.Reader, out io.Writer) error {
	text, err := ioutil.ReadAll(in)
	if err != nil {
		return errors.Wrap(err, "read input")
	}
	a, err := newAnalyzer(conf)
	if err != nil {
		return err
	}
	s, err := server.New(a, server.Options{})
	if err != nil {
		return err
	}
	res, err := s.Analyze(text, conf.TopN)
	switch {
	case errors.Is(err, server.ErrEmptyInput):
		log.Warn("nothing to analyze", zap.Error(err))
		_, werr := fmt.Fprintln(out, server.EmptyInputMessage)
		return werr
	case errors.Is(err, analysis.ErrNoWords):
		log.Warn("nothing to analyze", zap.Error(err))
		_, werr := fmt.Fprintln(out, analysis.NoWordsMessage)
		return werr
	}
	if err != nil {
		return err
	}

	var rendered []byte
	if jsonMode {
		rendered, err = json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
	} else {
		rendered = []byte(res.Report.String())
	}
	if _, err := fmt.Fprintln(out, string(rendered)); err != nil {
		return err
	}
	if outFile != "" {
		if err := ioutil.WriteFile(outFile, rendered, 0644); err != nil {
			return errors.Wrapf(err, "save results to %s", outFile)
		}
		log.Info("results saved", zap.String("file", outFile), zap.String("id", res.ID))
	}
	return nil
}
