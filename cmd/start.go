package cmd

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/szuwgh/wordfreq/pkg/server"
	"github.com/szuwgh/wordfreq/web"
)

func init() {
	StartCmd.Flags().String("listen", ":9400", "address to listen on")
	StartCmd.Flags().Int("max-conns", 64, "maximum concurrent connections")
	rootCmd.AddCommand(StartCmd)
}

var StartCmd = &cobra.Command{
	Use:   "start",
	Short: "start the http service",
	Long:  `start serves POST /analyze, /healthz and /metrics`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return start()
	},
}

func start() error {
	runtime.GOMAXPROCS(runtime.NumCPU())
	a, err := newAnalyzer(conf)
	if err != nil {
		return err
	}
	s, err := server.New(a, server.Options{CacheSize: conf.CacheSize})
	if err != nil {
		return err
	}
	return web.New(s, web.Options{
		Listen:       conf.Listen,
		MaxConns:     conf.MaxConns,
		MaxBodyBytes: conf.MaxBodyBytes,
	}).Run()
}
